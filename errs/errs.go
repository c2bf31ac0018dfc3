// Package errs defines the error taxonomy shared by the lzostream packages.
//
// Every sentinel error carries a Kind. The Kind decides the process exit
// status of the command-line tool and lets library callers branch on the
// class of failure without matching individual sentinels:
//
//	out, err := pipeline.Decompress(data)
//	if errs.KindOf(err) == errs.IllegalData {
//	    // corrupted or foreign input
//	}
package errs

import (
	"errors"
	"fmt"
)

// Kind classifies a failure.
type Kind uint8

const (
	KindNone        Kind = iota // KindNone is the kind of a nil error or an unclassified one.
	NoDevice                    // NoDevice means an I/O handle is unavailable.
	NoSuchFile                  // NoSuchFile means an input or output file could not be opened.
	InvalidArgument             // InvalidArgument means an option value could not be used.
	NotSupported                // NotSupported means the method has no codec for the operation.
	BadAddress                  // BadAddress means the codec rejected its input or a write failed.
	IllegalData                 // IllegalData means checksum, hash or structure validation failed.
	NotEnoughMemory             // NotEnoughMemory means a buffer could not be allocated.
)

// errno values used as exit codes, as on Linux.
const (
	codeENOENT  = 2
	codeENOMEM  = 12
	codeEFAULT  = 14
	codeENODEV  = 19
	codeEINVAL  = 22
	codeEILSEQ  = 84
	codeENOTSUP = 95
)

func (k Kind) String() string {
	switch k {
	case KindNone:
		return "None"
	case NoDevice:
		return "NoDevice"
	case NoSuchFile:
		return "NoSuchFile"
	case InvalidArgument:
		return "InvalidArgument"
	case NotSupported:
		return "NotSupported"
	case BadAddress:
		return "BadAddress"
	case IllegalData:
		return "IllegalData"
	case NotEnoughMemory:
		return "NotEnoughMemory"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}

// ExitCode returns the errno-style process exit status of the kind.
// An unclassified failure maps to 1.
func (k Kind) ExitCode() int {
	switch k {
	case NoDevice:
		return codeENODEV
	case NoSuchFile:
		return codeENOENT
	case InvalidArgument:
		return codeEINVAL
	case NotSupported:
		return codeENOTSUP
	case BadAddress:
		return codeEFAULT
	case IllegalData:
		return codeEILSEQ
	case NotEnoughMemory:
		return codeENOMEM
	default:
		return 1
	}
}

// Error is an error tagged with a Kind.
type Error struct {
	kind Kind
	err  error
}

func (e *Error) Error() string {
	return e.err.Error()
}

func (e *Error) Unwrap() error {
	return e.err
}

// Kind returns the kind the error was tagged with.
func (e *Error) Kind() Kind {
	return e.kind
}

// New creates a sentinel error of the given kind.
func New(kind Kind, msg string) error {
	return &Error{kind: kind, err: errors.New(msg)}
}

// Wrap tags err with kind. The original error stays reachable through errors.Is and errors.As.
// Wrap returns nil when err is nil.
func Wrap(kind Kind, err error) error {
	if err == nil {
		return nil
	}

	return &Error{kind: kind, err: err}
}

// KindOf returns the kind of the outermost tagged error in err's chain.
func KindOf(err error) Kind {
	if err == nil {
		return KindNone
	}

	var tagged *Error
	if errors.As(err, &tagged) {
		return tagged.kind
	}

	return KindNone
}

// ExitCode returns the process exit status for err: 0 for nil, otherwise KindOf(err).ExitCode().
func ExitCode(err error) int {
	if err == nil {
		return 0
	}

	return KindOf(err).ExitCode()
}

// Sentinel errors for the container format, the codecs and the pipelines.
var (
	// ErrEmptyInput is returned when there is no input to process.
	ErrEmptyInput = New(InvalidArgument, "empty input")
	// ErrUnknownFormat is returned when a method name does not resolve to a registered method.
	ErrUnknownFormat = New(InvalidArgument, "unknown format")
	// ErrInvalidBlockSize is returned when a block size option is not a decimal number.
	ErrInvalidBlockSize = New(InvalidArgument, "invalid block size")
	// ErrBlockSizeRequired is returned when headerless decompression has no block size.
	ErrBlockSizeRequired = New(InvalidArgument, "block size required for headerless data")

	// ErrNotSupported is returned when the method has no codec for the requested operation.
	ErrNotSupported = New(NotSupported, "operation not supported by format")

	// ErrCompressFailed is returned when the codec fails and no stored fallback is possible.
	ErrCompressFailed = New(BadAddress, "compression failed")
	// ErrNotShrunk is returned in headerless mode when the output would not be smaller than the input.
	ErrNotShrunk = New(BadAddress, "compressed data is not smaller than input")
	// ErrDecompressFailed is returned when the codec rejects a headered payload.
	ErrDecompressFailed = New(BadAddress, "decompression failed")
	// ErrWriteFailed is returned when the output sink cannot take the whole buffer.
	ErrWriteFailed = New(BadAddress, "write failed")

	// ErrInvalidHeaderSize is returned when the input is shorter than the container header.
	ErrInvalidHeaderSize = New(IllegalData, "invalid header size")
	// ErrInvalidHeader is returned when the header checksum does not match its fields.
	ErrInvalidHeader = New(IllegalData, "invalid header checksum")
	// ErrSourceHashMismatch is returned when the compressed payload does not match its stored hash.
	ErrSourceHashMismatch = New(IllegalData, "compressed payload hash mismatch")
	// ErrDestinationHashMismatch is returned when the decompressed payload does not match its stored hash.
	ErrDestinationHashMismatch = New(IllegalData, "decompressed payload hash mismatch")
	// ErrTruncatedPayload is returned when the input holds fewer payload bytes than the header declares.
	ErrTruncatedPayload = New(IllegalData, "truncated payload")
	// ErrSizeMismatch is returned when the decoded size differs from the size recorded in the header.
	ErrSizeMismatch = New(IllegalData, "decompressed size mismatch")
	// ErrCorruptData is returned when the codec rejects headerless input.
	ErrCorruptData = New(IllegalData, "illegal compressed data")

	// ErrOutputOverrun is returned by a codec when its output does not fit the destination buffer.
	ErrOutputOverrun = New(BadAddress, "output overrun")
	// ErrIncompressible is returned by a codec that refuses to emit a block larger than its input.
	ErrIncompressible = New(BadAddress, "incompressible input")
	// ErrCodecPanic is returned when a codec panics; the panic is recovered at the call site.
	ErrCodecPanic = New(BadAddress, "codec panic")

	// ErrTooLarge is returned when a buffer larger than the configured limit is requested.
	ErrTooLarge = New(NotEnoughMemory, "buffer exceeds size limit")

	// ErrNoDevice is returned when standard input or output is not available.
	ErrNoDevice = New(NoDevice, "no such device")
)
