package pipeline

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/arloliu/lzostream/compress"
	"github.com/arloliu/lzostream/errs"
	"github.com/arloliu/lzostream/format"
	"github.com/arloliu/lzostream/internal/hash"
	"github.com/arloliu/lzostream/registry"
	"github.com/arloliu/lzostream/section"
)

// storeCodec writes the payload of stored containers.
var storeCodec = compress.NewStoreCodec()

// Result is the outcome of Compress.
type Result struct {
	// Data is the output: header and payload, or the bare payload when headerless.
	Data []byte
	// Format is the method recorded for the payload; format.None when stored.
	Format format.ID
	// Stored is true when the input was kept verbatim because compression did not shrink it.
	Stored bool
	// Headerless is true when Data carries no header.
	Headerless bool
	// InputSize is the length of the compressed input.
	InputSize int
}

// PayloadSize returns the length of Data without the header.
func (r Result) PayloadSize() int {
	if r.Headerless {
		return len(r.Data)
	}

	return len(r.Data) - section.HeaderSize
}

// Stats describes the compression ratio of the payload.
func (r Result) Stats() compress.CompressionStats {
	return compress.CompressionStats{
		Algorithm:      r.Format.String(),
		OriginalSize:   int64(r.InputSize),
		CompressedSize: int64(r.PayloadSize()),
		Stored:         r.Stored,
	}
}

// Compress compresses input with the configured method.
//
// Headered output that the codec cannot produce, or that is not smaller than
// input, falls back to storing input verbatim under format.None unless
// WithLimitless is given. Headerless output has no such fallback.
//
// Returns error if:
//   - input is empty (errs.ErrEmptyInput)
//   - the method is unknown or cannot compress (errs.ErrNotSupported)
//   - the output would exceed the size limit (errs.ErrTooLarge)
//   - headerless compression fails or does not shrink (errs.ErrCompressFailed, errs.ErrNotShrunk)
func Compress(input []byte, opts ...Option) (Result, error) {
	s, err := newSettings(opts)
	if err != nil {
		return Result{}, err
	}

	if len(input) == 0 {
		return Result{}, errs.ErrEmptyInput
	}

	id := s.format
	if id.IsNone() {
		id = format.Default
	}

	desc, err := s.lookup(id, false)
	if err != nil {
		return Result{}, err
	}

	logger := s.logger.WithFields(logrus.Fields{"format": desc.Name, "input": len(input)})

	bound := desc.Compressor.CompressBound(len(input))
	if err := s.checkSize(int64(section.Size(bound)), "output buffer"); err != nil {
		return Result{}, err
	}

	if s.headerless {
		return compressHeaderless(s, desc, input, bound, logger)
	}

	buf := make([]byte, section.Size(bound))
	payload := buf[section.PayloadOffset:]

	n, cerr := invoke(logger, desc.Name, func() (int, error) {
		return desc.Compressor.Compress(payload, input)
	})

	if cerr == nil && (s.limitless || n < len(input)) {
		h := section.NewHeader(id, uint32(n), uint32(len(input)), hash.Adler(payload[:n]), hash.Adler(input))
		h.Put(buf)

		logger.WithField("output", n).Debug("compressed")

		return Result{Data: buf[:section.Size(n)], Format: id, InputSize: len(input)}, nil
	}

	if cerr != nil {
		logger.WithError(cerr).Debug("codec failed, storing input")
	} else {
		logger.WithField("output", n).Debug("output not smaller than input, storing input")
	}

	if len(payload) < len(input) {
		buf = make([]byte, section.Size(len(input)))
		payload = buf[section.PayloadOffset:]
	}

	size, err := storeCodec.Compress(payload, input)
	if err != nil {
		return Result{}, fmt.Errorf("%w: %w", errs.ErrCompressFailed, err)
	}

	// the stored payload is byte-identical to the input, so one hash serves both fields
	digest := hash.Adler(input)
	h := section.NewHeader(format.None, uint32(size), uint32(size), digest, digest)
	h.Put(buf)

	return Result{Data: buf[:section.Size(size)], Format: format.None, Stored: true, InputSize: len(input)}, nil
}

func compressHeaderless(s *settings, desc *registry.Descriptor, input []byte, bound int, logger *logrus.Entry) (Result, error) {
	buf := make([]byte, bound)

	n, err := invoke(logger, desc.Name, func() (int, error) {
		return desc.Compressor.Compress(buf, input)
	})
	if err != nil {
		return Result{}, fmt.Errorf("%w: %w", errs.ErrCompressFailed, err)
	}

	if !s.limitless && n >= len(input) {
		return Result{}, fmt.Errorf("%w: %s produced %d bytes from %d", errs.ErrNotShrunk, desc.Name, n, len(input))
	}

	logger.WithField("output", n).Debug("compressed without header")

	return Result{Data: buf[:n], Format: desc.ID, Headerless: true, InputSize: len(input)}, nil
}
