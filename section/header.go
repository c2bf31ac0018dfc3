package section

import (
	"encoding/binary"
	"fmt"

	"github.com/arloliu/lzostream/errs"
	"github.com/arloliu/lzostream/format"
	"github.com/arloliu/lzostream/internal/hash"
)

// Header is the fixed-size record placed in front of a compressed payload.
type Header struct {
	// HeaderID is the container signature, HeaderID for headers written by this package.
	HeaderID uint32 // byte offset 0-3
	// FormatID identifies the method the payload was compressed with; format.None means stored.
	FormatID format.ID // byte offset 4-7
	// SourceSize is the length of the compressed payload following the header.
	SourceSize uint32 // byte offset 8-11
	// DestinationSize is the length of the payload once decompressed.
	DestinationSize uint32 // byte offset 12-15
	// SourceHash is the Adler hash of the compressed payload.
	SourceHash uint32 // byte offset 16-19
	// DestinationHash is the Adler hash of the decompressed payload.
	DestinationHash uint32 // byte offset 20-23
	// HeaderHash is the CRC-32 over bytes 0-23.
	HeaderHash uint32 // byte offset 24-27
}

// NewHeader creates an initialized header. See Initialize.
func NewHeader(formatID format.ID, sourceSize, destinationSize, sourceHash, destinationHash uint32) Header {
	var h Header
	h.Initialize(formatID, sourceSize, destinationSize, sourceHash, destinationHash)

	return h
}

// Initialize fills every field and computes the header checksum over them.
func (h *Header) Initialize(formatID format.ID, sourceSize, destinationSize, sourceHash, destinationHash uint32) {
	h.HeaderID = HeaderID
	h.FormatID = formatID
	h.SourceSize = sourceSize
	h.DestinationSize = destinationSize
	h.SourceHash = sourceHash
	h.DestinationHash = destinationHash
	h.HeaderHash = h.Checksum()
}

// Checksum recomputes the CRC-32 of the first six fields as they are laid out on the wire.
func (h *Header) Checksum() uint32 {
	var b [HeaderSize]byte
	h.put(b[:])

	return hash.CRC32(b[:HeaderHashOffset])
}

// Valid reports whether the stored header checksum matches the other fields.
func (h *Header) Valid() bool {
	return h.HeaderHash == h.Checksum()
}

// MagicValid reports whether HeaderID carries the expected signature.
func (h *Header) MagicValid() bool {
	return h.HeaderID == HeaderID
}

// Stored reports whether the payload is kept verbatim.
func (h *Header) Stored() bool {
	return h.FormatID.IsNone()
}

// Parse parses the header from the start of data without validating it.
//
// Parameters:
//   - data: Byte slice starting with a header (at least 28 bytes, extra bytes are ignored)
//
// Returns:
//   - error: ErrInvalidHeaderSize if data is shorter than HeaderSize
func (h *Header) Parse(data []byte) error {
	if len(data) < HeaderSize {
		return errs.ErrInvalidHeaderSize
	}

	engine := binary.LittleEndian
	h.HeaderID = engine.Uint32(data[HeaderIDOffset:])
	h.FormatID = format.ID(engine.Uint32(data[FormatIDOffset:]))
	h.SourceSize = engine.Uint32(data[SourceSizeOffset:])
	h.DestinationSize = engine.Uint32(data[DestinationSizeOffset:])
	h.SourceHash = engine.Uint32(data[SourceHashOffset:])
	h.DestinationHash = engine.Uint32(data[DestinationHashOffset:])
	h.HeaderHash = engine.Uint32(data[HeaderHashOffset:])

	return nil
}

// Bytes serializes the header into a new HeaderSize byte slice.
func (h *Header) Bytes() []byte {
	b := make([]byte, HeaderSize)
	h.put(b)

	return b
}

// AppendTo appends the serialized header to dst.
func (h *Header) AppendTo(dst []byte) []byte {
	var b [HeaderSize]byte
	h.put(b[:])

	return append(dst, b[:]...)
}

// Put serializes the header into the first HeaderSize bytes of dst.
// It panics if dst is shorter than HeaderSize.
func (h *Header) Put(dst []byte) {
	h.put(dst[:HeaderSize])
}

// Payload returns the SourceSize payload bytes that follow the header in data.
//
// Returns:
//   - []byte: the payload, aliasing data
//   - error: ErrTruncatedPayload if data is shorter than Size(SourceSize)
func (h *Header) Payload(data []byte) ([]byte, error) {
	end := Size(int(h.SourceSize))
	if len(data) < end {
		return nil, fmt.Errorf("%w: need %d bytes, have %d", errs.ErrTruncatedPayload, end, len(data))
	}

	return data[PayloadOffset:end], nil
}

func (h *Header) String() string {
	return fmt.Sprintf("Header{format=%s source=%d destination=%d valid=%t}",
		h.FormatID, h.SourceSize, h.DestinationSize, h.Valid())
}

func (h *Header) put(b []byte) {
	engine := binary.LittleEndian
	engine.PutUint32(b[HeaderIDOffset:], h.HeaderID)
	engine.PutUint32(b[FormatIDOffset:], uint32(h.FormatID))
	engine.PutUint32(b[SourceSizeOffset:], h.SourceSize)
	engine.PutUint32(b[DestinationSizeOffset:], h.DestinationSize)
	engine.PutUint32(b[SourceHashOffset:], h.SourceHash)
	engine.PutUint32(b[DestinationHashOffset:], h.DestinationHash)
	engine.PutUint32(b[HeaderHashOffset:], h.HeaderHash)
}

// ParseHeader parses a Header from the start of data.
//
// Parameters:
//   - data: Byte slice starting with a header (must be at least 28 bytes)
//   - verify: also require the header checksum to match
//
// Returns:
//   - Header: Parsed header struct
//   - error: ErrInvalidHeaderSize, or ErrInvalidHeader when verify is set and the checksum differs
func ParseHeader(data []byte, verify bool) (Header, error) {
	var h Header
	if err := h.Parse(data); err != nil {
		return Header{}, err
	}

	if verify && !h.Valid() {
		return Header{}, errs.ErrInvalidHeader
	}

	return h, nil
}

// Size returns the size of a header followed by extra payload bytes.
func Size(extra int) int {
	return HeaderSize + extra
}
