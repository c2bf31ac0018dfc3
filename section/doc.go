// Package section defines the binary container header of lzostream.
//
// Every headered payload starts with a fixed 28-byte Header. The header
// carries what decompression needs without outside hints: the method
// identifier, both payload sizes and both payload hashes. It validates itself
// through a CRC-32 over its first 24 bytes.
//
// # Header Format
//
// All fields are little-endian uint32:
//
//	Bytes  | Field           | Description
//	-------|-----------------|------------------------------------------
//	0-3    | HeaderId        | 'L' | 'Z'<<8 | 'O'<<16 | 28<<24
//	4-7    | FormatId        | method identifier, see format.MakeID
//	8-11   | SourceSize      | payload length following the header
//	12-15  | DestinationSize | decompressed length
//	16-19  | SourceHash      | Adler-32 (seed 0) of the payload
//	20-23  | DestinationHash | Adler-32 (seed 0) of the decompressed data
//	24-27  | HeaderHash      | CRC-32/IEEE of bytes 0-23
//
// A header whose FormatId is format.None describes a stored payload: the
// input kept verbatim because compression did not shrink it. Both sizes and
// both hashes are then equal.
//
// # Usage
//
// Writing a header in front of a payload:
//
//	h := section.NewHeader(format.Lzo1x_999, uint32(len(payload)), uint32(len(input)),
//	    payloadHash, inputHash)
//	out := h.AppendTo(make([]byte, 0, section.Size(len(payload))))
//	out = append(out, payload...)
//
// Reading it back:
//
//	h, err := section.ParseHeader(data, true)
//	if err != nil {
//	    // short input or checksum mismatch
//	}
//	payload, err := h.Payload(data)
//
// Header values are plain structs and safe to copy.
package section
