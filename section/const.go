package section

// Container header layout. All fields are little-endian uint32.
const (
	HeaderSize = 28 // fixed header size in bytes; payload starts right after it

	HeaderIDOffset        = 0x00 // byte offset of HeaderId
	FormatIDOffset        = 0x04 // byte offset of FormatId
	SourceSizeOffset      = 0x08 // byte offset of SourceSize (compressed payload length)
	DestinationSizeOffset = 0x0c // byte offset of DestinationSize (decompressed length)
	SourceHashOffset      = 0x10 // byte offset of SourceHash
	DestinationHashOffset = 0x14 // byte offset of DestinationHash
	HeaderHashOffset      = 0x18 // byte offset of HeaderHash; the CRC covers [0, HeaderHashOffset)
	PayloadOffset         = HeaderSize
)

// HeaderID is the container signature: ASCII "LZO" followed by the header size as version byte.
const HeaderID = uint32('L') | uint32('Z')<<8 | uint32('O')<<16 | uint32(HeaderSize)<<24
