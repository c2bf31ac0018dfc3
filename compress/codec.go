package compress

// Compressor compresses a whole block into a caller-provided buffer.
//
// The pipeline sizes dst with CompressBound, so an implementation only has
// to report ErrOutputOverrun when its library produced more than len(dst)
// bytes. It never retains src or dst after returning.
type Compressor interface {
	// Compress compresses src into dst and returns the number of bytes written.
	//
	// Error conditions:
	//   - errs.ErrOutputOverrun if the compressed block does not fit in dst
	//   - errs.ErrIncompressible if the library refuses incompressible input
	//   - library errors, wrapped with the codec name
	Compress(dst, src []byte) (int, error)

	// CompressBound returns the worst-case compressed size of n input bytes.
	CompressBound(n int) int
}

// Decompressor decompresses a whole block into a caller-provided buffer.
//
// len(dst) is a hard limit: when the decoded block would be longer the
// implementation fails with errs.ErrOutputOverrun instead of truncating.
// The limit bounds what is returned, not the scratch memory a library may
// use while decoding; LZO1X decodes into its own growing buffer first.
//
// Example:
//
//	dst := make([]byte, header.DestinationSize)
//	n, err := decompressor.Decompress(dst, payload)
//	if err != nil {
//	    return fmt.Errorf("decompression failed: %w", err)
//	}
//	dst = dst[:n]
type Decompressor interface {
	// Decompress decompresses src into dst and returns the number of bytes written.
	Decompress(dst, src []byte) (int, error)
}

// Codec combines both compression and decompression capabilities.
type Codec interface {
	Compressor
	Decompressor
}

// LZOBound returns the output allocation liblzo documents for n input bytes.
// It is the floor for every codec's CompressBound.
func LZOBound(n int) int {
	return n + n/16 + 64 + 3
}

func atLeastLZOBound(bound, n int) int {
	if lzo := LZOBound(n); bound < lzo {
		return lzo
	}

	return bound
}

// CompressionStats describes the outcome of a compression.
type CompressionStats struct {
	// Algorithm is the name of the method the payload is recorded under.
	Algorithm string

	// OriginalSize is the size of input data before compression
	OriginalSize int64

	// CompressedSize is the size of data after compression, excluding any header
	CompressedSize int64

	// Stored is true when the payload was kept verbatim because compression did not shrink it.
	Stored bool
}

// CompressionRatio returns the compression ratio (compressed size / original size).
//
// Values less than 1.0 indicate successful compression.
//
// Returns:
//   - float64: Compression ratio (0.0 if original size is zero)
func (s CompressionStats) CompressionRatio() float64 {
	if s.OriginalSize == 0 {
		return 0.0
	}

	return float64(s.CompressedSize) / float64(s.OriginalSize)
}

// SpaceSavings returns the space savings as a percentage.
//
// Returns:
//   - float64: Space savings percentage (negative for expansion)
func (s CompressionStats) SpaceSavings() float64 {
	return (1.0 - s.CompressionRatio()) * 100.0
}
