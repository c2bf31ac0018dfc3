package compress

import (
	"fmt"

	"github.com/klauspost/compress/s2"
	"github.com/klauspost/compress/snappy"

	"github.com/arloliu/lzostream/errs"
)

// S2Compressor compresses S2 blocks.
type S2Compressor struct {
	better bool
}

var _ Codec = (*S2Compressor)(nil)

// NewS2Compressor creates a new S2 compressor with the default encoder.
func NewS2Compressor() S2Compressor {
	return S2Compressor{}
}

// NewS2BetterCompressor creates an S2 compressor using EncodeBetter.
func NewS2BetterCompressor() S2Compressor {
	return S2Compressor{better: true}
}

// Compress compresses src into dst using S2 compression.
func (c S2Compressor) Compress(dst, src []byte) (int, error) {
	var out []byte
	if c.better {
		out = s2.EncodeBetter(dst, src)
	} else {
		out = s2.Encode(dst, src)
	}

	return fitInto(dst, out, "s2")
}

// CompressBound returns the larger of the S2 and LZO bounds.
func (c S2Compressor) CompressBound(n int) int {
	return atLeastLZOBound(s2.MaxEncodedLen(n), n)
}

// Decompress decompresses src into dst using S2 decompression.
func (c S2Compressor) Decompress(dst, src []byte) (int, error) {
	n, err := s2.DecodedLen(src)
	if err != nil {
		return 0, fmt.Errorf("s2 decompress: %w", err)
	}
	if n > len(dst) {
		return 0, fmt.Errorf("s2: %w: %d > %d", errs.ErrOutputOverrun, n, len(dst))
	}

	out, err := s2.Decode(dst, src)
	if err != nil {
		return 0, fmt.Errorf("s2 decompress: %w", err)
	}

	return fitInto(dst, out, "s2")
}

// SnappyCompressor compresses Snappy blocks.
type SnappyCompressor struct{}

var _ Codec = (*SnappyCompressor)(nil)

// NewSnappyCompressor creates a new Snappy compressor.
func NewSnappyCompressor() SnappyCompressor {
	return SnappyCompressor{}
}

// Compress compresses src into dst using Snappy compression.
func (c SnappyCompressor) Compress(dst, src []byte) (int, error) {
	return fitInto(dst, snappy.Encode(dst, src), "snappy")
}

// CompressBound returns the larger of the Snappy and LZO bounds.
func (c SnappyCompressor) CompressBound(n int) int {
	return atLeastLZOBound(snappy.MaxEncodedLen(n), n)
}

// Decompress decompresses src into dst using Snappy decompression.
func (c SnappyCompressor) Decompress(dst, src []byte) (int, error) {
	n, err := snappy.DecodedLen(src)
	if err != nil {
		return 0, fmt.Errorf("snappy decompress: %w", err)
	}
	if n > len(dst) {
		return 0, fmt.Errorf("snappy: %w: %d > %d", errs.ErrOutputOverrun, n, len(dst))
	}

	out, err := snappy.Decode(dst, src)
	if err != nil {
		return 0, fmt.Errorf("snappy decompress: %w", err)
	}

	return fitInto(dst, out, "snappy")
}

// fitInto moves a library result into dst. Libraries in this package write
// into dst when it is large enough and allocate otherwise.
func fitInto(dst, out []byte, name string) (int, error) {
	if len(out) > len(dst) {
		return 0, fmt.Errorf("%s: %w: %d > %d", name, errs.ErrOutputOverrun, len(out), len(dst))
	}

	return copy(dst, out), nil
}
