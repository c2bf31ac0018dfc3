package compress

import (
	"errors"
	"fmt"
	"sync"

	"github.com/pierrec/lz4/v4"

	"github.com/arloliu/lzostream/errs"
)

// lz4CompressorPool pools lz4.Compressor instances for reuse.
// The lz4.Compressor maintains internal state that benefits from reuse.
var lz4CompressorPool = sync.Pool{
	New: func() any {
		return &lz4.Compressor{}
	},
}

// LZ4Compressor compresses LZ4 blocks, with the fast or the HC encoder.
type LZ4Compressor struct {
	level lz4.CompressionLevel // 0 selects the fast encoder
}

var _ Codec = (*LZ4Compressor)(nil)

// NewLZ4Compressor creates a new fast LZ4 compressor.
//
// Returns:
//   - LZ4Compressor: New LZ4 compressor instance
func NewLZ4Compressor() LZ4Compressor {
	return LZ4Compressor{}
}

// NewLZ4HCCompressor creates an LZ4 high-compression compressor at the given level.
func NewLZ4HCCompressor(level lz4.CompressionLevel) LZ4Compressor {
	return LZ4Compressor{level: level}
}

// Compress compresses src into dst as one LZ4 block.
//
// Returns:
//   - int: Compressed size
//   - error: errs.ErrIncompressible when the encoder reports the data as incompressible
func (c LZ4Compressor) Compress(dst, src []byte) (int, error) {
	var (
		n   int
		err error
	)

	if c.level == 0 {
		lc, _ := lz4CompressorPool.Get().(*lz4.Compressor)
		defer lz4CompressorPool.Put(lc)

		n, err = lc.CompressBlock(src, dst)
	} else {
		n, err = lz4.CompressBlockHC(src, dst, c.level, nil, nil)
	}

	if err != nil {
		if errors.Is(err, lz4.ErrInvalidSourceShortBuffer) {
			return 0, fmt.Errorf("lz4: %w", errs.ErrOutputOverrun)
		}

		return 0, fmt.Errorf("lz4 compress: %w", err)
	}

	// CompressBlock returns 0 when it determines the data is incompressible.
	if n == 0 && len(src) > 0 {
		return 0, errs.ErrIncompressible
	}

	return n, nil
}

// CompressBound returns the larger of the LZ4 and LZO bounds.
func (c LZ4Compressor) CompressBound(n int) int {
	return atLeastLZOBound(lz4.CompressBlockBound(n), n)
}

// Decompress decompresses one LZ4 block from src into dst.
//
// Returns:
//   - int: Decompressed size
//   - error: errs.ErrOutputOverrun if dst is too small, or other decompression errors
func (c LZ4Compressor) Decompress(dst, src []byte) (int, error) {
	n, err := lz4.UncompressBlock(src, dst)
	if err != nil {
		if errors.Is(err, lz4.ErrInvalidSourceShortBuffer) {
			return 0, fmt.Errorf("lz4: %w", errs.ErrOutputOverrun)
		}

		return 0, fmt.Errorf("lz4 decompress: %w", err)
	}

	return n, nil
}
