package compress

import (
	"fmt"
	"sync"

	"github.com/klauspost/compress/zstd"

	"github.com/arloliu/lzostream/errs"
)

// zstdDecoderPool pools zstd decoders for reuse.
// The klauspost decoder runs without allocations after a warmup, so it is kept around.
var zstdDecoderPool = sync.Pool{
	New: func() any {
		decoder, err := zstd.NewReader(nil,
			zstd.WithDecoderConcurrency(1),
			zstd.WithDecoderLowmem(false),
		)
		if err != nil {
			// This should never happen with valid options
			panic(fmt.Sprintf("failed to create zstd decoder for pool: %v", err))
		}

		return decoder
	},
}

func newZstdEncoderPool(level zstd.EncoderLevel) *sync.Pool {
	return &sync.Pool{
		New: func() any {
			encoder, err := zstd.NewWriter(nil,
				zstd.WithEncoderLevel(level),
				zstd.WithEncoderConcurrency(1),
				zstd.WithEncoderCRC(false), // the container carries its own hashes
			)
			if err != nil {
				panic(fmt.Sprintf("failed to create zstd encoder for pool: %v", err))
			}

			return encoder
		},
	}
}

var (
	zstdDefaultPool = newZstdEncoderPool(zstd.SpeedDefault)
	zstdBestPool    = newZstdEncoderPool(zstd.SpeedBestCompression)
)

// ZstdCompressor provides Zstandard compression with pooled encoders.
//
// Every Compress call emits one complete zstd frame; the frame records its
// content size, and Decompress refuses frames that would overrun dst.
type ZstdCompressor struct {
	pool *sync.Pool
}

var _ Codec = (*ZstdCompressor)(nil)

// NewZstdCompressor creates a new Zstd compressor at zstd.SpeedDefault.
//
// Example:
//
//	c := NewZstdCompressor()
//	dst := make([]byte, c.CompressBound(len(data)))
//	n, err := c.Compress(dst, data)
func NewZstdCompressor() ZstdCompressor {
	return ZstdCompressor{pool: zstdDefaultPool}
}

// NewZstdBestCompressor creates a Zstd compressor at zstd.SpeedBestCompression.
func NewZstdBestCompressor() ZstdCompressor {
	return ZstdCompressor{pool: zstdBestPool}
}

// Compress compresses src into dst as a single zstd frame.
func (c ZstdCompressor) Compress(dst, src []byte) (int, error) {
	pool := c.pool
	if pool == nil {
		pool = zstdDefaultPool
	}

	encoder, _ := pool.Get().(*zstd.Encoder)
	defer pool.Put(encoder)

	// EncodeAll is stateless, safe to use with a pooled encoder
	out := encoder.EncodeAll(src, dst[:0])

	return fitInto(dst, out, "zstd")
}

// CompressBound returns the larger of the zstd and LZO bounds.
func (c ZstdCompressor) CompressBound(n int) int {
	// ZSTD_COMPRESSBOUND plus room for the frame header
	bound := n + n>>8
	if n < 128<<10 {
		bound += (128<<10 - n) >> 11
	}

	return atLeastLZOBound(bound+zstdFrameOverhead, n)
}

const zstdFrameOverhead = 18

// Decompress decompresses a zstd frame from src into dst.
func (c ZstdCompressor) Decompress(dst, src []byte) (int, error) {
	var frame zstd.Header
	if err := frame.Decode(src); err == nil && frame.HasFCS && frame.FrameContentSize > uint64(len(dst)) {
		return 0, fmt.Errorf("zstd: %w: %d > %d", errs.ErrOutputOverrun, frame.FrameContentSize, len(dst))
	}

	decoder, _ := zstdDecoderPool.Get().(*zstd.Decoder)
	defer zstdDecoderPool.Put(decoder)

	// Even if this call fails, the decoder can be reused for next call
	out, err := decoder.DecodeAll(src, dst[:0])
	if err != nil {
		return 0, fmt.Errorf("zstd decompression failed: %w", err)
	}

	return fitInto(dst, out, "zstd")
}
