package compress

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"sync"

	"github.com/klauspost/compress/flate"

	"github.com/arloliu/lzostream/errs"
)

// sliceWriter writes into a fixed buffer and fails once it is full.
type sliceWriter struct {
	buf []byte
	n   int
}

func (w *sliceWriter) Write(p []byte) (int, error) {
	if len(p) > len(w.buf)-w.n {
		return 0, errs.ErrOutputOverrun
	}

	w.n += copy(w.buf[w.n:], p)

	return len(p), nil
}

func newFlateWriterPool(level int) *sync.Pool {
	return &sync.Pool{
		New: func() any {
			w, err := flate.NewWriter(io.Discard, level)
			if err != nil {
				panic(fmt.Sprintf("failed to create flate writer for pool: %v", err))
			}

			return w
		},
	}
}

var (
	flateDefaultPool = newFlateWriterPool(flate.DefaultCompression)
	flateBestPool    = newFlateWriterPool(flate.BestCompression)
)

// DeflateCompressor produces raw DEFLATE streams (RFC 1951).
type DeflateCompressor struct {
	pool *sync.Pool
}

var _ Codec = (*DeflateCompressor)(nil)

// NewDeflateCompressor creates a DEFLATE compressor at flate.DefaultCompression.
func NewDeflateCompressor() DeflateCompressor {
	return DeflateCompressor{pool: flateDefaultPool}
}

// NewDeflateBestCompressor creates a DEFLATE compressor at flate.BestCompression.
func NewDeflateBestCompressor() DeflateCompressor {
	return DeflateCompressor{pool: flateBestPool}
}

// Compress compresses src into dst.
func (c DeflateCompressor) Compress(dst, src []byte) (int, error) {
	pool := c.pool
	if pool == nil {
		pool = flateDefaultPool
	}

	fw, _ := pool.Get().(*flate.Writer)
	defer pool.Put(fw)

	out := &sliceWriter{buf: dst}
	fw.Reset(out)

	if _, err := fw.Write(src); err != nil {
		return 0, fmt.Errorf("deflate: %w", err)
	}
	if err := fw.Close(); err != nil {
		return 0, fmt.Errorf("deflate: %w", err)
	}

	return out.n, nil
}

// CompressBound returns the larger of the stored-block DEFLATE bound and the LZO bound.
func (c DeflateCompressor) CompressBound(n int) int {
	// 5 bytes per stored block of at most 65535 bytes, plus the final block marker
	return atLeastLZOBound(n+5*(n/65535+1)+16, n)
}

// Decompress decompresses a DEFLATE stream from src into dst.
func (c DeflateCompressor) Decompress(dst, src []byte) (int, error) {
	fr := flate.NewReader(bytes.NewReader(src))
	defer fr.Close()

	n := 0
	for n < len(dst) {
		m, err := fr.Read(dst[n:])
		n += m
		if errors.Is(err, io.EOF) {
			return n, nil
		}
		if err != nil {
			return 0, fmt.Errorf("deflate decompress: %w", err)
		}
	}

	// dst is full; anything left in the stream would overrun it
	var probe [1]byte
	m, err := fr.Read(probe[:])
	if m > 0 {
		return 0, fmt.Errorf("deflate: %w", errs.ErrOutputOverrun)
	}
	if err != nil && !errors.Is(err, io.EOF) {
		return 0, fmt.Errorf("deflate decompress: %w", err)
	}

	return n, nil
}
