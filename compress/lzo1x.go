package compress

import (
	"bytes"
	"fmt"

	lzo "github.com/rasky/go-lzo"

	"github.com/arloliu/lzostream/errs"
)

// LZO1X compresses with the LZO1X bitstream.
//
// Every LZO1X compressor produces data for the same lzo1x_decompress
// decoder, so all the Lzo1x methods share one Decompress.
type LZO1X struct {
	best bool // true: LZO1X-999, false: LZO1X-1
}

var _ Codec = (*LZO1X)(nil)

// NewLZO1X1 creates the fast LZO1X-1 compressor.
func NewLZO1X1() LZO1X {
	return LZO1X{}
}

// NewLZO1X999 creates the slow, high-ratio LZO1X-999 compressor.
func NewLZO1X999() LZO1X {
	return LZO1X{best: true}
}

// Compress compresses src into dst.
func (c LZO1X) Compress(dst, src []byte) (int, error) {
	var out []byte
	if c.best {
		out = lzo.Compress1X999(src)
	} else {
		out = lzo.Compress1X(src)
	}

	if len(out) > len(dst) {
		return 0, fmt.Errorf("lzo1x: %w: %d > %d", errs.ErrOutputOverrun, len(out), len(dst))
	}

	return copy(dst, out), nil
}

// CompressBound returns LZOBound(n).
func (c LZO1X) CompressBound(n int) int {
	return LZOBound(n)
}

// Decompress decompresses src into dst.
//
// go-lzo takes len(dst) only as a preallocation hint and grows its output
// as the stream demands, so the overrun is detected after decoding. Peak
// memory is then bounded by the LZO1X expansion of src, not by len(dst).
func (c LZO1X) Decompress(dst, src []byte) (int, error) {
	out, err := lzo.Decompress1X(bytes.NewReader(src), len(src), len(dst))
	if err != nil {
		return 0, fmt.Errorf("lzo1x: %w", err)
	}

	if len(out) > len(dst) {
		return 0, fmt.Errorf("lzo1x: %w: %d > %d", errs.ErrOutputOverrun, len(out), len(dst))
	}

	return copy(dst, out), nil
}
