package registry

import (
	"github.com/pierrec/lz4/v4"

	"github.com/arloliu/lzostream/compress"
)

// liblzo2 scratch sizes on 64-bit targets.
const (
	memLzo1     = 8192 * 8
	memLzo199   = 65536 * 8
	memLzo1a    = 8192 * 8
	memLzo1a99  = 65536 * 8
	memLzo1b    = 16384 * 8
	memLzo1b99  = 65536 * 8
	memLzo1b999 = 3 * 65536 * 8
	memLzo1c    = 16384 * 8
	memLzo1c99  = 65536 * 8
	memLzo1c999 = 3 * 65536 * 8
	memLzo1f    = 16384 * 8
	memLzo1f999 = 5 * 16384 * 2
	memLzo1x1   = 16384 * 8
	memLzo1x11  = 2048 * 8
	memLzo1x12  = 4096 * 8
	memLzo1x15  = 32768 * 8
	memLzo1x999 = 14 * 16384 * 2
	memLzo1y1   = 16384 * 8
	memLzo1y999 = 14 * 16384 * 2
	memLzo1z999 = 14 * 16384 * 2
	memLzo2a999 = 8 * 16384 * 8
)

// builtin returns the descriptors of every declared method, None first.
//
// Bare family names use the family's best-ratio compressor, Lzo1x included.
func builtin() []Descriptor {
	var (
		lzo1x1   = compress.NewLZO1X1()
		lzo1x999 = compress.NewLZO1X999()
	)

	return []Descriptor{
		newDescriptor("None", nil, 0, 0),

		newDescriptor("Lzo1", nil, memLzo1, 0),
		newDescriptor("Lzo1_99", nil, memLzo199, 0),
		newDescriptor("Lzo1a", nil, memLzo1a, 0),
		newDescriptor("Lzo1a_99", nil, memLzo1a99, 0),

		newDescriptor("Lzo1b", nil, memLzo1b999, 0),
		newDescriptor("Lzo1b_1", nil, memLzo1b, 0),
		newDescriptor("Lzo1b_2", nil, memLzo1b, 0),
		newDescriptor("Lzo1b_3", nil, memLzo1b, 0),
		newDescriptor("Lzo1b_4", nil, memLzo1b, 0),
		newDescriptor("Lzo1b_5", nil, memLzo1b, 0),
		newDescriptor("Lzo1b_6", nil, memLzo1b, 0),
		newDescriptor("Lzo1b_7", nil, memLzo1b, 0),
		newDescriptor("Lzo1b_8", nil, memLzo1b, 0),
		newDescriptor("Lzo1b_9", nil, memLzo1b, 0),
		newDescriptor("Lzo1b_99", nil, memLzo1b99, 0),
		newDescriptor("Lzo1b_999", nil, memLzo1b999, 0),

		newDescriptor("Lzo1c", nil, memLzo1c999, 0),
		newDescriptor("Lzo1c_1", nil, memLzo1c, 0),
		newDescriptor("Lzo1c_2", nil, memLzo1c, 0),
		newDescriptor("Lzo1c_3", nil, memLzo1c, 0),
		newDescriptor("Lzo1c_4", nil, memLzo1c, 0),
		newDescriptor("Lzo1c_5", nil, memLzo1c, 0),
		newDescriptor("Lzo1c_6", nil, memLzo1c, 0),
		newDescriptor("Lzo1c_7", nil, memLzo1c, 0),
		newDescriptor("Lzo1c_8", nil, memLzo1c, 0),
		newDescriptor("Lzo1c_9", nil, memLzo1c, 0),
		newDescriptor("Lzo1c_99", nil, memLzo1c99, 0),
		newDescriptor("Lzo1c_999", nil, memLzo1c999, 0),

		newDescriptor("Lzo1f", nil, memLzo1f999, 0),
		newDescriptor("Lzo1f_1", nil, memLzo1f, 0),
		newDescriptor("Lzo1f_999", nil, memLzo1f999, 0),

		newDescriptor("Lzo1x", lzo1x999, memLzo1x999, 0),
		newDescriptor("Lzo1x_1", lzo1x1, memLzo1x1, 0),
		newDescriptor("Lzo1x_1_11", lzo1x1, memLzo1x11, 0),
		newDescriptor("Lzo1x_1_12", lzo1x1, memLzo1x12, 0),
		newDescriptor("Lzo1x_1_15", lzo1x1, memLzo1x15, 0),
		newDescriptor("Lzo1x_999", lzo1x999, memLzo1x999, 0),

		newDescriptor("Lzo1y", nil, memLzo1y999, 0),
		newDescriptor("Lzo1y_1", nil, memLzo1y1, 0),
		newDescriptor("Lzo1y_999", nil, memLzo1y999, 0),
		newDescriptor("Lzo1z", nil, memLzo1z999, 0),
		newDescriptor("Lzo1z_999", nil, memLzo1z999, 0),
		newDescriptor("Lzo2a", nil, memLzo2a999, 0),
		newDescriptor("Lzo2a_999", nil, memLzo2a999, 0),

		newDescriptor("Lz4", compress.NewLZ4Compressor(), 0, 0),
		newDescriptor("Lz4hc", compress.NewLZ4HCCompressor(lz4.Level9), 0, 0),
		newDescriptor("S2", compress.NewS2Compressor(), 0, 0),
		newDescriptor("S2_better", compress.NewS2BetterCompressor(), 0, 0),
		newDescriptor("Snappy", compress.NewSnappyCompressor(), 0, 0),
		newDescriptor("Zstd", compress.NewZstdCompressor(), 0, 0),
		newDescriptor("Zstd_best", compress.NewZstdBestCompressor(), 0, 0),
		newDescriptor("Deflate", compress.NewDeflateCompressor(), 0, 0),
		newDescriptor("Deflate_9", compress.NewDeflateBestCompressor(), 0, 0),
	}
}
