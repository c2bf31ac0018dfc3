package compress

import (
	"bytes"
	"math/rand/v2"
	"testing"

	"github.com/pierrec/lz4/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arloliu/lzostream/errs"
)

func allCodecs() map[string]Codec {
	return map[string]Codec{
		"lzo1x_1":   NewLZO1X1(),
		"lzo1x_999": NewLZO1X999(),
		"lz4":       NewLZ4Compressor(),
		"lz4hc":     NewLZ4HCCompressor(lz4.Level9),
		"s2":        NewS2Compressor(),
		"s2_better": NewS2BetterCompressor(),
		"snappy":    NewSnappyCompressor(),
		"zstd":      NewZstdCompressor(),
		"zstd_best": NewZstdBestCompressor(),
		"deflate":   NewDeflateCompressor(),
		"deflate_9": NewDeflateBestCompressor(),
		"store":     NewStoreCodec(),
	}
}

func randomBytes(n int) []byte {
	r := rand.New(rand.NewPCG(1, 2))
	data := make([]byte, n)
	for i := range data {
		data[i] = byte(r.UintN(256))
	}

	return data
}

func compressWith(t *testing.T, c Codec, src []byte) []byte {
	t.Helper()

	dst := make([]byte, c.CompressBound(len(src)))
	n, err := c.Compress(dst, src)
	require.NoError(t, err)
	require.LessOrEqual(t, n, len(dst))

	return dst[:n]
}

func TestLZOBound(t *testing.T) {
	assert.Equal(t, 67, LZOBound(0))
	assert.Equal(t, 1000+62+67, LZOBound(1000))
	assert.Equal(t, 1<<20+1<<16+67, LZOBound(1<<20))
}

func TestCodecs_RoundTrip(t *testing.T) {
	inputs := map[string][]byte{
		"repeated":    bytes.Repeat([]byte("A"), 1000),
		"pattern":     generateBenchmarkData(64*1024, "compressible"),
		"semi":        generateBenchmarkData(16*1024, "semi_compressible"),
		"single_byte": {0x42},
	}

	for name, c := range allCodecs() {
		for inputName, src := range inputs {
			t.Run(name+"/"+inputName, func(t *testing.T) {
				compressed := compressWith(t, c, src)

				out := make([]byte, len(src))
				n, err := c.Decompress(out, compressed)
				require.NoError(t, err)
				require.Equal(t, len(src), n)
				require.Equal(t, src, out)
			})
		}
	}
}

func TestCodecs_ShrinkRepeatedData(t *testing.T) {
	src := bytes.Repeat([]byte("A"), 1000)

	for name, c := range allCodecs() {
		if name == "store" {
			continue
		}

		t.Run(name, func(t *testing.T) {
			compressed := compressWith(t, c, src)
			require.Less(t, len(compressed), len(src))
		})
	}
}

func TestCodecs_CompressBoundCoversLZOBound(t *testing.T) {
	for name, c := range allCodecs() {
		if name == "store" {
			continue
		}

		t.Run(name, func(t *testing.T) {
			for _, n := range []int{0, 1, 16, 1000, 1 << 16, 1 << 20} {
				require.GreaterOrEqual(t, c.CompressBound(n), LZOBound(n), "n=%d", n)
			}
		})
	}
}

func TestCodecs_RandomDataFitsBound(t *testing.T) {
	src := randomBytes(4096)

	for name, c := range allCodecs() {
		t.Run(name, func(t *testing.T) {
			dst := make([]byte, c.CompressBound(len(src)))
			n, err := c.Compress(dst, src)
			if err != nil {
				// LZ4 may refuse incompressible input outright
				require.ErrorIs(t, err, errs.ErrIncompressible)
				return
			}

			out := make([]byte, len(src))
			m, err := c.Decompress(out, dst[:n])
			require.NoError(t, err)
			require.Equal(t, src, out[:m])
		})
	}
}

func TestCodecs_DecompressOverrun(t *testing.T) {
	src := bytes.Repeat([]byte("overrun "), 512)

	for name, c := range allCodecs() {
		t.Run(name, func(t *testing.T) {
			compressed := compressWith(t, c, src)

			out := make([]byte, len(src)/2)
			_, err := c.Decompress(out, compressed)
			require.Error(t, err)

			switch name {
			case "lz4", "lz4hc", "s2", "s2_better", "snappy", "deflate", "deflate_9", "store":
				require.ErrorIs(t, err, errs.ErrOutputOverrun)
			}
		})
	}
}

func TestCodecs_DecompressGarbage(t *testing.T) {
	garbage := []byte{0xff, 0xfe, 0xfd, 0xfc, 0xfb, 0xfa, 0xf9, 0xf8}

	for name, c := range allCodecs() {
		if name == "store" {
			continue
		}

		t.Run(name, func(t *testing.T) {
			out := make([]byte, 1024)
			n, err := c.Decompress(out, garbage)
			if err == nil {
				// a decoder may accept a prefix, but never the original bytes
				require.NotEqual(t, garbage, out[:n])
			}
		})
	}
}

func TestCodecs_CompressOverrun(t *testing.T) {
	src := randomBytes(1024)

	for name, c := range map[string]Codec{
		"lzo1x_1": NewLZO1X1(),
		"snappy":  NewSnappyCompressor(),
		"s2":      NewS2Compressor(),
		"zstd":    NewZstdCompressor(),
		"deflate": NewDeflateCompressor(),
		"store":   NewStoreCodec(),
	} {
		t.Run(name, func(t *testing.T) {
			dst := make([]byte, 8)
			_, err := c.Compress(dst, src)
			require.ErrorIs(t, err, errs.ErrOutputOverrun)
		})
	}
}

func TestStoreCodec(t *testing.T) {
	c := NewStoreCodec()
	src := []byte("stored verbatim")

	require.Equal(t, len(src), c.CompressBound(len(src)))

	dst := make([]byte, len(src))
	n, err := c.Compress(dst, src)
	require.NoError(t, err)
	require.Equal(t, src, dst[:n])

	out := make([]byte, len(src))
	n, err = c.Decompress(out, dst)
	require.NoError(t, err)
	require.Equal(t, src, out[:n])
}

func TestSliceWriter(t *testing.T) {
	w := &sliceWriter{buf: make([]byte, 4)}

	n, err := w.Write([]byte("ab"))
	require.NoError(t, err)
	require.Equal(t, 2, n)

	_, err = w.Write([]byte("cde"))
	require.ErrorIs(t, err, errs.ErrOutputOverrun)

	n, err = w.Write([]byte("cd"))
	require.NoError(t, err)
	require.Equal(t, 2, n)
	require.Equal(t, []byte("abcd"), w.buf)
}

func TestCompressionStats(t *testing.T) {
	tests := []struct {
		name    string
		stats   CompressionStats
		ratio   float64
		savings float64
	}{
		{"half", CompressionStats{OriginalSize: 1000, CompressedSize: 500}, 0.5, 50.0},
		{"expansion", CompressionStats{OriginalSize: 100, CompressedSize: 125}, 1.25, -25.0},
		{"empty", CompressionStats{}, 0.0, 100.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.ratio, tt.stats.CompressionRatio(), 1e-9)
			assert.InDelta(t, tt.savings, tt.stats.SpaceSavings(), 1e-9)
		})
	}
}

func TestLZ4Compressor_Incompressible(t *testing.T) {
	src := randomBytes(4096)

	// below CompressBlockBound the encoder gives up on data without matches
	dst := make([]byte, len(src))
	_, err := NewLZ4Compressor().Compress(dst, src)
	require.ErrorIs(t, err, errs.ErrIncompressible)
}

func TestLZO1X_DecompressOverrunLeavesDst(t *testing.T) {
	src := bytes.Repeat([]byte("expand "), 4096)

	for _, c := range []LZO1X{NewLZO1X1(), NewLZO1X999()} {
		compressed := compressWith(t, c, src)
		require.Less(t, len(compressed), len(src)/8)

		dst := bytes.Repeat([]byte{0xaa}, 64)
		n, err := c.Decompress(dst, compressed)
		require.ErrorIs(t, err, errs.ErrOutputOverrun)
		assert.Zero(t, n)
		assert.Equal(t, bytes.Repeat([]byte{0xaa}, 64), dst)

		dst = make([]byte, len(src))
		n, err = c.Decompress(dst, compressed)
		require.NoError(t, err)
		assert.Equal(t, src, dst[:n])
	}
}
