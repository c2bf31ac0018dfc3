// Package compress provides the block codecs behind the lzostream methods.
//
// Every codec works on whole blocks held in memory. The caller owns both
// buffers: it sizes dst for compression with CompressBound, and for
// decompression with the size recorded in the container header.
//
// # Architecture
//
// The package defines three core interfaces:
//
//	type Compressor interface {
//	    Compress(dst, src []byte) (int, error)
//	    CompressBound(n int) int
//	}
//
//	type Decompressor interface {
//	    Decompress(dst, src []byte) (int, error)
//	}
//
//	type Codec interface {
//	    Compressor
//	    Decompressor
//	}
//
// Scratch memory belongs to the codec. Codecs with expensive state (LZ4,
// Zstd, DEFLATE) keep it in sync.Pool instances, so every codec value is
// safe for concurrent use.
//
// # Supported Algorithms
//
// **LZO1X** (rasky/go-lzo)
//
//	c := compress.NewLZO1X999()
//	dst := make([]byte, c.CompressBound(len(data)))
//	n, err := c.Compress(dst, data)
//
// LZO1X-1 favors speed, LZO1X-999 favors ratio. Both produce the same bitstream.
//
// **LZ4** (pierrec/lz4) with the fast and the HC encoder.
//
// **S2 and Snappy** (klauspost/compress)
//
// **Zstandard** (klauspost/compress/zstd) with pooled encoders and decoders.
//
// **DEFLATE** (klauspost/compress/flate), raw RFC 1951 streams.
//
// **Store** copies the data. It backs the stored fallback of the pipeline.
//
// # Bounds
//
// CompressBound never returns less than LZOBound(n) = n + n/16 + 64 + 3, the
// allocation the container format has always used for compressed output.
//
// # Error Handling
//
// A decompressor never writes past len(dst): output that would not fit is
// reported as errs.ErrOutputOverrun. Library errors are wrapped with the
// codec name.
package compress
