// Package pipeline implements the compress, decompress and inspect operations
// on the lzostream container format.
//
// A headered container is a section.Header followed by the payload. The
// header records the method, both sizes and an Adler hash of each side, so a
// container can be decompressed without any other information:
//
//	res, err := pipeline.Compress(data, pipeline.WithFormat(format.Lzo1x_1))
//	if err != nil {
//	    return err
//	}
//	out, err := pipeline.Decompress(res.Data)
//
// Headerless output is the bare codec output. The caller keeps the method and
// the original size and passes them back with WithFormat and WithBlockSize.
//
// Every call owns its buffers; the only shared state is the read-only
// registry, so calls may run concurrently.
package pipeline
