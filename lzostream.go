// Package lzostream compresses byte streams into a small self-describing
// container and restores them.
//
// A container is a 28-byte header followed by the payload. The header records
// the compression method, the compressed and decompressed sizes, an Adler hash
// of each and a CRC-32 of the header itself, so corrupted or foreign data is
// rejected before and after decoding.
//
// # Core Features
//
//   - Method identifiers derived from method names, stable across versions
//   - LZO1X codecs plus LZ4, S2, Snappy, Zstandard and DEFLATE
//   - Stored fallback when compression does not shrink the input
//   - Headerless mode for raw codec output
//   - Header inspection without decompression
//
// # Basic Usage
//
//	import "github.com/arloliu/lzostream"
//
//	packed, err := lzostream.Compress(data)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	data, err = lzostream.Decompress(packed)
//
// Choosing a method by name:
//
//	packed, err := lzostream.CompressWith("lzo1x_1", data)
//
// # Package Structure
//
// This package provides convenient top-level wrappers around the pipeline
// package. For headerless data, size limits or custom registries, use the
// pipeline package directly.
package lzostream

import (
	"fmt"

	"github.com/arloliu/lzostream/errs"
	"github.com/arloliu/lzostream/format"
	"github.com/arloliu/lzostream/pipeline"
	"github.com/arloliu/lzostream/registry"
)

// Version is the tool version printed in diagnostics.
const Version = "1.0"

// Title prefixes every diagnostic of the command-line tool.
const Title = "LZOStream v" + Version

// FormatID resolves a case-insensitive method name.
//
// Returns errs.ErrUnknownFormat for a name that is not registered.
// "None" resolves to format.None.
func FormatID(name string) (format.ID, error) {
	desc, ok := registry.Builtin().Lookup(name)
	if !ok {
		return format.None, fmt.Errorf("%w: %s", errs.ErrUnknownFormat, name)
	}

	return desc.ID, nil
}

// Formats returns the names of the methods that can compress and decompress.
func Formats() []string {
	supported := registry.Builtin().Supported()
	names := make([]string, 0, len(supported))
	for _, d := range supported {
		names = append(names, d.Name)
	}

	return names
}

// Compress compresses data with the default method into a container.
//
// Data that does not shrink is stored verbatim; the container then records
// format.None.
func Compress(data []byte) ([]byte, error) {
	res, err := pipeline.Compress(data)
	if err != nil {
		return nil, err
	}

	return res.Data, nil
}

// CompressWith compresses data into a container with the named method.
//
// Example:
//
//	packed, err := lzostream.CompressWith("Zstd", data)
func CompressWith(name string, data []byte) ([]byte, error) {
	id, err := FormatID(name)
	if err != nil {
		return nil, err
	}

	res, err := pipeline.Compress(data, pipeline.WithFormat(id))
	if err != nil {
		return nil, err
	}

	return res.Data, nil
}

// Decompress restores the data of a container after checking its header and hashes.
func Decompress(data []byte) ([]byte, error) {
	return pipeline.Decompress(data)
}

// Inspect reports the header fields of a container and their validity.
func Inspect(data []byte) (pipeline.Report, error) {
	return pipeline.Inspect(data)
}
