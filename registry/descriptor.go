package registry

import (
	"strings"

	"github.com/arloliu/lzostream/compress"
	"github.com/arloliu/lzostream/format"
)

// Descriptor describes one compression method.
//
// A nil Compressor or Decompressor means the method is known (its
// identifier can appear in headers) but the operation is not supported.
type Descriptor struct {
	ID           format.ID
	Name         string
	Family       string
	Compressor   compress.Compressor
	Decompressor compress.Decompressor

	// Scratch memory figures as documented by liblzo2 for 64-bit targets.
	// Codecs allocate their own working memory; these are informational.
	MemCompress   int
	MemDecompress int
}

// CanCompress reports whether the method has a compressor.
func (d *Descriptor) CanCompress() bool {
	return d != nil && d.Compressor != nil
}

// CanDecompress reports whether the method has a decompressor.
func (d *Descriptor) CanDecompress() bool {
	return d != nil && d.Decompressor != nil
}

// Supported reports whether the method can both compress and decompress.
func (d *Descriptor) Supported() bool {
	return d.CanCompress() && d.CanDecompress()
}

// FamilyOf returns the family part of a method name: everything before the
// first underscore ("Lzo1x" for "Lzo1x_1_15").
func FamilyOf(name string) string {
	family, _, _ := strings.Cut(name, "_")

	return family
}

func newDescriptor(name string, c compress.Codec, memCompress, memDecompress int) Descriptor {
	d := Descriptor{
		ID:            format.MakeID(name),
		Name:          name,
		Family:        FamilyOf(name),
		MemCompress:   memCompress,
		MemDecompress: memDecompress,
	}
	if c != nil {
		d.Compressor, d.Decompressor = c, c
	}

	return d
}
