package compress

import "github.com/arloliu/lzostream/errs"

// StoreCodec copies data without compressing it. pipeline.Compress writes
// the payload of stored containers with it.
type StoreCodec struct{}

var _ Codec = (*StoreCodec)(nil)

// NewStoreCodec creates a new store codec.
func NewStoreCodec() StoreCodec {
	return StoreCodec{}
}

// Compress copies src into dst.
//
// Returns:
//   - int: len(src)
//   - error: errs.ErrOutputOverrun if dst is shorter than src
func (c StoreCodec) Compress(dst, src []byte) (int, error) {
	if len(dst) < len(src) {
		return 0, errs.ErrOutputOverrun
	}

	return copy(dst, src), nil
}

// CompressBound returns n: storing never expands the data.
func (c StoreCodec) CompressBound(n int) int {
	return n
}

// Decompress copies src into dst.
func (c StoreCodec) Decompress(dst, src []byte) (int, error) {
	if len(dst) < len(src) {
		return 0, errs.ErrOutputOverrun
	}

	return copy(dst, src), nil
}
