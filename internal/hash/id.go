package hash

import (
	"strings"

	"github.com/cespare/xxhash/v2"
)

// NameKey computes the xxHash64 of the case-folded name.
// Names that differ only in letter case share a key.
func NameKey(name string) uint64 {
	return xxhash.Sum64String(strings.ToLower(name))
}
