// Package registry maps method names and identifiers to their descriptors.
//
// The built-in table is constructed on first use and never modified
// afterwards, so every lookup is safe for concurrent use:
//
//	id := registry.Resolve("lzo1x_999")   // case-insensitive, format.None if unknown
//	desc, ok := registry.Describe(id)
//	if !ok || !desc.CanCompress() {
//	    return errs.ErrNotSupported
//	}
//
// Building a table verifies that no two names derive the same identifier.
// The built-in table panics on such a collision, since it can only come from
// a programming error in the declared name set.
package registry
