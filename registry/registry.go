package registry

import (
	"fmt"
	"sync"

	"github.com/samber/lo"

	"github.com/arloliu/lzostream/errs"
	"github.com/arloliu/lzostream/format"
	"github.com/arloliu/lzostream/internal/collision"
	"github.com/arloliu/lzostream/internal/hash"
)

// ErrIDCollision is returned by New when two names derive the same identifier.
var ErrIDCollision = errs.New(errs.InvalidArgument, "method identifier collision")

// Registry is an immutable method table indexed by identifier and by
// case-folded name.
type Registry struct {
	descriptors []*Descriptor             // declaration order
	byID        map[format.ID]*Descriptor // identifier → descriptor
	byName      map[uint64]*Descriptor    // hash.NameKey(name) → descriptor
}

// New builds a registry from the given descriptors.
//
// Each descriptor's ID must equal format.MakeID(Name); a descriptor with a
// zero ID gets it filled in. Returns error if:
//   - A name is empty or listed twice
//   - Two names derive the same identifier (ErrIDCollision)
//   - Two names differ only in letter case
func New(descs []Descriptor) (*Registry, error) {
	tracker := collision.NewTracker()
	r := &Registry{
		descriptors: make([]*Descriptor, 0, len(descs)),
		byID:        make(map[format.ID]*Descriptor, len(descs)),
		byName:      make(map[uint64]*Descriptor, len(descs)),
	}

	for i := range descs {
		d := descs[i]
		if d.ID == 0 {
			d.ID = format.MakeID(d.Name)
		}
		if d.Family == "" {
			d.Family = FamilyOf(d.Name)
		}

		if err := tracker.Track(d.Name, d.ID); err != nil {
			return nil, err
		}

		key := hash.NameKey(d.Name)
		if other, exists := r.byName[key]; exists {
			return nil, fmt.Errorf("%w: %q and %q differ only in case", collision.ErrDuplicateName, other.Name, d.Name)
		}

		r.descriptors = append(r.descriptors, &d)
		r.byName[key] = &d
		if _, exists := r.byID[d.ID]; !exists {
			r.byID[d.ID] = &d
		}
	}

	if tracker.HasCollision() {
		return nil, fmt.Errorf("%w: %s", ErrIDCollision, tracker.Collisions()[0])
	}

	return r, nil
}

// Resolve maps a case-insensitive method name to its identifier.
// Unknown names resolve to format.None; callers reject them.
func (r *Registry) Resolve(name string) format.ID {
	if d, ok := r.byName[hash.NameKey(name)]; ok {
		return d.ID
	}

	return format.None
}

// Lookup returns the descriptor registered under the case-insensitive name.
func (r *Registry) Lookup(name string) (*Descriptor, bool) {
	d, ok := r.byName[hash.NameKey(name)]

	return d, ok
}

// Describe returns the descriptor for a known identifier.
func (r *Registry) Describe(id format.ID) (*Descriptor, bool) {
	d, ok := r.byID[id]

	return d, ok
}

// Descriptors returns all descriptors in declaration order.
// The descriptors are shared and must not be modified.
func (r *Registry) Descriptors() []*Descriptor {
	out := make([]*Descriptor, len(r.descriptors))
	copy(out, r.descriptors)

	return out
}

// Names returns the names of all registered methods in declaration order.
func (r *Registry) Names() []string {
	return lo.Map(r.descriptors, func(d *Descriptor, _ int) string {
		return d.Name
	})
}

// Supported returns the descriptors of methods that can both compress and decompress.
func (r *Registry) Supported() []*Descriptor {
	return lo.Filter(r.descriptors, func(d *Descriptor, _ int) bool {
		return d.Supported()
	})
}

// Families returns the distinct method families in declaration order.
func (r *Registry) Families() []string {
	return lo.Uniq(lo.Map(r.descriptors, func(d *Descriptor, _ int) string {
		return d.Family
	}))
}

// Len returns the number of registered methods.
func (r *Registry) Len() int {
	return len(r.descriptors)
}

var builtinRegistry = sync.OnceValue(func() *Registry {
	r, err := New(builtin())
	if err != nil {
		panic(fmt.Sprintf("registry: invalid built-in method table: %v", err))
	}

	return r
})

// Builtin returns the process-wide registry of declared methods.
func Builtin() *Registry {
	return builtinRegistry()
}

// Resolve maps a case-insensitive method name to its identifier in the
// built-in registry, or to format.None if the name is unknown.
func Resolve(name string) format.ID {
	return Builtin().Resolve(name)
}

// Describe returns the built-in descriptor for an identifier.
func Describe(id format.ID) (*Descriptor, bool) {
	return Builtin().Describe(id)
}

// Names returns the names of all built-in methods.
func Names() []string {
	return Builtin().Names()
}

// Default returns the descriptor of the default method, format.Default.
func Default() *Descriptor {
	d, _ := Builtin().Describe(format.Default)

	return d
}
