package collision

import (
	"fmt"

	"github.com/arloliu/lzostream/errs"
	"github.com/arloliu/lzostream/format"
)

var (
	// ErrEmptyName is returned when a method is tracked without a name.
	ErrEmptyName = errs.New(errs.InvalidArgument, "empty method name")
	// ErrDuplicateName is returned when the same method name is tracked twice.
	ErrDuplicateName = errs.New(errs.InvalidArgument, "duplicate method name")
)

// Collision records two different names that hash to the same identifier.
type Collision struct {
	ID     format.ID
	First  string
	Second string
}

func (c Collision) String() string {
	return fmt.Sprintf("%q and %q share identifier 0x%08x", c.First, c.Second, uint32(c.ID))
}

// Tracker tracks method names and the identifiers derived from them and
// detects identifier collisions while a method table is being built.
type Tracker struct {
	names      map[format.ID]string // identifier → first name seen
	collisions []Collision
}

// NewTracker creates a new collision tracker.
func NewTracker() *Tracker {
	return &Tracker{
		names: make(map[format.ID]string),
	}
}

// Track records a method name with its identifier.
// Returns error if:
// - The name is empty (ErrEmptyName)
// - The same name is tracked twice (ErrDuplicateName)
//
// A different name with an already tracked identifier is not an error here;
// it is recorded and reported by HasCollision and Collisions.
func (t *Tracker) Track(name string, id format.ID) error {
	if name == "" {
		return ErrEmptyName
	}

	if existing, exists := t.names[id]; exists {
		if existing == name {
			return fmt.Errorf("%w: %s", ErrDuplicateName, name)
		}
		t.collisions = append(t.collisions, Collision{ID: id, First: existing, Second: name})
	} else {
		t.names[id] = name
	}

	return nil
}

// HasCollision returns true if a collision has been detected.
func (t *Tracker) HasCollision() bool {
	return len(t.collisions) > 0
}

// Collisions returns the detected collisions in detection order.
func (t *Tracker) Collisions() []Collision {
	return t.collisions
}
