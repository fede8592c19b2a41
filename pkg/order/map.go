package order

import (
	"slices"

	"github.com/matzehuels/gridsort/pkg/errors"
)

// Map is an immutable assignment of identities to order indices.
// The zero value is an empty map.
type Map struct {
	byID  map[string]int
	slots []string // slots[i] is the identity holding order i
}

// Init assigns order i to ids[i]. The caller's iteration order is the
// initial layout. Empty or duplicate identities are rejected.
func Init(ids []string) (*Map, error) {
	if err := errors.ValidateIdentities(ids); err != nil {
		return nil, err
	}
	m := &Map{
		byID:  make(map[string]int, len(ids)),
		slots: slices.Clone(ids),
	}
	for i, id := range ids {
		m.byID[id] = i
	}
	return m, nil
}

// Len returns the number of identities.
func (m *Map) Len() int {
	return len(m.slots)
}

// Order returns the order index of id, or a NOT_FOUND error.
func (m *Map) Order(id string) (int, error) {
	i, ok := m.byID[id]
	if !ok {
		return 0, errors.New(errors.ErrCodeNotFound, "identity %q is not in the order map", id)
	}
	return i, nil
}

// Has reports whether id is part of the map.
func (m *Map) Has(id string) bool {
	_, ok := m.byID[id]
	return ok
}

// IDAt returns the identity currently holding order, if any.
func (m *Map) IDAt(order int) (string, bool) {
	if order < 0 || order >= len(m.slots) {
		return "", false
	}
	return m.slots[order], true
}

// IDs returns the identities sorted by order index.
func (m *Map) IDs() []string {
	return slices.Clone(m.slots)
}

// Swap returns a new Map with the orders of a and b exchanged.
// Swapping an identity with itself returns the receiver unchanged.
func (m *Map) Swap(a, b string) (*Map, error) {
	ia, err := m.Order(a)
	if err != nil {
		return nil, err
	}
	ib, err := m.Order(b)
	if err != nil {
		return nil, err
	}
	if a == b {
		return m, nil
	}

	next := &Map{
		byID:  make(map[string]int, len(m.byID)),
		slots: slices.Clone(m.slots),
	}
	for id, i := range m.byID {
		next.byID[id] = i
	}
	next.byID[a], next.byID[b] = ib, ia
	next.slots[ia], next.slots[ib] = b, a
	return next, nil
}

// Equal reports whether both maps assign the same orders to the same identities.
func (m *Map) Equal(other *Map) bool {
	if other == nil {
		return false
	}
	return slices.Equal(m.slots, other.slots)
}

// Validate checks the bijection invariant: every index in [0, N) is assigned
// to exactly one identity and the two internal views agree.
func (m *Map) Validate() error {
	if len(m.byID) != len(m.slots) {
		return errors.New(errors.ErrCodeInvariant, "order map has %d identities but %d slots", len(m.byID), len(m.slots))
	}
	for i, id := range m.slots {
		got, ok := m.byID[id]
		if !ok {
			return errors.New(errors.ErrCodeInvariant, "slot %d holds unknown identity %q", i, id)
		}
		if got != i {
			return errors.New(errors.ErrCodeInvariant, "identity %q is at slot %d but maps to %d", id, i, got)
		}
	}
	return nil
}

// Snapshot returns a copy of the identity to order assignment.
func (m *Map) Snapshot() map[string]int {
	out := make(map[string]int, len(m.byID))
	for id, i := range m.byID {
		out[id] = i
	}
	return out
}
