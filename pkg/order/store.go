package order

import (
	"sync"
	"sync/atomic"

	"github.com/matzehuels/gridsort/pkg/errors"
)

// Listener receives the new order index of the identity it subscribed to.
type Listener func(order int)

// Store is the shared reference to the current [Map].
type Store struct {
	current atomic.Pointer[Map]
	version atomic.Uint64

	mu      sync.Mutex
	nextSub uint64
	subs    map[string]map[uint64]Listener
}

// NewStore creates a Store publishing m as version 0.
func NewStore(m *Map) *Store {
	s := &Store{subs: make(map[string]map[uint64]Listener)}
	s.current.Store(m)
	return s
}

// Load returns the current Map. The returned value is never mutated.
func (s *Store) Load() *Map {
	return s.current.Load()
}

// Version returns the number of maps published since construction.
func (s *Store) Version() uint64 {
	return s.version.Load()
}

// Order returns the current order of id.
func (s *Store) Order(id string) (int, error) {
	return s.Load().Order(id)
}

// Subscribe registers fn to run whenever the order of id changes.
// The returned function removes the subscription and is safe to call twice.
func (s *Store) Subscribe(id string, fn Listener) (cancel func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextSub++
	key := s.nextSub
	if s.subs[id] == nil {
		s.subs[id] = make(map[uint64]Listener)
	}
	s.subs[id][key] = fn

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.subs[id], key)
		if len(s.subs[id]) == 0 {
			delete(s.subs, id)
		}
	}
}

// Swap exchanges the orders of a and b, publishes the resulting Map and then
// notifies the subscribers of a and b with their new orders. No other
// subscriber is called.
func (s *Store) Swap(a, b string) error {
	cur := s.Load()
	next, err := cur.Swap(a, b)
	if err != nil {
		return err
	}
	if next == cur {
		return nil
	}
	if !s.current.CompareAndSwap(cur, next) {
		return errors.New(errors.ErrCodeInvariant, "concurrent order map write while swapping %q and %q", a, b)
	}
	s.version.Add(1)

	oa, _ := next.Order(a)
	ob, _ := next.Order(b)
	s.notify(a, oa)
	s.notify(b, ob)
	return nil
}

func (s *Store) notify(id string, order int) {
	s.mu.Lock()
	listeners := make([]Listener, 0, len(s.subs[id]))
	for _, fn := range s.subs[id] {
		listeners = append(listeners, fn)
	}
	s.mu.Unlock()

	for _, fn := range listeners {
		fn(order)
	}
}
