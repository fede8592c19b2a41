// Package order holds the mapping from item identity to grid slot.
//
// # Map
//
// A [Map] is an immutable bijection between a fixed set of identities and the
// indices [0, N). It is built once with [Init] and never edited in place.
// [Map.Swap] returns a new Map that differs from the receiver in exactly two
// entries, so anyone still holding the old Map keeps a consistent view.
//
//	m, _ := order.Init([]string{"a", "b", "c"})
//	m2, _ := m.Swap("a", "c")
//	m.Order("a")  // 0
//	m2.Order("a") // 2
//
// # Store
//
// A [Store] is the shared, mutable reference the drag controllers have in
// common. It publishes each new Map with an atomic pointer swap and bumps a
// version counter. After publishing it synchronously notifies the
// subscribers of the two identities that moved. A subscriber that reads the
// Store from its callback therefore sees the post-swap map.
//
// Writes are expected to come from a single goroutine (the gesture event
// loop). Reads through [Store.Load] are safe from any goroutine.
package order
