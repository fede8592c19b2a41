// Package sortable provides the container of a draggable, reorderable grid.
//
// A [Container] is mounted once from a fixed list of item identities. It
// owns the shared [order.Store] and one [drag.Controller] per item, sizes
// the scrollable content, and forwards its scroll offset to every controller.
//
//	c, err := sortable.New([]string{"a", "b", "c", "d", "e", "f"}, sortable.DefaultOptions())
//	g, _ := c.Grab("a")
//	g.Move(250, 120) // a swaps with f
//	g.Release()
//	for c.Tick(16 * time.Millisecond) {
//	    paint(c.Snapshot())
//	}
//
// The item list cannot change after mount. Adding or removing items would
// need a resize protocol for the order map, and there isn't one.
//
// A Container is driven from one goroutine. It assumes a single pointer:
// at most one [Gesture] is live at a time.
package sortable
