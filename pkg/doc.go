// Package pkg holds the gridsort libraries.
//
// # Overview
//
// Gridsort keeps N identities in a fixed-column grid and reorders them by
// drag gestures. The libraries are layered bottom-up:
//
//  1. [grid] - slot geometry: order to position and back
//  2. [order] - the order map bijection and the store that publishes it
//  3. [anim] - time-driven scalar animations and easing curves
//  4. [drag] - the per-item gesture state machine
//  5. [sortable] - the container that owns the store and every item
//
// Around the engine sit [config] (TOML settings), [scenario] (scripted
// gesture replays), [render] (JSON, DOT and SVG export), [observability]
// (event hooks) and [errors] (coded errors).
//
// # Data flow
//
//	pointer translation
//	         ↓
//	    [drag] Controller.Move (candidate slot, clamped)
//	         ↓
//	    [order] Store.Swap (publish, then notify both items)
//	         ↓
//	    displaced item settles with [anim]
//	         ↓
//	    [sortable] Container.Snapshot → terminal or [render]
//
// # Quick start
//
//	c, err := sortable.New([]string{"a", "b", "c", "d", "e", "f"}, sortable.DefaultOptions())
//	g, _ := c.Grab("a")
//	g.Move(250, 120) // past the last slot, clamps onto f
//	g.Release()
//	for c.Tick(16 * time.Millisecond) {
//	}
//	fmt.Println(c.Order()) // [f b c d e a]
package pkg
