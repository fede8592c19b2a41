// Package anim provides small owned animation states for interpolating a
// scalar toward a target over time.
//
// A [Scalar] is advanced explicitly with [Scalar.Advance], so it can be
// driven by any timing loop: a bubbletea frame tick, a test stepping a
// fixed frame, or a ticker goroutine. A Scalar is not safe for concurrent
// use. Each one belongs to a single owner that both advances and reads it.
//
//	var x anim.Scalar
//	x.SetImmediate(0)
//	x.AnimateTo(200, anim.DefaultConfig, func(finished bool) { ... })
//	for x.Advance(16 * time.Millisecond) {
//	    paint(x.Value())
//	}
//
// Every settle in a grid shares one [Config], so items released together
// arrive together.
package anim
