// Package observability provides hooks for logging and metrics on the
// reorder engine.
//
// The engine packages never import a logging backend. They report events
// to whatever hooks the application registered at startup; the defaults do
// nothing. The CLI registers a charmbracelet/log implementation that writes
// swaps and settles at debug level.
//
// # Usage
//
// Register hooks at application startup:
//
//	func main() {
//	    observability.SetGridHooks(&myGridHooks{})
//	    observability.SetRenderHooks(&myRenderHooks{})
//	    // ... run application
//	}
//
// Libraries call hooks to emit events:
//
//	observability.Grid().OnSwap(gestureID, "a", "f", 0, 5)
package observability

import (
	"sync"
	"time"
)

// =============================================================================
// Grid Hooks
// =============================================================================

// GridHooks receives events from gestures on a sortable container.
type GridHooks interface {
	// OnGestureStart records a pointer grabbing item at order.
	OnGestureStart(gestureID, item string, order int)

	// OnSwap records a committed swap: item moved from -> to, and other took from.
	OnSwap(gestureID, item, other string, from, to int)

	// OnGestureEnd records the release of item at its final order.
	OnGestureEnd(gestureID, item string, order, moves int, duration time.Duration)

	// OnSettle records an item finishing its animation at rest on order.
	OnSettle(item string, order int)
}

// =============================================================================
// Render Hooks
// =============================================================================

// RenderHooks receives events from layout export.
type RenderHooks interface {
	OnRenderStart(format string, items int)
	OnRenderComplete(format string, size int, duration time.Duration, err error)
}

// =============================================================================
// No-op Implementations
// =============================================================================

// NoopGridHooks is a no-op implementation of GridHooks.
type NoopGridHooks struct{}

func (NoopGridHooks) OnGestureStart(string, string, int)                   {}
func (NoopGridHooks) OnSwap(string, string, string, int, int)              {}
func (NoopGridHooks) OnGestureEnd(string, string, int, int, time.Duration) {}
func (NoopGridHooks) OnSettle(string, int)                                 {}

// NoopRenderHooks is a no-op implementation of RenderHooks.
type NoopRenderHooks struct{}

func (NoopRenderHooks) OnRenderStart(string, int)                          {}
func (NoopRenderHooks) OnRenderComplete(string, int, time.Duration, error) {}

// =============================================================================
// Global Hook Registry
// =============================================================================

var (
	gridHooks   GridHooks   = NoopGridHooks{}
	renderHooks RenderHooks = NoopRenderHooks{}
	hooksMu     sync.RWMutex
)

// SetGridHooks registers custom grid hooks.
// This should be called once at application startup before any gestures.
func SetGridHooks(h GridHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		gridHooks = h
	}
}

// SetRenderHooks registers custom render hooks.
func SetRenderHooks(h RenderHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		renderHooks = h
	}
}

// Grid returns the registered grid hooks.
func Grid() GridHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return gridHooks
}

// Render returns the registered render hooks.
func Render() RenderHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return renderHooks
}

// Reset restores all hooks to their no-op defaults.
// This is primarily useful for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	gridHooks = NoopGridHooks{}
	renderHooks = NoopRenderHooks{}
}
