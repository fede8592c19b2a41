package sortable

import (
	"time"

	"github.com/google/uuid"

	"github.com/matzehuels/gridsort/pkg/drag"
	"github.com/matzehuels/gridsort/pkg/errors"
	"github.com/matzehuels/gridsort/pkg/grid"
	"github.com/matzehuels/gridsort/pkg/observability"
)

// Gesture is one pointer's interaction with one item, from grab to release.
type Gesture struct {
	// ID correlates the log lines of one gesture.
	ID string

	c       *Container
	item    *drag.Controller
	started time.Time
	moves   int
	swaps   []drag.Swap
	done    bool
}

// Press starts a gesture on the topmost item under p, in content coordinates.
// If a gesture is already live it is returned instead.
func (c *Container) Press(p grid.Point) (*Gesture, bool) {
	if c.gesture != nil {
		return c.gesture, true
	}
	id, ok := c.HitTest(p)
	if !ok {
		return nil, false
	}
	g, err := c.Grab(id)
	if err != nil {
		return nil, false
	}
	return g, true
}

// Grab starts a gesture on item id. Grabbing the item that is already being
// dragged returns the live gesture; grabbing another one fails because only
// one pointer is supported.
func (c *Container) Grab(id string) (*Gesture, error) {
	if c.gesture != nil {
		if c.gesture.item.ID() == id {
			return c.gesture, nil
		}
		return nil, errors.New(errors.ErrCodeInvalidInput, "gesture already active on %q", c.gesture.item.ID())
	}
	ctrl, ok := c.items[id]
	if !ok {
		return nil, errors.New(errors.ErrCodeNotFound, "no item %q in container", id)
	}

	g := &Gesture{
		ID:      uuid.NewString(),
		c:       c,
		item:    ctrl,
		started: c.now(),
	}
	ctrl.Start()
	c.gesture = g
	observability.Grid().OnGestureStart(g.ID, id, ctrl.Order())
	return g, nil
}

// Active returns the live gesture, if any.
func (c *Container) Active() (*Gesture, bool) {
	return c.gesture, c.gesture != nil
}

// Item returns the identity being dragged.
func (g *Gesture) Item() string { return g.item.ID() }

// Live reports whether the gesture has not been released yet.
func (g *Gesture) Live() bool { return !g.done }

// Moves returns how many translation updates the gesture has received.
func (g *Gesture) Moves() int { return g.moves }

// Swaps returns the swaps committed during the gesture, oldest first.
func (g *Gesture) Swaps() []drag.Swap {
	return append([]drag.Swap(nil), g.swaps...)
}

// Move forwards the cumulative translation since the grab.
func (g *Gesture) Move(dx, dy float64) (drag.Swap, bool) {
	if g.done {
		return drag.Swap{}, false
	}
	g.moves++
	swap, ok := g.item.Move(dx, dy)
	if ok {
		g.swaps = append(g.swaps, swap)
		observability.Grid().OnSwap(g.ID, swap.ID, swap.With, swap.From, swap.To)
	}
	return swap, ok
}

// Release ends the gesture and lets the item settle. Releasing twice is a no-op.
func (g *Gesture) Release() {
	if g.done {
		return
	}
	g.done = true
	g.item.End()
	if g.c.gesture == g {
		g.c.gesture = nil
	}
	observability.Grid().OnGestureEnd(g.ID, g.item.ID(), g.item.Order(), g.moves, g.c.now().Sub(g.started))
}
