package drag

import (
	"time"

	"github.com/matzehuels/gridsort/pkg/anim"
	"github.com/matzehuels/gridsort/pkg/errors"
	"github.com/matzehuels/gridsort/pkg/grid"
	"github.com/matzehuels/gridsort/pkg/order"
)

// State is the lifecycle state of a controller.
type State int

const (
	Resting State = iota
	Dragging
	Settling
)

func (s State) String() string {
	switch s {
	case Resting:
		return "resting"
	case Dragging:
		return "dragging"
	case Settling:
		return "settling"
	default:
		return "unknown"
	}
}

// Visual parameters of a lifted item.
const (
	ActiveScale = 0.9
	RestScale   = 1.0
	ActiveZ     = 100
	RestZ       = 0
)

// Swap describes a committed exchange of two items' orders.
type Swap struct {
	ID   string // the dragged item
	With string // the item it displaced
	From int    // dragged item's order before the swap
	To   int    // dragged item's order after the swap
}

// Option configures a Controller.
type Option func(*Controller)

// WithAnimation sets the settle timing profile.
func WithAnimation(cfg anim.Config) Option {
	return func(c *Controller) { c.cfg = cfg }
}

// WithScroll gives the controller read access to the container's scroll offset.
func WithScroll(fn func() float64) Option {
	return func(c *Controller) { c.scroll = fn }
}

// WithSettled registers a callback run when the item comes to rest.
func WithSettled(fn func(id string, order int)) Option {
	return func(c *Controller) { c.settled = fn }
}

// Controller drives one item of the grid.
type Controller struct {
	id    string
	store *order.Store
	geom  grid.Geometry
	cfg   anim.Config

	scroll  func() float64
	settled func(id string, order int)

	x, y     anim.Scalar
	state    State
	elevated bool
	origin   grid.Point

	// settleGen invalidates completion callbacks of superseded settles.
	settleGen uint64
	pending   int

	unsubscribe func()
}

// New creates the controller for id, placed at its rest position, and
// subscribes it to order changes of id.
func New(id string, store *order.Store, geom grid.Geometry, opts ...Option) (*Controller, error) {
	if err := geom.Validate(); err != nil {
		return nil, err
	}
	o, err := store.Order(id)
	if err != nil {
		return nil, err
	}

	c := &Controller{
		id:    id,
		store: store,
		geom:  geom,
		cfg:   anim.DefaultConfig,
	}
	for _, opt := range opts {
		opt(c)
	}

	rest := geom.Position(o)
	c.x.SetImmediate(rest.X)
	c.y.SetImmediate(rest.Y)
	c.unsubscribe = store.Subscribe(id, c.orderChanged)
	return c, nil
}

// ID returns the item identity.
func (c *Controller) ID() string { return c.id }

// State returns the current state.
func (c *Controller) State() State { return c.state }

// Elevated reports whether the item is lifted: from gesture start until the
// release settle completes.
func (c *Controller) Elevated() bool { return c.elevated }

// Scale returns the paint scale of the item.
func (c *Controller) Scale() float64 {
	if c.elevated {
		return ActiveScale
	}
	return RestScale
}

// ZIndex returns the stacking level of the item.
func (c *Controller) ZIndex() int {
	if c.elevated {
		return ActiveZ
	}
	return RestZ
}

// Offset returns the live pixel offset.
func (c *Controller) Offset() grid.Point {
	return grid.Point{X: c.x.Value(), Y: c.y.Value()}
}

// Order returns the item's current order index. A missing identity breaks
// the lifecycle invariant and panics with an INVARIANT_VIOLATION error.
func (c *Controller) Order() int {
	o, err := c.store.Order(c.id)
	if err != nil {
		panic(errors.Wrap(errors.ErrCodeInvariant, err, "controller %q lost its order", c.id))
	}
	return o
}

// Rest returns the position the item settles to for its current order.
func (c *Controller) Rest() grid.Point {
	return c.geom.Position(c.Order())
}

// ScrollY returns the container scroll offset, or 0 when none was wired.
func (c *Controller) ScrollY() float64 {
	if c.scroll == nil {
		return 0
	}
	return c.scroll()
}

// Animating reports whether either axis is still moving.
func (c *Controller) Animating() bool {
	return c.x.Animating() || c.y.Animating()
}

// Start begins a gesture. The current live offset, mid-settle or not, becomes
// the reference origin, and any running settle stops where it is. Start
// while already dragging is ignored.
func (c *Controller) Start() {
	if c.state == Dragging {
		return
	}
	c.settleGen++
	c.pending = 0
	c.x.SetImmediate(c.x.Value())
	c.y.SetImmediate(c.y.Value())
	c.origin = c.Offset()
	c.state = Dragging
	c.elevated = true
}

// Move applies the cumulative translation (dx, dy) since [Controller.Start].
// If the item now sits over a different slot, it swaps with the slot's
// occupant and returns the swap. Out-of-range positions clamp to the first
// or last slot. Move outside a gesture is ignored.
func (c *Controller) Move(dx, dy float64) (Swap, bool) {
	if c.state != Dragging {
		return Swap{}, false
	}
	x := c.origin.X + dx
	y := c.origin.Y + dy
	c.x.SetImmediate(x)
	c.y.SetImmediate(y)

	m := c.store.Load()
	candidate := grid.Clamp(c.geom.Order(x, y), m.Len())
	current := c.Order()
	if candidate == current {
		return Swap{}, false
	}
	other, ok := m.IDAt(candidate)
	if !ok || other == c.id {
		return Swap{}, false
	}
	if err := c.store.Swap(c.id, other); err != nil {
		panic(errors.Wrap(errors.ErrCodeInvariant, err, "swap %q with %q", c.id, other))
	}
	return Swap{ID: c.id, With: other, From: current, To: candidate}, true
}

// End releases the gesture and settles the item onto the rest position of
// its (possibly new) order. End outside a gesture is ignored.
func (c *Controller) End() {
	if c.state != Dragging {
		return
	}
	c.settle()
}

// Tick advances both axes by dt and reports whether the item is still moving.
func (c *Controller) Tick(dt time.Duration) bool {
	c.x.Advance(dt)
	c.y.Advance(dt)
	return c.Animating()
}

// Close stops observing the order store.
func (c *Controller) Close() {
	if c.unsubscribe != nil {
		c.unsubscribe()
		c.unsubscribe = nil
	}
}

// orderChanged reacts to another item displacing this one. While dragging,
// the pointer owns the offset and the new rest position is used on release.
func (c *Controller) orderChanged(int) {
	if c.state == Dragging {
		return
	}
	c.settle()
}

func (c *Controller) settle() {
	c.settleGen++
	gen := c.settleGen
	c.state = Settling
	c.pending = 2

	done := func(finished bool) {
		if !finished || gen != c.settleGen {
			return
		}
		c.pending--
		if c.pending > 0 {
			return
		}
		c.state = Resting
		c.elevated = false
		if c.settled != nil {
			c.settled(c.id, c.Order())
		}
	}

	rest := c.Rest()
	c.x.AnimateTo(rest.X, c.cfg, done)
	c.y.AnimateTo(rest.Y, c.cfg, done)
}
