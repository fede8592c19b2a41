package sortable

import (
	"slices"
	"sort"
	"time"

	"github.com/matzehuels/gridsort/pkg/anim"
	"github.com/matzehuels/gridsort/pkg/drag"
	"github.com/matzehuels/gridsort/pkg/errors"
	"github.com/matzehuels/gridsort/pkg/grid"
	"github.com/matzehuels/gridsort/pkg/observability"
	"github.com/matzehuels/gridsort/pkg/order"
)

// Default container values.
const (
	DefaultColumns  = 3
	DefaultItemSize = 100.0
)

// Viewport describes the visible area the container scrolls within.
type Viewport struct {
	Height      float64
	InsetTop    float64
	InsetBottom float64
}

// Usable returns the height left once the insets are removed.
func (v Viewport) Usable() float64 {
	return max(0, v.Height-v.InsetTop-v.InsetBottom)
}

// Options configures a Container. All items share these values.
type Options struct {
	Geometry  grid.Geometry
	Animation anim.Config
	Viewport  Viewport
}

// DefaultOptions returns a three-column grid of 100px items with the
// default settle animation and no viewport.
func DefaultOptions() Options {
	return Options{
		Geometry:  grid.Geometry{Columns: DefaultColumns, Size: DefaultItemSize},
		Animation: anim.DefaultConfig,
	}
}

// ItemState is a paint-ready snapshot of one item.
type ItemState struct {
	ID    string
	Order int
	X, Y  float64
	Rest  grid.Point
	Scale float64
	Z     int
	State drag.State
}

// Container owns the order map and the per-item controllers.
type Container struct {
	opts    Options
	ids     []string
	store   *order.Store
	items   map[string]*drag.Controller
	scrollY float64
	gesture *Gesture
	now     func() time.Time
}

// New mounts a container for ids in the supplied order.
func New(ids []string, opts Options) (*Container, error) {
	if err := opts.Geometry.Validate(); err != nil {
		return nil, err
	}
	if opts.Viewport.Height < 0 || opts.Viewport.InsetTop < 0 || opts.Viewport.InsetBottom < 0 {
		return nil, errors.New(errors.ErrCodeInvalidConfig, "viewport dimensions cannot be negative")
	}
	m, err := order.Init(ids)
	if err != nil {
		return nil, err
	}

	c := &Container{
		opts:  opts,
		ids:   slices.Clone(ids),
		store: order.NewStore(m),
		items: make(map[string]*drag.Controller, len(ids)),
		now:   time.Now,
	}
	for _, id := range ids {
		ctrl, err := drag.New(id, c.store, opts.Geometry,
			drag.WithAnimation(opts.Animation),
			drag.WithScroll(c.ScrollY),
			drag.WithSettled(func(id string, o int) { observability.Grid().OnSettle(id, o) }),
		)
		if err != nil {
			return nil, err
		}
		c.items[id] = ctrl
	}
	return c, nil
}

// Len returns the number of items.
func (c *Container) Len() int { return len(c.ids) }

// IDs returns the identities in mount order.
func (c *Container) IDs() []string { return slices.Clone(c.ids) }

// Order returns the identities sorted by their current order.
func (c *Container) Order() []string { return c.store.Load().IDs() }

// Map returns the current order map.
func (c *Container) Map() *order.Map { return c.store.Load() }

// Version returns how many swaps have been committed.
func (c *Container) Version() uint64 { return c.store.Version() }

// Options returns the options the container was mounted with.
func (c *Container) Options() Options { return c.opts }

// Item returns the controller for id.
func (c *Container) Item(id string) (*drag.Controller, bool) {
	ctrl, ok := c.items[id]
	return ctrl, ok
}

// ContentHeight returns ceil(N/C)*S.
func (c *Container) ContentHeight() float64 {
	return c.opts.Geometry.ContentHeight(len(c.ids))
}

// MaxScroll returns the largest valid scroll offset.
func (c *Container) MaxScroll() float64 {
	return max(0, c.ContentHeight()-c.opts.Viewport.Usable())
}

// SetScroll records the vertical scroll offset, clamped to the content, and
// returns the stored value.
func (c *Container) SetScroll(y float64) float64 {
	c.scrollY = min(max(0, y), c.MaxScroll())
	return c.scrollY
}

// ScrollY returns the current vertical scroll offset.
func (c *Container) ScrollY() float64 { return c.scrollY }

// SetViewport replaces the viewport metrics, for instance after a terminal
// resize, and re-clamps the scroll offset.
func (c *Container) SetViewport(v Viewport) error {
	if v.Height < 0 || v.InsetTop < 0 || v.InsetBottom < 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "viewport dimensions cannot be negative")
	}
	c.opts.Viewport = v
	c.SetScroll(c.scrollY)
	return nil
}

// Tick advances every item's animation by dt and reports whether any is still moving.
func (c *Container) Tick(dt time.Duration) bool {
	moving := false
	for _, id := range c.ids {
		if c.items[id].Tick(dt) {
			moving = true
		}
	}
	return moving
}

// Animating reports whether any item is moving.
func (c *Container) Animating() bool {
	for _, ctrl := range c.items {
		if ctrl.Animating() {
			return true
		}
	}
	return false
}

// Snapshot returns every item in paint order: lower z first, then by order.
func (c *Container) Snapshot() []ItemState {
	out := make([]ItemState, 0, len(c.ids))
	for _, id := range c.ids {
		ctrl := c.items[id]
		off := ctrl.Offset()
		out = append(out, ItemState{
			ID:    id,
			Order: ctrl.Order(),
			X:     off.X,
			Y:     off.Y,
			Rest:  ctrl.Rest(),
			Scale: ctrl.Scale(),
			Z:     ctrl.ZIndex(),
			State: ctrl.State(),
		})
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Z != out[j].Z {
			return out[i].Z < out[j].Z
		}
		return out[i].Order < out[j].Order
	})
	return out
}

// HitTest returns the topmost item whose live cell contains p (content coordinates).
func (c *Container) HitTest(p grid.Point) (string, bool) {
	snap := c.Snapshot()
	for i := len(snap) - 1; i >= 0; i-- {
		origin := grid.Point{X: snap[i].X, Y: snap[i].Y}
		if c.opts.Geometry.Contains(origin, p) {
			return snap[i].ID, true
		}
	}
	return "", false
}

// Validate checks the order map bijection.
func (c *Container) Validate() error {
	return c.store.Load().Validate()
}

// Close detaches every controller from the order store.
func (c *Container) Close() {
	for _, ctrl := range c.items {
		ctrl.Close()
	}
}
