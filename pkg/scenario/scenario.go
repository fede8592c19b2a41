// Package scenario replays scripted drag gestures against a sortable
// container.
//
// Scenarios are TOML files with a [grid] table (see package config) and
// a list of gestures:
//
//	frame = "16ms"
//
//	[grid]
//	columns = 3
//	item_size = 100
//	items = ["a", "b", "c", "d", "e", "f"]
//
//	[[gesture]]
//	item = "a"
//	moves = [[100.0, 0.0], [250.0, 120.0]]
//
// Moves are cumulative translations since the grab, the same way a pan
// recognizer would report them. A gesture is released after its last
// move unless release = false, and the run then ticks frames until every
// item has settled unless settle = false. The order map bijection is
// checked after every move.
package scenario

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/gridsort/pkg/config"
	"github.com/matzehuels/gridsort/pkg/drag"
	"github.com/matzehuels/gridsort/pkg/errors"
	"github.com/matzehuels/gridsort/pkg/grid"
	"github.com/matzehuels/gridsort/pkg/sortable"
)

// Defaults for a run.
const (
	DefaultFrame     = 16 * time.Millisecond
	DefaultMaxFrames = 10000
)

// Scenario is a decoded scenario file.
type Scenario struct {
	Frame     string          `toml:"frame"`
	MaxFrames int             `toml:"max_frames"`
	Grid      config.Config   `toml:"grid"`
	Gestures  []GestureScript `toml:"gesture"`
}

// GestureScript is one scripted gesture. A script naming the item of an
// unreleased gesture resumes it: its moves continue from the original grab.
type GestureScript struct {
	Item    string       `toml:"item"`
	Moves   [][2]float64 `toml:"moves"`
	Release *bool        `toml:"release"`
	Settle  *bool        `toml:"settle"`
}

func (g GestureScript) releases() bool { return g.Release == nil || *g.Release }
func (g GestureScript) settles() bool  { return g.Settle == nil || *g.Settle }

// Result is the outcome of a run.
type Result struct {
	Order    []string             `json:"order"`
	Items    []sortable.ItemState `json:"-"`
	Geometry grid.Geometry        `json:"-"`
	Swaps    []drag.Swap          `json:"swaps"`
	Frames   int                  `json:"frames"`
	Settled  bool                 `json:"settled"`
	Elapsed  time.Duration        `json:"elapsed_ns"`
	// Gestures counts distinct grabs; resumed gestures are not recounted.
	Gestures int `json:"gestures"`
}

// Parse decodes and validates scenario TOML.
func Parse(data []byte) (*Scenario, error) {
	var s Scenario
	md, err := toml.Decode(string(data), &s)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "decode scenario")
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, errors.New(errors.ErrCodeInvalidScenario, "unknown scenario key %q", undecoded[0].String())
	}
	s.Grid.SetDefaults()
	if s.Frame == "" {
		s.Frame = DefaultFrame.String()
	}
	if s.MaxFrames == 0 {
		s.MaxFrames = DefaultMaxFrames
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// Load reads and parses the scenario file at path.
func Load(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "scenario %s", path)
		}
		return nil, fmt.Errorf("read scenario %s: %w", path, err)
	}
	return Parse(data)
}

// Validate checks the grid configuration and that every gesture names a
// known item.
func (s *Scenario) Validate() error {
	if err := s.Grid.Validate(); err != nil {
		return err
	}
	if len(s.Grid.Items) == 0 {
		return errors.New(errors.ErrCodeInvalidScenario, "scenario has no items")
	}
	if _, err := s.frame(); err != nil {
		return err
	}
	if s.MaxFrames < 0 {
		return errors.New(errors.ErrCodeInvalidScenario, "max_frames cannot be negative")
	}
	known := make(map[string]bool, len(s.Grid.Items))
	for _, id := range s.Grid.Items {
		known[id] = true
	}
	for i, g := range s.Gestures {
		if !known[g.Item] {
			return errors.New(errors.ErrCodeInvalidScenario, "gesture %d targets unknown item %q", i, g.Item)
		}
	}
	return nil
}

func (s *Scenario) frame() (time.Duration, error) {
	d, err := time.ParseDuration(s.Frame)
	if err != nil {
		return 0, errors.Wrap(errors.ErrCodeInvalidScenario, err, "frame %q", s.Frame)
	}
	if d <= 0 {
		return 0, errors.New(errors.ErrCodeInvalidScenario, "frame must be positive, got %s", s.Frame)
	}
	return d, nil
}

// Mount creates the container described by the scenario's grid table.
func (s *Scenario) Mount() (*sortable.Container, error) {
	opts, err := s.Grid.ContainerOptions()
	if err != nil {
		return nil, err
	}
	return sortable.New(s.Grid.Items, opts)
}

// Run mounts a fresh container and replays every gesture. The context is
// checked between gestures and frames.
func Run(ctx context.Context, s *Scenario) (*Result, error) {
	c, err := s.Mount()
	if err != nil {
		return nil, err
	}
	defer c.Close()
	return Replay(ctx, c, s)
}

// Replay drives an existing container through the scenario's gestures.
// An engine invariant violation is returned as an error rather than
// propagated as a panic.
func Replay(ctx context.Context, c *sortable.Container, s *Scenario) (res *Result, err error) {
	defer func() {
		if r := recover(); r != nil {
			res, err = nil, errors.Recovered(r)
		}
	}()

	frame, err := s.frame()
	if err != nil {
		return nil, err
	}

	res = &Result{Settled: true}
	for i, script := range s.Gestures {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		live, resumed := c.Active()
		g, err := c.Grab(script.Item)
		if err != nil {
			return nil, fmt.Errorf("gesture %d: %w", i, err)
		}
		resumed = resumed && live == g
		before := 0
		if resumed {
			before = len(g.Swaps())
		}
		for j, mv := range script.Moves {
			g.Move(mv[0], mv[1])
			if err := c.Validate(); err != nil {
				return nil, fmt.Errorf("gesture %d move %d: %w", i, j, err)
			}
		}
		res.Swaps = append(res.Swaps, g.Swaps()[before:]...)
		if !resumed {
			res.Gestures++
		}

		if !script.releases() {
			continue
		}
		g.Release()
		if !script.settles() {
			continue
		}
		for c.Animating() {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			if res.Frames >= s.MaxFrames {
				res.Settled = false
				break
			}
			c.Tick(frame)
			res.Frames++
		}
	}

	res.Order = c.Order()
	res.Items = c.Snapshot()
	res.Geometry = c.Options().Geometry
	res.Elapsed = time.Duration(res.Frames) * frame
	if c.Animating() {
		res.Settled = false
	}
	return res, nil
}
