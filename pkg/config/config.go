// Package config loads gridsort settings from TOML.
//
// A configuration file looks like:
//
//	columns = 3
//	item_size = 100
//	items = ["a", "b", "c", "d", "e", "f"]
//
//	[animation]
//	duration = "350ms"
//	easing = "ease-in-out"
//
//	[viewport]
//	height = 600
//	inset_top = 0
//	inset_bottom = 0
//
//	[terminal]
//	tile_width = 12
//	tile_height = 5
//
// Every field is optional; [Config.SetDefaults] fills the gaps. The same
// structure is embedded in scenario files under a [grid] table.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/gridsort/pkg/anim"
	"github.com/matzehuels/gridsort/pkg/errors"
	"github.com/matzehuels/gridsort/pkg/grid"
	"github.com/matzehuels/gridsort/pkg/sortable"
)

// appName names the configuration directory.
const appName = "gridsort"

// Terminal tile defaults, in character cells.
const (
	DefaultTileWidth  = 12
	DefaultTileHeight = 5
)

// Config is the on-disk configuration.
type Config struct {
	Columns  int       `toml:"columns"`
	ItemSize float64   `toml:"item_size"`
	Items    []string  `toml:"items"`
	Anim     Animation `toml:"animation"`
	Viewport Viewport  `toml:"viewport"`
	Terminal Terminal  `toml:"terminal"`
}

// Animation is the shared settle profile.
type Animation struct {
	Duration string `toml:"duration"`
	Easing   string `toml:"easing"`
}

// Viewport is the injected screen metric used for scroll sizing.
type Viewport struct {
	Height      float64 `toml:"height"`
	InsetTop    float64 `toml:"inset_top"`
	InsetBottom float64 `toml:"inset_bottom"`
}

// Terminal sizes one grid slot on screen.
type Terminal struct {
	TileWidth  int `toml:"tile_width"`
	TileHeight int `toml:"tile_height"`
}

// Default returns the configuration used when no file exists.
func Default() *Config {
	c := &Config{}
	c.SetDefaults()
	return c
}

// SetDefaults fills every unset field. It is idempotent.
func (c *Config) SetDefaults() {
	if c.Columns == 0 {
		c.Columns = sortable.DefaultColumns
	}
	if c.ItemSize == 0 {
		c.ItemSize = sortable.DefaultItemSize
	}
	if c.Anim.Duration == "" {
		c.Anim.Duration = anim.DefaultDuration.String()
	}
	if c.Anim.Easing == "" {
		c.Anim.Easing = "ease-in-out"
	}
	if c.Terminal.TileWidth == 0 {
		c.Terminal.TileWidth = DefaultTileWidth
	}
	if c.Terminal.TileHeight == 0 {
		c.Terminal.TileHeight = DefaultTileHeight
	}
}

// Validate checks every field after defaults have been applied.
func (c *Config) Validate() error {
	if err := c.Geometry().Validate(); err != nil {
		return err
	}
	if _, err := c.Animation(); err != nil {
		return err
	}
	if c.Viewport.Height < 0 || c.Viewport.InsetTop < 0 || c.Viewport.InsetBottom < 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "viewport dimensions cannot be negative")
	}
	if c.Terminal.TileWidth < 3 || c.Terminal.TileHeight < 3 {
		return errors.New(errors.ErrCodeInvalidConfig, "terminal tiles must be at least 3x3 cells, got %dx%d", c.Terminal.TileWidth, c.Terminal.TileHeight)
	}
	return errors.ValidateIdentities(c.Items)
}

// Geometry returns the grid geometry.
func (c *Config) Geometry() grid.Geometry {
	return grid.Geometry{Columns: c.Columns, Size: c.ItemSize}
}

// Animation parses the animation profile.
func (c *Config) Animation() (anim.Config, error) {
	d, err := time.ParseDuration(c.Anim.Duration)
	if err != nil {
		return anim.Config{}, errors.Wrap(errors.ErrCodeInvalidConfig, err, "animation duration %q", c.Anim.Duration)
	}
	if d < 0 {
		return anim.Config{}, errors.New(errors.ErrCodeInvalidConfig, "animation duration cannot be negative")
	}
	e, err := anim.ParseEasing(c.Anim.Easing)
	if err != nil {
		return anim.Config{}, err
	}
	return anim.Config{Duration: d, Easing: e}, nil
}

// ContainerOptions converts the configuration into container options.
func (c *Config) ContainerOptions() (sortable.Options, error) {
	a, err := c.Animation()
	if err != nil {
		return sortable.Options{}, err
	}
	return sortable.Options{
		Geometry:  c.Geometry(),
		Animation: a,
		Viewport: sortable.Viewport{
			Height:      c.Viewport.Height,
			InsetTop:    c.Viewport.InsetTop,
			InsetBottom: c.Viewport.InsetBottom,
		},
	}, nil
}

// Parse decodes TOML data, applies defaults and validates the result.
func Parse(data []byte) (*Config, error) {
	var c Config
	md, err := toml.Decode(string(data), &c)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "decode config")
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, errors.New(errors.ErrCodeInvalidConfig, "unknown config key %q", undecoded[0].String())
	}
	c.SetDefaults()
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

// Load reads and parses the file at path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "config %s", path)
		}
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	return Parse(data)
}

// LoadDefault loads the file at [DefaultPath], returning [Default] when it
// does not exist.
func LoadDefault() (*Config, error) {
	path, err := DefaultPath()
	if err != nil {
		return Default(), nil
	}
	c, err := Load(path)
	if errors.Is(err, errors.ErrCodeFileNotFound) {
		return Default(), nil
	}
	return c, err
}

// DefaultPath returns the config file location using the XDG standard
// (~/.config/gridsort/config.toml).
func DefaultPath() (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, appName, "config.toml"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName, "config.toml"), nil
}
