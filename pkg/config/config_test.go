package config

import (
	"os"
	"path/filepath"
	"slices"
	"testing"
	"time"

	"github.com/matzehuels/gridsort/pkg/errors"
)

func TestDefault(t *testing.T) {
	c := Default()
	if c.Columns != 3 || c.ItemSize != 100 {
		t.Errorf("grid = %dx%v, want 3x100", c.Columns, c.ItemSize)
	}
	a, err := c.Animation()
	if err != nil {
		t.Fatalf("Animation(): %v", err)
	}
	if a.Duration != 350*time.Millisecond {
		t.Errorf("duration = %v, want 350ms", a.Duration)
	}
	if err := c.Validate(); err != nil {
		t.Errorf("default config invalid: %v", err)
	}
}

func TestSetDefaultsIdempotent(t *testing.T) {
	c := &Config{Columns: 4}
	c.SetDefaults()
	first := *c
	c.SetDefaults()
	if c.Columns != first.Columns || c.Anim != first.Anim || c.Terminal != first.Terminal {
		t.Errorf("SetDefaults changed values on second call: %+v vs %+v", *c, first)
	}
	if c.Columns != 4 {
		t.Errorf("explicit columns overwritten: %d", c.Columns)
	}
}

func TestParse(t *testing.T) {
	data := []byte(`
columns = 4
item_size = 80
items = ["one", "two", "three"]

[animation]
duration = "200ms"
easing = "linear"

[viewport]
height = 640
inset_top = 40
inset_bottom = 20

[terminal]
tile_width = 10
tile_height = 4
`)
	c, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if c.Columns != 4 || c.ItemSize != 80 {
		t.Errorf("grid = %dx%v", c.Columns, c.ItemSize)
	}
	if !slices.Equal(c.Items, []string{"one", "two", "three"}) {
		t.Errorf("items = %v", c.Items)
	}

	opts, err := c.ContainerOptions()
	if err != nil {
		t.Fatalf("ContainerOptions: %v", err)
	}
	if opts.Animation.Duration != 200*time.Millisecond {
		t.Errorf("duration = %v", opts.Animation.Duration)
	}
	if opts.Animation.Easing(0.25) != 0.25 {
		t.Error("easing should be linear")
	}
	if got := opts.Viewport.Usable(); got != 580 {
		t.Errorf("usable viewport = %v, want 580", got)
	}
	if c.Terminal.TileWidth != 10 || c.Terminal.TileHeight != 4 {
		t.Errorf("terminal = %+v", c.Terminal)
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
		code errors.Code
	}{
		{"malformed", "columns = [", errors.ErrCodeInvalidFormat},
		{"unknown key", "colums = 3", errors.ErrCodeInvalidConfig},
		{"negative columns", "columns = -2", errors.ErrCodeInvalidConfig},
		{"bad duration", "[animation]\nduration = \"soon\"", errors.ErrCodeInvalidConfig},
		{"negative duration", "[animation]\nduration = \"-1s\"", errors.ErrCodeInvalidConfig},
		{"bad easing", "[animation]\neasing = \"bounce\"", errors.ErrCodeInvalidConfig},
		{"duplicate items", `items = ["a", "a"]`, errors.ErrCodeInvalidInput},
		{"tiny tiles", "[terminal]\ntile_width = 2", errors.ErrCodeInvalidConfig},
		{"negative viewport", "[viewport]\nheight = -5", errors.ErrCodeInvalidConfig},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.data))
			if !errors.Is(err, tt.code) {
				t.Errorf("Parse() error = %v, want %s", err, tt.code)
			}
		})
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	if err := os.WriteFile(path, []byte("columns = 5\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	c, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if c.Columns != 5 {
		t.Errorf("columns = %d, want 5", c.Columns)
	}

	if _, err := Load(filepath.Join(dir, "missing.toml")); !errors.Is(err, errors.ErrCodeFileNotFound) {
		t.Errorf("Load(missing) error = %v, want %s", err, errors.ErrCodeFileNotFound)
	}
}

func TestLoadDefaultMissingFile(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	c, err := LoadDefault()
	if err != nil {
		t.Fatalf("LoadDefault: %v", err)
	}
	if c.Columns != 3 {
		t.Errorf("columns = %d, want default 3", c.Columns)
	}
}

func TestLoadDefaultReadsXDG(t *testing.T) {
	home := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", home)
	dir := filepath.Join(home, "gridsort")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "config.toml"), []byte("item_size = 64\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	path, _ := DefaultPath()
	if path != filepath.Join(dir, "config.toml") {
		t.Errorf("DefaultPath() = %q", path)
	}
	c, err := LoadDefault()
	if err != nil {
		t.Fatalf("LoadDefault: %v", err)
	}
	if c.ItemSize != 64 {
		t.Errorf("item_size = %v, want 64", c.ItemSize)
	}
}
