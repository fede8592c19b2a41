package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/matzehuels/gridsort/pkg/errors"
	"github.com/matzehuels/gridsort/pkg/observability"
)

// execute runs the root command with args and returns stdout.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Cleanup(observability.Reset)

	var logs, out, errOut bytes.Buffer
	c := New(&logs, LogInfo)
	root := c.RootCommand()
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(args)
	err := root.ExecuteContext(context.Background())
	return out.String(), err
}

func TestRootCommandRegistersSubcommands(t *testing.T) {
	root := New(&bytes.Buffer{}, LogInfo).RootCommand()
	for _, name := range []string{"run", "layout", "simulate", "export", "completion"} {
		if cmd, _, err := root.Find([]string{name}); err != nil || cmd.Name() != name {
			t.Errorf("subcommand %q not registered", name)
		}
	}
}

func TestLayoutCommand(t *testing.T) {
	out, err := execute(t, "layout", "a", "b", "c", "d", "--columns", "2", "--size", "50")
	if err != nil {
		t.Fatalf("layout: %v", err)
	}
	for _, want := range []string{"4 items · 2 columns · 2 rows", "Slot", "100x100"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
	// d sits in row 1, column 1, at (50,50).
	found := false
	for _, line := range strings.Split(out, "\n") {
		if f := strings.FieldsFunc(line, func(r rune) bool { return r == '│' || r == ' ' }); len(f) == 6 && f[1] == "d" {
			found = true
			if strings.Join(f, " ") != "3 d 1 1 50 50" {
				t.Errorf("row for d = %v", f)
			}
		}
	}
	if !found {
		t.Errorf("no table row for d:\n%s", out)
	}
}

func TestLayoutDefaultsAndConfig(t *testing.T) {
	out, err := execute(t, "layout")
	if err != nil {
		t.Fatalf("layout: %v", err)
	}
	if !strings.Contains(out, "9 items · 3 columns · 3 rows") {
		t.Errorf("default items not used:\n%s", out)
	}

	dir := t.TempDir()
	path := filepath.Join(dir, "grid.toml")
	if err := os.WriteFile(path, []byte("columns = 4\nitems = [\"x\", \"y\"]\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	out, err = execute(t, "layout", "--config", path)
	if err != nil {
		t.Fatalf("layout --config: %v", err)
	}
	if !strings.Contains(out, "2 items · 4 columns · 1 rows") {
		t.Errorf("config not applied:\n%s", out)
	}
}

func TestLayoutRejectsDuplicates(t *testing.T) {
	_, err := execute(t, "layout", "a", "a")
	if !errors.Is(err, errors.ErrCodeInvalidInput) {
		t.Errorf("duplicate items: err = %v", err)
	}
}

func TestSimulateCommand(t *testing.T) {
	out, err := execute(t, "simulate", filepath.Join("testdata", "swap.toml"))
	if err != nil {
		t.Fatalf("simulate: %v", err)
	}
	for _, want := range []string{"a ↔ f", "0 → 5", "f b c d e a", "6 frames"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestSimulateJSON(t *testing.T) {
	out, err := execute(t, "simulate", "--json", filepath.Join("testdata", "swap.toml"))
	if err != nil {
		t.Fatalf("simulate --json: %v", err)
	}
	var res struct {
		Order   []string `json:"order"`
		Frames  int      `json:"frames"`
		Settled bool     `json:"settled"`
	}
	if err := json.Unmarshal([]byte(out), &res); err != nil {
		t.Fatalf("not JSON: %v\n%s", err, out)
	}
	if strings.Join(res.Order, "") != "fbcdea" || res.Frames != 6 || !res.Settled {
		t.Errorf("result = %+v", res)
	}
}

func TestSimulateMissingFile(t *testing.T) {
	_, err := execute(t, "simulate", "nope.toml")
	if !errors.Is(err, errors.ErrCodeFileNotFound) {
		t.Errorf("missing scenario: err = %v", err)
	}
}

func TestExportCommand(t *testing.T) {
	dir := t.TempDir()
	tests := []struct {
		format string
		want   string
	}{
		{"dot", "digraph G {"},
		{"json", `"id": "f"`},
	}
	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			path := filepath.Join(dir, "out."+tt.format)
			out, err := execute(t, "export", filepath.Join("testdata", "swap.toml"), "-f", tt.format, "-o", path)
			if err != nil {
				t.Fatalf("export: %v", err)
			}
			if !strings.Contains(out, path) {
				t.Errorf("output should name the file:\n%s", out)
			}
			data, err := os.ReadFile(path)
			if err != nil {
				t.Fatalf("read export: %v", err)
			}
			if !strings.Contains(string(data), tt.want) {
				t.Errorf("%s export missing %q:\n%s", tt.format, tt.want, data)
			}
		})
	}
}

func TestExportUnknownFormat(t *testing.T) {
	_, err := execute(t, "export", filepath.Join("testdata", "swap.toml"), "-f", "gif")
	if !errors.Is(err, errors.ErrCodeInvalidInput) {
		t.Errorf("unknown format: err = %v", err)
	}
}

func TestCompletionCommand(t *testing.T) {
	out, err := execute(t, "completion", "bash")
	if err != nil {
		t.Fatalf("completion: %v", err)
	}
	if !strings.Contains(out, "gridsort") {
		t.Error("bash completion should mention the program")
	}
}
