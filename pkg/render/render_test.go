package render

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"slices"
	"strings"
	"testing"
	"time"

	"github.com/matzehuels/gridsort/pkg/errors"
	"github.com/matzehuels/gridsort/pkg/observability"
	"github.com/matzehuels/gridsort/pkg/sortable"
)

func swappedLayout(t *testing.T) Layout {
	t.Helper()
	opts := sortable.DefaultOptions()
	c, err := sortable.New([]string{"a", "b", "c", "d", "e"}, opts)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer c.Close()
	g, err := c.Grab("a")
	if err != nil {
		t.Fatalf("Grab: %v", err)
	}
	g.Move(100, 100) // slot 4
	g.Release()
	// Not ticked: the layout must still report rest positions.
	return NewLayout(opts.Geometry, c.Snapshot())
}

func TestNewLayout(t *testing.T) {
	l := swappedLayout(t)

	if want := []string{"e", "b", "c", "d", "a"}; !slices.Equal(l.IDs(), want) {
		t.Fatalf("IDs() = %v, want %v", l.IDs(), want)
	}
	if l.Columns != 3 || l.Rows != 2 || l.Width != 300 || l.Height != 200 {
		t.Errorf("dims = %d cols %d rows %vx%v", l.Columns, l.Rows, l.Width, l.Height)
	}
	a := l.Items[4]
	if a.Row != 1 || a.Column != 1 || a.X != 100 || a.Y != 100 {
		t.Errorf("a = %+v, want row 1 col 1 at (100,100)", a)
	}
}

func TestRenderJSON(t *testing.T) {
	data, err := RenderJSON(swappedLayout(t))
	if err != nil {
		t.Fatalf("RenderJSON: %v", err)
	}
	var got Layout
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatalf("output is not JSON: %v", err)
	}
	if got.Items[0].ID != "e" || got.Items[0].Order != 0 {
		t.Errorf("first item = %+v", got.Items[0])
	}
	if !bytes.Contains(data, []byte(`"item_size": 100`)) {
		t.Errorf("missing item_size:\n%s", data)
	}
}

func TestToDOT(t *testing.T) {
	dot := ToDOT(swappedLayout(t), Options{})

	for _, want := range []string{
		"digraph G {",
		"subgraph row0 {",
		"subgraph row1 {",
		"rank=same;",
		`"e" -> "b";`, // row 0 chain
		`"b" -> "c";`,
		`"d" -> "a";`, // row 1 chain
		`"e" -> "d";`, // column 0
		`"b" -> "a";`, // column 1
		"edge [style=invis];",
	} {
		if !strings.Contains(dot, want) {
			t.Errorf("DOT missing %q:\n%s", want, dot)
		}
	}
	if strings.Contains(dot, `"c" -> `) {
		t.Error("c ends row 0 and has nothing below it")
	}
	if !strings.HasSuffix(dot, "}\n") {
		t.Error("DOT not closed")
	}
}

func TestToDOTDetailedLabels(t *testing.T) {
	dot := ToDOT(swappedLayout(t), Options{Detailed: true})
	if !strings.Contains(dot, `"a" [label="a\n#4 (1,1)"];`) {
		t.Errorf("detailed label missing:\n%s", dot)
	}
}

func TestRenderSVG(t *testing.T) {
	l := swappedLayout(t)
	svg, err := RenderSVG(context.Background(), l, Options{})
	if err != nil {
		t.Fatalf("RenderSVG: %v", err)
	}
	size := fmt.Sprintf(`width="%.0f" height="%.0f"`, l.Width, l.Height)
	if !bytes.Contains(svg, []byte(size)) {
		t.Errorf("svg not sized to layout (%s):\n%.300s", size, svg)
	}
	if !bytes.Contains(svg, []byte(`data-columns="3" data-rows="2"`)) {
		t.Errorf("svg missing grid shape:\n%.300s", svg)
	}
	if !bytes.Contains(svg, []byte(">a<")) {
		t.Error("svg missing label a")
	}
}

func TestFitToLayout(t *testing.T) {
	in := []byte(`<svg width="62pt" height="44pt" viewBox="0.00 0.00 62.00 44.00" xmlns="x"><g/></svg>`)
	tests := []struct {
		name   string
		layout Layout
		want   string
	}{
		{
			name:   "sized to grid",
			layout: Layout{Columns: 3, Rows: 2, Width: 300, Height: 200},
			want:   `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0.00 0.00 62.00 44.00" width="300" height="200" preserveAspectRatio="xMidYMid meet" data-columns="3" data-rows="2"><g/></svg>`,
		},
		{
			name:   "empty grid keeps drawing size",
			layout: Layout{Columns: 3},
			want:   `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0.00 0.00 62.00 44.00" width="62" height="44" preserveAspectRatio="xMidYMid meet" data-columns="3" data-rows="0"><g/></svg>`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := string(fitToLayout(in, tt.layout)); got != tt.want {
				t.Errorf("fitToLayout() = %s, want %s", got, tt.want)
			}
		})
	}
	if got := string(fitToLayout([]byte("<svg>"), Layout{Width: 10, Height: 10})); got != "<svg>" {
		t.Errorf("no viewBox should pass through, got %s", got)
	}
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    Format
		wantErr bool
	}{
		{"json", FormatJSON, false},
		{" DOT ", FormatDOT, false},
		{"Svg", FormatSVG, false},
		{"png", "", true},
		{"", "", true},
	}
	for _, tt := range tests {
		got, err := ParseFormat(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseFormat(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if tt.wantErr && !errors.Is(err, errors.ErrCodeInvalidInput) {
			t.Errorf("ParseFormat(%q) code = %s", tt.in, errors.GetCode(err))
		}
		if got != tt.want {
			t.Errorf("ParseFormat(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

type renderRecorder struct {
	format string
	items  int
	size   int
	err    error
}

func (r *renderRecorder) OnRenderStart(format string, items int) { r.format, r.items = format, items }
func (r *renderRecorder) OnRenderComplete(_ string, size int, _ time.Duration, err error) {
	r.size, r.err = size, err
}

func TestExportReportsHooks(t *testing.T) {
	rec := &renderRecorder{}
	observability.SetRenderHooks(rec)
	defer observability.Reset()

	data, err := Export(context.Background(), swappedLayout(t), FormatDOT)
	if err != nil {
		t.Fatalf("Export: %v", err)
	}
	if rec.format != "dot" || rec.items != 5 || rec.size != len(data) || rec.err != nil {
		t.Errorf("hooks saw %+v, data %d bytes", rec, len(data))
	}

	if _, err := Export(context.Background(), swappedLayout(t), Format("gif")); err == nil || rec.err == nil {
		t.Error("unknown format should fail and be reported")
	}
}
