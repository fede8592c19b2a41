package render

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"strconv"

	"github.com/goccy/go-graphviz"
)

// Options configures DOT output.
type Options struct {
	// Detailed adds the order and slot to each label.
	Detailed bool
}

// ToDOT converts a layout to a Graphviz digraph that reproduces the grid.
func ToDOT(l Layout, opts Options) string {
	var buf bytes.Buffer
	buf.WriteString("digraph G {\n")
	buf.WriteString("  rankdir=TB;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  newrank=true;\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white, fontsize=20, fixedsize=true, width=1.2, height=1.2];\n")
	buf.WriteString("  edge [style=invis];\n")
	buf.WriteString("  ranksep=0.2;\n")
	buf.WriteString("  nodesep=0.2;\n")

	rows := make([][]Item, l.Rows)
	for _, it := range l.Items {
		if it.Row >= 0 && it.Row < len(rows) {
			rows[it.Row] = append(rows[it.Row], it)
		}
	}

	for r, row := range rows {
		fmt.Fprintf(&buf, "\n  subgraph row%d {\n    rank=same;\n", r)
		for _, it := range row {
			fmt.Fprintf(&buf, "    %q [label=%q];\n", it.ID, dotLabel(it, opts.Detailed))
		}
		for i := 1; i < len(row); i++ {
			fmt.Fprintf(&buf, "    %q -> %q;\n", row[i-1].ID, row[i].ID)
		}
		buf.WriteString("  }\n")
	}

	// Column chains hold rows in order even when a row is short.
	if len(rows) > 1 {
		buf.WriteString("\n")
		for r := 1; r < len(rows); r++ {
			for c, it := range rows[r] {
				if c < len(rows[r-1]) {
					fmt.Fprintf(&buf, "  %q -> %q;\n", rows[r-1][c].ID, it.ID)
				}
			}
		}
	}

	buf.WriteString("}\n")
	return buf.String()
}

func dotLabel(it Item, detailed bool) string {
	if !detailed {
		return it.ID
	}
	return fmt.Sprintf("%s\n#%d (%d,%d)", it.ID, it.Order, it.Row, it.Column)
}

// RenderSVG draws l through Graphviz and sizes the resulting svg element
// to the grid's pixel dimensions. Graphviz's own viewBox is kept so the
// drawing scales to fit.
func RenderSVG(ctx context.Context, l Layout, opts Options) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(ToDOT(l, opts)))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render %d items: %w", len(l.Items), err)
	}
	return fitToLayout(buf.Bytes(), l), nil
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([-0-9.]+)\s+([-0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

// fitToLayout rewrites the svg element so it renders at the layout's
// width and height, with the grid shape recorded as data attributes.
// An empty layout keeps Graphviz's drawing size.
func fitToLayout(svg []byte, l Layout) []byte {
	match := viewBoxRe.FindSubmatch(svg)
	if match == nil {
		return svg
	}
	vw, _ := strconv.ParseFloat(string(match[3]), 64)
	vh, _ := strconv.ParseFloat(string(match[4]), 64)
	if vw == 0 || vh == 0 {
		return svg
	}
	w, h := l.Width, l.Height
	if w <= 0 || h <= 0 {
		w, h = vw, vh
	}
	tag := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="%s %s %s %s" width="%.0f" height="%.0f" preserveAspectRatio="xMidYMid meet" data-columns="%d" data-rows="%d">`,
		match[1], match[2], match[3], match[4], w, h, l.Columns, l.Rows)
	return svgTagRe.ReplaceAll(svg, []byte(tag))
}
