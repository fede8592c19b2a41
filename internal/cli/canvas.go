package cli

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// canvas is a fixed grid of terminal cells painted back to front. A cell
// holding "" is the tail of a wide character in the cell before it.
type canvas struct {
	w, h   int
	cells  [][]canvasCell
	styles []lipgloss.Style
}

type canvasCell struct {
	s     string
	style int // index into styles, -1 for unstyled
}

func newCanvas(w, h int, styles []lipgloss.Style) *canvas {
	c := &canvas{w: max(0, w), h: max(0, h), styles: styles}
	c.cells = make([][]canvasCell, c.h)
	for y := range c.cells {
		row := make([]canvasCell, c.w)
		for x := range row {
			row[x] = canvasCell{s: " ", style: -1}
		}
		c.cells[y] = row
	}
	return c
}

func (c *canvas) inside(x, y int) bool {
	return x >= 0 && x < c.w && y >= 0 && y < c.h
}

// set writes a single-width string at (x, y). Overwriting half of a wide
// character blanks the other half.
func (c *canvas) set(x, y int, s string, style int) {
	if !c.inside(x, y) {
		return
	}
	row := c.cells[y]
	if row[x].s == "" && x > 0 {
		row[x-1] = canvasCell{s: " ", style: row[x-1].style}
	}
	if ansi.StringWidth(row[x].s) == 2 && x+1 < c.w && row[x+1].s == "" {
		row[x+1] = canvasCell{s: " ", style: row[x].style}
	}
	row[x] = canvasCell{s: s, style: style}
}

// box draws a bordered rectangle and fills its interior so it hides
// anything painted earlier.
func (c *canvas) box(x, y, w, h int, b lipgloss.Border, style int) {
	if w < 2 || h < 2 {
		return
	}
	for i := 1; i < w-1; i++ {
		c.set(x+i, y, b.Top, style)
		c.set(x+i, y+h-1, b.Bottom, style)
	}
	for j := 1; j < h-1; j++ {
		c.set(x, y+j, b.Left, style)
		c.set(x+w-1, y+j, b.Right, style)
		for i := 1; i < w-1; i++ {
			c.set(x+i, y+j, " ", style)
		}
	}
	c.set(x, y, b.TopLeft, style)
	c.set(x+w-1, y, b.TopRight, style)
	c.set(x, y+h-1, b.BottomLeft, style)
	c.set(x+w-1, y+h-1, b.BottomRight, style)
}

// text centers s within width cells starting at x, truncating with an
// ellipsis when it does not fit.
func (c *canvas) text(x, y, width int, s string, style int) {
	if width <= 0 {
		return
	}
	s = ansi.Truncate(s, width, "…")
	x += (width - ansi.StringWidth(s)) / 2
	for _, r := range s {
		rs := string(r)
		rw := ansi.StringWidth(rs)
		if rw == 0 {
			continue
		}
		c.set(x, y, rs, style)
		if rw == 2 && c.inside(x+1, y) {
			c.set(x+1, y, "", style)
		}
		x += rw
	}
}

// render joins every row, styling runs of cells that share a style.
func (c *canvas) render() string {
	lines := make([]string, c.h)
	for y, row := range c.cells {
		var (
			line strings.Builder
			run  strings.Builder
		)
		cur := -2
		flush := func() {
			if run.Len() == 0 {
				return
			}
			if cur >= 0 && cur < len(c.styles) {
				line.WriteString(c.styles[cur].Render(run.String()))
			} else {
				line.WriteString(run.String())
			}
			run.Reset()
		}
		for _, cell := range row {
			if cell.s == "" {
				continue
			}
			if cell.style != cur {
				flush()
				cur = cell.style
			}
			run.WriteString(cell.s)
		}
		flush()
		lines[y] = line.String()
	}
	return strings.Join(lines, "\n")
}
