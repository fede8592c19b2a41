package cli

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
)

func TestCanvasBoxAndText(t *testing.T) {
	cv := newCanvas(6, 3, canvasStyles)
	cv.box(0, 0, 6, 3, lipgloss.RoundedBorder(), paintTile)
	cv.text(1, 1, 4, "abcdef", paintTileLabel)

	want := "╭────╮\n│abc…│\n╰────╯"
	if got := cv.render(); got != want {
		t.Errorf("render() =\n%s\nwant\n%s", got, want)
	}
}

func TestCanvasCentersAndClips(t *testing.T) {
	cv := newCanvas(5, 1, nil)
	cv.text(0, 0, 5, "ab", 0)
	if got := cv.render(); got != " ab  " {
		t.Errorf("centered = %q", got)
	}

	cv = newCanvas(3, 2, nil)
	cv.box(1, 1, 4, 4, lipgloss.NormalBorder(), 0) // mostly off-canvas
	if got := cv.render(); got != "   \n ┌─" {
		t.Errorf("clipped = %q", got)
	}
}

func TestCanvasWideRunes(t *testing.T) {
	cv := newCanvas(6, 1, nil)
	cv.text(1, 0, 4, "日本語", 0)
	if got := cv.render(); got != " 日…  " {
		t.Errorf("wide = %q, want %q", got, " 日…  ")
	}

	// Overwriting the tail of a wide rune blanks its head.
	cv.set(2, 0, "x", 0)
	if got := cv.render(); got != "  x…  " {
		t.Errorf("after overwrite = %q", got)
	}
}
