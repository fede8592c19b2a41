package grid

import (
	"math"

	"github.com/matzehuels/gridsort/pkg/errors"
)

// Point is a pixel coordinate in content space (y grows downward).
type Point struct {
	X, Y float64
}

// Geometry holds the fixed parameters of a uniform grid.
type Geometry struct {
	// Columns is the number of slots per row. Must be at least 1.
	Columns int
	// Size is the edge length of a square slot in pixels. Must be positive.
	Size float64
}

// Validate reports whether the geometry can be used for layout.
func (g Geometry) Validate() error {
	if g.Columns < 1 {
		return errors.New(errors.ErrCodeInvalidConfig, "columns must be at least 1, got %d", g.Columns)
	}
	if !(g.Size > 0) || math.IsInf(g.Size, 0) {
		return errors.New(errors.ErrCodeInvalidConfig, "item size must be a positive finite number, got %v", g.Size)
	}
	return nil
}

// Position returns the top-left corner of slot order.
// It is defined for every order >= 0.
func (g Geometry) Position(order int) Point {
	return Point{
		X: float64(order%g.Columns) * g.Size,
		Y: float64(order/g.Columns) * g.Size,
	}
}

// axisLimit bounds a rounded column or row index before it is combined
// into an order, so far-away points saturate instead of overflowing.
const axisLimit = 1 << 31

// orderLimit bounds the combined order to the range where a float64 is exact.
const orderLimit = 1 << 53

// Order returns the slot nearest to the point (x, y), computed as
// round(x/S) + C*round(y/S). The result is not clamped to a slot range,
// but it saturates for coordinates too large to represent. NaN reads as 0.
func (g Geometry) Order(x, y float64) int {
	col := saturate(math.Round(x/g.Size), axisLimit)
	row := saturate(math.Round(y/g.Size), axisLimit)
	return int(saturate(col+float64(g.Columns)*row, orderLimit))
}

func saturate(v, limit float64) float64 {
	switch {
	case math.IsNaN(v):
		return 0
	case v > limit:
		return limit
	case v < -limit:
		return -limit
	}
	return v
}

// Rows returns the number of rows needed for n items.
func (g Geometry) Rows(n int) int {
	if n <= 0 {
		return 0
	}
	return (n + g.Columns - 1) / g.Columns
}

// ContentHeight returns the total scrollable height for n items.
func (g Geometry) ContentHeight(n int) float64 {
	return float64(g.Rows(n)) * g.Size
}

// ContentWidth returns the width of a full row.
func (g Geometry) ContentWidth() float64 {
	return float64(g.Columns) * g.Size
}

// Contains reports whether p lies inside a cell whose top-left corner is at
// origin. The right and bottom edges are exclusive so adjacent cells never
// both claim a point.
func (g Geometry) Contains(origin, p Point) bool {
	return p.X >= origin.X && p.X < origin.X+g.Size &&
		p.Y >= origin.Y && p.Y < origin.Y+g.Size
}

// Clamp restricts order to the valid index range [0, n-1].
// For n <= 0 there is no valid slot and Clamp returns 0.
func Clamp(order, n int) int {
	if order < 0 || n <= 0 {
		return 0
	}
	if order > n-1 {
		return n - 1
	}
	return order
}
