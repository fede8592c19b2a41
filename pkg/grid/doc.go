// Package grid maps linear order indices to pixel coordinates in a uniform
// column grid, and back.
//
// # Overview
//
// A grid is described by a [Geometry]: a fixed column count C and a square cell
// edge S. Slots are numbered row-major starting at zero, so slot i sits at
// column i%C and row i/C:
//
//	g := grid.Geometry{Columns: 3, Size: 100}
//	g.Position(4)     // {X: 100, Y: 100}
//	g.Order(100, 100) // 4
//
// [Geometry.Order] rounds each axis to the nearest slot and does not clamp: a
// point far outside the grid yields an index outside [0, N). Only the caller
// knows N, so range validation belongs to the caller, through [Clamp].
//
// For every valid index the two functions round-trip:
//
//	g.Order(g.Position(i).X, g.Position(i).Y) == i
//
// # Content Extent
//
// [Geometry.Rows] and [Geometry.ContentHeight] size a scroll region for N items
// (ceil(N/C) rows of height S). [Geometry.Contains] is a hit-test helper for a
// cell drawn at an arbitrary live offset.
package grid
