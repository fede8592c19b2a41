package grid_test

import (
	"fmt"

	"github.com/matzehuels/gridsort/pkg/grid"
)

func ExampleGeometry_Position() {
	g := grid.Geometry{Columns: 3, Size: 100}

	for _, i := range []int{0, 3, 5} {
		p := g.Position(i)
		fmt.Printf("slot %d at (%.0f,%.0f)\n", i, p.X, p.Y)
	}
	// Output:
	// slot 0 at (0,0)
	// slot 3 at (0,100)
	// slot 5 at (200,100)
}

func ExampleGeometry_Order() {
	g := grid.Geometry{Columns: 3, Size: 100}

	// A drag that overshoots the last slot of a six-item grid
	raw := g.Order(250, 120)
	fmt.Println("raw:", raw)
	fmt.Println("clamped:", grid.Clamp(raw, 6))
	// Output:
	// raw: 6
	// clamped: 5
}
