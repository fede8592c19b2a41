package grid

import (
	"math"
	"testing"

	"github.com/matzehuels/gridsort/pkg/errors"
)

func TestPositionRoundTrip(t *testing.T) {
	for _, cols := range []int{1, 2, 3, 4, 7} {
		g := Geometry{Columns: cols, Size: 100}
		for i := 0; i < 50; i++ {
			p := g.Position(i)
			if got := g.Order(p.X, p.Y); got != i {
				t.Errorf("C=%d: Order(Position(%d)) = %d, want %d", cols, i, got, i)
			}
		}
	}
}

func TestPosition(t *testing.T) {
	g := Geometry{Columns: 3, Size: 100}
	tests := []struct {
		order int
		want  Point
	}{
		{0, Point{0, 0}},
		{2, Point{200, 0}},
		{3, Point{0, 100}},
		{5, Point{200, 100}},
		{7, Point{100, 200}},
	}
	for _, tt := range tests {
		if got := g.Position(tt.order); got != tt.want {
			t.Errorf("Position(%d) = %v, want %v", tt.order, got, tt.want)
		}
	}
}

func TestOrder(t *testing.T) {
	g := Geometry{Columns: 3, Size: 100}
	tests := []struct {
		name string
		x, y float64
		want int
	}{
		{"origin", 0, 0, 0},
		{"just below half", 49, 49, 0},
		{"half rounds up", 50, 0, 1},
		{"drag example", 250, 120, 6},
		{"beyond right edge", 900, 0, 9},
		{"negative", -160, -60, -5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := g.Order(tt.x, tt.y); got != tt.want {
				t.Errorf("Order(%v, %v) = %d, want %d", tt.x, tt.y, got, tt.want)
			}
		})
	}
}

func TestOrderSaturates(t *testing.T) {
	g := Geometry{Columns: 3, Size: 100}
	tests := []struct {
		name string
		x, y float64
		want int
	}{
		{"huge down-right", 1e21, 1e21, 5},
		{"huge up-left", -1e21, -1e21, 0},
		{"extreme down-right", 1e300, 1e300, 5},
		{"extreme up-left", -1e300, -1e300, 0},
		{"infinite", math.Inf(1), math.Inf(1), 5},
		{"huge right only", 1e300, 0, 5},
		{"huge down only", 0, 1e300, 5},
		{"nan", math.NaN(), math.NaN(), 0},
		{"nan column", math.NaN(), 100, 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Clamp(g.Order(tt.x, tt.y), 6); got != tt.want {
				t.Errorf("Clamp(Order(%v, %v), 6) = %d, want %d", tt.x, tt.y, got, tt.want)
			}
		})
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		order, n, want int
	}{
		{6, 6, 5},
		{5, 6, 5},
		{0, 6, 0},
		{-3, 6, 0},
		{100, 1, 0},
		{3, 0, 0},
	}
	for _, tt := range tests {
		if got := Clamp(tt.order, tt.n); got != tt.want {
			t.Errorf("Clamp(%d, %d) = %d, want %d", tt.order, tt.n, got, tt.want)
		}
	}
}

func TestContentHeight(t *testing.T) {
	g := Geometry{Columns: 3, Size: 100}
	tests := []struct {
		n    int
		want float64
	}{
		{0, 0},
		{1, 100},
		{3, 100},
		{4, 200},
		{6, 200},
		{7, 300},
	}
	for _, tt := range tests {
		if got := g.ContentHeight(tt.n); got != tt.want {
			t.Errorf("ContentHeight(%d) = %v, want %v", tt.n, got, tt.want)
		}
	}
	if got := g.ContentWidth(); got != 300 {
		t.Errorf("ContentWidth() = %v, want 300", got)
	}
}

func TestContains(t *testing.T) {
	g := Geometry{Columns: 3, Size: 100}
	origin := Point{100, 100}
	if !g.Contains(origin, Point{100, 100}) {
		t.Error("top-left corner should be inside")
	}
	if !g.Contains(origin, Point{199.5, 150}) {
		t.Error("interior point should be inside")
	}
	if g.Contains(origin, Point{200, 150}) {
		t.Error("right edge should be exclusive")
	}
	if g.Contains(origin, Point{99, 150}) {
		t.Error("point left of the cell should be outside")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		g       Geometry
		wantErr bool
	}{
		{"valid", Geometry{Columns: 3, Size: 100}, false},
		{"single column", Geometry{Columns: 1, Size: 1}, false},
		{"zero columns", Geometry{Columns: 0, Size: 100}, true},
		{"zero size", Geometry{Columns: 3, Size: 0}, true},
		{"negative size", Geometry{Columns: 3, Size: -5}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.g.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, errors.ErrCodeInvalidConfig) {
				t.Errorf("Validate() code = %v, want %v", errors.GetCode(err), errors.ErrCodeInvalidConfig)
			}
		})
	}
}
