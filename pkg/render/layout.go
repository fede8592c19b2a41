package render

import (
	"encoding/json"
	"slices"

	"github.com/matzehuels/gridsort/pkg/grid"
	"github.com/matzehuels/gridsort/pkg/sortable"
)

// Layout is a serialisable picture of the grid at rest.
type Layout struct {
	Columns  int     `json:"columns"`
	Rows     int     `json:"rows"`
	ItemSize float64 `json:"item_size"`
	Width    float64 `json:"width"`
	Height   float64 `json:"height"`
	Items    []Item  `json:"items"`
}

// Item is one tile in a [Layout].
type Item struct {
	ID     string  `json:"id"`
	Order  int     `json:"order"`
	Row    int     `json:"row"`
	Column int     `json:"column"`
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
}

// NewLayout builds a layout from snapshot states. Items are placed at their
// rest positions, so a snapshot taken mid-animation exports the destination.
func NewLayout(geom grid.Geometry, states []sortable.ItemState) Layout {
	l := Layout{
		Columns:  geom.Columns,
		Rows:     geom.Rows(len(states)),
		ItemSize: geom.Size,
		Width:    geom.ContentWidth(),
		Height:   geom.ContentHeight(len(states)),
		Items:    make([]Item, 0, len(states)),
	}
	for _, s := range states {
		l.Items = append(l.Items, Item{
			ID:     s.ID,
			Order:  s.Order,
			Row:    s.Order / geom.Columns,
			Column: s.Order % geom.Columns,
			X:      s.Rest.X,
			Y:      s.Rest.Y,
		})
	}
	slices.SortFunc(l.Items, func(a, b Item) int { return a.Order - b.Order })
	return l
}

// IDs returns the item identities in order.
func (l Layout) IDs() []string {
	ids := make([]string, len(l.Items))
	for i, it := range l.Items {
		ids[i] = it.ID
	}
	return ids
}

// RenderJSON encodes the layout as indented JSON.
func RenderJSON(l Layout) ([]byte, error) {
	return json.MarshalIndent(l, "", "  ")
}
