// Package render exports a settled grid as JSON, Graphviz DOT or SVG.
//
// A [Layout] is built from a container snapshot and carries everything an
// external renderer needs: the geometry and, per item, its order, slot and
// rest point.
//
//	layout := render.NewLayout(geom, container.Snapshot())
//	data, err := render.Export(ctx, layout, render.FormatSVG)
//
// DOT output draws the grid with Graphviz's default dot engine. Each row is
// a rank=same subgraph chained by invisible edges, and columns are chained
// top to bottom, so the drawing keeps the slot arrangement without explicit
// coordinates. SVG is produced from that DOT with goccy/go-graphviz.
package render
