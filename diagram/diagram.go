// Package diagram holds the cell table the rendering engine consumes: the
// abstract, parsed representation of a diagram's vertices and edges, before
// any geometry resolution has run.
package diagram

import (
	"drawioengine/core"
	"drawioengine/style"
)

// Geometry is a cell's raw positional data, in hundredths of a display unit.
// SourcePoint/TargetPoint are only meaningful for edges and are overwritten
// by the endpoint resolver once the edge is bound to shapes; Waypoints is
// mutated in place by the orthogonal router.
type Geometry struct {
	X, Y, Width, Height float64
	SourcePoint         core.Point
	TargetPoint         core.Point
	Waypoints           []core.Point
	Offset              core.Point
	Relative            bool
	// EdgeBounds is set by ComputeEdgeBounds once an edge's endpoints and
	// waypoints are resolved; meaningless for vertex cells.
	EdgeBounds core.Rect
}

// Cell is one vertex or edge. IsVertex and IsEdge are mutually exclusive for
// any drawable cell.
type Cell struct {
	ID       string
	ParentID string
	SourceID string
	TargetID string

	IsVertex bool
	IsEdge   bool

	StyleString string
	Style       style.Record

	Geometry Geometry
	Label    string
}

// Bounds returns the cell's axis-aligned extent in raw (hundredths-of-unit)
// coordinates, ignoring rotation.
func (c *Cell) Bounds() core.Rect {
	return core.Rect{X: c.Geometry.X, Y: c.Geometry.Y, Width: c.Geometry.Width, Height: c.Geometry.Height}
}

// ComputeEdgeBounds returns an edge's bounding box as the bounding box of its
// source point, target point and waypoints. Run once an edge's endpoints and
// waypoints have been resolved; the zero Rect results if none are set.
func ComputeEdgeBounds(g Geometry) core.Rect {
	points := make([]core.Point, 0, len(g.Waypoints)+2)
	points = append(points, g.SourcePoint, g.TargetPoint)
	points = append(points, g.Waypoints...)
	return core.BoundsOf(points)
}

// Table indexes cells by ID so edge resolution can look up endpoints and
// parents in constant time.
type Table struct {
	cells []*Cell
	byID  map[string]*Cell
}

// NewTable builds a Table from a flat slice of cells. Cells with a blank ID
// are kept in iteration order but are not addressable by lookup.
func NewTable(cells []*Cell) *Table {
	t := &Table{cells: cells, byID: make(map[string]*Cell, len(cells))}
	for _, c := range cells {
		if c.ID != "" {
			t.byID[c.ID] = c
		}
	}
	return t
}

// Lookup returns the cell with the given ID, or nil if absent.
func (t *Table) Lookup(id string) *Cell {
	if id == "" {
		return nil
	}
	return t.byID[id]
}

// Cells returns all cells in table order.
func (t *Table) Cells() []*Cell { return t.cells }

// Parent returns c's parent cell, or nil if c has no parent or the parent ID
// does not resolve.
func (t *Table) Parent(c *Cell) *Cell {
	if c == nil {
		return nil
	}
	return t.Lookup(c.ParentID)
}

// ParentOffset returns the (x,y) to add to an endpoint belonging to c: the
// position of c's immediate parent. Grandparents are not added. A cell with
// no parent contributes (0,0).
func (t *Table) ParentOffset(c *Cell) core.Point {
	parent := t.Parent(c)
	if parent == nil {
		return core.Point{}
	}
	return core.Point{X: parent.Geometry.X, Y: parent.Geometry.Y}
}
