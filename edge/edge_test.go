package edge

import (
	"math"
	"testing"

	"drawioengine/core"
	"drawioengine/diagram"
	"drawioengine/style"
)

func almostEqual(a, b float64) bool { return math.Abs(a-b) < 1e-6 }

func newVertex(id string, x, y, w, h float64) *diagram.Cell {
	return &diagram.Cell{
		ID:       id,
		IsVertex: true,
		Style:    style.Default(),
		Geometry: diagram.Geometry{X: x, Y: y, Width: w, Height: h},
	}
}

func TestStraightEdgeFacingEndpoints(t *testing.T) {
	a := newVertex("A", 0, 0, 10000, 5000)
	b := newVertex("B", 20000, 0, 10000, 5000)
	e := &diagram.Cell{IsEdge: true, SourceID: "A", TargetID: "B", Style: style.Default()}
	table := diagram.NewTable([]*diagram.Cell{a, b, e})

	got := Resolve(e, table)
	if !almostEqual(got.Source.X, 10000) || !almostEqual(got.Source.Y, 2500) {
		t.Errorf("Source = %+v, want (10000,2500)", got.Source)
	}
	if !almostEqual(got.Target.X, 20000) || !almostEqual(got.Target.Y, 2500) {
		t.Errorf("Target = %+v, want (20000,2500)", got.Target)
	}
}

func TestOrthogonalDirectionCascadeHorizontalFirst(t *testing.T) {
	a := core.Rect{X: 0, Y: 0, Width: 10000, Height: 5000}
	b := core.Rect{X: 20000, Y: 20000, Width: 10000, Height: 5000}
	start, end := chooseOrthogonalDirections(a, b)
	if start != core.East || end != core.West {
		t.Errorf("start,end = %v,%v, want East,West", start, end)
	}
}

func TestParentOffsetAppliedToResolvedEndpoint(t *testing.T) {
	parent := newVertex("P", 1000, 2000, 10000, 5000)
	a := newVertex("A", 0, 0, 10000, 5000)
	a.ParentID = "P"
	b := newVertex("B", 20000, 0, 10000, 5000)
	e := &diagram.Cell{IsEdge: true, SourceID: "A", TargetID: "B", Style: style.Default()}
	table := diagram.NewTable([]*diagram.Cell{parent, a, b, e})

	got := Resolve(e, table)
	if !almostEqual(got.Source.X, 10000+1000) || !almostEqual(got.Source.Y, 2500+2000) {
		t.Errorf("Source = %+v, want offset by parent (1000,2000)", got.Source)
	}
}

func TestFixedExitOverridesCascade(t *testing.T) {
	a := newVertex("A", 0, 0, 10000, 5000)
	b := newVertex("B", 20000, 20000, 10000, 5000)
	e := &diagram.Cell{IsEdge: true, SourceID: "A", TargetID: "B", Style: style.Default()}
	e.Style.EdgeStyle = style.Orthogonal
	e.Style.StartFixed = true
	e.Style.ExitX = style.Some(0)
	e.Style.ExitY = style.Some(0)
	table := diagram.NewTable([]*diagram.Cell{a, b, e})

	got := Resolve(e, table)
	if !almostEqual(got.Source.X, 0) || !almostEqual(got.Source.Y, 0) {
		t.Errorf("Source = %+v, want (0,0) (top-left corner, from fixed exit)", got.Source)
	}
}

func TestUnboundEndUsesStoredGeometryPoint(t *testing.T) {
	a := newVertex("A", 0, 0, 10000, 5000)
	e := &diagram.Cell{
		IsEdge:   true,
		SourceID: "A",
		Style:    style.Default(),
		Geometry: diagram.Geometry{TargetPoint: core.Point{X: 99, Y: 42}},
	}
	table := diagram.NewTable([]*diagram.Cell{a, e})

	got := Resolve(e, table)
	if got.Target.X != 99 || got.Target.Y != 42 {
		t.Errorf("Target = %+v, want (99,42) unbound passthrough", got.Target)
	}
}
