// Package edge resolves an edge cell's abstract source/target binding into
// concrete sourcePoint/targetPoint coordinates on the bound shapes'
// perimeters, and chooses the initial/final direction an orthogonal route
// must leave/enter on.
package edge

import (
	"math"

	"drawioengine/core"
	"drawioengine/diagram"
	"drawioengine/perimeter"
	"drawioengine/style"
)

// Endpoints is the resolved result for one edge: concrete points plus the
// direction each end should be considered to face, for the orthogonal
// router to pick up.
type Endpoints struct {
	Source    core.Point
	Target    core.Point
	StartDir  core.Direction
	EndDir    core.Direction
}

// Resolve computes Endpoints for the edge cell e, looking up its bound
// source/target shapes (if any) in table. Waypoints already present on e's
// geometry are used as the straight-edge aim point for the nearer endpoint.
func Resolve(e *diagram.Cell, table *diagram.Table) Endpoints {
	source := table.Lookup(e.SourceID)
	target := table.Lookup(e.TargetID)

	var out Endpoints

	if source != nil {
		out.Source, out.StartDir = resolveEnd(e, source, target, table, true)
	} else {
		out.Source = e.Geometry.SourcePoint
		out.StartDir = core.East
	}

	if target != nil {
		out.Target, out.EndDir = resolveEnd(e, target, source, table, false)
	} else {
		out.Target = e.Geometry.TargetPoint
		out.EndDir = core.West
	}

	startFixed, _, _ := fixedNormalized(e, true)
	endFixed, _, _ := fixedNormalized(e, false)
	if e.Style.EdgeStyle == style.Orthogonal && source != nil && target != nil && len(e.Geometry.Waypoints) == 0 {
		startDir, endDir := chooseOrthogonalDirections(source.Bounds(), target.Bounds())
		if !startFixed {
			out.StartDir = startDir
			out.Source = boxExitPoint(source, startDir)
		}
		if !endFixed {
			out.EndDir = endDir
			out.Target = boxExitPoint(target, endDir)
		}
	}

	if source != nil {
		out.Source = out.Source.Add(table.ParentOffset(source))
	}
	if target != nil {
		out.Target = out.Target.Add(table.ParentOffset(target))
	}

	return out
}

// resolveEnd computes one endpoint on shape's perimeter, given the opposite
// cell (aim, may be nil) for a straight, non-fixed edge.
func resolveEnd(e *diagram.Cell, shape, other *diagram.Cell, table *diagram.Table, isSource bool) (core.Point, core.Direction) {
	rec := shape.Style
	fixed, nx, ny := fixedNormalized(e, isSource)

	if fixed {
		// fixedEndpoint offsets by rec.ExitDx/ExitDy; carry the edge's own
		// exit (source end) or entry (target end) offsets in this copy.
		if isSource {
			rec.ExitDx, rec.ExitDy = e.Style.ExitDx, e.Style.ExitDy
		} else {
			rec.ExitDx, rec.ExitDy = e.Style.EntryDx, e.Style.EntryDy
		}
		return fixedEndpoint(shape, rec, nx, ny), rec.Direction
	}

	aim := aimPoint(e, other, isSource)
	return straightEndpoint(shape, rec, aim), rec.Direction
}

func fixedNormalized(e *diagram.Cell, isSource bool) (fixed bool, x, y float64) {
	rec := e.Style
	if isSource {
		if !rec.StartFixed || !rec.ExitX.Present || !rec.ExitY.Present {
			return false, 0, 0
		}
		return true, rec.ExitX.Value, rec.ExitY.Value
	}
	if !rec.EndFixed || !rec.EntryX.Present || !rec.EntryY.Present {
		return false, 0, 0
	}
	return true, rec.EntryX.Value, rec.EntryY.Value
}

func fixedEndpoint(shape *diagram.Cell, rec style.Record, nx, ny float64) core.Point {
	g := shape.Geometry
	axisW, axisH := g.Width, g.Height
	if rec.Direction == core.North || rec.Direction == core.South {
		axisW, axisH = axisH, axisW
	}

	dx, dy := rec.ExitDx, rec.ExitDy
	if axisW != 0 {
		nx += dx / axisW
	}
	if axisH != 0 {
		ny += dy / axisH
	}

	sizeParam, axis := sizeParamFor(rec, g)
	px, py := perimeter.Project(rec.Perimeter, nx, ny, sizeParam, axis)
	rx, ry := remapByDirection(rec.Direction, px, py)

	center := core.Point{X: g.X + g.Width/2, Y: g.Y + g.Height/2}
	raw := core.Point{X: g.X + rx*g.Width, Y: g.Y + ry*g.Height}
	return raw.RotateAbout(center, -rec.Rotation*math.Pi/180)
}

// remapByDirection applies the shape's facing direction to a perimeter-
// projected point, grounded on MXCell::setEndpointInShape: EAST is the
// identity, WEST mirrors both axes, NORTH and SOUTH swap them. Applied after
// the perimeter projector (which always works in the shape's own EAST-facing
// frame) and before converting to raw coordinates.
func remapByDirection(dir core.Direction, px, py float64) (float64, float64) {
	switch dir {
	case core.West:
		return 1 - px, 1 - py
	case core.North:
		return py, 1 - px
	case core.South:
		return 1 - py, px
	default: // East
		return px, py
	}
}

func aimPoint(e *diagram.Cell, other *diagram.Cell, isSource bool) core.Point {
	wps := e.Geometry.Waypoints
	if isSource && len(wps) > 0 {
		return wps[0]
	}
	if !isSource && len(wps) > 0 {
		return wps[len(wps)-1]
	}
	if other != nil {
		g := other.Geometry
		return core.Point{X: g.X + g.Width/2, Y: g.Y + g.Height/2}
	}
	return core.Point{}
}

func straightEndpoint(shape *diagram.Cell, rec style.Record, aim core.Point) core.Point {
	g := shape.Geometry
	center := core.Point{X: g.X + g.Width/2, Y: g.Y + g.Height/2}

	aimAngle := math.Atan2(aim.Y-center.Y, aim.X-center.X)
	localAngle := aimAngle - rec.Direction.FacingAngle() - rec.Rotation*math.Pi/180

	ux, uy := rayBoxExit(localAngle)

	sizeParam, axis := sizeParamFor(rec, g)
	px, py := perimeter.Project(rec.Perimeter, ux, uy, sizeParam, axis)
	rx, ry := remapByDirection(rec.Direction, px, py)

	raw := core.Point{X: g.X + rx*g.Width, Y: g.Y + ry*g.Height}
	return raw.RotateAbout(center, -rec.Rotation*math.Pi/180)
}

// rayBoxExit intersects a ray from the unit square's center at angle theta
// with the square's boundary, returning the normalized exit point.
func rayBoxExit(theta float64) (float64, float64) {
	dx, dy := math.Cos(theta), math.Sin(theta)
	const big = math.MaxFloat64

	tx := big
	if dx > 0 {
		tx = 0.5 / dx
	} else if dx < 0 {
		tx = -0.5 / dx
	}
	ty := big
	if dy > 0 {
		ty = 0.5 / dy
	} else if dy < 0 {
		ty = -0.5 / dy
	}

	t := math.Min(tx, ty)
	return 0.5 + t*dx, 0.5 + t*dy
}

// boxExitPoint returns the raw-coordinate midpoint of the box edge facing
// dir, rotated by the shape's style rotation about its center.
func boxExitPoint(shape *diagram.Cell, dir core.Direction) core.Point {
	g := shape.Geometry
	var ux, uy float64
	switch dir {
	case core.North:
		ux, uy = 0.5, 0
	case core.East:
		ux, uy = 1, 0.5
	case core.South:
		ux, uy = 0.5, 1
	case core.West:
		ux, uy = 0, 0.5
	}
	center := core.Point{X: g.X + g.Width/2, Y: g.Y + g.Height/2}
	raw := core.Point{X: g.X + ux*g.Width, Y: g.Y + uy*g.Height}
	return raw.RotateAbout(center, -shape.Style.Rotation*math.Pi/180)
}

// chooseOrthogonalDirections picks startDir/endDir from the relative
// position of the two shape bounding boxes, checking horizontal separation
// before vertical, and falling back to whichever axis has the larger center
// offset when the boxes overlap on both axes.
func chooseOrthogonalDirections(a, b core.Rect) (core.Direction, core.Direction) {
	switch {
	case b.X+b.Width <= a.X:
		return core.West, core.East
	case b.X >= a.X+a.Width:
		return core.East, core.West
	case b.Y+b.Height <= a.Y:
		return core.North, core.South
	case b.Y >= a.Y+a.Height:
		return core.South, core.North
	}

	dx := b.Center().X - a.Center().X
	dy := b.Center().Y - a.Center().Y
	if math.Abs(dx) >= math.Abs(dy) {
		if dx >= 0 {
			return core.East, core.West
		}
		return core.West, core.East
	}
	if dy >= 0 {
		return core.South, core.North
	}
	return core.North, core.South
}

// sizeParamFor returns the shape-size parameter and axis dimension the
// perimeter projector's parametric families need, both in the same raw
// (hundredths-of-unit) scale as g.
func sizeParamFor(rec style.Record, g diagram.Geometry) (sizeParam, axis float64) {
	switch rec.Perimeter {
	case style.HexagonPerimeter:
		return rec.HexagonSize, g.Width
	case style.ParallelogramPerimeter:
		return rec.ParallelogramSize, g.Width
	case style.StepPerimeter:
		return rec.StepSize, g.Width
	case style.TrapezoidPerimeter:
		return rec.TrapezoidSize, g.Width
	default:
		return 0, g.Width
	}
}
