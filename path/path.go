// Package path accumulates the ordered drawing steps (move/line/quad/cubic/
// close) that describe one vertex's shape, applying the shape's local-to-
// world transform to every submitted point.
package path

import (
	"math"

	"drawioengine/core"
)

// Action is the drawing-step kind, matching the sink's
// "librevenge:path-action" vocabulary.
type Action byte

const (
	MoveTo Action = 'M'
	LineTo Action = 'L'
	QuadTo Action = 'Q'
	CubicTo Action = 'C'
	Close Action = 'Z'
)

// Step is one drawing instruction, already in world (display-unit) space.
// X1/Y1 and X2/Y2 are only meaningful for QuadTo (X1/Y1 is the control
// point) and CubicTo (X1/Y1, X2/Y2 are the two control points).
type Step struct {
	Action Action
	X, Y   float64
	X1, Y1 float64
	X2, Y2 float64
}

// Builder computes a vertex's local frame once, at construction, and
// transforms every subsequently submitted local-space point into world
// space via that frame.
type Builder struct {
	Steps  []Step
	origin core.Point
	center core.Point
	angle  float64
	// Width and Height are the LOCAL frame's dimensions, already swapped for
	// a vertical direction so shape-rendering code can always treat the
	// frame "as if EAST".
	Width, Height float64
}

// NewBuilder computes the local frame for a vertex with the given geometry
// (in hundredths of a display unit, the engine's native unit) and style.
func NewBuilder(x, y, width, height float64, direction core.Direction, rotationDeg float64) *Builder {
	origin := core.Point{X: x / 100, Y: y / 100}
	w, h := width/100, height/100
	angle := -rotationDeg * math.Pi / 180

	if direction.Vertical() {
		origin.X += (w - h) / 2
		origin.Y += (h - w) / 2
		w, h = h, w
	}

	switch direction {
	case core.South:
		angle -= math.Pi / 2
	case core.West:
		angle -= math.Pi
	case core.North:
		angle += math.Pi / 2
	}

	return &Builder{
		origin: origin,
		center: core.Point{X: w / 2, Y: h / 2},
		angle:  angle,
		Width:  w,
		Height: h,
	}
}

// transform maps a local-space point into world space.
func (b *Builder) transform(p core.Point) core.Point {
	return b.origin.Add(p.RotateAbout(b.center, b.angle))
}

// MoveTo emits an M step at local point (x,y).
func (b *Builder) MoveTo(x, y float64) {
	p := b.transform(core.Point{X: x, Y: y})
	b.Steps = append(b.Steps, Step{Action: MoveTo, X: p.X, Y: p.Y})
}

// LineTo emits an L step at local point (x,y).
func (b *Builder) LineTo(x, y float64) {
	p := b.transform(core.Point{X: x, Y: y})
	b.Steps = append(b.Steps, Step{Action: LineTo, X: p.X, Y: p.Y})
}

// QuadTo emits a Q step: control point (x1,y1), endpoint (x,y), both local.
func (b *Builder) QuadTo(x1, y1, x, y float64) {
	ctrl := b.transform(core.Point{X: x1, Y: y1})
	end := b.transform(core.Point{X: x, Y: y})
	b.Steps = append(b.Steps, Step{Action: QuadTo, X: end.X, Y: end.Y, X1: ctrl.X, Y1: ctrl.Y})
}

// CubicTo emits a C step: two control points and an endpoint, all local.
func (b *Builder) CubicTo(x1, y1, x2, y2, x, y float64) {
	c1 := b.transform(core.Point{X: x1, Y: y1})
	c2 := b.transform(core.Point{X: x2, Y: y2})
	end := b.transform(core.Point{X: x, Y: y})
	b.Steps = append(b.Steps, Step{Action: CubicTo, X: end.X, Y: end.Y, X1: c1.X, Y1: c1.Y, X2: c2.X, Y2: c2.Y})
}

// Close emits a Z step.
func (b *Builder) Close() {
	b.Steps = append(b.Steps, Step{Action: Close})
}

// AddPoints issues M to the first local point, L to the rest, and
// optionally Z. An empty slice is a no-op.
func (b *Builder) AddPoints(points [][2]float64, close bool) {
	if len(points) == 0 {
		return
	}
	b.MoveTo(points[0][0], points[0][1])
	end := len(points)
	if !close {
		end--
	}
	for i := 1; i < end; i++ {
		b.LineTo(points[i][0], points[i][1])
	}
	if close {
		b.Close()
	} else {
		b.LineTo(points[end][0], points[end][1])
	}
}
