// Package perimeter projects a normalized point on a shape's unit bounding
// box onto the shape's actual outline, one projector per style.PerimeterKind.
package perimeter

import (
	"math"

	"drawioengine/style"
)

// Project maps (x,y) in [0,1]^2, interpreted as a point on (or inside) the
// shape's unit bounding box, onto the shape's perimeter. sizeParam and axis
// feed the parametric families (parallelogram/hexagon/step/trapezoid); axis
// is the dimension (width or height) the size parameter is measured against,
// in the same unit as sizeParam (callers pass raw hundredths-of-a-unit
// values). Points strictly inside the box are clamped to (0.5,0.5) first.
func Project(kind style.PerimeterKind, x, y, sizeParam, axis float64) (float64, float64) {
	if x > 0 && x < 1 && y > 0 && y < 1 {
		x, y = 0.5, 0.5
	}

	switch kind {
	case style.EllipsePerimeter:
		return ellipse(x, y)
	case style.TrianglePerimeter:
		return triangle(x, y)
	case style.RhombusPerimeter:
		return rhombus(x, y)
	case style.ParallelogramPerimeter:
		return parallelogram(x, y, clampSize(sizeParam, axis))
	case style.HexagonPerimeter:
		return hexagon(x, y, clampSize(sizeParam, axis))
	case style.TrapezoidPerimeter:
		return trapezoid(x, y, clampSize(sizeParam, axis))
	case style.StepPerimeter:
		return step(x, y, clampSize(sizeParam, axis))
	default: // RectanglePerimeter, CalloutPerimeter
		return x, y
	}
}

func clampSize(sizeParam, axis float64) float64 {
	if axis == 0 {
		return 0
	}
	c := sizeParam / axis
	if c > 0.5 {
		c = 0.5
	}
	if c < 0 {
		c = 0
	}
	return c
}

func slope(x, y float64) float64 {
	dx := x - 0.5
	if dx == 0 {
		if y >= 0.5 {
			return math.Inf(1)
		}
		return math.Inf(-1)
	}
	return (y - 0.5) / dx
}

func ellipse(x, y float64) (float64, float64) {
	m := slope(x, y)
	t := math.Atan(m)
	if x < 0.5 {
		t += math.Pi
	}
	return 0.5 + 0.5*math.Cos(t), 0.5 + 0.5*math.Sin(t)
}

// triangle projects onto one of two diagonals of the right-pointing
// triangle (0,0)-(1,0.5)-(0,1): the upper edge (0,0)-(1,0.5) for the upper
// half, the lower edge (1,0.5)-(0,1) for the lower half. Points already on
// the shape's own left edge (x=0) need no adjustment.
func triangle(x, y float64) (float64, float64) {
	if x == 0 {
		return x, y
	}
	if y <= 0.5 {
		return onSegment(x, y, 0, 0, 1, 0.5)
	}
	return onSegment(x, y, 1, 0.5, 0, 1)
}

// rhombus projects by quadrant onto one of the four edges of the diamond
// with vertices (0.5,0), (1,0.5), (0.5,1), (0,0.5).
func rhombus(x, y float64) (float64, float64) {
	switch {
	case x >= 0.5 && y <= 0.5:
		return onSegment(x, y, 0.5, 0, 1, 0.5)
	case x >= 0.5 && y > 0.5:
		return onSegment(x, y, 1, 0.5, 0.5, 1)
	case x < 0.5 && y > 0.5:
		return onSegment(x, y, 0.5, 1, 0, 0.5)
	default:
		return onSegment(x, y, 0, 0.5, 0.5, 0)
	}
}

// parallelogram projects onto the outline (c,0)-(1,0)-(1-c,1)-(0,1)-(c,0): a
// slanted left edge (0,1)-(c,0) and a slanted right edge (1,0)-(1-c,1), top
// and bottom edges left as box-edge identity since they already sit on the
// unit box's y=0/y=1 borders.
func parallelogram(x, y, c float64) (float64, float64) {
	switch {
	case c == 0:
		return x, y
	case x < c:
		return onSegment(x, y, c, 0, 0, 1)
	case x > 1-c:
		return onSegment(x, y, 1, 0, 1-c, 1)
	default:
		return x, y
	}
}

// trapezoid projects onto the outline (c,0)-(1-c,0)-(1,1)-(0,1)-(c,0): a
// narrower top edge than parallelogram's, with both slanted sides meeting
// the full-width bottom edge. Only the two slanted sides are adjusted; top
// and bottom stay at their box-edge identity.
func trapezoid(x, y, c float64) (float64, float64) {
	switch {
	case c == 0:
		return x, y
	case x < c:
		return onSegment(x, y, c, 0, 0, 1)
	case x > 1-c:
		return onSegment(x, y, 1-c, 0, 1, 1)
	default:
		return x, y
	}
}

// hexagon projects onto all four corner notches of the six-sided outline
// (c,0)-(1-c,0)-(1,0.5)-(1-c,1)-(c,1)-(0,0.5)-(c,0), unlike parallelogram
// and trapezoid it cuts every corner, not just two.
func hexagon(x, y, c float64) (float64, float64) {
	switch {
	case c == 0:
		return x, y
	case x < c && y < 0.5:
		return onSegment(x, y, 0, 0.5, c, 0)
	case x > 1-c && y < 0.5:
		return onSegment(x, y, 1, 0.5, 1-c, 0)
	case x < c:
		return onSegment(x, y, 0, 0.5, c, 1)
	case x > 1-c:
		return onSegment(x, y, 1, 0.5, 1-c, 1)
	default:
		return x, y
	}
}

// step is a six-sided arrow outline: a concave notch to depth c cut into the
// left edge's midpoint, (0,0)-(c,0.5)-(0,1), and a point of the same depth
// projecting out of the right edge's midpoint, (1-c,0)-(1,0.5)-(1-c,1). Top
// and bottom edges are left as box-edge identity.
func step(x, y, c float64) (float64, float64) {
	switch {
	case x == 0 && c > 0.5 && y > 0 && y < 1:
		return 0.5, 0.5
	case y == 0.5:
		if x == 0 {
			return c, 0.5
		}
		return x, y
	case x == 0 && y < 0.5:
		return onSegment(x, y, 0, 0, c, 0.5)
	case x == 0:
		return onSegment(x, y, c, 0.5, 0, 1)
	case x > 1-c && y < 0.5:
		return onSegment(x, y, 1-c, 0, 1, 0.5)
	case x > 1-c:
		return onSegment(x, y, 1, 0.5, 1-c, 1)
	default:
		return x, y
	}
}

// onSegment intersects the ray from (0.5,0.5) through (x,y) with the
// infinite line through (ax,ay)-(bx,by), clamped to the segment's span.
func onSegment(x, y, ax, ay, bx, by float64) (float64, float64) {
	cx, cy := 0.5, 0.5
	dx, dy := x-cx, y-cy
	ex, ey := bx-ax, by-ay

	denom := dx*ey - dy*ex
	if denom == 0 {
		return x, y
	}
	t := ((ax-cx)*ey - (ay-cy)*ex) / denom
	ix, iy := cx+t*dx, cy+t*dy

	u := 0.0
	if ex != 0 {
		u = (ix - ax) / ex
	} else if ey != 0 {
		u = (iy - ay) / ey
	}
	if u < 0 {
		return ax, ay
	}
	if u > 1 {
		return bx, by
	}
	return ix, iy
}
