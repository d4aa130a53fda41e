// Package shape renders one vertex cell into either a sink primitive
// (rectangle, ellipse) or a drawing path, dispatching on style.ShapeKind.
package shape

import (
	"fmt"
	"math"

	"drawioengine/path"
	"drawioengine/style"
)

// Kind distinguishes the two sink primitive calls from the generic path
// call; Steps is populated only when Kind == KindPath.
type Kind int

const (
	KindRectangle Kind = iota
	KindEllipse
	KindPath
)

// Result is what the shape renderer hands to the sink adapter.
type Result struct {
	Kind Kind

	// Rectangle
	X, Y, Width, Height float64 // display units
	Transform           string  // draw:transform

	// Ellipse
	Rx, Ry, Cx, Cy, Rotation float64 // display units / degrees

	// Path
	Steps []path.Step
}

// Render builds the Result for a vertex with the given raw geometry
// (hundredths of a display unit) and resolved style.
func Render(geomX, geomY, geomWidth, geomHeight float64, rec style.Record) Result {
	switch rec.Shape {
	case style.Rectangle:
		return renderRectangle(geomX, geomY, geomWidth, geomHeight, rec.Rotation)
	case style.Ellipse:
		return renderEllipse(geomX, geomY, geomWidth, geomHeight, rec.Rotation)
	default:
		return renderPath(geomX, geomY, geomWidth, geomHeight, rec)
	}
}

func renderRectangle(x, y, width, height, rotationDeg float64) Result {
	rx, ry := width/200, height/200
	cx, cy := x/100+rx, y/100+ry
	angle := -rotationDeg * math.Pi / 180

	var dx, dy float64
	if rx != 0 {
		h := math.Hypot(rx, ry)
		base := math.Atan(ry/rx) - angle
		dx = h*math.Cos(base) - rx
		dy = h*math.Sin(base) - ry
	}

	// Snap floating-point noise and negative zero to 0 so an unrotated
	// rectangle at the origin formats as an exact identity transform.
	snap := func(v float64) float64 {
		if math.Abs(v) < 1e-9 {
			return 0
		}
		return v
	}

	transform := fmt.Sprintf(
		"translate(%gin,%gin) rotate(%g) translate(%gin,%gin)",
		snap(-x/100), snap(-y/100), snap(angle), snap(cx-rx-dx), snap(cy-ry-dy),
	)

	return Result{
		Kind:      KindRectangle,
		X:         x / 100,
		Y:         y / 100,
		Width:     width / 100,
		Height:    height / 100,
		Transform: transform,
	}
}

func renderEllipse(x, y, width, height, rotationDeg float64) Result {
	rx, ry := width/200, height/200
	cx, cy := x/100+rx, y/100+ry
	return Result{
		Kind:     KindEllipse,
		Rx:       rx,
		Ry:       ry,
		Cx:       cx,
		Cy:       cy,
		Rotation: -rotationDeg,
	}
}

func renderPath(geomX, geomY, geomWidth, geomHeight float64, rec style.Record) Result {
	b := path.NewBuilder(geomX, geomY, geomWidth, geomHeight, rec.Direction, rec.Rotation)
	w, h := b.Width, b.Height

	switch rec.Shape {
	case style.Triangle:
		b.AddPoints([][2]float64{{0, 0}, {w, h / 2}, {0, h}}, true)
	case style.Callout:
		s := math.Max(0, rec.CalloutLength/100)
		dx := w * clamp01(rec.CalloutPosition)
		dx2 := w * clamp01(rec.CalloutTipPosition)
		base := math.Max(0, rec.CalloutWidth/100)
		b.AddPoints([][2]float64{
			{0, 0}, {w, 0}, {w, h - s}, {dx + base, h - s},
			{dx2, h}, {dx, h - s}, {0, h - s},
		}, true)
	case style.Process:
		inset := w * clamp01(rec.ProcessBarSize)
		b.MoveTo(inset, 0)
		b.LineTo(inset, h)
		b.Close()
		b.MoveTo(w-inset, 0)
		b.LineTo(w-inset, h)
		b.Close()
		b.AddPoints([][2]float64{{0, 0}, {w, 0}, {w, h}, {0, h}}, true)
	case style.Rhombus:
		b.AddPoints([][2]float64{{w / 2, 0}, {w, h / 2}, {w / 2, h}, {0, h / 2}}, true)
	case style.Parallelogram:
		dx := rec.ParallelogramSize / 100
		b.AddPoints([][2]float64{{0, h}, {dx, 0}, {w, 0}, {w - dx, h}}, true)
	case style.Hexagon:
		s := rec.HexagonSize / 100
		b.AddPoints([][2]float64{
			{s, 0}, {w - s, 0}, {w, h / 2}, {w - s, h}, {s, h}, {0, h / 2},
		}, true)
	case style.Step:
		s := rec.StepSize / 100
		b.AddPoints([][2]float64{
			{0, 0}, {w - s, 0}, {w, h / 2}, {w - s, h}, {0, h}, {s, h / 2},
		}, true)
	case style.Trapezoid:
		dx := rec.TrapezoidSize / 100
		b.AddPoints([][2]float64{{0, h}, {dx, 0}, {w - dx, 0}, {w, h}}, true)
	case style.Card:
		s := rec.CardSize / 100
		b.AddPoints([][2]float64{{s, 0}, {w, 0}, {w, h}, {0, h}, {0, s}}, true)
	case style.InternalStorage:
		dx, dy := rec.StorageX/100, rec.StorageY/100
		b.MoveTo(0, dy)
		b.LineTo(w, dy)
		b.Close()
		b.MoveTo(dx, 0)
		b.LineTo(dx, h)
		b.Close()
		b.AddPoints([][2]float64{{0, 0}, {w, 0}, {w, h}, {0, h}}, true)
	case style.Or:
		b.MoveTo(0, 0)
		b.QuadTo(w, 0, w, h/2)
		b.QuadTo(w, h, 0, h)
		b.Close()
	case style.Xor:
		b.MoveTo(0, 0)
		b.QuadTo(w, 0, w, h/2)
		b.QuadTo(w, h, 0, h)
		b.QuadTo(w/2, h/2, 0, 0)
		b.Close()
	case style.Document:
		dy := h * rec.DocumentSize
		const fy = 1.4
		b.MoveTo(0, 0)
		b.LineTo(w, 0)
		b.LineTo(w, h-dy/2)
		b.QuadTo(w*3/4, h-dy*fy, w/2, h-dy/2)
		b.QuadTo(w/4, h-dy*(1-fy), 0, h-dy/2)
		b.Close()
	case style.Tape:
		dy := h * rec.TapeSize
		const fy = 1.4
		b.MoveTo(0, dy/2)
		b.QuadTo(w/4, dy*fy, w/2, dy/2)
		b.QuadTo(w*3/4, dy*(1-fy), w, dy/2)
		b.LineTo(w, h-dy/2)
		b.QuadTo(w*3/4, h-dy*fy, w/2, h-dy/2)
		b.QuadTo(w/4, h-dy*(1-fy), 0, h-dy/2)
		b.Close()
	case style.DataStorage:
		s := rec.DataStorageSize / 100
		b.MoveTo(s, 0)
		b.LineTo(w, 0)
		b.QuadTo(w-2*s, h/2, w, h)
		b.LineTo(s, h)
		b.QuadTo(s-2*s, h/2, s, 0)
		b.Close()
	default:
		b.AddPoints([][2]float64{{0, 0}, {w, 0}, {w, h}, {0, h}}, true)
	}

	return Result{Kind: KindPath, Steps: b.Steps}
}

func clamp01(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}
