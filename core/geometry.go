// Package core contains the geometry primitives shared by every stage of the
// diagram rendering engine: points, rectangles, direction algebra and color.
package core

import (
	"fmt"
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// Point is a 2D coordinate. The engine keeps coordinates in hundredths of a
// display unit end to end; conversion to display units happens only at the
// sink boundary, where the shape and render packages divide by 100.
type Point struct {
	X, Y float64
}

// Add returns p translated by q.
func (p Point) Add(q Point) Point {
	return Point{p.X + q.X, p.Y + q.Y}
}

// Sub returns the vector from q to p.
func (p Point) Sub(q Point) Point {
	return Point{p.X - q.X, p.Y - q.Y}
}

// Scale returns p scaled by s about the origin.
func (p Point) Scale(s float64) Point {
	return Point{p.X * s, p.Y * s}
}

// RotateAbout rotates p about center by subtracting angle (radians) from the
// vector's current polar angle. This mirrors the sign convention of the
// mxGraph importer this engine replaces: a positive angle turns a point
// counter-clockwise as seen in the (y-down) display frame. Callers that want
// a clockwise on-screen turn (the style rotation convention) pass -angle.
func (p Point) RotateAbout(center Point, angle float64) Point {
	dx, dy := p.X-center.X, p.Y-center.Y
	if dx == 0 && dy == 0 {
		return p
	}
	r := math.Hypot(dx, dy)
	oldAngle := math.Atan2(dy, dx)
	newAngle := oldAngle - angle
	sin, cos := math.Sincos(newAngle)
	return Point{
		X: center.X + r*cos,
		Y: center.Y + r*sin,
	}
}

// Rect is an axis-aligned bounding box in the local (pre-rotation) frame.
type Rect struct {
	X, Y, Width, Height float64
}

// Center returns the center point of the rectangle.
func (r Rect) Center() Point {
	return Point{r.X + r.Width/2, r.Y + r.Height/2}
}

// ExpandToInclude returns the smallest rectangle containing both r and the
// point p.
func (r Rect) ExpandToInclude(p Point) Rect {
	minX, minY := math.Min(r.X, p.X), math.Min(r.Y, p.Y)
	maxX, maxY := math.Max(r.X+r.Width, p.X), math.Max(r.Y+r.Height, p.Y)
	return Rect{minX, minY, maxX - minX, maxY - minY}
}

// BoundsOf returns the bounding rectangle of a non-empty set of points.
func BoundsOf(points []Point) Rect {
	if len(points) == 0 {
		return Rect{}
	}
	r := Rect{points[0].X, points[0].Y, 0, 0}
	for _, p := range points[1:] {
		r = r.ExpandToInclude(p)
	}
	return r
}

// Direction is one of the four cardinal orientations, used both as a shape's
// facing and as an edge stub's outgoing direction. Encoded so that
// opposite(d) = d XOR 2 and perpendicular(a,b) holds exactly when (a XOR b)
// is odd.
type Direction int

const (
	North Direction = iota
	East
	South
	West
)

func (d Direction) String() string {
	switch d {
	case North:
		return "North"
	case East:
		return "East"
	case South:
		return "South"
	case West:
		return "West"
	default:
		return "Unknown"
	}
}

// Opposite returns the reverse direction.
func (d Direction) Opposite() Direction {
	return d ^ 2
}

// Horizontal reports whether d is East or West.
func (d Direction) Horizontal() bool {
	return d&1 == 1
}

// Vertical reports whether d is North or South.
func (d Direction) Vertical() bool {
	return d&1 == 0
}

// Perpendicular reports whether d and o are at right angles to each other.
func (d Direction) Perpendicular(o Direction) bool {
	return (d^o)&1 == 1
}

// FacingAngle returns the rotation, in radians, an "EAST-facing" canonical
// shape has been turned through to face d: pi*(d-1)/2.
func (d Direction) FacingAngle() float64 {
	return math.Pi * float64(d-East) / 2
}

// ParseDirection maps the style-string tokens "north"/"east"/"south"/"west"
// to a Direction. ok is false for any other value, per the "ignore unknown
// enum values" error policy.
func ParseDirection(s string) (d Direction, ok bool) {
	switch s {
	case "north":
		return North, true
	case "east":
		return East, true
	case "south":
		return South, true
	case "west":
		return West, true
	default:
		return East, false
	}
}

// Color is a four-channel 8-bit color. Alpha is carried separately from the
// opacity style attribute (which applies to the whole cell, not the fill).
type Color struct {
	R, G, B, A uint8
}

// Hex serializes the color as "#RRGGBB"; alpha is not included, matching the
// sink's svg:*-color property convention.
func (c Color) Hex() string {
	cf := colorful.Color{R: float64(c.R) / 255, G: float64(c.G) / 255, B: float64(c.B) / 255}
	return cf.Hex()
}

// ParseHexColor parses a "#RRGGBB" string into a Color with alpha 255.
// Malformed input is a "malformed style" error per spec §7 class 1: the
// caller ignores the token and leaves the attribute at its prior state.
func ParseHexColor(s string) (Color, error) {
	cf, err := colorful.Hex(s)
	if err != nil {
		return Color{}, fmt.Errorf("parse color %q: %w", s, err)
	}
	r, g, b := cf.RGB255()
	return Color{R: r, G: g, B: b, A: 255}, nil
}
