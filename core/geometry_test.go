package core

import (
	"math"
	"testing"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestDirectionOpposite(t *testing.T) {
	for _, d := range []Direction{North, East, South, West} {
		if got := d.Opposite().Opposite(); got != d {
			t.Errorf("Opposite(Opposite(%v)) = %v, want %v", d, got, d)
		}
	}
}

func TestDirectionHorizontalVerticalExclusive(t *testing.T) {
	for _, d := range []Direction{North, East, South, West} {
		if d.Horizontal() == d.Vertical() {
			t.Errorf("%v: Horizontal()=%v Vertical()=%v, want exactly one true", d, d.Horizontal(), d.Vertical())
		}
	}
}

func TestDirectionPerpendicularToOpposite(t *testing.T) {
	for _, d := range []Direction{North, East, South, West} {
		if d.Perpendicular(d.Opposite()) {
			t.Errorf("%v.Perpendicular(%v) = true, want false", d, d.Opposite())
		}
	}
}

func TestDirectionPerpendicularCases(t *testing.T) {
	cases := []struct {
		a, b Direction
		want bool
	}{
		{North, East, true},
		{North, West, true},
		{East, South, true},
		{North, South, false},
		{East, West, false},
	}
	for _, c := range cases {
		if got := c.a.Perpendicular(c.b); got != c.want {
			t.Errorf("%v.Perpendicular(%v) = %v, want %v", c.a, c.b, got, c.want)
		}
	}
}

func TestPointRotateAboutIdentity(t *testing.T) {
	p := Point{10, 20}
	c := Point{5, 5}
	got := p.RotateAbout(c, 0)
	if !almostEqual(got.X, p.X) || !almostEqual(got.Y, p.Y) {
		t.Errorf("RotateAbout(0) = %v, want %v", got, p)
	}
}

func TestPointRotateAboutQuarterTurn(t *testing.T) {
	// A point directly east of center, rotated by -pi/2: old angle 0, new
	// angle 0 - (-pi/2) = pi/2, i.e. (cos(pi/2), sin(pi/2)) = (0, 1), which
	// is directly below center in the y-down frame (a clockwise quarter turn
	// on screen).
	c := Point{0, 0}
	p := Point{1, 0}
	got := p.RotateAbout(c, -math.Pi/2)
	if !almostEqual(got.X, 0) || !almostEqual(got.Y, 1) {
		t.Errorf("RotateAbout(-pi/2) = %v, want (0,1)", got)
	}
}

func TestColorHexRoundTrip(t *testing.T) {
	c, err := ParseHexColor("#112233")
	if err != nil {
		t.Fatalf("ParseHexColor: %v", err)
	}
	if got, want := c.Hex(), "#112233"; got != want {
		t.Errorf("Hex() = %s, want %s", got, want)
	}
}

func TestColorParseMalformedIsError(t *testing.T) {
	if _, err := ParseHexColor("not-a-color"); err == nil {
		t.Error("ParseHexColor(\"not-a-color\") = nil error, want error")
	}
}

func TestBoundsOf(t *testing.T) {
	r := BoundsOf([]Point{{0, 0}, {10, 5}, {-2, 8}})
	want := Rect{-2, 0, 12, 8}
	if r != want {
		t.Errorf("BoundsOf = %+v, want %+v", r, want)
	}
}
