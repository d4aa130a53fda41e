package path

import (
	"math"
	"testing"

	"drawioengine/core"
)

func almostEqual(a, b float64) bool { return math.Abs(a-b) < 1e-9 }

func TestBuilderEastNoRotationAddsOriginOffset(t *testing.T) {
	b := NewBuilder(1000, 2000, 10000, 5000, core.East, 0)
	b.MoveTo(3, 4)
	if len(b.Steps) != 1 {
		t.Fatalf("len(Steps) = %d, want 1", len(b.Steps))
	}
	s := b.Steps[0]
	// origin = (10, 20); no rotation, so the point is just offset by origin.
	if !almostEqual(s.X, 13) || !almostEqual(s.Y, 24) {
		t.Errorf("MoveTo(3,4) = (%v,%v), want (13,24)", s.X, s.Y)
	}
}

func TestBuilderSwapsDimensionsForVerticalDirection(t *testing.T) {
	b := NewBuilder(0, 0, 10000, 5000, core.South, 0)
	// width/height are 100/50 pre-swap; South is vertical so they swap.
	if !almostEqual(b.Width, 50) || !almostEqual(b.Height, 100) {
		t.Errorf("Width,Height = %v,%v, want 50,100", b.Width, b.Height)
	}
}

func TestBuilderNoSwapForHorizontalDirection(t *testing.T) {
	b := NewBuilder(0, 0, 10000, 5000, core.East, 0)
	if !almostEqual(b.Width, 100) || !almostEqual(b.Height, 50) {
		t.Errorf("Width,Height = %v,%v, want 100,50", b.Width, b.Height)
	}
}

func TestAddPointsOpenPath(t *testing.T) {
	b := NewBuilder(0, 0, 10000, 5000, core.East, 0)
	b.AddPoints([][2]float64{{0, 0}, {10, 0}, {10, 10}}, false)
	if len(b.Steps) != 3 {
		t.Fatalf("len(Steps) = %d, want 3", len(b.Steps))
	}
	if b.Steps[0].Action != MoveTo {
		t.Errorf("Steps[0].Action = %c, want M", b.Steps[0].Action)
	}
	if b.Steps[1].Action != LineTo || b.Steps[2].Action != LineTo {
		t.Errorf("Steps[1:] actions = %c,%c, want L,L", b.Steps[1].Action, b.Steps[2].Action)
	}
}

func TestAddPointsClosedPath(t *testing.T) {
	b := NewBuilder(0, 0, 10000, 5000, core.East, 0)
	b.AddPoints([][2]float64{{0, 0}, {10, 0}, {10, 10}}, true)
	if len(b.Steps) != 4 {
		t.Fatalf("len(Steps) = %d, want 4", len(b.Steps))
	}
	if b.Steps[3].Action != Close {
		t.Errorf("last step action = %c, want Z", b.Steps[3].Action)
	}
}

func TestAddPointsEmptyIsNoop(t *testing.T) {
	b := NewBuilder(0, 0, 10000, 5000, core.East, 0)
	b.AddPoints(nil, true)
	if len(b.Steps) != 0 {
		t.Errorf("len(Steps) = %d, want 0", len(b.Steps))
	}
}
