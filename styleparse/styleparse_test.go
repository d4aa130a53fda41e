package styleparse

import (
	"testing"

	"drawioengine/core"
	"drawioengine/style"
)

func baseInput(s string) Input {
	return Input{StyleString: s, SourceBound: true, TargetBound: true, GeometryWidth: 100, GeometryHeight: 50}
}

func TestUnknownTokenIgnored(t *testing.T) {
	rec := Parse(baseInput("notAToken=5;alsoNot=x"))
	want := style.Default()
	// Both endpoints are bound in baseInput, so Parse derives
	// startFixed/endFixed as false, the same as Default(); set explicitly.
	want.StartFixed = false
	want.EndFixed = false
	if rec != want {
		t.Errorf("unknown tokens mutated the record:\ngot  %+v\nwant %+v", rec, want)
	}
}

func TestEllipseSetsShapeAndPerimeter(t *testing.T) {
	rec := Parse(baseInput("ellipse"))
	if rec.Shape != style.Ellipse {
		t.Errorf("Shape = %v, want Ellipse", rec.Shape)
	}
	if rec.Perimeter != style.EllipsePerimeter {
		t.Errorf("Perimeter = %v, want EllipsePerimeter", rec.Perimeter)
	}
}

func TestShapeTokenSelectsHexagon(t *testing.T) {
	rec := Parse(baseInput("shape=hexagon"))
	if rec.Shape != style.Hexagon {
		t.Errorf("Shape = %v, want Hexagon", rec.Shape)
	}
}

func TestHexagonSizeToken(t *testing.T) {
	rec := Parse(baseInput("shape=hexagon;size=30"))
	if rec.HexagonSize != 30 {
		t.Errorf("HexagonSize = %v, want 30", rec.HexagonSize)
	}
}

func TestStepSizeScaledWhenNotFixed(t *testing.T) {
	rec := Parse(baseInput("shape=step;direction=east;size=0.1"))
	// direction east => width axis => 0.1 * 100 = 10
	if rec.StepSize != 10 {
		t.Errorf("StepSize = %v, want 10", rec.StepSize)
	}
}

func TestStepSizeScaledByHeightForVerticalDirection(t *testing.T) {
	rec := Parse(baseInput("shape=step;direction=north;size=0.1"))
	if rec.StepSize != 5 {
		t.Errorf("StepSize = %v, want 5", rec.StepSize)
	}
}

func TestStepSizeNotScaledWhenFixedSize(t *testing.T) {
	rec := Parse(baseInput("shape=step;fixedSize=1;size=7"))
	if rec.StepSize != 7 {
		t.Errorf("StepSize = %v, want 7", rec.StepSize)
	}
}

func TestSizeIgnoredForWrongShape(t *testing.T) {
	rec := Parse(baseInput("shape=card;size=5"))
	if rec.HexagonSize != style.Default().HexagonSize {
		t.Errorf("HexagonSize mutated by size token meant for card")
	}
	if rec.CardSize != 5 {
		t.Errorf("CardSize = %v, want 5", rec.CardSize)
	}
}

func TestFillColorNoneVsValue(t *testing.T) {
	rec := Parse(baseInput("fillColor=none"))
	if rec.FillColor.State != style.ColorNone {
		t.Errorf("FillColor.State = %v, want ColorNone", rec.FillColor.State)
	}

	rec = Parse(baseInput("fillColor=#112233"))
	if rec.FillColor.State != style.ColorSet {
		t.Errorf("FillColor.State = %v, want ColorSet", rec.FillColor.State)
	}
	if rec.FillColor.Value.Hex() != "#112233" {
		t.Errorf("FillColor.Value.Hex() = %s, want #112233", rec.FillColor.Value.Hex())
	}
}

func TestFillColorDefaultLeavesUnset(t *testing.T) {
	rec := Parse(baseInput("fillColor=default"))
	if rec.FillColor.State != style.ColorUnset {
		t.Errorf("FillColor.State = %v, want ColorUnset", rec.FillColor.State)
	}
}

func TestFillColorMalformedIgnored(t *testing.T) {
	rec := Parse(baseInput("fillColor=purple"))
	if rec.FillColor.State != style.ColorUnset {
		t.Errorf("FillColor.State = %v, want ColorUnset (malformed ignored)", rec.FillColor.State)
	}
}

func TestStartFixedFromExitCoordinates(t *testing.T) {
	rec := Parse(baseInput("exitX=0.5;exitY=1"))
	if !rec.StartFixed {
		t.Error("StartFixed = false, want true when exitX and exitY present")
	}
}

func TestStartFixedWhenSourceUnbound(t *testing.T) {
	in := baseInput("")
	in.SourceBound = false
	rec := Parse(in)
	if !rec.StartFixed {
		t.Error("StartFixed = false, want true when source is unbound")
	}
}

func TestStartFixedRequiresBothExitCoords(t *testing.T) {
	rec := Parse(baseInput("exitX=0.5"))
	if rec.StartFixed {
		t.Error("StartFixed = true, want false when only exitX is present")
	}
}

func TestEdgeStyleOrthogonal(t *testing.T) {
	rec := Parse(baseInput("edgeStyle=orthogonalEdgeStyle"))
	if rec.EdgeStyle != style.Orthogonal {
		t.Errorf("EdgeStyle = %v, want Orthogonal", rec.EdgeStyle)
	}
}

func TestFontStyleBitfield(t *testing.T) {
	rec := Parse(baseInput("fontStyle=5")) // bold + underline
	if rec.FontStyle&1 == 0 {
		t.Error("bold bit not set")
	}
	if rec.FontStyle&2 != 0 {
		t.Error("italic bit unexpectedly set")
	}
	if rec.FontStyle&4 == 0 {
		t.Error("underline bit not set")
	}
}

func TestDirectionToken(t *testing.T) {
	rec := Parse(baseInput("direction=south"))
	if rec.Direction != core.South {
		t.Errorf("Direction = %v, want South", rec.Direction)
	}
}

func TestRotationNormalized(t *testing.T) {
	rec := Parse(baseInput("rotation=370"))
	if rec.Rotation != 10 {
		t.Errorf("Rotation = %v, want 10", rec.Rotation)
	}
}
