// Package styleparse converts a drawio-family semicolon-separated style
// string into a populated style.Record. Unknown tokens and unparseable
// values are ignored silently (spec.md §7 error class 1): the defaulted
// value in the record is left untouched.
package styleparse

import (
	"strconv"
	"strings"

	"drawioengine/core"
	"drawioengine/style"
)

// Input bundles the extra context the parser needs beyond the style string
// itself: whether the edge's source/target are bound to a shape (an unbound
// endpoint forces startFixed/endFixed true) and the cell's own geometry,
// which the STEP shape's "size" token scales against.
type Input struct {
	StyleString      string
	SourceBound      bool
	TargetBound      bool
	GeometryWidth    float64
	GeometryHeight   float64
}

// Parse tokenizes input.StyleString and returns a populated style.Record
// seeded from style.Default(). It is a pure function of its argument.
func Parse(in Input) style.Record {
	rec := style.Default()

	tokens := tokenize(in.StyleString)

	var hasExitX, hasExitY, hasEntryX, hasEntryY bool

	// Pass 1: entry/exit coordinates, port constraints, direction, shape
	// selection and fixedSize. These must land before any shape-dependent
	// token (size, base, position, position2, dx, dy) is interpreted, and
	// direction must land before STEP's "size" scaling.
	for _, tok := range tokens {
		switch tok.key {
		case "entryX":
			if v, ok := parseFloat(tok.value); ok {
				rec.EntryX = style.Some(v)
				hasEntryX = true
			}
		case "entryY":
			if v, ok := parseFloat(tok.value); ok {
				rec.EntryY = style.Some(v)
				hasEntryY = true
			}
		case "exitX":
			if v, ok := parseFloat(tok.value); ok {
				rec.ExitX = style.Some(v)
				hasExitX = true
			}
		case "exitY":
			if v, ok := parseFloat(tok.value); ok {
				rec.ExitY = style.Some(v)
				hasExitY = true
			}
		case "entryDx":
			if v, ok := parseFloat(tok.value); ok {
				rec.EntryDx = v
			}
		case "entryDy":
			if v, ok := parseFloat(tok.value); ok {
				rec.EntryDy = v
			}
		case "exitDx":
			if v, ok := parseFloat(tok.value); ok {
				rec.ExitDx = v
			}
		case "exitDy":
			if v, ok := parseFloat(tok.value); ok {
				rec.ExitDy = v
			}
		case "sourcePortConstraint":
			if d, ok := core.ParseDirection(tok.value); ok {
				rec.SourcePortConstraint = style.DirectionAttr{Present: true, Value: d}
			}
		case "targetPortConstraint":
			if d, ok := core.ParseDirection(tok.value); ok {
				rec.TargetPortConstraint = style.DirectionAttr{Present: true, Value: d}
			}
		case "PortConstraint":
			if d, ok := core.ParseDirection(tok.value); ok {
				rec.PortConstraint = style.DirectionAttr{Present: true, Value: d}
			}
		case "ellipse":
			rec.Shape, rec.Perimeter = style.Ellipse, style.EllipsePerimeter
		case "triangle":
			rec.Shape, rec.Perimeter = style.Triangle, style.TrianglePerimeter
		case "rhombus":
			rec.Shape, rec.Perimeter = style.Rhombus, style.RhombusPerimeter
		case "shape":
			if k, ok := parseShape(tok.value); ok {
				rec.Shape = k
			}
		case "perimeter":
			if k, ok := parsePerimeter(tok.value); ok {
				rec.Perimeter = k
			}
		case "direction":
			if d, ok := core.ParseDirection(tok.value); ok {
				rec.Direction = d
			}
		case "fixedSize":
			if v, ok := parseBool(tok.value); ok {
				rec.FixedSize = v
			}
		}
	}

	rec.StartFixed = (hasExitX && hasExitY) || !in.SourceBound
	rec.EndFixed = (hasEntryX && hasEntryY) || !in.TargetBound

	// Pass 2: everything that depends on the shape/direction/fixedSize
	// resolved above.
	for _, tok := range tokens {
		switch tok.key {
		case "size":
			v, ok := parseFloat(tok.value)
			if !ok {
				continue
			}
			switch rec.Shape {
			case style.Callout:
				rec.CalloutLength = v
			case style.Process:
				rec.ProcessBarSize = v
			case style.Parallelogram:
				rec.ParallelogramSize = v
			case style.Hexagon:
				rec.HexagonSize = v
			case style.Step:
				rec.StepSize = v
				if !rec.FixedSize {
					if rec.Direction == core.North || rec.Direction == core.South {
						rec.StepSize *= in.GeometryHeight
					} else {
						rec.StepSize *= in.GeometryWidth
					}
				}
			case style.Trapezoid:
				rec.TrapezoidSize = v
			case style.Card:
				rec.CardSize = v
			case style.Document:
				rec.DocumentSize = v
			case style.Tape:
				rec.TapeSize = v
			case style.DataStorage:
				rec.DataStorageSize = v
			}
		case "base":
			if v, ok := parseFloat(tok.value); ok && rec.Shape == style.Callout {
				rec.CalloutWidth = v
			}
		case "position":
			if v, ok := parseFloat(tok.value); ok && rec.Shape == style.Callout {
				rec.CalloutPosition = v
			}
		case "position2":
			if v, ok := parseFloat(tok.value); ok && rec.Shape == style.Callout {
				rec.CalloutTipPosition = v
			}
		case "dx":
			if v, ok := parseFloat(tok.value); ok && rec.Shape == style.InternalStorage {
				rec.StorageX = v
			}
		case "dy":
			if v, ok := parseFloat(tok.value); ok && rec.Shape == style.InternalStorage {
				rec.StorageY = v
			}
		case "fillColor":
			parseColorToken(tok.value, &rec.FillColor)
		case "strokeColor":
			parseColorToken(tok.value, &rec.StrokeColor)
		case "fontColor":
			parseColorToken(tok.value, &rec.FontColor)
		case "labelBackgroundColor":
			parseColorToken(tok.value, &rec.LabelBackgroundColor)
		case "labelBorderColor":
			parseColorToken(tok.value, &rec.LabelBorderColor)
		case "startArrow":
			parseArrowToken(tok.value, &rec.StartArrow)
		case "endArrow":
			parseArrowToken(tok.value, &rec.EndArrow)
		case "startFill":
			if v, ok := parseBool(tok.value); ok {
				rec.StartFill = v
			}
		case "endFill":
			if v, ok := parseBool(tok.value); ok {
				rec.EndFill = v
			}
		case "startSize":
			if v, ok := parseFloat(tok.value); ok {
				rec.StartSize = v
			}
		case "endSize":
			if v, ok := parseFloat(tok.value); ok {
				rec.EndSize = v
			}
		case "rotation":
			if v, ok := parseFloat(tok.value); ok {
				rec.Rotation = style.NormalizeRotation(v)
			}
		case "edgeStyle":
			if tok.value == "orthogonalEdgeStyle" {
				rec.EdgeStyle = style.Orthogonal
			}
		case "fontFamily":
			rec.FontFamily = tok.value
		case "fontSize":
			if v, ok := parseFloat(tok.value); ok {
				rec.FontSize = v
			}
		case "fontStyle":
			if v, err := strconv.Atoi(tok.value); err == nil {
				rec.FontStyle = v
			}
		case "align":
			if a, ok := parseAlign(tok.value); ok {
				rec.Align = a
			}
		case "verticalAlign":
			if a, ok := parseVAlign(tok.value); ok {
				rec.VerticalAlign = a
			}
		case "labelPosition":
			if a, ok := parseAlign(tok.value); ok {
				rec.LabelPosition = a
			}
		case "verticalLabelPosition":
			if a, ok := parseVAlign(tok.value); ok {
				rec.VLabelPosition = a
			}
		}
	}

	return rec
}

type token struct{ key, value string }

func tokenize(s string) []token {
	parts := strings.Split(s, ";")
	tokens := make([]token, 0, len(parts))
	for _, p := range parts {
		if p == "" {
			continue
		}
		if i := strings.IndexByte(p, '='); i >= 0 {
			tokens = append(tokens, token{key: p[:i], value: p[i+1:]})
		} else {
			tokens = append(tokens, token{key: p, value: ""})
		}
	}
	return tokens
}

func parseFloat(s string) (float64, bool) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

func parseBool(s string) (bool, bool) {
	switch s {
	case "1", "true":
		return true, true
	case "0", "false":
		return false, true
	default:
		return false, false
	}
}

func parseShape(s string) (style.ShapeKind, bool) {
	switch s {
	case "callout":
		return style.Callout, true
	case "process":
		return style.Process, true
	case "parallelogram":
		return style.Parallelogram, true
	case "hexagon":
		return style.Hexagon, true
	case "step":
		return style.Step, true
	case "trapezoid":
		return style.Trapezoid, true
	case "card":
		return style.Card, true
	case "internalStorage":
		return style.InternalStorage, true
	case "or":
		return style.Or, true
	case "xor":
		return style.Xor, true
	case "document":
		return style.Document, true
	case "tape":
		return style.Tape, true
	case "dataStorage":
		return style.DataStorage, true
	default:
		return style.Rectangle, false
	}
}

func parsePerimeter(s string) (style.PerimeterKind, bool) {
	switch s {
	case "rectanglePerimeter":
		return style.RectanglePerimeter, true
	case "ellipsePerimeter":
		return style.EllipsePerimeter, true
	case "trianglePerimeter":
		return style.TrianglePerimeter, true
	case "calloutPerimeter":
		return style.CalloutPerimeter, true
	case "rhombusPerimeter":
		return style.RhombusPerimeter, true
	case "parallelogramPerimeter":
		return style.ParallelogramPerimeter, true
	case "hexagonPerimeter", "hexagonPerimeter2":
		return style.HexagonPerimeter, true
	case "stepPerimeter":
		return style.StepPerimeter, true
	case "trapezoidPerimeter":
		return style.TrapezoidPerimeter, true
	default:
		return style.RectanglePerimeter, false
	}
}

func parseColorToken(v string, attr *style.ColorAttr) {
	switch v {
	case "none":
		attr.SetNone()
	case "default":
		// leave default
	default:
		if c, err := core.ParseHexColor(v); err == nil {
			attr.Set(c)
		}
	}
}

func parseArrowToken(v string, attr *style.ArrowAttr) {
	switch v {
	case "none":
		attr.State = style.ArrowNone
	case "classic":
		attr.State = style.ArrowSet
		attr.Kind = style.Classic
	}
}

func parseAlign(s string) (style.Align, bool) {
	switch s {
	case "left":
		return style.AlignLeft, true
	case "center":
		return style.AlignCenter, true
	case "right":
		return style.AlignRight, true
	default:
		return style.AlignCenter, false
	}
}

func parseVAlign(s string) (style.VAlign, bool) {
	switch s {
	case "top":
		return style.VAlignTop, true
	case "middle":
		return style.VAlignMiddle, true
	case "bottom":
		return style.VAlignBottom, true
	default:
		return style.VAlignMiddle, false
	}
}
