// Package sink adapts shape/edge/route output into the external
// drawing-sink protocol: a capability interface the rendering session pushes
// calls through, and a RecordingSink reference implementation for tests.
package sink

import (
	strip "github.com/grokify/html-strip-tags-go"

	"drawioengine/path"
	"drawioengine/shape"
	"drawioengine/style"
)

// Props is the property bag every sink call receives; keys mirror the
// attribute names used throughout (e.g. "svg:x", "draw:transform").
type Props map[string]any

// Sink is the capability set the engine depends on but does not implement.
// A real implementation translates these calls into an output document
// (SVG, ODG, ...); this package only adapts engine output to the interface.
type Sink interface {
	SetStyle(props Props)
	OpenGroup(props Props)
	CloseGroup()
	DrawRectangle(props Props)
	DrawEllipse(props Props)
	DrawPath(props Props)
	DrawConnector(props Props)
	DefineCharacterStyle(props Props)
	StartTextObject(props Props)
	EndTextObject()
	OpenParagraph(props Props)
	CloseParagraph()
	OpenSpan(props Props)
	CloseSpan()
	InsertText(s string)
}

// Marker is the single supported arrowhead family's fixed geometry.
const (
	ClassicMarkerViewBox = "0 0 40 40"
	ClassicMarkerPath    = "M 20 0 L 40 40 L 20 30 L 0 40 Z"
)

// StripTags removes "<...>" runs from s character-wise, matching the
// original importer's processText: no HTML-awareness, just angle-bracket
// span removal.
func StripTags(s string) string {
	return strip.StripTags(s)
}

// pathActionName maps a path.Action to the sink's
// "librevenge:path-action" vocabulary.
func pathActionName(a path.Action) string { return string(rune(a)) }

// StepProps converts one path.Step into a drawPath step property bag.
func StepProps(s path.Step) Props {
	p := Props{"librevenge:path-action": pathActionName(s.Action), "svg:x": s.X, "svg:y": s.Y}
	switch s.Action {
	case path.QuadTo:
		p["svg:x1"] = s.X1
		p["svg:y1"] = s.Y1
	case path.CubicTo:
		p["svg:x1"], p["svg:y1"] = s.X1, s.Y1
		p["svg:x2"], p["svg:y2"] = s.X2, s.Y2
	}
	return p
}

// VertexShapeProps converts a shape.Result into the props for the
// matching drawRectangle/drawEllipse/drawPath call, and reports which.
func VertexShapeProps(r shape.Result) (call string, props Props) {
	switch r.Kind {
	case shape.KindRectangle:
		return "drawRectangle", Props{
			"svg:x": r.X, "svg:y": r.Y, "svg:width": r.Width, "svg:height": r.Height,
			"draw:transform": r.Transform,
		}
	case shape.KindEllipse:
		return "drawEllipse", Props{
			"svg:rx": r.Rx, "svg:ry": r.Ry, "svg:cx": r.Cx, "svg:cy": r.Cy,
			"librevenge:rotate": r.Rotation,
		}
	default:
		steps := make([]Props, len(r.Steps))
		for i, s := range r.Steps {
			steps[i] = StepProps(s)
		}
		return "drawPath", Props{"svg:d": steps}
	}
}

// FontStyleProps maps a style.Record's font attributes onto the sink's
// character-style property names.
func FontStyleProps(rec style.Record) Props {
	p := Props{
		"fo:font-family": rec.FontFamily,
		"fo:font-size":   rec.FontSize * 0.75,
	}
	if rec.FontStyle&1 != 0 {
		p["fo:font-weight"] = "bold"
	}
	if rec.FontStyle&2 != 0 {
		p["fo:font-style"] = "italic"
	}
	if rec.FontStyle&4 != 0 {
		p["style:text-underline-style"] = "solid"
	}
	return p
}

// TextAreaBounds returns the (x,y,width,height) of a label's text area in
// display units. The origin is offset by the label position's raw enum
// ordinal (LEFT=0, CENTER=1, RIGHT=2, and TOP/MIDDLE/BOTTOM analogously)
// times the cell's width/height, matching the original importer's
// "(geometry.x + (int)style.position*geometry.width)/100" — not a signed
// -1/0/1 multiplier, so the default CENTER/MIDDLE case offsets by one full
// width/height and RIGHT/BOTTOM by two.
func TextAreaBounds(geomX, geomY, geomWidth, geomHeight float64, rec style.Record) (x, y, w, h float64) {
	x = (geomX + float64(alignMultiplier(rec.LabelPosition))*geomWidth) / 100
	y = (geomY + float64(valignMultiplier(rec.VLabelPosition))*geomHeight) / 100
	return x, y, geomWidth / 100, geomHeight / 100
}

func alignMultiplier(a style.Align) int {
	switch a {
	case style.AlignLeft:
		return 0
	case style.AlignCenter:
		return 1
	case style.AlignRight:
		return 2
	default:
		return 1
	}
}

func valignMultiplier(v style.VAlign) int {
	switch v {
	case style.VAlignTop:
		return 0
	case style.VAlignMiddle:
		return 1
	case style.VAlignBottom:
		return 2
	default:
		return 1
	}
}
