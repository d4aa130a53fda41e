package sink

import (
	"testing"

	"drawioengine/path"
	"drawioengine/shape"
	"drawioengine/style"
)

func TestStripTagsRemovesMarkup(t *testing.T) {
	got := StripTags("hello <b>world</b>!")
	if got != "hello world!" {
		t.Errorf("StripTags = %q, want %q", got, "hello world!")
	}
}

func TestVertexShapePropsRectangle(t *testing.T) {
	r := shape.Result{Kind: shape.KindRectangle, X: 1, Y: 2, Width: 3, Height: 4, Transform: "t"}
	call, props := VertexShapeProps(r)
	if call != "drawRectangle" {
		t.Errorf("call = %q, want drawRectangle", call)
	}
	if props["svg:width"] != 3.0 {
		t.Errorf("svg:width = %v, want 3", props["svg:width"])
	}
}

func TestVertexShapePropsPath(t *testing.T) {
	r := shape.Result{Kind: shape.KindPath, Steps: []path.Step{{Action: path.MoveTo, X: 1, Y: 2}}}
	call, props := VertexShapeProps(r)
	if call != "drawPath" {
		t.Errorf("call = %q, want drawPath", call)
	}
	steps, ok := props["svg:d"].([]Props)
	if !ok || len(steps) != 1 {
		t.Fatalf("svg:d = %v, want a 1-element []Props", props["svg:d"])
	}
	if steps[0]["librevenge:path-action"] != "M" {
		t.Errorf("path-action = %v, want M", steps[0]["librevenge:path-action"])
	}
}

func TestRecordingSinkPreservesOrder(t *testing.T) {
	var s RecordingSink
	s.SetStyle(Props{"a": 1})
	s.OpenGroup(nil)
	s.InsertText("hi")
	s.CloseGroup()

	wantMethods := []string{"setStyle", "openGroup", "insertText", "closeGroup"}
	if len(s.Calls) != len(wantMethods) {
		t.Fatalf("len(Calls) = %d, want %d", len(s.Calls), len(wantMethods))
	}
	for i, m := range wantMethods {
		if s.Calls[i].Method != m {
			t.Errorf("Calls[%d].Method = %q, want %q", i, s.Calls[i].Method, m)
		}
	}
	if s.Calls[2].Text != "hi" {
		t.Errorf("Calls[2].Text = %q, want %q", s.Calls[2].Text, "hi")
	}
}

func TestFontStyleBitfieldMapsToProps(t *testing.T) {
	rec := style.Default()
	rec.FontStyle = 1 | 4 // bold + underline
	props := FontStyleProps(rec)
	if props["fo:font-weight"] != "bold" {
		t.Errorf("fo:font-weight = %v, want bold", props["fo:font-weight"])
	}
	if _, italic := props["fo:font-style"]; italic {
		t.Error("fo:font-style should be absent when italic bit is unset")
	}
	if props["style:text-underline-style"] != "solid" {
		t.Errorf("style:text-underline-style = %v, want solid", props["style:text-underline-style"])
	}
}
