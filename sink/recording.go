package sink

// Call records one sink method invocation, for tests and for the demo CLI's
// dump of what a render produced.
type Call struct {
	Method string
	Props  Props
	Text   string
}

// RecordingSink is a Sink that appends every call it receives, in order,
// instead of drawing anything. It is the engine's reference test collaborator
// and stands in for a real output-document backend.
type RecordingSink struct {
	Calls []Call
}

func (r *RecordingSink) record(method string, props Props) {
	r.Calls = append(r.Calls, Call{Method: method, Props: props})
}

func (r *RecordingSink) SetStyle(props Props)            { r.record("setStyle", props) }
func (r *RecordingSink) OpenGroup(props Props)            { r.record("openGroup", props) }
func (r *RecordingSink) CloseGroup()                      { r.record("closeGroup", nil) }
func (r *RecordingSink) DrawRectangle(props Props)        { r.record("drawRectangle", props) }
func (r *RecordingSink) DrawEllipse(props Props)          { r.record("drawEllipse", props) }
func (r *RecordingSink) DrawPath(props Props)             { r.record("drawPath", props) }
func (r *RecordingSink) DrawConnector(props Props)        { r.record("drawConnector", props) }
func (r *RecordingSink) DefineCharacterStyle(props Props) { r.record("defineCharacterStyle", props) }
func (r *RecordingSink) StartTextObject(props Props)      { r.record("startTextObject", props) }
func (r *RecordingSink) EndTextObject()                   { r.record("endTextObject", nil) }
func (r *RecordingSink) OpenParagraph(props Props)        { r.record("openParagraph", props) }
func (r *RecordingSink) CloseParagraph()                  { r.record("closeParagraph", nil) }
func (r *RecordingSink) OpenSpan(props Props)             { r.record("openSpan", props) }
func (r *RecordingSink) CloseSpan()                       { r.record("closeSpan", nil) }
func (r *RecordingSink) InsertText(s string) {
	r.Calls = append(r.Calls, Call{Method: "insertText", Text: s})
}
