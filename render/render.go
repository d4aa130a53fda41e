// Package render owns the per-session rendering pipeline: it wires the
// style parser, shape renderer, perimeter projector, edge resolver and
// orthogonal router together and drives a drawing Sink.
package render

import (
	"drawioengine/core"
	"drawioengine/diagram"
	"drawioengine/edge"
	"drawioengine/route"
	"drawioengine/shape"
	"drawioengine/sink"
	"drawioengine/style"
	"drawioengine/styleparse"
)

// Renderer drives one rendering session over a cell table. Its draw counter
// is scoped to the Renderer instance so that two independent sessions (e.g.
// two documents rendered concurrently on separate goroutines, each holding
// its own Renderer and Sink) never collide on style names.
type Renderer struct {
	sink      sink.Sink
	drawCount int
}

// New returns a Renderer that will push calls to s.
func New(s sink.Sink) *Renderer {
	return &Renderer{sink: s}
}

// RenderTable renders every cell in table, in table order.
func (r *Renderer) RenderTable(table *diagram.Table) {
	for _, c := range table.Cells() {
		r.RenderCell(c, table)
	}
}

// ResolveStyles parses every cell's StyleString into its Style field. Edge
// cells get SourceBound/TargetBound derived from whether their source/target
// ID resolves in table, so startFixed/endFixed come out correctly even for
// dangling references.
func ResolveStyles(table *diagram.Table) {
	for _, c := range table.Cells() {
		in := styleparse.Input{
			StyleString:    c.StyleString,
			GeometryWidth:  c.Geometry.Width,
			GeometryHeight: c.Geometry.Height,
		}
		if c.IsEdge {
			in.SourceBound = table.Lookup(c.SourceID) != nil
			in.TargetBound = table.Lookup(c.TargetID) != nil
		} else {
			in.SourceBound, in.TargetBound = true, true
		}
		c.Style = styleparse.Parse(in)
	}
}

// RenderCell renders a single vertex or edge cell. Cells that are neither
// (e.g. a bare layer container) are skipped.
func (r *Renderer) RenderCell(c *diagram.Cell, table *diagram.Table) {
	switch {
	case c.IsVertex:
		r.renderVertex(c, table)
	case c.IsEdge:
		r.renderEdge(c, table)
	}
}

func (r *Renderer) styleName() string {
	name := styleName(r.drawCount)
	r.drawCount++
	return name
}

func styleName(n int) string {
	const prefix = "gr_"
	return prefix + itoa(n)
}

func itoa(n int) string {
	if n == 0 {
		return "0"
	}
	var buf [20]byte
	i := len(buf)
	neg := n < 0
	if neg {
		n = -n
	}
	for n > 0 {
		i--
		buf[i] = byte('0' + n%10)
		n /= 10
	}
	if neg {
		i--
		buf[i] = '-'
	}
	return string(buf[i:])
}

func (r *Renderer) renderVertex(c *diagram.Cell, table *diagram.Table) {
	off := table.ParentOffset(c)
	g := c.Geometry
	x, y := g.X+off.X, g.Y+off.Y

	r.sink.SetStyle(styleProps(c.Style))
	r.sink.OpenGroup(sink.Props{"name": r.styleName()})

	result := shape.Render(x, y, g.Width, g.Height, c.Style)
	call, props := sink.VertexShapeProps(result)
	dispatch(r.sink, call, props)

	r.emitLabel(x, y, g.Width, g.Height, c.Style, c.Label)
	r.sink.CloseGroup()
}

func (r *Renderer) renderEdge(c *diagram.Cell, table *diagram.Table) {
	ends := edge.Resolve(c, table)
	c.Geometry.SourcePoint = ends.Source
	c.Geometry.TargetPoint = ends.Target

	if c.Style.EdgeStyle == style.Orthogonal && len(c.Geometry.Waypoints) == 0 {
		source := table.Lookup(c.SourceID)
		target := table.Lookup(c.TargetID)
		var sourceBox, targetBox core.Rect
		if source != nil {
			sourceBox = source.Bounds()
		}
		if target != nil {
			targetBox = target.Bounds()
		}
		c.Geometry.Waypoints = route.Route(ends.Source, ends.StartDir, ends.Target, ends.EndDir, sourceBox, targetBox)
	}
	c.Geometry.EdgeBounds = diagram.ComputeEdgeBounds(c.Geometry)

	r.sink.SetStyle(styleProps(c.Style))
	r.sink.OpenGroup(sink.Props{"name": r.styleName()})

	props := sink.Props{
		"svg:x1": c.Geometry.SourcePoint.X / 100,
		"svg:y1": c.Geometry.SourcePoint.Y / 100,
		"svg:x2": c.Geometry.TargetPoint.X / 100,
		"svg:y2": c.Geometry.TargetPoint.Y / 100,
	}
	if c.SourceID != "" {
		props["draw:start-shape"] = c.SourceID
	}
	if c.TargetID != "" {
		props["draw:end-shape"] = c.TargetID
	}
	props["svg:d"] = edgePathSteps(c.Geometry)
	r.sink.DrawConnector(props)

	r.emitLabel(c.Geometry.SourcePoint.X, c.Geometry.SourcePoint.Y, 0, 0, c.Style, c.Label)
	r.sink.CloseGroup()
}

func edgePathSteps(g diagram.Geometry) []sink.Props {
	steps := make([]sink.Props, 0, len(g.Waypoints)+2)
	steps = append(steps, sink.Props{"librevenge:path-action": "M", "svg:x": g.SourcePoint.X / 100, "svg:y": g.SourcePoint.Y / 100})
	for _, wp := range g.Waypoints {
		steps = append(steps, sink.Props{"librevenge:path-action": "L", "svg:x": wp.X / 100, "svg:y": wp.Y / 100})
	}
	steps = append(steps, sink.Props{"librevenge:path-action": "L", "svg:x": g.TargetPoint.X / 100, "svg:y": g.TargetPoint.Y / 100})
	return steps
}

// emitLabel always opens and closes a text object, even for an empty label,
// matching the original's unconditional startTextObject/endTextObject pair;
// the paragraph/span/insertText trio is skipped when there is no text to lay
// out.
func (r *Renderer) emitLabel(x, y, width, height float64, rec style.Record, label string) {
	tx, ty, tw, th := sink.TextAreaBounds(x, y, width, height, rec)
	r.sink.DefineCharacterStyle(sink.FontStyleProps(rec))
	r.sink.StartTextObject(sink.Props{"svg:x": tx, "svg:y": ty, "svg:width": tw, "svg:height": th})
	if label != "" {
		r.sink.OpenParagraph(nil)
		r.sink.OpenSpan(nil)
		r.sink.InsertText(sink.StripTags(label))
		r.sink.CloseSpan()
		r.sink.CloseParagraph()
	}
	r.sink.EndTextObject()
}

func dispatch(s sink.Sink, call string, props sink.Props) {
	switch call {
	case "drawRectangle":
		s.DrawRectangle(props)
	case "drawEllipse":
		s.DrawEllipse(props)
	default:
		s.DrawPath(props)
	}
}

func styleProps(rec style.Record) sink.Props {
	props := sink.Props{"draw:opacity": rec.Opacity}
	addColor(props, "svg:fill-color", "draw:fill", rec.FillColor)
	addColor(props, "svg:stroke-color", "draw:stroke", rec.StrokeColor)
	addColor(props, "fo:color", "", rec.FontColor)
	if rec.StartArrow.State == style.ArrowSet {
		props["draw:marker-start-path"] = sink.ClassicMarkerPath
		props["draw:marker-start-viewbox"] = sink.ClassicMarkerViewBox
		props["draw:marker-start-width"] = rec.StartSize / 100
	}
	if rec.EndArrow.State == style.ArrowSet {
		props["draw:marker-end-path"] = sink.ClassicMarkerPath
		props["draw:marker-end-viewbox"] = sink.ClassicMarkerViewBox
		props["draw:marker-end-width"] = rec.EndSize / 100
	}
	return props
}

func addColor(props sink.Props, key, noneKey string, c style.ColorAttr) {
	switch c.State {
	case style.ColorSet:
		props[key] = c.Value.Hex()
	case style.ColorNone:
		if noneKey != "" {
			props[noneKey] = "none"
		}
	}
}
