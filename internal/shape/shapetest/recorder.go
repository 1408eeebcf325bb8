// Package shapetest provides a recording shape.Surface for tests.
package shapetest

import (
	"fmt"
	"image"
	"strings"

	"github.com/example/ultrapaint/internal/shape"
)

// Op is one recorded drawing call.
type Op struct {
	Name   string
	Points []shape.Point
	Rect   image.Rectangle
	Closed bool
	Paint  shape.Paint
	Stroke shape.Stroke
}

func (o Op) String() string {
	switch o.Name {
	case "StrokeRect", "FillRect", "StrokeEllipse", "FillEllipse":
		return fmt.Sprintf("%s %v", o.Name, o.Rect)
	case "StrokePath":
		return fmt.Sprintf("%s %v closed=%t", o.Name, o.Points, o.Closed)
	}
	return fmt.Sprintf("%s %v", o.Name, o.Points)
}

// Recorder is a shape.Surface that remembers geometry calls together with
// the paint and stroke active at the time.
type Recorder struct {
	Ops    []Op
	paint  shape.Paint
	stroke shape.Stroke
}

var _ shape.Surface = (*Recorder)(nil)

func (r *Recorder) SetPaint(p shape.Paint)   { r.paint = p }
func (r *Recorder) SetStroke(s shape.Stroke) { r.stroke = s }

func (r *Recorder) add(op Op) {
	op.Paint = r.paint
	op.Stroke = r.stroke
	r.Ops = append(r.Ops, op)
}

func (r *Recorder) StrokeLine(a, b shape.Point) {
	r.add(Op{Name: "StrokeLine", Points: []shape.Point{a, b}})
}

func (r *Recorder) StrokeRect(rect image.Rectangle) { r.add(Op{Name: "StrokeRect", Rect: rect}) }
func (r *Recorder) FillRect(rect image.Rectangle)   { r.add(Op{Name: "FillRect", Rect: rect}) }

func (r *Recorder) StrokeEllipse(rect image.Rectangle) {
	r.add(Op{Name: "StrokeEllipse", Rect: rect})
}

func (r *Recorder) FillEllipse(rect image.Rectangle) { r.add(Op{Name: "FillEllipse", Rect: rect}) }

func (r *Recorder) StrokePath(pts []shape.Point, closed bool) {
	r.add(Op{Name: "StrokePath", Points: append([]shape.Point(nil), pts...), Closed: closed})
}

func (r *Recorder) FillPath(pts []shape.Point) {
	r.add(Op{Name: "FillPath", Points: append([]shape.Point(nil), pts...)})
}

// Names lists the recorded operation names in order.
func (r *Recorder) Names() []string {
	names := make([]string, len(r.Ops))
	for i, op := range r.Ops {
		names[i] = op.Name
	}
	return names
}

func (r *Recorder) String() string {
	var b strings.Builder
	for _, op := range r.Ops {
		b.WriteString(op.String())
		b.WriteByte('\n')
	}
	return b.String()
}

// Reset drops recorded operations.
func (r *Recorder) Reset() { r.Ops = nil }
