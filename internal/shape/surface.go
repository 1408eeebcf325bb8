package shape

import (
	"image"
	"image/color"
)

// Paint describes a two-colour linear gradient running from Start to End.
// A solid paint is a gradient whose colours are equal.
type Paint struct {
	Start, End Point
	From, To   color.RGBA
}

// Solid reports whether both ends of the gradient share a colour.
func (p Paint) Solid() bool { return p.From == p.To }

// Stroke describes how outlines are drawn. Caps are square and joins are
// round for every shape; Dash is nil for a solid stroke.
type Stroke struct {
	Width float32
	Dash  []float32
}

// Surface is the drawing target shapes render onto. Implementations keep the
// most recent Paint and Stroke and apply them to each subsequent operation.
type Surface interface {
	SetPaint(Paint)
	SetStroke(Stroke)
	StrokeLine(a, b Point)
	StrokeRect(r image.Rectangle)
	FillRect(r image.Rectangle)
	StrokeEllipse(r image.Rectangle)
	FillEllipse(r image.Rectangle)
	StrokePath(pts []Point, closed bool)
	// FillPath fills the polygon described by pts using the even-odd rule.
	FillPath(pts []Point)
}
