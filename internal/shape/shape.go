package shape

import (
	"fmt"
	"image/color"

	"github.com/google/uuid"
)

// Point is an integer canvas coordinate.
type Point struct{ X, Y int }

// Pt is shorthand for Point{x, y}.
func Pt(x, y int) Point { return Point{x, y} }

func (p Point) String() string { return fmt.Sprintf("(%d,%d)", p.X, p.Y) }

// Shape is a geometric primitive with style attributes.
type Shape interface {
	ID() string
	Kind() Kind
	P1() Point
	P2() Point
	SetP1(x, y int)
	SetP2(x, y int)
	Completed() bool
	// Complete finalizes the shape; construction events no longer apply.
	Complete()
	Render(s Surface)
}

// Style carries the attributes copied into a shape when it is created.
type Style struct {
	Color1      color.RGBA
	Color2      color.RGBA
	StrokeWidth float32
	Dash        []float32
	Gradient    bool
	Dashed      bool
	Filled      bool
}

// New creates an incomplete shape of kind k with both anchors at p.
func New(k Kind, p Point, st Style) Shape {
	switch k {
	case KindOval:
		return NewOval(p, p, st)
	case KindRectangle:
		return NewRectangle(p, p, st)
	case KindPolygon:
		return NewPolygon(p, st, MaxVertices)
	default:
		return NewLine(p, p, st)
	}
}

// Base holds the attributes shared by every shape. Setters clamp invalid
// input to safe defaults instead of failing.
type Base struct {
	id          string
	p1, p2      Point
	color1      color.RGBA
	color2      color.RGBA
	strokeWidth float32
	dash        []float32
	gradient    bool
	dashed      bool
	completed   bool
}

func newBase(p1, p2 Point, st Style) Base {
	b := Base{id: uuid.NewString()}
	b.SetP1(p1.X, p1.Y)
	b.SetP2(p2.X, p2.Y)
	b.SetColor1(st.Color1)
	b.SetColor2(st.Color2)
	b.SetStrokeWidth(st.StrokeWidth)
	b.SetDashPattern(st.Dash)
	b.gradient = st.Gradient
	b.dashed = st.Dashed
	return b
}

func clampCoord(v int) int {
	if v < 0 {
		return 0
	}
	return v
}

func (b *Base) ID() string      { return b.id }
func (b *Base) P1() Point       { return b.p1 }
func (b *Base) P2() Point       { return b.p2 }
func (b *Base) Completed() bool { return b.completed }
func (b *Base) Complete()       { b.completed = true }

func (b *Base) SetX1(x int) { b.p1.X = clampCoord(x) }
func (b *Base) SetY1(y int) { b.p1.Y = clampCoord(y) }
func (b *Base) SetX2(x int) { b.p2.X = clampCoord(x) }
func (b *Base) SetY2(y int) { b.p2.Y = clampCoord(y) }

func (b *Base) SetP1(x, y int) { b.SetX1(x); b.SetY1(y) }
func (b *Base) SetP2(x, y int) { b.SetX2(x); b.SetY2(y) }

func (b *Base) Color1() color.RGBA { return b.color1 }
func (b *Base) Color2() color.RGBA { return b.color2 }

// SetColor1 sets the primary colour; nil selects black.
func (b *Base) SetColor1(c color.Color) { b.color1 = toRGBA(c) }

// SetColor2 sets the secondary colour; nil selects black.
func (b *Base) SetColor2(c color.Color) { b.color2 = toRGBA(c) }

func toRGBA(c color.Color) color.RGBA {
	if c == nil {
		return color.RGBA{A: 0xff}
	}
	return color.RGBAModel.Convert(c).(color.RGBA)
}

func (b *Base) StrokeWidth() float32 { return b.strokeWidth }

// SetStrokeWidth stores w, or 1 when w is not positive.
func (b *Base) SetStrokeWidth(w float32) {
	if w > 0 {
		b.strokeWidth = w
		return
	}
	b.strokeWidth = 1
}

// DashPattern returns a copy of the dash lengths.
func (b *Base) DashPattern() []float32 {
	return append([]float32(nil), b.dash...)
}

// SetDashPattern stores a copy of d, or [1] when d is empty or holds a
// non-positive length.
func (b *Base) SetDashPattern(d []float32) {
	valid := len(d) > 0
	for _, v := range d {
		if !(v > 0) {
			valid = false
			break
		}
	}
	if !valid {
		b.dash = []float32{1}
		return
	}
	b.dash = append([]float32(nil), d...)
}

func (b *Base) Gradient() bool      { return b.gradient }
func (b *Base) SetGradient(on bool) { b.gradient = on }
func (b *Base) Dashed() bool        { return b.dashed }
func (b *Base) SetDashed(on bool)   { b.dashed = on }

// setup configures the surface's paint and stroke for this shape. The paint
// always runs along p1->p2, even when the gradient is off.
func (b *Base) setup(s Surface) {
	to := b.color1
	if b.gradient {
		to = b.color2
	}
	s.SetPaint(Paint{Start: b.p1, End: b.p2, From: b.color1, To: to})
	st := Stroke{Width: b.strokeWidth}
	if b.dashed {
		st.Dash = b.DashPattern()
	}
	s.SetStroke(st)
}
