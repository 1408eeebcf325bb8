package shape

import "image"

// Bounded is a shape drawn inside the box spanned by its anchors.
type Bounded struct {
	Base
	filled bool
}

func newBounded(p1, p2 Point, st Style) Bounded {
	return Bounded{Base: newBase(p1, p2, st), filled: st.Filled}
}

func (b *Bounded) Filled() bool      { return b.filled }
func (b *Bounded) SetFilled(on bool) { b.filled = on }

// UpperLeft is the top-left corner of the bounding box.
func (b *Bounded) UpperLeft() Point {
	return Point{min(b.p1.X, b.p2.X), min(b.p1.Y, b.p2.Y)}
}

func (b *Bounded) Width() int  { return abs(b.p1.X - b.p2.X) }
func (b *Bounded) Height() int { return abs(b.p1.Y - b.p2.Y) }

// Bounds returns the bounding box as a rectangle.
func (b *Bounded) Bounds() image.Rectangle {
	ul := b.UpperLeft()
	return image.Rect(ul.X, ul.Y, ul.X+b.Width(), ul.Y+b.Height())
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// Oval is an ellipse inscribed in the bounding box.
type Oval struct {
	Bounded
}

// NewOval creates an incomplete oval spanning p1 and p2.
func NewOval(p1, p2 Point, st Style) *Oval {
	return &Oval{Bounded: newBounded(p1, p2, st)}
}

func (o *Oval) Kind() Kind { return KindOval }

func (o *Oval) Render(s Surface) {
	o.setup(s)
	if o.filled {
		s.FillEllipse(o.Bounds())
		return
	}
	s.StrokeEllipse(o.Bounds())
}

// Rectangle is an axis-aligned box.
type Rectangle struct {
	Bounded
}

// NewRectangle creates an incomplete rectangle spanning p1 and p2.
func NewRectangle(p1, p2 Point, st Style) *Rectangle {
	return &Rectangle{Bounded: newBounded(p1, p2, st)}
}

func (r *Rectangle) Kind() Kind { return KindRectangle }

func (r *Rectangle) Render(s Surface) {
	r.setup(s)
	if r.filled {
		s.FillRect(r.Bounds())
		return
	}
	s.StrokeRect(r.Bounds())
}
