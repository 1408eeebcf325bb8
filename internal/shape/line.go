package shape

// Line is a straight segment between its two anchors.
type Line struct {
	Base
}

// NewLine creates an incomplete line from p1 to p2.
func NewLine(p1, p2 Point, st Style) *Line {
	return &Line{Base: newBase(p1, p2, st)}
}

func (l *Line) Kind() Kind { return KindLine }

func (l *Line) Render(s Surface) {
	l.setup(s)
	s.StrokeLine(l.p1, l.p2)
}
