// Package construct turns pointer events into finished shapes.
package construct

import (
	"github.com/chewxy/math32"

	"github.com/example/ultrapaint/internal/shape"
)

// State of the construction machine.
type State int

const (
	Idle State = iota
	Building
)

func (s State) String() string {
	if s == Building {
		return "building"
	}
	return "idle"
}

// Button identifies the pointer button of an event.
type Button int

const (
	ButtonNone Button = iota
	ButtonPrimary
	ButtonSecondary
	ButtonMiddle
)

// closeTolerance is added to the stroke width when deciding whether a
// polygon release lands on the first vertex.
const closeTolerance = 5

// StyleSource supplies the kind and attributes for a new shape.
type StyleSource interface {
	ShapeStyle() (shape.Kind, shape.Style)
}

// Committer receives finished shapes.
type Committer interface {
	Commit(shape.Shape)
}

// Option configures a Machine.
type Option func(*Machine)

// WithPolygonCapacity bounds the vertex buffer of polygons the machine
// starts.
func WithPolygonCapacity(n int) Option {
	return func(m *Machine) { m.polygonCap = n }
}

// Machine is the press/drag/release state machine. It is not safe for
// concurrent use.
type Machine struct {
	style      StyleSource
	committer  Committer
	cur        shape.Shape
	polygonCap int
}

// New creates an idle machine.
func New(style StyleSource, c Committer, opts ...Option) *Machine {
	m := &Machine{style: style, committer: c, polygonCap: shape.MaxVertices}
	for _, o := range opts {
		o(m)
	}
	return m
}

// State reports Building while a shape is in progress.
func (m *Machine) State() State {
	if m.cur != nil {
		return Building
	}
	return Idle
}

// Current returns the in-progress shape or nil.
func (m *Machine) Current() shape.Shape { return m.cur }

// Press starts a new shape of the configured kind at (x, y). Presses while
// building or with a non-primary button are ignored.
func (m *Machine) Press(x, y int, b Button) {
	if b != ButtonPrimary || m.cur != nil {
		return
	}
	kind, st := m.style.ShapeStyle()
	at := shape.Pt(x, y)
	if kind == shape.KindPolygon {
		m.cur = shape.NewPolygon(at, st, m.polygonCap)
		return
	}
	m.cur = shape.New(kind, at, st)
}

// Drag follows the pointer. For polygons it moves the tentative vertex.
func (m *Machine) Drag(x, y int) {
	m.drag(x, y)
}

func (m *Machine) drag(x, y int) bool {
	switch s := m.cur.(type) {
	case nil:
		return false
	case *shape.Polygon:
		return s.SetTentative(x, y)
	default:
		s.SetP2(x, y)
		return true
	}
}

// Release finishes a segment. Non-polygon shapes are completed and
// committed. A polygon is closed when the release lands near its first
// vertex with at least three vertices placed, or when its buffer is full;
// otherwise the release point becomes a new vertex.
func (m *Machine) Release(x, y int, b Button) {
	if b != ButtonPrimary || m.cur == nil {
		return
	}
	accepted := m.drag(x, y)
	poly, ok := m.cur.(*shape.Polygon)
	if !ok {
		m.finish()
		return
	}
	if !accepted || (poly.VertexCount() > 2 && nearFirst(poly, x, y)) {
		first := poly.FirstVertex()
		poly.AddVertex(first.X, first.Y)
		m.finish()
		return
	}
	poly.AddVertex(x, y)
}

func nearFirst(p *shape.Polygon, x, y int) bool {
	first := p.FirstVertex()
	tol := closeTolerance + p.StrokeWidth()
	return math32.Abs(float32(x-first.X)) < tol && math32.Abs(float32(y-first.Y)) < tol
}

// ForceComplete finalizes the in-progress shape with its current geometry.
func (m *Machine) ForceComplete() {
	if m.cur == nil {
		return
	}
	m.finish()
}

// Cancel drops the in-progress shape without committing it.
func (m *Machine) Cancel() { m.cur = nil }

func (m *Machine) finish() {
	s := m.cur
	m.cur = nil
	s.Complete()
	m.committer.Commit(s)
}
