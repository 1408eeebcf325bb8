// Package canvas ties the shape store, undo history and construction
// machine together behind pointer and history entry points.
package canvas

import (
	"github.com/example/ultrapaint/internal/config"
	"github.com/example/ultrapaint/internal/construct"
	"github.com/example/ultrapaint/internal/history"
	"github.com/example/ultrapaint/internal/shape"
)

// Canvas is a single drawing. It is driven from one goroutine.
type Canvas struct {
	style   config.Style
	history *history.History
	machine *construct.Machine
	cursor  shape.Point
}

type options struct {
	style      config.Style
	polygonCap int
}

// Option configures a Canvas.
type Option func(*options)

// WithStyle sets the initial style.
func WithStyle(s config.Style) Option {
	return func(o *options) { o.style = s }
}

// WithPolygonCapacity bounds the vertex buffer of new polygons.
func WithPolygonCapacity(n int) Option {
	return func(o *options) { o.polygonCap = n }
}

// New creates an empty canvas using the default style.
func New(opts ...Option) *Canvas {
	o := options{style: config.DefaultStyle(), polygonCap: shape.MaxVertices}
	for _, opt := range opts {
		opt(&o)
	}
	c := &Canvas{style: o.style.Clamp(), history: history.New()}
	c.machine = construct.New(c, c.history, construct.WithPolygonCapacity(o.polygonCap))
	return c
}

// ShapeStyle is read by the construction machine when a shape starts.
func (c *Canvas) ShapeStyle() (shape.Kind, shape.Style) { return c.style.ShapeStyle() }

func (c *Canvas) Style() config.Style { return c.style }

// SetStyle replaces the style for shapes started from now on.
func (c *Canvas) SetStyle(s config.Style) { c.style = s.Clamp() }

// Render draws committed shapes in paint order followed by the shape under
// construction.
func (c *Canvas) Render(s shape.Surface) {
	c.history.Active().Each(func(sh shape.Shape) bool {
		sh.Render(s)
		return true
	})
	if cur := c.machine.Current(); cur != nil {
		cur.Render(s)
	}
}

func (c *Canvas) Press(x, y int, b construct.Button) {
	c.cursor = shape.Pt(x, y)
	c.machine.Press(x, y, b)
}

func (c *Canvas) Drag(x, y int) {
	c.cursor = shape.Pt(x, y)
	c.machine.Drag(x, y)
}

func (c *Canvas) Release(x, y int, b construct.Button) {
	c.cursor = shape.Pt(x, y)
	c.machine.Release(x, y, b)
}

// Move records the pointer position without affecting construction.
func (c *Canvas) Move(x, y int) { c.cursor = shape.Pt(x, y) }

func (c *Canvas) ForceComplete() { c.machine.ForceComplete() }

// Undo removes the last committed shape.
func (c *Canvas) Undo() bool { return c.history.Undo() }

// Redo restores the last undone shape.
func (c *Canvas) Redo() bool { return c.history.Redo() }

// ClearAll drops every shape, including one under construction.
func (c *Canvas) ClearAll() {
	c.machine.Cancel()
	c.history.ClearAll()
}

// Delete removes the committed shape with the given ID.
func (c *Canvas) Delete(id string) bool {
	active := c.history.Active()
	sh, ok := active.Find(func(s shape.Shape) bool { return s.ID() == id })
	if !ok {
		return false
	}
	return active.Delete(sh)
}

// Shapes returns the committed shapes in paint order.
func (c *Canvas) Shapes() []shape.Shape { return c.history.Active().Shapes() }

func (c *Canvas) InProgress() shape.Shape { return c.machine.Current() }
func (c *Canvas) State() construct.State  { return c.machine.State() }
func (c *Canvas) Len() int                { return c.history.Active().Len() }
func (c *Canvas) CanUndo() bool           { return c.history.CanUndo() }
func (c *Canvas) CanRedo() bool           { return c.history.CanRedo() }
func (c *Canvas) Cursor() shape.Point     { return c.cursor }
