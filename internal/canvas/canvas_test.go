package canvas

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/example/ultrapaint/internal/config"
	"github.com/example/ultrapaint/internal/construct"
	"github.com/example/ultrapaint/internal/shape"
	"github.com/example/ultrapaint/internal/shape/shapetest"
)

const primary = construct.ButtonPrimary

func drawLine(c *Canvas, x1, y1, x2, y2 int) {
	c.Press(x1, y1, primary)
	c.Release(x2, y2, primary)
}

func TestDefaultStyle(t *testing.T) {
	c := New()
	assert.Equal(t, config.DefaultStyle(), c.Style())
	assert.Equal(t, construct.Idle, c.State())
	assert.Equal(t, 0, c.Len())
}

func TestLineScenario(t *testing.T) {
	c := New()
	c.Press(10, 10, primary)
	c.Drag(20, 10)
	c.Release(30, 10, primary)

	shapes := c.Shapes()
	require.Len(t, shapes, 1)
	assert.Equal(t, shape.KindLine, shapes[0].Kind())
	assert.Equal(t, shape.Pt(10, 10), shapes[0].P1())
	assert.Equal(t, shape.Pt(30, 10), shapes[0].P2())
	assert.Equal(t, shape.Pt(30, 10), c.Cursor())
}

func TestStyleAppliesToNextShape(t *testing.T) {
	c := New()
	s := c.Style()
	s.Kind = shape.KindRectangle
	s.Filled = true
	s.StrokeWidth = -3
	c.SetStyle(s)
	assert.Equal(t, float32(1), c.Style().StrokeWidth)

	drawLine(c, 0, 0, 5, 5)
	r, ok := c.Shapes()[0].(*shape.Rectangle)
	require.True(t, ok)
	assert.True(t, r.Filled())
}

func TestRenderOrder(t *testing.T) {
	s := config.DefaultStyle()
	s.Kind = shape.KindOval
	c := New(WithStyle(s))
	drawLine(c, 0, 0, 10, 10)
	s.Kind = shape.KindLine
	c.SetStyle(s)
	drawLine(c, 0, 0, 10, 10)
	c.Press(1, 1, primary)
	c.Drag(2, 2)

	var rec shapetest.Recorder
	c.Render(&rec)
	assert.Equal(t, []string{"StrokeEllipse", "StrokeLine", "StrokeLine"}, rec.Names())
	assert.Equal(t, []shape.Point{{1, 1}, {2, 2}}, rec.Ops[2].Points)
}

func TestUndoRedo(t *testing.T) {
	c := New()
	assert.False(t, c.Undo())
	drawLine(c, 0, 0, 1, 1)
	drawLine(c, 2, 2, 3, 3)
	before := c.Shapes()

	assert.True(t, c.Undo())
	assert.Equal(t, 1, c.Len())
	assert.True(t, c.CanRedo())
	assert.True(t, c.Redo())
	assert.Equal(t, before, c.Shapes())
}

func TestCommitDiscardsRedo(t *testing.T) {
	c := New()
	drawLine(c, 0, 0, 1, 1)
	drawLine(c, 2, 2, 3, 3)
	c.Undo()
	drawLine(c, 4, 4, 5, 5)
	before := c.Shapes()
	assert.False(t, c.Redo())
	assert.Equal(t, before, c.Shapes())
}

func TestClearAllCancelsConstruction(t *testing.T) {
	c := New()
	for i := 0; i < 3; i++ {
		drawLine(c, i, i, i+5, i+5)
	}
	c.Undo()
	c.Press(50, 50, primary)
	c.Drag(60, 60)
	require.Equal(t, construct.Building, c.State())

	c.ClearAll()
	assert.Equal(t, construct.Idle, c.State())
	assert.Nil(t, c.InProgress())
	assert.Equal(t, 0, c.Len())
	assert.False(t, c.CanUndo())
	assert.False(t, c.CanRedo())

	c.Release(70, 70, primary)
	assert.Equal(t, 0, c.Len())
}

func TestPolygonCloseScenario(t *testing.T) {
	s := config.DefaultStyle()
	s.Kind = shape.KindPolygon
	c := New(WithStyle(s))
	c.Press(0, 0, primary)
	c.Release(10, 0, primary)
	c.Drag(10, 10)
	c.Release(10, 10, primary)
	assert.Equal(t, construct.Building, c.State())
	c.Release(2, 2, primary)

	assert.Equal(t, construct.Idle, c.State())
	require.Equal(t, 1, c.Len())
	p := c.Shapes()[0].(*shape.Polygon)
	assert.Equal(t, 4, p.VertexCount())
}

func TestPolygonCapacityOption(t *testing.T) {
	s := config.DefaultStyle()
	s.Kind = shape.KindPolygon
	c := New(WithStyle(s), WithPolygonCapacity(4))
	c.Press(0, 0, primary)
	c.Release(40, 0, primary)
	c.Release(40, 40, primary)
	assert.Equal(t, construct.Idle, c.State())
	assert.Equal(t, 1, c.Len())
}

func TestForceComplete(t *testing.T) {
	c := New()
	c.ForceComplete()
	assert.Equal(t, 0, c.Len())
	c.Press(3, 3, primary)
	c.Drag(9, 9)
	c.ForceComplete()
	require.Equal(t, 1, c.Len())
	assert.Equal(t, shape.Pt(9, 9), c.Shapes()[0].P2())
	assert.True(t, c.Shapes()[0].Completed())
}

func TestDelete(t *testing.T) {
	c := New()
	drawLine(c, 0, 0, 1, 1)
	drawLine(c, 2, 2, 3, 3)
	id := c.Shapes()[0].ID()
	assert.True(t, c.Delete(id))
	assert.False(t, c.Delete(id))
	assert.Equal(t, 1, c.Len())
	assert.Equal(t, shape.Pt(2, 2), c.Shapes()[0].P1())
}
