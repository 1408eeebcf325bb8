package history

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/example/ultrapaint/internal/shape"
)

func commitN(h *History, n int) []shape.Shape {
	var out []shape.Shape
	for i := 0; i < n; i++ {
		s := shape.NewLine(shape.Pt(i, i), shape.Pt(i+1, i+1), shape.Style{})
		s.Complete()
		h.Commit(s)
		out = append(out, s)
	}
	return out
}

func TestUndoRedoOnEmpty(t *testing.T) {
	h := New()
	assert.False(t, h.Undo())
	assert.False(t, h.Redo())
	assert.False(t, h.CanUndo())
	assert.False(t, h.CanRedo())
}

func TestUndoRedoRestores(t *testing.T) {
	h := New()
	shapes := commitN(h, 3)

	assert.True(t, h.Undo())
	assert.Equal(t, shapes[:2], h.Active().Shapes())
	assert.Equal(t, 1, h.RecycleLen())
	assert.True(t, h.Redo())
	assert.Equal(t, shapes, h.Active().Shapes())
	assert.Equal(t, 0, h.RecycleLen())
}

func TestRedoReversesUndoOrder(t *testing.T) {
	h := New()
	shapes := commitN(h, 4)
	for h.Undo() {
	}
	assert.True(t, h.Active().IsEmpty())
	assert.Equal(t, 4, h.RecycleLen())

	h.Redo()
	h.Redo()
	assert.Equal(t, shapes[:2], h.Active().Shapes())
	for h.Redo() {
	}
	assert.Equal(t, shapes, h.Active().Shapes())
}

func TestCommitClearsRecycle(t *testing.T) {
	h := New()
	commitN(h, 2)
	h.Undo()
	assert.True(t, h.CanRedo())

	commitN(h, 1)
	assert.False(t, h.CanRedo())
	before := h.Active().Shapes()
	assert.False(t, h.Redo())
	assert.Equal(t, before, h.Active().Shapes())
}

func TestClearAll(t *testing.T) {
	h := New()
	commitN(h, 3)
	h.Undo()
	h.ClearAll()
	assert.True(t, h.Active().IsEmpty())
	assert.Equal(t, 0, h.RecycleLen())
	assert.False(t, h.Undo())
	assert.False(t, h.Redo())
}
