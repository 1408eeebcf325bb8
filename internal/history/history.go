// Package history implements undo and redo over committed shapes.
package history

import (
	"github.com/example/ultrapaint/internal/shape"
	"github.com/example/ultrapaint/internal/store"
)

// History owns the active store and a stack of undone shapes. Any commit
// discards the undone shapes, so there is no branching history.
type History struct {
	active  *store.Store
	recycle []shape.Shape
}

// New returns an empty history.
func New() *History {
	return &History{active: store.New()}
}

// Commit appends a completed shape to the active store.
func (h *History) Commit(s shape.Shape) {
	h.active.AppendEnd(s)
	h.recycle = h.recycle[:0]
}

// Undo moves the most recently committed shape to the recycle stack.
func (h *History) Undo() bool {
	s, ok := h.active.RemoveEnd()
	if !ok {
		return false
	}
	h.recycle = append(h.recycle, s)
	return true
}

// Redo restores the most recently undone shape.
func (h *History) Redo() bool {
	n := len(h.recycle)
	if n == 0 {
		return false
	}
	s := h.recycle[n-1]
	h.recycle[n-1] = nil
	h.recycle = h.recycle[:n-1]
	h.active.AppendEnd(s)
	return true
}

// ClearAll empties both the active store and the recycle stack.
func (h *History) ClearAll() {
	h.active.Clear()
	clear(h.recycle)
	h.recycle = h.recycle[:0]
}

func (h *History) CanUndo() bool        { return !h.active.IsEmpty() }
func (h *History) CanRedo() bool        { return len(h.recycle) > 0 }
func (h *History) Active() *store.Store { return h.active }
func (h *History) RecycleLen() int      { return len(h.recycle) }
