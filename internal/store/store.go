// Package store holds completed shapes in paint order.
package store

import (
	"github.com/gammazero/deque"

	"github.com/example/ultrapaint/internal/shape"
)

// Store is an ordered collection of shapes. The front is painted first.
// The zero value is an empty store ready for use.
type Store struct {
	q deque.Deque[shape.Shape]
}

// New returns an empty store.
func New() *Store { return &Store{} }

func (s *Store) AppendFront(sh shape.Shape) { s.q.PushFront(sh) }
func (s *Store) AppendEnd(sh shape.Shape)   { s.q.PushBack(sh) }

// RemoveFront takes the first shape, or reports false when empty.
func (s *Store) RemoveFront() (shape.Shape, bool) {
	if s.q.Len() == 0 {
		return nil, false
	}
	return s.q.PopFront(), true
}

// RemoveEnd takes the last shape, or reports false when empty.
func (s *Store) RemoveEnd() (shape.Shape, bool) {
	if s.q.Len() == 0 {
		return nil, false
	}
	return s.q.PopBack(), true
}

// PeekFront returns the first shape without removing it.
func (s *Store) PeekFront() (shape.Shape, bool) {
	if s.q.Len() == 0 {
		return nil, false
	}
	return s.q.Front(), true
}

// PeekEnd returns the last shape without removing it.
func (s *Store) PeekEnd() (shape.Shape, bool) {
	if s.q.Len() == 0 {
		return nil, false
	}
	return s.q.Back(), true
}

func (s *Store) IsEmpty() bool { return s.q.Len() == 0 }
func (s *Store) Len() int      { return s.q.Len() }
func (s *Store) Clear()        { s.q.Clear() }

// Find returns the first shape, front to back, matching pred.
func (s *Store) Find(pred func(shape.Shape) bool) (shape.Shape, bool) {
	i := s.q.Index(pred)
	if i < 0 {
		return nil, false
	}
	return s.q.At(i), true
}

// Delete removes sh by identity and reports whether it was present.
func (s *Store) Delete(sh shape.Shape) bool {
	i := s.q.Index(func(o shape.Shape) bool { return o == sh })
	if i < 0 {
		return false
	}
	s.q.Remove(i)
	return true
}

// Each visits shapes front to back until fn returns false.
func (s *Store) Each(fn func(shape.Shape) bool) {
	for i := 0; i < s.q.Len(); i++ {
		if !fn(s.q.At(i)) {
			return
		}
	}
}

// Shapes returns a snapshot of the store in paint order.
func (s *Store) Shapes() []shape.Shape {
	out := make([]shape.Shape, 0, s.q.Len())
	s.Each(func(sh shape.Shape) bool {
		out = append(out, sh)
		return true
	})
	return out
}
