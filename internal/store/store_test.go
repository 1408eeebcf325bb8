package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/example/ultrapaint/internal/shape"
)

func line(x int) shape.Shape {
	return shape.NewLine(shape.Pt(x, 0), shape.Pt(x, 10), shape.Style{})
}

func TestEmpty(t *testing.T) {
	var s Store
	assert.True(t, s.IsEmpty())
	assert.Equal(t, 0, s.Len())
	_, ok := s.RemoveFront()
	assert.False(t, ok)
	_, ok = s.RemoveEnd()
	assert.False(t, ok)
	_, ok = s.PeekFront()
	assert.False(t, ok)
	_, ok = s.PeekEnd()
	assert.False(t, ok)
}

func TestAppendEndKeepsOrder(t *testing.T) {
	s := New()
	var want []shape.Shape
	for i := 0; i < 5; i++ {
		sh := line(i)
		want = append(want, sh)
		s.AppendEnd(sh)
	}
	assert.Equal(t, want, s.Shapes())
	assert.False(t, s.IsEmpty())

	first, ok := s.PeekFront()
	require.True(t, ok)
	assert.Same(t, want[0], first)
	assert.Equal(t, 5, s.Len())
}

func TestMixedEnds(t *testing.T) {
	s := New()
	a, b, c := line(1), line(2), line(3)
	s.AppendEnd(b)
	s.AppendFront(a)
	s.AppendEnd(c)
	assert.Equal(t, []shape.Shape{a, b, c}, s.Shapes())

	got, ok := s.RemoveEnd()
	require.True(t, ok)
	assert.Same(t, c, got)
	got, ok = s.RemoveFront()
	require.True(t, ok)
	assert.Same(t, a, got)
	assert.Equal(t, 1, s.Len())

	s.RemoveEnd()
	assert.True(t, s.IsEmpty())
}

func TestFindAndDelete(t *testing.T) {
	s := New()
	a, b, c := line(1), line(2), line(3)
	s.AppendEnd(a)
	s.AppendEnd(b)
	s.AppendEnd(c)

	got, ok := s.Find(func(sh shape.Shape) bool { return sh.ID() == b.ID() })
	require.True(t, ok)
	assert.Same(t, b, got)

	assert.True(t, s.Delete(b))
	assert.False(t, s.Delete(b))
	assert.Equal(t, []shape.Shape{a, c}, s.Shapes())

	_, ok = s.Find(func(sh shape.Shape) bool { return sh.P1().X == 2 })
	assert.False(t, ok)
}

func TestEachStops(t *testing.T) {
	s := New()
	for i := 0; i < 4; i++ {
		s.AppendEnd(line(i))
	}
	n := 0
	s.Each(func(shape.Shape) bool {
		n++
		return n < 2
	})
	assert.Equal(t, 2, n)
}

func TestClear(t *testing.T) {
	s := New()
	s.AppendEnd(line(1))
	s.AppendEnd(line(2))
	s.Clear()
	assert.True(t, s.IsEmpty())
	assert.Empty(t, s.Shapes())
}
