package arrayset

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type num int

func (n num) Equal(other num) bool { return n == other }

func TestNewDeduplicates(t *testing.T) {
	s := New[num](3, 1, 3, 2, 1)
	assert.Equal(t, 3, s.Len())
	assert.Equal(t, []num{3, 1, 2}, s.Items())
	assert.Equal(t, num(1), s.At(1))
}

func TestZeroValue(t *testing.T) {
	var s Set[num]
	assert.Equal(t, 0, s.Len())
	assert.False(t, s.Contains(1))
	assert.True(t, s.Add(1))
	assert.True(t, s.Contains(1))
}

func TestAddRemove(t *testing.T) {
	s := New[num]()
	assert.True(t, s.Add(1))
	assert.False(t, s.Add(1))
	assert.True(t, s.Add(2))
	assert.Equal(t, 2, s.Len())
	assert.True(t, s.Remove(1))
	assert.False(t, s.Remove(1))
	assert.Equal(t, []num{2}, s.Items())
}

func TestContainsAny(t *testing.T) {
	s := New[num](1, 2, 3)
	assert.True(t, s.ContainsAny(5, 3))
	assert.False(t, s.ContainsAny(5, 6))
	assert.False(t, s.ContainsAny())
}

func TestToggle(t *testing.T) {
	s := New[num]()
	assert.True(t, s.Toggle(4))
	assert.True(t, s.Toggle(5))
	assert.False(t, s.Toggle(4))
	assert.Equal(t, []num{5}, s.Items())
}

func TestWithout(t *testing.T) {
	s := New[num](1, 2, 3)
	rest, ok := s.Without(2)
	assert.True(t, ok)
	assert.Equal(t, []num{1, 3}, rest.Items())
	assert.Equal(t, []num{1, 2, 3}, s.Items(), "original is untouched")

	_, ok = s.Without(7)
	assert.False(t, ok)
}

func TestItemsIsACopy(t *testing.T) {
	s := New[num](1, 2)
	items := s.Items()
	items[0] = 9
	assert.Equal(t, []num{1, 2}, s.Items())
}

func TestSetOfSets(t *testing.T) {
	assert.True(t, New[num](1, 2).Equal(New[num](2, 1)))
	assert.False(t, New[num](1, 2).Equal(New[num](1, 3)))
	assert.False(t, New[num](1, 2).Equal(New[num](1)))

	// The facet toggling pattern: facets seen twice cancel out
	boundary := New[Set[num]]()
	for _, facet := range []Set[num]{New[num](1, 2), New[num](2, 3), New[num](2, 1), New[num](3, 4)} {
		boundary.Toggle(facet)
	}
	assert.Equal(t, 2, boundary.Len())
	assert.True(t, boundary.Contains(New[num](3, 2)))
	assert.True(t, boundary.Contains(New[num](4, 3)))
	assert.False(t, boundary.Contains(New[num](1, 2)))
}
