// Package arrayset is a set backed by a slice. Every operation is a linear
// scan, which beats hashing for the handful of items it ever holds here:
// triangle vertices, facets, and the neighbors of a triangle.
package arrayset

type Equaler[E any] interface {
	Equal(E) bool
}

// Set keeps items in order of first insertion. The zero value is an empty set.
type Set[E Equaler[E]] struct {
	items []E
}

// New builds a set from items, dropping duplicates.
func New[E Equaler[E]](items ...E) Set[E] {
	s := Set[E]{items: make([]E, 0, len(items))}
	for _, item := range items {
		s.Add(item)
	}
	return s
}

func (s Set[E]) Len() int {
	return len(s.items)
}

func (s Set[E]) At(i int) E {
	return s.items[i]
}

// Items returns a copy of the items in insertion order.
func (s Set[E]) Items() []E {
	return append([]E(nil), s.items...)
}

func (s Set[E]) index(item E) int {
	for i, existing := range s.items {
		if existing.Equal(item) {
			return i
		}
	}
	return -1
}

func (s Set[E]) Contains(item E) bool {
	return s.index(item) >= 0
}

func (s Set[E]) ContainsAny(items ...E) bool {
	for _, item := range items {
		if s.Contains(item) {
			return true
		}
	}
	return false
}

// Add reports whether the item was new.
func (s *Set[E]) Add(item E) bool {
	if s.Contains(item) {
		return false
	}
	s.items = append(s.items, item)
	return true
}

// Remove reports whether the item was present.
func (s *Set[E]) Remove(item E) bool {
	i := s.index(item)
	if i < 0 {
		return false
	}
	s.items = append(s.items[:i:i], s.items[i+1:]...)
	return true
}

// Toggle adds the item if it is absent and removes it otherwise. It reports
// whether the item is present afterwards.
func (s *Set[E]) Toggle(item E) bool {
	if s.Remove(item) {
		return false
	}
	s.items = append(s.items, item)
	return true
}

// Without returns a copy of the set minus item, and whether item was present.
func (s Set[E]) Without(item E) (Set[E], bool) {
	result := Set[E]{items: s.Items()}
	ok := result.Remove(item)
	return result, ok
}

// Equal ignores order, which makes sets of sets work.
func (s Set[E]) Equal(other Set[E]) bool {
	if len(s.items) != len(other.items) {
		return false
	}
	for _, item := range s.items {
		if !other.Contains(item) {
			return false
		}
	}
	return true
}
