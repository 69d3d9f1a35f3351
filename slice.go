package goiter

import "github.com/samber/lo"

// SliceIterator is an in-memory double-ended iterator over a fixed slice.
// The front and back indexes share one element pool: the iterator is
// exhausted once they cross, no matter which end consumed what.
//
// The slice itself is not copied; the caller must not mutate it while the
// iterator is live.
type SliceIterator[T any] struct {
	elements []T
	front    int
	back     int
}

func FromSlice[T any](elements []T) *SliceIterator[T] {
	return &SliceIterator[T]{
		elements: elements,
		front:    0,
		back:     len(elements) - 1,
	}
}

func (s *SliceIterator[T]) HasNext() bool {
	return s.front <= s.back
}

func (s *SliceIterator[T]) Next() (T, error) {
	if !s.HasNext() {
		return lo.Empty[T](), ErrExhausted
	}

	element := s.elements[s.front]
	s.front++

	return element, nil
}

func (s *SliceIterator[T]) ReverseNext() (T, error) {
	if !s.HasNext() {
		return lo.Empty[T](), ErrExhausted
	}

	element := s.elements[s.back]
	s.back--

	return element, nil
}

var _ DoubleEnded[any] = (*SliceIterator[any])(nil)
