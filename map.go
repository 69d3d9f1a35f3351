package goiter

import "github.com/samber/lo"

type mapIterator[T, R any] struct {
	it Iterator[T]
	f  func(T) R
}

// Map returns an iterator over f applied to each element of it. That is, for
// elements a, b, c... it yields f(a), f(b), f(c)... Elements are consumed
// from it only as needed.
func Map[T, R any](it Iterator[T], f func(T) R) Iterator[R] {
	return &mapIterator[T, R]{
		it: it,
		f:  f,
	}
}

func (m *mapIterator[T, R]) HasNext() bool {
	return m.it.HasNext()
}

func (m *mapIterator[T, R]) Next() (R, error) {
	element, err := m.it.Next()
	if err != nil {
		return lo.Empty[R](), err
	}

	return m.f(element), nil
}

type mapDoubleEnded[T, R any] struct {
	it DoubleEnded[T]
	f  func(T) R
}

// MapDoubleEnded is the double-ended counterpart of Map: the result supports
// ReverseNext by applying f to elements pulled from the back of it.
func MapDoubleEnded[T, R any](it DoubleEnded[T], f func(T) R) DoubleEnded[R] {
	return &mapDoubleEnded[T, R]{
		it: it,
		f:  f,
	}
}

func (m *mapDoubleEnded[T, R]) HasNext() bool {
	return m.it.HasNext()
}

func (m *mapDoubleEnded[T, R]) Next() (R, error) {
	element, err := m.it.Next()
	if err != nil {
		return lo.Empty[R](), err
	}

	return m.f(element), nil
}

func (m *mapDoubleEnded[T, R]) ReverseNext() (R, error) {
	element, err := m.it.ReverseNext()
	if err != nil {
		return lo.Empty[R](), err
	}

	return m.f(element), nil
}

var (
	_ Iterator[any]    = (*mapIterator[any, any])(nil)
	_ DoubleEnded[any] = (*mapDoubleEnded[any, any])(nil)
)
