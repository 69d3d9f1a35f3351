package goiter

import "github.com/samber/lo"

type reversedIterator[T any] struct {
	it DoubleEnded[T]
}

// Reversed returns an iterator over the elements of it in back-to-front
// order. Elements are consumed from it only as needed.
//
// The result is deliberately front-only: to reverse a reversal, keep using
// the original iterator instead of wrapping twice.
func Reversed[T any](it DoubleEnded[T]) Iterator[T] {
	return &reversedIterator[T]{
		it: it,
	}
}

func (r *reversedIterator[T]) HasNext() bool {
	return r.it.HasNext()
}

func (r *reversedIterator[T]) Next() (T, error) {
	if !r.it.HasNext() {
		return lo.Empty[T](), ErrExhausted
	}

	return r.it.ReverseNext()
}

var _ Iterator[any] = (*reversedIterator[any])(nil)
