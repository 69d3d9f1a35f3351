package goiter

import "github.com/samber/lo"

type takeIterator[T any] struct {
	it        Iterator[T]
	remaining int
}

// Take returns an iterator over at most count elements of it, or as many as
// it contains if fewer. Elements are consumed from it only as needed.
func Take[T any](it Iterator[T], count int) Iterator[T] {
	return &takeIterator[T]{
		it:        it,
		remaining: count,
	}
}

func (t *takeIterator[T]) HasNext() bool {
	return t.remaining > 0 && t.it.HasNext()
}

func (t *takeIterator[T]) Next() (T, error) {
	if t.remaining <= 0 {
		return lo.Empty[T](), ErrExhausted
	}

	t.remaining--

	return t.it.Next()
}

var _ Iterator[any] = (*takeIterator[any])(nil)
