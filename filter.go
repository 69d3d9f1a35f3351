package goiter

import (
	"errors"

	"github.com/samber/lo"
)

type filterIterator[T any] struct {
	it   Iterator[T]
	pred func(T) bool

	// Lookahead state: at most one element is buffered between the HasNext
	// that found it and the Next that hands it out.
	buffered  T
	hasBuffer bool

	// A fatal upstream error hit during lookahead. Held until the next
	// advance call so it is not lost behind a bool HasNext.
	err error
}

// Filter returns an iterator over the elements of it that satisfy pred, in
// their original order. Answering HasNext may consume non-matching upstream
// elements, but never more than needed to find the first match.
func Filter[T any](it Iterator[T], pred func(T) bool) Iterator[T] {
	return &filterIterator[T]{
		it:   it,
		pred: pred,
	}
}

// advance scans upstream until an element satisfies the predicate, buffering
// it. Stops early on upstream exhaustion or a fatal upstream error.
func (f *filterIterator[T]) advance() {
	for f.it.HasNext() {
		element, err := f.it.Next()
		if err != nil {
			if !errors.Is(err, ErrExhausted) {
				f.err = err
			}

			return
		}

		if f.pred(element) {
			f.buffered = element
			f.hasBuffer = true

			return
		}
	}
}

func (f *filterIterator[T]) HasNext() bool {
	if !f.hasBuffer && f.err == nil {
		f.advance()
	}

	return f.hasBuffer || f.err != nil
}

func (f *filterIterator[T]) Next() (T, error) {
	if !f.HasNext() {
		return lo.Empty[T](), ErrExhausted
	}

	if f.err != nil {
		return lo.Empty[T](), f.err
	}

	element := f.buffered
	f.buffered = lo.Empty[T]()
	f.hasBuffer = false

	return element, nil
}

var _ Iterator[any] = (*filterIterator[any])(nil)
