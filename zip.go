package goiter

import "github.com/samber/lo"

type zipIterator[T, U, R any] struct {
	lit Iterator[T]
	rit Iterator[U]
	f   func(T, U) R
}

// Zip returns an iterator over f applied to each pair of corresponding
// elements from lit and rit. That is, for elements a, b, c... and x, y, z...
// it yields f(a, x), f(b, y), f(c, z)...
//
// The result ends as soon as either input ends; availability is checked on
// both sides before pulling either, so the longer side never loses more than
// the pulls already made.
func Zip[T, U, R any](lit Iterator[T], rit Iterator[U], f func(T, U) R) Iterator[R] {
	return &zipIterator[T, U, R]{
		lit: lit,
		rit: rit,
		f:   f,
	}
}

func (z *zipIterator[T, U, R]) HasNext() bool {
	return z.lit.HasNext() && z.rit.HasNext()
}

func (z *zipIterator[T, U, R]) Next() (R, error) {
	if !z.HasNext() {
		return lo.Empty[R](), ErrExhausted
	}

	left, err := z.lit.Next()
	if err != nil {
		return lo.Empty[R](), err
	}

	right, err := z.rit.Next()
	if err != nil {
		return lo.Empty[R](), err
	}

	return z.f(left, right), nil
}

var _ Iterator[any] = (*zipIterator[any, any, any])(nil)
