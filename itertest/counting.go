// Package itertest provides instrumented iterator and page-source doubles
// for asserting laziness, fetch order and retry behavior in tests.
package itertest

import "github.com/Alp4ka/goiter"

// CountingIterator wraps an upstream iterator and records how many elements
// were pulled from it. HasNext is forwarded without counting, since the
// contract allows it to be called any number of times for free.
type CountingIterator[T any] struct {
	upstream goiter.Iterator[T]

	// Pulls is the number of Next calls forwarded upstream.
	Pulls int
}

func NewCountingIterator[T any](upstream goiter.Iterator[T]) *CountingIterator[T] {
	return &CountingIterator[T]{upstream: upstream}
}

func (c *CountingIterator[T]) HasNext() bool {
	return c.upstream.HasNext()
}

func (c *CountingIterator[T]) Next() (T, error) {
	c.Pulls++
	return c.upstream.Next()
}

// CountingDoubleEnded is CountingIterator for double-ended upstreams,
// recording pulls per direction.
type CountingDoubleEnded[T any] struct {
	upstream goiter.DoubleEnded[T]

	FrontPulls int
	BackPulls  int
}

func NewCountingDoubleEnded[T any](upstream goiter.DoubleEnded[T]) *CountingDoubleEnded[T] {
	return &CountingDoubleEnded[T]{upstream: upstream}
}

func (c *CountingDoubleEnded[T]) HasNext() bool {
	return c.upstream.HasNext()
}

func (c *CountingDoubleEnded[T]) Next() (T, error) {
	c.FrontPulls++
	return c.upstream.Next()
}

func (c *CountingDoubleEnded[T]) ReverseNext() (T, error) {
	c.BackPulls++
	return c.upstream.ReverseNext()
}

var (
	_ goiter.Iterator[any]    = (*CountingIterator[any])(nil)
	_ goiter.DoubleEnded[any] = (*CountingDoubleEnded[any])(nil)
)
