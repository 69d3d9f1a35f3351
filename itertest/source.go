package itertest

import (
	"fmt"

	"github.com/Alp4ka/goiter"
)

// CountingSource wraps a PageSource and records every requested page index
// in order, including failed attempts.
type CountingSource[T any] struct {
	upstream goiter.PageSource[T]

	// Requested is the ordered list of page indexes asked from the upstream.
	Requested []int
}

func NewCountingSource[T any](upstream goiter.PageSource[T]) *CountingSource[T] {
	return &CountingSource[T]{upstream: upstream}
}

func (s *CountingSource[T]) GetPage(index int) ([]T, error) {
	s.Requested = append(s.Requested, index)
	return s.upstream.GetPage(index)
}

func (s *CountingSource[T]) GetNumPages() int {
	return s.upstream.GetNumPages()
}

func (s *CountingSource[T]) GetNumRecords() int {
	return s.upstream.GetNumRecords()
}

// FlakySource wraps a PageSource and fails every logical page fetch with a
// transient fault the configured number of times before letting it through.
// The injected-failure counter resets on each success, so every fetch starts
// with the same number of faults ahead of it.
type FlakySource[T any] struct {
	upstream goiter.PageSource[T]
	failures int
	injected int
}

// NewFlakySource builds a source injecting `failures` transient faults per
// logical fetch.
func NewFlakySource[T any](upstream goiter.PageSource[T], failures int) *FlakySource[T] {
	return &FlakySource[T]{
		upstream: upstream,
		failures: failures,
	}
}

func (s *FlakySource[T]) GetPage(index int) ([]T, error) {
	if s.injected < s.failures {
		s.injected++
		return nil, fmt.Errorf("injected fault %d of %d for page %d: %w",
			s.injected, s.failures, index, goiter.ErrTransient)
	}

	s.injected = 0

	return s.upstream.GetPage(index)
}

func (s *FlakySource[T]) GetNumPages() int {
	return s.upstream.GetNumPages()
}

func (s *FlakySource[T]) GetNumRecords() int {
	return s.upstream.GetNumRecords()
}

var (
	_ goiter.PageSource[any] = (*CountingSource[any])(nil)
	_ goiter.PageSource[any] = (*FlakySource[any])(nil)
)
