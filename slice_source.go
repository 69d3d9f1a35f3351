package goiter

import "fmt"

// SliceSource serves a fixed in-memory record slice as pages. Useful for
// tests and for feeding already-loaded data through the same machinery as a
// remote source. All pages except the last have exactly the configured page
// size.
type SliceSource[T any] struct {
	records  []T
	pageSize int
}

func NewSliceSource[T any](records []T) *SliceSource[T] {
	return &SliceSource[T]{
		records:  records,
		pageSize: DefaultPageSize,
	}
}

// WithPageSize sets the page size. NormalizePageSize is applied.
func (s *SliceSource[T]) WithPageSize(size int) *SliceSource[T] {
	if s == nil {
		s = new(SliceSource[T])
	}

	s.pageSize = NormalizePageSize(size)

	return s
}

// GetPage - implements PageSource. An out-of-range index is a plain,
// non-retryable error.
func (s *SliceSource[T]) GetPage(index int) ([]T, error) {
	if index < 0 || index >= s.GetNumPages() {
		return nil, fmt.Errorf("page index %d out of range [0, %d)", index, s.GetNumPages())
	}

	from := index * s.pageSize
	to := min(from+s.pageSize, len(s.records))

	return s.records[from:to], nil
}

// GetNumPages - implements PageSource.
func (s *SliceSource[T]) GetNumPages() int {
	return (len(s.records) + s.pageSize - 1) / s.pageSize
}

// GetNumRecords - implements PageSource.
func (s *SliceSource[T]) GetNumRecords() int {
	return len(s.records)
}

// GetPageSize returns the effective page size.
func (s *SliceSource[T]) GetPageSize() int {
	if s == nil {
		return 0
	}

	return s.pageSize
}

var _ PageSource[any] = (*SliceSource[any])(nil)
