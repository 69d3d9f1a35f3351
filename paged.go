package goiter

import (
	"errors"
	"fmt"

	"github.com/samber/lo"
)

// DefaultRetries is the per-fetch attempt quota applied when none is set
// explicitly.
const DefaultRetries = 3

// PageSource is the collaborator contract consumed by PagedIterator: a
// read-only provider of fixed-origin record batches.
type PageSource[T any] interface {
	// GetPage returns the records of the zero-based page index. Pages
	// 0..GetNumPages()-2 are full-length; the last page may be shorter.
	// A momentary failure of a single attempt wraps ErrTransient.
	GetPage(index int) ([]T, error)

	// GetNumPages returns the total page count, stable for the source's
	// lifetime.
	GetNumPages() int

	// GetNumRecords returns the total record count. Must equal the sum of
	// all page lengths.
	GetNumRecords() int
}

// PagedIterator adapts a PageSource into a double-ended iterator. Pages are
// queried only as traversal demands them, holding at most one working page
// per direction.
//
// Both directions drain one shared remaining counter, so interleaving Next
// and ReverseNext never yields the same record twice even when the cursors
// meet mid-page. Not safe for concurrent use.
type PagedIterator[T any] struct {
	src        PageSource[T]
	maxRetries int

	// Forward cursor. frontPageIndex is -1 until the first Next demands
	// page 0.
	frontPage      []T
	frontPageIndex int
	frontPos       int

	// Backward cursor. Holds its own copy of its working page, so both
	// cursors may sit on the same physical page independently.
	// backPageIndex starts one past the last page; backPos < 0 means the
	// working page is depleted (or never loaded) and the next ReverseNext
	// must fetch backPageIndex-1.
	backPage      []T
	backPageIndex int
	backPos       int

	// Authoritative count of not-yet-yielded records. Every successful
	// yield from either end decrements it by exactly one; page-index
	// bookkeeping above is never consulted for exhaustion.
	remaining int
}

// NewPagedIterator constructs an iterator over src with the default retry
// quota. Totals are read from src once, at construction.
func NewPagedIterator[T any](src PageSource[T]) *PagedIterator[T] {
	return &PagedIterator[T]{
		src:            src,
		maxRetries:     DefaultRetries,
		frontPageIndex: -1,
		backPageIndex:  src.GetNumPages(),
		backPos:        -1,
		remaining:      src.GetNumRecords(),
	}
}

// WithRetries sets the number of attempts each logical page fetch gets
// before the iterator declares the source unreachable. Values below 1 fall
// back to DefaultRetries.
func (p *PagedIterator[T]) WithRetries(retries int) *PagedIterator[T] {
	if retries < 1 {
		retries = DefaultRetries
	}

	p.maxRetries = retries

	return p
}

// GetRetries returns the per-fetch attempt quota.
func (p *PagedIterator[T]) GetRetries() int {
	if p == nil {
		return 0
	}

	return p.maxRetries
}

// GetRemaining returns how many records have not been yielded yet, counting
// both directions.
func (p *PagedIterator[T]) GetRemaining() int {
	if p == nil {
		return 0
	}

	return p.remaining
}

func (p *PagedIterator[T]) HasNext() bool {
	return p.remaining > 0
}

func (p *PagedIterator[T]) Next() (T, error) {
	if !p.HasNext() {
		return lo.Empty[T](), ErrExhausted
	}

	if p.frontPageIndex == -1 {
		page, err := p.loadPage(0)
		if err != nil {
			return lo.Empty[T](), err
		}

		p.frontPageIndex = 0
		p.frontPage = page
		p.frontPos = 0
	}

	if p.frontPos >= len(p.frontPage) {
		page, err := p.loadPage(p.frontPageIndex + 1)
		if err != nil {
			return lo.Empty[T](), err
		}

		p.frontPageIndex++
		p.frontPage = page
		p.frontPos = 0
	}

	element := p.frontPage[p.frontPos]
	p.frontPos++
	p.remaining--

	return element, nil
}

func (p *PagedIterator[T]) ReverseNext() (T, error) {
	if !p.HasNext() {
		return lo.Empty[T](), ErrExhausted
	}

	if p.backPos < 0 {
		page, err := p.loadPage(p.backPageIndex - 1)
		if err != nil {
			return lo.Empty[T](), err
		}

		p.backPageIndex--
		p.backPage = page
		p.backPos = len(page) - 1
	}

	element := p.backPage[p.backPos]
	p.backPos--
	p.remaining--

	return element, nil
}

// loadPage fetches one page with a fresh attempt budget. Only transient
// faults are retried (immediately, no backoff); any other source error
// propagates as-is on the first occurrence.
func (p *PagedIterator[T]) loadPage(index int) ([]T, error) {
	var lastErr error

	for attempt := 1; attempt <= p.maxRetries; attempt++ {
		page, err := p.src.GetPage(index)
		if err == nil {
			return page, nil
		}

		if !errors.Is(err, ErrTransient) {
			return nil, err
		}

		lastErr = err
	}

	return nil, fmt.Errorf(
		"gave up on page %d after %d attempts (last: %v): %w",
		index, p.maxRetries, lastErr, ErrSourceUnreachable,
	)
}

var _ DoubleEnded[any] = (*PagedIterator[any])(nil)
