package goiter

import "errors"

var (
	// ErrExhausted is returned by Next/ReverseNext when no elements remain.
	// It is the normal end-of-sequence signal; callers checking HasNext first
	// never see it.
	ErrExhausted = errors.New("iterator is exhausted")

	// ErrTransient marks a single failed page-fetch attempt as retryable.
	// Page sources wrap it (fmt.Errorf("...: %w", ErrTransient)); the paged
	// iterator's retry loop matches it with errors.Is and retries.
	ErrTransient = errors.New("transient source fault")

	// ErrSourceUnreachable is returned once the retry budget for a single
	// page fetch is spent. It is fatal: the source is unusable for the
	// remainder of the session.
	ErrSourceUnreachable = errors.New("source unreachable")
)
