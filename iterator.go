package goiter

// Iterator is the minimal lazy traversal capability. Implementations yield
// exactly one element per Next call and must not compute or fetch more than
// that call requires.
type Iterator[T any] interface {
	// HasNext reports whether at least one more element is available. For
	// double-ended implementations this covers both ends combined, since the
	// two directions consume from one shared pool of remaining elements.
	HasNext() bool

	// Next returns the next front element. Returns ErrExhausted when nothing
	// remains; callers are expected to consult HasNext first.
	Next() (T, error)
}

// DoubleEnded extends Iterator with consumption from the back of the
// unconsumed remainder. An element produced from either end is never
// produced again by either end.
type DoubleEnded[T any] interface {
	Iterator[T]

	// ReverseNext returns the next back element. Returns ErrExhausted when
	// nothing remains.
	ReverseNext() (T, error)
}
