package goiter

import "errors"

// Reduce combines all elements of it into a single value via a left fold in
// strict forward encounter order: for elements a, b, c and initial value x it
// returns f(f(f(x, a), b), c).
//
// Reduce is the sole draining operation in the library: it is eager and
// consumes it completely. A fatal upstream error aborts the fold and is
// returned alongside the accumulator built so far.
func Reduce[T, R any](it Iterator[T], initial R, f func(R, T) R) (R, error) {
	acc := initial

	for it.HasNext() {
		element, err := it.Next()
		if err != nil {
			if errors.Is(err, ErrExhausted) {
				break
			}

			return acc, err
		}

		acc = f(acc, element)
	}

	return acc, nil
}
