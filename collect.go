package goiter

import "errors"

// Collect drains it into a slice, preserving order. A fatal upstream error
// aborts collection and discards the partial result.
func Collect[T any](it Iterator[T]) ([]T, error) {
	ret := make([]T, 0)

	for it.HasNext() {
		element, err := it.Next()
		if err != nil {
			if errors.Is(err, ErrExhausted) {
				break
			}

			return nil, err
		}

		ret = append(ret, element)
	}

	return ret, nil
}

// Count drains it and reports the number of elements it produced.
func Count[T any](it Iterator[T]) (int, error) {
	return Reduce(it, 0, func(n int, _ T) int {
		return n + 1
	})
}
