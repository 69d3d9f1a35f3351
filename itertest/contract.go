package itertest

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Alp4ka/goiter"
)

// TestIterator drains it and asserts the whole iterator contract against the
// expected elements:
//   - the yielded elements equal expected, in order;
//   - HasNext is pure: repeated calls consume nothing;
//   - once exhausted, HasNext stays false and every further Next returns
//     goiter.ErrExhausted.
//
// Pass a non-nil expected slice (use an empty literal for the empty case).
func TestIterator[T any](t *testing.T, it goiter.Iterator[T], expected []T) {
	t.Helper()

	got := make([]T, 0, len(expected))
	for it.HasNext() {
		// HasNext must not consume.
		require.True(t, it.HasNext())

		element, err := it.Next()
		require.NoError(t, err)

		got = append(got, element)
		require.LessOrEqual(t, len(got), len(expected), "iterator yields more elements than expected")
	}
	require.Equal(t, expected, got)

	require.False(t, it.HasNext())

	for i := 0; i < 2; i++ {
		_, err := it.Next()
		require.ErrorIs(t, err, goiter.ErrExhausted)
	}
}
