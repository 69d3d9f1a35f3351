package goiter_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Alp4ka/goiter"
	"github.com/Alp4ka/goiter/itertest"
)

func Test_SliceIterator_Forward(t *testing.T) {
	itertest.TestIterator[int](t, goiter.FromSlice([]int{1, 2, 3}), []int{1, 2, 3})
}

func Test_SliceIterator_BothEnds(t *testing.T) {
	it := goiter.FromSlice([]string{"a", "b", "c", "d", "e"})

	front, err := it.Next()
	require.NoError(t, err)
	require.Equal(t, "a", front)

	back, err := it.ReverseNext()
	require.NoError(t, err)
	require.Equal(t, "e", back)

	back, err = it.ReverseNext()
	require.NoError(t, err)
	require.Equal(t, "d", back)

	front, err = it.Next()
	require.NoError(t, err)
	require.Equal(t, "b", front)

	// One shared element left; either end may take it, but only once.
	require.True(t, it.HasNext())
	front, err = it.Next()
	require.NoError(t, err)
	require.Equal(t, "c", front)

	require.False(t, it.HasNext())
	_, err = it.Next()
	require.ErrorIs(t, err, goiter.ErrExhausted)
	_, err = it.ReverseNext()
	require.ErrorIs(t, err, goiter.ErrExhausted)
}

func Test_SliceIterator_Empty(t *testing.T) {
	it := goiter.FromSlice([]int{})

	require.False(t, it.HasNext())
	_, err := it.Next()
	require.ErrorIs(t, err, goiter.ErrExhausted)
	_, err = it.ReverseNext()
	require.ErrorIs(t, err, goiter.ErrExhausted)
}
