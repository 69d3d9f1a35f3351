package goiter_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Alp4ka/goiter"
)

func Test_Collect(t *testing.T) {
	tests := []struct {
		name     string
		elements []int
	}{
		{"elements in order", []int{3, 1, 2}},
		{"empty", []int{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := goiter.Collect[int](goiter.FromSlice(tt.elements))
			require.NoError(t, err)
			require.Equal(t, tt.elements, got)
		})
	}
}

func Test_Count(t *testing.T) {
	got, err := goiter.Count[int](goiter.FromSlice([]int{1, 2, 3, 4, 5}))
	require.NoError(t, err)
	require.Equal(t, 5, got)

	got, err = goiter.Count[int](goiter.FromSlice([]int{}))
	require.NoError(t, err)
	require.Zero(t, got)
}
