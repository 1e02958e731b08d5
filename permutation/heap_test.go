package permutation_test

import (
	"slices"
	"testing"

	"github.com/on-the-ground/hodgepodge/permutation"
	"github.com/stretchr/testify/assert"
)

func TestHeap_Two(t *testing.T) {
	got := permutation.Heap[float64]([]float64{1, 2})
	assert.Equal(t, []float64{12, 21}, got)
}

func TestHeap_Three(t *testing.T) {
	got := permutation.Heap[int]([]int{1, 2, 3})
	assert.Equal(t, []int{123, 213, 312, 132, 231, 321}, got)
}

func TestHeap_WidensDigits(t *testing.T) {
	got := permutation.Heap[uint64]([]uint8{9, 8, 7, 6})
	assert.Len(t, got, 24)
	assert.Contains(t, got, uint64(6789))
	assert.Contains(t, got, uint64(9876))
}

func TestHeap_Empty(t *testing.T) {
	assert.Empty(t, permutation.Heap[int]([]int{}))
}

func TestEach(t *testing.T) {
	var got [][]string
	permutation.Each([]string{"a", "b", "c"}, func(p []string) {
		got = append(got, slices.Clone(p))
	})

	assert.Equal(t, [][]string{
		{"a", "b", "c"},
		{"b", "a", "c"},
		{"c", "a", "b"},
		{"a", "c", "b"},
		{"b", "c", "a"},
		{"c", "b", "a"},
	}, got)
}
