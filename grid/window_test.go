package grid_test

import (
	"testing"

	"github.com/on-the-ground/hodgepodge/grid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWindow2D_WritesThrough(t *testing.T) {
	values := make([]uint32, 8)
	window := grid.MustWindow2D(values, 2)
	window.Set(0, 1, 1)
	window.Set(1, 1, 2)
	window.Set(2, 1, 3)
	window.Row(3)[1] = 4

	assert.Equal(t, []uint32{0, 1, 0, 2, 0, 3, 0, 4}, values)
}

func TestWindow2D_Indexing(t *testing.T) {
	values := []int{0, 1, 2, 3, 4, 5, 6, 7}
	window, err := grid.NewWindow2D(values, 2)
	require.NoError(t, err)

	assert.Equal(t, 4, window.Rows())
	assert.Equal(t, 2, window.Columns())
	assert.Equal(t, []int{0, 1}, window.Row(0))
	assert.Equal(t, []int{6, 7}, window.Row(3))
	assert.Equal(t, 5, window.At(2, 1))

	for y := 0; y < 4; y++ {
		for x := 0; x < 2; x++ {
			window.Set(y, x, 2*(3-y)+(1-x))
		}
	}
	assert.Equal(t, []int{7, 6}, window.Row(0))
	assert.Equal(t, []int{1, 0}, window.Row(3))

	for y := 0; y < 4; y++ {
		for x := 0; x < 2; x++ {
			*window.Ptr(y, x) *= 2
		}
	}
	assert.Equal(t, []int{14, 12, 10, 8, 6, 4, 2, 0}, values)
}

func TestWindow2D_Errors(t *testing.T) {
	_, err := grid.NewWindow2D(make([]int, 7), 2)
	assert.ErrorIs(t, err, grid.ErrUneven)

	_, err = grid.NewWindow2D(make([]int, 4), 0)
	assert.ErrorIs(t, err, grid.ErrUneven)

	assert.Panics(t, func() { grid.MustWindow2D(make([]int, 3), 2) })

	window := grid.MustWindow2D(make([]int, 4), 2)
	assert.Panics(t, func() { window.Row(2) })
	assert.Panics(t, func() { window.At(0, 2) })
}

func TestWindow2D_RowCannotGrowIntoNextRow(t *testing.T) {
	values := []int{1, 2, 3, 4}
	window := grid.MustWindow2D(values, 2)

	row := append(window.Row(0), 9)

	assert.Equal(t, []int{1, 2, 9}, row)
	assert.Equal(t, []int{1, 2, 3, 4}, values)
}

func TestVec2D(t *testing.T) {
	v := grid.NewVec2DWith(2, 3, func(r, c int) int { return r*10 + c })

	assert.Equal(t, []int{0, 1, 2, 10, 11, 12}, v.Raw())
	assert.Equal(t, 12, v.At(1, 2))
	assert.Equal(t, "[[0 1 2], [10 11 12]]", v.String())

	zeros := grid.NewVec2D[string](2, 2)
	assert.Equal(t, []string{"", ""}, zeros.Row(1))

	owned, err := grid.FromSlice([]int{1, 2, 3, 4, 5, 6}, 3)
	require.NoError(t, err)
	assert.Equal(t, 2, owned.Rows())

	_, err = grid.FromSlice([]int{1, 2, 3}, 2)
	assert.ErrorIs(t, err, grid.ErrUneven)
}
