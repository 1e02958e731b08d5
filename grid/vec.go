package grid

import (
	"fmt"
	"strings"
)

// Vec2D is a row-major two-dimensional array that owns its storage.
type Vec2D[T any] struct {
	Window2D[T]
}

// NewVec2D allocates a rows by columns array of zero values.
func NewVec2D[T any](rows, columns int) *Vec2D[T] {
	return &Vec2D[T]{NewWindow2DUnchecked(make([]T, rows*columns), rows, columns)}
}

// NewVec2DWith allocates a rows by columns array filled by fn.
func NewVec2DWith[T any](rows, columns int, fn func(r, c int) T) *Vec2D[T] {
	v := NewVec2D[T](rows, columns)
	for r := 0; r < rows; r++ {
		for c := 0; c < columns; c++ {
			v.Set(r, c, fn(r, c))
		}
	}
	return v
}

// FromSlice takes ownership of raw, split into rows of the given columns.
func FromSlice[T any](raw []T, columns int) (*Vec2D[T], error) {
	w, err := NewWindow2D(raw, columns)
	if err != nil {
		return nil, err
	}
	return &Vec2D[T]{w}, nil
}

// Raw returns the row-major backing slice.
func (v *Vec2D[T]) Raw() []T {
	return v.raw
}

func (v *Vec2D[T]) String() string {
	var b strings.Builder
	b.WriteString("[")
	for r := 0; r < v.rows; r++ {
		if r > 0 {
			b.WriteString(", ")
		}
		fmt.Fprint(&b, v.Row(r))
	}
	b.WriteString("]")
	return b.String()
}
