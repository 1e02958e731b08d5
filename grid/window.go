// Package grid provides two-dimensional views over one-dimensional slices.
package grid

import (
	"errors"
	"fmt"
)

// ErrUneven is returned when a slice cannot be split into whole rows.
var ErrUneven = errors.New("length does not divide evenly into columns")

// Window2D is a row-major two-dimensional view over a slice it does not own.
// Writes through the window change the underlying slice.
type Window2D[T any] struct {
	raw     []T
	rows    int
	columns int
}

// NewWindow2D splits raw into rows of the given number of columns.
func NewWindow2D[T any](raw []T, columns int) (Window2D[T], error) {
	if columns <= 0 {
		return Window2D[T]{}, fmt.Errorf("%w: columns must be positive, got %d", ErrUneven, columns)
	}
	if len(raw)%columns != 0 {
		return Window2D[T]{}, fmt.Errorf("%w: %d into %d", ErrUneven, len(raw), columns)
	}
	return Window2D[T]{raw: raw, rows: len(raw) / columns, columns: columns}, nil
}

// MustWindow2D is NewWindow2D panicking on error.
func MustWindow2D[T any](raw []T, columns int) Window2D[T] {
	w, err := NewWindow2D(raw, columns)
	if err != nil {
		panic(err)
	}
	return w
}

// NewWindow2DUnchecked trusts rows and columns to describe raw. Wrong values
// show up as index panics on access.
func NewWindow2DUnchecked[T any](raw []T, rows, columns int) Window2D[T] {
	return Window2D[T]{raw: raw, rows: rows, columns: columns}
}

func (w Window2D[T]) Rows() int    { return w.rows }
func (w Window2D[T]) Columns() int { return w.columns }

// Row returns row r as a subslice sharing memory with the window.
func (w Window2D[T]) Row(r int) []T {
	if r < 0 || r >= w.rows {
		panic(fmt.Sprintf("grid: row %d out of range [0, %d)", r, w.rows))
	}
	start := r * w.columns
	return w.raw[start : start+w.columns : start+w.columns]
}

// At returns the element at row r, column c.
func (w Window2D[T]) At(r, c int) T {
	return w.Row(r)[c]
}

// Ptr returns a pointer to the element at row r, column c.
func (w Window2D[T]) Ptr(r, c int) *T {
	return &w.Row(r)[c]
}

// Set stores v at row r, column c.
func (w Window2D[T]) Set(r, c int, v T) {
	w.Row(r)[c] = v
}
