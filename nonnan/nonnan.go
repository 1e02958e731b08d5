// Package nonnan wraps floating point numbers that are guaranteed not to be
// NaN, which gives them a total order.
package nonnan

import (
	"cmp"
	"errors"
	"fmt"
	"math"
	"slices"

	"github.com/on-the-ground/hodgepodge/floatx"
)

// ErrNaN is returned when a NaN is wrapped.
var ErrNaN = errors.New("NaN values are not allowed")

// NonNaN holds a float that is not NaN. The zero value holds 0.
type NonNaN[F floatx.Float] struct {
	v F
}

// New wraps v and panics if it is NaN.
func New[F floatx.Float](v F) NonNaN[F] {
	n, err := TryNew(v)
	if err != nil {
		panic(err)
	}
	return n
}

// TryNew wraps v, or returns ErrNaN.
func TryNew[F floatx.Float](v F) (NonNaN[F], error) {
	if math.IsNaN(float64(v)) {
		return NonNaN[F]{}, ErrNaN
	}
	return NonNaN[F]{v: v}, nil
}

// Get returns the wrapped value.
func (n NonNaN[F]) Get() F {
	return n.v
}

// Compare returns -1, 0 or +1. Unlike float comparison it is a total order.
func (n NonNaN[F]) Compare(other NonNaN[F]) int {
	return cmp.Compare(n.v, other.v)
}

func (n NonNaN[F]) Less(other NonNaN[F]) bool {
	return n.v < other.v
}

func (n NonNaN[F]) String() string {
	return fmt.Sprint(n.v)
}

// Sort sorts s in increasing order.
func Sort[F floatx.Float](s []NonNaN[F]) {
	slices.SortFunc(s, NonNaN[F].Compare)
}

// Max returns the largest element of s, which must not be empty.
func Max[F floatx.Float](s []NonNaN[F]) NonNaN[F] {
	return slices.MaxFunc(s, NonNaN[F].Compare)
}
