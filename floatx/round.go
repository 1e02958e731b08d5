// Package floatx has helpers for floating point numbers.
package floatx

import "math"

// Float is the set of floating point types.
type Float interface {
	~float32 | ~float64
}

// RoundTo returns x rounded to the given number of decimals. Half-way cases
// round away from zero. Negative decimals round to tens, hundreds and so on.
func RoundTo[F Float](x F, decimals int) F {
	coefficient := math.Pow(10, float64(decimals))
	return F(math.Round(float64(x)*coefficient) / coefficient)
}
