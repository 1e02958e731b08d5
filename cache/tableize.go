package cache

import (
	"fmt"

	"github.com/on-the-ground/hodgepodge/mapx"
)

// TableizeI1O1 memoizes a pure function of one argument.
// The returned function is not safe for concurrent use.
func TableizeI1O1[I1 comparable, O1 any](pureFn func(I1) O1, opts ...Option) func(I1) O1 {
	memo := NewKeyedCache(pureFn, opts...)
	return func(i1 I1) O1 {
		return *memo.ValueMut(i1)
	}
}

// TableizeI2O1 memoizes a pure function of two arguments.
func TableizeI2O1[I1, I2 comparable, O1 any](pureFn func(I1, I2) O1, opts ...Option) func(I1, I2) O1 {
	memo := NewKeyedCache(func(k mapx.Tuple2[I1, I2]) O1 {
		return pureFn(k.First, k.Second)
	}, opts...)
	return func(i1 I1, i2 I2) O1 {
		return *memo.ValueMut(mapx.T2(i1, i2))
	}
}

// TableizeI3O1 memoizes a pure function of three arguments.
func TableizeI3O1[I1, I2, I3 comparable, O1 any](pureFn func(I1, I2, I3) O1, opts ...Option) func(I1, I2, I3) O1 {
	memo := NewKeyedCache(func(k mapx.Tuple3[I1, I2, I3]) O1 {
		return pureFn(k.First, k.Second, k.Third)
	}, opts...)
	return func(i1 I1, i2 I2, i3 I3) O1 {
		return *memo.ValueMut(mapx.T3(i1, i2, i3))
	}
}

type result[O1, O2 any] struct {
	O1 O1
	O2 O2
}

// TableizeI1O2 memoizes a pure function of one argument returning two results.
func TableizeI1O2[I1 comparable, O1, O2 any](pureFn func(I1) (O1, O2), opts ...Option) func(I1) (O1, O2) {
	memo := NewKeyedCache(func(i1 I1) result[O1, O2] {
		v1, v2 := pureFn(i1)
		return result[O1, O2]{O1: v1, O2: v2}
	}, opts...)
	return func(i1 I1) (O1, O2) {
		res := memo.ValueMut(i1)
		return res.O1, res.O2
	}
}

// TableizeI2O2 memoizes a pure function of two arguments returning two results.
func TableizeI2O2[I1, I2 comparable, O1, O2 any](pureFn func(I1, I2) (O1, O2), opts ...Option) func(I1, I2) (O1, O2) {
	memo := NewKeyedCache(func(k mapx.Tuple2[I1, I2]) result[O1, O2] {
		v1, v2 := pureFn(k.First, k.Second)
		return result[O1, O2]{O1: v1, O2: v2}
	}, opts...)
	return func(i1 I1, i2 I2) (O1, O2) {
		res := memo.ValueMut(mapx.T2(i1, i2))
		return res.O1, res.O2
	}
}

// TableizeStringer memoizes a pure function whose argument is not comparable
// but renders itself with String. Arguments with the same String share one
// result.
func TableizeStringer[I1 fmt.Stringer, O1 any](pureFn func(I1) O1, opts ...Option) func(I1) O1 {
	var arg I1
	// arg is read before pureFn runs, so recursive calls may overwrite it.
	memo := NewKeyedCache(func(string) O1 {
		return pureFn(arg)
	}, opts...)
	return func(i1 I1) O1 {
		arg = i1
		return *memo.ValueMut(i1.String())
	}
}
