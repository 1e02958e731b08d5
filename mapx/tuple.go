// Package mapx holds small helpers for maps and inline conversions.
package mapx

// Tuple2 is a comparable two-part map key.
type Tuple2[A, B comparable] struct {
	First  A
	Second B
}

// Tuple3 is a comparable three-part map key.
type Tuple3[A, B, C comparable] struct {
	First  A
	Second B
	Third  C
}

// Tuple4 is a comparable four-part map key.
type Tuple4[A, B, C, D comparable] struct {
	First  A
	Second B
	Third  C
	Fourth D
}

func T2[A, B comparable](a A, b B) Tuple2[A, B] {
	return Tuple2[A, B]{a, b}
}

func T3[A, B, C comparable](a A, b B, c C) Tuple3[A, B, C] {
	return Tuple3[A, B, C]{a, b, c}
}

func T4[A, B, C, D comparable](a A, b B, c C, d D) Tuple4[A, B, C, D] {
	return Tuple4[A, B, C, D]{a, b, c, d}
}

// GetByTuple2 looks up a tuple keyed map by the parts of the key.
func GetByTuple2[A, B comparable, V any](m map[Tuple2[A, B]]V, a A, b B) (V, bool) {
	v, ok := m[Tuple2[A, B]{a, b}]
	return v, ok
}

// GetByTuple3 looks up a tuple keyed map by the parts of the key.
func GetByTuple3[A, B, C comparable, V any](m map[Tuple3[A, B, C]]V, a A, b B, c C) (V, bool) {
	v, ok := m[Tuple3[A, B, C]{a, b, c}]
	return v, ok
}

// GetByTuple4 looks up a tuple keyed map by the parts of the key.
func GetByTuple4[A, B, C, D comparable, V any](m map[Tuple4[A, B, C, D]]V, a A, b B, c C, d D) (V, bool) {
	v, ok := m[Tuple4[A, B, C, D]{a, b, c, d}]
	return v, ok
}
