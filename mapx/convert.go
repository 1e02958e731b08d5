package mapx

import "iter"

// Map calls fn with v and returns its result, for converting a value inline.
func Map[T, U any](v T, fn func(T) U) U {
	return fn(v)
}

// PartitionMap consumes seq, sending every element for which pred holds
// through left and every other element through right.
func PartitionMap[T, L, R any](
	seq iter.Seq[T],
	pred func(T) bool,
	left func(T) L,
	right func(T) R,
) ([]L, []R) {
	var ls []L
	var rs []R
	for v := range seq {
		if pred(v) {
			ls = append(ls, left(v))
		} else {
			rs = append(rs, right(v))
		}
	}
	return ls, rs
}

// PartitionMapInto is PartitionMap collecting the right side into a map.
func PartitionMapInto[T, L any, K comparable, V any](
	seq iter.Seq[T],
	pred func(T) bool,
	left func(T) L,
	right func(T) (K, V),
) ([]L, map[K]V) {
	var ls []L
	rs := make(map[K]V)
	for v := range seq {
		if pred(v) {
			ls = append(ls, left(v))
		} else {
			k, val := right(v)
			rs[k] = val
		}
	}
	return ls, rs
}
