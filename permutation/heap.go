// Package permutation generates permutations with Heap's algorithm.
package permutation

// Number is the set of types digits and results may have.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Heap returns every permutation of digits read as a base-10 number, in the
// order Heap's algorithm visits them. digits is shuffled in place and its
// order afterwards is unspecified.
func Heap[R, T Number](digits []T) []R {
	if len(digits) == 0 {
		return nil
	}
	var result []R
	heap(digits, len(digits), &result)
	return result
}

// Each calls yield with every permutation of digits, in the order Heap
// visits them. The slice passed to yield is reused between calls.
func Each[T any](digits []T, yield func([]T)) {
	if len(digits) == 0 {
		return
	}
	each(digits, len(digits), yield)
}

func heap[R, T Number](digits []T, k int, result *[]R) {
	if k == 1 {
		var n R
		for _, d := range digits {
			n = n*10 + R(d)
		}
		*result = append(*result, n)
		return
	}
	for i := 0; i < k; i++ {
		heap(digits, k-1, result)
		swapStep(digits, i, k)
	}
}

func each[T any](digits []T, k int, yield func([]T)) {
	if k == 1 {
		yield(digits)
		return
	}
	for i := 0; i < k; i++ {
		each(digits, k-1, yield)
		swapStep(digits, i, k)
	}
}

func swapStep[T any](digits []T, i, k int) {
	if k%2 == 1 {
		digits[0], digits[k-1] = digits[k-1], digits[0]
	} else {
		digits[i], digits[k-1] = digits[k-1], digits[i]
	}
}
