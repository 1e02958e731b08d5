package cache

import (
	"fmt"
)

type singleState uint8

const (
	statePending singleState = iota
	stateDone
	stateConsumed
)

// SingleCache lazily computes one value and keeps it.
//
// The computation runs the first time the value is forced with ValueMut or
// TryValueMut, and never again. It is attempted at most once even if it fails:
// a computation that returns an error or panics leaves the cache without a
// computation and without a value.
//
// A SingleCache is not safe for concurrent use.
type SingleCache[V any] struct {
	meta

	compute func() (V, error)
	value   V
	state   singleState
	failure error
}

// NewSingleCache creates a cache holding fn unevaluated.
func NewSingleCache[V any](fn func() V, opts ...Option) *SingleCache[V] {
	return NewFallibleSingleCache(func() (V, error) {
		return fn(), nil
	}, opts...)
}

// NewFallibleSingleCache creates a cache holding a computation that may fail.
func NewFallibleSingleCache[V any](fn func() (V, error), opts ...Option) *SingleCache[V] {
	if fn == nil {
		panic("cache: nil computation")
	}
	return &SingleCache[V]{
		meta:    newMeta("single", opts),
		compute: fn,
	}
}

// ValueMut forces the computation on first use and returns a pointer to the
// cached value. It panics if the computation fails, or if it already failed
// on an earlier call.
func (c *SingleCache[V]) ValueMut() *V {
	v, err := c.TryValueMut()
	if err != nil {
		panic(err)
	}
	return v
}

// TryValueMut is ValueMut returning the computation's failure instead of
// panicking. Once the computation failed, every later call returns an error
// wrapping ErrComputationConsumed and the original failure.
func (c *SingleCache[V]) TryValueMut() (*V, error) {
	switch c.state {
	case stateDone:
		return &c.value, nil
	case stateConsumed:
		return nil, fmt.Errorf("%w: %w", ErrComputationConsumed, c.failure)
	}

	compute := c.compute
	c.compute = nil
	c.state = stateConsumed
	// stays recorded if compute panics
	c.failure = ErrComputationPanicked

	v, err := c.run(compute)
	if err != nil {
		c.failure = err
		c.failed(err)
		return nil, err
	}

	c.value = v
	c.state = stateDone
	c.failure = nil
	c.computed()
	return &c.value, nil
}

// Value returns the cached value if it was already computed. It never runs
// the computation.
func (c *SingleCache[V]) Value() (*V, bool) {
	if c.state != stateDone {
		return nil, false
	}
	return &c.value, true
}

// Forced reports whether the computation was attempted.
func (c *SingleCache[V]) Forced() bool {
	return c.state != statePending
}

func (c *SingleCache[V]) run(compute func() (V, error)) (V, error) {
	defer c.panicked()
	return compute()
}
