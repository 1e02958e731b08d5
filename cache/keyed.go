package cache

import (
	"go.uber.org/zap"
)

// KeyedCache lazily computes and keeps one value per distinct key, sharing
// one computation across all keys.
//
// The computation may carry its own state between calls. It runs at most once
// per key among successful computations: a failed computation stores nothing,
// so the next access with that key computes again.
//
// The cache only grows. A KeyedCache is not safe for concurrent use.
type KeyedCache[K comparable, V any] struct {
	meta

	compute func(K) (V, error)
	values  map[K]*V
}

// NewKeyedCache creates an empty cache over fn.
func NewKeyedCache[K comparable, V any](fn func(K) V, opts ...Option) *KeyedCache[K, V] {
	return NewFallibleKeyedCache(func(key K) (V, error) {
		return fn(key), nil
	}, opts...)
}

// NewFallibleKeyedCache creates an empty cache over a computation that may fail.
func NewFallibleKeyedCache[K comparable, V any](fn func(K) (V, error), opts ...Option) *KeyedCache[K, V] {
	if fn == nil {
		panic("cache: nil computation")
	}
	return &KeyedCache[K, V]{
		meta:    newMeta("keyed", opts),
		compute: fn,
		values:  make(map[K]*V),
	}
}

// ValueMut returns a pointer to the value cached for key, computing it first
// if key was never computed. It panics if the computation fails.
func (c *KeyedCache[K, V]) ValueMut(key K) *V {
	v, err := c.TryValueMut(key)
	if err != nil {
		panic(err)
	}
	return v
}

// TryValueMut is ValueMut returning the computation's failure instead of
// panicking. Nothing is cached for key on failure.
func (c *KeyedCache[K, V]) TryValueMut(key K) (*V, error) {
	if v, ok := c.values[key]; ok {
		return v, nil
	}

	v, err := c.run(key)
	if err != nil {
		c.failed(err, zap.Any("key", key))
		return nil, err
	}

	p := &v
	c.values[key] = p
	c.computed(zap.Any("key", key))
	return p, nil
}

func (c *KeyedCache[K, V]) run(key K) (V, error) {
	defer c.panicked(zap.Any("key", key))
	return c.compute(key)
}

// Value returns the value cached for key, if any. It never computes.
func (c *KeyedCache[K, V]) Value(key K) (*V, bool) {
	v, ok := c.values[key]
	return v, ok
}

// Len returns the number of cached keys.
func (c *KeyedCache[K, V]) Len() int {
	return len(c.values)
}

// ValueBytes looks up a string keyed cache by the bytes of the key without
// allocating a string.
func ValueBytes[V any](c *KeyedCache[string, V], key []byte) (*V, bool) {
	v, ok := c.values[string(key)]
	return v, ok
}
