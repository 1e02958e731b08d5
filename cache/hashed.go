package cache

import (
	"go.uber.org/zap"
)

// Hasher supplies hashing and equality for keys a Go map cannot index.
// Equal keys must hash equally.
type Hasher[K any] interface {
	Hash(key K) uint64
	Equal(a, b K) bool
}

// Equivalent lets a borrowed form Q look up entries keyed by K.
// Hash must agree with the Hasher of the cache being searched.
type Equivalent[Q, K any] interface {
	Hash(q Q) uint64
	Matches(q Q, key K) bool
}

type hashedEntry[K, V any] struct {
	key   K
	value *V
}

// HashedCache is a KeyedCache whose keys are located by a Hasher instead of
// Go equality.
type HashedCache[K, V any] struct {
	meta

	compute func(K) (V, error)
	hasher  Hasher[K]
	buckets map[uint64][]hashedEntry[K, V]
	size    int
}

// NewHashedCache creates an empty cache over fn.
func NewHashedCache[K, V any](hasher Hasher[K], fn func(K) V, opts ...Option) *HashedCache[K, V] {
	return NewFallibleHashedCache(hasher, func(key K) (V, error) {
		return fn(key), nil
	}, opts...)
}

// NewFallibleHashedCache creates an empty cache over a computation that may fail.
func NewFallibleHashedCache[K, V any](hasher Hasher[K], fn func(K) (V, error), opts ...Option) *HashedCache[K, V] {
	if fn == nil {
		panic("cache: nil computation")
	}
	if hasher == nil {
		panic("cache: nil hasher")
	}
	return &HashedCache[K, V]{
		meta:    newMeta("hashed", opts),
		compute: fn,
		hasher:  hasher,
		buckets: make(map[uint64][]hashedEntry[K, V]),
	}
}

// ValueMut returns a pointer to the value cached for key, computing it first
// if needed. It panics if the computation fails.
func (c *HashedCache[K, V]) ValueMut(key K) *V {
	v, err := c.TryValueMut(key)
	if err != nil {
		panic(err)
	}
	return v
}

// TryValueMut is ValueMut returning the computation's failure instead of
// panicking.
func (c *HashedCache[K, V]) TryValueMut(key K) (*V, error) {
	h := c.hasher.Hash(key)
	if v, ok := c.find(h, func(k K) bool { return c.hasher.Equal(k, key) }); ok {
		return v, nil
	}

	v, err := c.run(key, h)
	if err != nil {
		c.failed(err, zap.Uint64("key_hash", h))
		return nil, err
	}

	p := &v
	c.buckets[h] = append(c.buckets[h], hashedEntry[K, V]{key: key, value: p})
	c.size++
	c.computed(zap.Uint64("key_hash", h))
	return p, nil
}

func (c *HashedCache[K, V]) run(key K, h uint64) (V, error) {
	defer c.panicked(zap.Uint64("key_hash", h))
	return c.compute(key)
}

// Value returns the value cached for key, if any. It never computes.
func (c *HashedCache[K, V]) Value(key K) (*V, bool) {
	return c.find(c.hasher.Hash(key), func(k K) bool { return c.hasher.Equal(k, key) })
}

// Len returns the number of cached keys.
func (c *HashedCache[K, V]) Len() int {
	return c.size
}

func (c *HashedCache[K, V]) find(h uint64, match func(K) bool) (*V, bool) {
	for _, e := range c.buckets[h] {
		if match(e.key) {
			return e.value, true
		}
	}
	return nil, false
}

// Lookup finds the value cached under the key q is a borrowed form of.
// It never computes.
func Lookup[Q, K, V any](c *HashedCache[K, V], equiv Equivalent[Q, K], q Q) (*V, bool) {
	return c.find(equiv.Hash(q), func(k K) bool { return equiv.Matches(q, k) })
}
