// Package cache provides memoizing caches for expensive computations.
//
// Two caches share one pattern:
//
//   - SingleCache defers one zero-argument computation and keeps its result.
//   - KeyedCache defers a key-to-value computation and keeps one result per key.
//
// HashedCache is a KeyedCache for keys that are not comparable (byte slices,
// string paths) and can be looked up by any borrowed form of the key that
// hashes consistently with it.
//
// Results are handed out as pointers into the cache. Mutating through such a
// pointer changes the cached value in place, and later reads observe it.
//
// A SingleCache attempts its computation at most once. If that attempt fails,
// the computation is gone and the cache stays empty:
//
//	c := cache.NewFallibleSingleCache(loadDefaults)
//	if _, err := c.TryValueMut(); err != nil {
//	    // every later TryValueMut returns ErrComputationConsumed
//	}
//
// A KeyedCache only stores successful computations, so a key whose
// computation failed is retried on its next access.
//
// None of the caches lock. The owner of a cache serializes access to it.
//
// The Tableize family builds on KeyedCache to memoize pure functions by
// their arguments.
package cache
