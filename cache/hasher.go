package cache

import (
	"bytes"
	"slices"

	"github.com/cespare/xxhash/v2"
)

// StringHasher hashes string keys with xxhash.
type StringHasher struct{}

func (StringHasher) Hash(key string) uint64 { return xxhash.Sum64String(key) }
func (StringHasher) Equal(a, b string) bool { return a == b }

// BytesHasher hashes byte slice keys with xxhash. It agrees with StringHasher
// on the same contents.
type BytesHasher struct{}

func (BytesHasher) Hash(key []byte) uint64 { return xxhash.Sum64(key) }
func (BytesHasher) Equal(a, b []byte) bool { return bytes.Equal(a, b) }

// BytesAsString looks up string keys by their bytes.
type BytesAsString struct{}

func (BytesAsString) Hash(q []byte) uint64 { return xxhash.Sum64(q) }
func (BytesAsString) Matches(q []byte, key string) bool {
	return string(q) == key
}

// StringAsBytes looks up byte slice keys by a string.
type StringAsBytes struct{}

func (StringAsBytes) Hash(q string) uint64 { return xxhash.Sum64String(q) }
func (StringAsBytes) Matches(q string, key []byte) bool {
	return q == string(key)
}

// StringsHasher hashes string slice keys, such as split paths. Each element
// is terminated by a zero byte so ["ab"] and ["a", "b"] differ.
type StringsHasher struct{}

func (StringsHasher) Hash(key []string) uint64 {
	d := xxhash.New()
	for _, s := range key {
		_, _ = d.WriteString(s)
		_, _ = d.Write([]byte{0})
	}
	return d.Sum64()
}

func (StringsHasher) Equal(a, b []string) bool { return slices.Equal(a, b) }
