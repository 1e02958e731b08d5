package cache_test

import (
	"fmt"
	"testing"

	"github.com/on-the-ground/hodgepodge/cache"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKeyedCache_ComputesOncePerKey(t *testing.T) {
	counter := 0
	sut := cache.NewKeyedCache(func(k int) int {
		counter++
		return k + 5
	})

	assert.Equal(t, 10, *sut.ValueMut(5))
	assert.Equal(t, 10, *sut.ValueMut(5))
	assert.Equal(t, 15, *sut.ValueMut(10))
	assert.Equal(t, 15, *sut.ValueMut(10))

	assert.Equal(t, 2, counter)
	assert.Equal(t, 2, sut.Len())
}

func TestKeyedCache_ValueIsCorrect(t *testing.T) {
	sut := cache.NewKeyedCache(func(w string) string {
		return "Hello " + w
	})

	assert.Equal(t, "Hello World", *sut.ValueMut("World"))
}

func TestKeyedCache_ValueNotAvailableBeforeAccess(t *testing.T) {
	sut := cache.NewKeyedCache(func(int) int { return 42 })

	_, ok := sut.Value(69)
	assert.False(t, ok)
	assert.Zero(t, sut.Len())
}

func TestKeyedCache_ValueAvailableAfterFirstAccess(t *testing.T) {
	sut := cache.NewKeyedCache(func(k int) int { return k + 42 })

	sut.ValueMut(69)

	v, ok := sut.Value(69)
	require.True(t, ok)
	assert.Equal(t, 111, *v)

	_, ok = sut.Value(70)
	assert.False(t, ok)
}

func TestKeyedCache_MutationPersists(t *testing.T) {
	sut := cache.NewKeyedCache(func(k string) int { return len(k) })

	v := sut.ValueMut("abc")
	*v = 100

	got, ok := sut.Value("abc")
	require.True(t, ok)
	assert.Equal(t, 100, *got)
	assert.Equal(t, 100, *sut.ValueMut("abc"))
}

func TestKeyedCache_StatefulComputation(t *testing.T) {
	next := 0
	sut := cache.NewKeyedCache(func(string) int {
		next++
		return next
	})

	assert.Equal(t, 1, *sut.ValueMut("a"))
	assert.Equal(t, 2, *sut.ValueMut("b"))
	assert.Equal(t, 1, *sut.ValueMut("a"))
	assert.Equal(t, 3, *sut.ValueMut("c"))
}

func TestKeyedCache_FailureIsRetried(t *testing.T) {
	calls := 0
	sut := cache.NewFallibleKeyedCache(func(k string) (int, error) {
		calls++
		if calls == 1 {
			return 0, fmt.Errorf("first attempt for %s: %w", k, errBoom)
		}
		return len(k), nil
	})

	_, err := sut.TryValueMut("key")
	require.ErrorIs(t, err, errBoom)

	_, ok := sut.Value("key")
	assert.False(t, ok)

	v, err := sut.TryValueMut("key")
	require.NoError(t, err)
	assert.Equal(t, 3, *v)
	assert.Equal(t, 2, calls)

	sut.ValueMut("key")
	assert.Equal(t, 2, calls)
}

func TestKeyedCache_PanicIsRetried(t *testing.T) {
	calls := 0
	sut := cache.NewKeyedCache(func(k int) int {
		calls++
		if calls == 1 {
			panic("aborted")
		}
		return k * 2
	})

	assert.Panics(t, func() { sut.ValueMut(3) })
	assert.Equal(t, 6, *sut.ValueMut(3))
	assert.Equal(t, 2, calls)
}

func TestKeyedCache_ValueMutPanicsOnError(t *testing.T) {
	sut := cache.NewFallibleKeyedCache(func(int) (int, error) {
		return 0, errBoom
	})

	assert.PanicsWithError(t, errBoom.Error(), func() { sut.ValueMut(1) })
}

func TestValueBytes(t *testing.T) {
	sut := cache.NewKeyedCache(func(w string) string {
		return "Hello " + w
	})
	sut.ValueMut("World")

	v, ok := cache.ValueBytes(sut, []byte("World"))
	require.True(t, ok)
	assert.Equal(t, "Hello World", *v)

	_, ok = cache.ValueBytes(sut, []byte("Moon"))
	assert.False(t, ok)
}
