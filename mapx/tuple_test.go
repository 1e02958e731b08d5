package mapx_test

import (
	"testing"

	"github.com/on-the-ground/hodgepodge/mapx"
	"github.com/stretchr/testify/assert"
)

func TestGetByTuple3(t *testing.T) {
	m := map[mapx.Tuple3[int32, uint8, string]]string{
		mapx.T3[int32, uint8](16, 32, "Hello, world!"): "first",
		mapx.T3[int32, uint8](8, 16, "Bye, world!"):    "second",
	}

	v, ok := mapx.GetByTuple3(m, 16, 32, "Hello, world!")
	assert.True(t, ok)
	assert.Equal(t, "first", v)

	v, ok = mapx.GetByTuple3(m, 8, 16, "Bye, world!")
	assert.True(t, ok)
	assert.Equal(t, "second", v)

	_, ok = mapx.GetByTuple3(m, 8, 16, "Hello, world!")
	assert.False(t, ok)
}

func TestGetByTuple2And4(t *testing.T) {
	m2 := map[mapx.Tuple2[string, int]]bool{mapx.T2("a", 1): true}
	v, ok := mapx.GetByTuple2(m2, "a", 1)
	assert.True(t, ok)
	assert.True(t, v)

	m4 := map[mapx.Tuple4[int, int, int, int]]int{mapx.T4(1, 2, 3, 4): 10}
	sum, ok := mapx.GetByTuple4(m4, 1, 2, 3, 4)
	assert.True(t, ok)
	assert.Equal(t, 10, sum)

	_, ok = mapx.GetByTuple4(m4, 4, 3, 2, 1)
	assert.False(t, ok)
}
