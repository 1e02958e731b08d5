package strx_test

import (
	"testing"

	"github.com/on-the-ground/hodgepodge/strx"
	"github.com/stretchr/testify/assert"
)

func TestIsASCIILower(t *testing.T) {
	assert.True(t, strx.IsASCIILower(""))
	assert.True(t, strx.IsASCIILower("hello, world 42!"))
	assert.False(t, strx.IsASCIILower("Hello"))
	assert.False(t, strx.IsASCIILower("héllo"))
}

func TestToASCIILower(t *testing.T) {
	s, changed := strx.ToASCIILower("already lower")
	assert.False(t, changed)
	assert.Equal(t, "already lower", s)

	s, changed = strx.ToASCIILower("MiXeD Case")
	assert.True(t, changed)
	assert.Equal(t, "mixed case", s)

	s, changed = strx.ToASCIILower("ÉCOLE")
	assert.True(t, changed)
	assert.Equal(t, "École", s)
}
