package emulator

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRegisterNames(t *testing.T) {
	for idx, name := range RegisterNames {
		got, ok := GetRegisterIndexByName(name)
		assert.True(t, ok, name)
		assert.Equal(t, uint32(idx), got, name)
		assert.Equal(t, name, GetRegisterName(uint32(idx)))
	}

	idx, ok := GetRegisterIndexByName("r5")
	assert.True(t, ok)
	assert.Equal(t, uint32(5), idx)

	idx, ok = GetRegisterIndexByName("$31")
	assert.True(t, ok)
	assert.Equal(t, uint32(REG_RA), idx)

	_, ok = GetRegisterIndexByName("r32")
	assert.False(t, ok)
	_, ok = GetRegisterIndexByName("pc")
	assert.False(t, ok)
}

func TestSaturateInt32(t *testing.T) {
	assert.Equal(t, uint32(0x7fffffff), saturateInt32(math.NaN()))
	assert.Equal(t, uint32(0x7fffffff), saturateInt32(1e20))
	assert.Equal(t, uint32(0x80000000), saturateInt32(-1e20))
	assert.Equal(t, uint32(0xfffffffe), saturateInt32(-2))
	assert.Equal(t, uint32(12), saturateInt32(12))
}
