package emulator

import (
	"fmt"
	"math"
)

// Names of registers
var RegisterNames = []string{
	"zr", "at", "v0", "v1", "a0", "a1", "a2", "a3", // 00
	"t0", "t1", "t2", "t3", "t4", "t5", "t6", "t7", // 08
	"s0", "s1", "s2", "s3", "s4", "s5", "s6", "s7", // 10
	"t8", "t9", "k0", "k1", "gp", "sp", "fp", "ra", // 18
}

const (
	REG_ZERO = 0
	REG_V0   = 2
	REG_A0   = 4
	REG_GP   = 28
	REG_SP   = 29
	REG_RA   = 31
)

// Returns the name of the register index
func GetRegisterName(index uint32) string {
	return RegisterNames[index&31]
}

// Returns the register index by it's name (in RegisterNames). Accepts the
// numeric forms "r5" and "$5" too. The second value is false if the name
// is unknown
func GetRegisterIndexByName(name string) (uint32, bool) {
	for idx, n := range RegisterNames {
		if n == name {
			return uint32(idx), true
		}
	}
	var idx uint32
	if _, err := fmt.Sscanf(name, "r%d", &idx); err == nil && idx < 32 {
		return idx, true
	}
	if _, err := fmt.Sscanf(name, "$%d", &idx); err == nil && idx < 32 {
		return idx, true
	}
	return 0, false
}

// Formatted panic()
func panicFmt(format string, a ...interface{}) {
	panic(fmt.Sprintf(format, a...))
}

func f32(bits uint32) float32 {
	return math.Float32frombits(bits)
}

func f32bits(v float32) uint32 {
	return math.Float32bits(v)
}

func isNaN32(v float32) bool {
	return v != v
}

func isInf32(v float32) bool {
	return math.IsInf(float64(v), 0)
}

// Converts a float to int32 with saturation: NaN and values above the range
// give 0x7fffffff, values below give 0x80000000
func saturateInt32(v float64) uint32 {
	switch {
	case math.IsNaN(v):
		return 0x7fffffff
	case v >= 2147483647:
		return 0x7fffffff
	case v <= -2147483648:
		return 0x80000000
	}
	return uint32(int32(v))
}
