package emulator

import "math"

// VFPU control registers reachable through mfvc/mtvc (selector 128 + n)
const (
	VFPU_CTRL_SPREFIX = 0
	VFPU_CTRL_TPREFIX = 1
	VFPU_CTRL_DPREFIX = 2
	VFPU_CTRL_CC      = 3
)

// Identity prefix for S/T: lanes x, y, z, w in order
const VFPU_PREFIX_IDENTITY uint32 = 0xe4

// Values selected by the constant bit of an S/T prefix, indexed by
// swizzle + 4*abs
var vfpuPrefixConstants = [8]float32{0, 1, 2, 0.5, 3, 1.0 / 3, 0.25, 1.0 / 6}

// Names and values loaded by vcst. Indices past the end are invalid
var VfpuConstants = [...]struct {
	Name  string
	Value float32
}{
	{"VFPU_ZERO", 0},
	{"VFPU_HUGE", math.MaxFloat32},
	{"VFPU_SQRT2", math.Sqrt2},
	{"VFPU_SQRT1_2", 1 / math.Sqrt2},
	{"VFPU_2_SQRTPI", 2 / math.SqrtPi},
	{"VFPU_2_PI", 2 / math.Pi},
	{"VFPU_1_PI", 1 / math.Pi},
	{"VFPU_PI_4", math.Pi / 4},
	{"VFPU_PI_2", math.Pi / 2},
	{"VFPU_PI", math.Pi},
	{"VFPU_E", math.E},
	{"VFPU_LOG2E", math.Log2E},
	{"VFPU_LOG10E", math.Log10E},
	{"VFPU_LN2", math.Ln2},
	{"VFPU_LN10", math.Ln10},
	{"VFPU_2PI", 2 * math.Pi},
	{"VFPU_PI_6", math.Pi / 6},
	{"VFPU_LOG10TWO", 0.30102999566398119521},
	{"VFPU_LOG2TEN", 3.32192809488736234787},
	{"VFPU_SQRT3_2", 0.86602540378443864676},
}

// Row of the first lane: how many bits of the selector count depends on
// the group width
func vfpuRow(sel uint32, size int) int {
	switch size {
	case 1:
		return int(sel>>5) & 3
	case 3:
		return int(sel>>6) & 1
	}
	return int(sel>>5) & 2
}

// Returns the register slots of the `size` wide vector selected by `sel`
func VectorRegs(sel uint32, size int) (regs [4]int) {
	mtx := int(sel>>2) & 7
	col := int(sel) & 3
	row := vfpuRow(sel, size)
	transpose := size != 1 && (sel>>5)&1 != 0

	for i := 0; i < size; i++ {
		if transpose {
			regs[i] = mtx*4 + ((row + i) & 3) + col*32
		} else {
			regs[i] = mtx*4 + col + ((row+i)&3)*32
		}
	}
	return regs
}

// Returns the register slots of the `side` x `side` matrix selected by
// `sel`. Cell (i, j) is stored at regs[j*4+i]
func MatrixRegs(sel uint32, side int) (regs [16]int) {
	mtx := int(sel>>2) & 7
	col := int(sel) & 3
	row := vfpuRow(sel, side)
	transpose := (sel>>5)&1 != 0

	for i := 0; i < side; i++ {
		for j := 0; j < side; j++ {
			if transpose {
				regs[j*4+i] = mtx*4 + ((row + i) & 3) + ((col+j)&3)*32
			} else {
				regs[j*4+i] = mtx*4 + ((col + j) & 3) + ((row+i)&3)*32
			}
		}
	}
	return regs
}

// Raw bits of a vector, lanes past `size` are zero
func (cpu *CPU) loadVector(sel uint32, size int) (v [4]uint32) {
	regs := VectorRegs(sel, size)
	for n := 0; n < size; n++ {
		v[n] = cpu.Vfpr[regs[n]]
	}
	return v
}

func (cpu *CPU) storeVector(sel uint32, size int, v [4]uint32) {
	regs := VectorRegs(sel, size)
	for n := 0; n < size; n++ {
		cpu.Vfpr[regs[n]] = v[n]
	}
}

func (cpu *CPU) loadMatrix(sel uint32, side int) (m [16]float32) {
	regs := MatrixRegs(sel, side)
	for i := 0; i < side; i++ {
		for j := 0; j < side; j++ {
			m[j*4+i] = cpu.V(regs[j*4+i])
		}
	}
	return m
}

// Writes a matrix and consumes the prefixes
func (cpu *CPU) storeMatrix(sel uint32, side int, m [16]float32) {
	regs := MatrixRegs(sel, side)
	for i := 0; i < side; i++ {
		for j := 0; j < side; j++ {
			cpu.SetV(regs[j*4+i], m[j*4+i])
		}
	}
	cpu.clearPrefixes()
}

// Applies an S/T prefix to raw lanes: swizzle, abs, constants, negate
func applyPrefixST(v [4]uint32, pfx uint32, size int) (out [4]uint32) {
	for n := 0; n < size; n++ {
		swz := (pfx >> (n * 2)) & 3
		abs := (pfx >> (8 + n)) & 1
		cst := (pfx >> (12 + n)) & 1
		neg := (pfx >> (16 + n)) & 1

		if cst != 0 {
			out[n] = f32bits(vfpuPrefixConstants[swz+abs*4])
		} else {
			out[n] = v[swz]
			if abs != 0 {
				out[n] &^= 0x80000000
			}
		}
		if neg != 0 {
			out[n] ^= 0x80000000
		}
	}
	return out
}

// Applies the D prefix saturation to float lanes
func applyPrefixD(v [4]uint32, pfx uint32, size int) [4]uint32 {
	for n := 0; n < size; n++ {
		switch (pfx >> (n * 2)) & 3 {
		case 1:
			v[n] = f32bits(clampf(f32(v[n]), 0, 1))
		case 3:
			v[n] = f32bits(clampf(f32(v[n]), -1, 1))
		}
	}
	return v
}

func clampf(v, lo, hi float32) float32 {
	switch {
	case isNaN32(v):
		return v
	case v < lo:
		return lo
	case v > hi:
		return hi
	}
	return v
}

func (cpu *CPU) clearPrefixes() {
	cpu.PfxSOn, cpu.PfxTOn, cpu.PfxDOn = false, false, false
}

// Source operand vs, S prefix applied
func (cpu *CPU) vs(i Instruction, size int) [4]uint32 {
	v := cpu.loadVector(i.VS(), size)
	if cpu.PfxSOn {
		v = applyPrefixST(v, cpu.PfxS, size)
	}
	return v
}

// Source operand vt, T prefix applied
func (cpu *CPU) vt(i Instruction, size int) [4]uint32 {
	v := cpu.loadVector(i.VT(), size)
	if cpu.PfxTOn {
		v = applyPrefixST(v, cpu.PfxT, size)
	}
	return v
}

// Writes the destination vd through the D prefix and consumes the prefixes.
// `float` enables saturation, integer results only honor the write mask
func (cpu *CPU) writeVD(i Instruction, size int, v [4]uint32, float bool) {
	regs := VectorRegs(i.VD(), size)
	if cpu.PfxDOn {
		if float {
			v = applyPrefixD(v, cpu.PfxD, size)
		}
		for n := 0; n < size; n++ {
			if (cpu.PfxD>>(8+n))&1 == 0 {
				cpu.Vfpr[regs[n]] = v[n]
			}
		}
	} else {
		for n := 0; n < size; n++ {
			cpu.Vfpr[regs[n]] = v[n]
		}
	}
	cpu.clearPrefixes()
}

// Float lanes of vs
func (cpu *CPU) vsf(i Instruction, size int) [4]float32 {
	return toFloats(cpu.vs(i, size))
}

// Float lanes of vt
func (cpu *CPU) vtf(i Instruction, size int) [4]float32 {
	return toFloats(cpu.vt(i, size))
}

// Writes float lanes to vd
func (cpu *CPU) vdf(i Instruction, size int, v [4]float32) {
	cpu.writeVD(i, size, fromFloats(v), true)
}

// Writes integer lanes to vd
func (cpu *CPU) vdi(i Instruction, size int, v [4]uint32) {
	cpu.writeVD(i, size, v, false)
}

func toFloats(v [4]uint32) (out [4]float32) {
	for n := range v {
		out[n] = f32(v[n])
	}
	return out
}

func fromFloats(v [4]float32) (out [4]uint32) {
	for n := range v {
		out[n] = f32bits(v[n])
	}
	return out
}

// Converts an IEEE-754 half precision value to float32
func halfToFloat(h uint16) float32 {
	sign := uint32(h>>15) & 1
	exp := int32(h>>10) & 0x1f
	mant := uint32(h) & 0x3ff

	switch {
	case exp == 0x1f:
		// infinity or NaN
		return f32(sign<<31 | 0x7f800000 | mant<<13)
	case exp == 0 && mant == 0:
		return f32(sign << 31)
	case exp == 0:
		// subnormal, normalize it
		for mant&0x400 == 0 {
			mant <<= 1
			exp--
		}
		exp++
		mant &= 0x3ff
	}
	return f32(sign<<31 | uint32(exp+127-15)<<23 | mant<<13)
}
