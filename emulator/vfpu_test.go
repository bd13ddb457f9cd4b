package emulator

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Vector selectors used below
const (
	selC000 = 0x00
	selC010 = 0x01
	selC020 = 0x02
	selC100 = 0x04
	selC200 = 0x08
	selM000 = 0x00
	selM100 = 0x04
	selM200 = 0x08
)

func setVector(cpu *CPU, sel uint32, v ...float32) {
	regs := VectorRegs(sel, len(v))
	for n, f := range v {
		cpu.SetV(regs[n], f)
	}
}

func getVector(cpu *CPU, sel uint32, size int) []float32 {
	regs := VectorRegs(sel, size)
	v := make([]float32, size)
	for n := range v {
		v[n] = cpu.V(regs[n])
	}
	return v
}

func assertVector(t *testing.T, want []float32, got []float32) {
	t.Helper()
	require.Len(t, got, len(want))
	for n := range want {
		assert.InDelta(t, want[n], got[n], 1e-5, "lane %d: %v", n, got)
	}
}

func TestVectorRegs(t *testing.T) {
	tests := []struct {
		sel  uint32
		size int
		want [4]int
	}{
		{0x00, 4, [4]int{0, 32, 64, 96}},
		{0x20, 4, [4]int{0, 1, 2, 3}},
		{0x45, 4, [4]int{69, 101, 5, 37}},
		{0x7f, 4, [4]int{126, 127, 124, 125}},
		{0x40, 3, [4]int{32, 64, 96}},
		{0x65, 1, [4]int{101}},
		{0x00, 2, [4]int{0, 32}},
	}
	for _, test := range tests {
		got := VectorRegs(test.sel, test.size)
		if got != test.want {
			t.Errorf("sel 0x%02x size %d: got %v, expected %v", test.sel, test.size, got, test.want)
		}
	}

	// every single register selector maps to itself
	for sel := uint32(0); sel < 128; sel++ {
		assert.Equal(t, int(sel), VectorRegs(sel, 1)[0])
	}
}

func TestMatrixRegs(t *testing.T) {
	m := MatrixRegs(selM000, 2)
	assert.Equal(t, 0, m[0])
	assert.Equal(t, 1, m[4])
	assert.Equal(t, 32, m[1])
	assert.Equal(t, 33, m[5])

	// row j of the matrix cells is the column vector j
	m = MatrixRegs(selM100, 4)
	for j := 0; j < 4; j++ {
		col := VectorRegs(selM100+uint32(j), 4)
		for i := 0; i < 4; i++ {
			assert.Equal(t, col[i], m[j*4+i])
		}
	}

	// the transposed selector swaps the cell indices
	tr := MatrixRegs(selM100|0x20, 4)
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			assert.Equal(t, m[j*4+i], tr[i*4+j])
		}
	}
}

func TestVectorNames(t *testing.T) {
	assert.Equal(t, "C000", VectorName(0x00, 4))
	assert.Equal(t, "R000", VectorName(0x20, 4))
	assert.Equal(t, "C112", VectorName(0x45, 4))
	assert.Equal(t, "S103", VectorName(0x64, 1))
	assert.Equal(t, "M000", MatrixName(0x00, 4))
	assert.Equal(t, "E000", MatrixName(0x20, 4))
}

func TestVectorArithmetic(t *testing.T) {
	tests := []struct {
		name string
		want []float32
	}{
		{"vadd", []float32{5, 5, 5, 5}},
		{"vsub", []float32{-3, -1, 1, 3}},
		{"vmul", []float32{4, 6, 6, 4}},
		{"vmin", []float32{1, 2, 2, 1}},
		{"vmax", []float32{4, 3, 3, 4}},
		{"vscmp", []float32{-1, -1, 1, 1}},
		{"vsge", []float32{0, 0, 1, 1}},
		{"vslt", []float32{1, 1, 0, 0}},
	}
	for _, test := range tests {
		i := enc(test.name, withSize(4), withVD(selC100), withVS(selC000), withVT(selC010))
		cpu := execOne(t, i, func(cpu *CPU) {
			setVector(cpu, selC000, 1, 2, 3, 4)
			setVector(cpu, selC010, 4, 3, 2, 1)
		})
		assertVector(t, test.want, getVector(cpu, selC100, 4))
	}
}

func TestVectorReductions(t *testing.T) {
	setup := func(cpu *CPU) {
		setVector(cpu, selC000, 1, 2, 3, 4)
		setVector(cpu, selC010, 2, 2, 2, 2)
	}

	cpu := execOne(t, enc("vdot", withSize(4), withVD(selC100), withVS(selC000), withVT(selC010)), setup)
	assert.Equal(t, float32(20), cpu.V(VectorRegs(selC100, 1)[0]))

	cpu = execOne(t, enc("vhdp", withSize(4), withVD(selC100), withVS(selC000), withVT(selC010)), setup)
	assert.Equal(t, float32(14), cpu.V(VectorRegs(selC100, 1)[0]))

	cpu = execOne(t, enc("vfad", withSize(4), withVD(selC100), withVS(selC000)), setup)
	assert.Equal(t, float32(10), cpu.V(VectorRegs(selC100, 1)[0]))

	cpu = execOne(t, enc("vavg", withSize(4), withVD(selC100), withVS(selC000)), setup)
	assert.Equal(t, float32(2.5), cpu.V(VectorRegs(selC100, 1)[0]))

	cpu = execOne(t, enc("vscl", withSize(4), withVD(selC100), withVS(selC000), withVT(selC010)), setup)
	assertVector(t, []float32{2, 4, 6, 8}, getVector(cpu, selC100, 4))

	cpu = execOne(t, enc("vcrsp.t", withVD(selC100), withVS(selC000), withVT(selC010)), func(cpu *CPU) {
		setVector(cpu, selC000, 1, 0, 0)
		setVector(cpu, selC010, 0, 1, 0)
	})
	assertVector(t, []float32{0, 0, 1}, getVector(cpu, selC100, 3))
}

func TestVectorUnary(t *testing.T) {
	tests := []struct {
		name string
		in   []float32
		want []float32
	}{
		{"vabs", []float32{-1, 2}, []float32{1, 2}},
		{"vneg", []float32{-1, 2}, []float32{1, -2}},
		{"vsat0", []float32{-1, 0.5}, []float32{0, 0.5}},
		{"vsat1", []float32{-2, 0.5}, []float32{-1, 0.5}},
		{"vrcp", []float32{4, -0.5}, []float32{0.25, -2}},
		{"vsqrt", []float32{9, 0.25}, []float32{3, 0.5}},
		{"vrsq", []float32{4, 16}, []float32{0.5, 0.25}},
		{"vsin", []float32{1, 0}, []float32{1, 0}},
		{"vcos", []float32{0, 2}, []float32{1, -1}},
		{"vexp2", []float32{3, -1}, []float32{8, 0.5}},
		{"vlog2", []float32{8, 0.5}, []float32{3, -1}},
		{"vocp", []float32{0.25, 1}, []float32{0.75, 0}},
		{"vsgn", []float32{-3, 0}, []float32{-1, 0}},
	}
	for _, test := range tests {
		cpu := execOne(t, enc(test.name, withSize(2), withVD(selC100), withVS(selC000)), func(cpu *CPU) {
			setVector(cpu, selC000, test.in...)
		})
		assertVector(t, test.want, getVector(cpu, selC100, 2))
	}

	cpu := execOne(t, enc("vone", withSize(3), withVD(selC100)), nil)
	assertVector(t, []float32{1, 1, 1}, getVector(cpu, selC100, 3))

	cpu = execOne(t, enc("vidt", withSize(4), withVD(selC020)), nil)
	assertVector(t, []float32{0, 0, 1, 0}, getVector(cpu, selC020, 4))
}

func TestSourcePrefixSwizzle(t *testing.T) {
	cpu, it := newTestCPU(t)
	setVector(cpu, selC000, 1, 2, 3, 4)
	exec(t, cpu, it, 3,
		enc("vpfxs", 0x1b),
		enc("vmov", withSize(4), withVD(selC100), withVS(selC000)),
		enc("vmov", withSize(4), withVD(selC200), withVS(selC000)),
	)

	assertVector(t, []float32{4, 3, 2, 1}, getVector(cpu, selC100, 4))
	// consumed by the first vector op
	assertVector(t, []float32{1, 2, 3, 4}, getVector(cpu, selC200, 4))
	assert.False(t, cpu.PfxSOn)
}

func TestSourcePrefixConstantsAndNegate(t *testing.T) {
	cpu, it := newTestCPU(t)
	setVector(cpu, selC000, -5, 2, -3, 4)
	exec(t, cpu, it, 2,
		// lane 0 constant 1, lane 1 negated, lane 2 absolute
		enc("vpfxs", 0x210e5|1<<10),
		enc("vmov", withSize(4), withVD(selC100), withVS(selC000)),
	)
	assertVector(t, []float32{1, -2, 3, 4}, getVector(cpu, selC100, 4))

	// constant table: swizzle + 4*abs
	for n, want := range []float32{0, 1, 2, 0.5, 3, 1.0 / 3, 0.25, 1.0 / 6} {
		pfx := uint32(1<<12) | uint32(n&3) | uint32(n>>2)<<8
		v := applyPrefixST([4]uint32{}, pfx, 1)
		assert.Equal(t, want, f32(v[0]), "constant %d", n)
	}
}

func TestTargetPrefix(t *testing.T) {
	cpu, it := newTestCPU(t)
	setVector(cpu, selC000, 1, 1, 1, 1)
	setVector(cpu, selC010, 1, 2, 3, 4)
	exec(t, cpu, it, 2,
		// broadcast lane w
		enc("vpfxt", 0xff),
		enc("vadd", withSize(4), withVD(selC100), withVS(selC000), withVT(selC010)),
	)
	assertVector(t, []float32{5, 5, 5, 5}, getVector(cpu, selC100, 4))
	assert.False(t, cpu.PfxTOn)
}

func TestDestinationPrefix(t *testing.T) {
	cpu, it := newTestCPU(t)
	setVector(cpu, selC000, 2, -3, 0.5, 7)
	setVector(cpu, selC100, 9, 9, 9, 9)
	exec(t, cpu, it, 2,
		// lane 0 saturates to [0, 1], lane 1 to [-1, 1], lane 3 is masked
		enc("vpfxd", 0x80d),
		enc("vmov", withSize(4), withVD(selC100), withVS(selC000)),
	)
	assertVector(t, []float32{1, -1, 0.5, 9}, getVector(cpu, selC100, 4))
	assert.False(t, cpu.PfxDOn)

	// integer results honor the mask only
	cpu, it = newTestCPU(t)
	cpu.SetV(0, 5)
	exec(t, cpu, it, 2,
		enc("vpfxd", 0x001),
		enc("vf2iz", withSize(1), withVD(selC100), withVS(selC000)),
	)
	assert.Equal(t, uint32(5), cpu.Vfpr[selC100])
}

func TestVcmpAndCmov(t *testing.T) {
	cpu, it := newTestCPU(t)
	setVector(cpu, selC000, 1, 2, 3, 4)
	setVector(cpu, selC010, 1, 0, 3, 0)
	setVector(cpu, selC020, 9, 9, 9, 9)
	exec(t, cpu, it, 1,
		enc("vcmp", withSize(4), withVS(selC000), withVT(selC010), VCMP_EQ),
	)
	assert.Equal(t, uint32(0x15), cpu.VfpuCC)

	// a pair only touches its lanes plus any/all
	exec(t, cpu, it, 1,
		enc("vcmp", withSize(2), withVS(selC000), withVT(selC000), VCMP_EQ),
	)
	assert.Equal(t, uint32(0x37), cpu.VfpuCC)

	cpu.VfpuCC = 0x05
	exec(t, cpu, it, 1,
		enc("vcmovt", withSize(4), withVD(selC020), withVS(selC000), 6<<16),
	)
	assertVector(t, []float32{1, 9, 3, 9}, getVector(cpu, selC020, 4))

	exec(t, cpu, it, 1,
		enc("vcmovf", withSize(4), withVD(selC020), withVS(selC010), 1<<16),
	)
	assertVector(t, []float32{1, 0, 3, 0}, getVector(cpu, selC020, 4))

	assert.True(t, vfpuCompare(VCMP_EN, float32(math.NaN()), 0))
	assert.True(t, vfpuCompare(VCMP_EI, float32(math.Inf(-1)), 0))
	assert.True(t, vfpuCompare(VCMP_NS, 1, 0))
	assert.False(t, vfpuCompare(VCMP_NS, float32(math.Inf(1)), 0))
}

func TestVrot(t *testing.T) {
	run := func(imm uint32) []float32 {
		cpu := execOne(t, enc("vrot", withSize(4), withVD(selC100), withVS(selC000), withRT(imm)), func(cpu *CPU) {
			cpu.SetV(0, 1.0/3)
		})
		return getVector(cpu, selC100, 4)
	}
	c, s := float32(math.Sqrt(3)/2), float32(0.5)

	assertVector(t, []float32{c, s, 0, 0}, run(0x04))
	assertVector(t, []float32{c, -s, 0, 0}, run(0x14))
	assertVector(t, []float32{s, 0, c, 0}, run(0x02))
	assertVector(t, []float32{c, s, s, s}, run(0x00))
}

func TestVcst(t *testing.T) {
	cpu := execOne(t, enc("vcst", withSize(2), withVD(selC100), withRT(9)), nil)
	assertVector(t, []float32{math.Pi, math.Pi}, getVector(cpu, selC100, 2))
	assert.Equal(t, "VFPU_PI", VfpuConstants[9].Name)
}

func TestVcstRejectsUnknownConstant(t *testing.T) {
	assert.Len(t, VfpuConstants, 20)
	captureLog(t)

	cpu, it := newTestCPU(t)
	i := enc("vcst", withSize(1), withRT(20))
	load(cpu, 0, i)
	res := it.Steps(1)
	assert.Equal(t, SIGNAL_FAULT, res.Signal)
	assert.Zero(t, res.Executed)
	var invalid *InvalidOpcodeError
	require.ErrorAs(t, res.Err, &invalid)
	assert.Equal(t, i, invalid.Word)
	assert.Equal(t, "vcst.s S000, 20", Disasm(0, i, nil))
	assert.Equal(t, "vcst.s S000, VFPU_SQRT3_2", Disasm(0, enc("vcst", withSize(1), withRT(19)), nil))
}

func TestVfpuConversions(t *testing.T) {
	cpu := execOne(t, enc("vf2iz", withSize(2), withVD(selC100), withVS(selC000), withRT(1)), func(cpu *CPU) {
		setVector(cpu, selC000, 1.5, -2.75)
	})
	assert.Equal(t, int32(3), int32(cpu.Vfpr[VectorRegs(selC100, 2)[0]]))
	assert.Equal(t, int32(-5), int32(cpu.Vfpr[VectorRegs(selC100, 2)[1]]))

	cpu = execOne(t, enc("vf2in", withSize(1), withVD(selC100), withVS(selC000)), func(cpu *CPU) {
		cpu.SetV(0, 2.5)
	})
	assert.Equal(t, uint32(2), cpu.Vfpr[selC100])

	cpu = execOne(t, enc("vi2f", withSize(2), withVD(selC100), withVS(selC000), withRT(1)), func(cpu *CPU) {
		regs := VectorRegs(selC000, 2)
		cpu.Vfpr[regs[0]] = 3
		cpu.Vfpr[regs[1]] = uint32(0xfffffffb)
	})
	assertVector(t, []float32{1.5, -2.5}, getVector(cpu, selC100, 2))
}

func TestVfpuIntegerUnpacking(t *testing.T) {
	cpu := execOne(t, enc("vc2i", withSize(1), withVD(selC100), withVS(selC000)), func(cpu *CPU) {
		cpu.Vfpr[0] = 0x44332211
	})
	regs := VectorRegs(selC100, 4)
	want := []uint32{0x11000000, 0x22000000, 0x33000000, 0x44000000}
	for n := range want {
		assert.Equal(t, want[n], cpu.Vfpr[regs[n]], "vc2i lane %d", n)
	}

	cpu = execOne(t, enc("vuc2i", withSize(1), withVD(selC100), withVS(selC000)), func(cpu *CPU) {
		cpu.Vfpr[0] = 0x000080ff
	})
	assert.Equal(t, uint32(0x7fffffff), cpu.Vfpr[regs[0]])
	assert.Equal(t, uint32(0x40404040), cpu.Vfpr[regs[1]])
	assert.Equal(t, uint32(0), cpu.Vfpr[regs[2]])

	cpu = execOne(t, enc("vs2i", withSize(1), withVD(selC100), withVS(selC000)), func(cpu *CPU) {
		cpu.Vfpr[0] = 0x8000_1234
	})
	assert.Equal(t, uint32(0x12340000), cpu.Vfpr[regs[0]])
	assert.Equal(t, uint32(0x80000000), cpu.Vfpr[regs[1]])

	// packing back
	cpu = execOne(t, enc("vi2c", withSize(4), withVD(selC100), withVS(selC000)), func(cpu *CPU) {
		src := VectorRegs(selC000, 4)
		for n, v := range want {
			cpu.Vfpr[src[n]] = v
		}
	})
	assert.Equal(t, uint32(0x44332211), cpu.Vfpr[selC100])

	cpu = execOne(t, enc("vi2s", withSize(2), withVD(selC100), withVS(selC000)), func(cpu *CPU) {
		src := VectorRegs(selC000, 2)
		cpu.Vfpr[src[0]] = 0x12340000
		cpu.Vfpr[src[1]] = 0x80000000
	})
	assert.Equal(t, uint32(0x80001234), cpu.Vfpr[selC100])
}

func TestColorPacking(t *testing.T) {
	cpu := execOne(t, enc("vt4444.q", withSize(4), withVD(selC100), withVS(selC000)), func(cpu *CPU) {
		src := VectorRegs(selC000, 4)
		cpu.Vfpr[src[0]] = 0xff00ff00
		cpu.Vfpr[src[1]] = 0x12345678
	})
	regs := VectorRegs(selC100, 2)
	assert.Equal(t, uint32(0x1357f0f0), cpu.Vfpr[regs[0]])
	assert.Equal(t, uint32(0), cpu.Vfpr[regs[1]])

	assert.Equal(t, uint32(0x801f), rgba8888To5551(0x800000ff))
	assert.Equal(t, uint32(0xf800), rgba8888To5650(0x00ff0000))
	assert.Equal(t, uint32(0x07e0), rgba8888To5650(0x0000ff00))
}

func TestMatrixOps(t *testing.T) {
	cpu, it := newTestCPU(t)
	regs := MatrixRegs(selM100, 4)
	for n := 0; n < 16; n++ {
		cpu.SetV(regs[n], float32(n+1))
	}

	// identity * M100 == M100
	exec(t, cpu, it, 2,
		enc("vmidt", withSize(4), withVD(selM000)),
		enc("vmmul", withSize(4), withVD(selM200), withVS(selM000), withVT(selM100)),
	)
	assert.Equal(t, float32(1), cpu.V(0))
	assert.Equal(t, float32(1), cpu.V(33))
	assert.Equal(t, float32(0), cpu.V(1))
	want := cpu.loadMatrix(selM100, 4)
	assert.Equal(t, want, cpu.loadMatrix(selM200, 4))

	// M100 * identity is M100 transposed
	exec(t, cpu, it, 1,
		enc("vmmul", withSize(4), withVD(selM200), withVS(selM100), withVT(selM000)),
	)
	got := cpu.loadMatrix(selM200, 4)
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			assert.Equal(t, want[j*4+i], got[i*4+j])
		}
	}

	exec(t, cpu, it, 2,
		enc("vmzero", withSize(2), withVD(selM200)),
		enc("vmone", withSize(2), withVD(selM000)),
	)
	assert.Equal(t, [16]float32{}, cpu.loadMatrix(selM200, 2))
	assert.Equal(t, float32(1), cpu.V(MatrixRegs(selM000, 2)[5]))
	assert.Equal(t, float32(1), cpu.V(66), "outside the 2x2 block")

	cpu.SetV(VectorRegs(0x40, 1)[0], 2)
	exec(t, cpu, it, 2,
		enc("vmmov", withSize(2), withVD(selM200), withVS(selM100)),
		enc("vmscl", withSize(2), withVD(selM200), withVS(selM200), withVT(0x40)),
	)
	m := cpu.loadMatrix(selM100, 2)
	scaled := cpu.loadMatrix(selM200, 2)
	for n := range m {
		assert.Equal(t, m[n]*2, scaled[n])
	}
}

func TestTransform(t *testing.T) {
	cpu, it := newTestCPU(t)
	setVector(cpu, selC010, 1, 2, 3, 1)
	exec(t, cpu, it, 2,
		enc("vmidt", withSize(4), withVD(selM100)),
		enc("vtfm4.q", withVD(selC200), withVS(selM100), withVT(selC010)),
	)
	assertVector(t, []float32{1, 2, 3, 1}, getVector(cpu, selC200, 4))

	// translation in the last column of the homogeneous form
	cpu.SetV(MatrixRegs(selM100, 4)[0*4+3], 10)
	exec(t, cpu, it, 1,
		enc("vhtfm4.q", withVD(selC200), withVS(selM100), withVT(selC010)),
	)
	assertVector(t, []float32{11, 2, 3, 1}, getVector(cpu, selC200, 4))
}

func TestVfpuTransfers(t *testing.T) {
	cpu, it := newTestCPU(t)
	cpu.SetReg(8, f32bits(1.25))
	cpu.SetReg(9, 0x2a)
	exec(t, cpu, it, 6,
		enc("mtv", withRT(8), withVD(0x45)),
		enc("mfv", withRT(10), withVD(0x45)),
		enc("mtvc", withRT(9), VFPU_CTRL_CC),
		enc("mfvc", withRT(11), VFPU_CTRL_CC),
		enc("viim", withVT(0x05), withImm(-7)),
		enc("vfim", withVT(0x06), withImm(0x3c00)),
	)
	assert.Equal(t, float32(1.25), cpu.V(0x45))
	assert.Equal(t, f32bits(1.25), cpu.Reg(10))
	assert.Equal(t, uint32(0x2a), cpu.VfpuCC)
	assert.Equal(t, uint32(0x2a), cpu.Reg(11))
	assert.Equal(t, float32(-7), cpu.V(0x05))
	assert.Equal(t, float32(1), cpu.V(0x06))
}

func TestHalfToFloat(t *testing.T) {
	assert.Equal(t, float32(1), halfToFloat(0x3c00))
	assert.Equal(t, float32(-2), halfToFloat(0xc000))
	assert.Equal(t, float32(65504), halfToFloat(0x7bff))
	assert.Equal(t, float32(0.5), halfToFloat(0x3800))
	assert.Equal(t, float32(math.Ldexp(1, -24)), halfToFloat(0x0001))
	assert.True(t, isInf32(halfToFloat(0x7c00)))
	assert.True(t, isNaN32(halfToFloat(0x7e00)))
}

func TestVfpuLoadStore(t *testing.T) {
	cpu, it := newTestCPU(t)
	for n := uint32(0); n < 4; n++ {
		cpu.Mem.Store32(0x100+n*4, f32bits(float32(n+1)))
	}
	cpu.SetReg(8, 0x100)
	exec(t, cpu, it, 3,
		enc("lv.q", withRS(8), withRT(selC010)),
		enc("sv.q", withRS(8), withRT(selC010), withImm(0x100)),
		enc("lv.s", withRS(8), withRT(selC020), withImm(8)),
	)
	assertVector(t, []float32{1, 2, 3, 4}, getVector(cpu, selC010, 4))
	for n := uint32(0); n < 4; n++ {
		assert.Equal(t, f32bits(float32(n+1)), cpu.Mem.Load32(0x200+n*4))
	}
	assert.Equal(t, float32(3), cpu.V(selC020))

	exec(t, cpu, it, 1,
		enc("sv.s", withRS(8), withRT(selC020), withImm(-4)),
	)
	assert.Equal(t, f32bits(3), cpu.Mem.Load32(0xfc))
}

func TestVfpuUnalignedQuadLoads(t *testing.T) {
	cpu, it := newTestCPU(t)
	for n := uint32(0); n < 4; n++ {
		cpu.Mem.Store32(0x100+n*4, 0xa0+n)
	}
	cpu.SetReg(8, 0x104)
	exec(t, cpu, it, 2,
		enc("lvl.q", withRS(8), withRT(selC010)),
		enc("lvr.q", withRS(8), withRT(selC020)),
	)

	left := VectorRegs(selC010, 4)
	assert.Equal(t, uint32(0xa0), cpu.Vfpr[left[2]])
	assert.Equal(t, uint32(0xa1), cpu.Vfpr[left[3]])
	assert.Equal(t, uint32(0), cpu.Vfpr[left[0]])

	right := VectorRegs(selC020, 4)
	assert.Equal(t, uint32(0xa1), cpu.Vfpr[right[0]])
	assert.Equal(t, uint32(0xa3), cpu.Vfpr[right[2]])
	assert.Equal(t, uint32(0), cpu.Vfpr[right[3]])
}
