package emulator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDelaySlotRunsBeforeBranch(t *testing.T) {
	cpu, it := newTestCPU(t)
	res := exec(t, cpu, it, 2,
		enc("beq", withImm(3)),
		enc("addiu", withRT(REG_V0), withImm(7)),
	)

	assert.Equal(t, 2, res.Executed)
	assert.Equal(t, uint32(7), cpu.Reg(REG_V0))
	assert.Equal(t, uint32(16), cpu.PC)
	assert.Equal(t, uint32(20), cpu.NPC)
}

func TestBranchNotTakenFallsThrough(t *testing.T) {
	cpu, it := newTestCPU(t)
	cpu.SetReg(8, 1)
	exec(t, cpu, it, 3,
		enc("beq", withRS(8), withImm(3)),
		enc("addiu", withRT(REG_V0), withImm(7)),
		enc("addiu", withRT(REG_V0), withRS(REG_V0), withImm(1)),
	)

	assert.Equal(t, uint32(8), cpu.Reg(REG_V0))
	assert.Equal(t, uint32(12), cpu.PC)
}

func TestLikelyBranch(t *testing.T) {
	program := []Instruction{
		enc("bnel", withRS(8), withImm(3)),
		enc("addiu", withRT(REG_V0), withImm(7)),
	}

	// taken: the delay slot runs
	cpu, it := newTestCPU(t)
	cpu.SetReg(8, 5)
	exec(t, cpu, it, 2, program...)
	assert.Equal(t, uint32(7), cpu.Reg(REG_V0))
	assert.Equal(t, uint32(16), cpu.PC)

	// not taken: the delay slot is skipped
	cpu, it = newTestCPU(t)
	exec(t, cpu, it, 1, program...)
	assert.Equal(t, uint32(8), cpu.PC)
	assert.Zero(t, cpu.Reg(REG_V0))
}

func TestBranchConditions(t *testing.T) {
	tests := []struct {
		name  string
		rs    uint32
		taken bool
	}{
		{"blez", 0, true},
		{"blez", 1, false},
		{"bgtz", 1, true},
		{"bgtz", 0x80000000, false},
		{"bltz", 0xffffffff, true},
		{"bltz", 0, false},
		{"bgez", 0, true},
		{"bgez", 0xffffffff, false},
		{"bne", 1, true},
		{"beq", 1, false},
	}
	for _, test := range tests {
		cpu := execOne(t, enc(test.name, withRS(8), withImm(0x10)), withRegs(8, test.rs))
		want := uint32(8)
		if test.taken {
			want = 4 + 0x40
		}
		assert.Equal(t, uint32(4), cpu.PC, test.name)
		assert.Equal(t, want, cpu.NPC, "%s 0x%x", test.name, test.rs)
	}
}

func TestLinkingBranches(t *testing.T) {
	// bgezal links even when it is not taken
	cpu := execOne(t, enc("bgezal", withRS(8), withImm(0x10)), withRegs(8, 0xffffffff))
	assert.Equal(t, uint32(8), cpu.Reg(REG_RA))
	assert.Equal(t, uint32(8), cpu.NPC)

	cpu = execOne(t, enc("bltzal", withRS(8), withImm(0x10)), withRegs(8, 0xffffffff))
	assert.Equal(t, uint32(8), cpu.Reg(REG_RA))
	assert.Equal(t, uint32(0x44), cpu.NPC)

	// bltzall reads its operand before linking
	cpu = execOne(t, enc("bltzall", withRS(REG_RA), withImm(0x10)), withRegs(REG_RA, 0xffffffff))
	assert.Equal(t, uint32(8), cpu.Reg(REG_RA))
	assert.Equal(t, uint32(0x44), cpu.NPC)
}

func TestJumps(t *testing.T) {
	cpu, it := newTestCPU(t)
	exec(t, cpu, it, 2,
		enc("jal", 0x100>>2),
		enc("addiu", withRT(REG_V0), withImm(1)),
	)
	assert.Equal(t, uint32(0x100), cpu.PC)
	assert.Equal(t, uint32(8), cpu.Reg(REG_RA))
	assert.Equal(t, uint32(1), cpu.Reg(REG_V0))

	// jr ra returns past the delay slot of the jal
	load(cpu, 0x100, enc("jr", withRS(REG_RA)), 0)
	res := it.Steps(2)
	assert.Equal(t, 2, res.Executed)
	assert.Equal(t, uint32(8), cpu.PC)

	cpu = execOne(t, enc("jalr", withRS(8), withRD(9)), withRegs(8, 0x200))
	assert.Equal(t, uint32(4), cpu.PC)
	assert.Equal(t, uint32(0x200), cpu.NPC)
	assert.Equal(t, uint32(8), cpu.Reg(9))

	cpu = execOne(t, enc("j", 0x300>>2), nil)
	assert.Equal(t, uint32(0x300), cpu.NPC)
}

func TestFpuAndVfpuBranches(t *testing.T) {
	cpu := execOne(t, enc("bc1t", withImm(4)), func(cpu *CPU) { cpu.Fcr31 |= FCR31_CC })
	assert.Equal(t, uint32(0x14), cpu.NPC)

	cpu = execOne(t, enc("bc1f", withImm(4)), func(cpu *CPU) { cpu.Fcr31 |= FCR31_CC })
	assert.Equal(t, uint32(8), cpu.NPC)

	cpu = execOne(t, enc("bc1fl", withImm(4)), func(cpu *CPU) { cpu.Fcr31 |= FCR31_CC })
	assert.Equal(t, uint32(8), cpu.PC)

	cpu = execOne(t, enc("bvt", 5<<18, withImm(4)), func(cpu *CPU) { cpu.VfpuCC = 1 << 5 })
	assert.Equal(t, uint32(0x14), cpu.NPC)

	cpu = execOne(t, enc("bvf", 5<<18, withImm(4)), func(cpu *CPU) { cpu.VfpuCC = 1 << 5 })
	assert.Equal(t, uint32(8), cpu.NPC)

	cpu = execOne(t, enc("bvtl", 0<<18, withImm(4)), func(cpu *CPU) { cpu.VfpuCC = 1 << 5 })
	assert.Equal(t, uint32(8), cpu.PC)
}
