package emulator

import (
	"errors"
	"fmt"
)

// Commits the delay slot and redirects after it when `cond` holds
func branch(cpu *CPU, i Instruction, cond bool) Signal {
	cpu.PC = cpu.NPC
	if cond {
		cpu.NPC = cpu.PC + i.ImmSE()<<2
	} else {
		cpu.NPC = cpu.PC + 4
	}
	return SIGNAL_CONTINUE
}

// Like branch, but a false condition skips the delay slot
func branchLikely(cpu *CPU, i Instruction, cond bool) Signal {
	if cond {
		cpu.PC = cpu.NPC
		cpu.NPC = cpu.PC + i.ImmSE()<<2
	} else {
		cpu.PC = cpu.NPC + 4
		cpu.NPC = cpu.PC + 4
	}
	return SIGNAL_CONTINUE
}

// The return address of a linking branch is the instruction after its
// delay slot, written before the condition is looked at
func (cpu *CPU) linkBranch() {
	cpu.SetReg(REG_RA, cpu.NPC+4)
}

// Branch if Equal
func opBEQ(cpu *CPU, i Instruction) Signal {
	return branch(cpu, i, cpu.Reg(i.S()) == cpu.Reg(i.T()))
}

// Branch if Not Equal
func opBNE(cpu *CPU, i Instruction) Signal {
	return branch(cpu, i, cpu.Reg(i.S()) != cpu.Reg(i.T()))
}

// Branch if Less than or Equal to Zero
func opBLEZ(cpu *CPU, i Instruction) Signal {
	return branch(cpu, i, int32(cpu.Reg(i.S())) <= 0)
}

// Branch if Greater Than Zero
func opBGTZ(cpu *CPU, i Instruction) Signal {
	return branch(cpu, i, int32(cpu.Reg(i.S())) > 0)
}

// Branch if Less Than Zero
func opBLTZ(cpu *CPU, i Instruction) Signal {
	return branch(cpu, i, int32(cpu.Reg(i.S())) < 0)
}

// Branch if Greater than or Equal to Zero
func opBGEZ(cpu *CPU, i Instruction) Signal {
	return branch(cpu, i, int32(cpu.Reg(i.S())) >= 0)
}

func opBLTZAL(cpu *CPU, i Instruction) Signal {
	cond := int32(cpu.Reg(i.S())) < 0
	cpu.linkBranch()
	return branch(cpu, i, cond)
}

func opBGEZAL(cpu *CPU, i Instruction) Signal {
	cond := int32(cpu.Reg(i.S())) >= 0
	cpu.linkBranch()
	return branch(cpu, i, cond)
}

func opBEQL(cpu *CPU, i Instruction) Signal {
	return branchLikely(cpu, i, cpu.Reg(i.S()) == cpu.Reg(i.T()))
}

func opBNEL(cpu *CPU, i Instruction) Signal {
	return branchLikely(cpu, i, cpu.Reg(i.S()) != cpu.Reg(i.T()))
}

func opBLEZL(cpu *CPU, i Instruction) Signal {
	return branchLikely(cpu, i, int32(cpu.Reg(i.S())) <= 0)
}

func opBGTZL(cpu *CPU, i Instruction) Signal {
	return branchLikely(cpu, i, int32(cpu.Reg(i.S())) > 0)
}

func opBLTZL(cpu *CPU, i Instruction) Signal {
	return branchLikely(cpu, i, int32(cpu.Reg(i.S())) < 0)
}

func opBGEZL(cpu *CPU, i Instruction) Signal {
	return branchLikely(cpu, i, int32(cpu.Reg(i.S())) >= 0)
}

func opBLTZALL(cpu *CPU, i Instruction) Signal {
	cond := int32(cpu.Reg(i.S())) < 0
	cpu.linkBranch()
	return branchLikely(cpu, i, cond)
}

func opBGEZALL(cpu *CPU, i Instruction) Signal {
	cond := int32(cpu.Reg(i.S())) >= 0
	cpu.linkBranch()
	return branchLikely(cpu, i, cond)
}

// Branch on FPU condition False
func opBC1F(cpu *CPU, i Instruction) Signal {
	return branch(cpu, i, !cpu.FpuCC())
}

// Branch on FPU condition True
func opBC1T(cpu *CPU, i Instruction) Signal {
	return branch(cpu, i, cpu.FpuCC())
}

func opBC1FL(cpu *CPU, i Instruction) Signal {
	return branchLikely(cpu, i, !cpu.FpuCC())
}

func opBC1TL(cpu *CPU, i Instruction) Signal {
	return branchLikely(cpu, i, cpu.FpuCC())
}

// Returns the VFPU condition bit selected by imm3
func (cpu *CPU) vfpuCond(i Instruction) bool {
	return (cpu.VfpuCC>>i.Imm3())&1 != 0
}

// Branch on VFPU condition False
func opBVF(cpu *CPU, i Instruction) Signal {
	return branch(cpu, i, !cpu.vfpuCond(i))
}

// Branch on VFPU condition True
func opBVT(cpu *CPU, i Instruction) Signal {
	return branch(cpu, i, cpu.vfpuCond(i))
}

func opBVFL(cpu *CPU, i Instruction) Signal {
	return branchLikely(cpu, i, !cpu.vfpuCond(i))
}

func opBVTL(cpu *CPU, i Instruction) Signal {
	return branchLikely(cpu, i, cpu.vfpuCond(i))
}

// Jump
func opJ(cpu *CPU, i Instruction) Signal {
	cpu.PC = cpu.NPC
	cpu.NPC = (cpu.PC & 0xf0000000) | (i.ImmJump() << 2)
	return SIGNAL_CONTINUE
}

// Jump And Link
func opJAL(cpu *CPU, i Instruction) Signal {
	opJ(cpu, i)
	cpu.SetReg(REG_RA, cpu.PC+4)
	return SIGNAL_CONTINUE
}

// Jump Register
func opJR(cpu *CPU, i Instruction) Signal {
	target := cpu.Reg(i.S())
	cpu.PC = cpu.NPC
	cpu.NPC = target
	return SIGNAL_CONTINUE
}

// Jump And Link Register
func opJALR(cpu *CPU, i Instruction) Signal {
	opJR(cpu, i)
	cpu.SetReg(i.D(), cpu.PC+4)
	return SIGNAL_CONTINUE
}

// System Call. The PC moves past the instruction before the handler runs,
// with no handler attached the stepper stops with SIGNAL_SYSCALL
func opSYSCALL(cpu *CPU, i Instruction) Signal {
	cpu.advance()
	code := i.SyscallCode()
	cpu.code = code

	if cpu.Syscalls == nil {
		return SIGNAL_SYSCALL
	}
	if err := cpu.Syscalls.Syscall(cpu, code); err != nil {
		if errors.Is(err, ErrYield) {
			return SIGNAL_YIELD
		}
		return cpu.raise(fmt.Errorf("syscall 0x%x: %w", code, err))
	}
	return SIGNAL_CONTINUE
}

// Break. Stops the stepper with SIGNAL_TRAP
func opBREAK(cpu *CPU, i Instruction) Signal {
	cpu.advance()
	cpu.code = i.SyscallCode()
	return SIGNAL_TRAP
}
