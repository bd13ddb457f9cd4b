package emulator

import "encoding/binary"

// Selects the memory path used by loads, stores and fetches. With `enabled`
// and a FastMemory attached, accesses that fall inside its buffer skip the
// Memory interface
func (cpu *CPU) useFastMemory(enabled bool) {
	cpu.fast, cpu.fastBase = nil, 0
	if !enabled {
		return
	}
	if fm, ok := cpu.Mem.(FastMemory); ok {
		cpu.fast, cpu.fastBase = fm.FastBuffer()
	}
}

// Returns the offset of `size` bytes at `addr` inside the fast buffer
func (cpu *CPU) fastOffset(addr, size uint32) (uint32, bool) {
	off := (addr & ADDRESS_MASK) - cpu.fastBase
	limit := uint32(len(cpu.fast))
	return off, off < limit && limit-off >= size
}

func (cpu *CPU) Load8(addr uint32) byte {
	if off, ok := cpu.fastOffset(addr, 1); ok {
		return cpu.fast[off]
	}
	return cpu.Mem.Load8(addr)
}

func (cpu *CPU) Load16(addr uint32) uint16 {
	if off, ok := cpu.fastOffset(addr, 2); ok {
		return binary.LittleEndian.Uint16(cpu.fast[off:])
	}
	return cpu.Mem.Load16(addr)
}

func (cpu *CPU) Load32(addr uint32) uint32 {
	if off, ok := cpu.fastOffset(addr, 4); ok {
		return binary.LittleEndian.Uint32(cpu.fast[off:])
	}
	return cpu.Mem.Load32(addr)
}

func (cpu *CPU) Store8(addr uint32, val byte) {
	if off, ok := cpu.fastOffset(addr, 1); ok {
		cpu.fast[off] = val
		return
	}
	cpu.Mem.Store8(addr, val)
}

func (cpu *CPU) Store16(addr uint32, val uint16) {
	if off, ok := cpu.fastOffset(addr, 2); ok {
		binary.LittleEndian.PutUint16(cpu.fast[off:], val)
		return
	}
	cpu.Mem.Store16(addr, val)
}

func (cpu *CPU) Store32(addr uint32, val uint32) {
	if off, ok := cpu.fastOffset(addr, 4); ok {
		binary.LittleEndian.PutUint32(cpu.fast[off:], val)
		return
	}
	cpu.Mem.Store32(addr, val)
}

// Effective address of scalar loads and stores
func (cpu *CPU) addr(i Instruction) uint32 {
	return cpu.Reg(i.S()) + i.ImmSE()
}

// Load Byte (signed)
func opLB(cpu *CPU, i Instruction) Signal {
	cpu.SetReg(i.T(), uint32(int32(int8(cpu.Load8(cpu.addr(i))))))
	return SIGNAL_CONTINUE
}

// Load Byte Unsigned
func opLBU(cpu *CPU, i Instruction) Signal {
	cpu.SetReg(i.T(), uint32(cpu.Load8(cpu.addr(i))))
	return SIGNAL_CONTINUE
}

// Load Halfword (signed)
func opLH(cpu *CPU, i Instruction) Signal {
	cpu.SetReg(i.T(), uint32(int32(int16(cpu.Load16(cpu.addr(i))))))
	return SIGNAL_CONTINUE
}

// Load Halfword Unsigned
func opLHU(cpu *CPU, i Instruction) Signal {
	cpu.SetReg(i.T(), uint32(cpu.Load16(cpu.addr(i))))
	return SIGNAL_CONTINUE
}

// Load Word
func opLW(cpu *CPU, i Instruction) Signal {
	cpu.SetReg(i.T(), cpu.Load32(cpu.addr(i)))
	return SIGNAL_CONTINUE
}

// Load Word Left
func opLWL(cpu *CPU, i Instruction) Signal {
	cpu.SetReg(i.T(), LoadWordLeft(cpu, cpu.addr(i), cpu.Reg(i.T())))
	return SIGNAL_CONTINUE
}

// Load Word Right
func opLWR(cpu *CPU, i Instruction) Signal {
	cpu.SetReg(i.T(), LoadWordRight(cpu, cpu.addr(i), cpu.Reg(i.T())))
	return SIGNAL_CONTINUE
}

// Store Byte
func opSB(cpu *CPU, i Instruction) Signal {
	cpu.Store8(cpu.addr(i), byte(cpu.Reg(i.T())))
	return SIGNAL_CONTINUE
}

// Store Halfword
func opSH(cpu *CPU, i Instruction) Signal {
	cpu.Store16(cpu.addr(i), uint16(cpu.Reg(i.T())))
	return SIGNAL_CONTINUE
}

// Store Word
func opSW(cpu *CPU, i Instruction) Signal {
	cpu.Store32(cpu.addr(i), cpu.Reg(i.T()))
	return SIGNAL_CONTINUE
}

// Store Word Left
func opSWL(cpu *CPU, i Instruction) Signal {
	StoreWordLeft(cpu, cpu.addr(i), cpu.Reg(i.T()))
	return SIGNAL_CONTINUE
}

// Store Word Right
func opSWR(cpu *CPU, i Instruction) Signal {
	StoreWordRight(cpu, cpu.addr(i), cpu.Reg(i.T()))
	return SIGNAL_CONTINUE
}

// Load Linked, a plain load on a single core
func opLL(cpu *CPU, i Instruction) Signal {
	return opLW(cpu, i)
}

// Store Conditional. Always succeeds
func opSC(cpu *CPU, i Instruction) Signal {
	cpu.Store32(cpu.addr(i), cpu.Reg(i.T()))
	cpu.SetReg(i.T(), 1)
	return SIGNAL_CONTINUE
}

// Load Word to FPU
func opLWC1(cpu *CPU, i Instruction) Signal {
	cpu.Fpr[i.FT()] = cpu.Load32(cpu.addr(i))
	return SIGNAL_CONTINUE
}

// Store Word from FPU
func opSWC1(cpu *CPU, i Instruction) Signal {
	cpu.Store32(cpu.addr(i), cpu.Fpr[i.FT()])
	return SIGNAL_CONTINUE
}
