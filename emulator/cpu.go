package emulator

const (
	FCR31_RM_MASK uint32 = 0x00000003 // Rounding mode
	FCR31_CC      uint32 = 1 << 23    // Condition code set by c.cond.s
	FCR31_FS      uint32 = 1 << 24    // Flush denormalized results to zero

	FCR31_NAN_FLAGS uint32 = 0x00010040 // Invalid operation cause + flag
	FCR31_INF_FLAGS uint32 = 0x00005014 // Overflow and inexact cause + flags

	// Read-only FPU identification and alias registers
	FCR0_VALUE  uint32 = 0x00003351
	FCR25_VALUE uint32 = 0
	FCR26_VALUE uint32 = 0
	FCR27_VALUE uint32 = 0
	FCR28_VALUE uint32 = 0

	// Rounding modes stored in FCR31 bits [1:0]
	ROUND_NEAREST uint32 = 0
	ROUND_ZERO    uint32 = 1
	ROUND_CEIL    uint32 = 2
	ROUND_FLOOR   uint32 = 3
)

// CPU state of one guest execution context
type CPU struct {
	Regs [32]uint32  // General purpose registers. The first value must always be 0
	Fpr  [32]uint32  // Scalar FPU registers, raw IEEE-754 bits
	Vfpr [128]uint32 // VFPU register bank, raw IEEE-754 bits

	PC  uint32 // Address of the instruction being executed
	NPC uint32 // Address of the next instruction (the delay slot after a branch)

	HI uint32 // High half of multiply results, division remainder
	LO uint32 // Low half of multiply results, division quotient

	Fcr31 uint32 // FPU control/status register

	PfxS, PfxT, PfxD       uint32 // Latched VFPU prefixes
	PfxSOn, PfxTOn, PfxDOn bool   // Whether each prefix applies to the next vector op

	VfpuCC uint32 // VFPU condition codes: 4 lanes, any (bit 4), all (bit 5)
	IC     uint32 // Auxiliary control register (mfic/mtic)
	IR     Instruction

	TotalExecuted uint64         // Instructions executed over the lifetime of the context
	Mem           Memory         // Shared guest memory
	Syscalls      SyscallHandler // Optional, see SIGNAL_SYSCALL

	code  uint32 // Code of the last break/syscall signal
	fault error  // Error of the last SIGNAL_FAULT

	fast     []byte // Direct view of Mem, nil on the bounds-checked path
	fastBase uint32 // Masked address of fast[0]
}

// Creates a new CPU state running from address 0
func NewCPU(mem Memory) *CPU {
	cpu := &CPU{Mem: mem}
	cpu.SetPC(0)
	return cpu
}

// Sets the program counter, the next instruction follows it
func (cpu *CPU) SetPC(pc uint32) {
	cpu.PC = pc
	cpu.NPC = pc + 4
}

// Moves the pipeline one instruction forward
func (cpu *CPU) advance() {
	cpu.PC = cpu.NPC
	cpu.NPC = cpu.PC + 4
}

// Returns the register value at `index`. The first register is always zero
func (cpu *CPU) Reg(index uint32) uint32 {
	return cpu.Regs[index]
}

// Sets the value at the `index` register and sets the first register to zero
func (cpu *CPU) SetReg(index, val uint32) {
	cpu.Regs[index] = val
	// R0 should always remain 0, we can't change it
	cpu.Regs[0] = 0
}

// Returns HI:LO as one signed 64 bit value
func (cpu *CPU) HiLo() int64 {
	return int64(uint64(cpu.HI)<<32 | uint64(cpu.LO))
}

// Sets HI:LO from one 64 bit value
func (cpu *CPU) SetHiLo(v int64) {
	cpu.HI = uint32(uint64(v) >> 32)
	cpu.LO = uint32(v)
}

// Returns the scalar FPU register `index` as a float
func (cpu *CPU) F(index uint32) float32 {
	return f32(cpu.Fpr[index])
}

// Sets the scalar FPU register `index`
func (cpu *CPU) SetF(index uint32, v float32) {
	cpu.Fpr[index] = f32bits(v)
}

// Returns the rounding mode field of FCR31
func (cpu *CPU) RoundingMode() uint32 {
	return cpu.Fcr31 & FCR31_RM_MASK
}

// Returns the FPU condition code
func (cpu *CPU) FpuCC() bool {
	return cpu.Fcr31&FCR31_CC != 0
}

func (cpu *CPU) setFpuCC(v bool) {
	if v {
		cpu.Fcr31 |= FCR31_CC
	} else {
		cpu.Fcr31 &^= FCR31_CC
	}
}

// Reads an FPU control register. Unknown registers read as all ones
func (cpu *CPU) Fcr(index uint32) uint32 {
	switch index {
	case 0:
		return FCR0_VALUE
	case 25:
		return FCR25_VALUE
	case 26:
		return FCR26_VALUE
	case 27:
		return FCR27_VALUE
	case 28:
		return FCR28_VALUE
	case 31:
		return cpu.Fcr31
	}
	return 0xffffffff
}

// Writes an FPU control register. Only FCR31 is writable
func (cpu *CPU) SetFcr(index, val uint32) {
	if index == 31 {
		cpu.Fcr31 = val
	}
}

// Returns the VFPU register slot `index` as a float
func (cpu *CPU) V(index int) float32 {
	return f32(cpu.Vfpr[index])
}

// Sets the VFPU register slot `index`
func (cpu *CPU) SetV(index int, v float32) {
	cpu.Vfpr[index] = f32bits(v)
}

// Returns the error recorded by the last faulting instruction
func (cpu *CPU) Fault() error {
	return cpu.fault
}

// Records a fault, the stepper stops with SIGNAL_FAULT
func (cpu *CPU) raise(err error) Signal {
	cpu.fault = err
	return SIGNAL_FAULT
}

// Resets the architectural state, memory and handlers are kept
func (cpu *CPU) Reset() {
	mem, syscalls := cpu.Mem, cpu.Syscalls
	*cpu = CPU{Mem: mem, Syscalls: syscalls}
	cpu.SetPC(0)
}
