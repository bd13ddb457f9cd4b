package emulator

// A raw 32 bit Allegrex instruction word
type Instruction uint32

// Return bits [31:26] of the instruction
func (op Instruction) Function() uint32 {
	return uint32(op) >> 26
}

// Return bits [5:0] of the instruction
func (op Instruction) Subfunction() uint32 {
	return uint32(op) & 0x3f
}

// Return register index in bits [25:21]
func (op Instruction) S() uint32 {
	return (uint32(op) >> 21) & 0x1f
}

// Return register index in bits [20:16]
func (op Instruction) T() uint32 {
	return (uint32(op) >> 16) & 0x1f
}

// Return register index in bits [15:11]
func (op Instruction) D() uint32 {
	return (uint32(op) >> 11) & 0x1f
}

// Return immediate value in bits [15:0]
func (op Instruction) Imm() uint32 {
	return uint32(op) & 0xffff
}

// Return immediate value in bits [15:0] as a sign-extended 32 bit value
func (op Instruction) ImmSE() uint32 {
	return uint32(int32(int16(uint32(op) & 0xffff)))
}

// Jump target stored in bits [25:0]
func (op Instruction) ImmJump() uint32 {
	return uint32(op) & 0x3ffffff
}

// Shift Immediate values are stored in bits [10:6]. The same field holds
// the `pos` of ext/ins
func (op Instruction) Shift() uint32 {
	return (uint32(op) >> 6) & 0x1f
}

// The `msb` field of ext/ins shares bits [15:11] with D
func (op Instruction) Msb() uint32 {
	return op.D()
}

// Number of bits extracted by ext: the field holds `pos + size - 1`
func (op Instruction) ExtSize() uint32 {
	return op.Msb() - op.Shift() + 1
}

// Number of bits inserted by ins: the field holds `size - 1`
func (op Instruction) InsSize() uint32 {
	return op.Msb() + 1
}

// Code embedded in syscall and break, bits [25:6]
func (op Instruction) SyscallCode() uint32 {
	return (uint32(op) >> 6) & 0xfffff
}

// FPU register fields. FT shares T, FS shares D and FD shares the shift field
func (op Instruction) FT() uint32 { return op.T() }
func (op Instruction) FS() uint32 { return op.D() }
func (op Instruction) FD() uint32 { return op.Shift() }

// VFPU destination register selector, bits [6:0]
func (op Instruction) VD() uint32 {
	return uint32(op) & 0x7f
}

// VFPU first source register selector, bits [14:8]
func (op Instruction) VS() uint32 {
	return (uint32(op) >> 8) & 0x7f
}

// VFPU second source register selector, bits [22:16]
func (op Instruction) VT() uint32 {
	return (uint32(op) >> 16) & 0x7f
}

// Vector width 1..4 encoded by bit 7 ("one") and bit 15 ("two")
func (op Instruction) VectorSize() int {
	one := int(uint32(op)>>7) & 1
	two := int(uint32(op)>>15) & 1
	return 1 + one + 2*two
}

// 5 bit immediate in bits [20:16] (vrot, vcst, vf2i*, vi2f)
func (op Instruction) Imm5() uint32 {
	return (uint32(op) >> 16) & 0x1f
}

// 3 bit immediate in bits [20:18] (bvf/bvt)
func (op Instruction) Imm3() uint32 {
	return (uint32(op) >> 18) & 0x7
}

// 3 bit immediate in bits [18:16] (vcmovt/vcmovf)
func (op Instruction) CmovImm3() uint32 {
	return (uint32(op) >> 16) & 0x7
}

// 4 bit immediate in bits [3:0] (vcmp condition)
func (op Instruction) Imm4() uint32 {
	return uint32(op) & 0xf
}

// 7 bit immediate in bits [6:0]
func (op Instruction) Imm7() uint32 {
	return uint32(op) & 0x7f
}

// Signed word offset of the VFPU loads and stores: bits [15:2] are the
// offset in words, the low two bits are reused by the register selector
func (op Instruction) Imm14() uint32 {
	return uint32(int32(int16(uint32(op)&0xfffc)))
}

// lv.q/sv.q register selector: 5 bits in [20:16] plus bit 0 as bit 5
func (op Instruction) VT51() uint32 {
	return op.T() | (uint32(op)&1)<<5
}

// lv.s/sv.s register selector: 5 bits in [20:16] plus bits [1:0] as bits [6:5]
func (op Instruction) VT52() uint32 {
	return op.T() | (uint32(op)&3)<<5
}

// viim/vfim destination selector in bits [22:16]
func (op Instruction) VTImm() uint32 {
	return op.VT()
}

// Address of a PC relative branch placed at `pc`: the offset is counted in
// words from the delay slot
func (op Instruction) BranchTarget(pc uint32) uint32 {
	return pc + 4 + op.ImmSE()<<2
}

// Address of a j/jal placed at `pc`: the top 4 bits come from the delay slot
func (op Instruction) JumpTarget(pc uint32) uint32 {
	return ((pc + 4) & 0xf0000000) | op.ImmJump()<<2
}
