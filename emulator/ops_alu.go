package emulator

// add/addu. add does not trap on overflow, both wrap
func opADDU(cpu *CPU, i Instruction) Signal {
	cpu.SetReg(i.D(), cpu.Reg(i.S())+cpu.Reg(i.T()))
	return SIGNAL_CONTINUE
}

// sub/subu, wrapping
func opSUBU(cpu *CPU, i Instruction) Signal {
	cpu.SetReg(i.D(), cpu.Reg(i.S())-cpu.Reg(i.T()))
	return SIGNAL_CONTINUE
}

// Bitwise And
func opAND(cpu *CPU, i Instruction) Signal {
	cpu.SetReg(i.D(), cpu.Reg(i.S())&cpu.Reg(i.T()))
	return SIGNAL_CONTINUE
}

// Bitwise Or
func opOR(cpu *CPU, i Instruction) Signal {
	cpu.SetReg(i.D(), cpu.Reg(i.S())|cpu.Reg(i.T()))
	return SIGNAL_CONTINUE
}

// Bitwise Exclusive Or
func opXOR(cpu *CPU, i Instruction) Signal {
	cpu.SetReg(i.D(), cpu.Reg(i.S())^cpu.Reg(i.T()))
	return SIGNAL_CONTINUE
}

// Bitwise Not Or
func opNOR(cpu *CPU, i Instruction) Signal {
	cpu.SetReg(i.D(), ^(cpu.Reg(i.S()) | cpu.Reg(i.T())))
	return SIGNAL_CONTINUE
}

// Set on Less Than (signed)
func opSLT(cpu *CPU, i Instruction) Signal {
	cpu.SetReg(i.D(), oneIfTrue(int32(cpu.Reg(i.S())) < int32(cpu.Reg(i.T()))))
	return SIGNAL_CONTINUE
}

// Set on Less Than Unsigned
func opSLTU(cpu *CPU, i Instruction) Signal {
	cpu.SetReg(i.D(), oneIfTrue(cpu.Reg(i.S()) < cpu.Reg(i.T())))
	return SIGNAL_CONTINUE
}

// Signed maximum
func opMAX(cpu *CPU, i Instruction) Signal {
	s, t := int32(cpu.Reg(i.S())), int32(cpu.Reg(i.T()))
	if t > s {
		s = t
	}
	cpu.SetReg(i.D(), uint32(s))
	return SIGNAL_CONTINUE
}

// Signed minimum
func opMIN(cpu *CPU, i Instruction) Signal {
	s, t := int32(cpu.Reg(i.S())), int32(cpu.Reg(i.T()))
	if t < s {
		s = t
	}
	cpu.SetReg(i.D(), uint32(s))
	return SIGNAL_CONTINUE
}

// Move if rt is zero
func opMOVZ(cpu *CPU, i Instruction) Signal {
	if cpu.Reg(i.T()) == 0 {
		cpu.SetReg(i.D(), cpu.Reg(i.S()))
	}
	return SIGNAL_CONTINUE
}

// Move if rt is not zero
func opMOVN(cpu *CPU, i Instruction) Signal {
	if cpu.Reg(i.T()) != 0 {
		cpu.SetReg(i.D(), cpu.Reg(i.S()))
	}
	return SIGNAL_CONTINUE
}

// Shift Left Logical
func opSLL(cpu *CPU, i Instruction) Signal {
	cpu.SetReg(i.D(), cpu.Reg(i.T())<<i.Shift())
	return SIGNAL_CONTINUE
}

// Shift Right Logical
func opSRL(cpu *CPU, i Instruction) Signal {
	cpu.SetReg(i.D(), cpu.Reg(i.T())>>i.Shift())
	return SIGNAL_CONTINUE
}

// Rotate Right
func opROTR(cpu *CPU, i Instruction) Signal {
	cpu.SetReg(i.D(), Rotr(cpu.Reg(i.T()), i.Shift()))
	return SIGNAL_CONTINUE
}

// Shift Right Arithmetic
func opSRA(cpu *CPU, i Instruction) Signal {
	cpu.SetReg(i.D(), uint32(int32(cpu.Reg(i.T()))>>i.Shift()))
	return SIGNAL_CONTINUE
}

// Shift Left Logical Variable
func opSLLV(cpu *CPU, i Instruction) Signal {
	cpu.SetReg(i.D(), cpu.Reg(i.T())<<(cpu.Reg(i.S())&0x1f))
	return SIGNAL_CONTINUE
}

// Shift Right Logical Variable
func opSRLV(cpu *CPU, i Instruction) Signal {
	cpu.SetReg(i.D(), cpu.Reg(i.T())>>(cpu.Reg(i.S())&0x1f))
	return SIGNAL_CONTINUE
}

// Rotate Right Variable
func opROTRV(cpu *CPU, i Instruction) Signal {
	cpu.SetReg(i.D(), Rotr(cpu.Reg(i.T()), cpu.Reg(i.S())))
	return SIGNAL_CONTINUE
}

// Shift Right Arithmetic Variable
func opSRAV(cpu *CPU, i Instruction) Signal {
	cpu.SetReg(i.D(), uint32(int32(cpu.Reg(i.T()))>>(cpu.Reg(i.S())&0x1f)))
	return SIGNAL_CONTINUE
}

// Move From HI
func opMFHI(cpu *CPU, i Instruction) Signal {
	cpu.SetReg(i.D(), cpu.HI)
	return SIGNAL_CONTINUE
}

// Move To HI
func opMTHI(cpu *CPU, i Instruction) Signal {
	cpu.HI = cpu.Reg(i.S())
	return SIGNAL_CONTINUE
}

// Move From LO
func opMFLO(cpu *CPU, i Instruction) Signal {
	cpu.SetReg(i.D(), cpu.LO)
	return SIGNAL_CONTINUE
}

// Move To LO
func opMTLO(cpu *CPU, i Instruction) Signal {
	cpu.LO = cpu.Reg(i.S())
	return SIGNAL_CONTINUE
}

// Multiply (signed)
func opMULT(cpu *CPU, i Instruction) Signal {
	a := int64(int32(cpu.Reg(i.S())))
	b := int64(int32(cpu.Reg(i.T())))
	cpu.SetHiLo(a * b)
	return SIGNAL_CONTINUE
}

// Multiply Unsigned
func opMULTU(cpu *CPU, i Instruction) Signal {
	a := uint64(cpu.Reg(i.S()))
	b := uint64(cpu.Reg(i.T()))
	cpu.SetHiLo(int64(a * b))
	return SIGNAL_CONTINUE
}

// Divide (signed). A zero divisor leaves zeroes instead of trapping
func opDIV(cpu *CPU, i Instruction) Signal {
	n := int32(cpu.Reg(i.S()))
	d := int32(cpu.Reg(i.T()))

	switch {
	case d == 0:
		cpu.LO, cpu.HI = 0, 0
	case n == -0x80000000 && d == -1:
		// the quotient does not fit in 32 bits
		cpu.LO, cpu.HI = 0x80000000, 0
	default:
		cpu.LO = uint32(n / d)
		cpu.HI = uint32(n % d)
	}
	return SIGNAL_CONTINUE
}

// Divide Unsigned. A zero divisor gives LO = HI = 0
func opDIVU(cpu *CPU, i Instruction) Signal {
	n := cpu.Reg(i.S())
	d := cpu.Reg(i.T())

	if d == 0 {
		cpu.LO, cpu.HI = 0, 0
	} else {
		cpu.LO = n / d
		cpu.HI = n % d
	}
	return SIGNAL_CONTINUE
}

// Multiply and add to HI:LO
func opMADD(cpu *CPU, i Instruction) Signal {
	a := int64(int32(cpu.Reg(i.S())))
	b := int64(int32(cpu.Reg(i.T())))
	cpu.SetHiLo(cpu.HiLo() + a*b)
	return SIGNAL_CONTINUE
}

// Multiply Unsigned and add to HI:LO
func opMADDU(cpu *CPU, i Instruction) Signal {
	a := uint64(cpu.Reg(i.S()))
	b := uint64(cpu.Reg(i.T()))
	cpu.SetHiLo(int64(uint64(cpu.HiLo()) + a*b))
	return SIGNAL_CONTINUE
}

// Multiply and subtract from HI:LO
func opMSUB(cpu *CPU, i Instruction) Signal {
	a := int64(int32(cpu.Reg(i.S())))
	b := int64(int32(cpu.Reg(i.T())))
	cpu.SetHiLo(cpu.HiLo() - a*b)
	return SIGNAL_CONTINUE
}

// Multiply Unsigned and subtract from HI:LO
func opMSUBU(cpu *CPU, i Instruction) Signal {
	a := uint64(cpu.Reg(i.S()))
	b := uint64(cpu.Reg(i.T()))
	cpu.SetHiLo(int64(uint64(cpu.HiLo()) - a*b))
	return SIGNAL_CONTINUE
}

// Count Leading Zeros
func opCLZ(cpu *CPU, i Instruction) Signal {
	cpu.SetReg(i.D(), Clz(cpu.Reg(i.S())))
	return SIGNAL_CONTINUE
}

// Count Leading Ones
func opCLO(cpu *CPU, i Instruction) Signal {
	cpu.SetReg(i.D(), Clo(cpu.Reg(i.S())))
	return SIGNAL_CONTINUE
}

// Add Immediate (Unsigned). addi does not trap on overflow either
func opADDIU(cpu *CPU, i Instruction) Signal {
	cpu.SetReg(i.T(), cpu.Reg(i.S())+i.ImmSE())
	return SIGNAL_CONTINUE
}

// Set if Less Than Immediate (signed)
func opSLTI(cpu *CPU, i Instruction) Signal {
	cpu.SetReg(i.T(), oneIfTrue(int32(cpu.Reg(i.S())) < int32(i.ImmSE())))
	return SIGNAL_CONTINUE
}

// Set if Less Than Immediate Unsigned. The immediate is still sign extended
func opSLTIU(cpu *CPU, i Instruction) Signal {
	cpu.SetReg(i.T(), oneIfTrue(cpu.Reg(i.S()) < i.ImmSE()))
	return SIGNAL_CONTINUE
}

// Bitwise And Immediate
func opANDI(cpu *CPU, i Instruction) Signal {
	cpu.SetReg(i.T(), cpu.Reg(i.S())&i.Imm())
	return SIGNAL_CONTINUE
}

// Bitwise Or Immediate
func opORI(cpu *CPU, i Instruction) Signal {
	cpu.SetReg(i.T(), cpu.Reg(i.S())|i.Imm())
	return SIGNAL_CONTINUE
}

// Bitwise Exclusive Or Immediate
func opXORI(cpu *CPU, i Instruction) Signal {
	cpu.SetReg(i.T(), cpu.Reg(i.S())^i.Imm())
	return SIGNAL_CONTINUE
}

// Load Upper Immediate
func opLUI(cpu *CPU, i Instruction) Signal {
	// low 16 bits are set to 0
	cpu.SetReg(i.T(), i.Imm()<<16)
	return SIGNAL_CONTINUE
}

// Extract Bit Field
func opEXT(cpu *CPU, i Instruction) Signal {
	cpu.SetReg(i.T(), Extract(cpu.Reg(i.S()), i.Shift(), i.ExtSize()))
	return SIGNAL_CONTINUE
}

// Insert Bit Field
func opINS(cpu *CPU, i Instruction) Signal {
	cpu.SetReg(i.T(), Insert(cpu.Reg(i.T()), cpu.Reg(i.S()), i.Shift(), i.InsSize()))
	return SIGNAL_CONTINUE
}

func opWSBH(cpu *CPU, i Instruction) Signal {
	cpu.SetReg(i.D(), Wsbh(cpu.Reg(i.T())))
	return SIGNAL_CONTINUE
}

func opWSBW(cpu *CPU, i Instruction) Signal {
	cpu.SetReg(i.D(), Wsbw(cpu.Reg(i.T())))
	return SIGNAL_CONTINUE
}

func opSEB(cpu *CPU, i Instruction) Signal {
	cpu.SetReg(i.D(), Seb(cpu.Reg(i.T())))
	return SIGNAL_CONTINUE
}

func opSEH(cpu *CPU, i Instruction) Signal {
	cpu.SetReg(i.D(), Seh(cpu.Reg(i.T())))
	return SIGNAL_CONTINUE
}

func opBITREV(cpu *CPU, i Instruction) Signal {
	cpu.SetReg(i.D(), Bitrev(cpu.Reg(i.T())))
	return SIGNAL_CONTINUE
}

// Move From IC
func opMFIC(cpu *CPU, i Instruction) Signal {
	cpu.SetReg(i.T(), cpu.IC)
	return SIGNAL_CONTINUE
}

// Move To IC
func opMTIC(cpu *CPU, i Instruction) Signal {
	cpu.IC = cpu.Reg(i.T())
	return SIGNAL_CONTINUE
}
