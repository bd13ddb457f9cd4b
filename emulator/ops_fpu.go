package emulator

import "math"

// Results at or below this magnitude flush to zero when FCR31.FS is set
const FPU_FLUSH_THRESHOLD = 1e-19

// Sets the sticky FCR31 flags for NaN and infinite results
func (cpu *CPU) checkNaN(v float32) float32 {
	if isNaN32(v) {
		cpu.Fcr31 |= FCR31_NAN_FLAGS
	} else if isInf32(v) {
		cpu.Fcr31 |= FCR31_INF_FLAGS
	}
	return v
}

func opADD_S(cpu *CPU, i Instruction) Signal {
	cpu.SetF(i.FD(), cpu.checkNaN(cpu.F(i.FS())+cpu.F(i.FT())))
	return SIGNAL_CONTINUE
}

func opSUB_S(cpu *CPU, i Instruction) Signal {
	cpu.SetF(i.FD(), cpu.checkNaN(cpu.F(i.FS())-cpu.F(i.FT())))
	return SIGNAL_CONTINUE
}

func opMUL_S(cpu *CPU, i Instruction) Signal {
	v := cpu.F(i.FS()) * cpu.F(i.FT())
	if cpu.Fcr31&FCR31_FS != 0 && math.Abs(float64(v)) <= FPU_FLUSH_THRESHOLD {
		v = 0
	}
	cpu.SetF(i.FD(), cpu.checkNaN(v))
	return SIGNAL_CONTINUE
}

func opDIV_S(cpu *CPU, i Instruction) Signal {
	cpu.SetF(i.FD(), cpu.checkNaN(cpu.F(i.FS())/cpu.F(i.FT())))
	return SIGNAL_CONTINUE
}

func opSQRT_S(cpu *CPU, i Instruction) Signal {
	v := float32(math.Sqrt(float64(cpu.F(i.FS()))))
	cpu.SetF(i.FD(), cpu.checkNaN(v))
	return SIGNAL_CONTINUE
}

func opABS_S(cpu *CPU, i Instruction) Signal {
	v := float32(math.Abs(float64(cpu.F(i.FS()))))
	cpu.SetF(i.FD(), cpu.checkNaN(v))
	return SIGNAL_CONTINUE
}

func opMOV_S(cpu *CPU, i Instruction) Signal {
	cpu.Fpr[i.FD()] = cpu.Fpr[i.FS()]
	cpu.checkNaN(cpu.F(i.FD()))
	return SIGNAL_CONTINUE
}

func opNEG_S(cpu *CPU, i Instruction) Signal {
	cpu.SetF(i.FD(), cpu.checkNaN(-cpu.F(i.FS())))
	return SIGNAL_CONTINUE
}

// Converts with the given rounding mode, saturating NaN and out of range values
func roundToInt32(v float32, mode uint32) uint32 {
	f := float64(v)
	switch mode {
	case ROUND_NEAREST:
		f = math.RoundToEven(f)
	case ROUND_ZERO:
		f = math.Trunc(f)
	case ROUND_CEIL:
		f = math.Ceil(f)
	case ROUND_FLOOR:
		f = math.Floor(f)
	}
	return saturateInt32(f)
}

func opROUND_W_S(cpu *CPU, i Instruction) Signal {
	cpu.Fpr[i.FD()] = roundToInt32(cpu.F(i.FS()), ROUND_NEAREST)
	return SIGNAL_CONTINUE
}

func opTRUNC_W_S(cpu *CPU, i Instruction) Signal {
	cpu.Fpr[i.FD()] = roundToInt32(cpu.F(i.FS()), ROUND_ZERO)
	return SIGNAL_CONTINUE
}

func opCEIL_W_S(cpu *CPU, i Instruction) Signal {
	cpu.Fpr[i.FD()] = roundToInt32(cpu.F(i.FS()), ROUND_CEIL)
	return SIGNAL_CONTINUE
}

func opFLOOR_W_S(cpu *CPU, i Instruction) Signal {
	cpu.Fpr[i.FD()] = roundToInt32(cpu.F(i.FS()), ROUND_FLOOR)
	return SIGNAL_CONTINUE
}

// Convert to Word, rounding by FCR31
func opCVT_W_S(cpu *CPU, i Instruction) Signal {
	cpu.Fpr[i.FD()] = roundToInt32(cpu.F(i.FS()), cpu.RoundingMode())
	return SIGNAL_CONTINUE
}

// Convert Word to Single
func opCVT_S_W(cpu *CPU, i Instruction) Signal {
	cpu.SetF(i.FD(), float32(int32(cpu.Fpr[i.FS()])))
	return SIGNAL_CONTINUE
}

// Compare, the low 4 bits of the function field select the condition:
// bit 0 unordered, bit 1 equal, bit 2 less than. Bit 3 only changes which
// exceptions real hardware signals
func opC_S(cpu *CPU, i Instruction) Signal {
	cond := i.Subfunction() & 0xf
	a, b := cpu.F(i.FS()), cpu.F(i.FT())

	var result bool
	if isNaN32(a) || isNaN32(b) {
		result = cond&1 != 0
	} else {
		result = (cond&2 != 0 && a == b) || (cond&4 != 0 && a < b)
	}
	cpu.setFpuCC(result)
	return SIGNAL_CONTINUE
}

// Move From FPU, a raw bit copy
func opMFC1(cpu *CPU, i Instruction) Signal {
	cpu.SetReg(i.T(), cpu.Fpr[i.FS()])
	return SIGNAL_CONTINUE
}

// Move To FPU, a raw bit copy
func opMTC1(cpu *CPU, i Instruction) Signal {
	cpu.Fpr[i.FS()] = cpu.Reg(i.T())
	return SIGNAL_CONTINUE
}

// Move From FPU Control register
func opCFC1(cpu *CPU, i Instruction) Signal {
	cpu.SetReg(i.T(), cpu.Fcr(i.D()))
	return SIGNAL_CONTINUE
}

// Move To FPU Control register
func opCTC1(cpu *CPU, i Instruction) Signal {
	cpu.SetFcr(i.D(), cpu.Reg(i.T()))
	return SIGNAL_CONTINUE
}
