package emulator

import "math"

// Applies `f` to every lane of vs and writes vd
func vfpuUnary(cpu *CPU, i Instruction, f func(float32) float32) Signal {
	size := i.VectorSize()
	s := cpu.vsf(i, size)
	var d [4]float32
	for n := 0; n < size; n++ {
		d[n] = f(s[n])
	}
	cpu.vdf(i, size, d)
	return SIGNAL_CONTINUE
}

// Applies `f` lane by lane to vs and vt and writes vd
func vfpuBinary(cpu *CPU, i Instruction, f func(a, b float32) float32) Signal {
	size := i.VectorSize()
	s := cpu.vsf(i, size)
	t := cpu.vtf(i, size)
	var d [4]float32
	for n := 0; n < size; n++ {
		d[n] = f(s[n], t[n])
	}
	cpu.vdf(i, size, d)
	return SIGNAL_CONTINUE
}

func sinQuarter(v float32) float32 {
	return float32(math.Sin(float64(v) * math.Pi / 2))
}

func cosQuarter(v float32) float32 {
	return float32(math.Cos(float64(v) * math.Pi / 2))
}

func opVMOV(cpu *CPU, i Instruction) Signal {
	return vfpuUnary(cpu, i, func(v float32) float32 { return v })
}

func opVABS(cpu *CPU, i Instruction) Signal {
	return vfpuUnary(cpu, i, func(v float32) float32 { return f32(f32bits(v) &^ 0x80000000) })
}

func opVNEG(cpu *CPU, i Instruction) Signal {
	return vfpuUnary(cpu, i, func(v float32) float32 { return f32(f32bits(v) ^ 0x80000000) })
}

func opVSAT0(cpu *CPU, i Instruction) Signal {
	return vfpuUnary(cpu, i, func(v float32) float32 { return clampf(v, 0, 1) })
}

func opVSAT1(cpu *CPU, i Instruction) Signal {
	return vfpuUnary(cpu, i, func(v float32) float32 { return clampf(v, -1, 1) })
}

func opVRCP(cpu *CPU, i Instruction) Signal {
	return vfpuUnary(cpu, i, func(v float32) float32 { return 1 / v })
}

func opVNRCP(cpu *CPU, i Instruction) Signal {
	return vfpuUnary(cpu, i, func(v float32) float32 { return -1 / v })
}

func opVRSQ(cpu *CPU, i Instruction) Signal {
	return vfpuUnary(cpu, i, func(v float32) float32 { return float32(1 / math.Sqrt(float64(v))) })
}

func opVSQRT(cpu *CPU, i Instruction) Signal {
	return vfpuUnary(cpu, i, func(v float32) float32 { return float32(math.Sqrt(float64(v))) })
}

// Sine of a quarter turn count: vsin(1) == 1
func opVSIN(cpu *CPU, i Instruction) Signal {
	return vfpuUnary(cpu, i, sinQuarter)
}

func opVNSIN(cpu *CPU, i Instruction) Signal {
	return vfpuUnary(cpu, i, func(v float32) float32 { return -sinQuarter(v) })
}

func opVCOS(cpu *CPU, i Instruction) Signal {
	return vfpuUnary(cpu, i, cosQuarter)
}

// Arc sine in quarter turns: vasin(1) == 1
func opVASIN(cpu *CPU, i Instruction) Signal {
	return vfpuUnary(cpu, i, func(v float32) float32 { return float32(math.Asin(float64(v)) * 2 / math.Pi) })
}

func opVEXP2(cpu *CPU, i Instruction) Signal {
	return vfpuUnary(cpu, i, func(v float32) float32 { return float32(math.Exp2(float64(v))) })
}

func opVREXP2(cpu *CPU, i Instruction) Signal {
	return vfpuUnary(cpu, i, func(v float32) float32 { return float32(1 / math.Exp2(float64(v))) })
}

func opVLOG2(cpu *CPU, i Instruction) Signal {
	return vfpuUnary(cpu, i, func(v float32) float32 { return float32(math.Log2(float64(v))) })
}

// One minus the value
func opVOCP(cpu *CPU, i Instruction) Signal {
	return vfpuUnary(cpu, i, func(v float32) float32 { return 1 - v })
}

func opVSGN(cpu *CPU, i Instruction) Signal {
	return vfpuUnary(cpu, i, func(v float32) float32 {
		switch {
		case v > 0:
			return 1
		case v < 0:
			return -1
		}
		return 0
	})
}

func opVZERO(cpu *CPU, i Instruction) Signal {
	cpu.vdf(i, i.VectorSize(), [4]float32{})
	return SIGNAL_CONTINUE
}

func opVONE(cpu *CPU, i Instruction) Signal {
	cpu.vdf(i, i.VectorSize(), [4]float32{1, 1, 1, 1})
	return SIGNAL_CONTINUE
}

// Row of the identity matrix matching the register's position
func opVIDT(cpu *CPU, i Instruction) Signal {
	size := i.VectorSize()
	id := int(i.VD()&3) % size
	var d [4]float32
	d[id] = 1
	cpu.vdf(i, size, d)
	return SIGNAL_CONTINUE
}

func opVADD(cpu *CPU, i Instruction) Signal {
	return vfpuBinary(cpu, i, func(a, b float32) float32 { return a + b })
}

func opVSUB(cpu *CPU, i Instruction) Signal {
	return vfpuBinary(cpu, i, func(a, b float32) float32 { return a - b })
}

func opVMUL(cpu *CPU, i Instruction) Signal {
	return vfpuBinary(cpu, i, func(a, b float32) float32 { return a * b })
}

func opVDIV(cpu *CPU, i Instruction) Signal {
	return vfpuBinary(cpu, i, func(a, b float32) float32 { return a / b })
}

func opVMIN(cpu *CPU, i Instruction) Signal {
	return vfpuBinary(cpu, i, func(a, b float32) float32 {
		if b < a {
			return b
		}
		return a
	})
}

func opVMAX(cpu *CPU, i Instruction) Signal {
	return vfpuBinary(cpu, i, func(a, b float32) float32 {
		if b > a {
			return b
		}
		return a
	})
}

// Sign of the difference: -1, 0 or 1
func opVSCMP(cpu *CPU, i Instruction) Signal {
	return vfpuBinary(cpu, i, func(a, b float32) float32 {
		switch {
		case a > b:
			return 1
		case a < b:
			return -1
		}
		return 0
	})
}

func opVSGE(cpu *CPU, i Instruction) Signal {
	return vfpuBinary(cpu, i, func(a, b float32) float32 {
		if a >= b {
			return 1
		}
		return 0
	})
}

func opVSLT(cpu *CPU, i Instruction) Signal {
	return vfpuBinary(cpu, i, func(a, b float32) float32 {
		if a < b {
			return 1
		}
		return 0
	})
}

// Multiplies every lane by the scalar vt
func opVSCL(cpu *CPU, i Instruction) Signal {
	size := i.VectorSize()
	s := cpu.vsf(i, size)
	scale := cpu.vtf(i, 1)[0]
	var d [4]float32
	for n := 0; n < size; n++ {
		d[n] = s[n] * scale
	}
	cpu.vdf(i, size, d)
	return SIGNAL_CONTINUE
}

// Dot product
func opVDOT(cpu *CPU, i Instruction) Signal {
	size := i.VectorSize()
	s, t := cpu.vsf(i, size), cpu.vtf(i, size)
	var sum float32
	for n := 0; n < size; n++ {
		sum += s[n] * t[n]
	}
	cpu.vdf(i, 1, [4]float32{sum})
	return SIGNAL_CONTINUE
}

// Homogeneous dot product: the last lane of vs counts as 1
func opVHDP(cpu *CPU, i Instruction) Signal {
	size := i.VectorSize()
	s, t := cpu.vsf(i, size), cpu.vtf(i, size)
	sum := t[size-1]
	for n := 0; n < size-1; n++ {
		sum += s[n] * t[n]
	}
	cpu.vdf(i, 1, [4]float32{sum})
	return SIGNAL_CONTINUE
}

// 2x2 determinant of the pairs vs, vt
func opVDET(cpu *CPU, i Instruction) Signal {
	s, t := cpu.vsf(i, 2), cpu.vtf(i, 2)
	cpu.vdf(i, 1, [4]float32{s[0]*t[1] - s[1]*t[0]})
	return SIGNAL_CONTINUE
}

// Half cross product, the caller combines two of them
func opVCRS_T(cpu *CPU, i Instruction) Signal {
	s, t := cpu.vsf(i, 3), cpu.vtf(i, 3)
	cpu.vdf(i, 3, [4]float32{s[1] * t[2], s[2] * t[0], s[0] * t[1]})
	return SIGNAL_CONTINUE
}

// Cross product
func opVCRSP_T(cpu *CPU, i Instruction) Signal {
	s, t := cpu.vsf(i, 3), cpu.vtf(i, 3)
	cpu.vdf(i, 3, [4]float32{
		s[1]*t[2] - s[2]*t[1],
		s[2]*t[0] - s[0]*t[2],
		s[0]*t[1] - s[1]*t[0],
	})
	return SIGNAL_CONTINUE
}

// Sum of the lanes
func opVFAD(cpu *CPU, i Instruction) Signal {
	size := i.VectorSize()
	s := cpu.vsf(i, size)
	var sum float32
	for n := 0; n < size; n++ {
		sum += s[n]
	}
	cpu.vdf(i, 1, [4]float32{sum})
	return SIGNAL_CONTINUE
}

// Average of the lanes
func opVAVG(cpu *CPU, i Instruction) Signal {
	size := i.VectorSize()
	s := cpu.vsf(i, size)
	var sum float32
	for n := 0; n < size; n++ {
		sum += s[n]
	}
	cpu.vdf(i, 1, [4]float32{sum / float32(size)})
	return SIGNAL_CONTINUE
}

// vcmp condition codes, imm4
const (
	VCMP_FL = iota
	VCMP_EQ
	VCMP_LT
	VCMP_LE
	VCMP_TR
	VCMP_NE
	VCMP_GE
	VCMP_GT
	VCMP_EZ
	VCMP_EN
	VCMP_EI
	VCMP_ES
	VCMP_NZ
	VCMP_NN
	VCMP_NI
	VCMP_NS
)

var vcmpNames = [16]string{
	"FL", "EQ", "LT", "LE", "TR", "NE", "GE", "GT",
	"EZ", "EN", "EI", "ES", "NZ", "NN", "NI", "NS",
}

func vfpuCompare(cond uint32, a, b float32) bool {
	switch cond {
	case VCMP_FL:
		return false
	case VCMP_EQ:
		return a == b
	case VCMP_LT:
		return a < b
	case VCMP_LE:
		return a <= b
	case VCMP_TR:
		return true
	case VCMP_NE:
		return a != b
	case VCMP_GE:
		return a >= b
	case VCMP_GT:
		return a > b
	case VCMP_EZ:
		return a == 0
	case VCMP_EN:
		return isNaN32(a)
	case VCMP_EI:
		return isInf32(a)
	case VCMP_ES:
		return isNaN32(a) || isInf32(a)
	case VCMP_NZ:
		return a != 0
	case VCMP_NN:
		return !isNaN32(a)
	case VCMP_NI:
		return !isInf32(a)
	}
	return !(isNaN32(a) || isInf32(a))
}

// Compares lane by lane into VfpuCC, bit 4 is set when any lane matched,
// bit 5 when all of them did
func opVCMP(cpu *CPU, i Instruction) Signal {
	size := i.VectorSize()
	s, t := cpu.vsf(i, size), cpu.vtf(i, size)

	var cc uint32
	all := true
	for n := 0; n < size; n++ {
		if vfpuCompare(i.Imm4(), s[n], t[n]) {
			cc |= 1 << n
		} else {
			all = false
		}
	}
	if cc != 0 {
		cc |= 1 << 4
	}
	if all {
		cc |= 1 << 5
	}

	affected := uint32(0x30) | (1<<size - 1)
	cpu.VfpuCC = (cpu.VfpuCC &^ affected) | (cc & affected)
	cpu.clearPrefixes()
	return SIGNAL_CONTINUE
}

// Conditional move on VfpuCC. imm3 < 6 tests one bit for every lane, 6
// tests each lane's own bit
func vfpuCmov(cpu *CPU, i Instruction, want bool) Signal {
	size := i.VectorSize()
	s := cpu.vs(i, size)
	d := cpu.loadVector(i.VD(), size)

	switch imm := i.CmovImm3(); {
	case imm < 6:
		if ((cpu.VfpuCC>>imm)&1 != 0) == want {
			d = s
		}
	case imm == 6:
		for n := 0; n < size; n++ {
			if ((cpu.VfpuCC>>n)&1 != 0) == want {
				d[n] = s[n]
			}
		}
	}
	cpu.vdi(i, size, d)
	return SIGNAL_CONTINUE
}

func opVCMOVT(cpu *CPU, i Instruction) Signal {
	return vfpuCmov(cpu, i, true)
}

func opVCMOVF(cpu *CPU, i Instruction) Signal {
	return vfpuCmov(cpu, i, false)
}

// Loads the vcst constant selected by imm5 into every lane
func opVCST(cpu *CPU, i Instruction) Signal {
	idx := i.Imm5()
	if idx >= uint32(len(VfpuConstants)) {
		return cpu.raise(&InvalidOpcodeError{PC: cpu.PC, Word: i})
	}
	v := VfpuConstants[idx].Value
	cpu.vdf(i, i.VectorSize(), [4]float32{v, v, v, v})
	return SIGNAL_CONTINUE
}

// Places cos/sin of the vs angle (in quarter turns) into the lanes named
// by imm5: bits [1:0] the cosine lane, bits [3:2] the sine lane, bit 4
// negates the sine. When both name the same lane every other lane gets the
// sine, otherwise zero
func opVROT(cpu *CPU, i Instruction) Signal {
	size := i.VectorSize()
	imm := i.Imm5()
	cosLane := int(imm & 3)
	sinLane := int(imm>>2) & 3

	a := cpu.vsf(i, 1)[0]
	sine, cosine := sinQuarter(a), cosQuarter(a)
	if imm&0x10 != 0 {
		sine = -sine
	}

	var d [4]float32
	for n := 0; n < size; n++ {
		switch {
		case n == cosLane:
			d[n] = cosine
		case n == sinLane || sinLane == cosLane:
			d[n] = sine
		}
	}
	cpu.vdf(i, size, d)
	return SIGNAL_CONTINUE
}

// Float to int conversions, vs is scaled by 2^imm5 first
func vfpuF2I(cpu *CPU, i Instruction, mode uint32) Signal {
	size := i.VectorSize()
	s := cpu.vsf(i, size)
	scale := int(i.Imm5())
	var d [4]uint32
	for n := 0; n < size; n++ {
		d[n] = roundToInt32(float32(math.Ldexp(float64(s[n]), scale)), mode)
	}
	cpu.vdi(i, size, d)
	return SIGNAL_CONTINUE
}

func opVF2IN(cpu *CPU, i Instruction) Signal { return vfpuF2I(cpu, i, ROUND_NEAREST) }
func opVF2IZ(cpu *CPU, i Instruction) Signal { return vfpuF2I(cpu, i, ROUND_ZERO) }
func opVF2IU(cpu *CPU, i Instruction) Signal { return vfpuF2I(cpu, i, ROUND_CEIL) }
func opVF2ID(cpu *CPU, i Instruction) Signal { return vfpuF2I(cpu, i, ROUND_FLOOR) }

// Int to float, the result is divided by 2^imm5
func opVI2F(cpu *CPU, i Instruction) Signal {
	size := i.VectorSize()
	s := cpu.vs(i, size)
	scale := int(i.Imm5())
	var d [4]float32
	for n := 0; n < size; n++ {
		d[n] = float32(math.Ldexp(float64(int32(s[n])), -scale))
	}
	cpu.vdf(i, size, d)
	return SIGNAL_CONTINUE
}

// Unpacks the 4 bytes of a single into the top byte of each lane
func opVC2I(cpu *CPU, i Instruction) Signal {
	v := cpu.vs(i, 1)[0]
	var d [4]uint32
	for n := 0; n < 4; n++ {
		d[n] = (v << ((3 - n) * 8)) & 0xff000000
	}
	cpu.vdi(i, 4, d)
	return SIGNAL_CONTINUE
}

// Unpacks the 4 unsigned bytes of a single, each spread over bits [30:0]
func opVUC2I(cpu *CPU, i Instruction) Signal {
	v := cpu.vs(i, 1)[0]
	var d [4]uint32
	for n := 0; n < 4; n++ {
		d[n] = ((((v >> (n * 8)) & 0xff) * 0x01010101) >> 1) &^ 0x80000000
	}
	cpu.vdi(i, 4, d)
	return SIGNAL_CONTINUE
}

// Unpacks halfwords into the top of each lane. Each source lane yields two
// destination lanes
func vfpuS2I(cpu *CPU, i Instruction, shift uint32) Signal {
	size := i.VectorSize()
	if size > 2 {
		size = 2
	}
	s := cpu.vs(i, size)
	var d [4]uint32
	for n := 0; n < size; n++ {
		d[n*2] = Extract(s[n], 0, 16) << shift
		d[n*2+1] = Extract(s[n], 16, 16) << shift
	}
	cpu.vdi(i, size*2, d)
	return SIGNAL_CONTINUE
}

func opVS2I(cpu *CPU, i Instruction) Signal  { return vfpuS2I(cpu, i, 16) }
func opVUS2I(cpu *CPU, i Instruction) Signal { return vfpuS2I(cpu, i, 15) }

// Packs the top byte of 4 lanes into a single
func vfpuI2C(cpu *CPU, i Instruction, unsigned bool) Signal {
	s := cpu.vs(i, 4)
	var d uint32
	for n := 0; n < 4; n++ {
		v := s[n]
		if unsigned {
			if int32(v) < 0 {
				v = 0
			}
			v >>= 23
		} else {
			v >>= 24
		}
		d |= (v & 0xff) << (n * 8)
	}
	cpu.vdi(i, 1, [4]uint32{d})
	return SIGNAL_CONTINUE
}

func opVI2C(cpu *CPU, i Instruction) Signal  { return vfpuI2C(cpu, i, false) }
func opVI2UC(cpu *CPU, i Instruction) Signal { return vfpuI2C(cpu, i, true) }

// Packs the top halfword of lane pairs into one lane
func vfpuI2S(cpu *CPU, i Instruction, unsigned bool) Signal {
	size := i.VectorSize() &^ 1
	if size == 0 {
		size = 2
	}
	s := cpu.vs(i, size)
	var d [4]uint32
	for n := 0; n < size; n++ {
		v := s[n]
		if unsigned {
			if int32(v) < 0 {
				v = 0
			}
			v >>= 15
		} else {
			v >>= 16
		}
		d[n/2] |= (v & 0xffff) << ((n & 1) * 16)
	}
	cpu.vdi(i, size/2, d)
	return SIGNAL_CONTINUE
}

func opVI2S(cpu *CPU, i Instruction) Signal  { return vfpuI2S(cpu, i, false) }
func opVI2US(cpu *CPU, i Instruction) Signal { return vfpuI2S(cpu, i, true) }

func rgba8888To4444(c uint32) uint32 {
	return (c>>4)&0xf | ((c>>12)&0xf)<<4 | ((c>>20)&0xf)<<8 | ((c>>28)&0xf)<<12
}

func rgba8888To5551(c uint32) uint32 {
	return (c>>3)&0x1f | ((c>>11)&0x1f)<<5 | ((c>>19)&0x1f)<<10 | ((c>>31)&1)<<15
}

func rgba8888To5650(c uint32) uint32 {
	return (c>>3)&0x1f | ((c>>10)&0x3f)<<5 | ((c>>19)&0x1f)<<11
}

// Packs 4 RGBA8888 lanes into 2 lanes of two 16 bit colors
func vfpuColorPack(cpu *CPU, i Instruction, pack func(uint32) uint32) Signal {
	s := cpu.vs(i, 4)
	d := [4]uint32{
		pack(s[0]) | pack(s[1])<<16,
		pack(s[2]) | pack(s[3])<<16,
	}
	cpu.vdi(i, 2, d)
	return SIGNAL_CONTINUE
}

func opVT4444(cpu *CPU, i Instruction) Signal { return vfpuColorPack(cpu, i, rgba8888To4444) }
func opVT5551(cpu *CPU, i Instruction) Signal { return vfpuColorPack(cpu, i, rgba8888To5551) }
func opVT5650(cpu *CPU, i Instruction) Signal { return vfpuColorPack(cpu, i, rgba8888To5650) }

func opVMZERO(cpu *CPU, i Instruction) Signal {
	cpu.storeMatrix(i.VD(), i.VectorSize(), [16]float32{})
	return SIGNAL_CONTINUE
}

func opVMONE(cpu *CPU, i Instruction) Signal {
	var m [16]float32
	for n := range m {
		m[n] = 1
	}
	cpu.storeMatrix(i.VD(), i.VectorSize(), m)
	return SIGNAL_CONTINUE
}

func opVMIDT(cpu *CPU, i Instruction) Signal {
	side := i.VectorSize()
	var m [16]float32
	for n := 0; n < side; n++ {
		m[n*4+n] = 1
	}
	cpu.storeMatrix(i.VD(), side, m)
	return SIGNAL_CONTINUE
}

func opVMMOV(cpu *CPU, i Instruction) Signal {
	side := i.VectorSize()
	cpu.storeMatrix(i.VD(), side, cpu.loadMatrix(i.VS(), side))
	return SIGNAL_CONTINUE
}

// Matrix product. Cell (b, a) of vd is the dot product of row b of vs and
// row a of vt, so vs is taken transposed
func opVMMUL(cpu *CPU, i Instruction) Signal {
	side := i.VectorSize()
	s := cpu.loadMatrix(i.VS(), side)
	t := cpu.loadMatrix(i.VT(), side)
	var d [16]float32
	for a := 0; a < side; a++ {
		for b := 0; b < side; b++ {
			var sum float32
			for c := 0; c < side; c++ {
				sum += s[b*4+c] * t[a*4+c]
			}
			d[a*4+b] = sum
		}
	}
	cpu.storeMatrix(i.VD(), side, d)
	return SIGNAL_CONTINUE
}

// Scales every cell of the matrix by the scalar vt
func opVMSCL(cpu *CPU, i Instruction) Signal {
	side := i.VectorSize()
	m := cpu.loadMatrix(i.VS(), side)
	scale := cpu.vtf(i, 1)[0]
	for n := range m {
		m[n] *= scale
	}
	cpu.storeMatrix(i.VD(), side, m)
	return SIGNAL_CONTINUE
}

// vtfmN/vhtfmN: matrix by vector transform. Bits [25:23] hold N-1, the
// homogeneous forms read one lane less from vt and add the last column
func opVTFM(cpu *CPU, i Instruction) Signal {
	ins := int(uint32(i)>>23) & 7
	side := ins + 1
	n := i.VectorSize()
	homogeneous := n == ins

	m := cpu.loadMatrix(i.VS(), side)
	t := cpu.vtf(i, n)
	var d [4]float32
	for r := 0; r < side; r++ {
		var sum float32
		for k := 0; k < n; k++ {
			sum += m[r*4+k] * t[k]
		}
		if homogeneous {
			sum += m[r*4+ins]
		}
		d[r] = sum
	}
	cpu.vdf(i, side, d)
	return SIGNAL_CONTINUE
}

// Move From VFPU, a raw bit copy of a single
func opMFV(cpu *CPU, i Instruction) Signal {
	cpu.SetReg(i.T(), cpu.Vfpr[VectorRegs(i.VD(), 1)[0]])
	return SIGNAL_CONTINUE
}

// Move To VFPU
func opMTV(cpu *CPU, i Instruction) Signal {
	cpu.Vfpr[VectorRegs(i.VD(), 1)[0]] = cpu.Reg(i.T())
	return SIGNAL_CONTINUE
}

// Reads a VFPU control register, unknown ones read as zero
func (cpu *CPU) VfpuCtrl(n uint32) uint32 {
	switch n {
	case VFPU_CTRL_SPREFIX:
		return cpu.PfxS
	case VFPU_CTRL_TPREFIX:
		return cpu.PfxT
	case VFPU_CTRL_DPREFIX:
		return cpu.PfxD
	case VFPU_CTRL_CC:
		return cpu.VfpuCC
	}
	return 0
}

func (cpu *CPU) SetVfpuCtrl(n, val uint32) {
	switch n {
	case VFPU_CTRL_SPREFIX:
		cpu.PfxS = val
	case VFPU_CTRL_TPREFIX:
		cpu.PfxT = val
	case VFPU_CTRL_DPREFIX:
		cpu.PfxD = val
	case VFPU_CTRL_CC:
		cpu.VfpuCC = val & 0x3f
	}
}

func opMFVC(cpu *CPU, i Instruction) Signal {
	cpu.SetReg(i.T(), cpu.VfpuCtrl(i.Imm7()&0xf))
	return SIGNAL_CONTINUE
}

func opMTVC(cpu *CPU, i Instruction) Signal {
	cpu.SetVfpuCtrl(i.Imm7()&0xf, cpu.Reg(i.T()))
	return SIGNAL_CONTINUE
}

func opVPFXS(cpu *CPU, i Instruction) Signal {
	cpu.PfxS, cpu.PfxSOn = uint32(i)&0xffffff, true
	return SIGNAL_CONTINUE
}

func opVPFXT(cpu *CPU, i Instruction) Signal {
	cpu.PfxT, cpu.PfxTOn = uint32(i)&0xffffff, true
	return SIGNAL_CONTINUE
}

func opVPFXD(cpu *CPU, i Instruction) Signal {
	cpu.PfxD, cpu.PfxDOn = uint32(i)&0xffffff, true
	return SIGNAL_CONTINUE
}

// Loads a signed 16 bit integer as a float
func opVIIM(cpu *CPU, i Instruction) Signal {
	cpu.SetV(VectorRegs(i.VT(), 1)[0], float32(int16(i.Imm())))
	return SIGNAL_CONTINUE
}

// Loads a half precision float
func opVFIM(cpu *CPU, i Instruction) Signal {
	cpu.SetV(VectorRegs(i.VT(), 1)[0], halfToFloat(uint16(i.Imm())))
	return SIGNAL_CONTINUE
}

// Effective address of VFPU loads and stores
func (cpu *CPU) vaddr(i Instruction) uint32 {
	return cpu.Reg(i.S()) + i.Imm14()
}

func opLV_S(cpu *CPU, i Instruction) Signal {
	cpu.Vfpr[VectorRegs(i.VT52(), 1)[0]] = cpu.Load32(cpu.vaddr(i))
	return SIGNAL_CONTINUE
}

func opSV_S(cpu *CPU, i Instruction) Signal {
	cpu.Store32(cpu.vaddr(i), cpu.Vfpr[VectorRegs(i.VT52(), 1)[0]])
	return SIGNAL_CONTINUE
}

func opLV_Q(cpu *CPU, i Instruction) Signal {
	addr := cpu.vaddr(i)
	regs := VectorRegs(i.VT51(), 4)
	for n := 0; n < 4; n++ {
		cpu.Vfpr[regs[n]] = cpu.Load32(addr + uint32(n)*4)
	}
	return SIGNAL_CONTINUE
}

func opSV_Q(cpu *CPU, i Instruction) Signal {
	addr := cpu.vaddr(i)
	regs := VectorRegs(i.VT51(), 4)
	for n := 0; n < 4; n++ {
		cpu.Store32(addr+uint32(n)*4, cpu.Vfpr[regs[n]])
	}
	return SIGNAL_CONTINUE
}

func opLVL_Q(cpu *CPU, i Instruction) Signal {
	q := cpu.loadVector(i.VT51(), 4)
	LoadQuadLeft(cpu, cpu.vaddr(i), &q)
	cpu.storeVector(i.VT51(), 4, q)
	return SIGNAL_CONTINUE
}

func opLVR_Q(cpu *CPU, i Instruction) Signal {
	q := cpu.loadVector(i.VT51(), 4)
	LoadQuadRight(cpu, cpu.vaddr(i), &q)
	cpu.storeVector(i.VT51(), 4, q)
	return SIGNAL_CONTINUE
}

func opSVL_Q(cpu *CPU, i Instruction) Signal {
	q := cpu.loadVector(i.VT51(), 4)
	StoreQuadLeft(cpu, cpu.vaddr(i), &q)
	return SIGNAL_CONTINUE
}

func opSVR_Q(cpu *CPU, i Instruction) Signal {
	q := cpu.loadVector(i.VT51(), 4)
	StoreQuadRight(cpu, cpu.vaddr(i), &q)
	return SIGNAL_CONTINUE
}
