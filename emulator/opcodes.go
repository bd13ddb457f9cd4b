package emulator

import (
	"strings"
)

// Semantic routine of one opcode. Handlers of plain instructions leave the
// PC alone, the stepper advances it; control transfer handlers (see
// FLAG_CONTROL) update PC/NPC themselves
type Handler func(cpu *CPU, i Instruction) Signal

type OpcodeFlags uint16

const (
	FLAG_BRANCH        OpcodeFlags = 1 << iota // PC relative branch
	FLAG_JUMP                                  // Absolute or register jump
	FLAG_LIKELY                                // Squashes the delay slot when not taken
	FLAG_LINK                                  // Writes a return address
	FLAG_TRAP                                  // syscall/break, moves the PC itself
	FLAG_VFPU                                  // Vector unit instruction
	FLAG_SIZED                                 // Mnemonic takes a .s/.p/.t/.q suffix
	FLAG_UNIMPLEMENTED                         // Decodes but is not modeled

	FLAG_CONTROL = FLAG_BRANCH | FLAG_JUMP | FLAG_TRAP
)

// An instruction encoding: `word & Mask == Value` selects it
type OpcodeEntry struct {
	Name    string
	Format  string // Disassembly template, see Disasm
	Value   uint32
	Mask    uint32
	Handler Handler
	Flags   OpcodeFlags
}

// Width of the named fields accepted in opcode patterns
var patternFields = map[string]int{
	"rs": 5, "rt": 5, "rd": 5, "sa": 5, "pos": 5, "msb": 5,
	"fs": 5, "ft": 5, "fd": 5, "c0dr": 5, "c0cr": 5, "c1cr": 5, "func": 5,
	"imm3": 3, "imm4": 4, "imm5": 5, "imm7": 7, "imm8": 8, "imm14": 14,
	"imm16": 16, "imm24": 24, "imm26": 26, "code": 20,
	"vd": 7, "vs": 7, "vt": 7, "vt5": 5, "vt1": 1, "vt2": 2,
	"one": 1, "two": 1, "x": 1,
}

// Compiles a pattern like "000000:rs:rt:rd:00000:100000" into value/mask.
// Runs of 0/1 are fixed bits, names from patternFields are variable
func compilePattern(pattern string) (value, mask uint32) {
	bits := 0
	for _, part := range strings.Split(pattern, ":") {
		if width, ok := patternFields[part]; ok {
			value <<= width
			mask <<= width
			bits += width
			continue
		}
		for _, c := range part {
			value <<= 1
			mask = mask<<1 | 1
			switch c {
			case '0':
			case '1':
				value |= 1
			default:
				panicFmt("opcodes: bad token %q in pattern %q", part, pattern)
			}
			bits++
		}
	}
	if bits != 32 {
		panicFmt("opcodes: pattern %q is %d bits long", pattern, bits)
	}
	return value, mask
}

func op(name, pattern, format string, handler Handler, flags OpcodeFlags) *OpcodeEntry {
	value, mask := compilePattern(pattern)
	return &OpcodeEntry{
		Name:    name,
		Format:  format,
		Value:   value,
		Mask:    mask,
		Handler: handler,
		Flags:   flags,
	}
}

// Entry of instructions that are decoded but not modeled
func unimpl(name, pattern, format string, flags OpcodeFlags) *OpcodeEntry {
	return op(name, pattern, format, opUnimplemented, flags|FLAG_UNIMPLEMENTED)
}

// Every encoding matching no entry
var INVALID_OPCODE = &OpcodeEntry{
	Name:    "invalid",
	Format:  "",
	Handler: opInvalid,
}

// The Allegrex instruction set. Filled in by init so handlers may decode
var Opcodes []*OpcodeEntry

const (
	fb = FLAG_BRANCH
	fl = FLAG_BRANCH | FLAG_LIKELY
	fv = FLAG_VFPU
	fz = FLAG_VFPU | FLAG_SIZED
)

func allegrexOpcodes() []*OpcodeEntry {
	return []*OpcodeEntry{
		// ALU, register
		op("add", "000000:rs:rt:rd:00000:100000", "%d, %s, %t", opADDU, 0),
		op("addu", "000000:rs:rt:rd:00000:100001", "%d, %s, %t", opADDU, 0),
		op("sub", "000000:rs:rt:rd:00000:100010", "%d, %s, %t", opSUBU, 0),
		op("subu", "000000:rs:rt:rd:00000:100011", "%d, %s, %t", opSUBU, 0),
		op("and", "000000:rs:rt:rd:00000:100100", "%d, %s, %t", opAND, 0),
		op("or", "000000:rs:rt:rd:00000:100101", "%d, %s, %t", opOR, 0),
		op("xor", "000000:rs:rt:rd:00000:100110", "%d, %s, %t", opXOR, 0),
		op("nor", "000000:rs:rt:rd:00000:100111", "%d, %s, %t", opNOR, 0),
		op("slt", "000000:rs:rt:rd:00000:101010", "%d, %s, %t", opSLT, 0),
		op("sltu", "000000:rs:rt:rd:00000:101011", "%d, %s, %t", opSLTU, 0),
		op("max", "000000:rs:rt:rd:00000:101100", "%d, %s, %t", opMAX, 0),
		op("min", "000000:rs:rt:rd:00000:101101", "%d, %s, %t", opMIN, 0),
		op("movz", "000000:rs:rt:rd:00000:001010", "%d, %s, %t", opMOVZ, 0),
		op("movn", "000000:rs:rt:rd:00000:001011", "%d, %s, %t", opMOVN, 0),

		// Shifts
		op("sll", "000000:00000:rt:rd:sa:000000", "%d, %t, %a", opSLL, 0),
		op("srl", "000000:00000:rt:rd:sa:000010", "%d, %t, %a", opSRL, 0),
		op("rotr", "000000:00001:rt:rd:sa:000010", "%d, %t, %a", opROTR, 0),
		op("sra", "000000:00000:rt:rd:sa:000011", "%d, %t, %a", opSRA, 0),
		op("sllv", "000000:rs:rt:rd:00000:000100", "%d, %t, %s", opSLLV, 0),
		op("srlv", "000000:rs:rt:rd:00000:000110", "%d, %t, %s", opSRLV, 0),
		op("rotrv", "000000:rs:rt:rd:00001:000110", "%d, %t, %s", opROTRV, 0),
		op("srav", "000000:rs:rt:rd:00000:000111", "%d, %t, %s", opSRAV, 0),

		// HI/LO
		op("mfhi", "000000:00000:00000:rd:00000:010000", "%d", opMFHI, 0),
		op("mthi", "000000:rs:00000:00000:00000:010001", "%s", opMTHI, 0),
		op("mflo", "000000:00000:00000:rd:00000:010010", "%d", opMFLO, 0),
		op("mtlo", "000000:rs:00000:00000:00000:010011", "%s", opMTLO, 0),
		op("mult", "000000:rs:rt:00000:00000:011000", "%s, %t", opMULT, 0),
		op("multu", "000000:rs:rt:00000:00000:011001", "%s, %t", opMULTU, 0),
		op("div", "000000:rs:rt:00000:00000:011010", "%s, %t", opDIV, 0),
		op("divu", "000000:rs:rt:00000:00000:011011", "%s, %t", opDIVU, 0),
		op("madd", "000000:rs:rt:00000:00000:011100", "%s, %t", opMADD, 0),
		op("maddu", "000000:rs:rt:00000:00000:011101", "%s, %t", opMADDU, 0),
		op("msub", "000000:rs:rt:00000:00000:101110", "%s, %t", opMSUB, 0),
		op("msubu", "000000:rs:rt:00000:00000:101111", "%s, %t", opMSUBU, 0),
		op("clz", "000000:rs:00000:rd:00000:010110", "%d, %s", opCLZ, 0),
		op("clo", "000000:rs:00000:rd:00000:010111", "%d, %s", opCLO, 0),

		// Jumps and traps
		op("jr", "000000:rs:00000:00000:00000:001000", "%s", opJR, FLAG_JUMP),
		op("jalr", "000000:rs:00000:rd:00000:001001", "%d, %s", opJALR, FLAG_JUMP|FLAG_LINK),
		op("syscall", "000000:code:001100", "%C", opSYSCALL, FLAG_TRAP),
		op("break", "000000:code:001101", "%C", opBREAK, FLAG_TRAP),
		op("sync", "000000:00000:00000:00000:00000:001111", "", opNOP, 0),
		op("j", "000010:imm26", "%j", opJ, FLAG_JUMP),
		op("jal", "000011:imm26", "%j", opJAL, FLAG_JUMP|FLAG_LINK),

		// Branches
		op("beq", "000100:rs:rt:imm16", "%s, %t, %O", opBEQ, fb),
		op("bne", "000101:rs:rt:imm16", "%s, %t, %O", opBNE, fb),
		op("blez", "000110:rs:00000:imm16", "%s, %O", opBLEZ, fb),
		op("bgtz", "000111:rs:00000:imm16", "%s, %O", opBGTZ, fb),
		op("beql", "010100:rs:rt:imm16", "%s, %t, %O", opBEQL, fl),
		op("bnel", "010101:rs:rt:imm16", "%s, %t, %O", opBNEL, fl),
		op("blezl", "010110:rs:00000:imm16", "%s, %O", opBLEZL, fl),
		op("bgtzl", "010111:rs:00000:imm16", "%s, %O", opBGTZL, fl),
		op("bltz", "000001:rs:00000:imm16", "%s, %O", opBLTZ, fb),
		op("bgez", "000001:rs:00001:imm16", "%s, %O", opBGEZ, fb),
		op("bltzl", "000001:rs:00010:imm16", "%s, %O", opBLTZL, fl),
		op("bgezl", "000001:rs:00011:imm16", "%s, %O", opBGEZL, fl),
		op("bltzal", "000001:rs:10000:imm16", "%s, %O", opBLTZAL, fb|FLAG_LINK),
		op("bgezal", "000001:rs:10001:imm16", "%s, %O", opBGEZAL, fb|FLAG_LINK),
		op("bltzall", "000001:rs:10010:imm16", "%s, %O", opBLTZALL, fl|FLAG_LINK),
		op("bgezall", "000001:rs:10011:imm16", "%s, %O", opBGEZALL, fl|FLAG_LINK),

		// ALU, immediate
		op("addi", "001000:rs:rt:imm16", "%t, %s, %i", opADDIU, 0),
		op("addiu", "001001:rs:rt:imm16", "%t, %s, %i", opADDIU, 0),
		op("slti", "001010:rs:rt:imm16", "%t, %s, %i", opSLTI, 0),
		op("sltiu", "001011:rs:rt:imm16", "%t, %s, %i", opSLTIU, 0),
		op("andi", "001100:rs:rt:imm16", "%t, %s, %I", opANDI, 0),
		op("ori", "001101:rs:rt:imm16", "%t, %s, %I", opORI, 0),
		op("xori", "001110:rs:rt:imm16", "%t, %s, %I", opXORI, 0),
		op("lui", "001111:00000:rt:imm16", "%t, %I", opLUI, 0),

		// Bit field manipulation
		op("ext", "011111:rs:rt:msb:pos:000000", "%t, %s, %a, %E", opEXT, 0),
		op("ins", "011111:rs:rt:msb:pos:000100", "%t, %s, %a, %N", opINS, 0),
		op("wsbh", "011111:00000:rt:rd:00010:100000", "%d, %t", opWSBH, 0),
		op("wsbw", "011111:00000:rt:rd:00011:100000", "%d, %t", opWSBW, 0),
		op("seb", "011111:00000:rt:rd:10000:100000", "%d, %t", opSEB, 0),
		op("bitrev", "011111:00000:rt:rd:10100:100000", "%d, %t", opBITREV, 0),
		op("seh", "011111:00000:rt:rd:11000:100000", "%d, %t", opSEH, 0),

		// Memory
		op("lb", "100000:rs:rt:imm16", "%t, %i(%s)", opLB, 0),
		op("lh", "100001:rs:rt:imm16", "%t, %i(%s)", opLH, 0),
		op("lwl", "100010:rs:rt:imm16", "%t, %i(%s)", opLWL, 0),
		op("lw", "100011:rs:rt:imm16", "%t, %i(%s)", opLW, 0),
		op("lbu", "100100:rs:rt:imm16", "%t, %i(%s)", opLBU, 0),
		op("lhu", "100101:rs:rt:imm16", "%t, %i(%s)", opLHU, 0),
		op("lwr", "100110:rs:rt:imm16", "%t, %i(%s)", opLWR, 0),
		op("sb", "101000:rs:rt:imm16", "%t, %i(%s)", opSB, 0),
		op("sh", "101001:rs:rt:imm16", "%t, %i(%s)", opSH, 0),
		op("swl", "101010:rs:rt:imm16", "%t, %i(%s)", opSWL, 0),
		op("sw", "101011:rs:rt:imm16", "%t, %i(%s)", opSW, 0),
		op("swr", "101110:rs:rt:imm16", "%t, %i(%s)", opSWR, 0),
		op("cache", "101111:rs:func:imm16", "%u, %i(%s)", opNOP, 0),
		op("ll", "110000:rs:rt:imm16", "%t, %i(%s)", opLL, 0),
		op("sc", "111000:rs:rt:imm16", "%t, %i(%s)", opSC, 0),
		op("lwc1", "110001:rs:ft:imm16", "%T, %i(%s)", opLWC1, 0),
		op("swc1", "111001:rs:ft:imm16", "%T, %i(%s)", opSWC1, 0),

		// Special2
		op("mfic", "011100:00000:rt:00000:00000:100100", "%t", opMFIC, 0),
		op("mtic", "011100:00000:rt:00000:00000:100110", "%t", opMTIC, 0),
		unimpl("halt", "011100:00000:00000:00000:00000:000000", "", 0),
		unimpl("mfdr", "011100:00000:rt:c0dr:00000:111101", "%t, %c", 0),
		unimpl("mtdr", "011100:00100:rt:c0dr:00000:111101", "%t, %c", 0),
		unimpl("dret", "011100:00000:00000:00000:00000:111110", "", 0),
		unimpl("dbreak", "011100:00000:00000:00000:00000:111111", "", 0),

		// COP0
		unimpl("mfc0", "010000:00000:rt:c0dr:00000:000000", "%t, %c", 0),
		unimpl("cfc0", "010000:00010:rt:c0cr:00000:000000", "%t, %c", 0),
		unimpl("mtc0", "010000:00100:rt:c0dr:00000:000000", "%t, %c", 0),
		unimpl("ctc0", "010000:00110:rt:c0cr:00000:000000", "%t, %c", 0),
		unimpl("eret", "010000:10000:00000:00000:00000:011000", "", 0),

		// COP1
		op("mfc1", "010001:00000:rt:fs:00000:000000", "%t, %S", opMFC1, 0),
		op("cfc1", "010001:00010:rt:c1cr:00000:000000", "%t, %c", opCFC1, 0),
		op("mtc1", "010001:00100:rt:fs:00000:000000", "%t, %S", opMTC1, 0),
		op("ctc1", "010001:00110:rt:c1cr:00000:000000", "%t, %c", opCTC1, 0),
		op("bc1f", "010001:01000:00000:imm16", "%O", opBC1F, fb),
		op("bc1t", "010001:01000:00001:imm16", "%O", opBC1T, fb),
		op("bc1fl", "010001:01000:00010:imm16", "%O", opBC1FL, fl),
		op("bc1tl", "010001:01000:00011:imm16", "%O", opBC1TL, fl),
		op("add.s", "010001:10000:ft:fs:fd:000000", "%D, %S, %T", opADD_S, 0),
		op("sub.s", "010001:10000:ft:fs:fd:000001", "%D, %S, %T", opSUB_S, 0),
		op("mul.s", "010001:10000:ft:fs:fd:000010", "%D, %S, %T", opMUL_S, 0),
		op("div.s", "010001:10000:ft:fs:fd:000011", "%D, %S, %T", opDIV_S, 0),
		op("sqrt.s", "010001:10000:00000:fs:fd:000100", "%D, %S", opSQRT_S, 0),
		op("abs.s", "010001:10000:00000:fs:fd:000101", "%D, %S", opABS_S, 0),
		op("mov.s", "010001:10000:00000:fs:fd:000110", "%D, %S", opMOV_S, 0),
		op("neg.s", "010001:10000:00000:fs:fd:000111", "%D, %S", opNEG_S, 0),
		op("round.w.s", "010001:10000:00000:fs:fd:001100", "%D, %S", opROUND_W_S, 0),
		op("trunc.w.s", "010001:10000:00000:fs:fd:001101", "%D, %S", opTRUNC_W_S, 0),
		op("ceil.w.s", "010001:10000:00000:fs:fd:001110", "%D, %S", opCEIL_W_S, 0),
		op("floor.w.s", "010001:10000:00000:fs:fd:001111", "%D, %S", opFLOOR_W_S, 0),
		op("cvt.w.s", "010001:10000:00000:fs:fd:100100", "%D, %S", opCVT_W_S, 0),
		op("cvt.s.w", "010001:10100:00000:fs:fd:100000", "%D, %S", opCVT_S_W, 0),
		op("c.f.s", "010001:10000:ft:fs:00000:110000", "%S, %T", opC_S, 0),
		op("c.un.s", "010001:10000:ft:fs:00000:110001", "%S, %T", opC_S, 0),
		op("c.eq.s", "010001:10000:ft:fs:00000:110010", "%S, %T", opC_S, 0),
		op("c.ueq.s", "010001:10000:ft:fs:00000:110011", "%S, %T", opC_S, 0),
		op("c.olt.s", "010001:10000:ft:fs:00000:110100", "%S, %T", opC_S, 0),
		op("c.ult.s", "010001:10000:ft:fs:00000:110101", "%S, %T", opC_S, 0),
		op("c.ole.s", "010001:10000:ft:fs:00000:110110", "%S, %T", opC_S, 0),
		op("c.ule.s", "010001:10000:ft:fs:00000:110111", "%S, %T", opC_S, 0),
		op("c.sf.s", "010001:10000:ft:fs:00000:111000", "%S, %T", opC_S, 0),
		op("c.ngle.s", "010001:10000:ft:fs:00000:111001", "%S, %T", opC_S, 0),
		op("c.seq.s", "010001:10000:ft:fs:00000:111010", "%S, %T", opC_S, 0),
		op("c.ngl.s", "010001:10000:ft:fs:00000:111011", "%S, %T", opC_S, 0),
		op("c.lt.s", "010001:10000:ft:fs:00000:111100", "%S, %T", opC_S, 0),
		op("c.nge.s", "010001:10000:ft:fs:00000:111101", "%S, %T", opC_S, 0),
		op("c.le.s", "010001:10000:ft:fs:00000:111110", "%S, %T", opC_S, 0),
		op("c.ngt.s", "010001:10000:ft:fs:00000:111111", "%S, %T", opC_S, 0),

		// VFPU transfers and branches
		op("mfv", "010010:00:011:rt:0:0000000:0:vd", "%t, %v1d", opMFV, fv),
		op("mfvc", "010010:00:011:rt:0:0000000:1:vd", "%t, %7", opMFVC, fv),
		op("mtv", "010010:00:111:rt:0:0000000:0:vd", "%t, %v1d", opMTV, fv),
		op("mtvc", "010010:00:111:rt:0:0000000:1:vd", "%t, %7", opMTVC, fv),
		op("bvf", "010010:01:000:imm3:00:imm16", "%3, %O", opBVF, fb|fv),
		op("bvt", "010010:01:000:imm3:01:imm16", "%3, %O", opBVT, fb|fv),
		op("bvfl", "010010:01:000:imm3:10:imm16", "%3, %O", opBVFL, fl|fv),
		op("bvtl", "010010:01:000:imm3:11:imm16", "%3, %O", opBVTL, fl|fv),
		unimpl("mfvme", "011010:rs:rt:imm16", "%t, %I", fv),
		unimpl("mtvme", "101100:rs:rt:imm16", "%t, %I", fv),

		// VFPU binary
		op("vadd", "011000:000:vt:two:vs:one:vd", "%v0d, %v0s, %v0t", opVADD, fz),
		op("vsub", "011000:001:vt:two:vs:one:vd", "%v0d, %v0s, %v0t", opVSUB, fz),
		unimpl("vsbn", "011000:010:vt:two:vs:one:vd", "%v0d, %v0s, %v0t", fz),
		op("vdiv", "011000:111:vt:two:vs:one:vd", "%v0d, %v0s, %v0t", opVDIV, fz),
		op("vmul", "011001:000:vt:two:vs:one:vd", "%v0d, %v0s, %v0t", opVMUL, fz),
		op("vdot", "011001:001:vt:two:vs:one:vd", "%v1d, %v0s, %v0t", opVDOT, fz),
		op("vscl", "011001:010:vt:two:vs:one:vd", "%v0d, %v0s, %v1t", opVSCL, fz),
		op("vhdp", "011001:100:vt:two:vs:one:vd", "%v1d, %v0s, %v0t", opVHDP, fz),
		op("vcrs.t", "011001:101:vt:1:vs:0:vd", "%v3d, %v3s, %v3t", opVCRS_T, fv),
		op("vdet", "011001:110:vt:two:vs:one:vd", "%v1d, %v0s, %v0t", opVDET, fz),
		op("vcmp", "011011:000:vt:two:vs:one:000:imm4", "%r, %v0s, %v0t", opVCMP, fz),
		op("vmin", "011011:010:vt:two:vs:one:vd", "%v0d, %v0s, %v0t", opVMIN, fz),
		op("vmax", "011011:011:vt:two:vs:one:vd", "%v0d, %v0s, %v0t", opVMAX, fz),
		op("vscmp", "011011:101:vt:two:vs:one:vd", "%v0d, %v0s, %v0t", opVSCMP, fz),
		op("vsge", "011011:110:vt:two:vs:one:vd", "%v0d, %v0s, %v0t", opVSGE, fz),
		op("vslt", "011011:111:vt:two:vs:one:vd", "%v0d, %v0s, %v0t", opVSLT, fz),

		// VFPU unary
		op("vmov", "110100:00:000:0:0000:two:vs:one:vd", "%v0d, %v0s", opVMOV, fz),
		op("vabs", "110100:00:000:0:0001:two:vs:one:vd", "%v0d, %v0s", opVABS, fz),
		op("vneg", "110100:00:000:0:0010:two:vs:one:vd", "%v0d, %v0s", opVNEG, fz),
		op("vidt", "110100:00:000:0:0011:two:0000000:one:vd", "%v0d", opVIDT, fz),
		op("vsat0", "110100:00:000:0:0100:two:vs:one:vd", "%v0d, %v0s", opVSAT0, fz),
		op("vsat1", "110100:00:000:0:0101:two:vs:one:vd", "%v0d, %v0s", opVSAT1, fz),
		op("vzero", "110100:00:000:0:0110:two:0000000:one:vd", "%v0d", opVZERO, fz),
		op("vone", "110100:00:000:0:0111:two:0000000:one:vd", "%v0d", opVONE, fz),
		op("vrcp", "110100:00:000:1:0000:two:vs:one:vd", "%v0d, %v0s", opVRCP, fz),
		op("vrsq", "110100:00:000:1:0001:two:vs:one:vd", "%v0d, %v0s", opVRSQ, fz),
		op("vsin", "110100:00:000:1:0010:two:vs:one:vd", "%v0d, %v0s", opVSIN, fz),
		op("vcos", "110100:00:000:1:0011:two:vs:one:vd", "%v0d, %v0s", opVCOS, fz),
		op("vexp2", "110100:00:000:1:0100:two:vs:one:vd", "%v0d, %v0s", opVEXP2, fz),
		op("vlog2", "110100:00:000:1:0101:two:vs:one:vd", "%v0d, %v0s", opVLOG2, fz),
		op("vsqrt", "110100:00:000:1:0110:two:vs:one:vd", "%v0d, %v0s", opVSQRT, fz),
		op("vasin", "110100:00:000:1:0111:two:vs:one:vd", "%v0d, %v0s", opVASIN, fz),
		op("vnrcp", "110100:00:000:1:1000:two:vs:one:vd", "%v0d, %v0s", opVNRCP, fz),
		op("vnsin", "110100:00:000:1:1010:two:vs:one:vd", "%v0d, %v0s", opVNSIN, fz),
		op("vrexp2", "110100:00:000:1:1100:two:vs:one:vd", "%v0d, %v0s", opVREXP2, fz),
		unimpl("vrnds", "110100:00:001:00000:two:vs:one:0000000", "%v0s", fz),
		unimpl("vrndi", "110100:00:001:00001:two:0000000:one:vd", "%v0d", fz),
		unimpl("vrndf1", "110100:00:001:00010:two:0000000:one:vd", "%v0d", fz),
		unimpl("vrndf2", "110100:00:001:00011:two:0000000:one:vd", "%v0d", fz),
		unimpl("vf2h", "110100:00:001:10010:two:vs:one:vd", "%v0d, %v0s", fz),
		unimpl("vh2f", "110100:00:001:10011:two:vs:one:vd", "%v0d, %v0s", fz),
		unimpl("vsbz", "110100:00:001:10110:two:vs:one:vd", "%v0d, %v0s", fz),
		unimpl("vlgb", "110100:00:001:10111:two:vs:one:vd", "%v0d, %v0s", fz),
		op("vuc2i", "110100:00:001:11000:two:vs:one:vd", "%v0d, %v0s", opVUC2I, fz),
		op("vc2i", "110100:00:001:11001:two:vs:one:vd", "%v0d, %v0s", opVC2I, fz),
		op("vus2i", "110100:00:001:11010:two:vs:one:vd", "%v0d, %v0s", opVUS2I, fz),
		op("vs2i", "110100:00:001:11011:two:vs:one:vd", "%v0d, %v0s", opVS2I, fz),
		op("vi2uc", "110100:00:001:11100:two:vs:one:vd", "%v1d, %v0s", opVI2UC, fz),
		op("vi2c", "110100:00:001:11101:two:vs:one:vd", "%v1d, %v0s", opVI2C, fz),
		op("vi2us", "110100:00:001:11110:two:vs:one:vd", "%v0d, %v0s", opVI2US, fz),
		op("vi2s", "110100:00:001:11111:two:vs:one:vd", "%v0d, %v0s", opVI2S, fz),
		unimpl("vsrt1", "110100:00:010:00000:two:vs:one:vd", "%v0d, %v0s", fz),
		unimpl("vsrt2", "110100:00:010:00001:two:vs:one:vd", "%v0d, %v0s", fz),
		unimpl("vbfy1", "110100:00:010:00010:two:vs:one:vd", "%v0d, %v0s", fz),
		unimpl("vbfy2", "110100:00:010:00011:two:vs:one:vd", "%v0d, %v0s", fz),
		op("vocp", "110100:00:010:00100:two:vs:one:vd", "%v0d, %v0s", opVOCP, fz),
		unimpl("vsocp", "110100:00:010:00101:two:vs:one:vd", "%v0d, %v0s", fz),
		op("vfad", "110100:00:010:00110:two:vs:one:vd", "%v1d, %v0s", opVFAD, fz),
		op("vavg", "110100:00:010:00111:two:vs:one:vd", "%v1d, %v0s", opVAVG, fz),
		unimpl("vsrt3", "110100:00:010:01000:two:vs:one:vd", "%v0d, %v0s", fz),
		unimpl("vsrt4", "110100:00:010:01001:two:vs:one:vd", "%v0d, %v0s", fz),
		op("vsgn", "110100:00:010:01010:two:vs:one:vd", "%v0d, %v0s", opVSGN, fz),
		unimpl("vmfvc", "110100:00:010:10000:two:vs:one:vd", "%v1d, %7", fv),
		unimpl("vmtvc", "110100:00:010:10001:two:vs:one:vd", "%7, %v1s", fv),
		op("vt4444.q", "110100:00:010:11001:two:vs:one:vd", "%v2d, %v4s", opVT4444, fv),
		op("vt5551.q", "110100:00:010:11010:two:vs:one:vd", "%v2d, %v4s", opVT5551, fv),
		op("vt5650.q", "110100:00:010:11011:two:vs:one:vd", "%v2d, %v4s", opVT5650, fv),
		op("vcst", "110100:00:011:imm5:two:0000000:one:vd", "%v0d, %k", opVCST, fz),
		op("vf2in", "110100:10:000:imm5:two:vs:one:vd", "%v0d, %v0s, %5", opVF2IN, fz),
		op("vf2iz", "110100:10:001:imm5:two:vs:one:vd", "%v0d, %v0s, %5", opVF2IZ, fz),
		op("vf2iu", "110100:10:010:imm5:two:vs:one:vd", "%v0d, %v0s, %5", opVF2IU, fz),
		op("vf2id", "110100:10:011:imm5:two:vs:one:vd", "%v0d, %v0s, %5", opVF2ID, fz),
		op("vi2f", "110100:10:100:imm5:two:vs:one:vd", "%v0d, %v0s, %5", opVI2F, fz),
		op("vcmovt", "110100:10:101:00:imm3:two:vs:one:vd", "%v0d, %v0s, %Y", opVCMOVT, fz),
		op("vcmovf", "110100:10:101:01:imm3:two:vs:one:vd", "%v0d, %v0s, %Y", opVCMOVF, fz),
		unimpl("vwbn", "110100:11:imm8:two:vs:one:vd", "%v0d, %v0s, %8", fz),

		// VFPU prefixes and immediates
		op("vpfxs", "110111:00:imm24", "%X", opVPFXS, fv),
		op("vpfxt", "110111:01:imm24", "%X", opVPFXT, fv),
		op("vpfxd", "110111:10:imm24", "%X", opVPFXD, fv),
		op("viim", "110111:11:0:vt:imm16", "%v1t, %i", opVIIM, fv),
		op("vfim", "110111:11:1:vt:imm16", "%v1t, %f", opVFIM, fv),

		// VFPU matrix
		op("vmmul", "111100:000:vt:two:vs:one:vd", "%m0d, %m0s, %m0t", opVMMUL, fz),
		op("vhtfm2.p", "111100:001:vt:0:vs:0:vd", "%v2d, %m2s, %v1t", opVTFM, fv),
		op("vtfm2.p", "111100:001:vt:0:vs:1:vd", "%v2d, %m2s, %v2t", opVTFM, fv),
		op("vtfm3.t", "111100:010:vt:1:vs:0:vd", "%v3d, %m3s, %v3t", opVTFM, fv),
		op("vhtfm3.t", "111100:010:vt:0:vs:1:vd", "%v3d, %m3s, %v2t", opVTFM, fv),
		op("vhtfm4.q", "111100:011:vt:1:vs:0:vd", "%v4d, %m4s, %v3t", opVTFM, fv),
		op("vtfm4.q", "111100:011:vt:1:vs:1:vd", "%v4d, %m4s, %v4t", opVTFM, fv),
		op("vmscl", "111100:100:vt:two:vs:one:vd", "%m0d, %m0s, %v1t", opVMSCL, fz),
		op("vcrsp.t", "111100:101:vt:1:vs:0:vd", "%v3d, %v3s, %v3t", opVCRSP_T, fv),
		unimpl("vqmul.q", "111100:101:vt:1:vs:1:vd", "%v4d, %v4s, %v4t", fv),
		op("vmmov", "111100:111:00:00000:two:vs:one:vd", "%m0d, %m0s", opVMMOV, fz),
		op("vmidt", "111100:111:00:00011:two:0000000:one:vd", "%m0d", opVMIDT, fz),
		op("vmzero", "111100:111:00:00110:two:0000000:one:vd", "%m0d", opVMZERO, fz),
		op("vmone", "111100:111:00:00111:two:0000000:one:vd", "%m0d", opVMONE, fz),
		op("vrot", "111100:111:01:imm5:two:vs:one:vd", "%v0d, %v1s, %R", opVROT, fz),

		// VFPU loads and stores
		op("lv.s", "110010:rs:vt5:imm14:vt2", "%ls, %o(%s)", opLV_S, fv),
		op("sv.s", "111010:rs:vt5:imm14:vt2", "%ls, %o(%s)", opSV_S, fv),
		op("lvl.q", "110101:rs:vt5:imm14:0:vt1", "%lq, %o(%s)", opLVL_Q, fv),
		op("lvr.q", "110101:rs:vt5:imm14:1:vt1", "%lq, %o(%s)", opLVR_Q, fv),
		op("lv.q", "110110:rs:vt5:imm14:0:vt1", "%lq, %o(%s)", opLV_Q, fv),
		op("svl.q", "111101:rs:vt5:imm14:0:vt1", "%lq, %o(%s)", opSVL_Q, fv),
		op("svr.q", "111101:rs:vt5:imm14:1:vt1", "%lq, %o(%s)", opSVR_Q, fv),
		op("sv.q", "111110:rs:vt5:imm14:x:vt1", "%lq, %o(%s)", opSV_Q, fv),

		// VFPU control
		op("vnop", "111111:1111111111:0000000000000000", "", opNOP, fv),
		op("vsync", "111111:1111111111:0000001100100000", "", opNOP, fv),
		op("vflush", "111111:1111111111:0000010000001101", "", opNOP, fv),
	}
}

// Returns the entry called `name` or nil
func OpcodeByName(name string) *OpcodeEntry {
	for _, e := range Opcodes {
		if e.Name == name {
			return e
		}
	}
	return nil
}

func init() {
	Opcodes = allegrexOpcodes()
	decodeRoot = buildDecodeNode(Opcodes, 0)
}

func opNOP(cpu *CPU, i Instruction) Signal {
	return SIGNAL_CONTINUE
}

func opUnimplemented(cpu *CPU, i Instruction) Signal {
	return cpu.raise(&UnimplementedError{PC: cpu.PC, Name: Decode(i).Name, Word: i})
}

func opInvalid(cpu *CPU, i Instruction) Signal {
	return cpu.raise(&InvalidOpcodeError{PC: cpu.PC, Word: i})
}
