package emulator

import (
	"fmt"
	"strings"
)

// Supplies symbol names for addresses shown by Disasm
type NameProvider interface {
	NameOf(addr uint32) (string, bool)
}

// A NameProvider backed by a map
type SymbolMap map[uint32]string

func (m SymbolMap) NameOf(addr uint32) (string, bool) {
	name, ok := m[addr]
	return name, ok
}

var vectorSuffixes = [5]string{"", ".s", ".p", ".t", ".q"}

// Returns the text form of the instruction `i` located at `pc`. `names` may
// be nil. Format templates use:
//
//	%s %t %d   GPR rs, rt, rd          %S %T %D   FPU fs, ft, fd
//	%i %I      imm16 signed, hex       %a         shift amount / pos
//	%E %N      ext / ins size          %C         syscall/break code
//	%j %O      jump, branch target     %c %u      rd, rt as numbers
//	%3 %5 %7 %8 VFPU immediates        %X         prefix bits
//	%Y         vcmov condition
//	%vNf       vector register, N = size (0: from the instruction), f = d/s/t
//	%mNf       matrix register         %ls %lq    lv.s / lv.q register
//	%o         lv/sv offset            %k %r %R %f vcst, vcmp, vrot, vfim operands
func Disasm(pc uint32, i Instruction, names NameProvider) string {
	if i == 0 {
		return "nop"
	}
	e := Decode(i)
	if e == INVALID_OPCODE {
		return fmt.Sprintf("invalid 0x%08X", uint32(i))
	}

	mnemonic := e.Name
	if e.Flags&FLAG_SIZED != 0 {
		mnemonic += vectorSuffixes[i.VectorSize()]
	}
	if e.Format == "" {
		return mnemonic
	}

	var sb strings.Builder
	sb.WriteString(mnemonic)
	sb.WriteByte(' ')

	format := e.Format
	for n := 0; n < len(format); n++ {
		c := format[n]
		if c != '%' || n+1 >= len(format) {
			sb.WriteByte(c)
			continue
		}
		n++
		switch format[n] {
		case 's':
			sb.WriteString(GetRegisterName(i.S()))
		case 't':
			sb.WriteString(GetRegisterName(i.T()))
		case 'd':
			sb.WriteString(GetRegisterName(i.D()))
		case 'S':
			fmt.Fprintf(&sb, "f%d", i.FS())
		case 'T':
			fmt.Fprintf(&sb, "f%d", i.FT())
		case 'D':
			fmt.Fprintf(&sb, "f%d", i.FD())
		case 'i':
			fmt.Fprintf(&sb, "%d", int32(i.ImmSE()))
		case 'I':
			fmt.Fprintf(&sb, "0x%04X", i.Imm())
		case 'a':
			fmt.Fprintf(&sb, "%d", i.Shift())
		case 'E':
			fmt.Fprintf(&sb, "%d", i.ExtSize())
		case 'N':
			fmt.Fprintf(&sb, "%d", i.InsSize())
		case 'C':
			fmt.Fprintf(&sb, "0x%X", i.SyscallCode())
		case 'j':
			sb.WriteString(addressText(i.JumpTarget(pc), names))
		case 'O':
			sb.WriteString(addressText(i.BranchTarget(pc), names))
		case 'c':
			fmt.Fprintf(&sb, "%d", i.D())
		case 'u':
			fmt.Fprintf(&sb, "%d", i.T())
		case '3':
			fmt.Fprintf(&sb, "%d", i.Imm3())
		case 'Y':
			fmt.Fprintf(&sb, "%d", i.CmovImm3())
		case '5':
			fmt.Fprintf(&sb, "%d", i.Imm5())
		case '7':
			fmt.Fprintf(&sb, "%d", i.Imm7())
		case '8':
			fmt.Fprintf(&sb, "%d", (uint32(i)>>16)&0xff)
		case 'X':
			fmt.Fprintf(&sb, "0x%06X", uint32(i)&0xffffff)
		case 'o':
			fmt.Fprintf(&sb, "%d", int32(i.Imm14()))
		case 'k':
			if idx := i.Imm5(); idx < uint32(len(VfpuConstants)) {
				sb.WriteString(VfpuConstants[idx].Name)
			} else {
				fmt.Fprintf(&sb, "%d", i.Imm5())
			}
		case 'r':
			sb.WriteString(vcmpNames[i.Imm4()])
		case 'R':
			sb.WriteString(vrotText(i))
		case 'f':
			fmt.Fprintf(&sb, "%g", halfToFloat(uint16(i.Imm())))
		case 'v', 'm':
			if n+2 >= len(format) {
				break
			}
			size := int(format[n+1] - '0')
			if size == 0 {
				size = i.VectorSize()
			}
			var sel uint32
			switch format[n+2] {
			case 'd':
				sel = i.VD()
			case 's':
				sel = i.VS()
			case 't':
				sel = i.VT()
			}
			if format[n] == 'v' {
				sb.WriteString(VectorName(sel, size))
			} else {
				sb.WriteString(MatrixName(sel, size))
			}
			n += 2
		case 'l':
			if n+1 >= len(format) {
				break
			}
			n++
			if format[n] == 'q' {
				sb.WriteString(VectorName(i.VT51(), 4))
			} else {
				sb.WriteString(VectorName(i.VT52(), 1))
			}
		default:
			sb.WriteByte('%')
			sb.WriteByte(format[n])
		}
	}
	return sb.String()
}

func addressText(addr uint32, names NameProvider) string {
	if names != nil {
		if name, ok := names.NameOf(addr); ok {
			return fmt.Sprintf("0x%08X <%s>", addr, name)
		}
	}
	return fmt.Sprintf("0x%08X", addr)
}

// Returns the name of a vector register: S (single), C (column) or R (row)
// followed by the matrix, column and row digits
func VectorName(sel uint32, size int) string {
	mtx := (sel >> 2) & 7
	col := sel & 3
	row := uint32(vfpuRow(sel, size))
	transpose := size != 1 && (sel>>5)&1 != 0

	c := byte('C')
	switch {
	case size == 1:
		c = 'S'
	case transpose:
		c = 'R'
	}
	if transpose {
		return fmt.Sprintf("%c%d%d%d", c, mtx, row, col)
	}
	return fmt.Sprintf("%c%d%d%d", c, mtx, col, row)
}

// Returns the name of a matrix register: M, or E when transposed
func MatrixName(sel uint32, side int) string {
	mtx := (sel >> 2) & 7
	col := sel & 3
	row := uint32(vfpuRow(sel, side))
	if (sel>>5)&1 != 0 {
		return fmt.Sprintf("E%d%d%d", mtx, row, col)
	}
	return fmt.Sprintf("M%d%d%d", mtx, col, row)
}

// vrot lane pattern, like [c,s,0,0]
func vrotText(i Instruction) string {
	size := i.VectorSize()
	imm := i.Imm5()
	cosLane := int(imm & 3)
	sinLane := int(imm>>2) & 3
	sine := "s"
	if imm&0x10 != 0 {
		sine = "-s"
	}

	lanes := make([]string, size)
	for n := range lanes {
		switch {
		case n == cosLane:
			lanes[n] = "c"
		case n == sinLane || sinLane == cosLane:
			lanes[n] = sine
		default:
			lanes[n] = "0"
		}
	}
	return "[" + strings.Join(lanes, ",") + "]"
}
