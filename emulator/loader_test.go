package emulator

import (
	"bytes"
	"debug/elf"
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Builds an executable with one PT_LOAD segment holding `code`
func buildELF(t *testing.T, machine elf.Machine, entry, vaddr uint32, code []byte, memsz uint32) []byte {
	t.Helper()
	const headerSize, progSize = 52, 32

	var ident [elf.EI_NIDENT]byte
	copy(ident[:], elf.ELFMAG)
	ident[elf.EI_CLASS] = byte(elf.ELFCLASS32)
	ident[elf.EI_DATA] = byte(elf.ELFDATA2LSB)
	ident[elf.EI_VERSION] = byte(elf.EV_CURRENT)

	var buf bytes.Buffer
	header := elf.Header32{
		Ident:     ident,
		Type:      uint16(elf.ET_EXEC),
		Machine:   uint16(machine),
		Version:   uint32(elf.EV_CURRENT),
		Entry:     entry,
		Phoff:     headerSize,
		Ehsize:    headerSize,
		Phentsize: progSize,
		Phnum:     1,
		Shentsize: 40,
	}
	prog := elf.Prog32{
		Type:   uint32(elf.PT_LOAD),
		Off:    headerSize + progSize,
		Vaddr:  vaddr,
		Paddr:  vaddr,
		Filesz: uint32(len(code)),
		Memsz:  memsz,
		Flags:  uint32(elf.PF_R | elf.PF_X),
		Align:  4,
	}
	require.NoError(t, binary.Write(&buf, binary.LittleEndian, &header))
	require.NoError(t, binary.Write(&buf, binary.LittleEndian, &prog))
	buf.Write(code)
	return buf.Bytes()
}

func wordsToBytes(words ...Instruction) []byte {
	out := make([]byte, 4*len(words))
	for n, w := range words {
		binary.LittleEndian.PutUint32(out[n*4:], uint32(w))
	}
	return out
}

func TestLoadImage(t *testing.T) {
	captureLog(t)
	ram := NewRAM()
	code := wordsToBytes(Instruction(0x24020005), enc("break"))

	p, err := LoadProgram(ram, code, 0x08804000)
	require.NoError(t, err)
	assert.Equal(t, uint32(0x08804000), p.Entry)
	assert.Empty(t, p.Symbols)
	assert.Equal(t, uint32(0x24020005), ram.Load32(0x08804000))

	_, err = LoadImage(ram, bytes.NewReader(code), 0x02000000)
	assert.Error(t, err, "unmapped destination")
}

func TestLoadELF(t *testing.T) {
	captureLog(t)
	ram := NewRAM()
	ram.Store32(0x08804008, 0xffffffff)
	code := wordsToBytes(Instruction(0x24020005), enc("break"))
	data := buildELF(t, elf.EM_MIPS, 0x08804000, 0x08804000, code, 16)

	p, err := LoadProgram(ram, data, 0)
	require.NoError(t, err)
	assert.Equal(t, uint32(0x08804000), p.Entry)
	assert.Equal(t, uint32(0x24020005), ram.Load32(0x08804000))
	assert.Zero(t, ram.Load32(0x08804008), "bss is cleared")

	// run it
	cpu := NewCPU(ram)
	cpu.SetPC(p.Entry)
	res := NewInterpreter(cpu).Steps(10)
	assert.Equal(t, SIGNAL_TRAP, res.Signal)
	assert.Equal(t, uint32(5), cpu.Reg(REG_V0))
}

func TestLoadELFRejects(t *testing.T) {
	captureLog(t)
	ram := NewRAM()
	code := wordsToBytes(0)

	_, err := LoadELF(ram, bytes.NewReader(buildELF(t, elf.EM_386, 0, 0x08804000, code, 4)))
	assert.Error(t, err)

	_, err = LoadELF(ram, bytes.NewReader(buildELF(t, elf.EM_MIPS, 0, 0x08804000, code, 2)))
	assert.Error(t, err)

	_, err = LoadELF(ram, bytes.NewReader([]byte("\x7fELF garbage")))
	assert.Error(t, err)
}
