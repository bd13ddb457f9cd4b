package emulator

import (
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/require"
)

// Instruction field setters used to assemble test programs
func withRS(n uint32) uint32   { return n << 21 }
func withRT(n uint32) uint32   { return n << 16 }
func withRD(n uint32) uint32   { return n << 11 }
func withSA(n uint32) uint32   { return n << 6 }
func withImm(v int32) uint32   { return uint32(v) & 0xffff }
func withVD(sel uint32) uint32 { return sel }
func withVS(sel uint32) uint32 { return sel << 8 }
func withVT(sel uint32) uint32 { return sel << 16 }

// Vector width bits: 1 -> .s, 2 -> .p, 3 -> .t, 4 -> .q
func withSize(size int) uint32 {
	var w uint32
	if (size-1)&1 != 0 {
		w |= 1 << 7
	}
	if (size-1)&2 != 0 {
		w |= 1 << 15
	}
	return w
}

// Assembles the instruction `name` with the given fields
func enc(name string, fields ...uint32) Instruction {
	e := OpcodeByName(name)
	if e == nil {
		panicFmt("no opcode named %q", name)
	}
	w := e.Value
	for _, f := range fields {
		w |= f
	}
	return Instruction(w)
}

const testMemSize = 64 * 1024

// A CPU over 64KB of flat memory at address 0
func newTestCPU(t *testing.T) (*CPU, *Interpreter) {
	t.Helper()
	cpu := NewCPU(NewFlatRAM(0, testMemSize))
	return cpu, NewInterpreter(cpu)
}

// Stores `program` at `addr`
func load(cpu *CPU, addr uint32, program ...Instruction) {
	for n, i := range program {
		cpu.Mem.Store32(addr+uint32(n)*4, uint32(i))
	}
}

// Runs `program` from address 0 for `steps` instructions
func exec(t *testing.T, cpu *CPU, it *Interpreter, steps int, program ...Instruction) StepResult {
	t.Helper()
	load(cpu, 0, program...)
	cpu.SetPC(0)
	res := it.Steps(steps)
	require.NoError(t, res.Err)
	return res
}

// Runs the single instruction `i` at address 0 after `setup`
func execOne(t *testing.T, i Instruction, setup func(cpu *CPU)) *CPU {
	t.Helper()
	cpu, it := newTestCPU(t)
	if setup != nil {
		setup(cpu)
	}
	res := exec(t, cpu, it, 1, i)
	require.Equal(t, SIGNAL_CONTINUE, res.Signal)
	require.Equal(t, 1, res.Executed)
	return cpu
}

// Sets GPRs pairwise: index, value, index, value...
func withRegs(pairs ...uint32) func(cpu *CPU) {
	return func(cpu *CPU) {
		for n := 0; n+1 < len(pairs); n += 2 {
			cpu.SetReg(pairs[n], pairs[n+1])
		}
	}
}

// Routes Log into a test hook for the duration of the test
func captureLog(t *testing.T) *test.Hook {
	t.Helper()
	logger, hook := test.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)
	prev := Log
	Log = logger
	t.Cleanup(func() { Log = prev })
	return hook
}
