package monitor

import (
	"fmt"
	"io"
	"strings"

	"github.com/zeozeozeo/gopsp/emulator"
)

const (
	DEFAULT_BATCH      = 10000 // Instructions per batch while continuing
	DEFAULT_DISASM     = 8     // Lines shown by "d"
	DEFAULT_DUMP_LINES = 8     // 16 byte lines shown by "m"
)

// An interactive debugger console driving one interpreter
type Monitor struct {
	It      *emulator.Interpreter
	Out     io.Writer
	Symbols emulator.SymbolMap
	Batch   int    // Instructions per batch for "g"
	Limit   uint64 // Instruction budget of one "g", 0 means no limit

	prevRegs [32]uint32
	lastLine string
}

// Returns a monitor writing to `out`. Attaches a breakpoint set to the
// interpreter if it has none
func New(it *emulator.Interpreter, out io.Writer) *Monitor {
	if it.Breakpoints == nil {
		it.Breakpoints = emulator.NewBreakpoints()
	}
	m := &Monitor{
		It:      it,
		Out:     out,
		Symbols: emulator.SymbolMap{},
		Batch:   DEFAULT_BATCH,
	}
	if names, ok := it.Names.(emulator.SymbolMap); ok {
		m.Symbols = names
	}
	m.prevRegs = it.CPU.Regs
	return m
}

func (m *Monitor) printf(format string, a ...interface{}) {
	fmt.Fprintf(m.Out, format, a...)
}

// Runs one command line. An empty line repeats the previous command.
// Returns true when the monitor should exit
func (m *Monitor) Execute(line string) bool {
	if strings.TrimSpace(line) == "" {
		line = m.lastLine
	}
	cmd := ParseCommand(line)
	if cmd.Name == "" {
		return false
	}
	m.lastLine = line

	switch cmd.Name {
	case "r", "regs":
		m.cmdRegisters(cmd)
	case "s", "step":
		m.cmdStep(cmd)
	case "g", "c", "continue":
		m.cmdGo(cmd)
	case "b", "break":
		m.cmdBreakpointSet(cmd)
	case "bc":
		m.cmdBreakpointClear(cmd)
	case "bl":
		m.cmdBreakpointList()
	case "d", "disasm":
		m.cmdDisassemble(cmd)
	case "m", "mem":
		m.cmdMemoryDump(cmd)
	case "h", "help", "?":
		m.cmdHelp()
	case "x", "q", "quit":
		return true
	default:
		m.printf("Unknown command: %s (h for help)\n", cmd.Name)
	}
	return false
}

func (m *Monitor) cmdHelp() {
	m.printf(`r [reg value]      show registers, or set one
s [n]              step n instructions
g [addr]           continue, optionally from addr
b <addr>           set a breakpoint
bc <addr> | bc *   clear one or all breakpoints
bl                 list breakpoints
d [addr] [n]       disassemble n instructions
m [addr] [lines]   dump memory
x                  quit
`)
}

func (m *Monitor) cmdRegisters(cmd Command) {
	cpu := m.It.CPU
	if len(cmd.Args) == 0 {
		m.showRegisters()
		return
	}
	if len(cmd.Args) != 2 {
		m.printf("Usage: r <reg> <value>\n")
		return
	}

	val, ok := m.EvalAddress(cmd.Args[1])
	if !ok {
		m.printf("Invalid value: %s\n", cmd.Args[1])
		return
	}
	switch name := strings.ToLower(cmd.Args[0]); name {
	case "pc":
		cpu.SetPC(val)
	case "hi":
		cpu.HI = val
	case "lo":
		cpu.LO = val
	default:
		idx, ok := emulator.GetRegisterIndexByName(name)
		if !ok {
			m.printf("Unknown register: %s\n", cmd.Args[0])
			return
		}
		cpu.SetReg(idx, val)
	}
	m.prevRegs = cpu.Regs
}

func (m *Monitor) showRegisters() {
	cpu := m.It.CPU
	for idx := 0; idx < 32; idx += 4 {
		for col := idx; col < idx+4; col++ {
			m.printf("%-2s %08X  ", emulator.RegisterNames[col], cpu.Regs[col])
		}
		m.printf("\n")
	}
	m.printf("pc %08X  npc %08X  hi %08X  lo %08X\n", cpu.PC, cpu.NPC, cpu.HI, cpu.LO)
	m.printf("executed %d\n", cpu.TotalExecuted)
}

func (m *Monitor) cmdStep(cmd Command) {
	count := 1
	if len(cmd.Args) >= 1 {
		v, ok := ParseAddress(cmd.Args[0])
		if !ok || v == 0 {
			m.printf("Invalid count: %s\n", cmd.Args[0])
			return
		}
		count = int(v)
	}

	res := m.It.Steps(count)
	m.printf("Step: %d instruction(s)\n", res.Executed)
	m.showChangedRegisters()
	m.report(res)
	m.showDisassembly(m.It.CPU.PC, 1)
}

func (m *Monitor) cmdGo(cmd Command) {
	if len(cmd.Args) >= 1 {
		addr, ok := m.EvalAddress(cmd.Args[0])
		if !ok {
			m.printf("Invalid address: %s\n", cmd.Args[0])
			return
		}
		m.It.CPU.SetPC(addr)
	}

	before := m.It.CPU.TotalExecuted
	res := m.It.Run(m.Batch, m.Limit)
	m.printf("Ran %d instruction(s)\n", m.It.CPU.TotalExecuted-before)
	m.showChangedRegisters()
	m.report(res)
	m.showDisassembly(m.It.CPU.PC, 1)
}

// Prints why a batch stopped
func (m *Monitor) report(res emulator.StepResult) {
	switch res.Signal {
	case emulator.SIGNAL_CONTINUE:
	case emulator.SIGNAL_PAUSE:
		m.printf("Breakpoint at %08X\n", res.PC)
	case emulator.SIGNAL_TRAP, emulator.SIGNAL_SYSCALL, emulator.SIGNAL_YIELD:
		m.printf("Stopped: %s 0x%X, pc %08X\n", res.Signal, res.Code, res.PC)
	case emulator.SIGNAL_FAULT:
		m.printf("Fault: %v\n", res.Err)
	}
}

func (m *Monitor) showChangedRegisters() {
	regs := m.It.CPU.Regs
	for idx, val := range regs {
		if prev := m.prevRegs[idx]; prev != val {
			m.printf("  %s: %08X -> %08X\n", emulator.RegisterNames[idx], prev, val)
		}
	}
	m.prevRegs = regs
}

func (m *Monitor) cmdBreakpointSet(cmd Command) {
	if len(cmd.Args) < 1 {
		m.printf("Usage: b <addr>\n")
		return
	}
	addr, ok := m.EvalAddress(cmd.Args[0])
	if !ok {
		m.printf("Invalid address: %s\n", cmd.Args[0])
		return
	}
	m.It.Breakpoints.Add(addr)
	m.printf("Breakpoint set at %08X\n", addr)
}

func (m *Monitor) cmdBreakpointClear(cmd Command) {
	bp := m.It.Breakpoints
	if len(cmd.Args) < 1 {
		m.printf("Usage: bc <addr> | bc *\n")
		return
	}
	if cmd.Args[0] == "*" {
		bp.Clear()
		m.printf("All breakpoints cleared\n")
		return
	}

	addr, ok := m.EvalAddress(cmd.Args[0])
	if !ok {
		m.printf("Invalid address: %s\n", cmd.Args[0])
		return
	}
	if !bp.Has(addr) {
		m.printf("No breakpoint at %08X\n", addr)
		return
	}
	bp.Remove(addr)
	m.printf("Breakpoint cleared at %08X\n", addr)
}

func (m *Monitor) cmdBreakpointList() {
	list := m.It.Breakpoints.List()
	if len(list) == 0 {
		m.printf("No breakpoints\n")
		return
	}
	for _, addr := range list {
		if name, ok := m.Symbols.NameOf(addr); ok {
			m.printf("%08X <%s>\n", addr, name)
		} else {
			m.printf("%08X\n", addr)
		}
	}
}

func (m *Monitor) cmdDisassemble(cmd Command) {
	addr, count := m.It.CPU.PC, DEFAULT_DISASM
	if len(cmd.Args) >= 1 {
		v, ok := m.EvalAddress(cmd.Args[0])
		if !ok {
			m.printf("Invalid address: %s\n", cmd.Args[0])
			return
		}
		addr = v
	}
	if len(cmd.Args) >= 2 {
		if v, ok := ParseAddress(cmd.Args[1]); ok {
			count = int(v)
		}
	}
	m.showDisassembly(addr&^3, count)
}

func (m *Monitor) showDisassembly(addr uint32, count int) {
	cpu := m.It.CPU
	for n := 0; n < count; n++ {
		word := emulator.Instruction(cpu.Mem.Load32(addr))
		marker := "  "
		switch {
		case addr == cpu.PC:
			marker = "=>"
		case m.It.Breakpoints.Has(addr):
			marker = "* "
		}
		if name, ok := m.Symbols.NameOf(addr); ok {
			m.printf("%s:\n", name)
		}
		m.printf("%s %08X: %08X  %s\n", marker, addr, uint32(word), emulator.Disasm(addr, word, m.Symbols))
		addr += 4
	}
}

func (m *Monitor) cmdMemoryDump(cmd Command) {
	addr, lines := m.It.CPU.PC, DEFAULT_DUMP_LINES
	if len(cmd.Args) >= 1 {
		v, ok := m.EvalAddress(cmd.Args[0])
		if !ok {
			m.printf("Invalid address: %s\n", cmd.Args[0])
			return
		}
		addr = v
	}
	if len(cmd.Args) >= 2 {
		if v, ok := ParseAddress(cmd.Args[1]); ok {
			lines = int(v)
		}
	}

	mem := m.It.CPU.Mem
	for n := 0; n < lines; n++ {
		var hex [16]string
		var ascii [16]byte
		for col := range hex {
			b := mem.Load8(addr + uint32(col))
			hex[col] = fmt.Sprintf("%02X", b)
			if b >= 0x20 && b < 0x7f {
				ascii[col] = b
			} else {
				ascii[col] = '.'
			}
		}
		m.printf("%08X: %s  %s  %s\n", addr, strings.Join(hex[:8], " "), strings.Join(hex[8:], " "), ascii[:])
		addr += 16
	}
}
