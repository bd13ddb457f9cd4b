package emulator

import (
	"fmt"

	"github.com/sirupsen/logrus"
)

// Result of a batch of steps
type StepResult struct {
	Executed int    // Instructions completed in this batch
	Signal   Signal // Why the batch ended, SIGNAL_CONTINUE when the count ran out
	PC       uint32 // Where execution resumes
	Code     uint32 // break/syscall code for SIGNAL_TRAP, SIGNAL_SYSCALL and SIGNAL_YIELD
	Err      error  // Set with SIGNAL_FAULT
}

// Drives the fetch/decode/execute loop of one CPU
type Interpreter struct {
	CPU         *CPU
	Breakpoints *Breakpoints // Optional
	Names       NameProvider // Optional, symbol names for diagnostics
	Trace       bool         // Log every instruction at debug level
	Slow        bool         // Always go through the Memory interface

	resuming bool   // The last batch paused at a breakpoint
	resumeAt uint32 // Address of that breakpoint
}

func NewInterpreter(cpu *CPU) *Interpreter {
	return &Interpreter{CPU: cpu}
}

// Runs a single instruction
func (it *Interpreter) Step() StepResult {
	return it.Steps(1)
}

// Runs up to `count` instructions. Stops early on a breakpoint (before the
// instruction runs), a break or unhandled syscall (after it ran) or a fault
// (the instruction is not committed, except for a syscall handler error
// which sees the PC already advanced). A batch starting at the breakpoint
// that paused the previous one runs that instruction instead of pausing
// again
func (it *Interpreter) Steps(count int) (res StepResult) {
	cpu := it.CPU
	cpu.useFastMemory(!it.Slow)

	bp := it.Breakpoints
	checkBreakpoints := bp != nil && bp.Enabled
	skip := it.resuming && cpu.PC == it.resumeAt
	it.resuming = false

	executed := 0
	var pc uint32
	defer func() {
		if r := recover(); r != nil {
			res.Signal = SIGNAL_FAULT
			res.Err = &PanicError{PC: pc, Value: r}
			it.reportFault(pc, res.Err)
		}
		cpu.TotalExecuted += uint64(executed)
		res.Executed = executed
		res.PC = cpu.PC
	}()

	for executed < count {
		pc = cpu.PC
		if checkBreakpoints && !skip && bp.Has(pc) {
			it.resuming, it.resumeAt = true, pc
			res.Signal = SIGNAL_PAUSE
			return res
		}
		skip = false

		i := Instruction(cpu.Load32(pc))
		cpu.IR = i
		if it.Trace {
			it.trace(pc, i)
		}

		// nop
		if i == 0 {
			cpu.advance()
			executed++
			continue
		}

		e := Decode(i)
		sig := e.Handler(cpu, i)
		if sig == SIGNAL_CONTINUE {
			if e.Flags&FLAG_CONTROL == 0 {
				cpu.advance()
			}
			executed++
			continue
		}

		res.Signal = sig
		if sig == SIGNAL_FAULT {
			res.Err = cpu.fault
			it.reportFault(pc, res.Err)
		} else {
			executed++
			res.Code = cpu.code
		}
		return res
	}

	res.Signal = SIGNAL_CONTINUE
	return res
}

func (it *Interpreter) trace(pc uint32, i Instruction) {
	Log.WithFields(logrus.Fields{
		"pc":   fmt.Sprintf("0x%08x", pc),
		"word": fmt.Sprintf("0x%08x", uint32(i)),
	}).Debug(Disasm(pc, i, it.Names))
}

// Returns the disassembly of the word at `addr`, or a placeholder when the
// memory itself fails
func (it *Interpreter) disasmAt(addr uint32) (text string) {
	defer func() {
		if r := recover(); r != nil {
			text = "<unreadable>"
		}
	}()
	return Disasm(addr, Instruction(it.CPU.Mem.Load32(addr)), it.Names)
}

// Logs the failing instruction and the one the return address points to
func (it *Interpreter) reportFault(pc uint32, err error) {
	ra := it.CPU.Reg(REG_RA)
	log := Log.WithFields(logrus.Fields{
		"pc": fmt.Sprintf("0x%08x", pc),
		"ra": fmt.Sprintf("0x%08x", ra),
	})
	log.WithError(err).Errorf("There was an error at 0x%08X: %s", pc, it.disasmAt(pc))
	log.Errorf(" - RA at 0x%08X: %s", ra, it.disasmAt(ra))
}

// Runs batches of `batch` instructions until something other than the
// instruction count stops a batch, or `limit` instructions ran (0 means
// no limit)
func (it *Interpreter) Run(batch int, limit uint64) StepResult {
	if batch <= 0 {
		batch = 1
	}
	var total uint64
	for {
		n := batch
		if limit != 0 && limit-total < uint64(n) {
			n = int(limit - total)
		}
		res := it.Steps(n)
		total += uint64(res.Executed)
		if res.Signal != SIGNAL_CONTINUE || (limit != 0 && total >= limit) {
			return res
		}
	}
}
