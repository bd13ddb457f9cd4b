package emulator

import (
	"errors"
	"fmt"
)

// Outcome of one instruction, tells the stepper whether to keep going
type Signal uint8

const (
	SIGNAL_CONTINUE Signal = iota // Keep stepping
	SIGNAL_PAUSE                  // Breakpoint hit before the instruction at PC
	SIGNAL_TRAP                   // break instruction, the code is in StepResult.Code
	SIGNAL_SYSCALL                // syscall with no handler attached, PC already points past it
	SIGNAL_YIELD                  // The syscall handler asked to give control back
	SIGNAL_FAULT                  // The instruction could not be executed, see StepResult.Err
)

var signalNames = [...]string{
	SIGNAL_CONTINUE: "continue",
	SIGNAL_PAUSE:    "pause",
	SIGNAL_TRAP:     "trap",
	SIGNAL_SYSCALL:  "syscall",
	SIGNAL_YIELD:    "yield",
	SIGNAL_FAULT:    "fault",
}

func (s Signal) String() string {
	if int(s) < len(signalNames) {
		return signalNames[s]
	}
	return fmt.Sprintf("signal(%d)", uint8(s))
}

// Returned by a SyscallHandler to stop the current batch after the syscall
var ErrYield = errors.New("emulator: yield")

// An instruction that exists on the hardware but is not modeled
type UnimplementedError struct {
	PC   uint32
	Name string
	Word Instruction
}

func (e *UnimplementedError) Error() string {
	return fmt.Sprintf("emulator: unimplemented instruction %s (0x%08x) at 0x%08x", e.Name, uint32(e.Word), e.PC)
}

// An encoding that matches no opcode
type InvalidOpcodeError struct {
	PC   uint32
	Word Instruction
}

func (e *InvalidOpcodeError) Error() string {
	return fmt.Sprintf("emulator: invalid instruction 0x%08x at 0x%08x", uint32(e.Word), e.PC)
}

// A Go panic caught while executing an instruction
type PanicError struct {
	PC    uint32
	Value interface{}
}

func (e *PanicError) Error() string {
	return fmt.Sprintf("emulator: panic at 0x%08x: %v", e.PC, e.Value)
}
