package emulator

import (
	"fmt"

	"github.com/sirupsen/logrus"
)

// Receives syscall instructions. The PC already points past the syscall
// and the registers hold the guest's arguments. Returning ErrYield ends
// the current batch, any other error faults the context
type SyscallHandler interface {
	Syscall(cpu *CPU, code uint32) error
}

// A native function bound to a syscall code
type SyscallFunc func(cpu *CPU) error

type syscallEntry struct {
	name string
	fn   SyscallFunc
}

// A SyscallHandler dispatching codes to registered functions. Unknown
// codes are logged and ignored
type SyscallTable struct {
	entries map[uint32]syscallEntry
	nextID  uint32
}

// First code handed out by Register
const SYSCALL_AUTO_BASE uint32 = 0x1000

func NewSyscallTable() *SyscallTable {
	return &SyscallTable{
		entries: make(map[uint32]syscallEntry),
		nextID:  SYSCALL_AUTO_BASE,
	}
}

// Binds `fn` to `code`, replacing a previous binding
func (table *SyscallTable) RegisterAt(code uint32, name string, fn SyscallFunc) {
	table.entries[code] = syscallEntry{name: name, fn: fn}
	if code >= table.nextID {
		table.nextID = code + 1
	}
}

// Binds `fn` to a fresh code and returns it
func (table *SyscallTable) Register(name string, fn SyscallFunc) uint32 {
	code := table.nextID
	table.RegisterAt(code, name, fn)
	return code
}

// Returns the name bound to `code`
func (table *SyscallTable) Name(code uint32) (string, bool) {
	e, ok := table.entries[code]
	return e.name, ok
}

func (table *SyscallTable) Syscall(cpu *CPU, code uint32) error {
	e, ok := table.entries[code]
	if !ok {
		Log.WithFields(logrus.Fields{
			"code": fmt.Sprintf("0x%x", code),
			"pc":   fmt.Sprintf("0x%08x", cpu.PC-4),
		}).Warn("unhandled syscall")
		return nil
	}
	if err := e.fn(cpu); err != nil {
		return fmt.Errorf("%s: %w", e.name, err)
	}
	return nil
}
