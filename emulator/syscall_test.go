package emulator

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSyscallTable(t *testing.T) {
	hook := captureLog(t)
	table := NewSyscallTable()

	first := table.Register("sceKernelExitGame", func(cpu *CPU) error { return nil })
	second := table.Register("sceKernelDelayThread", func(cpu *CPU) error { return errors.New("bad delay") })
	assert.Equal(t, SYSCALL_AUTO_BASE, first)
	assert.Equal(t, SYSCALL_AUTO_BASE+1, second)

	table.RegisterAt(0x2000, "sceDisplaySetMode", func(cpu *CPU) error { return nil })
	assert.Equal(t, SYSCALL_AUTO_BASE+0x1001, table.Register("next", nil))

	name, ok := table.Name(second)
	assert.True(t, ok)
	assert.Equal(t, "sceKernelDelayThread", name)
	_, ok = table.Name(0x42)
	assert.False(t, ok)

	cpu := NewCPU(NewFlatRAM(0, 0x100))
	assert.NoError(t, table.Syscall(cpu, first))
	assert.EqualError(t, table.Syscall(cpu, second), "sceKernelDelayThread: bad delay")

	// unknown codes are logged and ignored
	assert.NoError(t, table.Syscall(cpu, 0x42))
	entry := hook.LastEntry()
	if assert.NotNil(t, entry) {
		assert.Equal(t, "unhandled syscall", entry.Message)
		assert.Equal(t, "0x42", entry.Data["code"])
	}
}
