package monitor

import (
	"strconv"
	"strings"

	"github.com/zeozeozeo/gopsp/emulator"
)

// A parsed command line
type Command struct {
	Name string
	Args []string
}

// Splits a raw input line into a lower case command name and arguments
func ParseCommand(input string) Command {
	parts := strings.Fields(input)
	if len(parts) == 0 {
		return Command{}
	}
	return Command{
		Name: strings.ToLower(parts[0]),
		Args: parts[1:],
	}
}

// Parses a number in one of the forms 0x1f, $1f, #31 or bare hex 1f
func ParseAddress(s string) (uint32, bool) {
	s = strings.TrimSpace(s)
	base := 16
	switch {
	case s == "":
		return 0, false
	case strings.HasPrefix(s, "#"):
		s, base = s[1:], 10
	case strings.HasPrefix(s, "$"):
		s = s[1:]
	case strings.HasPrefix(s, "0x"), strings.HasPrefix(s, "0X"):
		s = s[2:]
	}
	v, err := strconv.ParseUint(s, base, 32)
	return uint32(v), err == nil
}

// Evaluates `<term> [+|- <term>]*` where a term is a register name, pc,
// a symbol or a number
func (m *Monitor) EvalAddress(expr string) (uint32, bool) {
	expr = strings.TrimSpace(expr)
	if expr == "" {
		return 0, false
	}

	var result uint32
	op := byte('+')
	start := 0
	for n := 0; n <= len(expr); n++ {
		if n < len(expr) && (n == start || (expr[n] != '+' && expr[n] != '-')) {
			continue
		}
		val, ok := m.term(strings.TrimSpace(expr[start:n]))
		if !ok {
			return 0, false
		}
		if op == '+' {
			result += val
		} else {
			result -= val
		}
		if n < len(expr) {
			op = expr[n]
		}
		start = n + 1
	}
	return result, true
}

func (m *Monitor) term(s string) (uint32, bool) {
	cpu := m.It.CPU
	name := strings.ToLower(s)
	switch name {
	case "pc":
		return cpu.PC, true
	case "npc":
		return cpu.NPC, true
	case "hi":
		return cpu.HI, true
	case "lo":
		return cpu.LO, true
	}
	if idx, ok := emulator.GetRegisterIndexByName(name); ok {
		return cpu.Reg(idx), true
	}
	if addr, ok := m.symbol(s); ok {
		return addr, true
	}
	return ParseAddress(s)
}

// Looks a symbol up by name
func (m *Monitor) symbol(name string) (uint32, bool) {
	for addr, sym := range m.Symbols {
		if sym == name {
			return addr, true
		}
	}
	return 0, false
}
