package monitor

import (
	"bufio"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

const PROMPT = "(gopsp) "

var commandNames = []string{
	"r", "regs", "s", "step", "g", "continue", "b", "break", "bc", "bl",
	"d", "disasm", "m", "mem", "help", "quit",
}

// Reads commands from `r` until a quit command or the end of the input
func (m *Monitor) Run(r io.Reader) error {
	scanner := bufio.NewScanner(r)
	for {
		m.printf("%s", PROMPT)
		if !scanner.Scan() {
			m.printf("\n")
			return scanner.Err()
		}
		if m.Execute(scanner.Text()) {
			return nil
		}
	}
}

// Runs the monitor on `in` with line editing and history when it is a
// terminal, falls back to Run otherwise
func (m *Monitor) RunTerminal(in, out *os.File) error {
	fd := int(in.Fd())
	if !term.IsTerminal(fd) {
		return m.Run(in)
	}

	oldState, err := term.MakeRaw(fd)
	if err != nil {
		return err
	}
	defer term.Restore(fd, oldState)

	screen := struct {
		io.Reader
		io.Writer
	}{in, out}
	t := term.NewTerminal(screen, PROMPT)
	t.AutoCompleteCallback = completeCommand
	if width, height, err := term.GetSize(fd); err == nil {
		t.SetSize(width, height)
	}

	prevOut := m.Out
	m.Out = t
	defer func() { m.Out = prevOut }()

	for {
		line, err := t.ReadLine()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
		if m.Execute(line) {
			return nil
		}
	}
}

// Completes the command name on tab when the prefix is unique
func completeCommand(line string, pos int, key rune) (string, int, bool) {
	if key != '\t' || strings.ContainsRune(line[:pos], ' ') {
		return "", 0, false
	}
	match := ""
	for _, name := range commandNames {
		if strings.HasPrefix(name, line[:pos]) {
			if match != "" {
				return "", 0, false
			}
			match = name
		}
	}
	if match == "" {
		return "", 0, false
	}
	return match + " " + line[pos:], len(match) + 1, true
}
