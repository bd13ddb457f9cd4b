package emulator

import (
	"bytes"
	"debug/elf"
	"fmt"
	"io"
	"time"

	"github.com/sirupsen/logrus"
)

// A program placed in guest memory
type Program struct {
	Entry   uint32    // Address of the first instruction
	GP      uint32    // Value of the _gp symbol, 0 if missing
	Symbols SymbolMap // Function symbols, empty for raw images
}

// Copies a raw binary image from `r` into memory at `addr`
func LoadImage(ram *RAM, r io.Reader, addr uint32) (*Program, error) {
	start := time.Now()
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("loader: reading image: %w", err)
	}
	if err := ram.Write(addr, data); err != nil {
		return nil, fmt.Errorf("loader: %w", err)
	}

	Log.WithFields(logrus.Fields{
		"addr": fmt.Sprintf("0x%08x", addr),
		"size": len(data),
	}).Infof("loaded image in %s", time.Since(start))
	return &Program{Entry: addr, Symbols: SymbolMap{}}, nil
}

// Loads the PT_LOAD segments of a little endian 32 bit MIPS ELF
// executable. Space past the file contents of a segment is zeroed
func LoadELF(ram *RAM, r io.ReaderAt) (*Program, error) {
	start := time.Now()
	f, err := elf.NewFile(r)
	if err != nil {
		return nil, fmt.Errorf("loader: %w", err)
	}
	defer f.Close()

	if f.Class != elf.ELFCLASS32 || f.Data != elf.ELFDATA2LSB || f.Machine != elf.EM_MIPS {
		return nil, fmt.Errorf("loader: not a little endian MIPS32 executable (%s, %s, %s)", f.Class, f.Data, f.Machine)
	}

	for _, prog := range f.Progs {
		if prog.Type != elf.PT_LOAD || prog.Memsz == 0 {
			continue
		}
		if prog.Filesz > prog.Memsz {
			return nil, fmt.Errorf("loader: segment at 0x%08x is larger on disk than in memory", prog.Vaddr)
		}
		data := make([]byte, prog.Memsz)
		if _, err := io.ReadFull(prog.Open(), data[:prog.Filesz]); err != nil {
			return nil, fmt.Errorf("loader: segment at 0x%08x: %w", prog.Vaddr, err)
		}
		if err := ram.Write(uint32(prog.Vaddr), data); err != nil {
			return nil, fmt.Errorf("loader: %w", err)
		}
	}

	p := &Program{Entry: uint32(f.Entry), Symbols: SymbolMap{}}
	// a stripped binary has no symbol table, that is fine
	if syms, err := f.Symbols(); err == nil {
		for _, sym := range syms {
			switch {
			case sym.Name == "_gp":
				p.GP = uint32(sym.Value)
			case elf.ST_TYPE(sym.Info) == elf.STT_FUNC && sym.Name != "":
				p.Symbols[uint32(sym.Value)] = sym.Name
			}
		}
	}

	Log.WithFields(logrus.Fields{
		"entry":   fmt.Sprintf("0x%08x", p.Entry),
		"symbols": len(p.Symbols),
	}).Infof("loaded elf in %s", time.Since(start))
	return p, nil
}

// Loads an ELF when `data` starts with the ELF magic, a raw image at
// `addr` otherwise
func LoadProgram(ram *RAM, data []byte, addr uint32) (*Program, error) {
	if bytes.HasPrefix(data, []byte(elf.ELFMAG)) {
		return LoadELF(ram, bytes.NewReader(data))
	}
	return LoadImage(ram, bytes.NewReader(data), addr)
}
