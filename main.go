package main

import (
	"bytes"
	"flag"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/pkg/profile"
	"github.com/sirupsen/logrus"
	"github.com/zeozeozeo/gopsp/display"
	"github.com/zeozeozeo/gopsp/emulator"
	"github.com/zeozeozeo/gopsp/monitor"
)

const (
	DEFAULT_LOAD_ADDR = 0x08804000
	STACK_TOP         = 0x09fffff0
)

// A flag holding a 32 bit address, accepts 0x prefixed hex
type addrFlag struct {
	val uint32
	set bool
}

func (f *addrFlag) String() string {
	return fmt.Sprintf("0x%08x", f.val)
}

func (f *addrFlag) Set(s string) error {
	v, err := strconv.ParseUint(s, 0, 32)
	if err != nil {
		return err
	}
	f.val, f.set = uint32(v), true
	return nil
}

// Command line settings
type config struct {
	image      string
	load       addrFlag
	entry      addrFlag
	forceELF   bool
	batch      int
	limit      uint64
	trace      bool
	monitor    bool
	display    bool
	cpuProfile string
}

func main() {
	// parse arguments
	cfg := config{load: addrFlag{val: DEFAULT_LOAD_ADDR}}
	flag.StringVar(&cfg.image, "image", "", "path to the program (raw image or ELF)")
	flag.Var(&cfg.load, "load", "address a raw image is loaded at")
	flag.Var(&cfg.entry, "entry", "start address, defaults to the load address or the ELF entry")
	flag.BoolVar(&cfg.forceELF, "elf", false, "fail unless the program is an ELF executable")
	flag.IntVar(&cfg.batch, "steps", 10000, "instructions per batch")
	flag.Uint64Var(&cfg.limit, "max", 0, "stop after this many instructions (0 for no limit)")
	flag.BoolVar(&cfg.trace, "trace", false, "log every executed instruction")
	verbose := flag.Bool("v", false, "enable debug logging")
	flag.BoolVar(&cfg.monitor, "monitor", false, "start the interactive monitor")
	flag.BoolVar(&cfg.display, "display", false, "show the framebuffer in a window")
	flag.StringVar(&cfg.cpuProfile, "cpuprofile", "", "write a CPU profile into this directory")
	flag.Parse()

	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	if *verbose || cfg.trace {
		logrus.SetLevel(logrus.DebugLevel)
	}
	if cfg.image == "" {
		flag.Usage()
		os.Exit(2)
	}

	if err := start(cfg); err != nil {
		logrus.WithError(err).Error("gopsp failed")
		os.Exit(1)
	}
}

// Loads and runs the program. Deferred cleanup (the profile) has finished
// when it returns
func start(cfg config) error {
	if cfg.cpuProfile != "" {
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(cfg.cpuProfile), profile.NoShutdownHook, profile.Quiet).Stop()
	}

	// start emulator
	ram := emulator.NewRAM()
	prog, err := loadProgram(ram, cfg.image, cfg.load.val, cfg.forceELF)
	if err != nil {
		return err
	}

	cpu := emulator.NewCPU(ram)
	cpu.Syscalls = emulator.NewSyscallTable()
	cpu.SetReg(emulator.REG_SP, STACK_TOP)
	cpu.SetReg(emulator.REG_GP, prog.GP)
	cpu.SetPC(prog.Entry)
	if cfg.entry.set {
		cpu.SetPC(cfg.entry.val)
	}

	it := emulator.NewInterpreter(cpu)
	it.Names = prog.Symbols
	it.Trace = cfg.trace

	switch {
	case cfg.monitor:
		mon := monitor.New(it, os.Stdout)
		mon.Batch = cfg.batch
		mon.Limit = cfg.limit
		if err := mon.RunTerminal(os.Stdin, os.Stdout); err != nil {
			return fmt.Errorf("monitor: %w", err)
		}
		return nil
	case cfg.display:
		return display.NewViewer(it, ram, cfg.batch).Run()
	default:
		return run(it, cfg.batch, cfg.limit)
	}
}

func loadProgram(ram *emulator.RAM, path string, addr uint32, forceELF bool) (*emulator.Program, error) {
	logrus.Infof("loading program \"%s\"", path)

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading program: %w", err)
	}
	if forceELF {
		return emulator.LoadELF(ram, bytes.NewReader(data))
	}
	return emulator.LoadProgram(ram, data, addr)
}

func run(it *emulator.Interpreter, batch int, limit uint64) error {
	begin := time.Now()
	res := it.Run(batch, limit)
	elapsed := time.Since(begin)

	fields := logrus.Fields{
		"signal":   res.Signal.String(),
		"pc":       fmt.Sprintf("0x%08x", res.PC),
		"executed": it.CPU.TotalExecuted,
		"elapsed":  elapsed,
	}
	if secs := elapsed.Seconds(); secs > 0 {
		fields["mips"] = fmt.Sprintf("%.2f", float64(it.CPU.TotalExecuted)/secs/1e6)
	}
	log := logrus.WithFields(fields)
	if res.Signal == emulator.SIGNAL_FAULT {
		log.Error("program faulted")
		return res.Err
	}
	log.Info("program stopped")
	return nil
}
