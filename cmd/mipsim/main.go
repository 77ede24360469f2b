// Package main provides the mipsim command, which loads a MIPS32 program and
// runs it in the functional emulator.
package main

import (
	"encoding/binary"
	"errors"
	"flag"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/go-logr/logr"
	"github.com/go-logr/logr/funcr"

	"github.com/sarchlab/mipsim/config"
	"github.com/sarchlab/mipsim/emu"
	"github.com/sarchlab/mipsim/insts"
	"github.com/sarchlab/mipsim/loader"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// options holds the parsed command line.
type options struct {
	configPath string
	memSize    uint
	entry      string
	base       string
	max        uint64
	trace      bool
	verbose    bool
	dumpMem    string
	disasm     bool

	set map[string]bool
}

func parseFlags(args []string, stderr io.Writer) (*options, []string, error) {
	opts := &options{set: map[string]bool{}}

	fs := flag.NewFlagSet("mipsim", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&opts.configPath, "config", "", "Path to run configuration JSON file")
	fs.UintVar(&opts.memSize, "mem", emu.DefaultMemorySize, "Memory size in bytes")
	fs.StringVar(&opts.entry, "entry", "", "Entry point, overrides the program's")
	fs.StringVar(&opts.base, "base", "", "Load address for raw and hex images")
	fs.Uint64Var(&opts.max, "max", 0, "Maximum instructions to execute (0 = no limit)")
	fs.BoolVar(&opts.trace, "trace", false, "Print each instruction as it executes")
	fs.BoolVar(&opts.verbose, "v", false, "Verbose output")
	fs.StringVar(&opts.dumpMem, "dump-mem", "", "Dump memory words in start:end after the run")
	fs.BoolVar(&opts.disasm, "disasm", false, "Print the program's disassembly and exit")
	fs.Usage = func() {
		_, _ = fmt.Fprintf(stderr, "Usage: mipsim [options] <program>\n")
		_, _ = fmt.Fprintf(stderr, "\nPrograms ending in .elf are loaded as ELF, .hex as hex text,\n")
		_, _ = fmt.Fprintf(stderr, "anything else as a raw big-endian image.\n")
		_, _ = fmt.Fprintf(stderr, "\nOptions:\n")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}
	fs.Visit(func(f *flag.Flag) { opts.set[f.Name] = true })

	if fs.NArg() < 1 {
		fs.Usage()
		return nil, nil, errors.New("missing program")
	}

	return opts, fs.Args(), nil
}

// buildConfig loads the configuration file, if any, and applies the flags
// given explicitly on the command line.
func buildConfig(opts *options) (*config.Config, error) {
	cfg := config.DefaultConfig()
	if opts.configPath != "" {
		var err error
		cfg, err = config.LoadConfig(opts.configPath)
		if err != nil {
			return nil, err
		}
	}

	if opts.set["mem"] {
		if opts.memSize > math.MaxUint32 {
			return nil, fmt.Errorf("invalid -mem: %d exceeds 0x%X bytes", opts.memSize, uint64(math.MaxUint32))
		}
		cfg.MemorySize = uint32(opts.memSize)
	}
	if opts.set["entry"] {
		v, err := parseAddr(opts.entry)
		if err != nil {
			return nil, fmt.Errorf("invalid -entry: %w", err)
		}
		cfg.EntryPoint = v
	}
	if opts.set["base"] {
		v, err := parseAddr(opts.base)
		if err != nil {
			return nil, fmt.Errorf("invalid -base: %w", err)
		}
		cfg.LoadAddress = v
	}
	if opts.set["max"] {
		cfg.MaxInstructions = opts.max
	}
	if opts.set["trace"] {
		cfg.Trace = opts.trace
	}
	if opts.verbose && cfg.Verbosity < 1 {
		cfg.Verbosity = 1
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

func run(args []string, stdout, stderr io.Writer) int {
	opts, rest, err := parseFlags(args, stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}

	cfg, err := buildConfig(opts)
	if err != nil {
		_, _ = fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}

	programPath := rest[0]

	prog, err := loader.LoadFile(programPath, cfg.LoadAddress)
	if err != nil {
		_, _ = fmt.Fprintf(stderr, "Error loading program: %v\n", err)
		return 1
	}

	if opts.verbose {
		_, _ = fmt.Fprintf(stdout, "Loaded: %s\n", programPath)
		_, _ = fmt.Fprintf(stdout, "Entry point: 0x%08X\n", prog.EntryPoint)
		_, _ = fmt.Fprintf(stdout, "Segments: %d\n", len(prog.Segments))
	}

	if opts.disasm {
		disassemble(stdout, prog)
		return 0
	}

	return runEmulation(cfg, opts, prog, stdout, stderr)
}

// runEmulation runs the program in the functional emulator.
func runEmulation(
	cfg *config.Config,
	opts *options,
	prog *loader.Program,
	stdout, stderr io.Writer,
) int {
	emuOpts := append(cfg.EmulatorOptions(), emu.WithLogger(newLogger(stderr, cfg.Verbosity)))
	if cfg.Trace {
		emuOpts = append(emuOpts, emu.WithHook(emu.NewTracer(stdout)))
	}

	emulator := emu.NewEmulator(emuOpts...)
	if err := prog.LoadIntoEmulator(emulator); err != nil {
		_, _ = fmt.Fprintf(stderr, "Error loading program: %v\n", err)
		return 1
	}
	if cfg.EntryPoint != 0 || opts.set["entry"] {
		emulator.SetPC(cfg.EntryPoint)
	}

	runErr := emulator.Run()

	_, _ = fmt.Fprintf(stdout, "Instructions executed: %d\n", emulator.InstructionCount())
	if opts.verbose {
		emulator.DumpRegisters(stdout)
	}

	if opts.dumpMem != "" {
		start, end, err := parseRange(opts.dumpMem)
		if err != nil {
			_, _ = fmt.Fprintf(stderr, "Error: invalid -dump-mem: %v\n", err)
			return 1
		}
		if err := emulator.DumpMemory(stdout, start, end); err != nil {
			_, _ = fmt.Fprintf(stderr, "Error dumping memory: %v\n", err)
			return 1
		}
	}

	if runErr != nil {
		_, _ = fmt.Fprintf(stderr, "Error: %v\n", runErr)
		return 1
	}
	return 0
}

// disassemble prints every word of the program's executable segments.
func disassemble(w io.Writer, prog *loader.Program) {
	for _, seg := range prog.Segments {
		if seg.Flags&loader.SegmentFlagExecute == 0 {
			continue
		}
		for off := 0; off+4 <= len(seg.Data); off += 4 {
			word := binary.BigEndian.Uint32(seg.Data[off:])
			_, _ = fmt.Fprintf(w, "0x%08x: %08x  %s\n",
				seg.VirtAddr+uint32(off), word, insts.Disassemble(word))
		}
	}
}

func newLogger(w io.Writer, verbosity int) logr.Logger {
	return funcr.New(func(prefix, args string) {
		if prefix != "" {
			_, _ = fmt.Fprintf(w, "%s: %s\n", prefix, args)
			return
		}
		_, _ = fmt.Fprintln(w, args)
	}, funcr.Options{Verbosity: verbosity}).WithName("mipsim")
}

func parseAddr(s string) (uint32, error) {
	v, err := strconv.ParseUint(s, 0, 32)
	if err != nil {
		return 0, err
	}
	return uint32(v), nil
}

// parseRange parses "start:end" with each bound in Go integer syntax.
func parseRange(s string) (uint32, uint32, error) {
	lo, hi, ok := strings.Cut(s, ":")
	if !ok {
		return 0, 0, fmt.Errorf("expected start:end, got %q", s)
	}
	start, err := parseAddr(lo)
	if err != nil {
		return 0, 0, err
	}
	end, err := parseAddr(hi)
	if err != nil {
		return 0, 0, err
	}
	if end < start {
		return 0, 0, fmt.Errorf("end 0x%X is before start 0x%X", end, start)
	}
	return start, end, nil
}
