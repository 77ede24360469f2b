// Package benchmarks provides a workload harness that runs MIPS32 programs
// through the functional emulator and reports instruction counts and mixes.
package benchmarks

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sort"
	"time"

	"github.com/go-logr/logr"

	"github.com/sarchlab/mipsim/emu"
	"github.com/sarchlab/mipsim/insts"
)

// BenchmarkResult holds the results for a single benchmark run.
type BenchmarkResult struct {
	// Name identifies the benchmark
	Name string `json:"name"`

	// Description explains what the benchmark exercises
	Description string `json:"description"`

	// Instructions is the number of executed instructions
	Instructions uint64 `json:"instructions"`

	// Branches counts executed BEQ and BNE instructions
	Branches uint64 `json:"branches"`

	// Jumps counts executed J, JAL, JR and JALR instructions
	Jumps uint64 `json:"jumps"`

	// MemoryOps counts executed loads and stores
	MemoryOps uint64 `json:"memory_ops"`

	// Skipped counts instructions outside the operation table
	Skipped uint64 `json:"skipped"`

	// Mix maps mnemonics to execution counts
	Mix map[string]uint64 `json:"mix"`

	// Result is the final value of ResultReg
	Result uint32 `json:"result"`

	// Expected is the value the benchmark should leave in ResultReg
	Expected uint32 `json:"expected"`

	// Passed reports whether the run halted with the expected result
	Passed bool `json:"passed"`

	// Error is set if the run stopped on an error
	Error string `json:"error,omitempty"`

	// WallTime is the actual time taken to run the emulation
	WallTime time.Duration `json:"wall_time_ns"`
}

// InstructionsPerSecond returns the emulation speed.
func (r BenchmarkResult) InstructionsPerSecond() float64 {
	if r.WallTime <= 0 {
		return 0
	}
	return float64(r.Instructions) / r.WallTime.Seconds()
}

// Benchmark defines a single benchmark program.
type Benchmark struct {
	// Name identifies the benchmark
	Name string

	// Description explains what the benchmark exercises
	Description string

	// Setup prepares the emulator state (e.g., initialize registers, memory)
	Setup func(e *emu.Emulator)

	// Program is the big-endian MIPS32 machine code to execute
	Program []byte

	// ExpectedResult is the expected value of ResultReg (for validation)
	ExpectedResult uint32
}

// HarnessConfig configures the benchmark harness.
type HarnessConfig struct {
	// MemorySize is the emulator memory size in bytes
	MemorySize uint32

	// ProgramAddr is where programs are loaded and started
	ProgramAddr uint32

	// MaxInstructions bounds each run (0 = no limit)
	MaxInstructions uint64

	// Output is where to write results (default: os.Stdout)
	Output io.Writer

	// Logger receives emulator diagnostics
	Logger logr.Logger

	// Verbose enables detailed output
	Verbose bool
}

// DefaultConfig returns a default harness configuration.
func DefaultConfig() HarnessConfig {
	return HarnessConfig{
		MemorySize:      64 * 1024,
		ProgramAddr:     0,
		MaxInstructions: 1_000_000,
		Output:          os.Stdout,
		Logger:          logr.Discard(),
	}
}

// Harness runs benchmarks and reports results.
type Harness struct {
	config     HarnessConfig
	benchmarks []Benchmark
}

// NewHarness creates a new benchmark harness.
func NewHarness(config HarnessConfig) *Harness {
	if config.Output == nil {
		config.Output = os.Stdout
	}
	if config.Logger.GetSink() == nil {
		config.Logger = logr.Discard()
	}
	return &Harness{
		config:     config,
		benchmarks: []Benchmark{},
	}
}

// AddBenchmark adds a benchmark to the harness.
func (h *Harness) AddBenchmark(b Benchmark) {
	h.benchmarks = append(h.benchmarks, b)
}

// AddBenchmarks adds multiple benchmarks to the harness.
func (h *Harness) AddBenchmarks(benchmarks []Benchmark) {
	h.benchmarks = append(h.benchmarks, benchmarks...)
}

// RunAll executes all benchmarks and returns results.
func (h *Harness) RunAll() []BenchmarkResult {
	results := make([]BenchmarkResult, 0, len(h.benchmarks))

	for _, bench := range h.benchmarks {
		result := h.runBenchmark(bench)
		results = append(results, result)
	}

	return results
}

// runBenchmark executes a single benchmark on a fresh emulator.
func (h *Harness) runBenchmark(bench Benchmark) BenchmarkResult {
	counter := emu.NewOpCounter()
	e := emu.NewEmulator(
		emu.WithMemorySize(h.config.MemorySize),
		emu.WithMaxInstructions(h.config.MaxInstructions),
		emu.WithLogger(h.config.Logger.WithValues("benchmark", bench.Name)),
		emu.WithHook(counter),
	)

	result := BenchmarkResult{
		Name:        bench.Name,
		Description: bench.Description,
		Expected:    bench.ExpectedResult,
	}

	if err := e.LoadProgram(h.config.ProgramAddr, bench.Program); err != nil {
		result.Error = err.Error()
		return result
	}

	// Run setup if provided
	if bench.Setup != nil {
		bench.Setup(e)
	}

	start := time.Now()
	err := e.Run()
	result.WallTime = time.Since(start)

	result.Instructions = e.InstructionCount()
	result.Branches = counter.CountSyntax(insts.SyntaxBranch)
	result.Jumps = counter.CountSyntax(insts.SyntaxJump) +
		counter.CountSyntax(insts.SyntaxJumpReg) +
		counter.CountSyntax(insts.SyntaxLinkReg)
	result.MemoryOps = counter.CountSyntax(insts.SyntaxMem)
	result.Skipped = counter.Unknown()
	result.Mix = counter.Mix()
	result.Result = e.ReadReg(ResultReg)

	if err != nil {
		result.Error = err.Error()
	}
	result.Passed = err == nil && result.Result == result.Expected

	if h.config.Verbose {
		_, _ = fmt.Fprintf(h.config.Output, "ran %s: %d instructions\n",
			bench.Name, result.Instructions)
	}

	return result
}

// PrintResults outputs benchmark results in a human-readable format.
func (h *Harness) PrintResults(results []BenchmarkResult) {
	_, _ = fmt.Fprintln(h.config.Output, "=== MIPSim Benchmark Results ===")
	_, _ = fmt.Fprintln(h.config.Output, "")

	for _, r := range results {
		status := "PASS"
		if !r.Passed {
			status = "FAIL"
		}

		_, _ = fmt.Fprintf(h.config.Output, "Benchmark: %s [%s]\n", r.Name, status)
		_, _ = fmt.Fprintf(h.config.Output, "  Description: %s\n", r.Description)
		_, _ = fmt.Fprintf(h.config.Output, "  Result:       %d (expected %d)\n", r.Result, r.Expected)
		if r.Error != "" {
			_, _ = fmt.Fprintf(h.config.Output, "  Error:        %s\n", r.Error)
		}
		_, _ = fmt.Fprintln(h.config.Output, "  --- Execution ---")
		_, _ = fmt.Fprintf(h.config.Output, "  Instructions: %d\n", r.Instructions)
		_, _ = fmt.Fprintf(h.config.Output, "  Branches:     %d\n", r.Branches)
		_, _ = fmt.Fprintf(h.config.Output, "  Jumps:        %d\n", r.Jumps)
		_, _ = fmt.Fprintf(h.config.Output, "  Memory Ops:   %d\n", r.MemoryOps)
		if r.Skipped > 0 {
			_, _ = fmt.Fprintf(h.config.Output, "  Skipped:      %d\n", r.Skipped)
		}

		if len(r.Mix) > 0 {
			_, _ = fmt.Fprintln(h.config.Output, "  --- Mix ---")
			for _, name := range sortedKeys(r.Mix) {
				_, _ = fmt.Fprintf(h.config.Output, "  %-6s %d\n", name, r.Mix[name])
			}
		}

		_, _ = fmt.Fprintf(h.config.Output, "  Wall Time: %v\n", r.WallTime)
		_, _ = fmt.Fprintln(h.config.Output, "")
	}
}

// PrintCSV outputs benchmark results in CSV format for easy comparison.
func (h *Harness) PrintCSV(results []BenchmarkResult) {
	_, _ = fmt.Fprintln(h.config.Output,
		"name,instructions,branches,jumps,memory_ops,skipped,result,expected,passed")

	for _, r := range results {
		_, _ = fmt.Fprintf(h.config.Output, "%s,%d,%d,%d,%d,%d,%d,%d,%t\n",
			r.Name,
			r.Instructions,
			r.Branches,
			r.Jumps,
			r.MemoryOps,
			r.Skipped,
			r.Result,
			r.Expected,
			r.Passed,
		)
	}
}

func sortedKeys(m map[string]uint64) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// BenchmarkReport is the complete output format for benchmark results.
type BenchmarkReport struct {
	// Metadata about the benchmark run
	Metadata ReportMetadata `json:"metadata"`

	// Results is the list of individual benchmark results
	Results []BenchmarkResult `json:"results"`

	// Summary contains aggregate statistics
	Summary ReportSummary `json:"summary"`
}

// ReportMetadata contains information about the benchmark run.
type ReportMetadata struct {
	// Timestamp when the benchmark was run
	Timestamp string `json:"timestamp"`

	// MemorySize is the emulator memory size used
	MemorySize uint32 `json:"memory_size"`

	// MaxInstructions is the per-run instruction budget
	MaxInstructions uint64 `json:"max_instructions"`
}

// ReportSummary contains aggregate statistics across all benchmarks.
type ReportSummary struct {
	// TotalBenchmarks is the number of benchmarks run
	TotalBenchmarks int `json:"total_benchmarks"`

	// Passed is the number of benchmarks with the expected result
	Passed int `json:"passed"`

	// TotalInstructions is the sum of all executed instructions
	TotalInstructions uint64 `json:"total_instructions"`

	// TotalWallTime is the total wall clock time for all benchmarks
	TotalWallTime time.Duration `json:"total_wall_time_ns"`
}

// PrintJSON outputs benchmark results in JSON format for automated comparison.
func (h *Harness) PrintJSON(results []BenchmarkResult) error {
	summary := ReportSummary{TotalBenchmarks: len(results)}
	for _, r := range results {
		summary.TotalInstructions += r.Instructions
		summary.TotalWallTime += r.WallTime
		if r.Passed {
			summary.Passed++
		}
	}

	report := BenchmarkReport{
		Metadata: ReportMetadata{
			Timestamp:       time.Now().UTC().Format(time.RFC3339),
			MemorySize:      h.config.MemorySize,
			MaxInstructions: h.config.MaxInstructions,
		},
		Results: results,
		Summary: summary,
	}

	encoder := json.NewEncoder(h.config.Output)
	encoder.SetIndent("", "  ")
	return encoder.Encode(report)
}
