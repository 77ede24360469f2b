// Package emu provides functional MIPS32 emulation.
package emu

import (
	"errors"
	"fmt"

	"github.com/go-logr/logr"
	"github.com/sarchlab/akita/v4/sim"

	"github.com/sarchlab/mipsim/insts"
)

// HaltWord is the instruction word that stops Run.
const HaltWord = 0

var (
	// ErrMaxInstructions is returned when the instruction budget is spent.
	ErrMaxInstructions = errors.New("max instructions reached")

	// ErrUnknownInstruction is logged for words outside the operation
	// table. It never stops execution.
	ErrUnknownInstruction = errors.New("unknown instruction")
)

// StepResult represents the result of executing a single instruction.
type StepResult struct {
	// Halted is true if the fetched word was the halt word. PC is left
	// pointing at it.
	Halted bool

	// Err is set if an error occurred during execution.
	Err error
}

// Emulator executes MIPS32 instructions functionally.
//
// Hooks registered with AcceptHook observe execution at
// HookPosBeforeExecute, HookPosUnknownInst and HookPosHalt.
type Emulator struct {
	*sim.HookableBase

	regFile *RegFile
	memory  *Memory
	decoder *insts.Decoder

	// Execution units
	alu        *ALU
	lsu        *LoadStoreUnit
	branchUnit *BranchUnit

	logger     logr.Logger
	memorySize uint32

	// Execution state
	instructionCount uint64
	maxInstructions  uint64 // 0 means no limit
}

// EmulatorOption is a functional option for configuring the Emulator.
type EmulatorOption func(*Emulator)

// WithMemorySize sets the memory size in bytes.
func WithMemorySize(size uint32) EmulatorOption {
	return func(e *Emulator) {
		e.memorySize = size
	}
}

// WithLogger sets the logger diagnostics are written to.
func WithLogger(logger logr.Logger) EmulatorOption {
	return func(e *Emulator) {
		e.logger = logger
	}
}

// WithMaxInstructions sets the maximum number of instructions to execute.
// A value of 0 means no limit.
func WithMaxInstructions(max uint64) EmulatorOption {
	return func(e *Emulator) {
		e.maxInstructions = max
	}
}

// WithHook registers a hook at construction time.
func WithHook(hook sim.Hook) EmulatorOption {
	return func(e *Emulator) {
		e.AcceptHook(hook)
	}
}

// NewEmulator creates a new MIPS32 emulator with zeroed registers and
// zero-filled memory.
func NewEmulator(opts ...EmulatorOption) *Emulator {
	e := &Emulator{
		HookableBase: sim.NewHookableBase(),
		regFile:      &RegFile{},
		decoder:      insts.NewDecoder(),
		logger:       logr.Discard(),
		memorySize:   DefaultMemorySize,
	}

	for _, opt := range opts {
		opt(e)
	}

	e.memory = NewMemory(e.memorySize)

	// Create execution units
	e.alu = NewALU(e.regFile)
	e.lsu = NewLoadStoreUnit(e.regFile, e.memory)
	e.branchUnit = NewBranchUnit(e.regFile)

	return e
}

// RegFile returns the emulator's register file.
func (e *Emulator) RegFile() *RegFile {
	return e.regFile
}

// Memory returns the emulator's memory.
func (e *Emulator) Memory() *Memory {
	return e.memory
}

// InstructionCount returns the number of instructions executed.
func (e *Emulator) InstructionCount() uint64 {
	return e.instructionCount
}

// PC returns the program counter.
func (e *Emulator) PC() uint32 { return e.regFile.PC }

// SetPC sets the program counter.
func (e *Emulator) SetPC(pc uint32) { e.regFile.PC = pc }

// HI returns the HI register.
func (e *Emulator) HI() uint32 { return e.regFile.HI }

// SetHI sets the HI register.
func (e *Emulator) SetHI(v uint32) { e.regFile.HI = v }

// LO returns the LO register.
func (e *Emulator) LO() uint32 { return e.regFile.LO }

// SetLO sets the LO register.
func (e *Emulator) SetLO(v uint32) { e.regFile.LO = v }

// ReadReg reads a general-purpose register. R0 always reads 0.
func (e *Emulator) ReadReg(reg uint8) uint32 {
	return e.regFile.ReadReg(reg)
}

// WriteReg writes a general-purpose register. Writes to R0 are dropped.
func (e *Emulator) WriteReg(reg uint8, value uint32) {
	e.regFile.WriteReg(reg, value)
}

// ReadWord reads a big-endian word. It panics with a *MemoryFault if
// addr+4 exceeds the memory size.
func (e *Emulator) ReadWord(addr uint32) uint32 {
	return e.memory.Read32(addr)
}

// WriteWord writes a big-endian word. It panics with a *MemoryFault if
// addr+4 exceeds the memory size.
func (e *Emulator) WriteWord(addr, value uint32) {
	e.memory.Write32(addr, value)
}

// Disassemble renders an instruction word as assembly text.
func (e *Emulator) Disassemble(word uint32) string {
	return insts.Disassemble(word)
}

// LoadProgram copies a program image to entry and sets the PC there.
func (e *Emulator) LoadProgram(entry uint32, program []byte) error {
	if err := e.memory.LoadProgram(entry, program); err != nil {
		return fmt.Errorf("failed to load program: %w", err)
	}
	e.regFile.PC = entry
	return nil
}

// Reset returns registers, HI/LO, PC and memory to zero. The memory keeps
// its size and backing storage.
func (e *Emulator) Reset() {
	e.regFile.Reset()
	e.memory.Reset()
	e.instructionCount = 0
}

// Step fetches, decodes and executes a single instruction, then advances
// the PC by 4. The advance is applied on top of any PC a branch or jump
// handler has already set.
func (e *Emulator) Step() (result StepResult) {
	// Check instruction limit before executing
	if e.maxInstructions > 0 && e.instructionCount >= e.maxInstructions {
		return StepResult{Err: ErrMaxInstructions}
	}

	defer func() {
		if err := recoverFault(recover()); err != nil {
			result = StepResult{Err: err}
		}
	}()

	pc := e.regFile.PC

	// 1. Fetch
	word := e.memory.Read32(pc)
	if word == HaltWord {
		e.logger.V(1).Info("halt", "pc", hex32(pc), "instructions", e.instructionCount)
		e.invoke(HookPosHalt, HaltRecord{PC: pc, InstructionCount: e.instructionCount})
		return StepResult{Halted: true}
	}

	// 2. Decode
	inst := e.decoder.Decode(word)
	e.trace(pc, inst)

	// 3. Execute
	e.execute(inst)

	e.regFile.PC += 4
	e.instructionCount++

	return StepResult{}
}

// Run executes instructions until the halt word is fetched or an error
// occurs. A memory fault aborts the run and is returned as *MemoryFault.
func (e *Emulator) Run() error {
	for {
		result := e.Step()
		if result.Halted {
			return nil
		}
		if result.Err != nil {
			e.logger.Error(result.Err, "emulation stopped", "pc", hex32(e.regFile.PC))
			return result.Err
		}
	}
}

// Execute applies the semantics of one decoded instruction without
// advancing the PC. R-type operations are looked up by the Funct field and
// the rest by the opcode of the raw word. Unknown codes are reported and
// skipped; a memory fault is returned as *MemoryFault.
func (e *Emulator) Execute(inst *insts.Instruction) (err error) {
	defer func() {
		if fault := recoverFault(recover()); fault != nil {
			err = fault
		}
	}()

	e.execute(inst)
	return nil
}

// execute dispatches a decoded instruction to its handler.
func (e *Emulator) execute(inst *insts.Instruction) {
	info, ok := insts.Lookup(inst)
	if !ok {
		e.reportUnknown(inst)
		return
	}

	h, ok := handlers[info.Op]
	if !ok {
		e.reportUnknown(inst)
		return
	}

	h(e, inst)
}

func (e *Emulator) trace(pc uint32, inst *insts.Instruction) {
	logger := e.logger.V(2)
	if e.NumHooks() == 0 && !logger.Enabled() {
		return
	}

	var op insts.Op
	if info, ok := insts.Lookup(inst); ok {
		op = info.Op
	}

	text := insts.Render(inst)
	logger.Info("execute", "pc", hex32(pc), "inst", text)
	e.invoke(HookPosBeforeExecute, TraceRecord{PC: pc, Word: inst.Word, Op: op, Text: text})
}

func (e *Emulator) reportUnknown(inst *insts.Instruction) {
	record := UnknownInstruction{
		PC:     e.regFile.PC,
		Word:   inst.Word,
		Opcode: inst.Opcode(),
		Funct:  inst.Funct,
		Text:   insts.Render(inst),
	}

	e.logger.Error(ErrUnknownInstruction, "skipping instruction",
		"pc", hex32(record.PC),
		"word", hex32(record.Word),
		"opcode", record.Opcode,
		"funct", record.Funct)
	e.invoke(HookPosUnknownInst, record)
}

func (e *Emulator) invoke(pos *sim.HookPos, item interface{}) {
	if e.NumHooks() == 0 {
		return
	}
	e.InvokeHook(sim.HookCtx{
		Domain: e,
		Pos:    pos,
		Item:   item,
	})
}

// recoverFault converts a recovered *MemoryFault panic into an error and
// re-panics on anything else.
func recoverFault(r interface{}) error {
	if r == nil {
		return nil
	}
	if fault, ok := r.(*MemoryFault); ok {
		return fault
	}
	panic(r)
}

func hex32(v uint32) string {
	return fmt.Sprintf("0x%08X", v)
}
