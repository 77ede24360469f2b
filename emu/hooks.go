package emu

import (
	"fmt"
	"io"

	"github.com/sarchlab/akita/v4/sim"

	"github.com/sarchlab/mipsim/insts"
)

// Hook positions invoked by the Emulator.
var (
	// HookPosBeforeExecute fires after decode, before the handler runs.
	// The item is a TraceRecord.
	HookPosBeforeExecute = &sim.HookPos{Name: "Emu Before Execute"}

	// HookPosUnknownInst fires when a word is outside the operation table.
	// The item is an UnknownInstruction.
	HookPosUnknownInst = &sim.HookPos{Name: "Emu Unknown Inst"}

	// HookPosHalt fires when the halt word is fetched. The item is a
	// HaltRecord.
	HookPosHalt = &sim.HookPos{Name: "Emu Halt"}
)

// TraceRecord describes an instruction about to execute.
type TraceRecord struct {
	PC   uint32
	Word uint32
	Op   insts.Op // OpUnknown for words outside the operation table
	Text string
}

// UnknownInstruction describes a skipped instruction.
type UnknownInstruction struct {
	PC     uint32
	Word   uint32
	Opcode uint8
	Funct  uint8
	Text   string
}

// HaltRecord describes the end of a run.
type HaltRecord struct {
	PC               uint32
	InstructionCount uint64
}

// Tracer is a hook that prints one line per executed instruction. A skipped
// word gets a single "(skipped)" line.
type Tracer struct {
	w io.Writer
}

// NewTracer creates a Tracer writing to w.
func NewTracer(w io.Writer) *Tracer {
	return &Tracer{w: w}
}

// Func implements sim.Hook.
func (t *Tracer) Func(ctx sim.HookCtx) {
	switch item := ctx.Item.(type) {
	case TraceRecord:
		if item.Op == insts.OpUnknown {
			return
		}
		_, _ = fmt.Fprintf(t.w, "0x%08x: %08x  %s\n", item.PC, item.Word, item.Text)
	case UnknownInstruction:
		_, _ = fmt.Fprintf(t.w, "0x%08x: %08x  %s (skipped)\n", item.PC, item.Word, item.Text)
	case HaltRecord:
		_, _ = fmt.Fprintf(t.w, "0x%08x: halt after %d instructions\n",
			item.PC, item.InstructionCount)
	}
}

// OpCounter is a hook that counts executed instructions per operation.
type OpCounter struct {
	counts  map[insts.Op]uint64
	unknown uint64
}

// NewOpCounter creates an empty OpCounter.
func NewOpCounter() *OpCounter {
	return &OpCounter{counts: make(map[insts.Op]uint64)}
}

// Func implements sim.Hook.
func (c *OpCounter) Func(ctx sim.HookCtx) {
	switch item := ctx.Item.(type) {
	case TraceRecord:
		if item.Op != insts.OpUnknown {
			c.counts[item.Op]++
		}
	case UnknownInstruction:
		c.unknown++
	}
}

// Count returns how many times op executed.
func (c *OpCounter) Count(op insts.Op) uint64 {
	return c.counts[op]
}

// Unknown returns how many instructions were skipped.
func (c *OpCounter) Unknown() uint64 {
	return c.unknown
}

// CountSyntax sums the counts of every operation rendered with the given
// syntax class, e.g. SyntaxBranch or SyntaxMem.
func (c *OpCounter) CountSyntax(syntax insts.Syntax) uint64 {
	var n uint64
	for op, count := range c.counts {
		if info, ok := insts.Info(op); ok && info.Syntax == syntax {
			n += count
		}
	}
	return n
}

// Mix returns the counts keyed by mnemonic.
func (c *OpCounter) Mix() map[string]uint64 {
	mix := make(map[string]uint64, len(c.counts))
	for op, count := range c.counts {
		mix[op.String()] = count
	}
	return mix
}

// Reset clears all counts.
func (c *OpCounter) Reset() {
	clear(c.counts)
	c.unknown = 0
}
