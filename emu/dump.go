package emu

import (
	"fmt"
	"io"
)

// DumpRegisters writes R0-R31, HI, LO and PC, one per line.
func (e *Emulator) DumpRegisters(w io.Writer) {
	for i := uint8(0); i < NumRegs; i++ {
		_, _ = fmt.Fprintf(w, "R%d: 0x%08x\n", i, e.regFile.ReadReg(i))
	}
	_, _ = fmt.Fprintf(w, "HI: 0x%08x\n", e.regFile.HI)
	_, _ = fmt.Fprintf(w, "LO: 0x%08x\n", e.regFile.LO)
	_, _ = fmt.Fprintf(w, "PC: 0x%08x\n", e.regFile.PC)
}

// DumpMemory writes the words in [start, end), one per line.
func (e *Emulator) DumpMemory(w io.Writer, start, end uint32) error {
	if uint64(end) > uint64(e.memory.Size()) {
		return &MemoryFault{Addr: start, Size: end - start, Limit: e.memory.Size()}
	}

	for addr := uint64(start); addr+4 <= uint64(end); addr += 4 {
		_, _ = fmt.Fprintf(w, "0x%08x: 0x%08x\n", addr, e.memory.Read32(uint32(addr)))
	}
	return nil
}
