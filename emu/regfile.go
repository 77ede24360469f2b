// Package emu provides functional MIPS32 emulation.
package emu

// NumRegs is the number of general-purpose registers.
const NumRegs = 32

// RegFile represents the MIPS32 register file.
// It contains 32 general-purpose registers, the HI/LO accumulator pair and
// the program counter.
type RegFile struct {
	// R holds general-purpose registers R0-R31.
	// R[0] always reads as 0.
	R [NumRegs]uint32

	// HI and LO hold multiply/divide results.
	HI uint32
	LO uint32

	// PC is the program counter.
	PC uint32
}

// ReadReg reads a register value. Register 0 returns 0.
// Registers >= 32 return 0.
func (r *RegFile) ReadReg(reg uint8) uint32 {
	if reg == 0 || reg >= NumRegs {
		return 0
	}
	return r.R[reg]
}

// WriteReg writes a value to a register. Writes to register 0 and to
// registers >= 32 are ignored.
func (r *RegFile) WriteReg(reg uint8, value uint32) {
	if reg == 0 || reg >= NumRegs {
		return
	}
	r.R[reg] = value
}

// Reset clears every register, HI, LO and the PC.
func (r *RegFile) Reset() {
	*r = RegFile{}
}
