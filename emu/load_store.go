// Package emu provides functional MIPS32 emulation.
package emu

// LoadStoreUnit implements MIPS32 load and store operations.
type LoadStoreUnit struct {
	regFile *RegFile
	memory  *Memory
}

// NewLoadStoreUnit creates a new LoadStoreUnit connected to the given
// register file and memory.
func NewLoadStoreUnit(regFile *RegFile, memory *Memory) *LoadStoreUnit {
	return &LoadStoreUnit{
		regFile: regFile,
		memory:  memory,
	}
}

// EffectiveAddress computes Rs + sext(offset), wrapping modulo 2^32.
func (lsu *LoadStoreUnit) EffectiveAddress(rs uint8, offset uint16) uint32 {
	return lsu.regFile.ReadReg(rs) + signExtend16(offset)
}

// LW performs a word load: Rt = mem[Rs + offset]
func (lsu *LoadStoreUnit) LW(rt, rs uint8, offset uint16) {
	value := lsu.memory.Read32(lsu.EffectiveAddress(rs, offset))
	lsu.regFile.WriteReg(rt, value)
}

// SW performs a word store: mem[Rs + offset] = Rt
func (lsu *LoadStoreUnit) SW(rt, rs uint8, offset uint16) {
	lsu.memory.Write32(lsu.EffectiveAddress(rs, offset), lsu.regFile.ReadReg(rt))
}
