// Package emu provides functional MIPS32 emulation.
package emu

// LinkReg is the register JAL writes its return address to.
const LinkReg = 31

const (
	regionMask    = 0xF0000000
	jumpFieldMask = 0x03FFFFFF
)

// BranchUnit implements MIPS32 branch and jump operations.
//
// Handlers set PC to the computed target. The emulator's run loop adds 4 on
// top of whatever PC a handler leaves, taken branches included.
type BranchUnit struct {
	regFile *RegFile
}

// NewBranchUnit creates a new BranchUnit connected to the given register file.
func NewBranchUnit(regFile *RegFile) *BranchUnit {
	return &BranchUnit{regFile: regFile}
}

// BEQ branches by sext(offset)*4 bytes if Rs == Rt.
func (b *BranchUnit) BEQ(rs, rt uint8, offset uint16) {
	if b.regFile.ReadReg(rs) == b.regFile.ReadReg(rt) {
		b.branch(offset)
	}
}

// BNE branches by sext(offset)*4 bytes if Rs != Rt.
func (b *BranchUnit) BNE(rs, rt uint8, offset uint16) {
	if b.regFile.ReadReg(rs) != b.regFile.ReadReg(rt) {
		b.branch(offset)
	}
}

func (b *BranchUnit) branch(offset uint16) {
	b.regFile.PC += signExtend16(offset) << 2
}

// J jumps inside the current 256MB region:
// PC = (PC & 0xF0000000) | (target << 2), using the 26-bit target field.
func (b *BranchUnit) J(target uint32) {
	b.regFile.PC = JumpTarget(b.regFile.PC, target)
}

// JAL saves PC + 4 to R31, then jumps like J.
func (b *BranchUnit) JAL(target uint32) {
	b.regFile.WriteReg(LinkReg, b.regFile.PC+4)
	b.J(target)
}

// JR jumps using the value in Rs as the target field of J.
func (b *BranchUnit) JR(rs uint8) {
	b.J(b.regFile.ReadReg(rs))
}

// JALR saves PC + 4 to Rd, then jumps like JR.
func (b *BranchUnit) JALR(rd, rs uint8) {
	// Read the target first in case rd == rs.
	target := b.regFile.ReadReg(rs)

	b.regFile.WriteReg(rd, b.regFile.PC+4)
	b.J(target)
}

// JumpTarget computes the destination of a jump taken at pc.
func JumpTarget(pc, target uint32) uint32 {
	return (pc & regionMask) | ((target & jumpFieldMask) << 2)
}
