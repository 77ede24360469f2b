// Package emu provides functional MIPS32 emulation.
package emu

// ALU implements MIPS32 arithmetic and logic operations.
// All arithmetic wraps modulo 2^32; nothing traps on overflow.
type ALU struct {
	regFile *RegFile
}

// NewALU creates a new ALU connected to the given register file.
func NewALU(regFile *RegFile) *ALU {
	return &ALU{regFile: regFile}
}

// ADD performs addition: Rd = Rs + Rt
func (a *ALU) ADD(rd, rs, rt uint8) {
	a.regFile.WriteReg(rd, a.regFile.ReadReg(rs)+a.regFile.ReadReg(rt))
}

// SUB performs subtraction: Rd = Rs - Rt
func (a *ALU) SUB(rd, rs, rt uint8) {
	a.regFile.WriteReg(rd, a.regFile.ReadReg(rs)-a.regFile.ReadReg(rt))
}

// AND performs bitwise AND: Rd = Rs & Rt
func (a *ALU) AND(rd, rs, rt uint8) {
	a.regFile.WriteReg(rd, a.regFile.ReadReg(rs)&a.regFile.ReadReg(rt))
}

// OR performs bitwise OR: Rd = Rs | Rt
func (a *ALU) OR(rd, rs, rt uint8) {
	a.regFile.WriteReg(rd, a.regFile.ReadReg(rs)|a.regFile.ReadReg(rt))
}

// SLT sets Rd to 1 if Rs < Rt, else 0. The comparison is unsigned.
func (a *ALU) SLT(rd, rs, rt uint8) {
	a.regFile.WriteReg(rd, lessThan(a.regFile.ReadReg(rs), a.regFile.ReadReg(rt)))
}

// SLL performs a logical left shift: Rd = Rt << shamt
func (a *ALU) SLL(rd, rt, shamt uint8) {
	a.regFile.WriteReg(rd, a.regFile.ReadReg(rt)<<(shamt&0x1F))
}

// ADDI adds a sign-extended immediate: Rt = Rs + sext(imm)
func (a *ALU) ADDI(rt, rs uint8, imm uint16) {
	a.regFile.WriteReg(rt, a.regFile.ReadReg(rs)+signExtend16(imm))
}

// ANDI ANDs a zero-extended immediate: Rt = Rs & imm
func (a *ALU) ANDI(rt, rs uint8, imm uint16) {
	a.regFile.WriteReg(rt, a.regFile.ReadReg(rs)&uint32(imm))
}

// ORI ORs a zero-extended immediate: Rt = Rs | imm
func (a *ALU) ORI(rt, rs uint8, imm uint16) {
	a.regFile.WriteReg(rt, a.regFile.ReadReg(rs)|uint32(imm))
}

// SLTI sets Rt to 1 if Rs < imm, else 0. The immediate is zero-extended
// and the comparison is unsigned, matching SLT.
func (a *ALU) SLTI(rt, rs uint8, imm uint16) {
	a.regFile.WriteReg(rt, lessThan(a.regFile.ReadReg(rs), uint32(imm)))
}

func lessThan(a, b uint32) uint32 {
	if a < b {
		return 1
	}
	return 0
}

// signExtend16 widens a 16-bit two's-complement value to 32 bits.
func signExtend16(imm uint16) uint32 {
	return uint32(int32(int16(imm)))
}
