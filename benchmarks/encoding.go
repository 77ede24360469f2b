package benchmarks

import "encoding/binary"

// Helper functions for building MIPS32 programs

// BuildProgram assembles instruction words into a big-endian byte slice.
func BuildProgram(instrs ...uint32) []byte {
	program := make([]byte, 0, len(instrs)*4)
	for _, inst := range instrs {
		program = binary.BigEndian.AppendUint32(program, inst)
	}
	return program
}

// EncodeR encodes an R-Type instruction.
func EncodeR(rs, rt, rd, shamt, funct uint8) uint32 {
	return uint32(rs&0x1F)<<21 | uint32(rt&0x1F)<<16 | uint32(rd&0x1F)<<11 |
		uint32(shamt&0x1F)<<6 | uint32(funct&0x3F)
}

// EncodeI encodes an I-Type instruction. imm is truncated to 16 bits.
func EncodeI(opcode, rs, rt uint8, imm int32) uint32 {
	return uint32(opcode&0x3F)<<26 | uint32(rs&0x1F)<<21 | uint32(rt&0x1F)<<16 |
		uint32(imm)&0xFFFF
}

// EncodeJ encodes a J-Type instruction with a 26-bit target field.
func EncodeJ(opcode uint8, target uint32) uint32 {
	return uint32(opcode&0x3F)<<26 | target&0x03FFFFFF
}

// EncodeADD encodes add rd, rs, rt.
func EncodeADD(rd, rs, rt uint8) uint32 { return EncodeR(rs, rt, rd, 0, 0x20) }

// EncodeSUB encodes sub rd, rs, rt.
func EncodeSUB(rd, rs, rt uint8) uint32 { return EncodeR(rs, rt, rd, 0, 0x22) }

// EncodeAND encodes and rd, rs, rt.
func EncodeAND(rd, rs, rt uint8) uint32 { return EncodeR(rs, rt, rd, 0, 0x24) }

// EncodeOR encodes or rd, rs, rt.
func EncodeOR(rd, rs, rt uint8) uint32 { return EncodeR(rs, rt, rd, 0, 0x25) }

// EncodeSLT encodes slt rd, rs, rt.
func EncodeSLT(rd, rs, rt uint8) uint32 { return EncodeR(rs, rt, rd, 0, 0x2A) }

// EncodeSLL encodes sll rd, rt, shamt. sll R0, R0, 0 is the halt word.
func EncodeSLL(rd, rt, shamt uint8) uint32 { return EncodeR(0, rt, rd, shamt, 0x00) }

// EncodeJR encodes jr rs.
func EncodeJR(rs uint8) uint32 { return EncodeR(rs, 0, 0, 0, 0x08) }

// EncodeJALR encodes jalr rd, rs.
func EncodeJALR(rd, rs uint8) uint32 { return EncodeR(rs, 0, rd, 0, 0x09) }

// EncodeADDI encodes addi rt, rs, imm.
func EncodeADDI(rt, rs uint8, imm int32) uint32 { return EncodeI(0x08, rs, rt, imm) }

// EncodeSLTI encodes slti rt, rs, imm.
func EncodeSLTI(rt, rs uint8, imm int32) uint32 { return EncodeI(0x0A, rs, rt, imm) }

// EncodeANDI encodes andi rt, rs, imm.
func EncodeANDI(rt, rs uint8, imm uint16) uint32 { return EncodeI(0x0C, rs, rt, int32(imm)) }

// EncodeORI encodes ori rt, rs, imm.
func EncodeORI(rt, rs uint8, imm uint16) uint32 { return EncodeI(0x0D, rs, rt, int32(imm)) }

// EncodeLW encodes lw rt, offset(rs).
func EncodeLW(rt, rs uint8, offset int32) uint32 { return EncodeI(0x23, rs, rt, offset) }

// EncodeSW encodes sw rt, offset(rs).
func EncodeSW(rt, rs uint8, offset int32) uint32 { return EncodeI(0x2B, rs, rt, offset) }

// EncodeBEQ encodes beq rs, rt, offset.
func EncodeBEQ(rs, rt uint8, offset int32) uint32 { return EncodeI(0x04, rs, rt, offset) }

// EncodeBNE encodes bne rs, rt, offset.
func EncodeBNE(rs, rt uint8, offset int32) uint32 { return EncodeI(0x05, rs, rt, offset) }

// EncodeJMP encodes j target.
func EncodeJMP(target uint32) uint32 { return EncodeJ(0x02, target) }

// EncodeJAL encodes jal target.
func EncodeJAL(target uint32) uint32 { return EncodeJ(0x03, target) }

// BranchTo returns the branch offset that makes a branch at pc continue
// execution at dest. The run loop adds 4 after the branch is taken.
func BranchTo(pc, dest uint32) int32 {
	return (int32(dest) - int32(pc) - 4) / 4
}

// JumpTo returns the jump target field that makes a jump continue execution
// at dest.
func JumpTo(dest uint32) uint32 {
	return (dest - 4) >> 2
}
