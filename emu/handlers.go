package emu

import "github.com/sarchlab/mipsim/insts"

type handler func(e *Emulator, inst *insts.Instruction)

// handlers holds the semantics of every operation in the insts table.
var handlers = map[insts.Op]handler{
	// R-Type
	insts.OpADD: func(e *Emulator, i *insts.Instruction) { e.alu.ADD(i.Rd, i.Rs, i.Rt) },
	insts.OpSUB: func(e *Emulator, i *insts.Instruction) { e.alu.SUB(i.Rd, i.Rs, i.Rt) },
	insts.OpAND: func(e *Emulator, i *insts.Instruction) { e.alu.AND(i.Rd, i.Rs, i.Rt) },
	insts.OpOR:  func(e *Emulator, i *insts.Instruction) { e.alu.OR(i.Rd, i.Rs, i.Rt) },
	insts.OpSLT: func(e *Emulator, i *insts.Instruction) { e.alu.SLT(i.Rd, i.Rs, i.Rt) },
	insts.OpSLL: func(e *Emulator, i *insts.Instruction) { e.alu.SLL(i.Rd, i.Rt, i.Shamt) },
	insts.OpJR:  func(e *Emulator, i *insts.Instruction) { e.branchUnit.JR(i.Rs) },
	insts.OpJALR: func(e *Emulator, i *insts.Instruction) {
		e.branchUnit.JALR(i.Rd, i.Rs)
	},

	// I-Type
	insts.OpADDI: func(e *Emulator, i *insts.Instruction) { e.alu.ADDI(i.Rt, i.Rs, i.Imm) },
	insts.OpANDI: func(e *Emulator, i *insts.Instruction) { e.alu.ANDI(i.Rt, i.Rs, i.Imm) },
	insts.OpORI:  func(e *Emulator, i *insts.Instruction) { e.alu.ORI(i.Rt, i.Rs, i.Imm) },
	insts.OpSLTI: func(e *Emulator, i *insts.Instruction) { e.alu.SLTI(i.Rt, i.Rs, i.Imm) },
	insts.OpLW:   func(e *Emulator, i *insts.Instruction) { e.lsu.LW(i.Rt, i.Rs, i.Imm) },
	insts.OpSW:   func(e *Emulator, i *insts.Instruction) { e.lsu.SW(i.Rt, i.Rs, i.Imm) },
	insts.OpBEQ:  func(e *Emulator, i *insts.Instruction) { e.branchUnit.BEQ(i.Rs, i.Rt, i.Imm) },
	insts.OpBNE:  func(e *Emulator, i *insts.Instruction) { e.branchUnit.BNE(i.Rs, i.Rt, i.Imm) },

	// J-Type
	insts.OpJ:   func(e *Emulator, i *insts.Instruction) { e.branchUnit.J(i.Target) },
	insts.OpJAL: func(e *Emulator, i *insts.Instruction) { e.branchUnit.JAL(i.Target) },
}
