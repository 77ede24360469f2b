// Package insts provides MIPS32 instruction definitions, decoding and
// disassembly.
//
// This package splits a 32-bit instruction word into its encoding shape and
// maps the opcode and function fields onto a single table of supported
// operations. It supports:
//   - R-Type: ADD, SUB, AND, OR, SLT, SLL, JR, JALR
//   - I-Type: ADDI, ANDI, ORI, SLTI, LW, SW, BEQ, BNE
//   - J-Type: J, JAL
//
// The same table drives the emulator's dispatch and the disassembler, so the
// set of recognized codes cannot drift between the two.
//
// Usage:
//
//	decoder := insts.NewDecoder()
//	inst := decoder.Decode(0x00430820) // add R1, R2, R3
//	fmt.Printf("Rd: %d, Rs: %d, Rt: %d\n", inst.Rd, inst.Rs, inst.Rt)
//	fmt.Println(insts.Disassemble(0x00430820))
package insts
