package insts

import "fmt"

// jumpFieldMask keeps the architectural 26-bit jump target.
const jumpFieldMask = 0x03FFFFFF

var defaultDecoder = NewDecoder()

// Disassemble renders an instruction word as assembly text. It never fails:
// words outside the operation table render as "unknown opcode" or
// "unknown function" with the offending code.
func Disassemble(word uint32) string {
	return Render(defaultDecoder.Decode(word))
}

// Render renders an already decoded instruction.
func Render(inst *Instruction) string {
	info, ok := Lookup(inst)
	if !ok {
		return renderUnknown(inst)
	}

	m := info.Mnemonic
	switch info.Syntax {
	case SyntaxRRR:
		return fmt.Sprintf("%-6sR%d, R%d, R%d", m, inst.Rd, inst.Rs, inst.Rt)
	case SyntaxShift:
		return fmt.Sprintf("%-6sR%d, R%d, %d", m, inst.Rd, inst.Rt, inst.Shamt)
	case SyntaxJumpReg:
		return fmt.Sprintf("%-6sR%d", m, inst.Rs)
	case SyntaxLinkReg:
		return fmt.Sprintf("%-6sR%d, R%d", m, inst.Rd, inst.Rs)
	case SyntaxArithImm:
		return fmt.Sprintf("%-6sR%d, R%d, %d", m, inst.Rt, inst.Rs, inst.SignedImm())
	case SyntaxLogicImm:
		return fmt.Sprintf("%-6sR%d, R%d, %d", m, inst.Rt, inst.Rs, inst.Imm)
	case SyntaxMem:
		return fmt.Sprintf("%-6sR%d, %d(R%d)", m, inst.Rt, inst.SignedImm(), inst.Rs)
	case SyntaxBranch:
		return fmt.Sprintf("%-6sR%d, R%d, %d", m, inst.Rs, inst.Rt, inst.SignedImm())
	case SyntaxJump:
		return fmt.Sprintf("%-6s0x%08x", m, inst.Target&jumpFieldMask)
	default:
		return renderUnknown(inst)
	}
}

func renderUnknown(inst *Instruction) string {
	if inst.Format == FormatR {
		return fmt.Sprintf("unknown function 0x%02x", inst.Funct)
	}
	return fmt.Sprintf("unknown opcode 0x%02x", inst.Opcode())
}
