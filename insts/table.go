package insts

// Op represents a supported MIPS32 operation.
type Op uint16

// MIPS32 operations.
const (
	OpUnknown Op = iota
	OpADD
	OpSUB
	OpAND
	OpOR
	OpSLT
	OpSLL
	OpJR
	OpJALR
	OpADDI
	OpANDI
	OpORI
	OpSLTI
	OpLW
	OpSW
	OpBEQ
	OpBNE
	OpJ
	OpJAL
)

// Syntax selects how the operands of an operation are rendered.
type Syntax uint8

// Operand syntaxes.
const (
	SyntaxUnknown  Syntax = iota
	SyntaxRRR             // rd, rs, rt
	SyntaxShift           // rd, rt, shamt
	SyntaxJumpReg         // rs
	SyntaxLinkReg         // rd, rs
	SyntaxArithImm        // rt, rs, signed imm
	SyntaxLogicImm        // rt, rs, unsigned imm
	SyntaxMem             // rt, signed imm(rs)
	SyntaxBranch          // rs, rt, signed imm
	SyntaxJump            // target
)

// OpInfo describes one row of the operation table.
type OpInfo struct {
	Op       Op
	Mnemonic string
	Format   Format
	Opcode   uint8
	Funct    uint8 // only meaningful for FormatR
	Syntax   Syntax
}

var opTable = []OpInfo{
	{OpADD, "add", FormatR, 0x00, 0x20, SyntaxRRR},
	{OpSUB, "sub", FormatR, 0x00, 0x22, SyntaxRRR},
	{OpAND, "and", FormatR, 0x00, 0x24, SyntaxRRR},
	{OpOR, "or", FormatR, 0x00, 0x25, SyntaxRRR},
	{OpSLT, "slt", FormatR, 0x00, 0x2A, SyntaxRRR},
	{OpSLL, "sll", FormatR, 0x00, 0x00, SyntaxShift},
	{OpJR, "jr", FormatR, 0x00, 0x08, SyntaxJumpReg},
	{OpJALR, "jalr", FormatR, 0x00, 0x09, SyntaxLinkReg},
	{OpADDI, "addi", FormatI, 0x08, 0, SyntaxArithImm},
	{OpANDI, "andi", FormatI, 0x0C, 0, SyntaxLogicImm},
	{OpORI, "ori", FormatI, 0x0D, 0, SyntaxLogicImm},
	{OpSLTI, "slti", FormatI, 0x0A, 0, SyntaxArithImm},
	{OpLW, "lw", FormatI, 0x23, 0, SyntaxMem},
	{OpSW, "sw", FormatI, 0x2B, 0, SyntaxMem},
	{OpBEQ, "beq", FormatI, 0x04, 0, SyntaxBranch},
	{OpBNE, "bne", FormatI, 0x05, 0, SyntaxBranch},
	{OpJ, "j", FormatJ, 0x02, 0, SyntaxJump},
	{OpJAL, "jal", FormatJ, 0x03, 0, SyntaxJump},
}

var (
	byFunct  = map[uint8]*OpInfo{}
	byOpcode = map[uint8]*OpInfo{}
	byOp     = map[Op]*OpInfo{}
)

func init() {
	for i := range opTable {
		info := &opTable[i]
		if info.Format == FormatR {
			byFunct[info.Funct] = info
		} else {
			byOpcode[info.Opcode] = info
		}
		byOp[info.Op] = info
	}
}

// Ops returns a copy of the operation table.
func Ops() []OpInfo {
	out := make([]OpInfo, len(opTable))
	copy(out, opTable)
	return out
}

// Info returns the table row of an operation.
func Info(op Op) (OpInfo, bool) {
	info, ok := byOp[op]
	if !ok {
		return OpInfo{}, false
	}
	return *info, true
}

// Lookup finds the table row for a decoded instruction. R-type rows are
// found by the Funct field; other rows by the opcode of the raw word. A row
// only matches when its format agrees with the decoded shape.
func Lookup(inst *Instruction) (OpInfo, bool) {
	var info *OpInfo

	if inst.Format == FormatR {
		info = byFunct[inst.Funct]
	} else {
		info = byOpcode[inst.Opcode()]
	}

	if info == nil || info.Format != inst.Format {
		return OpInfo{}, false
	}
	return *info, true
}

func (op Op) String() string {
	info, ok := byOp[op]
	if !ok {
		return "unknown"
	}
	return info.Mnemonic
}
