// Package insts provides MIPS32 instruction definitions and decoding.
package insts

// Format represents an instruction encoding format.
type Format uint8

// Instruction formats.
const (
	FormatUnknown Format = iota
	FormatR              // Register (opcode 0)
	FormatI              // Immediate
	FormatJ              // Jump (opcode 2 and 3)
)

func (f Format) String() string {
	switch f {
	case FormatR:
		return "R"
	case FormatI:
		return "I"
	case FormatJ:
		return "J"
	default:
		return "unknown"
	}
}

// Field masks.
const (
	opcodeMask = 0x3F
	regMask    = 0x1F
	shamtMask  = 0x1F
	functMask  = 0x3F
	immMask    = 0xFFFF
	targetMask = 0x3FFFFFFF
)

// Instruction represents a decoded MIPS32 instruction.
type Instruction struct {
	// Word is the raw instruction word the fields were extracted from.
	Word   uint32
	Format Format // Encoding format

	// R-Type and I-Type register fields
	Rs uint8 // First source register
	Rt uint8 // Second source register, or destination for I-Type
	Rd uint8 // Destination register (R-Type)

	Shamt uint8 // Shift amount (R-Type)
	Funct uint8 // Function code (R-Type)

	// Imm is the raw 16-bit immediate. Sign interpretation is left to the
	// consumer.
	Imm uint16

	// Target holds the low 30 bits of a J-Type word. Consumers only use
	// the architectural 26-bit field.
	Target uint32
}

// Opcode re-derives bits [31:26] from the raw word.
func (i *Instruction) Opcode() uint8 {
	return ExtractOpcode(i.Word)
}

// SignedImm returns the immediate sign-extended to 32 bits.
func (i *Instruction) SignedImm() int32 {
	return int32(int16(i.Imm))
}

// ExtractOpcode returns bits [31:26] of an instruction word.
func ExtractOpcode(word uint32) uint8 {
	return uint8((word >> 26) & opcodeMask)
}

// Decoder decodes MIPS32 machine code into instructions.
type Decoder struct{}

// NewDecoder creates a new MIPS32 instruction decoder.
func NewDecoder() *Decoder {
	return &Decoder{}
}

// Decode decodes a 32-bit instruction word. Every word yields an
// instruction: opcode 0 is R-Type, opcodes 2 and 3 are J-Type, everything
// else is I-Type.
func (d *Decoder) Decode(word uint32) *Instruction {
	inst := &Instruction{Word: word}

	switch ExtractOpcode(word) {
	case 0x00:
		d.decodeR(word, inst)
	case 0x02, 0x03:
		d.decodeJ(word, inst)
	default:
		d.decodeI(word, inst)
	}

	return inst
}

// decodeR decodes register instructions.
// Format: 000000 | rs | rt | rd | shamt | funct
func (d *Decoder) decodeR(word uint32, inst *Instruction) {
	inst.Format = FormatR
	inst.Rs = uint8((word >> 21) & regMask)     // bits [25:21]
	inst.Rt = uint8((word >> 16) & regMask)     // bits [20:16]
	inst.Rd = uint8((word >> 11) & regMask)     // bits [15:11]
	inst.Shamt = uint8((word >> 6) & shamtMask) // bits [10:6]
	inst.Funct = uint8(word & functMask)        // bits [5:0]
}

// decodeI decodes immediate instructions.
// Format: opcode | rs | rt | imm16
func (d *Decoder) decodeI(word uint32, inst *Instruction) {
	inst.Format = FormatI
	inst.Rs = uint8((word >> 21) & regMask)
	inst.Rt = uint8((word >> 16) & regMask)
	inst.Imm = uint16(word & immMask)
}

// decodeJ decodes jump instructions.
// Format: opcode | target26
func (d *Decoder) decodeJ(word uint32, inst *Instruction) {
	inst.Format = FormatJ
	inst.Target = word & targetMask
}
