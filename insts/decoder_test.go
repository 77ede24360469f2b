package insts_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/mipsim/insts"
)

var _ = Describe("Decoder", func() {
	var decoder *insts.Decoder

	BeforeEach(func() {
		decoder = insts.NewDecoder()
	})

	Describe("R-Type", func() {
		// add R1, R2, R3 -> 0x00430820
		// Encoding: 000000 | rs=2 | rt=3 | rd=1 | shamt=0 | funct=0x20
		It("should decode add R1, R2, R3", func() {
			inst := decoder.Decode(0x00430820)

			Expect(inst.Format).To(Equal(insts.FormatR))
			Expect(inst.Rs).To(Equal(uint8(2)))
			Expect(inst.Rt).To(Equal(uint8(3)))
			Expect(inst.Rd).To(Equal(uint8(1)))
			Expect(inst.Shamt).To(Equal(uint8(0)))
			Expect(inst.Funct).To(Equal(uint8(0x20)))
			Expect(inst.Word).To(Equal(uint32(0x00430820)))
		})

		// sub R4, R1, R2 -> 0x00222022
		It("should decode sub R4, R1, R2", func() {
			inst := decoder.Decode(0x00222022)

			Expect(inst.Format).To(Equal(insts.FormatR))
			Expect(inst.Rs).To(Equal(uint8(1)))
			Expect(inst.Rt).To(Equal(uint8(2)))
			Expect(inst.Rd).To(Equal(uint8(4)))
			Expect(inst.Funct).To(Equal(uint8(0x22)))
		})

		// sll R2, R1, 4 -> 0x00011100
		It("should decode the shift amount", func() {
			inst := decoder.Decode(0x00011100)

			Expect(inst.Format).To(Equal(insts.FormatR))
			Expect(inst.Rt).To(Equal(uint8(1)))
			Expect(inst.Rd).To(Equal(uint8(2)))
			Expect(inst.Shamt).To(Equal(uint8(4)))
			Expect(inst.Funct).To(Equal(uint8(0)))
		})

		It("should decode the halt word as an R-Type", func() {
			inst := decoder.Decode(0)

			Expect(inst.Format).To(Equal(insts.FormatR))
			Expect(inst.Opcode()).To(Equal(uint8(0)))
		})

		It("should decode all fields at their maximum", func() {
			inst := decoder.Decode(encodeR(31, 31, 31, 31, 0x3F))

			Expect(inst.Rs).To(Equal(uint8(31)))
			Expect(inst.Rt).To(Equal(uint8(31)))
			Expect(inst.Rd).To(Equal(uint8(31)))
			Expect(inst.Shamt).To(Equal(uint8(31)))
			Expect(inst.Funct).To(Equal(uint8(0x3F)))
		})
	})

	Describe("I-Type", func() {
		// lw R5, 0(R6) -> 0x8CC50000
		It("should decode lw R5, 0(R6)", func() {
			inst := decoder.Decode(0x8CC50000)

			Expect(inst.Format).To(Equal(insts.FormatI))
			Expect(inst.Opcode()).To(Equal(uint8(0x23)))
			Expect(inst.Rs).To(Equal(uint8(6)))
			Expect(inst.Rt).To(Equal(uint8(5)))
			Expect(inst.Imm).To(Equal(uint16(0)))
		})

		// sw R5, 0(R6) -> 0xACC50000
		It("should decode sw R5, 0(R6)", func() {
			inst := decoder.Decode(0xACC50000)

			Expect(inst.Format).To(Equal(insts.FormatI))
			Expect(inst.Opcode()).To(Equal(uint8(0x2B)))
			Expect(inst.Rs).To(Equal(uint8(6)))
			Expect(inst.Rt).To(Equal(uint8(5)))
		})

		// addi R3, R2, -1 -> 0x2043FFFF
		It("should keep the immediate as a raw 16-bit pattern", func() {
			inst := decoder.Decode(0x2043FFFF)

			Expect(inst.Format).To(Equal(insts.FormatI))
			Expect(inst.Imm).To(Equal(uint16(0xFFFF)))
			Expect(inst.SignedImm()).To(Equal(int32(-1)))
		})

		It("should not sign-extend positive immediates", func() {
			inst := decoder.Decode(encodeI(0x0D, 2, 5, 0x7FFF))

			Expect(inst.Imm).To(Equal(uint16(0x7FFF)))
			Expect(inst.SignedImm()).To(Equal(int32(0x7FFF)))
		})

		It("should decode unsupported opcodes as I-Type", func() {
			inst := decoder.Decode(0xFC000000)

			Expect(inst.Format).To(Equal(insts.FormatI))
			Expect(inst.Opcode()).To(Equal(uint8(0x3F)))
		})
	})

	Describe("J-Type", func() {
		// j 16 -> 0x08000010
		It("should decode j", func() {
			inst := decoder.Decode(0x08000010)

			Expect(inst.Format).To(Equal(insts.FormatJ))
			Expect(inst.Opcode()).To(Equal(uint8(0x02)))
			// The low 30 bits are retained, including two opcode bits.
			Expect(inst.Target).To(Equal(uint32(0x08000010)))
			Expect(inst.Target & 0x03FFFFFF).To(Equal(uint32(16)))
		})

		It("should decode jal", func() {
			inst := decoder.Decode(encodeJ(0x03, 0x3FFFFFF))

			Expect(inst.Format).To(Equal(insts.FormatJ))
			Expect(inst.Opcode()).To(Equal(uint8(0x03)))
			Expect(inst.Target & 0x03FFFFFF).To(Equal(uint32(0x3FFFFFF)))
		})
	})

	It("should be total over opcodes", func() {
		for op := uint32(0); op < 64; op++ {
			inst := decoder.Decode(op << 26)
			Expect(inst.Format).NotTo(Equal(insts.FormatUnknown))
		}
	})
})
