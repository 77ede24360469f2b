package emu_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/mipsim/emu"
)

var _ = Describe("BranchUnit", func() {
	var (
		regFile    *emu.RegFile
		branchUnit *emu.BranchUnit
	)

	BeforeEach(func() {
		regFile = &emu.RegFile{}
		branchUnit = emu.NewBranchUnit(regFile)
	})

	Describe("BEQ", func() {
		It("should branch by offset words when equal", func() {
			regFile.WriteReg(1, 5)
			regFile.WriteReg(2, 5)
			regFile.PC = 0

			branchUnit.BEQ(1, 2, 4)

			Expect(regFile.PC).To(Equal(uint32(16)))
		})

		It("should not branch when different", func() {
			regFile.WriteReg(1, 5)
			regFile.WriteReg(2, 10)
			regFile.PC = 0x40

			branchUnit.BEQ(1, 2, 4)

			Expect(regFile.PC).To(Equal(uint32(0x40)))
		})

		It("should branch backward", func() {
			regFile.PC = 0x100

			branchUnit.BEQ(0, 0, 0xFFFD) // -3 words

			Expect(regFile.PC).To(Equal(uint32(0x100 - 12)))
		})
	})

	Describe("BNE", func() {
		It("should branch by offset words when different", func() {
			regFile.WriteReg(1, 5)
			regFile.WriteReg(2, 10)
			regFile.PC = 0

			branchUnit.BNE(1, 2, 4)

			Expect(regFile.PC).To(Equal(uint32(16)))
		})

		It("should not branch when equal", func() {
			regFile.PC = 0x40

			branchUnit.BNE(0, 0, 4)

			Expect(regFile.PC).To(Equal(uint32(0x40)))
		})
	})

	Describe("J", func() {
		It("should jump inside the current region", func() {
			regFile.PC = 8

			branchUnit.J(16)

			Expect(regFile.PC).To(Equal(uint32(64)))
		})

		It("should keep the top four PC bits", func() {
			regFile.PC = 0x30000010

			branchUnit.J(0x10)

			Expect(regFile.PC).To(Equal(uint32(0x30000040)))
		})

		It("should only use the 26-bit target field", func() {
			regFile.PC = 8

			branchUnit.J(0x08000010) // opcode bits left in the field

			Expect(regFile.PC).To(Equal(uint32(64)))
		})
	})

	Describe("JAL", func() {
		It("should link PC + 4 in R31 and jump", func() {
			regFile.PC = 8

			branchUnit.JAL(16)

			Expect(regFile.PC).To(Equal(uint32(64)))
			Expect(regFile.ReadReg(31)).To(Equal(uint32(12)))
		})
	})

	Describe("JR", func() {
		It("should feed the register value through the jump rule", func() {
			regFile.WriteReg(2, 12)
			regFile.PC = 8

			branchUnit.JR(2)

			Expect(regFile.PC).To(Equal(uint32(48)))
		})
	})

	Describe("JALR", func() {
		It("should link PC + 4 in Rd and jump", func() {
			regFile.WriteReg(2, 12)
			regFile.WriteReg(1, 56)
			regFile.PC = 8

			branchUnit.JALR(31, 2)

			Expect(regFile.PC).To(Equal(uint32(48)))
			Expect(regFile.ReadReg(31)).To(Equal(uint32(12)))

			branchUnit.JALR(3, 1)

			Expect(regFile.PC).To(Equal(uint32(224)))
			Expect(regFile.ReadReg(3)).To(Equal(uint32(52)))
		})

		It("should read the target before writing the link register", func() {
			regFile.WriteReg(5, 12)
			regFile.PC = 0x20

			branchUnit.JALR(5, 5)

			Expect(regFile.PC).To(Equal(uint32(48)))
			Expect(regFile.ReadReg(5)).To(Equal(uint32(0x24)))
		})
	})

	It("should compute jump targets", func() {
		Expect(emu.JumpTarget(0xF0000004, 1)).To(Equal(uint32(0xF0000004)))
		Expect(emu.JumpTarget(0, 0x03FFFFFF)).To(Equal(uint32(0x0FFFFFFC)))
	})
})
