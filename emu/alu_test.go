package emu_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/mipsim/emu"
)

var _ = Describe("ALU", func() {
	var (
		regFile *emu.RegFile
		alu     *emu.ALU
	)

	BeforeEach(func() {
		regFile = &emu.RegFile{}
		alu = emu.NewALU(regFile)
	})

	Describe("ADD", func() {
		It("should add registers", func() {
			regFile.WriteReg(1, 5)
			regFile.WriteReg(2, 10)

			alu.ADD(3, 1, 2)

			Expect(regFile.ReadReg(3)).To(Equal(uint32(15)))
		})

		It("should wrap on overflow", func() {
			regFile.WriteReg(1, 0xFFFFFFFF)
			regFile.WriteReg(2, 2)

			alu.ADD(3, 1, 2)

			Expect(regFile.ReadReg(3)).To(Equal(uint32(1)))
		})

		It("should discard writes to R0", func() {
			regFile.WriteReg(1, 5)

			alu.ADD(0, 1, 1)

			Expect(regFile.ReadReg(0)).To(Equal(uint32(0)))
		})
	})

	Describe("SUB", func() {
		It("should subtract registers", func() {
			regFile.WriteReg(1, 20)
			regFile.WriteReg(2, 5)

			alu.SUB(3, 1, 2)

			Expect(regFile.ReadReg(3)).To(Equal(uint32(15)))
		})

		It("should wrap on underflow", func() {
			regFile.WriteReg(2, 1)

			alu.SUB(3, 1, 2)

			Expect(regFile.ReadReg(3)).To(Equal(uint32(0xFFFFFFFF)))
		})
	})

	Describe("logic", func() {
		BeforeEach(func() {
			regFile.WriteReg(1, 0b1100)
			regFile.WriteReg(2, 0b1010)
		})

		It("should AND", func() {
			alu.AND(3, 1, 2)
			Expect(regFile.ReadReg(3)).To(Equal(uint32(0b1000)))
		})

		It("should OR", func() {
			alu.OR(3, 1, 2)
			Expect(regFile.ReadReg(3)).To(Equal(uint32(0b1110)))
		})
	})

	Describe("SLT", func() {
		It("should set when less", func() {
			regFile.WriteReg(1, 5)
			regFile.WriteReg(2, 10)

			alu.SLT(3, 1, 2)

			Expect(regFile.ReadReg(3)).To(Equal(uint32(1)))
		})

		It("should clear when not less", func() {
			regFile.WriteReg(1, 10)
			regFile.WriteReg(2, 10)
			regFile.WriteReg(3, 7)

			alu.SLT(3, 1, 2)

			Expect(regFile.ReadReg(3)).To(Equal(uint32(0)))
		})

		It("should compare unsigned", func() {
			regFile.WriteReg(1, 0xFFFFFFFF) // -1 if it were signed
			regFile.WriteReg(2, 1)

			alu.SLT(3, 1, 2)

			Expect(regFile.ReadReg(3)).To(Equal(uint32(0)))
		})
	})

	Describe("SLL", func() {
		It("should shift left", func() {
			regFile.WriteReg(1, 3)

			alu.SLL(2, 1, 4)

			Expect(regFile.ReadReg(2)).To(Equal(uint32(48)))
		})

		It("should drop bits shifted out", func() {
			regFile.WriteReg(1, 0x80000001)

			alu.SLL(2, 1, 1)

			Expect(regFile.ReadReg(2)).To(Equal(uint32(2)))
		})
	})

	Describe("immediates", func() {
		BeforeEach(func() {
			regFile.WriteReg(1, 5)
			regFile.WriteReg(2, 10)
		})

		It("should ADDI, ANDI and ORI", func() {
			alu.ADDI(3, 2, 10)
			Expect(regFile.ReadReg(3)).To(Equal(uint32(20)))

			alu.ANDI(4, 1, 15)
			Expect(regFile.ReadReg(4)).To(Equal(uint32(5)))

			alu.ORI(5, 2, 25)
			Expect(regFile.ReadReg(5)).To(Equal(uint32(27)))
		})

		It("should sign-extend the ADDI immediate", func() {
			alu.ADDI(3, 2, 0xFFFF) // -1

			Expect(regFile.ReadReg(3)).To(Equal(uint32(9)))
		})

		It("should wrap ADDI", func() {
			regFile.WriteReg(1, 0x7FFFFFFF)

			alu.ADDI(3, 1, 1)

			Expect(regFile.ReadReg(3)).To(Equal(uint32(0x80000000)))
		})

		It("should zero-extend logical immediates", func() {
			regFile.WriteReg(1, 0xFFFFFFFF)

			alu.ANDI(3, 1, 0xFFFF)
			Expect(regFile.ReadReg(3)).To(Equal(uint32(0x0000FFFF)))

			alu.ORI(4, 0, 0x8000)
			Expect(regFile.ReadReg(4)).To(Equal(uint32(0x00008000)))
		})

		It("should SLTI against the zero-extended immediate", func() {
			alu.SLTI(3, 1, 6)
			Expect(regFile.ReadReg(3)).To(Equal(uint32(1)))

			alu.SLTI(3, 1, 5)
			Expect(regFile.ReadReg(3)).To(Equal(uint32(0)))

			alu.SLTI(3, 1, 0xFFFF)
			Expect(regFile.ReadReg(3)).To(Equal(uint32(1)))
		})
	})
})
