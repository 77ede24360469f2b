package emu_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/mipsim/emu"
)

var _ = Describe("RegFile", func() {
	var regFile *emu.RegFile

	BeforeEach(func() {
		regFile = &emu.RegFile{}
	})

	It("should read back written registers", func() {
		for i := uint8(1); i < emu.NumRegs; i++ {
			regFile.WriteReg(i, uint32(i)*0x01010101)
		}
		for i := uint8(1); i < emu.NumRegs; i++ {
			Expect(regFile.ReadReg(i)).To(Equal(uint32(i) * 0x01010101))
		}
	})

	It("should keep R0 at zero", func() {
		for _, v := range []uint32{1, 0xFFFFFFFF, 0x80000000} {
			regFile.WriteReg(0, v)
			Expect(regFile.ReadReg(0)).To(Equal(uint32(0)))
		}
	})

	It("should read R0 as zero even if the backing field is set", func() {
		regFile.R[0] = 42
		Expect(regFile.ReadReg(0)).To(Equal(uint32(0)))
	})

	It("should ignore out-of-range registers", func() {
		regFile.WriteReg(32, 7)
		Expect(regFile.ReadReg(32)).To(Equal(uint32(0)))
		Expect(regFile.ReadReg(0xFF)).To(Equal(uint32(0)))
	})

	It("should reset everything", func() {
		regFile.WriteReg(5, 5)
		regFile.HI = 1
		regFile.LO = 2
		regFile.PC = 0x100

		regFile.Reset()

		Expect(*regFile).To(BeZero())
	})
})
