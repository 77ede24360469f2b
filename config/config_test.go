package config_test

import (
	"os"
	"path/filepath"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/mipsim/config"
	"github.com/sarchlab/mipsim/emu"
)

var _ = Describe("Config", func() {
	Describe("DefaultConfig", func() {
		It("should use a 1 MiB memory and no limits", func() {
			c := config.DefaultConfig()

			Expect(c.MemorySize).To(Equal(uint32(1 << 20)))
			Expect(c.EntryPoint).To(BeZero())
			Expect(c.LoadAddress).To(BeZero())
			Expect(c.MaxInstructions).To(BeZero())
			Expect(c.Trace).To(BeFalse())
			Expect(c.Validate()).To(Succeed())
		})
	})

	Describe("Validate", func() {
		var c *config.Config

		BeforeEach(func() {
			c = config.DefaultConfig()
		})

		It("should reject a zero memory size", func() {
			c.MemorySize = 0
			Expect(c.Validate()).To(MatchError(ContainSubstring("memory_size")))
		})

		It("should reject a memory size that is not word sized", func() {
			c.MemorySize = 1022
			Expect(c.Validate()).To(MatchError(ContainSubstring("multiple of 4")))
		})

		It("should reject an unaligned entry point", func() {
			c.EntryPoint = 2
			Expect(c.Validate()).To(MatchError(ContainSubstring("aligned")))
		})

		It("should reject an entry point past memory", func() {
			c.MemorySize = 64
			c.EntryPoint = 64
			Expect(c.Validate()).To(MatchError(ContainSubstring("outside memory")))
		})

		It("should reject a load address past memory", func() {
			c.MemorySize = 64
			c.LoadAddress = 128
			Expect(c.Validate()).To(MatchError(ContainSubstring("load_address")))
		})

		It("should reject a negative verbosity", func() {
			c.Verbosity = -1
			Expect(c.Validate()).To(HaveOccurred())
		})
	})

	Describe("LoadConfig and SaveConfig", func() {
		var dir string

		BeforeEach(func() {
			dir = GinkgoT().TempDir()
		})

		It("should round trip through a file", func() {
			c := config.DefaultConfig()
			c.MemorySize = 4096
			c.EntryPoint = 0x100
			c.MaxInstructions = 1000
			c.Trace = true
			c.Verbosity = 2

			path := filepath.Join(dir, "run.json")
			Expect(c.SaveConfig(path)).To(Succeed())

			loaded, err := config.LoadConfig(path)
			Expect(err).NotTo(HaveOccurred())
			Expect(loaded).To(Equal(c))
		})

		It("should keep defaults for missing fields", func() {
			path := filepath.Join(dir, "partial.json")
			Expect(os.WriteFile(path, []byte(`{"max_instructions": 5}`), 0644)).To(Succeed())

			loaded, err := config.LoadConfig(path)
			Expect(err).NotTo(HaveOccurred())
			Expect(loaded.MaxInstructions).To(Equal(uint64(5)))
			Expect(loaded.MemorySize).To(Equal(uint32(emu.DefaultMemorySize)))
		})

		It("should fail on a missing file", func() {
			_, err := config.LoadConfig(filepath.Join(dir, "missing.json"))
			Expect(err).To(MatchError(ContainSubstring("failed to read config file")))
		})

		It("should fail on malformed JSON", func() {
			path := filepath.Join(dir, "bad.json")
			Expect(os.WriteFile(path, []byte("{"), 0644)).To(Succeed())

			_, err := config.LoadConfig(path)
			Expect(err).To(MatchError(ContainSubstring("failed to parse config")))
		})
	})

	Describe("Clone", func() {
		It("should not share state with the original", func() {
			c := config.DefaultConfig()
			clone := c.Clone()
			clone.MemorySize = 8

			Expect(c.MemorySize).To(Equal(uint32(emu.DefaultMemorySize)))
		})
	})

	Describe("EmulatorOptions", func() {
		It("should size memory and set the budget", func() {
			c := config.DefaultConfig()
			c.MemorySize = 256
			c.MaxInstructions = 1

			e := emu.NewEmulator(c.EmulatorOptions()...)
			Expect(e.Memory().Size()).To(Equal(uint32(256)))

			e.WriteWord(0, 0x20010001) // addi R1, R0, 1
			e.WriteWord(4, 0x20010001)
			Expect(e.Run()).To(MatchError(emu.ErrMaxInstructions))
			Expect(e.InstructionCount()).To(Equal(uint64(1)))
		})
	})
})
