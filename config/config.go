// Package config provides the JSON run configuration for the emulator.
package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/sarchlab/mipsim/emu"
)

// Config holds the settings for one emulator run.
type Config struct {
	// MemorySize is the size of the flat memory in bytes.
	// Default: 1 MiB.
	MemorySize uint32 `json:"memory_size"`

	// EntryPoint overrides the program's entry point when non-zero.
	EntryPoint uint32 `json:"entry_point"`

	// LoadAddress is where raw and hex images are placed.
	LoadAddress uint32 `json:"load_address"`

	// MaxInstructions limits the run. Default: 0 (no limit).
	MaxInstructions uint64 `json:"max_instructions"`

	// Trace prints each instruction as it executes.
	Trace bool `json:"trace"`

	// Verbosity is the logr verbosity threshold.
	Verbosity int `json:"verbosity"`
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() *Config {
	return &Config{
		MemorySize: emu.DefaultMemorySize,
	}
}

// LoadConfig loads a Config from a JSON file. Fields missing from the file
// keep their defaults.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config := DefaultConfig()
	if err := json.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	return config, nil
}

// SaveConfig writes a Config to a JSON file.
func (c *Config) SaveConfig(path string) error {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Validate checks that the memory size and entry point are usable.
func (c *Config) Validate() error {
	if c.MemorySize == 0 {
		return fmt.Errorf("memory_size must be > 0")
	}
	if c.MemorySize%4 != 0 {
		return fmt.Errorf("memory_size must be a multiple of 4")
	}
	if c.EntryPoint%4 != 0 {
		return fmt.Errorf("entry_point must be word aligned")
	}
	if uint64(c.EntryPoint)+4 > uint64(c.MemorySize) {
		return fmt.Errorf("entry_point 0x%08X is outside memory", c.EntryPoint)
	}
	if c.LoadAddress >= c.MemorySize {
		return fmt.Errorf("load_address 0x%08X is outside memory", c.LoadAddress)
	}
	if c.Verbosity < 0 {
		return fmt.Errorf("verbosity must be >= 0")
	}
	return nil
}

// Clone returns a copy of the Config.
func (c *Config) Clone() *Config {
	clone := *c
	return &clone
}

// EmulatorOptions converts the run settings into emulator options.
func (c *Config) EmulatorOptions() []emu.EmulatorOption {
	return []emu.EmulatorOption{
		emu.WithMemorySize(c.MemorySize),
		emu.WithMaxInstructions(c.MaxInstructions),
	}
}
