package emu

import (
	"encoding/binary"
	"fmt"
)

// DefaultMemorySize is the memory size used when none is configured (1 MiB).
const DefaultMemorySize = 1 << 20

// MemoryFault reports an access that does not fit inside memory.
type MemoryFault struct {
	Addr  uint32 // First byte of the access
	Size  uint32 // Access width in bytes
	Limit uint32 // Memory size
	Write bool
}

func (f *MemoryFault) Error() string {
	kind := "read"
	if f.Write {
		kind = "write"
	}
	return fmt.Sprintf("memory %s of %d bytes at 0x%08X exceeds memory size 0x%X",
		kind, f.Size, f.Addr, f.Limit)
}

// Memory is a flat, fixed-size, byte-addressable store. Words are encoded
// big-endian. Accesses that do not fit panic with a *MemoryFault; addresses
// never wrap.
type Memory struct {
	data []byte
}

// NewMemory creates a zero-filled memory of the given size in bytes.
func NewMemory(size uint32) *Memory {
	return &Memory{data: make([]byte, size)}
}

// Size returns the memory size in bytes.
func (m *Memory) Size() uint32 {
	return uint32(len(m.data))
}

// Reset zero-fills the memory without reallocating it.
func (m *Memory) Reset() {
	clear(m.data)
}

func (m *Memory) check(addr, size uint32, write bool) {
	if uint64(addr)+uint64(size) > uint64(len(m.data)) {
		panic(&MemoryFault{Addr: addr, Size: size, Limit: m.Size(), Write: write})
	}
}

// Read8 reads a byte.
func (m *Memory) Read8(addr uint32) byte {
	m.check(addr, 1, false)
	return m.data[addr]
}

// Write8 writes a byte.
func (m *Memory) Write8(addr uint32, value byte) {
	m.check(addr, 1, true)
	m.data[addr] = value
}

// Read32 reads a big-endian word. It requires addr+4 <= Size().
func (m *Memory) Read32(addr uint32) uint32 {
	m.check(addr, 4, false)
	return binary.BigEndian.Uint32(m.data[addr:])
}

// Write32 writes a big-endian word. It requires addr+4 <= Size().
func (m *Memory) Write32(addr uint32, value uint32) {
	m.check(addr, 4, true)
	binary.BigEndian.PutUint32(m.data[addr:], value)
}

// LoadProgram copies an image into memory starting at addr.
func (m *Memory) LoadProgram(addr uint32, program []byte) error {
	if uint64(addr)+uint64(len(program)) > uint64(len(m.data)) {
		return &MemoryFault{Addr: addr, Size: uint32(len(program)), Limit: m.Size(), Write: true}
	}
	copy(m.data[addr:], program)
	return nil
}
