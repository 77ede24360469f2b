package loader

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// LoadImage reads a raw image of big-endian words and places it at base.
// The entry point is base.
func LoadImage(path string, base uint32) (*Program, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read image file: %w", err)
	}
	if len(data)%4 != 0 {
		return nil, fmt.Errorf("image size %d is not a multiple of 4", len(data))
	}

	return singleSegment(base, data), nil
}

// LoadHex parses a text listing with one hexadecimal word per line and
// places it at base. An optional 0x prefix is accepted; text after '#' and
// blank lines are ignored.
func LoadHex(r io.Reader, base uint32) (*Program, error) {
	var data []byte

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++

		line := scanner.Text()
		if i := strings.IndexByte(line, '#'); i >= 0 {
			line = line[:i]
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		digits := strings.TrimPrefix(strings.TrimPrefix(line, "0x"), "0X")
		word, err := strconv.ParseUint(digits, 16, 32)
		if err != nil {
			return nil, fmt.Errorf("line %d: invalid word %q: %w", lineNo, line, err)
		}

		data = binary.BigEndian.AppendUint32(data, uint32(word))
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read hex listing: %w", err)
	}

	return singleSegment(base, data), nil
}

// LoadHexFile opens path and parses it with LoadHex.
func LoadHexFile(path string, base uint32) (*Program, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open hex file: %w", err)
	}
	defer func() { _ = f.Close() }()

	return LoadHex(f, base)
}

func singleSegment(base uint32, data []byte) *Program {
	return &Program{
		EntryPoint: base,
		Segments: []Segment{{
			VirtAddr: base,
			Data:     data,
			MemSize:  uint32(len(data)),
			Flags:    SegmentFlagAll,
		}},
	}
}

// LoadFile picks the format from the file extension: ".elf" is parsed as
// ELF, ".hex" as a hex listing, anything else as a raw image at base.
func LoadFile(path string, base uint32) (*Program, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".elf":
		return Load(path)
	case ".hex":
		return LoadHexFile(path, base)
	default:
		return LoadImage(path, base)
	}
}
