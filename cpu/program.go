package cpu

import (
	"encoding/hex"
	"errors"
	"iter"
	"maps"
	"slices"
	"strconv"
	"strings"
)

// SourceMapEntry locates the source line that emitted bytes at an address.
type SourceMapEntry struct {
	LineNo  int     // 1-based line number.
	Command Command // Command of the line.
	Source  string  // Source text of the line.
}

// Variable is a label on data, watched while debugging.
type Variable struct {
	Label   string
	Address int
}

// Program is an assembled SIC-1 program.
type Program struct {
	Bytes       []uint8                // Image, loaded at address 0.
	SourceMap   map[int]SourceMapEntry // Keyed by the first address of each line.
	Variables   []Variable             // In definition order.
	Breakpoints []int                  // Addresses of breakpointed instructions.
}

// Image returns the memory image of the program.
func (prog *Program) Image() (image [MEMORY_SIZE]uint8) {
	copy(image[:], prog.Bytes)
	return
}

// Lookup returns the source line for an instruction address.
// An address inside a line reports that line with "?" as source.
// An address before any line reports line 0.
func (prog *Program) Lookup(ip int) (lineNo int, source string) {
	entry, ok := prog.SourceMap[ip]
	if ok {
		return entry.LineNo, entry.Source
	}

	best := -1
	for address := range prog.SourceMap {
		if address < ip && address > best {
			best = address
		}
	}
	if best < 0 {
		return 0, ""
	}

	return prog.SourceMap[best].LineNo, "?"
}

// IsBreakpoint returns true if a breakpoint is set at the address.
func (prog *Program) IsBreakpoint(ip int) bool {
	return slices.Contains(prog.Breakpoints, ip)
}

// Lines iterates the source map in address order.
func (prog *Program) Lines() iter.Seq2[int, SourceMapEntry] {
	return func(yield func(address int, entry SourceMapEntry) bool) {
		for _, address := range slices.Sorted(maps.Keys(prog.SourceMap)) {
			if !yield(address, prog.SourceMap[address]) {
				return
			}
		}
	}
}

// Hex returns the image as lower case hexadecimal.
func (prog *Program) Hex() string {
	return hex.EncodeToString(prog.Bytes)
}

// ParseHex loads an image from hexadecimal text.
// The program has no source map.
func ParseHex(text string) (prog *Program, err error) {
	text = strings.Join(strings.Fields(text), "")

	bytes, err := hex.DecodeString(text)
	if err != nil {
		var invalid hex.InvalidByteError
		if errors.As(err, &invalid) {
			err = ErrHexDigit
		} else {
			err = ErrHexLength
		}
		return
	}

	if len(bytes) > PROGRAM_SIZE_MAX {
		err = &ErrProgramTooLarge{Size: len(bytes), Max: PROGRAM_SIZE_MAX}
		return
	}

	prog = &Program{
		Bytes:     bytes,
		SourceMap: map[int]SourceMapEntry{},
	}
	return
}

// Decompile returns a single .data line that assembles to the same image.
func (prog *Program) Decompile() string {
	if len(prog.Bytes) == 0 {
		return ""
	}

	words := make([]string, 0, len(prog.Bytes)+1)
	words = append(words, ".data")
	for _, value := range prog.Bytes {
		words = append(words, strconv.Itoa(int(UnsignedToSigned(value))))
	}

	return strings.Join(words, " ")
}
