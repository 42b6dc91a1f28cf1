package cpu

import (
	"fmt"
)

// Command is the command of a source line.
type Command int

//go:generate go tool stringer -linecomment -type=Command
const (
	COMMAND_NONE   = Command(0) // none
	COMMAND_SUBLEQ = Command(1) // subleq
	COMMAND_DATA   = Command(2) // .data
)

// commandMap maps command words, case sensitive.
var commandMap = map[string]Command{
	"subleq": COMMAND_SUBLEQ,
	".data":  COMMAND_DATA,
}

// Instruction is a decoded subleq instruction.
type Instruction struct {
	A uint8 // Minuend address, and destination.
	B uint8 // Subtrahend address.
	C uint8 // Branch target.
}

func (in Instruction) String() string {
	return fmt.Sprintf("subleq %d, %d, %d", in.A, in.B, in.C)
}
