// Copyright 2024, Jason S. McMullan <jason.mcmullan@gmail.com>

package cpu

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"maps"
)

// Assembler is a two pass assembler for SIC-1 source.
type Assembler struct {
	Verbose bool // If set, verbosely logs the assembler actions.
}

// Assemble assembles source lines with a default Assembler.
func Assemble(lines []string) (prog *Program, err error) {
	asm := &Assembler{}
	return asm.Assemble(lines)
}

// Parse parses an input stream into a Program.
func (asm *Assembler) Parse(input io.Reader) (prog *Program, err error) {
	var lines []string

	scanner := bufio.NewScanner(input)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	err = scanner.Err()
	if err != nil {
		return
	}

	return asm.Assemble(lines)
}

// assembly is the state of a single Assemble call.
type assembly struct {
	verbose     bool
	address     int
	label       map[string]int
	expressions []Expression
	prog        *Program
}

// Assemble assembles source lines into a Program.
// Line numbers in errors and in the source map are 1-based.
func (asm *Assembler) Assemble(lines []string) (prog *Program, err error) {
	state := &assembly{
		verbose: asm.Verbose,
		label:   maps.Clone(sysLabel),
		prog: &Program{
			SourceMap: map[int]SourceMapEntry{},
		},
	}

	for n, line := range lines {
		lineno := n + 1
		if asm.Verbose {
			log.Printf("%v: %v\n", lineno, line)
		}
		err = state.addLine(line, lineno)
		if err != nil {
			return
		}
	}

	if state.address-1 > ADDRESS_USER_MAX {
		err = &ErrProgramTooLarge{Size: state.address, Max: PROGRAM_SIZE_MAX}
		return
	}

	err = state.resolve()
	if err != nil {
		return
	}

	prog = state.prog
	return
}

// addLine records the labels of a line, and queues its expressions.
func (state *assembly) addLine(line string, lineno int) (err error) {
	parsed, err := ParseLine(line, lineno)
	if err != nil {
		return
	}

	prog := state.prog
	ctx := Context{LineNo: lineno, Line: line}

	if parsed.Breakpoint {
		prog.Breakpoints = append(prog.Breakpoints, state.address)
	}

	for _, def := range parsed.Labels {
		_, ok := state.label[def.Label]
		if ok {
			err = &ErrLabelAlreadyDefined{Context: ctx, Label: def.Label}
			return
		}
		address := state.address + def.Offset
		state.label[def.Label] = address
		if def.Inline || parsed.Command == COMMAND_DATA {
			prog.Variables = append(prog.Variables, Variable{Label: def.Label, Address: address})
		}
	}

	exprs := parsed.Expressions
	switch parsed.Command {
	case COMMAND_NONE:
	case COMMAND_SUBLEQ:
		if len(exprs) < SUBLEQ_BYTES {
			// Fall through to the next instruction.
			exprs = append(exprs, Literal(uint8(state.address+SUBLEQ_BYTES)))
		}
	case COMMAND_DATA:
	default:
		err = &ErrInternalCompiler{Context: ctx, Detail: fmt.Sprintf("command %v", parsed.Command)}
		return
	}

	if len(exprs) == 0 {
		return
	}

	if state.verbose {
		log.Printf("%03d: %v %d bytes", state.address, parsed.Command, len(exprs))
	}

	prog.SourceMap[state.address] = SourceMapEntry{
		LineNo:  lineno,
		Command: parsed.Command,
		Source:  line,
	}
	state.expressions = append(state.expressions, exprs...)
	state.address += len(exprs)

	return
}

// resolve replaces all label references with their addresses.
func (state *assembly) resolve() (err error) {
	bytes := make([]uint8, 0, len(state.expressions))

	for _, expr := range state.expressions {
		switch expr := expr.(type) {
		case Literal:
			bytes = append(bytes, uint8(expr))
		case LabelReference:
			value, ok := state.label[expr.Label]
			if !ok {
				err = &ErrUndefinedReference{Context: expr.Context, Label: expr.Label}
				return
			}
			if expr.Negated {
				value = int(-uint8(value))
			}
			value += expr.Offset
			if value < ADDRESS_MIN || value > ADDRESS_MAX {
				err = &ErrAddressReferenceRange{
					Context: expr.Context,
					Text:    expr.String(),
					Value:   value,
					Min:     ADDRESS_MIN,
					Max:     ADDRESS_MAX,
				}
				return
			}
			bytes = append(bytes, uint8(value))
		default:
			err = &ErrInternalCompiler{Detail: fmt.Sprintf("expression %T", expr)}
			return
		}
	}

	state.prog.Bytes = bytes
	return
}
