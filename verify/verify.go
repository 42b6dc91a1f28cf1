// Package verify checks SIC-1 programs against puzzle test sets.
package verify

import (
	"github.com/ezrec/sic1/cpu"
	"github.com/ezrec/sic1/emulator"
	"github.com/ezrec/sic1/io"
)

const (
	MAX_CYCLES = 100000          // Cycle limit for test sets beyond the first.
	MAX_BYTES  = cpu.MEMORY_SIZE // Bytes accessed limit for test sets beyond the first.
)

// Limits bounds a verification run.
type Limits struct {
	Cycles int
	Bytes  int
}

// DefaultLimits are the limits of every test set beyond the first.
var DefaultLimits = Limits{Cycles: MAX_CYCLES, Bytes: MAX_BYTES}

// Stats are the measurements of a verification run.
type Stats struct {
	Cycles int
	Bytes  int
}

// VerifyProgram runs a program until it has produced all expected outputs.
// It fails if an output is wrong, if the program halts before producing all
// outputs, or if it exceeds the limits.
func VerifyProgram(set TestSet, prog *cpu.Program, limits Limits) (stats Stats, err error) {
	queue := &io.Queue{Input: set.Input}

	correct := true
	halted := false
	detail := ""

	host := emulator.NewChannelHost(queue)
	write := host.OnWriteOutput
	host.OnWriteOutput = func(value int8) {
		index := len(queue.Output)
		write(value)
		if index >= len(set.Output) || set.Output[index] != value {
			if correct {
				expected := "nothing"
				if index < len(set.Output) {
					expected = f("%d", set.Output[index])
				}
				detail = f("expected %v but got %d instead at index %d", expected, value, index)
			}
			correct = false
		}
	}
	host.OnHalt = func(emulator.HaltData) {
		halted = true
	}

	emu := emulator.NewEmulator(prog, host)
	for correct && !halted && len(queue.Output) < len(set.Output) &&
		emu.Cycles() <= limits.Cycles && emu.Accessed() <= limits.Bytes {
		emu.Step()
	}

	stats = Stats{Cycles: emu.Cycles(), Bytes: emu.Accessed()}

	fail := func(cause error, detail string) error {
		return &ErrVerification{
			Context:    set.Name,
			Inputs:     set.Input,
			InputIndex: queue.ReadIndex,
			Detail:     detail,
			Err:        cause,
		}
	}

	switch {
	case stats.Cycles > limits.Cycles || stats.Bytes > limits.Bytes:
		err = fail(ErrLimit, f("%d cycles and %d bytes; actual: %d cycles, %d bytes",
			limits.Cycles, limits.Bytes, stats.Cycles, stats.Bytes))
	case !correct:
		err = fail(ErrIncorrect, detail)
	case halted && len(queue.Output) < len(set.Output):
		err = fail(ErrHalted, f("after %d cycles", stats.Cycles))
	}

	return
}

// VerifySolution verifies a program against all test sets of a puzzle.
// The standard test set must complete within the claimed limits.
func VerifySolution(puzzle *Puzzle, prog *cpu.Program, claimed Limits) (err error) {
	sets, err := puzzle.TestSets()
	if err != nil {
		return
	}

	for n, set := range sets {
		limits := DefaultLimits
		if n == 0 {
			limits = claimed
		}
		_, err = VerifyProgram(set, prog, limits)
		if err != nil {
			return
		}
	}

	return
}
