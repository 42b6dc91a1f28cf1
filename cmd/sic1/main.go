// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/tebeka/atexit"
	"github.com/xyproto/env/v2"
	"golang.org/x/term"

	"github.com/ezrec/sic1/cpu"
	"github.com/ezrec/sic1/emulator"
	"github.com/ezrec/sic1/io"
	"github.com/ezrec/sic1/translate"
	"github.com/ezrec/sic1/verify"
)

func main() {
	var compile string
	var hexfile string
	var input string
	var output string
	var inputFormat string
	var outputFormat string
	var maxCycles int
	var puzzleFile string
	var seed int
	var showHex bool
	var showData bool
	var listing bool
	var breakpoints bool
	var lang string
	var verbose bool

	flag.StringVar(&compile, "c", "", ".sic1 file to assemble")
	flag.StringVar(&hexfile, "x", "", "hex image to load")
	flag.StringVar(&input, "i", "-", "Program input")
	flag.StringVar(&output, "o", "-", "Program output")
	flag.StringVar(&inputFormat, "I", env.Str("SIC1_FORMAT", "numbers"), "Input format: numbers, characters, or strings")
	flag.StringVar(&outputFormat, "O", env.Str("SIC1_FORMAT", "numbers"), "Output format: numbers, characters, or strings")
	flag.IntVar(&maxCycles, "m", env.Int("SIC1_MAX_CYCLES", 0), "Maximum cycles to run, 0 for no limit")
	flag.StringVar(&puzzleFile, "p", "", "Puzzle .star file to verify the program against")
	flag.IntVar(&seed, "s", env.Int("SIC1_SEED", 0), "Puzzle random seed, 0 for the current time")
	flag.BoolVar(&showHex, "H", false, "Print the hex image, do not execute")
	flag.BoolVar(&showData, "D", false, "Print the image as a .data line, do not execute")
	flag.BoolVar(&listing, "l", false, "Print an address listing, do not execute")
	flag.BoolVar(&breakpoints, "b", false, "Report state at breakpoints")
	flag.StringVar(&lang, "L", env.Str("SIC1_LANG"), "Message language")
	flag.BoolVar(&verbose, "v", env.Bool("SIC1_VERBOSE"), "Verbose mode")

	flag.Parse()

	if flag.NArg() != 0 {
		atexit.Fatalf("%v: Unknown arguments: %v", os.Args[0], flag.Args())
	}

	if len(lang) != 0 {
		translate.SetLanguage(lang)
	}

	prog := &cpu.Program{}

	switch {
	case len(compile) != 0 && len(hexfile) != 0:
		atexit.Fatalf("%v: -c and -x are exclusive", os.Args[0])
	case len(compile) != 0:
		inf, err := os.Open(compile)
		if err != nil {
			atexit.Fatalf("%v: %v", compile, err)
		}
		atexit.Register(func() { inf.Close() })

		asm := &cpu.Assembler{Verbose: verbose}
		prog, err = asm.Parse(inf)
		if err != nil {
			atexit.Fatalf("%v: %v", compile, err)
		}
	case len(hexfile) != 0:
		data, err := os.ReadFile(hexfile)
		if err != nil {
			atexit.Fatalf("%v: %v", hexfile, err)
		}
		prog, err = cpu.ParseHex(string(data))
		if err != nil {
			atexit.Fatalf("%v: %v", hexfile, err)
		}
	}

	switch {
	case showHex:
		fmt.Println(prog.Hex())
	case showData:
		fmt.Println(prog.Decompile())
	case listing:
		for address, entry := range prog.Lines() {
			fmt.Printf("%03d %4d: %v\n", address, entry.LineNo, entry.Source)
		}
	case len(puzzleFile) != 0:
		if seed == 0 {
			seed = int(time.Now().UnixNano())
		}
		verifyPuzzle(puzzleFile, prog, uint64(seed), verbose)
	default:
		run(prog, input, output, inputFormat, outputFormat, maxCycles, breakpoints, verbose)
	}

	atexit.Exit(0)
}

func verifyPuzzle(puzzleFile string, prog *cpu.Program, seed uint64, verbose bool) {
	src, err := os.ReadFile(puzzleFile)
	if err != nil {
		atexit.Fatalf("%v: %v", puzzleFile, err)
	}

	puzzle, err := verify.LoadPuzzle(puzzleFile, src, seed)
	if err != nil {
		atexit.Fatalf("%v", err)
	}
	puzzle.Verbose = verbose

	sets, err := puzzle.TestSets()
	if err != nil {
		atexit.Fatalf("%v: %v", puzzleFile, err)
	}

	stats, err := verify.VerifyProgram(sets[0], prog, verify.DefaultLimits)
	if err != nil {
		atexit.Fatalf("%v: %v", puzzle.Title, err)
	}

	err = verify.VerifySolution(puzzle, prog, verify.Limits{Cycles: stats.Cycles, Bytes: stats.Bytes})
	if err != nil {
		atexit.Fatalf("%v: %v", puzzle.Title, err)
	}

	fmt.Println(translate.From("%v: solved in %d cycles, %d bytes", puzzle.Title, stats.Cycles, stats.Bytes))
}

func run(prog *cpu.Program, input, output, inputFormat, outputFormat string, maxCycles int, breakpoints, verbose bool) {
	var err error

	tape := &io.Tape{}

	tape.InputFormat, err = io.ParseFormat(inputFormat)
	if err != nil {
		atexit.Fatalf("-I %v: %v", inputFormat, err)
	}
	tape.OutputFormat, err = io.ParseFormat(outputFormat)
	if err != nil {
		atexit.Fatalf("-O %v: %v", outputFormat, err)
	}

	if input == "-" {
		tape.Input = os.Stdin
	} else {
		inf, err := os.Open(input)
		if err != nil {
			atexit.Fatalf("%v: %v", input, err)
		}
		atexit.Register(func() { inf.Close() })
		tape.Input = inf
	}

	if output == "-" {
		tape.Output = os.Stdout
	} else {
		ouf, err := os.Create(output)
		if err != nil {
			atexit.Fatalf("%v: %v", output, err)
		}
		atexit.Register(func() { ouf.Close() })
		tape.Output = ouf
	}

	host := emulator.NewChannelHost(tape)
	if verbose {
		host.OnHalt = func(data emulator.HaltData) {
			log.Printf("halted: %d cycles, %d bytes", data.Cycles, data.Accessed)
		}
	}

	emu := emulator.NewEmulator(prog, host)
	emu.Verbose = verbose

	for !emu.Step() {
		if errors.Is(tape.Err(), io.ErrInputExhausted) {
			break
		}
		if err := tape.Err(); err != nil {
			atexit.Fatalf("%v", err)
		}
		if breakpoints && emu.AtBreakpoint() {
			report(emu.State())
		}
		if maxCycles > 0 && emu.Cycles() >= maxCycles {
			atexit.Fatalf("%v: cycle limit %d reached at line %d", os.Args[0], maxCycles, emu.LineNo())
		}
	}

	if term.IsTerminal(int(os.Stderr.Fd())) {
		fmt.Fprintln(os.Stderr, translate.From("%d cycles, %d bytes accessed", emu.Cycles(), emu.Accessed()))
	}
}

func report(state emulator.State) {
	vars := make([]string, len(state.Variables))
	for n, variable := range state.Variables {
		vars[n] = fmt.Sprintf("@%v=%d", variable.Label, variable.Value)
	}

	log.Printf("break %03d line %d: %v [%v]", state.Ip, state.LineNo, state.Source, strings.Join(vars, " "))
}
