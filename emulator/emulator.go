// Copyright 2024, Jason S. McMullan <jason.mcmullan@gmail.com>

package emulator

import (
	"errors"
	"log"

	"github.com/ezrec/sic1/cpu"
)

// Emulator runs an assembled program, reporting to a Host.
type Emulator struct {
	Verbose bool         // If set, enables verbose logging.
	Program *cpu.Program // Currently running program.

	host    Host
	cpu     *cpu.Cpu
	running bool
}

// NewEmulator loads a program and reports the initial state to the host.
// A nil host ignores all events.
func NewEmulator(prog *cpu.Program, host Host) (emu *Emulator) {
	if prog == nil {
		prog = &cpu.Program{}
	}
	if host == nil {
		host = &Callbacks{}
	}

	emu = &Emulator{
		Program: prog,
		host:    host,
		cpu:     cpu.NewCpu(host),
	}

	emu.cpu.Load(prog.Image())
	emu.running = emu.cpu.Running()
	emu.stateUpdated()

	return
}

// Reset restores memory, cycles and access tracking to their loaded state.
func (emu *Emulator) Reset() {
	emu.cpu.Verbose = emu.Verbose
	emu.cpu.Reset()
	emu.running = emu.cpu.Running()
	emu.stateUpdated()
}

// IsRunning is true until the program halts.
func (emu *Emulator) IsRunning() bool {
	return emu.running
}

// IsEmpty is true when all of memory is currently zero.
func (emu *Emulator) IsEmpty() bool {
	return emu.cpu.IsZero()
}

// Cycles returns the instructions executed since the last reset.
func (emu *Emulator) Cycles() int {
	return emu.cpu.Cycles
}

// Accessed returns the distinct bytes accessed since the last reset.
func (emu *Emulator) Accessed() int {
	return emu.cpu.Accessed
}

// Ip returns current instruction pointer.
func (emu *Emulator) Ip() int {
	return emu.cpu.Ip
}

// Memory returns a copy of memory.
func (emu *Emulator) Memory() [cpu.MEMORY_SIZE]uint8 {
	return emu.cpu.Memory()
}

// LineNo returns the source line number at the instruction pointer.
func (emu *Emulator) LineNo() int {
	lineNo, _ := emu.Program.Lookup(emu.cpu.Ip)
	return lineNo
}

// AtBreakpoint is true when the instruction pointer is on a breakpoint.
func (emu *Emulator) AtBreakpoint() bool {
	return emu.Program.IsBreakpoint(emu.cpu.Ip)
}

// State returns the current state.
func (emu *Emulator) State() (state State) {
	ip := emu.cpu.Ip
	lineNo, source := emu.Program.Lookup(ip)

	state = State{
		Running:  emu.running,
		Ip:       ip,
		LineNo:   lineNo,
		Source:   source,
		Cycles:   emu.cpu.Cycles,
		Accessed: emu.cpu.Accessed,
	}
	if ip >= cpu.ADDRESS_MIN && ip <= cpu.ADDRESS_MAX {
		state.Target = emu.cpu.Peek(uint8(ip))
	}

	for _, variable := range emu.Program.Variables {
		if variable.Address < cpu.ADDRESS_MIN || variable.Address > cpu.ADDRESS_MAX {
			continue
		}
		state.Variables = append(state.Variables, VariableValue{
			Label: variable.Label,
			Value: cpu.UnsignedToSigned(emu.cpu.Peek(uint8(variable.Address))),
		})
	}

	return
}

func (emu *Emulator) stateUpdated() {
	emu.host.StateUpdated(emu.State())
}

// Step executes a single instruction.
// Stepping a halted emulator does nothing.
func (emu *Emulator) Step() (done bool) {
	if !emu.running {
		return true
	}

	emu.cpu.Verbose = emu.Verbose

	err := emu.cpu.Tick()
	if errors.Is(err, cpu.ErrHalted) {
		emu.running = false
		return true
	}

	emu.running = emu.cpu.Running()
	emu.stateUpdated()

	if !emu.running {
		if emu.Verbose {
			log.Printf("emulator: halted at %v", emu.cpu)
		}
		emu.host.Halt(HaltData{
			Cycles:   emu.cpu.Cycles,
			Accessed: emu.cpu.Accessed,
		})
	}

	return !emu.running
}

// Run steps until the program halts.
func (emu *Emulator) Run() {
	for !emu.Step() {
	}
}

// RunFor steps at most the given number of instructions, returning true once halted.
func (emu *Emulator) RunFor(steps int) (done bool) {
	for range steps {
		if emu.Step() {
			return true
		}
	}

	return !emu.running
}

// Continue steps at least once, stopping at a breakpoint, on halt, or
// after the given number of steps. Returns true once halted.
func (emu *Emulator) Continue(steps int) (done bool) {
	for n := 0; n < steps || n == 0; n++ {
		if emu.Step() {
			return true
		}
		if emu.AtBreakpoint() {
			break
		}
	}

	return !emu.running
}
