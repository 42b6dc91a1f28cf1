// Copyright 2024, Jason S. McMullan <jason.mcmullan@gmail.com>

package cpu

import (
	"fmt"
	"log"
)

// Bus connects the Cpu to its memory mapped I/O and to memory observers.
type Bus interface {
	ReadInput() int8                        // Value for a read of IN.
	WriteOutput(value int8)                 // Value written to OUT.
	WriteMemory(address uint8, value uint8) // A memory byte changed.
}

// Cpu is the simulation context of a SIC-1 machine.
type Cpu struct {
	Verbose bool // Set to enable verbose logging.

	Bus Bus // Memory mapped I/O, may be nil.

	Ip       int // Current instruction pointer.
	Cycles   int // Instructions executed.
	Accessed int // Distinct addresses read or written.

	memory   [MEMORY_SIZE]uint8
	snapshot [MEMORY_SIZE]uint8
	accessed [MEMORY_SIZE]bool
}

// NewCpu creates a new, empty, Cpu attached to a bus.
func NewCpu(bus Bus) (cpu *Cpu) {
	cpu = &Cpu{
		Bus: bus,
	}

	return
}

// String returns the current CPU state as a string.
func (cpu *Cpu) String() string {
	return fmt.Sprintf("ip %03d cycles %d accessed %d", cpu.Ip, cpu.Cycles, cpu.Accessed)
}

// Load replaces memory with an image, which Reset will restore.
// Every address is reported to the bus.
func (cpu *Cpu) Load(image [MEMORY_SIZE]uint8) {
	if cpu.Verbose {
		log.Printf("cpu: load")
	}

	cpu.snapshot = image
	cpu.memory = image
	cpu.restart()

	if cpu.Bus != nil {
		for address, value := range cpu.memory {
			cpu.Bus.WriteMemory(uint8(address), value)
		}
	}
}

// Reset restores memory to the loaded image.
// Only changed addresses are reported to the bus.
func (cpu *Cpu) Reset() {
	if cpu.Verbose {
		log.Printf("cpu: reset")
	}

	for address, value := range cpu.snapshot {
		if cpu.memory[address] == value {
			continue
		}
		cpu.memory[address] = value
		if cpu.Bus != nil {
			cpu.Bus.WriteMemory(uint8(address), value)
		}
	}

	cpu.restart()
}

func (cpu *Cpu) restart() {
	cpu.Ip = 0
	cpu.Cycles = 0
	cpu.Accessed = 0
	clear(cpu.accessed[:])
}

// Running is true while the instruction pointer can fetch an instruction.
func (cpu *Cpu) Running() bool {
	return cpu.Ip >= ADDRESS_MIN && cpu.Ip <= ADDRESS_INSTRUCTION_MAX
}

// Peek reads memory without counting an access.
func (cpu *Cpu) Peek(address uint8) uint8 {
	return cpu.memory[address]
}

// Memory returns a copy of memory.
func (cpu *Cpu) Memory() [MEMORY_SIZE]uint8 {
	return cpu.memory
}

// IsZero is true when every memory byte is zero.
func (cpu *Cpu) IsZero() bool {
	for _, value := range cpu.memory {
		if value != 0 {
			return false
		}
	}
	return true
}

func (cpu *Cpu) access(address uint8) {
	if !cpu.accessed[address] {
		cpu.accessed[address] = true
		cpu.Accessed++
	}
}

func (cpu *Cpu) read(address uint8) uint8 {
	cpu.access(address)
	switch address {
	case ADDRESS_OUT, ADDRESS_HALT:
		return 0
	}
	return cpu.memory[address]
}

func (cpu *Cpu) write(address uint8, value uint8) {
	cpu.access(address)
	if cpu.memory[address] == value {
		return
	}
	cpu.memory[address] = value
	if cpu.Bus != nil {
		cpu.Bus.WriteMemory(address, value)
	}
}

// Fetch reads the instruction at the instruction pointer.
func (cpu *Cpu) Fetch() (in Instruction) {
	ip := uint8(cpu.Ip)
	in.A = cpu.read(ip)
	in.B = cpu.read(ip + 1)
	in.C = cpu.read(ip + 2)
	return
}

// operands reads both operands. IN is consumed at most once.
func (cpu *Cpu) operands(in Instruction) (a, b uint8) {
	var input uint8
	var inputRead bool

	load := [2]uint8{in.A, in.B}
	value := [2]uint8{}
	for n, address := range load {
		if address != ADDRESS_IN {
			value[n] = cpu.read(address)
			continue
		}
		cpu.access(address)
		if !inputRead {
			if cpu.Bus != nil {
				input = SignedToUnsigned(cpu.Bus.ReadInput())
			}
			inputRead = true
		}
		value[n] = input
	}

	return value[0], value[1]
}

// Tick executes a single instruction.
// Returns ErrHalted if the Cpu is not running.
func (cpu *Cpu) Tick() (err error) {
	if !cpu.Running() {
		err = ErrHalted
		return
	}

	in := cpu.Fetch()
	if cpu.Verbose {
		log.Printf("%03d: %v", cpu.Ip, in)
	}
	cpu.Ip += SUBLEQ_BYTES

	a, b := cpu.operands(in)
	result := a - b

	switch in.A {
	case ADDRESS_IN, ADDRESS_HALT:
		cpu.access(in.A)
	case ADDRESS_OUT:
		cpu.access(in.A)
		if cpu.Bus != nil {
			cpu.Bus.WriteOutput(UnsignedToSigned(result))
		}
	default:
		cpu.write(in.A, result)
	}

	if UnsignedToSigned(result) <= 0 {
		cpu.Ip = int(in.C)
	}

	cpu.Cycles++

	return
}
