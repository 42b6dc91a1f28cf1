package emulator

import (
	"github.com/ezrec/sic1/cpu"
	"github.com/ezrec/sic1/io"
)

// HaltData summarizes a halted run.
type HaltData struct {
	Cycles   int // Instructions executed.
	Accessed int // Distinct memory bytes read or written.
}

// VariableValue is the current value of a watched variable.
type VariableValue struct {
	Label string
	Value int8
}

// State is a snapshot of the emulator, reported after every change.
type State struct {
	Running   bool
	Ip        int    // Raw instruction pointer, not clamped when halted.
	Target    uint8  // Memory at the instruction pointer.
	LineNo    int    // 1-based source line at the instruction pointer, or 0.
	Source    string // Source text of the line, "?" within a line.
	Cycles    int
	Accessed  int
	Variables []VariableValue
}

// Host observes and drives an Emulator.
//
// ReadInput, WriteOutput and WriteMemory are called during Step.
// WriteMemory is called for every address when the emulator is created,
// and after that only for changed bytes.
type Host interface {
	cpu.Bus
	Halt(data HaltData)       // Called once when the program halts.
	StateUpdated(state State) // Called after creation, each step, and each reset.
}

// Callbacks is a Host where every hook is optional.
// A missing OnReadInput reads zero.
type Callbacks struct {
	OnReadInput    func() int8
	OnWriteOutput  func(value int8)
	OnHalt         func(data HaltData)
	OnWriteMemory  func(address uint8, value uint8)
	OnStateUpdated func(state State)
}

var _ Host = (*Callbacks)(nil)

func (cb *Callbacks) ReadInput() (value int8) {
	if cb.OnReadInput != nil {
		value = cb.OnReadInput()
	}
	return
}

func (cb *Callbacks) WriteOutput(value int8) {
	if cb.OnWriteOutput != nil {
		cb.OnWriteOutput(value)
	}
}

func (cb *Callbacks) Halt(data HaltData) {
	if cb.OnHalt != nil {
		cb.OnHalt(data)
	}
}

func (cb *Callbacks) WriteMemory(address uint8, value uint8) {
	if cb.OnWriteMemory != nil {
		cb.OnWriteMemory(address, value)
	}
}

func (cb *Callbacks) StateUpdated(state State) {
	if cb.OnStateUpdated != nil {
		cb.OnStateUpdated(state)
	}
}

// NewChannelHost connects the IN and OUT addresses to a channel.
func NewChannelHost(ch io.Channel) *Callbacks {
	return &Callbacks{
		OnReadInput:   ch.ReadInput,
		OnWriteOutput: ch.WriteOutput,
	}
}
