package emulator

import (
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/ezrec/sic1/cpu"
	"github.com/ezrec/sic1/io"
)

//go:generate go tool mockgen -destination=mock_host_test.go -package=emulator github.com/ezrec/sic1/emulator Host

func assemble(t *testing.T, lines ...string) *cpu.Program {
	prog, err := cpu.Assemble(lines)
	if err != nil {
		t.Fatal(err)
	}
	return prog
}

func TestEmulator(t *testing.T) {
	assert := assert.New(t)

	emu := NewEmulator(nil, nil)

	assert.False(emu.Verbose)
	assert.True(emu.IsEmpty())
	assert.True(emu.IsRunning())
	assert.Equal(0, emu.Cycles())
}

func TestEmulatorIsEmpty(t *testing.T) {
	assert := assert.New(t)

	emu := NewEmulator(assemble(t, ".data 0 0 0"), nil)
	assert.Equal([cpu.MEMORY_SIZE]uint8{}, emu.Memory())
	assert.True(emu.IsEmpty())

	emu = NewEmulator(assemble(t, ".data 0 1"), nil)
	assert.False(emu.IsEmpty())
}

func TestEmulatorIsEmptyErased(t *testing.T) {
	assert := assert.New(t)

	// Clears byte 2, then the now zero instruction at 2 clears byte 0.
	emu := NewEmulator(assemble(t, "subleq 2, 0, 2"), nil)
	assert.False(emu.IsEmpty())

	assert.False(emu.Step())
	assert.False(emu.IsEmpty())
	assert.Equal(2, emu.Ip())

	assert.False(emu.Step())
	assert.True(emu.IsEmpty())
	assert.True(emu.IsRunning())

	emu.Reset()
	assert.False(emu.IsEmpty())
}

func TestEmulatorLoop(t *testing.T) {
	assert := assert.New(t)

	inputs := []int8{4, 5, 100, 101}
	var outputs []int8
	halted := false

	host := &Callbacks{
		OnReadInput: func() (value int8) {
			value = inputs[0]
			inputs = inputs[1:]
			return
		},
		OnWriteOutput: func(value int8) { outputs = append(outputs, value) },
		OnHalt:        func(HaltData) { halted = true },
	}

	emu := NewEmulator(assemble(t,
		"@loop:",
		"subleq @OUT, @IN",
		"subleq @zero, @zero, @loop",
		"@zero: .data 0",
	), host)

	assert.False(emu.RunFor(8))
	assert.Equal([]int8{-4, -5, -100, -101}, outputs)
	assert.False(halted)
	assert.True(emu.IsRunning())
	assert.Equal(8, emu.Cycles())
	assert.Equal(2, emu.LineNo())

	state := emu.State()
	assert.Equal(0, state.Ip)
	assert.Equal(uint8(254), state.Target)
	assert.Equal("subleq @OUT, @IN", state.Source)
	assert.Equal([]VariableValue{{Label: "zero", Value: 0}}, state.Variables)
}

func TestEmulatorChannelHost(t *testing.T) {
	assert := assert.New(t)

	queue := &io.Queue{Input: []int8{4, 5}}
	emu := NewEmulator(assemble(t,
		"@loop:",
		"subleq @OUT, @IN",
		"subleq @zero, @zero, @loop",
		"@zero: .data 0",
	), NewChannelHost(queue))

	assert.False(emu.RunFor(4))
	assert.Equal([]int8{-4, -5}, queue.Output)
	assert.NoError(queue.Err())

	assert.False(emu.RunFor(1))
	assert.Equal([]int8{-4, -5, 0}, queue.Output)
	assert.ErrorIs(queue.Err(), io.ErrInputExhausted)
}

func TestEmulatorHalt(t *testing.T) {
	assert := assert.New(t)

	var halts []HaltData
	host := &Callbacks{
		OnHalt: func(data HaltData) { halts = append(halts, data) },
	}

	emu := NewEmulator(assemble(t, "subleq @HALT, @HALT, @HALT"), host)

	assert.True(emu.Step())
	assert.False(emu.IsRunning())
	// Fetched instruction bytes are accesses too: 0, 1, 2 and HALT.
	assert.Equal([]HaltData{{Cycles: 1, Accessed: 4}}, halts)

	state := emu.State()
	assert.False(state.Running)
	assert.Equal(cpu.ADDRESS_HALT, state.Ip)

	// Halted emulators ignore steps.
	assert.True(emu.Step())
	assert.True(emu.RunFor(10))
	assert.Equal(1, emu.Cycles())
	assert.Len(halts, 1)
}

func TestEmulatorFallOff(t *testing.T) {
	assert := assert.New(t)

	halted := false
	host := &Callbacks{OnHalt: func(HaltData) { halted = true }}

	emu := NewEmulator(assemble(t,
		"subleq @z, @z, 253",
		"@z: .data 0",
	), host)
	emu.Run()

	assert.True(halted)
	assert.Equal(cpu.ADDRESS_IN, emu.State().Ip)
	assert.Equal(2, emu.LineNo())
}

func TestEmulatorCallbacks(t *testing.T) {
	assert := assert.New(t)

	var states []State
	var writes [][2]uint8
	var halts []HaltData

	host := &Callbacks{
		OnStateUpdated: func(state State) { states = append(states, state) },
		OnWriteMemory:  func(address, value uint8) { writes = append(writes, [2]uint8{address, value}) },
		OnHalt:         func(data HaltData) { halts = append(halts, data) },
	}

	emu := NewEmulator(assemble(t,
		"subleq @tmp, @five",
		"subleq @tmp, @tmp, @HALT",
		"@five: .data 5",
		"@tmp: .data 0",
	), host)

	assert.Len(writes, cpu.MEMORY_SIZE)
	assert.Len(states, 1)
	assert.Equal(0, states[0].Ip)
	assert.Equal(uint8(7), states[0].Target)
	assert.Equal(1, states[0].LineNo)
	assert.Equal([]VariableValue{{"five", 5}, {"tmp", 0}}, states[0].Variables)

	writes = nil
	assert.False(emu.Step())
	assert.Equal([][2]uint8{{7, 0xfb}}, writes)
	assert.Len(states, 2)
	assert.Equal(1, states[1].Cycles)
	assert.Equal(5, states[1].Accessed)
	assert.Equal(int8(-5), states[1].Variables[1].Value)

	assert.True(emu.Step())
	assert.Len(states, 3)
	assert.Equal(2, states[2].Cycles)
	assert.Equal(8, states[2].Accessed)
	assert.False(states[2].Running)
	assert.Equal([]HaltData{{Cycles: 2, Accessed: 8}}, halts)
}

func TestEmulatorReset(t *testing.T) {
	assert := assert.New(t)

	emu := NewEmulator(assemble(t,
		"@self: subleq @self, @one",
		"subleq @x, @one, @HALT",
		"@one: .data 1",
		"@x: .data 0",
	), nil)

	memory := emu.Memory()
	initial := emu.State()

	emu.Run()
	assert.False(emu.IsRunning())
	assert.NotEqual(memory, emu.Memory())

	emu.Reset()
	assert.True(emu.IsRunning())
	assert.Equal(memory, emu.Memory())
	assert.Equal(initial, emu.State())
	assert.Equal(0, emu.Cycles())
	assert.Equal(0, emu.Accessed())
}

func TestEmulatorResetOnHalt(t *testing.T) {
	assert := assert.New(t)

	var emu *Emulator
	halts := 0
	host := &Callbacks{
		OnHalt: func(HaltData) {
			halts++
			if halts < 3 {
				emu.Reset()
			}
		},
	}

	emu = NewEmulator(assemble(t, "subleq @HALT, @HALT, @HALT"), host)
	emu.Run()

	assert.Equal(3, halts)
	assert.False(emu.IsRunning())
	assert.Equal(1, emu.Cycles())
}

func TestEmulatorContinue(t *testing.T) {
	assert := assert.New(t)

	emu := NewEmulator(assemble(t,
		"@loop:",
		"subleq @x, @one",
		"!subleq @zero, @zero, @loop",
		"@one: .data 1",
		"@x: .data 3",
		"@zero: .data 0",
	), nil)

	assert.False(emu.Continue(100))
	assert.Equal(3, emu.Ip())
	assert.True(emu.AtBreakpoint())
	assert.Equal(1, emu.Cycles())

	// Leaves the breakpoint before stopping again.
	assert.False(emu.Continue(100))
	assert.Equal(3, emu.Ip())
	assert.Equal(3, emu.Cycles())

	assert.False(emu.Continue(1))
	assert.Equal(0, emu.Ip())
}

func TestEmulatorMockHost(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	host := NewMockHost(ctrl)
	host.EXPECT().WriteMemory(gomock.Any(), gomock.Any()).AnyTimes()
	host.EXPECT().StateUpdated(gomock.Any()).Times(2)
	gomock.InOrder(
		host.EXPECT().ReadInput().Return(int8(5)),
		host.EXPECT().WriteOutput(int8(-5)),
		host.EXPECT().Halt(HaltData{Cycles: 1, Accessed: 5}),
	)

	emu := NewEmulator(assemble(t, "subleq @OUT, @IN, @HALT"), host)
	emu.Run()
}
