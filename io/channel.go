// Package io provides input and output channels for SIC-1 programs.
// It includes an in-memory Queue, used for puzzle verification, and a
// stream backed Tape, used for interactive runs.
package io

// Channel defines the interface for the memory mapped IN and OUT addresses.
type Channel interface {
	// Rewind resets the channel to its initial state.
	Rewind()
	// ReadInput returns the next input value, or zero when exhausted.
	ReadInput() int8
	// WriteOutput sends a single output value.
	WriteOutput(value int8)
	// Err returns the first error seen by the channel.
	Err() error
}
