package io

import (
	"bufio"
	"io"
)

// Tape connects a program to byte streams.
// Numbers input is read and parsed in full on the first read; characters
// and strings input is read one byte per value.
type Tape struct {
	Input        io.Reader
	Output       io.Writer
	InputFormat  Format
	OutputFormat Format

	reader  *bufio.Reader
	pending []int8
	loaded  bool
	written int
	err     error
}

var _ Channel = (*Tape)(nil)

// Rewind is not possible on a tape.
func (tc *Tape) Rewind() {
}

func (tc *Tape) setErr(err error) {
	if tc.err == nil {
		tc.err = err
	}
}

// ReadInput returns the next value from the input stream, or zero at the end.
func (tc *Tape) ReadInput() (value int8) {
	if tc.Input == nil {
		tc.setErr(ErrInputExhausted)
		return
	}

	if tc.reader == nil {
		tc.reader = bufio.NewReader(tc.Input)
	}

	if tc.InputFormat == FORMAT_NUMBERS {
		if !tc.loaded {
			tc.loaded = true
			data, err := io.ReadAll(tc.reader)
			if err != nil {
				tc.setErr(err)
				return
			}
			tc.pending, err = ParseValues(string(data))
			if err != nil {
				tc.setErr(err)
				return
			}
		}
		if len(tc.pending) == 0 {
			tc.setErr(ErrInputExhausted)
			return
		}
		value = tc.pending[0]
		tc.pending = tc.pending[1:]
		return
	}

	one, err := tc.reader.ReadByte()
	if err == io.EOF {
		tc.setErr(ErrInputExhausted)
		return
	}
	if err != nil {
		tc.setErr(err)
		return
	}

	return tc.InputFormat.fromByte(one)
}

// WriteOutput writes a value to the output stream.
// Numbers are written one per line.
func (tc *Tape) WriteOutput(value int8) {
	if tc.Output == nil {
		return
	}

	text := tc.OutputFormat.render(value)
	if tc.OutputFormat == FORMAT_NUMBERS {
		text += "\n"
	}

	_, err := io.WriteString(tc.Output, text)
	if err != nil {
		tc.setErr(err)
		return
	}

	tc.written++
}

// Written returns the number of values written.
func (tc *Tape) Written() int {
	return tc.written
}

// Err returns the first error seen on the tape.
func (tc *Tape) Err() error {
	return tc.err
}
