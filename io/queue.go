package io

// Queue is an in-memory channel. Reads past the end of Input return zero.
type Queue struct {
	Input  []int8 // Values to read, in order.
	Output []int8 // Values written, in order.

	ReadIndex int // Index of the next input value.
	Exhausted int // Reads past the end of Input.
}

var _ Channel = (*Queue)(nil)

// Rewind restarts the input and discards all output.
func (q *Queue) Rewind() {
	q.ReadIndex = 0
	q.Exhausted = 0
	q.Output = nil
}

// ReadInput returns the next input value.
func (q *Queue) ReadInput() (value int8) {
	if q.ReadIndex >= len(q.Input) {
		q.Exhausted++
		return
	}

	value = q.Input[q.ReadIndex]
	q.ReadIndex++

	return
}

// WriteOutput appends to the output.
func (q *Queue) WriteOutput(value int8) {
	q.Output = append(q.Output, value)
}

// Err returns ErrInputExhausted if a read went past the end of input.
func (q *Queue) Err() (err error) {
	if q.Exhausted > 0 {
		err = ErrInputExhausted
	}

	return
}
