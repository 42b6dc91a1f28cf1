package verify

import (
	"errors"

	"github.com/ezrec/sic1/translate"
)

var f = translate.From

var (
	// Verification errors
	ErrHalted    = errors.New(f("execution halted unexpectedly"))
	ErrLimit     = errors.New(f("execution did not complete within the limits"))
	ErrIncorrect = errors.New(f("incorrect output produced"))

	// Puzzle errors
	ErrPuzzleMissing  = errors.New(f("missing"))
	ErrPuzzleType     = errors.New(f("wrong type"))
	ErrPuzzleValue    = errors.New(f("value out of range"))
	ErrPuzzleExpected = errors.New(f("expected_output required"))
)

// ErrVerification is a failed test set.
type ErrVerification struct {
	Context    string // Name of the test set.
	Inputs     []int8 // Inputs of the test set.
	InputIndex int    // Inputs consumed when the failure was detected.
	Detail     string
	Err        error
}

func (err *ErrVerification) Error() string {
	return f("%v during %v (%v)", err.Err, err.Context, err.Detail)
}

func (err *ErrVerification) Unwrap() error {
	return err.Err
}

// ErrPuzzle locates an error in a puzzle definition.
type ErrPuzzle struct {
	Filename  string
	Attribute string
	Err       error
}

func (err *ErrPuzzle) Error() string {
	return f("%v: %v %v", err.Filename, err.Attribute, err.Err)
}

func (err *ErrPuzzle) Unwrap() error {
	return err.Err
}
