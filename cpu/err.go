package cpu

import (
	"errors"

	"github.com/ezrec/sic1/translate"
)

var f = translate.From

var (
	// Cpu errors
	ErrHalted = errors.New(f("halted"))

	// Program image errors
	ErrHexLength = errors.New(f("hex image has an odd number of digits"))
	ErrHexDigit  = errors.New(f("hex image has an invalid digit"))
)

// ErrorKind classifies compilation errors.
type ErrorKind int

//go:generate go tool stringer -linecomment -type=ErrorKind
const (
	ERROR_INVALID_TOKEN                 = ErrorKind(0)  // InvalidTokenError
	ERROR_INVALID_BREAKPOINT            = ErrorKind(1)  // InvalidBreakpointError
	ERROR_INVALID_COMMAND               = ErrorKind(2)  // InvalidCommandError
	ERROR_MISSING_WHITESPACE            = ErrorKind(3)  // MissingWhitespaceError
	ERROR_MISSING_COMMA_OR_WHITESPACE   = ErrorKind(4)  // MissingCommaOrWhitespaceError
	ERROR_INVALID_VALUE_EXPRESSION      = ErrorKind(5)  // InvalidValueExpressionError
	ERROR_INVALID_ADDRESS_EXPRESSION    = ErrorKind(6)  // InvalidAddressExpressionError
	ERROR_INVALID_SUBLEQ_ARGUMENT_COUNT = ErrorKind(7)  // InvalidSubleqArgumentCountError
	ERROR_INVALID_DATA_ARGUMENT_COUNT   = ErrorKind(8)  // InvalidDataArgumentCountError
	ERROR_INTERNAL_COMPILER             = ErrorKind(9)  // InternalCompilerError
	ERROR_LABEL_ALREADY_DEFINED         = ErrorKind(10) // LabelAlreadyDefinedError
	ERROR_UNDEFINED_REFERENCE           = ErrorKind(11) // UndefinedReferenceError
	ERROR_ADDRESS_LITERAL_RANGE         = ErrorKind(12) // AddressLiteralRangeError
	ERROR_ADDRESS_REFERENCE_RANGE       = ErrorKind(13) // AddressReferenceRangeError
	ERROR_VALUE_RANGE                   = ErrorKind(14) // ValueRangeError
	ERROR_PROGRAM_TOO_LARGE             = ErrorKind(15) // ProgramTooLargeError
	ERROR_INVALID_ESCAPE_CODE           = ErrorKind(16) // InvalidEscapeCodeError
)

// Context locates a source line.
type Context struct {
	LineNo int    // 1-based line number, or 0 when not line specific.
	Line   string // Source text of the line.
}

// Location returns the source line the error refers to.
func (ctx Context) Location() Context {
	return ctx
}

func (ctx Context) wrap(msg string) string {
	if ctx.LineNo == 0 {
		return msg
	}
	return f("line %d '%v' %v", ctx.LineNo, ctx.Line, msg)
}

// CompilationError is the interface of every error the assembler reports.
type CompilationError interface {
	error
	Kind() ErrorKind
	Location() Context
}

// ErrInvalidToken is text that no token rule accepts.
type ErrInvalidToken struct {
	Context
	Text string
}

func (err *ErrInvalidToken) Kind() ErrorKind { return ERROR_INVALID_TOKEN }

func (err *ErrInvalidToken) Error() string {
	return err.wrap(f("invalid token: %q", err.Text))
}

// ErrInvalidBreakpoint is a breakpoint marker on anything but a subleq.
type ErrInvalidBreakpoint struct {
	Context
}

func (err *ErrInvalidBreakpoint) Kind() ErrorKind { return ERROR_INVALID_BREAKPOINT }

func (err *ErrInvalidBreakpoint) Error() string {
	return err.wrap(f("breakpoints are only supported on subleq instructions"))
}

// ErrInvalidCommand is a command word other than subleq or .data.
type ErrInvalidCommand struct {
	Context
	Text string
}

func (err *ErrInvalidCommand) Kind() ErrorKind { return ERROR_INVALID_COMMAND }

func (err *ErrInvalidCommand) Error() string {
	return err.wrap(f("unknown command: %q (valid commands are: \"subleq\" and \".data\")", err.Text))
}

// ErrMissingWhitespace is a command directly followed by its first argument.
type ErrMissingWhitespace struct {
	Context
	Text string
}

func (err *ErrMissingWhitespace) Kind() ErrorKind { return ERROR_MISSING_WHITESPACE }

func (err *ErrMissingWhitespace) Error() string {
	return err.wrap(f("whitespace is required after %q", err.Text))
}

// ErrMissingCommaOrWhitespace is an argument not separated from the previous one.
type ErrMissingCommaOrWhitespace struct {
	Context
	Text string
}

func (err *ErrMissingCommaOrWhitespace) Kind() ErrorKind { return ERROR_MISSING_COMMA_OR_WHITESPACE }

func (err *ErrMissingCommaOrWhitespace) Error() string {
	return err.wrap(f("whitespace or comma required before argument: %q", err.Text))
}

// ErrInvalidValueExpression is a .data argument that is not a value.
type ErrInvalidValueExpression struct {
	Context
	Text string
}

func (err *ErrInvalidValueExpression) Kind() ErrorKind { return ERROR_INVALID_VALUE_EXPRESSION }

func (err *ErrInvalidValueExpression) Error() string {
	return err.wrap(f("expected number, character, string, or reference, but got: %q", err.Text))
}

// ErrInvalidAddressExpression is a subleq argument that is not an address.
type ErrInvalidAddressExpression struct {
	Context
	Text string
}

func (err *ErrInvalidAddressExpression) Kind() ErrorKind { return ERROR_INVALID_ADDRESS_EXPRESSION }

func (err *ErrInvalidAddressExpression) Error() string {
	return err.wrap(f("expected number literal or reference, but got: %q", err.Text))
}

// ErrInvalidSubleqArgumentCount is a subleq without two or three arguments.
type ErrInvalidSubleqArgumentCount struct {
	Context
	Count int
	Min   int
	Max   int
}

func (err *ErrInvalidSubleqArgumentCount) Kind() ErrorKind {
	return ERROR_INVALID_SUBLEQ_ARGUMENT_COUNT
}

func (err *ErrInvalidSubleqArgumentCount) Error() string {
	return err.wrap(f("invalid number of arguments for \"subleq\": %d (must be between %d and %d, inclusive)",
		err.Count, err.Min, err.Max))
}

// ErrInvalidDataArgumentCount is a .data without arguments.
type ErrInvalidDataArgumentCount struct {
	Context
	Count int
}

func (err *ErrInvalidDataArgumentCount) Kind() ErrorKind { return ERROR_INVALID_DATA_ARGUMENT_COUNT }

func (err *ErrInvalidDataArgumentCount) Error() string {
	return err.wrap(f("invalid number of arguments for \".data\": %d (must have at least 1 argument)", err.Count))
}

// ErrInternalCompiler is a state the assembler should never reach.
type ErrInternalCompiler struct {
	Context
	Detail string
}

func (err *ErrInternalCompiler) Kind() ErrorKind { return ERROR_INTERNAL_COMPILER }

func (err *ErrInternalCompiler) Error() string {
	return err.wrap(f("internal compiler error: %v", err.Detail))
}

// ErrLabelAlreadyDefined is a second definition of a label.
type ErrLabelAlreadyDefined struct {
	Context
	Label string
}

func (err *ErrLabelAlreadyDefined) Kind() ErrorKind { return ERROR_LABEL_ALREADY_DEFINED }

func (err *ErrLabelAlreadyDefined) Error() string {
	return err.wrap(f("label already defined: \"@%v\"", err.Label))
}

// ErrUndefinedReference is a reference to a label that is never defined.
type ErrUndefinedReference struct {
	Context
	Label string
}

func (err *ErrUndefinedReference) Kind() ErrorKind { return ERROR_UNDEFINED_REFERENCE }

func (err *ErrUndefinedReference) Error() string {
	return err.wrap(f("undefined reference: \"@%v\"", err.Label))
}

// ErrAddressLiteralRange is a numeric address outside of memory.
type ErrAddressLiteralRange struct {
	Context
	Text string
	Min  int
	Max  int
}

func (err *ErrAddressLiteralRange) Kind() ErrorKind { return ERROR_ADDRESS_LITERAL_RANGE }

func (err *ErrAddressLiteralRange) Error() string {
	return err.wrap(f("invalid address argument: %q (must be an integer on the range [%d, %d])",
		err.Text, err.Min, err.Max))
}

// ErrAddressReferenceRange is a reference whose resolved value is not an address.
type ErrAddressReferenceRange struct {
	Context
	Text  string
	Value int
	Min   int
	Max   int
}

func (err *ErrAddressReferenceRange) Kind() ErrorKind { return ERROR_ADDRESS_REFERENCE_RANGE }

func (err *ErrAddressReferenceRange) Error() string {
	return err.wrap(f("invalid address argument: %q resolves to %d (must be an integer on the range [%d, %d])",
		err.Text, err.Value, err.Min, err.Max))
}

// ErrValueRange is a value that does not fit in a byte.
type ErrValueRange struct {
	Context
	Text string
	Min  int
	Max  int
}

func (err *ErrValueRange) Kind() ErrorKind { return ERROR_VALUE_RANGE }

func (err *ErrValueRange) Error() string {
	return err.wrap(f("invalid value argument: %v (must be an integer on the range [%d, %d])",
		err.Text, err.Min, err.Max))
}

// ErrProgramTooLarge is a program image beyond the user writable memory.
type ErrProgramTooLarge struct {
	Context
	Size int
	Max  int
}

func (err *ErrProgramTooLarge) Kind() ErrorKind { return ERROR_PROGRAM_TOO_LARGE }

func (err *ErrProgramTooLarge) Error() string {
	return err.wrap(f("program is too long (maximum size: %d bytes; program size: %d bytes)", err.Max, err.Size))
}

// ErrInvalidEscapeCode is an unknown backslash escape.
type ErrInvalidEscapeCode struct {
	Context
	Text string
}

func (err *ErrInvalidEscapeCode) Kind() ErrorKind { return ERROR_INVALID_ESCAPE_CODE }

func (err *ErrInvalidEscapeCode) Error() string {
	return err.wrap(f("invalid escape code: %q", err.Text))
}
