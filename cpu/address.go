package cpu

const (
	ADDRESS_MIN      = 0   // Lowest address.
	ADDRESS_MAX      = 255 // Highest address.
	ADDRESS_USER_MAX = 252 // Highest user writable address.
	ADDRESS_IN       = 253 // Reads consume one input value, writes are discarded.
	ADDRESS_OUT      = 254 // Reads as zero, writes emit one output value.
	ADDRESS_HALT     = 255 // Reads as zero, writes are discarded, branching here halts.

	SUBLEQ_BYTES = 3 // Size of a subleq instruction.

	ADDRESS_INSTRUCTION_MAX = ADDRESS_MAX - SUBLEQ_BYTES // Last address an instruction may start at.

	VALUE_MIN = -128 // Smallest signed byte.
	VALUE_MAX = 127  // Largest signed byte.

	MEMORY_SIZE      = ADDRESS_MAX + 1      // Bytes of memory.
	PROGRAM_SIZE_MAX = ADDRESS_USER_MAX + 1 // Largest program image.
)

// Labels that are always defined.
var sysLabel = map[string]int{
	"MAX":  ADDRESS_USER_MAX,
	"IN":   ADDRESS_IN,
	"OUT":  ADDRESS_OUT,
	"HALT": ADDRESS_HALT,
}

// SignedToUnsigned returns the two's complement byte of a signed value.
func SignedToUnsigned(value int8) uint8 {
	return uint8(value)
}

// UnsignedToSigned interprets a byte as a two's complement signed value.
func UnsignedToSigned(value uint8) int8 {
	return int8(value)
}
