// Package cpu implements the SIC-1 single instruction computer and its assembler.
//
// The machine has 256 bytes of memory and a single instruction, subleq A, B, C:
// memory[A] = memory[A] - memory[B], and branch to C if the result, read as a
// signed byte, is less than or equal to zero. Addresses 253 (IN), 254 (OUT) and
// 255 (HALT) are memory mapped to the host.
//
// The assembler turns SIC-1 assembly source into a Program: a byte image, a
// source map, the watchable variables, and the breakpoint addresses.
package cpu
