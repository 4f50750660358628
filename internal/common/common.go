// Package common holds the bounds checking and width helpers shared by the
// bitmem core and the endian codec.
package common

import "fmt"

// Op identifies the direction of a memory access for diagnostics.
type Op string

const (
	OpRead  Op = "read"
	OpWrite Op = "write"
)

// Byte widths of the supported access sizes.
const (
	SizeByte   = 1
	SizeUint16 = 2
	SizeUint32 = 4
	SizeUint64 = 8
)

// OutOfBoundsError reports an access whose address range falls outside the
// buffer. Bits is the width of the attempted access in bits.
type OutOfBoundsError struct {
	Addr int
	Bits int
	Op   Op
}

func (e *OutOfBoundsError) Error() string {
	return fmt.Sprintf("Address %d out of bounds for %d-bit %s", e.Addr, e.Bits, e.Op)
}

// CheckBounds validates that [addr, addr+size) lies entirely inside a buffer
// of the given length. It must run before any byte is touched so that a
// failing access leaves the buffer unchanged.
func CheckBounds(length, addr, size int, op Op) error {
	if addr < 0 {
		return &OutOfBoundsError{Addr: addr, Bits: size * 8, Op: op}
	}
	if addr+size-1 >= length {
		return &OutOfBoundsError{Addr: addr, Bits: size * 8, Op: op}
	}
	return nil
}
