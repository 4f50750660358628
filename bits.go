package bitmem

import (
	mathbits "math/bits"

	"github.com/pkg/errors"
)

// ByteToBits expands b into its eight bits, LSB-first: index 0 holds bit 0.
func ByteToBits(b byte) [8]Bit {
	var bits [8]Bit
	for i := range bits {
		bits[i] = Bit(b >> i & 1)
	}
	return bits
}

// BitsToByte packs an LSB-first bit sequence back into a byte. The input
// must contain exactly 8 elements.
func BitsToByte(bits []Bit) (byte, error) {
	if len(bits) != 8 {
		return 0, errors.New("Must provide exactly 8 bits")
	}
	var b byte
	for i, bit := range bits {
		if bit != 0 {
			b |= 1 << i
		}
	}
	return b, nil
}

// CountSetBits returns the population count across the whole buffer.
func (m *Memory) CountSetBits() int {
	n := 0
	for _, b := range m.data {
		n += mathbits.OnesCount8(b)
	}
	return n
}

// FindFirstSetBit scans bytes in ascending address order and returns the
// location of the lowest set bit of the first non-zero byte. ok is false
// when the whole buffer is zero.
func (m *Memory) FindFirstSetBit() (loc BitAddr, ok bool) {
	for addr, b := range m.data {
		if b != 0 {
			return BitAddr{Addr: addr, Pos: uint8(mathbits.TrailingZeros8(b))}, true
		}
	}
	return BitAddr{}, false
}
