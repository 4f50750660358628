// Package endian detects the host byte order and performs byte-order-aware,
// bounds-checked reads and writes of multi-byte integers and IEEE-754 floats
// against a bitmem.Memory.
package endian

import (
	"encoding/binary"
	"unsafe"
)

// Endianness selects the byte order of a multi-byte access.
type Endianness uint8

const (
	Little Endianness = iota
	Big
)

func (e Endianness) String() string {
	if e == Big {
		return "big"
	}
	return "little"
}

func (e Endianness) order() binary.ByteOrder {
	if e == Big {
		return binary.BigEndian
	}
	return binary.LittleEndian
}

// Native reports the byte order of the host. It probes on every call by
// storing the 16-bit pattern 0x0102 into a 2-byte scratch buffer and
// inspecting the first byte; the result is a hardware invariant and never
// varies between calls.
func Native() Endianness {
	var scratch [2]byte
	*(*uint16)(unsafe.Pointer(&scratch[0])) = 0x0102
	if scratch[0] == 0x01 {
		return Big
	}
	return Little
}
