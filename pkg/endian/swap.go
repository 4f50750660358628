package endian

import (
	mathbits "math/bits"

	"github.com/pkg/errors"

	"github.com/CodeCraft-Dispatch/bitmem/internal/common"
)

// Swap16 exchanges the low and high byte of v. Self-inverse.
func Swap16(v uint16) uint16 { return mathbits.ReverseBytes16(v) }

// Swap32 reverses all four bytes of v. Self-inverse.
func Swap32(v uint32) uint32 { return mathbits.ReverseBytes32(v) }

// Swap64 reverses all eight bytes of v. Self-inverse.
func Swap64(v uint64) uint64 { return mathbits.ReverseBytes64(v) }

// Convert re-orders the low byteSize bytes of v from one byte order to the
// other. v is returned unchanged when from == to. byteSize must be 2, 4 or 8.
func Convert(v uint64, from, to Endianness, byteSize int) (uint64, error) {
	if from == to {
		return v, nil
	}
	switch byteSize {
	case common.SizeUint16:
		return uint64(Swap16(uint16(v))), nil
	case common.SizeUint32:
		return uint64(Swap32(uint32(v))), nil
	case common.SizeUint64:
		return Swap64(v), nil
	default:
		return 0, errors.Errorf("Unsupported byte size: %d", byteSize)
	}
}
