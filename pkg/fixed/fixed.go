// Package fixed provides branded fixed-width numeric types with validated
// constructors, plus generic clamp/compare helpers. The types carry no
// runtime cost over the underlying primitives; they exist so that callers
// of the codec layer can tag a plain integer with its intended width.
package fixed

import (
	"fmt"
	"math"

	"golang.org/x/exp/constraints"
)

// The eight branded widths.
type (
	Byte   uint8
	SByte  int8
	Short  int16
	UShort uint16
	Int    int32
	UInt   uint32
	Long   int64
	ULong  uint64
)

func outOfRange(name string, v, lo, hi int64) string {
	return fmt.Sprintf("%s value %d out of range [%d, %d]", name, v, lo, hi)
}

// NewByte validates v against the unsigned 8-bit range.
func NewByte(v int64) Result[Byte] {
	if v < 0 || v > math.MaxUint8 {
		return Fail[Byte](outOfRange("BYTE", v, 0, math.MaxUint8))
	}
	return Ok(Byte(v))
}

// NewSByte validates v against the signed 8-bit range.
func NewSByte(v int64) Result[SByte] {
	if v < math.MinInt8 || v > math.MaxInt8 {
		return Fail[SByte](outOfRange("SBYTE", v, math.MinInt8, math.MaxInt8))
	}
	return Ok(SByte(v))
}

// NewShort validates v against the signed 16-bit range.
func NewShort(v int64) Result[Short] {
	if v < math.MinInt16 || v > math.MaxInt16 {
		return Fail[Short](outOfRange("SHORT", v, math.MinInt16, math.MaxInt16))
	}
	return Ok(Short(v))
}

// NewUShort validates v against the unsigned 16-bit range.
func NewUShort(v int64) Result[UShort] {
	if v < 0 || v > math.MaxUint16 {
		return Fail[UShort](outOfRange("USHORT", v, 0, math.MaxUint16))
	}
	return Ok(UShort(v))
}

// NewInt validates v against the signed 32-bit range.
func NewInt(v int64) Result[Int] {
	if v < math.MinInt32 || v > math.MaxInt32 {
		return Fail[Int](outOfRange("INT", v, math.MinInt32, math.MaxInt32))
	}
	return Ok(Int(v))
}

// NewUInt validates v against the unsigned 32-bit range.
func NewUInt(v int64) Result[UInt] {
	if v < 0 || v > math.MaxUint32 {
		return Fail[UInt](outOfRange("UINT", v, 0, math.MaxUint32))
	}
	return Ok(UInt(v))
}

// NewLong wraps v. Every int64 is a valid LONG; the constructor exists for
// API symmetry with the narrower widths.
func NewLong(v int64) Result[Long] { return Ok(Long(v)) }

// NewULong wraps v. Every uint64 is a valid ULONG.
func NewULong(v uint64) Result[ULong] { return Ok(ULong(v)) }

// Clamp bounds v to [lo, hi].
func Clamp[T constraints.Integer](v, lo, hi T) T {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Compare returns -1, 0 or 1 as a is less than, equal to or greater than b.
func Compare[T constraints.Integer](a, b T) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// Min returns the smaller of a and b.
func Min[T constraints.Ordered](a, b T) T {
	if a < b {
		return a
	}
	return b
}

// Max returns the larger of a and b.
func Max[T constraints.Ordered](a, b T) T {
	if a > b {
		return a
	}
	return b
}
