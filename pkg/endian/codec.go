package endian

import (
	"math"

	"github.com/CodeCraft-Dispatch/bitmem"
	"github.com/CodeCraft-Dispatch/bitmem/internal/common"
)

// The write family takes a wide value parameter (int64 / uint64) on purpose:
// a value beyond the target width wraps by two's-complement truncation, so
// writing 65536 to a 16-bit slot round-trips as 0 and writing -32769
// round-trips as 32767. Signed and unsigned accessors of the same width
// share an identical byte layout; only the final sign interpretation on
// read differs.

// WriteUint16 stores the low 16 bits of v at addr in the given byte order.
func WriteUint16(m *bitmem.Memory, addr int, v uint64, order Endianness) error {
	return put(m, addr, v, common.SizeUint16, order)
}

// WriteInt16 stores v as a two's-complement 16-bit value.
func WriteInt16(m *bitmem.Memory, addr int, v int64, order Endianness) error {
	return put(m, addr, uint64(v), common.SizeUint16, order)
}

// WriteUint32 stores the low 32 bits of v at addr in the given byte order.
func WriteUint32(m *bitmem.Memory, addr int, v uint64, order Endianness) error {
	return put(m, addr, v, common.SizeUint32, order)
}

// WriteInt32 stores v as a two's-complement 32-bit value.
func WriteInt32(m *bitmem.Memory, addr int, v int64, order Endianness) error {
	return put(m, addr, uint64(v), common.SizeUint32, order)
}

// WriteUint64 stores v at addr in the given byte order.
func WriteUint64(m *bitmem.Memory, addr int, v uint64, order Endianness) error {
	return put(m, addr, v, common.SizeUint64, order)
}

// WriteInt64 stores v as a two's-complement 64-bit value. The byte layout
// is identical to WriteUint64 of the same bit pattern.
func WriteInt64(m *bitmem.Memory, addr int, v int64, order Endianness) error {
	return put(m, addr, uint64(v), common.SizeUint64, order)
}

// ReadUint16 reads a 16-bit unsigned value from addr in the given byte order.
func ReadUint16(m *bitmem.Memory, addr int, order Endianness) (uint16, error) {
	u, err := get(m, addr, common.SizeUint16, order)
	return uint16(u), err
}

// ReadInt16 reads a 16-bit value and reinterprets it as two's-complement.
func ReadInt16(m *bitmem.Memory, addr int, order Endianness) (int16, error) {
	u, err := get(m, addr, common.SizeUint16, order)
	return int16(u), err
}

// ReadUint32 reads a 32-bit unsigned value from addr in the given byte order.
func ReadUint32(m *bitmem.Memory, addr int, order Endianness) (uint32, error) {
	u, err := get(m, addr, common.SizeUint32, order)
	return uint32(u), err
}

// ReadInt32 reads a 32-bit value and reinterprets it as two's-complement.
func ReadInt32(m *bitmem.Memory, addr int, order Endianness) (int32, error) {
	u, err := get(m, addr, common.SizeUint32, order)
	return int32(u), err
}

// ReadUint64 reads a 64-bit unsigned value from addr in the given byte order.
func ReadUint64(m *bitmem.Memory, addr int, order Endianness) (uint64, error) {
	return get(m, addr, common.SizeUint64, order)
}

// ReadInt64 reads a 64-bit value and reinterprets it as two's-complement.
func ReadInt64(m *bitmem.Memory, addr int, order Endianness) (int64, error) {
	u, err := get(m, addr, common.SizeUint64, order)
	return int64(u), err
}

// WriteFloat32 narrows v to IEEE-754 binary32 and stores its bit pattern.
// Magnitudes beyond the float32 range become the correctly-signed infinity,
// per IEEE narrowing rules.
func WriteFloat32(m *bitmem.Memory, addr int, v float64, order Endianness) error {
	return put(m, addr, uint64(math.Float32bits(float32(v))), common.SizeUint32, order)
}

// ReadFloat32 reads a 4-byte span as an IEEE-754 binary32 value.
func ReadFloat32(m *bitmem.Memory, addr int, order Endianness) (float32, error) {
	u, err := get(m, addr, common.SizeUint32, order)
	if err != nil {
		return 0, err
	}
	return math.Float32frombits(uint32(u)), nil
}

// WriteFloat64 stores the IEEE-754 binary64 bit pattern of v.
func WriteFloat64(m *bitmem.Memory, addr int, v float64, order Endianness) error {
	return put(m, addr, math.Float64bits(v), common.SizeUint64, order)
}

// ReadFloat64 reads an 8-byte span as an IEEE-754 binary64 value.
func ReadFloat64(m *bitmem.Memory, addr int, order Endianness) (float64, error) {
	u, err := get(m, addr, common.SizeUint64, order)
	if err != nil {
		return 0, err
	}
	return math.Float64frombits(u), nil
}

// put bounds-checks the full span, then decomposes the low size bytes of v
// per order and writes them through the single-byte primitive in sequence.
// The check runs before any byte is touched, so a failed write leaves the
// memory bit-for-bit unchanged.
func put(m *bitmem.Memory, addr int, v uint64, size int, order Endianness) error {
	if err := common.CheckBounds(m.Len(), addr, size, common.OpWrite); err != nil {
		return err
	}
	var scratch [8]byte
	switch size {
	case common.SizeUint16:
		order.order().PutUint16(scratch[:2], uint16(v))
	case common.SizeUint32:
		order.order().PutUint32(scratch[:4], uint32(v))
	default:
		order.order().PutUint64(scratch[:8], v)
	}
	for i := 0; i < size; i++ {
		if err := m.SetByte(addr+i, scratch[i]); err != nil {
			return err
		}
	}
	return nil
}

// get bounds-checks the full span, reads size bytes in address order via the
// single-byte primitive and reassembles them per order.
func get(m *bitmem.Memory, addr, size int, order Endianness) (uint64, error) {
	if err := common.CheckBounds(m.Len(), addr, size, common.OpRead); err != nil {
		return 0, err
	}
	var scratch [8]byte
	for i := 0; i < size; i++ {
		b, err := m.Byte(addr + i)
		if err != nil {
			return 0, err
		}
		scratch[i] = b
	}
	switch size {
	case common.SizeUint16:
		return uint64(order.order().Uint16(scratch[:2])), nil
	case common.SizeUint32:
		return uint64(order.order().Uint32(scratch[:4])), nil
	default:
		return order.order().Uint64(scratch[:8]), nil
	}
}
