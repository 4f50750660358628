// Package bitmem implements a fixed-length, byte-addressable memory with
// bit-granularity accessors and strict bounds checking. Multi-byte,
// endianness-aware access lives in pkg/endian and is built on top of the
// single-byte accessors here.
package bitmem

import (
	"github.com/pkg/errors"

	"github.com/CodeCraft-Dispatch/bitmem/internal/common"
)

// Bit is a single binary digit. Any non-zero value counts as set when
// writing; reads always produce 0 or 1.
type Bit uint8

// BitAddr locates a single bit inside a Memory: a byte address plus an
// LSB-first bit position in [0,7].
type BitAddr struct {
	Addr int
	Pos  uint8
}

// BitWrite is one element of a batch SetBits call.
type BitWrite struct {
	Addr  int
	Pos   uint8
	Value Bit
}

// Memory is a fixed-length byte buffer. The length is set at creation and
// never changes. Mutating methods validate bounds before touching any byte,
// so a failed operation leaves the buffer exactly as it was.
//
// Memory is not safe for concurrent mutation; embedders that share a buffer
// across goroutines should mutate a Clone and swap it in.
type Memory struct {
	data []byte
}

// New returns a zero-filled Memory of size bytes. size may be zero, in which
// case every addressed operation fails its bounds check. A negative size is
// a contract violation and panics.
func New(size int) *Memory {
	if size < 0 {
		panic(errors.Errorf("negative memory size: %d", size))
	}
	return &Memory{data: make([]byte, size)}
}

// FromBytes returns a Memory initialized with a copy of b.
func FromBytes(b []byte) *Memory {
	data := make([]byte, len(b))
	copy(data, b)
	return &Memory{data: data}
}

// Len returns the buffer length in bytes.
func (m *Memory) Len() int { return len(m.data) }

// Bytes returns a copy of the underlying buffer.
func (m *Memory) Bytes() []byte {
	out := make([]byte, len(m.data))
	copy(out, m.data)
	return out
}

// Clone returns an independent copy of the memory.
func (m *Memory) Clone() *Memory {
	return &Memory{data: m.Bytes()}
}

// Byte returns the byte stored at addr.
func (m *Memory) Byte(addr int) (byte, error) {
	if err := common.CheckBounds(len(m.data), addr, common.SizeByte, common.OpRead); err != nil {
		return 0, err
	}
	return m.data[addr], nil
}

// SetByte stores v at addr.
func (m *Memory) SetByte(addr int, v byte) error {
	if err := common.CheckBounds(len(m.data), addr, common.SizeByte, common.OpWrite); err != nil {
		return err
	}
	m.data[addr] = v
	return nil
}

// Bit returns bit pos of the byte at addr, LSB-first.
func (m *Memory) Bit(addr int, pos uint8) (Bit, error) {
	if err := checkPos(pos); err != nil {
		return 0, err
	}
	if err := common.CheckBounds(len(m.data), addr, common.SizeByte, common.OpRead); err != nil {
		return 0, err
	}
	return Bit(m.data[addr] >> pos & 1), nil
}

// SetBit sets or clears bit pos of the byte at addr, leaving the other seven
// bits and every other byte unchanged.
func (m *Memory) SetBit(addr int, pos uint8, v Bit) error {
	if err := checkPos(pos); err != nil {
		return err
	}
	if err := common.CheckBounds(len(m.data), addr, common.SizeByte, common.OpWrite); err != nil {
		return err
	}
	m.storeBit(addr, pos, v)
	return nil
}

// FlipBit inverts bit pos of the byte at addr.
func (m *Memory) FlipBit(addr int, pos uint8) error {
	if err := checkPos(pos); err != nil {
		return err
	}
	if err := common.CheckBounds(len(m.data), addr, common.SizeByte, common.OpWrite); err != nil {
		return err
	}
	m.data[addr] ^= 1 << pos
	return nil
}

// SetBits applies ops in order, so later elements observe the effect of
// earlier ones. Every target is validated up front; a failing batch returns
// the first element's error and leaves the memory unchanged.
func (m *Memory) SetBits(ops []BitWrite) error {
	for _, op := range ops {
		if err := checkPos(op.Pos); err != nil {
			return err
		}
		if err := common.CheckBounds(len(m.data), op.Addr, common.SizeByte, common.OpWrite); err != nil {
			return err
		}
	}
	for _, op := range ops {
		m.storeBit(op.Addr, op.Pos, op.Value)
	}
	return nil
}

// Bits reads the listed bit locations and returns their values in the same
// order. It stops at the first invalid location.
func (m *Memory) Bits(locs []BitAddr) ([]Bit, error) {
	out := make([]Bit, 0, len(locs))
	for _, l := range locs {
		b, err := m.Bit(l.Addr, l.Pos)
		if err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	return out, nil
}

func (m *Memory) storeBit(addr int, pos uint8, v Bit) {
	if v != 0 {
		m.data[addr] |= 1 << pos
	} else {
		m.data[addr] &^= 1 << pos
	}
}

func checkPos(pos uint8) error {
	if pos > 7 {
		return errors.Errorf("bit position %d out of range [0,7]", pos)
	}
	return nil
}
