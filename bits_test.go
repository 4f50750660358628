package bitmem

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBitRoundTripAllBytes(t *testing.T) {
	for v := 0; v < 256; v++ {
		bits := ByteToBits(byte(v))
		b, err := BitsToByte(bits[:])
		require.NoError(t, err)
		require.Equal(t, byte(v), b)
	}
}

func TestByteToBitsLSBFirst(t *testing.T) {
	bits := ByteToBits(0b1000_0010)
	assert.Equal(t, [8]Bit{0, 1, 0, 0, 0, 0, 0, 1}, bits)
}

func TestBitsToByteWrongCount(t *testing.T) {
	for _, n := range []int{0, 7, 9} {
		_, err := BitsToByte(make([]Bit, n))
		require.EqualError(t, err, "Must provide exactly 8 bits")
	}
}

func TestCountSetBits(t *testing.T) {
	for _, n := range []int{0, 1, 5, 64} {
		full := make([]byte, n)
		for i := range full {
			full[i] = 0xFF
		}
		assert.Equal(t, 8*n, FromBytes(full).CountSetBits())
		assert.Equal(t, 0, New(n).CountSetBits())
	}

	assert.Equal(t, 4, FromBytes([]byte{0b0101, 0, 0b1010}).CountSetBits())
}

func TestFindFirstSetBit(t *testing.T) {
	loc, ok := FromBytes([]byte{0, 0, 0b0010_1000, 0xFF}).FindFirstSetBit()
	require.True(t, ok)
	assert.Equal(t, BitAddr{Addr: 2, Pos: 3}, loc)

	_, ok = New(16).FindFirstSetBit()
	assert.False(t, ok)
	_, ok = New(0).FindFirstSetBit()
	assert.False(t, ok)
}
