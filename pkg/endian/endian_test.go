package endian

import (
	"encoding/binary"
	"testing"
	"testing/quick"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNativeIsDeterministic(t *testing.T) {
	first := Native()
	for i := 0; i < 100; i++ {
		require.Equal(t, first, Native())
	}
}

func TestNativeMatchesEncodingBinary(t *testing.T) {
	var b [2]byte
	binary.NativeEndian.PutUint16(b[:], 0x0102)
	if Native() == Big {
		assert.Equal(t, byte(0x01), b[0])
	} else {
		assert.Equal(t, byte(0x02), b[0])
	}
}

func TestSwapKnownValues(t *testing.T) {
	assert.Equal(t, uint16(0x3412), Swap16(0x1234))
	assert.Equal(t, uint32(0x78563412), Swap32(0x12345678))
	assert.Equal(t, uint64(0x0807060504030201), Swap64(0x0102030405060708))
}

func TestSwapSelfInverse(t *testing.T) {
	if err := quick.Check(func(v uint16) bool { return Swap16(Swap16(v)) == v }, nil); err != nil {
		t.Errorf("Error: %v", err)
	}
	if err := quick.Check(func(v uint32) bool { return Swap32(Swap32(v)) == v }, nil); err != nil {
		t.Errorf("Error: %v", err)
	}
	if err := quick.Check(func(v uint64) bool { return Swap64(Swap64(v)) == v }, nil); err != nil {
		t.Errorf("Error: %v", err)
	}
}

func TestConvertSameOrderIsIdentity(t *testing.T) {
	// identity applies before the size check
	for _, size := range []int{0, 1, 2, 3, 4, 8, 16} {
		v, err := Convert(0xDEADBEEF, Big, Big, size)
		require.NoError(t, err)
		assert.Equal(t, uint64(0xDEADBEEF), v)
	}
}

func TestConvertDispatch(t *testing.T) {
	v, err := Convert(0x1234, Little, Big, 2)
	require.NoError(t, err)
	assert.Equal(t, uint64(0x3412), v)

	v, err = Convert(0x12345678, Little, Big, 4)
	require.NoError(t, err)
	assert.Equal(t, uint64(0x78563412), v)

	v, err = Convert(0x0102030405060708, Big, Little, 8)
	require.NoError(t, err)
	assert.Equal(t, uint64(0x0807060504030201), v)
}

func TestConvertUnsupportedSizes(t *testing.T) {
	for _, size := range []int{-1, 0, 1, 3, 5, 16} {
		_, err := Convert(1, Little, Big, size)
		require.Error(t, err)
	}
	_, err := Convert(1, Little, Big, 3)
	require.EqualError(t, err, "Unsupported byte size: 3")
}

func TestEndiannessString(t *testing.T) {
	assert.Equal(t, "little", Little.String())
	assert.Equal(t, "big", Big.String())
}
