package bitmem

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHex(t *testing.T) {
	assert.Equal(t, "00 ff 0a", FromBytes([]byte{0x00, 0xFF, 0x0A}).Hex())
	assert.Equal(t, "", New(0).Hex())
}

func TestBinary(t *testing.T) {
	assert.Equal(t, "00000000 11111111 00001010", FromBytes([]byte{0x00, 0xFF, 0x0A}).Binary())
	assert.Equal(t, "", New(0).Binary())
}
