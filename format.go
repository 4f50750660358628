package bitmem

import (
	"fmt"
	"strings"
)

// Hex renders each byte as two hex digits, space-separated, in address order.
func (m *Memory) Hex() string {
	parts := make([]string, len(m.data))
	for i, b := range m.data {
		parts[i] = fmt.Sprintf("%02x", b)
	}
	return strings.Join(parts, " ")
}

// Binary renders each byte as eight binary digits, space-separated, in
// address order.
func (m *Memory) Binary() string {
	parts := make([]string, len(m.data))
	for i, b := range m.data {
		parts[i] = fmt.Sprintf("%08b", b)
	}
	return strings.Join(parts, " ")
}
