package fixed

import "fmt"

// Representation helpers. Signed types format their two's-complement bit
// pattern, so SByte(-1).Hex() is "ff", not "-01".

func (v Byte) Hex() string    { return fmt.Sprintf("%02x", uint8(v)) }
func (v Byte) Binary() string { return fmt.Sprintf("%08b", uint8(v)) }
func (v Byte) Octal() string  { return fmt.Sprintf("%03o", uint8(v)) }

func (v SByte) Hex() string    { return fmt.Sprintf("%02x", uint8(v)) }
func (v SByte) Binary() string { return fmt.Sprintf("%08b", uint8(v)) }
func (v SByte) Octal() string  { return fmt.Sprintf("%03o", uint8(v)) }

func (v Short) Hex() string    { return fmt.Sprintf("%04x", uint16(v)) }
func (v Short) Binary() string { return fmt.Sprintf("%016b", uint16(v)) }
func (v Short) Octal() string  { return fmt.Sprintf("%06o", uint16(v)) }

func (v UShort) Hex() string    { return fmt.Sprintf("%04x", uint16(v)) }
func (v UShort) Binary() string { return fmt.Sprintf("%016b", uint16(v)) }
func (v UShort) Octal() string  { return fmt.Sprintf("%06o", uint16(v)) }

func (v Int) Hex() string    { return fmt.Sprintf("%08x", uint32(v)) }
func (v Int) Binary() string { return fmt.Sprintf("%032b", uint32(v)) }
func (v Int) Octal() string  { return fmt.Sprintf("%011o", uint32(v)) }

func (v UInt) Hex() string    { return fmt.Sprintf("%08x", uint32(v)) }
func (v UInt) Binary() string { return fmt.Sprintf("%032b", uint32(v)) }
func (v UInt) Octal() string  { return fmt.Sprintf("%011o", uint32(v)) }

func (v Long) Hex() string    { return fmt.Sprintf("%016x", uint64(v)) }
func (v Long) Binary() string { return fmt.Sprintf("%064b", uint64(v)) }
func (v Long) Octal() string  { return fmt.Sprintf("%022o", uint64(v)) }

func (v ULong) Hex() string    { return fmt.Sprintf("%016x", uint64(v)) }
func (v ULong) Binary() string { return fmt.Sprintf("%064b", uint64(v)) }
func (v ULong) Octal() string  { return fmt.Sprintf("%022o", uint64(v)) }
