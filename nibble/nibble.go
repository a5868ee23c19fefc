// Package nibble provides the 4-bit value type used throughout the Aphelion
// instruction encoding. A nibble is the smallest addressable field unit:
// register indexes, secondary function codes, and shift amounts are all
// nibbles packed two to a byte.
package nibble

import "fmt"

// Nibble is a 4-bit unsigned value in the range 0..15.
type Nibble uint8

// The sixteen nibble values.
const (
	X0 Nibble = 0x0
	X1 Nibble = 0x1
	X2 Nibble = 0x2
	X3 Nibble = 0x3
	X4 Nibble = 0x4
	X5 Nibble = 0x5
	X6 Nibble = 0x6
	X7 Nibble = 0x7
	X8 Nibble = 0x8
	X9 Nibble = 0x9
	XA Nibble = 0xA
	XB Nibble = 0xB
	XC Nibble = 0xC
	XD Nibble = 0xD
	XE Nibble = 0xE
	XF Nibble = 0xF
)

// FromByte returns the low half of b.
func FromByte(b uint8) Nibble {
	return Nibble(b & 0x0F)
}

// FromByteHigh returns the high half of b.
func FromByteHigh(b uint8) Nibble {
	return Nibble(b >> 4)
}

// TryFromByte converts b to a Nibble. It reports false if b does not fit in
// four bits.
func TryFromByte(b uint8) (Nibble, bool) {
	if b > 0x0F {
		return 0, false
	}
	return Nibble(b), true
}

// Byte returns the nibble as the low half of a byte.
func (n Nibble) Byte() uint8 {
	return uint8(n)
}

// ByteHigh returns the nibble shifted into the high half of a byte.
func (n Nibble) ByteHigh() uint8 {
	return uint8(n) << 4
}

// Compose packs n into the low half and hi into the high half of one byte.
func (n Nibble) Compose(hi Nibble) uint8 {
	return n.Byte() | hi.ByteHigh()
}

// Bit returns bit i of the nibble. Bit 0 is the least significant.
func (n Nibble) Bit(i uint) bool {
	return (n>>i)&1 != 0
}

// SetBit returns the nibble with bit i set to v. Indexes past the nibble's
// four bits leave the value unchanged.
func (n Nibble) SetBit(i uint, v bool) Nibble {
	if i > 4 {
		return n
	}
	if v {
		return FromByte(n.Byte() | 1<<i)
	}
	return FromByte(n.Byte() &^ (1 << i))
}

func (n Nibble) String() string {
	return fmt.Sprintf("%d", uint8(n))
}
