// Package bitfield provides generic indexed access to fixed-width sub-fields
// of unsigned integer containers. One accessor pair serves every
// container/slice width combination the encoding layer needs: nibbles inside
// bytes, bytes inside words, and 16/32/64-bit float patterns inside 64-bit
// register values.
package bitfield

import (
	"unsafe"

	"github.com/Echo-Heo/aphelion-util/nibble"
)

// Uint is any fixed-width unsigned integer container.
type Uint interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64
}

func width[T Uint]() uint {
	var t T
	return uint(unsafe.Sizeof(t)) * 8
}

// Field returns the idx-th S-width slice of c, counting from the least
// significant end. idx*width(S) must be below width(C).
func Field[S, C Uint](c C, idx uint) S {
	return S(c >> (idx * width[S]()))
}

// SetField writes v into the idx-th S-width slice of *c, clearing exactly
// that slice's bits and leaving every other bit of the container unchanged.
// The slice type bounds the value, so no bits can leak into sibling fields.
func SetField[S, C Uint](c *C, idx uint, v S) {
	shift := idx * width[S]()
	var mask C
	if width[S]() >= width[C]() {
		mask = ^C(0)
	} else {
		mask = C(1)<<width[S]() - 1
	}
	*c = *c&^(mask<<shift) | C(v)<<shift
}

// Bit returns the single bit of c at position idx.
func Bit[C Uint](c C, idx uint) bool {
	return c>>idx&1 != 0
}

// SetBit writes a single bit of *c at position idx.
func SetBit[C Uint](c *C, idx uint, v bool) {
	if v {
		*c |= 1 << idx
	} else {
		*c &^= 1 << idx
	}
}

// Nib returns the idx-th nibble of c.
func Nib[C Uint](c C, idx uint) nibble.Nibble {
	return nibble.FromByte(uint8(c >> (idx * 4)))
}

// SetNib writes v into the idx-th nibble of *c.
func SetNib[C Uint](c *C, idx uint, v nibble.Nibble) {
	shift := idx * 4
	*c = *c&^(C(0xF)<<shift) | C(v.Byte())<<shift
}

// SignExtend reinterprets the low bits of v as a two's-complement value of
// the given width and returns it sign-extended to the full 64-bit pattern.
// bits must be in 1..64.
func SignExtend(v uint64, bits uint) uint64 {
	shift := 64 - bits
	return uint64(int64(v<<shift) >> shift)
}
