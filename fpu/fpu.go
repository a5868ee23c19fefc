// Package fpu implements Aphelion's width-polymorphic floating-point
// operation layer. Values of every precision travel as their IEEE bit
// pattern stored in the low bits of a 64-bit container; the Precision tag
// selects which width an operation is performed at.
package fpu

import (
	"github.com/Echo-Heo/aphelion-util/nibble"
)

// Precision selects one of the three floating-point widths.
type Precision uint8

// Floating-point precisions.
const (
	Half   Precision = 0 // IEEE binary16
	Single Precision = 1 // IEEE binary32
	Double Precision = 2 // IEEE binary64
)

// PrecisionFromNibble maps a function nibble to a precision. It reports
// false for the unassigned values 3..15.
func PrecisionFromNibble(n nibble.Nibble) (Precision, bool) {
	if n > nibble.X2 {
		return 0, false
	}
	return Precision(n), true
}

// Nibble returns the precision's sub-code nibble.
func (p Precision) Nibble() nibble.Nibble {
	return nibble.Nibble(p)
}

func (p Precision) String() string {
	switch p {
	case Half:
		return ".16"
	case Single:
		return ".32"
	default:
		return ".64"
	}
}

func (p Precision) ops() width {
	switch p {
	case Half:
		return half{}
	case Single:
		return single{}
	default:
		return double{}
	}
}

// Eq reports whether the two patterns compare equal as floats. NaN compares
// unequal to everything; positive and negative zero compare equal.
func (p Precision) Eq(a, b uint64) bool { return p.ops().eq(a, b) }

// Lt reports whether a is less than b as floats.
func (p Precision) Lt(a, b uint64) bool { return p.ops().lt(a, b) }

// Signbit reports whether the pattern's sign bit is set, including for
// negative zero and negative NaN.
func (p Precision) Signbit(a uint64) bool { return p.ops().signbit(a) }

// IsZero reports whether the pattern is an exact zero of either sign.
func (p Precision) IsZero(a uint64) bool { return p.ops().isZero(a) }

// FromInt converts a signed integer pattern to a float of this precision.
func (p Precision) FromInt(v uint64) uint64 { return p.ops().fromInt(v) }

// ToInt converts a float pattern to a signed integer, truncating toward
// zero. NaN and out-of-range values convert to 0.
func (p Precision) ToInt(a uint64) uint64 { return p.ops().toInt(a) }

// Neg flips the pattern's sign bit.
func (p Precision) Neg(a uint64) uint64 { return p.ops().neg(a) }

// Abs clears the pattern's sign bit.
func (p Precision) Abs(a uint64) uint64 { return p.ops().abs(a) }

// Add returns a + b.
func (p Precision) Add(a, b uint64) uint64 { return p.ops().add(a, b) }

// Sub returns a - b.
func (p Precision) Sub(a, b uint64) uint64 { return p.ops().sub(a, b) }

// Mul returns a × b.
func (p Precision) Mul(a, b uint64) uint64 { return p.ops().mul(a, b) }

// Div returns a ÷ b.
func (p Precision) Div(a, b uint64) uint64 { return p.ops().div(a, b) }

// MulAdd accumulates a × b into *dest. The product and the sum each round
// at this precision.
func (p Precision) MulAdd(a, b uint64, dest *uint64) {
	*dest = p.Add(*dest, p.Mul(a, b))
}

// Sqrt returns the square root of a.
func (p Precision) Sqrt(a uint64) uint64 { return p.ops().sqrt(a) }

// Min returns the smaller operand. If exactly one operand is NaN, the other
// is returned.
func (p Precision) Min(a, b uint64) uint64 { return p.ops().min(a, b) }

// Max returns the larger operand. If exactly one operand is NaN, the other
// is returned.
func (p Precision) Max(a, b uint64) uint64 { return p.ops().max(a, b) }

// Ceil rounds a up to the nearest integral value.
func (p Precision) Ceil(a uint64) uint64 { return p.ops().ceil(a) }

// IsNaN returns 1 if the pattern is a NaN, else 0.
func (p Precision) IsNaN(a uint64) uint64 { return p.ops().isNaN(a) }

// CastType is a from/to precision pair for the cross-precision cast
// operation.
type CastType struct {
	To   Precision
	From Precision
}

// CastTypeFromNibble unpacks a cast sub-code nibble: the low two bits select
// the destination precision, the high two the source. It reports false if
// either half names no precision.
func CastTypeFromNibble(n nibble.Nibble) (CastType, bool) {
	to, okTo := PrecisionFromNibble(nibble.FromByte(n.Byte() & 0b11))
	from, okFrom := PrecisionFromNibble(nibble.FromByte(n.Byte() >> 2))
	if !okTo || !okFrom {
		return CastType{}, false
	}
	return CastType{To: to, From: from}, true
}

// Nibble packs the cast pair back into its sub-code nibble.
func (c CastType) Nibble() nibble.Nibble {
	return nibble.FromByte(uint8(c.From)<<2 | uint8(c.To))
}

// Cast converts the bit pattern in a from the source precision to the
// destination precision. A cast between equal precisions returns a
// unchanged.
func (c CastType) Cast(a uint64) uint64 {
	if c.From == c.To {
		return a
	}
	return c.To.ops().store64(c.From.ops().load64(a))
}

func (c CastType) String() string {
	return c.To.String() + c.From.String()
}
