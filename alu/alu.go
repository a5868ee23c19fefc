// Package alu implements Aphelion's integer arithmetic and bitwise helper
// operations. Every value is transported as a 64-bit unsigned pattern and
// reinterpreted per operation. All functions are pure; operations that can
// fail (division by zero, signed division overflow) report ok=false instead
// of panicking.
package alu

import (
	"math"
	"math/bits"
)

// AddResult is the outcome of a carry-aware add or subtract. The unsigned
// and signed overflow flags are computed independently over the same inputs
// and carry-in; Result is always the unsigned-domain value.
type AddResult struct {
	Result           uint64
	UnsignedOverflow bool
	SignedOverflow   bool
}

// Add computes a + b + carry. The unsigned flag is the carry-out of the full
// unsigned addition; the signed flag chains the two's-complement overflow of
// a+b with that of adding the carry as a signed 1.
func Add(a, b uint64, carry bool) AddResult {
	var carryIn uint64
	if carry {
		carryIn = 1
	}
	sum, carryOut := bits.Add64(a, b, carryIn)

	s := int64(a) + int64(b)
	ovf1 := (int64(a)^s)&(int64(b)^s) < 0
	ovf2 := carry && s == math.MaxInt64

	return AddResult{
		Result:           sum,
		UnsignedOverflow: carryOut != 0,
		SignedOverflow:   ovf1 != ovf2,
	}
}

// Sub computes a - b - borrow, with flag semantics mirroring Add.
func Sub(a, b uint64, borrow bool) AddResult {
	var borrowIn uint64
	if borrow {
		borrowIn = 1
	}
	diff, borrowOut := bits.Sub64(a, b, borrowIn)

	s := int64(a) - int64(b)
	ovf1 := (int64(a)^int64(b))&(int64(a)^s) < 0
	ovf2 := borrow && s == math.MinInt64

	return AddResult{
		Result:           diff,
		UnsignedOverflow: borrowOut != 0,
		SignedOverflow:   ovf1 != ovf2,
	}
}

// Imul computes the wrapping signed product of a and b.
func Imul(a, b uint64) uint64 {
	return uint64(int64(a) * int64(b))
}

// Idiv computes the signed quotient of a and b. It reports false on division
// by zero and on MinInt64 / -1, which overflows the signed range.
func Idiv(a, b uint64) (uint64, bool) {
	if b == 0 || (int64(a) == math.MinInt64 && int64(b) == -1) {
		return 0, false
	}
	return uint64(int64(a) / int64(b)), true
}

// Umul computes the wrapping unsigned product of a and b.
func Umul(a, b uint64) uint64 {
	return a * b
}

// Udiv computes the unsigned quotient of a and b. It reports false only on
// division by zero.
func Udiv(a, b uint64) (uint64, bool) {
	if b == 0 {
		return 0, false
	}
	return a / b, true
}

// Rem computes the signed truncating remainder; the sign follows the
// dividend. It fails under the same conditions as Idiv.
func Rem(a, b uint64) (uint64, bool) {
	if b == 0 || (int64(a) == math.MinInt64 && int64(b) == -1) {
		return 0, false
	}
	return uint64(int64(a) % int64(b)), true
}

// Mod computes the signed Euclidean remainder, which is never negative.
// It fails under the same conditions as Idiv.
func Mod(a, b uint64) (uint64, bool) {
	if b == 0 || (int64(a) == math.MinInt64 && int64(b) == -1) {
		return 0, false
	}
	r := int64(a) % int64(b)
	if r < 0 {
		if int64(b) < 0 {
			r -= int64(b)
		} else {
			r += int64(b)
		}
	}
	return uint64(r), true
}

// And returns a & b.
func And(a, b uint64) uint64 { return a & b }

// Or returns a | b.
func Or(a, b uint64) uint64 { return a | b }

// Nor returns ^(a | b).
func Nor(a, b uint64) uint64 { return ^(a | b) }

// Xor returns a ^ b.
func Xor(a, b uint64) uint64 { return a ^ b }

// Shl returns a << b. Counts of 64 or more yield 0.
func Shl(a, b uint64) uint64 { return a << b }

// Shr returns the logical right shift a >> b. Counts of 64 or more yield 0.
func Shr(a, b uint64) uint64 { return a >> b }

// Asr returns the arithmetic right shift of a's signed reinterpretation.
// Counts of 64 or more fill with the sign bit.
func Asr(a, b uint64) uint64 { return uint64(int64(a) >> b) }

// Bit returns bit b of a (bit 0 is least significant) as 0 or 1.
func Bit(a, b uint64) uint64 {
	return a >> b & 1
}
