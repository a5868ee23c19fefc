package fpu

import (
	"math"

	"github.com/x448/float16"

	"github.com/Echo-Heo/aphelion-util/bitfield"
)

// width is the per-precision implementation behind Precision's methods.
// Arithmetic rounds at the implementing width; load64/store64 bridge to
// float64 for the cross-precision cast.
type width interface {
	eq(a, b uint64) bool
	lt(a, b uint64) bool
	signbit(a uint64) bool
	isZero(a uint64) bool
	fromInt(v uint64) uint64
	toInt(a uint64) uint64
	neg(a uint64) uint64
	abs(a uint64) uint64
	add(a, b uint64) uint64
	sub(a, b uint64) uint64
	mul(a, b uint64) uint64
	div(a, b uint64) uint64
	sqrt(a uint64) uint64
	min(a, b uint64) uint64
	max(a, b uint64) uint64
	ceil(a uint64) uint64
	isNaN(a uint64) uint64
	load64(a uint64) float64
	store64(v float64) uint64
}

// truncToInt truncates toward zero. NaN and values outside the signed
// 64-bit range yield 0.
func truncToInt(f float64) uint64 {
	if math.IsNaN(f) || f >= 1<<63 || f < -(1 << 63) {
		return 0
	}
	return uint64(int64(f))
}

// minFloat returns the smaller value, preferring the non-NaN operand when
// exactly one is NaN.
func minFloat(a, b float64) float64 {
	if a < b || math.IsNaN(b) {
		return a
	}
	return b
}

func maxFloat(a, b float64) float64 {
	if a > b || math.IsNaN(b) {
		return a
	}
	return b
}

func boolToU64(v bool) uint64 {
	if v {
		return 1
	}
	return 0
}

// half is the IEEE binary16 implementation. The pattern lives in the low 16
// bits of the container; arithmetic runs in float32 and rounds back to
// binary16, the same scheme the storage-format treatment of binary16 uses
// everywhere.
type half struct{}

func (half) load(a uint64) float32 {
	return float16.Frombits(bitfield.Field[uint16](a, 0)).Float32()
}

func (half) store(v float32) uint64 {
	return uint64(float16.Fromfloat32(v).Bits())
}

func (h half) eq(a, b uint64) bool  { return h.load(a) == h.load(b) }
func (h half) lt(a, b uint64) bool  { return h.load(a) < h.load(b) }
func (half) signbit(a uint64) bool  { return bitfield.Bit(a, 15) }
func (h half) isZero(a uint64) bool { return h.load(a) == 0 }

func (h half) fromInt(v uint64) uint64 { return h.store(float32(int64(v))) }
func (h half) toInt(a uint64) uint64   { return truncToInt(float64(h.load(a))) }

func (half) neg(a uint64) uint64 {
	p := bitfield.Field[uint16](a, 0) ^ 0x8000
	return uint64(p)
}

func (half) abs(a uint64) uint64 {
	p := bitfield.Field[uint16](a, 0) &^ 0x8000
	return uint64(p)
}

func (h half) add(a, b uint64) uint64 { return h.store(h.load(a) + h.load(b)) }
func (h half) sub(a, b uint64) uint64 { return h.store(h.load(a) - h.load(b)) }
func (h half) mul(a, b uint64) uint64 { return h.store(h.load(a) * h.load(b)) }
func (h half) div(a, b uint64) uint64 { return h.store(h.load(a) / h.load(b)) }

func (h half) sqrt(a uint64) uint64 {
	return h.store(float32(math.Sqrt(float64(h.load(a)))))
}

func (h half) min(a, b uint64) uint64 {
	return h.store(float32(minFloat(float64(h.load(a)), float64(h.load(b)))))
}

func (h half) max(a, b uint64) uint64 {
	return h.store(float32(maxFloat(float64(h.load(a)), float64(h.load(b)))))
}

func (h half) ceil(a uint64) uint64 {
	return h.store(float32(math.Ceil(float64(h.load(a)))))
}

func (h half) isNaN(a uint64) uint64 {
	return boolToU64(float16.Frombits(bitfield.Field[uint16](a, 0)).IsNaN())
}

func (h half) load64(a uint64) float64 { return float64(h.load(a)) }

// store64 narrows through float32 without double rounding: an inexact
// intermediate is replaced by its odd-mantissa neighbor, so the binary16
// rounding still sees which side of a midpoint the float64 value was on.
func (h half) store64(v float64) uint64 {
	f := float32(v)
	fv := float64(f)
	if fv != v && !math.IsNaN(v) && !math.IsInf(fv, 0) {
		b := math.Float32bits(f)
		if b&1 == 0 {
			if math.Abs(fv) < math.Abs(v) {
				b++
			} else {
				b--
			}
			f = math.Float32frombits(b)
		}
	}
	return h.store(f)
}

// single is the IEEE binary32 implementation; the pattern lives in the low
// 32 bits of the container and arithmetic rounds in float32.
type single struct{}

func (single) load(a uint64) float32 {
	return math.Float32frombits(bitfield.Field[uint32](a, 0))
}

func (single) store(v float32) uint64 {
	return uint64(math.Float32bits(v))
}

func (s single) eq(a, b uint64) bool  { return s.load(a) == s.load(b) }
func (s single) lt(a, b uint64) bool  { return s.load(a) < s.load(b) }
func (single) signbit(a uint64) bool  { return bitfield.Bit(a, 31) }
func (s single) isZero(a uint64) bool { return s.load(a) == 0 }

func (s single) fromInt(v uint64) uint64 { return s.store(float32(int64(v))) }
func (s single) toInt(a uint64) uint64   { return truncToInt(float64(s.load(a))) }

func (single) neg(a uint64) uint64 {
	return uint64(bitfield.Field[uint32](a, 0) ^ 0x8000_0000)
}

func (single) abs(a uint64) uint64 {
	return uint64(bitfield.Field[uint32](a, 0) &^ 0x8000_0000)
}

func (s single) add(a, b uint64) uint64 { return s.store(s.load(a) + s.load(b)) }
func (s single) sub(a, b uint64) uint64 { return s.store(s.load(a) - s.load(b)) }
func (s single) mul(a, b uint64) uint64 { return s.store(s.load(a) * s.load(b)) }
func (s single) div(a, b uint64) uint64 { return s.store(s.load(a) / s.load(b)) }

func (s single) sqrt(a uint64) uint64 {
	return s.store(float32(math.Sqrt(float64(s.load(a)))))
}

func (s single) min(a, b uint64) uint64 {
	return s.store(float32(minFloat(float64(s.load(a)), float64(s.load(b)))))
}

func (s single) max(a, b uint64) uint64 {
	return s.store(float32(maxFloat(float64(s.load(a)), float64(s.load(b)))))
}

func (s single) ceil(a uint64) uint64 {
	return s.store(float32(math.Ceil(float64(s.load(a)))))
}

func (s single) isNaN(a uint64) uint64 {
	f := s.load(a)
	return boolToU64(f != f)
}

func (s single) load64(a uint64) float64  { return float64(s.load(a)) }
func (s single) store64(v float64) uint64 { return s.store(float32(v)) }

// double is the IEEE binary64 implementation; the pattern occupies the full
// container.
type double struct{}

func (double) load(a uint64) float64  { return math.Float64frombits(a) }
func (double) store(v float64) uint64 { return math.Float64bits(v) }

func (d double) eq(a, b uint64) bool  { return d.load(a) == d.load(b) }
func (d double) lt(a, b uint64) bool  { return d.load(a) < d.load(b) }
func (double) signbit(a uint64) bool  { return bitfield.Bit(a, 63) }
func (d double) isZero(a uint64) bool { return d.load(a) == 0 }

func (d double) fromInt(v uint64) uint64 { return d.store(float64(int64(v))) }
func (d double) toInt(a uint64) uint64   { return truncToInt(d.load(a)) }

func (double) neg(a uint64) uint64 { return a ^ 1<<63 }
func (double) abs(a uint64) uint64 { return a &^ (1 << 63) }

func (d double) add(a, b uint64) uint64 { return d.store(d.load(a) + d.load(b)) }
func (d double) sub(a, b uint64) uint64 { return d.store(d.load(a) - d.load(b)) }
func (d double) mul(a, b uint64) uint64 { return d.store(d.load(a) * d.load(b)) }
func (d double) div(a, b uint64) uint64 { return d.store(d.load(a) / d.load(b)) }

func (d double) sqrt(a uint64) uint64 { return d.store(math.Sqrt(d.load(a))) }

func (d double) min(a, b uint64) uint64 { return d.store(minFloat(d.load(a), d.load(b))) }
func (d double) max(a, b uint64) uint64 { return d.store(maxFloat(d.load(a), d.load(b))) }

func (d double) ceil(a uint64) uint64 { return d.store(math.Ceil(d.load(a))) }

func (d double) isNaN(a uint64) uint64 { return boolToU64(math.IsNaN(d.load(a))) }

func (d double) load64(a uint64) float64  { return d.load(a) }
func (d double) store64(v float64) uint64 { return d.store(v) }
