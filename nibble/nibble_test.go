package nibble_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/Echo-Heo/aphelion-util/nibble"
)

var _ = Describe("Nibble", func() {
	Describe("byte conversions", func() {
		It("should take the low half of a byte", func() {
			Expect(nibble.FromByte(0xA7)).To(Equal(nibble.X7))
		})

		It("should take the high half of a byte", func() {
			Expect(nibble.FromByteHigh(0xA7)).To(Equal(nibble.XA))
		})

		It("should widen back into the low half", func() {
			Expect(nibble.XC.Byte()).To(Equal(uint8(0x0C)))
		})

		It("should widen back into the high half", func() {
			Expect(nibble.XC.ByteHigh()).To(Equal(uint8(0xC0)))
		})

		It("should round-trip every byte through both halves", func() {
			for b := 0; b < 256; b++ {
				lo := nibble.FromByte(uint8(b))
				hi := nibble.FromByteHigh(uint8(b))
				Expect(lo.Compose(hi)).To(Equal(uint8(b)))
			}
		})
	})

	Describe("TryFromByte", func() {
		It("should accept values up to 0xF", func() {
			n, ok := nibble.TryFromByte(0x0F)
			Expect(ok).To(BeTrue())
			Expect(n).To(Equal(nibble.XF))
		})

		It("should reject values above 0xF", func() {
			_, ok := nibble.TryFromByte(0x10)
			Expect(ok).To(BeFalse())
		})
	})

	Describe("Compose", func() {
		It("should pack low and high nibbles into one byte", func() {
			Expect(nibble.X4.Compose(nibble.XB)).To(Equal(uint8(0xB4)))
		})
	})

	Describe("bit access", func() {
		It("should read individual bits", func() {
			// 0b1010
			Expect(nibble.XA.Bit(0)).To(BeFalse())
			Expect(nibble.XA.Bit(1)).To(BeTrue())
			Expect(nibble.XA.Bit(2)).To(BeFalse())
			Expect(nibble.XA.Bit(3)).To(BeTrue())
		})

		It("should set and clear bits without touching neighbors", func() {
			n := nibble.XA.SetBit(0, true)
			Expect(n).To(Equal(nibble.XB))
			n = n.SetBit(3, false)
			Expect(n).To(Equal(nibble.X3))
		})

		It("should ignore writes past the nibble's bits", func() {
			Expect(nibble.X5.SetBit(7, true)).To(Equal(nibble.X5))
		})
	})

	Describe("String", func() {
		It("should print the decimal value", func() {
			Expect(nibble.XD.String()).To(Equal("13"))
		})
	})
})
