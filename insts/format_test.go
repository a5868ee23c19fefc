package insts_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/Echo-Heo/aphelion-util/insts"
	"github.com/Echo-Heo/aphelion-util/nibble"
)

var _ = Describe("Instruction word", func() {
	It("should expose byte 0 as the opcode", func() {
		Expect(insts.Instruction(0x6543AB11).Opcode()).To(Equal(uint8(0x11)))
		Expect(insts.Instruction(0xFFFFFF00).Opcode()).To(Equal(uint8(0x00)))
	})

	It("should index nibbles from the least significant end", func() {
		i := insts.Instruction(0x76543210)
		for idx := uint(0); idx < 8; idx++ {
			Expect(i.NthNibble(idx)).To(Equal(nibble.Nibble(idx)))
		}
	})
})

var _ = Describe("E format", func() {
	It("should destructure imm, func, and the three register nibbles", func() {
		e := insts.Instruction(0x6543AB11).E()
		Expect(e.Imm).To(Equal(uint8(0xAB)))
		Expect(e.Func).To(Equal(nibble.X3))
		Expect(e.Rs2).To(Equal(nibble.X4))
		Expect(e.Rs1).To(Equal(nibble.X5))
		Expect(e.Rde).To(Equal(nibble.X6))
	})

	It("should assemble the word back from its fields", func() {
		e := insts.E{Imm: 0xAB, Func: nibble.X3, Rs2: nibble.X4, Rs1: nibble.X5, Rde: nibble.X6}
		Expect(e.Word(0x11)).To(Equal(insts.Instruction(0x6543AB11)))
	})
})

var _ = Describe("R format", func() {
	It("should destructure the 12-bit immediate and register nibbles", func() {
		r := insts.Instruction(0x321FFF20).R()
		Expect(r.Imm).To(Equal(uint16(0x0FFF)))
		Expect(r.Rs2).To(Equal(nibble.X1))
		Expect(r.Rs1).To(Equal(nibble.X2))
		Expect(r.Rde).To(Equal(nibble.X3))
	})

	It("should mask the immediate to 12 bits when assembling", func() {
		r := insts.R{Imm: 0x1ABC, Rs2: nibble.X1, Rs1: nibble.X2, Rde: nibble.X3}
		Expect(r.Word(0x20)).To(Equal(insts.Instruction(0x321ABC20)))
	})
})

var _ = Describe("M format", func() {
	It("should destructure the 16-bit immediate and register nibbles", func() {
		m := insts.Instruction(0x65123421).M()
		Expect(m.Imm).To(Equal(uint16(0x1234)))
		Expect(m.Rs1).To(Equal(nibble.X5))
		Expect(m.Rde).To(Equal(nibble.X6))
	})

	It("should assemble the word back from its fields", func() {
		m := insts.M{Imm: 0x1234, Rs1: nibble.X5, Rde: nibble.X6}
		Expect(m.Word(0x21)).To(Equal(insts.Instruction(0x65123421)))
	})
})

var _ = Describe("F format", func() {
	It("should destructure the immediate, function nibble, and rde", func() {
		f := insts.Instruction(0x87BEEF10).F()
		Expect(f.Imm).To(Equal(uint16(0xBEEF)))
		Expect(f.Func).To(Equal(nibble.X7))
		Expect(f.Rde).To(Equal(nibble.X8))
	})

	It("should assemble the word back from its fields", func() {
		f := insts.F{Imm: 0xBEEF, Func: nibble.X7, Rde: nibble.X8}
		Expect(f.Word(0x10)).To(Equal(insts.Instruction(0x87BEEF10)))
	})
})

var _ = Describe("B format", func() {
	It("should destructure the 20-bit immediate and function nibble", func() {
		b := insts.Instruction(0x9ABCDE0A).B()
		Expect(b.Imm).To(Equal(uint32(0xABCDE)))
		Expect(b.Func).To(Equal(nibble.X9))
	})

	It("should mask the immediate to 20 bits when assembling", func() {
		b := insts.B{Imm: 0xFABCDE, Func: nibble.X9}
		Expect(b.Word(0x0A)).To(Equal(insts.Instruction(0x9ABCDE0A)))
	})
})
