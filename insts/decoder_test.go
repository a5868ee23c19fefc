package insts_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/Echo-Heo/aphelion-util/fpu"
	"github.com/Echo-Heo/aphelion-util/insts"
	"github.com/Echo-Heo/aphelion-util/nibble"
)

func decode(word uint32) (insts.Op, bool) {
	return insts.Instruction(word).Decode()
}

func mustDecode(word uint32) insts.Op {
	op, ok := decode(word)
	Expect(ok).To(BeTrue())
	return op
}

var _ = Describe("Decoder", func() {
	Describe("system control", func() {
		It("should decode int", func() {
			// 0x00000301 int 3
			Expect(mustDecode(0x00000301)).To(Equal(insts.Int{Imm: 3}))
		})

		It("should reject an interrupt immediate with a non-zero high byte", func() {
			// 0x00010001 int, imm16 = 0x0100
			_, ok := decode(0x00010001)
			Expect(ok).To(BeFalse())
		})

		It("should decode iret, ires, and usr", func() {
			// 0x01000001 iret
			Expect(mustDecode(0x01000001)).To(Equal(insts.Iret{}))
			// 0x02000001 ires
			Expect(mustDecode(0x02000001)).To(Equal(insts.Ires{}))
			// 0x13000001 usr ra
			Expect(mustDecode(0x13000001)).To(Equal(insts.Usr{Rd: insts.Ra}))
		})

		It("should reject unassigned system sub-functions", func() {
			// 0x04000001 func = 4
			_, ok := decode(0x04000001)
			Expect(ok).To(BeFalse())
		})
	})

	Describe("port I/O", func() {
		It("should decode the register and immediate port forms", func() {
			// 0x12000002 outr ra, rb
			Expect(mustDecode(0x12000002)).To(Equal(insts.Outr{Rd: insts.Ra, Rs: insts.Rb}))
			// 0x03000303 outi 3, rc
			Expect(mustDecode(0x03000303)).To(Equal(insts.Outi{Port: insts.PortSysTimer, Rs: insts.Rc}))
			// 0x45000004 inr rd, re
			Expect(mustDecode(0x45000004)).To(Equal(insts.Inr{Rd: insts.Rd, Rs: insts.Re}))
			// 0x60000105 ini rf, 1
			Expect(mustDecode(0x60000105)).To(Equal(insts.Ini{Rd: insts.Rf, Port: insts.PortIO}))
		})
	})

	Describe("control flow", func() {
		It("should decode jumps and returns", func() {
			// 0x01001006 jal ra, 16
			Expect(mustDecode(0x01001006)).To(Equal(insts.Jal{Rs: insts.Ra, Imm: 0x10}))
			// 0x21000407 jalr ra, 4, rb
			Expect(mustDecode(0x21000407)).To(Equal(insts.Jalr{Rd: insts.Rb, Rs: insts.Ra, Imm: 4}))
			// 0x00000008 ret
			Expect(mustDecode(0x00000008)).To(Equal(insts.Ret{}))
			// 0x0b000009 retr rk
			Expect(mustDecode(0x0B000009)).To(Equal(insts.Retr{Rs: insts.Rk}))
		})

		It("should decode branch conditions", func() {
			// 0x0000000a bra 0
			Expect(mustDecode(0x0000000A)).To(Equal(insts.Branch{Cond: insts.Bra, Imm: 0}))
			// 0x1000040a beq 4
			Expect(mustDecode(0x1000040A)).To(Equal(insts.Branch{Cond: insts.Beq, Imm: 4}))
			// 0xe000040a bgtu 4
			Expect(mustDecode(0xE000040A)).To(Equal(insts.Branch{Cond: insts.Bgtu, Imm: 4}))
		})

		It("should reject the unassigned branch conditions", func() {
			for _, word := range []uint32{0x7000000A, 0x8000000A, 0xF000000A} {
				_, ok := decode(word)
				Expect(ok).To(BeFalse())
			}
		})
	})

	Describe("stack operations", func() {
		It("should decode push, pop, enter, and leave", func() {
			// 0x0100000b push ra
			Expect(mustDecode(0x0100000B)).To(Equal(insts.Push{Rs: insts.Ra}))
			// 0x2000000c pop rb
			Expect(mustDecode(0x2000000C)).To(Equal(insts.Pop{Rd: insts.Rb}))
			// 0x0000000d enter
			Expect(mustDecode(0x0000000D)).To(Equal(insts.Enter{}))
			// 0x0000000e leave
			Expect(mustDecode(0x0000000E)).To(Equal(insts.Leave{}))
		})
	})

	Describe("load immediate", func() {
		It("should decode the mode from the function nibble", func() {
			// 0x22123410 lui rb, 0x1234
			Expect(mustDecode(0x22123410)).To(Equal(
				insts.Li{Rd: insts.Rb, Type: insts.Lui, Imm: 0x1234}))
			// 0x17ffff10 ltuis ra, 0xffff
			Expect(mustDecode(0x17FFFF10)).To(Equal(
				insts.Li{Rd: insts.Ra, Type: insts.Ltuis, Imm: 0xFFFF}))
		})

		It("should reject unassigned load-immediate modes", func() {
			// 0x08000010 func = 8
			_, ok := decode(0x08000010)
			Expect(ok).To(BeFalse())
		})
	})

	Describe("memory access", func() {
		It("should decode an indexed load", func() {
			// 0x6543ab11 lw rf, re, 0xab, rd, 3
			Expect(mustDecode(0x6543AB11)).To(Equal(insts.Lw{
				Rd: insts.Rf, Rs: insts.Re, Rn: insts.Rd, Sh: nibble.X3, Off: 0xAB,
			}))
		})

		It("should decode an indexed store", func() {
			// 0x2100ff1b sb ra, 0xff, rz, 0, rb
			Expect(mustDecode(0x2100FF1B)).To(Equal(insts.Sb{
				Rd: insts.Rb, Rs: insts.Ra, Rn: insts.Rz, Sh: nibble.X0, Off: 0xFF,
			}))
		})

		It("should distinguish the sign-extending widths", func() {
			// 0x21000016 lb rb, ra / 0x21000017 lbs rb, ra
			Expect(mustDecode(0x21000016)).To(Equal(insts.Lb{Rd: insts.Rb, Rs: insts.Ra}))
			Expect(mustDecode(0x21000017)).To(Equal(insts.Lbs{Rd: insts.Rb, Rs: insts.Ra}))
		})
	})

	Describe("comparisons", func() {
		It("should decode the register compare", func() {
			// 0x2100001e cmpr rb, ra
			Expect(mustDecode(0x2100001E)).To(Equal(insts.Cmpr{R1: insts.Rb, R2: insts.Ra}))
		})

		It("should decode both operand orders of the immediate compare", func() {
			// 0x1000051f cmpi ra 5
			Expect(mustDecode(0x1000051F)).To(Equal(
				insts.Cmpi{R1: insts.Ra, Swapped: false, Imm: 5}))
			// 0x1100051f cmpi 5 ra
			Expect(mustDecode(0x1100051F)).To(Equal(
				insts.Cmpi{R1: insts.Ra, Swapped: true, Imm: 5}))
		})

		It("should reject other immediate-compare sub-functions", func() {
			// 0x1200051f func = 2
			_, ok := decode(0x1200051F)
			Expect(ok).To(BeFalse())
		})
	})

	Describe("arithmetic and bitwise", func() {
		It("should decode the register-register forms on even opcodes", func() {
			// 0x10000020 addr ra, rz, rz
			Expect(mustDecode(0x10000020)).To(Equal(
				insts.Addr{Rd: insts.Ra, R1: insts.Rz, R2: insts.Rz}))
			// 0x32100022 subr rc, rb, ra
			Expect(mustDecode(0x32100022)).To(Equal(
				insts.Subr{Rd: insts.Rc, R1: insts.Rb, R2: insts.Ra}))
			// 0x3210003e bitr rc, rb, ra
			Expect(mustDecode(0x3210003E)).To(Equal(
				insts.Bitr{Rd: insts.Rc, R1: insts.Rb, R2: insts.Ra}))
		})

		It("should decode the register-immediate forms on odd opcodes", func() {
			// 0x21002a21 addi rb, ra, 42
			Expect(mustDecode(0x21002A21)).To(Equal(
				insts.Addi{Rd: insts.Rb, R1: insts.Ra, Imm: 42}))
			// 0x21003f3f biti rb, ra, 63
			Expect(mustDecode(0x21003F3F)).To(Equal(
				insts.Biti{Rd: insts.Rb, R1: insts.Ra, Imm: 63}))
		})
	})

	Describe("floating point", func() {
		It("should decode the precision from the function nibble", func() {
			// 0x12310045 fadd.32 ra, rb, rc
			Expect(mustDecode(0x12310045)).To(Equal(insts.Fadd{
				Rd: insts.Ra, R1: insts.Rb, R2: insts.Rc, P: fpu.Single,
			}))
			// 0x1202004f fnan.64 ra, rb
			Expect(mustDecode(0x1202004F)).To(Equal(
				insts.Fnan{Rd: insts.Ra, R1: insts.Rb, P: fpu.Double}))
		})

		It("should reject unassigned precision nibbles", func() {
			// 0x00030045 fadd func = 3
			_, ok := decode(0x00030045)
			Expect(ok).To(BeFalse())
		})

		It("should decode the cast's precision pair", func() {
			// 0x1206004e fcnv.64.32 ra, rb
			Expect(mustDecode(0x1206004E)).To(Equal(insts.Fcnv{
				Rd: insts.Ra, R1: insts.Rb,
				P: fpu.CastType{To: fpu.Double, From: fpu.Single},
			}))
		})

		It("should reject a cast with an unassigned precision half", func() {
			// 0x0003004e to = 3, 0x000c004e from = 3
			for _, word := range []uint32{0x0003004E, 0x000C004E} {
				_, ok := decode(word)
				Expect(ok).To(BeFalse())
			}
		})
	})

	Describe("unassigned opcodes", func() {
		It("should reject every opcode outside the assigned ranges", func() {
			for _, word := range []uint32{0x00000000, 0x0000000F, 0x0000001C, 0x0000001D, 0x00000050, 0x000000FF} {
				_, ok := decode(word)
				Expect(ok).To(BeFalse())
			}
		})
	})
})

var _ = Describe("Instruction String", func() {
	It("should render the decoded mnemonic", func() {
		Expect(insts.Instruction(0x10000020).String()).To(Equal("addr ra, rz, rz"))
		Expect(insts.Instruction(0x0000000A).String()).To(Equal("bra 0"))
	})

	It("should render the raw word when unrecognized", func() {
		Expect(insts.Instruction(0x000000FF).String()).To(Equal("Instruction 0x000000ff"))
	})
})
