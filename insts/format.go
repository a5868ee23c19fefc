package insts

// The five instruction formats partition the high 24 bits of a word into
// named sub-fields. The opcode byte is never part of a format record.
//
//	    31..28│ 27..24│ 23..20│ 19..16│          15..8│           7..0│
//	  ┌───────┼───────┼───────┼───────┼───────────────┼───────────────┤
//	E │   rde │   rs1 │   rs2 │  func │        imm(8) │        opcode │
//	  ├───────┼───────┼───────┼───────┴───────────────┼───────────────┤
//	R │   rde │   rs1 │   rs2 │               imm(12) │        opcode │
//	  ├───────┼───────┼───────┴───────────────────────┼───────────────┤
//	M │   rde │   rs1 │                       imm(16) │        opcode │
//	  ├───────┼───────┼───────────────────────────────┼───────────────┤
//	F │   rde │  func │                       imm(16) │        opcode │
//	  ├───────┼───────┴───────────────────────────────┼───────────────┤
//	B │  func │                               imm(20) │        opcode │
//	  └───────┴───────────────────────────────────────┴───────────────┘

import (
	"github.com/Echo-Heo/aphelion-util/bitfield"
	"github.com/Echo-Heo/aphelion-util/nibble"
)

// E is the format with two source registers, a function nibble, and an
// 8-bit immediate.
type E struct {
	Imm  uint8         // bits 8..15
	Func nibble.Nibble // bits 16..19
	Rs2  nibble.Nibble // bits 20..23
	Rs1  nibble.Nibble // bits 24..27
	Rde  nibble.Nibble // bits 28..31
}

// Word reassembles the fields and the opcode into an instruction word.
func (e E) Word(opcode uint8) Instruction {
	var w uint32
	bitfield.SetField(&w, 0, opcode)
	bitfield.SetField(&w, 1, e.Imm)
	bitfield.SetNib(&w, 4, e.Func)
	bitfield.SetNib(&w, 5, e.Rs2)
	bitfield.SetNib(&w, 6, e.Rs1)
	bitfield.SetNib(&w, 7, e.Rde)
	return Instruction(w)
}

// R is the format with two source registers and a 12-bit immediate.
type R struct {
	Imm uint16        // bits 8..19 (12 bits)
	Rs2 nibble.Nibble // bits 20..23
	Rs1 nibble.Nibble // bits 24..27
	Rde nibble.Nibble // bits 28..31
}

// Word reassembles the fields and the opcode into an instruction word. The
// immediate is masked to 12 bits.
func (r R) Word(opcode uint8) Instruction {
	w := uint32(opcode) | uint32(r.Imm&0x0FFF)<<8
	bitfield.SetNib(&w, 5, r.Rs2)
	bitfield.SetNib(&w, 6, r.Rs1)
	bitfield.SetNib(&w, 7, r.Rde)
	return Instruction(w)
}

// M is the format with one source register and a 16-bit immediate.
type M struct {
	Imm uint16        // bits 8..23
	Rs1 nibble.Nibble // bits 24..27
	Rde nibble.Nibble // bits 28..31
}

// Word reassembles the fields and the opcode into an instruction word.
func (m M) Word(opcode uint8) Instruction {
	w := uint32(opcode) | uint32(m.Imm)<<8
	bitfield.SetNib(&w, 6, m.Rs1)
	bitfield.SetNib(&w, 7, m.Rde)
	return Instruction(w)
}

// F is the format with a function nibble and a 16-bit immediate.
type F struct {
	Imm  uint16        // bits 8..23
	Func nibble.Nibble // bits 24..27
	Rde  nibble.Nibble // bits 28..31
}

// Word reassembles the fields and the opcode into an instruction word.
func (f F) Word(opcode uint8) Instruction {
	w := uint32(opcode) | uint32(f.Imm)<<8
	bitfield.SetNib(&w, 6, f.Func)
	bitfield.SetNib(&w, 7, f.Rde)
	return Instruction(w)
}

// B is the format with a function nibble and a 20-bit immediate.
type B struct {
	Imm  uint32        // bits 8..27 (20 bits)
	Func nibble.Nibble // bits 28..31
}

// Word reassembles the fields and the opcode into an instruction word. The
// immediate is masked to 20 bits.
func (b B) Word(opcode uint8) Instruction {
	w := uint32(opcode) | (b.Imm&0x000F_FFFF)<<8
	bitfield.SetNib(&w, 7, b.Func)
	return Instruction(w)
}
