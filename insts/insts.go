// Package insts implements the Aphelion instruction encoding: the 32-bit
// little-endian instruction word, the five field formats that partition its
// high 24 bits, and the bidirectional mapping between words and structured
// operations.
//
// Byte 0 of every word is the opcode; the opcode selects the format and the
// base operation. Decoding classifies a word into one Op value, and every
// Op encodes back to the exact word it was decoded from.
//
// Usage:
//
//	op, ok := insts.Instruction(0x10000020).Decode()
//	if ok {
//		fmt.Println(op) // addr ra, rz, rz
//	}
package insts

import (
	"fmt"

	"github.com/Echo-Heo/aphelion-util/bitfield"
	"github.com/Echo-Heo/aphelion-util/nibble"
)

// Instruction is a raw 32-bit instruction word. It carries no meaning until
// decoded.
type Instruction uint32

// Opcode returns byte 0 of the word.
func (i Instruction) Opcode() uint8 {
	return bitfield.Field[uint8](uint32(i), 0)
}

// NthNibble returns the idx-th nibble of the word, counting from the least
// significant end. idx must be in 0..7.
func (i Instruction) NthNibble(idx uint) nibble.Nibble {
	return bitfield.Nib(uint32(i), idx)
}

// E destructures the word using the E format.
func (i Instruction) E() E {
	w := uint32(i)
	return E{
		Imm:  bitfield.Field[uint8](w, 1),
		Func: bitfield.Nib(w, 4),
		Rs2:  bitfield.Nib(w, 5),
		Rs1:  bitfield.Nib(w, 6),
		Rde:  bitfield.Nib(w, 7),
	}
}

// R destructures the word using the R format.
func (i Instruction) R() R {
	w := uint32(i)
	return R{
		Imm: uint16(w>>8) & 0x0FFF,
		Rs2: bitfield.Nib(w, 5),
		Rs1: bitfield.Nib(w, 6),
		Rde: bitfield.Nib(w, 7),
	}
}

// M destructures the word using the M format.
func (i Instruction) M() M {
	w := uint32(i)
	return M{
		Imm: uint16(w >> 8),
		Rs1: bitfield.Nib(w, 6),
		Rde: bitfield.Nib(w, 7),
	}
}

// F destructures the word using the F format.
func (i Instruction) F() F {
	w := uint32(i)
	return F{
		Imm:  uint16(w >> 8),
		Func: bitfield.Nib(w, 6),
		Rde:  bitfield.Nib(w, 7),
	}
}

// B destructures the word using the B format.
func (i Instruction) B() B {
	w := uint32(i)
	return B{
		Imm:  w >> 8 & 0x000F_FFFF,
		Func: bitfield.Nib(w, 7),
	}
}

// String renders the decoded operation's mnemonic, or the raw word when the
// encoding is unrecognized.
func (i Instruction) String() string {
	if op, ok := i.Decode(); ok {
		return op.String()
	}
	return fmt.Sprintf("Instruction 0x%08x", uint32(i))
}
