package insts

import (
	"fmt"

	"github.com/Echo-Heo/aphelion-util/nibble"
)

// BranchCond selects the condition of a branch instruction, dispatched on
// the B format's function nibble.
//
// With cmpr A, B having set the flags:
//
//	bra  0x0  always
//	beq  0x1  A = B
//	bez  0x2  A = 0
//	blt  0x3  A < B    (signed)
//	ble  0x4  A <= B   (signed)
//	bltu 0x5  A < B    (unsigned)
//	bleu 0x6  A <= B   (unsigned)
//	bne  0x9  A != B
//	bnz  0xA  A != 0
//	bge  0xB  A >= B   (signed)
//	bgt  0xC  A > B    (signed)
//	bgeu 0xD  A >= B   (unsigned)
//	bgtu 0xE  A > B    (unsigned)
//
// Values 0x7, 0x8, and 0xF are unassigned.
type BranchCond uint8

// Branch conditions.
const (
	Bra  BranchCond = 0x0
	Beq  BranchCond = 0x1
	Bez  BranchCond = 0x2
	Blt  BranchCond = 0x3
	Ble  BranchCond = 0x4
	Bltu BranchCond = 0x5
	Bleu BranchCond = 0x6
	Bne  BranchCond = 0x9
	Bnz  BranchCond = 0xA
	Bge  BranchCond = 0xB
	Bgt  BranchCond = 0xC
	Bgeu BranchCond = 0xD
	Bgtu BranchCond = 0xE
)

var branchCondNames = map[BranchCond]string{
	Bra:  "bra",
	Beq:  "beq",
	Bez:  "bez",
	Blt:  "blt",
	Ble:  "ble",
	Bltu: "bltu",
	Bleu: "bleu",
	Bne:  "bne",
	Bnz:  "bnz",
	Bge:  "bge",
	Bgt:  "bgt",
	Bgeu: "bgeu",
	Bgtu: "bgtu",
}

// BranchCondFromNibble maps a function nibble to a branch condition,
// reporting false for the unassigned values.
func BranchCondFromNibble(n nibble.Nibble) (BranchCond, bool) {
	cc := BranchCond(n)
	_, ok := branchCondNames[cc]
	return cc, ok
}

// Nibble returns the condition's function nibble.
func (cc BranchCond) Nibble() nibble.Nibble {
	return nibble.FromByte(uint8(cc))
}

func (cc BranchCond) String() string {
	if name, ok := branchCondNames[cc]; ok {
		return name
	}
	return fmt.Sprintf("BranchCond 0x%X", uint8(cc))
}

// LiType selects which 16-bit slice of the destination register a
// load-immediate writes, and whether the value sign-extends over the rest of
// the register.
//
//	lli   0  rd[15..0]  <- imm
//	llis  1  rd         <- signext(imm)
//	lui   2  rd[31..16] <- imm
//	luis  3  rd         <- signext(imm) << 16
//	lti   4  rd[47..32] <- imm
//	ltis  5  rd         <- signext(imm) << 32
//	ltui  6  rd[63..48] <- imm
//	ltuis 7  rd         <- signext(imm) << 48
type LiType uint8

// Load-immediate modes.
const (
	Lli   LiType = 0
	Llis  LiType = 1
	Lui   LiType = 2
	Luis  LiType = 3
	Lti   LiType = 4
	Ltis  LiType = 5
	Ltui  LiType = 6
	Ltuis LiType = 7
)

var liTypeNames = [8]string{
	"lli", "llis", "lui", "luis", "lti", "ltis", "ltui", "ltuis",
}

// LiTypeFromNibble maps a function nibble to a load-immediate mode,
// reporting false for values above 7.
func LiTypeFromNibble(n nibble.Nibble) (LiType, bool) {
	if n > nibble.X7 {
		return 0, false
	}
	return LiType(n), true
}

// Nibble returns the mode's function nibble.
func (t LiType) Nibble() nibble.Nibble {
	return nibble.FromByte(uint8(t))
}

func (t LiType) String() string {
	return liTypeNames[t&0x7]
}
