package insts

import "github.com/Echo-Heo/aphelion-util/nibble"

// Register identifies one of the sixteen 64-bit registers. The processor
// semantics of each register (zero-register writes, status flags) belong to
// the execution layer; the encoding only needs the 4-bit code.
type Register uint8

// Register codes.
const (
	Rz Register = 0x0 // zero register, always reads 0
	Ra Register = 0x1
	Rb Register = 0x2
	Rc Register = 0x3
	Rd Register = 0x4
	Re Register = 0x5
	Rf Register = 0x6
	Rg Register = 0x7
	Rh Register = 0x8
	Ri Register = 0x9
	Rj Register = 0xA
	Rk Register = 0xB
	Ip Register = 0xC // instruction pointer
	Sp Register = 0xD // stack pointer
	Fp Register = 0xE // frame pointer
	St Register = 0xF // status register
)

// RegisterFromNibble converts a register-index nibble to a Register. The
// conversion is total: every nibble names a register.
func RegisterFromNibble(n nibble.Nibble) Register {
	return Register(n)
}

// TryRegisterFromByte converts a byte to a Register, reporting false for
// values above 0xF.
func TryRegisterFromByte(b uint8) (Register, bool) {
	if b > 0xF {
		return 0, false
	}
	return Register(b), true
}

// Nibble returns the register's 4-bit code.
func (r Register) Nibble() nibble.Nibble {
	return nibble.FromByte(uint8(r))
}

var registerNames = [16]string{
	"rz", "ra", "rb", "rc", "rd", "re", "rf", "rg",
	"rh", "ri", "rj", "rk", "ip", "sp", "fp", "st",
}

func (r Register) String() string {
	return registerNames[r&0xF]
}
