package insts

import (
	"fmt"

	"github.com/Echo-Heo/aphelion-util/fpu"
	"github.com/Echo-Heo/aphelion-util/nibble"
)

// Op is one decoded operation. The set of implementations is closed: every
// variant lives in this package, carries only the operands relevant to it,
// and encodes back to the exact word it decodes from.
type Op interface {
	fmt.Stringer
	// Encode packs the operation's fields into its format and prepends the
	// operation's fixed opcode.
	Encode() Instruction
	isOp()
}

// System control (opcode 0x01, format F, sub-dispatch on func)

// Int triggers interrupt Imm.
type Int struct{ Imm Interrupt }

// Iret returns from an interrupt handler.
type Iret struct{}

// Ires resolves the current interrupt in place.
type Ires struct{}

// Usr enters user mode and jumps to the address in Rd.
type Usr struct{ Rd Register }

func (Int) isOp()  {}
func (Iret) isOp() {}
func (Ires) isOp() {}
func (Usr) isOp()  {}

func (v Int) Encode() Instruction {
	return F{Imm: v.Imm.Imm16(), Func: nibble.X0}.Word(0x01)
}
func (Iret) Encode() Instruction { return F{Func: nibble.X1}.Word(0x01) }
func (Ires) Encode() Instruction { return F{Func: nibble.X2}.Word(0x01) }
func (v Usr) Encode() Instruction {
	return F{Func: nibble.X3, Rde: v.Rd.Nibble()}.Word(0x01)
}

func (v Int) String() string { return fmt.Sprintf("int %d", uint8(v.Imm)) }
func (Iret) String() string  { return "iret" }
func (Ires) String() string  { return "ires" }
func (v Usr) String() string { return fmt.Sprintf("usr %v", v.Rd) }

// Port I/O (opcodes 0x02..0x05, format M)

// Outr writes the data in Rs to the port numbered by Rd.
type Outr struct{ Rd, Rs Register }

// Outi writes the data in Rs to port Port.
type Outi struct {
	Port Port
	Rs   Register
}

// Inr reads from the port numbered by Rs into Rd.
type Inr struct{ Rd, Rs Register }

// Ini reads from port Port into Rd.
type Ini struct {
	Rd   Register
	Port Port
}

func (Outr) isOp() {}
func (Outi) isOp() {}
func (Inr) isOp()  {}
func (Ini) isOp()  {}

func (v Outr) Encode() Instruction {
	return M{Rs1: v.Rs.Nibble(), Rde: v.Rd.Nibble()}.Word(0x02)
}
func (v Outi) Encode() Instruction {
	return M{Imm: uint16(v.Port), Rs1: v.Rs.Nibble()}.Word(0x03)
}
func (v Inr) Encode() Instruction {
	return M{Rs1: v.Rs.Nibble(), Rde: v.Rd.Nibble()}.Word(0x04)
}
func (v Ini) Encode() Instruction {
	return M{Imm: uint16(v.Port), Rde: v.Rd.Nibble()}.Word(0x05)
}

func (v Outr) String() string { return fmt.Sprintf("outr %v, %v", v.Rd, v.Rs) }
func (v Outi) String() string { return fmt.Sprintf("outi %d, %v", uint16(v.Port), v.Rs) }
func (v Inr) String() string  { return fmt.Sprintf("inr %v, %v", v.Rd, v.Rs) }
func (v Ini) String() string  { return fmt.Sprintf("ini %v, %d", v.Rd, uint16(v.Port)) }

// Control flow (opcodes 0x06..0x09 format M, 0x0A format B)

// Jal pushes the instruction pointer and jumps to Rs + 4*signext(Imm).
type Jal struct {
	Rs  Register
	Imm uint16
}

// Jalr stores the instruction pointer in Rd and jumps to
// Rs + 4*signext(Imm).
type Jalr struct {
	Rd  Register
	Rs  Register
	Imm uint16
}

// Ret pops the instruction pointer.
type Ret struct{}

// Retr jumps to the address in Rs.
type Retr struct{ Rs Register }

// Branch jumps to ip + 4*signext(Imm) when Cond holds.
type Branch struct {
	Cond BranchCond
	Imm  uint32 // 20 bits
}

func (Jal) isOp()    {}
func (Jalr) isOp()   {}
func (Ret) isOp()    {}
func (Retr) isOp()   {}
func (Branch) isOp() {}

func (v Jal) Encode() Instruction {
	return M{Imm: v.Imm, Rs1: v.Rs.Nibble()}.Word(0x06)
}
func (v Jalr) Encode() Instruction {
	return M{Imm: v.Imm, Rs1: v.Rs.Nibble(), Rde: v.Rd.Nibble()}.Word(0x07)
}
func (Ret) Encode() Instruction { return M{}.Word(0x08) }
func (v Retr) Encode() Instruction {
	return M{Rs1: v.Rs.Nibble()}.Word(0x09)
}
func (v Branch) Encode() Instruction {
	return B{Imm: v.Imm, Func: v.Cond.Nibble()}.Word(0x0A)
}

func (v Jal) String() string    { return fmt.Sprintf("jal %v, %d", v.Rs, v.Imm) }
func (v Jalr) String() string   { return fmt.Sprintf("jalr %v, %d, %v", v.Rs, v.Imm, v.Rd) }
func (Ret) String() string      { return "ret" }
func (v Retr) String() string   { return fmt.Sprintf("retr %v", v.Rs) }
func (v Branch) String() string { return fmt.Sprintf("%v %d", v.Cond, v.Imm) }

// Stack operations (opcodes 0x0B..0x0E, format M)

// Push decrements sp by 8 and stores Rs at the new top of stack.
type Push struct{ Rs Register }

// Pop loads Rd from the top of stack and increments sp by 8.
type Pop struct{ Rd Register }

// Enter pushes fp and starts a new stack frame.
type Enter struct{}

// Leave unwinds the current stack frame and pops fp.
type Leave struct{}

func (Push) isOp()  {}
func (Pop) isOp()   {}
func (Enter) isOp() {}
func (Leave) isOp() {}

func (v Push) Encode() Instruction { return M{Rs1: v.Rs.Nibble()}.Word(0x0B) }
func (v Pop) Encode() Instruction  { return M{Rde: v.Rd.Nibble()}.Word(0x0C) }
func (Enter) Encode() Instruction  { return M{}.Word(0x0D) }
func (Leave) Encode() Instruction  { return M{}.Word(0x0E) }

func (v Push) String() string { return fmt.Sprintf("push %v", v.Rs) }
func (v Pop) String() string  { return fmt.Sprintf("pop %v", v.Rd) }
func (Enter) String() string  { return "enter" }
func (Leave) String() string  { return "leave" }

// Load immediate (opcode 0x10, format F, sub-dispatch on func)

// Li loads the 16-bit immediate into the slice of Rd selected by Type.
type Li struct {
	Rd   Register
	Type LiType
	Imm  uint16
}

func (Li) isOp() {}

func (v Li) Encode() Instruction {
	return F{Imm: v.Imm, Func: v.Type.Nibble(), Rde: v.Rd.Nibble()}.Word(0x10)
}

func (v Li) String() string { return fmt.Sprintf("%v %v, %d", v.Type, v.Rd, v.Imm) }

// Indexed loads and stores (opcodes 0x11..0x1B, format E). The effective
// address is Rs + signext(Off) + (Rn << Sh).

// Lw loads a 64-bit word into Rd.
type Lw struct {
	Rd, Rs, Rn Register
	Sh         nibble.Nibble
	Off        uint8
}

// Lh loads a 32-bit half into the low half of Rd.
type Lh struct {
	Rd, Rs, Rn Register
	Sh         nibble.Nibble
	Off        uint8
}

// Lhs loads a 32-bit half, sign-extended into Rd.
type Lhs struct {
	Rd, Rs, Rn Register
	Sh         nibble.Nibble
	Off        uint8
}

// Lq loads a 16-bit quarter into the low bits of Rd.
type Lq struct {
	Rd, Rs, Rn Register
	Sh         nibble.Nibble
	Off        uint8
}

// Lqs loads a 16-bit quarter, sign-extended into Rd.
type Lqs struct {
	Rd, Rs, Rn Register
	Sh         nibble.Nibble
	Off        uint8
}

// Lb loads a byte into the low bits of Rd.
type Lb struct {
	Rd, Rs, Rn Register
	Sh         nibble.Nibble
	Off        uint8
}

// Lbs loads a byte, sign-extended into Rd.
type Lbs struct {
	Rd, Rs, Rn Register
	Sh         nibble.Nibble
	Off        uint8
}

// Sw stores the 64-bit word in Rd.
type Sw struct {
	Rd, Rs, Rn Register
	Sh         nibble.Nibble
	Off        uint8
}

// Sh stores the low 32 bits of Rd.
type Sh struct {
	Rd, Rs, Rn Register
	Sh         nibble.Nibble
	Off        uint8
}

// Sq stores the low 16 bits of Rd.
type Sq struct {
	Rd, Rs, Rn Register
	Sh         nibble.Nibble
	Off        uint8
}

// Sb stores the low byte of Rd.
type Sb struct {
	Rd, Rs, Rn Register
	Sh         nibble.Nibble
	Off        uint8
}

func (Lw) isOp()  {}
func (Lh) isOp()  {}
func (Lhs) isOp() {}
func (Lq) isOp()  {}
func (Lqs) isOp() {}
func (Lb) isOp()  {}
func (Lbs) isOp() {}
func (Sw) isOp()  {}
func (Sh) isOp()  {}
func (Sq) isOp()  {}
func (Sb) isOp()  {}

func encodeMem(opcode uint8, rd, rs, rn Register, sh nibble.Nibble, off uint8) Instruction {
	return E{
		Imm:  off,
		Func: sh,
		Rs2:  rn.Nibble(),
		Rs1:  rs.Nibble(),
		Rde:  rd.Nibble(),
	}.Word(opcode)
}

func (v Lw) Encode() Instruction  { return encodeMem(0x11, v.Rd, v.Rs, v.Rn, v.Sh, v.Off) }
func (v Lh) Encode() Instruction  { return encodeMem(0x12, v.Rd, v.Rs, v.Rn, v.Sh, v.Off) }
func (v Lhs) Encode() Instruction { return encodeMem(0x13, v.Rd, v.Rs, v.Rn, v.Sh, v.Off) }
func (v Lq) Encode() Instruction  { return encodeMem(0x14, v.Rd, v.Rs, v.Rn, v.Sh, v.Off) }
func (v Lqs) Encode() Instruction { return encodeMem(0x15, v.Rd, v.Rs, v.Rn, v.Sh, v.Off) }
func (v Lb) Encode() Instruction  { return encodeMem(0x16, v.Rd, v.Rs, v.Rn, v.Sh, v.Off) }
func (v Lbs) Encode() Instruction { return encodeMem(0x17, v.Rd, v.Rs, v.Rn, v.Sh, v.Off) }
func (v Sw) Encode() Instruction  { return encodeMem(0x18, v.Rd, v.Rs, v.Rn, v.Sh, v.Off) }
func (v Sh) Encode() Instruction  { return encodeMem(0x19, v.Rd, v.Rs, v.Rn, v.Sh, v.Off) }
func (v Sq) Encode() Instruction  { return encodeMem(0x1A, v.Rd, v.Rs, v.Rn, v.Sh, v.Off) }
func (v Sb) Encode() Instruction  { return encodeMem(0x1B, v.Rd, v.Rs, v.Rn, v.Sh, v.Off) }

func loadString(m string, rd, rs, rn Register, sh nibble.Nibble, off uint8) string {
	return fmt.Sprintf("%s %v, %v, %d, %v, %v", m, rd, rs, off, rn, sh)
}

func storeString(m string, rd, rs, rn Register, sh nibble.Nibble, off uint8) string {
	return fmt.Sprintf("%s %v, %d, %v, %v, %v", m, rs, off, rn, sh, rd)
}

func (v Lw) String() string  { return loadString("lw", v.Rd, v.Rs, v.Rn, v.Sh, v.Off) }
func (v Lh) String() string  { return loadString("lh", v.Rd, v.Rs, v.Rn, v.Sh, v.Off) }
func (v Lhs) String() string { return loadString("lhs", v.Rd, v.Rs, v.Rn, v.Sh, v.Off) }
func (v Lq) String() string  { return loadString("lq", v.Rd, v.Rs, v.Rn, v.Sh, v.Off) }
func (v Lqs) String() string { return loadString("lqs", v.Rd, v.Rs, v.Rn, v.Sh, v.Off) }
func (v Lb) String() string  { return loadString("lb", v.Rd, v.Rs, v.Rn, v.Sh, v.Off) }
func (v Lbs) String() string { return loadString("lbs", v.Rd, v.Rs, v.Rn, v.Sh, v.Off) }
func (v Sw) String() string  { return storeString("sw", v.Rd, v.Rs, v.Rn, v.Sh, v.Off) }
func (v Sh) String() string  { return storeString("sh", v.Rd, v.Rs, v.Rn, v.Sh, v.Off) }
func (v Sq) String() string  { return storeString("sq", v.Rd, v.Rs, v.Rn, v.Sh, v.Off) }
func (v Sb) String() string  { return storeString("sb", v.Rd, v.Rs, v.Rn, v.Sh, v.Off) }

// Comparisons (opcodes 0x1E..0x1F)

// Cmpr compares two registers and sets the status flags.
type Cmpr struct{ R1, R2 Register }

// Cmpi compares a register against a sign-extended immediate and sets the
// status flags. Swapped records whether the immediate was the first operand.
type Cmpi struct {
	R1      Register
	Swapped bool
	Imm     uint16
}

func (Cmpr) isOp() {}
func (Cmpi) isOp() {}

func (v Cmpr) Encode() Instruction {
	return M{Rs1: v.R2.Nibble(), Rde: v.R1.Nibble()}.Word(0x1E)
}
func (v Cmpi) Encode() Instruction {
	fn := nibble.X0
	if v.Swapped {
		fn = nibble.X1
	}
	return F{Imm: v.Imm, Func: fn, Rde: v.R1.Nibble()}.Word(0x1F)
}

func (v Cmpr) String() string { return fmt.Sprintf("cmpr %v, %v", v.R1, v.R2) }
func (v Cmpi) String() string {
	if v.Swapped {
		return fmt.Sprintf("cmpi %d %v", v.Imm, v.R1)
	}
	return fmt.Sprintf("cmpi %v %d", v.R1, v.Imm)
}

// Arithmetic and bitwise operations (opcodes 0x20..0x3F). Even opcodes are
// the register-register forms (format R); the odd opcode one above each is
// the matching register-immediate form (format M).

// Addr computes rd <- r1 + r2.
type Addr struct{ Rd, R1, R2 Register }

// Subr computes rd <- r1 - r2.
type Subr struct{ Rd, R1, R2 Register }

// Imulr computes the signed product rd <- r1 * r2.
type Imulr struct{ Rd, R1, R2 Register }

// Idivr computes the signed quotient rd <- r1 / r2.
type Idivr struct{ Rd, R1, R2 Register }

// Umulr computes the unsigned product rd <- r1 * r2.
type Umulr struct{ Rd, R1, R2 Register }

// Udivr computes the unsigned quotient rd <- r1 / r2.
type Udivr struct{ Rd, R1, R2 Register }

// Remr computes the truncating remainder rd <- rem(r1, r2).
type Remr struct{ Rd, R1, R2 Register }

// Modr computes the Euclidean remainder rd <- mod(r1, r2).
type Modr struct{ Rd, R1, R2 Register }

// Andr computes rd <- r1 & r2.
type Andr struct{ Rd, R1, R2 Register }

// Orr computes rd <- r1 | r2.
type Orr struct{ Rd, R1, R2 Register }

// Norr computes rd <- ^(r1 | r2).
type Norr struct{ Rd, R1, R2 Register }

// Xorr computes rd <- r1 ^ r2.
type Xorr struct{ Rd, R1, R2 Register }

// Shlr computes rd <- r1 << r2.
type Shlr struct{ Rd, R1, R2 Register }

// Asrr computes the arithmetic shift rd <- r1 >> r2.
type Asrr struct{ Rd, R1, R2 Register }

// Lsrr computes the logical shift rd <- r1 >> r2.
type Lsrr struct{ Rd, R1, R2 Register }

// Bitr extracts bit r2 of r1 into rd.
type Bitr struct{ Rd, R1, R2 Register }

// Addi computes rd <- r1 + signext(imm).
type Addi struct {
	Rd, R1 Register
	Imm    uint16
}

// Subi computes rd <- r1 - signext(imm).
type Subi struct {
	Rd, R1 Register
	Imm    uint16
}

// Imuli computes the signed product rd <- r1 * signext(imm).
type Imuli struct {
	Rd, R1 Register
	Imm    uint16
}

// Idivi computes the signed quotient rd <- r1 / signext(imm).
type Idivi struct {
	Rd, R1 Register
	Imm    uint16
}

// Umuli computes the unsigned product rd <- r1 * imm.
type Umuli struct {
	Rd, R1 Register
	Imm    uint16
}

// Udivi computes the unsigned quotient rd <- r1 / imm.
type Udivi struct {
	Rd, R1 Register
	Imm    uint16
}

// Remi computes the truncating remainder rd <- rem(r1, signext(imm)).
type Remi struct {
	Rd, R1 Register
	Imm    uint16
}

// Modi computes the Euclidean remainder rd <- mod(r1, signext(imm)).
type Modi struct {
	Rd, R1 Register
	Imm    uint16
}

// Andi computes rd <- r1 & imm.
type Andi struct {
	Rd, R1 Register
	Imm    uint16
}

// Ori computes rd <- r1 | imm.
type Ori struct {
	Rd, R1 Register
	Imm    uint16
}

// Nori computes rd <- ^(r1 | imm).
type Nori struct {
	Rd, R1 Register
	Imm    uint16
}

// Xori computes rd <- r1 ^ imm.
type Xori struct {
	Rd, R1 Register
	Imm    uint16
}

// Shli computes rd <- r1 << imm.
type Shli struct {
	Rd, R1 Register
	Imm    uint16
}

// Asri computes the arithmetic shift rd <- r1 >> imm.
type Asri struct {
	Rd, R1 Register
	Imm    uint16
}

// Lsri computes the logical shift rd <- r1 >> imm.
type Lsri struct {
	Rd, R1 Register
	Imm    uint16
}

// Biti extracts bit imm of r1 into rd.
type Biti struct {
	Rd, R1 Register
	Imm    uint16
}

func (Addr) isOp()  {}
func (Subr) isOp()  {}
func (Imulr) isOp() {}
func (Idivr) isOp() {}
func (Umulr) isOp() {}
func (Udivr) isOp() {}
func (Remr) isOp()  {}
func (Modr) isOp()  {}
func (Andr) isOp()  {}
func (Orr) isOp()   {}
func (Norr) isOp()  {}
func (Xorr) isOp()  {}
func (Shlr) isOp()  {}
func (Asrr) isOp()  {}
func (Lsrr) isOp()  {}
func (Bitr) isOp()  {}
func (Addi) isOp()  {}
func (Subi) isOp()  {}
func (Imuli) isOp() {}
func (Idivi) isOp() {}
func (Umuli) isOp() {}
func (Udivi) isOp() {}
func (Remi) isOp()  {}
func (Modi) isOp()  {}
func (Andi) isOp()  {}
func (Ori) isOp()   {}
func (Nori) isOp()  {}
func (Xori) isOp()  {}
func (Shli) isOp()  {}
func (Asri) isOp()  {}
func (Lsri) isOp()  {}
func (Biti) isOp()  {}

func encodeBinR(opcode uint8, rd, r1, r2 Register) Instruction {
	return R{Rs2: r2.Nibble(), Rs1: r1.Nibble(), Rde: rd.Nibble()}.Word(opcode)
}

func encodeBinI(opcode uint8, rd, r1 Register, imm uint16) Instruction {
	return M{Imm: imm, Rs1: r1.Nibble(), Rde: rd.Nibble()}.Word(opcode)
}

func (v Addr) Encode() Instruction  { return encodeBinR(0x20, v.Rd, v.R1, v.R2) }
func (v Subr) Encode() Instruction  { return encodeBinR(0x22, v.Rd, v.R1, v.R2) }
func (v Imulr) Encode() Instruction { return encodeBinR(0x24, v.Rd, v.R1, v.R2) }
func (v Idivr) Encode() Instruction { return encodeBinR(0x26, v.Rd, v.R1, v.R2) }
func (v Umulr) Encode() Instruction { return encodeBinR(0x28, v.Rd, v.R1, v.R2) }
func (v Udivr) Encode() Instruction { return encodeBinR(0x2A, v.Rd, v.R1, v.R2) }
func (v Remr) Encode() Instruction  { return encodeBinR(0x2C, v.Rd, v.R1, v.R2) }
func (v Modr) Encode() Instruction  { return encodeBinR(0x2E, v.Rd, v.R1, v.R2) }
func (v Andr) Encode() Instruction  { return encodeBinR(0x30, v.Rd, v.R1, v.R2) }
func (v Orr) Encode() Instruction   { return encodeBinR(0x32, v.Rd, v.R1, v.R2) }
func (v Norr) Encode() Instruction  { return encodeBinR(0x34, v.Rd, v.R1, v.R2) }
func (v Xorr) Encode() Instruction  { return encodeBinR(0x36, v.Rd, v.R1, v.R2) }
func (v Shlr) Encode() Instruction  { return encodeBinR(0x38, v.Rd, v.R1, v.R2) }
func (v Asrr) Encode() Instruction  { return encodeBinR(0x3A, v.Rd, v.R1, v.R2) }
func (v Lsrr) Encode() Instruction  { return encodeBinR(0x3C, v.Rd, v.R1, v.R2) }
func (v Bitr) Encode() Instruction  { return encodeBinR(0x3E, v.Rd, v.R1, v.R2) }
func (v Addi) Encode() Instruction  { return encodeBinI(0x21, v.Rd, v.R1, v.Imm) }
func (v Subi) Encode() Instruction  { return encodeBinI(0x23, v.Rd, v.R1, v.Imm) }
func (v Imuli) Encode() Instruction { return encodeBinI(0x25, v.Rd, v.R1, v.Imm) }
func (v Idivi) Encode() Instruction { return encodeBinI(0x27, v.Rd, v.R1, v.Imm) }
func (v Umuli) Encode() Instruction { return encodeBinI(0x29, v.Rd, v.R1, v.Imm) }
func (v Udivi) Encode() Instruction { return encodeBinI(0x2B, v.Rd, v.R1, v.Imm) }
func (v Remi) Encode() Instruction  { return encodeBinI(0x2D, v.Rd, v.R1, v.Imm) }
func (v Modi) Encode() Instruction  { return encodeBinI(0x2F, v.Rd, v.R1, v.Imm) }
func (v Andi) Encode() Instruction  { return encodeBinI(0x31, v.Rd, v.R1, v.Imm) }
func (v Ori) Encode() Instruction   { return encodeBinI(0x33, v.Rd, v.R1, v.Imm) }
func (v Nori) Encode() Instruction  { return encodeBinI(0x35, v.Rd, v.R1, v.Imm) }
func (v Xori) Encode() Instruction  { return encodeBinI(0x37, v.Rd, v.R1, v.Imm) }
func (v Shli) Encode() Instruction  { return encodeBinI(0x39, v.Rd, v.R1, v.Imm) }
func (v Asri) Encode() Instruction  { return encodeBinI(0x3B, v.Rd, v.R1, v.Imm) }
func (v Lsri) Encode() Instruction  { return encodeBinI(0x3D, v.Rd, v.R1, v.Imm) }
func (v Biti) Encode() Instruction  { return encodeBinI(0x3F, v.Rd, v.R1, v.Imm) }

func binRString(m string, rd, r1, r2 Register) string {
	return fmt.Sprintf("%s %v, %v, %v", m, rd, r1, r2)
}

func binIString(m string, rd, r1 Register, imm uint16) string {
	return fmt.Sprintf("%s %v, %v, %d", m, rd, r1, imm)
}

func (v Addr) String() string  { return binRString("addr", v.Rd, v.R1, v.R2) }
func (v Subr) String() string  { return binRString("subr", v.Rd, v.R1, v.R2) }
func (v Imulr) String() string { return binRString("imulr", v.Rd, v.R1, v.R2) }
func (v Idivr) String() string { return binRString("idivr", v.Rd, v.R1, v.R2) }
func (v Umulr) String() string { return binRString("umulr", v.Rd, v.R1, v.R2) }
func (v Udivr) String() string { return binRString("udivr", v.Rd, v.R1, v.R2) }
func (v Remr) String() string  { return binRString("remr", v.Rd, v.R1, v.R2) }
func (v Modr) String() string  { return binRString("modr", v.Rd, v.R1, v.R2) }
func (v Andr) String() string  { return binRString("andr", v.Rd, v.R1, v.R2) }
func (v Orr) String() string   { return binRString("orr", v.Rd, v.R1, v.R2) }
func (v Norr) String() string  { return binRString("norr", v.Rd, v.R1, v.R2) }
func (v Xorr) String() string  { return binRString("xorr", v.Rd, v.R1, v.R2) }
func (v Shlr) String() string  { return binRString("shlr", v.Rd, v.R1, v.R2) }
func (v Asrr) String() string  { return binRString("asrr", v.Rd, v.R1, v.R2) }
func (v Lsrr) String() string  { return binRString("lsrr", v.Rd, v.R1, v.R2) }
func (v Bitr) String() string  { return binRString("bitr", v.Rd, v.R1, v.R2) }
func (v Addi) String() string  { return binIString("addi", v.Rd, v.R1, v.Imm) }
func (v Subi) String() string  { return binIString("subi", v.Rd, v.R1, v.Imm) }
func (v Imuli) String() string { return binIString("imuli", v.Rd, v.R1, v.Imm) }
func (v Idivi) String() string { return binIString("idivi", v.Rd, v.R1, v.Imm) }
func (v Umuli) String() string { return binIString("umuli", v.Rd, v.R1, v.Imm) }
func (v Udivi) String() string { return binIString("udivi", v.Rd, v.R1, v.Imm) }
func (v Remi) String() string  { return binIString("remi", v.Rd, v.R1, v.Imm) }
func (v Modi) String() string  { return binIString("modi", v.Rd, v.R1, v.Imm) }
func (v Andi) String() string  { return binIString("andi", v.Rd, v.R1, v.Imm) }
func (v Ori) String() string   { return binIString("ori", v.Rd, v.R1, v.Imm) }
func (v Nori) String() string  { return binIString("nori", v.Rd, v.R1, v.Imm) }
func (v Xori) String() string  { return binIString("xori", v.Rd, v.R1, v.Imm) }
func (v Shli) String() string  { return binIString("shli", v.Rd, v.R1, v.Imm) }
func (v Asri) String() string  { return binIString("asri", v.Rd, v.R1, v.Imm) }
func (v Lsri) String() string  { return binIString("lsri", v.Rd, v.R1, v.Imm) }
func (v Biti) String() string  { return binIString("biti", v.Rd, v.R1, v.Imm) }

// Floating-point operations (opcodes 0x40..0x4F, format E). The function
// nibble selects the precision, or the from/to precision pair for Fcnv.

// Fcmp compares r1 and r2 and sets the status flags.
type Fcmp struct {
	R1, R2 Register
	P      fpu.Precision
}

// Fto converts the integer in Rs to a float in Rd.
type Fto struct {
	Rd, Rs Register
	P      fpu.Precision
}

// Ffrom converts the float in Rs to an integer in Rd.
type Ffrom struct {
	Rd, Rs Register
	P      fpu.Precision
}

// Fneg negates the float in Rs into Rd.
type Fneg struct {
	Rd, Rs Register
	P      fpu.Precision
}

// Fabs stores the absolute value of the float in Rs into Rd.
type Fabs struct {
	Rd, Rs Register
	P      fpu.Precision
}

// Fadd computes rd <- r1 + r2.
type Fadd struct {
	Rd, R1, R2 Register
	P          fpu.Precision
}

// Fsub computes rd <- r1 - r2.
type Fsub struct {
	Rd, R1, R2 Register
	P          fpu.Precision
}

// Fmul computes rd <- r1 * r2.
type Fmul struct {
	Rd, R1, R2 Register
	P          fpu.Precision
}

// Fdiv computes rd <- r1 / r2.
type Fdiv struct {
	Rd, R1, R2 Register
	P          fpu.Precision
}

// Fma accumulates r1 * r2 into rd.
type Fma struct {
	Rd, R1, R2 Register
	P          fpu.Precision
}

// Fsqrt computes rd <- sqrt(r1).
type Fsqrt struct {
	Rd, R1 Register
	P      fpu.Precision
}

// Fmin computes rd <- min(r1, r2).
type Fmin struct {
	Rd, R1, R2 Register
	P          fpu.Precision
}

// Fmax computes rd <- max(r1, r2).
type Fmax struct {
	Rd, R1, R2 Register
	P          fpu.Precision
}

// Fsat rounds r1 up to an integral value: rd <- ceil(r1).
type Fsat struct {
	Rd, R1 Register
	P      fpu.Precision
}

// Fcnv converts r1 between precisions: rd <- cast(r1).
type Fcnv struct {
	Rd, R1 Register
	P      fpu.CastType
}

// Fnan tests r1 for NaN: rd <- isnan(r1).
type Fnan struct {
	Rd, R1 Register
	P      fpu.Precision
}

func (Fcmp) isOp()  {}
func (Fto) isOp()   {}
func (Ffrom) isOp() {}
func (Fneg) isOp()  {}
func (Fabs) isOp()  {}
func (Fadd) isOp()  {}
func (Fsub) isOp()  {}
func (Fmul) isOp()  {}
func (Fdiv) isOp()  {}
func (Fma) isOp()   {}
func (Fsqrt) isOp() {}
func (Fmin) isOp()  {}
func (Fmax) isOp()  {}
func (Fsat) isOp()  {}
func (Fcnv) isOp()  {}
func (Fnan) isOp()  {}

func encodeFloat(opcode uint8, fn nibble.Nibble, rd, r1, r2 Register) Instruction {
	return E{
		Func: fn,
		Rs2:  r2.Nibble(),
		Rs1:  r1.Nibble(),
		Rde:  rd.Nibble(),
	}.Word(opcode)
}

func (v Fcmp) Encode() Instruction  { return encodeFloat(0x40, v.P.Nibble(), Rz, v.R1, v.R2) }
func (v Fto) Encode() Instruction   { return encodeFloat(0x41, v.P.Nibble(), v.Rd, v.Rs, Rz) }
func (v Ffrom) Encode() Instruction { return encodeFloat(0x42, v.P.Nibble(), v.Rd, v.Rs, Rz) }
func (v Fneg) Encode() Instruction  { return encodeFloat(0x43, v.P.Nibble(), v.Rd, v.Rs, Rz) }
func (v Fabs) Encode() Instruction  { return encodeFloat(0x44, v.P.Nibble(), v.Rd, v.Rs, Rz) }
func (v Fadd) Encode() Instruction  { return encodeFloat(0x45, v.P.Nibble(), v.Rd, v.R1, v.R2) }
func (v Fsub) Encode() Instruction  { return encodeFloat(0x46, v.P.Nibble(), v.Rd, v.R1, v.R2) }
func (v Fmul) Encode() Instruction  { return encodeFloat(0x47, v.P.Nibble(), v.Rd, v.R1, v.R2) }
func (v Fdiv) Encode() Instruction  { return encodeFloat(0x48, v.P.Nibble(), v.Rd, v.R1, v.R2) }
func (v Fma) Encode() Instruction   { return encodeFloat(0x49, v.P.Nibble(), v.Rd, v.R1, v.R2) }
func (v Fsqrt) Encode() Instruction { return encodeFloat(0x4A, v.P.Nibble(), v.Rd, v.R1, Rz) }
func (v Fmin) Encode() Instruction  { return encodeFloat(0x4B, v.P.Nibble(), v.Rd, v.R1, v.R2) }
func (v Fmax) Encode() Instruction  { return encodeFloat(0x4C, v.P.Nibble(), v.Rd, v.R1, v.R2) }
func (v Fsat) Encode() Instruction  { return encodeFloat(0x4D, v.P.Nibble(), v.Rd, v.R1, Rz) }
func (v Fcnv) Encode() Instruction  { return encodeFloat(0x4E, v.P.Nibble(), v.Rd, v.R1, Rz) }
func (v Fnan) Encode() Instruction  { return encodeFloat(0x4F, v.P.Nibble(), v.Rd, v.R1, Rz) }

func (v Fcmp) String() string  { return fmt.Sprintf("fcmp%v %v, %v", v.P, v.R1, v.R2) }
func (v Fto) String() string   { return fmt.Sprintf("fto%v %v, %v", v.P, v.Rd, v.Rs) }
func (v Ffrom) String() string { return fmt.Sprintf("ffrom%v %v, %v", v.P, v.Rd, v.Rs) }
func (v Fneg) String() string  { return fmt.Sprintf("fneg%v %v, %v", v.P, v.Rd, v.Rs) }
func (v Fabs) String() string  { return fmt.Sprintf("fabs%v %v, %v", v.P, v.Rd, v.Rs) }
func (v Fadd) String() string  { return fmt.Sprintf("fadd%v %v, %v, %v", v.P, v.Rd, v.R1, v.R2) }
func (v Fsub) String() string  { return fmt.Sprintf("fsub%v %v, %v, %v", v.P, v.Rd, v.R1, v.R2) }
func (v Fmul) String() string  { return fmt.Sprintf("fmul%v %v, %v, %v", v.P, v.Rd, v.R1, v.R2) }
func (v Fdiv) String() string  { return fmt.Sprintf("fdiv%v %v, %v, %v", v.P, v.Rd, v.R1, v.R2) }
func (v Fma) String() string   { return fmt.Sprintf("fma%v %v, %v, %v", v.P, v.Rd, v.R1, v.R2) }
func (v Fsqrt) String() string { return fmt.Sprintf("fsqrt%v %v, %v", v.P, v.Rd, v.R1) }
func (v Fmin) String() string  { return fmt.Sprintf("fmin%v %v, %v, %v", v.P, v.Rd, v.R1, v.R2) }
func (v Fmax) String() string  { return fmt.Sprintf("fmax%v %v, %v, %v", v.P, v.Rd, v.R1, v.R2) }
func (v Fsat) String() string  { return fmt.Sprintf("fsat%v %v, %v", v.P, v.Rd, v.R1) }
func (v Fcnv) String() string  { return fmt.Sprintf("fcnv%v %v, %v", v.P, v.Rd, v.R1) }
func (v Fnan) String() string  { return fmt.Sprintf("fnan%v %v, %v", v.P, v.Rd, v.R1) }
