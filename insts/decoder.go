package insts

import (
	"github.com/Echo-Heo/aphelion-util/fpu"
	"github.com/Echo-Heo/aphelion-util/nibble"
)

// Decode classifies the word into an operation by its opcode, extracting the
// fields of the opcode's format and validating any nested sub-codes. It
// reports false for unassigned opcodes, unassigned sub-code nibbles, and an
// interrupt immediate with a non-zero high byte.
func (i Instruction) Decode() (Op, bool) {
	op := i.Opcode()

	switch {
	case op == 0x01:
		return i.decodeSystem()
	case op >= 0x02 && op <= 0x05:
		return i.decodePortIO(op), true
	case op >= 0x06 && op <= 0x09:
		return i.decodeControlFlow(op), true
	case op == 0x0A:
		return i.decodeBranch()
	case op >= 0x0B && op <= 0x0E:
		return i.decodeStack(op), true
	case op == 0x10:
		return i.decodeLoadImm()
	case op >= 0x11 && op <= 0x1B:
		return i.decodeMemAccess(op), true
	case op == 0x1E || op == 0x1F:
		return i.decodeCompare(op)
	case op >= 0x20 && op <= 0x3F && op%2 == 0:
		return i.decodeBinReg(op), true
	case op >= 0x20 && op <= 0x3F:
		return i.decodeBinImm(op), true
	case op >= 0x40 && op <= 0x4F:
		return i.decodeFloat(op)
	default:
		return nil, false
	}
}

// decodeSystem handles opcode 0x01: the function nibble selects trap,
// interrupt return, interrupt resolve, or user-mode entry. Only the trap
// sub-function consumes the immediate, which must fit in the low byte.
func (i Instruction) decodeSystem() (Op, bool) {
	f := i.F()
	switch f.Func {
	case nibble.X0:
		imm, ok := InterruptFromImm16(f.Imm)
		if !ok {
			return nil, false
		}
		return Int{Imm: imm}, true
	case nibble.X1:
		return Iret{}, true
	case nibble.X2:
		return Ires{}, true
	case nibble.X3:
		return Usr{Rd: RegisterFromNibble(f.Rde)}, true
	default:
		return nil, false
	}
}

// decodePortIO handles opcodes 0x02..0x05.
func (i Instruction) decodePortIO(op uint8) Op {
	m := i.M()
	rs := RegisterFromNibble(m.Rs1)
	rd := RegisterFromNibble(m.Rde)
	port := Port(m.Imm)

	switch op {
	case 0x02:
		return Outr{Rd: rd, Rs: rs}
	case 0x03:
		return Outi{Port: port, Rs: rs}
	case 0x04:
		return Inr{Rd: rd, Rs: rs}
	default:
		return Ini{Rd: rd, Port: port}
	}
}

// decodeControlFlow handles opcodes 0x06..0x09.
func (i Instruction) decodeControlFlow(op uint8) Op {
	m := i.M()
	rs := RegisterFromNibble(m.Rs1)
	rd := RegisterFromNibble(m.Rde)

	switch op {
	case 0x06:
		return Jal{Rs: rs, Imm: m.Imm}
	case 0x07:
		return Jalr{Rd: rd, Rs: rs, Imm: m.Imm}
	case 0x08:
		return Ret{}
	default:
		return Retr{Rs: rs}
	}
}

// decodeBranch handles opcode 0x0A: the function nibble names one of the
// thirteen branch conditions.
func (i Instruction) decodeBranch() (Op, bool) {
	b := i.B()
	cc, ok := BranchCondFromNibble(b.Func)
	if !ok {
		return nil, false
	}
	return Branch{Cond: cc, Imm: b.Imm}, true
}

// decodeStack handles opcodes 0x0B..0x0E.
func (i Instruction) decodeStack(op uint8) Op {
	m := i.M()

	switch op {
	case 0x0B:
		return Push{Rs: RegisterFromNibble(m.Rs1)}
	case 0x0C:
		return Pop{Rd: RegisterFromNibble(m.Rde)}
	case 0x0D:
		return Enter{}
	default:
		return Leave{}
	}
}

// decodeLoadImm handles opcode 0x10: the function nibble selects one of the
// eight load-immediate modes.
func (i Instruction) decodeLoadImm() (Op, bool) {
	f := i.F()
	t, ok := LiTypeFromNibble(f.Func)
	if !ok {
		return nil, false
	}
	return Li{Rd: RegisterFromNibble(f.Rde), Type: t, Imm: f.Imm}, true
}

// decodeMemAccess handles opcodes 0x11..0x1B: indexed loads and stores at
// five widths. The E format's func nibble is the index shift amount and its
// immediate the byte offset.
func (i Instruction) decodeMemAccess(op uint8) Op {
	e := i.E()
	rd := RegisterFromNibble(e.Rde)
	rs := RegisterFromNibble(e.Rs1)
	rn := RegisterFromNibble(e.Rs2)
	sh := e.Func
	off := e.Imm

	switch op {
	case 0x11:
		return Lw{Rd: rd, Rs: rs, Rn: rn, Sh: sh, Off: off}
	case 0x12:
		return Lh{Rd: rd, Rs: rs, Rn: rn, Sh: sh, Off: off}
	case 0x13:
		return Lhs{Rd: rd, Rs: rs, Rn: rn, Sh: sh, Off: off}
	case 0x14:
		return Lq{Rd: rd, Rs: rs, Rn: rn, Sh: sh, Off: off}
	case 0x15:
		return Lqs{Rd: rd, Rs: rs, Rn: rn, Sh: sh, Off: off}
	case 0x16:
		return Lb{Rd: rd, Rs: rs, Rn: rn, Sh: sh, Off: off}
	case 0x17:
		return Lbs{Rd: rd, Rs: rs, Rn: rn, Sh: sh, Off: off}
	case 0x18:
		return Sw{Rd: rd, Rs: rs, Rn: rn, Sh: sh, Off: off}
	case 0x19:
		return Sh{Rd: rd, Rs: rs, Rn: rn, Sh: sh, Off: off}
	case 0x1A:
		return Sq{Rd: rd, Rs: rs, Rn: rn, Sh: sh, Off: off}
	default:
		return Sb{Rd: rd, Rs: rs, Rn: rn, Sh: sh, Off: off}
	}
}

// decodeCompare handles opcodes 0x1E..0x1F. The immediate compare flags
// operand order through its function nibble.
func (i Instruction) decodeCompare(op uint8) (Op, bool) {
	if op == 0x1E {
		m := i.M()
		return Cmpr{
			R1: RegisterFromNibble(m.Rde),
			R2: RegisterFromNibble(m.Rs1),
		}, true
	}

	f := i.F()
	var swapped bool
	switch f.Func {
	case nibble.X0:
		swapped = false
	case nibble.X1:
		swapped = true
	default:
		return nil, false
	}
	return Cmpi{R1: RegisterFromNibble(f.Rde), Swapped: swapped, Imm: f.Imm}, true
}

// decodeBinReg handles the even opcodes of 0x20..0x3F: the sixteen
// register-register arithmetic and bitwise operations.
func (i Instruction) decodeBinReg(op uint8) Op {
	r := i.R()
	rd := RegisterFromNibble(r.Rde)
	r1 := RegisterFromNibble(r.Rs1)
	r2 := RegisterFromNibble(r.Rs2)

	switch op {
	case 0x20:
		return Addr{Rd: rd, R1: r1, R2: r2}
	case 0x22:
		return Subr{Rd: rd, R1: r1, R2: r2}
	case 0x24:
		return Imulr{Rd: rd, R1: r1, R2: r2}
	case 0x26:
		return Idivr{Rd: rd, R1: r1, R2: r2}
	case 0x28:
		return Umulr{Rd: rd, R1: r1, R2: r2}
	case 0x2A:
		return Udivr{Rd: rd, R1: r1, R2: r2}
	case 0x2C:
		return Remr{Rd: rd, R1: r1, R2: r2}
	case 0x2E:
		return Modr{Rd: rd, R1: r1, R2: r2}
	case 0x30:
		return Andr{Rd: rd, R1: r1, R2: r2}
	case 0x32:
		return Orr{Rd: rd, R1: r1, R2: r2}
	case 0x34:
		return Norr{Rd: rd, R1: r1, R2: r2}
	case 0x36:
		return Xorr{Rd: rd, R1: r1, R2: r2}
	case 0x38:
		return Shlr{Rd: rd, R1: r1, R2: r2}
	case 0x3A:
		return Asrr{Rd: rd, R1: r1, R2: r2}
	case 0x3C:
		return Lsrr{Rd: rd, R1: r1, R2: r2}
	default:
		return Bitr{Rd: rd, R1: r1, R2: r2}
	}
}

// decodeBinImm handles the odd opcodes of 0x20..0x3F: the sixteen
// register-immediate forms matching decodeBinReg's operations.
func (i Instruction) decodeBinImm(op uint8) Op {
	m := i.M()
	rd := RegisterFromNibble(m.Rde)
	r1 := RegisterFromNibble(m.Rs1)
	imm := m.Imm

	switch op {
	case 0x21:
		return Addi{Rd: rd, R1: r1, Imm: imm}
	case 0x23:
		return Subi{Rd: rd, R1: r1, Imm: imm}
	case 0x25:
		return Imuli{Rd: rd, R1: r1, Imm: imm}
	case 0x27:
		return Idivi{Rd: rd, R1: r1, Imm: imm}
	case 0x29:
		return Umuli{Rd: rd, R1: r1, Imm: imm}
	case 0x2B:
		return Udivi{Rd: rd, R1: r1, Imm: imm}
	case 0x2D:
		return Remi{Rd: rd, R1: r1, Imm: imm}
	case 0x2F:
		return Modi{Rd: rd, R1: r1, Imm: imm}
	case 0x31:
		return Andi{Rd: rd, R1: r1, Imm: imm}
	case 0x33:
		return Ori{Rd: rd, R1: r1, Imm: imm}
	case 0x35:
		return Nori{Rd: rd, R1: r1, Imm: imm}
	case 0x37:
		return Xori{Rd: rd, R1: r1, Imm: imm}
	case 0x39:
		return Shli{Rd: rd, R1: r1, Imm: imm}
	case 0x3B:
		return Asri{Rd: rd, R1: r1, Imm: imm}
	case 0x3D:
		return Lsri{Rd: rd, R1: r1, Imm: imm}
	default:
		return Biti{Rd: rd, R1: r1, Imm: imm}
	}
}

// decodeFloat handles opcodes 0x40..0x4F. The function nibble carries the
// precision tag, or the from/to precision pair for the cast at 0x4E.
func (i Instruction) decodeFloat(op uint8) (Op, bool) {
	e := i.E()
	rd := RegisterFromNibble(e.Rde)
	r1 := RegisterFromNibble(e.Rs1)
	r2 := RegisterFromNibble(e.Rs2)

	if op == 0x4E {
		ct, ok := fpu.CastTypeFromNibble(e.Func)
		if !ok {
			return nil, false
		}
		return Fcnv{Rd: rd, R1: r1, P: ct}, true
	}

	p, ok := fpu.PrecisionFromNibble(e.Func)
	if !ok {
		return nil, false
	}

	switch op {
	case 0x40:
		return Fcmp{R1: r1, R2: r2, P: p}, true
	case 0x41:
		return Fto{Rd: rd, Rs: r1, P: p}, true
	case 0x42:
		return Ffrom{Rd: rd, Rs: r1, P: p}, true
	case 0x43:
		return Fneg{Rd: rd, Rs: r1, P: p}, true
	case 0x44:
		return Fabs{Rd: rd, Rs: r1, P: p}, true
	case 0x45:
		return Fadd{Rd: rd, R1: r1, R2: r2, P: p}, true
	case 0x46:
		return Fsub{Rd: rd, R1: r1, R2: r2, P: p}, true
	case 0x47:
		return Fmul{Rd: rd, R1: r1, R2: r2, P: p}, true
	case 0x48:
		return Fdiv{Rd: rd, R1: r1, R2: r2, P: p}, true
	case 0x49:
		return Fma{Rd: rd, R1: r1, R2: r2, P: p}, true
	case 0x4A:
		return Fsqrt{Rd: rd, R1: r1, P: p}, true
	case 0x4B:
		return Fmin{Rd: rd, R1: r1, R2: r2, P: p}, true
	case 0x4C:
		return Fmax{Rd: rd, R1: r1, R2: r2, P: p}, true
	case 0x4D:
		return Fsat{Rd: rd, R1: r1, P: p}, true
	default:
		return Fnan{Rd: rd, R1: r1, P: p}, true
	}
}
