package insts

import "fmt"

// Interrupt is an 8-bit interrupt identifier. The interrupt controller's
// queueing and vector-table behavior live outside this package; the encoding
// only carries the number, stored in the low byte of a 16-bit immediate
// whose high byte must be zero.
type Interrupt uint8

// Reserved interrupts.
const (
	// DivideByZero triggers when the second argument of a div, mod, or rem
	// instruction is zero.
	DivideByZero Interrupt = 0x00
	// Breakpoint is reserved for debugger breakpoints.
	Breakpoint Interrupt = 0x01
	// InvalidOperation triggers on unrecognized opcodes or sub-function
	// values, and on restricted operations attempted in user mode.
	InvalidOperation Interrupt = 0x02
	// StackUnderflow triggers when sp > fp.
	StackUnderflow Interrupt = 0x03
	// UnalignedAccess triggers when memory is accessed across type width
	// boundaries.
	UnalignedAccess Interrupt = 0x04
	// AccessViolation triggers on accesses outside physical memory bounds
	// or, in user mode, outside mapped and permitted virtual memory.
	AccessViolation Interrupt = 0x05
	// InterruptOverflow triggers when the interrupt controller's pending
	// queue overflows.
	InterruptOverflow Interrupt = 0x06
)

// InterruptFromImm16 extracts an interrupt number from a 16-bit immediate.
// It reports false if the high byte is non-zero.
func InterruptFromImm16(imm uint16) (Interrupt, bool) {
	if imm > 0xFF {
		return 0, false
	}
	return Interrupt(imm), true
}

// Imm16 returns the interrupt number widened into its immediate field.
func (i Interrupt) Imm16() uint16 {
	return uint16(i)
}

// IsReserved reports whether the interrupt number has an assigned hardware
// meaning.
func (i Interrupt) IsReserved() bool {
	return i <= InterruptOverflow
}

func (i Interrupt) String() string {
	switch i {
	case DivideByZero:
		return "Divide By Zero"
	case Breakpoint:
		return "Breakpoint"
	case InvalidOperation:
		return "Invalid Operation"
	case StackUnderflow:
		return "Stack Underflow"
	case UnalignedAccess:
		return "Unaligned Access"
	case AccessViolation:
		return "Access Violation"
	case InterruptOverflow:
		return "Interrupt Overflow"
	default:
		return fmt.Sprintf("Interrupt 0x%02X", uint8(i))
	}
}

// Port is a 16-bit I/O port identifier.
type Port uint16

// Reserved ports.
const (
	PortInt      Port = 0 // interrupt controller
	PortIO       Port = 1 // I/O controller
	PortMMU      Port = 2 // memory management unit
	PortSysTimer Port = 3 // system timer
)
