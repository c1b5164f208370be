// Package cpu simulates a 16-bit von-Neumann educational ISA: an 8-entry
// register file, a flat 16-bit address space with memory-mapped keyboard,
// display, and clock registers, and trap-based system calls. The Cpu type
// owns all machine state and drives the fetch-decode-execute-trace cycle.
package cpu

import (
	"strings"
)

// Opcode is the 4-bit instruction selector in bits 15-12 of a word.
type Opcode int

//go:generate go tool stringer -linecomment -type=Opcode
const (
	OP_BR   = Opcode(0x0) // BR
	OP_ADD  = Opcode(0x1) // ADD
	OP_LD   = Opcode(0x2) // LD
	OP_ST   = Opcode(0x3) // ST
	OP_JSR  = Opcode(0x4) // JSR
	OP_AND  = Opcode(0x5) // AND
	OP_LDR  = Opcode(0x6) // LDR
	OP_STR  = Opcode(0x7) // STR
	OP_RTI  = Opcode(0x8) // RTI
	OP_NOT  = Opcode(0x9) // NOT
	OP_LDI  = Opcode(0xA) // LDI
	OP_STI  = Opcode(0xB) // STI
	OP_JMP  = Opcode(0xC) // JMP
	OP_RES  = Opcode(0xD) // RES
	OP_LEA  = Opcode(0xE) // LEA
	OP_TRAP = Opcode(0xF) // TRAP
)

// Mask returns the opcode's bit in an opcode-interest bitmask.
func (op Opcode) Mask() uint16 {
	return 1 << uint(op)
}

// Cond is the tri-state condition code. The values are one-hot and line
// up with the N/Z/P mask bits of a BR instruction.
type Cond uint16

//go:generate go tool stringer -linecomment -type=Cond
const (
	COND_POSITIVE = Cond(1 << 0) // P
	COND_ZERO     = Cond(1 << 1) // Z
	COND_NEGATIVE = Cond(1 << 2) // N
)

// COND_ANY matches every condition code in a BR mask.
const COND_ANY = COND_NEGATIVE | COND_ZERO | COND_POSITIVE

// The names a tracer configuration may select. The reserved opcode is
// deliberately absent; JSRR selects the same opcode as JSR.
var mnemonics = map[string]Opcode{
	"BR":   OP_BR,
	"ADD":  OP_ADD,
	"LD":   OP_LD,
	"ST":   OP_ST,
	"JSR":  OP_JSR,
	"JSRR": OP_JSR,
	"AND":  OP_AND,
	"LDR":  OP_LDR,
	"STR":  OP_STR,
	"RTI":  OP_RTI,
	"NOT":  OP_NOT,
	"LDI":  OP_LDI,
	"STI":  OP_STI,
	"JMP":  OP_JMP,
	"LEA":  OP_LEA,
	"TRAP": OP_TRAP,
}

// OpcodeOf resolves an instruction mnemonic, case-insensitively, to its
// opcode. JSRR is accepted as an alias for JSR.
func OpcodeOf(name string) (op Opcode, err error) {
	op, ok := mnemonics[strings.ToUpper(name)]
	if !ok {
		err = ErrMnemonicUnknown(name)
	}
	return
}
