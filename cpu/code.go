package cpu

// Code is a raw 16-bit instruction word.
type Code uint16

// Opcode returns the opcode selector from bits 15-12.
func (code Code) Opcode() Opcode {
	return Opcode(code >> 12)
}

// Inst is one decoded instruction. Only the fields the opcode uses carry
// meaning; everything else is left zero. An Inst is produced from the
// instruction register at the start of a cycle and discarded after
// execution.
type Inst struct {
	Op     Opcode
	Nzp    Cond   // BR condition mask
	Dr     int    // destination register; the ST family stores from it
	Sr1    int    // first source or base register
	Sr2    int    // second source register (register mode only)
	Imm    bool   // ADD/AND immediate mode; JSR PC-relative mode
	Value  int16  // sign-extended imm5, offset6, offset9, or offset11
	Vector uint16 // TRAP vector
	Raw    uint16 // RTI/RES low 12 bits, carried verbatim
}

// SignExtend interprets the low width bits of value as a two's-complement
// quantity and widens it to a signed 16-bit integer.
func SignExtend(value uint16, width uint) int16 {
	shift := 16 - width
	return int16(value<<shift) >> shift
}

// Decode converts a word into its decoded instruction. It is total:
// every 16-bit pattern maps to exactly one of the 16 opcode groups, with
// the unassigned opcode 0xD decoding to the reserved no-op.
func Decode(word uint16) (inst Inst) {
	inst.Op = Code(word).Opcode()

	switch inst.Op {
	case OP_BR:
		inst.Nzp = Cond((word >> 9) & 0x7)
		inst.Value = SignExtend(word, 9)
	case OP_ADD, OP_AND:
		inst.Dr = int((word >> 9) & 0x7)
		inst.Sr1 = int((word >> 6) & 0x7)
		inst.Imm = (word & 0x0020) != 0
		if inst.Imm {
			inst.Value = SignExtend(word, 5)
		} else {
			inst.Sr2 = int(word & 0x7)
		}
	case OP_LD, OP_ST, OP_LDI, OP_STI, OP_LEA:
		inst.Dr = int((word >> 9) & 0x7)
		inst.Value = SignExtend(word, 9)
	case OP_JSR:
		inst.Imm = (word & 0x0800) != 0
		if inst.Imm {
			inst.Value = SignExtend(word, 11)
		} else {
			inst.Sr1 = int((word >> 6) & 0x7)
		}
	case OP_LDR, OP_STR:
		inst.Dr = int((word >> 9) & 0x7)
		inst.Sr1 = int((word >> 6) & 0x7)
		inst.Value = SignExtend(word, 6)
	case OP_NOT:
		inst.Dr = int((word >> 9) & 0x7)
		inst.Sr1 = int((word >> 6) & 0x7)
	case OP_JMP:
		inst.Sr1 = int((word >> 6) & 0x7)
	case OP_TRAP:
		inst.Vector = word & 0x00FF
	case OP_RTI, OP_RES:
		inst.Raw = word & 0x0FFF
	}

	return
}

// Encode packs a decoded instruction back into its canonical word. It is
// the left inverse of Decode over canonically encoded words.
func (inst Inst) Encode() (code Code) {
	switch inst.Op {
	case OP_BR:
		code = MakeCodeBr(inst.Nzp, inst.Value)
	case OP_ADD:
		if inst.Imm {
			code = MakeCodeAddImm(inst.Dr, inst.Sr1, inst.Value)
		} else {
			code = MakeCodeAdd(inst.Dr, inst.Sr1, inst.Sr2)
		}
	case OP_AND:
		if inst.Imm {
			code = MakeCodeAndImm(inst.Dr, inst.Sr1, inst.Value)
		} else {
			code = MakeCodeAnd(inst.Dr, inst.Sr1, inst.Sr2)
		}
	case OP_LD:
		code = MakeCodeLd(inst.Dr, inst.Value)
	case OP_ST:
		code = MakeCodeSt(inst.Dr, inst.Value)
	case OP_JSR:
		if inst.Imm {
			code = MakeCodeJsr(inst.Value)
		} else {
			code = MakeCodeJsrr(inst.Sr1)
		}
	case OP_LDR:
		code = MakeCodeLdr(inst.Dr, inst.Sr1, inst.Value)
	case OP_STR:
		code = MakeCodeStr(inst.Dr, inst.Sr1, inst.Value)
	case OP_RTI:
		code = Code(uint16(OP_RTI)<<12 | inst.Raw)
	case OP_NOT:
		code = MakeCodeNot(inst.Dr, inst.Sr1)
	case OP_LDI:
		code = MakeCodeLdi(inst.Dr, inst.Value)
	case OP_STI:
		code = MakeCodeSti(inst.Dr, inst.Value)
	case OP_JMP:
		code = MakeCodeJmp(inst.Sr1)
	case OP_RES:
		code = MakeCodeReserved(inst.Raw)
	case OP_LEA:
		code = MakeCodeLea(inst.Dr, inst.Value)
	case OP_TRAP:
		code = MakeCodeTrap(inst.Vector)
	}

	return
}

// makeReg packs an opcode with a register triplet field layout.
func makeReg(op Opcode, dr, sr1 int, low uint16) Code {
	return Code(uint16(op)<<12 | uint16(dr&0x7)<<9 | uint16(sr1&0x7)<<6 | low)
}

// makeOffset9 packs an opcode with a register and a 9-bit signed offset.
func makeOffset9(op Opcode, reg int, offset int16) Code {
	return Code(uint16(op)<<12 | uint16(reg&0x7)<<9 | uint16(offset)&0x1FF)
}

// MakeCodeBr creates a conditional branch on the N/Z/P mask.
func MakeCodeBr(nzp Cond, offset int16) Code {
	return Code(uint16(OP_BR)<<12 | uint16(nzp&0x7)<<9 | uint16(offset)&0x1FF)
}

// MakeCodeAdd creates a register-mode ADD.
func MakeCodeAdd(dr, sr1, sr2 int) Code {
	return makeReg(OP_ADD, dr, sr1, uint16(sr2&0x7))
}

// MakeCodeAddImm creates an immediate-mode ADD.
func MakeCodeAddImm(dr, sr1 int, imm int16) Code {
	return makeReg(OP_ADD, dr, sr1, 0x0020|uint16(imm)&0x1F)
}

// MakeCodeAnd creates a register-mode AND.
func MakeCodeAnd(dr, sr1, sr2 int) Code {
	return makeReg(OP_AND, dr, sr1, uint16(sr2&0x7))
}

// MakeCodeAndImm creates an immediate-mode AND.
func MakeCodeAndImm(dr, sr1 int, imm int16) Code {
	return makeReg(OP_AND, dr, sr1, 0x0020|uint16(imm)&0x1F)
}

// MakeCodeLd creates a PC-relative load.
func MakeCodeLd(dr int, offset int16) Code {
	return makeOffset9(OP_LD, dr, offset)
}

// MakeCodeSt creates a PC-relative store.
func MakeCodeSt(sr int, offset int16) Code {
	return makeOffset9(OP_ST, sr, offset)
}

// MakeCodeJsr creates a PC-relative subroutine jump.
func MakeCodeJsr(offset int16) Code {
	return Code(uint16(OP_JSR)<<12 | 0x0800 | uint16(offset)&0x7FF)
}

// MakeCodeJsrr creates a register-indirect subroutine jump.
func MakeCodeJsrr(base int) Code {
	return Code(uint16(OP_JSR)<<12 | uint16(base&0x7)<<6)
}

// MakeCodeLdr creates a base-plus-offset load.
func MakeCodeLdr(dr, base int, offset int16) Code {
	return makeReg(OP_LDR, dr, base, uint16(offset)&0x3F)
}

// MakeCodeStr creates a base-plus-offset store.
func MakeCodeStr(sr, base int, offset int16) Code {
	return makeReg(OP_STR, sr, base, uint16(offset)&0x3F)
}

// MakeCodeRti creates a return-from-interrupt, a no-op in this machine.
func MakeCodeRti() Code {
	return Code(uint16(OP_RTI) << 12)
}

// MakeCodeNot creates a bitwise complement. The low 6 bits are all ones
// in the canonical encoding.
func MakeCodeNot(dr, sr int) Code {
	return makeReg(OP_NOT, dr, sr, 0x003F)
}

// MakeCodeLdi creates a PC-relative indirect load.
func MakeCodeLdi(dr int, offset int16) Code {
	return makeOffset9(OP_LDI, dr, offset)
}

// MakeCodeSti creates a PC-relative indirect store.
func MakeCodeSti(sr int, offset int16) Code {
	return makeOffset9(OP_STI, sr, offset)
}

// MakeCodeJmp creates a register-indirect jump; base 7 is RET.
func MakeCodeJmp(base int) Code {
	return Code(uint16(OP_JMP)<<12 | uint16(base&0x7)<<6)
}

// MakeCodeReserved creates the unassigned opcode with its low 12 bits
// carried verbatim.
func MakeCodeReserved(raw uint16) Code {
	return Code(uint16(OP_RES)<<12 | raw&0x0FFF)
}

// MakeCodeLea creates a load of the effective PC-relative address.
func MakeCodeLea(dr int, offset int16) Code {
	return makeOffset9(OP_LEA, dr, offset)
}

// MakeCodeTrap creates a system call through the trap vector table.
func MakeCodeTrap(vector uint16) Code {
	return Code(uint16(OP_TRAP)<<12 | vector&0x00FF)
}
