package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDecodeTotality(t *testing.T) {
	assert := assert.New(t)

	for word := 0; word <= 0xFFFF; word++ {
		inst := Decode(uint16(word))
		assert.Equal(Opcode(word>>12), inst.Op)
	}
}

func TestSignExtend(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		name   string
		width  uint
		value  uint16
		expect int16
	}){
		{"imm5_minus_one", 5, 0x1F, -1},
		{"imm5_min", 5, 0x10, -16},
		{"imm5_max", 5, 0x0F, 15},
		{"off6_minus_one", 6, 0x3F, -1},
		{"off6_min", 6, 0x20, -32},
		{"off6_max", 6, 0x1F, 31},
		{"off9_minus_one", 9, 0x1FF, -1},
		{"off9_min", 9, 0x100, -256},
		{"off9_max", 9, 0x0FF, 255},
		{"off11_minus_one", 11, 0x7FF, -1},
		{"off11_min", 11, 0x400, -1024},
		{"off11_max", 11, 0x3FF, 1023},
		{"zero", 9, 0, 0},
	}

	for _, entry := range table {
		assert.Equal(entry.expect, SignExtend(entry.value, entry.width), entry.name)
	}
}

func TestEncodeRoundTrip(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		name string
		code Code
	}){
		{"br", MakeCodeBr(COND_NEGATIVE|COND_ZERO, -3)},
		{"br_any", MakeCodeBr(COND_ANY, 255)},
		{"br_never", MakeCodeBr(0, 0)},
		{"add_reg", MakeCodeAdd(1, 2, 3)},
		{"add_imm", MakeCodeAddImm(1, 2, -1)},
		{"and_reg", MakeCodeAnd(7, 0, 5)},
		{"and_imm", MakeCodeAndImm(0, 0, 15)},
		{"ld", MakeCodeLd(4, -256)},
		{"st", MakeCodeSt(3, 255)},
		{"jsr", MakeCodeJsr(-1024)},
		{"jsrr", MakeCodeJsrr(6)},
		{"ldr", MakeCodeLdr(2, 5, -32)},
		{"str", MakeCodeStr(1, 4, 31)},
		{"rti", MakeCodeRti()},
		{"not", MakeCodeNot(6, 1)},
		{"ldi", MakeCodeLdi(0, 100)},
		{"sti", MakeCodeSti(5, -100)},
		{"jmp", MakeCodeJmp(3)},
		{"ret", MakeCodeJmp(7)},
		{"reserved", MakeCodeReserved(0xABC)},
		{"lea", MakeCodeLea(7, -2)},
		{"trap_halt", MakeCodeTrap(0x25)},
	}

	for _, entry := range table {
		inst := Decode(uint16(entry.code))
		assert.Equal(entry.code, inst.Encode(), entry.name)
	}
}

func TestDecodeFields(t *testing.T) {
	assert := assert.New(t)

	// ADD R0, R1, #2: bit 5 selects the immediate.
	inst := Decode(0x1062)
	assert.Equal(OP_ADD, inst.Op)
	assert.Equal(0, inst.Dr)
	assert.Equal(1, inst.Sr1)
	assert.True(inst.Imm)
	assert.Equal(int16(2), inst.Value)

	// ADD R0, R1, R2: bit 5 clear selects the register.
	inst = Decode(0x1042)
	assert.False(inst.Imm)
	assert.Equal(2, inst.Sr2)

	// JSR with an 11-bit offset versus JSRR through a base register.
	inst = Decode(uint16(MakeCodeJsr(6)))
	assert.True(inst.Imm)
	assert.Equal(int16(6), inst.Value)
	inst = Decode(uint16(MakeCodeJsrr(6)))
	assert.False(inst.Imm)
	assert.Equal(6, inst.Sr1)

	// TRAP keeps only its vector.
	inst = Decode(0xF025)
	assert.Equal(uint16(0x25), inst.Vector)

	// The reserved opcode carries its low 12 bits verbatim.
	inst = Decode(0xDABC)
	assert.Equal(OP_RES, inst.Op)
	assert.Equal(uint16(0xABC), inst.Raw)

	// BR decodes the N/Z/P mask from bits 11-9.
	inst = Decode(uint16(MakeCodeBr(COND_NEGATIVE, -2)))
	assert.Equal(COND_NEGATIVE, inst.Nzp)
	assert.Equal(int16(-2), inst.Value)
}

func TestOpcodeOf(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		name   string
		expect Opcode
		bad    bool
	}){
		{"add", OP_ADD, false},
		{"TRAP", OP_TRAP, false},
		{"jsrr", OP_JSR, false},
		{"Br", OP_BR, false},
		{"RES", 0, true},
		{"HCF", 0, true},
	}

	for _, entry := range table {
		op, err := OpcodeOf(entry.name)
		if entry.bad {
			assert.ErrorIs(err, ErrMnemonicUnknown(""), entry.name)
		} else {
			assert.NoError(err, entry.name)
			assert.Equal(entry.expect, op, entry.name)
		}
	}
}
