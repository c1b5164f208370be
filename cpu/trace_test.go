package cpu

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTracerWants(t *testing.T) {
	assert := assert.New(t)

	var buf bytes.Buffer
	tracer := NewTracer(&buf, OP_ADD.Mask(), true)

	table := [](struct {
		name   string
		op     Opcode
		pc     uint16
		expect bool
	}){
		{"selected_user", OP_ADD, 0x3010, true},
		{"selected_os", OP_ADD, 0x2FF0, false},
		{"unselected", OP_AND, 0x3010, false},
		{"user_space_floor", OP_ADD, USER_SPACE, true},
	}

	for _, entry := range table {
		assert.Equal(entry.expect, tracer.Wants(entry.op, entry.pc), entry.name)
	}

	// Without the user-space restriction the OS range qualifies too.
	tracer = NewTracer(&buf, OP_ADD.Mask(), false)
	assert.True(tracer.Wants(OP_ADD, 0x0200))

	// A nil tracer or a nil sink never wants anything.
	var nilTracer *Tracer
	assert.False(nilTracer.Wants(OP_ADD, 0x3010))
	assert.False(NewTracer(nil, 0xFFFF, false).Wants(OP_ADD, 0x3010))
}

func TestTracerTrace(t *testing.T) {
	assert := assert.New(t)

	var buf bytes.Buffer
	tracer := NewTracer(&buf, 0xFFFF, false)
	tracer.Trace("snapshot\n")
	assert.Equal("snapshot\n", buf.String())

	// A sink failure is swallowed.
	tracer = NewTracer(failWriter{}, 0xFFFF, false)
	assert.NotPanics(func() { tracer.Trace("snapshot\n") })

	var nilTracer *Tracer
	assert.NotPanics(func() { nilTracer.Trace("snapshot\n") })
}

func TestParseMnemonics(t *testing.T) {
	assert := assert.New(t)

	// An empty selection means everything.
	mask, err := ParseMnemonics(nil)
	assert.NoError(err)
	assert.Equal(uint16(0xFFFF), mask)

	// Mnemonics are case-insensitive; JSRR shares the JSR nibble.
	mask, err = ParseMnemonics([]string{"add", "JSRR"})
	assert.NoError(err)
	assert.Equal(OP_ADD.Mask()|OP_JSR.Mask(), mask)

	_, err = ParseMnemonics([]string{"add", "hcf"})
	assert.ErrorIs(err, ErrMnemonicUnknown(""))
}

func TestTraceThroughRun(t *testing.T) {
	assert := assert.New(t)

	var trace bytes.Buffer
	cpu := NewCpu(nil, nil, NewTracer(&trace, OP_ADD.Mask(), true))

	assert.NoError(loadWords(cpu, 0x0025, 0x0200))
	assert.NoError(loadWords(cpu, 0x0200, haltWords()...))
	assert.NoError(loadWords(cpu, 0x3000,
		uint16(MakeCodeAndImm(0, 0, 0)),
		uint16(MakeCodeAddImm(0, 0, 5)),
		uint16(MakeCodeAddImm(0, 0, 3)),
		uint16(MakeCodeTrap(0x25)),
	))

	assert.NoError(cpu.Run())

	// Only the two ADDs pass the filter; the trap routine runs below
	// user space.
	lines := strings.Split(strings.TrimRight(trace.String(), "\n"), "\n")
	assert.Len(lines, 2)
	for _, line := range lines {
		assert.Contains(line, "CC=P")
		assert.Contains(line, "R7=0000")
	}
	assert.Contains(lines[0], "R0=0005")
	assert.Contains(lines[1], "R0=0008")
}
