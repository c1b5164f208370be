package cpu

import (
	"io"
)

// Tracer decides which executed instructions get a formatted snapshot
// appended to its sink. The configuration is immutable after
// construction; a nil *Tracer (or a nil sink) traces nothing.
type Tracer struct {
	Output   io.Writer // Trace sink; nil discards everything.
	Mask     uint16    // Bit n set means opcode nibble n is of interest.
	UserOnly bool      // Restrict emission to PC >= USER_SPACE.
}

// NewTracer creates a tracer emitting to output for every opcode selected
// by mask.
func NewTracer(output io.Writer, mask uint16, userOnly bool) *Tracer {
	return &Tracer{
		Output:   output,
		Mask:     mask,
		UserOnly: userOnly,
	}
}

// Wants reports whether the instruction that just executed should be
// traced, given its opcode and the already-incremented program counter.
func (tr *Tracer) Wants(op Opcode, pc uint16) bool {
	if tr == nil || tr.Output == nil {
		return false
	}
	if tr.UserOnly && pc < USER_SPACE {
		return false
	}

	return tr.Mask&op.Mask() != 0
}

// Trace appends text to the sink. Tracing is best effort: a sink failure
// is swallowed rather than allowed to abort simulation.
func (tr *Tracer) Trace(text string) {
	if tr == nil || tr.Output == nil {
		return
	}
	_, _ = io.WriteString(tr.Output, text)
}

// ParseMnemonics folds a list of instruction mnemonics into an
// opcode-interest mask. An empty list selects every opcode.
func ParseMnemonics(names []string) (mask uint16, err error) {
	if len(names) == 0 {
		mask = 0xFFFF
		return
	}

	for _, name := range names {
		var op Opcode
		op, err = OpcodeOf(name)
		if err != nil {
			return
		}
		mask |= op.Mask()
	}

	return
}
