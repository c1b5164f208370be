package cpu

import (
	"fmt"

	"github.com/hashicorp/go-hclog"

	"github.com/ezrec/lc3sim/io"
)

// Reader is the keyboard byte source attached to the simulator.
type Reader io.Reader

// Writer is the display byte sink attached to the simulator.
type Writer io.Writer

// Cpu is the simulation context for the whole machine. It exclusively
// owns the memory image, the register file, and the I/O back-ends.
type Cpu struct {
	Verbose bool         // Set to enable per-cycle debug logging.
	Logger  hclog.Logger // Diagnostics sink.

	Register [8]uint16 // General-purpose register bank.
	Pc       uint16    // Program counter.
	Ir       uint16    // Instruction register.
	Cond     Cond      // Condition code from the last qualifying write.

	Input  Reader  // Keyboard back-end; nil reads as "no key ever ready".
	Output Writer  // Display back-end.
	Tracer *Tracer // Post-execution trace filter; nil traces nothing.

	memory  [MEMORY_SIZE]uint16
	haltErr error
}

// NewCpu creates a machine with zeroed registers and memory, the clock
// running, and the display reporting ready.
func NewCpu(input Reader, output Writer, tracer *Tracer) (cpu *Cpu) {
	cpu = &Cpu{
		Input:  input,
		Output: output,
		Tracer: tracer,
		Logger: hclog.NewNullLogger(),
		Cond:   COND_ZERO,
	}
	cpu.memory[ADDR_CLK] = DEVICE_READY
	cpu.memory[ADDR_DSR] = DEVICE_READY

	return
}

// Load places an object image into memory. The first big-endian word of
// the image is the load origin; each subsequent word lands at consecutive
// addresses, wrapping at the top of the address space. The program
// counter is left at the origin, so the entry point is decided by the
// image loaded last. Later loads may overwrite earlier ones.
func (cpu *Cpu) Load(image []byte) (err error) {
	if len(image) < 2 {
		err = ErrImageTruncated
		return
	}

	origin := uint16(image[0])<<8 | uint16(image[1])
	cpu.Pc = origin

	address := origin
	for i := 2; i+1 < len(image); i += 2 {
		cpu.memory[address] = uint16(image[i])<<8 | uint16(image[i+1])
		address++
	}

	cpu.Logger.Debug("image loaded",
		"origin", fmt.Sprintf("%04X", origin),
		"words", (len(image)-2)/2)

	return
}

// Run drives the fetch-decode-execute-trace cycle until the clock
// register's ready bit clears. A halt forced by input exhaustion or
// cancellation is reported through the returned diagnostic; a halt
// requested by the program itself returns nil.
func (cpu *Cpu) Run() (err error) {
	for cpu.ReadMemory(ADDR_CLK)&DEVICE_READY != 0 {
		cpu.Step()
	}

	err = cpu.haltErr
	return
}

// Halt clears the clock ready bit; the run loop exits after the current
// cycle completes.
func (cpu *Cpu) Halt() {
	cpu.memory[ADDR_CLK] &^= DEVICE_READY
}

// Step executes a single instruction cycle and reports the control-flow
// outcome, for callers modeling pipeline hazards. Nothing in Run consumes
// the outcome.
func (cpu *Cpu) Step() (branch Branch) {
	cpu.Ir = cpu.ReadMemory(cpu.Pc)
	cpu.Pc++ // relative addressing is from the incremented PC

	inst := Decode(cpu.Ir)
	branch = cpu.execute(inst)

	if cpu.Verbose {
		cpu.Logger.Debug("cycle",
			"ir", fmt.Sprintf("%04X", cpu.Ir),
			"op", inst.Op.String(),
			"pc", fmt.Sprintf("%04X", cpu.Pc),
			"cc", cpu.Cond.String())
	}

	if cpu.Tracer.Wants(inst.Op, cpu.Pc) {
		cpu.Tracer.Trace(cpu.String())
	}

	return
}

// execute dispatches one decoded instruction. Every register and memory
// access goes through the single write funnel and the memory entry
// points; address arithmetic wraps modulo the 16-bit space.
func (cpu *Cpu) execute(inst Inst) (branch Branch) {
	branch = BRANCH_NONE

	switch inst.Op {
	case OP_BR:
		if inst.Nzp&cpu.Cond != 0 {
			cpu.Pc += uint16(inst.Value)
			branch = BRANCH_TAKEN
		} else {
			branch = BRANCH_NOT_TAKEN
		}
	case OP_ADD:
		cpu.setRegister(inst.Dr, cpu.Register[inst.Sr1]+cpu.operand(inst))
	case OP_AND:
		cpu.setRegister(inst.Dr, cpu.Register[inst.Sr1]&cpu.operand(inst))
	case OP_NOT:
		cpu.setRegister(inst.Dr, ^cpu.Register[inst.Sr1])
	case OP_LD:
		cpu.setRegister(inst.Dr, cpu.ReadMemory(cpu.Pc+uint16(inst.Value)))
	case OP_LDI:
		indirect := cpu.ReadMemory(cpu.Pc + uint16(inst.Value))
		cpu.setRegister(inst.Dr, cpu.ReadMemory(indirect))
	case OP_LDR:
		cpu.setRegister(inst.Dr, cpu.ReadMemory(cpu.Register[inst.Sr1]+uint16(inst.Value)))
	case OP_LEA:
		cpu.setRegister(inst.Dr, cpu.Pc+uint16(inst.Value))
	case OP_ST:
		cpu.WriteMemory(cpu.Pc+uint16(inst.Value), cpu.Register[inst.Dr])
	case OP_STI:
		indirect := cpu.ReadMemory(cpu.Pc + uint16(inst.Value))
		cpu.WriteMemory(indirect, cpu.Register[inst.Dr])
	case OP_STR:
		cpu.WriteMemory(cpu.Register[inst.Sr1]+uint16(inst.Value), cpu.Register[inst.Dr])
	case OP_JMP:
		cpu.Pc = cpu.Register[inst.Sr1]
		branch = BRANCH_JUMP
	case OP_JSR:
		// Return address; does not touch the condition code.
		cpu.Register[7] = cpu.Pc
		if inst.Imm {
			cpu.Pc += uint16(inst.Value)
		} else {
			cpu.Pc = cpu.Register[inst.Sr1]
		}
		branch = BRANCH_JUMP
	case OP_TRAP:
		cpu.Register[7] = cpu.Pc
		cpu.Pc = cpu.ReadMemory(inst.Vector)
		branch = BRANCH_JUMP
	case OP_RTI, OP_RES:
		// No privileged execution model; both are no-ops.
	}

	return
}

// operand resolves the second ALU operand: the sign-extended imm5 in
// immediate mode, a register otherwise.
func (cpu *Cpu) operand(inst Inst) uint16 {
	if inst.Imm {
		return uint16(inst.Value)
	}
	return cpu.Register[inst.Sr2]
}

// setRegister is the single register-write funnel: every qualifying write
// also refreshes the condition code.
func (cpu *Cpu) setRegister(r int, value uint16) {
	cpu.Register[r] = value
	cpu.setCond(value)
}

// setCond derives the tri-state condition code from a result.
func (cpu *Cpu) setCond(value uint16) {
	switch {
	case value == 0:
		cpu.Cond = COND_ZERO
	case value&0x8000 != 0:
		cpu.Cond = COND_NEGATIVE
	default:
		cpu.Cond = COND_POSITIVE
	}
}

// String formats the post-execution snapshot: instruction register,
// register bank, program counter, and condition code.
func (cpu *Cpu) String() (text string) {
	text = fmt.Sprintf("IR=%04X PC=%04X CC=%v", cpu.Ir, cpu.Pc, cpu.Cond)
	for n, value := range cpu.Register {
		text += fmt.Sprintf(" R%d=%04X", n, value)
	}
	text += "\n"

	return
}
