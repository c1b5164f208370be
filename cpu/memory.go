package cpu

// MEMORY_SIZE covers the full 16-bit address space; 0xFFFF is a valid,
// storable location.
const MEMORY_SIZE = 1 << 16

// Memory-mapped device registers. Reads and writes at these addresses are
// intercepted to emulate the device rather than treated as storage.
const (
	ADDR_KBSR = uint16(0xFE00) // Keyboard status.
	ADDR_KBDR = uint16(0xFE02) // Keyboard data.
	ADDR_DSR  = uint16(0xFE04) // Display status.
	ADDR_DDR  = uint16(0xFE06) // Display data.
	ADDR_CLK  = uint16(0xFFFE) // Machine control; bit 15 gates the run loop.
)

// DEVICE_READY is the ready bit of the status and clock registers.
const DEVICE_READY = uint16(0x8000)

// USER_SPACE is the first address conventionally available to user
// programs; everything below it belongs to the operating system image.
const USER_SPACE = uint16(0x3000)

// ReadMemory is the single read entry point for the address space,
// applying device-register semantics at the mapped addresses.
func (cpu *Cpu) ReadMemory(address uint16) (value uint16) {
	switch address {
	case ADDR_KBSR:
		value = cpu.pollKeyboard()
	case ADDR_KBDR:
		// Consume-once: a latched byte is delivered exactly one time.
		value = cpu.memory[ADDR_KBDR]
		cpu.memory[ADDR_KBDR] = 0
	case ADDR_DDR:
		// Software polls DSR, not DDR, for readiness.
		value = 0
	default:
		value = cpu.memory[address]
	}

	return
}

// WriteMemory is the single write entry point for the address space. The
// keyboard and display-status registers are read-only from the program's
// perspective; a display-data write forwards to the output back-end.
func (cpu *Cpu) WriteMemory(address uint16, value uint16) {
	switch address {
	case ADDR_DDR:
		cpu.forwardDisplay(byte(value))
	case ADDR_KBSR, ADDR_KBDR, ADDR_DSR:
		// Ignored.
	default:
		cpu.memory[address] = value
	}
}

// pollKeyboard services a KBSR read with one non-blocking poll of the
// input back-end. A fetched byte is latched into KBDR and signaled ready
// within this same call. Exhaustion or cancellation clears the clock
// ready bit, so the machine halts after the current cycle.
func (cpu *Cpu) pollKeyboard() (status uint16) {
	if cpu.Input == nil {
		return
	}

	value, ok, err := cpu.Input.Poll()
	if err != nil {
		cpu.haltErr = err
		cpu.memory[ADDR_CLK] &^= DEVICE_READY
		return
	}
	if !ok {
		return
	}

	cpu.memory[ADDR_KBDR] = uint16(value)
	status = DEVICE_READY

	return
}

// forwardDisplay sends one display byte to the output back-end and
// completes the DDR/DSR handshake whether or not forwarding succeeded. A
// failed write parks DSR at "not ready"; execution continues.
func (cpu *Cpu) forwardDisplay(value byte) {
	var err error
	if cpu.Output != nil {
		_, err = cpu.Output.Write([]byte{value})
	}

	cpu.memory[ADDR_DDR] = 0
	if err != nil {
		cpu.memory[ADDR_DSR] = 0
		return
	}
	cpu.memory[ADDR_DSR] = DEVICE_READY
}
