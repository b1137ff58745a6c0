package cpu

// getOperandAddr resolves the effective address for mode, given pc
// pointing at the first operand byte (i.e. already past the opcode
// byte itself). extraCycle reports whether resolving the address
// crossed a page boundary, which some instructions charge an extra
// cycle for.
func (c *CPU) getOperandAddr(mode uint8) (addr uint16, extraCycle bool) {
	switch mode {
	case ACCUMULATOR, IMPLICIT:
		panic("cpu: ACCUMULATOR/IMPLICIT addressing has no operand address")
	case IMMEDIATE:
		return c.pc, false
	case ZERO_PAGE:
		return uint16(c.read(c.pc)), false
	case ZERO_PAGE_X:
		return uint16(c.read(c.pc) + c.x), false
	case ZERO_PAGE_Y:
		return uint16(c.read(c.pc) + c.y), false
	case ABSOLUTE:
		return c.read16(c.pc), false
	case ABSOLUTE_X:
		base := c.read16(c.pc)
		addr = base + uint16(c.x)
		return addr, extraCycles(base, addr) == 1
	case ABSOLUTE_Y:
		base := c.read16(c.pc)
		addr = base + uint16(c.y)
		return addr, extraCycles(base, addr) == 1
	case INDIRECT:
		return c.readIndirectWithPageWrapBug(c.read16(c.pc)), false
	case INDIRECT_X:
		zp := c.read(c.pc) + c.x
		lo := uint16(c.read(uint16(zp)))
		hi := uint16(c.read(uint16(zp + 1)))
		return (hi << 8) | lo, false
	case INDIRECT_Y:
		zp := c.read(c.pc)
		lo := uint16(c.read(uint16(zp)))
		hi := uint16(c.read(uint16(zp + 1)))
		base := (hi << 8) | lo
		addr = base + uint16(c.y)
		return addr, extraCycles(base, addr) == 1
	case RELATIVE:
		// Relative from PC after the full 2-byte branch
		// instruction, which is pc+1 at this point (the opcode
		// byte has already been consumed).
		return (c.pc + 1) + uint16(int8(c.read(c.pc))), false
	}
	panic("cpu: invalid addressing mode")
}

// readIndirectWithPageWrapBug reads a 16-bit pointer at ptr the way
// the real 6502 does for JMP ($xxFF): if the low byte of ptr is 0xFF,
// the high byte of the result is fetched from the start of the same
// page instead of the next page, reproducing a documented hardware
// bug that NES software routinely relies on (or avoids) deliberately.
func (c *CPU) readIndirectWithPageWrapBug(ptr uint16) uint16 {
	lo := uint16(c.read(ptr))
	hiAddr := (ptr & 0xFF00) | uint16(uint8(ptr)+1)
	hi := uint16(c.read(hiAddr))
	return (hi << 8) | lo
}
