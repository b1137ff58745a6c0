package cpu

import "fmt"

// 6502 Addressing Modes
// https://www.nesdev.org/obelisk-6502-guide/addressing.html
const (
	IMPLICIT = iota
	ACCUMULATOR
	IMMEDIATE
	ZERO_PAGE
	ZERO_PAGE_X
	ZERO_PAGE_Y
	RELATIVE
	ABSOLUTE
	ABSOLUTE_X
	ABSOLUTE_Y
	INDIRECT
	INDIRECT_X // Indexed Indirect
	INDIRECT_Y // Indirect Indexed
)

var modenames = map[uint8]string{
	IMPLICIT: "IMPLICIT", ACCUMULATOR: "ACCUMULATOR", IMMEDIATE: "IMMEDIATE",
	ZERO_PAGE: "ZERO_PAGE", ZERO_PAGE_X: "ZERO_PAGE_X", ZERO_PAGE_Y: "ZERO_PAGE_Y",
	RELATIVE: "RELATIVE", ABSOLUTE: "ABSOLUTE", ABSOLUTE_X: "ABSOLUTE_X", ABSOLUTE_Y: "ABSOLUTE_Y",
	INDIRECT: "INDIRECT", INDIRECT_X: "INDIRECT_X", INDIRECT_Y: "INDIRECT_Y",
}

// 6502 Instructions, documented first
// https://www.nesdev.org/obelisk-6502-guide/instructions.html
const (
	ADC = iota
	AND
	ASL
	BCC
	BCS
	BEQ
	BIT
	BMI
	BNE
	BPL
	BRK
	BVC
	BVS
	CLC
	CLD
	CLI
	CLV
	CMP
	CPX
	CPY
	DEC
	DEX
	DEY
	EOR
	INC
	INX
	INY
	JMP
	JSR
	LDA
	LDX
	LDY
	LSR
	NOP
	ORA
	PHA
	PHP
	PLA
	PLP
	ROL
	ROR
	RTI
	RTS
	SBC
	SEC
	SED
	SEI
	STA
	STX
	STY
	TAX
	TAY
	TSX
	TXA
	TXS
	TYA

	// Undocumented opcodes. https://www.nesdev.org/6502_cpu.txt and
	// the "NMOS 6510 unintended opcodes" reference cover their
	// behavior; several (SHA, SHS, SHX, SHY, XAA, LAX #imm) are
	// unstable on real silicon and implemented here to their most
	// commonly cited stable approximation.
	LAX
	SAX
	DCP
	ISC
	SLO
	RLA
	SRE
	RRA
	ANC
	ALR
	ARR
	SBX
	LAS
	SHA
	SHS
	SHX
	SHY
	XAA
	JAM
)

type opcode struct {
	inst   uint8
	name   string
	mode   uint8
	bytes  uint8
	cycles uint8
}

func (o opcode) String() string {
	return fmt.Sprintf("{%s, %s}", o.name, modenames[o.mode])
}

func bytesForMode(mode uint8) uint8 {
	switch mode {
	case IMPLICIT, ACCUMULATOR:
		return 1
	case ABSOLUTE, ABSOLUTE_X, ABSOLUTE_Y, INDIRECT:
		return 3
	default:
		return 2
	}
}

func op(inst uint8, name string, mode uint8, cycles uint8) opcode {
	return opcode{inst: inst, name: name, mode: mode, bytes: bytesForMode(mode), cycles: cycles}
}

// opcodes is indexed by the instruction byte and covers all 256
// values, including the undocumented opcodes real NES software (and
// test ROMs like blargg's) depends on.
var opcodes = map[uint8]opcode{
	0x00: op(BRK, "BRK", IMPLICIT, 7),
	0x01: op(ORA, "ORA", INDIRECT_X, 6),
	0x02: op(JAM, "JAM", IMPLICIT, 0),
	0x03: op(SLO, "SLO", INDIRECT_X, 8),
	0x04: op(NOP, "NOP", ZERO_PAGE, 3),
	0x05: op(ORA, "ORA", ZERO_PAGE, 3),
	0x06: op(ASL, "ASL", ZERO_PAGE, 5),
	0x07: op(SLO, "SLO", ZERO_PAGE, 5),
	0x08: op(PHP, "PHP", IMPLICIT, 3),
	0x09: op(ORA, "ORA", IMMEDIATE, 2),
	0x0A: op(ASL, "ASL", ACCUMULATOR, 2),
	0x0B: op(ANC, "ANC", IMMEDIATE, 2),
	0x0C: op(NOP, "NOP", ABSOLUTE, 4),
	0x0D: op(ORA, "ORA", ABSOLUTE, 4),
	0x0E: op(ASL, "ASL", ABSOLUTE, 6),
	0x0F: op(SLO, "SLO", ABSOLUTE, 6),

	0x10: op(BPL, "BPL", RELATIVE, 2),
	0x11: op(ORA, "ORA", INDIRECT_Y, 5),
	0x12: op(JAM, "JAM", IMPLICIT, 0),
	0x13: op(SLO, "SLO", INDIRECT_Y, 8),
	0x14: op(NOP, "NOP", ZERO_PAGE_X, 4),
	0x15: op(ORA, "ORA", ZERO_PAGE_X, 4),
	0x16: op(ASL, "ASL", ZERO_PAGE_X, 6),
	0x17: op(SLO, "SLO", ZERO_PAGE_X, 6),
	0x18: op(CLC, "CLC", IMPLICIT, 2),
	0x19: op(ORA, "ORA", ABSOLUTE_Y, 4),
	0x1A: op(NOP, "NOP", IMPLICIT, 2),
	0x1B: op(SLO, "SLO", ABSOLUTE_Y, 7),
	0x1C: op(NOP, "NOP", ABSOLUTE_X, 4),
	0x1D: op(ORA, "ORA", ABSOLUTE_X, 4),
	0x1E: op(ASL, "ASL", ABSOLUTE_X, 7),
	0x1F: op(SLO, "SLO", ABSOLUTE_X, 7),

	0x20: op(JSR, "JSR", ABSOLUTE, 6),
	0x21: op(AND, "AND", INDIRECT_X, 6),
	0x22: op(JAM, "JAM", IMPLICIT, 0),
	0x23: op(RLA, "RLA", INDIRECT_X, 8),
	0x24: op(BIT, "BIT", ZERO_PAGE, 3),
	0x25: op(AND, "AND", ZERO_PAGE, 3),
	0x26: op(ROL, "ROL", ZERO_PAGE, 5),
	0x27: op(RLA, "RLA", ZERO_PAGE, 5),
	0x28: op(PLP, "PLP", IMPLICIT, 4),
	0x29: op(AND, "AND", IMMEDIATE, 2),
	0x2A: op(ROL, "ROL", ACCUMULATOR, 2),
	0x2B: op(ANC, "ANC", IMMEDIATE, 2),
	0x2C: op(BIT, "BIT", ABSOLUTE, 4),
	0x2D: op(AND, "AND", ABSOLUTE, 4),
	0x2E: op(ROL, "ROL", ABSOLUTE, 6),
	0x2F: op(RLA, "RLA", ABSOLUTE, 6),

	0x30: op(BMI, "BMI", RELATIVE, 2),
	0x31: op(AND, "AND", INDIRECT_Y, 5),
	0x32: op(JAM, "JAM", IMPLICIT, 0),
	0x33: op(RLA, "RLA", INDIRECT_Y, 8),
	0x34: op(NOP, "NOP", ZERO_PAGE_X, 4),
	0x35: op(AND, "AND", ZERO_PAGE_X, 4),
	0x36: op(ROL, "ROL", ZERO_PAGE_X, 6),
	0x37: op(RLA, "RLA", ZERO_PAGE_X, 6),
	0x38: op(SEC, "SEC", IMPLICIT, 2),
	0x39: op(AND, "AND", ABSOLUTE_Y, 4),
	0x3A: op(NOP, "NOP", IMPLICIT, 2),
	0x3B: op(RLA, "RLA", ABSOLUTE_Y, 7),
	0x3C: op(NOP, "NOP", ABSOLUTE_X, 4),
	0x3D: op(AND, "AND", ABSOLUTE_X, 4),
	0x3E: op(ROL, "ROL", ABSOLUTE_X, 7),
	0x3F: op(RLA, "RLA", ABSOLUTE_X, 7),

	0x40: op(RTI, "RTI", IMPLICIT, 6),
	0x41: op(EOR, "EOR", INDIRECT_X, 6),
	0x42: op(JAM, "JAM", IMPLICIT, 0),
	0x43: op(SRE, "SRE", INDIRECT_X, 8),
	0x44: op(NOP, "NOP", ZERO_PAGE, 3),
	0x45: op(EOR, "EOR", ZERO_PAGE, 3),
	0x46: op(LSR, "LSR", ZERO_PAGE, 5),
	0x47: op(SRE, "SRE", ZERO_PAGE, 5),
	0x48: op(PHA, "PHA", IMPLICIT, 3),
	0x49: op(EOR, "EOR", IMMEDIATE, 2),
	0x4A: op(LSR, "LSR", ACCUMULATOR, 2),
	0x4B: op(ALR, "ALR", IMMEDIATE, 2),
	0x4C: op(JMP, "JMP", ABSOLUTE, 3),
	0x4D: op(EOR, "EOR", ABSOLUTE, 4),
	0x4E: op(LSR, "LSR", ABSOLUTE, 6),
	0x4F: op(SRE, "SRE", ABSOLUTE, 6),

	0x50: op(BVC, "BVC", RELATIVE, 2),
	0x51: op(EOR, "EOR", INDIRECT_Y, 5),
	0x52: op(JAM, "JAM", IMPLICIT, 0),
	0x53: op(SRE, "SRE", INDIRECT_Y, 8),
	0x54: op(NOP, "NOP", ZERO_PAGE_X, 4),
	0x55: op(EOR, "EOR", ZERO_PAGE_X, 4),
	0x56: op(LSR, "LSR", ZERO_PAGE_X, 6),
	0x57: op(SRE, "SRE", ZERO_PAGE_X, 6),
	0x58: op(CLI, "CLI", IMPLICIT, 2),
	0x59: op(EOR, "EOR", ABSOLUTE_Y, 4),
	0x5A: op(NOP, "NOP", IMPLICIT, 2),
	0x5B: op(SRE, "SRE", ABSOLUTE_Y, 7),
	0x5C: op(NOP, "NOP", ABSOLUTE_X, 4),
	0x5D: op(EOR, "EOR", ABSOLUTE_X, 4),
	0x5E: op(LSR, "LSR", ABSOLUTE_X, 7),
	0x5F: op(SRE, "SRE", ABSOLUTE_X, 7),

	0x60: op(RTS, "RTS", IMPLICIT, 6),
	0x61: op(ADC, "ADC", INDIRECT_X, 6),
	0x62: op(JAM, "JAM", IMPLICIT, 0),
	0x63: op(RRA, "RRA", INDIRECT_X, 8),
	0x64: op(NOP, "NOP", ZERO_PAGE, 3),
	0x65: op(ADC, "ADC", ZERO_PAGE, 3),
	0x66: op(ROR, "ROR", ZERO_PAGE, 5),
	0x67: op(RRA, "RRA", ZERO_PAGE, 5),
	0x68: op(PLA, "PLA", IMPLICIT, 4),
	0x69: op(ADC, "ADC", IMMEDIATE, 2),
	0x6A: op(ROR, "ROR", ACCUMULATOR, 2),
	0x6B: op(ARR, "ARR", IMMEDIATE, 2),
	0x6C: op(JMP, "JMP", INDIRECT, 5),
	0x6D: op(ADC, "ADC", ABSOLUTE, 4),
	0x6E: op(ROR, "ROR", ABSOLUTE, 6),
	0x6F: op(RRA, "RRA", ABSOLUTE, 6),

	0x70: op(BVS, "BVS", RELATIVE, 2),
	0x71: op(ADC, "ADC", INDIRECT_Y, 5),
	0x72: op(JAM, "JAM", IMPLICIT, 0),
	0x73: op(RRA, "RRA", INDIRECT_Y, 8),
	0x74: op(NOP, "NOP", ZERO_PAGE_X, 4),
	0x75: op(ADC, "ADC", ZERO_PAGE_X, 4),
	0x76: op(ROR, "ROR", ZERO_PAGE_X, 6),
	0x77: op(RRA, "RRA", ZERO_PAGE_X, 6),
	0x78: op(SEI, "SEI", IMPLICIT, 2),
	0x79: op(ADC, "ADC", ABSOLUTE_Y, 4),
	0x7A: op(NOP, "NOP", IMPLICIT, 2),
	0x7B: op(RRA, "RRA", ABSOLUTE_Y, 7),
	0x7C: op(NOP, "NOP", ABSOLUTE_X, 4),
	0x7D: op(ADC, "ADC", ABSOLUTE_X, 4),
	0x7E: op(ROR, "ROR", ABSOLUTE_X, 7),
	0x7F: op(RRA, "RRA", ABSOLUTE_X, 7),

	0x80: op(NOP, "NOP", IMMEDIATE, 2),
	0x81: op(STA, "STA", INDIRECT_X, 6),
	0x82: op(NOP, "NOP", IMMEDIATE, 2),
	0x83: op(SAX, "SAX", INDIRECT_X, 6),
	0x84: op(STY, "STY", ZERO_PAGE, 3),
	0x85: op(STA, "STA", ZERO_PAGE, 3),
	0x86: op(STX, "STX", ZERO_PAGE, 3),
	0x87: op(SAX, "SAX", ZERO_PAGE, 3),
	0x88: op(DEY, "DEY", IMPLICIT, 2),
	0x89: op(NOP, "NOP", IMMEDIATE, 2),
	0x8A: op(TXA, "TXA", IMPLICIT, 2),
	0x8B: op(XAA, "XAA", IMMEDIATE, 2),
	0x8C: op(STY, "STY", ABSOLUTE, 4),
	0x8D: op(STA, "STA", ABSOLUTE, 4),
	0x8E: op(STX, "STX", ABSOLUTE, 4),
	0x8F: op(SAX, "SAX", ABSOLUTE, 4),

	0x90: op(BCC, "BCC", RELATIVE, 2),
	0x91: op(STA, "STA", INDIRECT_Y, 6),
	0x92: op(JAM, "JAM", IMPLICIT, 0),
	0x93: op(SHA, "SHA", INDIRECT_Y, 6),
	0x94: op(STY, "STY", ZERO_PAGE_X, 4),
	0x95: op(STA, "STA", ZERO_PAGE_X, 4),
	0x96: op(STX, "STX", ZERO_PAGE_Y, 4),
	0x97: op(SAX, "SAX", ZERO_PAGE_Y, 4),
	0x98: op(TYA, "TYA", IMPLICIT, 2),
	0x99: op(STA, "STA", ABSOLUTE_Y, 5),
	0x9A: op(TXS, "TXS", IMPLICIT, 2),
	0x9B: op(SHS, "SHS", ABSOLUTE_Y, 5),
	0x9C: op(SHY, "SHY", ABSOLUTE_X, 5),
	0x9D: op(STA, "STA", ABSOLUTE_X, 5),
	0x9E: op(SHX, "SHX", ABSOLUTE_Y, 5),
	0x9F: op(SHA, "SHA", ABSOLUTE_Y, 5),

	0xA0: op(LDY, "LDY", IMMEDIATE, 2),
	0xA1: op(LDA, "LDA", INDIRECT_X, 6),
	0xA2: op(LDX, "LDX", IMMEDIATE, 2),
	0xA3: op(LAX, "LAX", INDIRECT_X, 6),
	0xA4: op(LDY, "LDY", ZERO_PAGE, 3),
	0xA5: op(LDA, "LDA", ZERO_PAGE, 3),
	0xA6: op(LDX, "LDX", ZERO_PAGE, 3),
	0xA7: op(LAX, "LAX", ZERO_PAGE, 3),
	0xA8: op(TAY, "TAY", IMPLICIT, 2),
	0xA9: op(LDA, "LDA", IMMEDIATE, 2),
	0xAA: op(TAX, "TAX", IMPLICIT, 2),
	0xAB: op(LAX, "LAX", IMMEDIATE, 2),
	0xAC: op(LDY, "LDY", ABSOLUTE, 4),
	0xAD: op(LDA, "LDA", ABSOLUTE, 4),
	0xAE: op(LDX, "LDX", ABSOLUTE, 4),
	0xAF: op(LAX, "LAX", ABSOLUTE, 4),

	0xB0: op(BCS, "BCS", RELATIVE, 2),
	0xB1: op(LDA, "LDA", INDIRECT_Y, 5),
	0xB2: op(JAM, "JAM", IMPLICIT, 0),
	0xB3: op(LAX, "LAX", INDIRECT_Y, 5),
	0xB4: op(LDY, "LDY", ZERO_PAGE_X, 4),
	0xB5: op(LDA, "LDA", ZERO_PAGE_X, 4),
	0xB6: op(LDX, "LDX", ZERO_PAGE_Y, 4),
	0xB7: op(LAX, "LAX", ZERO_PAGE_Y, 4),
	0xB8: op(CLV, "CLV", IMPLICIT, 2),
	0xB9: op(LDA, "LDA", ABSOLUTE_Y, 4),
	0xBA: op(TSX, "TSX", IMPLICIT, 2),
	0xBB: op(LAS, "LAS", ABSOLUTE_Y, 4),
	0xBC: op(LDY, "LDY", ABSOLUTE_X, 4),
	0xBD: op(LDA, "LDA", ABSOLUTE_X, 4),
	0xBE: op(LDX, "LDX", ABSOLUTE_Y, 4),
	0xBF: op(LAX, "LAX", ABSOLUTE_Y, 4),

	0xC0: op(CPY, "CPY", IMMEDIATE, 2),
	0xC1: op(CMP, "CMP", INDIRECT_X, 6),
	0xC2: op(NOP, "NOP", IMMEDIATE, 2),
	0xC3: op(DCP, "DCP", INDIRECT_X, 8),
	0xC4: op(CPY, "CPY", ZERO_PAGE, 3),
	0xC5: op(CMP, "CMP", ZERO_PAGE, 3),
	0xC6: op(DEC, "DEC", ZERO_PAGE, 5),
	0xC7: op(DCP, "DCP", ZERO_PAGE, 5),
	0xC8: op(INY, "INY", IMPLICIT, 2),
	0xC9: op(CMP, "CMP", IMMEDIATE, 2),
	0xCA: op(DEX, "DEX", IMPLICIT, 2),
	0xCB: op(SBX, "SBX", IMMEDIATE, 2),
	0xCC: op(CPY, "CPY", ABSOLUTE, 4),
	0xCD: op(CMP, "CMP", ABSOLUTE, 4),
	0xCE: op(DEC, "DEC", ABSOLUTE, 6),
	0xCF: op(DCP, "DCP", ABSOLUTE, 6),

	0xD0: op(BNE, "BNE", RELATIVE, 2),
	0xD1: op(CMP, "CMP", INDIRECT_Y, 5),
	0xD2: op(JAM, "JAM", IMPLICIT, 0),
	0xD3: op(DCP, "DCP", INDIRECT_Y, 8),
	0xD4: op(NOP, "NOP", ZERO_PAGE_X, 4),
	0xD5: op(CMP, "CMP", ZERO_PAGE_X, 4),
	0xD6: op(DEC, "DEC", ZERO_PAGE_X, 6),
	0xD7: op(DCP, "DCP", ZERO_PAGE_X, 6),
	0xD8: op(CLD, "CLD", IMPLICIT, 2),
	0xD9: op(CMP, "CMP", ABSOLUTE_Y, 4),
	0xDA: op(NOP, "NOP", IMPLICIT, 2),
	0xDB: op(DCP, "DCP", ABSOLUTE_Y, 7),
	0xDC: op(NOP, "NOP", ABSOLUTE_X, 4),
	0xDD: op(CMP, "CMP", ABSOLUTE_X, 4),
	0xDE: op(DEC, "DEC", ABSOLUTE_X, 7),
	0xDF: op(DCP, "DCP", ABSOLUTE_X, 7),

	0xE0: op(CPX, "CPX", IMMEDIATE, 2),
	0xE1: op(SBC, "SBC", INDIRECT_X, 6),
	0xE2: op(NOP, "NOP", IMMEDIATE, 2),
	0xE3: op(ISC, "ISC", INDIRECT_X, 8),
	0xE4: op(CPX, "CPX", ZERO_PAGE, 3),
	0xE5: op(SBC, "SBC", ZERO_PAGE, 3),
	0xE6: op(INC, "INC", ZERO_PAGE, 5),
	0xE7: op(ISC, "ISC", ZERO_PAGE, 5),
	0xE8: op(INX, "INX", IMPLICIT, 2),
	0xE9: op(SBC, "SBC", IMMEDIATE, 2),
	0xEA: op(NOP, "NOP", IMPLICIT, 2),
	0xEB: op(SBC, "SBC", IMMEDIATE, 2),
	0xEC: op(CPX, "CPX", ABSOLUTE, 4),
	0xED: op(SBC, "SBC", ABSOLUTE, 4),
	0xEE: op(INC, "INC", ABSOLUTE, 6),
	0xEF: op(ISC, "ISC", ABSOLUTE, 6),

	0xF0: op(BEQ, "BEQ", RELATIVE, 2),
	0xF1: op(SBC, "SBC", INDIRECT_Y, 5),
	0xF2: op(JAM, "JAM", IMPLICIT, 0),
	0xF3: op(ISC, "ISC", INDIRECT_Y, 8),
	0xF4: op(NOP, "NOP", ZERO_PAGE_X, 4),
	0xF5: op(SBC, "SBC", ZERO_PAGE_X, 4),
	0xF6: op(INC, "INC", ZERO_PAGE_X, 6),
	0xF7: op(ISC, "ISC", ZERO_PAGE_X, 6),
	0xF8: op(SED, "SED", IMPLICIT, 2),
	0xF9: op(SBC, "SBC", ABSOLUTE_Y, 4),
	0xFA: op(NOP, "NOP", IMPLICIT, 2),
	0xFB: op(ISC, "ISC", ABSOLUTE_Y, 7),
	0xFC: op(NOP, "NOP", ABSOLUTE_X, 4),
	0xFD: op(SBC, "SBC", ABSOLUTE_X, 4),
	0xFE: op(INC, "INC", ABSOLUTE_X, 7),
	0xFF: op(ISC, "ISC", ABSOLUTE_X, 7),
}
