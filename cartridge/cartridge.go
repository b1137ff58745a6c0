package cartridge

import "github.com/corwinlane/nesbox/ines"

// Cartridge pairs a loaded ROM image with the Mapper that knows how to
// translate CPU and PPU addresses into offsets into it. It is the
// boundary the CPU bus and PPU bus read and write through; neither
// needs to know which mapper is in play.
type Cartridge struct {
	rom    *ines.ROM
	mapper Mapper
	chrRAM []byte // used in place of rom.CHR() when the cartridge has no CHR ROM
}

// New builds a Cartridge from a parsed ROM, looking up the mapper the
// header names.
func New(rom *ines.ROM) (*Cartridge, error) {
	m, err := Get(rom.MapperNum())
	if err != nil {
		return nil, err
	}

	c := &Cartridge{rom: rom, mapper: m}
	if rom.CHRBanks() == 0 {
		c.chrRAM = make([]byte, 0x2000)
	}
	return c, nil
}

// MapperName identifies the cartridge's mapper for diagnostics.
func (c *Cartridge) MapperName() string { return c.mapper.Name() }

// MirroringMode reports the nametable mirroring the PPU bus should use.
func (c *Cartridge) MirroringMode() uint8 { return c.rom.MirroringMode() }

// CPURead reads from the cartridge's PRG ROM window, addr in
// 0x8000-0xFFFF.
func (c *Cartridge) CPURead(addr uint16) uint8 {
	return c.rom.PRG()[c.mapper.PRGAddr(addr, c.rom.PRGBanks())]
}

// CPUWrite routes a write in 0x8000-0xFFFF to the mapper, which may
// use it to select banks. PRG ROM itself is never mutated.
func (c *Cartridge) CPUWrite(addr uint16, val uint8) {
	c.mapper.WritePRG(addr, val)
}

// PPURead reads from the cartridge's CHR ROM or CHR RAM, addr in
// 0x0000-0x1FFF.
func (c *Cartridge) PPURead(addr uint16) uint8 {
	off := c.mapper.CHRAddr(addr)
	if c.chrRAM != nil {
		return c.chrRAM[off]
	}
	return c.rom.CHR()[off]
}

// PPUWrite writes to CHR RAM. Writes to CHR ROM cartridges are
// ignored; real NROM boards never wire a CHR ROM write line.
func (c *Cartridge) PPUWrite(addr uint16, val uint8) {
	if c.chrRAM == nil {
		return
	}
	c.chrRAM[c.mapper.CHRAddr(addr)] = val
}
