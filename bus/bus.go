// Package bus implements the NES CPU bus: RAM mirroring, the PPU
// register window, OAM DMA, controller I/O, and the cartridge PRG
// window, plus the master-clock driver that ticks the PPU and CPU in
// the real console's 3:1 ratio.
//
// https://www.nesdev.org/wiki/CPU_memory_map
package bus

import (
	"github.com/corwinlane/nesbox/cartridge"
	"github.com/corwinlane/nesbox/controller"
	"github.com/corwinlane/nesbox/cpu"
	"github.com/corwinlane/nesbox/ppu"
)

const (
	ramSize         = 0x0800
	ramMirrorEnd    = 0x1FFF
	ppuRegMirrorEnd = 0x3FFF
	oamDMA          = 0x4014
	controller1     = 0x4016
	controller2     = 0x4017
	ioRegEnd        = 0x4020
	cartStart       = 0x8000
)

// Bus wires a CPU, PPU, cartridge and two controllers together into a
// single NES. Callers drive it one master (PPU) clock at a time with
// Clock; the CPU is ticked every third master clock, matching NTSC
// timing.
type Bus struct {
	cpu  *cpu.CPU
	ppu  *ppu.PPU
	cart *cartridge.Cartridge
	pad1 *controller.Controller
	pad2 *controller.Controller

	ram [ramSize]uint8

	ticks uint64

	lastBusValue uint8 // open bus: last value driven onto the CPU bus

	dmaActive    bool
	dmaPage      uint8
	dmaAddrLo    uint16
	dmaBuffer    uint8
	dmaReadNext  bool
	dmaDummyLeft uint8
}

// New builds a Bus around cart, with its own CPU, PPU, and a pair of
// unplugged controllers ready for Controller1/Controller2 to wire to
// input.
func New(cart *cartridge.Cartridge) *Bus {
	b := &Bus{
		cart: cart,
		pad1: &controller.Controller{},
		pad2: &controller.Controller{},
	}
	b.ppu = ppu.New(cart)
	b.cpu = cpu.New(b)
	return b
}

func (b *Bus) CPU() *cpu.CPU                       { return b.cpu }
func (b *Bus) PPU() *ppu.PPU                       { return b.ppu }
func (b *Bus) Controller1() *controller.Controller { return b.pad1 }
func (b *Bus) Controller2() *controller.Controller { return b.pad2 }

// Clock advances the console by one master clock: the PPU every call,
// the CPU every third (or, while an OAM DMA transfer is in flight, a
// DMA step instead of a CPU instruction step). PollNMI is checked
// every master clock so a /NMI line raised mid-dot still reaches the
// CPU without an extra full CPU cycle of delay.
func (b *Bus) Clock() {
	b.ppu.Clock()
	if b.ppu.PollNMI() {
		b.cpu.TriggerNMI()
	}

	if b.ticks%3 == 0 {
		if b.dmaActive {
			b.stepDMA()
		} else {
			b.cpu.Clock()
		}
	}
	b.ticks++
}

func (b *Bus) Read(addr uint16) uint8 {
	var v uint8
	switch {
	case addr <= ramMirrorEnd:
		v = b.ram[addr&0x07FF]
	case addr <= ppuRegMirrorEnd:
		v = b.ppu.ReadReg(0x2000 + addr&0x0007)
	case addr == controller1:
		v = b.pad1.Read()
	case addr == controller2:
		v = b.pad2.Read()
	case addr < ioRegEnd:
		v = b.lastBusValue // unimplemented APU/IO register: open bus
	case addr < cartStart:
		v = b.lastBusValue // no PRG-RAM/SRAM (see spec Non-goals)
	default:
		v = b.cart.CPURead(addr)
	}
	b.lastBusValue = v
	return v
}

// Peek reads addr without any of Read's side effects: no PPUDATA
// buffer drain, no controller shift-register advance, no update of the
// open-bus value. Only RAM and the cartridge PRG window are read; for
// the PPU registers, controllers and every other address it returns
// the last value driven onto the bus. The CPU's Trace and
// DisassembleAt do not use it; they read through Read.
func (b *Bus) Peek(addr uint16) uint8 {
	switch {
	case addr <= ramMirrorEnd:
		return b.ram[addr&0x07FF]
	case addr >= cartStart:
		return b.cart.CPURead(addr)
	default:
		return b.lastBusValue
	}
}

func (b *Bus) Write(addr uint16, val uint8) {
	b.lastBusValue = val
	switch {
	case addr <= ramMirrorEnd:
		b.ram[addr&0x07FF] = val
	case addr <= ppuRegMirrorEnd:
		b.ppu.WriteReg(0x2000+addr&0x0007, val)
	case addr == oamDMA:
		b.startDMA(val)
	case addr == controller1:
		// The real console only latches strobe writes through 0x4016;
		// 0x4017 is the APU frame counter, which nesbox doesn't
		// implement, so both pads share the 0x4016 strobe line.
		b.pad1.Write(val)
		b.pad2.Write(val)
	case addr < ioRegEnd:
		// unimplemented APU/IO register
	case addr < cartStart:
		// no PRG-RAM
	default:
		b.cart.CPUWrite(addr, val)
	}
}

// startDMA begins a 513/514-cycle OAM DMA transfer from page*0x100.
// The CPU is halted for its duration; Clock substitutes stepDMA for
// cpu.Clock while dmaActive is set.
func (b *Bus) startDMA(page uint8) {
	b.dmaActive = true
	b.dmaPage = page
	b.dmaAddrLo = 0
	b.dmaReadNext = true
	b.dmaDummyLeft = 1
	if b.cpu.Cycles()%2 == 1 {
		b.dmaDummyLeft = 2 // one extra cycle to align to an even CPU cycle
	}
}

func (b *Bus) stepDMA() {
	if b.dmaDummyLeft > 0 {
		b.dmaDummyLeft--
		return
	}
	if b.dmaReadNext {
		addr := (uint16(b.dmaPage) << 8) | b.dmaAddrLo
		b.dmaBuffer = b.Read(addr)
		b.dmaReadNext = false
		return
	}
	b.ppu.WriteOAM(b.dmaBuffer)
	b.dmaReadNext = true
	b.dmaAddrLo++
	if b.dmaAddrLo == 256 {
		b.dmaActive = false
	}
}
