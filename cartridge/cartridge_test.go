package cartridge

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/corwinlane/nesbox/ines"
)

func newTestMapper0() *mapper0 { return &mapper0{} }

// buildTestROM writes a minimal iNES image with the given PRG/CHR bank
// counts to a temp file and loads it, for tests that need a real
// *ines.ROM without wiring up a whole test ROM fixture.
func buildTestROM(prgBanks, chrBanks uint8) *ines.ROM {
	return buildTestROMWithMapper(prgBanks, chrBanks, 0)
}

func buildTestROMWithMapper(prgBanks, chrBanks uint8, mapperNum uint8) *ines.ROM {
	flags6 := (mapperNum & 0x0F) << 4
	flags7 := mapperNum & 0xF0
	header := []byte{'N', 'E', 'S', 0x1a, prgBanks, chrBanks, flags6, flags7, 0, 0, 0, 0, 0, 0, 0, 0}
	buf := append([]byte{}, header...)
	buf = append(buf, make([]byte, 16384*int(prgBanks))...)
	buf = append(buf, make([]byte, 8192*int(chrBanks))...)

	dir, err := os.MkdirTemp("", "nesbox-cartridge-test")
	if err != nil {
		panic(err)
	}
	path := filepath.Join(dir, "test.nes")
	if err := os.WriteFile(path, buf, 0o644); err != nil {
		panic(err)
	}

	rom, err := ines.Load(path)
	if err != nil {
		panic(err)
	}
	return rom
}

func TestMapper0PRGMirrorOneBank(t *testing.T) {
	m := newTestMapper0()
	for i := uint16(0); i < 0x4000; i++ {
		a := m.PRGAddr(0x8000+i, 1)
		b := m.PRGAddr(0xC000+i, 1)
		if a != b {
			t.Fatalf("offset %#x: PRGAddr(0x8000+i)=%d != PRGAddr(0xC000+i)=%d", i, a, b)
		}
		if a != int(i) {
			t.Fatalf("offset %#x: PRGAddr = %d, want %d", i, a, i)
		}
	}
}

func TestMapper0PRGTwoBanksDistinct(t *testing.T) {
	m := newTestMapper0()
	lo := m.PRGAddr(0x8000, 2)
	hi := m.PRGAddr(0xC000, 2)
	if lo == hi {
		t.Fatalf("two-bank cartridge should not mirror 0x8000 and 0xC000, both mapped to %d", lo)
	}
	if lo != 0 || hi != 0x4000 {
		t.Errorf("PRGAddr(0x8000,2)=%d, PRGAddr(0xC000,2)=%d, want 0, 0x4000", lo, hi)
	}
}

func TestMapper0CHRAddr(t *testing.T) {
	m := newTestMapper0()
	cases := []struct {
		addr uint16
		want int
	}{
		{0x0000, 0x0000},
		{0x1FFF, 0x1FFF},
		{0x2000, 0x0000}, // wraps: only 13 bits matter
	}
	for _, tc := range cases {
		if got := m.CHRAddr(tc.addr); got != tc.want {
			t.Errorf("CHRAddr(%#x) = %#x, want %#x", tc.addr, got, tc.want)
		}
	}
}

func TestCartridgeCPUReadMirrorsOneBank(t *testing.T) {
	rom := buildTestROM(1, 1)
	c, err := New(rom)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	for i := uint16(0); i < 0x4000; i++ {
		if got, want := c.CPURead(0x8000+i), c.CPURead(0xC000+i); got != want {
			t.Fatalf("offset %#x: CPURead(0x8000+i)=%d, CPURead(0xC000+i)=%d", i, got, want)
		}
	}
}

func TestCartridgeCHRRAMFallback(t *testing.T) {
	rom := buildTestROM(1, 0)
	c, err := New(rom)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	c.PPUWrite(0x0010, 0x42)
	if got := c.PPURead(0x0010); got != 0x42 {
		t.Errorf("PPURead(0x0010) = %#x, want 0x42", got)
	}
}

func TestCartridgeUnknownMapper(t *testing.T) {
	rom := buildTestROMWithMapper(1, 1, 99)
	if _, err := New(rom); err == nil {
		t.Errorf("expected an error constructing a cartridge with an unsupported mapper")
	}
}
