package ines

import (
	"bytes"
	"testing"
)

func buildROM(prgBanks, chrBanks uint8, trainer bool, flags6 uint8) []byte {
	var buf bytes.Buffer
	buf.Write([]byte{'N', 'E', 'S', 0x1a, prgBanks, chrBanks, flags6, 0, 0, 0, 0, 0, 0, 0, 0, 0})
	if trainer {
		buf.Write(make([]byte, trainerSize))
	}
	buf.Write(make([]byte, prgBlockSize*int(prgBanks)))
	buf.Write(make([]byte, chrBlockSize*int(chrBanks)))
	return buf.Bytes()
}

func TestParseSizesAndMirroring(t *testing.T) {
	raw := buildROM(2, 1, false, MIRRORING)
	rom, err := parse(bytes.NewReader(raw))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}

	if got := len(rom.PRG()); got != prgBlockSize*2 {
		t.Errorf("PRG length = %d, want %d", got, prgBlockSize*2)
	}
	if got := len(rom.CHR()); got != chrBlockSize {
		t.Errorf("CHR length = %d, want %d", got, chrBlockSize)
	}
	if got := rom.MirroringMode(); got != MIRROR_VERTICAL {
		t.Errorf("MirroringMode() = %d, want %d", got, MIRROR_VERTICAL)
	}
}

func TestParseWithTrainer(t *testing.T) {
	raw := buildROM(1, 1, true, TRAINER)
	rom, err := parse(bytes.NewReader(raw))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if got := len(rom.PRG()); got != prgBlockSize {
		t.Errorf("PRG length = %d, want %d", got, prgBlockSize)
	}
}

func TestParseTruncated(t *testing.T) {
	raw := buildROM(1, 1, false, 0)
	short := raw[:len(raw)-10]
	if _, err := parse(bytes.NewReader(short)); err == nil {
		t.Errorf("expected an error parsing a truncated ROM")
	}
}

func TestParseBadMagic(t *testing.T) {
	raw := buildROM(1, 1, false, 0)
	raw[0] = 'X'
	if _, err := parse(bytes.NewReader(raw)); err == nil {
		t.Errorf("expected ErrBadMagic for a corrupt header")
	}
}
