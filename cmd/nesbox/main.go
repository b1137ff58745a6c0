// Command nesbox loads an iNES ROM and runs it, presenting the PPU's
// output in an ebiten window and feeding it the keyboard as NES
// controller 1. Controller 2 is wired to the bus but not polled.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/corwinlane/nesbox/bus"
	"github.com/corwinlane/nesbox/cartridge"
	"github.com/corwinlane/nesbox/ines"
	"github.com/corwinlane/nesbox/input"
	"github.com/hajimehoshi/ebiten/v2"
)

var (
	romPath = flag.String("rom", "", "path to an iNES (.nes) ROM file")
	trace   = flag.Bool("trace", false, "log a Nintendulator-style CPU trace line to stderr on every master clock (three lines per CPU cycle, not one per instruction)")
)

// game adapts a *bus.Bus to the ebiten.Game interface. The emulation
// itself runs on its own goroutine via Run; Update and Draw only ever
// touch state ConsumeFrame/the controllers make safe to read from the
// main goroutine.
type game struct {
	bus    *bus.Bus
	screen *ebiten.Image
}

func newGame(b *bus.Bus) *game {
	w, h := b.PPU().GetResolution()
	return &game{bus: b, screen: ebiten.NewImage(w, h)}
}

func (g *game) Update() error {
	input.Poll(g.bus.Controller1(), input.DefaultBindings)
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	if pixels, ok := g.bus.PPU().ConsumeFrame(); ok {
		buf := make([]byte, 0, len(pixels)*4)
		for _, px := range pixels {
			buf = append(buf, px[0], px[1], px[2], px[3])
		}
		g.screen.WritePixels(buf)
	}
	screen.DrawImage(g.screen, nil)
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.bus.PPU().GetResolution()
}

// run clocks the bus forever on its own goroutine, independent of
// ebiten's display-refresh-driven Update calls.
func run(ctx context.Context, b *bus.Bus) {
	for {
		select {
		case <-ctx.Done():
			return
		default:
			b.Clock()
			if *trace {
				fmt.Fprintln(os.Stderr, b.CPU().Trace())
			}
		}
	}
}

func main() {
	flag.Parse()
	path := *romPath
	if path == "" {
		path = flag.Arg(0)
	}
	if path == "" {
		log.Fatal("nesbox: a ROM path is required (positional argument or -rom)")
	}

	rom, err := ines.Load(path)
	if err != nil {
		log.Fatalf("nesbox: %v", err)
	}

	cart, err := cartridge.New(rom)
	if err != nil {
		log.Fatalf("nesbox: %v", err)
	}

	b := bus.New(cart)
	g := newGame(b)

	w, h := b.PPU().GetResolution()
	ebiten.SetWindowSize(w*3, h*3)
	ebiten.SetWindowTitle("nesbox - " + path)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go run(ctx, b)

	if err := ebiten.RunGame(g); err != nil {
		log.Fatalf("nesbox: %v", err)
	}
}
