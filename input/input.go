// Package input polls ebiten's keyboard state and reports it into a
// controller.Controller. It's the only package in nesbox that knows
// both about ebiten and about the controller package, so that
// controller itself stays host-independent and testable without a
// display.
package input

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/corwinlane/nesbox/controller"
)

// Binding maps a controller button to the ebiten key that drives it.
type Binding struct {
	Button controller.Button
	Key    ebiten.Key
}

// DefaultBindings is the standard single-keyboard layout.
var DefaultBindings = []Binding{
	{controller.A, ebiten.KeyZ},
	{controller.B, ebiten.KeyX},
	{controller.Select, ebiten.KeyShiftRight},
	{controller.Start, ebiten.KeyEnter},
	{controller.Up, ebiten.KeyUp},
	{controller.Down, ebiten.KeyDown},
	{controller.Left, ebiten.KeyLeft},
	{controller.Right, ebiten.KeyRight},
}

// Poll samples the current keyboard state for each binding and
// applies it to c. Call it once per ebiten Update.
func Poll(c *controller.Controller, bindings []Binding) {
	for _, b := range bindings {
		c.SetButton(b.Button, ebiten.IsKeyPressed(b.Key))
	}
}
