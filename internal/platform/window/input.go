package window

import (
	"math"

	"github.com/vovakirdan/maze3d/internal/core"
)

// PadReading is one gamepad's state in controller terms.
type PadReading struct {
	Buttons        core.InputState // Digital part only; stick fields ignored
	StickX, StickY float64
}

// Merge combines the keyboard with any number of gamepads. A button is held
// if any device holds it; the stick comes from the pad deflected furthest.
func Merge(kb core.InputState, pads ...PadReading) core.InputState {
	out := kb
	best := math.Hypot(kb.StickX, kb.StickY)
	for _, p := range pads {
		for _, b := range core.Buttons {
			if p.Buttons.Button(b) {
				out.SetButton(b, true)
			}
		}
		if m := math.Hypot(p.StickX, p.StickY); m > best {
			best = m
			out.StickX = core.ClampF(p.StickX, -1, 1)
			out.StickY = core.ClampF(p.StickY, -1, 1)
		}
	}
	return out
}
