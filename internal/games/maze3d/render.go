package maze3d

import (
	"math"

	"github.com/vovakirdan/maze3d/internal/core"
	"github.com/vovakirdan/maze3d/internal/games/maze3d/raycast"
)

// Minimum screen size for the character renderer.
const (
	MinScreenW = 40
	MinScreenH = 12
)

// Terminal cells are roughly twice as tall as they are wide.
const cellAspect = 0.5

var (
	wallRunes  = []rune{'█', '▓', '▒', '░'}
	brickRamp  = []core.Color{core.ColorBrick, core.ColorBrick, core.ColorBrickDark, core.ColorBrickDark}
	sideRamp   = []core.Color{core.ColorBrickDark, core.ColorBrickDark, core.ColorGrayDark, core.ColorGrayDarker}
	exitRamp   = []core.Color{core.ColorBrightGreen, core.ColorGreen, core.ColorGreen, core.ColorGreen}
	floorRunes = []rune{'#', '=', '-', '.'}
)

// toneColors maps overlay tones onto the terminal palette.
var toneColors = map[Tone]core.Color{
	ToneMenuBackdrop:     core.ColorBlue,
	ToneShade:            core.ColorGrayDarker,
	ToneCompleteBackdrop: core.ColorGreen,
	ToneWinBackdrop:      core.ColorMagenta,
	ToneWhite:            core.ColorBrightWhite,
	ToneSelected:         core.ColorBrightYellow,
	ToneIdle:             core.ColorGray,
	ToneArrow:            core.ColorYellow,
	ToneGreen:            core.ColorBrightGreen,
	ToneRed:              core.ColorBrightRed,
	ToneYellow:           core.ColorYellow,
	ToneGold:             core.ColorOrange,
	TonePrompt:           core.ColorCyan,
}

// Render draws the current frame into a character screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if dst.Width() < MinScreenW || dst.Height() < MinScreenH {
		dst.DrawTextCentered(dst.Height()/2, "Terminal too small", core.ColorYellow)
		return
	}

	f := g.Frame()
	if f.Scene {
		g.renderScene(dst, f)
	}
	for _, p := range f.Overlay {
		drawPrimitive(dst, p)
	}
}

func (g *Game) renderScene(dst *core.Screen, f Frame) {
	w, h := dst.Width(), dst.Height()
	hits := raycast.Cast(f.Segments, f.Camera, w)
	proj := raycast.ProjectionDistance(w, f.Camera.FOV) * cellAspect
	horizon := h / 2

	for y := horizon + 1; y < h; y++ {
		t := float64(y-horizon) / float64(h-horizon)
		r := floorRunes[len(floorRunes)-1-min(len(floorRunes)-1, int(t*float64(len(floorRunes))))]
		for x := range w {
			dst.SetColored(x, y, r, core.ColorGrayDarker)
		}
	}

	for x, hit := range hits {
		if !hit.OK {
			continue
		}
		lineH := int(proj / math.Max(hit.Dist, 0.05))
		top := max(0, horizon-lineH/2)
		bottom := min(h-1, horizon+lineH/2)

		depth := hit.Dist / f.Camera.MaxDepth
		r := wallRunes[min(len(wallRunes)-1, int(depth*float64(len(wallRunes))))]
		ramp := brickRamp
		switch {
		case hit.IsExit:
			ramp = exitRamp
		case hit.Side:
			ramp = sideRamp
		}
		dst.DrawVLine(x, top, bottom-top+1, r, core.Ramp(ramp, depth))
	}
}

func drawPrimitive(dst *core.Screen, p Primitive) {
	r := p.Rect.Scale(CanvasW, CanvasH, dst.Width(), dst.Height())
	c := toneColors[p.Tone]

	switch p.Kind {
	case PrimRect:
		if p.Tone == ToneShade {
			shade(dst)
			return
		}
		dst.Clear()
		dst.DrawBox(r, c)
	case PrimBar:
		if p.Label == "" {
			dst.DrawRect(r, '█', c)
			return
		}
		dst.DrawRect(r, '░', c)
		label := []rune(p.Label)
		x := r.X + (r.W-len(label))/2
		dst.DrawText(max(0, x), r.Y+r.H/2, p.Label, core.ColorBrightWhite)
	case PrimTriangle:
		if r.W <= 1 || r.H <= 1 {
			dst.SetColored(r.X, r.Y, '▶', c)
			return
		}
		for row := range r.H {
			// Widest at the vertical middle, tapering to the tips.
			mid := math.Abs(2*(float64(row)+0.5)/float64(r.H) - 1)
			span := max(1, int(math.Round((1-mid)*float64(r.W))))
			dst.DrawRect(core.NewRect(r.X, r.Y+row, span, 1), '█', c)
		}
	}
}

// shade dims everything already drawn.
func shade(dst *core.Screen) {
	for y := range dst.Height() {
		for x := range dst.Width() {
			cell := dst.GetCell(x, y)
			dst.SetColored(x, y, cell.Rune, core.ColorGrayDarker)
		}
	}
}
