package maze3d

import (
	"fmt"

	"github.com/vovakirdan/maze3d/internal/core"
	"github.com/vovakirdan/maze3d/internal/games/maze3d/maze"
	"github.com/vovakirdan/maze3d/internal/games/maze3d/raycast"
)

// Overlay primitives are laid out on a fixed logical canvas; frontends
// scale it to their own resolution.
const (
	CanvasW = 480
	CanvasH = 272
)

// PrimitiveKind is the shape of an overlay primitive.
type PrimitiveKind int

const (
	PrimRect     PrimitiveKind = iota // Full backdrop or translucent shade
	PrimBar                           // Solid bar, optionally labeled
	PrimTriangle                      // Right-pointing triangle inside Rect
)

// Tone is a semantic color. Each frontend maps tones to its own palette.
type Tone int

const (
	ToneMenuBackdrop Tone = iota
	ToneShade
	ToneCompleteBackdrop
	ToneWinBackdrop
	ToneWhite
	ToneSelected
	ToneIdle
	ToneArrow
	ToneGreen
	ToneRed
	ToneYellow
	ToneGold
	TonePrompt
)

// Primitive is one 2D overlay element.
type Primitive struct {
	Kind  PrimitiveKind
	Rect  core.RectF
	Tone  Tone
	Label string
}

// Frame is everything a renderer needs for one frame. The game performs no
// drawing itself.
type Frame struct {
	State    State
	Level    int
	Levels   int
	Player   Player
	Camera   raycast.Camera // Player pose plus the configured view
	Grid     *maze.Grid
	Segments []maze.WallSegment
	Scene    bool // World geometry should be drawn under the overlay
	Overlay  []Primitive
	FPS      int
}

func bar(x, y, w, h float64, t Tone, label string) Primitive {
	return Primitive{Kind: PrimBar, Rect: core.RectF{X: x, Y: y, W: w, H: h}, Tone: t, Label: label}
}

func triangle(x, y, size float64, t Tone) Primitive {
	return Primitive{Kind: PrimTriangle, Rect: core.RectF{X: x, Y: y, W: size, H: size}, Tone: t}
}

func backdrop(t Tone) Primitive {
	return Primitive{Kind: PrimRect, Rect: core.RectF{W: CanvasW, H: CanvasH}, Tone: t}
}

// Frame builds the render request for the current state.
func (g *Game) Frame() Frame {
	f := Frame{
		State:  g.state,
		Level:  g.levelIndex(),
		Levels: g.levelCount(),
		Player: g.player,
		Camera: raycast.Camera{
			X:        g.player.X,
			Y:        g.player.Y,
			Angle:    g.player.Angle,
			FOV:      g.fov,
			MaxDepth: g.maxDepth,
		},
		FPS: g.fps,
	}
	if g.level != nil {
		f.Grid = g.level.Maze.Grid
		f.Segments = g.level.Maze.Segments
	}

	switch g.state {
	case StateGame:
		f.Scene = f.Grid != nil
		f.Overlay = g.hudOverlay()
	case StatePause:
		f.Scene = f.Grid != nil
		f.Overlay = selectionOverlay(backdrop(ToneShade), bar(180, 60, 120, 25, ToneWhite, "PAUSED"),
			120, g.pauseSel, PauseLabels)
	case StateMenu:
		f.Overlay = selectionOverlay(backdrop(ToneMenuBackdrop), bar(140, 40, 200, 30, ToneWhite, "MAZE 3D"),
			110, g.menuSel, MenuLabels)
	case StateLevelComplete:
		f.Overlay = g.levelCompleteOverlay()
	case StateWin:
		f.Overlay = g.winOverlay()
	}
	return f
}

func (g *Game) hudOverlay() []Primitive {
	var out []Primitive
	for i := 0; i <= g.levelIndex(); i++ {
		out = append(out, bar(float64(10+i*25), 10, 20, 15, ToneWhite, ""))
	}

	fpsTone := ToneRed
	switch {
	case g.fps >= 50:
		fpsTone = ToneGreen
	case g.fps >= 30:
		fpsTone = ToneYellow
	}
	w := 50 * float64(min(g.fps, 60)) / 60
	out = append(out,
		bar(CanvasW-60, 10, w, 10, fpsTone, fmt.Sprintf("%d fps", g.fps)),
		triangle(10, CanvasH-30, 20, ToneGreen),
	)
	return out
}

// selectionOverlay lays out a two-item menu whose item bars start at itemY.
func selectionOverlay(bg, title Primitive, itemY float64, sel int, labels [menuItems]string) []Primitive {
	out := []Primitive{bg, title}
	for i := range menuItems {
		y := itemY + float64(i*40)
		tone := ToneIdle
		if i == sel {
			tone = ToneSelected
		}
		out = append(out, bar(180, y, 120, 25, tone, labels[i]))
		if i == sel {
			out = append(out, triangle(155, y+2, 20, ToneArrow))
		}
	}
	out = append(out,
		bar(185, itemY+5, 30, 15, ToneGreen, ""),
		bar(185, itemY+45, 30, 15, ToneRed, ""),
	)
	return out
}

func (g *Game) levelCompleteOverlay() []Primitive {
	out := []Primitive{backdrop(ToneCompleteBackdrop)}
	for i := 0; i <= g.levelIndex(); i++ {
		out = append(out, bar(float64(160+i*60), 80, 50, 40, ToneGreen, fmt.Sprintf("%d", i+1)))
	}
	return append(out,
		bar(200, 150, 80, 8, ToneWhite, fmt.Sprintf("LEVEL %d COMPLETE", g.levelIndex()+1)),
		bar(220, 190, 40, 30, TonePrompt, "OK"),
	)
}

func (g *Game) winOverlay() []Primitive {
	out := []Primitive{
		backdrop(ToneWinBackdrop),
		triangle(200, 40, 80, ToneGold),
	}
	for i := range g.levelCount() {
		out = append(out, bar(float64(140+i*70), 130, 60, 30, ToneGreen, fmt.Sprintf("%d", i+1)))
	}
	return append(out, bar(220, 200, 40, 30, TonePrompt, "OK"))
}
