//go:build cgo

package window

import (
	"errors"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"github.com/vovakirdan/maze3d/internal/core"
	"github.com/vovakirdan/maze3d/internal/games/maze3d"
	"github.com/vovakirdan/maze3d/internal/storage"
)

// Config holds window settings.
type Config struct {
	Title    string
	Scale    int // Window size as a multiple of the canvas
	TickRate int
	Recorder *storage.Recorder
	Logger   *log.Logger
}

// Run opens a window and plays game until it quits or the window closes.
// It blocks and must be called from the main goroutine.
func Run(game *maze3d.Game, cfg Config) error {
	if cfg.Scale <= 0 {
		cfg.Scale = 2
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = 60
	}
	if cfg.Title == "" {
		cfg.Title = game.Title()
	}
	if cfg.Logger == nil {
		cfg.Logger = log.New(io.Discard)
	}

	h := &hostGame{
		game:   game,
		cfg:    cfg,
		raster: NewRasterizer(maze3d.CanvasW, maze3d.CanvasH),
		fps:    &core.FPSCounter{},
	}

	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(maze3d.CanvasW*cfg.Scale, maze3d.CanvasH*cfg.Scale)
	ebiten.SetTPS(cfg.TickRate)

	err := ebiten.RunGame(h)
	if cfg.Recorder != nil {
		cfg.Recorder.Abandon()
	}
	if err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return game.Err()
}

type hostGame struct {
	game   *maze3d.Game
	cfg    Config
	raster *Rasterizer
	fbImg  *ebiten.Image
	input  core.InputFrame
	fps    *core.FPSCounter
	pads   []ebiten.GamepadID
}

func (h *hostGame) Update() error {
	h.input = h.input.Next(h.poll())
	result := h.game.Step(h.input)

	for _, ev := range result.Events {
		h.cfg.Logger.Debug("game event", "kind", ev.Kind, "level", ev.Level+1, "ticks", ev.Ticks)
	}
	if h.cfg.Recorder != nil {
		h.cfg.Recorder.Record(result.State, result.Events)
	}
	if result.State.Quit {
		return ebiten.Termination
	}
	return nil
}

// poll reads the keyboard and every connected standard-layout gamepad.
func (h *hostGame) poll() core.InputState {
	kb := core.InputState{
		Up:       anyKey(ebiten.KeyArrowUp, ebiten.KeyW),
		Down:     anyKey(ebiten.KeyArrowDown, ebiten.KeyS),
		Left:     anyKey(ebiten.KeyArrowLeft, ebiten.KeyA),
		Right:    anyKey(ebiten.KeyArrowRight, ebiten.KeyD),
		LTrigger: anyKey(ebiten.KeyQ, ebiten.KeyComma),
		RTrigger: anyKey(ebiten.KeyE, ebiten.KeyPeriod),
		Confirm:  anyKey(ebiten.KeyEnter, ebiten.KeySpace),
		Start:    anyKey(ebiten.KeyEscape, ebiten.KeyP),
	}

	h.pads = ebiten.AppendGamepadIDs(h.pads[:0])
	readings := make([]PadReading, 0, len(h.pads))
	for _, id := range h.pads {
		if !ebiten.IsStandardGamepadLayoutAvailable(id) {
			continue
		}
		pressed := func(b ebiten.StandardGamepadButton) bool {
			return ebiten.IsStandardGamepadButtonPressed(id, b)
		}
		readings = append(readings, PadReading{
			Buttons: core.InputState{
				Up:       pressed(ebiten.StandardGamepadButtonLeftTop),
				Down:     pressed(ebiten.StandardGamepadButtonLeftBottom),
				Left:     pressed(ebiten.StandardGamepadButtonLeftLeft),
				Right:    pressed(ebiten.StandardGamepadButtonLeftRight),
				LTrigger: pressed(ebiten.StandardGamepadButtonFrontTopLeft),
				RTrigger: pressed(ebiten.StandardGamepadButtonFrontTopRight),
				Confirm:  pressed(ebiten.StandardGamepadButtonRightBottom),
				Start:    pressed(ebiten.StandardGamepadButtonCenterRight),
			},
			StickX: ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickHorizontal),
			StickY: ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickVertical),
		})
	}
	return Merge(kb, readings...)
}

func anyKey(keys ...ebiten.Key) bool {
	for _, k := range keys {
		if ebiten.IsKeyPressed(k) {
			return true
		}
	}
	return false
}

func (h *hostGame) Draw(screen *ebiten.Image) {
	h.game.SetFPS(h.fps.Frame(time.Now()))

	labels := h.raster.Draw(h.game.Frame())
	img := h.raster.Image()
	if h.fbImg == nil {
		h.fbImg = ebiten.NewImage(img.Bounds().Dx(), img.Bounds().Dy())
	}
	h.fbImg.WritePixels(img.Pix)
	screen.DrawImage(h.fbImg, nil)

	for _, l := range labels {
		ebitenutil.DebugPrintAt(screen, l.Text, l.X, l.Y)
	}
}

func (h *hostGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return maze3d.CanvasW, maze3d.CanvasH
}
