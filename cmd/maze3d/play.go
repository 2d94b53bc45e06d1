package main

import (
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/maze3d/internal/audio"
	"github.com/vovakirdan/maze3d/internal/config"
	"github.com/vovakirdan/maze3d/internal/core"
	"github.com/vovakirdan/maze3d/internal/games/maze3d"
	"github.com/vovakirdan/maze3d/internal/platform/tui"
	"github.com/vovakirdan/maze3d/internal/platform/window"
	"github.com/vovakirdan/maze3d/internal/storage"
)

var (
	flagWindow bool
	flagMute   bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play the maze",
	Long: `Start a run from the main menu.

Controls:
  W/S, Up/Down     - Move forward/back (menus: change selection)
  A/D, Left/Right  - Turn
  Q/E              - Strafe left/right
  Enter/Space      - Confirm
  P/Esc            - Pause / resume
  Ctrl+S           - Save a text screenshot (terminal)
  Ctrl+C           - Quit

In the window, a standard gamepad also works: d-pad, shoulders to strafe,
A to confirm, Start to pause, left stick to move and turn.

Examples:
  maze3d play
  maze3d play --window
  maze3d play --difficulty easy
  maze3d play --seed 42 --mute`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().BoolVar(&flagWindow, "window", false, "Open a desktop window instead of using the terminal")
	playCmd.Flags().BoolVar(&flagMute, "mute", false, "Disable sound")
}

func runPlay(_ *cobra.Command, _ []string) {
	cfg, err := loadConfig()
	if err != nil {
		exitf("%v", err)
	}
	if flagMute {
		cfg.Audio.Muted = true
	}

	// The terminal frontend owns stdout, so it only logs to a file.
	var console io.Writer
	if flagWindow {
		console = os.Stderr
	}
	logger, closer, err := newLogger(cfg, console)
	if err != nil {
		exitf("%v", err)
	}

	runErr := play(cfg, logger)
	closer.Close()
	if runErr != nil {
		exitf("%v", runErr)
	}
}

func play(cfg config.Maze3DConfig, logger *log.Logger) error {
	snd := newAudio(cfg, logger)
	defer snd.Close()

	store, err := storage.Open(cfg.Storage.Path)
	if err != nil {
		logger.Warn("could not open run database", "err", err)
		store = nil
	} else {
		defer store.Close()
	}
	rec := storage.NewRecorder(store, "local", string(cfg.Difficulty), logger)

	opts := append(gameOptions(cfg, logger), maze3d.WithAudio(snd))
	game := maze3d.New(opts...)
	game.Reset(core.RuntimeConfig{
		ScreenW:   maze3d.CanvasW,
		ScreenH:   maze3d.CanvasH,
		TickRate:  cfg.Render.TickRate,
		Seed:      flagSeed,
		FixedSeed: flagSeedSet,
	})

	logger.Info("starting", "difficulty", cfg.Difficulty, "levels", len(cfg.Levels), "window", flagWindow)

	if flagWindow {
		return window.Run(game, window.Config{
			Scale:    cfg.Render.WindowScale,
			TickRate: cfg.Render.TickRate,
			Recorder: rec,
			Logger:   logger,
		})
	}

	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width, height = w, h
	}
	return tui.Run(game, core.RuntimeConfig{
		ScreenW:   width,
		ScreenH:   height,
		TickRate:  cfg.Render.TickRate,
		Seed:      flagSeed,
		FixedSeed: flagSeedSet,
	}, tui.Options{
		Recorder:  rec,
		HoldTicks: cfg.Input.HoldTicks,
		Logger:    logger,
	})
}

// soundPlayer is the game's audio collaborator plus shutdown.
type soundPlayer interface {
	maze3d.Audio
	Close()
}

type silent struct{ maze3d.NopAudio }

func (silent) Close() {}

// newAudio opens the speaker, falling back to silence when muted or when no
// audio device is available.
func newAudio(cfg config.Maze3DConfig, logger *log.Logger) soundPlayer {
	if cfg.Audio.Muted {
		return silent{}
	}
	m := audio.New(cfg.Audio.SampleRate, cfg.Audio.Volume, false, logger)
	if err := m.Init(); err != nil {
		logger.Warn("audio unavailable, continuing without sound", "err", err)
		return silent{}
	}
	return m
}
