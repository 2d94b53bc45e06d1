package main

import (
	"fmt"
	"io"
	"math"
	"os"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/maze3d/internal/config"
	"github.com/vovakirdan/maze3d/internal/games/maze3d"
	"github.com/vovakirdan/maze3d/internal/logger"
)

// overrides are the command-line values that take precedence over the
// config file. Zero values leave the file's setting alone.
type overrides struct {
	FPS        int
	DBPath     string
	Difficulty string
	LogLevel   string
	LogFile    string
}

func flagOverrides() overrides {
	return overrides{
		FPS:        flagFPS,
		DBPath:     flagDBPath,
		Difficulty: flagDifficulty,
		LogLevel:   flagLogLevel,
		LogFile:    flagLogFile,
	}
}

// loadConfig reads the config file and applies command-line overrides.
func loadConfig() (config.Maze3DConfig, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}
	if err := applyOverrides(&cfg, flagOverrides()); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func applyOverrides(cfg *config.Maze3DConfig, o overrides) error {
	if o.Difficulty != "" {
		preset, err := config.ParsePreset(o.Difficulty)
		if err != nil {
			return err
		}
		config.ApplyPreset(cfg, preset)
	}
	if o.FPS > 0 {
		cfg.Render.TickRate = o.FPS
	}
	if o.DBPath != "" {
		cfg.Storage.Path = o.DBPath
	}
	if o.LogLevel != "" {
		cfg.Logging.Level = o.LogLevel
	}
	if o.LogFile != "" {
		cfg.Logging.File = o.LogFile
	}
	return cfg.Validate()
}

// newLogger builds the logger for cfg. Console output goes to console, or
// nowhere when console is nil and no file is configured.
func newLogger(cfg config.Maze3DConfig, console io.Writer) (*log.Logger, io.Closer, error) {
	if console == nil && cfg.Logging.File == "" {
		console = io.Discard
	}
	return logger.New(logger.Config{
		Level:      cfg.Logging.Level,
		Prefix:     "maze3d",
		File:       cfg.Logging.File,
		MaxSizeMB:  cfg.Logging.MaxSizeMB,
		MaxBackups: cfg.Logging.MaxBackups,
		MaxAgeDays: cfg.Logging.MaxAgeDays,
		Console:    console,
	})
}

// levelTable converts configured sizes to the game's level table.
func levelTable(sizes []config.LevelSize) []maze3d.LevelConfig {
	out := make([]maze3d.LevelConfig, len(sizes))
	for i, s := range sizes {
		out[i] = maze3d.LevelConfig{Width: s.Width, Height: s.Height}
	}
	return out
}

// gameOptions maps the config onto game options.
func gameOptions(cfg config.Maze3DConfig, l *log.Logger) []maze3d.Option {
	return []maze3d.Option{
		maze3d.WithLogger(l),
		maze3d.WithLevels(levelTable(cfg.Levels)),
		maze3d.WithRadius(cfg.Player.Radius),
		maze3d.WithTuning(maze3d.Tuning{
			MoveSpeed: cfg.Player.MoveSpeed,
			RotSpeed:  cfg.Player.RotSpeed,
			DeadZone:  cfg.Input.DeadZone,
		}),
		maze3d.WithView(cfg.Render.FOV*math.Pi/180, cfg.Render.MaxDepth),
		maze3d.WithLevelOptions(maze3d.WithStart(maze3d.Player{
			X:     cfg.Player.StartX,
			Y:     cfg.Player.StartY,
			Angle: cfg.Player.StartAngle,
		})),
	}
}

// exitf prints a formatted error to stderr and exits with status 1.
func exitf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}
