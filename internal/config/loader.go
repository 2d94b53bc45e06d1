package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("config: invalid")

// MaxLevelDimension bounds level sizes accepted from configuration.
const MaxLevelDimension = 512

// Load loads the configuration.
// Search order: customPath -> ~/.maze3d/configs/maze3d.yaml -> ./configs/maze3d.yaml -> embedded default.
// Files are merged over the defaults, so a partial file only overrides what it names.
// The difficulty preset named in the file is applied and the result validated.
func Load(customPath string) (Maze3DConfig, error) {
	cfg, err := load(customPath)
	if err != nil {
		return cfg, err
	}
	preset, err := ParsePreset(string(cfg.Difficulty))
	if err != nil {
		return cfg, err
	}
	ApplyPreset(&cfg, preset)
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func load(customPath string) (Maze3DConfig, error) {
	cfg := DefaultMaze3DConfig()

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("maze3d.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if err := unmarshal(data, &cfg); err == nil {
				return cfg, nil
			}
			cfg = DefaultMaze3DConfig()
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", "maze3d.yaml")); err == nil {
		if err := unmarshal(data, &cfg); err == nil {
			return cfg, nil
		}
		cfg = DefaultMaze3DConfig()
	}

	// Use embedded default YAML
	if err := unmarshal(defaultMaze3DYAML, &cfg); err != nil {
		return DefaultMaze3DConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// unmarshal decodes YAML over cfg. A file that lists levels replaces the
// whole table, and without an explicit difficulty it is taken as custom.
func unmarshal(data []byte, cfg *Maze3DConfig) error {
	levels, preset := cfg.Levels, cfg.Difficulty
	cfg.Levels, cfg.Difficulty = nil, ""
	if err := yaml.Unmarshal(data, cfg); err != nil {
		cfg.Levels, cfg.Difficulty = levels, preset
		return err
	}

	switch {
	case cfg.Difficulty != "":
	case cfg.Levels != nil:
		cfg.Difficulty = DifficultyCustom
	default:
		cfg.Difficulty = preset
	}
	if cfg.Levels == nil {
		cfg.Levels = levels
	}
	return nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".maze3d", "configs", filename)
}

// Validate checks the configuration for values the game cannot run with.
func (c *Maze3DConfig) Validate() error {
	if len(c.Levels) == 0 {
		return fmt.Errorf("%w: at least one level is required", ErrInvalid)
	}
	for i, l := range c.Levels {
		if l.Width < 1 || l.Height < 1 {
			return fmt.Errorf("%w: level %d size %dx%d must be at least 1x1", ErrInvalid, i+1, l.Width, l.Height)
		}
		if l.Width > MaxLevelDimension || l.Height > MaxLevelDimension {
			return fmt.Errorf("%w: level %d size %dx%d exceeds %d", ErrInvalid, i+1, l.Width, l.Height, MaxLevelDimension)
		}
	}
	if c.Player.Radius <= 0 || c.Player.Radius >= 0.5 {
		return fmt.Errorf("%w: player radius %.3f must be in (0, 0.5)", ErrInvalid, c.Player.Radius)
	}
	if c.Player.MoveSpeed <= 0 || c.Player.RotSpeed <= 0 {
		return fmt.Errorf("%w: move and rotation speeds must be positive", ErrInvalid)
	}
	if c.Input.DeadZone < 0 || c.Input.DeadZone >= 1 {
		return fmt.Errorf("%w: dead zone %.2f must be in [0, 1)", ErrInvalid, c.Input.DeadZone)
	}
	if c.Render.FOV <= 0 || c.Render.FOV >= 180 {
		return fmt.Errorf("%w: fov %.1f must be in (0, 180)", ErrInvalid, c.Render.FOV)
	}
	if c.Render.TickRate <= 0 {
		return fmt.Errorf("%w: tick rate must be positive", ErrInvalid)
	}
	if c.Audio.Volume < 0 || c.Audio.Volume > 1 {
		return fmt.Errorf("%w: volume %.2f must be in [0, 1]", ErrInvalid, c.Audio.Volume)
	}
	return nil
}
