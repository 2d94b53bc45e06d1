// Package config provides YAML-based configuration loading and difficulty
// presets for the maze explorer.
package config

// Maze3DConfig contains all configuration for the maze explorer.
type Maze3DConfig struct {
	Difficulty DifficultyPreset `yaml:"difficulty"`
	Levels     []LevelSize      `yaml:"levels"`
	Player     PlayerConfig     `yaml:"player"`
	Input      InputConfig      `yaml:"input"`
	Render     RenderConfig     `yaml:"render"`
	Audio      AudioConfig      `yaml:"audio"`
	Logging    LoggingConfig    `yaml:"logging"`
	Storage    StorageConfig    `yaml:"storage"`
	Server     ServerConfig     `yaml:"server"`
}

// LevelSize is one level's maze size in logical cells.
type LevelSize struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// PlayerConfig defines the player's body and movement.
type PlayerConfig struct {
	Radius     float64 `yaml:"radius"`     // Collision circle, grid units
	MoveSpeed  float64 `yaml:"move_speed"` // Grid units per tick
	RotSpeed   float64 `yaml:"rot_speed"`  // Radians per tick
	StartX     float64 `yaml:"start_x"`
	StartY     float64 `yaml:"start_y"`
	StartAngle float64 `yaml:"start_angle"`
}

// InputConfig defines input handling.
type InputConfig struct {
	DeadZone float64 `yaml:"dead_zone"` // Analog stick magnitude ignored below this
	// Terminals report key repeats, not releases; a key counts as held for
	// this many ticks after its last event.
	HoldTicks int `yaml:"hold_ticks"`
}

// RenderConfig defines view and frame pacing parameters.
type RenderConfig struct {
	FOV         float64 `yaml:"fov"`       // Horizontal field of view, degrees
	MaxDepth    float64 `yaml:"max_depth"` // Draw distance, grid units
	TickRate    int     `yaml:"tick_rate"`
	WindowScale int     `yaml:"window_scale"` // Desktop window size as a multiple of 480x272
}

// AudioConfig defines the audio output.
type AudioConfig struct {
	Muted      bool    `yaml:"muted"`
	Volume     float64 `yaml:"volume"` // 0.0 to 1.0
	SampleRate int     `yaml:"sample_rate"`
}

// LoggingConfig defines log level and the optional rotating log file.
type LoggingConfig struct {
	Level      string `yaml:"level"`
	File       string `yaml:"file"`
	MaxSizeMB  int    `yaml:"max_size_mb"`
	MaxBackups int    `yaml:"max_backups"`
	MaxAgeDays int    `yaml:"max_age_days"`
}

// StorageConfig defines where run history is kept.
type StorageConfig struct {
	Path string `yaml:"path"`
}

// ServerConfig defines the SSH listener.
type ServerConfig struct {
	Host    string `yaml:"host"`
	Port    int    `yaml:"port"`
	HostKey string `yaml:"host_key"`
}

// DifficultyPreset represents a named level table.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyCustom DifficultyPreset = "custom" // Keep the levels from the file
)
