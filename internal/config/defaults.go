package config

import (
	_ "embed"
)

//go:embed defaults/maze3d.yaml
var defaultMaze3DYAML []byte

// DefaultMaze3DConfig returns the hardcoded default configuration.
func DefaultMaze3DConfig() Maze3DConfig {
	return Maze3DConfig{
		Difficulty: DifficultyNormal,
		Levels:     PresetLevels(DifficultyNormal),
		Player: PlayerConfig{
			Radius:     0.25,
			MoveSpeed:  0.08,
			RotSpeed:   0.04,
			StartX:     1.5,
			StartY:     1.5,
			StartAngle: 0,
		},
		Input: InputConfig{
			DeadZone:  0.2,
			HoldTicks: 36,
		},
		Render: RenderConfig{
			FOV:         60,
			MaxDepth:    15,
			TickRate:    60,
			WindowScale: 2,
		},
		Audio: AudioConfig{
			Muted:      false,
			Volume:     0.5,
			SampleRate: 22050,
		},
		Logging: LoggingConfig{
			Level:      "info",
			MaxSizeMB:  10,
			MaxBackups: 3,
			MaxAgeDays: 7,
		},
		Storage: StorageConfig{
			Path: "~/.maze3d/maze3d.db",
		},
		Server: ServerConfig{
			Host:    "0.0.0.0",
			Port:    2222,
			HostKey: ".ssh/maze3d_ed25519",
		},
	}
}
