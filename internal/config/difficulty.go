package config

import "fmt"

// presetLevels holds the level table for each preset. Normal is the
// reference three-level campaign.
var presetLevels = map[DifficultyPreset][]LevelSize{
	DifficultyEasy: {
		{Width: 4, Height: 4},
		{Width: 6, Height: 6},
		{Width: 8, Height: 8},
	},
	DifficultyNormal: {
		{Width: 5, Height: 5},
		{Width: 8, Height: 8},
		{Width: 12, Height: 10},
	},
	DifficultyHard: {
		{Width: 8, Height: 8},
		{Width: 12, Height: 12},
		{Width: 16, Height: 14},
		{Width: 20, Height: 18},
	},
}

// Presets lists the presets in order of difficulty.
var Presets = []DifficultyPreset{DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyCustom}

// ParsePreset validates a preset name. An empty name means custom.
func ParsePreset(name string) (DifficultyPreset, error) {
	if name == "" {
		return DifficultyCustom, nil
	}
	p := DifficultyPreset(name)
	for _, known := range Presets {
		if p == known {
			return p, nil
		}
	}
	return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal, hard or custom)", name)
}

// PresetLevels returns a copy of the level table for a preset, or nil for
// custom and unknown presets.
func PresetLevels(preset DifficultyPreset) []LevelSize {
	levels, ok := presetLevels[preset]
	if !ok {
		return nil
	}
	return append([]LevelSize(nil), levels...)
}

// ApplyPreset replaces the level table with the preset's. Custom keeps the
// configured levels.
func ApplyPreset(cfg *Maze3DConfig, preset DifficultyPreset) {
	cfg.Difficulty = preset
	if levels := PresetLevels(preset); levels != nil {
		cfg.Levels = levels
	}
}
