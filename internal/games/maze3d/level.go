package maze3d

import (
	"errors"
	"fmt"
	"time"

	"github.com/vovakirdan/maze3d/internal/games/maze3d/maze"
)

// ErrLevelOutOfRange is returned when loading a level index that is not in
// the level table.
var ErrLevelOutOfRange = errors.New("maze3d: level out of range")

// LevelConfig is the size of one level's maze in logical cells.
type LevelConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// DefaultLevels is the reference three-level campaign.
var DefaultLevels = []LevelConfig{
	{Width: 5, Height: 5},
	{Width: 8, Height: 8},
	{Width: 12, Height: 10},
}

// DefaultStart is the pose a player spawns at: the center of the first room,
// facing +X.
var DefaultStart = Player{X: 1.5, Y: 1.5, Angle: 0}

// Level is a fully built level, ready to play.
type Level struct {
	Index  int
	Config LevelConfig
	Maze   *maze.Maze
	Start  Player
}

// LevelManager owns the level table and builds levels on demand.
type LevelManager struct {
	levels    []LevelConfig
	start     Player
	clock     func() time.Time
	fixedSeed int64
	hasSeed   bool
}

// LevelOption configures a LevelManager.
type LevelOption func(*LevelManager)

// WithClock sets the time source used to derive seeds.
func WithClock(clock func() time.Time) LevelOption {
	return func(m *LevelManager) { m.clock = clock }
}

// WithSeed fixes the base seed so every run produces the same mazes.
func WithSeed(seed int64) LevelOption {
	return func(m *LevelManager) {
		m.fixedSeed = seed
		m.hasSeed = true
	}
}

// WithStart overrides the spawn pose.
func WithStart(p Player) LevelOption {
	return func(m *LevelManager) { m.start = p }
}

// NewLevelManager returns a manager over a copy of levels. An empty table
// falls back to DefaultLevels.
func NewLevelManager(levels []LevelConfig, opts ...LevelOption) *LevelManager {
	if len(levels) == 0 {
		levels = DefaultLevels
	}
	m := &LevelManager{
		levels: append([]LevelConfig(nil), levels...),
		start:  DefaultStart,
		clock:  time.Now,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Count returns the number of levels.
func (m *LevelManager) Count() int {
	return len(m.levels)
}

// Levels returns a copy of the level table.
func (m *LevelManager) Levels() []LevelConfig {
	return append([]LevelConfig(nil), m.levels...)
}

// IsLast reports whether n is the final level.
func (m *LevelManager) IsLast(n int) bool {
	return n == len(m.levels)-1
}

// SeedFor returns the maze seed for level n: the base seed XOR n. The base
// is the fixed seed when set, otherwise the clock in nanoseconds.
func (m *LevelManager) SeedFor(n int) int64 {
	base := m.fixedSeed
	if !m.hasSeed {
		base = m.clock().UnixNano()
	}
	return base ^ int64(n)
}

// Load builds level n. Nothing is returned on error, so callers keep their
// current level until a new one is complete.
func (m *LevelManager) Load(n int) (*Level, error) {
	if n < 0 || n >= len(m.levels) {
		return nil, fmt.Errorf("%w: %d not in [0, %d)", ErrLevelOutOfRange, n, len(m.levels))
	}
	cfg := m.levels[n]

	mz, err := maze.Generate(cfg.Width, cfg.Height, m.SeedFor(n))
	if err != nil {
		return nil, fmt.Errorf("maze3d: load level %d: %w", n, err)
	}

	return &Level{
		Index:  n,
		Config: cfg,
		Maze:   mz,
		Start:  m.start,
	}, nil
}
