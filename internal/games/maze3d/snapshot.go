package maze3d

// Snapshot captures the game state for determinism testing and debugging.
type Snapshot struct {
	Tick       uint64
	State      string
	Level      int // 1-indexed for display
	Levels     int
	MenuSel    int
	PauseSel   int
	X, Y       float64
	Angle      float64
	Seed       int64
	LevelTicks uint64
	RunTicks   uint64
	Maze       string // ASCII dump of the current grid, empty before the first load
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	s := Snapshot{
		Tick:       g.tick,
		State:      g.state.String(),
		Level:      g.levelIndex() + 1,
		Levels:     g.levelCount(),
		MenuSel:    g.menuSel,
		PauseSel:   g.pauseSel,
		X:          g.player.X,
		Y:          g.player.Y,
		Angle:      g.player.Angle,
		LevelTicks: g.levelTicks,
		RunTicks:   g.runTicks,
	}
	if g.level != nil {
		s.Seed = g.level.Maze.Seed
		s.Maze = g.level.Maze.Grid.String()
	}
	return s
}
