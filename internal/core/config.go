package core

// RuntimeConfig contains configuration passed to games at initialization.
type RuntimeConfig struct {
	ScreenW   int   // Screen width in characters (or pixels for the window frontend)
	ScreenH   int   // Screen height
	TickRate  int   // Simulation ticks per second (default 60)
	Seed      int64 // Base RNG seed; 0 means derive from the wall clock per level unless FixedSeed
	FixedSeed bool  // Use Seed as given, including 0
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
	}
}

// GameState is the coarse status a game reports to the platform each tick.
type GameState struct {
	Phase  string // Name of the current state machine state
	Level  int    // Current level index (0-based)
	Levels int    // Number of configured levels
	Paused bool
	Won    bool // Final exit reached
	Quit   bool // Terminal state; the run loop should exit
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State  GameState
	Events []Event
}

// EventKind classifies a notable transition reported upward by the game.
type EventKind int

const (
	EventLevelLoaded EventKind = iota
	EventLevelComplete
	EventWin
	EventPaused
	EventResumed
	EventMenuReturn
	EventQuit
)

// String returns the event kind name used in logs.
func (k EventKind) String() string {
	switch k {
	case EventLevelLoaded:
		return "level_loaded"
	case EventLevelComplete:
		return "level_complete"
	case EventWin:
		return "win"
	case EventPaused:
		return "paused"
	case EventResumed:
		return "resumed"
	case EventMenuReturn:
		return "menu_return"
	case EventQuit:
		return "quit"
	default:
		return "unknown"
	}
}

// Event is a transition the platform may want to record (persistence, logs).
type Event struct {
	Kind     EventKind
	Level    int    // Level index the event refers to
	Ticks    uint64 // Ticks spent in that level
	RunTicks uint64 // Ticks since the run started at level 0
	Seed     int64  // Seed of the level's maze
}
