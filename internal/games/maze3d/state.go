package maze3d

// State is a node of the game state machine.
type State int

const (
	StateMenu State = iota
	StateGame
	StatePause
	StateLevelComplete
	StateWin
	StateQuit
)

// String returns the state name used in logs and snapshots.
func (s State) String() string {
	switch s {
	case StateMenu:
		return "menu"
	case StateGame:
		return "game"
	case StatePause:
		return "pause"
	case StateLevelComplete:
		return "level_complete"
	case StateWin:
		return "win"
	case StateQuit:
		return "quit"
	default:
		return "unknown"
	}
}

// Menu and pause items. Both menus have exactly two entries.
const (
	MenuStart = 0
	MenuQuit  = 1

	PauseResume = 0
	PauseQuit   = 1

	menuItems = 2
)

// MenuLabels and PauseLabels are the item captions, indexed by selection.
var (
	MenuLabels  = [menuItems]string{"Start", "Quit"}
	PauseLabels = [menuItems]string{"Resume", "Quit to menu"}
)
