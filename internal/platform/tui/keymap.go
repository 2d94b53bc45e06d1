package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/maze3d/internal/core"
)

// DefaultHoldTicks is how long a key press counts as held. Terminals report
// presses and auto-repeat but never releases, so a press is held until its
// repeats stop arriving. 36 ticks at 60 TPS outlasts the usual 250-600 ms
// auto-repeat delay, at the cost of movement coasting that long after release.
const DefaultHoldTicks = 36

// KeyMapper translates Bubble Tea key messages to controller buttons.
// This centralizes key bindings and makes them testable.
type KeyMapper struct {
	bindings map[string]core.Button
}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{
		bindings: map[string]core.Button{
			"w": core.ButtonUp, "up": core.ButtonUp, "k": core.ButtonUp,
			"s": core.ButtonDown, "down": core.ButtonDown, "j": core.ButtonDown,
			"a": core.ButtonLeft, "left": core.ButtonLeft, "h": core.ButtonLeft,
			"d": core.ButtonRight, "right": core.ButtonRight, "l": core.ButtonRight,
			"q": core.ButtonLTrigger, ",": core.ButtonLTrigger,
			"e": core.ButtonRTrigger, ".": core.ButtonRTrigger,
			"enter": core.ButtonConfirm, " ": core.ButtonConfirm,
			"p": core.ButtonStart, "esc": core.ButtonStart,
		},
	}
}

// MapKey translates a key message to a button.
// Returns whether the key is bound and whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (b core.Button, ok, isQuit bool) {
	key := msg.String()
	if key == "ctrl+c" {
		return 0, false, true
	}
	b, ok = km.bindings[key]
	return b, ok, false
}

// HoldTracker turns a stream of key presses into per-tick held state.
type HoldTracker struct {
	ticks     int
	remaining map[core.Button]int
}

// NewHoldTracker creates a tracker that holds each press for ticks ticks.
func NewHoldTracker(ticks int) *HoldTracker {
	if ticks <= 0 {
		ticks = DefaultHoldTicks
	}
	return &HoldTracker{ticks: ticks, remaining: make(map[core.Button]int)}
}

// Press marks b held, or extends the hold on an auto-repeat.
func (h *HoldTracker) Press(b core.Button) {
	h.remaining[b] = h.ticks
}

// State returns the buttons held this tick.
func (h *HoldTracker) State() core.InputState {
	var s core.InputState
	for b, n := range h.remaining {
		if n > 0 {
			s.SetButton(b, true)
		}
	}
	return s
}

// Tick ages every hold by one tick.
func (h *HoldTracker) Tick() {
	for b, n := range h.remaining {
		if n <= 1 {
			delete(h.remaining, b)
			continue
		}
		h.remaining[b] = n - 1
	}
}

// Release drops every hold, e.g. when the game changes hands.
func (h *HoldTracker) Release() {
	clear(h.remaining)
}
