package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/maze3d/internal/core"
)

func TestKeyMapperMapKey(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		name     string
		msg      tea.KeyMsg
		button   core.Button
		bound    bool
		wantQuit bool
	}{
		{"w", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'w'}}, core.ButtonUp, true, false},
		{"arrow down", tea.KeyMsg{Type: tea.KeyDown}, core.ButtonDown, true, false},
		{"arrow left", tea.KeyMsg{Type: tea.KeyLeft}, core.ButtonLeft, true, false},
		{"d", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'d'}}, core.ButtonRight, true, false},
		{"q strafes", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}}, core.ButtonLTrigger, true, false},
		{"e strafes", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'e'}}, core.ButtonRTrigger, true, false},
		{"enter", tea.KeyMsg{Type: tea.KeyEnter}, core.ButtonConfirm, true, false},
		{"space", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{' '}}, core.ButtonConfirm, true, false},
		{"esc", tea.KeyMsg{Type: tea.KeyEsc}, core.ButtonStart, true, false},
		{"p", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'p'}}, core.ButtonStart, true, false},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, 0, false, true},
		{"unbound", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'z'}}, 0, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, ok, quit := km.MapKey(tt.msg)
			if quit != tt.wantQuit {
				t.Errorf("isQuit = %v, expected %v", quit, tt.wantQuit)
			}
			if ok != tt.bound {
				t.Fatalf("bound = %v, expected %v", ok, tt.bound)
			}
			if ok && b != tt.button {
				t.Errorf("button = %v, expected %v", b, tt.button)
			}
		})
	}
}

func TestHoldTrackerExpires(t *testing.T) {
	h := NewHoldTracker(3)
	h.Press(core.ButtonUp)

	for tick := range 3 {
		if !h.State().Up {
			t.Fatalf("tick %d: Up released early", tick)
		}
		h.Tick()
	}
	if h.State().Up {
		t.Error("Up still held after 3 ticks")
	}
}

func TestHoldTrackerRepeatExtends(t *testing.T) {
	h := NewHoldTracker(2)
	h.Press(core.ButtonConfirm)
	h.Tick()
	h.Press(core.ButtonConfirm) // auto-repeat
	h.Tick()
	if !h.State().Confirm {
		t.Error("repeat should extend the hold")
	}

	frame := core.NewInputFrame(core.InputState{Confirm: true}, h.State())
	if frame.Pressed(core.ButtonConfirm) {
		t.Error("a held key must not produce a second edge")
	}

	h.Release()
	if h.State().AnyButton() {
		t.Error("Release() should drop every hold")
	}
}

func TestHoldTrackerDefaultTicks(t *testing.T) {
	h := NewHoldTracker(0)
	if h.ticks != DefaultHoldTicks {
		t.Errorf("ticks = %d, expected %d", h.ticks, DefaultHoldTicks)
	}
}

func TestHoldTrackerSurvivesRepeatDelay(t *testing.T) {
	// First repeat after 500 ms at 60 TPS, then one every 20 ticks.
	repeats := map[int]bool{0: true, 30: true, 50: true, 70: true, 90: true}

	h := NewHoldTracker(DefaultHoldTicks)
	var prev core.InputState
	edges := 0
	for tick := range 200 {
		if repeats[tick] {
			h.Press(core.ButtonDown)
		}
		cur := h.State()
		if core.NewInputFrame(prev, cur).Pressed(core.ButtonDown) {
			edges++
		}
		prev = cur
		h.Tick()
	}
	if edges != 1 {
		t.Errorf("edges = %d, expected 1", edges)
	}
	if prev.Down {
		t.Error("Down still held long after the last repeat")
	}
}
