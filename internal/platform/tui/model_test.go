package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/maze3d/internal/core"
	"github.com/vovakirdan/maze3d/internal/games/maze3d"
	"github.com/vovakirdan/maze3d/internal/storage"
)

func newTestModel(t *testing.T, rec *storage.Recorder) Model {
	t.Helper()
	game := maze3d.New(maze3d.WithLevels([]maze3d.LevelConfig{{Width: 3, Height: 3}}))
	cfg := core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 7}
	m := NewModel(game, cfg, Options{Recorder: rec, HoldTicks: 2})
	m.Init()
	return m
}

func update(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	nm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T, expected Model", next)
	}
	return nm
}

func TestModelStartsGameOnEnter(t *testing.T) {
	rec := storage.NewRecorder(nil, "local", "normal", nil)
	m := newTestModel(t, rec)

	m = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m = update(t, m, TickMsg(time.Now()))

	if got := m.GameState().Phase; got != "game" {
		t.Fatalf("Phase = %q, expected %q", got, "game")
	}
	if _, ok := rec.Active(); !ok {
		t.Error("recorder should track the run once level 1 loads")
	}

	view := m.View()
	if view == "" {
		t.Error("View() should render the maze")
	}
}

func TestModelHeldKeyFiresOnce(t *testing.T) {
	m := newTestModel(t, nil)

	// Down moves the menu selection to Quit; holding it must not wrap back.
	m = update(t, m, tea.KeyMsg{Type: tea.KeyDown})
	for range 2 {
		m = update(t, m, TickMsg(time.Now()))
	}
	m = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m = update(t, m, TickMsg(time.Now()))

	if !m.GameState().Quit {
		t.Errorf("Quit = false, expected true after selecting Quit")
	}
	if m.View() != "" {
		t.Error("View() should be empty once quitting")
	}
}

func TestModelCtrlCQuits(t *testing.T) {
	m := newTestModel(t, nil)
	m = update(t, m, tea.KeyMsg{Type: tea.KeyCtrlC})
	if !m.quitting {
		t.Error("ctrl+c should quit")
	}
}

func TestModelResizeKeepsState(t *testing.T) {
	m := newTestModel(t, nil)
	m = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m = update(t, m, TickMsg(time.Now()))
	m = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 30})

	if got := m.GameState().Phase; got != "game" {
		t.Errorf("Phase = %q after resize, expected %q", got, "game")
	}
	if m.screen.Width() != 100 || m.screen.Height() != 30 {
		t.Errorf("screen = %dx%d, expected 100x30", m.screen.Width(), m.screen.Height())
	}
}

func TestRenderScreenText(t *testing.T) {
	s := core.NewScreen(5, 2)
	s.DrawText(0, 0, "ab", core.ColorRed)
	s.DrawText(2, 0, "cd", core.ColorGreen)
	out := RenderScreen(s)
	for _, want := range []string{"ab", "cd"} {
		if !strings.Contains(out, want) {
			t.Errorf("RenderScreen() missing %q in %q", want, out)
		}
	}
	if strings.Count(out, "\n") != 1 {
		t.Errorf("RenderScreen() has %d newlines, expected 1", strings.Count(out, "\n"))
	}
}

func TestFormatTicks(t *testing.T) {
	tests := []struct {
		ticks uint64
		rate  int
		want  string
	}{
		{0, 60, "0:00.00"},
		{90, 60, "0:01.50"},
		{3660, 60, "1:01.00"},
		{30, 0, "0:00.50"},
	}
	for _, tt := range tests {
		if got := FormatTicks(tt.ticks, tt.rate); got != tt.want {
			t.Errorf("FormatTicks(%d, %d) = %q, expected %q", tt.ticks, tt.rate, got, tt.want)
		}
	}
}
