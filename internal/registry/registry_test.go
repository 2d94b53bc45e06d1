package registry

import (
	"testing"

	"github.com/vovakirdan/maze3d/internal/core"
)

type stubGame struct{ id string }

func (g stubGame) ID() string                           { return g.id }
func (g stubGame) Title() string                        { return "Stub " + g.id }
func (g stubGame) Reset(core.RuntimeConfig)             {}
func (g stubGame) Step(core.InputFrame) core.StepResult { return core.StepResult{} }
func (g stubGame) Render(*core.Screen)                  {}
func (g stubGame) State() core.GameState                { return core.GameState{} }

func TestRegisterAndCreate(t *testing.T) {
	Register("stub_a", func() Game { return stubGame{id: "stub_a"} })

	if !Exists("stub_a") {
		t.Fatal("Exists(stub_a) = false, expected true")
	}

	g, err := Create("stub_a")
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if g.ID() != "stub_a" {
		t.Errorf("ID() = %q, expected %q", g.ID(), "stub_a")
	}

	if g.Title() != "Stub stub_a" {
		t.Errorf("Title() = %q, expected %q", g.Title(), "Stub stub_a")
	}
}

func TestCreateUnknown(t *testing.T) {
	if _, err := Create("no_such_game"); err == nil {
		t.Error("expected an error for an unknown game")
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("stub_dup", func() Game { return stubGame{id: "stub_dup"} })
	defer func() {
		if recover() == nil {
			t.Error("expected a panic on duplicate registration")
		}
	}()
	Register("stub_dup", func() Game { return stubGame{id: "stub_dup"} })
}
