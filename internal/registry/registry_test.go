package registry

import (
	"testing"

	"github.com/vovakirdan/screwchick/internal/core"
)

type stubGame struct{ id string }

func (g *stubGame) ID() string                             { return g.id }
func (g *stubGame) Title() string                          { return "Stub " + g.id }
func (g *stubGame) Reset(core.RuntimeConfig)               {}
func (g *stubGame) Step(core.InputFrame) core.StepResult   { return core.StepResult{} }
func (g *stubGame) Render(*core.Screen)                    {}
func (g *stubGame) State() core.GameState                  { return core.GameState{} }

func TestRegisterAndCreate(t *testing.T) {
	Register("stub_a", func() Game { return &stubGame{id: "stub_a"} })

	if !Exists("stub_a") {
		t.Fatal("stub_a should exist")
	}
	g, err := Create("stub_a")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if g.ID() != "stub_a" {
		t.Errorf("ID = %q", g.ID())
	}

	found := false
	for _, info := range List() {
		if info.ID == "stub_a" && info.Title == "Stub stub_a" {
			found = true
		}
	}
	if !found {
		t.Error("List missing stub_a")
	}
}

func TestCreateUnknown(t *testing.T) {
	if _, err := Create("no_such_game"); err == nil {
		t.Error("expected error for unknown game")
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("stub_dup", func() Game { return &stubGame{id: "stub_dup"} })
	defer func() {
		if recover() == nil {
			t.Error("expected panic on duplicate registration")
		}
	}()
	Register("stub_dup", func() Game { return &stubGame{id: "stub_dup"} })
}
