package tui

import (
	"bytes"
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/screwchick/internal/core"
	"github.com/vovakirdan/screwchick/internal/storage"
)

// fakeGame scripts results and records what the model fed it.
type fakeGame struct {
	results  []core.StepResult
	steps    [][]core.Action
	resets   int
	resized  [2]int
	high     int
	summary  core.RunSummary
	rendered int
}

func (g *fakeGame) ID() string               { return "fake" }
func (g *fakeGame) Title() string            { return "Fake" }
func (g *fakeGame) Reset(core.RuntimeConfig) { g.resets++ }
func (g *fakeGame) Render(*core.Screen)      { g.rendered++ }
func (g *fakeGame) Resize(w, h int)          { g.resized = [2]int{w, h} }
func (g *fakeGame) SetHighScore(s int)       { g.high = s }
func (g *fakeGame) RunSummary() core.RunSummary {
	return g.summary
}

func (g *fakeGame) Step(in core.InputFrame) core.StepResult {
	g.steps = append(g.steps, append([]core.Action(nil), in.Sequence()...))
	if len(g.results) == 0 {
		return core.StepResult{}
	}
	r := g.results[0]
	g.results = g.results[1:]
	return r
}

func (g *fakeGame) State() core.GameState { return core.GameState{} }

type recordingPlayer struct {
	events []core.SoundEvent
}

func (p *recordingPlayer) Play(ev core.SoundEvent) { p.events = append(p.events, ev) }

func quietLogger() *log.Logger {
	return log.New(&bytes.Buffer{})
}

func tick(t *testing.T, m Model) Model {
	t.Helper()
	next, _ := m.Update(TickMsg{})
	return next.(Model)
}

func TestModelDispatchesInputAndSounds(t *testing.T) {
	g := &fakeGame{results: []core.StepResult{
		{Sounds: []core.SoundEvent{{Cue: core.CueStart}, {Cue: core.CueDelivery, Repeat: 2}}},
	}}
	player := &recordingPlayer{}
	m := NewModel(g, core.RuntimeConfig{ScreenW: 80, ScreenH: 24, Seed: 1}, Options{Audio: player, Logger: quietLogger()})

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
	next, _ = next.(Model).Update(tea.KeyMsg{Type: tea.KeyLeft})
	m = tick(t, next.(Model))

	if len(g.steps) != 1 || len(g.steps[0]) != 2 || g.steps[0][0] != core.ActionConfirm || g.steps[0][1] != core.ActionLeft {
		t.Errorf("steps = %v", g.steps)
	}
	if len(player.events) != 2 || player.events[1].Times() != 2 {
		t.Errorf("played = %+v", player.events)
	}

	tick(t, m)
	if len(g.steps[1]) != 0 {
		t.Errorf("input leaked into the next frame: %v", g.steps[1])
	}
}

func TestModelSavesRunOncePerGameOver(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer store.Close()

	over := core.StepResult{State: core.GameState{Score: 6, GameOver: true}}
	g := &fakeGame{
		results: []core.StepResult{over, over, {}, over},
		summary: core.RunSummary{Score: 6, Seconds: 42, Delivered: 4, EndCause: "wall"},
	}
	m := NewModel(g, core.RuntimeConfig{ScreenW: 80, ScreenH: 24, Seed: 1}, Options{Store: store, Logger: quietLogger()})
	for i := 0; i < 4; i++ {
		m = tick(t, m)
	}

	scores, err := store.TopScores("fake", 10)
	if err != nil {
		t.Fatalf("TopScores: %v", err)
	}
	if len(scores) != 2 {
		t.Fatalf("saved %d runs, expected 2", len(scores))
	}
	if scores[0].DurationSecs != 42 || scores[0].Delivered != 4 || scores[0].EndCause != "wall" {
		t.Errorf("run details = %+v", scores[0].Run)
	}
	if g.high != 6 {
		t.Errorf("high score pushed to game = %d, expected 6", g.high)
	}
}

func TestModelResizeKeepsSession(t *testing.T) {
	g := &fakeGame{}
	m := NewModel(g, core.RuntimeConfig{ScreenW: 80, ScreenH: 24, Seed: 1}, Options{Logger: quietLogger()})
	resets := g.resets

	next, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	m = next.(Model)
	if g.resets != resets {
		t.Error("resize reset a game that supports Resize")
	}
	if g.resized != [2]int{100, 30} || m.screen.Width() != 100 {
		t.Errorf("resized = %v, screen %dx%d", g.resized, m.screen.Width(), m.screen.Height())
	}
}

func TestModelQuitKeys(t *testing.T) {
	g := &fakeGame{results: []core.StepResult{{State: core.GameState{GameOver: true}}}}
	m := NewModel(g, core.RuntimeConfig{ScreenW: 80, ScreenH: 24, Seed: 1}, Options{Logger: quietLogger()})

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if cmd != nil || next.(Model).quitting {
		t.Error("esc while playing should not quit")
	}

	m = tick(t, next.(Model))
	next, cmd = m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if cmd == nil || !next.(Model).quitting {
		t.Error("esc on game over should quit")
	}
	if next.(Model).View() != "" {
		t.Error("View should be empty once quitting")
	}

	_, cmd = NewModel(&fakeGame{}, core.RuntimeConfig{ScreenW: 10, ScreenH: 5, Seed: 1}, Options{}).Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	if cmd == nil {
		t.Error("q should quit")
	}
}
