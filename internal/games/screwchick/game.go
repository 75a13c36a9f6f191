// Package screwchick implements Screw Chick: a chick roams a walled grid,
// picks up screws that trail behind it, and delivers them front first to the
// matching box. Speed rises with every pickup and failed delivery and decays
// toward a rising floor after each successful delivery.
package screwchick

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/screwchick/internal/config"
	"github.com/vovakirdan/screwchick/internal/core"
	"github.com/vovakirdan/screwchick/internal/registry"
)

// ID is the registry and score-table identifier.
const ID = "screwchick"

var (
	configPath       string
	difficultyPreset config.DifficultyPreset
)

// SetConfigPath sets the YAML file Reset loads tunables from.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the preset applied on Reset.
func SetDifficultyPreset(preset config.DifficultyPreset) {
	difficultyPreset = preset
}

// LoadConfig resolves the tunables Reset will use. On error the returned
// config is still playable.
func LoadConfig() (config.ScrewChickConfig, error) {
	cfg, err := config.LoadScrewChick(configPath)
	if err != nil {
		cfg = config.DefaultScrewChickConfig()
	}
	config.ApplyScrewChickPreset(&cfg, difficultyPreset)
	return cfg, err
}

// Game adapts the engine to the arcade platform.
type Game struct {
	engine    *Engine
	state     *State
	screenW   int
	screenH   int
	highScore int
}

// New creates an unstarted game. Call Reset before Step.
func New() *Game {
	return &Game{}
}

func init() {
	registry.Register(ID, func() registry.Game {
		return New()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string { return ID }

// Title returns the display name.
func (g *Game) Title() string { return "Screw Chick" }

// Reset builds a new engine and puts the session on the title screen.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	gc, _ := LoadConfig()
	g.ResetWithParams(cfg, ParamsFromConfig(gc, cfg.TickRate))
}

// ResetWithParams is Reset with explicit tunables.
func (g *Game) ResetWithParams(cfg core.RuntimeConfig, params Params) {
	g.engine = NewEngine(params, cfg.Seed)
	g.state = g.engine.NewState()
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH
}

// SetHighScore sets the best score shown on the title screen.
func (g *Game) SetHighScore(score int) {
	g.highScore = score
}

// Resize records a new terminal size. The session is kept.
func (g *Game) Resize(w, h int) {
	g.screenW = w
	g.screenH = h
}

// Step applies the frame's input in arrival order, then advances one frame.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	for _, a := range in.Sequence() {
		g.apply(a)
	}
	g.engine.Frame(g.state)
	return core.StepResult{
		State:  g.State(),
		Sounds: g.engine.Drain(),
	}
}

func (g *Game) apply(a core.Action) {
	e, st := g.engine, g.state
	switch a {
	case core.ActionConfirm:
		if !e.Start(st) {
			e.Restart(st)
		}
	case core.ActionRestart:
		e.Restart(st)
	case core.ActionPause:
		e.TogglePause(st)
	case core.ActionUp:
		e.Enqueue(st, DirUp)
	case core.ActionDown:
		e.Enqueue(st, DirDown)
	case core.ActionLeft:
		e.Enqueue(st, DirLeft)
	case core.ActionRight:
		e.Enqueue(st, DirRight)
	}
}

// State returns the platform view of the session.
func (g *Game) State() core.GameState {
	if g.state == nil {
		return core.GameState{}
	}
	return core.GameState{
		Score:    g.state.Score,
		GameOver: g.state.Scene == SceneGameOver,
		Paused:   g.state.Paused,
	}
}

// Scene returns the current top-level mode.
func (g *Game) Scene() Scene {
	return g.state.Scene
}

// DebugState returns a string representation of the game state.
func (g *Game) DebugState() string {
	st := g.state
	var b strings.Builder
	fmt.Fprintf(&b, "Scene: %s, Tick: %d, Elapsed: %d, Score: %d\n", st.Scene, st.GlobalTicks, st.ElapsedTicks, st.Score)
	fmt.Fprintf(&b, "Chick: (%d, %d) %s, Body: %d, Queue: %v\n", st.Chick.Pos.X, st.Chick.Pos.Y, st.Chick.Facing, st.Body.Len(), st.Queue.Pending())
	fmt.Fprintf(&b, "Speed: %.2f (floor %.2f), Interval: %d, Timer: %d\n", st.SpeedMultiplier, st.DeliveryBaseSpeed, g.engine.StepInterval(st), st.MoveFrameTimer)
	fmt.Fprintf(&b, "Paused: %v, End: %s\n", st.Paused, st.EndCause)
	b.WriteString(st.Map.String())
	return b.String()
}

// RunSummary reports the current session for the scores table.
func (g *Game) RunSummary() core.RunSummary {
	st := g.state
	return core.RunSummary{
		Score:     st.Score,
		Seconds:   int(st.ElapsedSeconds(g.engine.Params().TickRate)),
		Delivered: st.ScrewsDelivered,
		EndCause:  st.EndCause.String(),
	}
}
