// Package registry maps game IDs to factories. Games register themselves in
// init() so the CLI and the SSH server can build them by name.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/screwchick/internal/core"
)

// Game is what the platform drives. Implementations hold pure simulation
// state; input mapping, timing, audio and drawing stay in the platform.
type Game interface {
	// ID is the stable identifier used for CLI arguments and score rows.
	ID() string

	// Title is the display name.
	Title() string

	// Reset discards any session and starts over from the first scene.
	Reset(cfg core.RuntimeConfig)

	// Step advances one fixed frame. Actions in the frame are applied in
	// arrival order before the clock runs.
	Step(in core.InputFrame) core.StepResult

	// Render draws the current state into a pre-cleared screen. It must
	// not change the simulation.
	Render(dst *core.Screen)

	// State returns score and status flags.
	State() core.GameState
}

// HighScoreSetter is implemented by games that show the best known score.
type HighScoreSetter interface {
	SetHighScore(score int)
}

// Resizer is implemented by games that keep their session across terminal
// resizes instead of being Reset.
type Resizer interface {
	Resize(w, h int)
}

// RunReporter is implemented by games that describe a finished run in more
// detail than its score.
type RunReporter interface {
	RunSummary() core.RunSummary
}

// GameInfo contains metadata about a registered game.
type GameInfo struct {
	ID    string
	Title string
}

// Factory creates a new game instance.
type Factory func() Game

var (
	mu        sync.RWMutex
	factories = make(map[string]Factory)
	titles    = make(map[string]string)
)

// Register adds a factory. It panics on a duplicate ID.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}
	factories[id] = f
	titles[id] = f().Title()
}

// List returns every registered game sorted by ID.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]GameInfo, 0, len(factories))
	for id := range factories {
		result = append(result, GameInfo{ID: id, Title: titles[id]})
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})
	return result
}

// Create builds a game by ID.
func Create(id string) (Game, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[id]
	if !ok {
		return nil, fmt.Errorf("registry: unknown game %q", id)
	}
	return f(), nil
}

// Exists reports whether id is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
