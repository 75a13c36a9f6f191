package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/screwchick/internal/core"
)

// GameKeyMap holds the in-game bindings. Each key press maps to one action.
type GameKeyMap struct {
	Up      key.Binding
	Down    key.Binding
	Left    key.Binding
	Right   key.Binding
	Start   key.Binding
	Restart key.Binding
	Pause   key.Binding
	Back    key.Binding
	Quit    key.Binding
}

// DefaultGameKeyMap returns arrows/WASD movement and the control keys.
func DefaultGameKeyMap() GameKeyMap {
	return GameKeyMap{
		Up:      key.NewBinding(key.WithKeys("up", "w"), key.WithHelp("↑/w", "up")),
		Down:    key.NewBinding(key.WithKeys("down", "s"), key.WithHelp("↓/s", "down")),
		Left:    key.NewBinding(key.WithKeys("left", "a"), key.WithHelp("←/a", "left")),
		Right:   key.NewBinding(key.WithKeys("right", "d"), key.WithHelp("→/d", "right")),
		Start:   key.NewBinding(key.WithKeys(" ", "enter"), key.WithHelp("space", "start")),
		Restart: key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "title")),
		Pause:   key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "pause")),
		Back:    key.NewBinding(key.WithKeys("b", "esc"), key.WithHelp("esc", "leave")),
		Quit:    key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// KeyMapper translates Bubble Tea key messages to game actions.
type KeyMapper struct {
	table []keyAction
}

type keyAction struct {
	binding key.Binding
	action  core.Action
}

// NewKeyMapper creates a mapper over the default bindings.
func NewKeyMapper() *KeyMapper {
	keys := DefaultGameKeyMap()
	return &KeyMapper{
		table: []keyAction{
			{keys.Quit, core.ActionQuit},
			{keys.Up, core.ActionUp},
			{keys.Down, core.ActionDown},
			{keys.Left, core.ActionLeft},
			{keys.Right, core.ActionRight},
			{keys.Start, core.ActionConfirm},
			{keys.Restart, core.ActionRestart},
			{keys.Pause, core.ActionPause},
			{keys.Back, core.ActionBack},
		},
	}
}

// MapKey translates a key message to an action.
// Returns the action (may be ActionNone) and whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	for _, ka := range km.table {
		if key.Matches(msg, ka.binding) {
			return ka.action, ka.action == core.ActionQuit
		}
	}
	return core.ActionNone, false
}
