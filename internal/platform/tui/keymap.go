package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tidepool/internal/core"
)

// KeyMap defines the key bindings for a session.
// This centralizes key bindings and makes them testable.
type KeyMap struct {
	Forward key.Binding
	Back    key.Binding
	Left    key.Binding
	Right   key.Binding

	AimUp    key.Binding
	AimDown  key.Binding
	AimLeft  key.Binding
	AimRight key.Binding

	Start   key.Binding
	Restart key.Binding
	Pick    key.Binding // 1-9 picks an upgrade card directly
	Quit    key.Binding
	Help    key.Binding

	Screenshot key.Binding
}

// DefaultKeyMap returns the default bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Forward: key.NewBinding(key.WithKeys("w"), key.WithHelp("wasd", "swim")),
		Back:    key.NewBinding(key.WithKeys("s")),
		Left:    key.NewBinding(key.WithKeys("a")),
		Right:   key.NewBinding(key.WithKeys("d")),

		AimUp:    key.NewBinding(key.WithKeys("up"), key.WithHelp("arrows/mouse", "aim")),
		AimDown:  key.NewBinding(key.WithKeys("down")),
		AimLeft:  key.NewBinding(key.WithKeys("left")),
		AimRight: key.NewBinding(key.WithKeys("right")),

		Start:   key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter", "dive/choose")),
		Restart: key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "restart")),
		Pick: key.NewBinding(
			key.WithKeys("1", "2", "3", "4", "5", "6", "7", "8", "9"),
			key.WithHelp("1-3", "pick upgrade"),
		),
		Quit: key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
		Help: key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "more")),

		Screenshot: key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "screenshot")),
	}
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Forward, k.AimUp, k.Pick, k.Quit, k.Help}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Forward, k.AimUp},
		{k.Start, k.Pick},
		{k.Restart, k.Screenshot, k.Quit, k.Help},
	}
}

// Movement translates a key to a movement action, or ActionNone.
func (k KeyMap) Movement(msg tea.KeyMsg) core.Action {
	switch {
	case key.Matches(msg, k.Forward):
		return core.ActionForward
	case key.Matches(msg, k.Back):
		return core.ActionBack
	case key.Matches(msg, k.Left):
		return core.ActionLeft
	case key.Matches(msg, k.Right):
		return core.ActionRight
	}
	return core.ActionNone
}

// Aim translates an arrow key to a ground-plane aim direction.
func (k KeyMap) Aim(msg tea.KeyMsg) (core.Vec3, bool) {
	switch {
	case key.Matches(msg, k.AimUp):
		return core.V3(0, 0, 1), true
	case key.Matches(msg, k.AimDown):
		return core.V3(0, 0, -1), true
	case key.Matches(msg, k.AimLeft):
		return core.V3(-1, 0, 0), true
	case key.Matches(msg, k.AimRight):
		return core.V3(1, 0, 0), true
	}
	return core.Vec3{}, false
}
