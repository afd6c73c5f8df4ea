package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tidepool/internal/core"
)

// DefaultHoldTicks is how long a key press keeps its action active.
// Terminals report presses and auto-repeats but never releases.
const DefaultHoldTicks = 8

// aimReach is how far ahead of the player arrow-key aim points.
const aimReach = 10.0

// KeyInput turns terminal key and mouse events into per-tick input frames.
// It implements game.InputSource.
type KeyInput struct {
	keys   KeyMap
	camera *Camera
	hold   int

	held    map[core.Action]int
	aimDir  core.Vec3
	aimHeld int

	mouseX, mouseY int
	mouseAim       bool
}

// NewKeyInput creates an input source that resolves mouse positions with camera.
func NewKeyInput(keys KeyMap, camera *Camera, holdTicks int) *KeyInput {
	if holdTicks <= 0 {
		holdTicks = DefaultHoldTicks
	}
	return &KeyInput{
		keys:   keys,
		camera: camera,
		hold:   holdTicks,
		held:   make(map[core.Action]int),
	}
}

var opposite = map[core.Action]core.Action{
	core.ActionForward: core.ActionBack,
	core.ActionBack:    core.ActionForward,
	core.ActionLeft:    core.ActionRight,
	core.ActionRight:   core.ActionLeft,
}

// HandleKey records a key press. It reports whether the key was consumed
// as movement or aim.
func (in *KeyInput) HandleKey(msg tea.KeyMsg) bool {
	if a := in.keys.Movement(msg); a != core.ActionNone {
		delete(in.held, opposite[a])
		in.held[a] = in.hold
		return true
	}
	if dir, ok := in.keys.Aim(msg); ok {
		in.aimDir = dir
		in.aimHeld = in.hold
		in.mouseAim = false
		return true
	}
	return false
}

// HandleMouse points the aim at the cell under the cursor.
func (in *KeyInput) HandleMouse(msg tea.MouseMsg) {
	in.mouseX, in.mouseY = msg.X, msg.Y
	in.mouseAim = true
	in.aimHeld = 0
}

// Poll returns the frame for the next tick and ages the held keys.
func (in *KeyInput) Poll() core.InputFrame {
	frame := core.NewInputFrame()
	for a, n := range in.held {
		frame.Set(a)
		if n <= 1 {
			delete(in.held, a)
		} else {
			in.held[a] = n - 1
		}
	}

	switch {
	case in.aimHeld > 0:
		frame.SetAim(in.camera.Focus.Add(in.aimDir.Scale(aimReach)))
		in.aimHeld--
	case in.mouseAim:
		frame.SetAim(in.camera.ScreenToWorld(in.mouseX, in.mouseY))
	}
	return frame
}

// Release drops every held key, e.g. when a session ends.
func (in *KeyInput) Release() {
	clear(in.held)
	in.aimHeld = 0
	in.mouseAim = false
}
