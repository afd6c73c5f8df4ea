package core

// Action represents a semantic input, abstracted from physical key presses.
type Action int

const (
	ActionNone     Action = iota
	ActionForward         // W - move toward +Z
	ActionBack            // S - move toward -Z
	ActionLeft            // A - move toward -X
	ActionRight           // D - move toward +X
	ActionConfirm         // Enter/Space - start from the menu
	ActionRestart         // R - restart after game over or win
	ActionQuit            // Q, Ctrl+C - leave the game
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionForward:
		return "Forward"
	case ActionBack:
		return "Back"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionConfirm:
		return "Confirm"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputFrame is the input state for one simulation tick: movement intent
// flags plus a world-space aim point already resolved by the camera.
type InputFrame struct {
	Actions map[Action]bool

	// Aim is the ground-plane point the player should face.
	// Only meaningful when AimValid is set.
	Aim      Vec3
	AimValid bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as active for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action is active this frame.
func (f InputFrame) Has(a Action) bool {
	return f.Actions[a]
}

// SetAim records the aim point for this frame.
func (f *InputFrame) SetAim(p Vec3) {
	f.Aim = p
	f.AimValid = true
}

// Movement returns the unnormalized ground-plane direction requested by the
// movement flags. Opposing flags cancel out.
func (f InputFrame) Movement() Vec3 {
	var m Vec3
	if f.Has(ActionForward) {
		m.Z++
	}
	if f.Has(ActionBack) {
		m.Z--
	}
	if f.Has(ActionRight) {
		m.X++
	}
	if f.Has(ActionLeft) {
		m.X--
	}
	return m
}
