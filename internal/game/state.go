package game

// State is the top-level game state.
type State int

const (
	StateMenu     State = iota // Initial; waiting for start
	StateReset                 // Transient; re-initializes the session
	StatePlaying               // Simulation active
	StateGameOver              // Player died; waits for restart
	StateWin                   // Survived the session; waits for restart
	StateExit                  // Shutdown requested
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case StateMenu:
		return "menu"
	case StateReset:
		return "reset"
	case StatePlaying:
		return "playing"
	case StateGameOver:
		return "game_over"
	case StateWin:
		return "win"
	case StateExit:
		return "exit"
	default:
		return "unknown"
	}
}

// Terminal reports whether the session has ended (until restart).
func (s State) Terminal() bool {
	return s == StateGameOver || s == StateWin
}

// Command is a state-machine request issued by the UI.
type Command int

const (
	CommandNone    Command = iota
	CommandStart           // MENU -> RESET
	CommandRestart         // GAME_OVER/WIN -> RESET
	CommandExit            // any -> EXIT
)

// String returns the command name.
func (c Command) String() string {
	switch c {
	case CommandNone:
		return "none"
	case CommandStart:
		return "start"
	case CommandRestart:
		return "restart"
	case CommandExit:
		return "exit"
	default:
		return "unknown"
	}
}

// next returns the state a command leads to from s, and whether the
// command applies at all.
func (s State) next(c Command) (State, bool) {
	switch c {
	case CommandStart:
		if s == StateMenu {
			return StateReset, true
		}
	case CommandRestart:
		if s.Terminal() {
			return StateReset, true
		}
	case CommandExit:
		if s != StateExit {
			return StateExit, true
		}
	}
	return s, false
}
