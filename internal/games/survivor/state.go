package survivor

// State is the top-level game flow state.
type State int

const (
	StateMainMenu State = iota
	StatePlaying
	StateDead
)

// String returns the phase name reported to the platform.
func (s State) String() string {
	switch s {
	case StateMainMenu:
		return "menu"
	case StatePlaying:
		return "playing"
	case StateDead:
		return "dead"
	default:
		return "unknown"
	}
}

// Event is a request to change state.
type Event int

const (
	EventConfirm            Event = iota // Confirm input
	EventCancel                          // Cancel/retry input
	EventDeathAnimationDone              // Raised by the player controller
)

// String returns a human-readable name for the event.
func (e Event) String() string {
	switch e {
	case EventConfirm:
		return "confirm"
	case EventCancel:
		return "cancel"
	case EventDeathAnimationDone:
		return "death-animation-done"
	default:
		return "unknown"
	}
}

// Phase tells whether a hook runs when a state is entered or left.
type Phase int

const (
	PhaseExit Phase = iota
	PhaseEnter
)

// Hook is one side effect of a transition.
type Hook struct {
	Phase Phase
	State State
}

// Enter returns the enter hook of s.
func Enter(s State) Hook { return Hook{Phase: PhaseEnter, State: s} }

// Exit returns the exit hook of s.
func Exit(s State) Hook { return Hook{Phase: PhaseExit, State: s} }

// InitialHooks are run once when a simulation starts in StateMainMenu.
func InitialHooks() []Hook {
	return []Hook{Enter(StateMainMenu)}
}

// Transition computes the next state for an event. It has no side effects:
// the returned hooks describe the work the caller must perform, exit hook
// first. Illegal requests leave the state unchanged, return no hooks and
// report ok == false.
func Transition(cur State, ev Event) (next State, hooks []Hook, ok bool) {
	switch {
	case cur == StateMainMenu && ev == EventConfirm:
		next = StatePlaying
	case cur == StatePlaying && ev == EventDeathAnimationDone:
		next = StateDead
	case cur == StateDead && ev == EventCancel:
		next = StatePlaying
	default:
		return cur, nil, false
	}
	return next, []Hook{Exit(cur), Enter(next)}, true
}
