package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-survivor/internal/core"
)

// DefaultHoldWindow is how long a movement key counts as held after its
// last press or auto-repeat.
const DefaultHoldWindow = 300 * time.Millisecond

// KeyMapper translates Bubble Tea key messages to game actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey translates a key message to an action.
// Returns the action (may be ActionNone) and whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	switch msg.String() {
	case "ctrl+c", "q":
		return core.ActionQuit, true
	case "a", "left":
		return core.ActionLeft, false
	case "d", "right":
		return core.ActionRight, false
	case "w", "up", " ", "space":
		return core.ActionJump, false
	case "enter":
		return core.ActionConfirm, false
	case "esc":
		return core.ActionCancel, false
	}

	return core.ActionNone, false
}

// holdable reports whether an action is level-triggered in the game.
func holdable(a core.Action) bool {
	return a == core.ActionLeft || a == core.ActionRight || a == core.ActionJump
}

// HoldTracker emulates held keys. Terminals report key presses and
// auto-repeats but never releases, so a key counts as held until its hold
// window passes without another press.
type HoldTracker struct {
	window time.Duration
	until  map[core.Action]time.Time
}

// NewHoldTracker creates a tracker. A non-positive window selects
// DefaultHoldWindow.
func NewHoldTracker(window time.Duration) *HoldTracker {
	if window <= 0 {
		window = DefaultHoldWindow
	}
	return &HoldTracker{
		window: window,
		until:  make(map[core.Action]time.Time),
	}
}

// Press records a press at now. Pressing one direction releases the other.
// Actions that are not holdable are ignored.
func (h *HoldTracker) Press(a core.Action, now time.Time) {
	if !holdable(a) {
		return
	}
	switch a {
	case core.ActionLeft:
		delete(h.until, core.ActionRight)
	case core.ActionRight:
		delete(h.until, core.ActionLeft)
	}
	h.until[a] = now.Add(h.window)
}

// Held reports whether a is held at now.
func (h *HoldTracker) Held(a core.Action, now time.Time) bool {
	deadline, ok := h.until[a]
	return ok && now.Before(deadline)
}

// Apply adds every action held at now to frame and forgets expired ones.
func (h *HoldTracker) Apply(frame *core.InputFrame, now time.Time) {
	for a, deadline := range h.until {
		if now.Before(deadline) {
			frame.Set(a)
		} else {
			delete(h.until, a)
		}
	}
}

// Reset releases all keys.
func (h *HoldTracker) Reset() {
	clear(h.until)
}
