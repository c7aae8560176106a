// Package tui provides the Bubble Tea integration for the survivor game.
// It handles the terminal UI loop, input mapping, and persistence of runs.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-survivor/internal/core"
)

// maxFrameDelta caps the wall delta of a single tick so that a suspended
// terminal does not fast-forward the game.
const maxFrameDelta = 250 * time.Millisecond

// TickMsg is sent to trigger a game simulation tick.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
func tickCmd(tickRate int) tea.Cmd {
	if tickRate <= 0 {
		tickRate = 60
	}
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// frameClock turns tick timestamps into wall-clock frame times.
type frameClock struct {
	interval time.Duration // Nominal tick interval, used for the first tick
	last     time.Time
	elapsed  time.Duration
}

func newFrameClock(tickRate int) *frameClock {
	if tickRate <= 0 {
		tickRate = 60
	}
	return &frameClock{interval: time.Second / time.Duration(tickRate)}
}

// Next returns the frame time for a tick received at now.
func (c *frameClock) Next(now time.Time) core.FrameTime {
	delta := c.interval
	if !c.last.IsZero() {
		delta = now.Sub(c.last)
	}
	c.last = now

	delta = min(max(delta, 0), maxFrameDelta)
	c.elapsed += delta
	return core.FrameTime{Delta: delta, Elapsed: c.elapsed}
}
