package survivor

import (
	"math"

	"github.com/vovakirdan/tui-survivor/internal/config"
)

// Animation selects the current frame of a sprite sheet.
type Animation struct {
	Start  int     // First frame of the current clip
	Length int     // Frames in the current clip
	Frame  int     // Current frame index into the sheet
	Period float64 // Seconds per frame
	timer  float64
}

// NewAnimation starts a clip at its first frame.
func NewAnimation(clip config.Clip, period float64) Animation {
	return Animation{
		Start:  clip.Start,
		Length: clip.Length,
		Frame:  clip.Start,
		Period: period,
	}
}

// SetClip switches clips without touching the frame. The next advance moves
// the frame into the new clip if it lies outside of it.
func (a *Animation) SetClip(clip config.Clip) {
	a.Start = clip.Start
	a.Length = clip.Length
}

// Is reports whether clip is the current clip.
func (a *Animation) Is(clip config.Clip) bool {
	return a.Start == clip.Start && a.Length == clip.Length
}

// OnLastFrame reports whether the frame sits on the final frame of the clip.
func (a *Animation) OnLastFrame() bool {
	return a.Frame+1 >= a.Start+a.Length
}

// Advance runs the frame timer for dt seconds and steps at most one frame
// per call, wrapping to the start of the clip.
func (a *Animation) Advance(dt float64) {
	if a.Period <= 0 {
		return
	}
	a.timer += dt
	if a.timer < a.Period {
		return
	}
	a.timer = math.Mod(a.timer, a.Period)

	if a.Frame >= a.Start && a.Frame+1 < a.Start+a.Length {
		a.Frame++
	} else {
		a.Frame = a.Start
	}
}
