package survivor

import (
	"math"
	"unicode/utf8"

	"github.com/vovakirdan/tui-survivor/internal/config"
	"github.com/vovakirdan/tui-survivor/internal/core"
)

// Visual characters for rendering
const (
	BodyChar        = '█'
	HeadChar        = '◆'
	LegLeft         = '╱'
	LegRight        = '╲'
	EnemyChar       = '▓'
	EnemyAltChar    = '▒'
	EnemyEyeChar    = '●'
	DeadChar        = '░'
	DeadEyeChar     = '×'
	GroundChar      = '═'
	FacingRightChar = '▶'
	FacingLeftChar  = '◀'
)

// viewport maps world units onto the cell grid. The world origin is the
// center of the screen and y points up.
type viewport struct {
	worldW, worldH float64
	cols, rows     int
}

func (v viewport) col(x float64) int {
	return int(math.Floor((x + v.worldW/2) / v.worldW * float64(v.cols)))
}

func (v viewport) row(y float64) int {
	return int(math.Floor((v.worldH/2 - y) / v.worldH * float64(v.rows)))
}

// rect converts a world box into a cell rectangle at least one cell large.
func (v viewport) rect(b core.Box) core.Rect {
	lo, hi := b.Min(), b.Max()
	x, y := v.col(lo.X), v.row(hi.Y)
	w := max(v.col(hi.X)-x, 1)
	h := max(v.row(lo.Y)-y, 1)
	return core.NewRect(x, y, w, h)
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if g.sim == nil {
		return
	}
	RenderView(dst, g.sim.View(), g.sim.Config())
}

// RenderView draws a simulation view. It only reads v and cfg.
func RenderView(dst *core.Screen, v View, cfg config.SurvivorConfig) {
	vp := viewport{
		worldW: cfg.World.Width,
		worldH: cfg.World.Height,
		cols:   dst.Width(),
		rows:   dst.Height(),
	}

	feet := cfg.GroundY() - cfg.Player.Height*cfg.Player.Scale/2
	dst.DrawHLine(0, vp.row(feet), dst.Width(), GroundChar, core.ColorGray)

	for _, s := range v.Sprites {
		switch s.Kind {
		case KindPlayer:
			drawPlayer(dst, vp, s, cfg)
		case KindDeadPlayer:
			drawDeadPlayer(dst, vp, s, cfg)
		case KindEnemy:
			drawEnemy(dst, vp, s, cfg)
		}
	}

	if v.ScoreVisible {
		dst.DrawTextColored(2, 0, " "+v.ScoreLabel+v.ScoreText+" ", core.ColorBrightYellow)
	}

	if v.Prompt != "" {
		mid := vp.row(cfg.World.Height / 10)
		dst.DrawTextCentered(mid-2, "S U R V I V O R", core.ColorBrightMagenta)
		dst.DrawTextCentered(mid, v.Prompt, core.ColorWhite)
		dst.DrawTextCentered(mid+2, "A/D move  W/Space jump  Q quit", core.ColorGray)
	}

	if v.State == StateDead {
		drawCenteredMessage(dst, "YOU DIED", "Score: "+v.ScoreText+"  |  Esc to retry")
	}
}

func spriteBox(s Sprite, w, h float64) core.Box {
	return core.NewBox(s.Pos.X, s.Pos.Y, w*core.Abs(s.Scale.X), h*core.Abs(s.Scale.Y))
}

// drawPlayer renders the live player as a block figure. The head marks the
// facing side and the legs alternate with the walk cycle.
func drawPlayer(dst *core.Screen, vp viewport, s Sprite, cfg config.SurvivorConfig) {
	r := vp.rect(spriteBox(s, cfg.Player.Width, cfg.Player.Height))

	for y := r.Y; y < r.Bottom(); y++ {
		for x := r.X; x < r.Right(); x++ {
			dst.SetColored(x, y, BodyChar, core.ColorCyan)
		}
	}

	headX, arrow := r.Right()-1, FacingRightChar
	if s.Scale.X < 0 {
		headX, arrow = r.X, FacingLeftChar
	}
	dst.SetColored(headX, r.Y, HeadChar, core.ColorWhite)
	dst.SetColored(headX, r.Y+min(1, r.H-1), arrow, core.ColorWhite)

	if r.H < 2 {
		return
	}
	legs := r.Bottom() - 1
	for x := r.X; x < r.Right(); x++ {
		dst.SetColored(x, legs, ' ', core.ColorDefault)
	}
	switch {
	case s.Airborne:
		dst.SetColored(r.X, legs, LegRight, core.ColorCyan)
		dst.SetColored(r.Right()-1, legs, LegLeft, core.ColorCyan)
	case cfg.Animation.Walk.Length > 0 && s.Frame >= cfg.Animation.Walk.Start &&
		((s.Frame-cfg.Animation.Walk.Start)/5)%2 == 1:
		dst.SetColored(r.X+r.W/3, legs, LegLeft, core.ColorCyan)
		dst.SetColored(r.Right()-1-r.W/3, legs, LegRight, core.ColorCyan)
	default:
		dst.SetColored(r.X, legs, LegLeft, core.ColorCyan)
		dst.SetColored(r.Right()-1, legs, LegRight, core.ColorCyan)
	}
}

// drawDeadPlayer renders the dead body with its own, wider sprite size.
// It sinks as the death clip plays.
func drawDeadPlayer(dst *core.Screen, vp viewport, s Sprite, cfg config.SurvivorConfig) {
	r := vp.rect(spriteBox(s, cfg.Player.DeadWidth, cfg.Player.DeadHeight))

	clip := cfg.Animation.Dead
	if clip.Length > 1 {
		progress := float64(s.Frame-clip.Start) / float64(clip.Length-1)
		sunk := int(progress * float64(r.H-1))
		r.Y += sunk
		r.H -= sunk
	}

	for y := r.Y; y < r.Bottom(); y++ {
		for x := r.X; x < r.Right(); x++ {
			dst.SetColored(x, y, DeadChar, core.ColorRed)
		}
	}
	dst.SetColored(r.X+r.W/2, r.Y, DeadEyeChar, core.ColorBrightRed)
}

// drawEnemy renders an enemy with a flickering body.
func drawEnemy(dst *core.Screen, vp viewport, s Sprite, cfg config.SurvivorConfig) {
	r := vp.rect(spriteBox(s, cfg.Enemies.Width, cfg.Enemies.Height))

	fill := EnemyChar
	if (s.Frame/3)%2 == 1 {
		fill = EnemyAltChar
	}
	for y := r.Y; y < r.Bottom(); y++ {
		for x := r.X; x < r.Right(); x++ {
			dst.SetColored(x, y, fill, core.ColorMagenta)
		}
	}
	dst.SetColored(r.X, r.Y, EnemyEyeChar, core.ColorBrightYellow)
}

// drawCenteredMessage draws a message box in the center of the screen.
func drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := max(utf8.RuneCountInString(title), utf8.RuneCountInString(subtitle)) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	box := core.NewRect(boxX, boxY, boxW, boxH)
	dst.DrawRect(box, ' ')
	dst.DrawBox(box, core.ColorRed)

	dst.DrawTextColored(boxX+(boxW-utf8.RuneCountInString(title))/2, boxY+1, title, core.ColorBrightRed)
	dst.DrawTextColored(boxX+(boxW-utf8.RuneCountInString(subtitle))/2, boxY+3, subtitle, core.ColorWhite)
}
