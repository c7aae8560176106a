package survivor

import (
	"github.com/vovakirdan/tui-survivor/internal/config"
	"github.com/vovakirdan/tui-survivor/internal/core"
)

// playerBox returns the sprite-sized box of a player at its position.
func playerBox(e *Entity, cfg *config.SurvivorConfig) core.Box {
	return core.NewBox(e.Pos.X, e.Pos.Y,
		cfg.Player.Width*core.Abs(e.Scale.X),
		cfg.Player.Height*core.Abs(e.Scale.Y))
}

// enemyBox returns the sprite-sized box of an enemy at its position.
func enemyBox(e *Entity, cfg *config.SurvivorConfig) core.Box {
	return core.NewBox(e.Pos.X, e.Pos.Y,
		cfg.Enemies.Width*core.Abs(e.Scale.X),
		cfg.Enemies.Height*core.Abs(e.Scale.Y))
}

// spawnPlayer creates a grounded, idle player at the spawn point facing right.
func spawnPlayer(w *World, cfg *config.SurvivorConfig) *Entity {
	return w.Spawn(Entity{
		Kind:  KindPlayer,
		Pos:   core.Vec2{X: cfg.SpawnX(), Y: cfg.GroundY()},
		Depth: cfg.Player.Depth,
		Scale: core.Vec2{X: cfg.Player.Scale, Y: cfg.Player.Scale},
		Anim:  NewAnimation(cfg.Animation.Idle, cfg.Animation.PlayerFrame),
	})
}

// resetPlayer moves the live player back to the spawn point and stops it.
func resetPlayer(w *World, cfg *config.SurvivorConfig) {
	p := w.Player()
	if p == nil {
		return
	}
	p.Pos = core.Vec2{X: cfg.SpawnX(), Y: cfg.GroundY()}
	p.Vel = core.Vec2{}
}

// movePlayer applies walk and jump input to the live player and integrates
// its position by one fixed step.
func movePlayer(w *World, in Input, cfg *config.SurvivorConfig, step float64) {
	p := w.Player()
	if p == nil {
		return
	}

	// Left wins when both directions are held.
	switch {
	case in.Left:
		p.Vel.X = -cfg.Player.WalkSpeed
		p.Scale.X = -core.Abs(p.Scale.X)
	case in.Right:
		p.Vel.X = cfg.Player.WalkSpeed
		p.Scale.X = core.Abs(p.Scale.X)
	default:
		p.Vel.X = 0
	}

	// Airborne players keep the jump clip until they land.
	if !p.Gravity {
		if p.Vel.X != 0 {
			p.Anim.SetClip(cfg.Animation.Walk)
		} else {
			p.Anim.SetClip(cfg.Animation.Idle)
		}
	}

	p.Pos = p.Pos.Add(p.Vel.Scale(step))

	limit := cfg.World.Width/2 - cfg.Player.Width*core.Abs(p.Scale.X)/2
	p.Pos.X = core.ClampF(p.Pos.X, -limit, limit)

	if in.Jump && !p.Gravity {
		p.Vel.Y = cfg.Player.JumpImpulse
		p.Gravity = true
		p.Anim.SetClip(cfg.Animation.Jump)
	}

	ground := cfg.GroundY()
	if p.Pos.Y < ground {
		p.Vel.Y = 0
		p.Pos.Y = ground
		p.Gravity = false
	}
}

// checkCollision replaces the live player with a dead player when the
// shrunk boxes of the player and any enemy overlap. It reports whether the
// player died; at most one dead player is created per call.
func checkCollision(w *World, cfg *config.SurvivorConfig) bool {
	p := w.Player()
	if p == nil {
		return false
	}

	pb := playerBox(p, cfg).Shrink(cfg.Player.HitMargin)
	for _, e := range w.Enemies() {
		eb := enemyBox(e, cfg).Shrink(cfg.Player.HitMargin)
		if !pb.Overlaps(eb) {
			continue
		}

		w.Spawn(Entity{
			Kind:  KindDeadPlayer,
			Pos:   p.Pos,
			Depth: p.Depth,
			Scale: core.Vec2{X: cfg.Player.Scale, Y: cfg.Player.Scale},
			// Drops from rest; a body hit on the ground lands next step.
			Gravity: true,
			Anim:    NewAnimation(cfg.Animation.Dead, cfg.Animation.DeadFrame),
		})
		w.Despawn(p.ID)
		return true
	}
	return false
}

// moveDeadPlayer integrates the motion of a falling dead player.
func moveDeadPlayer(w *World, cfg *config.SurvivorConfig, step float64) {
	d := w.DeadPlayer()
	if d == nil {
		return
	}
	d.Pos = d.Pos.Add(d.Vel.Scale(step))

	ground := cfg.GroundY()
	if d.Pos.Y < ground {
		d.Vel.Y = 0
		d.Pos.Y = ground
		d.Gravity = false
	}
}

// animateDeadPlayer advances the one-shot death clip. It reports true once
// the clip sits on its last frame, and keeps reporting true on later calls.
func animateDeadPlayer(w *World, dt float64) bool {
	d := w.DeadPlayer()
	if d == nil {
		return false
	}
	if d.Anim.OnLastFrame() {
		return true
	}
	d.Anim.Advance(dt)
	return false
}

// cleanupDeadPlayer removes any dead player.
func cleanupDeadPlayer(w *World) {
	w.DespawnKind(KindDeadPlayer)
}
