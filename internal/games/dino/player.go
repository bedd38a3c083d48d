package dino

import (
	"github.com/vovakirdan/capydino/internal/config"
	"github.com/vovakirdan/capydino/internal/core"
)

// Player is the runner's kinematic state. Y grows downwards.
type Player struct {
	X, Y     float64
	Width    float64
	Height   float64
	VY       float64 // Vertical velocity, negative is up
	Grounded bool
	Ducking  bool

	hitbox config.Hitbox
}

// Rect returns the sprite rectangle.
func (p Player) Rect() core.Rect {
	return core.NewRect(p.X, p.Y, p.Width, p.Height)
}

// HitboxRect returns the smaller rectangle used for collisions.
func (p Player) HitboxRect() core.Rect {
	return core.NewRect(p.X, p.Y, p.hitbox.Width, p.hitbox.Height).
		Translate(p.hitbox.OffsetX, p.hitbox.OffsetY)
}

// restY is the Y at which the player of the current height stands on the ground.
func (g *Game) restY() float64 {
	return g.groundY - g.player.Height + g.cfg.Player.FootSink
}

// standPlayer puts the player on the ground in the standing pose.
func (g *Game) standPlayer() {
	pc := g.cfg.Player
	g.player = Player{
		X:        pc.X,
		Width:    pc.Width,
		Height:   pc.Height,
		Grounded: true,
		hitbox:   pc.Hitbox,
	}
	g.player.Y = g.restY()
}

// updatePlayer integrates gravity and lands the player on the ground line.
func (g *Game) updatePlayer() {
	p := &g.player
	p.VY += g.cfg.Physics.Gravity
	p.Y += p.VY

	if rest := g.restY(); p.Y >= rest {
		p.Y = rest
		p.VY = 0
		p.Grounded = true
	}
}

// Jump starts the game, makes the player jump, or restarts after a crash,
// depending on the phase. Returns true if it had an effect.
func (g *Game) Jump() bool {
	switch g.phase {
	case core.PhaseStart:
		g.phase = core.PhasePlaying
		g.emit(core.EventStarted)
		return true
	case core.PhasePlaying:
		if g.paused || !g.player.Grounded || g.player.Ducking {
			return false
		}
		g.player.VY = -g.cfg.Player.JumpPower
		g.player.Grounded = false
		g.emit(core.EventJumped)
		return true
	case core.PhaseGameOver:
		g.Restart()
		return true
	}
	return false
}

// Duck swaps between the ducking and standing pose, keeping the feet on the
// ground line. Only accepted while playing and grounded.
func (g *Game) Duck(down bool) bool {
	if g.phase != core.PhasePlaying || !g.player.Grounded {
		return false
	}

	g.player.Ducking = down
	if down {
		g.player.Height = g.cfg.Player.DuckHeight
	} else {
		g.player.Height = g.cfg.Player.Height
	}
	g.player.Y = g.restY()
	return true
}
