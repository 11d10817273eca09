package sim

import (
	"math"

	"github.com/antonvlasov/swoop/internal/config"
	"github.com/antonvlasov/swoop/internal/core"
)

// Idle bobbing on the start screen, render-side only.
const (
	bobAmplitude = 9.0 // world units
	bobFrequency = 5.0 // radians per second
)

// Body is the player's physics state. X is fixed for the whole run (the
// world scrolls, not the player); Y and VelY change every playing tick.
//
// Y is the single authoritative vertical position: Integrate is the only
// function that mutates it while playing, and the start-screen bob lives in
// a separate offset that never feeds back into it. Rendering and collision
// therefore always agree on where the body is.
type Body struct {
	X    float64
	Y    float64
	VelY float64

	VisualSize     float64
	CollisionRatio float64

	gravity      float64
	jumpVelocity float64
	maxFallSpeed float64

	bobPhase  float64
	bobOffset float64
}

// NewBody creates the player body placed at the configured start ratios.
func NewBody(cfg config.Config) *Body {
	b := &Body{
		VisualSize:     cfg.Player.VisualSize,
		CollisionRatio: cfg.Player.CollisionRatio,
		gravity:        cfg.Physics.Gravity,
		jumpVelocity:   cfg.Physics.JumpVelocity,
		maxFallSpeed:   cfg.Physics.MaxFallSpeed,
	}
	b.Reset(cfg)
	return b
}

// Reset places the body at the run start position with zero velocity.
func (b *Body) Reset(cfg config.Config) {
	b.X = cfg.World.Width * cfg.Player.XRatio
	b.Y = cfg.World.Height * cfg.Player.YRatio
	b.VelY = 0
	b.bobPhase = 0
	b.bobOffset = 0
}

// Integrate advances the body by dt seconds: gravity acceleration, position
// update, then velocity clamp to [jump velocity, max fall speed].
func (b *Body) Integrate(dt float64) {
	b.VelY += b.gravity * dt
	b.Y += b.VelY * dt
	b.VelY = core.ClampF(b.VelY, b.jumpVelocity, b.maxFallSpeed)
}

// Jump sets the upward impulse velocity. Repeated taps simply reset the
// velocity; there is no double-jump gating.
func (b *Body) Jump() {
	b.VelY = b.jumpVelocity
}

// UpdateWaiting advances the cosmetic idle bob shown before a run starts.
// It only moves the bob offset; the authoritative Y is untouched so the
// first playing tick starts exactly where the renderer showed the body.
func (b *Body) UpdateWaiting(dt float64) {
	b.bobPhase += bobFrequency * dt
	b.bobOffset = math.Sin(b.bobPhase) * bobAmplitude
}

// DisplayY returns the vertical position the renderer should draw at.
// Outside the waiting state the offset is zero and this equals Y.
func (b *Body) DisplayY() float64 {
	return b.Y + b.bobOffset
}

// stopWaiting clears the idle bob when a run begins.
func (b *Body) stopWaiting() {
	b.bobPhase = 0
	b.bobOffset = 0
}

// HalfHitbox returns half the side of the collision square.
func (b *Body) HalfHitbox() float64 {
	return b.VisualSize * b.CollisionRatio / 2
}

// Hitbox returns the collision square centered on the body position.
// It is smaller than the visual sprite, which is the player-favoring
// forgiveness the game is tuned around.
func (b *Body) Hitbox() core.RectF {
	side := b.VisualSize * b.CollisionRatio
	half := side / 2
	return core.NewRectF(b.X-half, b.Y-half, side, side)
}
