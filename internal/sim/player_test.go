package sim

import (
	"testing"

	"github.com/antonvlasov/swoop/internal/config"
)

func TestBodyGravity(t *testing.T) {
	cfg := config.Default()
	b := NewBody(cfg)
	startY := b.Y

	b.Integrate(0.016)

	if b.VelY <= 0 {
		t.Errorf("velocity should be positive (downward) after gravity, got %v", b.VelY)
	}
	if b.Y <= startY {
		t.Errorf("body should fall, was %v, now %v", startY, b.Y)
	}
}

func TestBodyJump(t *testing.T) {
	cfg := config.Default()
	b := NewBody(cfg)

	b.Jump()
	if b.VelY != cfg.Physics.JumpVelocity {
		t.Errorf("jump velocity = %v, want %v", b.VelY, cfg.Physics.JumpVelocity)
	}

	startY := b.Y
	b.Integrate(0.016)
	if b.Y >= startY {
		t.Errorf("body should move up after jump, was %v, now %v", startY, b.Y)
	}

	// Repeated taps simply reset the velocity, no gating.
	b.VelY = 100
	b.Jump()
	if b.VelY != cfg.Physics.JumpVelocity {
		t.Errorf("repeated jump should reset velocity, got %v", b.VelY)
	}
}

func TestBodyTerminalVelocity(t *testing.T) {
	cfg := config.Default()
	b := NewBody(cfg)

	for i := 0; i < 200; i++ {
		b.Integrate(0.016)
	}

	if b.VelY > cfg.Physics.MaxFallSpeed {
		t.Errorf("fall speed %v exceeds terminal velocity %v", b.VelY, cfg.Physics.MaxFallSpeed)
	}
}

func TestBodyFixedHorizontalPosition(t *testing.T) {
	cfg := config.Default()
	b := NewBody(cfg)
	startX := b.X

	b.Jump()
	for i := 0; i < 100; i++ {
		b.Integrate(0.016)
	}

	if b.X != startX {
		t.Errorf("x must never change during a run, was %v, now %v", startX, b.X)
	}
}

func TestBodyWaitingBobIsCosmetic(t *testing.T) {
	// The idle bob must move only the display offset; the authoritative
	// position used for collision once the run starts stays put.
	cfg := config.Default()
	b := NewBody(cfg)
	startY := b.Y

	moved := false
	for i := 0; i < 120; i++ {
		b.UpdateWaiting(1.0 / 60.0)
		if b.DisplayY() != b.Y {
			moved = true
		}
		if b.Y != startY {
			t.Fatalf("authoritative Y changed during waiting bob: %v -> %v", startY, b.Y)
		}
	}
	if !moved {
		t.Error("bob should move the display position")
	}

	b.stopWaiting()
	if b.DisplayY() != b.Y {
		t.Errorf("display position should equal Y after the run starts, got %v vs %v", b.DisplayY(), b.Y)
	}
}

func TestBodyHitboxSmallerThanSprite(t *testing.T) {
	cfg := config.Default()
	b := NewBody(cfg)

	hb := b.Hitbox()
	if hb.W >= b.VisualSize || hb.H >= b.VisualSize {
		t.Errorf("hitbox %vx%v should be smaller than sprite %v", hb.W, hb.H, b.VisualSize)
	}

	cx, cy := hb.Center()
	if cx != b.X || cy != b.Y {
		t.Errorf("hitbox center (%v, %v) should match body position (%v, %v)", cx, cy, b.X, b.Y)
	}
}

func TestBodyReset(t *testing.T) {
	cfg := config.Default()
	b := NewBody(cfg)
	startX, startY := b.X, b.Y

	b.Jump()
	b.Integrate(0.5)
	b.Reset(cfg)

	if b.X != startX || b.Y != startY || b.VelY != 0 {
		t.Errorf("reset should restore start state, got x=%v y=%v vel=%v", b.X, b.Y, b.VelY)
	}
}
