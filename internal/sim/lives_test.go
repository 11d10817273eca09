package sim

import (
	"testing"

	"github.com/antonvlasov/swoop/internal/config"
)

func TestLifeSystemSingleLossPerWindow(t *testing.T) {
	// Repeated hits inside one invulnerability window cost one life total.
	cfg := config.Default()
	l := NewLifeSystem(cfg.Lives, false)

	if !l.ApplyHit(0) {
		t.Fatal("first hit should land")
	}
	if l.Lives() != cfg.Lives.MaxLives-1 {
		t.Fatalf("lives = %d, want %d", l.Lives(), cfg.Lives.MaxLives-1)
	}

	for now := 0.1; now < cfg.Lives.InvulnerableSecs; now += 0.1 {
		if l.ApplyHit(now) {
			t.Fatalf("hit at %v landed inside the invulnerability window", now)
		}
	}
	if l.Lives() != cfg.Lives.MaxLives-1 {
		t.Errorf("lives = %d after repeated hits, want %d", l.Lives(), cfg.Lives.MaxLives-1)
	}

	// After the window closes the next hit lands again.
	if !l.ApplyHit(cfg.Lives.InvulnerableSecs + 0.1) {
		t.Error("hit after the window should land")
	}
	if l.Lives() != cfg.Lives.MaxLives-2 {
		t.Errorf("lives = %d, want %d", l.Lives(), cfg.Lives.MaxLives-2)
	}
}

func TestLifeSystemLastLife(t *testing.T) {
	cfg := config.Default()
	l := NewLifeSystem(cfg.Lives, false)
	l.lives = 1

	if !l.ApplyHit(0) {
		t.Fatal("hit with no prior invulnerability should land")
	}
	if l.Lives() != 0 {
		t.Errorf("lives = %d, want 0", l.Lives())
	}

	// Lives never go negative.
	l.ApplyHit(cfg.Lives.InvulnerableSecs + 1)
	if l.Lives() != 0 {
		t.Errorf("lives must not go below zero, got %d", l.Lives())
	}
}

func TestLifeSystemContinue(t *testing.T) {
	cfg := config.Default()
	l := NewLifeSystem(cfg.Lives, false)
	l.lives = 0

	if !l.UseContinue(10) {
		t.Fatal("continue with budget left should succeed")
	}
	if l.Lives() != 1 {
		t.Errorf("lives = %d after continue, want 1", l.Lives())
	}
	if l.ContinuesUsed() != 1 {
		t.Errorf("continues used = %d, want 1", l.ContinuesUsed())
	}
	if !l.Invulnerable(10.5) {
		t.Error("continue should start an invulnerability window")
	}

	// Continue is only valid at zero lives.
	if l.UseContinue(20) {
		t.Error("continue with lives remaining should fail")
	}
}

func TestLifeSystemContinueBudget(t *testing.T) {
	cfg := config.Default()
	l := NewLifeSystem(cfg.Lives, false)

	for i := 0; i < cfg.Lives.MaxContinues; i++ {
		l.lives = 0
		if !l.UseContinue(float64(i * 10)) {
			t.Fatalf("continue %d should succeed", i+1)
		}
	}

	l.lives = 0
	if l.UseContinue(100) {
		t.Error("continue beyond the per-run budget should fail")
	}

	l.ResetRun()
	if l.ContinuesUsed() != 0 {
		t.Errorf("run reset should clear continue accounting, got %d", l.ContinuesUsed())
	}
	if l.Lives() != cfg.Lives.MaxLives {
		t.Errorf("run reset should restore full lives, got %d", l.Lives())
	}
}

func TestLifeSystemAddLifeCap(t *testing.T) {
	cfg := config.Default()
	l := NewLifeSystem(cfg.Lives, false)

	l.AddLife(5)
	if l.Lives() != cfg.Lives.MaxLives {
		t.Errorf("lives must not exceed the cap, got %d", l.Lives())
	}

	l.lives = 1
	l.AddLife(1)
	if l.Lives() != 2 {
		t.Errorf("lives = %d, want 2", l.Lives())
	}
}

func TestLifeSystemHeartBooster(t *testing.T) {
	cfg := config.Default()
	l := NewLifeSystem(cfg.Lives, true)

	if l.MaxLives() != cfg.Lives.BoostedMaxLives {
		t.Errorf("boosted cap = %d, want %d", l.MaxLives(), cfg.Lives.BoostedMaxLives)
	}
	if l.Lives() != cfg.Lives.BoostedMaxLives {
		t.Errorf("boosted run should start with %d lives, got %d", cfg.Lives.BoostedMaxLives, l.Lives())
	}
}
