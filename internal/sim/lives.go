package sim

import "github.com/antonvlasov/swoop/internal/config"

// LifeSystem tracks lives, the post-hit invulnerability window and continue
// accounting for the current run. Time is the run clock in seconds; there
// are no scheduled callbacks, only timestamp comparisons per tick.
type LifeSystem struct {
	lives    int
	maxLives int

	invulnUntil   float64
	invulnForSecs float64

	continuesUsed int
	maxContinues  int
}

// NewLifeSystem creates a life system. With boosted true the heart-booster
// cap applies (an external purchase modifier, granted outside the core).
func NewLifeSystem(cfg config.Lives, boosted bool) *LifeSystem {
	max := cfg.MaxLives
	if boosted {
		max = cfg.BoostedMaxLives
	}
	l := &LifeSystem{
		maxLives:      max,
		invulnForSecs: cfg.InvulnerableSecs,
		maxContinues:  cfg.MaxContinues,
	}
	l.ResetRun()
	return l
}

// ResetRun restores full lives and clears all run-scoped accounting.
func (l *LifeSystem) ResetRun() {
	l.lives = l.maxLives
	l.invulnUntil = -1
	l.continuesUsed = 0
}

// Invulnerable reports whether hits are currently ignored.
func (l *LifeSystem) Invulnerable(now float64) bool {
	return now < l.invulnUntil
}

// ApplyHit removes exactly one life and opens the invulnerability window.
// During the window it is a no-op, which is what collapses a multi-tick
// contact (resting on the ground, sliding along an obstacle) into a single
// life loss. Returns true if a life was actually lost.
func (l *LifeSystem) ApplyHit(now float64) bool {
	if l.Invulnerable(now) {
		return false
	}
	if l.lives > 0 {
		l.lives--
	}
	l.invulnUntil = now + l.invulnForSecs
	return true
}

// UseContinue revives with one life if the run is out of lives and the
// per-run continue budget is not exhausted. Returns false otherwise.
func (l *LifeSystem) UseContinue(now float64) bool {
	if l.lives != 0 || l.continuesUsed >= l.maxContinues {
		return false
	}
	l.lives = 1
	l.continuesUsed++
	l.invulnUntil = now + l.invulnForSecs
	return true
}

// AddLife grants n extra lives, capped at the maximum.
func (l *LifeSystem) AddLife(n int) {
	l.lives += n
	if l.lives > l.maxLives {
		l.lives = l.maxLives
	}
}

// Lives returns the current life count.
func (l *LifeSystem) Lives() int { return l.lives }

// MaxLives returns the life cap for this session.
func (l *LifeSystem) MaxLives() int { return l.maxLives }

// ContinuesUsed returns how many continues this run consumed.
func (l *LifeSystem) ContinuesUsed() int { return l.continuesUsed }

// ContinueAvailable reports whether UseContinue could currently succeed.
func (l *LifeSystem) ContinueAvailable() bool {
	return l.lives == 0 && l.continuesUsed < l.maxContinues
}
