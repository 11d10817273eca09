package sim

// Snapshot captures the observable game state for determinism testing and
// debugging.
type Snapshot struct {
	Tick          uint64
	State         RunPhase
	Score         int
	Streak        int
	BestScore     int
	BestStreak    int
	Lives         int
	ContinuesUsed int
	Invulnerable  bool
	Phase         Phase
	PlayerY       float64
	PlayerVelY    float64
	Obstacles     int
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Tick:          g.tick,
		State:         g.state,
		Score:         g.score.Score(),
		Streak:        g.score.Streak(),
		BestScore:     g.score.BestScore(),
		BestStreak:    g.score.BestStreak(),
		Lives:         g.lives.Lives(),
		ContinuesUsed: g.lives.ContinuesUsed(),
		Invulnerable:  g.lives.Invulnerable(g.now),
		Phase:         g.score.Phase(),
		PlayerY:       g.body.Y,
		PlayerVelY:    g.body.VelY,
		Obstacles:     g.field.Len(),
	}
}
