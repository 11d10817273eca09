package sim

import "github.com/antonvlasov/swoop/internal/config"

// RunPhase is the state of the game session state machine.
type RunPhase int

const (
	RunWaiting RunPhase = iota // start screen, idle bob
	RunPlaying
	RunPaused
	RunGameOver
)

// String returns the state name.
func (p RunPhase) String() string {
	switch p {
	case RunWaiting:
		return "waiting"
	case RunPlaying:
		return "playing"
	case RunPaused:
		return "paused"
	case RunGameOver:
		return "game-over"
	default:
		return "unknown"
	}
}

// Record is the persisted best-score/best-streak pair.
type Record struct {
	BestScore  int
	BestStreak int
}

// Gateway loads and saves the player's records. Implemented by the host
// (SQLite in this repo). The core treats it as best-effort: a failed load
// yields a zero record and a failed save is ignored, in-memory state stays
// authoritative for the process lifetime.
type Gateway interface {
	Load() (Record, error)
	Save(Record) error
}

// Events is the observer interface the game notifies about state changes.
// All callbacks fire synchronously inside Tick or an input method.
type Events interface {
	OnScoreChanged(score int, phase Phase)
	OnLifeChanged(lives int)
	OnStateChanged(state RunPhase)
	OnGameOver(finalScore, bestScore int)
}

// NopEvents is an Events implementation that ignores everything.
type NopEvents struct{}

func (NopEvents) OnScoreChanged(int, Phase) {}
func (NopEvents) OnLifeChanged(int)         {}
func (NopEvents) OnStateChanged(RunPhase)   {}
func (NopEvents) OnGameOver(int, int)       {}

// Options tunes session-scoped modifiers that live outside the config file.
type Options struct {
	// HeartBooster raises the life cap to the boosted maximum.
	// Granting the booster (store purchase etc.) happens outside the core.
	HeartBooster bool
}

// Game orchestrates the simulation: one Tick call per rendered frame
// advances physics, obstacles, collision and the score/life side effects in
// a fixed order. All methods are no-ops when called in a state they do not
// apply to; the game never returns an error for bad input.
//
// Game is not safe for concurrent use. The host drives it from a single
// loop, which is the whole concurrency model.
type Game struct {
	cfg    config.Config
	phases PhaseTable

	body     *Body
	field    *Field
	resolver Resolver
	score    *ScoreTracker
	lives    *LifeSystem

	gateway Gateway
	events  Events

	state RunPhase
	now   float64 // run clock, seconds of simulated playing time
	tick  uint64
	seed  int64
	runs  int64
}

// New creates a game session. gateway and events may be nil. Records are
// loaded immediately; a load failure is treated as an empty record.
func New(cfg config.Config, seed int64, gateway Gateway, events Events, opts Options) *Game {
	if events == nil {
		events = NopEvents{}
	}

	var rec Record
	if gateway != nil {
		if loaded, err := gateway.Load(); err == nil {
			rec = loaded
		}
	}

	g := &Game{
		cfg:      cfg,
		phases:   NewPhaseTable(cfg.Phases),
		body:     NewBody(cfg),
		resolver: NewResolver(cfg),
		score:    NewScoreTracker(cfg.Scoring, rec),
		lives:    NewLifeSystem(cfg.Lives, opts.HeartBooster),
		gateway:  gateway,
		events:   events,
		state:    RunWaiting,
		seed:     seed,
	}
	g.field = NewField(cfg, g.runSeed())
	return g
}

// runSeed derives a fresh obstacle seed per run so restarts do not replay
// the same layout, while a fixed base seed keeps whole sessions replayable.
func (g *Game) runSeed() int64 {
	return g.seed + g.runs
}

// Tick advances the simulation by dt seconds. Large deltas (resumed app,
// stalled frame) are capped, then sub-stepped so no single integration step
// exceeds the configured maximum and fast bodies cannot tunnel through
// obstacles.
func (g *Game) Tick(dt float64) {
	if dt <= 0 {
		return
	}
	if dt > g.cfg.Physics.MaxFrameDelta {
		dt = g.cfg.Physics.MaxFrameDelta
	}

	switch g.state {
	case RunWaiting:
		g.body.UpdateWaiting(dt)
	case RunPlaying:
		maxStep := g.cfg.Physics.MaxStep
		for dt > 0 && g.state == RunPlaying {
			step := dt
			if step > maxStep {
				step = maxStep
			}
			g.step(step)
			dt -= step
		}
	case RunPaused, RunGameOver:
		// Frozen; nothing moves.
	}
}

// step advances one integration step while playing. Order is fixed:
// physics, then obstacles, then collision against the post-integration
// position, then score and life side effects.
func (g *Game) step(dt float64) {
	g.now += dt
	g.tick++

	params := g.phases.Params(g.score.Phase())

	g.body.Integrate(dt)
	g.field.SpawnTick(dt, params)
	g.field.Advance(dt)

	if hit := g.resolver.Check(g.body, g.field); hit != HitNone {
		g.onHit()
	}

	if passed := g.score.OnTick(g.body, g.field); passed > 0 {
		g.events.OnScoreChanged(g.score.Score(), g.score.Phase())
	}
}

// onHit applies a collision to the life system. Invulnerability makes
// repeated contact within the window a no-op, so one physical contact
// spanning many ticks costs exactly one life.
func (g *Game) onHit() {
	if !g.lives.ApplyHit(g.now) {
		return
	}
	g.score.BreakStreak()
	g.events.OnLifeChanged(g.lives.Lives())
	if g.lives.Lives() == 0 {
		g.finishRun()
	}
}

// finishRun transitions to game over, folds the score into the records and
// persists them fire-and-forget.
func (g *Game) finishRun() {
	g.state = RunGameOver
	g.score.FinishRun()
	if g.gateway != nil {
		// Best-effort save; in-memory records stay authoritative.
		_ = g.gateway.Save(Record{
			BestScore:  g.score.BestScore(),
			BestStreak: g.score.BestStreak(),
		})
	}
	g.events.OnStateChanged(RunGameOver)
	g.events.OnGameOver(g.score.Score(), g.score.BestScore())
}

// resetRun clears all run-scoped state, keeping records.
func (g *Game) resetRun() {
	g.now = 0
	g.tick = 0
	g.body.Reset(g.cfg)
	g.field.Reset(g.runSeed())
	g.score.ResetRun()
	g.lives.ResetRun()
}

// Tap is the primary input: it starts the run on the start screen and
// flaps while playing. In any other state it is ignored.
func (g *Game) Tap() {
	switch g.state {
	case RunWaiting:
		g.body.stopWaiting()
		g.state = RunPlaying
		g.events.OnStateChanged(RunPlaying)
	case RunPlaying:
		g.body.Jump()
	}
}

// Pause freezes the simulation. Only valid while playing.
func (g *Game) Pause() {
	if g.state != RunPlaying {
		return
	}
	g.state = RunPaused
	g.events.OnStateChanged(RunPaused)
}

// Resume continues a paused run.
func (g *Game) Resume() {
	if g.state != RunPaused {
		return
	}
	g.state = RunPlaying
	g.events.OnStateChanged(RunPlaying)
}

// Restart returns from game over to the start screen with a fully reset
// run. Records survive.
func (g *Game) Restart() {
	if g.state != RunGameOver {
		return
	}
	g.runs++
	g.resetRun()
	g.state = RunWaiting
	g.events.OnStateChanged(RunWaiting)
}

// ContinueWithAd revives after game over. Ad availability is gated by the
// host before this is forwarded.
func (g *Game) ContinueWithAd() {
	g.useContinue()
}

// ContinueWithCurrency revives after game over. The currency balance check
// happens in the host before this is forwarded.
func (g *Game) ContinueWithCurrency() {
	g.useContinue()
}

func (g *Game) useContinue() {
	if g.state != RunGameOver {
		return
	}
	if !g.lives.UseContinue(g.now) {
		return
	}
	g.state = RunPlaying
	g.events.OnLifeChanged(g.lives.Lives())
	g.events.OnStateChanged(RunPlaying)
}

// GrantLife adds n lives mid-run, an external reward event. Ignored in any
// other state.
func (g *Game) GrantLife(n int) {
	if g.state != RunPlaying || n <= 0 {
		return
	}
	g.lives.AddLife(n)
	g.events.OnLifeChanged(g.lives.Lives())
}

// State returns the current run phase.
func (g *Game) State() RunPhase { return g.state }

// Score returns the current run score.
func (g *Game) Score() int { return g.score.Score() }

// BestScore returns the best final score across runs.
func (g *Game) BestScore() int { return g.score.BestScore() }

// BestStreak returns the longest no-hit streak across runs.
func (g *Game) BestStreak() int { return g.score.BestStreak() }

// Streak returns the current no-hit pass streak.
func (g *Game) Streak() int { return g.score.Streak() }

// Lives returns the current life count.
func (g *Game) Lives() int { return g.lives.Lives() }

// MaxLives returns the life cap for this session.
func (g *Game) MaxLives() int { return g.lives.MaxLives() }

// ContinuesUsed returns how many continues the run consumed.
func (g *Game) ContinuesUsed() int { return g.lives.ContinuesUsed() }

// ContinueAvailable reports whether a continue could currently succeed.
func (g *Game) ContinueAvailable() bool {
	return g.state == RunGameOver && g.lives.ContinueAvailable()
}

// Invulnerable reports whether the body currently ignores hits.
func (g *Game) Invulnerable() bool { return g.lives.Invulnerable(g.now) }

// Phase returns the difficulty phase for the current score.
func (g *Game) Phase() Phase { return g.score.Phase() }

// PhaseParams returns the tuning of the active phase.
func (g *Game) PhaseParams() config.PhaseParams {
	return g.phases.Params(g.score.Phase())
}

// Body returns the player body for rendering.
func (g *Game) Body() *Body { return g.body }

// Obstacles returns a copy of the live obstacles for rendering.
func (g *Game) Obstacles() []Obstacle { return g.field.Obstacles() }

// Config returns the session config, used by the renderer for world size.
func (g *Game) Config() config.Config { return g.cfg }

// Now returns the run clock in seconds of simulated playing time.
func (g *Game) Now() float64 { return g.now }
