package sim

import "github.com/antonvlasov/swoop/internal/config"

// Phase is a difficulty tier derived purely from the cumulative score.
// It controls the gap size, scroll speed and spawn interval of obstacles
// spawned while it is active.
type Phase int

const (
	PhaseEasy Phase = iota
	PhaseMedium
	PhaseHard
	PhaseExpert
)

// Fixed score thresholds for phase progression.
const (
	mediumThreshold = 25
	hardThreshold   = 50
	expertThreshold = 100
)

// String returns the phase name.
func (p Phase) String() string {
	switch p {
	case PhaseEasy:
		return "Easy"
	case PhaseMedium:
		return "Medium"
	case PhaseHard:
		return "Hard"
	case PhaseExpert:
		return "Expert"
	default:
		return "Unknown"
	}
}

// PhaseForScore maps a score to its phase. The mapping is total and
// non-decreasing in score.
func PhaseForScore(score int) Phase {
	switch {
	case score >= expertThreshold:
		return PhaseExpert
	case score >= hardThreshold:
		return PhaseHard
	case score >= mediumThreshold:
		return PhaseMedium
	default:
		return PhaseEasy
	}
}

// PhaseTable resolves a phase to its tuning parameters.
type PhaseTable struct {
	params [4]config.PhaseParams
}

// NewPhaseTable builds the table from config. The assignment is exhaustive
// over all phases.
func NewPhaseTable(cfg config.Phases) PhaseTable {
	var t PhaseTable
	t.params[PhaseEasy] = cfg.Easy
	t.params[PhaseMedium] = cfg.Medium
	t.params[PhaseHard] = cfg.Hard
	t.params[PhaseExpert] = cfg.Expert
	return t
}

// Params returns the parameters for the given phase.
func (t PhaseTable) Params(p Phase) config.PhaseParams {
	return t.params[p]
}

// ScoreTracker detects obstacle passes and maintains the run score, the
// current no-hit streak, and the persisted records.
type ScoreTracker struct {
	score      int
	streak     int // passes since the last life loss
	bestScore  int
	bestStreak int
	passAward  int
}

// NewScoreTracker creates a tracker seeded with the persisted records.
func NewScoreTracker(cfg config.Scoring, rec Record) *ScoreTracker {
	return &ScoreTracker{
		passAward:  cfg.PassAward,
		bestScore:  rec.BestScore,
		bestStreak: rec.BestStreak,
	}
}

// OnTick marks every obstacle whose trailing edge the player hitbox has
// fully cleared as scored and awards points for it. Because the comparison
// is against the hitbox's leading edge, an obstacle can never be scored
// while it is still collidable. Returns the number of passes this tick.
func (s *ScoreTracker) OnTick(body *Body, field *Field) int {
	passed := 0
	leading := body.X - body.HalfHitbox()
	for i := range field.obstacles {
		o := &field.obstacles[i]
		if o.Scored || leading <= o.Right() {
			continue
		}
		o.Scored = true
		passed++
	}
	if passed > 0 {
		s.score += passed * s.passAward
		s.streak += passed
		if s.streak > s.bestStreak {
			s.bestStreak = s.streak
		}
	}
	return passed
}

// BreakStreak resets the no-hit streak after a life loss.
func (s *ScoreTracker) BreakStreak() {
	s.streak = 0
}

// FinishRun folds the final score into the records, monotonic max.
func (s *ScoreTracker) FinishRun() {
	if s.score > s.bestScore {
		s.bestScore = s.score
	}
}

// ResetRun clears the run-scoped score and streak, keeping records.
func (s *ScoreTracker) ResetRun() {
	s.score = 0
	s.streak = 0
}

// Score returns the current run score.
func (s *ScoreTracker) Score() int { return s.score }

// Streak returns the current no-hit pass streak.
func (s *ScoreTracker) Streak() int { return s.streak }

// BestScore returns the best final score seen, including past runs.
func (s *ScoreTracker) BestScore() int { return s.bestScore }

// BestStreak returns the longest no-hit streak seen, including past runs.
func (s *ScoreTracker) BestStreak() int { return s.bestStreak }

// Phase returns the difficulty phase for the current score.
func (s *ScoreTracker) Phase() Phase { return PhaseForScore(s.score) }
