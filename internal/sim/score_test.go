package sim

import (
	"testing"

	"github.com/antonvlasov/swoop/internal/config"
)

func TestPhaseForScore(t *testing.T) {
	cases := []struct {
		score int
		want  Phase
	}{
		{0, PhaseEasy},
		{24, PhaseEasy},
		{25, PhaseMedium},
		{49, PhaseMedium},
		{50, PhaseHard},
		{99, PhaseHard},
		{100, PhaseExpert},
		{1000, PhaseExpert},
	}

	prev := PhaseEasy
	for _, c := range cases {
		got := PhaseForScore(c.score)
		if got != c.want {
			t.Errorf("PhaseForScore(%d) = %v, want %v", c.score, got, c.want)
		}
		if got < prev {
			t.Errorf("phase must be non-decreasing in score, %v after %v", got, prev)
		}
		prev = got
	}
}

func TestPhaseTableExhaustive(t *testing.T) {
	cfg := config.Default()
	table := NewPhaseTable(cfg.Phases)

	for _, p := range []Phase{PhaseEasy, PhaseMedium, PhaseHard, PhaseExpert} {
		params := table.Params(p)
		if params.GapSize <= 0 || params.Speed <= 0 || params.SpawnInterval <= 0 {
			t.Errorf("phase %v has unset params: %+v", p, params)
		}
	}
}

func TestScoreTrackerPassDetection(t *testing.T) {
	cfg := config.Default()
	body := NewBody(cfg)
	s := NewScoreTracker(cfg.Scoring, Record{})

	obstacle := Obstacle{
		X:          body.X - cfg.Obstacles.Width - body.HalfHitbox() - 1, // fully behind the hitbox
		GapCenterY: 320,
		GapSize:    200,
		Width:      cfg.Obstacles.Width,
	}
	field := newTestField(cfg, obstacle)

	if passed := s.OnTick(body, field); passed != 1 {
		t.Fatalf("expected 1 pass, got %d", passed)
	}
	if s.Score() != cfg.Scoring.PassAward {
		t.Errorf("score = %d, want %d", s.Score(), cfg.Scoring.PassAward)
	}

	// Same obstacle must never score twice.
	if passed := s.OnTick(body, field); passed != 0 {
		t.Errorf("obstacle scored twice, got %d extra passes", passed)
	}
}

func TestScoreTrackerNotPassedWhileCollidable(t *testing.T) {
	// While any part of the hitbox is still over the obstacle, no score.
	cfg := config.Default()
	body := NewBody(cfg)
	s := NewScoreTracker(cfg.Scoring, Record{})

	obstacle := Obstacle{
		X:          body.X - cfg.Obstacles.Width, // trailing edge at player center
		GapCenterY: 320,
		GapSize:    200,
		Width:      cfg.Obstacles.Width,
	}
	field := newTestField(cfg, obstacle)

	if passed := s.OnTick(body, field); passed != 0 {
		t.Errorf("obstacle under the hitbox should not score, got %d passes", passed)
	}
}

func TestScoreAndCollisionMutuallyExclusive(t *testing.T) {
	// Sweep an obstacle past the player: at every position, an obstacle is
	// either collidable or scored, never both, and it scores exactly once.
	cfg := config.Default()
	r := NewResolver(cfg)
	body := NewBody(cfg)
	body.Y = 100 // inside the top section whenever overlap is possible
	s := NewScoreTracker(cfg.Scoring, Record{})

	field := newTestField(cfg, Obstacle{
		X:          cfg.World.Width,
		GapCenterY: 320,
		GapSize:    200,
		Width:      cfg.Obstacles.Width,
		Speed:      cfg.Phases.Easy.Speed,
	})

	for tick := 0; tick < 2000 && field.Len() > 0; tick++ {
		field.Advance(1.0 / 60.0)
		hit := r.Check(body, field)
		s.OnTick(body, field)

		if field.Len() > 0 && field.obstacles[0].Scored && hit.Obstacle() {
			t.Fatalf("obstacle both scored and colliding at x=%v", field.obstacles[0].X)
		}
	}

	if s.Score() != 1 {
		t.Errorf("obstacle should score exactly once, got %d", s.Score())
	}
}

func TestScoreTrackerStreak(t *testing.T) {
	cfg := config.Default()
	s := NewScoreTracker(cfg.Scoring, Record{})
	body := NewBody(cfg)

	pass := func() {
		field := newTestField(cfg, Obstacle{
			X:          body.X - cfg.Obstacles.Width - body.HalfHitbox() - 1,
			GapCenterY: 320,
			GapSize:    200,
			Width:      cfg.Obstacles.Width,
		})
		s.OnTick(body, field)
	}

	pass()
	pass()
	pass()
	if s.Streak() != 3 {
		t.Fatalf("streak = %d, want 3", s.Streak())
	}

	s.BreakStreak()
	if s.Streak() != 0 {
		t.Errorf("streak should reset on life loss, got %d", s.Streak())
	}
	if s.BestStreak() != 3 {
		t.Errorf("best streak should keep the maximum, got %d", s.BestStreak())
	}
	if s.Score() != 3 {
		t.Errorf("score should survive a streak break, got %d", s.Score())
	}
}

func TestScoreTrackerRecords(t *testing.T) {
	cfg := config.Default()
	s := NewScoreTracker(cfg.Scoring, Record{BestScore: 10, BestStreak: 4})

	s.score = 42
	s.FinishRun()
	if s.BestScore() != 42 {
		t.Errorf("best score should rise to 42, got %d", s.BestScore())
	}

	s.ResetRun()
	if s.Score() != 0 {
		t.Errorf("run reset should clear score, got %d", s.Score())
	}
	if s.BestScore() != 42 {
		t.Errorf("run reset must preserve records, got %d", s.BestScore())
	}

	// A worse run never lowers the record.
	s.score = 5
	s.FinishRun()
	if s.BestScore() != 42 {
		t.Errorf("records are monotonic, got %d", s.BestScore())
	}
}
