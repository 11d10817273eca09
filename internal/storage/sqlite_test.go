package storage

import (
	"path/filepath"
	"testing"

	"github.com/antonvlasov/swoop/internal/config"
	"github.com/antonvlasov/swoop/internal/sim"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "swoop.db")
	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestLoadRecordMissingProfile(t *testing.T) {
	store := newTestStore(t)

	rec, err := store.LoadRecord("nobody")
	if err != nil {
		t.Fatalf("LoadRecord failed: %v", err)
	}
	if rec.BestScore != 0 || rec.BestStreak != 0 {
		t.Errorf("expected zero record for missing profile, got %+v", rec)
	}
}

func TestSaveAndLoadRecord(t *testing.T) {
	store := newTestStore(t)

	want := sim.Record{BestScore: 42, BestStreak: 17}
	if err := store.SaveRecord("alice", want); err != nil {
		t.Fatalf("SaveRecord failed: %v", err)
	}

	got, err := store.LoadRecord("alice")
	if err != nil {
		t.Fatalf("LoadRecord failed: %v", err)
	}
	if got != want {
		t.Errorf("got %+v, want %+v", got, want)
	}
}

func TestSaveRecordUpsert(t *testing.T) {
	store := newTestStore(t)

	if err := store.SaveRecord("bob", sim.Record{BestScore: 10, BestStreak: 5}); err != nil {
		t.Fatalf("first SaveRecord failed: %v", err)
	}
	if err := store.SaveRecord("bob", sim.Record{BestScore: 30, BestStreak: 12}); err != nil {
		t.Fatalf("second SaveRecord failed: %v", err)
	}

	got, err := store.LoadRecord("bob")
	if err != nil {
		t.Fatalf("LoadRecord failed: %v", err)
	}
	if got.BestScore != 30 || got.BestStreak != 12 {
		t.Errorf("upsert did not overwrite: %+v", got)
	}
}

func TestRecordsIsolatedPerProfile(t *testing.T) {
	store := newTestStore(t)

	store.SaveRecord("alice", sim.Record{BestScore: 100})
	store.SaveRecord("bob", sim.Record{BestScore: 7})

	alice, _ := store.LoadRecord("alice")
	bob, _ := store.LoadRecord("bob")
	if alice.BestScore != 100 || bob.BestScore != 7 {
		t.Errorf("profile records leaked: alice=%+v bob=%+v", alice, bob)
	}
}

func TestSaveRunAndTopRuns(t *testing.T) {
	store := newTestStore(t)

	scores := []int{12, 45, 3, 45, 28}
	for _, sc := range scores {
		_, err := store.SaveRun(RunEntry{
			Profile:      "alice",
			Score:        sc,
			Phase:        "medium",
			DurationSecs: 30,
		})
		if err != nil {
			t.Fatalf("SaveRun failed: %v", err)
		}
	}

	top, err := store.TopRuns("alice", 3)
	if err != nil {
		t.Fatalf("TopRuns failed: %v", err)
	}
	if len(top) != 3 {
		t.Fatalf("expected 3 runs, got %d", len(top))
	}
	if top[0].Score != 45 || top[1].Score != 45 || top[2].Score != 28 {
		t.Errorf("wrong ordering: %d, %d, %d", top[0].Score, top[1].Score, top[2].Score)
	}
}

func TestRecentRunsNewestFirst(t *testing.T) {
	store := newTestStore(t)

	for i := 1; i <= 4; i++ {
		if _, err := store.SaveRun(RunEntry{Profile: "alice", Score: i}); err != nil {
			t.Fatalf("SaveRun failed: %v", err)
		}
	}

	recent, err := store.RecentRuns("alice", 10)
	if err != nil {
		t.Fatalf("RecentRuns failed: %v", err)
	}
	if len(recent) != 4 {
		t.Fatalf("expected 4 runs, got %d", len(recent))
	}
	// Rows inserted in the same second fall back to ID ordering.
	if recent[0].Score != 4 || recent[3].Score != 1 {
		t.Errorf("wrong ordering: first=%d last=%d", recent[0].Score, recent[3].Score)
	}
}

func TestRunsIsolatedPerProfile(t *testing.T) {
	store := newTestStore(t)

	store.SaveRun(RunEntry{Profile: "alice", Score: 50})
	store.SaveRun(RunEntry{Profile: "bob", Score: 9})

	runs, err := store.TopRuns("alice", 10)
	if err != nil {
		t.Fatalf("TopRuns failed: %v", err)
	}
	if len(runs) != 1 || runs[0].Score != 50 {
		t.Errorf("expected only alice's run, got %+v", runs)
	}
}

func TestStats(t *testing.T) {
	store := newTestStore(t)

	for _, sc := range []int{10, 20, 30} {
		store.SaveRun(RunEntry{Profile: "alice", Score: sc})
	}

	stats, err := store.Stats("alice")
	if err != nil {
		t.Fatalf("Stats failed: %v", err)
	}
	if stats.RunCount != 3 {
		t.Errorf("RunCount = %d, want 3", stats.RunCount)
	}
	if stats.HighScore != 30 {
		t.Errorf("HighScore = %d, want 30", stats.HighScore)
	}
	if stats.AvgScore != 20 {
		t.Errorf("AvgScore = %v, want 20", stats.AvgScore)
	}
	if stats.TotalScore != 60 {
		t.Errorf("TotalScore = %d, want 60", stats.TotalScore)
	}
}

func TestStatsEmptyProfile(t *testing.T) {
	store := newTestStore(t)

	stats, err := store.Stats("ghost")
	if err != nil {
		t.Fatalf("Stats failed: %v", err)
	}
	if stats.RunCount != 0 || stats.HighScore != 0 {
		t.Errorf("expected empty stats, got %+v", stats)
	}
}

func TestGatewayRoundTrip(t *testing.T) {
	store := newTestStore(t)
	gw := store.GatewayFor("alice")

	rec, err := gw.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if rec != (sim.Record{}) {
		t.Errorf("expected zero record, got %+v", rec)
	}

	if err := gw.Save(sim.Record{BestScore: 88, BestStreak: 21}); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	rec, err = gw.Load()
	if err != nil {
		t.Fatalf("second Load failed: %v", err)
	}
	if rec.BestScore != 88 || rec.BestStreak != 21 {
		t.Errorf("round trip mismatch: %+v", rec)
	}
}

func TestGatewayDrivesGame(t *testing.T) {
	store := newTestStore(t)
	gw := store.GatewayFor("alice")

	if err := gw.Save(sim.Record{BestScore: 55, BestStreak: 8}); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	game := sim.New(config.Default(), 1, gw, nil, sim.Options{})
	if game.BestScore() != 55 {
		t.Errorf("game did not load best score: got %d, want 55", game.BestScore())
	}
}
