// Package storage provides SQLite-based persistence for Swoop records and
// run history. Uses the pure-Go modernc.org/sqlite driver to avoid CGO
// dependencies.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/antonvlasov/swoop/internal/sim"
)

// Store manages the SQLite database connection.
type Store struct {
	db *sql.DB
}

// RunEntry is a single finished run.
type RunEntry struct {
	ID            int64
	Profile       string
	Score         int
	BestStreak    int // longest no-hit streak within the run
	Phase         string
	ContinuesUsed int
	DurationSecs  float64
	CreatedAt     time.Time
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}

	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS records (
			profile TEXT PRIMARY KEY,
			best_score INTEGER NOT NULL DEFAULT 0,
			best_streak INTEGER NOT NULL DEFAULT 0,
			updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);

		CREATE TABLE IF NOT EXISTS runs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			profile TEXT NOT NULL,
			score INTEGER NOT NULL,
			best_streak INTEGER NOT NULL DEFAULT 0,
			phase TEXT NOT NULL DEFAULT '',
			continues_used INTEGER NOT NULL DEFAULT 0,
			duration_secs REAL NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_runs_profile ON runs(profile);
		CREATE INDEX IF NOT EXISTS idx_runs_top ON runs(profile, score DESC);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// LoadRecord returns the persisted record for a profile.
// A missing profile yields a zero record, not an error.
func (s *Store) LoadRecord(profile string) (sim.Record, error) {
	var rec sim.Record
	err := s.db.QueryRow(
		"SELECT best_score, best_streak FROM records WHERE profile = ?",
		profile,
	).Scan(&rec.BestScore, &rec.BestStreak)

	if err == sql.ErrNoRows {
		return sim.Record{}, nil
	}
	if err != nil {
		return sim.Record{}, fmt.Errorf("storage: cannot load record: %w", err)
	}
	return rec, nil
}

// SaveRecord upserts the record for a profile.
func (s *Store) SaveRecord(profile string, rec sim.Record) error {
	_, err := s.db.Exec(
		`INSERT INTO records (profile, best_score, best_streak, updated_at)
		 VALUES (?, ?, ?, CURRENT_TIMESTAMP)
		 ON CONFLICT(profile) DO UPDATE SET
			best_score = excluded.best_score,
			best_streak = excluded.best_streak,
			updated_at = CURRENT_TIMESTAMP`,
		profile, rec.BestScore, rec.BestStreak,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot save record: %w", err)
	}
	return nil
}

// SaveRun records a finished run in the history.
// Returns the ID of the inserted row.
func (s *Store) SaveRun(entry RunEntry) (int64, error) {
	result, err := s.db.Exec(
		`INSERT INTO runs (profile, score, best_streak, phase, continues_used, duration_secs)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		entry.Profile, entry.Score, entry.BestStreak, entry.Phase,
		entry.ContinuesUsed, entry.DurationSecs,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save run: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}
	return id, nil
}

// TopRuns retrieves the best N runs for a profile, highest score first.
func (s *Store) TopRuns(profile string, limit int) ([]RunEntry, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, profile, score, best_streak, phase, continues_used, duration_secs, created_at
		 FROM runs
		 WHERE profile = ?
		 ORDER BY score DESC, created_at DESC
		 LIMIT ?`,
		profile, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	defer rows.Close()

	return scanRuns(rows)
}

// RecentRuns retrieves the latest N runs for a profile, newest first.
func (s *Store) RecentRuns(profile string, limit int) ([]RunEntry, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT id, profile, score, best_streak, phase, continues_used, duration_secs, created_at
		 FROM runs
		 WHERE profile = ?
		 ORDER BY created_at DESC, id DESC
		 LIMIT ?`,
		profile, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	defer rows.Close()

	return scanRuns(rows)
}

// scanRuns reads run rows, tolerating both time.Time and string datetimes
// the driver may hand back.
func scanRuns(rows *sql.Rows) ([]RunEntry, error) {
	var entries []RunEntry
	for rows.Next() {
		var e RunEntry
		var createdAt any
		if err := rows.Scan(
			&e.ID, &e.Profile, &e.Score, &e.BestStreak, &e.Phase,
			&e.ContinuesUsed, &e.DurationSecs, &createdAt,
		); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		e.CreatedAt = parseTime(createdAt)
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return entries, nil
}

func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}

// ProfileStats contains aggregated statistics for a profile.
type ProfileStats struct {
	Profile    string
	RunCount   int
	HighScore  int
	AvgScore   float64
	TotalScore int64
	LastPlayed time.Time
}

// Stats retrieves aggregated run statistics for a profile.
func (s *Store) Stats(profile string) (*ProfileStats, error) {
	stats := &ProfileStats{Profile: profile}

	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(MAX(score), 0), COALESCE(AVG(score), 0), COALESCE(SUM(score), 0)
		 FROM runs WHERE profile = ?`,
		profile,
	).Scan(&stats.RunCount, &stats.HighScore, &stats.AvgScore, &stats.TotalScore)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get stats: %w", err)
	}

	var lastPlayed any
	err = s.db.QueryRow(
		`SELECT created_at FROM runs WHERE profile = ? ORDER BY created_at DESC LIMIT 1`,
		profile,
	).Scan(&lastPlayed)
	if err != nil && err != sql.ErrNoRows {
		return nil, fmt.Errorf("storage: cannot get last played: %w", err)
	}
	if err == nil {
		stats.LastPlayed = parseTime(lastPlayed)
	}

	return stats, nil
}

// Gateway adapts the store to sim.Gateway for a single profile.
// This keeps the simulation unaware of profiles and SQL.
type Gateway struct {
	store   *Store
	profile string
}

// GatewayFor returns a sim.Gateway bound to the given profile.
func (s *Store) GatewayFor(profile string) *Gateway {
	return &Gateway{store: s, profile: profile}
}

// Load implements sim.Gateway.
func (g *Gateway) Load() (sim.Record, error) {
	return g.store.LoadRecord(g.profile)
}

// Save implements sim.Gateway.
func (g *Gateway) Save(rec sim.Record) error {
	return g.store.SaveRecord(g.profile, rec)
}

// Ensure Gateway implements sim.Gateway
var _ sim.Gateway = (*Gateway)(nil)
