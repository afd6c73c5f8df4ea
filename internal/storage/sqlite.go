// Package storage provides SQLite-based persistence for finished runs.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/vovakirdan/tidepool/internal/game"
)

// DefaultPath is where the run history lives unless --db says otherwise.
const DefaultPath = "~/.tidepool/tidepool.db"

const timeLayout = "2006-01-02 15:04:05"

// Store manages the SQLite database connection for run history.
type Store struct {
	db *sql.DB
}

// RunRecord is one finished run.
type RunRecord struct {
	ID          int64
	RunID       string
	Outcome     string // "game_over" or "win"
	Score       int
	Level       int
	Kills       int
	BossKills   int
	Survived    float64
	Difficulty  int
	DamageDealt float64
	Seed        int64
	CreatedAt   time.Time
}

// NewRecord builds a record for a finished run, assigning a fresh run ID.
func NewRecord(r game.RunResult) RunRecord {
	return RunRecord{
		RunID:       uuid.NewString(),
		Outcome:     r.Outcome.String(),
		Score:       r.Score,
		Level:       r.Level,
		Kills:       r.Kills,
		BossKills:   r.BossKills,
		Survived:    r.Survived,
		Difficulty:  r.Difficulty,
		DamageDealt: r.DamageDealt,
		Seed:        r.Seed,
	}
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
		CREATE TABLE IF NOT EXISTS runs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			run_id TEXT NOT NULL UNIQUE,
			outcome TEXT NOT NULL,
			score INTEGER NOT NULL,
			level INTEGER NOT NULL DEFAULT 1,
			kills INTEGER NOT NULL DEFAULT 0,
			boss_kills INTEGER NOT NULL DEFAULT 0,
			survived REAL NOT NULL DEFAULT 0,
			difficulty INTEGER NOT NULL DEFAULT 1,
			damage_dealt REAL NOT NULL DEFAULT 0,
			seed INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_runs_top ON runs(score DESC);
		CREATE INDEX IF NOT EXISTS idx_runs_created ON runs(created_at);
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

// SaveRun records a finished run. An empty RunID gets a fresh one.
// Returns the ID of the inserted record.
func (s *Store) SaveRun(r RunRecord) (int64, error) {
	if r.RunID == "" {
		r.RunID = uuid.NewString()
	}

	result, err := s.db.Exec(
		`INSERT INTO runs
		 (run_id, outcome, score, level, kills, boss_kills, survived, difficulty, damage_dealt, seed)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		r.RunID, r.Outcome, r.Score, r.Level, r.Kills, r.BossKills,
		r.Survived, r.Difficulty, r.DamageDealt, r.Seed,
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

// SaveResult records a finished session under a fresh run ID.
func (s *Store) SaveResult(r game.RunResult) (RunRecord, error) {
	rec := NewRecord(r)
	id, err := s.SaveRun(rec)
	if err != nil {
		return RunRecord{}, err
	}
	rec.ID = id
	return rec, nil
}

const runColumns = `id, run_id, outcome, score, level, kills, boss_kills,
	survived, difficulty, damage_dealt, seed, created_at`

// TopRuns retrieves the best N runs, highest score first.
func (s *Store) TopRuns(limit int) ([]RunRecord, error) {
	if limit <= 0 {
		limit = 10
	}
	return s.queryRuns(
		`SELECT `+runColumns+` FROM runs ORDER BY score DESC, survived DESC LIMIT ?`,
		limit,
	)
}

// RecentRuns retrieves the last N runs, newest first.
func (s *Store) RecentRuns(limit int) ([]RunRecord, error) {
	if limit <= 0 {
		limit = 20
	}
	return s.queryRuns(
		`SELECT `+runColumns+` FROM runs ORDER BY id DESC LIMIT ?`,
		limit,
	)
}

// BestRun returns the highest scoring run, or nil if none exist.
func (s *Store) BestRun() (*RunRecord, error) {
	var r RunRecord
	var createdAt any
	err := s.db.QueryRow(
		`SELECT `+runColumns+` FROM runs ORDER BY score DESC, survived DESC LIMIT 1`,
	).Scan(scanTargets(&r, &createdAt)...)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query best run: %w", err)
	}
	r.CreatedAt = parseTime(createdAt)
	return &r, nil
}

func (s *Store) queryRuns(query string, args ...any) ([]RunRecord, error) {
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	defer rows.Close()

	var runs []RunRecord
	for rows.Next() {
		var r RunRecord
		var createdAt any
		if err := rows.Scan(scanTargets(&r, &createdAt)...); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		r.CreatedAt = parseTime(createdAt)
		runs = append(runs, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return runs, nil
}

func scanTargets(r *RunRecord, createdAt *any) []any {
	return []any{
		&r.ID, &r.RunID, &r.Outcome, &r.Score, &r.Level, &r.Kills, &r.BossKills,
		&r.Survived, &r.Difficulty, &r.DamageDealt, &r.Seed, createdAt,
	}
}

// parseTime handles both time.Time and string datetimes.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse(timeLayout, t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}

// ClearRuns deletes the whole history.
func (s *Store) ClearRuns() error {
	if _, err := s.db.Exec("DELETE FROM runs"); err != nil {
		return fmt.Errorf("storage: cannot clear runs: %w", err)
	}
	return nil
}

// RunStats contains aggregated statistics over all runs.
type RunStats struct {
	Runs          int
	Wins          int
	HighScore     int
	AvgScore      float64
	TotalKills    int64
	TotalBosses   int64
	LongestRun    float64
	TotalSurvived float64
	LastPlayed    time.Time
}

// Stats retrieves aggregated statistics over the history.
func (s *Store) Stats() (*RunStats, error) {
	stats := &RunStats{}

	err := s.db.QueryRow(
		`SELECT COUNT(*),
		        COALESCE(SUM(CASE WHEN outcome = ? THEN 1 ELSE 0 END), 0),
		        COALESCE(MAX(score), 0), COALESCE(AVG(score), 0),
		        COALESCE(SUM(kills), 0), COALESCE(SUM(boss_kills), 0),
		        COALESCE(MAX(survived), 0), COALESCE(SUM(survived), 0)
		 FROM runs`,
		game.StateWin.String(),
	).Scan(&stats.Runs, &stats.Wins, &stats.HighScore, &stats.AvgScore,
		&stats.TotalKills, &stats.TotalBosses, &stats.LongestRun, &stats.TotalSurvived)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get run stats: %w", err)
	}

	var lastPlayed any
	err = s.db.QueryRow(`SELECT created_at FROM runs ORDER BY id DESC LIMIT 1`).Scan(&lastPlayed)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("storage: cannot get last played: %w", err)
	}
	if err == nil {
		stats.LastPlayed = parseTime(lastPlayed)
	}

	return stats, nil
}
