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
)

// DefaultPath is the database location used when none is given.
const DefaultPath = "~/.survivor/runs.db"

// Store manages the SQLite database connection for run persistence.
type Store struct {
	db *sql.DB
}

// Run is one finished attempt, from entering Playing until death.
type Run struct {
	ID             int64
	RunID          string // UUID assigned on save
	Player         string
	Score          int
	Duration       time.Duration
	EnemiesSpawned int
	EnemiesDodged  int
	MinDifficulty  float64
	CreatedAt      time.Time
}

// Stats contains aggregated statistics over stored runs.
type Stats struct {
	Player      string // Empty for all players
	Runs        int
	HighScore   int
	AvgScore    float64
	TotalTime   time.Duration
	TotalDodged int
	LastPlayed  time.Time
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	if dbPath == "" {
		dbPath = DefaultPath
	}

	// Expand ~ to home directory
	if dbPath[0] == '~' {
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
			player TEXT NOT NULL DEFAULT '',
			score INTEGER NOT NULL,
			duration_ms INTEGER NOT NULL DEFAULT 0,
			enemies_spawned INTEGER NOT NULL DEFAULT 0,
			enemies_dodged INTEGER NOT NULL DEFAULT 0,
			min_difficulty REAL NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_runs_top ON runs(score DESC);
		CREATE INDEX IF NOT EXISTS idx_runs_player ON runs(player, score DESC);
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

// SaveRun records a finished run. A RunID is generated when empty.
// Returns the stored run with ID and RunID filled in.
func (s *Store) SaveRun(run Run) (Run, error) {
	if run.RunID == "" {
		run.RunID = uuid.NewString()
	} else if _, err := uuid.Parse(run.RunID); err != nil {
		return Run{}, fmt.Errorf("storage: invalid run id %q: %w", run.RunID, err)
	}

	result, err := s.db.Exec(
		`INSERT INTO runs
		 (run_id, player, score, duration_ms, enemies_spawned, enemies_dodged, min_difficulty)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		run.RunID,
		run.Player,
		run.Score,
		run.Duration.Milliseconds(),
		run.EnemiesSpawned,
		run.EnemiesDodged,
		run.MinDifficulty,
	)
	if err != nil {
		return Run{}, fmt.Errorf("storage: cannot save run: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return Run{}, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}
	run.ID = id

	return run, nil
}

const runColumns = `id, run_id, player, score, duration_ms, enemies_spawned, enemies_dodged, min_difficulty, created_at`

// TopRuns retrieves the best runs of all players, highest score first.
func (s *Store) TopRuns(limit int) ([]Run, error) {
	return s.queryRuns(
		`SELECT `+runColumns+` FROM runs
		 ORDER BY score DESC, duration_ms DESC, id ASC
		 LIMIT ?`,
		defaultLimit(limit),
	)
}

// RecentRuns retrieves the latest runs of all players, newest first.
func (s *Store) RecentRuns(limit int) ([]Run, error) {
	return s.queryRuns(
		`SELECT `+runColumns+` FROM runs
		 ORDER BY created_at DESC, id DESC
		 LIMIT ?`,
		defaultLimit(limit),
	)
}

// PlayerRuns retrieves the best runs of one player.
func (s *Store) PlayerRuns(player string, limit int) ([]Run, error) {
	return s.queryRuns(
		`SELECT `+runColumns+` FROM runs
		 WHERE player = ?
		 ORDER BY score DESC, id ASC
		 LIMIT ?`,
		player, defaultLimit(limit),
	)
}

// RunByID retrieves a run by its UUID. Returns nil if it does not exist.
func (s *Store) RunByID(runID string) (*Run, error) {
	runs, err := s.queryRuns(`SELECT `+runColumns+` FROM runs WHERE run_id = ?`, runID)
	if err != nil {
		return nil, err
	}
	if len(runs) == 0 {
		return nil, nil
	}
	return &runs[0], nil
}

func defaultLimit(limit int) int {
	if limit <= 0 {
		return 10
	}
	return limit
}

func (s *Store) queryRuns(query string, args ...any) ([]Run, error) {
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var r Run
		var durationMS int64
		var createdAt any
		if err := rows.Scan(
			&r.ID,
			&r.RunID,
			&r.Player,
			&r.Score,
			&durationMS,
			&r.EnemiesSpawned,
			&r.EnemiesDodged,
			&r.MinDifficulty,
			&createdAt,
		); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		r.Duration = time.Duration(durationMS) * time.Millisecond
		r.CreatedAt = parseTime(createdAt)
		runs = append(runs, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return runs, nil
}

// parseTime handles both time.Time and string datetimes returned by the driver.
func parseTime(v any) time.Time {
	switch v := v.(type) {
	case time.Time:
		return v
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", v); err == nil {
			return parsed
		}
	}
	return time.Time{}
}

// HighScore returns the highest score of a player, or of everyone when
// player is empty. Returns 0 if no runs exist.
func (s *Store) HighScore(player string) (int, error) {
	var score sql.NullInt64
	var err error
	if player == "" {
		err = s.db.QueryRow("SELECT MAX(score) FROM runs").Scan(&score)
	} else {
		err = s.db.QueryRow("SELECT MAX(score) FROM runs WHERE player = ?", player).Scan(&score)
	}
	if err != nil {
		return 0, fmt.Errorf("storage: cannot query high score: %w", err)
	}

	if !score.Valid {
		return 0, nil
	}
	return int(score.Int64), nil
}

// Stats aggregates the runs of a player, or of everyone when player is empty.
func (s *Store) Stats(player string) (*Stats, error) {
	stats := &Stats{Player: player}

	where, args := "", []any{}
	if player != "" {
		where, args = "WHERE player = ?", []any{player}
	}

	var totalMS int64
	var lastPlayed any
	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(MAX(score), 0), COALESCE(AVG(score), 0),
		        COALESCE(SUM(duration_ms), 0), COALESCE(SUM(enemies_dodged), 0),
		        MAX(created_at)
		 FROM runs `+where,
		args...,
	).Scan(&stats.Runs, &stats.HighScore, &stats.AvgScore, &totalMS, &stats.TotalDodged, &lastPlayed)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("storage: cannot get stats: %w", err)
	}

	stats.TotalTime = time.Duration(totalMS) * time.Millisecond
	stats.LastPlayed = parseTime(lastPlayed)
	return stats, nil
}

// ClearRuns deletes the runs of a player, or all runs when player is empty.
// Returns the number of deleted runs.
func (s *Store) ClearRuns(player string) (int64, error) {
	var res sql.Result
	var err error
	if player == "" {
		res, err = s.db.Exec("DELETE FROM runs")
	} else {
		res, err = s.db.Exec("DELETE FROM runs WHERE player = ?", player)
	}
	if err != nil {
		return 0, fmt.Errorf("storage: cannot clear runs: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot count deleted runs: %w", err)
	}
	return n, nil
}
