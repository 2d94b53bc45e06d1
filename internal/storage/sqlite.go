// Package storage provides SQLite-based persistence for maze runs and
// per-level completion times.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Store manages the SQLite database connection for run history.
type Store struct {
	db *sql.DB
}

// Run is one attempt at the campaign, from level 1 to a win or an exit to
// the menu.
type Run struct {
	ID          int64
	Player      string // "local" or the SSH user
	Difficulty  string
	Seed        int64 // Seed of the first level
	Levels      int   // Levels completed
	TotalLevels int
	Ticks       uint64
	Completed   bool
	CreatedAt   time.Time
}

// LevelTime records how long one level took.
type LevelTime struct {
	ID         int64
	Player     string
	Difficulty string
	Level      int // 0-based
	Ticks      uint64
	Seed       int64
	CreatedAt  time.Time
}

// RunStats contains aggregated statistics for one difficulty.
type RunStats struct {
	Difficulty string
	Runs       int
	Completed  int
	BestTicks  uint64 // Fastest completed run, 0 if none
	LastPlayed time.Time
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

	// Create parent directories
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
			player TEXT NOT NULL,
			difficulty TEXT NOT NULL,
			seed INTEGER NOT NULL,
			levels INTEGER NOT NULL,
			total_levels INTEGER NOT NULL,
			ticks INTEGER NOT NULL,
			completed INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_runs_best ON runs(difficulty, completed, ticks);

		CREATE TABLE IF NOT EXISTS level_times (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			player TEXT NOT NULL,
			difficulty TEXT NOT NULL,
			level INTEGER NOT NULL,
			ticks INTEGER NOT NULL,
			seed INTEGER NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_level_times_best ON level_times(difficulty, level, ticks);
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

// SaveRun records a finished or abandoned run.
// Returns the ID of the inserted record.
func (s *Store) SaveRun(r Run) (int64, error) {
	result, err := s.db.Exec(
		`INSERT INTO runs (player, difficulty, seed, levels, total_levels, ticks, completed)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		r.Player, r.Difficulty, r.Seed, r.Levels, r.TotalLevels, int64(r.Ticks), r.Completed,
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

// SaveLevelTime records the completion time of one level.
func (s *Store) SaveLevelTime(lt LevelTime) (int64, error) {
	result, err := s.db.Exec(
		`INSERT INTO level_times (player, difficulty, level, ticks, seed)
		 VALUES (?, ?, ?, ?, ?)`,
		lt.Player, lt.Difficulty, lt.Level, int64(lt.Ticks), lt.Seed,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save level time: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}
	return id, nil
}

const runColumns = `id, player, difficulty, seed, levels, total_levels, ticks, completed, created_at`

// BestRuns retrieves the fastest completed runs for a difficulty.
func (s *Store) BestRuns(difficulty string, limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 10
	}
	return s.queryRuns(
		`SELECT `+runColumns+`
		 FROM runs
		 WHERE difficulty = ? AND completed = 1
		 ORDER BY ticks ASC, id ASC
		 LIMIT ?`,
		difficulty, limit,
	)
}

// RecentRuns retrieves the most recent runs of any difficulty.
func (s *Store) RecentRuns(limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 20
	}
	return s.queryRuns(
		`SELECT `+runColumns+`
		 FROM runs
		 ORDER BY id DESC
		 LIMIT ?`,
		limit,
	)
}

func (s *Store) queryRuns(query string, args ...any) ([]Run, error) {
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var (
			r         Run
			ticks     int64
			createdAt any
		)
		if err := rows.Scan(&r.ID, &r.Player, &r.Difficulty, &r.Seed, &r.Levels, &r.TotalLevels,
			&ticks, &r.Completed, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		r.Ticks = uint64(ticks)
		r.CreatedAt = parseTime(createdAt)
		runs = append(runs, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return runs, nil
}

// BestLevelTime returns the fastest recorded time for a level, or nil if
// the level has never been completed at this difficulty.
func (s *Store) BestLevelTime(difficulty string, level int) (*LevelTime, error) {
	var (
		lt        LevelTime
		ticks     int64
		createdAt any
	)
	err := s.db.QueryRow(
		`SELECT id, player, difficulty, level, ticks, seed, created_at
		 FROM level_times
		 WHERE difficulty = ? AND level = ?
		 ORDER BY ticks ASC, id ASC
		 LIMIT 1`,
		difficulty, level,
	).Scan(&lt.ID, &lt.Player, &lt.Difficulty, &lt.Level, &ticks, &lt.Seed, &createdAt)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query level time: %w", err)
	}

	lt.Ticks = uint64(ticks)
	lt.CreatedAt = parseTime(createdAt)
	return &lt, nil
}

// Stats retrieves aggregated run statistics for a difficulty.
func (s *Store) Stats(difficulty string) (*RunStats, error) {
	stats := &RunStats{Difficulty: difficulty}

	var (
		best       sql.NullInt64
		lastPlayed any
	)
	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(SUM(completed), 0),
		        MIN(CASE WHEN completed = 1 THEN ticks END), MAX(created_at)
		 FROM runs WHERE difficulty = ?`,
		difficulty,
	).Scan(&stats.Runs, &stats.Completed, &best, &lastPlayed)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get run stats: %w", err)
	}

	if best.Valid {
		stats.BestTicks = uint64(best.Int64)
	}
	stats.LastPlayed = parseTime(lastPlayed)
	return stats, nil
}

// ClearRuns deletes all runs and level times.
func (s *Store) ClearRuns() error {
	if _, err := s.db.Exec("DELETE FROM runs; DELETE FROM level_times;"); err != nil {
		return fmt.Errorf("storage: cannot clear runs: %w", err)
	}
	return nil
}

// parseTime handles both time.Time and string datetimes from the driver.
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
