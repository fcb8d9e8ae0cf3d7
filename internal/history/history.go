// internal/history/history.go
//
// SQLite-backed record of finished games.
// Responsibilities:
//   - Opening the database with safe defaults (busy timeout, WAL on
//     file-backed DSNs, foreign keys).
//   - Applying the schema idempotently at open.
//   - Recording one row per finished game and serving the leaderboard
//     (fastest wins first).
//
// The default DSN is ":memory:": nothing survives a restart unless the
// operator points HISTORY_DSN at a file.

package history

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

// MemoryDSN keeps the history inside the process.
const MemoryDSN = ":memory:"

const schema = `
CREATE TABLE IF NOT EXISTS results (
    game_id    TEXT PRIMARY KEY,
    mode       TEXT NOT NULL,
    date       TEXT NOT NULL DEFAULT '',
    won        INTEGER NOT NULL,
    guesses    INTEGER NOT NULL,
    elapsed_ms INTEGER NOT NULL,
    created_at TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_results_date ON results(date);
`

// Store records finished games and answers leaderboard queries.
type Store struct {
	db *sql.DB
}

// Open opens (and creates if missing) the history database and applies
// the schema. Relative file DSNs get their parent directory created.
func Open(dsn string) (*Store, error) {
	if dsn == "" {
		dsn = MemoryDSN
	}
	if dsn != MemoryDSN {
		if dir := filepath.Dir(dsn); dir != "." && dir != "" {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return nil, fmt.Errorf("history: mkdir %s: %w", dir, err)
			}
		}
	}

	db, err := sql.Open("sqlite3", dsn+"?_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("history: open %s: %w", dsn, err)
	}
	if dsn == MemoryDSN {
		// Every pool connection gets its own in-memory database, so the
		// pool must stay at one connection or rows vanish between calls.
		db.SetMaxOpenConns(1)
	} else {
		if _, err := db.Exec(`PRAGMA journal_mode = WAL;`); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("history: set pragmas: %w", err)
		}
	}
	if _, err := db.Exec(`PRAGMA foreign_keys = ON;`); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("history: set pragmas: %w", err)
	}

	if err := migrate(db); err != nil {
		_ = db.Close()
		return nil, err
	}
	return &Store{db: db}, nil
}

// Close releases the underlying database handle.
func (s *Store) Close() error { return s.db.Close() }

// migrate applies the schema inside one transaction.
func migrate(db *sql.DB) error {
	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("history: begin migration: %w", err)
	}
	if _, err := tx.Exec(schema); err != nil {
		_ = tx.Rollback()
		return fmt.Errorf("history: apply schema: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("history: commit schema: %w", err)
	}
	return nil
}

// Result is one finished game.
type Result struct {
	GameID    string `json:"gameId"`
	Mode      string `json:"mode"` // "game" | "solver"
	Date      string `json:"date,omitempty"`
	Won       bool   `json:"won"`
	Guesses   int    `json:"guesses"`
	ElapsedMs int    `json:"elapsedMs"`
}

// Record inserts a finished game. A game undone and finished again
// keeps its first recorded result (INSERT OR IGNORE on the game ID).
func (s *Store) Record(ctx context.Context, r Result) error {
	won := 0
	if r.Won {
		won = 1
	}
	_, err := s.db.ExecContext(ctx, `
        INSERT OR IGNORE INTO results
            (game_id, mode, date, won, guesses, elapsed_ms, created_at)
        VALUES (?, ?, ?, ?, ?, ?, ?)`,
		r.GameID, r.Mode, r.Date, won, r.Guesses, r.ElapsedMs,
		time.Now().UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("history: record %s: %w", r.GameID, err)
	}
	return nil
}

// Row is one leaderboard entry.
type Row struct {
	GameID    string `json:"gameId"`
	Date      string `json:"date,omitempty"`
	Guesses   int    `json:"guesses"`
	ElapsedMs int    `json:"elapsedMs"`
}

// Leaderboard returns the fastest wins: fewest guesses first, then
// elapsed time, then insertion order. A non-empty date restricts the
// board to that day's daily games. Default limit is 20.
func (s *Store) Leaderboard(ctx context.Context, date string, limit int) ([]Row, error) {
	if limit <= 0 {
		limit = 20
	}
	query := `
        SELECT game_id, date, guesses, elapsed_ms
        FROM results
        WHERE won = 1`
	args := []any{}
	if date != "" {
		query += ` AND date = ?`
		args = append(args, date)
	}
	query += `
        ORDER BY guesses ASC, elapsed_ms ASC, created_at ASC
        LIMIT ?`
	args = append(args, limit)

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("history: leaderboard: %w", err)
	}
	defer rows.Close()

	out := make([]Row, 0, limit)
	for rows.Next() {
		var r Row
		if err := rows.Scan(&r.GameID, &r.Date, &r.Guesses, &r.ElapsedMs); err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}
