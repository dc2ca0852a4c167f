// Package storage provides SQLite-based persistence for finished rounds.
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

// Outcome values stored in the rounds table.
const (
	OutcomeWon  = "won"
	OutcomeLost = "lost"
)

// ErrInvalidOutcome is returned by SaveRound for an outcome other than
// OutcomeWon or OutcomeLost.
var ErrInvalidOutcome = errors.New("storage: invalid outcome")

// Store manages the SQLite database connection for round history.
type Store struct {
	db *sql.DB
}

// RoundRecord is a single finished round.
type RoundRecord struct {
	ID        string
	Outcome   string // OutcomeWon or OutcomeLost
	Blue      int    // Gem counters at the moment the round ended
	Green     int
	Orange    int
	GamesWon  int // Session counters after the round
	GamesLost int
	Duration  time.Duration
	Player    string // Empty for local play
	CreatedAt time.Time
}

// Haul returns the total number of gems held when the round ended.
func (r RoundRecord) Haul() int {
	return r.Blue + r.Green + r.Orange
}

// Totals aggregates every stored round.
type Totals struct {
	Rounds     int
	Wins       int
	Losses     int
	Blue       int
	Green      int
	Orange     int
	BestHaul   int
	PlayTime   time.Duration
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

	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	// SSH sessions and a local game may write at the same time
	dsn := dbPath + "?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}
	db.SetMaxOpenConns(1)

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
		CREATE TABLE IF NOT EXISTS rounds (
			id TEXT PRIMARY KEY,
			outcome TEXT NOT NULL CHECK (outcome IN ('won', 'lost')),
			blue INTEGER NOT NULL DEFAULT 0,
			green INTEGER NOT NULL DEFAULT 0,
			orange INTEGER NOT NULL DEFAULT 0,
			games_won INTEGER NOT NULL DEFAULT 0,
			games_lost INTEGER NOT NULL DEFAULT 0,
			duration_ms INTEGER NOT NULL DEFAULT 0,
			player TEXT NOT NULL DEFAULT '',
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_rounds_player ON rounds(player);
		CREATE INDEX IF NOT EXISTS idx_rounds_created ON rounds(created_at);
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

// SaveRound records a finished round and returns its id. A new UUID is
// generated when r.ID is empty.
func (s *Store) SaveRound(r RoundRecord) (string, error) {
	if r.Outcome != OutcomeWon && r.Outcome != OutcomeLost {
		return "", fmt.Errorf("%w: %q", ErrInvalidOutcome, r.Outcome)
	}
	if r.ID == "" {
		r.ID = uuid.NewString()
	}

	_, err := s.db.Exec(
		`INSERT INTO rounds
		 (id, outcome, blue, green, orange, games_won, games_lost, duration_ms, player)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		r.ID,
		r.Outcome,
		r.Blue,
		r.Green,
		r.Orange,
		r.GamesWon,
		r.GamesLost,
		r.Duration.Milliseconds(),
		r.Player,
	)
	if err != nil {
		return "", fmt.Errorf("storage: cannot save round: %w", err)
	}

	return r.ID, nil
}

const roundColumns = `id, outcome, blue, green, orange, games_won, games_lost, duration_ms, player, created_at`

// RecentRounds retrieves the most recent rounds, newest first.
func (s *Store) RecentRounds(limit int) ([]RoundRecord, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT `+roundColumns+`
		 FROM rounds
		 ORDER BY created_at DESC, rowid DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query rounds: %w", err)
	}
	return scanRounds(rows)
}

// PlayerRounds retrieves the most recent rounds of one player.
func (s *Store) PlayerRounds(player string, limit int) ([]RoundRecord, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT `+roundColumns+`
		 FROM rounds
		 WHERE player = ?
		 ORDER BY created_at DESC, rowid DESC
		 LIMIT ?`,
		player, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query player rounds: %w", err)
	}
	return scanRounds(rows)
}

// RoundByID retrieves a single round. Returns nil if it doesn't exist.
func (s *Store) RoundByID(id string) (*RoundRecord, error) {
	rows, err := s.db.Query(`SELECT `+roundColumns+` FROM rounds WHERE id = ?`, id)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query round: %w", err)
	}
	rounds, err := scanRounds(rows)
	if err != nil {
		return nil, err
	}
	if len(rounds) == 0 {
		return nil, nil
	}
	return &rounds[0], nil
}

func scanRounds(rows *sql.Rows) ([]RoundRecord, error) {
	defer rows.Close()

	var rounds []RoundRecord
	for rows.Next() {
		var r RoundRecord
		var durationMS int64
		var createdAt any

		if err := rows.Scan(
			&r.ID,
			&r.Outcome,
			&r.Blue,
			&r.Green,
			&r.Orange,
			&r.GamesWon,
			&r.GamesLost,
			&durationMS,
			&r.Player,
			&createdAt,
		); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}

		r.Duration = time.Duration(durationMS) * time.Millisecond
		r.CreatedAt = parseTime(createdAt)
		rounds = append(rounds, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return rounds, nil
}

// Totals retrieves lifetime statistics over all rounds.
func (s *Store) Totals() (*Totals, error) {
	t := &Totals{}
	var playMS int64
	var lastPlayed any

	err := s.db.QueryRow(
		`SELECT COUNT(*),
		        COALESCE(SUM(outcome = 'won'), 0),
		        COALESCE(SUM(outcome = 'lost'), 0),
		        COALESCE(SUM(blue), 0),
		        COALESCE(SUM(green), 0),
		        COALESCE(SUM(orange), 0),
		        COALESCE(MAX(blue + green + orange), 0),
		        COALESCE(SUM(duration_ms), 0),
		        MAX(created_at)
		 FROM rounds`,
	).Scan(&t.Rounds, &t.Wins, &t.Losses, &t.Blue, &t.Green, &t.Orange, &t.BestHaul, &playMS, &lastPlayed)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get totals: %w", err)
	}

	t.PlayTime = time.Duration(playMS) * time.Millisecond
	t.LastPlayed = parseTime(lastPlayed)
	return t, nil
}

// ClearRounds deletes every stored round.
func (s *Store) ClearRounds() error {
	_, err := s.db.Exec("DELETE FROM rounds")
	if err != nil {
		return fmt.Errorf("storage: cannot clear rounds: %w", err)
	}
	return nil
}

// parseTime handles both time.Time and string datetimes from the driver.
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
