// Package storage provides SQLite-based persistence for finished bridge games.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/vovakirdan/tui-bridge/internal/bridge"
	"github.com/vovakirdan/tui-bridge/internal/config"
)

// Store manages the SQLite database connection for result persistence.
type Store struct {
	db *sql.DB
}

// ResultEntry represents one finished play session.
type ResultEntry struct {
	ID        int64
	SessionID string
	Player    string
	Size      int
	Layout    string // e.g. "UDU"
	Won       bool
	Attempts  int
	Path      string // last attempt's moves, e.g. "UDD"
	CreatedAt time.Time
}

// Stats summarizes all recorded sessions.
type Stats struct {
	Played          int
	Won             int
	AverageAttempts float64
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	dbPath, err := config.ExpandHome(dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: %w", err)
	}

	// Create parent directories
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	// Open database
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	// Test connection
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}

	// Run migrations
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS results (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			session_id TEXT NOT NULL UNIQUE,
			player TEXT NOT NULL DEFAULT '',
			size INTEGER NOT NULL,
			layout TEXT NOT NULL,
			won INTEGER NOT NULL,
			attempts INTEGER NOT NULL,
			path TEXT NOT NULL DEFAULT '',
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_results_size ON results(size);
		CREATE INDEX IF NOT EXISTS idx_results_best ON results(size, won, attempts);
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

// NewSessionID returns a fresh identifier for a play session.
func NewSessionID() string {
	return uuid.NewString()
}

// SaveResult records a finished game for player. An empty sessionID gets a
// generated one. Returns the ID of the inserted record.
func (s *Store) SaveResult(sessionID, player string, r bridge.Result) (int64, error) {
	if sessionID == "" {
		sessionID = NewSessionID()
	}

	result, err := s.db.Exec(
		`INSERT INTO results (session_id, player, size, layout, won, attempts, path)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		sessionID, player, r.Size, r.Layout, r.Won, r.Attempts, pathOf(r.Moves),
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save result: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// RecentResults retrieves the most recent results, newest first.
func (s *Store) RecentResults(limit int) ([]ResultEntry, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, session_id, player, size, layout, won, attempts, path, created_at
		 FROM results
		 ORDER BY id DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query results: %w", err)
	}
	return scanResults(rows)
}

// BestResults retrieves the wins on bridges of the given size, fewest
// attempts first. Ties go to the earlier game.
func (s *Store) BestResults(size, limit int) ([]ResultEntry, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, session_id, player, size, layout, won, attempts, path, created_at
		 FROM results
		 WHERE size = ? AND won = 1
		 ORDER BY attempts ASC, id ASC
		 LIMIT ?`,
		size, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query best results: %w", err)
	}
	return scanResults(rows)
}

// Stats summarizes every recorded session.
func (s *Store) Stats() (Stats, error) {
	var st Stats
	var won sql.NullInt64
	var avg sql.NullFloat64

	err := s.db.QueryRow(
		"SELECT COUNT(*), SUM(won), AVG(attempts) FROM results",
	).Scan(&st.Played, &won, &avg)
	if err != nil {
		return Stats{}, fmt.Errorf("storage: cannot query stats: %w", err)
	}

	if won.Valid {
		st.Won = int(won.Int64)
	}
	if avg.Valid {
		st.AverageAttempts = avg.Float64
	}
	return st, nil
}

// ClearResults deletes all recorded results.
func (s *Store) ClearResults() error {
	if _, err := s.db.Exec("DELETE FROM results"); err != nil {
		return fmt.Errorf("storage: cannot clear results: %w", err)
	}
	return nil
}

// scanResults reads result rows and closes them.
func scanResults(rows *sql.Rows) ([]ResultEntry, error) {
	defer rows.Close()

	var entries []ResultEntry
	for rows.Next() {
		var e ResultEntry
		var createdAt any
		if err := rows.Scan(&e.ID, &e.SessionID, &e.Player, &e.Size, &e.Layout,
			&e.Won, &e.Attempts, &e.Path, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}

		// Parse the datetime - handle both time.Time and string
		switch v := createdAt.(type) {
		case time.Time:
			e.CreatedAt = v
		case string:
			if parsed, err := time.Parse("2006-01-02 15:04:05", v); err == nil {
				e.CreatedAt = parsed
			}
		}
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}

// pathOf encodes moves as direction symbols.
func pathOf(moves []bridge.Move) string {
	var sb strings.Builder
	for _, m := range moves {
		sb.WriteString(m.Direction.Symbol())
	}
	return sb.String()
}
