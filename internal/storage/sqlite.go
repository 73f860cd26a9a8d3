// Package storage provides SQLite-based persistence for game replays.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/vovakirdan/arcade-engine/internal/replay"
)

// ErrNotFound is returned when no replay has the requested ID.
var ErrNotFound = errors.New("storage: replay not found")

// timeLayout is fixed-width so created_at sorts as text.
const timeLayout = "2006-01-02T15:04:05.000000000Z07:00"

// Store manages the SQLite database connection for replay persistence.
type Store struct {
	db *sql.DB
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
		CREATE TABLE IF NOT EXISTS replays (
			id TEXT PRIMARY KEY,
			game_id TEXT NOT NULL,
			seed INTEGER NOT NULL,
			config BLOB,
			journal BLOB NOT NULL,
			ticks INTEGER NOT NULL,
			score INTEGER NOT NULL,
			won INTEGER NOT NULL DEFAULT 0,
			digest TEXT NOT NULL,
			created_at TEXT NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_replays_game_id ON replays(game_id);
		CREATE INDEX IF NOT EXISTS idx_replays_created ON replays(created_at DESC);
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

// SaveReplay stores a finished replay. The journal is kept msgpack-encoded.
func (s *Store) SaveReplay(r *replay.Replay) error {
	journal, err := replay.EncodeJournal(r.Journal)
	if err != nil {
		return fmt.Errorf("storage: %w", err)
	}

	created := r.CreatedAt
	if created.IsZero() {
		created = time.Now()
	}

	_, err = s.db.Exec(
		`INSERT INTO replays
		 (id, game_id, seed, config, journal, ticks, score, won, digest, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		r.ID,
		r.Game,
		r.Seed,
		r.Config,
		journal,
		int64(r.Ticks), //#nosec G115 -- tick counts stay far below 2^63
		r.Score,
		r.Won,
		formatDigest(r.Digest),
		created.UTC().Format(timeLayout),
	)
	if err != nil {
		return fmt.Errorf("storage: cannot save replay: %w", err)
	}
	return nil
}

// Replay loads a full replay, journal included.
func (s *Store) Replay(id string) (*replay.Replay, error) {
	row := s.db.QueryRow(
		`SELECT id, game_id, seed, config, journal, ticks, score, won, digest, created_at
		 FROM replays
		 WHERE id = ?`,
		id,
	)

	r, journal, err := scanReplay(row.Scan, true)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query replay: %w", err)
	}

	r.Journal, err = replay.DecodeJournal(journal)
	if err != nil {
		return nil, fmt.Errorf("storage: %s: %w", id, err)
	}
	return r, nil
}

// ListReplays returns the most recent replays, newest first. An empty gameID
// lists every game. Listed replays carry no journal or config; load one with
// Replay to run it.
func (s *Store) ListReplays(gameID string, limit int) ([]*replay.Replay, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT id, game_id, seed, NULL, NULL, ticks, score, won, digest, created_at
		 FROM replays
		 WHERE ? = '' OR game_id = ?
		 ORDER BY created_at DESC
		 LIMIT ?`,
		gameID, gameID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query replays: %w", err)
	}
	defer rows.Close()

	var result []*replay.Replay
	for rows.Next() {
		r, _, err := scanReplay(rows.Scan, false)
		if err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		result = append(result, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return result, nil
}

// ReplayIDs returns the IDs of every stored replay of gameID, or of all games
// when gameID is empty.
func (s *Store) ReplayIDs(gameID string) ([]string, error) {
	rows, err := s.db.Query(
		`SELECT id FROM replays WHERE ? = '' OR game_id = ? ORDER BY created_at`,
		gameID, gameID,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query replay ids: %w", err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

// DeleteReplay removes a replay.
func (s *Store) DeleteReplay(id string) error {
	res, err := s.db.Exec("DELETE FROM replays WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("storage: cannot delete replay: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	return nil
}

// scanReplay reads one replays row. The raw journal is returned undecoded.
func scanReplay(scan func(dest ...any) error, full bool) (*replay.Replay, []byte, error) {
	var (
		r         replay.Replay
		config    []byte
		journal   []byte
		ticks     int64
		digest    string
		createdAt any
	)
	if err := scan(&r.ID, &r.Game, &r.Seed, &config, &journal, &ticks, &r.Score, &r.Won, &digest, &createdAt); err != nil {
		return nil, nil, err
	}

	if full {
		r.Config = config
	}
	r.Ticks = uint64(ticks) //#nosec G115 -- stored from a uint64
	r.CreatedAt = parseTime(createdAt)

	d, err := strconv.ParseUint(digest, 16, 64)
	if err != nil {
		return nil, nil, fmt.Errorf("bad digest %q: %w", digest, err)
	}
	r.Digest = d

	return &r, journal, nil
}

func formatDigest(d uint64) string {
	return fmt.Sprintf("%016x", d)
}

// parseTime handles both time.Time and string column values.
func parseTime(v any) time.Time {
	switch v := v.(type) {
	case time.Time:
		return v
	case string:
		if parsed, err := time.Parse(time.RFC3339Nano, v); err == nil {
			return parsed
		}
		if parsed, err := time.Parse("2006-01-02 15:04:05", v); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
