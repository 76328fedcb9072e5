package history

import (
	"database/sql"
	_ "embed"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

//go:embed schema.sql
var schemaSQL string

// Entry represents a single analysis attempt. Both successes and
// failures are recorded; the log doubles as the diagnostics trail for
// remote call errors.
type Entry struct {
	ID              int
	ExecutedAt      time.Time
	CriteriaSummary string
	RecordCount     int
	Duration        time.Duration
	Success         bool
	Result          string
}

// Store manages analysis history persistence
type Store struct {
	db *sql.DB
}

// NewStore creates a new history store
func NewStore(path string) (*Store, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}

	// Create schema
	_, err = db.Exec(schemaSQL)
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	return &Store{db: db}, nil
}

// Add appends an analysis attempt to the log
func (s *Store) Add(entry Entry) error {
	_, err := s.db.Exec(`
		INSERT INTO analysis_history
		(criteria_summary, record_count, duration_ms, success, result)
		VALUES (?, ?, ?, ?, ?)`,
		entry.CriteriaSummary,
		entry.RecordCount,
		entry.Duration.Milliseconds(),
		entry.Success,
		entry.Result,
	)
	return err
}

// GetRecent retrieves the most recent analysis entries
func (s *Store) GetRecent(limit int) ([]Entry, error) {
	rows, err := s.db.Query(`
		SELECT id, executed_at, criteria_summary, record_count,
		       duration_ms, success, result
		FROM analysis_history
		ORDER BY executed_at DESC
		LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var entries []Entry
	for rows.Next() {
		var e Entry
		var durationMs int64
		var executedAt string

		err := rows.Scan(
			&e.ID,
			&executedAt,
			&e.CriteriaSummary,
			&e.RecordCount,
			&durationMs,
			&e.Success,
			&e.Result,
		)
		if err != nil {
			return nil, err
		}

		e.Duration = time.Duration(durationMs) * time.Millisecond
		e.ExecutedAt, _ = time.Parse("2006-01-02 15:04:05", executedAt)

		entries = append(entries, e)
	}

	return entries, nil
}

// Prune deletes everything beyond the newest max entries
func (s *Store) Prune(max int) error {
	_, err := s.db.Exec(`
		DELETE FROM analysis_history
		WHERE id NOT IN (
			SELECT id FROM analysis_history
			ORDER BY executed_at DESC
			LIMIT ?
		)`, max)
	return err
}

// Close closes the database connection
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}
