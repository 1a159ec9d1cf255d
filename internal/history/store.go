// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package history persists processed transcripts in a local SQLite
// database so earlier results can be listed and reprinted without the
// source document.
package history

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/pdiddy/transcript-wam/pkg/types"
)

const (
	dbFile = "history.db"

	defaultListLimit = 20
)

// ErrNotFound is returned by Get when no transcript has the given ID.
var ErrNotFound = errors.New("transcript not found")

// Store manages the history SQLite database.
type Store struct {
	db *sql.DB
}

// Entry is one row of List output.
type Entry struct {
	ID           string
	Source       string
	Records      int
	CreditPoints int
	WAM          types.Mean
	EIHWAM       types.Mean
	ProcessedAt  time.Time
}

// NewStore opens or creates the database at cfg.DataDir/history.db and
// creates the schema if it does not exist.
func NewStore(cfg types.HistoryConfig) (*Store, error) {
	if err := os.MkdirAll(cfg.DataDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}

	dbPath := filepath.Join(cfg.DataDir, dbFile)
	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL&_foreign_keys=on")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	s := &Store{db: db}
	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}
	return s, nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) createSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS transcripts (
			id TEXT PRIMARY KEY,
			source TEXT NOT NULL,
			wam REAL,
			wam_reason TEXT,
			eihwam REAL,
			eihwam_reason TEXT,
			processed_at TEXT NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS records (
			transcript_id TEXT NOT NULL REFERENCES transcripts(id) ON DELETE CASCADE,
			position INTEGER NOT NULL,
			year TEXT NOT NULL,
			session TEXT NOT NULL,
			unit_code TEXT NOT NULL,
			unit_name TEXT NOT NULL,
			mark REAL NOT NULL,
			grade TEXT NOT NULL,
			credit_points INTEGER NOT NULL,
			PRIMARY KEY (transcript_id, position)
		)`,
		`CREATE INDEX IF NOT EXISTS idx_transcripts_processed_at ON transcripts(processed_at)`,
	}

	for _, stmt := range statements {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("executing schema statement: %w", err)
		}
	}
	return nil
}

// Save stores t and its records in one transaction. Saving an ID that
// already exists replaces the earlier rows.
func (s *Store) Save(ctx context.Context, t types.Transcript) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM transcripts WHERE id = ?`, t.ID); err != nil {
		return fmt.Errorf("deleting old transcript: %w", err)
	}

	wam, wamReason := meanColumns(t.WAM)
	eih, eihReason := meanColumns(t.EIHWAM)
	_, err = tx.ExecContext(ctx,
		`INSERT INTO transcripts (id, source, wam, wam_reason, eihwam, eihwam_reason, processed_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		t.ID, t.Source, wam, wamReason, eih, eihReason, t.ProcessedAt.UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("inserting transcript: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO records (transcript_id, position, year, session, unit_code, unit_name, mark, grade, credit_points)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("preparing insert: %w", err)
	}
	defer stmt.Close()

	for i, r := range t.Records {
		_, err := stmt.ExecContext(ctx,
			t.ID, i, r.Year, r.Session, r.UnitCode, r.UnitName, r.Mark, r.Grade, r.CreditPoints,
		)
		if err != nil {
			return fmt.Errorf("inserting record %d: %w", i, err)
		}
	}

	return tx.Commit()
}

// List returns the most recently processed transcripts first, up to limit
// entries (20 when limit is not positive).
func (s *Store) List(ctx context.Context, limit int) ([]Entry, error) {
	if limit <= 0 {
		limit = defaultListLimit
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT t.id, t.source, t.wam, t.wam_reason, t.eihwam, t.eihwam_reason, t.processed_at,
			COUNT(r.position), COALESCE(SUM(r.credit_points), 0)
		 FROM transcripts t LEFT JOIN records r ON r.transcript_id = t.id
		 GROUP BY t.id
		 ORDER BY t.processed_at DESC
		 LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("querying transcripts: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var (
			e                    Entry
			wam, eih             sql.NullFloat64
			wamReason, eihReason sql.NullString
			processedAt          string
		)
		if err := rows.Scan(&e.ID, &e.Source, &wam, &wamReason, &eih, &eihReason, &processedAt,
			&e.Records, &e.CreditPoints); err != nil {
			return nil, fmt.Errorf("scanning transcript: %w", err)
		}
		e.WAM = meanFromColumns(wam, wamReason)
		e.EIHWAM = meanFromColumns(eih, eihReason)
		if e.ProcessedAt, err = parseTime(processedAt); err != nil {
			return nil, fmt.Errorf("scanning transcript %s: %w", e.ID, err)
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// Get loads one transcript with its records in their original order.
func (s *Store) Get(ctx context.Context, id string) (types.Transcript, error) {
	var (
		t                    types.Transcript
		wam, eih             sql.NullFloat64
		wamReason, eihReason sql.NullString
		processedAt          string
	)
	err := s.db.QueryRowContext(ctx,
		`SELECT id, source, wam, wam_reason, eihwam, eihwam_reason, processed_at
		 FROM transcripts WHERE id = ?`, id,
	).Scan(&t.ID, &t.Source, &wam, &wamReason, &eih, &eihReason, &processedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return types.Transcript{}, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	if err != nil {
		return types.Transcript{}, fmt.Errorf("querying transcript %s: %w", id, err)
	}
	t.WAM = meanFromColumns(wam, wamReason)
	t.EIHWAM = meanFromColumns(eih, eihReason)
	if t.ProcessedAt, err = parseTime(processedAt); err != nil {
		return types.Transcript{}, fmt.Errorf("scanning transcript %s: %w", id, err)
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT year, session, unit_code, unit_name, mark, grade, credit_points
		 FROM records WHERE transcript_id = ? ORDER BY position`, id)
	if err != nil {
		return types.Transcript{}, fmt.Errorf("querying records: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var r types.Record
		if err := rows.Scan(&r.Year, &r.Session, &r.UnitCode, &r.UnitName, &r.Mark, &r.Grade, &r.CreditPoints); err != nil {
			return types.Transcript{}, fmt.Errorf("scanning record: %w", err)
		}
		t.Records = append(t.Records, r)
	}
	if err := rows.Err(); err != nil {
		return types.Transcript{}, err
	}
	return t, nil
}

// meanColumns maps a Mean to its nullable value and reason columns.
func meanColumns(m types.Mean) (sql.NullFloat64, sql.NullString) {
	if m.Available {
		return sql.NullFloat64{Float64: m.Value, Valid: true}, sql.NullString{}
	}
	return sql.NullFloat64{}, sql.NullString{String: m.Reason, Valid: true}
}

func meanFromColumns(v sql.NullFloat64, reason sql.NullString) types.Mean {
	if v.Valid {
		return types.MeanOf(v.Float64)
	}
	return types.Unavailable(reason.String)
}

// parseTime reads a processed_at column.
func parseTime(s string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("processed_at: %w", err)
	}
	return t, nil
}
