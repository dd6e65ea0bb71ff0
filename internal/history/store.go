// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package history keeps a searchable record of generated sentences.
//
// The generation core returns sentences and persists nothing; this store is
// the caller-side archive the CLI writes after each run. Records live in a
// SQLite database with an FTS5 index over both languages. Builds need the
// sqlite_fts5 tag.
package history

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"

	"github.com/pdiddy/sentence-engine/pkg/types"
)

const dbFile = "history.db"

// Store manages the history database.
type Store struct {
	db         *sql.DB
	dir        string
	maxResults int
	now        func() time.Time
}

// NewStore opens or creates dir/history.db and its schema.
func NewStore(cfg types.HistoryConfig) (*Store, error) {
	if err := os.MkdirAll(cfg.Dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating history directory: %w", err)
	}

	dbPath := filepath.Join(cfg.Dir, dbFile)
	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL&_foreign_keys=on")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	maxResults := cfg.MaxResults
	if maxResults <= 0 {
		maxResults = types.DefaultHistoryResults
	}

	s := &Store{db: db, dir: cfg.Dir, maxResults: maxResults, now: time.Now}
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
		`CREATE TABLE IF NOT EXISTS requests (
			id TEXT PRIMARY KEY,
			input TEXT,
			tags TEXT,
			created_at TEXT NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS sentences (
			rowid INTEGER PRIMARY KEY AUTOINCREMENT,
			id TEXT NOT NULL UNIQUE,
			request_id TEXT NOT NULL REFERENCES requests(id) ON DELETE CASCADE,
			text TEXT NOT NULL,
			korean TEXT NOT NULL,
			schema_id TEXT NOT NULL,
			category TEXT,
			level TEXT,
			confidence REAL,
			lexeme_ids TEXT,
			created_at TEXT NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_sentences_schema ON sentences(schema_id)`,
		`CREATE INDEX IF NOT EXISTS idx_sentences_category ON sentences(category)`,
	}
	for _, stmt := range statements {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("executing schema statement: %w", err)
		}
	}

	var ftsExists int
	if err := s.db.QueryRow(
		`SELECT count(*) FROM sqlite_master WHERE type='table' AND name='sentences_fts'`,
	).Scan(&ftsExists); err != nil {
		return fmt.Errorf("checking FTS table: %w", err)
	}
	if ftsExists > 0 {
		return nil
	}

	ftsStatements := []string{
		`CREATE VIRTUAL TABLE sentences_fts USING fts5(text, korean, content=sentences, content_rowid=rowid)`,
		`CREATE TRIGGER sentences_ai AFTER INSERT ON sentences BEGIN
			INSERT INTO sentences_fts(rowid, text, korean) VALUES (new.rowid, new.text, new.korean);
		END`,
		`CREATE TRIGGER sentences_ad AFTER DELETE ON sentences BEGIN
			INSERT INTO sentences_fts(sentences_fts, rowid, text, korean) VALUES('delete', old.rowid, old.text, old.korean);
		END`,
	}
	for _, stmt := range ftsStatements {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("creating FTS infrastructure: %w", err)
		}
	}
	return nil
}

// Request describes the generation call a batch of sentences came from.
type Request struct {
	Input string
	Tags  []string
}

// Save records one generation call and its sentences in a single
// transaction and returns the request id.
func (s *Store) Save(ctx context.Context, req Request, sentences []types.GeneratedSentence) (string, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return "", fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	requestID := uuid.NewString()
	created := s.now().UTC().Format(time.RFC3339Nano)
	tagsJSON, _ := json.Marshal(req.Tags)
	if _, err := tx.ExecContext(ctx,
		`INSERT INTO requests (id, input, tags, created_at) VALUES (?, ?, ?, ?)`,
		requestID, req.Input, string(tagsJSON), created,
	); err != nil {
		return "", fmt.Errorf("inserting request: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO sentences (id, request_id, text, korean, schema_id, category, level, confidence, lexeme_ids, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return "", fmt.Errorf("preparing insert: %w", err)
	}
	defer stmt.Close()

	for _, gs := range sentences {
		idsJSON, _ := json.Marshal(gs.UsedLexemeIDs)
		if _, err := stmt.ExecContext(ctx,
			uuid.NewString(), requestID, gs.Text, gs.Korean, gs.SchemaID,
			gs.Category, string(gs.Level), gs.Confidence, string(idsJSON), created,
		); err != nil {
			return "", fmt.Errorf("inserting sentence %q: %w", gs.Text, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return "", fmt.Errorf("committing: %w", err)
	}
	return requestID, nil
}

// Count returns the number of stored sentences.
func (s *Store) Count(ctx context.Context) (int, error) {
	var n int
	if err := s.db.QueryRowContext(ctx, `SELECT count(*) FROM sentences`).Scan(&n); err != nil {
		return 0, fmt.Errorf("counting sentences: %w", err)
	}
	return n, nil
}

// Prune deletes requests (and their sentences) older than cutoff.
func (s *Store) Prune(ctx context.Context, cutoff time.Time) (int64, error) {
	res, err := s.db.ExecContext(ctx,
		`DELETE FROM sentences WHERE created_at < ?`, cutoff.UTC().Format(time.RFC3339Nano))
	if err != nil {
		return 0, fmt.Errorf("pruning sentences: %w", err)
	}
	n, _ := res.RowsAffected()
	if _, err := s.db.ExecContext(ctx,
		`DELETE FROM requests WHERE created_at < ?`, cutoff.UTC().Format(time.RFC3339Nano)); err != nil {
		return n, fmt.Errorf("pruning requests: %w", err)
	}
	return n, nil
}
