// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package history

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/pdiddy/sentence-engine/pkg/types"
)

// QueryOptions holds parameters for history queries.
type QueryOptions struct {
	// Query is an FTS5 search over the English and Korean text.
	Query string

	// SchemaID filters by producing pattern.
	SchemaID string

	// Category filters by pattern category.
	Category string

	// RequestID filters to one generation call.
	RequestID string

	// MaxResults limits result count. Zero uses the store default.
	MaxResults int
}

// IsEmpty reports whether the query has no search terms or filters.
func (q QueryOptions) IsEmpty() bool {
	return q.Query == "" && q.SchemaID == "" && q.Category == "" && q.RequestID == ""
}

// Record is a stored sentence with the request it came from.
type Record struct {
	types.GeneratedSentence `yaml:",inline"`
	ID        string `json:"id" yaml:"id"`
	RequestID string `json:"request_id" yaml:"request_id"`
	Input     string `json:"input,omitempty" yaml:"input,omitempty"`
	CreatedAt string `json:"created_at" yaml:"created_at"`
}

// Retrieve queries stored sentences. Full-text queries rank by relevance;
// filter-only queries return the newest first.
func (s *Store) Retrieve(ctx context.Context, opts QueryOptions) ([]Record, error) {
	maxResults := opts.MaxResults
	if maxResults <= 0 {
		maxResults = s.maxResults
	}

	var (
		qb     strings.Builder
		args   []any
		useFTS = opts.Query != ""
	)

	if useFTS {
		qb.WriteString(
			`SELECT s.id, s.request_id, s.text, s.korean, s.schema_id, s.category,
				s.level, s.confidence, s.lexeme_ids, s.created_at, r.input
			FROM sentences_fts
			JOIN sentences s ON s.rowid = sentences_fts.rowid
			LEFT JOIN requests r ON s.request_id = r.id
			WHERE sentences_fts MATCH ?`)
		args = append(args, opts.Query)
	} else {
		qb.WriteString(
			`SELECT s.id, s.request_id, s.text, s.korean, s.schema_id, s.category,
				s.level, s.confidence, s.lexeme_ids, s.created_at, r.input
			FROM sentences s
			LEFT JOIN requests r ON s.request_id = r.id
			WHERE 1=1`)
	}

	if opts.SchemaID != "" {
		qb.WriteString(` AND s.schema_id = ?`)
		args = append(args, opts.SchemaID)
	}
	if opts.Category != "" {
		qb.WriteString(` AND s.category = ?`)
		args = append(args, opts.Category)
	}
	if opts.RequestID != "" {
		qb.WriteString(` AND s.request_id = ?`)
		args = append(args, opts.RequestID)
	}

	if useFTS {
		qb.WriteString(` ORDER BY sentences_fts.rank`)
	} else {
		qb.WriteString(` ORDER BY s.rowid DESC`)
	}

	qb.WriteString(` LIMIT ?`)
	args = append(args, maxResults)

	rows, err := s.db.QueryContext(ctx, qb.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("querying history: %w", err)
	}
	defer rows.Close()

	var results []Record
	for rows.Next() {
		var (
			rec      Record
			category sql.NullString
			level    sql.NullString
			idsJSON  sql.NullString
			input    sql.NullString
		)
		if err := rows.Scan(
			&rec.ID, &rec.RequestID, &rec.Text, &rec.Korean, &rec.SchemaID, &category,
			&level, &rec.Confidence, &idsJSON, &rec.CreatedAt, &input,
		); err != nil {
			return nil, fmt.Errorf("scanning row: %w", err)
		}
		rec.Category = category.String
		rec.Level = types.Level(level.String)
		rec.Input = input.String
		if idsJSON.Valid {
			json.Unmarshal([]byte(idsJSON.String), &rec.UsedLexemeIDs)
		}
		results = append(results, rec)
	}

	return results, rows.Err()
}
