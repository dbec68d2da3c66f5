// Package audit is an optional parse-history sink: when wired in, it
// records one row per parse attempt (namespace, source, dialect, error
// codes) to Postgres. It is deliberately outside the core parse path
// (spec.md §1's non-goals exclude persistence from the library itself) —
// it only observes a parser.Result after the fact, it never feeds back
// into parsing and never mutates the Value tree, so wiring it in does not
// violate the "immutable after construction" invariant (spec.md §3).
package audit

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/badkraft/anvil/internal/parser"
)

// Record is one row of parse history.
type Record struct {
	RecordID   string    `db:"record_id"`
	Namespace  string    `db:"namespace"`
	SourceID   string    `db:"source_id"`
	Dialect    string    `db:"dialect"`
	ErrorCount int       `db:"error_count"`
	ErrorCodes []string  `db:"error_codes"`
	CreatedAt  time.Time `db:"created_at"`
}

// Sink records parse attempts to Postgres.
type Sink struct {
	db *sqlx.DB
	tx *sqlx.Tx
}

// NewSink wraps an already-open *sqlx.DB. Callers obtain that handle
// themselves (e.g. sqlx.Connect("postgres", dsn)) — connection lifecycle
// is not this package's concern.
func NewSink(db *sqlx.DB) *Sink { return &Sink{db: db} }

// BeginTx starts a transaction-scoped Sink, mirroring the teacher's
// repository pattern of layering a *sqlx.Tx underneath the same API.
func (s *Sink) BeginTx(ctx context.Context) (*Sink, error) {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("audit: begin transaction: %w", err)
	}
	return &Sink{db: s.db, tx: tx}, nil
}

// Commit commits a transaction-scoped Sink.
func (s *Sink) Commit() error {
	if s.tx == nil {
		return fmt.Errorf("audit: no active transaction")
	}
	return s.tx.Commit()
}

// Rollback rolls back a transaction-scoped Sink.
func (s *Sink) Rollback() error {
	if s.tx == nil {
		return fmt.Errorf("audit: no active transaction")
	}
	return s.tx.Rollback()
}

func (s *Sink) queryRowContext(ctx context.Context, query string, args ...interface{}) *sqlx.Row {
	if s.tx != nil {
		return s.tx.QueryRowxContext(ctx, query, args...)
	}
	return s.db.QueryRowxContext(ctx, query, args...)
}

func (s *Sink) queryContext(ctx context.Context, query string, args ...interface{}) (*sqlx.Rows, error) {
	if s.tx != nil {
		return s.tx.QueryxContext(ctx, query, args...)
	}
	return s.db.QueryxContext(ctx, query, args...)
}

// RecordParse writes one history row for a completed parser.Result.
func (s *Sink) RecordParse(ctx context.Context, namespace, sourceID string, r *parser.Result) (string, error) {
	codes := make([]string, len(r.Errors))
	for i, e := range r.Errors {
		codes[i] = string(e.Code)
	}

	query := `
		INSERT INTO anvil.parse_history
		(namespace, source_id, dialect, error_count, error_codes)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING record_id`

	var recordID string
	err := s.queryRowContext(ctx, query,
		namespace, sourceID, r.Dialect, r.TotalErrorCount, pq.Array(codes),
	).Scan(&recordID)
	if err != nil {
		return "", fmt.Errorf("audit: record parse: %w", err)
	}
	return recordID, nil
}

// History returns the most recent parse records for a namespace, newest
// first.
func (s *Sink) History(ctx context.Context, namespace string, limit int) ([]Record, error) {
	query := `
		SELECT record_id, namespace, source_id, dialect, error_count, error_codes, created_at
		FROM anvil.parse_history
		WHERE namespace = $1
		ORDER BY created_at DESC
		LIMIT $2`

	rows, err := s.queryContext(ctx, query, namespace, limit)
	if err != nil {
		return nil, fmt.Errorf("audit: query history: %w", err)
	}
	defer rows.Close()

	var out []Record
	for rows.Next() {
		var rec Record
		var codes pq.StringArray
		if err := rows.Scan(&rec.RecordID, &rec.Namespace, &rec.SourceID, &rec.Dialect,
			&rec.ErrorCount, &codes, &rec.CreatedAt); err != nil {
			return nil, fmt.Errorf("audit: scan history row: %w", err)
		}
		rec.ErrorCodes = []string(codes)
		out = append(out, rec)
	}
	return out, nil
}

// SummaryJSON serializes a parse result's error summary, for callers (e.g.
// a CLI report) that want it alongside a history record.
func SummaryJSON(r *parser.Result) ([]byte, error) {
	return json.Marshal(r.Errors.Summary())
}
