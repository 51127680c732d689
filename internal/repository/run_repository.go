// Package repository persists the run history of past solve requests —
// input fingerprint, outcome, and the solution document itself — so
// cmd/timetable-api can expose a history endpoint. The core solver
// (internal/driver) never depends on this package; it is purely a
// downstream consumer of a finished solution document.
package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/eduplan/timetable-engine/internal/dto"
)

// Run is one persisted solve request.
type Run struct {
	ID          string    `db:"id"`
	Fingerprint string    `db:"fingerprint"`
	Strategy    string    `db:"strategy"`
	Status      string    `db:"status"`
	EventsTotal int       `db:"events_total"`
	Scheduled   int       `db:"events_scheduled"`
	WallTimeMS  int64     `db:"wall_time_ms"`
	Document    []byte    `db:"document"`
	CreatedAt   time.Time `db:"created_at"`
}

// RunRepository persists Run rows.
type RunRepository struct {
	db *sqlx.DB
}

// NewRunRepository constructs the repository.
func NewRunRepository(db *sqlx.DB) *RunRepository {
	return &RunRepository{db: db}
}

// Save records a finished solve run. The solution document is stored as
// raw JSON rather than normalized columns: it is write-once, read-whole,
// and the schema would otherwise have to track every field search adds.
func (r *RunRepository) Save(ctx context.Context, fingerprint string, doc *dto.SolutionDocument) error {
	body, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("marshal solution document: %w", err)
	}
	const query = `INSERT INTO solve_runs (id, fingerprint, strategy, status, events_total, events_scheduled, wall_time_ms, document, created_at)
		VALUES (:id, :fingerprint, :strategy, :status, :events_total, :events_scheduled, :wall_time_ms, :document, :created_at)`
	run := Run{
		ID:          doc.Meta.RunID,
		Fingerprint: fingerprint,
		Strategy:    doc.Meta.Strategy,
		Status:      doc.Meta.Status,
		EventsTotal: doc.Meta.EventsTotal,
		Scheduled:   doc.Meta.EventsScheduled,
		WallTimeMS:  doc.Meta.WallTimeMS,
		Document:    body,
		CreatedAt:   time.Now().UTC(),
	}
	if _, err := r.db.NamedExecContext(ctx, query, run); err != nil {
		return fmt.Errorf("save solve run: %w", err)
	}
	return nil
}

// Get fetches a single run by id.
func (r *RunRepository) Get(ctx context.Context, id string) (*Run, error) {
	const query = `SELECT id, fingerprint, strategy, status, events_total, events_scheduled, wall_time_ms, document, created_at
		FROM solve_runs WHERE id = $1`
	var run Run
	if err := r.db.GetContext(ctx, &run, query, id); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("get solve run: %w", err)
	}
	return &run, nil
}

// FindByFingerprint returns the most recent run for a given input
// fingerprint, used to answer "has this exact problem been solved
// before" independent of the Redis solution cache's TTL.
func (r *RunRepository) FindByFingerprint(ctx context.Context, fingerprint string) (*Run, error) {
	const query = `SELECT id, fingerprint, strategy, status, events_total, events_scheduled, wall_time_ms, document, created_at
		FROM solve_runs WHERE fingerprint = $1 ORDER BY created_at DESC LIMIT 1`
	var run Run
	if err := r.db.GetContext(ctx, &run, query, fingerprint); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("find solve run by fingerprint: %w", err)
	}
	return &run, nil
}

// List returns the most recent runs, newest first.
func (r *RunRepository) List(ctx context.Context, limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 50
	}
	const query = `SELECT id, fingerprint, strategy, status, events_total, events_scheduled, wall_time_ms, document, created_at
		FROM solve_runs ORDER BY created_at DESC LIMIT $1`
	var runs []Run
	if err := r.db.SelectContext(ctx, &runs, query, limit); err != nil {
		return nil, fmt.Errorf("list solve runs: %w", err)
	}
	return runs, nil
}
