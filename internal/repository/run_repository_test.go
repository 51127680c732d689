package repository

import (
	"context"
	"regexp"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eduplan/timetable-engine/internal/dto"
)

func newRunMock(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock, func()) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	return sqlx.NewDb(db, "sqlmock"), mock, func() { db.Close() }
}

func TestRunRepositorySave(t *testing.T) {
	db, mock, cleanup := newRunMock(t)
	defer cleanup()
	repo := NewRunRepository(db)

	mock.ExpectExec("INSERT INTO solve_runs").
		WithArgs("run-1", "fp-1", "dfs", "success", 3, 3, sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(1, 1))

	doc := &dto.SolutionDocument{
		Meta: dto.SolutionMeta{
			RunID: "run-1", Strategy: "dfs", Status: "success",
			EventsTotal: 3, EventsScheduled: 3,
		},
	}
	require.NoError(t, repo.Save(context.Background(), "fp-1", doc))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRunRepositoryGetNotFound(t *testing.T) {
	db, mock, cleanup := newRunMock(t)
	defer cleanup()
	repo := NewRunRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, fingerprint, strategy, status, events_total, events_scheduled, wall_time_ms, document, created_at")).
		WithArgs("missing").
		WillReturnRows(sqlmock.NewRows(nil))

	run, err := repo.Get(context.Background(), "missing")
	require.NoError(t, err)
	assert.Nil(t, run)
}

func TestRunRepositoryList(t *testing.T) {
	db, mock, cleanup := newRunMock(t)
	defer cleanup()
	repo := NewRunRepository(db)

	rows := sqlmock.NewRows([]string{"id", "fingerprint", "strategy", "status", "events_total", "events_scheduled", "wall_time_ms", "document", "created_at"}).
		AddRow("run-1", "fp-1", "dfs", "success", 3, 3, 12, []byte(`{}`), time.Now())
	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, fingerprint, strategy, status, events_total, events_scheduled, wall_time_ms, document, created_at")).
		WithArgs(50).
		WillReturnRows(rows)

	runs, err := repo.List(context.Background(), 0)
	require.NoError(t, err)
	assert.Len(t, runs, 1)
	assert.NoError(t, mock.ExpectationsWereMet())
}
