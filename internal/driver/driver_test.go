package driver

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/eduplan/timetable-engine/internal/dto"
)

func sampleDoc(strategy string) *dto.InputDocument {
	return &dto.InputDocument{
		Config: dto.Config{WeeksTotal: 2, Strategy: strategy},
		Timeslots: []dto.Timeslot{
			{ID: "s1", Day: "Mon", Start: "08:00", End: "09:00", DurationMin: 60},
			{ID: "s2", Day: "Mon", Start: "09:00", End: "10:00", DurationMin: 60},
		},
		Rooms:    []dto.Room{{ID: "r1", Capacity: 30}},
		Teachers: []dto.Teacher{{ID: "t1"}},
		Sessions: []dto.Session{
			{
				ID:     "sess1",
				Groups: []dto.Group{{ID: "g1", Size: 10}},
				Modules: []dto.Module{
					{
						ID: "m1",
						Events: []dto.Event{
							{ID: "e1", TeacherID: "t1", DurationMin: 60, Audience: dto.Audience{Type: "all_groups"}},
							{ID: "e2", TeacherID: "t1", DurationMin: 60, Audience: dto.Audience{Type: "all_groups"}},
						},
					},
				},
			},
		},
	}
}

func TestSolve_SingleStrategy(t *testing.T) {
	d := New(zap.NewNop(), NewMetrics())
	result, err := d.Solve(sampleDoc("dfs"), 5*time.Second)
	require.NoError(t, err)
	assert.Equal(t, "success", result.Meta.Status)
	assert.Equal(t, 2, result.Meta.EventsScheduled)
	assert.NotEmpty(t, result.Meta.RunID)
	assert.Nil(t, result.Comparison)
}

func TestSolve_AllStrategyComparison(t *testing.T) {
	d := New(zap.NewNop(), NewMetrics())
	result, err := d.Solve(sampleDoc("all"), 5*time.Second)
	require.NoError(t, err)
	assert.Equal(t, "success", result.Meta.Status)
	require.Len(t, result.Comparison, 4)
	for _, run := range result.Comparison {
		assert.Equal(t, "success", run.Status)
	}
}

func TestSolve_InvalidInputReturnsHardError(t *testing.T) {
	d := New(zap.NewNop(), NewMetrics())
	doc := sampleDoc("dfs")
	doc.Sessions[0].Modules[0].Events[0].TeacherID = "ghost"
	_, err := d.Solve(doc, 5*time.Second)
	require.Error(t, err)
}

func TestSolve_EmptyDomainIsInfeasible(t *testing.T) {
	d := New(zap.NewNop(), NewMetrics())
	doc := sampleDoc("dfs")
	doc.Teachers[0].Available = []string{}
	result, err := d.Solve(doc, 5*time.Second)
	require.NoError(t, err)
	assert.Equal(t, "failure", result.Meta.Status)
	assert.NotEmpty(t, result.Meta.Diagnostics)
}
