package search

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eduplan/timetable-engine/internal/dto"
	"github.com/eduplan/timetable-engine/internal/model"
	"github.com/eduplan/timetable-engine/internal/precompute"
)

func solvableDoc() *dto.InputDocument {
	return &dto.InputDocument{
		Config: dto.Config{WeeksTotal: 1},
		Timeslots: []dto.Timeslot{
			{ID: "s1", Day: "Mon", Start: "08:00", End: "09:00", DurationMin: 60},
			{ID: "s2", Day: "Mon", Start: "09:00", End: "10:00", DurationMin: 60},
		},
		Rooms:    []dto.Room{{ID: "r1", Capacity: 30}},
		Teachers: []dto.Teacher{{ID: "t1"}},
		Sessions: []dto.Session{
			{
				ID:     "s1",
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

func unsolvableDoc() *dto.InputDocument {
	doc := solvableDoc()
	// Same teacher, same single room, but with only one timeslot means
	// both events can never both be placed (teacher conflict).
	doc.Timeslots = doc.Timeslots[:1]
	return doc
}

func TestRun_SolvesWithEveryStrategy(t *testing.T) {
	for _, strategy := range []model.Strategy{model.StrategyDFS, model.StrategyBFS, model.StrategyUCS, model.StrategyAStar} {
		t.Run(string(strategy), func(t *testing.T) {
			p, err := model.Validate(solvableDoc())
			require.NoError(t, err)
			domains, diags := precompute.Compute(p)
			require.Empty(t, diags)

			res := Run(p, domains, Options{Strategy: strategy, UseMRV: true})
			require.Equal(t, StatusSolved, res.Status)
			assert.Len(t, res.Assigned, 2)

			placements := map[string]bool{}
			for _, placement := range res.Assigned {
				key := placement.TimeslotID + "|" + placement.RoomID
				assert.False(t, placements[key], "two events placed at the same timeslot+room")
				placements[key] = true
			}
		})
	}
}

func TestRun_InfeasibleWhenTeacherCantCoverBothEvents(t *testing.T) {
	p, err := model.Validate(unsolvableDoc())
	require.NoError(t, err)
	domains, diags := precompute.Compute(p)
	require.Empty(t, diags)

	res := Run(p, domains, Options{Strategy: model.StrategyDFS, UseMRV: true})
	assert.Equal(t, StatusInfeasible, res.Status)
}

func TestRun_TimeoutReportedOnExpiredDeadline(t *testing.T) {
	p, err := model.Validate(solvableDoc())
	require.NoError(t, err)
	domains, _ := precompute.Compute(p)

	res := Run(p, domains, Options{Strategy: model.StrategyDFS, UseMRV: true, Deadline: time.Now().Add(-time.Second)})
	assert.Equal(t, StatusTimeout, res.Status)
}
