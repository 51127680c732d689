package selector

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eduplan/timetable-engine/internal/constraint"
	"github.com/eduplan/timetable-engine/internal/dto"
	"github.com/eduplan/timetable-engine/internal/model"
	"github.com/eduplan/timetable-engine/internal/precompute"
)

func mrvDoc() *dto.InputDocument {
	return &dto.InputDocument{
		Config: dto.Config{WeeksTotal: 1},
		Timeslots: []dto.Timeslot{
			{ID: "s1", Day: "Mon", Start: "08:00", End: "09:00", DurationMin: 60},
			{ID: "s2", Day: "Mon", Start: "09:00", End: "10:00", DurationMin: 60},
		},
		Rooms:    []dto.Room{{ID: "r1", Capacity: 30}},
		Teachers: []dto.Teacher{{ID: "t1"}, {ID: "t2"}},
		Sessions: []dto.Session{
			{
				ID:     "s1",
				Groups: []dto.Group{{ID: "g1", Size: 5}},
				Modules: []dto.Module{
					{
						ID: "m1",
						Events: []dto.Event{
							// e1 has a wide-open domain (2 slots).
							{ID: "e1", TeacherID: "t1", DurationMin: 60, Audience: dto.Audience{Type: "all_groups"}},
							// e2 is pinned to a single allowed slot.
							{ID: "e2", TeacherID: "t2", DurationMin: 60, Audience: dto.Audience{Type: "all_groups"}, AllowedSlots: []string{"s2"}},
						},
					},
				},
			},
		},
	}
}

func TestNext_MRVPicksSmallestDomain(t *testing.T) {
	p, err := model.Validate(mrvDoc())
	require.NoError(t, err)
	domains, diags := precompute.Compute(p)
	require.Empty(t, diags)

	ck := constraint.New(p)
	sel := New(p, domains, ck, true)

	unassigned := make([]string, len(p.Events))
	for i, ev := range p.Events {
		unassigned[i] = ev.ID
	}

	id, legal := sel.Next(unassigned, map[string]constraint.Placement{})
	assert.Equal(t, "e2", id)
	assert.Len(t, legal, 1)
}

func TestNext_NoMRVUsesInsertionOrder(t *testing.T) {
	p, err := model.Validate(mrvDoc())
	require.NoError(t, err)
	domains, _ := precompute.Compute(p)

	ck := constraint.New(p)
	sel := New(p, domains, ck, false)

	unassigned := make([]string, len(p.Events))
	for i, ev := range p.Events {
		unassigned[i] = ev.ID
	}

	id, _ := sel.Next(unassigned, map[string]constraint.Placement{})
	assert.Equal(t, "e1", id)
}
