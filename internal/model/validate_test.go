package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eduplan/timetable-engine/internal/dto"
)

func rawInts(values ...int) json.RawMessage {
	b, _ := json.Marshal(values)
	return b
}

func minimalDoc() *dto.InputDocument {
	return &dto.InputDocument{
		Config: dto.Config{WeeksTotal: 4, Strategy: "dfs"},
		Timeslots: []dto.Timeslot{
			{ID: "mon-1", Day: "Mon", Start: "08:00", End: "09:00", DurationMin: 60},
			{ID: "mon-2", Day: "Mon", Start: "09:00", End: "10:00", DurationMin: 60},
		},
		Rooms: []dto.Room{
			{ID: "r1", Capacity: 30},
		},
		Teachers: []dto.Teacher{
			{ID: "t1"},
		},
		Sessions: []dto.Session{
			{
				ID: "s1",
				Groups: []dto.Group{
					{ID: "g1", Size: 20},
				},
				Modules: []dto.Module{
					{
						ID: "m1",
						Events: []dto.Event{
							{
								ID: "e1", TeacherID: "t1", DurationMin: 60,
								Audience: dto.Audience{Type: "all_groups"},
							},
						},
					},
				},
			},
		},
	}
}

func TestValidate_HappyPath(t *testing.T) {
	p, err := Validate(minimalDoc())
	require.NoError(t, err)
	require.Len(t, p.Events, 1)
	assert.Equal(t, 20, p.Events[0].Demand)
	assert.Equal(t, Strategy("dfs"), p.Config.Strategy)
	assert.Equal(t, 4, p.Config.WeeksTotal)
	assert.True(t, p.Config.UseMRV)

	ev, ok := p.Event("e1")
	require.True(t, ok)
	assert.Equal(t, []string{"g1"}, ev.GroupIDs)
}

func TestValidate_DuplicateTimeslotID(t *testing.T) {
	doc := minimalDoc()
	doc.Timeslots = append(doc.Timeslots, dto.Timeslot{ID: "mon-1", Day: "Tue", Start: "08:00", End: "09:00", DurationMin: 60})
	_, err := Validate(doc)
	require.Error(t, err)
}

func TestValidate_UnresolvedTeacher(t *testing.T) {
	doc := minimalDoc()
	doc.Sessions[0].Modules[0].Events[0].TeacherID = "ghost"
	_, err := Validate(doc)
	require.Error(t, err)
}

func TestValidate_AudienceGroupOutsideSession(t *testing.T) {
	doc := minimalDoc()
	doc.Sessions[0].Modules[0].Events[0].Audience = dto.Audience{Type: "groups", GroupIDs: []string{"outsider"}}
	_, err := Validate(doc)
	require.Error(t, err)
}

func TestValidate_AllowedSlotDurationMismatch(t *testing.T) {
	doc := minimalDoc()
	doc.Timeslots = append(doc.Timeslots, dto.Timeslot{ID: "short", Day: "Mon", Start: "10:00", End: "10:30", DurationMin: 30})
	doc.Sessions[0].Modules[0].Events[0].AllowedSlots = []string{"short"}
	_, err := Validate(doc)
	require.Error(t, err)
}

func TestValidate_WeekSpecList(t *testing.T) {
	doc := minimalDoc()
	doc.Sessions[0].Modules[0].Events[0].Weeks = &dto.WeekSpec{Mode: "list", Values: rawInts(1, 3)}
	p, err := Validate(doc)
	require.NoError(t, err)
	ev, _ := p.Event("e1")
	assert.Equal(t, []int{1, 3}, ev.Weeks.ToSortedList())
}

func TestValidate_EmptyWeekSetIsInvariantViolation(t *testing.T) {
	doc := minimalDoc()
	doc.Sessions[0].Modules[0].Events[0].Weeks = &dto.WeekSpec{Mode: "list", Values: rawInts()}
	_, err := Validate(doc)
	require.Error(t, err)
}

func TestValidate_DefaultsApplied(t *testing.T) {
	doc := minimalDoc()
	doc.Config = dto.Config{}
	p, err := Validate(doc)
	require.NoError(t, err)
	assert.Equal(t, 16, p.Config.WeeksTotal)
	assert.Equal(t, StrategyDFS, p.Config.Strategy)
	assert.Equal(t, "week", p.Config.WeekName)
}
