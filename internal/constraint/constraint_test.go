package constraint

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eduplan/timetable-engine/internal/dto"
	"github.com/eduplan/timetable-engine/internal/model"
	"github.com/eduplan/timetable-engine/internal/precompute"
)

func twoEventDoc() *dto.InputDocument {
	return &dto.InputDocument{
		Config: dto.Config{WeeksTotal: 4},
		Timeslots: []dto.Timeslot{
			{ID: "slot-1", Day: "Mon", Start: "08:00", End: "09:00", DurationMin: 60},
		},
		Rooms: []dto.Room{
			{ID: "r1", Capacity: 30},
			{ID: "r2", Capacity: 30},
		},
		Teachers: []dto.Teacher{{ID: "t1"}, {ID: "t2"}},
		Sessions: []dto.Session{
			{
				ID:     "s1",
				Groups: []dto.Group{{ID: "g1", Size: 10}, {ID: "g2", Size: 10}},
				Modules: []dto.Module{
					{
						ID: "m1",
						Events: []dto.Event{
							{ID: "e1", TeacherID: "t1", DurationMin: 60, Audience: dto.Audience{Type: "groups", GroupIDs: []string{"g1"}}},
							{ID: "e2", TeacherID: "t2", DurationMin: 60, Audience: dto.Audience{Type: "groups", GroupIDs: []string{"g2"}}},
						},
					},
				},
			},
		},
	}
}

func TestConflicts_SameTeacherSameSlot(t *testing.T) {
	doc := twoEventDoc()
	doc.Sessions[0].Modules[0].Events[1].TeacherID = "t1" // now shares teacher with e1
	p, err := model.Validate(doc)
	require.NoError(t, err)

	ck := New(p)
	ev2, _ := p.Event("e2")
	assigned := map[string]Placement{"e1": {TimeslotID: "slot-1", RoomID: "r1"}}
	assert.True(t, ck.Conflicts(ev2, precompute.Candidate{TimeslotID: "slot-1", RoomID: "r2"}, assigned))
}

func TestConflicts_DifferentTeacherDifferentRoomNoConflict(t *testing.T) {
	doc := twoEventDoc()
	p, err := model.Validate(doc)
	require.NoError(t, err)

	ck := New(p)
	ev2, _ := p.Event("e2")
	assigned := map[string]Placement{"e1": {TimeslotID: "slot-1", RoomID: "r1"}}
	assert.False(t, ck.Conflicts(ev2, precompute.Candidate{TimeslotID: "slot-1", RoomID: "r2"}, assigned))
}

func TestConflicts_SameRoomSameSlot(t *testing.T) {
	doc := twoEventDoc()
	p, err := model.Validate(doc)
	require.NoError(t, err)

	ck := New(p)
	ev2, _ := p.Event("e2")
	assigned := map[string]Placement{"e1": {TimeslotID: "slot-1", RoomID: "r1"}}
	assert.True(t, ck.Conflicts(ev2, precompute.Candidate{TimeslotID: "slot-1", RoomID: "r1"}, assigned))
}

func TestConflicts_NoWeekOverlapMeansNoConflict(t *testing.T) {
	doc := twoEventDoc()
	doc.Sessions[0].Modules[0].Events[0].Weeks = &dto.WeekSpec{Mode: "list", Values: []byte("[1,2]")}
	doc.Sessions[0].Modules[0].Events[1].Weeks = &dto.WeekSpec{Mode: "list", Values: []byte("[3,4]")}
	doc.Sessions[0].Modules[0].Events[1].TeacherID = "t1"
	p, err := model.Validate(doc)
	require.NoError(t, err)

	ck := New(p)
	ev2, _ := p.Event("e2")
	assigned := map[string]Placement{"e1": {TimeslotID: "slot-1", RoomID: "r1"}}
	assert.False(t, ck.Conflicts(ev2, precompute.Candidate{TimeslotID: "slot-1", RoomID: "r2"}, assigned))
}
