package precompute

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eduplan/timetable-engine/internal/dto"
	"github.com/eduplan/timetable-engine/internal/model"
)

func buildProblem(t *testing.T, doc *dto.InputDocument) *model.Problem {
	t.Helper()
	p, err := model.Validate(doc)
	require.NoError(t, err)
	return p
}

func baseDoc() *dto.InputDocument {
	return &dto.InputDocument{
		Config: dto.Config{WeeksTotal: 4},
		Timeslots: []dto.Timeslot{
			{ID: "mon-1", Day: "Mon", Start: "08:00", End: "09:00", DurationMin: 60},
			{ID: "mon-2", Day: "Mon", Start: "09:00", End: "10:00", DurationMin: 60},
		},
		Rooms: []dto.Room{
			{ID: "small", Capacity: 10},
			{ID: "big", Capacity: 40},
		},
		Teachers: []dto.Teacher{{ID: "t1"}},
		Sessions: []dto.Session{
			{
				ID:     "s1",
				Groups: []dto.Group{{ID: "g1", Size: 20}},
				Modules: []dto.Module{
					{
						ID: "m1",
						Events: []dto.Event{
							{ID: "e1", TeacherID: "t1", DurationMin: 60, Audience: dto.Audience{Type: "all_groups"}},
						},
					},
				},
			},
		},
	}
}

func TestCompute_FiltersRoomsByCapacity(t *testing.T) {
	p := buildProblem(t, baseDoc())
	domains, diags := Compute(p)
	assert.Empty(t, diags)
	cands := domains.ByEvent["e1"]
	require.NotEmpty(t, cands)
	for _, c := range cands {
		assert.Equal(t, "big", c.RoomID)
	}
	assert.Len(t, cands, 2) // both timeslots, only the big room qualifies
}

func TestCompute_TeacherUnavailableEverywhereIsInfeasible(t *testing.T) {
	doc := baseDoc()
	doc.Teachers[0].Available = []string{} // never available
	p := buildProblem(t, doc)
	domains, diags := Compute(p)
	assert.Empty(t, domains.ByEvent["e1"])
	require.Len(t, diags, 1)
	assert.Equal(t, "e1", diags[0].EventID)
}

func TestCompute_AllowedSlotsRestrictsDomain(t *testing.T) {
	doc := baseDoc()
	doc.Sessions[0].Modules[0].Events[0].AllowedSlots = []string{"mon-2"}
	p := buildProblem(t, doc)
	domains, _ := Compute(p)
	cands := domains.ByEvent["e1"]
	require.Len(t, cands, 1)
	assert.Equal(t, "mon-2", cands[0].TimeslotID)
}

func TestCompute_NoRoomLargeEnoughIsInfeasible(t *testing.T) {
	doc := baseDoc()
	doc.Sessions[0].Groups[0].Size = 1000
	p := buildProblem(t, doc)
	domains, diags := Compute(p)
	assert.Empty(t, domains.ByEvent["e1"])
	require.Len(t, diags, 1)
}
