// Package precompute implements the domain pre-computation pass
// (spec.md §4.3): for every event, the set of (timeslot, room) pairs
// that satisfy every unary constraint in isolation, before any binary
// (cross-event) constraint is considered. Search only ever branches over
// these pre-filtered candidates, which is what keeps MRV and the
// successor function cheap.
package precompute

import (
	"fmt"

	"github.com/eduplan/timetable-engine/internal/model"
)

// Candidate is one admissible (timeslot, room) pairing for an event.
type Candidate struct {
	TimeslotID string
	RoomID     string
}

// Domains holds the pre-computed candidate list for every event, keyed by
// event id.
type Domains struct {
	ByEvent map[string][]Candidate
}

// Diagnostic explains why an event's domain came back empty, so an
// infeasible run can report something more useful than "no solution".
type Diagnostic struct {
	EventID string
	Reason  string
}

// Compute derives the domain of every event in the problem. An event
// whose domain is empty makes the whole problem infeasible (spec.md
// §4.3); Compute still returns the full Domains so the caller can decide
// whether to short-circuit before search.
func Compute(p *model.Problem) (*Domains, []Diagnostic) {
	domains := &Domains{ByEvent: make(map[string][]Candidate, len(p.Events))}
	var diags []Diagnostic

	for i := range p.Events {
		ev := &p.Events[i]
		cands := eventDomain(p, ev)
		domains.ByEvent[ev.ID] = cands
		if len(cands) == 0 {
			diags = append(diags, Diagnostic{EventID: ev.ID, Reason: explainEmptyDomain(p, ev)})
		}
	}
	return domains, diags
}

// RequiredCapacity is the minimum room capacity an event needs: the
// larger of its audience demand and its declared minimum room capacity.
func RequiredCapacity(ev *model.Event) int {
	if ev.MinRoomCapacity > ev.Demand {
		return ev.MinRoomCapacity
	}
	return ev.Demand
}

func groupsAvailable(p *model.Problem, ev *model.Event, timeslotID string) bool {
	for _, gid := range ev.GroupIDs {
		g, ok := p.Group(gid)
		if !ok || !g.IsAvailable(timeslotID) {
			return false
		}
	}
	return true
}

// eventDomain applies the six unary rules: duration match, allowed-slots
// whitelist, teacher availability, group availability, room capacity, and
// room availability.
func eventDomain(p *model.Problem, ev *model.Event) []Candidate {
	teacher, ok := p.Teacher(ev.TeacherID)
	if !ok {
		return nil
	}
	required := RequiredCapacity(ev)

	var out []Candidate
	for i := range p.Timeslots {
		ts := &p.Timeslots[i]
		if ts.DurationMin != ev.DurationMin {
			continue
		}
		if ev.AllowedSlots != nil && !ev.AllowedSlots[ts.ID] {
			continue
		}
		if !teacher.IsAvailable(ts.ID) {
			continue
		}
		if !groupsAvailable(p, ev, ts.ID) {
			continue
		}
		for j := range p.Rooms {
			room := &p.Rooms[j]
			if room.Capacity < required {
				continue
			}
			if !room.IsAvailable(ts.ID) {
				continue
			}
			out = append(out, Candidate{TimeslotID: ts.ID, RoomID: room.ID})
		}
	}
	return out
}

// explainEmptyDomain checks the unary rules in the order duration match,
// allowed-slots whitelist, room capacity, teacher availability, group
// availability, and reports the first one that eliminated every
// candidate; if none did, it blames the combination of room capacity and
// room availability. The result feeds the infeasible-run diagnostic.
func explainEmptyDomain(p *model.Problem, ev *model.Event) string {
	teacher, ok := p.Teacher(ev.TeacherID)
	if !ok {
		return fmt.Sprintf("teacher %q does not resolve", ev.TeacherID)
	}
	required := RequiredCapacity(ev)

	roomCapacityExists := false
	for j := range p.Rooms {
		if p.Rooms[j].Capacity >= required {
			roomCapacityExists = true
			break
		}
	}

	durationMatches, slotMatches, teacherOK, groupsOK := 0, 0, 0, 0
	for i := range p.Timeslots {
		ts := &p.Timeslots[i]
		if ts.DurationMin != ev.DurationMin {
			continue
		}
		durationMatches++
		if ev.AllowedSlots != nil && !ev.AllowedSlots[ts.ID] {
			continue
		}
		slotMatches++
		if !teacher.IsAvailable(ts.ID) {
			continue
		}
		teacherOK++
		if !groupsAvailable(p, ev, ts.ID) {
			continue
		}
		groupsOK++
	}

	switch {
	case durationMatches == 0:
		return fmt.Sprintf("no timeslot has duration_min %d", ev.DurationMin)
	case slotMatches == 0:
		return "none of allowed_slots match the event duration"
	case !roomCapacityExists:
		return fmt.Sprintf("no room has capacity >= %d", required)
	case teacherOK == 0:
		return fmt.Sprintf("teacher %q is unavailable at every candidate timeslot", ev.TeacherID)
	case groupsOK == 0:
		return "an audience group is unavailable at every remaining candidate timeslot"
	default:
		return "no room is both large enough and available at a candidate timeslot"
	}
}
