// Package constraint implements the binary constraint checker (spec.md
// §4.4): given a partial assignment, decide whether placing one more
// event would conflict with an already-placed one. Two events can only
// conflict if they land on the same timeslot and their week sets
// intersect; within that, they conflict if they share a teacher, a room,
// or an audience group.
package constraint

import (
	"github.com/eduplan/timetable-engine/internal/model"
	"github.com/eduplan/timetable-engine/internal/precompute"
)

// Placement records where and when an event has already been assigned.
type Placement struct {
	TimeslotID string
	RoomID     string
}

// Checker evaluates binary conflicts against a problem's resolved events.
type Checker struct {
	p *model.Problem
}

// New builds a Checker bound to a problem.
func New(p *model.Problem) *Checker {
	return &Checker{p: p}
}

// Conflicts reports whether placing ev at candidate c would conflict with
// any event already present in assigned (keyed by event id).
func (ck *Checker) Conflicts(ev *model.Event, c precompute.Candidate, assigned map[string]Placement) bool {
	for otherID, placement := range assigned {
		if placement.TimeslotID != c.TimeslotID {
			continue
		}
		other, ok := ck.p.Event(otherID)
		if !ok {
			continue
		}
		if !ev.Weeks.Intersects(other.Weeks) {
			continue
		}
		if other.TeacherID == ev.TeacherID {
			return true
		}
		if placement.RoomID == c.RoomID {
			return true
		}
		if sharesGroup(ev, other) {
			return true
		}
	}
	return false
}

func sharesGroup(a, b *model.Event) bool {
	bset := make(map[string]bool, len(b.GroupIDs))
	for _, g := range b.GroupIDs {
		bset[g] = true
	}
	for _, g := range a.GroupIDs {
		if bset[g] {
			return true
		}
	}
	return false
}
