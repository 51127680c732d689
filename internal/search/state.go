// Package search implements the shared state abstraction (spec.md §4.6)
// and the four search engines built on top of it (spec.md §4.7): DFS,
// BFS, UCS, and A*. Every engine explores the same tree of partial
// assignments; they differ only in frontier order and in whether a
// heuristic is added to the path cost.
package search

import (
	"github.com/eduplan/timetable-engine/internal/constraint"
	"github.com/eduplan/timetable-engine/internal/model"
	"github.com/eduplan/timetable-engine/internal/precompute"
	"github.com/eduplan/timetable-engine/internal/selector"
)

// State is a partial assignment: every event in Assigned has a placement,
// every event in Unassigned does not. Unassigned is kept in ascending
// Event.InsertionOrder so the MRV selector's tie-break is well defined.
// Because each successor strictly shrinks Unassigned, no state can ever
// repeat on a path — the search tree needs no explored/visited set.
type State struct {
	Assigned   map[string]constraint.Placement
	Unassigned []string
}

// IsGoal reports whether every event has been placed.
func (s *State) IsGoal() bool {
	return len(s.Unassigned) == 0
}

// Heuristic is the zero heuristic (spec.md §4.6): A* degenerates to
// uniform-cost search over this state space.
func (s *State) Heuristic() int {
	return 0
}

// successor pairs a child state with the cost of the step that produced it.
type successor struct {
	state    *State
	stepCost int
}

// successors selects the next branching variable via sel and returns one
// child state per legal candidate. A variable with zero legal candidates
// yields no successors, pruning the branch (spec.md §4.6 dead end).
func (s *State) successors(sel *selector.Selector) []successor {
	eventID, legal := sel.Next(s.Unassigned, s.Assigned)
	if eventID == "" || len(legal) == 0 {
		return nil
	}
	out := make([]successor, 0, len(legal))
	for _, c := range legal {
		out = append(out, successor{state: s.assign(eventID, c), stepCost: 1})
	}
	return out
}

func (s *State) assign(eventID string, c precompute.Candidate) *State {
	assigned := make(map[string]constraint.Placement, len(s.Assigned)+1)
	for k, v := range s.Assigned {
		assigned[k] = v
	}
	assigned[eventID] = constraint.Placement{TimeslotID: c.TimeslotID, RoomID: c.RoomID}

	unassigned := make([]string, 0, len(s.Unassigned)-1)
	for _, id := range s.Unassigned {
		if id != eventID {
			unassigned = append(unassigned, id)
		}
	}
	return &State{Assigned: assigned, Unassigned: unassigned}
}

// initialState builds the root state: nothing assigned, every event
// pending in insertion order.
func initialState(p *model.Problem) *State {
	unassigned := make([]string, len(p.Events))
	for i := range p.Events {
		unassigned[i] = p.Events[i].ID
	}
	return &State{Assigned: make(map[string]constraint.Placement), Unassigned: unassigned}
}
