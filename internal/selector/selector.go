// Package selector implements the minimum-remaining-values variable
// selector (spec.md §4.5): among the still-unassigned events, pick the
// one with the fewest legal candidates given the current partial
// assignment, breaking ties by insertion order. When use_mrv is false the
// selector degrades to plain insertion order.
package selector

import (
	"github.com/eduplan/timetable-engine/internal/constraint"
	"github.com/eduplan/timetable-engine/internal/model"
	"github.com/eduplan/timetable-engine/internal/precompute"
)

// Selector picks the next branching variable for the search engines.
type Selector struct {
	p       *model.Problem
	domains *precompute.Domains
	checker *constraint.Checker
	useMRV  bool
}

// New builds a Selector over a problem's pre-computed domains.
func New(p *model.Problem, domains *precompute.Domains, checker *constraint.Checker, useMRV bool) *Selector {
	return &Selector{p: p, domains: domains, checker: checker, useMRV: useMRV}
}

// LegalCandidates returns the candidates from an event's pre-computed
// domain that don't conflict with the current partial assignment.
func (s *Selector) LegalCandidates(eventID string, assigned map[string]constraint.Placement) []precompute.Candidate {
	ev, ok := s.p.Event(eventID)
	if !ok {
		return nil
	}
	domain := s.domains.ByEvent[eventID]
	legal := make([]precompute.Candidate, 0, len(domain))
	for _, c := range domain {
		if !s.checker.Conflicts(ev, c, assigned) {
			legal = append(legal, c)
		}
	}
	return legal
}

// Next chooses the next event to branch on from unassigned, which must
// be ordered by ascending Event.InsertionOrder, and returns its legal
// candidate list under the current assignment.
func (s *Selector) Next(unassigned []string, assigned map[string]constraint.Placement) (eventID string, legal []precompute.Candidate) {
	if len(unassigned) == 0 {
		return "", nil
	}
	if !s.useMRV {
		eventID = unassigned[0]
		legal = s.LegalCandidates(eventID, assigned)
		return eventID, legal
	}

	bestSize := -1
	for _, id := range unassigned {
		candidates := s.LegalCandidates(id, assigned)
		if bestSize == -1 || len(candidates) < bestSize {
			bestSize = len(candidates)
			eventID = id
			legal = candidates
		}
	}
	return eventID, legal
}
