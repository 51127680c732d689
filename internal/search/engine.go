package search

import (
	"time"

	"github.com/eduplan/timetable-engine/internal/constraint"
	"github.com/eduplan/timetable-engine/internal/model"
	"github.com/eduplan/timetable-engine/internal/precompute"
	"github.com/eduplan/timetable-engine/internal/selector"
)

// Status is the outcome of a single search run.
type Status string

const (
	StatusSolved     Status = "solved"
	StatusInfeasible Status = "infeasible"
	StatusTimeout    Status = "timeout"
)

// Result reports a run's outcome and the metrics spec.md §5 asks
// comparison mode to surface per strategy.
type Result struct {
	Status       Status
	Assigned     map[string]constraint.Placement
	Cost         int
	Iterations   int
	Expanded     int
	PeakFrontier int
}

// Options configures one engine run.
type Options struct {
	Strategy model.Strategy
	UseMRV   bool
	Deadline time.Time // zero value means no deadline
}

// deadlineSampleEvery bounds how often the engine calls time.Now, so the
// cooperative timeout check never dominates the hot loop.
const deadlineSampleEvery = 256

// Run drives one search engine — the strategy named in opts.Strategy —
// to completion, infeasibility, or a cooperative timeout.
func Run(p *model.Problem, domains *precompute.Domains, opts Options) Result {
	checker := constraint.New(p)
	sel := selector.New(p, domains, checker, opts.UseMRV)

	frontier := newFrontier(string(opts.Strategy))
	root := initialState(p)
	frontier.Push(&Node{State: root, Cost: 0, Priority: 0})

	result := Result{Status: StatusInfeasible}
	hasDeadline := !opts.Deadline.IsZero()

	for !frontier.IsEmpty() {
		result.Iterations++

		dueForCheck := result.Iterations == 1 || result.Iterations%deadlineSampleEvery == 0
		if hasDeadline && dueForCheck && time.Now().After(opts.Deadline) {
			result.Status = StatusTimeout
			return result
		}

		node := frontier.Pop()
		if node.State.IsGoal() {
			result.Status = StatusSolved
			result.Assigned = node.State.Assigned
			result.Cost = node.Cost
			return result
		}

		result.Expanded++
		for _, succ := range node.State.successors(sel) {
			cost := node.Cost + succ.stepCost
			priority := cost
			if opts.Strategy == model.StrategyAStar {
				priority = cost + succ.state.Heuristic()
			}
			frontier.Push(&Node{State: succ.state, Cost: cost, Priority: priority})
		}
		if size := frontier.Size(); size > result.PeakFrontier {
			result.PeakFrontier = size
		}
	}

	return result
}
