// Package driver orchestrates one solve request end to end: validate the
// input document into a model.Problem, pre-compute domains, run the
// configured search strategy (or all four in comparison mode), and
// assemble the output document (spec.md §4.8, §5). It is the single
// entry point both cmd/timetable-cli and internal/httpapi call into.
package driver

import (
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/eduplan/timetable-engine/internal/dto"
	"github.com/eduplan/timetable-engine/internal/model"
	"github.com/eduplan/timetable-engine/internal/precompute"
	"github.com/eduplan/timetable-engine/internal/search"
)

// wireStatus maps the engine's internal solved/infeasible/timeout status
// onto spec.md §6.2's "success"/"failure" wire enum.
func wireStatus(s search.Status) string {
	if s == search.StatusSolved {
		return "success"
	}
	return "failure"
}

var allStrategies = []model.Strategy{model.StrategyDFS, model.StrategyBFS, model.StrategyUCS, model.StrategyAStar}

// Driver holds the shared, stateless collaborators a solve run needs.
type Driver struct {
	logger  *zap.Logger
	metrics *Metrics
}

// New builds a Driver. A nil logger or metrics is replaced with a no-op.
func New(logger *zap.Logger, metrics *Metrics) *Driver {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Driver{logger: logger, metrics: metrics}
}

// Solve validates doc and runs the search strategy(ies) it names,
// returning the assembled solution document. The only errors it returns
// are the three hard validation kinds (spec.md §7); infeasibility and
// timeout are reported inside the returned document's meta.status.
func (d *Driver) Solve(doc *dto.InputDocument, timeout time.Duration) (*dto.SolutionDocument, error) {
	p, err := model.Validate(doc)
	if err != nil {
		return nil, err
	}

	runID := uuid.NewString()
	domains, diags := precompute.Compute(p)
	if len(diags) > 0 {
		reasons := make([]string, len(diags))
		for i, diag := range diags {
			reasons[i] = diag.EventID + ": " + diag.Reason
		}
		d.logger.Info("precompute found an empty event domain", zap.String("run_id", runID), zap.Int("count", len(diags)))
		return emptyDocument(p, runID, search.StatusInfeasible, reasons), nil
	}

	var deadline time.Time
	if timeout > 0 {
		deadline = time.Now().Add(timeout)
	}

	if p.Config.Strategy == model.StrategyAll {
		return d.solveAll(p, domains, deadline, runID), nil
	}
	return d.solveOne(p, domains, deadline, runID, p.Config.Strategy), nil
}

func (d *Driver) runOne(p *model.Problem, domains *precompute.Domains, deadline time.Time, strategy model.Strategy) (search.Result, time.Duration) {
	start := time.Now()
	res := search.Run(p, domains, search.Options{Strategy: strategy, UseMRV: p.Config.UseMRV, Deadline: deadline})
	elapsed := time.Since(start)
	d.metrics.Observe(string(strategy), res, elapsed)
	d.logger.Info("search run finished",
		zap.String("strategy", string(strategy)),
		zap.String("status", string(res.Status)),
		zap.Int("iterations", res.Iterations),
		zap.Int("expanded", res.Expanded),
		zap.Duration("elapsed", elapsed),
	)
	return res, elapsed
}

func (d *Driver) solveOne(p *model.Problem, domains *precompute.Domains, deadline time.Time, runID string, strategy model.Strategy) *dto.SolutionDocument {
	res, elapsed := d.runOne(p, domains, deadline, strategy)
	if res.Status != search.StatusSolved {
		return emptyDocument(p, runID, res.Status, nil)
	}
	doc := assembleDocument(p, runID, strategy, res)
	doc.Meta.WallTimeMS = elapsed.Milliseconds()
	return doc
}

func (d *Driver) solveAll(p *model.Problem, domains *precompute.Domains, deadline time.Time, runID string) *dto.SolutionDocument {
	comparison := make([]dto.StrategyRun, 0, len(allStrategies))
	var primary *dto.SolutionDocument
	anyTimeout := false

	for _, strategy := range allStrategies {
		res, elapsed := d.runOne(p, domains, deadline, strategy)
		comparison = append(comparison, dto.StrategyRun{
			Strategy:     string(strategy),
			Status:       wireStatus(res.Status),
			Iterations:   res.Iterations,
			Expanded:     res.Expanded,
			PeakFrontier: res.PeakFrontier,
			Cost:         res.Cost,
			WallTimeMS:   elapsed.Milliseconds(),
		})
		if res.Status == search.StatusTimeout {
			anyTimeout = true
		}
		if res.Status == search.StatusSolved && primary == nil {
			primary = assembleDocument(p, runID, strategy, res)
			primary.Meta.WallTimeMS = elapsed.Milliseconds()
		}
	}

	if primary == nil {
		status := search.StatusInfeasible
		if anyTimeout {
			status = search.StatusTimeout
		}
		primary = emptyDocument(p, runID, status, nil)
	}
	primary.Comparison = comparison
	return primary
}

func assembleDocument(p *model.Problem, runID string, strategy model.Strategy, res search.Result) *dto.SolutionDocument {
	assignments := make([]dto.Assignment, 0, len(res.Assigned))
	for i := range p.Events {
		ev := &p.Events[i]
		placement, ok := res.Assigned[ev.ID]
		if !ok {
			continue
		}
		ts, _ := p.Timeslot(placement.TimeslotID)
		room, _ := p.Room(placement.RoomID)
		module := p.ModuleOf(ev)

		groupIDs := make([]string, len(ev.GroupIDs))
		copy(groupIDs, ev.GroupIDs)

		assignments = append(assignments, dto.Assignment{
			EventID:            ev.ID,
			SessionID:          ev.SessionID,
			ModuleID:           ev.ModuleID,
			TeacherID:          ev.TeacherID,
			GroupIDs:           groupIDs,
			TimeslotID:         placement.TimeslotID,
			RoomID:             placement.RoomID,
			Day:                ts.Day,
			Start:              ts.Start,
			End:                ts.End,
			Weeks:              ev.Weeks.ToSortedList(),
			DurationMin:        ev.DurationMin,
			DurationHours:      float64(ev.DurationMin) / 60,
			ModuleHoursPerWeek: module.HoursPerWeek,
			Demand:             ev.Demand,
			MinRoomCapacity:    ev.MinRoomCapacity,
			RequiredCapacity:   precompute.RequiredCapacity(ev),
			RoomCapacity:       room.Capacity,
		})
	}

	return &dto.SolutionDocument{
		Meta: dto.SolutionMeta{
			WeekName:        p.Config.WeekName,
			WeeksTotal:      p.Config.WeeksTotal,
			Strategy:        string(strategy),
			UseMRV:          p.Config.UseMRV,
			Status:          wireStatus(res.Status),
			EventsTotal:     len(p.Events),
			EventsScheduled: len(assignments),
			Iterations:      res.Iterations,
			Expanded:        res.Expanded,
			PeakFrontier:    res.PeakFrontier,
			RunID:           runID,
		},
		Assignments: assignments,
	}
}

func emptyDocument(p *model.Problem, runID string, status search.Status, diagnostics []string) *dto.SolutionDocument {
	return &dto.SolutionDocument{
		Meta: dto.SolutionMeta{
			WeekName:        p.Config.WeekName,
			WeeksTotal:      p.Config.WeeksTotal,
			Strategy:        string(p.Config.Strategy),
			UseMRV:          p.Config.UseMRV,
			Status:          wireStatus(status),
			EventsTotal:     len(p.Events),
			EventsScheduled: 0,
			RunID:           runID,
			Diagnostics:     diagnostics,
		},
		Assignments: []dto.Assignment{},
	}
}
