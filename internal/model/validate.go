package model

import (
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/eduplan/timetable-engine/internal/dto"
	appErrors "github.com/eduplan/timetable-engine/pkg/errors"
)

const defaultWeeksTotal = 16

var structValidator = validator.New()

// Validate builds a Problem from an input document, enforcing every rule
// in spec.md §3 and §4.2: struct-level shape (required fields, enums),
// global id uniqueness per entity kind, reference resolution, and the
// remaining cross-entity invariants (allowed-slot duration, audience
// membership, week bounds). The first violation found is returned; hard
// failures are always *appErrors.Error values with Code one of
// INPUT_MALFORMED, REFERENCE_UNRESOLVED, or INVARIANT_VIOLATED.
func Validate(doc *dto.InputDocument) (*Problem, error) {
	if err := structValidator.Struct(doc); err != nil {
		return nil, appErrors.Clone(appErrors.ErrInputMalformed, err.Error())
	}

	weeksTotal := doc.Config.WeeksTotal
	if weeksTotal == 0 {
		weeksTotal = defaultWeeksTotal
	}
	if weeksTotal < 1 {
		return nil, appErrors.Clone(appErrors.ErrInvariantViolated, fmt.Sprintf("weeks_total must be >= 1, got %d", weeksTotal))
	}

	strategy := Strategy(doc.Config.Strategy)
	if strategy == "" {
		strategy = StrategyDFS
	}
	switch strategy {
	case StrategyDFS, StrategyBFS, StrategyUCS, StrategyAStar, StrategyAll:
	default:
		return nil, appErrors.Clone(appErrors.ErrInputMalformed, fmt.Sprintf("unknown strategy %q", doc.Config.Strategy))
	}
	useMRV := true
	if doc.Config.UseMRV != nil {
		useMRV = *doc.Config.UseMRV
	}
	weekName := doc.Config.WeekName
	if weekName == "" {
		weekName = "week"
	}

	p := &Problem{
		Config: Config{
			WeekName:   weekName,
			WeeksTotal: weeksTotal,
			Strategy:   strategy,
			UseMRV:     useMRV,
		},
	}

	if err := p.loadTimeslots(doc.Timeslots); err != nil {
		return nil, err
	}
	if err := p.loadRooms(doc.Rooms); err != nil {
		return nil, err
	}
	if err := p.loadTeachers(doc.Teachers); err != nil {
		return nil, err
	}
	if err := p.loadSessions(doc.Sessions); err != nil {
		return nil, err
	}

	p.buildIndices()
	return p, nil
}

func refErr(format string, args ...interface{}) error {
	return appErrors.Clone(appErrors.ErrReferenceUnresolved, fmt.Sprintf(format, args...))
}

func invErr(format string, args ...interface{}) error {
	return appErrors.Clone(appErrors.ErrInvariantViolated, fmt.Sprintf(format, args...))
}

func (p *Problem) loadTimeslots(in []dto.Timeslot) error {
	seen := make(map[string]bool, len(in))
	for _, t := range in {
		if seen[t.ID] {
			return invErr("duplicate timeslot id %q", t.ID)
		}
		seen[t.ID] = true
		p.Timeslots = append(p.Timeslots, Timeslot{
			ID:          t.ID,
			Day:         t.Day,
			Start:       t.Start,
			End:         t.End,
			DurationMin: t.DurationMin,
		})
	}
	return nil
}

func (p *Problem) timeslotExists(id string) bool {
	for i := range p.Timeslots {
		if p.Timeslots[i].ID == id {
			return true
		}
	}
	return false
}

func (p *Problem) timeslotDuration(id string) int {
	for i := range p.Timeslots {
		if p.Timeslots[i].ID == id {
			return p.Timeslots[i].DurationMin
		}
	}
	return 0
}

func (p *Problem) resolveAvailability(ids []string, entityKind, entityID string) (map[string]bool, error) {
	if ids == nil {
		return nil, nil
	}
	set := make(map[string]bool, len(ids))
	for _, id := range ids {
		if !p.timeslotExists(id) {
			return nil, refErr("%s %q: available timeslot %q does not resolve", entityKind, entityID, id)
		}
		set[id] = true
	}
	return set, nil
}

func (p *Problem) loadRooms(in []dto.Room) error {
	seen := make(map[string]bool, len(in))
	for _, r := range in {
		if seen[r.ID] {
			return invErr("duplicate room id %q", r.ID)
		}
		seen[r.ID] = true
		avail, err := p.resolveAvailability(r.Available, "room", r.ID)
		if err != nil {
			return err
		}
		p.Rooms = append(p.Rooms, Room{ID: r.ID, Capacity: r.Capacity, Available: avail})
	}
	return nil
}

func (p *Problem) loadTeachers(in []dto.Teacher) error {
	seen := make(map[string]bool, len(in))
	for _, t := range in {
		if seen[t.ID] {
			return invErr("duplicate teacher id %q", t.ID)
		}
		seen[t.ID] = true
		avail, err := p.resolveAvailability(t.Available, "teacher", t.ID)
		if err != nil {
			return err
		}
		p.Teachers = append(p.Teachers, Teacher{ID: t.ID, Available: avail, HasWhitelist: t.Available != nil})
	}
	return nil
}

func (p *Problem) teacherExists(id string) bool {
	for i := range p.Teachers {
		if p.Teachers[i].ID == id {
			return true
		}
	}
	return false
}

func (p *Problem) loadSessions(in []dto.Session) error {
	seenSession := make(map[string]bool)
	seenGroup := make(map[string]bool)
	seenModule := make(map[string]bool)
	seenEvent := make(map[string]bool)
	insertionOrder := 0

	for _, s := range in {
		if seenSession[s.ID] {
			return invErr("duplicate session id %q", s.ID)
		}
		seenSession[s.ID] = true

		session := Session{ID: s.ID}

		for _, g := range s.Groups {
			if seenGroup[g.ID] {
				return invErr("duplicate group id %q", g.ID)
			}
			seenGroup[g.ID] = true
			avail, err := p.resolveAvailability(g.Available, "group", g.ID)
			if err != nil {
				return err
			}
			p.Groups = append(p.Groups, Group{
				ID: g.ID, SessionID: s.ID, Size: g.Size,
				Available: avail, HasWhitelist: g.Available != nil,
			})
			session.GroupIDs = append(session.GroupIDs, g.ID)
		}
		if len(session.GroupIDs) == 0 {
			return invErr("session %q declares no groups", s.ID)
		}

		for _, m := range s.Modules {
			if seenModule[m.ID] {
				return invErr("duplicate module id %q", m.ID)
			}
			seenModule[m.ID] = true

			minCap := 0
			if m.MinRoomCapacity != nil {
				minCap = *m.MinRoomCapacity
			}
			defaultWeeks, err := resolveWeekSpec(m.Weeks, p.Config.WeeksTotal)
			if err != nil {
				return invErr("module %q: %v", m.ID, err)
			}

			module := Module{
				ID: m.ID, SessionID: s.ID, HoursPerWeek: m.HoursPerWeek,
				MinRoomCapacity: minCap, DefaultWeeks: defaultWeeks,
			}

			for _, e := range m.Events {
				if seenEvent[e.ID] {
					return invErr("duplicate event id %q", e.ID)
				}
				seenEvent[e.ID] = true

				if !p.teacherExists(e.TeacherID) {
					return refErr("event %q: teacher %q does not resolve", e.ID, e.TeacherID)
				}

				groupIDs, err := p.resolveAudience(e.Audience, session, e.ID)
				if err != nil {
					return err
				}
				demand := 0
				for _, gid := range groupIDs {
					demand += p.groupSize(gid)
				}

				var allowedSlots map[string]bool
				if len(e.AllowedSlots) > 0 {
					allowedSlots = make(map[string]bool, len(e.AllowedSlots))
					for _, slotID := range e.AllowedSlots {
						if !p.timeslotExists(slotID) {
							return refErr("event %q: allowed_slots timeslot %q does not resolve", e.ID, slotID)
						}
						dur := p.timeslotDuration(slotID)
						if dur != e.DurationMin {
							return invErr("event %q: allowed slot %q has duration_min %d, event requires %d", e.ID, slotID, dur, e.DurationMin)
						}
						allowedSlots[slotID] = true
					}
				}

				weeks := module.DefaultWeeks
				if e.Weeks != nil {
					weeks, err = resolveWeekSpec(e.Weeks, p.Config.WeeksTotal)
					if err != nil {
						return invErr("event %q: %v", e.ID, err)
					}
				}
				if weeks.IsEmpty() {
					return invErr("event %q: resolved week set is empty", e.ID)
				}

				p.Events = append(p.Events, Event{
					ID: e.ID, SessionID: s.ID, ModuleID: m.ID, TeacherID: e.TeacherID,
					DurationMin: e.DurationMin, AudienceType: AudienceType(e.Audience.Type),
					GroupIDs: groupIDs, Demand: demand, AllowedSlots: allowedSlots,
					Weeks: weeks, MinRoomCapacity: minCap, InsertionOrder: insertionOrder,
				})
				insertionOrder++
				module.EventIDs = append(module.EventIDs, e.ID)
			}
			if len(module.EventIDs) == 0 {
				return invErr("module %q declares no events", m.ID)
			}

			p.Modules = append(p.Modules, module)
			session.ModuleIDs = append(session.ModuleIDs, m.ID)
		}
		if len(session.ModuleIDs) == 0 {
			return invErr("session %q declares no modules", s.ID)
		}

		p.Sessions = append(p.Sessions, session)
	}
	return nil
}

// resolveAudience expands an event's audience into the concrete group ids
// it covers, in session-declared order, verifying every explicit id
// belongs to the event's own session.
func (p *Problem) resolveAudience(a dto.Audience, session Session, eventID string) ([]string, error) {
	switch AudienceType(a.Type) {
	case AudienceAllGroups:
		out := make([]string, len(session.GroupIDs))
		copy(out, session.GroupIDs)
		return out, nil
	case AudienceGroups:
		if len(a.GroupIDs) == 0 {
			return nil, invErr("event %q: audience type groups requires a non-empty group_ids", eventID)
		}
		inSession := make(map[string]bool, len(session.GroupIDs))
		for _, gid := range session.GroupIDs {
			inSession[gid] = true
		}
		seen := make(map[string]bool, len(a.GroupIDs))
		out := make([]string, 0, len(a.GroupIDs))
		for _, gid := range a.GroupIDs {
			if seen[gid] {
				continue
			}
			seen[gid] = true
			if !inSession[gid] {
				return nil, invErr("event %q: audience group %q does not belong to session %q", eventID, gid, session.ID)
			}
			out = append(out, gid)
		}
		return out, nil
	default:
		return nil, appErrors.Clone(appErrors.ErrInputMalformed, fmt.Sprintf("event %q: unknown audience type %q", eventID, a.Type))
	}
}

func (p *Problem) groupSize(id string) int {
	for i := range p.Groups {
		if p.Groups[i].ID == id {
			return p.Groups[i].Size
		}
	}
	return 0
}
