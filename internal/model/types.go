// Package model holds the resolved, immutable problem representation that
// internal/precompute, internal/constraint, internal/selector, and
// internal/search all operate over. A Problem is built once by Validate
// and never mutated afterward; every cross-reference (teacher, room,
// group, timeslot) is checked to resolve at build time. Entities still
// refer to each other by string id, and lookups go through the Problem's
// id-keyed maps.
package model

import "github.com/eduplan/timetable-engine/internal/weekset"

// AudienceType distinguishes an event's audience shape.
type AudienceType string

const (
	AudienceAllGroups AudienceType = "all_groups"
	AudienceGroups    AudienceType = "groups"
)

// Strategy names a search engine (spec.md §4.7).
type Strategy string

const (
	StrategyDFS   Strategy = "dfs"
	StrategyBFS   Strategy = "bfs"
	StrategyUCS   Strategy = "ucs"
	StrategyAStar Strategy = "astar"
	StrategyAll   Strategy = "all"
)

// Config is the resolved solver configuration (spec.md §6.1 config block).
type Config struct {
	WeekName   string
	WeeksTotal int
	Strategy   Strategy
	UseMRV     bool
}

// Timeslot is a fixed period on a day of the week.
type Timeslot struct {
	ID          string
	Day         string
	Start       string
	End         string
	DurationMin int
}

// Room has a capacity and a resolved availability set. Available is nil
// or empty when the room carries no whitelist or an empty one, meaning it
// is available at every timeslot.
type Room struct {
	ID        string
	Capacity  int
	Available map[string]bool
}

// IsAvailable reports whether the room may be used at the given timeslot.
func (r *Room) IsAvailable(timeslotID string) bool {
	if len(r.Available) == 0 {
		return true
	}
	return r.Available[timeslotID]
}

// Teacher carries a resolved availability set. An empty (non-nil, but
// zero-length) whitelist means the teacher is never available, matching
// the "available: []" edge case in spec.md §9(a).
type Teacher struct {
	ID        string
	Available map[string]bool
	HasWhitelist bool
}

// IsAvailable reports whether the teacher may teach at the given timeslot.
func (t *Teacher) IsAvailable(timeslotID string) bool {
	if !t.HasWhitelist {
		return true
	}
	return t.Available[timeslotID]
}

// Group is a cohort of students belonging to exactly one session.
type Group struct {
	ID           string
	SessionID    string
	Size         int
	Available    map[string]bool
	HasWhitelist bool
}

// IsAvailable reports whether the group may attend at the given timeslot.
func (g *Group) IsAvailable(timeslotID string) bool {
	if !g.HasWhitelist {
		return true
	}
	return g.Available[timeslotID]
}

// Module owns a set of events and the defaults (week-set, minimum room
// capacity) they inherit when they don't specify their own.
type Module struct {
	ID              string
	SessionID       string
	HoursPerWeek    *int
	MinRoomCapacity int
	DefaultWeeks    *weekset.Set
	EventIDs        []string
}

// Session owns an ordered list of groups and modules.
type Session struct {
	ID        string
	GroupIDs  []string
	ModuleIDs []string
}

// Event is a single teaching unit to be placed on (timeslot, room, weeks).
// All cross-references are pre-resolved; InsertionOrder fixes the
// deterministic ordering used as an MRV tie-break (spec.md §4.5).
type Event struct {
	ID              string
	SessionID       string
	ModuleID        string
	TeacherID       string
	DurationMin     int
	AudienceType    AudienceType
	GroupIDs        []string
	Demand          int
	AllowedSlots    map[string]bool // nil means "no whitelist, any slot of matching duration"
	Weeks           *weekset.Set
	MinRoomCapacity int
	InsertionOrder  int
}
