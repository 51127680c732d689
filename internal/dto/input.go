// Package dto defines the wire shapes of the input and solution documents
// described in spec.md §6. Parsing/serializing these documents is treated
// as a fixed external contract (spec.md §1): this package only declares
// the shapes and their struct-level validation tags; all cross-entity
// resolution happens once in internal/model.
package dto

import "encoding/json"

// Config is the solver's own configuration block, distinct from the
// operational config in pkg/config.
type Config struct {
	WeekName   string `json:"week_name,omitempty"`
	WeeksTotal int    `json:"weeks_total,omitempty"`
	Strategy   string `json:"strategy,omitempty" validate:"omitempty,oneof=dfs bfs ucs astar all"`
	UseMRV     *bool  `json:"use_mrv,omitempty"`
}

// Timeslot is a fixed period on a day of the week.
type Timeslot struct {
	ID          string `json:"id" validate:"required"`
	Day         string `json:"day" validate:"required,oneof=Mon Tue Wed Thu Fri Sat Sun"`
	Start       string `json:"start" validate:"required"`
	End         string `json:"end" validate:"required"`
	DurationMin int    `json:"duration_min" validate:"required,min=1"`
}

// Room has a seating capacity and an optional availability whitelist.
type Room struct {
	ID        string   `json:"id" validate:"required"`
	Capacity  int      `json:"capacity" validate:"min=0"`
	Available []string `json:"available,omitempty"`
}

// Teacher has an availability whitelist; an empty list means "never
// available" (see spec.md §9(a)).
type Teacher struct {
	ID        string   `json:"id" validate:"required"`
	Available []string `json:"available,omitempty"`
}

// Group is a cohort of students belonging to a session.
type Group struct {
	ID        string   `json:"id" validate:"required"`
	Size      int      `json:"size" validate:"min=0"`
	Available []string `json:"available,omitempty"`
}

// WeekSpec is the unparsed wire form of a week set. Values holds either a
// JSON array of ints (mode "list") or a JSON array of "a-b" strings (mode
// "ranges"); it is ignored for mode "all".
type WeekSpec struct {
	Mode   string          `json:"mode" validate:"required,oneof=all list ranges"`
	Values json.RawMessage `json:"values,omitempty"`
}

// Audience is a tagged variant: either the whole session or an explicit
// group list.
type Audience struct {
	Type     string   `json:"type" validate:"required,oneof=all_groups groups"`
	GroupIDs []string `json:"group_ids,omitempty"`
}

// Event is a single scheduled teaching unit.
type Event struct {
	ID           string    `json:"id" validate:"required"`
	TeacherID    string    `json:"teacher_id" validate:"required"`
	DurationMin  int       `json:"duration_min" validate:"required,min=1"`
	Audience     Audience  `json:"audience" validate:"required"`
	AllowedSlots []string  `json:"allowed_slots,omitempty"`
	Weeks        *WeekSpec `json:"weeks,omitempty"`
}

// Module owns a set of events and carries the default week-set and
// minimum room capacity they inherit.
type Module struct {
	ID              string    `json:"id" validate:"required"`
	HoursPerWeek    *int      `json:"hours_per_week,omitempty"`
	MinRoomCapacity *int      `json:"min_room_capacity,omitempty"`
	Weeks           *WeekSpec `json:"weeks,omitempty"`
	Events          []Event   `json:"events" validate:"required,min=1,dive"`
}

// Session owns an ordered list of groups and modules.
type Session struct {
	ID      string   `json:"id" validate:"required"`
	Groups  []Group  `json:"groups" validate:"required,min=1,dive"`
	Modules []Module `json:"modules" validate:"required,min=1,dive"`
}

// InputDocument is the top-level shape accepted by the solver (spec.md §6.1).
type InputDocument struct {
	Config    Config     `json:"config"`
	Timeslots []Timeslot `json:"timeslots" validate:"required,min=1,dive"`
	Rooms     []Room     `json:"rooms" validate:"required,min=1,dive"`
	Teachers  []Teacher  `json:"teachers" validate:"dive"`
	Sessions  []Session  `json:"sessions" validate:"required,min=1,dive"`
}
