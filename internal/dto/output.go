package dto

// SolutionMeta carries the run-level outcome (spec.md §6.2). Status is
// "success" or "failure" — infeasibility and timeout both report
// "failure" here, never as a request error; Diagnostics carries detail
// for the infeasible case.
type SolutionMeta struct {
	WeekName        string `json:"week_name"`
	WeeksTotal      int    `json:"weeks_total"`
	Strategy        string `json:"strategy"`
	UseMRV          bool   `json:"use_mrv"`
	Status          string `json:"status"`
	EventsTotal     int    `json:"events_total"`
	EventsScheduled int    `json:"events_scheduled"`
	Iterations      int    `json:"iterations"`
	Expanded        int    `json:"expanded"`
	PeakFrontier    int    `json:"peak_frontier"`
	WallTimeMS      int64  `json:"wall_time_ms"`
	RunID           string `json:"run_id"`
	Fingerprint     string `json:"fingerprint,omitempty"`
	Cached          bool   `json:"cached,omitempty"`
	Diagnostics     []string `json:"diagnostics,omitempty"`
}

// Assignment is one scheduled event placement.
type Assignment struct {
	EventID            string  `json:"event_id"`
	SessionID          string  `json:"session_id"`
	ModuleID           string  `json:"module_id"`
	TeacherID          string  `json:"teacher_id"`
	GroupIDs           []string `json:"group_ids"`
	TimeslotID         string  `json:"timeslot_id"`
	RoomID             string  `json:"room_id"`
	Day                string  `json:"day"`
	Start              string  `json:"start"`
	End                string  `json:"end"`
	Weeks              []int   `json:"weeks"`
	DurationMin        int     `json:"duration_min"`
	DurationHours      float64 `json:"duration_hours"`
	ModuleHoursPerWeek *int    `json:"module_hours_per_week"`
	Demand             int     `json:"demand"`
	MinRoomCapacity    int     `json:"min_room_capacity"`
	RequiredCapacity   int     `json:"required_capacity"`
	RoomCapacity       int     `json:"room_capacity"`
}

// StrategyRun records one strategy's outcome when config.strategy is "all"
// (spec.md §5, comparison mode).
type StrategyRun struct {
	Strategy     string `json:"strategy"`
	Status       string `json:"status"`
	Iterations   int    `json:"iterations"`
	Expanded     int    `json:"expanded"`
	PeakFrontier int    `json:"peak_frontier"`
	Cost         int    `json:"cost"`
	WallTimeMS   int64  `json:"wall_time_ms"`
}

// SolutionDocument is the top-level output shape (spec.md §6.2).
type SolutionDocument struct {
	Meta        SolutionMeta   `json:"meta"`
	Assignments []Assignment   `json:"assignments"`
	Comparison  []StrategyRun  `json:"comparison,omitempty"`
}
