package model

// Problem is the fully resolved, immutable input to internal/precompute
// and internal/search. Entity lists preserve declaration order: it is
// this order that fixes Event.InsertionOrder and, through it, the MRV
// tie-break and the deterministic iteration of the search frontier.
type Problem struct {
	Config    Config
	Timeslots []Timeslot
	Rooms     []Room
	Teachers  []Teacher
	Groups    []Group
	Sessions  []Session
	Modules   []Module
	Events    []Event

	timeslotByID map[string]*Timeslot
	roomByID     map[string]*Room
	teacherByID  map[string]*Teacher
	groupByID    map[string]*Group
	sessionByID  map[string]*Session
	moduleByID   map[string]*Module
	eventByID    map[string]*Event

	eventsBySession map[string][]string
}

// buildIndices populates the lookup maps from the entity slices. It must
// be called exactly once, after the slices reach their final addresses
// (i.e. after all appends), since the maps store pointers into the
// slices' backing arrays.
func (p *Problem) buildIndices() {
	p.timeslotByID = make(map[string]*Timeslot, len(p.Timeslots))
	for i := range p.Timeslots {
		p.timeslotByID[p.Timeslots[i].ID] = &p.Timeslots[i]
	}
	p.roomByID = make(map[string]*Room, len(p.Rooms))
	for i := range p.Rooms {
		p.roomByID[p.Rooms[i].ID] = &p.Rooms[i]
	}
	p.teacherByID = make(map[string]*Teacher, len(p.Teachers))
	for i := range p.Teachers {
		p.teacherByID[p.Teachers[i].ID] = &p.Teachers[i]
	}
	p.groupByID = make(map[string]*Group, len(p.Groups))
	for i := range p.Groups {
		p.groupByID[p.Groups[i].ID] = &p.Groups[i]
	}
	p.sessionByID = make(map[string]*Session, len(p.Sessions))
	for i := range p.Sessions {
		p.sessionByID[p.Sessions[i].ID] = &p.Sessions[i]
	}
	p.moduleByID = make(map[string]*Module, len(p.Modules))
	for i := range p.Modules {
		p.moduleByID[p.Modules[i].ID] = &p.Modules[i]
	}
	p.eventByID = make(map[string]*Event, len(p.Events))
	p.eventsBySession = make(map[string][]string)
	for i := range p.Events {
		ev := &p.Events[i]
		p.eventByID[ev.ID] = ev
		p.eventsBySession[ev.SessionID] = append(p.eventsBySession[ev.SessionID], ev.ID)
	}
}

// Timeslot resolves a timeslot id. ok is false if the id is unknown.
func (p *Problem) Timeslot(id string) (*Timeslot, bool) {
	t, ok := p.timeslotByID[id]
	return t, ok
}

// Room resolves a room id.
func (p *Problem) Room(id string) (*Room, bool) {
	r, ok := p.roomByID[id]
	return r, ok
}

// Teacher resolves a teacher id.
func (p *Problem) Teacher(id string) (*Teacher, bool) {
	t, ok := p.teacherByID[id]
	return t, ok
}

// Group resolves a group id.
func (p *Problem) Group(id string) (*Group, bool) {
	g, ok := p.groupByID[id]
	return g, ok
}

// Session resolves a session id.
func (p *Problem) Session(id string) (*Session, bool) {
	s, ok := p.sessionByID[id]
	return s, ok
}

// Module resolves a module id.
func (p *Problem) Module(id string) (*Module, bool) {
	m, ok := p.moduleByID[id]
	return m, ok
}

// Event resolves an event id.
func (p *Problem) Event(id string) (*Event, bool) {
	e, ok := p.eventByID[id]
	return e, ok
}

// ModuleOf returns the module owning an event.
func (p *Problem) ModuleOf(ev *Event) *Module {
	return p.moduleByID[ev.ModuleID]
}

// EventsBySession returns the event ids belonging to a session, in
// declaration order.
func (p *Problem) EventsBySession(sessionID string) []string {
	return p.eventsBySession[sessionID]
}
