package telemetry

// Session tracks one stretch of time a creature spent selected.
type Session struct {
	Creature    string  `csv:"creature"`
	StartTick   int32   `csv:"start_tick"`
	EndTick     int32   `csv:"end_tick"`
	DurationSec float64 `csv:"duration_sec"`

	Distance  float64 `csv:"distance"` // total head travel
	Steps     int     `csv:"steps"`
	IdleTicks int     `csv:"idle_ticks"`
	PeakBend  float64 `csv:"peak_bend"`
}

// SessionTracker manages the session of the active creature and keeps a
// running total per creature.
type SessionTracker struct {
	current *Session
	totals  map[string]*Session
}

// NewSessionTracker creates a new session tracker.
func NewSessionTracker() *SessionTracker {
	return &SessionTracker{
		totals: make(map[string]*Session),
	}
}

// Begin starts a session for creature. Any open session must be ended first.
func (st *SessionTracker) Begin(creature string, tick int32) {
	st.current = &Session{Creature: creature, StartTick: tick, EndTick: tick}
}

// Active returns the open session, or nil.
func (st *SessionTracker) Active() *Session {
	return st.current
}

// RecordFrame adds a frame's travel and bend to the open session.
func (st *SessionTracker) RecordFrame(tick int32, s FrameSample) {
	if st.current == nil {
		return
	}
	st.current.EndTick = tick
	st.current.Distance += s.HeadTravel
	if s.BendRatio > st.current.PeakBend {
		st.current.PeakBend = s.BendRatio
	}
}

// Record counts step and idle events against the open session.
func (st *SessionTracker) Record(e Event) {
	if st.current == nil {
		return
	}
	switch e.Type {
	case EventStep:
		st.current.Steps++
	case EventIdle:
		st.current.IdleTicks++
	}
}

// End closes the open session, folds it into the creature's totals and
// returns it. ok is false when no session was open.
func (st *SessionTracker) End(tick int32, dt float32) (s Session, ok bool) {
	if st.current == nil {
		return Session{}, false
	}
	s = *st.current
	st.current = nil
	s.EndTick = tick
	s.DurationSec = float64(tick-s.StartTick) * float64(dt)

	t := st.totals[s.Creature]
	if t == nil {
		t = &Session{Creature: s.Creature, StartTick: s.StartTick}
		st.totals[s.Creature] = t
	}
	t.EndTick = s.EndTick
	t.DurationSec += s.DurationSec
	t.Distance += s.Distance
	t.Steps += s.Steps
	t.IdleTicks += s.IdleTicks
	if s.PeakBend > t.PeakBend {
		t.PeakBend = s.PeakBend
	}
	return s, true
}

// Total returns the accumulated sessions for creature, or nil if it was
// never selected.
func (st *SessionTracker) Total(creature string) *Session {
	return st.totals[creature]
}
