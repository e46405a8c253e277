package entity

// Course is the schedule store: the immutable snapshot of all sessions
// and course-level metadata for one active run. It is built once by the
// loader and replaced wholesale on reload, never mutated in place.
type Course struct {
	Title string

	// Sessions is ordered by StartAt ascending, ties broken by ID.
	Sessions []Session

	MaterialsURL       string
	AttendanceQRURL    string
	AttendanceCheckURL string
	CarparkInfoURL     string
}

// SessionByID returns the session with the given id.
func (c *Course) SessionByID(id string) (Session, bool) {
	for _, s := range c.Sessions {
		if s.ID == id {
			return s, true
		}
	}
	return Session{}, false
}
