package entity

import (
	"strings"
	"time"
)

// Session is one timed occurrence of the course. StartAt and EndAt are
// absolute instants in the configured course timezone.
type Session struct {
	ID           string
	Lecture      string
	SessionLabel string
	StartAt      time.Time
	EndAt        time.Time
	ModeLocation string

	// Optional links. A location-only session carries no Zoom fields.
	Venue     string
	GoogleMap string
	ZoomLink  string
	MeetingID string
	Passcode  string
}

// DisplayDate returns the session's calendar date as YYYY-MM-DD in the
// session's own timezone.
func (s Session) DisplayDate() string {
	return s.StartAt.Format("2006-01-02")
}

// IsOnline reports whether the session is held remotely, either because
// it carries a Zoom link or because its mode says so.
func (s Session) IsOnline() bool {
	if s.ZoomLink != "" {
		return true
	}
	mode := strings.ToLower(s.ModeLocation)
	return strings.Contains(mode, "zoom") || strings.Contains(mode, "online")
}
