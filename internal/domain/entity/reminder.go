package entity

import "time"

// ReminderKind distinguishes the two notifications planned per session.
type ReminderKind string

const (
	// KindPreSession fires 30 minutes before a session starts.
	KindPreSession ReminderKind = "pre_session"
	// KindSessionEnd fires when a session ends.
	KindSessionEnd ReminderKind = "session_end"
)

// Rank orders kinds that fire at the same instant for the same session:
// pre-session before session-end.
func (k ReminderKind) Rank() int {
	if k == KindPreSession {
		return 0
	}
	return 1
}

// ReminderEvent is a planned one-time notification derived from a
// session. It carries no delivery state; idempotency lives in the
// firing record.
type ReminderEvent struct {
	SessionID string
	Kind      ReminderKind
	FireAt    time.Time
}

// FiringRecord is durable evidence that a reminder event was already
// dispatched. Written exactly once per (session, kind) before delivery
// and never deleted within a run.
type FiringRecord struct {
	SessionID string
	Kind      ReminderKind
	FiredAt   time.Time
}
