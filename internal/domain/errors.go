package domain

import "fmt"

// DataError reports malformed or inconsistent course data. Building a
// schedule fails as a whole on the first violation; the process must not
// start with a partial store.
type DataError struct {
	SessionID string
	Reason    string
}

func (e *DataError) Error() string {
	if e.SessionID == "" {
		return fmt.Sprintf("invalid course data: %s", e.Reason)
	}
	return fmt.Sprintf("invalid course data: session %q: %s", e.SessionID, e.Reason)
}

// NewDataError creates a DataError for the given session id. The id may
// be empty when the violation is not tied to a single session.
func NewDataError(sessionID, format string, args ...any) *DataError {
	return &DataError{SessionID: sessionID, Reason: fmt.Sprintf(format, args...)}
}
