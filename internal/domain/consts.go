package domain

import "time"

// DefaultTimezone is the IANA zone used when TIMEZONE is not configured.
const DefaultTimezone = "Asia/Singapore"

// ReminderLead is how long before a session start the pre-session
// reminder fires.
const ReminderLead = 30 * time.Minute

// DueGrace is how far past its fire instant an unfired event is still
// dispatched immediately instead of being dropped as missed. Covers
// planning passes that land moments after a fire instant; anything
// older is treated as a gap from downtime.
const DueGrace = 5 * time.Minute

// DateFormat is the calendar-date layout used in course data, lookup
// queries and user-facing output.
const DateFormat = "2006-01-02"

// TimeFormat is the wall-clock layout used for session start and end
// times in course data.
const TimeFormat = "15:04"
