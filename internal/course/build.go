package course

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/zey-2/tg-prog-foundation-bot/internal/domain"
	"github.com/zey-2/tg-prog-foundation-bot/internal/domain/entity"
)

// build validates every raw session and assembles the immutable course.
// Validation is fail-fast: the first violation aborts the whole build so
// the process never runs on a partial schedule.
func build(raw rawCourse, loc *time.Location) (*entity.Course, error) {
	sessions := make([]entity.Session, 0, len(raw.Sessions))
	seen := make(map[string]bool, len(raw.Sessions))

	for _, rs := range raw.Sessions {
		s, err := buildSession(rs, loc)
		if err != nil {
			return nil, err
		}
		if seen[s.ID] {
			return nil, domain.NewDataError(s.ID, "duplicate session id")
		}
		seen[s.ID] = true
		sessions = append(sessions, s)
	}

	sort.Slice(sessions, func(i, j int) bool {
		if !sessions[i].StartAt.Equal(sessions[j].StartAt) {
			return sessions[i].StartAt.Before(sessions[j].StartAt)
		}
		return sessions[i].ID < sessions[j].ID
	})

	return &entity.Course{
		Title:              raw.Title,
		Sessions:           sessions,
		MaterialsURL:       raw.MaterialsURL,
		AttendanceQRURL:    raw.AttendanceQRURL,
		AttendanceCheckURL: raw.AttendanceCheckURL,
		CarparkInfoURL:     raw.CarparkInfoURL,
	}, nil
}

func buildSession(rs rawSession, loc *time.Location) (entity.Session, error) {
	id := sessionID(rs)

	startStr, endStr, err := startEndTimes(rs)
	if err != nil {
		return entity.Session{}, domain.NewDataError(id, "%v", err)
	}

	date, err := time.ParseInLocation(domain.DateFormat, rs.Date, loc)
	if err != nil {
		return entity.Session{}, domain.NewDataError(id, "invalid date %q", rs.Date)
	}

	startAt, err := combine(date, startStr, loc)
	if err != nil {
		return entity.Session{}, domain.NewDataError(id, "invalid start time %q", startStr)
	}
	endAt, err := combine(date, endStr, loc)
	if err != nil {
		return entity.Session{}, domain.NewDataError(id, "invalid end time %q", endStr)
	}

	if !startAt.Before(endAt) {
		return entity.Session{}, domain.NewDataError(id, "start time %s is not before end time %s", startStr, endStr)
	}

	lecture := rs.Lecture
	if lecture == "" {
		lecture = "Lecture"
	}
	label := rs.Session
	if label == "" {
		label = "Session"
	}

	return entity.Session{
		ID:           id,
		Lecture:      lecture,
		SessionLabel: label,
		StartAt:      startAt,
		EndAt:        endAt,
		ModeLocation: rs.ModeLocation,
		Venue:        rs.Venue,
		GoogleMap:    rs.GoogleMap,
		ZoomLink:     rs.ZoomLink,
		MeetingID:    rs.MeetingID,
		Passcode:     rs.Passcode,
	}, nil
}

// sessionID returns the declared id, or derives a stable one from the
// lecture, session label and date.
func sessionID(rs rawSession) string {
	if rs.ID != "" {
		return rs.ID
	}
	var pieces []string
	for _, part := range []string{rs.Lecture, rs.Session, rs.Date} {
		if part = strings.TrimSpace(part); part != "" {
			pieces = append(pieces, strings.ReplaceAll(part, " ", "_"))
		}
	}
	return strings.Join(pieces, "-")
}

// startEndTimes accepts either explicit start_time/end_time fields or a
// combined "HH:MM-HH:MM" range.
func startEndTimes(rs rawSession) (string, string, error) {
	if rs.StartTime != "" && rs.EndTime != "" {
		return rs.StartTime, rs.EndTime, nil
	}
	if rs.TimeRange != "" {
		parts := strings.Split(rs.TimeRange, "-")
		if len(parts) != 2 {
			return "", "", fmt.Errorf("invalid time range %q", rs.TimeRange)
		}
		return strings.TrimSpace(parts[0]), strings.TrimSpace(parts[1]), nil
	}
	return "", "", fmt.Errorf("missing start/end time fields")
}

func combine(date time.Time, clockTime string, loc *time.Location) (time.Time, error) {
	t, err := time.Parse(domain.TimeFormat, clockTime)
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(date.Year(), date.Month(), date.Day(), t.Hour(), t.Minute(), 0, 0, loc), nil
}
