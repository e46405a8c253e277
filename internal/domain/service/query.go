package service

import (
	"strings"
	"time"

	"github.com/zey-2/tg-prog-foundation-bot/internal/domain"
	"github.com/zey-2/tg-prog-foundation-bot/internal/domain/entity"
)

// DateGroup is one calendar date with its sessions in start order.
type DateGroup struct {
	Date     time.Time
	Sessions []entity.Session
}

// NextSession returns the first session that has not ended yet, or nil
// when the run is over. A session in progress still counts as next until
// it ends.
func NextSession(course *entity.Course, now time.Time) *entity.Session {
	for _, s := range course.Sessions {
		if s.EndAt.After(now) {
			next := s
			return &next
		}
	}
	return nil
}

// GroupByDate buckets every session under its calendar date, dates
// ascending and sessions within a date by start time. The course's own
// session ordering already guarantees both.
func GroupByDate(course *entity.Course) []DateGroup {
	var groups []DateGroup

	for _, s := range course.Sessions {
		y, m, d := s.StartAt.Date()
		date := time.Date(y, m, d, 0, 0, 0, 0, s.StartAt.Location())

		if n := len(groups); n > 0 && groups[n-1].Date.Equal(date) {
			groups[n-1].Sessions = append(groups[n-1].Sessions, s)
			continue
		}
		groups = append(groups, DateGroup{Date: date, Sessions: []entity.Session{s}})
	}

	return groups
}

// Find resolves an info query against the schedule. A query that parses
// as a date returns every session on that date. Anything else matches
// lecture labels case-insensitively, preferring exact matches and
// falling back to substring matches on the lecture or session label.
// A miss is an empty result, not an error.
func Find(course *entity.Course, query string) []entity.Session {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil
	}

	if _, err := time.Parse(domain.DateFormat, query); err == nil {
		var matches []entity.Session
		for _, s := range course.Sessions {
			if s.DisplayDate() == query {
				matches = append(matches, s)
			}
		}
		return matches
	}

	var exact, partial []entity.Session
	q := strings.ToLower(query)
	for _, s := range course.Sessions {
		lecture := strings.ToLower(s.Lecture)
		if lecture == q {
			exact = append(exact, s)
			continue
		}
		if strings.Contains(lecture, q) || strings.Contains(strings.ToLower(s.SessionLabel), q) {
			partial = append(partial, s)
		}
	}

	if len(exact) > 0 {
		return exact
	}
	return partial
}
