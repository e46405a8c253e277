package service

import (
	"sort"
	"time"

	"github.com/zey-2/tg-prog-foundation-bot/internal/domain"
	"github.com/zey-2/tg-prog-foundation-bot/internal/domain/entity"
)

// Plan derives the full set of reminder events still worth waiting for:
// one pre-session and one session-end entry per session whose fire
// instant is at or after now, plus currently-due events whose instant
// passed within the due-grace window. Anything older is not planned;
// whether it was missed is the dispatcher's concern.
//
// The result is ordered by fire instant ascending, ties broken by
// session id and then kind with pre-session first. Plan is pure: it has
// no memory of prior firings and is re-invoked from scratch whenever the
// schedule store changes.
func Plan(course *entity.Course, now time.Time) []entity.ReminderEvent {
	var events []entity.ReminderEvent

	cutoff := now.Add(-domain.DueGrace)
	for _, s := range course.Sessions {
		candidates := []entity.ReminderEvent{
			{SessionID: s.ID, Kind: entity.KindPreSession, FireAt: s.StartAt.Add(-domain.ReminderLead)},
			{SessionID: s.ID, Kind: entity.KindSessionEnd, FireAt: s.EndAt},
		}
		for _, ev := range candidates {
			if !ev.FireAt.Before(cutoff) {
				events = append(events, ev)
			}
		}
	}

	sort.Slice(events, func(i, j int) bool {
		a, b := events[i], events[j]
		if !a.FireAt.Equal(b.FireAt) {
			return a.FireAt.Before(b.FireAt)
		}
		if a.SessionID != b.SessionID {
			return a.SessionID < b.SessionID
		}
		return a.Kind.Rank() < b.Kind.Rank()
	})

	return events
}
