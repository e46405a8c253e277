package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zey-2/tg-prog-foundation-bot/internal/domain/entity"
)

func sgt(t *testing.T) *time.Location {
	t.Helper()

	loc, err := time.LoadLocation("Asia/Singapore")
	require.NoError(t, err, "Failed to load test timezone")
	return loc
}

// twoSessionCourse builds the reference schedule: session A on Monday
// evening 2025-12-08 19:00-22:00 and session B on Saturday morning
// 2025-12-13 09:00-12:00, Singapore time.
func twoSessionCourse(loc *time.Location) *entity.Course {
	return &entity.Course{
		Title: "Programming Foundation",
		Sessions: []entity.Session{
			{
				ID:           "lecture-1",
				Lecture:      "Lecture 1",
				SessionLabel: "Session 1",
				StartAt:      time.Date(2025, 12, 8, 19, 0, 0, 0, loc),
				EndAt:        time.Date(2025, 12, 8, 22, 0, 0, 0, loc),
				ModeLocation: "On campus",
				Venue:        "Block 71",
			},
			{
				ID:           "lecture-2",
				Lecture:      "Lecture 2",
				SessionLabel: "Session 1",
				StartAt:      time.Date(2025, 12, 13, 9, 0, 0, 0, loc),
				EndAt:        time.Date(2025, 12, 13, 12, 0, 0, 0, loc),
				ModeLocation: "Zoom",
				ZoomLink:     "https://zoom.us/j/123",
			},
		},
	}
}

func TestPlan_TwoEventsPerSession(t *testing.T) {
	loc := sgt(t)
	course := twoSessionCourse(loc)

	now := time.Date(2025, 12, 1, 0, 0, 0, 0, loc)
	events := Plan(course, now)

	require.Len(t, events, 4)

	want := []entity.ReminderEvent{
		{SessionID: "lecture-1", Kind: entity.KindPreSession, FireAt: time.Date(2025, 12, 8, 18, 30, 0, 0, loc)},
		{SessionID: "lecture-1", Kind: entity.KindSessionEnd, FireAt: time.Date(2025, 12, 8, 22, 0, 0, 0, loc)},
		{SessionID: "lecture-2", Kind: entity.KindPreSession, FireAt: time.Date(2025, 12, 13, 8, 30, 0, 0, loc)},
		{SessionID: "lecture-2", Kind: entity.KindSessionEnd, FireAt: time.Date(2025, 12, 13, 12, 0, 0, 0, loc)},
	}
	for i, ev := range events {
		assert.Equal(t, want[i].SessionID, ev.SessionID, "event %d session", i)
		assert.Equal(t, want[i].Kind, ev.Kind, "event %d kind", i)
		assert.True(t, want[i].FireAt.Equal(ev.FireAt), "event %d fire_at: want %v, got %v", i, want[i].FireAt, ev.FireAt)
	}

	// Ascending by fire instant.
	for i := 1; i < len(events); i++ {
		assert.False(t, events[i].FireAt.Before(events[i-1].FireAt))
	}
}

func TestPlan_AlreadyDueEventStillPlanned(t *testing.T) {
	loc := sgt(t)
	course := twoSessionCourse(loc)

	// One minute after the pre-session instant of session A: the event
	// is already due but still within the grace window, so it is
	// planned first and will fire immediately.
	now := time.Date(2025, 12, 8, 18, 31, 0, 0, loc)
	events := Plan(course, now)

	require.Len(t, events, 4)
	assert.Equal(t, "lecture-1", events[0].SessionID)
	assert.Equal(t, entity.KindPreSession, events[0].Kind)
	assert.True(t, events[0].FireAt.Equal(time.Date(2025, 12, 8, 18, 30, 0, 0, loc)))
	assert.Equal(t, entity.KindSessionEnd, events[1].Kind)
}

func TestPlan_DropsEventsPastGrace(t *testing.T) {
	loc := sgt(t)
	course := twoSessionCourse(loc)

	// Mid-session A, well past its pre-session instant.
	now := time.Date(2025, 12, 8, 20, 0, 0, 0, loc)
	events := Plan(course, now)

	require.Len(t, events, 3)
	assert.Equal(t, "lecture-1", events[0].SessionID)
	assert.Equal(t, entity.KindSessionEnd, events[0].Kind)
}

func TestPlan_AllPast(t *testing.T) {
	loc := sgt(t)
	course := twoSessionCourse(loc)

	now := time.Date(2026, 1, 1, 0, 0, 0, 0, loc)
	assert.Empty(t, Plan(course, now))
}

func TestPlan_TieBrokenBySessionID(t *testing.T) {
	loc := sgt(t)

	// Session "a" ends exactly when session "b" starts minus 30 minutes,
	// so a's end event and b's pre event share a fire instant.
	at := time.Date(2025, 12, 8, 12, 0, 0, 0, loc)
	course := &entity.Course{
		Sessions: []entity.Session{
			{ID: "a", Lecture: "Lecture 1", StartAt: at.Add(-2 * time.Hour), EndAt: at},
			{ID: "b", Lecture: "Lecture 2", StartAt: at.Add(30 * time.Minute), EndAt: at.Add(3 * time.Hour)},
		},
	}

	events := Plan(course, at.Add(-3*time.Hour))
	require.Len(t, events, 4)

	assert.Equal(t, "a", events[0].SessionID)
	assert.Equal(t, entity.KindPreSession, events[0].Kind)
	// Tie at 12:00: session id "a" sorts before "b".
	assert.Equal(t, "a", events[1].SessionID)
	assert.Equal(t, entity.KindSessionEnd, events[1].Kind)
	assert.Equal(t, "b", events[2].SessionID)
	assert.Equal(t, entity.KindPreSession, events[2].Kind)
}
