package telegram

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zey-2/tg-prog-foundation-bot/internal/domain/entity"
	"github.com/zey-2/tg-prog-foundation-bot/internal/domain/service"
)

func testSessions(t *testing.T) (entity.Session, entity.Session) {
	t.Helper()

	loc, err := time.LoadLocation("Asia/Singapore")
	require.NoError(t, err)

	campus := entity.Session{
		ID:           "lecture-1",
		Lecture:      "Lecture 1",
		SessionLabel: "Session 1",
		StartAt:      time.Date(2025, 12, 8, 19, 0, 0, 0, loc),
		EndAt:        time.Date(2025, 12, 8, 22, 0, 0, 0, loc),
		ModeLocation: "On campus",
		Venue:        "Block 71",
		GoogleMap:    "https://maps.example.com/block71",
	}
	online := entity.Session{
		ID:           "lecture-2",
		Lecture:      "Lecture 2",
		SessionLabel: "Session 1",
		StartAt:      time.Date(2025, 12, 13, 9, 0, 0, 0, loc),
		EndAt:        time.Date(2025, 12, 13, 12, 0, 0, 0, loc),
		ModeLocation: "Zoom",
		ZoomLink:     "https://zoom.us/j/123",
		MeetingID:    "123 456 789",
		Passcode:     "secret",
	}
	return campus, online
}

func TestSessionLine(t *testing.T) {
	campus, online := testSessions(t)

	line := SessionLine(campus)
	assert.Equal(t, "- Lecture 1 [Session 1] | 2025-12-08 19:00 to 22:00 (Asia/Singapore) | Block 71", line)

	// Without a venue the mode/location is shown instead.
	line = SessionLine(online)
	assert.Contains(t, line, "| Zoom")
}

func TestSessionDetail(t *testing.T) {
	campus, online := testSessions(t)

	detail := SessionDetail(campus)
	assert.Contains(t, detail, "Lecture 1 - Session 1")
	assert.Contains(t, detail, "Date & time: Monday, 2025-12-08 19:00 to 22:00 (Asia/Singapore)")
	assert.Contains(t, detail, "Venue: Block 71")
	assert.Contains(t, detail, "Map: https://maps.example.com/block71")
	assert.NotContains(t, detail, "Zoom:")
	assert.NotContains(t, detail, "Passcode:")

	detail = SessionDetail(online)
	assert.Contains(t, detail, "Zoom: https://zoom.us/j/123")
	assert.Contains(t, detail, "Meeting ID: 123 456 789")
	assert.Contains(t, detail, "Passcode: secret")
	assert.NotContains(t, detail, "Venue:")
}

func TestReminderText(t *testing.T) {
	campus, _ := testSessions(t)

	text := ReminderText(campus, entity.KindPreSession)
	assert.True(t, strings.HasPrefix(text, "Lecture 1 starts in 30 minutes\n\n"))

	text = ReminderText(campus, entity.KindSessionEnd)
	assert.True(t, strings.HasPrefix(text, "Lecture 1 has ended\n\n"))
}

func TestScheduleText(t *testing.T) {
	campus, online := testSessions(t)
	course := &entity.Course{Sessions: []entity.Session{campus, online}}

	text := ScheduleText(service.GroupByDate(course))
	lines := strings.Split(text, "\n")

	require.GreaterOrEqual(t, len(lines), 5)
	assert.Equal(t, "Upcoming sessions:", lines[0])
	assert.Equal(t, "2025-12-08 (Monday)", lines[1])
	assert.Contains(t, lines[2], "Lecture 1")
	assert.Equal(t, "", lines[3], "dates are separated by a blank line")
	assert.Equal(t, "2025-12-13 (Saturday)", lines[4])
}

func TestLinkKeyboard(t *testing.T) {
	campus, online := testSessions(t)
	course := &entity.Course{
		CarparkInfoURL:     "https://example.com/carpark",
		AttendanceQRURL:    "https://example.com/qr",
		AttendanceCheckURL: "https://example.com/check",
	}

	t.Run("campus session carries map and carpark links", func(t *testing.T) {
		markup := linkKeyboard(course, campus)
		require.NotNil(t, markup)

		var texts []string
		for _, row := range markup.InlineKeyboard {
			for _, btn := range row {
				texts = append(texts, btn.Text)
			}
		}
		assert.Equal(t, []string{"Map", "Carpark Info", "Attendance QR", "Attendance Check"}, texts)

		// Two buttons per row.
		require.Len(t, markup.InlineKeyboard, 2)
		assert.Len(t, markup.InlineKeyboard[0], 2)
		assert.Len(t, markup.InlineKeyboard[1], 2)
	})

	t.Run("online session skips carpark info", func(t *testing.T) {
		markup := linkKeyboard(course, online)
		require.NotNil(t, markup)

		var texts []string
		for _, row := range markup.InlineKeyboard {
			for _, btn := range row {
				texts = append(texts, btn.Text)
			}
		}
		assert.NotContains(t, texts, "Carpark Info")
	})

	t.Run("no links means no keyboard", func(t *testing.T) {
		bare := entity.Session{ID: "bare", Lecture: "Lecture 3", ModeLocation: "On campus"}
		assert.Nil(t, linkKeyboard(&entity.Course{}, bare))
	})
}
