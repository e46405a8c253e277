package telegram

import (
	"fmt"
	"strings"

	tele "gopkg.in/telebot.v3"

	"github.com/zey-2/tg-prog-foundation-bot/internal/domain/entity"
	"github.com/zey-2/tg-prog-foundation-bot/internal/domain/service"
)

// SessionLine renders one compact schedule row.
func SessionLine(s entity.Session) string {
	location := s.Venue
	if location == "" {
		location = s.ModeLocation
	}
	return fmt.Sprintf("- %s [%s] | %s to %s (%s) | %s",
		s.Lecture,
		s.SessionLabel,
		s.StartAt.Format("2006-01-02 15:04"),
		s.EndAt.Format("15:04"),
		s.StartAt.Location(),
		location,
	)
}

// SessionDetail renders the full description of one session, omitting
// link fields the session does not carry.
func SessionDetail(s entity.Session) string {
	lines := []string{
		fmt.Sprintf("%s - %s", s.Lecture, s.SessionLabel),
		fmt.Sprintf("Date & time: %s to %s (%s)",
			s.StartAt.Format("Monday, 2006-01-02 15:04"),
			s.EndAt.Format("15:04"),
			s.StartAt.Location(),
		),
		fmt.Sprintf("Mode/Location: %s", s.ModeLocation),
	}
	if s.Venue != "" {
		lines = append(lines, fmt.Sprintf("Venue: %s", s.Venue))
	}
	if s.ZoomLink != "" {
		lines = append(lines, fmt.Sprintf("Zoom: %s", s.ZoomLink))
	}
	if s.MeetingID != "" {
		lines = append(lines, fmt.Sprintf("Meeting ID: %s", s.MeetingID))
	}
	if s.Passcode != "" {
		lines = append(lines, fmt.Sprintf("Passcode: %s", s.Passcode))
	}
	if s.GoogleMap != "" {
		lines = append(lines, fmt.Sprintf("Map: %s", s.GoogleMap))
	}
	return strings.Join(lines, "\n")
}

// ReminderText renders the message body for a fired reminder event.
func ReminderText(s entity.Session, kind entity.ReminderKind) string {
	var heading string
	if kind == entity.KindPreSession {
		heading = fmt.Sprintf("%s starts in 30 minutes", s.Lecture)
	} else {
		heading = fmt.Sprintf("%s has ended", s.Lecture)
	}
	return heading + "\n\n" + SessionDetail(s)
}

// ScheduleText renders the full schedule grouped by date.
func ScheduleText(groups []service.DateGroup) string {
	lines := []string{"Upcoming sessions:"}
	for i, group := range groups {
		if i > 0 {
			lines = append(lines, "")
		}
		lines = append(lines, group.Date.Format("2006-01-02 (Monday)"))
		for _, s := range group.Sessions {
			lines = append(lines, SessionLine(s))
		}
	}
	return strings.Join(lines, "\n")
}

// linkKeyboard builds the inline keyboard of standing links for a
// session: map, carpark info for on-campus sessions, and the attendance
// links. Buttons are packed two per row. Returns nil when the session
// and course carry no links at all.
func linkKeyboard(course *entity.Course, s entity.Session) *tele.ReplyMarkup {
	markup := &tele.ReplyMarkup{}

	var buttons []tele.Btn
	addButton := func(text, url string) {
		if url == "" {
			return
		}
		buttons = append(buttons, markup.URL(text, url))
	}

	addButton("Map", s.GoogleMap)
	if !s.IsOnline() {
		addButton("Carpark Info", course.CarparkInfoURL)
	}
	addButton("Attendance QR", course.AttendanceQRURL)
	addButton("Attendance Check", course.AttendanceCheckURL)

	if len(buttons) == 0 {
		return nil
	}

	var rows []tele.Row
	for len(buttons) > 0 {
		n := 2
		if len(buttons) < n {
			n = len(buttons)
		}
		rows = append(rows, markup.Row(buttons[:n]...))
		buttons = buttons[n:]
	}
	markup.Inline(rows...)

	return markup
}
