package telegram

import (
	"fmt"
	"strings"

	tele "gopkg.in/telebot.v3"

	"github.com/zey-2/tg-prog-foundation-bot/internal/domain/entity"
	"github.com/zey-2/tg-prog-foundation-bot/internal/domain/service"
)

func (b *Bot) registerHandlers() {
	b.tb.Handle("/start", b.handleStart)
	b.tb.Handle("/stop", b.handleStop)
	b.tb.Handle("/help", b.handleHelp)
	b.tb.Handle("/next", b.handleNext)
	b.tb.Handle("/schedule", b.handleSchedule)
	b.tb.Handle("/info", b.handleInfo)
	b.tb.Handle("/materials", b.handleMaterials)
}

func (b *Bot) handleStart(c tele.Context) error {
	sender := c.Sender()
	chat := c.Chat()
	if sender == nil || chat == nil {
		return nil
	}

	if err := b.dm.Subscriber().Subscribe(chat.ID, sender.FirstName); err != nil {
		b.log.WithError(err).WithField("chat_id", chat.ID).Error("failed to subscribe chat")
		return c.Send("Something went wrong, please try /start again.")
	}

	course := b.course.Load()
	name := sender.FirstName
	if name == "" {
		name = "there"
	}
	lines := []string{
		fmt.Sprintf("Hi %s! You are subscribed to %s.", name, course.Title),
		"You'll get reminders 30 minutes before each session and when it ends.",
		"Commands: /next, /schedule, /info <lecture|date>, /stop to unsubscribe.",
		fmt.Sprintf("All times are shown in %s.", b.clk.Location()),
	}
	return c.Send(strings.Join(lines, "\n"))
}

func (b *Bot) handleStop(c tele.Context) error {
	chat := c.Chat()
	if chat == nil {
		return nil
	}

	if err := b.dm.Subscriber().Unsubscribe(chat.ID); err != nil {
		b.log.WithError(err).WithField("chat_id", chat.ID).Error("failed to unsubscribe chat")
		return c.Send("Something went wrong, please try /stop again.")
	}

	return c.Send("You have been unsubscribed from reminders.")
}

func (b *Bot) handleHelp(c tele.Context) error {
	course := b.course.Load()
	lines := []string{
		fmt.Sprintf("This bot shares reminders for %s.", course.Title),
		"Commands:",
		"/start - subscribe to reminders",
		"/stop - unsubscribe",
		"/next - show the next upcoming session",
		"/schedule - list all sessions",
		"/materials - get course materials link",
		"/info <lecture|date> - session details (e.g., 'Lecture 3' or '2025-12-13')",
		fmt.Sprintf("Times are shown in %s.", b.clk.Location()),
	}
	return c.Send(strings.Join(lines, "\n"))
}

func (b *Bot) handleNext(c tele.Context) error {
	course := b.course.Load()

	next := service.NextSession(course, b.clk.Now())
	if next == nil {
		return c.Send("No upcoming sessions found.")
	}

	return b.sendWithLinks(c, SessionDetail(*next), course, *next)
}

func (b *Bot) handleSchedule(c tele.Context) error {
	course := b.course.Load()
	return c.Send(ScheduleText(service.GroupByDate(course)))
}

func (b *Bot) handleInfo(c tele.Context) error {
	query := strings.TrimSpace(c.Message().Payload)
	if query == "" {
		return c.Send("Which lecture or date do you want details for?\n" +
			"Example: /info Lecture 3 or /info 2025-12-13")
	}

	course := b.course.Load()
	matches := service.Find(course, query)
	if len(matches) == 0 {
		return c.Send("No matching sessions found. Try another lecture or date.")
	}

	details := make([]string, 0, len(matches))
	for _, s := range matches {
		details = append(details, SessionDetail(s))
	}

	return b.sendWithLinks(c, strings.Join(details, "\n\n"), course, matches[0])
}

func (b *Bot) handleMaterials(c tele.Context) error {
	course := b.course.Load()
	if course.MaterialsURL == "" {
		return c.Send("No materials link is configured.")
	}
	return c.Send(fmt.Sprintf("Course materials: %s", course.MaterialsURL))
}

func (b *Bot) sendWithLinks(c tele.Context, text string, course *entity.Course, s entity.Session) error {
	if markup := linkKeyboard(course, s); markup != nil {
		return c.Send(text, markup)
	}
	return c.Send(text)
}
