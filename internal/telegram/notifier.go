package telegram

import (
	tele "gopkg.in/telebot.v3"

	"github.com/zey-2/tg-prog-foundation-bot/internal/domain/entity"
)

// notifier delivers reminder messages through the Telegram API. It is
// the dispatcher's only view of the transport.
type notifier struct {
	tb *tele.Bot
}

func (n *notifier) SendReminder(chatID int64, course *entity.Course, session entity.Session, kind entity.ReminderKind) error {
	text := ReminderText(session, kind)

	if markup := linkKeyboard(course, session); markup != nil {
		_, err := n.tb.Send(tele.ChatID(chatID), text, markup)
		return err
	}

	_, err := n.tb.Send(tele.ChatID(chatID), text)
	return err
}
