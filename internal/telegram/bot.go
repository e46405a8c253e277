// Package telegram is the inbound and outbound Telegram surface of the
// bot: command handlers over the query resolver and subscriber
// registry, and the notifier the dispatcher delivers through.
package telegram

import (
	"fmt"
	"sync/atomic"
	"time"

	"github.com/sirupsen/logrus"
	tele "gopkg.in/telebot.v3"

	"github.com/zey-2/tg-prog-foundation-bot/internal/domain/contract"
	"github.com/zey-2/tg-prog-foundation-bot/internal/domain/entity"
)

type Bot struct {
	tb     *tele.Bot
	dm     contract.DataManager
	clk    contract.Clock
	course atomic.Pointer[entity.Course]
	log    *logrus.Entry
}

func New(token string, course *entity.Course, dm contract.DataManager, clk contract.Clock) (*Bot, error) {
	tb, err := tele.NewBot(tele.Settings{
		Token:  token,
		Poller: &tele.LongPoller{Timeout: 10 * time.Second},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create telegram bot: %w", err)
	}

	b := &Bot{
		tb:  tb,
		dm:  dm,
		clk: clk,
		log: logrus.WithField("component", "telegram"),
	}
	b.course.Store(course)
	b.registerHandlers()

	return b, nil
}

// Notifier returns the delivery side of the transport for the
// dispatcher.
func (b *Bot) Notifier() contract.Notifier {
	return &notifier{tb: b.tb}
}

// SetCourse swaps in a freshly loaded schedule store; queries pick it
// up on their next read.
func (b *Bot) SetCourse(course *entity.Course) {
	b.course.Store(course)
}

// Start registers the command menu and begins long polling. Blocks
// until Stop is called.
func (b *Bot) Start() {
	if err := b.tb.SetCommands(botCommands); err != nil {
		b.log.WithError(err).Warn("failed to set bot command menu")
	}
	b.log.Info("telegram bot starting")
	b.tb.Start()
}

func (b *Bot) Stop() {
	b.tb.Stop()
}

var botCommands = []tele.Command{
	{Text: "materials", Description: "Get course materials link"},
	{Text: "next", Description: "Show the next upcoming session"},
	{Text: "schedule", Description: "List all sessions"},
	{Text: "info", Description: "Look up a lecture or date"},
	{Text: "help", Description: "Show help and available commands"},
	{Text: "start", Description: "Subscribe to reminders"},
	{Text: "stop", Description: "Unsubscribe from reminders"},
}
