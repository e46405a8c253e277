package contract

import (
	"time"

	"github.com/zey-2/tg-prog-foundation-bot/internal/domain/entity"
)

// Clock abstracts "now" in the configured course timezone. No component
// outside a Clock implementation reads system time directly, which keeps
// planning and dispatch deterministic under test.
type Clock interface {
	Now() time.Time
	Location() *time.Location
}

// Notifier delivers one reminder to one recipient. Failures are
// per-recipient and non-fatal; the dispatcher logs them and moves on.
type Notifier interface {
	SendReminder(chatID int64, course *entity.Course, session entity.Session, kind entity.ReminderKind) error
}
