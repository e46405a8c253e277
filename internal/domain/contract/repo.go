package contract

import (
	"time"

	"github.com/zey-2/tg-prog-foundation-bot/internal/domain/entity"
)

// DataManager aggregates all repository interfaces
type DataManager interface {
	Subscriber() SubscriberRepo
	Firing() FiringRepo
}

// SubscriberRepo defines the contract for the subscriber registry
type SubscriberRepo interface {
	Subscribe(chatID int64, firstName string) error
	Unsubscribe(chatID int64) error
	IsActive(chatID int64) (bool, error)
	ListActive() ([]int64, error)
}

// FiringRepo defines the contract for the durable firing record
type FiringRepo interface {
	// Record writes the firing record for (sessionID, kind) and reports
	// whether this call created it. A false result means the event was
	// already recorded and must not be delivered again.
	Record(sessionID string, kind entity.ReminderKind, firedAt time.Time) (bool, error)
	Exists(sessionID string, kind entity.ReminderKind) (bool, error)
	All() ([]entity.FiringRecord, error)
}
