package database

import (
	"github.com/zey-2/tg-prog-foundation-bot/internal/domain/contract"
)

// instance implements DataManager interface
type instance struct {
	subscriberRepo contract.SubscriberRepo
	firingRepo     contract.FiringRepo
}

// NewInstance creates a new database instance with all repositories
func NewInstance(db *DB) contract.DataManager {
	return &instance{
		subscriberRepo: newSubscriberRepository(db.conn),
		firingRepo:     newFiringRepository(db.conn),
	}
}

// Subscriber returns the subscriber registry repository
func (i *instance) Subscriber() contract.SubscriberRepo {
	return i.subscriberRepo
}

// Firing returns the firing record repository
func (i *instance) Firing() contract.FiringRepo {
	return i.firingRepo
}
