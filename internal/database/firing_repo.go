package database

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/zey-2/tg-prog-foundation-bot/internal/domain/contract"
	"github.com/zey-2/tg-prog-foundation-bot/internal/domain/entity"
)

type firingRepository struct {
	db dbConn
}

func newFiringRepository(db dbConn) contract.FiringRepo {
	return &firingRepository{db: db}
}

// Record inserts the firing record for (sessionID, kind) if it does not
// exist yet. The INSERT OR IGNORE makes the check-and-claim atomic, so
// two concurrent triggers for the same event can never both win.
func (r *firingRepository) Record(sessionID string, kind entity.ReminderKind, firedAt time.Time) (bool, error) {
	query := `
		INSERT OR IGNORE INTO firing_records (session_id, kind, fired_at)
		VALUES (?, ?, ?)
	`

	result, err := r.db.Exec(query, sessionID, string(kind), firedAt.UTC())
	if err != nil {
		return false, fmt.Errorf("failed to record firing: %w", err)
	}

	inserted, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to get affected rows: %w", err)
	}

	return inserted > 0, nil
}

func (r *firingRepository) Exists(sessionID string, kind entity.ReminderKind) (bool, error) {
	query := `SELECT 1 FROM firing_records WHERE session_id = ? AND kind = ?`

	var one int
	err := r.db.QueryRow(query, sessionID, string(kind)).Scan(&one)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to check firing record: %w", err)
	}

	return true, nil
}

func (r *firingRepository) All() ([]entity.FiringRecord, error) {
	query := `SELECT session_id, kind, fired_at FROM firing_records ORDER BY fired_at`

	rows, err := r.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to list firing records: %w", err)
	}
	defer rows.Close()

	var records []entity.FiringRecord
	for rows.Next() {
		var rec entity.FiringRecord
		var kind string
		if err := rows.Scan(&rec.SessionID, &kind, &rec.FiredAt); err != nil {
			return nil, fmt.Errorf("failed to scan firing record: %w", err)
		}
		rec.Kind = entity.ReminderKind(kind)
		records = append(records, rec)
	}

	return records, rows.Err()
}
