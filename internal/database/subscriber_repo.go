package database

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/zey-2/tg-prog-foundation-bot/internal/domain/contract"
)

type subscriberRepository struct {
	db dbConn
}

func newSubscriberRepository(db dbConn) contract.SubscriberRepo {
	return &subscriberRepository{db: db}
}

func (r *subscriberRepository) Subscribe(chatID int64, firstName string) error {
	query := `
		INSERT INTO subscribers (chat_id, first_name, active, created_at)
		VALUES (?, ?, 1, ?)
		ON CONFLICT(chat_id) DO UPDATE SET
			first_name = excluded.first_name,
			active = 1
	`

	_, err := r.db.Exec(query, chatID, firstName, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("failed to subscribe chat %d: %w", chatID, err)
	}

	return nil
}

func (r *subscriberRepository) Unsubscribe(chatID int64) error {
	query := `UPDATE subscribers SET active = 0 WHERE chat_id = ?`

	_, err := r.db.Exec(query, chatID)
	if err != nil {
		return fmt.Errorf("failed to unsubscribe chat %d: %w", chatID, err)
	}

	return nil
}

func (r *subscriberRepository) IsActive(chatID int64) (bool, error) {
	query := `SELECT active FROM subscribers WHERE chat_id = ?`

	var active bool
	err := r.db.QueryRow(query, chatID).Scan(&active)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to check subscriber: %w", err)
	}

	return active, nil
}

func (r *subscriberRepository) ListActive() ([]int64, error) {
	query := `SELECT chat_id FROM subscribers WHERE active = 1 ORDER BY chat_id`

	rows, err := r.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to list subscribers: %w", err)
	}
	defer rows.Close()

	var chatIDs []int64
	for rows.Next() {
		var chatID int64
		if err := rows.Scan(&chatID); err != nil {
			return nil, fmt.Errorf("failed to scan subscriber: %w", err)
		}
		chatIDs = append(chatIDs, chatID)
	}

	return chatIDs, rows.Err()
}
