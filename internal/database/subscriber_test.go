package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubscriberRepository_Subscribe(t *testing.T) {
	db := SetupTestDB(t)
	defer CleanupTestDB(t, db)

	repo := newSubscriberRepository(db.conn)

	err := repo.Subscribe(100, "Alice")
	require.NoError(t, err, "Failed to subscribe")

	active, err := repo.IsActive(100)
	require.NoError(t, err)
	assert.True(t, active)
}

func TestSubscriberRepository_SubscribeIsUpsert(t *testing.T) {
	db := SetupTestDB(t)
	defer CleanupTestDB(t, db)

	repo := newSubscriberRepository(db.conn)

	require.NoError(t, repo.Subscribe(100, "Alice"))
	require.NoError(t, repo.Subscribe(100, "Alice B."))

	chatIDs, err := repo.ListActive()
	require.NoError(t, err)
	assert.Equal(t, []int64{100}, chatIDs, "re-subscribing must not duplicate the row")
}

func TestSubscriberRepository_Unsubscribe(t *testing.T) {
	db := SetupTestDB(t)
	defer CleanupTestDB(t, db)

	repo := newSubscriberRepository(db.conn)

	require.NoError(t, repo.Subscribe(100, "Alice"))
	require.NoError(t, repo.Unsubscribe(100))

	active, err := repo.IsActive(100)
	require.NoError(t, err)
	assert.False(t, active)

	chatIDs, err := repo.ListActive()
	require.NoError(t, err)
	assert.Empty(t, chatIDs)

	// Subscribing again reactivates the same row.
	require.NoError(t, repo.Subscribe(100, "Alice"))
	active, err = repo.IsActive(100)
	require.NoError(t, err)
	assert.True(t, active)
}

func TestSubscriberRepository_UnsubscribeUnknownChat(t *testing.T) {
	db := SetupTestDB(t)
	defer CleanupTestDB(t, db)

	repo := newSubscriberRepository(db.conn)

	// Unsubscribing a chat that never subscribed is not an error.
	assert.NoError(t, repo.Unsubscribe(999))

	active, err := repo.IsActive(999)
	require.NoError(t, err)
	assert.False(t, active)
}

func TestSubscriberRepository_ListActive(t *testing.T) {
	db := SetupTestDB(t)
	defer CleanupTestDB(t, db)

	repo := newSubscriberRepository(db.conn)

	require.NoError(t, repo.Subscribe(300, "Carol"))
	require.NoError(t, repo.Subscribe(100, "Alice"))
	require.NoError(t, repo.Subscribe(200, "Bob"))
	require.NoError(t, repo.Unsubscribe(200))

	chatIDs, err := repo.ListActive()
	require.NoError(t, err)
	assert.Equal(t, []int64{100, 300}, chatIDs)
}
