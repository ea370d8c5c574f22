package repository

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/wartapedia/portal-berita/app/models"
)

func TestNotificationOwnerScoping(t *testing.T) {
	db := newTestDB(t)
	repo := NewNotificationRepository(db)

	owner := seedUser(t, db, "sari", "sari@wartapedia.id", models.ROLE_PEMBACA)
	other := seedUser(t, db, "budi", "budi@wartapedia.id", models.ROLE_PEMBACA)

	require.NoError(t, models.CreateNotification(db, owner.ID, models.NotificationTypeLike, "Berita disukai", "Seseorang menyukai berita Anda"))

	list, err := repo.ListByUser(owner.ID, nil)
	require.NoError(t, err)
	require.Len(t, list, 1)
	id := list[0].ID

	// Another user's id never resolves someone else's notification.
	_, err = repo.GetByIDAndUser(id, other.ID)
	assert.True(t, errors.Is(err, gorm.ErrRecordNotFound))
	assert.True(t, errors.Is(repo.MarkRead(id, other.ID), gorm.ErrRecordNotFound))
	assert.True(t, errors.Is(repo.Delete(id, other.ID), gorm.ErrRecordNotFound))

	// The owner still sees the row untouched.
	got, err := repo.GetByIDAndUser(id, owner.ID)
	require.NoError(t, err)
	assert.False(t, got.IsRead)

	require.NoError(t, repo.MarkRead(id, owner.ID))
	unread, err := repo.CountUnread(owner.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(0), unread)

	require.NoError(t, repo.Delete(id, owner.ID))
	list, err = repo.ListByUser(owner.ID, nil)
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestNotificationReadFilter(t *testing.T) {
	db := newTestDB(t)
	repo := NewNotificationRepository(db)

	owner := seedUser(t, db, "sari", "sari@wartapedia.id", models.ROLE_PEMBACA)
	require.NoError(t, models.CreateNotification(db, owner.ID, models.NotificationTypeSystem, "Selamat datang", "Akun Anda aktif"))
	require.NoError(t, models.CreateNotification(db, owner.ID, models.NotificationTypeReport, "Laporan ditinjau", "Laporan Anda sedang ditinjau"))

	require.NoError(t, repo.MarkAllRead(owner.ID))

	read := true
	list, err := repo.ListByUser(owner.ID, &read)
	require.NoError(t, err)
	assert.Len(t, list, 2)

	unreadOnly := false
	list, err = repo.ListByUser(owner.ID, &unreadOnly)
	require.NoError(t, err)
	assert.Empty(t, list)
}
