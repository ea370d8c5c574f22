package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func openReactionDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&User{},
		&Kategori{},
		&Berita{},
		&Disukai{},
		&TidakDisukai{},
	))

	return db
}

func TestSetDisukaiUpsert(t *testing.T) {
	db := openReactionDB(t)

	like, created, err := SetDisukai(db, 1, 1, true)
	require.NoError(t, err)
	assert.True(t, created)
	require.NotNil(t, like.Suka)
	assert.True(t, *like.Suka)

	// Second write for the same pair flips the value in place.
	again, created, err := SetDisukai(db, 1, 1, false)
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, like.ID, again.ID)
	require.NotNil(t, again.Suka)
	assert.False(t, *again.Suka)

	// Repeating the same value is a no-op update, not an error.
	_, created, err = SetDisukai(db, 1, 1, false)
	require.NoError(t, err)
	assert.False(t, created)

	var count int64
	require.NoError(t, db.Model(&Disukai{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestSetDisukaiAfterRemoval(t *testing.T) {
	db := openReactionDB(t)

	like, created, err := SetDisukai(db, 1, 1, true)
	require.NoError(t, err)
	require.True(t, created)

	require.NoError(t, db.Delete(&Disukai{}, like.ID).Error)

	// The removed row must not linger in the unique index; liking the
	// same berita again has to succeed as a fresh insert.
	relike, created, err := SetDisukai(db, 1, 1, true)
	require.NoError(t, err)
	assert.True(t, created)
	require.NotNil(t, relike.Suka)
	assert.True(t, *relike.Suka)

	var count int64
	require.NoError(t, db.Model(&Disukai{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestSetTidakDisukaiIndependentOfDisukai(t *testing.T) {
	db := openReactionDB(t)

	_, _, err := SetDisukai(db, 1, 1, true)
	require.NoError(t, err)

	dislike, created, err := SetTidakDisukai(db, 1, 1, true)
	require.NoError(t, err)
	assert.True(t, created)

	// Both rows coexist for the same pair.
	var likes, dislikes int64
	require.NoError(t, db.Model(&Disukai{}).Count(&likes).Error)
	require.NoError(t, db.Model(&TidakDisukai{}).Count(&dislikes).Error)
	assert.Equal(t, int64(1), likes)
	assert.Equal(t, int64(1), dislikes)

	// Delete and re-create works for dislikes as well.
	require.NoError(t, db.Delete(&TidakDisukai{}, dislike.ID).Error)
	_, created, err = SetTidakDisukai(db, 1, 1, false)
	require.NoError(t, err)
	assert.True(t, created)
}
