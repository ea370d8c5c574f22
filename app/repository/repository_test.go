package repository

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/wartapedia/portal-berita/app/models"
)

// newTestDB opens an isolated in-memory database with the full schema so
// repository tests run against real SQL instead of mocks.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.AuthToken{},
		&models.Kategori{},
		&models.Berita{},
		&models.Disukai{},
		&models.TidakDisukai{},
		&models.History{},
		&models.Bookmark{},
		&models.Notification{},
		&models.Report{},
	))

	return db
}

func seedUser(t *testing.T, db *gorm.DB, username, email, role string) *models.User {
	t.Helper()

	user := &models.User{
		Username:   username,
		Name:       username,
		Email:      email,
		Password:   "irrelevant-hash",
		Role:       role,
		Membership: models.MEMBERSHIP_FREE,
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

func seedBerita(t *testing.T, db *gorm.DB, userID, kategoriID uint, judul string) *models.Berita {
	t.Helper()

	berita := &models.Berita{
		UserID:     userID,
		KategoriID: kategoriID,
		Judul:      judul,
		Isi:        "isi " + judul,
		TglTerbit:  "2026-01-15",
	}
	require.NoError(t, db.Create(berita).Error)
	return berita
}
