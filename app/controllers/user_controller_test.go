package controllers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/wartapedia/portal-berita/app/models"
	"github.com/wartapedia/portal-berita/app/repository"
)

var (
	handlerDBOnce sync.Once
	handlerDB     *gorm.DB
	handlerDBErr  error
)

// handlerTestDB backs handler tests with an in-memory database. The
// repository factory binds once per process, so every test in this
// package shares the same instance and must seed distinct rows.
func handlerTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	handlerDBOnce.Do(func() {
		db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
			Logger: logger.Default.LogMode(logger.Silent),
		})
		if err != nil {
			handlerDBErr = err
			return
		}
		sqlDB, err := db.DB()
		if err != nil {
			handlerDBErr = err
			return
		}
		sqlDB.SetMaxOpenConns(1)

		if err := db.AutoMigrate(
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
		); err != nil {
			handlerDBErr = err
			return
		}

		handlerDB = db
		repository.InitializeFactory(db)
	})
	require.NoError(t, handlerDBErr)

	return handlerDB
}

func newUserTestApp() *fiber.App {
	app := fiber.New()
	app.Put("/users/:id", HandleUpdateUser)
	return app
}

func TestHandleUpdateUserRejectsTakenEmail(t *testing.T) {
	db := handlerTestDB(t)
	app := newUserTestApp()

	sari := &models.User{Username: "sari_upd", Name: "Sari", Email: "sari.upd@wartapedia.id", Password: "x", Role: models.ROLE_PEMBACA, Membership: models.MEMBERSHIP_FREE}
	budi := &models.User{Username: "budi_upd", Name: "Budi", Email: "budi.upd@wartapedia.id", Password: "x", Role: models.ROLE_PEMBACA, Membership: models.MEMBERSHIP_FREE}
	require.NoError(t, db.Create(sari).Error)
	require.NoError(t, db.Create(budi).Error)

	payload, err := json.Marshal(fiber.Map{"email": budi.Email})
	require.NoError(t, err)
	req := httptest.NewRequest(fiber.MethodPut, fmt.Sprintf("/users/%d", sari.ID), bytes.NewReader(payload))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnprocessableEntity, resp.StatusCode)

	var body struct {
		Success bool                `json:"success"`
		Message string              `json:"message"`
		Errors  map[string][]string `json:"errors"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.False(t, body.Success)
	assert.Contains(t, body.Errors, "email")

	// The row is untouched.
	var stored models.User
	require.NoError(t, db.First(&stored, sari.ID).Error)
	assert.Equal(t, "sari.upd@wartapedia.id", stored.Email)
}

func TestHandleUpdateUserAcceptsOwnAndFreshEmail(t *testing.T) {
	db := handlerTestDB(t)
	app := newUserTestApp()

	tono := &models.User{Username: "tono_upd", Name: "Tono", Email: "tono.upd@wartapedia.id", Password: "x", Role: models.ROLE_PEMBACA, Membership: models.MEMBERSHIP_FREE}
	require.NoError(t, db.Create(tono).Error)

	// Re-submitting the current email is not a conflict.
	payload, err := json.Marshal(fiber.Map{"email": tono.Email, "name": "Tono Baru"})
	require.NoError(t, err)
	req := httptest.NewRequest(fiber.MethodPut, fmt.Sprintf("/users/%d", tono.ID), bytes.NewReader(payload))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	// An unused email goes through.
	payload, err = json.Marshal(fiber.Map{"email": "tono.baru@wartapedia.id"})
	require.NoError(t, err)
	req = httptest.NewRequest(fiber.MethodPut, fmt.Sprintf("/users/%d", tono.ID), bytes.NewReader(payload))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)

	resp, err = app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var stored models.User
	require.NoError(t, db.First(&stored, tono.ID).Error)
	assert.Equal(t, "tono.baru@wartapedia.id", stored.Email)
	assert.Equal(t, "Tono Baru", stored.Name)
}
