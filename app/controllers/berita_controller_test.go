package controllers

import (
	"encoding/json"
	"fmt"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wartapedia/portal-berita/app/models"
)

func TestHandleGetBeritaByUserMissingAuthor(t *testing.T) {
	handlerTestDB(t)

	app := fiber.New()
	app.Get("/berita/user/:id", HandleGetBeritaByUser)

	req := httptest.NewRequest(fiber.MethodGet, "/berita/user/999999", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)

	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "User tidak ditemukan", body["error"])
}

func TestHandleGetBeritaByUserEmptyList(t *testing.T) {
	db := handlerTestDB(t)

	app := fiber.New()
	app.Get("/berita/user/:id", HandleGetBeritaByUser)

	// An existing author with no published berita is an empty 200, only
	// an unknown author is a 404.
	dewi := &models.User{Username: "dewi_list", Name: "Dewi", Email: "dewi.list@wartapedia.id", Password: "x", Role: models.ROLE_PENULIS, Membership: models.MEMBERSHIP_FREE}
	require.NoError(t, db.Create(dewi).Error)

	req := httptest.NewRequest(fiber.MethodGet, fmt.Sprintf("/berita/user/%d", dewi.ID), nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var list []models.Berita
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&list))
	assert.Empty(t, list)
}
