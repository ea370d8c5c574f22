package controllers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/wartapedia/portal-berita/app/models"
	"github.com/wartapedia/portal-berita/app/repository"
)

type historyRequest struct {
	UserID   uint `json:"id_user" form:"id_user"`
	BeritaID uint `json:"id_berita" form:"id_berita"`
}

// HandleListHistory returns the full read log.
func HandleListHistory(c *fiber.Ctx) error {
	repo := repository.GetGlobalFactory().GetHistoryRepository()
	history, err := repo.GetAll()
	if err != nil {
		return serverErrorResponse(c, "history: list failed", err)
	}
	return c.JSON(history)
}

// HandleGetHistory returns one read log row.
func HandleGetHistory(c *fiber.Ctx) error {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return notFoundResponse(c, "History")
	}

	repo := repository.GetGlobalFactory().GetHistoryRepository()
	history, err := repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return notFoundResponse(c, "History")
		}
		return serverErrorResponse(c, "history: lookup failed", err)
	}

	return c.JSON(history)
}

// HandleGetHistoryByUser returns one user's read log. An empty log is 404,
// matching the original behavior.
func HandleGetHistoryByUser(c *fiber.Ctx) error {
	userID, ok := parseIDParam(c, "id")
	if !ok {
		return notFoundResponse(c, "History")
	}

	repo := repository.GetGlobalFactory().GetHistoryRepository()
	history, err := repo.GetByUserID(userID)
	if err != nil {
		return serverErrorResponse(c, "history: list by user failed", err)
	}
	if len(history) == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "History tidak ditemukan untuk user ini",
		})
	}

	return c.JSON(history)
}

// HandleCreateHistory appends a read log row. Repeat reads append repeat
// rows; there is no dedupe.
func HandleCreateHistory(c *fiber.Ctx) error {
	var req historyRequest
	if err := c.BodyParser(&req); err != nil {
		fe := fieldErrors{}
		fe.add("request", "Body request tidak valid")
		return validationErrorResponse(c, fe)
	}

	fe := fieldErrors{}
	factory := repository.GetGlobalFactory()
	if req.UserID == 0 {
		fe.add("id_user", "Kolom id_user wajib diisi")
	} else if _, err := factory.GetUserRepository().GetByID(req.UserID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			fe.add("id_user", "User tidak ditemukan")
		} else {
			return serverErrorResponse(c, "history: user lookup failed", err)
		}
	}
	if req.BeritaID == 0 {
		fe.add("id_berita", "Kolom id_berita wajib diisi")
	} else if _, err := factory.GetBeritaRepository().GetByID(req.BeritaID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			fe.add("id_berita", "Berita tidak ditemukan")
		} else {
			return serverErrorResponse(c, "history: berita lookup failed", err)
		}
	}
	if fe.any() {
		return validationErrorResponse(c, fe)
	}

	history := &models.History{UserID: req.UserID, BeritaID: req.BeritaID}
	if err := factory.GetHistoryRepository().Create(history); err != nil {
		return serverErrorResponse(c, "history: create failed", err)
	}

	return c.Status(fiber.StatusCreated).JSON(history)
}

// HandleDeleteHistory removes a read log row.
func HandleDeleteHistory(c *fiber.Ctx) error {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return notFoundResponse(c, "History")
	}

	repo := repository.GetGlobalFactory().GetHistoryRepository()
	if _, err := repo.GetByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return notFoundResponse(c, "History")
		}
		return serverErrorResponse(c, "history: lookup failed", err)
	}

	if err := repo.Delete(id); err != nil {
		return serverErrorResponse(c, "history: delete failed", err)
	}

	return c.JSON(fiber.Map{"message": "History berhasil dihapus"})
}
