package controllers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/wartapedia/portal-berita/app/repository"
)

type dislikeRequest struct {
	UserID    uint  `json:"id_user" form:"id_user"`
	BeritaID  uint  `json:"id_berita" form:"id_berita"`
	TidakSuka *bool `json:"tidak_suka" form:"tidak_suka"`
}

type dislikeValueRequest struct {
	TidakSuka *bool `json:"tidak_suka" form:"tidak_suka"`
}

// HandleListTidakDisukai returns all dislike rows.
func HandleListTidakDisukai(c *fiber.Ctx) error {
	repo := repository.GetGlobalFactory().GetTidakDisukaiRepository()
	dislikes, err := repo.GetAll()
	if err != nil {
		return serverErrorResponse(c, "dislikes: list failed", err)
	}
	return c.JSON(dislikes)
}

// HandleGetTidakDisukai returns one dislike row.
func HandleGetTidakDisukai(c *fiber.Ctx) error {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return notFoundResponse(c, "Dislike")
	}

	repo := repository.GetGlobalFactory().GetTidakDisukaiRepository()
	dislike, err := repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return notFoundResponse(c, "Dislike")
		}
		return serverErrorResponse(c, "dislikes: lookup failed", err)
	}

	return c.JSON(dislike)
}

// HandleSetTidakDisukai upserts the dislike row keyed by
// (id_user, id_berita). Dislikes are intentionally independent of likes:
// no mutual exclusion is enforced between the two.
func HandleSetTidakDisukai(c *fiber.Ctx) error {
	var req dislikeRequest
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
			return serverErrorResponse(c, "dislikes: user lookup failed", err)
		}
	}
	if req.BeritaID == 0 {
		fe.add("id_berita", "Kolom id_berita wajib diisi")
	} else if _, err := factory.GetBeritaRepository().GetByID(req.BeritaID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			fe.add("id_berita", "Berita tidak ditemukan")
		} else {
			return serverErrorResponse(c, "dislikes: berita lookup failed", err)
		}
	}
	if fe.any() {
		return validationErrorResponse(c, fe)
	}

	tidakSuka := true
	if req.TidakSuka != nil {
		tidakSuka = *req.TidakSuka
	}

	dislike, _, err := factory.GetTidakDisukaiRepository().Set(req.UserID, req.BeritaID, tidakSuka)
	if err != nil {
		return serverErrorResponse(c, "dislikes: upsert failed", err)
	}

	return c.Status(fiber.StatusCreated).JSON(dislike)
}

// HandleUpdateTidakDisukai sets the value of an existing dislike row.
func HandleUpdateTidakDisukai(c *fiber.Ctx) error {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return notFoundResponse(c, "Dislike")
	}

	var req dislikeValueRequest
	if err := c.BodyParser(&req); err != nil || req.TidakSuka == nil {
		fe := fieldErrors{}
		fe.add("tidak_suka", "Kolom tidak_suka wajib diisi")
		return validationErrorResponse(c, fe)
	}

	repo := repository.GetGlobalFactory().GetTidakDisukaiRepository()
	dislike, err := repo.UpdateValue(id, *req.TidakSuka)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return notFoundResponse(c, "Dislike")
		}
		return serverErrorResponse(c, "dislikes: update failed", err)
	}

	return c.JSON(dislike)
}

// HandleDeleteTidakDisukai removes a dislike row.
func HandleDeleteTidakDisukai(c *fiber.Ctx) error {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return notFoundResponse(c, "Dislike")
	}

	repo := repository.GetGlobalFactory().GetTidakDisukaiRepository()
	if _, err := repo.GetByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return notFoundResponse(c, "Dislike")
		}
		return serverErrorResponse(c, "dislikes: lookup failed", err)
	}

	if err := repo.Delete(id); err != nil {
		return serverErrorResponse(c, "dislikes: delete failed", err)
	}

	return c.JSON(fiber.Map{"message": "Dislike berhasil dihapus"})
}
