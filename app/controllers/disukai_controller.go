package controllers

import (
	"errors"
	"fmt"
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/wartapedia/portal-berita/app/models"
	"github.com/wartapedia/portal-berita/app/repository"
	"github.com/wartapedia/portal-berita/internal/pkg/database"
)

type likeRequest struct {
	UserID   uint  `json:"id_user" form:"id_user"`
	BeritaID uint  `json:"id_berita" form:"id_berita"`
	Suka     *bool `json:"suka" form:"suka"`
}

type likeValueRequest struct {
	Suka *bool `json:"suka" form:"suka"`
}

// HandleListDisukai returns all like rows.
func HandleListDisukai(c *fiber.Ctx) error {
	repo := repository.GetGlobalFactory().GetDisukaiRepository()
	likes, err := repo.GetAll()
	if err != nil {
		return serverErrorResponse(c, "likes: list failed", err)
	}
	return c.JSON(likes)
}

// HandleListDisukaiTrue returns like rows with value true.
func HandleListDisukaiTrue(c *fiber.Ctx) error {
	repo := repository.GetGlobalFactory().GetDisukaiRepository()
	likes, err := repo.GetByValue(true)
	if err != nil {
		return serverErrorResponse(c, "likes: list failed", err)
	}
	return c.JSON(likes)
}

// HandleListDisukaiFalse returns like rows with value false.
func HandleListDisukaiFalse(c *fiber.Ctx) error {
	repo := repository.GetGlobalFactory().GetDisukaiRepository()
	likes, err := repo.GetByValue(false)
	if err != nil {
		return serverErrorResponse(c, "likes: list failed", err)
	}
	return c.JSON(likes)
}

// HandleGetDisukai returns one like row.
func HandleGetDisukai(c *fiber.Ctx) error {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return notFoundResponse(c, "Like")
	}

	repo := repository.GetGlobalFactory().GetDisukaiRepository()
	like, err := repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return notFoundResponse(c, "Like")
		}
		return serverErrorResponse(c, "likes: lookup failed", err)
	}

	return c.JSON(like)
}

// HandleSetDisukai upserts the like row keyed by (id_user, id_berita).
// The value defaults to true; last write wins and no duplicate rows are
// ever created. A fresh like notifies the article author.
func HandleSetDisukai(c *fiber.Ctx) error {
	var req likeRequest
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
			return serverErrorResponse(c, "likes: user lookup failed", err)
		}
	}

	var berita *models.Berita
	if req.BeritaID == 0 {
		fe.add("id_berita", "Kolom id_berita wajib diisi")
	} else {
		var err error
		berita, err = factory.GetBeritaRepository().GetByID(req.BeritaID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				fe.add("id_berita", "Berita tidak ditemukan")
			} else {
				return serverErrorResponse(c, "likes: berita lookup failed", err)
			}
		}
	}
	if fe.any() {
		return validationErrorResponse(c, fe)
	}

	suka := true
	if req.Suka != nil {
		suka = *req.Suka
	}

	like, created, err := factory.GetDisukaiRepository().Set(req.UserID, req.BeritaID, suka)
	if err != nil {
		return serverErrorResponse(c, "likes: upsert failed", err)
	}

	if created && suka && berita.UserID != req.UserID {
		// Delivery is best-effort; a failed notification never fails the like.
		if err := models.CreateNotification(database.GetDB(), berita.UserID,
			models.NotificationTypeLike,
			"Berita Anda disukai",
			fmt.Sprintf("Berita \"%s\" mendapat suka baru", berita.Judul),
		); err != nil {
			log.Printf("likes: notification create failed: %v", err)
		}
	}

	return c.Status(fiber.StatusCreated).JSON(like)
}

// HandleUpdateDisukai sets the value of an existing like row.
func HandleUpdateDisukai(c *fiber.Ctx) error {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return notFoundResponse(c, "Like")
	}

	var req likeValueRequest
	if err := c.BodyParser(&req); err != nil || req.Suka == nil {
		fe := fieldErrors{}
		fe.add("suka", "Kolom suka wajib diisi")
		return validationErrorResponse(c, fe)
	}

	repo := repository.GetGlobalFactory().GetDisukaiRepository()
	like, err := repo.UpdateValue(id, *req.Suka)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return notFoundResponse(c, "Like")
		}
		return serverErrorResponse(c, "likes: update failed", err)
	}

	return c.JSON(like)
}

// HandleDeleteDisukai removes a like row.
func HandleDeleteDisukai(c *fiber.Ctx) error {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return notFoundResponse(c, "Like")
	}

	repo := repository.GetGlobalFactory().GetDisukaiRepository()
	if _, err := repo.GetByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return notFoundResponse(c, "Like")
		}
		return serverErrorResponse(c, "likes: lookup failed", err)
	}

	if err := repo.Delete(id); err != nil {
		return serverErrorResponse(c, "likes: delete failed", err)
	}

	return c.JSON(fiber.Map{"message": "Like berhasil dihapus"})
}
