package controllers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/wartapedia/portal-berita/app/models"
	"github.com/wartapedia/portal-berita/app/repository"
)

type kategoriRequest struct {
	Kategori string `json:"kategori" form:"kategori" validate:"required,max=255"`
}

// HandleListKategori returns all categories.
func HandleListKategori(c *fiber.Ctx) error {
	repo := repository.GetGlobalFactory().GetKategoriRepository()
	kategori, err := repo.GetAll()
	if err != nil {
		return serverErrorResponse(c, "kategori: list failed", err)
	}
	return c.JSON(kategori)
}

// HandleGetKategori returns one category.
func HandleGetKategori(c *fiber.Ctx) error {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return notFoundResponse(c, "Kategori")
	}

	repo := repository.GetGlobalFactory().GetKategoriRepository()
	kategori, err := repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return notFoundResponse(c, "Kategori")
		}
		return serverErrorResponse(c, "kategori: lookup failed", err)
	}

	return c.JSON(kategori)
}

// HandleCreateKategori creates a category with a unique name.
func HandleCreateKategori(c *fiber.Ctx) error {
	var req kategoriRequest
	if err := c.BodyParser(&req); err != nil {
		fe := fieldErrors{}
		fe.add("request", "Body request tidak valid")
		return validationErrorResponse(c, fe)
	}

	fe := fieldErrors{}
	if err := validate.Struct(&req); err != nil {
		collectValidationErrors(err, fe)
	}

	repo := repository.GetGlobalFactory().GetKategoriRepository()
	if req.Kategori != "" {
		taken, err := repo.NameExists(req.Kategori, 0)
		if err != nil {
			return serverErrorResponse(c, "kategori: uniqueness check failed", err)
		}
		if taken {
			fe.add("kategori", "Kategori sudah digunakan")
		}
	}
	if fe.any() {
		return validationErrorResponse(c, fe)
	}

	kategori := &models.Kategori{Kategori: req.Kategori}
	if err := repo.Create(kategori); err != nil {
		return serverErrorResponse(c, "kategori: create failed", err)
	}

	return c.Status(fiber.StatusCreated).JSON(kategori)
}

// HandleUpdateKategori renames a category.
func HandleUpdateKategori(c *fiber.Ctx) error {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return notFoundResponse(c, "Kategori")
	}

	repo := repository.GetGlobalFactory().GetKategoriRepository()
	kategori, err := repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return notFoundResponse(c, "Kategori")
		}
		return serverErrorResponse(c, "kategori: lookup failed", err)
	}

	var req kategoriRequest
	if err := c.BodyParser(&req); err != nil {
		fe := fieldErrors{}
		fe.add("request", "Body request tidak valid")
		return validationErrorResponse(c, fe)
	}

	fe := fieldErrors{}
	if err := validate.Struct(&req); err != nil {
		collectValidationErrors(err, fe)
	}
	if req.Kategori != "" {
		taken, err := repo.NameExists(req.Kategori, kategori.ID)
		if err != nil {
			return serverErrorResponse(c, "kategori: uniqueness check failed", err)
		}
		if taken {
			fe.add("kategori", "Kategori sudah digunakan")
		}
	}
	if fe.any() {
		return validationErrorResponse(c, fe)
	}

	kategori.Kategori = req.Kategori
	if err := repo.Update(kategori); err != nil {
		return serverErrorResponse(c, "kategori: update failed", err)
	}

	return c.JSON(kategori)
}

// HandleDeleteKategori removes a category.
func HandleDeleteKategori(c *fiber.Ctx) error {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return notFoundResponse(c, "Kategori")
	}

	repo := repository.GetGlobalFactory().GetKategoriRepository()
	if _, err := repo.GetByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return notFoundResponse(c, "Kategori")
		}
		return serverErrorResponse(c, "kategori: lookup failed", err)
	}

	if err := repo.Delete(id); err != nil {
		return serverErrorResponse(c, "kategori: delete failed", err)
	}

	return c.JSON(fiber.Map{"message": "Kategori berhasil dihapus"})
}
