package controllers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/wartapedia/portal-berita/app/models"
	"github.com/wartapedia/portal-berita/app/repository"
	"github.com/wartapedia/portal-berita/internal/pkg/usercontext"
)

type bookmarkRequest struct {
	BeritaID uint `json:"id_berita" form:"id_berita"`
}

// HandleListBookmarks returns the caller's bookmarks with articles joined.
func HandleListBookmarks(c *fiber.Ctx) error {
	repo := repository.GetGlobalFactory().GetBookmarkRepository()
	bookmarks, err := repo.GetByUserID(usercontext.GetUserID(c))
	if err != nil {
		return serverErrorResponse(c, "bookmarks: list failed", err)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    bookmarks,
		"total":   len(bookmarks),
	})
}

// HandleCreateBookmark bookmarks an article for the caller. Bookmarking
// the same article twice is a duplicate.
func HandleCreateBookmark(c *fiber.Ctx) error {
	userID := usercontext.GetUserID(c)

	var req bookmarkRequest
	if err := c.BodyParser(&req); err != nil || req.BeritaID == 0 {
		fe := fieldErrors{}
		fe.add("id_berita", "Kolom id_berita wajib diisi")
		return validationErrorResponse(c, fe)
	}

	factory := repository.GetGlobalFactory()
	if _, err := factory.GetBeritaRepository().GetByID(req.BeritaID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"success": false,
				"message": "Berita tidak ditemukan",
			})
		}
		return serverErrorResponse(c, "bookmarks: berita lookup failed", err)
	}

	bookmarkRepo := factory.GetBookmarkRepository()
	if _, err := bookmarkRepo.GetByUserAndBerita(userID, req.BeritaID); err == nil {
		return conflictResponse(c, "Berita sudah ada di bookmark")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return serverErrorResponse(c, "bookmarks: duplicate check failed", err)
	}

	bookmark := &models.Bookmark{UserID: userID, BeritaID: req.BeritaID}
	if err := bookmarkRepo.Create(bookmark); err != nil {
		return serverErrorResponse(c, "bookmarks: create failed", err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": "Berita berhasil ditambahkan ke bookmark",
		"data":    bookmark,
	})
}

// HandleDeleteBookmark removes one owned bookmark. A wrong-owner id
// behaves exactly like a missing one.
func HandleDeleteBookmark(c *fiber.Ctx) error {
	userID := usercontext.GetUserID(c)

	id, ok := parseIDParam(c, "id")
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"success": false,
			"message": "Bookmark tidak ditemukan",
		})
	}

	repo := repository.GetGlobalFactory().GetBookmarkRepository()
	bookmark, err := repo.GetByIDAndUser(id, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"success": false,
				"message": "Bookmark tidak ditemukan",
			})
		}
		return serverErrorResponse(c, "bookmarks: lookup failed", err)
	}

	if err := repo.Delete(bookmark.ID); err != nil {
		return serverErrorResponse(c, "bookmarks: delete failed", err)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Bookmark berhasil dihapus",
	})
}
