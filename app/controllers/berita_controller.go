package controllers

import (
	"errors"
	"io"
	"log"
	"mime/multipart"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/wartapedia/portal-berita/app/models"
	"github.com/wartapedia/portal-berita/app/repository"
	"github.com/wartapedia/portal-berita/internal/pkg/storage"
	"github.com/wartapedia/portal-berita/internal/pkg/upload"
)

type beritaRequest struct {
	UserID     uint   `json:"id_user" form:"id_user"`
	KategoriID uint   `json:"id_kategori" form:"id_kategori"`
	Judul      string `json:"judul" form:"judul"`
	Isi        string `json:"isi" form:"isi"`
	TglTerbit  string `json:"tgl_terbit" form:"tgl_terbit"`
}

// beritaProjection joins the article with its category and a separately
// resolved author. The author is null when the referenced user no longer
// exists; dangling author ids do not break article reads.
func beritaProjection(berita *models.Berita) fiber.Map {
	userRepo := repository.GetGlobalFactory().GetUserRepository()

	var penulis interface{}
	if author, err := userRepo.GetByID(berita.UserID); err == nil {
		penulis = author.PublicProfile()
	}

	return fiber.Map{
		"id_berita":   berita.ID,
		"id_user":     berita.UserID,
		"id_kategori": berita.KategoriID,
		"judul":       berita.Judul,
		"isi":         berita.Isi,
		"gambar":      berita.Gambar,
		"tgl_terbit":  berita.TglTerbit,
		"penulis":     penulis,
		"kategori":    berita.Kategori,
	}
}

// HandleListBerita returns all articles with author and category joined.
func HandleListBerita(c *fiber.Ctx) error {
	repo := repository.GetGlobalFactory().GetBeritaRepository()
	berita, err := repo.GetAll()
	if err != nil {
		return serverErrorResponse(c, "berita: list failed", err)
	}

	result := make([]fiber.Map, 0, len(berita))
	for i := range berita {
		result = append(result, beritaProjection(&berita[i]))
	}

	return c.JSON(result)
}

// HandleGetBerita returns one article with author and category joined.
func HandleGetBerita(c *fiber.Ctx) error {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return notFoundResponse(c, "Berita")
	}

	repo := repository.GetGlobalFactory().GetBeritaRepository()
	berita, err := repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return notFoundResponse(c, "Berita")
		}
		return serverErrorResponse(c, "berita: lookup failed", err)
	}

	return c.JSON(beritaProjection(berita))
}

// HandleGetBeritaByUser returns a user's articles. A missing user is 404,
// not an empty list.
func HandleGetBeritaByUser(c *fiber.Ctx) error {
	userID, ok := parseIDParam(c, "id")
	if !ok {
		return notFoundResponse(c, "User")
	}

	userRepo := repository.GetGlobalFactory().GetUserRepository()
	if _, err := userRepo.GetByID(userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return notFoundResponse(c, "User")
		}
		return serverErrorResponse(c, "berita: author lookup failed", err)
	}

	repo := repository.GetGlobalFactory().GetBeritaRepository()
	berita, err := repo.GetByUserID(userID)
	if err != nil {
		return serverErrorResponse(c, "berita: list by user failed", err)
	}

	return c.JSON(berita)
}

// HandleGetBeritaByKategori returns the articles of one category.
func HandleGetBeritaByKategori(c *fiber.Ctx) error {
	kategoriID, ok := parseIDParam(c, "id")
	if !ok {
		return notFoundResponse(c, "Kategori")
	}

	repo := repository.GetGlobalFactory().GetBeritaRepository()
	berita, err := repo.GetByKategoriID(kategoriID)
	if err != nil {
		return serverErrorResponse(c, "berita: list by category failed", err)
	}

	return c.JSON(berita)
}

// HandleSearchBerita matches the q parameter against title and body.
func HandleSearchBerita(c *fiber.Ctx) error {
	query := c.Query("q")
	if query == "" {
		fe := fieldErrors{}
		fe.add("q", "Kolom q wajib diisi")
		return validationErrorResponse(c, fe)
	}

	repo := repository.GetGlobalFactory().GetBeritaRepository()
	berita, err := repo.Search(query)
	if err != nil {
		return serverErrorResponse(c, "berita: search failed", err)
	}

	return c.JSON(berita)
}

// storeUploadedImage validates and stores a cover image, returning its
// relative blob path.
func storeUploadedImage(file *multipart.FileHeader) (string, error) {
	if err := upload.ValidateImageSize(file.Size); err != nil {
		return "", err
	}

	src, err := file.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	head := make([]byte, 512)
	n, err := src.Read(head)
	if err != nil && err != io.EOF {
		return "", err
	}
	if _, err := upload.ValidateImageBySniff(file.Filename, head[:n]); err != nil {
		return "", err
	}
	if _, err := src.Seek(0, io.SeekStart); err != nil {
		return "", err
	}

	return storage.GetStorage().Store("berita", storage.BlobName(file.Filename), src)
}

func validateBeritaRequest(req *beritaRequest, fe fieldErrors) {
	if req.UserID == 0 {
		fe.add("id_user", "Kolom id_user wajib diisi")
	}
	if req.KategoriID == 0 {
		fe.add("id_kategori", "Kolom id_kategori wajib diisi")
	}
	if req.Judul == "" {
		fe.add("judul", "Kolom judul wajib diisi")
	} else if len(req.Judul) > 255 {
		fe.add("judul", "Kolom judul maksimal 255 karakter")
	}
	if req.Isi == "" {
		fe.add("isi", "Kolom isi wajib diisi")
	}
	if req.TglTerbit == "" {
		fe.add("tgl_terbit", "Kolom tgl_terbit wajib diisi")
	} else if !models.ValidPublishDate(req.TglTerbit) {
		fe.add("tgl_terbit", "Kolom tgl_terbit harus berupa tanggal yang valid")
	}
}

// HandleCreateBerita creates an article; the optional multipart gambar
// field is stored on the public blob path.
func HandleCreateBerita(c *fiber.Ctx) error {
	var req beritaRequest
	if err := c.BodyParser(&req); err != nil {
		fe := fieldErrors{}
		fe.add("request", "Body request tidak valid")
		return validationErrorResponse(c, fe)
	}

	fe := fieldErrors{}
	validateBeritaRequest(&req, fe)

	factory := repository.GetGlobalFactory()
	if req.UserID != 0 {
		if _, err := factory.GetUserRepository().GetByID(req.UserID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				fe.add("id_user", "User tidak ditemukan")
			} else {
				return serverErrorResponse(c, "berita: author lookup failed", err)
			}
		}
	}
	if req.KategoriID != 0 {
		if _, err := factory.GetKategoriRepository().GetByID(req.KategoriID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				fe.add("id_kategori", "Kategori tidak ditemukan")
			} else {
				return serverErrorResponse(c, "berita: category lookup failed", err)
			}
		}
	}
	if fe.any() {
		return validationErrorResponse(c, fe)
	}

	berita := &models.Berita{
		UserID:     req.UserID,
		KategoriID: req.KategoriID,
		Judul:      req.Judul,
		Isi:        req.Isi,
		TglTerbit:  req.TglTerbit,
	}

	if file, err := c.FormFile("gambar"); err == nil && file != nil {
		path, err := storeUploadedImage(file)
		if err != nil {
			fe.add("gambar", err.Error())
			return validationErrorResponse(c, fe)
		}
		berita.Gambar = &path
	}

	if err := factory.GetBeritaRepository().Create(berita); err != nil {
		if berita.Gambar != nil {
			// The row never landed; drop the orphaned blob.
			if derr := storage.GetStorage().Delete(*berita.Gambar); derr != nil {
				log.Printf("berita: orphan blob cleanup failed: %v", derr)
			}
		}
		return serverErrorResponse(c, "berita: create failed", err)
	}

	return c.Status(fiber.StatusCreated).JSON(berita)
}

// HandleUpdateBerita applies a partial update. A new gambar replaces the
// stored blob best-effort: the old file is deleted before the new one is
// written, independent of the row update.
func HandleUpdateBerita(c *fiber.Ctx) error {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return notFoundResponse(c, "Berita")
	}

	factory := repository.GetGlobalFactory()
	repo := factory.GetBeritaRepository()
	berita, err := repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return notFoundResponse(c, "Berita")
		}
		return serverErrorResponse(c, "berita: lookup failed", err)
	}

	var req beritaRequest
	if err := c.BodyParser(&req); err != nil {
		fe := fieldErrors{}
		fe.add("request", "Body request tidak valid")
		return validationErrorResponse(c, fe)
	}

	fe := fieldErrors{}
	if req.Judul != "" && len(req.Judul) > 255 {
		fe.add("judul", "Kolom judul maksimal 255 karakter")
	}
	if req.TglTerbit != "" && !models.ValidPublishDate(req.TglTerbit) {
		fe.add("tgl_terbit", "Kolom tgl_terbit harus berupa tanggal yang valid")
	}
	if req.KategoriID != 0 {
		if _, err := factory.GetKategoriRepository().GetByID(req.KategoriID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				fe.add("id_kategori", "Kategori tidak ditemukan")
			} else {
				return serverErrorResponse(c, "berita: category lookup failed", err)
			}
		}
	}
	if fe.any() {
		return validationErrorResponse(c, fe)
	}

	if req.UserID != 0 {
		berita.UserID = req.UserID
	}
	if req.KategoriID != 0 {
		berita.KategoriID = req.KategoriID
	}
	if req.Judul != "" {
		berita.Judul = req.Judul
	}
	if req.Isi != "" {
		berita.Isi = req.Isi
	}
	if req.TglTerbit != "" {
		berita.TglTerbit = req.TglTerbit
	}

	if file, err := c.FormFile("gambar"); err == nil && file != nil {
		if berita.Gambar != nil && storage.GetStorage().Exists(*berita.Gambar) {
			if derr := storage.GetStorage().Delete(*berita.Gambar); derr != nil {
				log.Printf("berita: old blob delete failed: %v", derr)
			}
		}
		path, err := storeUploadedImage(file)
		if err != nil {
			fe.add("gambar", err.Error())
			return validationErrorResponse(c, fe)
		}
		berita.Gambar = &path
	}

	if err := repo.Update(berita); err != nil {
		return serverErrorResponse(c, "berita: update failed", err)
	}

	return c.JSON(berita)
}

// HandleDeleteBerita removes an article and its stored image blob, if any.
func HandleDeleteBerita(c *fiber.Ctx) error {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return notFoundResponse(c, "Berita")
	}

	repo := repository.GetGlobalFactory().GetBeritaRepository()
	berita, err := repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return notFoundResponse(c, "Berita")
		}
		return serverErrorResponse(c, "berita: lookup failed", err)
	}

	if berita.Gambar != nil && storage.GetStorage().Exists(*berita.Gambar) {
		if err := storage.GetStorage().Delete(*berita.Gambar); err != nil {
			log.Printf("berita: blob delete failed: %v", err)
		}
	}

	if err := repo.Delete(id); err != nil {
		return serverErrorResponse(c, "berita: delete failed", err)
	}

	return c.JSON(fiber.Map{"message": "Berita berhasil dihapus"})
}
