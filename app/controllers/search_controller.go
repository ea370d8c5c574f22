package controllers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/wartapedia/portal-berita/app/models"
	"github.com/wartapedia/portal-berita/app/repository"
)

// HandleGlobalSearch matches q against articles, categories and author
// names and returns the three groups.
func HandleGlobalSearch(c *fiber.Ctx) error {
	query := c.Query("q")
	if query == "" {
		fe := fieldErrors{}
		fe.add("q", "Kolom q wajib diisi")
		return validationErrorResponse(c, fe)
	}

	factory := repository.GetGlobalFactory()

	berita, err := factory.GetBeritaRepository().Search(query)
	if err != nil {
		return serverErrorResponse(c, "search: berita search failed", err)
	}

	kategoriAll, err := factory.GetKategoriRepository().GetAll()
	if err != nil {
		return serverErrorResponse(c, "search: kategori search failed", err)
	}
	kategori := make([]models.Kategori, 0)
	for _, k := range kategoriAll {
		if containsFold(k.Kategori, query) {
			kategori = append(kategori, k)
		}
	}

	usersAll, err := factory.GetUserRepository().List()
	if err != nil {
		return serverErrorResponse(c, "search: user search failed", err)
	}
	penulis := make([]models.PublicProfile, 0)
	for i := range usersAll {
		if !usersAll[i].IsPenulis() {
			continue
		}
		if containsFold(usersAll[i].Name, query) || containsFold(usersAll[i].Username, query) {
			penulis = append(penulis, usersAll[i].PublicProfile())
		}
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data": fiber.Map{
			"berita":   berita,
			"kategori": kategori,
			"penulis":  penulis,
		},
	})
}

// HandleAdvancedSearch filters articles by any combination of q,
// id_kategori, id_user, from and to (publish date bounds).
func HandleAdvancedSearch(c *fiber.Ctx) error {
	filter := repository.BeritaSearchFilter{
		Query: c.Query("q"),
		From:  c.Query("from"),
		To:    c.Query("to"),
	}

	fe := fieldErrors{}
	if raw := c.Query("id_kategori"); raw != "" {
		id, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			fe.add("id_kategori", "Kolom id_kategori harus berupa angka")
		} else {
			filter.KategoriID = uint(id)
		}
	}
	if raw := c.Query("id_user"); raw != "" {
		id, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			fe.add("id_user", "Kolom id_user harus berupa angka")
		} else {
			filter.UserID = uint(id)
		}
	}
	if filter.From != "" && !models.ValidPublishDate(filter.From) {
		fe.add("from", "Kolom from harus berupa tanggal yang valid")
	}
	if filter.To != "" && !models.ValidPublishDate(filter.To) {
		fe.add("to", "Kolom to harus berupa tanggal yang valid")
	}
	if fe.any() {
		return validationErrorResponse(c, fe)
	}

	berita, err := repository.GetGlobalFactory().GetBeritaRepository().AdvancedSearch(filter)
	if err != nil {
		return serverErrorResponse(c, "search: advanced search failed", err)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    berita,
		"total":   len(berita),
	})
}
