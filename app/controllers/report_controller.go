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
	"github.com/wartapedia/portal-berita/internal/pkg/usercontext"
)

type reportRequest struct {
	BeritaID    uint   `json:"id_berita" form:"id_berita"`
	Reason      string `json:"reason" form:"reason"`
	Description string `json:"description" form:"description"`
}

type reportStatusRequest struct {
	Status string `json:"status" form:"status"`
}

// HandleCreateReport files a report against an article. One report per
// (user, berita); the second attempt is rejected as a duplicate.
func HandleCreateReport(c *fiber.Ctx) error {
	userID := usercontext.GetUserID(c)

	var req reportRequest
	if err := c.BodyParser(&req); err != nil {
		fe := fieldErrors{}
		fe.add("request", "Body request tidak valid")
		return validationErrorResponse(c, fe)
	}

	fe := fieldErrors{}
	if req.BeritaID == 0 {
		fe.add("id_berita", "Kolom id_berita wajib diisi")
	}
	if !models.ValidReportReason(req.Reason) {
		fe.add("reason", "Kolom reason harus salah satu dari: spam, konten_tidak_pantas, hoax, pelanggaran_hak_cipta, lainnya")
	}
	if len(req.Description) > 500 {
		fe.add("description", "Kolom description maksimal 500 karakter")
	}
	if fe.any() {
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
		return serverErrorResponse(c, "reports: berita lookup failed", err)
	}

	reportRepo := factory.GetReportRepository()
	if _, err := reportRepo.GetByUserAndBerita(userID, req.BeritaID); err == nil {
		return conflictResponse(c, "Anda sudah pernah melaporkan berita ini")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return serverErrorResponse(c, "reports: duplicate check failed", err)
	}

	report := &models.Report{
		UserID:      userID,
		BeritaID:    req.BeritaID,
		Reason:      req.Reason,
		Description: req.Description,
		Status:      models.ReportStatusPending,
	}
	if err := reportRepo.Create(report); err != nil {
		return serverErrorResponse(c, "reports: create failed", err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": "Laporan berhasil dikirim. Terima kasih atas partisipasi Anda.",
		"data":    report,
	})
}

// HandleListReports returns all reports for admins, optionally filtered
// by status, with reporter and article summaries nested.
func HandleListReports(c *fiber.Ctx) error {
	if !usercontext.IsAdmin(c) {
		return forbiddenResponse(c)
	}

	statusFilter := c.Query("status")
	if statusFilter != "" && !models.ValidReportStatus(statusFilter) {
		fe := fieldErrors{}
		fe.add("status", "Kolom status harus salah satu dari: pending, reviewed, resolved")
		return validationErrorResponse(c, fe)
	}

	repo := repository.GetGlobalFactory().GetReportRepository()
	reports, err := repo.ListWithRelations(statusFilter)
	if err != nil {
		return serverErrorResponse(c, "reports: list failed", err)
	}

	data := make([]fiber.Map, 0, len(reports))
	for i := range reports {
		report := &reports[i]

		var user fiber.Map
		if report.User != nil {
			user = fiber.Map{
				"id_user": report.User.ID,
				"name":    report.User.Name,
				"email":   report.User.Email,
			}
		}

		var berita fiber.Map
		if report.Berita != nil {
			berita = fiber.Map{
				"id_berita": report.Berita.ID,
				"judul":     report.Berita.Judul,
			}
		}

		data = append(data, fiber.Map{
			"id_report":   report.ID,
			"user":        user,
			"berita":      berita,
			"reason":      report.Reason,
			"description": report.Description,
			"status":      report.Status,
			"created_at":  report.CreatedAt,
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    data,
		"total":   len(data),
	})
}

// HandleUpdateReportStatus moves a report through its states and notifies
// the reporting user of the change.
func HandleUpdateReportStatus(c *fiber.Ctx) error {
	if !usercontext.IsAdmin(c) {
		return forbiddenResponse(c)
	}

	id, ok := parseIDParam(c, "id")
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"success": false,
			"message": "Laporan tidak ditemukan",
		})
	}

	var req reportStatusRequest
	if err := c.BodyParser(&req); err != nil || !models.ValidReportStatus(req.Status) {
		fe := fieldErrors{}
		fe.add("status", "Kolom status harus salah satu dari: pending, reviewed, resolved")
		return validationErrorResponse(c, fe)
	}

	repo := repository.GetGlobalFactory().GetReportRepository()
	report, err := repo.UpdateStatus(id, req.Status)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"success": false,
				"message": "Laporan tidak ditemukan",
			})
		}
		return serverErrorResponse(c, "reports: status update failed", err)
	}

	if err := models.CreateNotification(database.GetDB(), report.UserID,
		models.NotificationTypeReport,
		"Status laporan diperbarui",
		fmt.Sprintf("Laporan Anda sekarang berstatus %s", report.Status),
	); err != nil {
		log.Printf("reports: notification create failed: %v", err)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Status laporan berhasil diupdate",
		"data":    report,
	})
}
