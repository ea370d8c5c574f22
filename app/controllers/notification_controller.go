package controllers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/wartapedia/portal-berita/app/repository"
	"github.com/wartapedia/portal-berita/internal/pkg/usercontext"
)

// HandleListNotifications returns the caller's notifications, newest
// first, optionally filtered with ?read=true|false.
func HandleListNotifications(c *fiber.Ctx) error {
	userID := usercontext.GetUserID(c)

	var readFilter *bool
	switch c.Query("read") {
	case "true", "1":
		v := true
		readFilter = &v
	case "false", "0":
		v := false
		readFilter = &v
	}

	repo := repository.GetGlobalFactory().GetNotificationRepository()
	notifications, err := repo.ListByUser(userID, readFilter)
	if err != nil {
		return serverErrorResponse(c, "notifications: list failed", err)
	}

	unread, err := repo.CountUnread(userID)
	if err != nil {
		return serverErrorResponse(c, "notifications: unread count failed", err)
	}

	return c.JSON(fiber.Map{
		"success":      true,
		"data":         notifications,
		"total":        len(notifications),
		"unread_count": unread,
	})
}

// HandleMarkNotificationRead marks one owned notification as read. A
// wrong-owner id behaves exactly like a missing one.
func HandleMarkNotificationRead(c *fiber.Ctx) error {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"success": false,
			"message": "Notifikasi tidak ditemukan",
		})
	}

	repo := repository.GetGlobalFactory().GetNotificationRepository()
	if err := repo.MarkRead(id, usercontext.GetUserID(c)); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"success": false,
				"message": "Notifikasi tidak ditemukan",
			})
		}
		return serverErrorResponse(c, "notifications: mark read failed", err)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Notifikasi berhasil ditandai sebagai sudah dibaca",
	})
}

// HandleMarkAllNotificationsRead marks all the caller's unread
// notifications as read.
func HandleMarkAllNotificationsRead(c *fiber.Ctx) error {
	repo := repository.GetGlobalFactory().GetNotificationRepository()
	if err := repo.MarkAllRead(usercontext.GetUserID(c)); err != nil {
		return serverErrorResponse(c, "notifications: mark all read failed", err)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Semua notifikasi berhasil ditandai sebagai sudah dibaca",
	})
}

// HandleDeleteNotification removes one owned notification.
func HandleDeleteNotification(c *fiber.Ctx) error {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"success": false,
			"message": "Notifikasi tidak ditemukan",
		})
	}

	repo := repository.GetGlobalFactory().GetNotificationRepository()
	if err := repo.Delete(id, usercontext.GetUserID(c)); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"success": false,
				"message": "Notifikasi tidak ditemukan",
			})
		}
		return serverErrorResponse(c, "notifications: delete failed", err)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Notifikasi berhasil dihapus",
	})
}
