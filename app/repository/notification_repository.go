package repository

import (
	"gorm.io/gorm"

	"github.com/wartapedia/portal-berita/app/models"
)

// notificationRepository implements the NotificationRepository interface.
// Every lookup is scoped by id AND owner so a wrong-owner id behaves
// exactly like a missing one.
type notificationRepository struct {
	db *gorm.DB
}

// NewNotificationRepository creates a new notification repository instance
func NewNotificationRepository(db *gorm.DB) NotificationRepository {
	return &notificationRepository{db: db}
}

// ListByUser returns the user's notifications, newest first, optionally
// filtered by read state
func (r *notificationRepository) ListByUser(userID uint, readFilter *bool) ([]models.Notification, error) {
	query := r.db.Where("id_user = ?", userID).Order("created_at DESC")
	if readFilter != nil {
		query = query.Where("is_read = ?", *readFilter)
	}

	var notifications []models.Notification
	err := query.Find(&notifications).Error
	return notifications, err
}

// GetByIDAndUser retrieves a notification scoped to its owner
func (r *notificationRepository) GetByIDAndUser(id, userID uint) (*models.Notification, error) {
	var notification models.Notification
	err := r.db.Where("id_notification = ? AND id_user = ?", id, userID).First(&notification).Error
	if err != nil {
		return nil, err
	}
	return &notification, nil
}

// MarkRead marks one owned notification as read
func (r *notificationRepository) MarkRead(id, userID uint) error {
	notification, err := r.GetByIDAndUser(id, userID)
	if err != nil {
		return err
	}
	return r.db.Model(notification).Update("is_read", true).Error
}

// MarkAllRead marks every unread notification of the user as read
func (r *notificationRepository) MarkAllRead(userID uint) error {
	return r.db.Model(&models.Notification{}).
		Where("id_user = ? AND is_read = ?", userID, false).
		Update("is_read", true).Error
}

// Delete removes one owned notification
func (r *notificationRepository) Delete(id, userID uint) error {
	notification, err := r.GetByIDAndUser(id, userID)
	if err != nil {
		return err
	}
	return r.db.Delete(notification).Error
}

// CountUnread returns the number of unread notifications of the user
func (r *notificationRepository) CountUnread(userID uint) (int64, error) {
	var count int64
	err := r.db.Model(&models.Notification{}).
		Where("id_user = ? AND is_read = ?", userID, false).
		Count(&count).Error
	return count, err
}
