package models

import (
	"time"

	"gorm.io/gorm"
)

const (
	NotificationTypeLike   = "like"
	NotificationTypeReport = "report"
	NotificationTypeSystem = "system"
)

type Notification struct {
	ID        uint      `gorm:"primaryKey;column:id_notification" json:"id_notification"`
	UserID    uint      `gorm:"column:id_user;index;not null" json:"id_user"`
	User      *User     `gorm:"foreignKey:UserID" json:"-"`
	Title     string    `gorm:"type:varchar(255)" json:"title"`
	Message   string    `gorm:"type:text" json:"message"`
	Type      string    `gorm:"type:varchar(50)" json:"type"`
	IsRead    bool      `gorm:"default:false" json:"is_read"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Notification) TableName() string {
	return "notification"
}

// CreateNotification inserts a notification for the user. Failures are the
// caller's to log; notification delivery never blocks the main write.
func CreateNotification(db *gorm.DB, userID uint, notificationType, title, message string) error {
	notification := Notification{
		UserID:  userID,
		Type:    notificationType,
		Title:   title,
		Message: message,
		IsRead:  false,
	}

	return db.Create(&notification).Error
}
