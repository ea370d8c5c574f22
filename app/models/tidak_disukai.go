package models

import (
	"errors"
	"time"

	"gorm.io/gorm"
)

// TidakDisukai mirrors Disukai for dislikes. It is deliberately independent
// of Disukai: the same (user, berita) pair may hold both rows at once.
type TidakDisukai struct {
	ID        uint      `gorm:"primaryKey;column:id_tidaksuka" json:"id_tidaksuka"`
	UserID    uint      `gorm:"column:id_user;uniqueIndex:idx_tidak_disukai_user_berita;not null" json:"id_user"`
	User      *User     `gorm:"foreignKey:UserID" json:"user,omitempty"`
	BeritaID  uint      `gorm:"column:id_berita;uniqueIndex:idx_tidak_disukai_user_berita;not null" json:"id_berita"`
	Berita    *Berita   `gorm:"foreignKey:BeritaID" json:"berita,omitempty"`
	TidakSuka *bool     `gorm:"type:tinyint(1);default:null;column:tidak_suka" json:"tidak_suka"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (TidakDisukai) TableName() string {
	return "tidak_disukai"
}

// SetTidakDisukai creates or overwrites the dislike row for (userID, beritaID).
func SetTidakDisukai(db *gorm.DB, userID, beritaID uint, tidakSuka bool) (*TidakDisukai, bool, error) {
	var dislike TidakDisukai
	err := db.Where("id_user = ? AND id_berita = ?", userID, beritaID).First(&dislike).Error
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, false, err
		}
		dislike = TidakDisukai{
			UserID:    userID,
			BeritaID:  beritaID,
			TidakSuka: &tidakSuka,
		}
		if err := db.Create(&dislike).Error; err != nil {
			return nil, false, err
		}
		return &dislike, true, nil
	}

	dislike.TidakSuka = &tidakSuka
	if err := db.Model(&dislike).Update("tidak_suka", tidakSuka).Error; err != nil {
		return nil, false, err
	}
	return &dislike, false, nil
}
