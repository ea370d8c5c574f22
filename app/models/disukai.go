package models

import (
	"errors"
	"time"

	"gorm.io/gorm"
)

// Disukai records a like of a berita by a user. At most one row exists per
// (user, berita) pair; writes go through SetDisukai which upserts. Rows
// delete hard so a removed like can be recreated without tripping the
// unique index.
type Disukai struct {
	ID        uint      `gorm:"primaryKey;column:id_disukai" json:"id_disukai"`
	UserID    uint      `gorm:"column:id_user;uniqueIndex:idx_disukai_user_berita;not null" json:"id_user"`
	User      *User     `gorm:"foreignKey:UserID" json:"user,omitempty"`
	BeritaID  uint      `gorm:"column:id_berita;uniqueIndex:idx_disukai_user_berita;not null" json:"id_berita"`
	Berita    *Berita   `gorm:"foreignKey:BeritaID" json:"berita,omitempty"`
	Suka      *bool     `gorm:"type:tinyint(1);default:null" json:"suka"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Disukai) TableName() string {
	return "disukai"
}

// SetDisukai creates or overwrites the like row for (userID, beritaID).
// Last write wins; a repeated call with the same value is a no-op update.
// Returns the resulting row and whether it was newly created.
func SetDisukai(db *gorm.DB, userID, beritaID uint, suka bool) (*Disukai, bool, error) {
	var like Disukai
	err := db.Where("id_user = ? AND id_berita = ?", userID, beritaID).First(&like).Error
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, false, err
		}
		like = Disukai{
			UserID:   userID,
			BeritaID: beritaID,
			Suka:     &suka,
		}
		if err := db.Create(&like).Error; err != nil {
			return nil, false, err
		}
		return &like, true, nil
	}

	like.Suka = &suka
	if err := db.Model(&like).Update("suka", suka).Error; err != nil {
		return nil, false, err
	}
	return &like, false, nil
}
