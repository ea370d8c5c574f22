package models

import (
	"time"
)

type Bookmark struct {
	ID        uint      `gorm:"primaryKey;column:id_bookmark" json:"id_bookmark"`
	UserID    uint      `gorm:"column:id_user;uniqueIndex:idx_bookmark_user_berita;not null" json:"id_user"`
	User      *User     `gorm:"foreignKey:UserID" json:"user,omitempty"`
	BeritaID  uint      `gorm:"column:id_berita;uniqueIndex:idx_bookmark_user_berita;not null" json:"id_berita"`
	Berita    *Berita   `gorm:"foreignKey:BeritaID" json:"berita,omitempty"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (Bookmark) TableName() string {
	return "bookmark"
}
