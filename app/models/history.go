package models

import (
	"time"
)

// History is the append-only read log. Repeat views of the same berita
// produce repeat rows on purpose.
type History struct {
	ID        uint      `gorm:"primaryKey;column:id_history" json:"id_history"`
	UserID    uint      `gorm:"column:id_user;index;not null" json:"id_user"`
	User      *User     `gorm:"foreignKey:UserID" json:"user,omitempty"`
	BeritaID  uint      `gorm:"column:id_berita;index;not null" json:"id_berita"`
	Berita    *Berita   `gorm:"foreignKey:BeritaID" json:"berita,omitempty"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (History) TableName() string {
	return "history"
}
