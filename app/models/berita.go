package models

import (
	"time"

	"github.com/go-playground/validator/v10"
)

// Berita is a published news article. Gambar holds the relative blob path
// of the optional cover image, nil when none was uploaded.
type Berita struct {
	ID         uint      `gorm:"primaryKey;column:id_berita" json:"id_berita"`
	UserID     uint      `gorm:"column:id_user;index;not null" json:"id_user" validate:"required"`
	KategoriID uint      `gorm:"column:id_kategori;index;not null" json:"id_kategori" validate:"required"`
	Kategori   *Kategori `gorm:"foreignKey:KategoriID" json:"kategori,omitempty"`
	Judul      string    `gorm:"type:varchar(255)" json:"judul" validate:"required,max=255"`
	Isi        string    `gorm:"type:text" json:"isi" validate:"required"`
	Gambar     *string   `gorm:"type:varchar(255);default:null" json:"gambar"`
	TglTerbit  string    `gorm:"type:date;column:tgl_terbit" json:"tgl_terbit" validate:"required"`
	CreatedAt  time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt  time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Berita) TableName() string {
	return "berita"
}

func (b *Berita) Validate() error {
	v := validator.New()

	return v.Struct(b)
}

// ValidPublishDate reports whether the value parses as a YYYY-MM-DD date.
func ValidPublishDate(value string) bool {
	_, err := time.Parse("2006-01-02", value)
	return err == nil
}
