package models

import (
	"time"

	"github.com/go-playground/validator/v10"
)

type Kategori struct {
	ID        uint      `gorm:"primaryKey;column:id_kategori" json:"id_kategori"`
	Kategori  string    `gorm:"uniqueIndex;type:varchar(255);column:kategori" json:"kategori" validate:"required,max=255"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Kategori) TableName() string {
	return "kategori"
}

func (k *Kategori) Validate() error {
	v := validator.New()

	return v.Struct(k)
}
