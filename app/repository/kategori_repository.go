package repository

import (
	"gorm.io/gorm"

	"github.com/wartapedia/portal-berita/app/models"
)

// kategoriRepository implements the KategoriRepository interface
type kategoriRepository struct {
	db *gorm.DB
}

// NewKategoriRepository creates a new category repository instance
func NewKategoriRepository(db *gorm.DB) KategoriRepository {
	return &kategoriRepository{db: db}
}

// Create creates a new category
func (r *kategoriRepository) Create(kategori *models.Kategori) error {
	return r.db.Create(kategori).Error
}

// GetByID retrieves a category by ID
func (r *kategoriRepository) GetByID(id uint) (*models.Kategori, error) {
	var kategori models.Kategori
	err := r.db.First(&kategori, id).Error
	if err != nil {
		return nil, err
	}
	return &kategori, nil
}

// GetAll returns all categories
func (r *kategoriRepository) GetAll() ([]models.Kategori, error) {
	var kategori []models.Kategori
	err := r.db.Find(&kategori).Error
	return kategori, err
}

// NameExists checks category name uniqueness, optionally excluding a row
func (r *kategoriRepository) NameExists(name string, exceptID uint) (bool, error) {
	var count int64
	query := r.db.Model(&models.Kategori{}).Where("kategori = ?", name)
	if exceptID != 0 {
		query = query.Where("id_kategori <> ?", exceptID)
	}
	if err := query.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// Update saves changes to an existing category
func (r *kategoriRepository) Update(kategori *models.Kategori) error {
	return r.db.Save(kategori).Error
}

// Delete removes a category by ID
func (r *kategoriRepository) Delete(id uint) error {
	return r.db.Delete(&models.Kategori{}, id).Error
}

// Count returns the total number of categories
func (r *kategoriRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.Kategori{}).Count(&count).Error
	return count, err
}
