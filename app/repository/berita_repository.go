package repository

import (
	"gorm.io/gorm"

	"github.com/wartapedia/portal-berita/app/models"
)

// beritaRepository implements the BeritaRepository interface
type beritaRepository struct {
	db *gorm.DB
}

// NewBeritaRepository creates a new article repository instance
func NewBeritaRepository(db *gorm.DB) BeritaRepository {
	return &beritaRepository{db: db}
}

// Create creates a new article
func (r *beritaRepository) Create(berita *models.Berita) error {
	return r.db.Create(berita).Error
}

// GetByID retrieves an article by ID with its category preloaded
func (r *beritaRepository) GetByID(id uint) (*models.Berita, error) {
	var berita models.Berita
	err := r.db.Preload("Kategori").First(&berita, id).Error
	if err != nil {
		return nil, err
	}
	return &berita, nil
}

// GetAll returns all articles with categories preloaded
func (r *beritaRepository) GetAll() ([]models.Berita, error) {
	var berita []models.Berita
	err := r.db.Preload("Kategori").Find(&berita).Error
	return berita, err
}

// GetByUserID returns all articles written by the given user
func (r *beritaRepository) GetByUserID(userID uint) ([]models.Berita, error) {
	var berita []models.Berita
	err := r.db.Preload("Kategori").Where("id_user = ?", userID).Find(&berita).Error
	return berita, err
}

// GetByKategoriID returns all articles in the given category
func (r *beritaRepository) GetByKategoriID(kategoriID uint) ([]models.Berita, error) {
	var berita []models.Berita
	err := r.db.Preload("Kategori").Where("id_kategori = ?", kategoriID).Find(&berita).Error
	return berita, err
}

// Search matches the query against title and body
func (r *beritaRepository) Search(query string) ([]models.Berita, error) {
	var berita []models.Berita
	like := "%" + query + "%"
	err := r.db.Preload("Kategori").
		Where("judul LIKE ? OR isi LIKE ?", like, like).
		Find(&berita).Error
	return berita, err
}

// AdvancedSearch combines the optional filters of the filter struct
func (r *beritaRepository) AdvancedSearch(filter BeritaSearchFilter) ([]models.Berita, error) {
	query := r.db.Preload("Kategori").Model(&models.Berita{})

	if filter.Query != "" {
		like := "%" + filter.Query + "%"
		query = query.Where("judul LIKE ? OR isi LIKE ?", like, like)
	}
	if filter.KategoriID != 0 {
		query = query.Where("id_kategori = ?", filter.KategoriID)
	}
	if filter.UserID != 0 {
		query = query.Where("id_user = ?", filter.UserID)
	}
	if filter.From != "" {
		query = query.Where("tgl_terbit >= ?", filter.From)
	}
	if filter.To != "" {
		query = query.Where("tgl_terbit <= ?", filter.To)
	}

	var berita []models.Berita
	err := query.Find(&berita).Error
	return berita, err
}

// Update saves changes to an existing article
func (r *beritaRepository) Update(berita *models.Berita) error {
	return r.db.Save(berita).Error
}

// Delete removes an article by ID
func (r *beritaRepository) Delete(id uint) error {
	return r.db.Delete(&models.Berita{}, id).Error
}

// Count returns the total number of articles
func (r *beritaRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.Berita{}).Count(&count).Error
	return count, err
}
