package repository

import (
	"gorm.io/gorm"

	"github.com/wartapedia/portal-berita/app/models"
)

// tidakDisukaiRepository implements the TidakDisukaiRepository interface
type tidakDisukaiRepository struct {
	db *gorm.DB
}

// NewTidakDisukaiRepository creates a new dislike repository instance
func NewTidakDisukaiRepository(db *gorm.DB) TidakDisukaiRepository {
	return &tidakDisukaiRepository{db: db}
}

// Set upserts the dislike row for (userID, beritaID)
func (r *tidakDisukaiRepository) Set(userID, beritaID uint, tidakSuka bool) (*models.TidakDisukai, bool, error) {
	return models.SetTidakDisukai(r.db, userID, beritaID, tidakSuka)
}

// GetByID retrieves a dislike row by ID
func (r *tidakDisukaiRepository) GetByID(id uint) (*models.TidakDisukai, error) {
	var dislike models.TidakDisukai
	err := r.db.First(&dislike, id).Error
	if err != nil {
		return nil, err
	}
	return &dislike, nil
}

// GetAll returns all dislike rows
func (r *tidakDisukaiRepository) GetAll() ([]models.TidakDisukai, error) {
	var dislikes []models.TidakDisukai
	err := r.db.Find(&dislikes).Error
	return dislikes, err
}

// UpdateValue sets the value of an existing dislike row
func (r *tidakDisukaiRepository) UpdateValue(id uint, tidakSuka bool) (*models.TidakDisukai, error) {
	var dislike models.TidakDisukai
	if err := r.db.First(&dislike, id).Error; err != nil {
		return nil, err
	}
	dislike.TidakSuka = &tidakSuka
	if err := r.db.Model(&dislike).Update("tidak_suka", tidakSuka).Error; err != nil {
		return nil, err
	}
	return &dislike, nil
}

// Delete removes a dislike row by ID
func (r *tidakDisukaiRepository) Delete(id uint) error {
	return r.db.Delete(&models.TidakDisukai{}, id).Error
}

// Count returns the total number of dislike rows
func (r *tidakDisukaiRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.TidakDisukai{}).Count(&count).Error
	return count, err
}
