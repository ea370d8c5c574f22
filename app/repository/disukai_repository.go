package repository

import (
	"gorm.io/gorm"

	"github.com/wartapedia/portal-berita/app/models"
)

// disukaiRepository implements the DisukaiRepository interface
type disukaiRepository struct {
	db *gorm.DB
}

// NewDisukaiRepository creates a new like repository instance
func NewDisukaiRepository(db *gorm.DB) DisukaiRepository {
	return &disukaiRepository{db: db}
}

// Set upserts the like row for (userID, beritaID)
func (r *disukaiRepository) Set(userID, beritaID uint, suka bool) (*models.Disukai, bool, error) {
	return models.SetDisukai(r.db, userID, beritaID, suka)
}

// GetByID retrieves a like row by ID
func (r *disukaiRepository) GetByID(id uint) (*models.Disukai, error) {
	var like models.Disukai
	err := r.db.First(&like, id).Error
	if err != nil {
		return nil, err
	}
	return &like, nil
}

// GetAll returns all like rows
func (r *disukaiRepository) GetAll() ([]models.Disukai, error) {
	var likes []models.Disukai
	err := r.db.Find(&likes).Error
	return likes, err
}

// GetByValue returns all like rows with the given value
func (r *disukaiRepository) GetByValue(suka bool) ([]models.Disukai, error) {
	var likes []models.Disukai
	err := r.db.Where("suka = ?", suka).Find(&likes).Error
	return likes, err
}

// UpdateValue sets the value of an existing like row
func (r *disukaiRepository) UpdateValue(id uint, suka bool) (*models.Disukai, error) {
	var like models.Disukai
	if err := r.db.First(&like, id).Error; err != nil {
		return nil, err
	}
	like.Suka = &suka
	if err := r.db.Model(&like).Update("suka", suka).Error; err != nil {
		return nil, err
	}
	return &like, nil
}

// Delete removes a like row by ID
func (r *disukaiRepository) Delete(id uint) error {
	return r.db.Delete(&models.Disukai{}, id).Error
}

// Count returns the total number of like rows
func (r *disukaiRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.Disukai{}).Count(&count).Error
	return count, err
}
