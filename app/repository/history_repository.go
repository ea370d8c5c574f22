package repository

import (
	"gorm.io/gorm"

	"github.com/wartapedia/portal-berita/app/models"
)

// historyRepository implements the HistoryRepository interface
type historyRepository struct {
	db *gorm.DB
}

// NewHistoryRepository creates a new history repository instance
func NewHistoryRepository(db *gorm.DB) HistoryRepository {
	return &historyRepository{db: db}
}

// Create appends a read log row. There is no uniqueness constraint;
// repeat reads produce repeat rows.
func (r *historyRepository) Create(history *models.History) error {
	return r.db.Create(history).Error
}

// GetByID retrieves a history row with user and article preloaded
func (r *historyRepository) GetByID(id uint) (*models.History, error) {
	var history models.History
	err := r.db.Preload("User").Preload("Berita").First(&history, id).Error
	if err != nil {
		return nil, err
	}
	return &history, nil
}

// GetAll returns all history rows with user and article preloaded
func (r *historyRepository) GetAll() ([]models.History, error) {
	var history []models.History
	err := r.db.Preload("User").Preload("Berita").Find(&history).Error
	return history, err
}

// GetByUserID returns the read log of a single user
func (r *historyRepository) GetByUserID(userID uint) ([]models.History, error) {
	var history []models.History
	err := r.db.Preload("Berita").Where("id_user = ?", userID).Find(&history).Error
	return history, err
}

// Delete removes a history row by ID
func (r *historyRepository) Delete(id uint) error {
	return r.db.Delete(&models.History{}, id).Error
}

// Count returns the total number of history rows
func (r *historyRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.History{}).Count(&count).Error
	return count, err
}
