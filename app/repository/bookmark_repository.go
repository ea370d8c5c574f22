package repository

import (
	"gorm.io/gorm"

	"github.com/wartapedia/portal-berita/app/models"
)

// bookmarkRepository implements the BookmarkRepository interface
type bookmarkRepository struct {
	db *gorm.DB
}

// NewBookmarkRepository creates a new bookmark repository instance
func NewBookmarkRepository(db *gorm.DB) BookmarkRepository {
	return &bookmarkRepository{db: db}
}

// Create creates a new bookmark
func (r *bookmarkRepository) Create(bookmark *models.Bookmark) error {
	return r.db.Create(bookmark).Error
}

// GetByUserID returns the caller's bookmarks with articles preloaded
func (r *bookmarkRepository) GetByUserID(userID uint) ([]models.Bookmark, error) {
	var bookmarks []models.Bookmark
	err := r.db.Preload("Berita").Preload("Berita.Kategori").
		Where("id_user = ?", userID).Find(&bookmarks).Error
	return bookmarks, err
}

// GetByUserAndBerita retrieves a bookmark by its logical key
func (r *bookmarkRepository) GetByUserAndBerita(userID, beritaID uint) (*models.Bookmark, error) {
	var bookmark models.Bookmark
	err := r.db.Where("id_user = ? AND id_berita = ?", userID, beritaID).First(&bookmark).Error
	if err != nil {
		return nil, err
	}
	return &bookmark, nil
}

// GetByIDAndUser retrieves a bookmark scoped to its owner. A wrong-owner
// id is indistinguishable from a non-existent one.
func (r *bookmarkRepository) GetByIDAndUser(id, userID uint) (*models.Bookmark, error) {
	var bookmark models.Bookmark
	err := r.db.Where("id_bookmark = ? AND id_user = ?", id, userID).First(&bookmark).Error
	if err != nil {
		return nil, err
	}
	return &bookmark, nil
}

// Delete removes a bookmark by ID
func (r *bookmarkRepository) Delete(id uint) error {
	return r.db.Delete(&models.Bookmark{}, id).Error
}

// Count returns the total number of bookmarks
func (r *bookmarkRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.Bookmark{}).Count(&count).Error
	return count, err
}
