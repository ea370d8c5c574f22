package repository

import (
	"strings"

	"gorm.io/gorm"

	"github.com/wartapedia/portal-berita/app/models"
)

// tokenRepository implements the TokenRepository interface
type tokenRepository struct {
	db *gorm.DB
}

// NewTokenRepository creates a new token repository instance
func NewTokenRepository(db *gorm.DB) TokenRepository {
	return &tokenRepository{db: db}
}

// Create persists a new access token row
func (r *tokenRepository) Create(token *models.AuthToken) error {
	return r.db.Create(token).Error
}

// GetUserByTokenHash resolves an access token hash to its token row and
// owning user.
func (r *tokenRepository) GetUserByTokenHash(hash string) (*models.User, *models.AuthToken, error) {
	trimmed := strings.TrimSpace(hash)
	if trimmed == "" {
		return nil, nil, gorm.ErrRecordNotFound
	}

	var token models.AuthToken
	if err := r.db.Where("token_hash = ?", trimmed).First(&token).Error; err != nil {
		return nil, nil, err
	}

	var user models.User
	if err := r.db.First(&user, token.UserID).Error; err != nil {
		return nil, nil, err
	}

	return &user, &token, nil
}
