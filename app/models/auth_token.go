package models

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// AuthToken backs the opaque bearer tokens issued at login. Only the
// SHA-256 hash is persisted; the plaintext is returned to the client once.
type AuthToken struct {
	ID         uint       `gorm:"primaryKey" json:"id"`
	UserID     uint       `gorm:"column:id_user;index;not null" json:"id_user"`
	User       User       `gorm:"foreignKey:UserID" json:"-"`
	Name       string     `gorm:"type:varchar(100)" json:"name"`
	TokenHash  string     `gorm:"uniqueIndex;type:varchar(64);not null" json:"-"`
	LastUsedAt *time.Time `gorm:"type:timestamp;default:null" json:"last_used_at"`
	CreatedAt  time.Time  `gorm:"autoCreateTime" json:"created_at"`
}

func (AuthToken) TableName() string {
	return "auth_token"
}

// HashToken returns the SHA-256 hash for the provided plaintext token.
func HashToken(raw string) string {
	sum := sha256.Sum256([]byte(strings.TrimSpace(raw)))
	return hex.EncodeToString(sum[:])
}

// NewAuthToken creates a token row for the user and returns it together
// with the plaintext form. Tokens carry no expiry; validity ends only on
// explicit revocation, which the API does not expose.
func NewAuthToken(userID uint, name string) (*AuthToken, string) {
	material := strings.ReplaceAll(uuid.NewString(), "-", "")
	plaintext := fmt.Sprintf("%d|%s", userID, material)

	token := &AuthToken{
		UserID:    userID,
		Name:      name,
		TokenHash: HashToken(plaintext),
	}

	return token, plaintext
}

// Touch updates the last-used timestamp metadata.
func (t *AuthToken) Touch() {
	now := time.Now()
	t.LastUsedAt = &now
}
