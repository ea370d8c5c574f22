package models

import (
	"errors"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"golang.org/x/crypto/bcrypt"
)

const (
	ROLE_ADMIN   = "admin"
	ROLE_PENULIS = "penulis"
	ROLE_PEMBACA = "pembaca"

	MEMBERSHIP_GUEST   = "guest"
	MEMBERSHIP_FREE    = "free"
	MEMBERSHIP_PREMIUM = "premium"
)

type User struct {
	ID         uint      `gorm:"primaryKey;column:id_user" json:"id_user"`
	Username   string    `gorm:"uniqueIndex;type:varchar(255)" json:"username" validate:"required,min=3,max=255"`
	Name       string    `gorm:"type:varchar(255)" json:"name" validate:"required,max=255"`
	Email      string    `gorm:"uniqueIndex;type:varchar(255)" json:"email" validate:"required,email,max=255"`
	Password   string    `gorm:"type:text" json:"-" validate:"required"`
	Role       string    `gorm:"type:varchar(50);default:'pembaca'" json:"role" validate:"oneof=admin penulis pembaca"`
	Membership string    `gorm:"type:varchar(50);default:'free'" json:"membership" validate:"oneof=guest free premium"`
	CreatedAt  time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt  time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (User) TableName() string {
	return "user"
}

func (u *User) Validate() error {
	v := validator.New()

	return v.Struct(u)
}

// CreateUser builds a validated user with a freshly hashed password.
func CreateUser(username, name, email, password, role, membership string) (*User, error) {
	pw, err := HashPassword(password)
	if err != nil {
		return nil, err
	}

	u := &User{
		Username:   username,
		Name:       name,
		Email:      email,
		Password:   pw,
		Role:       role,
		Membership: membership,
	}

	if err := u.Validate(); err != nil {
		return nil, err
	}

	return u, nil
}

func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)

	return string(bytes), err
}

// CheckPasswordHash compares the given password with the stored hash.
func CheckPasswordHash(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))

	return err == nil
}

// CheckPassword verifies if the provided password matches the user's stored password
func (u *User) CheckPassword(password string) bool {
	return CheckPasswordHash(password, u.Password)
}

// SetPassword hashes and sets a new password for the user
func (u *User) SetPassword(password string) error {
	hashedPassword, err := HashPassword(password)
	if err != nil {
		return err
	}
	u.Password = hashedPassword
	return nil
}

func (u *User) IsAdmin() bool {
	return u.Role == ROLE_ADMIN
}

func (u *User) IsPenulis() bool {
	return u.Role == ROLE_PENULIS
}

func (u *User) IsPremium() bool {
	return u.Membership == MEMBERSHIP_PREMIUM
}

const passwordSpecials = "@$!%*?&"

// ValidatePasswordStrength enforces the registration password policy:
// at least 8 characters, one lowercase, one uppercase, one digit and one
// of @$!%*?&, with no characters outside those classes.
func ValidatePasswordStrength(password string) error {
	if len(password) < 8 {
		return errors.New("password minimal 8 karakter")
	}

	var hasLower, hasUpper, hasDigit, hasSpecial bool
	for _, r := range password {
		switch {
		case r >= 'a' && r <= 'z':
			hasLower = true
		case r >= 'A' && r <= 'Z':
			hasUpper = true
		case r >= '0' && r <= '9':
			hasDigit = true
		case strings.ContainsRune(passwordSpecials, r):
			hasSpecial = true
		default:
			return errors.New("password mengandung karakter yang tidak diizinkan")
		}
	}

	if !hasLower || !hasUpper || !hasDigit || !hasSpecial {
		return errors.New("password harus mengandung huruf besar, huruf kecil, angka, dan karakter spesial (@$!%*?&)")
	}

	return nil
}

// PublicProfile is the user projection exposed by the API. The password
// hash and membership internals never leave the server through it.
type PublicProfile struct {
	ID       uint   `json:"id_user"`
	Username string `json:"username"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Role     string `json:"role"`
}

func (u *User) PublicProfile() PublicProfile {
	return PublicProfile{
		ID:       u.ID,
		Username: u.Username,
		Name:     u.Name,
		Email:    u.Email,
		Role:     u.Role,
	}
}
