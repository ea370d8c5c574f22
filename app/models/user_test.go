package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateUserHashesPassword(t *testing.T) {
	u, err := CreateUser("budi", "Budi Santoso", "budi@example.com", "Rahasia1!", ROLE_PEMBACA, MEMBERSHIP_FREE)
	require.NoError(t, err)

	assert.NotEqual(t, "Rahasia1!", u.Password)
	assert.True(t, u.CheckPassword("Rahasia1!"))
	assert.False(t, u.CheckPassword("rahasia1!"))
}

func TestCreateUserRejectsInvalidRole(t *testing.T) {
	_, err := CreateUser("budi", "Budi", "budi@example.com", "Rahasia1!", "superuser", MEMBERSHIP_FREE)
	assert.Error(t, err)
}

func TestSetPasswordReplacesHash(t *testing.T) {
	u, err := CreateUser("sari", "Sari", "sari@example.com", "Rahasia1!", ROLE_PENULIS, MEMBERSHIP_FREE)
	require.NoError(t, err)

	oldHash := u.Password
	require.NoError(t, u.SetPassword("BaruLagi2?"))

	assert.NotEqual(t, oldHash, u.Password)
	assert.True(t, u.CheckPassword("BaruLagi2?"))
	assert.False(t, u.CheckPassword("Rahasia1!"))
}

func TestValidatePasswordStrength(t *testing.T) {
	tests := []struct {
		name     string
		password string
		wantErr  bool
	}{
		{name: "valid", password: "Rahasia1!", wantErr: false},
		{name: "valid all specials", password: "Aa1@$!%*?&", wantErr: false},
		{name: "too short", password: "Aa1!", wantErr: true},
		{name: "no uppercase", password: "rahasia1!", wantErr: true},
		{name: "no lowercase", password: "RAHASIA1!", wantErr: true},
		{name: "no digit", password: "Rahasiaa!", wantErr: true},
		{name: "no special", password: "Rahasia11", wantErr: true},
		{name: "disallowed special", password: "Rahasia1#", wantErr: true},
		{name: "space not allowed", password: "Rahasia 1!", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePasswordStrength(tt.password)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestRoleHelpers(t *testing.T) {
	admin := &User{Role: ROLE_ADMIN}
	penulis := &User{Role: ROLE_PENULIS, Membership: MEMBERSHIP_PREMIUM}

	assert.True(t, admin.IsAdmin())
	assert.False(t, admin.IsPenulis())
	assert.True(t, penulis.IsPenulis())
	assert.True(t, penulis.IsPremium())
	assert.False(t, admin.IsPremium())
}

func TestPublicProfileOmitsSecrets(t *testing.T) {
	u := &User{
		ID:         7,
		Username:   "budi",
		Name:       "Budi",
		Email:      "budi@example.com",
		Password:   "$2a$10$secret",
		Role:       ROLE_PEMBACA,
		Membership: MEMBERSHIP_PREMIUM,
	}

	p := u.PublicProfile()

	assert.Equal(t, uint(7), p.ID)
	assert.Equal(t, "budi", p.Username)
	assert.Equal(t, ROLE_PEMBACA, p.Role)
}
