package repository

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/wartapedia/portal-berita/app/models"
)

func TestGetByEmailAndRole(t *testing.T) {
	db := newTestDB(t)
	repo := NewUserRepository(db)

	seeded := seedUser(t, db, "sari", "sari@wartapedia.id", models.ROLE_PENULIS)

	found, err := repo.GetByEmailAndRole("sari@wartapedia.id", models.ROLE_PENULIS)
	require.NoError(t, err)
	assert.Equal(t, seeded.ID, found.ID)

	// The right email with the wrong role resolves to nothing, login
	// treats that the same as an unknown account.
	_, err = repo.GetByEmailAndRole("sari@wartapedia.id", models.ROLE_ADMIN)
	assert.True(t, errors.Is(err, gorm.ErrRecordNotFound))

	_, err = repo.GetByEmailAndRole("tidakada@wartapedia.id", models.ROLE_PENULIS)
	assert.True(t, errors.Is(err, gorm.ErrRecordNotFound))
}

func TestEmailExistsExcludesOwnRow(t *testing.T) {
	db := newTestDB(t)
	repo := NewUserRepository(db)

	sari := seedUser(t, db, "sari", "sari@wartapedia.id", models.ROLE_PEMBACA)
	seedUser(t, db, "budi", "budi@wartapedia.id", models.ROLE_PEMBACA)

	taken, err := repo.EmailExists("budi@wartapedia.id", sari.ID)
	require.NoError(t, err)
	assert.True(t, taken, "another user's email counts as taken")

	taken, err = repo.EmailExists("sari@wartapedia.id", sari.ID)
	require.NoError(t, err)
	assert.False(t, taken, "keeping your own email is not a conflict")

	taken, err = repo.EmailExists("baru@wartapedia.id", sari.ID)
	require.NoError(t, err)
	assert.False(t, taken)
}

func TestUsernameExistsExcludesOwnRow(t *testing.T) {
	db := newTestDB(t)
	repo := NewUserRepository(db)

	sari := seedUser(t, db, "sari", "sari@wartapedia.id", models.ROLE_PEMBACA)
	seedUser(t, db, "budi", "budi@wartapedia.id", models.ROLE_PEMBACA)

	taken, err := repo.UsernameExists("budi", sari.ID)
	require.NoError(t, err)
	assert.True(t, taken)

	taken, err = repo.UsernameExists("sari", sari.ID)
	require.NoError(t, err)
	assert.False(t, taken)
}

func TestUserDeleteIsFinal(t *testing.T) {
	db := newTestDB(t)
	repo := NewUserRepository(db)

	sari := seedUser(t, db, "sari", "sari@wartapedia.id", models.ROLE_PEMBACA)
	require.NoError(t, repo.Delete(sari.ID))

	_, err := repo.GetByID(sari.ID)
	assert.True(t, errors.Is(err, gorm.ErrRecordNotFound))

	// The username and email free up immediately for a new registration.
	fresh := seedUser(t, db, "sari", "sari@wartapedia.id", models.ROLE_PEMBACA)
	assert.NotZero(t, fresh.ID)

	count, err := repo.Count()
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}
