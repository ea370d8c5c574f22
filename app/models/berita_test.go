package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidPublishDate(t *testing.T) {
	assert.True(t, ValidPublishDate("2025-01-31"))
	assert.True(t, ValidPublishDate("1999-12-01"))

	assert.False(t, ValidPublishDate(""))
	assert.False(t, ValidPublishDate("31-01-2025"))
	assert.False(t, ValidPublishDate("2025-13-01"))
	assert.False(t, ValidPublishDate("2025-02-30"))
	assert.False(t, ValidPublishDate("2025-01-31T00:00:00Z"))
}

func TestBeritaValidate(t *testing.T) {
	b := &Berita{
		UserID:     1,
		KategoriID: 2,
		Judul:      "Judul berita",
		Isi:        "Isi berita",
		TglTerbit:  "2025-01-31",
	}
	assert.NoError(t, b.Validate())

	b.Judul = ""
	assert.Error(t, b.Validate())
}
