package repository

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/wartapedia/portal-berita/app/models"
)

func TestReportOnePerUserAndBerita(t *testing.T) {
	db := newTestDB(t)
	repo := NewReportRepository(db)

	reporter := seedUser(t, db, "sari", "sari@wartapedia.id", models.ROLE_PEMBACA)
	author := seedUser(t, db, "budi", "budi@wartapedia.id", models.ROLE_PENULIS)
	berita := seedBerita(t, db, author.ID, 1, "Banjir di Jakarta")

	first := &models.Report{
		UserID:   reporter.ID,
		BeritaID: berita.ID,
		Reason:   "hoax",
		Status:   models.ReportStatusPending,
	}
	require.NoError(t, repo.Create(first))

	// A second report by the same user on the same berita trips the
	// unique pair index.
	dup := &models.Report{
		UserID:   reporter.ID,
		BeritaID: berita.ID,
		Reason:   "spam",
		Status:   models.ReportStatusPending,
	}
	assert.Error(t, repo.Create(dup))

	// The controller detects the conflict up front through this lookup.
	existing, err := repo.GetByUserAndBerita(reporter.ID, berita.ID)
	require.NoError(t, err)
	assert.Equal(t, first.ID, existing.ID)

	_, err = repo.GetByUserAndBerita(author.ID, berita.ID)
	assert.True(t, errors.Is(err, gorm.ErrRecordNotFound))
}

func TestReportRecreateAfterDelete(t *testing.T) {
	db := newTestDB(t)
	repo := NewReportRepository(db)

	reporter := seedUser(t, db, "sari", "sari@wartapedia.id", models.ROLE_PEMBACA)
	author := seedUser(t, db, "budi", "budi@wartapedia.id", models.ROLE_PENULIS)
	berita := seedBerita(t, db, author.ID, 1, "Banjir di Jakarta")

	report := &models.Report{
		UserID:   reporter.ID,
		BeritaID: berita.ID,
		Reason:   "spam",
		Status:   models.ReportStatusPending,
	}
	require.NoError(t, repo.Create(report))
	require.NoError(t, db.Delete(&models.Report{}, report.ID).Error)

	// Once removed, the pair is free again.
	again := &models.Report{
		UserID:   reporter.ID,
		BeritaID: berita.ID,
		Reason:   "lainnya",
		Status:   models.ReportStatusPending,
	}
	require.NoError(t, repo.Create(again))
}

func TestReportCountByStatus(t *testing.T) {
	db := newTestDB(t)
	repo := NewReportRepository(db)

	author := seedUser(t, db, "budi", "budi@wartapedia.id", models.ROLE_PENULIS)
	berita := seedBerita(t, db, author.ID, 1, "Banjir di Jakarta")

	for i, reporter := range []string{"sari", "tono", "dewi"} {
		u := seedUser(t, db, reporter, reporter+"@wartapedia.id", models.ROLE_PEMBACA)
		report := &models.Report{
			UserID:   u.ID,
			BeritaID: berita.ID,
			Reason:   "spam",
			Status:   models.ReportStatusPending,
		}
		require.NoError(t, repo.Create(report))
		if i == 0 {
			_, err := repo.UpdateStatus(report.ID, models.ReportStatusResolved)
			require.NoError(t, err)
		}
	}

	pending, err := repo.CountByStatus(models.ReportStatusPending)
	require.NoError(t, err)
	assert.Equal(t, int64(2), pending)

	resolved, err := repo.CountByStatus(models.ReportStatusResolved)
	require.NoError(t, err)
	assert.Equal(t, int64(1), resolved)
}
