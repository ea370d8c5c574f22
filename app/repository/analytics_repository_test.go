package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wartapedia/portal-berita/app/models"
)

// The dashboard counts and the aggregate queries read the same tables,
// so deleting a row has to move both by the same amount.
func TestAnalyticsAgreesWithCountsAfterDelete(t *testing.T) {
	db := newTestDB(t)
	users := NewUserRepository(db)
	likes := NewDisukaiRepository(db)
	analytics := NewAnalyticsRepository(db)

	author := seedUser(t, db, "budi", "budi@wartapedia.id", models.ROLE_PENULIS)
	sari := seedUser(t, db, "sari", "sari@wartapedia.id", models.ROLE_PEMBACA)
	tono := seedUser(t, db, "tono", "tono@wartapedia.id", models.ROLE_PEMBACA)
	berita := seedBerita(t, db, author.ID, 1, "Banjir di Jakarta")

	like, _, err := likes.Set(sari.ID, berita.ID, true)
	require.NoError(t, err)
	_, _, err = likes.Set(tono.ID, berita.ID, true)
	require.NoError(t, err)

	stats, err := analytics.MostLikedBerita(10)
	require.NoError(t, err)
	require.Len(t, stats, 1)
	assert.Equal(t, int64(2), stats[0].Count)

	count, err := likes.Count()
	require.NoError(t, err)
	assert.Equal(t, stats[0].Count, count)

	require.NoError(t, likes.Delete(like.ID))

	stats, err = analytics.MostLikedBerita(10)
	require.NoError(t, err)
	require.Len(t, stats, 1)
	assert.Equal(t, int64(1), stats[0].Count)

	count, err = likes.Count()
	require.NoError(t, err)
	assert.Equal(t, stats[0].Count, count)

	// User deletion drops out of both views the same way.
	require.NoError(t, users.Delete(tono.ID))

	byRole, err := analytics.UsersByRole()
	require.NoError(t, err)
	var aggregated int64
	for _, row := range byRole {
		aggregated += row.Count
	}

	total, err := users.Count()
	require.NoError(t, err)
	assert.Equal(t, total, aggregated)
	assert.Equal(t, int64(2), total)
}

func TestTopAuthorsRanking(t *testing.T) {
	db := newTestDB(t)
	analytics := NewAnalyticsRepository(db)

	budi := seedUser(t, db, "budi", "budi@wartapedia.id", models.ROLE_PENULIS)
	dewi := seedUser(t, db, "dewi", "dewi@wartapedia.id", models.ROLE_PENULIS)

	seedBerita(t, db, budi.ID, 1, "Banjir di Jakarta")
	seedBerita(t, db, budi.ID, 1, "Harga Beras Naik")
	seedBerita(t, db, dewi.ID, 2, "Timnas Lolos Piala Asia")

	authors, err := analytics.TopAuthors(10)
	require.NoError(t, err)
	require.Len(t, authors, 2)
	assert.Equal(t, "budi", authors[0].Username)
	assert.Equal(t, int64(2), authors[0].Count)
	assert.Equal(t, "dewi", authors[1].Username)
	assert.Equal(t, int64(1), authors[1].Count)
}
