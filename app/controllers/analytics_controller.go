package controllers

import (
	"encoding/json"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/wartapedia/portal-berita/app/models"
	"github.com/wartapedia/portal-berita/app/repository"
	"github.com/wartapedia/portal-berita/internal/pkg/cache"
	"github.com/wartapedia/portal-berita/internal/pkg/usercontext"
)

const (
	dashboardCacheKey = "analytics:dashboard"
	dashboardCacheTTL = 5 * time.Minute
)

type dashboardSnapshot struct {
	TotalUsers     int64  `json:"total_users"`
	TotalBerita    int64  `json:"total_berita"`
	TotalKategori  int64  `json:"total_kategori"`
	TotalLikes     int64  `json:"total_likes"`
	TotalDislikes  int64  `json:"total_dislikes"`
	TotalHistory   int64  `json:"total_history"`
	TotalBookmarks int64  `json:"total_bookmarks"`
	PendingReports int64  `json:"pending_reports"`
	GeneratedAt    string `json:"generated_at"`
}

// HandleAnalyticsDashboard returns platform-wide totals. The snapshot is
// cached in Redis for a few minutes, the counts do not need to be live.
func HandleAnalyticsDashboard(c *fiber.Ctx) error {
	if !usercontext.IsAdmin(c) {
		return forbiddenResponse(c)
	}

	// ?refresh=true drops the cached snapshot so admins can force a recount.
	if c.QueryBool("refresh") {
		if err := cache.Delete(dashboardCacheKey); err != nil {
			log.Printf("analytics: dashboard cache invalidation failed: %v", err)
		}
	} else if cached, err := cache.Get(dashboardCacheKey); err == nil && cached != "" {
		var snapshot dashboardSnapshot
		if err := json.Unmarshal([]byte(cached), &snapshot); err == nil {
			return c.JSON(fiber.Map{
				"success": true,
				"data":    snapshot,
				"cached":  true,
			})
		}
	}

	snapshot, err := buildDashboardSnapshot()
	if err != nil {
		return serverErrorResponse(c, "analytics: dashboard snapshot failed", err)
	}

	if payload, err := json.Marshal(snapshot); err == nil {
		if err := cache.Set(dashboardCacheKey, string(payload), dashboardCacheTTL); err != nil {
			log.Printf("analytics: dashboard cache write failed: %v", err)
		}
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    snapshot,
		"cached":  false,
	})
}

func buildDashboardSnapshot() (*dashboardSnapshot, error) {
	repos := repository.GetGlobalRepositories()

	snapshot := &dashboardSnapshot{
		GeneratedAt: time.Now().UTC().Format(time.RFC3339),
	}

	var err error
	if snapshot.TotalUsers, err = repos.User.Count(); err != nil {
		return nil, err
	}
	if snapshot.TotalBerita, err = repos.Berita.Count(); err != nil {
		return nil, err
	}
	if snapshot.TotalKategori, err = repos.Kategori.Count(); err != nil {
		return nil, err
	}
	if snapshot.TotalLikes, err = repos.Disukai.Count(); err != nil {
		return nil, err
	}
	if snapshot.TotalDislikes, err = repos.TidakDisukai.Count(); err != nil {
		return nil, err
	}
	if snapshot.TotalHistory, err = repos.History.Count(); err != nil {
		return nil, err
	}
	if snapshot.TotalBookmarks, err = repos.Bookmark.Count(); err != nil {
		return nil, err
	}
	if snapshot.PendingReports, err = repos.Report.CountByStatus(models.ReportStatusPending); err != nil {
		return nil, err
	}

	return snapshot, nil
}

// HandleAnalyticsUsers breaks the user base down by role and membership
// and lists the most productive authors.
func HandleAnalyticsUsers(c *fiber.Ctx) error {
	if !usercontext.IsAdmin(c) {
		return forbiddenResponse(c)
	}

	analytics := repository.GetGlobalFactory().GetAnalyticsRepository()

	byRole, err := analytics.UsersByRole()
	if err != nil {
		return serverErrorResponse(c, "analytics: users by role failed", err)
	}
	byMembership, err := analytics.UsersByMembership()
	if err != nil {
		return serverErrorResponse(c, "analytics: users by membership failed", err)
	}
	topAuthors, err := analytics.TopAuthors(10)
	if err != nil {
		return serverErrorResponse(c, "analytics: top authors failed", err)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data": fiber.Map{
			"by_role":       byRole,
			"by_membership": byMembership,
			"top_authors":   topAuthors,
		},
	})
}

// HandleAnalyticsContent reports per-category article counts and the
// most liked and most read articles.
func HandleAnalyticsContent(c *fiber.Ctx) error {
	if !usercontext.IsAdmin(c) {
		return forbiddenResponse(c)
	}

	analytics := repository.GetGlobalFactory().GetAnalyticsRepository()

	perKategori, err := analytics.BeritaPerKategori()
	if err != nil {
		return serverErrorResponse(c, "analytics: berita per kategori failed", err)
	}
	mostLiked, err := analytics.MostLikedBerita(10)
	if err != nil {
		return serverErrorResponse(c, "analytics: most liked failed", err)
	}
	mostRead, err := analytics.MostReadBerita(10)
	if err != nil {
		return serverErrorResponse(c, "analytics: most read failed", err)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data": fiber.Map{
			"berita_per_kategori": perKategori,
			"most_liked":          mostLiked,
			"most_read":           mostRead,
		},
	})
}
