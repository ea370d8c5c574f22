package router

import (
	"github.com/gofiber/fiber/v2"

	"github.com/wartapedia/portal-berita/app/controllers"
	"github.com/wartapedia/portal-berita/internal/pkg/middleware"
)

type ApiRouter struct {
}

func NewApiRouter() *ApiRouter {
	return &ApiRouter{}
}

func (h ApiRouter) InstallRouter(app *fiber.App) {
	api := app.Group("/api", newRateLimiter())
	api.Get("/", func(ctx *fiber.Ctx) error {
		return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
			"message": "Portal Berita API",
		})
	})

	auth := middleware.BearerAuthMiddleware()

	// Auth
	api.Post("/register", controllers.HandleRegister)
	api.Post("/login", controllers.HandleLogin)

	// Users
	api.Get("/users", controllers.HandleListUsers)
	api.Get("/users/:id", controllers.HandleGetUser)
	api.Put("/users/:id", controllers.HandleUpdateUser)
	api.Delete("/users/:id", controllers.HandleDeleteUser)

	// Kategori, writes require a token
	api.Get("/kategori", controllers.HandleListKategori)
	api.Get("/kategori/:id", controllers.HandleGetKategori)
	api.Post("/kategori", auth, controllers.HandleCreateKategori)
	api.Put("/kategori/:id", auth, controllers.HandleUpdateKategori)
	api.Delete("/kategori/:id", auth, controllers.HandleDeleteKategori)

	// Berita. Static segments must register before /berita/:id so that
	// "search" and "user" are not swallowed by the id parameter.
	api.Get("/berita", controllers.HandleListBerita)
	api.Get("/berita/search", controllers.HandleSearchBerita)
	api.Get("/berita/user/:id", controllers.HandleGetBeritaByUser)
	api.Get("/berita/category/:id", controllers.HandleGetBeritaByKategori)
	api.Get("/berita/:id", controllers.HandleGetBerita)
	api.Post("/berita", auth, controllers.HandleCreateBerita)
	api.Post("/berita/:id", auth, controllers.HandleUpdateBerita)
	api.Put("/berita/:id", auth, controllers.HandleUpdateBerita)
	api.Patch("/berita/:id", auth, controllers.HandleUpdateBerita)
	api.Delete("/berita/:id", auth, middleware.RequireAdmin, controllers.HandleDeleteBerita)

	// Likes. /likes/true and /likes/false before /likes/:id.
	api.Get("/likes", controllers.HandleListDisukai)
	api.Get("/likes/true", controllers.HandleListDisukaiTrue)
	api.Get("/likes/false", controllers.HandleListDisukaiFalse)
	api.Get("/likes/:id", controllers.HandleGetDisukai)
	api.Post("/likes", controllers.HandleSetDisukai)
	api.Put("/likes/:id", controllers.HandleUpdateDisukai)
	api.Delete("/likes/:id", controllers.HandleDeleteDisukai)

	// Dislikes
	api.Get("/dislikes", controllers.HandleListTidakDisukai)
	api.Get("/dislikes/:id", controllers.HandleGetTidakDisukai)
	api.Post("/dislikes", controllers.HandleSetTidakDisukai)
	api.Put("/dislikes/:id", controllers.HandleUpdateTidakDisukai)
	api.Delete("/dislikes/:id", controllers.HandleDeleteTidakDisukai)

	// History
	api.Get("/history", controllers.HandleListHistory)
	api.Get("/history/user/:id", controllers.HandleGetHistoryByUser)
	api.Get("/history/:id", controllers.HandleGetHistory)
	api.Post("/history", controllers.HandleCreateHistory)
	api.Delete("/history/:id", controllers.HandleDeleteHistory)

	// Search
	api.Get("/search", controllers.HandleGlobalSearch)
	api.Get("/search/advanced", controllers.HandleAdvancedSearch)

	// Membership
	api.Post("/transaction", auth, controllers.HandleTransaction)
	api.Post("/upgrade", auth, controllers.HandleUpgrade)

	// Bookmarks
	api.Get("/bookmarks", auth, controllers.HandleListBookmarks)
	api.Post("/bookmarks", auth, controllers.HandleCreateBookmark)
	api.Delete("/bookmarks/:id", auth, controllers.HandleDeleteBookmark)

	// Notifications
	api.Get("/notifications", auth, controllers.HandleListNotifications)
	api.Put("/notifications/read-all", auth, controllers.HandleMarkAllNotificationsRead)
	api.Put("/notifications/:id/read", auth, controllers.HandleMarkNotificationRead)
	api.Delete("/notifications/:id", auth, controllers.HandleDeleteNotification)

	// Reports
	api.Post("/reports", auth, controllers.HandleCreateReport)
	api.Get("/reports", auth, controllers.HandleListReports)
	api.Put("/reports/:id", auth, controllers.HandleUpdateReportStatus)

	// Analytics, admin gated in the handlers
	api.Get("/analytics/dashboard", auth, controllers.HandleAnalyticsDashboard)
	api.Get("/analytics/users", auth, controllers.HandleAnalyticsUsers)
	api.Get("/analytics/content", auth, controllers.HandleAnalyticsContent)
}
