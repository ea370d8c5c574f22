package repository

import (
	"gorm.io/gorm"

	"github.com/wartapedia/portal-berita/app/models"
)

// UserRepository defines the interface for user-related database operations
type UserRepository interface {
	Create(user *models.User) error
	CreateTx(tx *gorm.DB, user *models.User) error
	GetByID(id uint) (*models.User, error)
	GetByEmailAndRole(email, role string) (*models.User, error)
	UsernameExists(username string, exceptID uint) (bool, error)
	EmailExists(email string, exceptID uint) (bool, error)
	Update(user *models.User) error
	Delete(id uint) error
	List() ([]models.User, error)
	Count() (int64, error)
}

// TokenRepository resolves bearer tokens to users
type TokenRepository interface {
	Create(token *models.AuthToken) error
	GetUserByTokenHash(hash string) (*models.User, *models.AuthToken, error)
}

// KategoriRepository defines the interface for category operations
type KategoriRepository interface {
	Create(kategori *models.Kategori) error
	GetByID(id uint) (*models.Kategori, error)
	GetAll() ([]models.Kategori, error)
	NameExists(name string, exceptID uint) (bool, error)
	Update(kategori *models.Kategori) error
	Delete(id uint) error
	Count() (int64, error)
}

// BeritaSearchFilter carries the combinable advanced search filters.
type BeritaSearchFilter struct {
	Query      string
	KategoriID uint
	UserID     uint
	From       string
	To         string
}

// BeritaRepository defines the interface for article operations
type BeritaRepository interface {
	Create(berita *models.Berita) error
	GetByID(id uint) (*models.Berita, error)
	GetAll() ([]models.Berita, error)
	GetByUserID(userID uint) ([]models.Berita, error)
	GetByKategoriID(kategoriID uint) ([]models.Berita, error)
	Search(query string) ([]models.Berita, error)
	AdvancedSearch(filter BeritaSearchFilter) ([]models.Berita, error)
	Update(berita *models.Berita) error
	Delete(id uint) error
	Count() (int64, error)
}

// DisukaiRepository defines the interface for like operations
type DisukaiRepository interface {
	Set(userID, beritaID uint, suka bool) (*models.Disukai, bool, error)
	GetByID(id uint) (*models.Disukai, error)
	GetAll() ([]models.Disukai, error)
	GetByValue(suka bool) ([]models.Disukai, error)
	UpdateValue(id uint, suka bool) (*models.Disukai, error)
	Delete(id uint) error
	Count() (int64, error)
}

// TidakDisukaiRepository defines the interface for dislike operations
type TidakDisukaiRepository interface {
	Set(userID, beritaID uint, tidakSuka bool) (*models.TidakDisukai, bool, error)
	GetByID(id uint) (*models.TidakDisukai, error)
	GetAll() ([]models.TidakDisukai, error)
	UpdateValue(id uint, tidakSuka bool) (*models.TidakDisukai, error)
	Delete(id uint) error
	Count() (int64, error)
}

// HistoryRepository defines the interface for the append-only read log
type HistoryRepository interface {
	Create(history *models.History) error
	GetByID(id uint) (*models.History, error)
	GetAll() ([]models.History, error)
	GetByUserID(userID uint) ([]models.History, error)
	Delete(id uint) error
	Count() (int64, error)
}

// BookmarkRepository defines the interface for bookmark operations
type BookmarkRepository interface {
	Create(bookmark *models.Bookmark) error
	GetByUserID(userID uint) ([]models.Bookmark, error)
	GetByUserAndBerita(userID, beritaID uint) (*models.Bookmark, error)
	GetByIDAndUser(id, userID uint) (*models.Bookmark, error)
	Delete(id uint) error
	Count() (int64, error)
}

// NotificationRepository defines the interface for notification operations,
// always scoped to the owning user
type NotificationRepository interface {
	ListByUser(userID uint, readFilter *bool) ([]models.Notification, error)
	GetByIDAndUser(id, userID uint) (*models.Notification, error)
	MarkRead(id, userID uint) error
	MarkAllRead(userID uint) error
	Delete(id, userID uint) error
	CountUnread(userID uint) (int64, error)
}

// ReportRepository defines the interface for report operations
type ReportRepository interface {
	Create(report *models.Report) error
	GetByID(id uint) (*models.Report, error)
	GetByUserAndBerita(userID, beritaID uint) (*models.Report, error)
	ListWithRelations(statusFilter string) ([]models.Report, error)
	UpdateStatus(id uint, status string) (*models.Report, error)
	CountByStatus(status string) (int64, error)
}

// LabelCount pairs a grouping label with its row count.
type LabelCount struct {
	Label string `json:"label"`
	Count int64  `json:"count"`
}

// AuthorStat aggregates per-author article counts.
type AuthorStat struct {
	UserID   uint   `json:"id_user"`
	Name     string `json:"name"`
	Username string `json:"username"`
	Count    int64  `json:"count"`
}

// BeritaStat aggregates a per-article metric such as likes or reads.
type BeritaStat struct {
	BeritaID uint   `json:"id_berita"`
	Judul    string `json:"judul"`
	Count    int64  `json:"count"`
}

// AnalyticsRepository runs the aggregation queries behind the
// analytics endpoints
type AnalyticsRepository interface {
	UsersByRole() ([]LabelCount, error)
	UsersByMembership() ([]LabelCount, error)
	TopAuthors(limit int) ([]AuthorStat, error)
	BeritaPerKategori() ([]LabelCount, error)
	MostLikedBerita(limit int) ([]BeritaStat, error)
	MostReadBerita(limit int) ([]BeritaStat, error)
}

// Repositories struct holds all repository instances
type Repositories struct {
	User         UserRepository
	Token        TokenRepository
	Kategori     KategoriRepository
	Berita       BeritaRepository
	Disukai      DisukaiRepository
	TidakDisukai TidakDisukaiRepository
	History      HistoryRepository
	Bookmark     BookmarkRepository
	Notification NotificationRepository
	Report       ReportRepository
	Analytics    AnalyticsRepository
}

// NewRepositories creates a new instance of all repositories
func NewRepositories(db *gorm.DB) *Repositories {
	return &Repositories{
		User:         NewUserRepository(db),
		Token:        NewTokenRepository(db),
		Kategori:     NewKategoriRepository(db),
		Berita:       NewBeritaRepository(db),
		Disukai:      NewDisukaiRepository(db),
		TidakDisukai: NewTidakDisukaiRepository(db),
		History:      NewHistoryRepository(db),
		Bookmark:     NewBookmarkRepository(db),
		Notification: NewNotificationRepository(db),
		Report:       NewReportRepository(db),
		Analytics:    NewAnalyticsRepository(db),
	}
}
