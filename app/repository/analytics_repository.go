package repository

import (
	"gorm.io/gorm"
)

type analyticsRepository struct {
	db *gorm.DB
}

// NewAnalyticsRepository creates a new analytics repository
func NewAnalyticsRepository(db *gorm.DB) AnalyticsRepository {
	return &analyticsRepository{db: db}
}

func (r *analyticsRepository) UsersByRole() ([]LabelCount, error) {
	var rows []LabelCount
	err := r.db.Table("user").
		Select("role AS label, COUNT(*) AS count").
		Group("role").
		Order("count DESC").
		Scan(&rows).Error
	return rows, err
}

func (r *analyticsRepository) UsersByMembership() ([]LabelCount, error) {
	var rows []LabelCount
	err := r.db.Table("user").
		Select("membership AS label, COUNT(*) AS count").
		Group("membership").
		Order("count DESC").
		Scan(&rows).Error
	return rows, err
}

func (r *analyticsRepository) TopAuthors(limit int) ([]AuthorStat, error) {
	var rows []AuthorStat
	err := r.db.Table("berita").
		Select("user.id_user AS user_id, user.name AS name, user.username AS username, COUNT(berita.id_berita) AS count").
		Joins("JOIN user ON user.id_user = berita.id_user").
		Group("user.id_user, user.name, user.username").
		Order("count DESC").
		Limit(limit).
		Scan(&rows).Error
	return rows, err
}

func (r *analyticsRepository) BeritaPerKategori() ([]LabelCount, error) {
	var rows []LabelCount
	err := r.db.Table("kategori").
		Select("kategori.kategori AS label, COUNT(berita.id_berita) AS count").
		Joins("LEFT JOIN berita ON berita.id_kategori = kategori.id_kategori").
		Group("kategori.id_kategori, kategori.kategori").
		Order("count DESC").
		Scan(&rows).Error
	return rows, err
}

func (r *analyticsRepository) MostLikedBerita(limit int) ([]BeritaStat, error) {
	var rows []BeritaStat
	err := r.db.Table("disukai").
		Select("berita.id_berita AS berita_id, berita.judul AS judul, COUNT(disukai.id_disukai) AS count").
		Joins("JOIN berita ON berita.id_berita = disukai.id_berita").
		Where("disukai.suka = ?", true).
		Group("berita.id_berita, berita.judul").
		Order("count DESC").
		Limit(limit).
		Scan(&rows).Error
	return rows, err
}

func (r *analyticsRepository) MostReadBerita(limit int) ([]BeritaStat, error) {
	var rows []BeritaStat
	err := r.db.Table("history").
		Select("berita.id_berita AS berita_id, berita.judul AS judul, COUNT(history.id_history) AS count").
		Joins("JOIN berita ON berita.id_berita = history.id_berita").
		Group("berita.id_berita, berita.judul").
		Order("count DESC").
		Limit(limit).
		Scan(&rows).Error
	return rows, err
}
