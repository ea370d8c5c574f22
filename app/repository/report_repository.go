package repository

import (
	"gorm.io/gorm"

	"github.com/wartapedia/portal-berita/app/models"
)

// reportRepository implements the ReportRepository interface
type reportRepository struct {
	db *gorm.DB
}

// NewReportRepository creates a new report repository instance
func NewReportRepository(db *gorm.DB) ReportRepository {
	return &reportRepository{db: db}
}

// Create creates a new report
func (r *reportRepository) Create(report *models.Report) error {
	return r.db.Create(report).Error
}

// GetByID retrieves a report by ID
func (r *reportRepository) GetByID(id uint) (*models.Report, error) {
	var report models.Report
	err := r.db.First(&report, id).Error
	if err != nil {
		return nil, err
	}
	return &report, nil
}

// GetByUserAndBerita retrieves a report by its logical key. Duplicate
// detection goes through this lookup before the unique index fires.
func (r *reportRepository) GetByUserAndBerita(userID, beritaID uint) (*models.Report, error) {
	var report models.Report
	err := r.db.Where("id_user = ? AND id_berita = ?", userID, beritaID).First(&report).Error
	if err != nil {
		return nil, err
	}
	return &report, nil
}

// ListWithRelations returns reports newest first with reporter and article
// preloaded, optionally filtered by status
func (r *reportRepository) ListWithRelations(statusFilter string) ([]models.Report, error) {
	query := r.db.Preload("User").Preload("Berita").Order("created_at DESC")
	if statusFilter != "" {
		query = query.Where("status = ?", statusFilter)
	}

	var reports []models.Report
	err := query.Find(&reports).Error
	return reports, err
}

// UpdateStatus sets the status of an existing report
func (r *reportRepository) UpdateStatus(id uint, status string) (*models.Report, error) {
	var report models.Report
	if err := r.db.First(&report, id).Error; err != nil {
		return nil, err
	}
	report.Status = status
	if err := r.db.Model(&report).Update("status", status).Error; err != nil {
		return nil, err
	}
	return &report, nil
}

// CountByStatus returns the number of reports in the given state
func (r *reportRepository) CountByStatus(status string) (int64, error) {
	var count int64
	err := r.db.Model(&models.Report{}).Where("status = ?", status).Count(&count).Error
	return count, err
}
