package models

import (
	"time"
)

const (
	ReportStatusPending  = "pending"
	ReportStatusReviewed = "reviewed"
	ReportStatusResolved = "resolved"
)

// ReportReasons is the closed set of accepted report reasons.
var ReportReasons = []string{"spam", "konten_tidak_pantas", "hoax", "pelanggaran_hak_cipta", "lainnya"}

// Report is a reader complaint about a berita. One report per
// (user, berita) pair; duplicates are rejected at the store level.
type Report struct {
	ID          uint      `gorm:"primaryKey;column:id_report" json:"id_report"`
	UserID      uint      `gorm:"column:id_user;uniqueIndex:idx_report_user_berita;not null" json:"id_user"`
	User        *User     `gorm:"foreignKey:UserID" json:"user,omitempty"`
	BeritaID    uint      `gorm:"column:id_berita;uniqueIndex:idx_report_user_berita;not null" json:"id_berita"`
	Berita      *Berita   `gorm:"foreignKey:BeritaID" json:"berita,omitempty"`
	Reason      string    `gorm:"type:varchar(50);not null" json:"reason"`
	Description string    `gorm:"type:varchar(500)" json:"description"`
	Status      string    `gorm:"type:varchar(20);default:'pending'" json:"status"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Report) TableName() string {
	return "report"
}

// ValidReportReason reports whether reason is one of the accepted values.
func ValidReportReason(reason string) bool {
	for _, r := range ReportReasons {
		if r == reason {
			return true
		}
	}
	return false
}

// ValidReportStatus reports whether status is a known report state.
func ValidReportStatus(status string) bool {
	switch status {
	case ReportStatusPending, ReportStatusReviewed, ReportStatusResolved:
		return true
	}
	return false
}
