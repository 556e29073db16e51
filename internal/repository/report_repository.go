package repository

import (
	"culturebridge/internal/model"

	"gorm.io/gorm"
)

// ReportRepository defines persistence for archived analysis reports.
type ReportRepository interface {
	Create(report *model.Report) error
	FindByID(id string) (*model.Report, error)
	List(page, pageSize int) ([]model.Report, int64, error)
}

type reportRepository struct {
	db *gorm.DB
}

// NewReportRepository creates a ReportRepository backed by MySQL.
func NewReportRepository(db *gorm.DB) ReportRepository {
	return &reportRepository{db: db}
}

// Create inserts one report row.
func (r *reportRepository) Create(report *model.Report) error {
	return r.db.Create(report).Error
}

// FindByID loads a single report.
func (r *reportRepository) FindByID(id string) (*model.Report, error) {
	var report model.Report
	if err := r.db.Where("id = ?", id).First(&report).Error; err != nil {
		return nil, err
	}
	return &report, nil
}

// List returns one page of reports, newest first, plus the total count.
func (r *reportRepository) List(page, pageSize int) ([]model.Report, int64, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	var total int64
	if err := r.db.Model(&model.Report{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var reports []model.Report
	err := r.db.Order("created_at DESC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&reports).Error
	return reports, total, err
}
