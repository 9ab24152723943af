package repository

import (
	"errors"

	"gorm.io/gorm"

	"github.com/bestmoments/bestmoments-backend/internal/models"
)

type TemplateRepository struct {
	db *gorm.DB
}

func NewTemplateRepository(db *gorm.DB) *TemplateRepository {
	return &TemplateRepository{db: db}
}

func (r *TemplateRepository) Create(template *models.Template) (*models.Template, error) {
	if err := r.db.Create(template).Error; err != nil {
		return nil, err
	}
	return template, nil
}

// GetByID returns (nil, nil) when no template exists with the given id.
func (r *TemplateRepository) GetByID(id uint) (*models.Template, error) {
	var template models.Template
	err := r.db.First(&template, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &template, nil
}

func (r *TemplateRepository) Update(id uint, fields map[string]interface{}) error {
	return r.db.Model(&models.Template{}).Where("id = ?", id).Updates(fields).Error
}

// ListActive lists active templates, optionally filtered by event type.
func (r *TemplateRepository) ListActive(eventType string, offset, limit int) ([]models.Template, int64, error) {
	var templates []models.Template
	var total int64

	query := r.db.Model(&models.Template{}).Where("is_active = ?", true)
	if eventType != "" {
		query = query.Where("event_type = ?", eventType)
	}
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	err := query.Order("created_at DESC").Offset(offset).Limit(limit).Find(&templates).Error
	return templates, total, err
}

// IncrementUsageCount bumps usage_count atomically. Usage counts are monotonic
// and are never decremented, even when an event is soft-deleted.
func (r *TemplateRepository) IncrementUsageCount(id uint) error {
	return r.db.Model(&models.Template{}).Where("id = ?", id).
		UpdateColumn("usage_count", gorm.Expr("usage_count + ?", 1)).Error
}
