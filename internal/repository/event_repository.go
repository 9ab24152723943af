package repository

import (
	"errors"

	"gorm.io/gorm"

	"github.com/bestmoments/bestmoments-backend/internal/models"
)

type EventRepository struct {
	db *gorm.DB
}

func NewEventRepository(db *gorm.DB) *EventRepository {
	return &EventRepository{db: db}
}

func (r *EventRepository) Create(event *models.Event) (*models.Event, error) {
	if err := r.db.Create(event).Error; err != nil {
		return nil, err
	}
	return event, nil
}

// GetByID returns (nil, nil) when no event exists with the given id.
func (r *EventRepository) GetByID(id uint) (*models.Event, error) {
	var event models.Event
	err := r.db.First(&event, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &event, nil
}

func (r *EventRepository) GetByCode(code string) (*models.Event, error) {
	var event models.Event
	err := r.db.Where("event_code = ?", code).First(&event).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &event, nil
}

func (r *EventRepository) CodeExists(code string) (bool, error) {
	var count int64
	err := r.db.Model(&models.Event{}).Where("event_code = ?", code).Count(&count).Error
	return count > 0, err
}

func (r *EventRepository) Update(id uint, fields map[string]interface{}) error {
	return r.db.Model(&models.Event{}).Where("id = ?", id).Updates(fields).Error
}

func (r *EventRepository) ListActive(offset, limit int) ([]models.Event, int64, error) {
	var events []models.Event
	var total int64

	query := r.db.Model(&models.Event{}).Where("is_active = ?", true)
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	err := query.Order("event_date DESC").Offset(offset).Limit(limit).Find(&events).Error
	return events, total, err
}

func (r *EventRepository) ListByHostPhone(phone string, offset, limit int) ([]models.Event, int64, error) {
	var events []models.Event
	var total int64

	query := r.db.Model(&models.Event{}).Where("host_phone = ?", phone)
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	err := query.Order("created_at DESC").Offset(offset).Limit(limit).Find(&events).Error
	return events, total, err
}

// IncrementTotalImages applies a single atomic column update so concurrent
// uploads never lose counts.
func (r *EventRepository) IncrementTotalImages(id uint, delta int) error {
	return r.db.Model(&models.Event{}).Where("id = ?", id).
		UpdateColumn("total_images", gorm.Expr("total_images + ?", delta)).Error
}
