package repository

import (
	"errors"

	"gorm.io/gorm"

	"github.com/bestmoments/bestmoments-backend/internal/models"
)

type AlbumRepository struct {
	db *gorm.DB
}

func NewAlbumRepository(db *gorm.DB) *AlbumRepository {
	return &AlbumRepository{db: db}
}

func (r *AlbumRepository) Create(album *models.Album) (*models.Album, error) {
	if err := r.db.Create(album).Error; err != nil {
		return nil, err
	}
	return album, nil
}

// GetByID returns (nil, nil) when no album exists with the given id.
func (r *AlbumRepository) GetByID(id uint) (*models.Album, error) {
	var album models.Album
	err := r.db.First(&album, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &album, nil
}

func (r *AlbumRepository) Update(id uint, fields map[string]interface{}) error {
	return r.db.Model(&models.Album{}).Where("id = ?", id).Updates(fields).Error
}

func (r *AlbumRepository) Delete(id uint) error {
	return r.db.Delete(&models.Album{}, id).Error
}

func (r *AlbumRepository) ListByEvent(eventID uint, offset, limit int) ([]models.Album, int64, error) {
	var albums []models.Album
	var total int64

	query := r.db.Model(&models.Album{}).Where("event_id = ?", eventID)
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	err := query.Order("created_at DESC").Offset(offset).Limit(limit).Find(&albums).Error
	return albums, total, err
}

func (r *AlbumRepository) IncrementImageCount(id uint, delta int) error {
	return r.db.Model(&models.Album{}).Where("id = ?", id).
		UpdateColumn("image_count", gorm.Expr("image_count + ?", delta)).Error
}
