package repository

import (
	"errors"

	"gorm.io/gorm"

	"github.com/bestmoments/bestmoments-backend/internal/models"
)

type ImageRepository struct {
	db *gorm.DB
}

func NewImageRepository(db *gorm.DB) *ImageRepository {
	return &ImageRepository{db: db}
}

func (r *ImageRepository) Create(image *models.Image) (*models.Image, error) {
	if err := r.db.Create(image).Error; err != nil {
		return nil, err
	}
	return image, nil
}

// GetByID returns (nil, nil) when no image exists with the given id.
func (r *ImageRepository) GetByID(id uint) (*models.Image, error) {
	var image models.Image
	err := r.db.First(&image, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &image, nil
}

func (r *ImageRepository) Delete(id uint) error {
	return r.db.Delete(&models.Image{}, id).Error
}

// SetAlbum reassigns an image; a nil albumID leaves it unassigned.
func (r *ImageRepository) SetAlbum(id uint, albumID *uint) error {
	return r.db.Model(&models.Image{}).Where("id = ?", id).
		Update("album_id", albumID).Error
}

// ClearAlbum unsets album_id on every image in the album. Used when an album
// is deleted so images never point at a missing album.
func (r *ImageRepository) ClearAlbum(albumID uint) error {
	return r.db.Model(&models.Image{}).Where("album_id = ?", albumID).
		Update("album_id", nil).Error
}

func (r *ImageRepository) ListByEvent(eventID uint, offset, limit int) ([]models.Image, int64, error) {
	var images []models.Image
	var total int64

	query := r.db.Model(&models.Image{}).Where("event_id = ?", eventID)
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	err := query.Order("uploaded_at DESC").Offset(offset).Limit(limit).Find(&images).Error
	return images, total, err
}

func (r *ImageRepository) ListByAlbum(albumID uint, offset, limit int) ([]models.Image, int64, error) {
	var images []models.Image
	var total int64

	query := r.db.Model(&models.Image{}).Where("album_id = ?", albumID)
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	err := query.Order("uploaded_at DESC").Offset(offset).Limit(limit).Find(&images).Error
	return images, total, err
}
