package service

import (
	"github.com/bestmoments/bestmoments-backend/internal/models"
	"github.com/bestmoments/bestmoments-backend/pkg/email"
)

// Repository interfaces are declared on the consumer side; the GORM
// implementations live in internal/repository.

type EventRepository interface {
	Create(event *models.Event) (*models.Event, error)
	GetByID(id uint) (*models.Event, error)
	GetByCode(code string) (*models.Event, error)
	CodeExists(code string) (bool, error)
	Update(id uint, fields map[string]interface{}) error
	ListActive(offset, limit int) ([]models.Event, int64, error)
	ListByHostPhone(phone string, offset, limit int) ([]models.Event, int64, error)
	IncrementTotalImages(id uint, delta int) error
}

type AlbumRepository interface {
	Create(album *models.Album) (*models.Album, error)
	GetByID(id uint) (*models.Album, error)
	Update(id uint, fields map[string]interface{}) error
	Delete(id uint) error
	ListByEvent(eventID uint, offset, limit int) ([]models.Album, int64, error)
	IncrementImageCount(id uint, delta int) error
}

type ImageRepository interface {
	Create(image *models.Image) (*models.Image, error)
	GetByID(id uint) (*models.Image, error)
	Delete(id uint) error
	SetAlbum(id uint, albumID *uint) error
	ClearAlbum(albumID uint) error
	ListByEvent(eventID uint, offset, limit int) ([]models.Image, int64, error)
	ListByAlbum(albumID uint, offset, limit int) ([]models.Image, int64, error)
}

type TemplateRepository interface {
	Create(template *models.Template) (*models.Template, error)
	GetByID(id uint) (*models.Template, error)
	Update(id uint, fields map[string]interface{}) error
	ListActive(eventType string, offset, limit int) ([]models.Template, int64, error)
	IncrementUsageCount(id uint) error
}

// EventNotifier delivers the best-effort host notification after an event is
// created. A nil notifier disables it.
type EventNotifier interface {
	SendEventReadyEmail(to string, data email.EventReadyData) error
}
