package service

import (
	"context"
	"io"
	"path"
	"strconv"

	"github.com/bestmoments/bestmoments-backend/internal/models"
	"github.com/bestmoments/bestmoments-backend/pkg/apperror"
	"github.com/bestmoments/bestmoments-backend/pkg/storage"
)

type ImageService struct {
	imageRepo   ImageRepository
	eventRepo   EventRepository
	albumRepo   AlbumRepository
	blobStorage storage.BlobStorage
}

func NewImageService(
	imageRepo ImageRepository,
	eventRepo EventRepository,
	albumRepo AlbumRepository,
	blobStorage storage.BlobStorage,
) *ImageService {
	return &ImageService{
		imageRepo:   imageRepo,
		eventRepo:   eventRepo,
		albumRepo:   albumRepo,
		blobStorage: blobStorage,
	}
}

type UploadImageInput struct {
	EventID    uint
	AlbumID    *uint
	Reader     io.Reader
	FileName   string
	FileSize   int64
	MimeType   string
	UploadedBy string
}

// UploadImage stores the blob, creates the image row, then bumps the event and
// album counters. Each counter mutation is a single atomic increment, applied
// only after the row is durably created; a crash in between leaves counters
// transiently low rather than over-counted.
func (s *ImageService) UploadImage(ctx context.Context, input UploadImageInput) (*models.Image, error) {
	event, err := s.eventRepo.GetByID(input.EventID)
	if err != nil {
		return nil, err
	}
	if event == nil {
		return nil, apperror.NewNotFound("Event not found")
	}

	if input.AlbumID != nil {
		album, err := s.albumRepo.GetByID(*input.AlbumID)
		if err != nil {
			return nil, err
		}
		if album == nil {
			return nil, apperror.NewNotFound("Album not found")
		}
		if album.EventID != input.EventID {
			return nil, apperror.NewValidation("Album does not belong to this event")
		}
	}

	key := storage.GenerateKey("images", strconv.FormatUint(uint64(input.EventID), 10), input.FileName)
	url, err := s.blobStorage.Upload(ctx, key, input.Reader, input.MimeType)
	if err != nil {
		return nil, apperror.NewInternal("Failed to upload image", err)
	}

	image := &models.Image{
		FileName:         path.Base(key),
		OriginalFileName: input.FileName,
		FileSize:         input.FileSize,
		MimeType:         input.MimeType,
		EventID:          input.EventID,
		AlbumID:          input.AlbumID,
		StorageKey:       key,
		PublicURL:        url,
		UploadedBy:       input.UploadedBy,
	}

	created, err := s.imageRepo.Create(image)
	if err != nil {
		return nil, err
	}

	if err := s.eventRepo.IncrementTotalImages(input.EventID, 1); err != nil {
		return nil, err
	}
	if input.AlbumID != nil {
		if err := s.albumRepo.IncrementImageCount(*input.AlbumID, 1); err != nil {
			return nil, err
		}
	}

	return created, nil
}

func (s *ImageService) GetImage(id uint) (*models.Image, error) {
	image, err := s.imageRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if image == nil {
		return nil, apperror.NewNotFound("Image not found")
	}
	return image, nil
}

// DeleteImage removes the blob first, then decrements counters and deletes the
// row last. Blob deletes are idempotent, so a retried delete after a crash is
// safe even if the blob is already gone.
func (s *ImageService) DeleteImage(ctx context.Context, id uint) error {
	image, err := s.imageRepo.GetByID(id)
	if err != nil {
		return err
	}
	if image == nil {
		return apperror.NewNotFound("Image not found")
	}

	if err := s.blobStorage.Delete(ctx, image.StorageKey); err != nil {
		return apperror.NewInternal("Failed to delete image from storage", err)
	}

	if err := s.eventRepo.IncrementTotalImages(image.EventID, -1); err != nil {
		return err
	}
	if image.AlbumID != nil {
		if err := s.albumRepo.IncrementImageCount(*image.AlbumID, -1); err != nil {
			return err
		}
	}

	return s.imageRepo.Delete(id)
}

// MoveImage reassigns an image to another album, or unassigns it when albumID
// is nil. Moving to the current album is a no-op so counters cannot drift.
func (s *ImageService) MoveImage(id uint, albumID *uint) (*models.Image, error) {
	image, err := s.imageRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if image == nil {
		return nil, apperror.NewNotFound("Image not found")
	}

	if albumID != nil {
		album, err := s.albumRepo.GetByID(*albumID)
		if err != nil {
			return nil, err
		}
		if album == nil {
			return nil, apperror.NewNotFound("Album not found")
		}
		if album.EventID != image.EventID {
			return nil, apperror.NewValidation("Album does not belong to the same event")
		}
	}

	if sameAlbum(image.AlbumID, albumID) {
		return image, nil
	}

	oldAlbumID := image.AlbumID
	if err := s.imageRepo.SetAlbum(id, albumID); err != nil {
		return nil, err
	}

	if oldAlbumID != nil {
		if err := s.albumRepo.IncrementImageCount(*oldAlbumID, -1); err != nil {
			return nil, err
		}
	}
	if albumID != nil {
		if err := s.albumRepo.IncrementImageCount(*albumID, 1); err != nil {
			return nil, err
		}
	}

	return s.GetImage(id)
}

func (s *ImageService) ListImagesByEvent(eventID uint, page, limit int) ([]models.Image, int64, error) {
	event, err := s.eventRepo.GetByID(eventID)
	if err != nil {
		return nil, 0, err
	}
	if event == nil {
		return nil, 0, apperror.NewNotFound("Event not found")
	}
	return s.imageRepo.ListByEvent(eventID, (page-1)*limit, limit)
}

func (s *ImageService) ListImagesByAlbum(albumID uint, page, limit int) ([]models.Image, int64, error) {
	album, err := s.albumRepo.GetByID(albumID)
	if err != nil {
		return nil, 0, err
	}
	if album == nil {
		return nil, 0, apperror.NewNotFound("Album not found")
	}
	return s.imageRepo.ListByAlbum(albumID, (page-1)*limit, limit)
}

func sameAlbum(a, b *uint) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}
