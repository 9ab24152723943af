package service

import (
	"github.com/bestmoments/bestmoments-backend/internal/models"
	"github.com/bestmoments/bestmoments-backend/pkg/apperror"
)

type AlbumService struct {
	albumRepo AlbumRepository
	eventRepo EventRepository
	imageRepo ImageRepository
}

func NewAlbumService(albumRepo AlbumRepository, eventRepo EventRepository, imageRepo ImageRepository) *AlbumService {
	return &AlbumService{
		albumRepo: albumRepo,
		eventRepo: eventRepo,
		imageRepo: imageRepo,
	}
}

func (s *AlbumService) CreateAlbum(req models.AlbumRequest) (*models.Album, error) {
	event, err := s.eventRepo.GetByID(req.EventID)
	if err != nil {
		return nil, err
	}
	if event == nil {
		return nil, apperror.NewNotFound("Event not found")
	}

	album := &models.Album{
		Name:        req.Name,
		Description: req.Description,
		EventID:     req.EventID,
		ImageCount:  0,
	}
	return s.albumRepo.Create(album)
}

func (s *AlbumService) GetAlbum(id uint) (*models.Album, error) {
	album, err := s.albumRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if album == nil {
		return nil, apperror.NewNotFound("Album not found")
	}
	return album, nil
}

func (s *AlbumService) UpdateAlbum(id uint, req models.UpdateAlbumRequest) (*models.Album, error) {
	album, err := s.albumRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if album == nil {
		return nil, apperror.NewNotFound("Album not found")
	}

	fields := map[string]interface{}{}
	if req.Name != nil {
		fields["name"] = *req.Name
	}
	if req.Description != nil {
		fields["description"] = *req.Description
	}

	if len(fields) > 0 {
		if err := s.albumRepo.Update(id, fields); err != nil {
			return nil, err
		}
	}

	return s.GetAlbum(id)
}

// DeleteAlbum hard-deletes the album after unassigning its images, so no image
// is left referencing a missing album. Event counters are untouched: the
// images still belong to the event.
func (s *AlbumService) DeleteAlbum(id uint) error {
	album, err := s.albumRepo.GetByID(id)
	if err != nil {
		return err
	}
	if album == nil {
		return apperror.NewNotFound("Album not found")
	}

	if err := s.imageRepo.ClearAlbum(id); err != nil {
		return err
	}
	return s.albumRepo.Delete(id)
}

func (s *AlbumService) ListAlbumsByEvent(eventID uint, page, limit int) ([]models.Album, int64, error) {
	event, err := s.eventRepo.GetByID(eventID)
	if err != nil {
		return nil, 0, err
	}
	if event == nil {
		return nil, 0, apperror.NewNotFound("Event not found")
	}
	return s.albumRepo.ListByEvent(eventID, (page-1)*limit, limit)
}
