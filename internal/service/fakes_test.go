package service

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/bestmoments/bestmoments-backend/internal/models"
	"github.com/bestmoments/bestmoments-backend/pkg/email"
)

type fakeEventRepo struct {
	events     map[uint]*models.Event
	nextID     uint
	codeChecks []bool // queued CodeExists results; empty falls back to the map
	checkCalls int
	checkErr   error
}

func newFakeEventRepo() *fakeEventRepo {
	return &fakeEventRepo{events: map[uint]*models.Event{}}
}

func (r *fakeEventRepo) Create(event *models.Event) (*models.Event, error) {
	r.nextID++
	event.ID = r.nextID
	stored := *event
	r.events[event.ID] = &stored
	return event, nil
}

func (r *fakeEventRepo) GetByID(id uint) (*models.Event, error) {
	event, ok := r.events[id]
	if !ok {
		return nil, nil
	}
	copied := *event
	return &copied, nil
}

func (r *fakeEventRepo) GetByCode(code string) (*models.Event, error) {
	for _, event := range r.events {
		if event.EventCode == code {
			copied := *event
			return &copied, nil
		}
	}
	return nil, nil
}

func (r *fakeEventRepo) CodeExists(code string) (bool, error) {
	r.checkCalls++
	if r.checkErr != nil {
		return false, r.checkErr
	}
	if len(r.codeChecks) > 0 {
		result := r.codeChecks[0]
		r.codeChecks = r.codeChecks[1:]
		return result, nil
	}
	for _, event := range r.events {
		if event.EventCode == code {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeEventRepo) Update(id uint, fields map[string]interface{}) error {
	event, ok := r.events[id]
	if !ok {
		return nil
	}
	if v, ok := fields["event_name"]; ok {
		event.EventName = v.(string)
	}
	if v, ok := fields["location"]; ok {
		event.Location = v.(string)
	}
	if v, ok := fields["is_active"]; ok {
		event.IsActive = v.(bool)
	}
	return nil
}

func (r *fakeEventRepo) ListActive(offset, limit int) ([]models.Event, int64, error) {
	var active []models.Event
	for _, event := range r.events {
		if event.IsActive {
			active = append(active, *event)
		}
	}
	return paginate(active, offset, limit), int64(len(active)), nil
}

func (r *fakeEventRepo) ListByHostPhone(phone string, offset, limit int) ([]models.Event, int64, error) {
	var matched []models.Event
	for _, event := range r.events {
		if event.HostPhone == phone {
			matched = append(matched, *event)
		}
	}
	return paginate(matched, offset, limit), int64(len(matched)), nil
}

func (r *fakeEventRepo) IncrementTotalImages(id uint, delta int) error {
	if event, ok := r.events[id]; ok {
		event.TotalImages += delta
	}
	return nil
}

type fakeAlbumRepo struct {
	albums map[uint]*models.Album
	nextID uint
}

func newFakeAlbumRepo() *fakeAlbumRepo {
	return &fakeAlbumRepo{albums: map[uint]*models.Album{}}
}

func (r *fakeAlbumRepo) Create(album *models.Album) (*models.Album, error) {
	r.nextID++
	album.ID = r.nextID
	stored := *album
	r.albums[album.ID] = &stored
	return album, nil
}

func (r *fakeAlbumRepo) GetByID(id uint) (*models.Album, error) {
	album, ok := r.albums[id]
	if !ok {
		return nil, nil
	}
	copied := *album
	return &copied, nil
}

func (r *fakeAlbumRepo) Update(id uint, fields map[string]interface{}) error {
	album, ok := r.albums[id]
	if !ok {
		return nil
	}
	if v, ok := fields["name"]; ok {
		album.Name = v.(string)
	}
	if v, ok := fields["description"]; ok {
		album.Description = v.(string)
	}
	return nil
}

func (r *fakeAlbumRepo) Delete(id uint) error {
	delete(r.albums, id)
	return nil
}

func (r *fakeAlbumRepo) ListByEvent(eventID uint, offset, limit int) ([]models.Album, int64, error) {
	var matched []models.Album
	for _, album := range r.albums {
		if album.EventID == eventID {
			matched = append(matched, *album)
		}
	}
	return paginate(matched, offset, limit), int64(len(matched)), nil
}

func (r *fakeAlbumRepo) IncrementImageCount(id uint, delta int) error {
	if album, ok := r.albums[id]; ok {
		album.ImageCount += delta
	}
	return nil
}

type fakeImageRepo struct {
	images map[uint]*models.Image
	nextID uint
}

func newFakeImageRepo() *fakeImageRepo {
	return &fakeImageRepo{images: map[uint]*models.Image{}}
}

func (r *fakeImageRepo) Create(image *models.Image) (*models.Image, error) {
	r.nextID++
	image.ID = r.nextID
	stored := *image
	r.images[image.ID] = &stored
	return image, nil
}

func (r *fakeImageRepo) GetByID(id uint) (*models.Image, error) {
	image, ok := r.images[id]
	if !ok {
		return nil, nil
	}
	copied := *image
	return &copied, nil
}

func (r *fakeImageRepo) Delete(id uint) error {
	delete(r.images, id)
	return nil
}

func (r *fakeImageRepo) SetAlbum(id uint, albumID *uint) error {
	image, ok := r.images[id]
	if !ok {
		return nil
	}
	if albumID == nil {
		image.AlbumID = nil
	} else {
		copied := *albumID
		image.AlbumID = &copied
	}
	return nil
}

func (r *fakeImageRepo) ClearAlbum(albumID uint) error {
	for _, image := range r.images {
		if image.AlbumID != nil && *image.AlbumID == albumID {
			image.AlbumID = nil
		}
	}
	return nil
}

func (r *fakeImageRepo) ListByEvent(eventID uint, offset, limit int) ([]models.Image, int64, error) {
	var matched []models.Image
	for _, image := range r.images {
		if image.EventID == eventID {
			matched = append(matched, *image)
		}
	}
	return paginate(matched, offset, limit), int64(len(matched)), nil
}

func (r *fakeImageRepo) ListByAlbum(albumID uint, offset, limit int) ([]models.Image, int64, error) {
	var matched []models.Image
	for _, image := range r.images {
		if image.AlbumID != nil && *image.AlbumID == albumID {
			matched = append(matched, *image)
		}
	}
	return paginate(matched, offset, limit), int64(len(matched)), nil
}

type fakeTemplateRepo struct {
	templates map[uint]*models.Template
	nextID    uint
	bumpErr   error
	bumpCalls int
}

func newFakeTemplateRepo() *fakeTemplateRepo {
	return &fakeTemplateRepo{templates: map[uint]*models.Template{}}
}

func (r *fakeTemplateRepo) Create(template *models.Template) (*models.Template, error) {
	r.nextID++
	template.ID = r.nextID
	stored := *template
	r.templates[template.ID] = &stored
	return template, nil
}

func (r *fakeTemplateRepo) GetByID(id uint) (*models.Template, error) {
	template, ok := r.templates[id]
	if !ok {
		return nil, nil
	}
	copied := *template
	return &copied, nil
}

func (r *fakeTemplateRepo) Update(id uint, fields map[string]interface{}) error {
	template, ok := r.templates[id]
	if !ok {
		return nil
	}
	if v, ok := fields["is_active"]; ok {
		template.IsActive = v.(bool)
	}
	return nil
}

func (r *fakeTemplateRepo) ListActive(eventType string, offset, limit int) ([]models.Template, int64, error) {
	var matched []models.Template
	for _, template := range r.templates {
		if !template.IsActive {
			continue
		}
		if eventType != "" && template.EventType != eventType {
			continue
		}
		matched = append(matched, *template)
	}
	return paginate(matched, offset, limit), int64(len(matched)), nil
}

func (r *fakeTemplateRepo) IncrementUsageCount(id uint) error {
	r.bumpCalls++
	if r.bumpErr != nil {
		return r.bumpErr
	}
	if template, ok := r.templates[id]; ok {
		template.UsageCount++
	}
	return nil
}

type fakeBlobStorage struct {
	uploads   map[string][]byte
	deletes   []string
	uploadErr error
	deleteErr error
}

func newFakeBlobStorage() *fakeBlobStorage {
	return &fakeBlobStorage{uploads: map[string][]byte{}}
}

func (s *fakeBlobStorage) Upload(ctx context.Context, key string, reader io.Reader, contentType string) (string, error) {
	if s.uploadErr != nil {
		return "", s.uploadErr
	}
	data, err := io.ReadAll(reader)
	if err != nil {
		return "", err
	}
	s.uploads[key] = data
	return fmt.Sprintf("https://cdn.test/%s", key), nil
}

func (s *fakeBlobStorage) Delete(ctx context.Context, key string) error {
	if s.deleteErr != nil {
		return s.deleteErr
	}
	s.deletes = append(s.deletes, key)
	delete(s.uploads, key)
	return nil
}

type fakeNotifier struct {
	sent []email.EventReadyData
	err  error
}

func (n *fakeNotifier) SendEventReadyEmail(to string, data email.EventReadyData) error {
	if n.err != nil {
		return n.err
	}
	n.sent = append(n.sent, data)
	return nil
}

var errStorage = errors.New("storage unavailable")

func paginate[T any](items []T, offset, limit int) []T {
	if offset >= len(items) {
		return nil
	}
	end := offset + limit
	if end > len(items) {
		end = len(items)
	}
	return items[offset:end]
}
