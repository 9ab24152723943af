package service

import (
	"bytes"
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/bestmoments/bestmoments-backend/internal/models"
	"github.com/bestmoments/bestmoments-backend/pkg/apperror"
	"github.com/bestmoments/bestmoments-backend/pkg/email"
	"github.com/bestmoments/bestmoments-backend/pkg/qrcode"
	"github.com/bestmoments/bestmoments-backend/pkg/storage"
)

const usageBumpAttempts = 3

type EventService struct {
	eventRepo    EventRepository
	templateRepo TemplateRepository
	blobStorage  storage.BlobStorage
	codes        *CodeGenerator
	notifier     EventNotifier
	frontendURL  string
	logger       *zap.Logger
}

func NewEventService(
	eventRepo EventRepository,
	templateRepo TemplateRepository,
	blobStorage storage.BlobStorage,
	notifier EventNotifier,
	frontendURL string,
	logger *zap.Logger,
) *EventService {
	return &EventService{
		eventRepo:    eventRepo,
		templateRepo: templateRepo,
		blobStorage:  blobStorage,
		codes:        NewCodeGenerator(eventRepo),
		notifier:     notifier,
		frontendURL:  frontendURL,
		logger:       logger,
	}
}

// CreateEvent runs the full creation workflow: template lookup, unique code,
// QR and template rendering, blob uploads, then the event row. The blobs are
// stored before the row so the persisted URLs never dangle; the reverse is not
// guaranteed, so a failure after the uploads leaves orphaned blobs behind.
func (s *EventService) CreateEvent(ctx context.Context, req models.EventRequest) (*models.Event, error) {
	template, err := s.templateRepo.GetByID(req.TemplateID)
	if err != nil {
		return nil, err
	}
	if template == nil {
		return nil, apperror.NewNotFound("Template not found")
	}

	code, err := s.codes.Generate()
	if err != nil {
		return nil, err
	}

	// Guest-facing URL; the QR encodes it and the printable template embeds
	// the QR, so both depend on the code existing first.
	eventURL := fmt.Sprintf("%s/event/%s", s.frontendURL, code)

	qrPNG, err := qrcode.GenerateQRCode(eventURL, qrcode.QRSize)
	if err != nil {
		return nil, apperror.NewInternal("Failed to generate QR code", err)
	}
	qrKey := storage.GenerateKey("qr_codes", code, "qr_code.png")
	qrURL, err := s.blobStorage.Upload(ctx, qrKey, bytes.NewReader(qrPNG), "image/png")
	if err != nil {
		return nil, apperror.NewInternal("Failed to upload QR code", err)
	}

	templatePNG, err := qrcode.GenerateEventTemplate(
		req.EventName,
		req.EventDate.Format("January 2, 2006"),
		code,
		eventURL,
		req.EventType,
	)
	if err != nil {
		return nil, apperror.NewInternal("Failed to generate event template", err)
	}
	templateKey := storage.GenerateKey("templates", code, "template.png")
	templateURL, err := s.blobStorage.Upload(ctx, templateKey, bytes.NewReader(templatePNG), "image/png")
	if err != nil {
		return nil, apperror.NewInternal("Failed to upload event template", err)
	}

	event := &models.Event{
		EventName:        req.EventName,
		EventType:        req.EventType,
		EventDate:        req.EventDate,
		HostName:         req.HostName,
		HostPhone:        req.HostPhone,
		HostEmail:        req.HostEmail,
		Location:         req.Location,
		Description:      req.Description,
		TemplateID:       req.TemplateID,
		EventCode:        code,
		QRCodeURL:        qrURL,
		TemplateImageURL: templateURL,
		IsActive:         true,
		TotalImages:      0,
	}

	created, err := s.eventRepo.Create(event)
	if err != nil {
		return nil, err
	}

	// Best-effort post-actions: the event is already usable, so neither a
	// failed usage bump nor a failed email invalidates it.
	s.recordTemplateUsage(req.TemplateID)
	s.notifyHost(created, eventURL)

	return created, nil
}

func (s *EventService) GetEvent(id uint) (*models.Event, error) {
	event, err := s.eventRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if event == nil {
		return nil, apperror.NewNotFound("Event not found")
	}
	return event, nil
}

func (s *EventService) GetEventByCode(code string) (*models.Event, error) {
	event, err := s.eventRepo.GetByCode(code)
	if err != nil {
		return nil, err
	}
	if event == nil {
		return nil, apperror.NewNotFound("Event not found")
	}
	return event, nil
}

func (s *EventService) UpdateEvent(id uint, req models.UpdateEventRequest) (*models.Event, error) {
	event, err := s.eventRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if event == nil {
		return nil, apperror.NewNotFound("Event not found")
	}

	fields := map[string]interface{}{}
	if req.EventName != nil {
		fields["event_name"] = *req.EventName
	}
	if req.EventType != nil {
		fields["event_type"] = *req.EventType
	}
	if req.EventDate != nil {
		fields["event_date"] = *req.EventDate
	}
	if req.HostName != nil {
		fields["host_name"] = *req.HostName
	}
	if req.HostPhone != nil {
		fields["host_phone"] = *req.HostPhone
	}
	if req.HostEmail != nil {
		fields["host_email"] = *req.HostEmail
	}
	if req.Location != nil {
		fields["location"] = *req.Location
	}
	if req.Description != nil {
		fields["description"] = *req.Description
	}

	if len(fields) > 0 {
		if err := s.eventRepo.Update(id, fields); err != nil {
			return nil, err
		}
	}

	return s.GetEvent(id)
}

// DeleteEvent deactivates the event. Events are never physically removed, so
// their codes stay reserved forever.
func (s *EventService) DeleteEvent(id uint) error {
	event, err := s.eventRepo.GetByID(id)
	if err != nil {
		return err
	}
	if event == nil {
		return apperror.NewNotFound("Event not found")
	}
	return s.eventRepo.Update(id, map[string]interface{}{"is_active": false})
}

func (s *EventService) ListEvents(page, limit int) ([]models.Event, int64, error) {
	return s.eventRepo.ListActive((page-1)*limit, limit)
}

func (s *EventService) ListEventsByHost(phone string, page, limit int) ([]models.Event, int64, error) {
	return s.eventRepo.ListByHostPhone(phone, (page-1)*limit, limit)
}

func (s *EventService) recordTemplateUsage(templateID uint) {
	var err error
	for i := 0; i < usageBumpAttempts; i++ {
		if err = s.templateRepo.IncrementUsageCount(templateID); err == nil {
			return
		}
	}
	s.logger.Warn("failed to record template usage",
		zap.Uint("template_id", templateID),
		zap.Error(err),
	)
}

func (s *EventService) notifyHost(event *models.Event, guestURL string) {
	if s.notifier == nil || event.HostEmail == "" {
		return
	}
	err := s.notifier.SendEventReadyEmail(event.HostEmail, email.EventReadyData{
		HostName:    event.HostName,
		EventName:   event.EventName,
		EventCode:   event.EventCode,
		GuestURL:    guestURL,
		QRCodeURL:   event.QRCodeURL,
		TemplateURL: event.TemplateImageURL,
	})
	if err != nil {
		s.logger.Warn("failed to send event ready email",
			zap.Uint("event_id", event.ID),
			zap.Error(err),
		)
	}
}
