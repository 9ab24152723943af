package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/bestmoments/bestmoments-backend/internal/models"
	"github.com/bestmoments/bestmoments-backend/pkg/apperror"
)

const testFrontendURL = "https://bestmoments.test"

const codeAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

func newTestEventService(eventRepo *fakeEventRepo, templateRepo *fakeTemplateRepo, blob *fakeBlobStorage, notifier EventNotifier) *EventService {
	return NewEventService(eventRepo, templateRepo, blob, notifier, testFrontendURL, zap.NewNop())
}

func seedTemplate(t *testing.T, repo *fakeTemplateRepo) *models.Template {
	t.Helper()
	template, err := repo.Create(&models.Template{
		Name:       "Elegant Wedding",
		EventType:  models.EventTypeWedding,
		PreviewURL: "https://cdn.test/previews/elegant.png",
		IsActive:   true,
	})
	require.NoError(t, err)
	return template
}

func eventRequest(templateID uint) models.EventRequest {
	return models.EventRequest{
		EventName:  "Asha & Rahul",
		EventType:  models.EventTypeWedding,
		EventDate:  time.Date(2026, time.November, 21, 0, 0, 0, 0, time.UTC),
		HostName:   "Rahul Mehta",
		HostPhone:  "+14155550101",
		TemplateID: templateID,
	}
}

func TestCreateEvent(t *testing.T) {
	eventRepo := newFakeEventRepo()
	templateRepo := newFakeTemplateRepo()
	blob := newFakeBlobStorage()
	template := seedTemplate(t, templateRepo)

	svc := newTestEventService(eventRepo, templateRepo, blob, nil)

	event, err := svc.CreateEvent(context.Background(), eventRequest(template.ID))
	require.NoError(t, err)

	assert.Len(t, event.EventCode, 8)
	for _, r := range event.EventCode {
		assert.Contains(t, codeAlphabet, string(r))
	}
	assert.True(t, event.IsActive)
	assert.Equal(t, 0, event.TotalImages)
	assert.True(t, strings.HasPrefix(event.QRCodeURL, "https://cdn.test/qr_codes/"+event.EventCode+"/"))
	assert.True(t, strings.HasPrefix(event.TemplateImageURL, "https://cdn.test/templates/"+event.EventCode+"/"))

	// both blobs stored before the event row referenced them
	assert.Len(t, blob.uploads, 2)

	stored, err := templateRepo.GetByID(template.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, stored.UsageCount)
}

func TestCreateEventTemplateNotFound(t *testing.T) {
	svc := newTestEventService(newFakeEventRepo(), newFakeTemplateRepo(), newFakeBlobStorage(), nil)

	_, err := svc.CreateEvent(context.Background(), eventRequest(99))
	assert.True(t, apperror.IsNotFound(err))
}

func TestCreateEventRetriesOnCodeCollision(t *testing.T) {
	eventRepo := newFakeEventRepo()
	eventRepo.codeChecks = []bool{true, true, false}
	templateRepo := newFakeTemplateRepo()
	template := seedTemplate(t, templateRepo)

	svc := newTestEventService(eventRepo, templateRepo, newFakeBlobStorage(), nil)

	event, err := svc.CreateEvent(context.Background(), eventRequest(template.ID))
	require.NoError(t, err)
	assert.Len(t, event.EventCode, 8)
	assert.Equal(t, 3, eventRepo.checkCalls)
}

func TestCreateEventCodeRetriesExhausted(t *testing.T) {
	eventRepo := newFakeEventRepo()
	for i := 0; i < maxCodeAttempts; i++ {
		eventRepo.codeChecks = append(eventRepo.codeChecks, true)
	}
	templateRepo := newFakeTemplateRepo()
	template := seedTemplate(t, templateRepo)

	svc := newTestEventService(eventRepo, templateRepo, newFakeBlobStorage(), nil)

	_, err := svc.CreateEvent(context.Background(), eventRequest(template.ID))
	require.Error(t, err)
	var appErr *apperror.Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 500, appErr.Status)
	assert.Equal(t, maxCodeAttempts, eventRepo.checkCalls)
}

func TestCreateEventUsageBumpFailureIsNonFatal(t *testing.T) {
	eventRepo := newFakeEventRepo()
	templateRepo := newFakeTemplateRepo()
	template := seedTemplate(t, templateRepo)
	templateRepo.bumpErr = errors.New("write conflict")

	svc := newTestEventService(eventRepo, templateRepo, newFakeBlobStorage(), nil)

	event, err := svc.CreateEvent(context.Background(), eventRequest(template.ID))
	require.NoError(t, err)
	assert.NotZero(t, event.ID)
	assert.Equal(t, usageBumpAttempts, templateRepo.bumpCalls)
}

func TestCreateEventUploadFailure(t *testing.T) {
	eventRepo := newFakeEventRepo()
	templateRepo := newFakeTemplateRepo()
	template := seedTemplate(t, templateRepo)
	blob := newFakeBlobStorage()
	blob.uploadErr = errStorage

	svc := newTestEventService(eventRepo, templateRepo, blob, nil)

	_, err := svc.CreateEvent(context.Background(), eventRequest(template.ID))
	require.Error(t, err)
	var appErr *apperror.Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 500, appErr.Status)
	// nothing persisted when the workflow fails before the event row
	assert.Empty(t, eventRepo.events)
	assert.Zero(t, templateRepo.bumpCalls)
}

func TestCreateEventNotifiesHost(t *testing.T) {
	eventRepo := newFakeEventRepo()
	templateRepo := newFakeTemplateRepo()
	template := seedTemplate(t, templateRepo)
	notifier := &fakeNotifier{}

	svc := newTestEventService(eventRepo, templateRepo, newFakeBlobStorage(), notifier)

	req := eventRequest(template.ID)
	req.HostEmail = "rahul@example.com"
	event, err := svc.CreateEvent(context.Background(), req)
	require.NoError(t, err)

	require.Len(t, notifier.sent, 1)
	assert.Equal(t, event.EventCode, notifier.sent[0].EventCode)
	assert.Equal(t, testFrontendURL+"/event/"+event.EventCode, notifier.sent[0].GuestURL)
}

func TestCreateEventNotifyFailureIsNonFatal(t *testing.T) {
	eventRepo := newFakeEventRepo()
	templateRepo := newFakeTemplateRepo()
	template := seedTemplate(t, templateRepo)
	notifier := &fakeNotifier{err: errors.New("smtp down")}

	svc := newTestEventService(eventRepo, templateRepo, newFakeBlobStorage(), notifier)

	req := eventRequest(template.ID)
	req.HostEmail = "rahul@example.com"
	_, err := svc.CreateEvent(context.Background(), req)
	assert.NoError(t, err)
}

func TestGetEventByCode(t *testing.T) {
	eventRepo := newFakeEventRepo()
	templateRepo := newFakeTemplateRepo()
	template := seedTemplate(t, templateRepo)

	svc := newTestEventService(eventRepo, templateRepo, newFakeBlobStorage(), nil)

	created, err := svc.CreateEvent(context.Background(), eventRequest(template.ID))
	require.NoError(t, err)

	found, err := svc.GetEventByCode(created.EventCode)
	require.NoError(t, err)
	assert.Equal(t, created.ID, found.ID)

	_, err = svc.GetEventByCode("NOPE0000")
	assert.True(t, apperror.IsNotFound(err))
}

func TestDeleteEventIsSoft(t *testing.T) {
	eventRepo := newFakeEventRepo()
	templateRepo := newFakeTemplateRepo()
	template := seedTemplate(t, templateRepo)

	svc := newTestEventService(eventRepo, templateRepo, newFakeBlobStorage(), nil)

	created, err := svc.CreateEvent(context.Background(), eventRequest(template.ID))
	require.NoError(t, err)

	require.NoError(t, svc.DeleteEvent(created.ID))

	// row survives with is_active=false; its code stays reserved
	stored, err := eventRepo.GetByID(created.ID)
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.False(t, stored.IsActive)

	exists, err := eventRepo.CodeExists(created.EventCode)
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestUpdateEventPartial(t *testing.T) {
	eventRepo := newFakeEventRepo()
	templateRepo := newFakeTemplateRepo()
	template := seedTemplate(t, templateRepo)

	svc := newTestEventService(eventRepo, templateRepo, newFakeBlobStorage(), nil)

	created, err := svc.CreateEvent(context.Background(), eventRequest(template.ID))
	require.NoError(t, err)

	name := "Asha & Rahul Reception"
	updated, err := svc.UpdateEvent(created.ID, models.UpdateEventRequest{EventName: &name})
	require.NoError(t, err)
	assert.Equal(t, name, updated.EventName)
	assert.Equal(t, created.HostPhone, updated.HostPhone)
}
