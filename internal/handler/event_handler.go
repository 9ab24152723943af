package handler

import (
	"github.com/gofiber/fiber/v2"

	"github.com/bestmoments/bestmoments-backend/internal/models"
	"github.com/bestmoments/bestmoments-backend/internal/service"
	"github.com/bestmoments/bestmoments-backend/pkg/apperror"
	"github.com/bestmoments/bestmoments-backend/pkg/utils"
)

type EventHandler struct {
	eventService *service.EventService
	validator    *utils.Validator
}

func NewEventHandler(eventService *service.EventService, validator *utils.Validator) *EventHandler {
	return &EventHandler{
		eventService: eventService,
		validator:    validator,
	}
}

func (h *EventHandler) CreateEvent(c *fiber.Ctx) error {
	var req models.EventRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid request body"))
	}

	if err := h.validator.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse(err.Error()))
	}

	event, err := h.eventService.CreateEvent(c.Context(), req)
	if err != nil {
		return handleError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(models.SuccessResponse(event, "Event created successfully"))
}

func (h *EventHandler) GetEvent(c *fiber.Ctx) error {
	id, ok := parseID(c, "id")
	if !ok {
		return handleError(c, apperror.NewNotFound("Event not found"))
	}

	event, err := h.eventService.GetEvent(id)
	if err != nil {
		return handleError(c, err)
	}

	return c.JSON(models.SuccessResponse(event, "Event retrieved successfully"))
}

func (h *EventHandler) GetEventByCode(c *fiber.Ctx) error {
	event, err := h.eventService.GetEventByCode(c.Params("code"))
	if err != nil {
		return handleError(c, err)
	}

	return c.JSON(models.SuccessResponse(event, "Event retrieved successfully"))
}

func (h *EventHandler) UpdateEvent(c *fiber.Ctx) error {
	id, ok := parseID(c, "id")
	if !ok {
		return handleError(c, apperror.NewNotFound("Event not found"))
	}

	var req models.UpdateEventRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid request body"))
	}

	if err := h.validator.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse(err.Error()))
	}

	event, err := h.eventService.UpdateEvent(id, req)
	if err != nil {
		return handleError(c, err)
	}

	return c.JSON(models.SuccessResponse(event, "Event updated successfully"))
}

func (h *EventHandler) DeleteEvent(c *fiber.Ctx) error {
	id, ok := parseID(c, "id")
	if !ok {
		return handleError(c, apperror.NewNotFound("Event not found"))
	}

	if err := h.eventService.DeleteEvent(id); err != nil {
		return handleError(c, err)
	}

	return c.JSON(models.SuccessResponse(nil, "Event deleted successfully"))
}

func (h *EventHandler) ListEvents(c *fiber.Ctx) error {
	page, limit := parsePagination(c, 20)

	var (
		events []models.Event
		total  int64
		err    error
	)
	if phone := c.Query("host_phone"); phone != "" {
		events, total, err = h.eventService.ListEventsByHost(phone, page, limit)
	} else {
		events, total, err = h.eventService.ListEvents(page, limit)
	}
	if err != nil {
		return handleError(c, err)
	}

	return c.JSON(models.PaginatedResponse(events, page, limit, total))
}
