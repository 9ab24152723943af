package handler

import (
	"github.com/gofiber/fiber/v2"

	"github.com/bestmoments/bestmoments-backend/internal/models"
	"github.com/bestmoments/bestmoments-backend/internal/service"
	"github.com/bestmoments/bestmoments-backend/pkg/apperror"
	"github.com/bestmoments/bestmoments-backend/pkg/utils"
)

type AlbumHandler struct {
	albumService *service.AlbumService
	validator    *utils.Validator
}

func NewAlbumHandler(albumService *service.AlbumService, validator *utils.Validator) *AlbumHandler {
	return &AlbumHandler{
		albumService: albumService,
		validator:    validator,
	}
}

func (h *AlbumHandler) CreateAlbum(c *fiber.Ctx) error {
	var req models.AlbumRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid request body"))
	}

	if err := h.validator.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse(err.Error()))
	}

	album, err := h.albumService.CreateAlbum(req)
	if err != nil {
		return handleError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(models.SuccessResponse(album, "Album created successfully"))
}

func (h *AlbumHandler) GetAlbum(c *fiber.Ctx) error {
	id, ok := parseID(c, "id")
	if !ok {
		return handleError(c, apperror.NewNotFound("Album not found"))
	}

	album, err := h.albumService.GetAlbum(id)
	if err != nil {
		return handleError(c, err)
	}

	return c.JSON(models.SuccessResponse(album, "Album retrieved successfully"))
}

func (h *AlbumHandler) UpdateAlbum(c *fiber.Ctx) error {
	id, ok := parseID(c, "id")
	if !ok {
		return handleError(c, apperror.NewNotFound("Album not found"))
	}

	var req models.UpdateAlbumRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid request body"))
	}

	if err := h.validator.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse(err.Error()))
	}

	album, err := h.albumService.UpdateAlbum(id, req)
	if err != nil {
		return handleError(c, err)
	}

	return c.JSON(models.SuccessResponse(album, "Album updated successfully"))
}

func (h *AlbumHandler) DeleteAlbum(c *fiber.Ctx) error {
	id, ok := parseID(c, "id")
	if !ok {
		return handleError(c, apperror.NewNotFound("Album not found"))
	}

	if err := h.albumService.DeleteAlbum(id); err != nil {
		return handleError(c, err)
	}

	return c.JSON(models.SuccessResponse(nil, "Album deleted successfully"))
}

func (h *AlbumHandler) ListAlbumsByEvent(c *fiber.Ctx) error {
	eventID, ok := parseID(c, "eventId")
	if !ok {
		return handleError(c, apperror.NewNotFound("Event not found"))
	}

	page, limit := parsePagination(c, 20)

	albums, total, err := h.albumService.ListAlbumsByEvent(eventID, page, limit)
	if err != nil {
		return handleError(c, err)
	}

	return c.JSON(models.PaginatedResponse(albums, page, limit, total))
}
