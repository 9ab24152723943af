package handler

import (
	"fmt"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/bestmoments/bestmoments-backend/internal/models"
	"github.com/bestmoments/bestmoments-backend/internal/service"
	"github.com/bestmoments/bestmoments-backend/pkg/apperror"
	"github.com/bestmoments/bestmoments-backend/pkg/utils"
)

// maxUploadSize caps image uploads at 10 MiB.
const maxUploadSize = 10 * 1024 * 1024

type ImageHandler struct {
	imageService *service.ImageService
}

func NewImageHandler(imageService *service.ImageService) *ImageHandler {
	return &ImageHandler{imageService: imageService}
}

func (h *ImageHandler) UploadImage(c *fiber.Ctx) error {
	eventID, err := strconv.ParseUint(c.FormValue("event_id"), 10, 32)
	if err != nil {
		return handleError(c, apperror.NewNotFound("Event not found"))
	}

	var albumID *uint
	if raw := c.FormValue("album_id"); raw != "" {
		parsed, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			return handleError(c, apperror.NewNotFound("Album not found"))
		}
		id := uint(parsed)
		albumID = &id
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("No file uploaded"))
	}

	contentType := fileHeader.Header.Get("Content-Type")
	if !utils.IsSupportedImageType(contentType) {
		return c.Status(fiber.StatusBadRequest).JSON(
			models.ErrorResponse(fmt.Sprintf("File type %s not allowed", contentType)))
	}

	if fileHeader.Size > maxUploadSize {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("File size exceeds 10MB limit"))
	}

	file, err := fileHeader.Open()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Could not read uploaded file"))
	}
	defer file.Close()

	image, err := h.imageService.UploadImage(c.Context(), service.UploadImageInput{
		EventID:    uint(eventID),
		AlbumID:    albumID,
		Reader:     file,
		FileName:   fileHeader.Filename,
		FileSize:   fileHeader.Size,
		MimeType:   contentType,
		UploadedBy: c.FormValue("uploaded_by"),
	})
	if err != nil {
		return handleError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(models.SuccessResponse(image, "Image uploaded successfully"))
}

func (h *ImageHandler) GetImage(c *fiber.Ctx) error {
	id, ok := parseID(c, "id")
	if !ok {
		return handleError(c, apperror.NewNotFound("Image not found"))
	}

	image, err := h.imageService.GetImage(id)
	if err != nil {
		return handleError(c, err)
	}

	return c.JSON(models.SuccessResponse(image, "Image retrieved successfully"))
}

func (h *ImageHandler) DeleteImage(c *fiber.Ctx) error {
	id, ok := parseID(c, "id")
	if !ok {
		return handleError(c, apperror.NewNotFound("Image not found"))
	}

	if err := h.imageService.DeleteImage(c.Context(), id); err != nil {
		return handleError(c, err)
	}

	return c.JSON(models.SuccessResponse(nil, "Image deleted successfully"))
}

func (h *ImageHandler) MoveImage(c *fiber.Ctx) error {
	id, ok := parseID(c, "id")
	if !ok {
		return handleError(c, apperror.NewNotFound("Image not found"))
	}

	var req models.MoveImageRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid request body"))
	}

	image, err := h.imageService.MoveImage(id, req.AlbumID)
	if err != nil {
		return handleError(c, err)
	}

	return c.JSON(models.SuccessResponse(image, "Image moved successfully"))
}

func (h *ImageHandler) ListImagesByEvent(c *fiber.Ctx) error {
	eventID, ok := parseID(c, "eventId")
	if !ok {
		return handleError(c, apperror.NewNotFound("Event not found"))
	}

	page, limit := parsePagination(c, 50)

	images, total, err := h.imageService.ListImagesByEvent(eventID, page, limit)
	if err != nil {
		return handleError(c, err)
	}

	return c.JSON(models.PaginatedResponse(images, page, limit, total))
}

func (h *ImageHandler) ListImagesByAlbum(c *fiber.Ctx) error {
	albumID, ok := parseID(c, "albumId")
	if !ok {
		return handleError(c, apperror.NewNotFound("Album not found"))
	}

	page, limit := parsePagination(c, 50)

	images, total, err := h.imageService.ListImagesByAlbum(albumID, page, limit)
	if err != nil {
		return handleError(c, err)
	}

	return c.JSON(models.PaginatedResponse(images, page, limit, total))
}
