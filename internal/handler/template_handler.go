package handler

import (
	"github.com/gofiber/fiber/v2"

	"github.com/bestmoments/bestmoments-backend/internal/models"
	"github.com/bestmoments/bestmoments-backend/internal/service"
	"github.com/bestmoments/bestmoments-backend/pkg/apperror"
	"github.com/bestmoments/bestmoments-backend/pkg/utils"
)

type TemplateHandler struct {
	templateService *service.TemplateService
	validator       *utils.Validator
}

func NewTemplateHandler(templateService *service.TemplateService, validator *utils.Validator) *TemplateHandler {
	return &TemplateHandler{
		templateService: templateService,
		validator:       validator,
	}
}

func (h *TemplateHandler) CreateTemplate(c *fiber.Ctx) error {
	var req models.TemplateRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid request body"))
	}

	if err := h.validator.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse(err.Error()))
	}

	template, err := h.templateService.CreateTemplate(req)
	if err != nil {
		return handleError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(models.SuccessResponse(template, "Template created successfully"))
}

func (h *TemplateHandler) GetTemplate(c *fiber.Ctx) error {
	id, ok := parseID(c, "id")
	if !ok {
		return handleError(c, apperror.NewNotFound("Template not found"))
	}

	template, err := h.templateService.GetTemplate(id)
	if err != nil {
		return handleError(c, err)
	}

	return c.JSON(models.SuccessResponse(template, "Template retrieved successfully"))
}

func (h *TemplateHandler) ListTemplates(c *fiber.Ctx) error {
	page, limit := parsePagination(c, 20)

	templates, total, err := h.templateService.ListTemplates(c.Query("event_type"), page, limit)
	if err != nil {
		return handleError(c, err)
	}

	return c.JSON(models.PaginatedResponse(templates, page, limit, total))
}

func (h *TemplateHandler) DeleteTemplate(c *fiber.Ctx) error {
	id, ok := parseID(c, "id")
	if !ok {
		return handleError(c, apperror.NewNotFound("Template not found"))
	}

	if err := h.templateService.DeleteTemplate(id); err != nil {
		return handleError(c, err)
	}

	return c.JSON(models.SuccessResponse(nil, "Template deleted successfully"))
}
