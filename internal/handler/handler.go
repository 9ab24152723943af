package handler

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/bestmoments/bestmoments-backend/internal/models"
	"github.com/bestmoments/bestmoments-backend/pkg/apperror"
)

const maxPageLimit = 100

// handleError maps service errors to the response envelope. This is the only
// place domain errors become status codes.
func handleError(c *fiber.Ctx, err error) error {
	var appErr *apperror.Error
	if errors.As(err, &appErr) {
		return c.Status(appErr.Status).JSON(models.ErrorResponse(appErr.Message))
	}
	return c.Status(fiber.StatusInternalServerError).JSON(models.ErrorResponse(err.Error()))
}

// parseID parses a numeric path parameter. A malformed id is reported as
// "not found", never as a parse error.
func parseID(c *fiber.Ctx, param string) (uint, bool) {
	id, err := strconv.ParseUint(c.Params(param), 10, 32)
	if err != nil {
		return 0, false
	}
	return uint(id), true
}

// parsePagination reads 1-indexed page and limit query parameters, clamping
// limit to [1, 100].
func parsePagination(c *fiber.Ctx, defaultLimit int) (int, int) {
	page := c.QueryInt("page", 1)
	if page < 1 {
		page = 1
	}
	limit := c.QueryInt("limit", defaultLimit)
	if limit < 1 {
		limit = 1
	}
	if limit > maxPageLimit {
		limit = maxPageLimit
	}
	return page, limit
}
