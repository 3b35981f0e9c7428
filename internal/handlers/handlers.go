package handlers

import (
	"ecomarket/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// validate checks struct tags on incoming payloads.
var validate = validator.New()

// errorResponse maps a service error kind to an HTTP status and renders the
// error message. Unclassified errors are treated as internal.
func errorResponse(c *fiber.Ctx, err error) error {
	status := fiber.StatusInternalServerError
	if kind, ok := services.ErrorKindOf(err); ok {
		switch kind {
		case services.ReferenceNotFound:
			status = fiber.StatusNotFound
		case services.AuthorizationDenied:
			status = fiber.StatusForbidden
		case services.Conflict:
			status = fiber.StatusConflict
		case services.DependencyFailure:
			status = fiber.StatusInternalServerError
		default:
			status = fiber.StatusBadRequest
		}
	}
	return c.Status(status).JSON(fiber.Map{
		"message": err.Error(),
	})
}
