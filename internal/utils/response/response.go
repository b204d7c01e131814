// Package response centralizes HTTP response shaping and the mapping from
// domain errors to status codes. Unexpected errors are logged in full and
// surfaced as a generic message, never with internals.
package response

import (
	stderrors "errors"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"paymo/internal/errors"
	"paymo/internal/logger"
)

func Success(c *fiber.Ctx, message string, data interface{}) error {
	return c.JSON(fiber.Map{
		"message": message,
		"data":    data,
	})
}

func Created(c *fiber.Ctx, message string, data interface{}) error {
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": message,
		"data":    data,
	})
}

func Error(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{
		"message": message,
	})
}

func BadRequest(c *fiber.Ctx, message string) error {
	return Error(c, fiber.StatusBadRequest, message)
}

// FromError maps an error returned by a service to an HTTP response.
func FromError(c *fiber.Ctx, err error) error {
	var domainErr *errors.DomainError
	if stderrors.As(err, &domainErr) {
		return Error(c, statusFor(domainErr), domainErr.Message)
	}

	logger.Log.Error("unexpected error",
		zap.String("path", c.Path()),
		zap.Error(err))
	return Error(c, fiber.StatusInternalServerError, "failed to process request")
}

func statusFor(err *errors.DomainError) int {
	switch err {
	case errors.ErrAccountNotFound, errors.ErrTransferNotFound, errors.ErrUserNotFound:
		return fiber.StatusNotFound
	case errors.ErrUserTaken:
		return fiber.StatusConflict
	case errors.ErrInvalidCredentials:
		return fiber.StatusUnauthorized
	default:
		return fiber.StatusUnprocessableEntity
	}
}
