package handlerUtil

import (
	"BlogGolang/pkg/log"
	"BlogGolang/pkg/response"
	"errors"
	"net/http"
	"os"

	"github.com/gofiber/fiber/v2"
	"github.com/lib/pq"
	"github.com/sirupsen/logrus"
)

const (
	pqUniqueViolation     = "23505"
	pqForeignKeyViolation = "23503"
)

type ErrorHandler struct {
	logger *logrus.Logger
}

func New(logger *logrus.Logger) *ErrorHandler {
	return &ErrorHandler{
		logger: logger,
	}
}

func (h *ErrorHandler) Handle(c *fiber.Ctx, requestID string, err error, path string, operation string) error {
	fields := log.Fields{
		"request_id": requestID,
		"error":      err.Error(),
		"path":       path,
		"operation":  operation,
	}

	var respErr *response.Error
	if errors.As(err, &respErr) {
		h.logger.WithFields(fields).Warn("Operation failed with error response")
		return c.Status(respErr.Code).JSON(response.Failure(err.Error(), errCodeFor(respErr.Code)))
	}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch string(pqErr.Code) {
		case pqUniqueViolation:
			h.logger.WithFields(fields).Warn("Unique constraint violation")
			return c.Status(fiber.StatusConflict).
				JSON(response.Failure("A record with this value already exists", "UNIQUE_VIOLATION"))
		case pqForeignKeyViolation:
			h.logger.WithFields(fields).Warn("Foreign key constraint violation")
			return c.Status(fiber.StatusBadRequest).
				JSON(response.Failure("Related record not found", "FOREIGN_KEY_VIOLATION"))
		default:
			h.logger.WithFields(fields).Error("Database error")
			return c.Status(fiber.StatusInternalServerError).
				JSON(response.Failure("Database error occurred", "DATABASE_ERROR"))
		}
	}

	log.ErrorWithTraceID(fields, "Unexpected error")

	message := err.Error()
	if os.Getenv("APP_ENV") == "production" {
		message = "Internal server error"
	}

	return c.Status(fiber.StatusInternalServerError).
		JSON(response.Failure(message, "INTERNAL_SERVER_ERROR"))
}

func (h *ErrorHandler) HandleValidationError(c *fiber.Ctx, requestID string, err error, path string) error {
	h.logger.WithFields(log.Fields{
		"request_id": requestID,
		"error":      err.Error(),
		"path":       path,
	}).Warn("Validation failed")

	return c.Status(fiber.StatusBadRequest).
		JSON(response.Failure("Validation failed: "+err.Error(), "VALIDATION_ERROR"))
}

func (h *ErrorHandler) HandleRequestTimeout(c *fiber.Ctx) error {
	return c.Status(fiber.StatusRequestTimeout).
		JSON(response.Failure("Request timed out", "REQUEST_TIMEOUT"))
}

func (h *ErrorHandler) HandleSuccess(c *fiber.Ctx, statusCode int, message string, data interface{}) error {
	return c.Status(statusCode).JSON(response.Success(message, data))
}

func errCodeFor(status int) string {
	switch status {
	case http.StatusBadRequest:
		return "VALIDATION_ERROR"
	case http.StatusNotFound:
		return "NOT_FOUND"
	case http.StatusConflict:
		return "UNIQUE_VIOLATION"
	default:
		return "INTERNAL_SERVER_ERROR"
	}
}
