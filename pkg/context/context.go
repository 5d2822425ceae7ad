// Package context bridges fiber's request-scoped locals and the plain
// context.Context the service and repository layers work with.
package context

import (
	"context"

	"github.com/gofiber/fiber/v2"
)

// RequestIDKey is the context key the lower layers read the request id from.
const RequestIDKey = "request_id"

// fiberLocalsKey matches the locals/header key the request id middleware
// writes under.
const fiberLocalsKey = "X-Request-ID"

func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, RequestIDKey, requestID)
}

func GetRequestID(ctx context.Context) string {
	if requestID, ok := ctx.Value(RequestIDKey).(string); ok && requestID != "" {
		return requestID
	}
	return "unknown"
}

// FromFiberCtx lifts the request id out of the fiber request so it survives
// past the handler into service and repository logging.
func FromFiberCtx(c *fiber.Ctx) context.Context {
	requestID, ok := c.Locals(fiberLocalsKey).(string)
	if !ok || requestID == "" {
		requestID = c.Get(fiberLocalsKey)
	}
	if requestID == "" {
		requestID = "unknown"
	}

	return WithRequestID(context.Background(), requestID)
}
