package middleware

import (
	"log/slog"

	deliverycontext "storefront/internal/delivery/context"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// RequestIDMiddleware correlates gateway logs with the storefront client, which
// stamps every call with a UUID X-Request-Id.
type RequestIDMiddleware struct {
	logger *slog.Logger
}

func NewRequestIDMiddleware(logger *slog.Logger) *RequestIDMiddleware {
	return &RequestIDMiddleware{
		logger: logger,
	}
}

// Process adopts the caller's request ID when it is a UUID and issues a fresh one
// otherwise. The ID is echoed back and carried on the request context with a scoped logger.
func (m *RequestIDMiddleware) Process(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		incoming := c.Request().Header.Get(deliverycontext.HeaderXRequestID)
		requestID, adopted := clientRequestID(incoming)

		reqLogger := m.logger.With(slog.String("request_id", requestID))
		if !adopted && incoming != "" {
			// Header values are caller controlled, so only the length is logged.
			reqLogger.Debug("Replaced malformed request ID", slog.Int("length", len(incoming)))
		}

		c.Response().Header().Set(deliverycontext.HeaderXRequestID, requestID)

		ctx := deliverycontext.WithRequestID(c.Request().Context(), requestID)
		ctx = deliverycontext.WithLogger(ctx, reqLogger)
		c.SetRequest(c.Request().WithContext(ctx))

		return next(c)
	}
}

// clientRequestID returns the canonical form of a UUID request ID, or a new one.
func clientRequestID(header string) (string, bool) {
	id, err := uuid.Parse(header)
	if err != nil {
		return uuid.NewString(), false
	}

	return id.String(), true
}
