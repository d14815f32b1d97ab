package middleware

import (
	"log/slog"
	"unicode"

	deliverycontext "safetrack/internal/delivery/context"

	"github.com/labstack/echo/v4"
)

// maxRequestIDLength caps caller-supplied IDs before they reach the logs
const maxRequestIDLength = 128

// RequestIDMiddleware tags every request with an ID and a request-scoped logger
type RequestIDMiddleware struct {
	logger *slog.Logger
}

// NewRequestIDMiddleware creates a new Request ID middleware
func NewRequestIDMiddleware(logger *slog.Logger) *RequestIDMiddleware {
	return &RequestIDMiddleware{
		logger: logger,
	}
}

// Process reuses a sane X-Request-Id from the caller or mints a new one, echoes
// it on the response and stores it with the logger in the request context.
func (m *RequestIDMiddleware) Process(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		req := c.Request()

		requestID := req.Header.Get(deliverycontext.HeaderXRequestID)
		if !validRequestID(requestID) {
			requestID = ""
		}

		ctx, _ := deliverycontext.WithRequestScope(req.Context(), m.logger, requestID,
			slog.String("path", req.URL.Path),
		)
		requestID = deliverycontext.GetRequestIDFromContext(ctx)

		deliverycontext.SetRequestID(c, requestID)
		c.Response().Header().Set(deliverycontext.HeaderXRequestID, requestID)
		c.SetRequest(req.WithContext(ctx))

		return next(c)
	}
}

func validRequestID(id string) bool {
	if id == "" || len(id) > maxRequestIDLength {
		return false
	}

	for _, r := range id {
		if !unicode.IsPrint(r) || unicode.IsSpace(r) {
			return false
		}
	}

	return true
}
