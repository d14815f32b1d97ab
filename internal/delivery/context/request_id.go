// Package context carries the per-request scope (request id and logger) across
// HTTP, MQTT and Pub/Sub push handling.
package context

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// HeaderXRequestID is the HTTP header name for request ID.
const HeaderXRequestID = "X-Request-Id"

// echoRequestIDKey is where the request id lives on an echo.Context.
const echoRequestIDKey = "request_id"

type scopeKey struct{}

type scope struct {
	requestID string
	logger    *slog.Logger
}

// GetRequestID returns the request id stored on c, or a fresh one.
func GetRequestID(c echo.Context) string {
	if id, ok := c.Get(echoRequestIDKey).(string); ok && id != "" {
		return id
	}

	return uuid.New().String()
}

// SetRequestID stores the request id on c.
func SetRequestID(c echo.Context, requestID string) {
	c.Set(echoRequestIDKey, requestID)
}

func scopeFrom(ctx context.Context) *scope {
	s, _ := ctx.Value(scopeKey{}).(*scope)

	return s
}

// GetRequestIDFromContext returns the scoped request id, or "".
func GetRequestIDFromContext(ctx context.Context) string {
	if s := scopeFrom(ctx); s != nil {
		return s.requestID
	}

	return ""
}

// GetLogger returns the scoped logger, or nil.
func GetLogger(ctx context.Context) *slog.Logger {
	if s := scopeFrom(ctx); s != nil {
		return s.logger
	}

	return nil
}

// GetLoggerOrDefault returns the scoped logger, falling back to fallback.
func GetLoggerOrDefault(ctx context.Context, fallback *slog.Logger) *slog.Logger {
	if logger := GetLogger(ctx); logger != nil {
		return logger
	}

	return fallback
}

// WithRequestScope tags ctx with requestID and a logger carrying it plus attrs.
// An empty requestID gets a fresh one.
func WithRequestScope(ctx context.Context, base *slog.Logger, requestID string, attrs ...any) (context.Context, *slog.Logger) {
	if requestID == "" {
		requestID = uuid.New().String()
	}

	logger := base.With(slog.String("request_id", requestID)).With(attrs...)

	return context.WithValue(ctx, scopeKey{}, &scope{requestID: requestID, logger: logger}), logger
}
