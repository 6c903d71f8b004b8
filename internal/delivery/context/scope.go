package context

import (
	"context"
	"log/slog"

	"github.com/labstack/echo/v4"
)

// HeaderXRequestID is echoed on API responses and forwarded to the order backend.
const HeaderXRequestID = "X-Request-Id"

const echoRequestIDKey = "request_id"

type scopeKey struct{}

// scope is what an API request or a consumed settlement message hands down to the use cases.
type scope struct {
	requestID string
	logger    *slog.Logger
}

// WithScope tags logger with requestID and stores both on ctx.
// The tagged logger is returned for the caller's own log lines.
func WithScope(ctx context.Context, requestID string, logger *slog.Logger) (context.Context, *slog.Logger) {
	if logger == nil {
		logger = slog.Default()
	}
	tagged := logger.With(slog.String("request_id", requestID))

	return context.WithValue(ctx, scopeKey{}, scope{requestID: requestID, logger: tagged}), tagged
}

// RequestID returns the id stored by WithScope, or "" outside a request.
func RequestID(ctx context.Context) string {
	if s, ok := ctx.Value(scopeKey{}).(scope); ok {
		return s.requestID
	}

	return ""
}

// Logger returns the request-scoped logger, or fallback outside a request.
func Logger(ctx context.Context, fallback *slog.Logger) *slog.Logger {
	if s, ok := ctx.Value(scopeKey{}).(scope); ok {
		return s.logger
	}

	return fallback
}

// SetEchoRequestID keeps the id on echo.Context for the access log.
func SetEchoRequestID(c echo.Context, requestID string) {
	c.Set(echoRequestIDKey, requestID)
}

// EchoRequestID returns the id set by SetEchoRequestID, or "".
func EchoRequestID(c echo.Context) string {
	id, _ := c.Get(echoRequestIDKey).(string)

	return id
}
