package middleware

import (
	"context"
	"log/slog"

	"github.com/labstack/echo/v4"
	"github.com/nfrund/storefront/internal/apiclient"
)

type contextKey string

const loggerKey = contextKey("logger")

// Logger is a middleware that injects a request-scoped logger into the context.
// The logger carries the request ID from the RequestID middleware, and the same
// ID is forwarded on backend calls made with the request context.
// It should be placed after the RequestID middleware in the chain.
func Logger(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		reqID := c.Response().Header().Get(echo.HeaderXRequestID)
		requestLogger := slog.Default().With("request_id", reqID)

		ctx := context.WithValue(c.Request().Context(), loggerKey, requestLogger)
		if reqID != "" {
			ctx = apiclient.WithRequestID(ctx, reqID)
		}
		c.SetRequest(c.Request().WithContext(ctx))

		return next(c)
	}
}

// FromContext returns the request-scoped logger, or the default logger.
func FromContext(ctx context.Context) *slog.Logger {
	if logger, ok := ctx.Value(loggerKey).(*slog.Logger); ok {
		return logger
	}
	return slog.Default()
}
