package middleware

import (
	"context"

	"careerPlatform/business/recommender"

	"github.com/labstack/echo/v4"
)

const traceHeader = "X-Trace-ID"

// TraceMiddleware attaches a trace id to every request context and echoes
// it back in the response headers. Incoming ids are reused so callers can
// correlate across services.
func TraceMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			traceID := c.Request().Header.Get(traceHeader)
			if traceID == "" {
				traceID = recommender.NewTraceID()
			}

			ctx := context.WithValue(c.Request().Context(), recommender.TraceIDKey, traceID)
			c.SetRequest(c.Request().WithContext(ctx))
			c.Response().Header().Set(traceHeader, traceID)

			return next(c)
		}
	}
}
