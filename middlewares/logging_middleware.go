package middlewares

import (
	"log/slog"
	"time"

	"github.com/labstack/echo/v4"
)

// health probes poll every few seconds and would drown the log
const healthPath = "/api/v1/health/"

func logger() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			start := time.Now()

			err := next(ctx)

			if err == nil && ctx.Request().URL.String() != healthPath {
				slog.Info("request completed",
					"method", ctx.Request().Method,
					"path", ctx.Request().URL.String(),
					"status", ctx.Response().Status,
					"took", time.Since(start),
				)
			}
			return err
		}
	}
}
