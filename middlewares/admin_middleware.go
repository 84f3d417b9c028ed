package middlewares

import (
	"crypto/subtle"
	"os"

	"github.com/labstack/echo/v4"

	"github.com/cececo-dev/cececo-hub/shared"
)

const adminTokenHeader = "X-Admin-Token" // #nosec G101

// AdminTokenMiddleware guards the review and import endpoints with a shared
// token from the ADMIN_TOKEN environment variable. A missing server side
// token is a deployment fault and reported as such, not as unauthorized.
func AdminTokenMiddleware() shared.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			configured := os.Getenv("ADMIN_TOKEN")
			if configured == "" {
				return echo.NewHTTPError(500, "ADMIN_TOKEN not configured")
			}

			provided := ctx.Request().Header.Get(adminTokenHeader)
			if provided == "" || subtle.ConstantTimeCompare([]byte(provided), []byte(configured)) != 1 {
				return echo.NewHTTPError(401, "admin token required")
			}
			return next(ctx)
		}
	}
}
