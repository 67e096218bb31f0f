package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"storefront/pkg/jwtutil"
	"storefront/pkg/logger"
)

// AdminAuthMiddleware validates the admin bearer token. Credentials are
// request-scoped; no server-side session state exists.
func AdminAuthMiddleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		log := logger.FromContext(c)

		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			log.Warn("Missing Authorization header")
			return c.JSON(http.StatusUnauthorized, echo.Map{
				"success": false,
				"message": "Authentication required",
			})
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
			log.Warn("Invalid Authorization header format")
			return c.JSON(http.StatusUnauthorized, echo.Map{
				"success": false,
				"message": "Invalid authorization format, expected Bearer token",
			})
		}

		claims, err := jwtutil.ValidateToken(parts[1])
		if err != nil {
			log.Warn("Invalid admin token", zap.Error(err))
			return c.JSON(http.StatusUnauthorized, echo.Map{
				"success": false,
				"message": "Invalid or expired token",
			})
		}

		c.Set("admin_username", claims.Username)
		return next(c)
	}
}
