package handler

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"storefront/pkg/config"
	"storefront/pkg/jwtutil"
	"storefront/pkg/logger"
	"storefront/prometheus"
)

// AuthHandler serves the admin login endpoints. Authentication is stateless:
// a successful login returns a bearer token and no server-side session is
// kept.
type AuthHandler struct {
	admin config.AdminConfig
}

// NewAuthHandler creates an auth handler with the configured admin
// credentials
func NewAuthHandler(admin config.AdminConfig) *AuthHandler {
	return &AuthHandler{admin: admin}
}

// Login handles admin authentication and token issuance
func (h *AuthHandler) Login(c echo.Context) error {
	log := logger.FromContext(c)
	prometheus.AuthAttemptsCounter.Inc()

	var req struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if err := c.Bind(&req); err != nil {
		log.Warn("Invalid login request", zap.Error(err))
		prometheus.AuthErrorsCounter.Inc()
		return respondError(c, http.StatusBadRequest, "Invalid request data")
	}

	if req.Username != h.admin.Username || !h.passwordMatches(req.Password) {
		log.Warn("Invalid admin credentials", zap.String("username", req.Username))
		prometheus.AuthErrorsCounter.Inc()
		return respondError(c, http.StatusUnauthorized, "Invalid credentials")
	}

	token, err := jwtutil.GenerateToken(req.Username)
	if err != nil {
		log.Error("Failed to generate token", zap.Error(err))
		prometheus.AuthErrorsCounter.Inc()
		return respondError(c, http.StatusInternalServerError, "Error generating token")
	}

	prometheus.AuthSuccessCounter.Inc()
	log.Info("Admin logged in", zap.String("username", req.Username))
	return c.JSON(http.StatusOK, echo.Map{
		"success": true,
		"token":   token,
		"message": "Login successful",
	})
}

// Status reports whether the presented bearer token is valid. Callers without
// a token are simply not authenticated; this endpoint never fails.
func (h *AuthHandler) Status(c echo.Context) error {
	authHeader := c.Request().Header.Get("Authorization")
	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
		return c.JSON(http.StatusOK, echo.Map{
			"success":         true,
			"isAuthenticated": false,
			"username":        nil,
		})
	}

	claims, err := jwtutil.ValidateToken(parts[1])
	if err != nil {
		return c.JSON(http.StatusOK, echo.Map{
			"success":         true,
			"isAuthenticated": false,
			"username":        nil,
		})
	}

	return c.JSON(http.StatusOK, echo.Map{
		"success":         true,
		"isAuthenticated": true,
		"username":        claims.Username,
	})
}

func (h *AuthHandler) passwordMatches(password string) bool {
	if h.admin.PasswordHash != "" {
		return bcrypt.CompareHashAndPassword([]byte(h.admin.PasswordHash), []byte(password)) == nil
	}
	return password == h.admin.Password
}
