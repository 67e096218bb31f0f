package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// environment controls whether storage error details are surfaced in 500
// responses. Set once at startup.
var environment = "development"

// SetEnvironment configures the deployment environment for error responses
func SetEnvironment(env string) {
	environment = env
}

func respondData(c echo.Context, code int, data interface{}) error {
	return c.JSON(code, echo.Map{
		"success": true,
		"data":    data,
	})
}

func respondCreated(c echo.Context, data interface{}, message string) error {
	return c.JSON(http.StatusCreated, echo.Map{
		"success": true,
		"data":    data,
		"message": message,
	})
}

func respondMessage(c echo.Context, message string) error {
	return c.JSON(http.StatusOK, echo.Map{
		"success": true,
		"message": message,
	})
}

func respondError(c echo.Context, code int, message string) error {
	return c.JSON(code, echo.Map{
		"success": false,
		"message": message,
	})
}

// respondStorageError maps a store failure to a 500. The underlying error is
// surfaced only outside production.
func respondStorageError(c echo.Context, message string, err error) error {
	body := echo.Map{
		"success": false,
		"message": message,
	}
	if environment != "production" && err != nil {
		body["error"] = err.Error()
	}
	return c.JSON(http.StatusInternalServerError, body)
}
