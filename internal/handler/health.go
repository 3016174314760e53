package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
)

// Health is the liveness endpoint for load balancers.
func Health(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{
		"status":    "ok",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}
