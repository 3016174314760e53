package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/experience-booking/internal/middleware"
	"github.com/iliyamo/experience-booking/internal/service"
)

// statusFor maps a service error kind to an HTTP status.  Conflicts are
// 400, not 409, to keep the booking API contract ("Slot is fully booked").
func statusFor(err error) int {
	switch {
	case errors.Is(err, service.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, service.ErrConflict), errors.Is(err, service.ErrInvalid):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// writeError renders err.  Business errors carry their own message;
// anything else is logged and answered with fallback.
func writeError(c echo.Context, err error, fallback string) error {
	var be *service.Error
	if errors.As(err, &be) {
		return c.JSON(statusFor(err), echo.Map{"error": be.Msg})
	}
	middleware.Logger(c).WithError(err).Error(fallback)
	return c.JSON(http.StatusInternalServerError, echo.Map{"error": fallback})
}
