package handler

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/experience-booking/internal/metrics"
	"github.com/iliyamo/experience-booking/internal/service"
)

type PromoValidator interface {
	ValidatePromoCode(ctx context.Context, code string) (service.PromoPreview, error)
}

type PromoHandler struct {
	Promos PromoValidator
}

func NewPromoHandler(p PromoValidator) *PromoHandler { return &PromoHandler{Promos: p} }

type validatePromoReq struct {
	Code string `json:"code"`
}

// Validate handles POST /api/promo/validate.
func (h *PromoHandler) Validate(c echo.Context) error {
	var req validatePromoReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request body"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	p, err := h.Promos.ValidatePromoCode(ctx, req.Code)
	if err != nil {
		metrics.PromoValidations.WithLabelValues(promoResult(err)).Inc()
		return writeError(c, err, "Failed to validate promo code")
	}
	metrics.PromoValidations.WithLabelValues("valid").Inc()
	return c.JSON(http.StatusOK, echo.Map{"valid": true, "promo": p})
}

func promoResult(err error) string {
	switch {
	case errors.Is(err, service.ErrNotFound):
		return "unknown"
	case errors.Is(err, service.ErrInvalid):
		return "rejected"
	default:
		return "error"
	}
}
