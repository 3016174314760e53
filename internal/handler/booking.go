package handler

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/experience-booking/internal/metrics"
	"github.com/iliyamo/experience-booking/internal/middleware"
	"github.com/iliyamo/experience-booking/internal/model"
	"github.com/iliyamo/experience-booking/internal/queue"
	"github.com/iliyamo/experience-booking/internal/service"
)

// BookingService is the booking engine as seen by HTTP.
type BookingService interface {
	CreateBooking(ctx context.Context, userID string, in service.CreateBookingInput) (model.Booking, error)
	GetBooking(ctx context.Context, userID, bookingID string) (model.Booking, error)
	ListBookings(ctx context.Context, userID string) ([]model.Booking, error)
}

// EventPublisher announces committed bookings.
type EventPublisher interface {
	PublishBookingConfirmed(ctx context.Context, ev queue.BookingConfirmedEvent) error
}

// BookingHandler serves /api/bookings.  Events may be nil.
type BookingHandler struct {
	Bookings BookingService
	Events   EventPublisher
}

func NewBookingHandler(b BookingService, ev EventPublisher) *BookingHandler {
	return &BookingHandler{Bookings: b, Events: ev}
}

type createBookingReq struct {
	ExperienceID string `json:"experienceId" validate:"required"`
	SlotID       string `json:"slotId" validate:"required"`
	PromoCode    string `json:"promoCode"`
}

// Create handles POST /api/bookings.
func (h *BookingHandler) Create(c echo.Context) error {
	uid := middleware.UserID(c)
	if uid == "" {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "Authentication required"})
	}
	var req createBookingReq
	if msg, err := bindAndValidate(c, &req); err != nil {
		metrics.BookingsRejected.WithLabelValues(metrics.ReasonInvalid).Inc()
		return c.JSON(http.StatusBadRequest, echo.Map{"error": msg})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	b, err := h.Bookings.CreateBooking(ctx, uid, service.CreateBookingInput{
		ExperienceID: req.ExperienceID,
		SlotID:       req.SlotID,
		PromoCode:    req.PromoCode,
	})
	if err != nil {
		metrics.BookingsRejected.WithLabelValues(rejectReason(err)).Inc()
		return writeError(c, err, "Failed to create booking")
	}
	metrics.BookingsCreated.Inc()
	h.publish(c, b)

	return c.JSON(http.StatusCreated, echo.Map{
		"message": "Booking created successfully",
		"booking": b,
	})
}

// publish is best-effort: the booking is already committed.
func (h *BookingHandler) publish(c echo.Context, b model.Booking) {
	if h.Events == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.WithoutCancel(c.Request().Context()), 2*time.Second)
	defer cancel()
	if err := h.Events.PublishBookingConfirmed(ctx, queue.NewBookingConfirmedEvent(b)); err != nil {
		metrics.EventsPublished.WithLabelValues("error").Inc()
		middleware.Logger(c).WithError(err).WithField("booking_id", b.ID).Warn("publish booking.confirmed failed")
		return
	}
	metrics.EventsPublished.WithLabelValues("ok").Inc()
}

func rejectReason(err error) string {
	switch {
	case errors.Is(err, service.ErrNotFound):
		return metrics.ReasonNotFound
	case errors.Is(err, service.ErrConflict):
		return metrics.ReasonFull
	case errors.Is(err, service.ErrInvalid):
		return metrics.ReasonInvalid
	default:
		return metrics.ReasonInternal
	}
}

// List handles GET /api/bookings.
func (h *BookingHandler) List(c echo.Context) error {
	uid := middleware.UserID(c)
	if uid == "" {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "Authentication required"})
	}
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	bs, err := h.Bookings.ListBookings(ctx, uid)
	if err != nil {
		return writeError(c, err, "Failed to fetch bookings")
	}
	return c.JSON(http.StatusOK, echo.Map{"bookings": bs})
}

// Get handles GET /api/bookings/:id.
func (h *BookingHandler) Get(c echo.Context) error {
	uid := middleware.UserID(c)
	if uid == "" {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "Authentication required"})
	}
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	b, err := h.Bookings.GetBooking(ctx, uid, c.Param("id"))
	if err != nil {
		return writeError(c, err, "Failed to fetch booking")
	}
	return c.JSON(http.StatusOK, echo.Map{"booking": b})
}
