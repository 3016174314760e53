// Package metrics declares the Prometheus collectors exported on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Rejection reasons for BookingsRejected.
const (
	ReasonNotFound = "not_found"
	ReasonFull     = "fully_booked"
	ReasonInvalid  = "invalid"
	ReasonInternal = "internal"
)

var (
	BookingsCreated = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "booking",
		Name:      "bookings_created_total",
		Help:      "Bookings committed.",
	})

	BookingsRejected = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "booking",
		Name:      "bookings_rejected_total",
		Help:      "Booking attempts that did not commit, by reason.",
	}, []string{"reason"})

	PromoValidations = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "booking",
		Name:      "promo_validations_total",
		Help:      "Promo code validation requests, by result.",
	}, []string{"result"})

	EventsPublished = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "booking",
		Name:      "events_published_total",
		Help:      "booking.confirmed publish attempts, by result.",
	}, []string{"result"})

	HTTPDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "booking",
		Name:      "http_request_duration_seconds",
		Help:      "HTTP request latency.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"method", "route", "status"})
)
