package router

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iliyamo/experience-booking/internal/config"
	"github.com/iliyamo/experience-booking/internal/handler"
	"github.com/iliyamo/experience-booking/internal/model"
	"github.com/iliyamo/experience-booking/internal/service"
	"github.com/iliyamo/experience-booking/internal/utils"
)

const testSecret = "s3cret"

type emptyBookings struct{}

func (emptyBookings) CreateBooking(context.Context, string, service.CreateBookingInput) (model.Booking, error) {
	return model.Booking{}, service.ErrSlotNotFound
}

func (emptyBookings) GetBooking(context.Context, string, string) (model.Booking, error) {
	return model.Booking{}, service.ErrBookingNotFound
}

func (emptyBookings) ListBookings(context.Context, string) ([]model.Booking, error) {
	return []model.Booking{}, nil
}

func newTestServer() http.Handler {
	return New(Deps{
		Cfg:         config.Config{JWTSecret: testSecret, FrontendURL: "http://localhost:3000"},
		Auth:        &handler.AuthHandler{},
		Experiences: &handler.ExperienceHandler{},
		Promos:      &handler.PromoHandler{},
		Bookings:    &handler.BookingHandler{},
	})
}

func do(h http.Handler, method, target string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(method, target, nil))
	return rec
}

func TestHealthAndMetrics(t *testing.T) {
	h := newTestServer()

	rec := do(h, http.MethodGet, "/health")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"ok"`)
	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))
	assert.Equal(t, "nosniff", rec.Header().Get("X-Content-Type-Options"))

	rec = do(h, http.MethodGet, "/metrics")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "booking_http_request_duration_seconds")
}

func TestProtectedRoutesRequireToken(t *testing.T) {
	h := newTestServer()
	for _, tc := range []struct{ method, target string }{
		{http.MethodGet, "/api/bookings"},
		{http.MethodPost, "/api/bookings"},
		{http.MethodGet, "/api/bookings/b-1"},
		{http.MethodGet, "/api/auth/me"},
	} {
		rec := do(h, tc.method, tc.target)
		assert.Equal(t, http.StatusUnauthorized, rec.Code, tc.method+" "+tc.target)
		assert.Contains(t, rec.Body.String(), "Authentication required")
	}
}

func TestUnknownRoute(t *testing.T) {
	h := newTestServer()
	for _, target := range []string{"/nope", "/api", "/api/nope", "/api/experiences/x/y"} {
		rec := do(h, http.MethodGet, target)
		assert.Equal(t, http.StatusNotFound, rec.Code, target)
		assert.JSONEq(t, `{"error":"Route not found"}`, rec.Body.String(), target)
	}
}

func TestRateLimitBucketsPerUser(t *testing.T) {
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })

	h := New(Deps{
		Cfg: config.Config{JWTSecret: testSecret},
		RateCfg: config.RateLimitConfig{
			Enabled: true, Capacity: 1, RefillTokens: 1, RefillInterval: time.Hour,
			TTL: 2 * time.Hour, KeyStrategy: "user", Prefix: "rl",
		},
		Redis:       rdb,
		Auth:        &handler.AuthHandler{},
		Experiences: &handler.ExperienceHandler{},
		Promos:      &handler.PromoHandler{},
		Bookings:    &handler.BookingHandler{Bookings: emptyBookings{}},
	})

	asUser := func(userID string) *httptest.ResponseRecorder {
		tok, err := utils.NewAccessToken(testSecret, userID, userID+"@example.com", time.Hour)
		require.NoError(t, err)
		req := httptest.NewRequest(http.MethodGet, "/api/bookings", nil)
		req.Header.Set("Authorization", "Bearer "+tok.Token)
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		return rec
	}

	assert.Equal(t, http.StatusOK, asUser("alice").Code)
	assert.Equal(t, http.StatusOK, asUser("bob").Code)
	assert.Equal(t, http.StatusTooManyRequests, asUser("alice").Code)
	assert.ElementsMatch(t, []string{"rl:user:alice", "rl:user:bob"}, mr.Keys())

	// Callers without a valid token share the guest bucket.
	rec := do(h, http.MethodGet, "/api/bookings")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, http.StatusTooManyRequests, do(h, http.MethodGet, "/api/bookings").Code)
}
