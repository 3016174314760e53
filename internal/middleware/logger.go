package middleware

import (
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"

	"github.com/iliyamo/experience-booking/internal/metrics"
)

const ctxRequestID = "request_id"

// RequestID propagates X-Request-ID, generating a UUID when absent.
func RequestID() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			id := c.Request().Header.Get(echo.HeaderXRequestID)
			if id == "" {
				id = uuid.NewString()
			}
			c.Set(ctxRequestID, id)
			c.Response().Header().Set(echo.HeaderXRequestID, id)
			return next(c)
		}
	}
}

// Logger returns a logrus entry tagged with the request id.
func Logger(c echo.Context) *logrus.Entry {
	if id, ok := c.Get(ctxRequestID).(string); ok {
		return logrus.WithField("request_id", id)
	}
	return logrus.NewEntry(logrus.StandardLogger())
}

// AccessLog logs one line per request and records its latency.
func AccessLog() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)
			if err != nil {
				c.Error(err)
			}
			latency := time.Since(start)
			status := c.Response().Status

			route := c.Path()
			if route == "" {
				route = "unmatched"
			}
			metrics.HTTPDuration.WithLabelValues(c.Request().Method, route, strconv.Itoa(status)).Observe(latency.Seconds())

			entry := Logger(c).WithFields(logrus.Fields{
				"method":  c.Request().Method,
				"path":    c.Request().URL.Path,
				"status":  status,
				"latency": latency.String(),
				"ip":      c.RealIP(),
			})
			if uid := UserID(c); uid != "" {
				entry = entry.WithField("user_id", uid)
			}
			switch {
			case status >= 500:
				entry.Error("request")
			case status >= 400:
				entry.Warn("request")
			default:
				entry.Info("request")
			}
			return nil
		}
	}
}
