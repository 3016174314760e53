package middleware

import "github.com/labstack/echo/v4"

// UserID returns the authenticated user's id, or "" when the request
// carries no valid token.
func UserID(c echo.Context) string {
	if v, ok := c.Get(CtxUserID).(string); ok {
		return v
	}
	return ""
}

// userID is the rate-limit and cache key form of UserID; anonymous
// callers share the "guest" bucket.
func userID(c echo.Context) string {
	if id := UserID(c); id != "" {
		return id
	}
	return "guest"
}
