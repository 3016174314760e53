package middleware // package middleware contains reusable HTTP middleware functions

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/experience-booking/internal/utils"
)

// Context keys set by JWTAuth.
const (
	CtxUserID = "user_id"
	CtxEmail  = "email"
)

// bearerClaims returns the verified claims of the request's bearer token.
// ok is false when the header is missing, malformed or invalid.
func bearerClaims(c echo.Context, secret string) (claims *utils.Claims, present, ok bool) {
	auth := c.Request().Header.Get("Authorization")
	if !strings.HasPrefix(auth, "Bearer ") {
		return nil, false, false
	}
	raw := strings.TrimSpace(strings.TrimPrefix(auth, "Bearer "))
	claims, err := utils.ParseAccessToken(secret, raw)
	if err != nil {
		return nil, true, false
	}
	return claims, true, true
}

func setIdentity(c echo.Context, claims *utils.Claims) {
	c.Set(CtxUserID, claims.UserID)
	c.Set(CtxEmail, claims.Email)
}

// Identify attaches the caller's identity when a valid bearer token is
// present and never rejects.  It runs ahead of RateLimit so per-user keys
// see the real user id; anonymous and invalid callers stay "guest".
func Identify(secret string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if claims, _, ok := bearerClaims(c, secret); ok {
				setIdentity(c, claims)
			}
			return next(c)
		}
	}
}

// JWTAuth returns an Echo middleware that validates a Bearer access token and
// injects the token's userId and email claims into the request context.
// Handlers read them with c.Get(CtxUserID) and c.Get(CtxEmail).
func JWTAuth(secret string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			claims, present, ok := bearerClaims(c, secret)
			if !present {
				return c.JSON(http.StatusUnauthorized, echo.Map{"error": "Authentication required"})
			}
			if !ok {
				return c.JSON(http.StatusUnauthorized, echo.Map{"error": "Invalid or expired token"})
			}
			setIdentity(c, claims)
			return next(c)
		}
	}
}
