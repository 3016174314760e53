package router // package router defines how HTTP routes are registered for the API

import (
	"net/http"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"

	"github.com/iliyamo/experience-booking/internal/config"
	"github.com/iliyamo/experience-booking/internal/handler"
	"github.com/iliyamo/experience-booking/internal/middleware"
)

// Deps is everything New needs to build the API.  Redis may be nil, which
// disables the response cache and the rate limiter.
type Deps struct {
	Cfg         config.Config
	CacheCfg    config.CacheConfig
	RateCfg     config.RateLimitConfig
	Redis       *redis.Client
	Auth        *handler.AuthHandler
	Experiences *handler.ExperienceHandler
	Promos      *handler.PromoHandler
	Bookings    *handler.BookingHandler
}

// New builds the Echo instance with global middleware and every route.
func New(d Deps) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = handler.NewValidator()

	e.Use(echomw.Recover())
	e.Use(middleware.RequestID())
	e.Use(middleware.AccessLog())
	e.Use(echomw.SecureWithConfig(echomw.SecureConfig{
		XSSProtection:      "1; mode=block",
		ContentTypeNosniff: "nosniff",
		XFrameOptions:      "SAMEORIGIN",
	}))
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins:     []string{d.Cfg.FrontendURL},
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowHeaders:     []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAuthorization, echo.HeaderXRequestID},
		AllowCredentials: true,
	}))

	RegisterRoutes(e)

	// Identify runs first so user-keyed rate limits bucket per user.
	api := e.Group("/api", middleware.Identify(d.Cfg.JWTSecret), middleware.RateLimit(d.RateCfg, d.Redis))
	RegisterAuth(api, d.Auth, d.Cfg.JWTSecret)
	RegisterCatalog(api, d.Experiences, d.Promos, middleware.ResponseCache(d.CacheCfg, d.Redis))
	RegisterBooking(api, d.Bookings, d.Cfg.JWTSecret)

	// A group with middleware installs its own catch-all; override it too.
	api.RouteNotFound("", routeNotFound)
	api.RouteNotFound("/*", routeNotFound)
	e.RouteNotFound("/*", routeNotFound)
	return e
}

func routeNotFound(c echo.Context) error {
	return c.JSON(http.StatusNotFound, echo.Map{"error": "Route not found"})
}

// RegisterRoutes registers the unauthenticated operational endpoints.
func RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.Health)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
}

// RegisterAuth mounts register/login and the token-protected /auth/me.
func RegisterAuth(g *echo.Group, a *handler.AuthHandler, jwtSecret string) {
	auth := g.Group("/auth")
	auth.POST("/register", a.Register)
	auth.POST("/login", a.Login)
	auth.GET("/me", a.Me, middleware.JWTAuth(jwtSecret))
}

// RegisterCatalog mounts the public catalog and promo preview.  Catalog
// reads go through cache.
func RegisterCatalog(g *echo.Group, x *handler.ExperienceHandler, p *handler.PromoHandler, cache echo.MiddlewareFunc) {
	g.GET("/experiences", x.List, cache)
	g.GET("/experiences/:id", x.Get, cache)
	g.POST("/promo/validate", p.Validate)
}

// RegisterBooking mounts the booking endpoints.  All require a valid JWT.
func RegisterBooking(g *echo.Group, b *handler.BookingHandler, jwtSecret string) {
	bk := g.Group("/bookings", middleware.JWTAuth(jwtSecret))
	bk.POST("", b.Create)
	bk.GET("", b.List)
	bk.GET("/:id", b.Get)
}
