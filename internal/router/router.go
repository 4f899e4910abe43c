// Package router defines how HTTP routes and middleware are registered.
package router

import (
	"log/slog"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"

	"github.com/iliyamo/catalog-ticket-service/internal/config"
	"github.com/iliyamo/catalog-ticket-service/internal/handler"
	"github.com/iliyamo/catalog-ticket-service/internal/metrics"
	"github.com/iliyamo/catalog-ticket-service/internal/middleware"
)

// Deps is everything the routes need.  Redis may be nil, which turns off
// caching and rate limiting.  StaticDir, when set, is served under
// StaticPrefix so locally written ticket artifacts are reachable.
type Deps struct {
	Catalog      *handler.CatalogHandler
	Tickets      *handler.TicketHandler
	QR           *handler.QRHandler
	Metrics      *metrics.Metrics
	Logger       *slog.Logger
	Redis        *redis.Client
	Cache        config.CacheConfig
	RateLimit    config.RateLimitConfig
	StaticDir    string
	StaticPrefix string
}

// New builds the echo instance with global middleware and all routes.
func New(d Deps) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(echomw.RequestIDWithConfig(echomw.RequestIDConfig{Generator: uuid.NewString}))
	e.Use(middleware.RequestLogger(d.Logger))
	e.Use(echomw.Recover())
	e.Use(middleware.Metrics(d.Metrics))
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowHeaders: []string{echo.HeaderContentType, echo.HeaderAuthorization},
	}))

	RegisterRoutes(e, d.Metrics)
	RegisterCatalog(e, d.Catalog, middleware.NewRedisCache(d.Cache, d.Redis, d.Logger))
	RegisterTickets(e, d.Tickets, d.QR, middleware.NewTokenBucket(d.RateLimit, d.Redis, d.Logger))
	if d.StaticDir != "" {
		e.Static("/"+d.StaticPrefix, d.StaticDir)
	}
	return e
}

// RegisterRoutes registers the service description, health check and
// metrics endpoints.
func RegisterRoutes(e *echo.Echo, m *metrics.Metrics) {
	e.GET("/", handler.Index)
	e.GET("/healthz", handler.Health)
	e.GET("/metrics", echo.WrapHandler(m.Handler()))
}

// RegisterCatalog registers the read-only product routes behind the
// response cache.
func RegisterCatalog(e *echo.Echo, h *handler.CatalogHandler, cache echo.MiddlewareFunc) {
	e.GET("/products", h.ListProducts, cache)
	e.GET("/products/:id", h.GetProduct, cache)
	e.GET("/products/category/:category", h.ListByCategory, cache)
	e.GET("/categories", h.ListCategories, cache)
}

// RegisterTickets registers ticket generation, retrieval and QR encoding.
// The two generating routes are rate limited; retrieval is not.
func RegisterTickets(e *echo.Echo, t *handler.TicketHandler, q *handler.QRHandler, limit echo.MiddlewareFunc) {
	e.POST("/generate-ticket", t.GenerateTicket, limit)
	e.GET("/ticket/:id", t.GetTicket)
	e.POST("/generate-qr", q.GenerateQR, limit)
}
