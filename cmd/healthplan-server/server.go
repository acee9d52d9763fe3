package main

import (
	"net/http"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"

	"github.com/healthplan/healthplan/internal/config"
	"github.com/healthplan/healthplan/internal/domain/client"
	"github.com/healthplan/healthplan/internal/domain/company"
	"github.com/healthplan/healthplan/internal/domain/doctor"
	"github.com/healthplan/healthplan/internal/domain/facility"
	"github.com/healthplan/healthplan/internal/domain/geo"
	"github.com/healthplan/healthplan/internal/platform/db"
	"github.com/healthplan/healthplan/internal/platform/middleware"
	"github.com/healthplan/healthplan/internal/platform/openapi"
	"github.com/healthplan/healthplan/internal/platform/validation"
)

const version = "1.0.0"

// domainHandler is implemented by the handler of every domain package.
type domainHandler interface {
	RegisterRoutes(api *echo.Group)
	Describe(g *openapi.Generator)
}

// newServer builds the echo instance with every route mounted. It does not
// touch the database; connections are acquired per request.
func newServer(cfg *config.Config, pool *pgxpool.Pool, logger zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = validation.New()
	e.HTTPErrorHandler = middleware.ErrorHandler(logger)

	e.Pre(echomw.RemoveTrailingSlash())

	// Global middleware
	e.Use(middleware.Recovery(logger))
	e.Use(middleware.RequestID())
	e.Use(middleware.Logger(logger))
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins: cfg.CORSOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete},
		AllowHeaders: []string{echo.HeaderContentType, middleware.RequestIDHeader},
	}))
	e.Use(middleware.SecurityHeaders())
	e.Use(middleware.BodyLimit(cfg.BodyLimit))
	e.Use(middleware.RequestTimeout(cfg.RequestTimeout))

	e.GET("/", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"Hello": "World"})
	})
	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{
			"status":  "ok",
			"version": version,
		})
	})
	e.GET("/health/db", db.HealthHandler(pool))

	// Resource routes share one rate limiter and run inside a session.
	api := e.Group("")
	api.Use(middleware.RateLimit(middleware.RateLimitConfig{
		RequestsPerSecond: cfg.RateLimitRPS,
		BurstSize:         cfg.RateLimitBurst,
	}))
	api.Use(db.SessionMiddleware(pool, logger))

	domains := []domainHandler{
		geo.NewHandler(geo.NewStateRepo(pool), geo.NewCityRepo(pool)),
		company.NewHandler(company.NewCompanyRepo(pool), company.NewInsurancePlanRepo(pool)),
		facility.NewHandler(
			facility.NewServiceAreaRepo(pool),
			facility.NewUnitRepo(pool),
			facility.NewUnitAddressRepo(pool),
		),
		doctor.NewHandler(doctor.NewDoctorRepo(pool), doctor.NewUnitAssignmentRepo(pool)),
		client.NewHandler(client.NewRepos(pool)),
	}

	docs := openapi.NewGenerator("Healthplan API", version)
	for _, d := range domains {
		d.RegisterRoutes(api)
		d.Describe(docs)
	}
	docs.RegisterRoutes(e)

	return e
}
