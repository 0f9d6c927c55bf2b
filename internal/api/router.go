package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/ecotrack/ecotrack-api/internal/api/handler"
	"github.com/ecotrack/ecotrack-api/internal/api/middleware"
	"github.com/ecotrack/ecotrack-api/internal/core/ports"
)

// Dependencies carries everything the router needs. Services are interfaces so
// tests can wire stubs; Mongo and Redis handles are only used by the readiness
// probe and may be nil, in which case the probe route is not registered.
type Dependencies struct {
	AuthService        ports.AuthService
	TokenCodec         ports.TokenCodec
	ProductService     ports.ProductService
	CalculationService ports.CalculationService

	Mongo  *mongo.Database
	Redis  *redis.Client
	Logger zerolog.Logger
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(deps Dependencies) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Logger)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("ecotrack"))

	// --- Dependencies ---
	authHandler := handler.NewAuthHandler(deps.AuthService)
	productHandler := handler.NewProductHandler(deps.ProductService)
	dashboardHandler := handler.NewDashboardHandler(deps.CalculationService)
	authGate := middleware.Auth(deps.TokenCodec)

	// --- Auth routes ---
	e.POST("/auth/register", authHandler.Register)
	e.POST("/auth/login", authHandler.Login)
	e.POST("/auth/logout", authHandler.Logout)

	// --- Catalog ---
	e.GET("/products", productHandler.List)
	e.POST("/products", productHandler.Create, authGate)

	// --- Dashboard (all protected) ---
	dashboard := e.Group("/dashboard", authGate)
	dashboard.GET("/carbon", dashboardHandler.ListCarbon)
	dashboard.POST("/carbon", dashboardHandler.RecordCarbon)
	dashboard.GET("/energy", dashboardHandler.ListEnergy)
	dashboard.POST("/energy", dashboardHandler.RecordEnergy)

	// --- Operational endpoints ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	// --- Health probes (no auth required) ---
	e.GET("/health", handler.NewHealthHandler().Liveness) // liveness – is the process alive?
	if deps.Mongo != nil && deps.Redis != nil {
		healthDeps := handler.NewHealthDependenciesHandler(deps.Mongo, deps.Redis)
		e.GET("/health/ready", healthDeps.Readiness) // readiness – are dependencies up?
	}

	return e
}
