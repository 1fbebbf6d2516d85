package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/minimart/storefront/internal/api/handler"
	"github.com/minimart/storefront/internal/api/middleware"
	"github.com/minimart/storefront/internal/core/domain"
	"github.com/minimart/storefront/internal/core/ports"
)

// Deps carries everything the router needs. Mongo and Redis are nil when
// the memory drivers are in use; the readiness probe skips them then.
type Deps struct {
	AuthService    ports.AuthService
	UserService    ports.UserService
	ProductService ports.ProductService
	CartService    ports.CartService

	JWTSecret string
	Logger    zerolog.Logger

	Mongo *mongo.Database
	Redis *redis.Client
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(deps Deps) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Logger)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echoprometheus.NewMiddleware("storefront"))
	e.Use(middleware.Session(deps.JWTSecret))

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(deps.AuthService)
	userHandler := handler.NewUserHandler(deps.UserService)
	productHandler := handler.NewProductHandler(deps.ProductService)
	cartHandler := handler.NewCartHandler(deps.CartService)

	// --- Auth ---
	e.POST("/register", authHandler.Register)
	e.POST("/login", authHandler.Login)

	// --- Account (owner only) ---
	e.PUT("/user", userHandler.Update, middleware.RequireAuth())

	// --- Catalog: public reads, admin mutations ---
	e.GET("/products", productHandler.List)
	e.GET("/products/:id", productHandler.Get)

	admin := middleware.RequireRole(domain.RoleAdmin)
	e.POST("/products", productHandler.Create, admin)
	e.PUT("/products/:id", productHandler.Update, admin)
	e.DELETE("/products/:id", productHandler.Delete, admin)

	// --- Cart: always the caller's own ---
	authed := middleware.RequireAuth()
	e.GET("/cart", cartHandler.Get, authed)
	e.PUT("/cart", cartHandler.Replace, authed)
	e.POST("/cart/checkout", cartHandler.Checkout, authed)

	// --- Observability ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(deps.Mongo, deps.Redis)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", readinessHandler.Readiness)  // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}
