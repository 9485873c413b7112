package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/quickmart/store-api/internal/api/handler"
	"github.com/quickmart/store-api/internal/api/middleware"
	"github.com/quickmart/store-api/internal/core/service"
	"github.com/quickmart/store-api/internal/infrastructure/config"
	mongodb "github.com/quickmart/store-api/internal/infrastructure/db/mongo"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(cfg *config.Config, db *mongo.Database, rdb *redis.Client, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)
	e.Validator = handler.NewValidator()

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echomiddleware.CORS())
	e.Use(echoprometheus.NewMiddleware("store"))

	// --- Dependencies ---
	userRepo := mongodb.NewUserRepository(db)
	productRepo := mongodb.NewProductRepository(db)
	cartRepo := mongodb.NewCartRepository(db)

	tokenService := service.NewTokenService(cfg.JWTSecret)
	authService := service.NewAuthService(userRepo, tokenService, log)
	productService := service.NewProductService(productRepo, log)
	cartService := service.NewCartService(cartRepo, productRepo, log)

	authHandler := handler.NewAuthHandler(authService)
	productHandler := handler.NewProductHandler(productService)
	cartHandler := handler.NewCartHandler(cartService)

	// --- Public routes ---
	e.POST("/register", authHandler.Register)
	e.POST("/login", authHandler.Login)

	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db, rdb)
	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())

	// Static HTML/JS pages consuming the API.
	e.Static("/", cfg.StaticDir)

	// --- Authenticated API ---
	apiGroup := e.Group("/api", middleware.Auth(tokenService))
	apiGroup.GET("/products", productHandler.List)
	apiGroup.POST("/products", productHandler.Create)
	apiGroup.GET("/cart", cartHandler.Get)
	apiGroup.POST("/cart", cartHandler.Add)
	apiGroup.DELETE("/cart/:productId", cartHandler.Remove)

	return e
}
