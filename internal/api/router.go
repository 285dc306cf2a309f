package api

import (
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/partsline/manufacturer-api/docs" // swagger spec
	"github.com/partsline/manufacturer-api/internal/api/handler"
	"github.com/partsline/manufacturer-api/internal/api/middleware"
	"github.com/partsline/manufacturer-api/internal/core/service"
	storemongo "github.com/partsline/manufacturer-api/internal/infrastructure/db/mongo"
	storeredis "github.com/partsline/manufacturer-api/internal/infrastructure/db/redis"
)

// NewRouter builds the Echo instance with every dependency constructed and
// every route registered. The store clients are injected; this function owns
// no lifecycle.
func NewRouter(db *mongo.Database, rdb *redis.Client, jwtSecret string, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("manufacturer"))

	// --- Dependencies ---
	tokens := service.NewTokenService(jwtSecret, time.Hour)

	userRepo := storemongo.NewUserRepository(db)
	userService := service.NewUserService(userRepo, tokens, log)
	userHandler := handler.NewUserHandler(userService)

	orderRepo := storemongo.NewOrderRepository(db)
	orderDedup := storeredis.NewOrderDedup(rdb)
	orderService := service.NewOrderService(orderRepo, orderDedup, log)
	orderHandler := handler.NewOrderHandler(orderService)

	catalogService := service.NewCatalogService(
		storemongo.NewCatalogRepository(db, storemongo.CollectionServices),
		storemongo.NewCatalogRepository(db, storemongo.CollectionReviews),
		storemongo.NewCatalogRepository(db, storemongo.CollectionProducts),
	)
	catalogHandler := handler.NewCatalogHandler(catalogService)

	auth := middleware.Auth(tokens)

	// --- Catalog (public) ---
	e.GET("/service", catalogHandler.ListServices)
	e.GET("/service/:id", catalogHandler.GetService)
	e.GET("/review", catalogHandler.ListReviews)
	e.POST("/review", catalogHandler.AddReview)
	e.GET("/product", catalogHandler.ListProducts)
	e.POST("/product", catalogHandler.AddProduct)
	e.DELETE("/product/:id", catalogHandler.DeleteProduct)

	// --- Orders ---
	e.GET("/order", orderHandler.List, auth)
	e.POST("/order", orderHandler.Submit)
	e.DELETE("/order/:id", orderHandler.Delete)

	// --- Users / roles ---
	e.PUT("/user/:email", userHandler.Upsert)
	e.GET("/user", userHandler.List, auth)
	e.GET("/admin/:email", userHandler.AdminStatus)
	e.PUT("/user/admin/:email", userHandler.Promote, auth)

	// --- Health, metrics, docs ---
	healthHandler := handler.NewHealthHandler()
	readyHandler := handler.NewReadinessHandler(db, rdb)

	e.GET("/", healthHandler.Root)
	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readyHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	return e
}
