package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/appdotbuilder/commerce-admin/internal/api/handler"
	"github.com/appdotbuilder/commerce-admin/internal/core/service"
	sqldb "github.com/appdotbuilder/commerce-admin/internal/infrastructure/db/sql"
)

// NewRouter builds and returns the Echo instance with every procedure
// registered under /rpc. rdb may be nil; the readiness probe then only
// checks the database.
func NewRouter(db *gorm.DB, rdb *redis.Client, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echomiddleware.CORS())
	e.Use(echoprometheus.NewMiddleware("commerce_admin"))

	// --- Dependencies ---
	userRepo := sqldb.NewUserRepository(db)
	categoryRepo := sqldb.NewCategoryRepository(db)
	productRepo := sqldb.NewProductRepository(db)
	orderRepo := sqldb.NewOrderRepository(db)
	orderItemRepo := sqldb.NewOrderItemRepository(db)

	userHandler := handler.NewUserHandler(service.NewUserService(userRepo, log))
	categoryHandler := handler.NewCategoryHandler(service.NewCategoryService(categoryRepo, log))
	productHandler := handler.NewProductHandler(service.NewProductService(productRepo, categoryRepo, log))
	orderHandler := handler.NewOrderHandler(service.NewOrderService(orderRepo, userRepo, log))
	orderItemHandler := handler.NewOrderItemHandler(service.NewOrderItemService(orderItemRepo, orderRepo, productRepo, log))

	// --- RPC procedures (all POST, one route per named operation) ---
	rpc := e.Group("/rpc")

	rpc.POST("/users.create", userHandler.Create)
	rpc.POST("/users.getAll", userHandler.GetAll)
	rpc.POST("/users.getById", userHandler.GetByID)
	rpc.POST("/users.update", userHandler.Update)
	rpc.POST("/users.delete", userHandler.Delete)

	rpc.POST("/categories.create", categoryHandler.Create)
	rpc.POST("/categories.getAll", categoryHandler.GetAll)
	rpc.POST("/categories.getById", categoryHandler.GetByID)
	rpc.POST("/categories.update", categoryHandler.Update)
	rpc.POST("/categories.delete", categoryHandler.Delete)

	rpc.POST("/products.create", productHandler.Create)
	rpc.POST("/products.getAll", productHandler.GetAll)
	rpc.POST("/products.getById", productHandler.GetByID)
	rpc.POST("/products.update", productHandler.Update)
	rpc.POST("/products.delete", productHandler.Delete)

	rpc.POST("/orders.create", orderHandler.Create)
	rpc.POST("/orders.getAll", orderHandler.GetAll)
	rpc.POST("/orders.getById", orderHandler.GetByID)
	rpc.POST("/orders.update", orderHandler.Update)
	rpc.POST("/orders.delete", orderHandler.Delete)

	rpc.POST("/orderItems.create", orderItemHandler.Create)
	rpc.POST("/orderItems.getAll", orderItemHandler.GetAll)
	rpc.POST("/orderItems.getByOrderId", orderItemHandler.GetByOrderID)
	rpc.POST("/orderItems.getById", orderItemHandler.GetByID)
	rpc.POST("/orderItems.update", orderItemHandler.Update)
	rpc.POST("/orderItems.delete", orderItemHandler.Delete)

	// --- Health probes and metrics ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db, rdb)

	rpc.POST("/healthcheck", healthHandler.Healthcheck)
	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}
