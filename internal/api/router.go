package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/sbcommerce/storefront-system/internal/api/handler"
	"github.com/sbcommerce/storefront-system/internal/api/middleware"
	"github.com/sbcommerce/storefront-system/internal/core/domain"
	"github.com/sbcommerce/storefront-system/internal/core/service"
	"github.com/sbcommerce/storefront-system/internal/infrastructure/config"
	mongodb "github.com/sbcommerce/storefront-system/internal/infrastructure/db/mongo"
	redisdb "github.com/sbcommerce/storefront-system/internal/infrastructure/db/redis"
	"github.com/sbcommerce/storefront-system/internal/infrastructure/http/handlers"
	"github.com/sbcommerce/storefront-system/internal/infrastructure/queue"
)

// NewRouter builds the Echo instance with all routes registered and
// returns it together with the order dispatcher, which the caller must
// Start before serving traffic.
func NewRouter(db *mongo.Database, rdb *redis.Client, cfg *config.Config, log zerolog.Logger) (*echo.Echo, *queue.Dispatcher) {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("storefront"))

	// --- Dependencies ---
	userRepo := mongodb.NewUserRepository(db)
	productRepo := mongodb.NewProductRepository(db)
	orderRepo := mongodb.NewOrderRepository(db)
	cartStore := redisdb.NewCartStore(rdb)
	refreshStore := redisdb.NewRefreshStore(rdb)

	authService := service.NewAuthService(userRepo, refreshStore, cfg.JWTSecret, cfg.TokenTTL)
	productService := service.NewProductService(productRepo, log)
	cartService := service.NewCartManager(cartStore, log)
	orderService := service.NewOrderService(orderRepo, productRepo, cartService, log)
	adminService := service.NewAdminService(userRepo, productRepo, orderRepo, log)

	dispatcher := queue.NewDispatcher(cfg.Workers, orderService, log)

	authHandler := handler.NewAuthHandler(authService)
	productHandler := handler.NewProductHandler(productService)
	cartHandler := handler.NewCartHandler(cartService, productService)
	orderHandler := handler.NewOrderHandler(orderService, dispatcher)
	adminHandler := handler.NewAdminHandler(adminService, orderService)

	requireAuth := middleware.Auth(authService)
	requireAdmin := middleware.RBAC(domain.RoleAdmin)

	// --- Auth routes ---
	e.POST("/auth/register", authHandler.Register)
	e.POST("/auth/login", authHandler.Login)
	e.POST("/auth/refresh", authHandler.Refresh)
	e.POST("/auth/logout", authHandler.Logout)

	// --- Storefront routes ---
	v1 := e.Group("/v1")
	v1.GET("/products", productHandler.List)
	v1.GET("/products/:id", productHandler.Get)

	v1.GET("/cart", cartHandler.Get)
	v1.POST("/cart/items", cartHandler.Add)
	v1.PUT("/cart/items/:product_id", cartHandler.SetQuantity)
	v1.POST("/cart/items/:product_id/increment", cartHandler.Increment)
	v1.POST("/cart/items/:product_id/decrement", cartHandler.Decrement)
	v1.DELETE("/cart/items/:product_id", cartHandler.Remove)
	v1.DELETE("/cart", cartHandler.Clear)

	v1.GET("/me", authHandler.Me, requireAuth)
	v1.PUT("/me", authHandler.UpdateProfile, requireAuth)
	v1.POST("/checkout", orderHandler.Checkout, requireAuth)
	v1.GET("/orders", orderHandler.List, requireAuth)

	// --- Catalog management (admin) ---
	v1.POST("/products", productHandler.Create, requireAuth, requireAdmin)
	v1.PUT("/products/:id", productHandler.Update, requireAuth, requireAdmin)
	v1.DELETE("/products/:id", productHandler.Delete, requireAuth, requireAdmin)

	// --- Admin dashboard ---
	admin := v1.Group("/admin", requireAuth, requireAdmin)
	admin.GET("/stats", adminHandler.Stats)
	admin.GET("/users", adminHandler.ListUsers)
	admin.PUT("/users/:id/role", adminHandler.SetUserRole)
	admin.DELETE("/users/:id", adminHandler.DeleteUser)
	admin.GET("/orders", adminHandler.ListOrders)

	// --- Observability ---
	e.GET("/metrics", echoprometheus.NewHandler())

	// --- Health probes (no auth required) ---
	healthHandler := handlers.NewHealthHandler()
	healthDepsHandler := handlers.NewHealthDependenciesHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?

	return e, dispatcher
}
