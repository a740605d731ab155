package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/MinhTam4728/customer-api/internal/api/handler"
	"github.com/MinhTam4728/customer-api/internal/api/middleware"
	"github.com/MinhTam4728/customer-api/internal/core/domain"
	"github.com/MinhTam4728/customer-api/internal/core/service"
	mongodb "github.com/MinhTam4728/customer-api/internal/infrastructure/db/mongo"
	redisdb "github.com/MinhTam4728/customer-api/internal/infrastructure/db/redis"
	"github.com/MinhTam4728/customer-api/internal/pkg/config"
)

// NewRouter builds the Echo instance with all routes registered. The token
// service and repositories are constructed here and passed in explicitly;
// nothing reaches for ambient global state.
func NewRouter(db *mongo.Database, rdb *redis.Client, cfg *config.Config, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)
	e.Validator = handler.NewValidator()

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("customerapi"))

	// --- Dependencies ---
	customerRepo := mongodb.NewCustomerRepository(db)
	orderRepo := mongodb.NewOrderRepository(db)
	denylist := redisdb.NewDenylist(rdb)

	tokenService := service.NewTokenService(cfg.JWT.Secret, cfg.JWT.TTL, denylist, log)
	authService := service.NewAuthService(customerRepo, tokenService, log)
	customerService := service.NewCustomerService(customerRepo, orderRepo, log)
	orderService := service.NewOrderService(orderRepo, customerRepo, log)

	authHandler := handler.NewAuthHandler(authService)
	customerHandler := handler.NewCustomerHandler(customerService)
	orderHandler := handler.NewOrderHandler(orderService)

	authGuard := middleware.Auth(tokenService, customerRepo, log)
	mountAPIRoutes(e, authHandler, customerHandler, orderHandler, authGuard, log)

	// --- Health probes, metrics, docs (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	return e
}

// mountAPIRoutes registers the authenticated route table. Split from
// NewRouter so the full guard chain can be assembled against any
// implementation of the ports.
func mountAPIRoutes(e *echo.Echo, authHandler *handler.AuthHandler, customerHandler *handler.CustomerHandler, orderHandler *handler.OrderHandler, authGuard echo.MiddlewareFunc, log zerolog.Logger) {
	// --- Auth routes ---
	e.POST("/login", authHandler.Login)
	e.POST("/logout", authHandler.Logout, authGuard)

	// --- Admin routes (role 0) ---
	admin := e.Group("/admin", authGuard, middleware.RequireRole(domain.RoleAdmin, log))
	admin.GET("/customers", customerHandler.List)
	admin.POST("/customers", customerHandler.Create)
	admin.PUT("/customers/:id", customerHandler.Update)
	admin.DELETE("/customers/:id", customerHandler.Delete)
	admin.PUT("/change-password", customerHandler.ChangePassword)
	admin.GET("/orders", orderHandler.ListAll)

	// --- Customer routes (role 1) ---
	customer := e.Group("/customer", authGuard, middleware.RequireRole(domain.RoleCustomer, log))
	customer.GET("/info", customerHandler.Info)
	customer.PUT("", customerHandler.UpdateProfile)
	customer.PUT("/change-password", customerHandler.ChangePasswordSelf)
	customer.GET("/orders", orderHandler.ListMine)
}
