package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/hrdesk/employee-api/docs"
	"github.com/hrdesk/employee-api/internal/api/handler"
	"github.com/hrdesk/employee-api/internal/api/middleware"
	"github.com/hrdesk/employee-api/internal/core/domain"
	"github.com/hrdesk/employee-api/internal/core/service"
	mongodb "github.com/hrdesk/employee-api/internal/infrastructure/db/mongo"
	redisdb "github.com/hrdesk/employee-api/internal/infrastructure/db/redis"
	"github.com/hrdesk/employee-api/internal/pkg/token"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *mongo.Database, rdb *redis.Client, tokenCfg token.Config, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("employee_api"))

	// --- Dependencies ---
	tokens := token.NewManager(tokenCfg)
	revocations := redisdb.NewRevocationList(rdb)

	userRepo := mongodb.NewUserRepository(db)
	roleRepo := mongodb.NewRoleRepository(db)
	employeeRepo := mongodb.NewEmployeeRepository(db)

	authService := service.NewAuthService(userRepo, tokens, log)
	roleService := service.NewRoleService(roleRepo, log)
	employeeService := service.NewEmployeeService(employeeRepo, log)

	authHandler := handler.NewAuthHandler(authService, roleService)
	roleHandler := handler.NewRoleHandler(roleService)
	employeeHandler := handler.NewEmployeeHandler(employeeService)
	healthHandler := handler.NewHealthHandler(db, rdb)

	requireAuth := middleware.Auth(tokens, revocations)
	requireAdmin := middleware.RequireRoles(domain.RoleAdmin)

	// --- Auth routes ---
	auth := e.Group("/api/auth")
	auth.POST("/register", authHandler.Register)
	auth.POST("/login", authHandler.Login)
	auth.POST("/seed-roles", authHandler.SeedRoles)

	// --- Role administration (Admin only) ---
	roles := e.Group("/api/roles", requireAuth, requireAdmin)
	roles.GET("", roleHandler.List)
	roles.POST("", roleHandler.Create)
	roles.DELETE("/:roleName", roleHandler.Delete)

	// --- Employee directory ---
	employees := e.Group("/api/employees")
	employees.GET("", employeeHandler.List, requireAuth)
	employees.POST("", employeeHandler.Create, requireAuth, requireAdmin)
	employees.GET("/:id", employeeHandler.Get) // deliberately open, see DESIGN.md

	// --- Operational endpoints ---
	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", healthHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	return e
}
