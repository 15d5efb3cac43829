package api

import (
	"time"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/taskmanager/task-api/internal/api/handler"
	"github.com/taskmanager/task-api/internal/api/metrics"
	"github.com/taskmanager/task-api/internal/api/middleware"
	"github.com/taskmanager/task-api/internal/core/service"
	"github.com/taskmanager/task-api/internal/infrastructure/config"
	mongodb "github.com/taskmanager/task-api/internal/infrastructure/db/mongo"
	redisdb "github.com/taskmanager/task-api/internal/infrastructure/db/redis"
)

// NewRouter builds the Echo instance with every route registered. Route
// protection mirrors the access model: auth endpoints and reads are open,
// category mutations and stats sit behind the gate plus the admin policy,
// and task listing honors a token when one is presented.
func NewRouter(db *mongo.Database, rdb *redis.Client, cfg *config.Config, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(requestMetrics())

	e.HTTPErrorHandler = NewHTTPErrorHandler(log)
	e.Validator = handler.NewValidator()

	// --- Dependencies ---
	userRepo := mongodb.NewUserRepository(db)
	taskRepo := mongodb.NewTaskRepository(db)
	projectRepo := mongodb.NewProjectRepository(db)
	categoryRepo := mongodb.NewCategoryRepository(db)
	statsCache := redisdb.NewStatsCache(rdb, cfg.StatsCacheTTL)

	policy := service.NewPolicy()
	tokenService := service.NewTokenService(cfg.JWTSecret, cfg.TokenTTL)
	authService := service.NewAuthService(userRepo, tokenService, cfg.BcryptCost, log)
	userService := service.NewUserService(userRepo, taskRepo, cfg.BcryptCost, log)
	taskService := service.NewTaskService(taskRepo, userRepo, projectRepo, policy, log)
	projectService := service.NewProjectService(projectRepo)
	categoryService := service.NewCategoryService(categoryRepo)
	statsService := service.NewStatsService(userRepo, taskRepo, projectRepo, statsCache, log)

	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService)
	taskHandler := handler.NewTaskHandler(taskService)
	projectHandler := handler.NewProjectHandler(projectService)
	categoryHandler := handler.NewCategoryHandler(categoryService)
	statsHandler := handler.NewStatsHandler(statsService)
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db, rdb)

	authRequired := middleware.Auth(tokenService, userRepo)
	authOptional := middleware.OptionalAuth(tokenService, userRepo)
	adminCategory := middleware.Authorize(policy, service.OpCategoryWrite)
	adminStats := middleware.Authorize(policy, service.OpStatsView)

	// --- Auth ---
	e.POST("/auth/register", authHandler.Register)
	e.POST("/auth/login", authHandler.Login)

	// --- Users ---
	e.GET("/users/all", userHandler.List)
	e.GET("/users/:userName", userHandler.GetByName)
	e.POST("/users", userHandler.Create)
	e.DELETE("/users/:userName", userHandler.Delete)

	// --- Tasks ---
	e.GET("/tasks/all", taskHandler.List, authOptional)
	e.GET("/tasks/by-user/:userId", taskHandler.ListByUser)
	e.GET("/tasks", taskHandler.List, authOptional)
	e.GET("/tasks/:id", taskHandler.Get)
	e.POST("/tasks", taskHandler.Create)
	e.PUT("/tasks/:id", taskHandler.Update)
	e.DELETE("/tasks/:id", taskHandler.Delete)

	// --- Projects ---
	e.GET("/projects", projectHandler.List)
	e.GET("/projects/:id", projectHandler.Get)
	e.POST("/projects", projectHandler.Create)
	e.PUT("/projects/:id", projectHandler.Update)
	e.DELETE("/projects/:id", projectHandler.Delete)

	// --- Categories (mutations admin-only) ---
	e.GET("/categories", categoryHandler.List)
	e.GET("/categories/:id", categoryHandler.Get)
	e.POST("/categories", categoryHandler.Create, authRequired, adminCategory)
	e.PUT("/categories/:id", categoryHandler.Update, authRequired, adminCategory)
	e.DELETE("/categories/:id", categoryHandler.Delete, authRequired, adminCategory)

	// --- Stats (admin only) ---
	e.GET("/stats", statsHandler.Get, authRequired, adminStats)

	// --- Probes and metrics ---
	e.GET("/status", healthHandler.Liveness)
	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	return e
}

// requestMetrics records per-route handler latency.
func requestMetrics() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)
			metrics.RequestDuration.
				WithLabelValues(c.Request().Method, c.Path()).
				Observe(time.Since(start).Seconds())
			return err
		}
	}
}
