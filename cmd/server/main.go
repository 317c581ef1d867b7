package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"spendtrack/internal/ai"
	"spendtrack/internal/config"
	"spendtrack/internal/database"
	"spendtrack/internal/handlers"
	"spendtrack/internal/middleware"
	"spendtrack/internal/repositories"
	"spendtrack/internal/services"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	// .env is optional; real deployments use the environment directly
	if err := godotenv.Load(); err != nil {
		slog.Debug("no .env file loaded", "error", err)
	}

	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	cfg := config.Load()

	db, err := database.New(&cfg.Database)
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := runMigrations(db); err != nil {
		slog.Error("failed to run migrations", "error", err)
		os.Exit(1)
	}

	e := buildServer(cfg, db)

	go func() {
		addr := cfg.Server.Host + ":" + cfg.Server.Port
		slog.Info("starting server", "addr", addr, "environment", cfg.Server.Environment)
		if err := e.Start(addr); err != nil {
			slog.Info("server stopped", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		slog.Error("forced shutdown", "error", err)
	}
}

func runMigrations(db *database.DB) error {
	sqlDB, err := db.DB.DB()
	if err != nil {
		return err
	}

	runner := database.NewMigrationRunner(sqlDB)
	if err := runner.WaitForDatabase(); err != nil {
		return err
	}
	return runner.RunMigrations()
}

func buildServer(cfg *config.Config, db *database.DB) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Server.ReadTimeout = cfg.Server.ReadTimeout
	e.Server.WriteTimeout = cfg.Server.WriteTimeout
	e.Validator = handlers.NewValidator()
	e.HTTPErrorHandler = middleware.CustomHTTPErrorHandler

	e.Use(middleware.RequestID())
	e.Use(middleware.PanicRecovery())
	e.Use(middleware.SecurityHeaders())
	e.Use(middleware.CORS(cfg.Server.CORSAllowOrigins))
	e.Use(middleware.RateLimiter(cfg.Security.RateLimitPerSecond, cfg.Security.RateLimitBurst))
	e.Use(middleware.Identify())

	// Repositories
	expenseRepo := repositories.NewExpenseRepository(db.DB)
	categoryRepo := repositories.NewCategoryRepository(db.DB)
	tagRepo := repositories.NewTagRepository(db.DB)
	settingRepo := repositories.NewUserSettingRepository(db.DB)

	// AI collaborator, constructed once and injected
	aiClient := ai.NewClient(cfg.AI, slog.Default())
	if !aiClient.Enabled() {
		slog.Info("ai features disabled, no API key configured")
	}

	// Services
	metrics := services.NewPrometheusMetrics()
	expenseService := services.NewExpenseService(expenseRepo, categoryRepo, tagRepo, aiClient, metrics)
	summaryService := services.NewSummaryService(expenseRepo, aiClient, metrics)
	categoryService := services.NewCategoryService(categoryRepo)
	tagService := services.NewTagService(tagRepo)
	settingService := services.NewUserSettingService(settingRepo)

	// Handlers
	expenseHandler := handlers.NewExpenseHandler(expenseService)
	summaryHandler := handlers.NewSummaryHandler(summaryService)
	categoryHandler := handlers.NewCategoryHandler(categoryService)
	tagHandler := handlers.NewTagHandler(tagService)
	settingsHandler := handlers.NewSettingsHandler(settingService)
	healthHandler := handlers.NewHealthCheckHandler(db.DB)

	e.GET("/health", healthHandler.HealthCheck)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	api := e.Group("/api/v1")

	expenses := api.Group("/expenses")
	expenses.GET("", expenseHandler.ListExpenses)
	expenses.POST("", expenseHandler.CreateExpense, middleware.RequireUser())
	// Static routes before :id so summary/insights don't match as IDs
	expenses.GET("/summary", summaryHandler.GetSummary, middleware.RequireUser())
	expenses.GET("/insights", summaryHandler.GetInsights, middleware.RequireUser())
	expenses.GET("/:id", expenseHandler.GetExpense)
	expenses.PUT("/:id", expenseHandler.UpdateExpense, middleware.RequireUser())
	expenses.DELETE("/:id", expenseHandler.DeleteExpense, middleware.RequireUser())

	api.GET("/categories", categoryHandler.ListCategories)
	api.POST("/categories", categoryHandler.CreateCategory, middleware.RequireUser())
	api.DELETE("/categories/:id", categoryHandler.DeleteCategory, middleware.RequireUser())

	api.GET("/tags", tagHandler.ListTags)
	api.POST("/tags", tagHandler.CreateTag, middleware.RequireUser())
	api.DELETE("/tags/:id", tagHandler.DeleteTag, middleware.RequireUser())

	api.GET("/settings", settingsHandler.GetSettings, middleware.RequireUser())
	api.PUT("/settings", settingsHandler.UpdateSettings, middleware.RequireUser())

	if cfg.IsDevelopment() {
		devHandler := handlers.NewDevHandler(services.NewExpenseGenerator(expenseRepo, categoryRepo))
		api.POST("/dev/seed-expenses", devHandler.SeedExpenses, middleware.RequireUser())
	}

	return e
}
