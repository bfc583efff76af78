package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/SscSPs/moneyparse/internal/catalog"
	portsrepo "github.com/SscSPs/moneyparse/internal/core/ports/repositories"
	"github.com/SscSPs/moneyparse/internal/core/services"
	"github.com/SscSPs/moneyparse/internal/handlers"
	"github.com/SscSPs/moneyparse/internal/middleware"
	"github.com/SscSPs/moneyparse/internal/platform/config"
	"github.com/SscSPs/moneyparse/internal/platform/metrics"
	"github.com/SscSPs/moneyparse/internal/repositories/database/pgsql"
	"github.com/SscSPs/moneyparse/pkg/database"
	"github.com/gin-gonic/gin"
)

// @title Moneyparse API
// @version 1.0
// @description Extracts monetary amounts and currencies from free-form text.

// @host localhost:8080
// @BasePath /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	ctx := context.Background()
	cat := catalog.Default()
	appMetrics := metrics.NewMetrics()

	// Without a database the service runs on the embedded catalog.
	repos := portsrepo.RepositoryProvider{}
	if cfg.DatabaseURL != "" {
		logger.Info("Running database migrations...")
		if err := database.RunMigrations(cfg.DatabaseURL, cfg.MigrationsPath, logger); err != nil {
			logger.Error("Failed to run database migrations", slog.String("error", err.Error()))
			os.Exit(1)
		}

		dbPool, err := database.NewPgxPool(ctx, cfg.DatabaseURL, cfg.EnableDBCheck)
		if err != nil {
			logger.Error("Failed to initialize database pool", slog.String("error", err.Error()))
			os.Exit(1)
		}
		defer database.ClosePgxPool(dbPool)
		logger.Info("Database connection pool established.")

		repos = pgsql.NewRepositoryProvider(dbPool)
	}

	container := services.NewServiceContainer(cfg, cat, repos, appMetrics)
	if err := container.StaticData.InitializeStaticData(ctx); err != nil {
		logger.Error("Failed to initialize static data", slog.String("error", err.Error()))
		os.Exit(1)
	}

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware (logging, recovery, CORS)
	r.Use(middleware.StructuredLoggingMiddleware(logger), gin.Recovery(), middleware.CORS(cfg.CORSAllowedOrigins))

	if err := r.SetTrustedProxies(nil); err != nil {
		logger.Error("Failed to set trusted proxies", slog.String("error", err.Error()))
		os.Exit(1)
	}

	if err := handlers.RegisterRoutes(r, cfg, container); err != nil {
		logger.Error("Failed to register routes", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger.Info("Server starting", slog.String("port", cfg.Port), slog.Int("currencies", cat.Len()))
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Error("Server failed to run", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
