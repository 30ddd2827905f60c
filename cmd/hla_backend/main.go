package main

import (
	"context"
	"database/sql"
	"log/slog"
	"os"
	"time"

	"github.com/hlmsouza/home_ledger_app/internal/adapters/cache"
	"github.com/hlmsouza/home_ledger_app/internal/core/services"
	"github.com/hlmsouza/home_ledger_app/internal/dto"
	"github.com/hlmsouza/home_ledger_app/internal/handlers"
	"github.com/hlmsouza/home_ledger_app/internal/middleware"
	"github.com/hlmsouza/home_ledger_app/internal/platform/config"
	"github.com/hlmsouza/home_ledger_app/internal/repositories/database/pgsql"
	"github.com/hlmsouza/home_ledger_app/internal/utils"
	"github.com/hlmsouza/home_ledger_app/internal/utils/hashkey"
	"github.com/hlmsouza/home_ledger_app/pkg/database"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	migrate "github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/ulule/limiter/v3"
	limitermemory "github.com/ulule/limiter/v3/drivers/store/memory"
)

func main() {
	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Initialize database connection pool (for application use)
	dbPool, err := database.NewPgxPool(context.Background(), cfg.DatabaseURL, cfg.EnableDBCheck)
	if err != nil {
		logger.Error("Failed to initialize database pool", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer dbPool.Close()
	logger.Info("Database connection pool established.")

	if err := runMigrations(logger, cfg.DatabaseURL); err != nil {
		logger.Error("Failed to run migrations", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Redis backs the read-through cache in front of the repositories.
	redisGateway, err := cache.NewRedisGateway(cache.RedisConfig{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})
	if err != nil {
		logger.Error("Failed to connect to Redis", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer redisGateway.Close()
	logger.Info("Redis connection established.")

	repos := pgsql.NewRepositoryProvider(dbPool)

	serviceContainer, err := services.NewServiceContainer(repos, redisGateway, hashkey.NewGenerator())
	if err != nil {
		logger.Error("Failed to build service container", slog.String("error", err.Error()))
		os.Exit(1)
	}

	posthogClient := utils.InitializePosthogClient(cfg.PosthogAPIKey, logger)
	defer posthogClient.Close()

	if err := dto.RegisterCustomValidators(); err != nil {
		logger.Error("Failed to register custom validators", slog.String("error", err.Error()))
		os.Exit(1)
	}

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware (logging, recovery, CORS, rate limit, analytics)
	r.Use(middleware.StructuredLoggingMiddleware(logger), gin.Recovery())
	r.Use(cors.New(corsConfig(cfg)))
	r.Use(middleware.RateLimit(newRateLimiter(logger, cfg.RateLimit)))
	r.Use(middleware.PosthogMiddleware(posthogClient))

	if err := r.SetTrustedProxies(nil); err != nil {
		logger.Error("Failed to set trusted proxies", slog.String("error", err.Error()))
		os.Exit(1)
	}

	handlers.RegisterRoutes(r, cfg, serviceContainer)

	logger.Info("Server starting", slog.String("port", cfg.Port))
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Error("Server failed to run", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

// runMigrations applies all pending "up" migrations using a temporary
// database/sql connection over the pgx stdlib driver.
func runMigrations(logger *slog.Logger, databaseURL string) error {
	logger.Info("Running database migrations...")

	migrationDB, err := sql.Open("pgx", databaseURL)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := migrationDB.Close(); cerr != nil {
			logger.Error("Error closing migration DB connection", slog.String("error", cerr.Error()))
		}
	}()

	if err := migrationDB.Ping(); err != nil {
		return err
	}

	driver, err := postgres.WithInstance(migrationDB, &postgres.Config{})
	if err != nil {
		return err
	}

	m, err := migrate.NewWithDatabaseInstance("file://migrations", "postgres", driver)
	if err != nil {
		return err
	}

	err = m.Up()
	if err != nil && err != migrate.ErrNoChange {
		return err
	}

	sourceErr, dbErr := m.Close()
	if sourceErr != nil {
		return sourceErr
	}
	if dbErr != nil {
		return dbErr
	}

	if err == migrate.ErrNoChange {
		logger.Info("No new migrations to apply.")
	} else {
		logger.Info("Database migrations applied successfully.")
	}
	return nil
}

func corsConfig(cfg *config.Config) cors.Config {
	corsCfg := cors.DefaultConfig()
	corsCfg.AllowOrigins = cfg.CORSAllowedOrigins
	corsCfg.AllowHeaders = []string{"Origin", "Content-Type", "Authorization"}
	corsCfg.AllowCredentials = true
	corsCfg.MaxAge = 12 * time.Hour
	return corsCfg
}

// newRateLimiter builds an in-memory rate limiter from the configured
// "<count>-<period>" format, e.g. "100-M".
func newRateLimiter(logger *slog.Logger, format string) *limiter.Limiter {
	rate, err := limiter.NewRateFromFormatted(format)
	if err != nil {
		logger.Warn("Invalid RATE_LIMIT format, falling back to 100-M", slog.String("error", err.Error()))
		rate = limiter.Rate{Period: time.Minute, Limit: 100}
	}
	return limiter.New(limitermemory.NewStore(), rate)
}
