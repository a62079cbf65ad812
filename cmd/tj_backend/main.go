package main

import (
	"context"
	"database/sql"
	"log/slog"
	"os"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	migrate "github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/traveljournal/tj_backend/internal/adapters/database/pgsql"
	portsrepo "github.com/traveljournal/tj_backend/internal/core/ports/repositories"
	"github.com/traveljournal/tj_backend/internal/core/services"
	"github.com/traveljournal/tj_backend/internal/handlers"
	"github.com/traveljournal/tj_backend/internal/middleware"
	"github.com/traveljournal/tj_backend/internal/platform/cache"
	"github.com/traveljournal/tj_backend/internal/platform/config"
	"github.com/traveljournal/tj_backend/internal/platform/storage"
	"github.com/traveljournal/tj_backend/internal/utils"
	"github.com/traveljournal/tj_backend/pkg/database"
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

	if err := runMigrations(cfg, logger); err != nil {
		os.Exit(1)
	}

	// Cache backing: Redis when configured, otherwise the in-memory TTL map.
	appCache := buildCache(cfg, logger)
	defer appCache.Close()

	photoStore, err := storage.NewPhotoStore(cfg.UploadDir, cfg.MaxUploadSizeByte)
	if err != nil {
		logger.Error("Failed to initialize photo storage", slog.String("error", err.Error()))
		os.Exit(1)
	}

	posthogClient := utils.InitializePosthogClient(cfg.PosthogAPIKey, logger)
	defer posthogClient.Close()

	repos := &portsrepo.RepositoryProvider{
		UserRepo:         pgsql.NewPgxUserRepository(dbPool),
		SubscriptionRepo: pgsql.NewPgxSubscriptionRepository(dbPool),
		JournalRepo:      pgsql.NewPgxJournalRepository(dbPool),
		EntryRepo:        pgsql.NewPgxEntryRepository(dbPool),
		MediaRepo:        pgsql.NewPgxMediaRepository(dbPool),
		PhotoRepo:        pgsql.NewPgxPhotoRepository(dbPool),
	}
	serviceContainer := services.NewContainer(repos, appCache, posthogClient, photoStore)

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware (logging, recovery, CORS)
	r.Use(middleware.StructuredLoggingMiddleware(logger), gin.Recovery())
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{cfg.FrontendBaseURL},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
	}))

	if err := r.SetTrustedProxies(nil); err != nil {
		logger.Error("Failed to set trusted proxies", slog.String("error", err.Error()))
		os.Exit(1)
	}

	handlers.RegisterRoutes(r, cfg, serviceContainer, photoStore)

	logger.Info("Server starting", slog.String("port", cfg.Port))
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Error("Server failed to run", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

// buildCache selects the cache backing from config.
func buildCache(cfg *config.Config, logger *slog.Logger) cache.Cache {
	if cfg.RedisURL == "" {
		logger.Info("Using in-memory cache backing")
		return cache.NewMemoryCache(cfg.CacheDefaultTTL)
	}
	redisCache, err := cache.NewRedisCache(context.Background(), cfg.RedisURL, cfg.CacheDefaultTTL)
	if err != nil {
		logger.Warn("Redis unavailable, falling back to in-memory cache", slog.String("error", err.Error()))
		return cache.NewMemoryCache(cfg.CacheDefaultTTL)
	}
	logger.Info("Using Redis cache backing")
	return redisCache
}

// runMigrations applies all pending "up" migrations from the migrations
// directory over a temporary database/sql connection.
func runMigrations(cfg *config.Config, logger *slog.Logger) error {
	logger.Info("Running database migrations...")

	migrationDB, err := sql.Open("pgx", cfg.DatabaseURL)
	if err != nil {
		logger.Error("Failed to open database connection for migrations", slog.String("error", err.Error()))
		return err
	}
	defer func() {
		if cerr := migrationDB.Close(); cerr != nil {
			logger.Error("Error closing migration DB connection", slog.String("error", cerr.Error()))
		}
	}()
	if err := migrationDB.Ping(); err != nil {
		logger.Error("Failed to ping database for migrations", slog.String("error", err.Error()))
		return err
	}

	driver, err := postgres.WithInstance(migrationDB, &postgres.Config{})
	if err != nil {
		logger.Error("Could not create postgres driver instance for migrations", slog.String("error", err.Error()))
		return err
	}

	m, err := migrate.NewWithDatabaseInstance("file://migrations", "postgres", driver)
	if err != nil {
		logger.Error("Could not create migrate instance", slog.String("error", err.Error()))
		return err
	}

	err = m.Up()
	if err != nil && err != migrate.ErrNoChange {
		logger.Error("Failed to apply migrations", slog.String("error", err.Error()))
		return err
	}

	sourceErr, dbErr := m.Close()
	if sourceErr != nil {
		logger.Error("Migration source error", slog.String("error", sourceErr.Error()))
		return sourceErr
	}
	if dbErr != nil {
		logger.Error("Migration database error", slog.String("error", dbErr.Error()))
		return dbErr
	}

	if err == migrate.ErrNoChange {
		logger.Info("No new migrations to apply.")
	} else {
		logger.Info("Database migrations applied successfully.")
	}
	return nil
}
