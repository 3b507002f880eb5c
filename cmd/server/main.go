package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"urlite/internal/auth"
	"urlite/internal/clickstream"
	"urlite/internal/config"
	httpHandler "urlite/internal/handler/http"
	"urlite/internal/ratelimit"
	"urlite/internal/repository/postgres"
	redisrepo "urlite/internal/repository/redis"
	"urlite/internal/service"
	"urlite/pkg/logger"

	"github.com/joho/godotenv"
)

func main() {
	// .env is optional; real deployments set the environment directly
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	appLogger := logger.New(cfg.App.LogLevel)
	appLogger.Info("Starting URLite",
		"environment", cfg.App.Environment,
		"port", cfg.Server.Port,
	)

	ctx := context.Background()
	db, err := postgres.InitDB(
		ctx,
		cfg.Database.DatabaseDSN(),
		cfg.Database.MaxOpenConns,
		cfg.Database.MaxIdleConns,
		cfg.Database.ConnMaxLifetime,
	)
	if err != nil {
		log.Fatalf("Database connection failed: %v", err)
	}
	defer db.Close()

	if err := postgres.Migrate(ctx, db); err != nil {
		log.Fatalf("Database migration failed: %v", err)
	}
	appLogger.Info("Database ready")

	redisClient, err := redisrepo.InitRedis(cfg.Redis.RedisAddr(), cfg.Redis.Password, cfg.Redis.DB)
	if err != nil {
		log.Fatalf("Redis connection failed: %v", err)
	}
	defer redisClient.Close()
	appLogger.Info("Redis connection established")

	// Repositories (data access layer)
	linkRepo := postgres.NewLinkRepository(db)
	clickRepo := postgres.NewClickRepository(db)
	userRepo := postgres.NewUserRepository(db)
	linkCache := redisrepo.NewCache(redisClient, cfg.Redis.CacheTTL)

	// Background click pipeline: the redirect path enqueues, these workers
	// classify, geolocate and persist
	locator := clickstream.NewLocator(cfg.Geo.Endpoint, cfg.Geo.Timeout)
	clickPool := clickstream.NewPool(clickRepo, locator, appLogger.Logger, cfg.App.ClickQueueSize)
	clickPool.Start(cfg.App.ClickWorkers)

	// Services (business logic layer)
	tokens := auth.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)
	linkService := service.NewLinkService(linkRepo, linkCache, appLogger.Logger, cfg.App.ShortCodeLength)
	analyticsService := service.NewAnalyticsService(linkRepo, clickRepo)
	authService := service.NewAuthService(userRepo, tokens)

	handler := httpHandler.NewHandler(
		linkService,
		analyticsService,
		authService,
		clickPool,
		appLogger.Logger,
		cfg.App.BaseURL,
	)

	var limiter httpHandler.RateLimiter
	if cfg.App.RateLimitEnabled {
		limiter = ratelimit.New(redisClient, cfg.App.RateLimitPerMinute, time.Minute)
	}

	router := httpHandler.NewRouter(handler, tokens, limiter, appLogger.Logger)

	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	go func() {
		appLogger.Info("Server starting", "address", server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		appLogger.Error("Server forced to shutdown", "error", err)
	}

	// Drain queued click events before closing the database
	clickPool.Stop()

	appLogger.Info("Server exited gracefully")
}
