package main

import (
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sjpark/storefront-backend/config"
	"github.com/sjpark/storefront-backend/internal/app/repository"
	"github.com/sjpark/storefront-backend/internal/app/service"
	"github.com/sjpark/storefront-backend/internal/db"
	"github.com/sjpark/storefront-backend/internal/scheduler"
	"github.com/sjpark/storefront-backend/internal/storage"
	"github.com/sjpark/storefront-backend/pkg/currency"
	"github.com/sjpark/storefront-backend/pkg/logger"
	"github.com/sjpark/storefront-backend/pkg/redis"
)

// The cart core runs headless: it hosts the aggregation engine for whatever
// transport adapter fronts it, plus the background cleanup job.
func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("Failed to load configuration", err)
	}

	// Initialize logger
	logLevel := "info"
	if cfg.Server.Environment == "development" {
		logLevel = "debug"
	}
	logger.Initialize(logger.Config{
		Level:       logLevel,
		Format:      "console", // Use "json" for production
		EnableColor: true,
	})

	logger.Info("Starting storefront cart service", map[string]interface{}{
		"environment": cfg.Server.Environment,
		"log_level":   logLevel,
	})

	// Initialize database
	if err := db.Initialize(&cfg.Database); err != nil {
		logger.Fatal("Failed to initialize database", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			logger.Error("Failed to close database connection", err)
		}
	}()

	// Run migrations
	if err := db.Migrate(); err != nil {
		logger.Fatal("Failed to run migrations", err)
	}

	// Initialize Redis (applied-coupon store)
	if err := redis.Init(&cfg.Redis); err != nil {
		logger.Fatal("Failed to initialize Redis", err)
	}
	defer func() {
		if err := redis.Close(); err != nil {
			logger.Error("Failed to close Redis connection", err)
		}
	}()

	formatter, err := currency.NewFormatter(cfg.Currency.Locale, cfg.Currency.DecimalPlaces)
	if err != nil {
		logger.Fatal("Failed to build currency formatter", err)
	}

	var mediaStorage storage.Service
	if cfg.Media.BaseURL != "" {
		mediaStorage = storage.NewCDNStorage(cfg.Media.BaseURL)
	} else {
		mediaStorage = storage.NewLocalStorage()
	}

	// Repositories
	database := db.GetDB()
	cartRepo := repository.NewCartRepository(database)
	productRepo := repository.NewProductRepository(database)
	couponRepo := repository.NewCouponRepository(database)
	appliedCoupons := repository.NewAppliedCouponRepository(
		redis.GetClient(),
		time.Duration(cfg.Cart.AppliedCouponTTLHours)*time.Hour,
	)

	// Services
	mediaService := service.NewMediaService(mediaStorage)
	couponService := service.NewCouponService(couponRepo, productRepo)
	cartService := service.NewCartService(cartRepo, appliedCoupons, couponService, mediaService, formatter)
	_ = cartService // exposed to the transport adapter once one is wired in

	// Background jobs
	cleanup := scheduler.NewCartCleanupScheduler(cartRepo, cfg.Cart.RetentionDays, cfg.Cart.CleanupSchedule)
	if err := cleanup.Start(); err != nil {
		logger.Fatal("Failed to start cart cleanup scheduler", err)
	}
	defer cleanup.Stop()

	logger.Info("Storefront cart service started")

	// Block until shutdown signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down storefront cart service...")
}
