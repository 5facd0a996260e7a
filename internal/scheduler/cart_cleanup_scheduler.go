package scheduler

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/sjpark/storefront-backend/internal/app/repository"
	"github.com/sjpark/storefront-backend/pkg/logger"
)

// CartCleanupScheduler purges abandoned cart items on a cron schedule so
// stale guest carts do not accumulate forever.
type CartCleanupScheduler struct {
	cron      *cron.Cron
	cartRepo  repository.CartRepository
	retention time.Duration
	schedule  string
}

func NewCartCleanupScheduler(cartRepo repository.CartRepository, retentionDays int, schedule string) *CartCleanupScheduler {
	return &CartCleanupScheduler{
		cron:      cron.New(),
		cartRepo:  cartRepo,
		retention: time.Duration(retentionDays) * 24 * time.Hour,
		schedule:  schedule,
	}
}

// Start registers and starts the cleanup job.
func (s *CartCleanupScheduler) Start() error {
	_, err := s.cron.AddFunc(s.schedule, func() {
		if err := s.RunOnce(context.Background()); err != nil {
			logger.Error("Scheduled cart cleanup failed", err)
		}
	})
	if err != nil {
		logger.Error("Failed to add cron job for cart cleanup", err)
		return err
	}

	s.cron.Start()
	logger.Info("Cart cleanup scheduler started", map[string]interface{}{
		"schedule":       s.schedule,
		"retention_days": int(s.retention.Hours() / 24),
	})
	return nil
}

// RunOnce executes a single cleanup pass.
func (s *CartCleanupScheduler) RunOnce(ctx context.Context) error {
	cutoff := time.Now().Add(-s.retention)
	logger.Info("Starting cart cleanup", map[string]interface{}{
		"cutoff": cutoff,
	})

	deleted, err := s.cartRepo.DeleteCreatedBefore(ctx, cutoff)
	if err != nil {
		return err
	}

	logger.Info("Cart cleanup completed", map[string]interface{}{
		"deleted": deleted,
	})
	return nil
}

// Stop stops the scheduler
func (s *CartCleanupScheduler) Stop() {
	logger.Info("Stopping cart cleanup scheduler...")
	s.cron.Stop()
}
