package db

import (
	"github.com/sjpark/storefront-backend/internal/app/model"
	"github.com/sjpark/storefront-backend/pkg/logger"
)

// Migrate runs database migrations
func Migrate() error {
	logger.Info("Running database migrations...")

	models := []interface{}{
		&model.Customer{},
		&model.Media{},
		&model.Product{},
		&model.ProductOption{},
		&model.ProductOptionCombination{},
		&model.CartItem{},
		&model.Coupon{},
	}

	if err := DB.AutoMigrate(models...); err != nil {
		logger.Error("Failed to run migrations", err)
		return err
	}

	logger.Info("Database migrations completed successfully")
	return nil
}
