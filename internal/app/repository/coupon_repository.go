package repository

import (
	"context"

	"github.com/sjpark/storefront-backend/internal/app/model"
	"github.com/sjpark/storefront-backend/pkg/logger"
	"gorm.io/gorm"
)

type CouponRepository interface {
	FindByCode(ctx context.Context, code string) (*model.Coupon, error)
	Create(ctx context.Context, coupon *model.Coupon) error
}

type couponRepository struct {
	db *gorm.DB
}

func NewCouponRepository(db *gorm.DB) CouponRepository {
	return &couponRepository{db: db}
}

func (r *couponRepository) FindByCode(ctx context.Context, code string) (*model.Coupon, error) {
	logger.Debug("Finding coupon by code in database", map[string]interface{}{
		"code": code,
	})

	var coupon model.Coupon
	err := r.db.WithContext(ctx).Where("code = ?", code).First(&coupon).Error
	if err != nil {
		logger.Error("Failed to find coupon by code in database", err, map[string]interface{}{
			"code": code,
		})
		return nil, err
	}

	logger.Debug("Coupon found by code in database", map[string]interface{}{
		"coupon_id": coupon.ID,
		"code":      coupon.Code,
	})
	return &coupon, nil
}

func (r *couponRepository) Create(ctx context.Context, coupon *model.Coupon) error {
	logger.Debug("Creating coupon in database", map[string]interface{}{
		"code": coupon.Code,
	})

	if err := r.db.WithContext(ctx).Create(coupon).Error; err != nil {
		logger.Error("Failed to create coupon in database", err, map[string]interface{}{
			"code": coupon.Code,
		})
		return err
	}

	logger.Debug("Coupon created in database", map[string]interface{}{
		"coupon_id": coupon.ID,
		"code":      coupon.Code,
	})
	return nil
}
