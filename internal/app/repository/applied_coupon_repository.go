package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sjpark/storefront-backend/pkg/logger"
)

// AppliedCouponRepository keeps the coupon code currently associated with a
// customer's cart. The association is session-scale state, so it lives in
// Redis under a TTL rather than on the cart rows themselves.
type AppliedCouponRepository interface {
	// Get returns the applied code, or "" when none is associated.
	Get(ctx context.Context, customerID uint) (string, error)
	Set(ctx context.Context, customerID uint, code string) error
	Clear(ctx context.Context, customerID uint) error
}

type appliedCouponRepository struct {
	client *redis.Client
	ttl    time.Duration
}

func NewAppliedCouponRepository(client *redis.Client, ttl time.Duration) AppliedCouponRepository {
	return &appliedCouponRepository{client: client, ttl: ttl}
}

func appliedCouponKey(customerID uint) string {
	return fmt.Sprintf("cart:coupon:%d", customerID)
}

func (r *appliedCouponRepository) Get(ctx context.Context, customerID uint) (string, error) {
	code, err := r.client.Get(ctx, appliedCouponKey(customerID)).Result()
	if errors.Is(err, redis.Nil) {
		return "", nil
	}
	if err != nil {
		logger.Error("Failed to read applied coupon code", err, map[string]interface{}{
			"customer_id": customerID,
		})
		return "", err
	}
	return code, nil
}

func (r *appliedCouponRepository) Set(ctx context.Context, customerID uint, code string) error {
	err := r.client.Set(ctx, appliedCouponKey(customerID), code, r.ttl).Err()
	if err != nil {
		logger.Error("Failed to store applied coupon code", err, map[string]interface{}{
			"customer_id": customerID,
			"code":        code,
		})
		return err
	}

	logger.Debug("Applied coupon code stored", map[string]interface{}{
		"customer_id": customerID,
		"code":        code,
	})
	return nil
}

func (r *appliedCouponRepository) Clear(ctx context.Context, customerID uint) error {
	err := r.client.Del(ctx, appliedCouponKey(customerID)).Err()
	if err != nil {
		logger.Error("Failed to clear applied coupon code", err, map[string]interface{}{
			"customer_id": customerID,
		})
		return err
	}
	return nil
}
