package service

import (
	"context"
	"testing"
	"time"

	"github.com/sjpark/storefront-backend/internal/app/model"
	"github.com/sjpark/storefront-backend/internal/app/repository"
	"github.com/sjpark/storefront-backend/internal/db"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupCouponServiceTest(t *testing.T) (CouponService, *model.Product, *gorm.DB) {
	testDB, err := db.SetupTestDB()
	require.NoError(t, err)
	t.Cleanup(func() {
		db.CleanupTestDB(testDB)
	})

	couponRepo := repository.NewCouponRepository(testDB)
	productRepo := repository.NewProductRepository(testDB)
	couponService := NewCouponService(couponRepo, productRepo)

	product := &model.Product{
		Name:           "Test Product",
		Price:          50,
		IsAllowToOrder: true,
		IsPublished:    true,
	}
	testDB.Create(product)

	return couponService, product, testDB
}

func cartInfoWith(productID uint, quantity int) CartInfoForCoupon {
	return CartInfoForCoupon{
		Items: []CartItemForCoupon{{ProductID: productID, Quantity: quantity}},
	}
}

func TestCouponService_Validate_UnknownCode(t *testing.T) {
	couponService, product, _ := setupCouponServiceTest(t)

	result, err := couponService.Validate(context.Background(), 1, "NO-SUCH-CODE", cartInfoWith(product.ID, 1))
	require.NoError(t, err)
	assert.False(t, result.Succeeded)
	assert.Equal(t, ErrorCodeCouponNotFound, result.ErrorCode)
	assert.Equal(t, `The coupon "NO-SUCH-CODE" is not valid`, result.ErrorMessage)
	assert.Equal(t, float64(0), result.DiscountAmount)
}

func TestCouponService_Validate_Inactive(t *testing.T) {
	couponService, product, testDB := setupCouponServiceTest(t)

	testDB.Create(&model.Coupon{
		Code:          "DISABLED",
		DiscountType:  model.DiscountTypePercentage,
		DiscountValue: 10,
		IsActive:      false,
	})

	result, err := couponService.Validate(context.Background(), 1, "DISABLED", cartInfoWith(product.ID, 1))
	require.NoError(t, err)
	assert.False(t, result.Succeeded)
	assert.Equal(t, ErrorCodeCouponInactive, result.ErrorCode)
}

func TestCouponService_Validate_NotStarted(t *testing.T) {
	couponService, product, testDB := setupCouponServiceTest(t)

	starts := time.Now().Add(24 * time.Hour)
	testDB.Create(&model.Coupon{
		Code:          "FUTURE",
		DiscountType:  model.DiscountTypePercentage,
		DiscountValue: 10,
		IsActive:      true,
		ValidFrom:     &starts,
	})

	result, err := couponService.Validate(context.Background(), 1, "FUTURE", cartInfoWith(product.ID, 1))
	require.NoError(t, err)
	assert.False(t, result.Succeeded)
	assert.Equal(t, ErrorCodeCouponNotStarted, result.ErrorCode)
}

func TestCouponService_Validate_Expired(t *testing.T) {
	couponService, product, testDB := setupCouponServiceTest(t)

	ended := time.Now().Add(-24 * time.Hour)
	testDB.Create(&model.Coupon{
		Code:          "EXPIRED",
		DiscountType:  model.DiscountTypePercentage,
		DiscountValue: 10,
		IsActive:      true,
		ValidTo:       &ended,
	})

	result, err := couponService.Validate(context.Background(), 1, "EXPIRED", cartInfoWith(product.ID, 1))
	require.NoError(t, err)
	assert.False(t, result.Succeeded)
	assert.Equal(t, ErrorCodeCouponExpired, result.ErrorCode)
}

func TestCouponService_Validate_MinOrderNotMet(t *testing.T) {
	couponService, product, testDB := setupCouponServiceTest(t)

	testDB.Create(&model.Coupon{
		Code:           "BIG-SPENDER",
		DiscountType:   model.DiscountTypeFixedAmount,
		DiscountValue:  20,
		MinOrderAmount: 200,
		IsActive:       true,
	})

	// 1 x 50 = 50 < 200
	result, err := couponService.Validate(context.Background(), 1, "BIG-SPENDER", cartInfoWith(product.ID, 1))
	require.NoError(t, err)
	assert.False(t, result.Succeeded)
	assert.Equal(t, ErrorCodeCouponMinOrder, result.ErrorCode)

	// 4 x 50 = 200 meets the boundary exactly
	result, err = couponService.Validate(context.Background(), 1, "BIG-SPENDER", cartInfoWith(product.ID, 4))
	require.NoError(t, err)
	assert.True(t, result.Succeeded)
	assert.Equal(t, float64(20), result.DiscountAmount)
}

func TestCouponService_Validate_PercentageRounding(t *testing.T) {
	couponService, _, testDB := setupCouponServiceTest(t)

	odd := &model.Product{
		Name:           "Odd Price",
		Price:          19.99,
		IsAllowToOrder: true,
		IsPublished:    true,
	}
	testDB.Create(odd)

	testDB.Create(&model.Coupon{
		Code:          "FIFTEEN",
		DiscountType:  model.DiscountTypePercentage,
		DiscountValue: 15,
		IsActive:      true,
	})

	// 15% of 19.99 = 2.9985, rounded to 3.00
	result, err := couponService.Validate(context.Background(), 1, "FIFTEEN", cartInfoWith(odd.ID, 1))
	require.NoError(t, err)
	assert.True(t, result.Succeeded)
	assert.Equal(t, float64(3), result.DiscountAmount)
}

func TestCouponService_Validate_FixedAmountCappedAtOrderTotal(t *testing.T) {
	couponService, product, testDB := setupCouponServiceTest(t)

	testDB.Create(&model.Coupon{
		Code:          "HUGE",
		DiscountType:  model.DiscountTypeFixedAmount,
		DiscountValue: 500,
		IsActive:      true,
	})

	result, err := couponService.Validate(context.Background(), 1, "HUGE", cartInfoWith(product.ID, 2))
	require.NoError(t, err)
	assert.True(t, result.Succeeded)
	assert.Equal(t, float64(100), result.DiscountAmount)
}
