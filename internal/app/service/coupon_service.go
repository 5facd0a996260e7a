package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sjpark/storefront-backend/internal/app/model"
	"github.com/sjpark/storefront-backend/internal/app/repository"
	"github.com/sjpark/storefront-backend/pkg/logger"
	"gorm.io/gorm"
)

// CartItemForCoupon is one line of the summary handed to the validator.
type CartItemForCoupon struct {
	ProductID uint
	Quantity  int
}

// CartInfoForCoupon decouples coupon validation from cart view assembly.
type CartInfoForCoupon struct {
	Items []CartItemForCoupon
}

// CouponValidationResult is the validator's verdict. Rule failures are data;
// only infrastructure problems surface as errors.
type CouponValidationResult struct {
	Succeeded      bool    `json:"succeeded"`
	CouponCode     string  `json:"coupon_code"`
	DiscountAmount float64 `json:"discount_amount"`
	ErrorMessage   string  `json:"error_message,omitempty"`
	ErrorCode      string  `json:"error_code,omitempty"`
}

// Stable error codes for coupon rule failures.
const (
	ErrorCodeCouponNotFound   = "coupon-not-found"
	ErrorCodeCouponInactive   = "coupon-inactive"
	ErrorCodeCouponNotStarted = "coupon-not-started"
	ErrorCodeCouponExpired    = "coupon-expired"
	ErrorCodeCouponMinOrder   = "coupon-min-order-not-met"
)

// CouponService validates a coupon code against a customer's cart summary.
// The cart engine treats it as an opaque collaborator.
type CouponService interface {
	Validate(ctx context.Context, customerID uint, couponCode string, cartInfo CartInfoForCoupon) (*CouponValidationResult, error)
}

type couponService struct {
	couponRepo  repository.CouponRepository
	productRepo repository.ProductRepository
}

func NewCouponService(couponRepo repository.CouponRepository, productRepo repository.ProductRepository) CouponService {
	return &couponService{
		couponRepo:  couponRepo,
		productRepo: productRepo,
	}
}

func (s *couponService) Validate(ctx context.Context, customerID uint, couponCode string, cartInfo CartInfoForCoupon) (*CouponValidationResult, error) {
	logger.Debug("Validating coupon", map[string]interface{}{
		"customer_id": customerID,
		"code":        couponCode,
		"items":       len(cartInfo.Items),
	})

	coupon, err := s.couponRepo.FindByCode(ctx, couponCode)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ruleFailure(couponCode, ErrorCodeCouponNotFound,
				fmt.Sprintf("The coupon %q is not valid", couponCode)), nil
		}
		return nil, err
	}

	if !coupon.IsActive {
		return ruleFailure(couponCode, ErrorCodeCouponInactive,
			fmt.Sprintf("The coupon %q is no longer active", couponCode)), nil
	}

	now := time.Now()
	if coupon.ValidFrom != nil && now.Before(*coupon.ValidFrom) {
		return ruleFailure(couponCode, ErrorCodeCouponNotStarted,
			fmt.Sprintf("The coupon %q is not valid yet", couponCode)), nil
	}
	if coupon.ValidTo != nil && now.After(*coupon.ValidTo) {
		return ruleFailure(couponCode, ErrorCodeCouponExpired,
			fmt.Sprintf("The coupon %q has expired", couponCode)), nil
	}

	orderAmount, err := s.orderAmount(ctx, cartInfo)
	if err != nil {
		return nil, err
	}

	minOrder := decimal.NewFromFloat(coupon.MinOrderAmount)
	if orderAmount.LessThan(minOrder) {
		return ruleFailure(couponCode, ErrorCodeCouponMinOrder,
			fmt.Sprintf("The coupon %q requires a minimum order amount of %s", couponCode, minOrder.StringFixed(2))), nil
	}

	discount := discountFor(coupon, orderAmount)
	discountAmount, _ := discount.Float64()

	logger.Debug("Coupon validated successfully", map[string]interface{}{
		"customer_id": customerID,
		"code":        couponCode,
		"discount":    discountAmount,
	})
	return &CouponValidationResult{
		Succeeded:      true,
		CouponCode:     couponCode,
		DiscountAmount: discountAmount,
	}, nil
}

// orderAmount prices the summary against live product records.
func (s *couponService) orderAmount(ctx context.Context, cartInfo CartInfoForCoupon) (decimal.Decimal, error) {
	total := decimal.Zero
	for _, item := range cartInfo.Items {
		product, err := s.productRepo.FindByID(ctx, item.ProductID)
		if err != nil {
			return decimal.Zero, err
		}
		price := decimal.NewFromFloat(product.Price)
		total = total.Add(price.Mul(decimal.NewFromInt(int64(item.Quantity))))
	}
	return total, nil
}

// discountFor computes the discount in cents-exact arithmetic. A fixed
// discount never exceeds the order amount.
func discountFor(coupon *model.Coupon, orderAmount decimal.Decimal) decimal.Decimal {
	value := decimal.NewFromFloat(coupon.DiscountValue)
	switch coupon.DiscountType {
	case model.DiscountTypePercentage:
		return orderAmount.Mul(value).Div(decimal.NewFromInt(100)).Round(2)
	case model.DiscountTypeFixedAmount:
		if value.GreaterThan(orderAmount) {
			return orderAmount
		}
		return value
	default:
		return decimal.Zero
	}
}

func ruleFailure(couponCode, errorCode, message string) *CouponValidationResult {
	logger.Warn("Coupon validation failed", map[string]interface{}{
		"code":       couponCode,
		"error_code": errorCode,
	})
	return &CouponValidationResult{
		Succeeded:    false,
		CouponCode:   couponCode,
		ErrorMessage: message,
		ErrorCode:    errorCode,
	}
}
