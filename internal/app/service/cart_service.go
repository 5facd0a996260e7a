package service

import (
	"context"
	"errors"

	"github.com/sjpark/storefront-backend/internal/app/model"
	"github.com/sjpark/storefront-backend/internal/app/repository"
	"github.com/sjpark/storefront-backend/pkg/currency"
	"github.com/sjpark/storefront-backend/pkg/logger"
	"gorm.io/gorm"
)

// CartService is the cart aggregation engine: it owns add/update/remove/
// migrate and composes cart rows with live product state and coupon
// validation into CartDetails.
type CartService interface {
	AddToCart(ctx context.Context, customerID, productID uint, quantity int) (*AddToCartResult, error)
	// GetCartDetails returns nil when the customer has no cart items, so
	// callers can tell "cart not started" from "cart emptied".
	GetCartDetails(ctx context.Context, customerID uint) (*CartDetails, error)
	ApplyCoupon(ctx context.Context, customerID uint, couponCode string) (*CouponValidationResult, error)
	UpdateQuantity(ctx context.Context, customerID, cartItemID uint, quantity int) (*CartDetails, error)
	RemoveFromCart(ctx context.Context, customerID, cartItemID uint) (*CartDetails, error)
	MigrateCart(ctx context.Context, fromCustomerID, toCustomerID uint) error
}

type cartService struct {
	cartRepo       repository.CartRepository
	appliedCoupons repository.AppliedCouponRepository
	couponService  CouponService
	mediaService   MediaService
	formatter      *currency.Formatter
}

func NewCartService(
	cartRepo repository.CartRepository,
	appliedCoupons repository.AppliedCouponRepository,
	couponService CouponService,
	mediaService MediaService,
	formatter *currency.Formatter,
) CartService {
	return &cartService{
		cartRepo:       cartRepo,
		appliedCoupons: appliedCoupons,
		couponService:  couponService,
		mediaService:   mediaService,
		formatter:      formatter,
	}
}

func (s *cartService) AddToCart(ctx context.Context, customerID, productID uint, quantity int) (*AddToCartResult, error) {
	logger.Info("Adding item to cart", map[string]interface{}{
		"customer_id": customerID,
		"product_id":  productID,
		"quantity":    quantity,
	})

	if quantity <= 0 {
		logger.Warn("Cannot add to cart: non-positive quantity", map[string]interface{}{
			"customer_id": customerID,
			"product_id":  productID,
			"quantity":    quantity,
		})
		return &AddToCartResult{
			Success:      false,
			ErrorMessage: "The quantity must be larger than zero",
			ErrorCode:    ErrorCodeWrongQuantity,
		}, nil
	}

	// A single upsert inserts the row or increments the existing quantity.
	// Repeated adds of the same product always merge, never duplicate.
	cartItem := &model.CartItem{
		CustomerID: customerID,
		ProductID:  productID,
		Quantity:   quantity,
	}
	if err := s.cartRepo.Upsert(ctx, cartItem); err != nil {
		logger.Error("Failed to add item to cart", err, map[string]interface{}{
			"customer_id": customerID,
			"product_id":  productID,
		})
		return nil, err
	}

	logger.Info("Cart item added successfully", map[string]interface{}{
		"customer_id": customerID,
		"product_id":  productID,
	})
	return &AddToCartResult{Success: true}, nil
}

func (s *cartService) GetCartDetails(ctx context.Context, customerID uint) (*CartDetails, error) {
	logger.Debug("Fetching cart details", map[string]interface{}{
		"customer_id": customerID,
	})

	cartItems, err := s.cartRepo.FindByCustomerID(ctx, customerID)
	if err != nil {
		logger.Error("Failed to fetch cart items", err, map[string]interface{}{
			"customer_id": customerID,
		})
		return nil, err
	}
	if len(cartItems) == 0 {
		logger.Debug("Customer has no cart", map[string]interface{}{
			"customer_id": customerID,
		})
		return nil, nil
	}

	details := &CartDetails{
		Items: make([]CartItemDetails, 0, len(cartItems)),
	}
	for i := range cartItems {
		cartItem := &cartItems[i]
		product := &cartItem.Product
		details.Items = append(details.Items, CartItemDetails{
			ID:                    cartItem.ID,
			ProductID:             cartItem.ProductID,
			ProductName:           product.Name,
			ProductPrice:          product.Price,
			ProductStockQuantity:  product.StockQuantity,
			StockTrackingEnabled:  product.StockTrackingEnabled,
			IsAvailableToOrder:    product.IsAvailableToOrder(),
			ProductImage:          s.mediaService.GetThumbnailURL(product.Thumbnail),
			Quantity:              cartItem.Quantity,
			ProductPriceFormatted: s.formatter.Format(product.Price),
			VariationOptions:      variationOptions(product),
		})
		// Always the live price, never a snapshot taken at add time.
		details.SubTotal += float64(cartItem.Quantity) * product.Price
	}

	couponCode, err := s.appliedCoupons.Get(ctx, customerID)
	if err != nil {
		return nil, err
	}
	if couponCode != "" {
		details.CouponCode = couponCode
		validationResult, err := s.couponService.Validate(ctx, customerID, couponCode, cartInfoForCoupon(cartItems))
		if err != nil {
			return nil, err
		}
		if validationResult.Succeeded {
			details.Discount = validationResult.DiscountAmount
		} else {
			// An invalidated coupon never blocks the cart; it surfaces as a
			// message next to a zero discount.
			details.CouponValidationError = validationResult.ErrorMessage
		}
	}

	details.OrderTotal = details.SubTotal - details.Discount
	details.SubTotalFormatted = s.formatter.Format(details.SubTotal)
	details.DiscountFormatted = s.formatter.Format(details.Discount)
	details.OrderTotalFormatted = s.formatter.Format(details.OrderTotal)

	logger.Info("Cart details assembled", map[string]interface{}{
		"customer_id": customerID,
		"count":       len(details.Items),
		"sub_total":   details.SubTotal,
		"discount":    details.Discount,
	})
	return details, nil
}

func (s *cartService) ApplyCoupon(ctx context.Context, customerID uint, couponCode string) (*CouponValidationResult, error) {
	logger.Info("Applying coupon", map[string]interface{}{
		"customer_id": customerID,
		"code":        couponCode,
	})

	cartItems, err := s.cartRepo.FindByCustomerID(ctx, customerID)
	if err != nil {
		logger.Error("Failed to fetch cart items for coupon", err, map[string]interface{}{
			"customer_id": customerID,
		})
		return nil, err
	}

	validationResult, err := s.couponService.Validate(ctx, customerID, couponCode, cartInfoForCoupon(cartItems))
	if err != nil {
		return nil, err
	}

	if validationResult.Succeeded {
		if err := s.appliedCoupons.Set(ctx, customerID, couponCode); err != nil {
			return nil, err
		}
	}

	logger.Info("Coupon validation completed", map[string]interface{}{
		"customer_id": customerID,
		"code":        couponCode,
		"succeeded":   validationResult.Succeeded,
		"discount":    validationResult.DiscountAmount,
	})
	return validationResult, nil
}

func (s *cartService) UpdateQuantity(ctx context.Context, customerID, cartItemID uint, quantity int) (*CartDetails, error) {
	logger.Info("Updating cart item quantity", map[string]interface{}{
		"customer_id":  customerID,
		"cart_item_id": cartItemID,
		"quantity":     quantity,
	})

	if quantity <= 0 {
		logger.Warn("Cannot update cart item: non-positive quantity", map[string]interface{}{
			"customer_id":  customerID,
			"cart_item_id": cartItemID,
			"quantity":     quantity,
		})
		return nil, ErrInvalidQuantity
	}

	cartItem, err := s.ownedCartItem(ctx, customerID, cartItemID)
	if err != nil {
		return nil, err
	}

	// Decreasing is always allowed; only an increase is gated by stock.
	if quantity > cartItem.Quantity {
		product := &cartItem.Product
		if product.StockTrackingEnabled && product.StockQuantity < quantity {
			logger.Warn("Cannot update cart item: insufficient stock", map[string]interface{}{
				"customer_id":  customerID,
				"cart_item_id": cartItemID,
				"requested":    quantity,
				"available":    product.StockQuantity,
			})
			return nil, &InsufficientStockError{
				ProductName: product.Name,
				Available:   product.StockQuantity,
			}
		}
	}

	cartItem.Quantity = quantity
	if err := s.cartRepo.Update(ctx, cartItem); err != nil {
		logger.Error("Failed to update cart item", err, map[string]interface{}{
			"cart_item_id": cartItemID,
		})
		return nil, err
	}

	logger.Info("Cart item quantity updated", map[string]interface{}{
		"customer_id":  customerID,
		"cart_item_id": cartItemID,
		"quantity":     quantity,
	})
	return s.GetCartDetails(ctx, customerID)
}

func (s *cartService) RemoveFromCart(ctx context.Context, customerID, cartItemID uint) (*CartDetails, error) {
	logger.Info("Removing cart item", map[string]interface{}{
		"customer_id":  customerID,
		"cart_item_id": cartItemID,
	})

	cartItem, err := s.ownedCartItem(ctx, customerID, cartItemID)
	if err != nil {
		return nil, err
	}

	if err := s.cartRepo.Delete(ctx, cartItem.ID); err != nil {
		logger.Error("Failed to delete cart item", err, map[string]interface{}{
			"cart_item_id": cartItemID,
		})
		return nil, err
	}

	logger.Info("Cart item removed", map[string]interface{}{
		"customer_id":  customerID,
		"cart_item_id": cartItemID,
	})
	return s.GetCartDetails(ctx, customerID)
}

func (s *cartService) MigrateCart(ctx context.Context, fromCustomerID, toCustomerID uint) error {
	logger.Info("Migrating cart", map[string]interface{}{
		"from_customer_id": fromCustomerID,
		"to_customer_id":   toCustomerID,
	})

	fromItems, err := s.cartRepo.FindByCustomerID(ctx, fromCustomerID)
	if err != nil {
		logger.Error("Failed to fetch source cart for migration", err, map[string]interface{}{
			"from_customer_id": fromCustomerID,
		})
		return err
	}
	if len(fromItems) == 0 {
		logger.Debug("Nothing to migrate: source cart is empty", map[string]interface{}{
			"from_customer_id": fromCustomerID,
		})
		return nil
	}

	// Each source line turns into an upsert on the destination: a new row
	// for products the destination does not have, a quantity sum otherwise.
	// The whole batch commits in one transaction. Source rows stay as they
	// are; the caller decides whether to clear the source cart afterwards.
	destinationItems := make([]model.CartItem, 0, len(fromItems))
	for _, item := range fromItems {
		destinationItems = append(destinationItems, model.CartItem{
			CustomerID: toCustomerID,
			ProductID:  item.ProductID,
			Quantity:   item.Quantity,
		})
	}

	if err := s.cartRepo.UpsertAll(ctx, destinationItems); err != nil {
		logger.Error("Failed to migrate cart", err, map[string]interface{}{
			"from_customer_id": fromCustomerID,
			"to_customer_id":   toCustomerID,
		})
		return err
	}

	logger.Info("Cart migrated successfully", map[string]interface{}{
		"from_customer_id": fromCustomerID,
		"to_customer_id":   toCustomerID,
		"count":            len(destinationItems),
	})
	return nil
}

// ownedCartItem fetches a cart item and verifies ownership. A row owned by
// another customer is indistinguishable from a missing one.
func (s *cartService) ownedCartItem(ctx context.Context, customerID, cartItemID uint) (*model.CartItem, error) {
	cartItem, err := s.cartRepo.FindByID(ctx, cartItemID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			logger.Warn("Cart item not found", map[string]interface{}{
				"cart_item_id": cartItemID,
			})
			return nil, ErrCartItemNotFound
		}
		logger.Error("Failed to fetch cart item", err, map[string]interface{}{
			"cart_item_id": cartItemID,
		})
		return nil, err
	}

	if cartItem.CustomerID != customerID {
		logger.Warn("Cart item access denied: ownership mismatch", map[string]interface{}{
			"customer_id":  customerID,
			"cart_item_id": cartItemID,
			"owner_id":     cartItem.CustomerID,
		})
		return nil, ErrCartItemNotFound
	}
	return cartItem, nil
}

// cartInfoForCoupon builds the product/quantity summary handed to the
// coupon validator.
func cartInfoForCoupon(cartItems []model.CartItem) CartInfoForCoupon {
	info := CartInfoForCoupon{
		Items: make([]CartItemForCoupon, 0, len(cartItems)),
	}
	for _, item := range cartItems {
		info.Items = append(info.Items, CartItemForCoupon{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
		})
	}
	return info
}
