package service

import (
	"github.com/sjpark/storefront-backend/internal/app/model"
)

// AddToCartResult reports the outcome of an add-to-cart request. Validation
// failures are data, not errors: the caller renders ErrorMessage inline.
type AddToCartResult struct {
	Success      bool   `json:"success"`
	ErrorMessage string `json:"error_message,omitempty"`
	ErrorCode    string `json:"error_code,omitempty"`
}

// ErrorCodeWrongQuantity is the stable code for a non-positive quantity.
const ErrorCodeWrongQuantity = "wrong-quantity"

// VariationOption is one name/value pair of a product variation,
// e.g. Size=XL.
type VariationOption struct {
	OptionName string `json:"option_name"`
	Value      string `json:"value"`
}

// CartItemDetails is the per-line view: cart row fields merged with the
// product's live price, stock, and availability.
type CartItemDetails struct {
	ID                    uint              `json:"id"`
	ProductID             uint              `json:"product_id"`
	ProductName           string            `json:"product_name"`
	ProductPrice          float64           `json:"product_price"`
	ProductStockQuantity  int               `json:"product_stock_quantity"`
	StockTrackingEnabled  bool              `json:"stock_tracking_enabled"`
	IsAvailableToOrder    bool              `json:"is_available_to_order"`
	ProductImage          string            `json:"product_image"`
	Quantity              int               `json:"quantity"`
	ProductPriceFormatted string            `json:"product_price_formatted"`
	VariationOptions      []VariationOption `json:"variation_options,omitempty"`
}

// CartDetails is the assembled cart view. It is computed fresh on every
// request; nothing here is persisted.
type CartDetails struct {
	Items                 []CartItemDetails `json:"items"`
	SubTotal              float64           `json:"sub_total"`
	Discount              float64           `json:"discount"`
	OrderTotal            float64           `json:"order_total"`
	CouponCode            string            `json:"coupon_code,omitempty"`
	CouponValidationError string            `json:"coupon_validation_error,omitempty"`
	SubTotalFormatted     string            `json:"sub_total_formatted"`
	DiscountFormatted     string            `json:"discount_formatted"`
	OrderTotalFormatted   string            `json:"order_total_formatted"`
}

// variationOptions projects a product's option combinations into the
// name/value pairs shown on a cart line.
func variationOptions(product *model.Product) []VariationOption {
	if len(product.OptionCombinations) == 0 {
		return nil
	}
	options := make([]VariationOption, 0, len(product.OptionCombinations))
	for _, combination := range product.OptionCombinations {
		options = append(options, VariationOption{
			OptionName: combination.Option.Name,
			Value:      combination.Value,
		})
	}
	return options
}
