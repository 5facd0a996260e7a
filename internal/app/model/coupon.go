package model

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type DiscountType string

const (
	DiscountTypePercentage  DiscountType = "percentage"
	DiscountTypeFixedAmount DiscountType = "fixed_amount"
)

// Coupon is a discount rule evaluated by the coupon service against a cart
// summary. Validity is bounded by the active flag, the date window, and the
// minimum order amount.
type Coupon struct {
	ID             uint         `gorm:"primarykey" json:"id"`
	Code           string       `gorm:"uniqueIndex;not null" json:"code"`
	Description    string       `json:"description"`
	DiscountType   DiscountType `gorm:"type:varchar(20);not null" json:"discount_type"`
	DiscountValue  float64      `gorm:"not null" json:"discount_value"`
	MinOrderAmount float64      `gorm:"default:0" json:"min_order_amount"`
	ValidFrom      *time.Time   `json:"valid_from"`
	ValidTo        *time.Time   `json:"valid_to"`
	IsActive       bool         `gorm:"default:true" json:"is_active"`
	CreatedAt      time.Time    `json:"created_at"`
	UpdatedAt      time.Time    `json:"updated_at"`
}

func (Coupon) TableName() string {
	return "coupons"
}

// BeforeCreate assigns a random code when none was provided.
func (c *Coupon) BeforeCreate(tx *gorm.DB) error {
	if c.Code == "" {
		raw := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", ""))
		c.Code = raw[:12]
	}
	return nil
}
