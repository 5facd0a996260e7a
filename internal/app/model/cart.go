package model

import (
	"time"
)

// CartItem is one customer's chosen quantity of one product. The composite
// unique index backs the insert-or-increment upsert in the cart repository,
// so at most one row exists per (customer, product) pair.
type CartItem struct {
	ID         uint      `gorm:"primarykey" json:"id"`
	CustomerID uint      `gorm:"not null;uniqueIndex:idx_cart_items_customer_product" json:"customer_id"`
	ProductID  uint      `gorm:"not null;uniqueIndex:idx_cart_items_customer_product" json:"product_id"`
	Quantity   int       `gorm:"not null;default:1" json:"quantity"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`

	// Relationships
	Customer Customer `gorm:"foreignKey:CustomerID" json:"-"`
	Product  Product  `gorm:"foreignKey:ProductID" json:"product,omitempty"`
}

func (CartItem) TableName() string {
	return "cart_items"
}
