package model

import (
	"time"
)

// Product carries the projection the cart core reads: live price, stock,
// and publication flags. IsDeleted is an explicit flag rather than a GORM
// soft delete so a deleted product stays readable for carts that still
// reference it.
type Product struct {
	ID                   uint      `gorm:"primarykey" json:"id"`
	Name                 string    `gorm:"not null" json:"name"`
	Description          string    `gorm:"type:text" json:"description"`
	Price                float64   `gorm:"not null" json:"price"`
	StockQuantity        int       `gorm:"default:0" json:"stock_quantity"`
	StockTrackingEnabled bool      `gorm:"default:false" json:"stock_tracking_enabled"`
	IsAllowToOrder       bool      `gorm:"default:true" json:"is_allow_to_order"`
	IsPublished          bool      `gorm:"default:false" json:"is_published"`
	IsDeleted            bool      `gorm:"default:false" json:"-"`
	ThumbnailID          *uint     `json:"thumbnail_id"`
	CreatedAt            time.Time `json:"created_at"`
	UpdatedAt            time.Time `json:"updated_at"`

	// Relationships
	Thumbnail          *Media                     `gorm:"foreignKey:ThumbnailID" json:"thumbnail,omitempty"`
	OptionCombinations []ProductOptionCombination `gorm:"foreignKey:ProductID" json:"option_combinations,omitempty"`
	CartItems          []CartItem                 `gorm:"foreignKey:ProductID" json:"-"`
}

func (Product) TableName() string {
	return "products"
}

// IsAvailableToOrder derives the orderability flag: the product may be
// purchased only while it is published, not deleted, and allowed to order.
func (p *Product) IsAvailableToOrder() bool {
	return p.IsAllowToOrder && p.IsPublished && !p.IsDeleted
}
