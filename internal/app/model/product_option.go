package model

import (
	"time"
)

// ProductOption is an option axis such as "Size" or "Color".
type ProductOption struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	Name      string    `gorm:"not null" json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (ProductOption) TableName() string {
	return "product_options"
}

// ProductOptionCombination binds a product variation to one option value,
// e.g. (Size, "XL"). A variation product carries one combination per axis.
type ProductOptionCombination struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	ProductID uint      `gorm:"index;not null" json:"product_id"`
	OptionID  uint      `gorm:"not null" json:"option_id"`
	Value     string    `gorm:"not null" json:"value"`
	SortIndex int       `gorm:"default:0" json:"sort_index"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Relationships
	Option ProductOption `gorm:"foreignKey:OptionID" json:"option"`
}

func (ProductOptionCombination) TableName() string {
	return "product_option_combinations"
}
