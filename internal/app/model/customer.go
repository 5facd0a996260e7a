package model

import (
	"time"
)

// Customer owns cart line items. Guests get a customer row too, which is
// what cart migration reconciles into the authenticated account at login.
type Customer struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	Email     string    `gorm:"index" json:"email"`
	Name      string    `json:"name"`
	IsGuest   bool      `gorm:"default:false" json:"is_guest"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Relationships
	CartItems []CartItem `gorm:"foreignKey:CustomerID" json:"-"`
}

func (Customer) TableName() string {
	return "customers"
}
