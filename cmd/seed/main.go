package main

import (
	"log"
	"time"

	"github.com/sjpark/storefront-backend/config"
	"github.com/sjpark/storefront-backend/internal/app/model"
	"github.com/sjpark/storefront-backend/internal/db"
)

// Seeds a development database with a few customers, products, and coupons.
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load config:", err)
	}

	if err := db.Initialize(&cfg.Database); err != nil {
		log.Fatal("Failed to connect to database:", err)
	}
	defer db.Close()

	if err := db.Migrate(); err != nil {
		log.Fatal("Failed to run migrations:", err)
	}

	database := db.GetDB()

	customers := []model.Customer{
		{Email: "alice@example.com", Name: "Alice"},
		{Email: "", Name: "Guest", IsGuest: true},
	}
	for i := range customers {
		if err := database.Create(&customers[i]).Error; err != nil {
			log.Fatal("Failed to seed customer:", err)
		}
	}

	sizeOption := model.ProductOption{Name: "Size"}
	colorOption := model.ProductOption{Name: "Color"}
	for _, option := range []*model.ProductOption{&sizeOption, &colorOption} {
		if err := database.Create(option).Error; err != nil {
			log.Fatal("Failed to seed product option:", err)
		}
	}

	thumbnail := model.Media{FileName: "tshirt-black.jpg", MimeType: "image/jpeg"}
	if err := database.Create(&thumbnail).Error; err != nil {
		log.Fatal("Failed to seed media:", err)
	}

	products := []model.Product{
		{
			Name:                 "Basic T-Shirt (Black, XL)",
			Price:                19.99,
			StockQuantity:        120,
			StockTrackingEnabled: true,
			IsAllowToOrder:       true,
			IsPublished:          true,
			ThumbnailID:          &thumbnail.ID,
			OptionCombinations: []model.ProductOptionCombination{
				{OptionID: sizeOption.ID, Value: "XL", SortIndex: 0},
				{OptionID: colorOption.ID, Value: "Black", SortIndex: 1},
			},
		},
		{
			Name:           "Gift Card",
			Price:          50,
			IsAllowToOrder: true,
			IsPublished:    true,
		},
	}
	for i := range products {
		if err := database.Create(&products[i]).Error; err != nil {
			log.Fatal("Failed to seed product:", err)
		}
	}

	validTo := time.Now().AddDate(0, 3, 0)
	coupons := []model.Coupon{
		{
			Code:          "WELCOME10",
			Description:   "10% off your first order",
			DiscountType:  model.DiscountTypePercentage,
			DiscountValue: 10,
			IsActive:      true,
			ValidTo:       &validTo,
		},
		{
			// Code is generated on create.
			Description:    "5 off orders over 50",
			DiscountType:   model.DiscountTypeFixedAmount,
			DiscountValue:  5,
			MinOrderAmount: 50,
			IsActive:       true,
		},
	}
	for i := range coupons {
		if err := database.Create(&coupons[i]).Error; err != nil {
			log.Fatal("Failed to seed coupon:", err)
		}
		log.Printf("Seeded coupon %s", coupons[i].Code)
	}

	log.Println("Seeding completed")
}
