package repository

import (
	"context"

	"github.com/sjpark/storefront-backend/internal/app/model"
	"github.com/sjpark/storefront-backend/pkg/logger"
	"gorm.io/gorm"
)

// ProductRepository is the read-only product lookup the cart core composes
// against: live price, stock, publication flags, thumbnail, and variation
// option combinations.
type ProductRepository interface {
	FindByID(ctx context.Context, id uint) (*model.Product, error)
	Create(ctx context.Context, product *model.Product) error
}

type productRepository struct {
	db *gorm.DB
}

func NewProductRepository(db *gorm.DB) ProductRepository {
	return &productRepository{db: db}
}

func (r *productRepository) FindByID(ctx context.Context, id uint) (*model.Product, error) {
	logger.Debug("Finding product by ID in database", map[string]interface{}{
		"product_id": id,
	})

	var product model.Product
	err := r.db.WithContext(ctx).
		Preload("Thumbnail").
		Preload("OptionCombinations", func(db *gorm.DB) *gorm.DB {
			return db.Order("product_option_combinations.sort_index")
		}).
		Preload("OptionCombinations.Option").
		First(&product, id).Error
	if err != nil {
		logger.Error("Failed to find product by ID in database", err, map[string]interface{}{
			"product_id": id,
		})
		return nil, err
	}

	logger.Debug("Product found by ID in database", map[string]interface{}{
		"product_id": product.ID,
		"name":       product.Name,
	})
	return &product, nil
}

func (r *productRepository) Create(ctx context.Context, product *model.Product) error {
	logger.Debug("Creating product in database", map[string]interface{}{
		"name": product.Name,
	})

	if err := r.db.WithContext(ctx).Create(product).Error; err != nil {
		logger.Error("Failed to create product in database", err, map[string]interface{}{
			"name": product.Name,
		})
		return err
	}

	logger.Debug("Product created in database", map[string]interface{}{
		"product_id": product.ID,
		"name":       product.Name,
	})
	return nil
}
