package repository

import (
	"context"
	"time"

	"github.com/sjpark/storefront-backend/internal/app/model"
	"github.com/sjpark/storefront-backend/pkg/logger"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// CartRepository is the cart store. Upsert and UpsertAll are the only write
// paths for adding quantity: they resolve the (customer, product) uniqueness
// at the database, so two concurrent adds can never produce duplicate rows.
type CartRepository interface {
	Upsert(ctx context.Context, cartItem *model.CartItem) error
	UpsertAll(ctx context.Context, cartItems []model.CartItem) error
	FindByCustomerID(ctx context.Context, customerID uint) ([]model.CartItem, error)
	FindByID(ctx context.Context, id uint) (*model.CartItem, error)
	Update(ctx context.Context, cartItem *model.CartItem) error
	Delete(ctx context.Context, id uint) error
	DeleteByCustomerID(ctx context.Context, customerID uint) error
	DeleteCreatedBefore(ctx context.Context, cutoff time.Time) (int64, error)
}

type cartRepository struct {
	db *gorm.DB
}

func NewCartRepository(db *gorm.DB) CartRepository {
	return &cartRepository{db: db}
}

// quantityIncrementOnConflict turns an insert into an increment when the
// (customer_id, product_id) row already exists.
func quantityIncrementOnConflict() clause.OnConflict {
	return clause.OnConflict{
		Columns: []clause.Column{{Name: "customer_id"}, {Name: "product_id"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"quantity":   gorm.Expr("quantity + excluded.quantity"),
			"updated_at": time.Now(),
		}),
	}
}

func (r *cartRepository) Upsert(ctx context.Context, cartItem *model.CartItem) error {
	logger.Debug("Upserting cart item in database", map[string]interface{}{
		"customer_id": cartItem.CustomerID,
		"product_id":  cartItem.ProductID,
		"quantity":    cartItem.Quantity,
	})

	err := r.db.WithContext(ctx).
		Clauses(quantityIncrementOnConflict()).
		Create(cartItem).Error
	if err != nil {
		logger.Error("Failed to upsert cart item in database", err, map[string]interface{}{
			"customer_id": cartItem.CustomerID,
			"product_id":  cartItem.ProductID,
			"quantity":    cartItem.Quantity,
		})
		return err
	}

	logger.Debug("Cart item upserted in database", map[string]interface{}{
		"customer_id": cartItem.CustomerID,
		"product_id":  cartItem.ProductID,
	})
	return nil
}

func (r *cartRepository) UpsertAll(ctx context.Context, cartItems []model.CartItem) error {
	logger.Debug("Upserting cart item batch in database", map[string]interface{}{
		"count": len(cartItems),
	})

	if len(cartItems) == 0 {
		return nil
	}

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for i := range cartItems {
			if err := tx.Clauses(quantityIncrementOnConflict()).Create(&cartItems[i]).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		logger.Error("Failed to upsert cart item batch in database", err, map[string]interface{}{
			"count": len(cartItems),
		})
		return err
	}

	logger.Debug("Cart item batch upserted in database", map[string]interface{}{
		"count": len(cartItems),
	})
	return nil
}

func (r *cartRepository) FindByCustomerID(ctx context.Context, customerID uint) ([]model.CartItem, error) {
	logger.Debug("Finding cart items by customer ID in database", map[string]interface{}{
		"customer_id": customerID,
	})

	var cartItems []model.CartItem
	err := r.db.WithContext(ctx).
		Where("customer_id = ?", customerID).
		Preload("Product").
		Preload("Product.Thumbnail").
		Preload("Product.OptionCombinations", func(db *gorm.DB) *gorm.DB {
			return db.Order("product_option_combinations.sort_index")
		}).
		Preload("Product.OptionCombinations.Option").
		Order("cart_items.id").
		Find(&cartItems).Error
	if err != nil {
		logger.Error("Failed to find cart items by customer ID in database", err, map[string]interface{}{
			"customer_id": customerID,
		})
		return nil, err
	}

	logger.Debug("Cart items found by customer ID in database", map[string]interface{}{
		"customer_id": customerID,
		"count":       len(cartItems),
	})
	return cartItems, nil
}

func (r *cartRepository) FindByID(ctx context.Context, id uint) (*model.CartItem, error) {
	logger.Debug("Finding cart item by ID in database", map[string]interface{}{
		"cart_item_id": id,
	})

	var cartItem model.CartItem
	err := r.db.WithContext(ctx).Preload("Product").First(&cartItem, id).Error
	if err != nil {
		logger.Error("Failed to find cart item by ID in database", err, map[string]interface{}{
			"cart_item_id": id,
		})
		return nil, err
	}

	logger.Debug("Cart item found by ID in database", map[string]interface{}{
		"cart_item_id": cartItem.ID,
		"customer_id":  cartItem.CustomerID,
		"product_id":   cartItem.ProductID,
	})
	return &cartItem, nil
}

func (r *cartRepository) Update(ctx context.Context, cartItem *model.CartItem) error {
	logger.Debug("Updating cart item in database", map[string]interface{}{
		"cart_item_id": cartItem.ID,
		"customer_id":  cartItem.CustomerID,
		"quantity":     cartItem.Quantity,
	})

	if err := r.db.WithContext(ctx).Omit(clause.Associations).Save(cartItem).Error; err != nil {
		logger.Error("Failed to update cart item in database", err, map[string]interface{}{
			"cart_item_id": cartItem.ID,
			"customer_id":  cartItem.CustomerID,
		})
		return err
	}

	logger.Debug("Cart item updated in database", map[string]interface{}{
		"cart_item_id": cartItem.ID,
		"customer_id":  cartItem.CustomerID,
	})
	return nil
}

func (r *cartRepository) Delete(ctx context.Context, id uint) error {
	logger.Debug("Deleting cart item from database", map[string]interface{}{
		"cart_item_id": id,
	})

	if err := r.db.WithContext(ctx).Delete(&model.CartItem{}, id).Error; err != nil {
		logger.Error("Failed to delete cart item from database", err, map[string]interface{}{
			"cart_item_id": id,
		})
		return err
	}

	logger.Debug("Cart item deleted from database", map[string]interface{}{
		"cart_item_id": id,
	})
	return nil
}

func (r *cartRepository) DeleteByCustomerID(ctx context.Context, customerID uint) error {
	logger.Debug("Deleting cart items by customer ID from database", map[string]interface{}{
		"customer_id": customerID,
	})

	if err := r.db.WithContext(ctx).Where("customer_id = ?", customerID).Delete(&model.CartItem{}).Error; err != nil {
		logger.Error("Failed to delete cart items by customer ID from database", err, map[string]interface{}{
			"customer_id": customerID,
		})
		return err
	}

	logger.Debug("Cart items deleted by customer ID from database", map[string]interface{}{
		"customer_id": customerID,
	})
	return nil
}

// DeleteCreatedBefore purges cart items created before the cutoff. Used by
// the abandoned-cart cleanup job.
func (r *cartRepository) DeleteCreatedBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	logger.Debug("Deleting stale cart items from database", map[string]interface{}{
		"cutoff": cutoff,
	})

	result := r.db.WithContext(ctx).Where("created_at < ?", cutoff).Delete(&model.CartItem{})
	if result.Error != nil {
		logger.Error("Failed to delete stale cart items from database", result.Error, map[string]interface{}{
			"cutoff": cutoff,
		})
		return 0, result.Error
	}

	logger.Debug("Stale cart items deleted from database", map[string]interface{}{
		"cutoff": cutoff,
		"count":  result.RowsAffected,
	})
	return result.RowsAffected, nil
}
