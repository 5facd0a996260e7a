package repository

import (
	"context"
	"testing"
	"time"

	"github.com/sjpark/storefront-backend/internal/app/model"
	"github.com/sjpark/storefront-backend/internal/db"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupCartRepositoryTest(t *testing.T) (CartRepository, *model.Customer, *model.Product, *gorm.DB) {
	testDB, err := db.SetupTestDB()
	require.NoError(t, err)
	t.Cleanup(func() {
		db.CleanupTestDB(testDB)
	})

	cartRepo := NewCartRepository(testDB)

	customer := &model.Customer{
		Email: "test@example.com",
		Name:  "Test Customer",
	}
	testDB.Create(customer)

	product := &model.Product{
		Name:           "Test Product",
		Price:          25,
		IsAllowToOrder: true,
		IsPublished:    true,
	}
	testDB.Create(product)

	return cartRepo, customer, product, testDB
}

func TestCartRepository_Upsert_InsertsNewRow(t *testing.T) {
	cartRepo, customer, product, _ := setupCartRepositoryTest(t)

	err := cartRepo.Upsert(context.Background(), &model.CartItem{
		CustomerID: customer.ID,
		ProductID:  product.ID,
		Quantity:   2,
	})
	require.NoError(t, err)

	items, err := cartRepo.FindByCustomerID(context.Background(), customer.ID)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, 2, items[0].Quantity)
}

func TestCartRepository_Upsert_IncrementsExistingRow(t *testing.T) {
	cartRepo, customer, product, testDB := setupCartRepositoryTest(t)

	for _, quantity := range []int{2, 3} {
		err := cartRepo.Upsert(context.Background(), &model.CartItem{
			CustomerID: customer.ID,
			ProductID:  product.ID,
			Quantity:   quantity,
		})
		require.NoError(t, err)
	}

	var count int64
	require.NoError(t, testDB.Model(&model.CartItem{}).
		Where("customer_id = ? AND product_id = ?", customer.ID, product.ID).
		Count(&count).Error)
	assert.Equal(t, int64(1), count)

	items, err := cartRepo.FindByCustomerID(context.Background(), customer.ID)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, 5, items[0].Quantity)
}

func TestCartRepository_UpsertAll_MixedInsertAndIncrement(t *testing.T) {
	cartRepo, customer, product, testDB := setupCartRepositoryTest(t)

	second := &model.Product{
		Name:           "Second Product",
		Price:          40,
		IsAllowToOrder: true,
		IsPublished:    true,
	}
	testDB.Create(second)

	err := cartRepo.Upsert(context.Background(), &model.CartItem{
		CustomerID: customer.ID,
		ProductID:  product.ID,
		Quantity:   1,
	})
	require.NoError(t, err)

	err = cartRepo.UpsertAll(context.Background(), []model.CartItem{
		{CustomerID: customer.ID, ProductID: product.ID, Quantity: 2},
		{CustomerID: customer.ID, ProductID: second.ID, Quantity: 3},
	})
	require.NoError(t, err)

	items, err := cartRepo.FindByCustomerID(context.Background(), customer.ID)
	require.NoError(t, err)
	require.Len(t, items, 2)

	byProduct := make(map[uint]int)
	for _, item := range items {
		byProduct[item.ProductID] = item.Quantity
	}
	assert.Equal(t, 3, byProduct[product.ID])
	assert.Equal(t, 3, byProduct[second.ID])
}

func TestCartRepository_UpsertAll_EmptyBatch(t *testing.T) {
	cartRepo, _, _, _ := setupCartRepositoryTest(t)

	assert.NoError(t, cartRepo.UpsertAll(context.Background(), nil))
}

func TestCartRepository_FindByCustomerID_PreloadsProduct(t *testing.T) {
	cartRepo, customer, _, testDB := setupCartRepositoryTest(t)

	media := &model.Media{FileName: "shirt.jpg"}
	testDB.Create(media)

	option := &model.ProductOption{Name: "Size"}
	testDB.Create(option)

	variation := &model.Product{
		Name:           "Variation Product",
		Price:          60,
		IsAllowToOrder: true,
		IsPublished:    true,
		ThumbnailID:    &media.ID,
		OptionCombinations: []model.ProductOptionCombination{
			{OptionID: option.ID, Value: "M", SortIndex: 0},
		},
	}
	testDB.Create(variation)

	err := cartRepo.Upsert(context.Background(), &model.CartItem{
		CustomerID: customer.ID,
		ProductID:  variation.ID,
		Quantity:   1,
	})
	require.NoError(t, err)

	items, err := cartRepo.FindByCustomerID(context.Background(), customer.ID)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Variation Product", items[0].Product.Name)
	require.NotNil(t, items[0].Product.Thumbnail)
	assert.Equal(t, "shirt.jpg", items[0].Product.Thumbnail.FileName)
	require.Len(t, items[0].Product.OptionCombinations, 1)
	assert.Equal(t, "Size", items[0].Product.OptionCombinations[0].Option.Name)
	assert.Equal(t, "M", items[0].Product.OptionCombinations[0].Value)
}

func TestCartRepository_FindByID_NotFound(t *testing.T) {
	cartRepo, _, _, _ := setupCartRepositoryTest(t)

	_, err := cartRepo.FindByID(context.Background(), 9999)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestCartRepository_Update_PersistsQuantity(t *testing.T) {
	cartRepo, customer, product, _ := setupCartRepositoryTest(t)

	err := cartRepo.Upsert(context.Background(), &model.CartItem{
		CustomerID: customer.ID,
		ProductID:  product.ID,
		Quantity:   2,
	})
	require.NoError(t, err)

	items, err := cartRepo.FindByCustomerID(context.Background(), customer.ID)
	require.NoError(t, err)
	require.Len(t, items, 1)

	items[0].Quantity = 7
	require.NoError(t, cartRepo.Update(context.Background(), &items[0]))

	reloaded, err := cartRepo.FindByID(context.Background(), items[0].ID)
	require.NoError(t, err)
	assert.Equal(t, 7, reloaded.Quantity)
}

func TestCartRepository_DeleteByCustomerID(t *testing.T) {
	cartRepo, customer, product, testDB := setupCartRepositoryTest(t)

	other := &model.Customer{Email: "other@example.com", Name: "Other"}
	testDB.Create(other)

	for _, customerID := range []uint{customer.ID, other.ID} {
		err := cartRepo.Upsert(context.Background(), &model.CartItem{
			CustomerID: customerID,
			ProductID:  product.ID,
			Quantity:   1,
		})
		require.NoError(t, err)
	}

	require.NoError(t, cartRepo.DeleteByCustomerID(context.Background(), customer.ID))

	items, err := cartRepo.FindByCustomerID(context.Background(), customer.ID)
	require.NoError(t, err)
	assert.Empty(t, items)

	items, err = cartRepo.FindByCustomerID(context.Background(), other.ID)
	require.NoError(t, err)
	assert.Len(t, items, 1)
}

func TestCartRepository_DeleteCreatedBefore(t *testing.T) {
	cartRepo, customer, product, testDB := setupCartRepositoryTest(t)

	second := &model.Product{
		Name:           "Second Product",
		Price:          40,
		IsAllowToOrder: true,
		IsPublished:    true,
	}
	testDB.Create(second)

	for _, productID := range []uint{product.ID, second.ID} {
		err := cartRepo.Upsert(context.Background(), &model.CartItem{
			CustomerID: customer.ID,
			ProductID:  productID,
			Quantity:   1,
		})
		require.NoError(t, err)
	}

	// Age one of the rows past the cutoff
	stale := time.Now().Add(-48 * time.Hour)
	require.NoError(t, testDB.Model(&model.CartItem{}).
		Where("customer_id = ? AND product_id = ?", customer.ID, product.ID).
		Update("created_at", stale).Error)

	deleted, err := cartRepo.DeleteCreatedBefore(context.Background(), time.Now().Add(-24*time.Hour))
	require.NoError(t, err)
	assert.Equal(t, int64(1), deleted)

	items, err := cartRepo.FindByCustomerID(context.Background(), customer.ID)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, second.ID, items[0].ProductID)
}
