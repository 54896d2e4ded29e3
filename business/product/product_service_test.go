package product_test

import (
	"context"
	"fmt"
	"testing"

	"shopsphere/business/product"
	"shopsphere/domain"
	"shopsphere/internal/repository/postgres"
	"shopsphere/pkg/apperror"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newTestService(t *testing.T) (*product.ProductService, domain.Category) {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&domain.Category{}, &domain.Product{}))

	cat := domain.Category{Name: "Electronics"}
	require.NoError(t, db.Create(&cat).Error)

	svc := product.NewProductService(
		postgres.NewProductRepository(db),
		postgres.NewCategoryRepository(db),
		nil,
	)
	return svc, cat
}

func TestCreateProduct(t *testing.T) {
	svc, cat := newTestService(t)

	created, err := svc.CreateProduct(context.Background(), &domain.Product{
		ProductName: "Wireless Headphones",
		CategoryID:  cat.ID,
		Price:       79.99,
	})
	require.NoError(t, err)
	assert.NotZero(t, created.ID)

	got, err := svc.GetProductByID(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Wireless Headphones", got.ProductName)
}

func TestCreateProductRejectsUnknownCategory(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.CreateProduct(context.Background(), &domain.Product{
		ProductName: "Orphaned",
		CategoryID:  999,
		Price:       10,
	})
	assert.True(t, apperror.IsKind(err, apperror.KindValidation))
}

func TestCreateProductRejectsEmptyName(t *testing.T) {
	svc, cat := newTestService(t)

	_, err := svc.CreateProduct(context.Background(), &domain.Product{
		CategoryID: cat.ID,
		Price:      10,
	})
	assert.True(t, apperror.IsKind(err, apperror.KindValidation))
}

func TestGetProductByIDMissing(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.GetProductByID(context.Background(), 42)
	assert.True(t, apperror.IsKind(err, apperror.KindNotFound))
}

func TestDeleteProduct(t *testing.T) {
	svc, cat := newTestService(t)

	created, err := svc.CreateProduct(context.Background(), &domain.Product{
		ProductName: "Desk Lamp",
		CategoryID:  cat.ID,
		Price:       24.5,
	})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteProduct(context.Background(), created.ID))

	_, err = svc.GetProductByID(context.Background(), created.ID)
	assert.True(t, apperror.IsKind(err, apperror.KindNotFound))
}
