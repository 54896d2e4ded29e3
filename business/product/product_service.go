package product

import (
	"context"

	"shopsphere/business/category"
	"shopsphere/domain"
	"shopsphere/pkg/apperror"
	"shopsphere/pkg/logger"
)

// ProductRepository contract interface
type ProductRepository interface {
	Create(ctx context.Context, product *domain.Product) error
	FindByID(ctx context.Context, id uint) (domain.Product, error)
	FindAll(ctx context.Context) ([]domain.Product, error)
	Delete(ctx context.Context, id uint) error
}

// StatsInvalidator drops the cached admin dashboard after a mutation
// that changes what it reports. May be nil.
type StatsInvalidator interface {
	Invalidate(ctx context.Context)
}

type ProductService struct {
	productRepo  ProductRepository
	categoryRepo category.CategoryRepository
	statsCache   StatsInvalidator
}

func NewProductService(productRepo ProductRepository, categoryRepo category.CategoryRepository, statsCache StatsInvalidator) *ProductService {
	return &ProductService{
		productRepo:  productRepo,
		categoryRepo: categoryRepo,
		statsCache:   statsCache,
	}
}

func (s *ProductService) GetAllProducts(ctx context.Context) ([]domain.Product, error) {
	products, err := s.productRepo.FindAll(ctx)
	if err != nil {
		logger.Error("Failed to find all products", err)
		return nil, err
	}

	return products, nil
}

func (s *ProductService) GetProductByID(ctx context.Context, id uint) (domain.Product, error) {
	if id == 0 {
		return domain.Product{}, apperror.Validation("invalid product id")
	}

	return s.productRepo.FindByID(ctx, id)
}

// CreateProduct verifies the referenced category before persisting.
func (s *ProductService) CreateProduct(ctx context.Context, product *domain.Product) (domain.Product, error) {
	if product.ProductName == "" {
		return domain.Product{}, apperror.Validation("product name is required")
	}

	if _, err := s.categoryRepo.FindByID(ctx, product.CategoryID); err != nil {
		if apperror.IsKind(err, apperror.KindNotFound) {
			return domain.Product{}, apperror.Validation("invalid category id")
		}
		logger.Error("Failed to verify product category", err)
		return domain.Product{}, err
	}

	if err := s.productRepo.Create(ctx, product); err != nil {
		logger.Error("Failed to create product", err)
		return domain.Product{}, err
	}

	logger.Info("Product created", "product_id", product.ID, "name", product.ProductName)

	if s.statsCache != nil {
		s.statsCache.Invalidate(ctx)
	}

	return *product, nil
}

func (s *ProductService) DeleteProduct(ctx context.Context, id uint) error {
	if err := s.productRepo.Delete(ctx, id); err != nil {
		logger.Error("Failed to delete product", err)
		return err
	}

	if s.statsCache != nil {
		s.statsCache.Invalidate(ctx)
	}

	return nil
}
