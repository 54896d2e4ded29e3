package category

import (
	"context"

	"shopsphere/domain"
	"shopsphere/pkg/apperror"
	"shopsphere/pkg/logger"
)

// CategoryRepository contract interface
type CategoryRepository interface {
	Create(ctx context.Context, category *domain.Category) error
	FindByID(ctx context.Context, id uint) (domain.Category, error)
	FindByName(ctx context.Context, name string) (domain.Category, error)
	FindAll(ctx context.Context) ([]domain.Category, error)
	Delete(ctx context.Context, id uint) error
}

// StatsInvalidator drops the cached admin dashboard after a mutation
// that changes what it reports. May be nil.
type StatsInvalidator interface {
	Invalidate(ctx context.Context)
}

type CategoryService struct {
	categoryRepo CategoryRepository
	statsCache   StatsInvalidator
}

func NewCategoryService(categoryRepo CategoryRepository, statsCache StatsInvalidator) *CategoryService {
	return &CategoryService{
		categoryRepo: categoryRepo,
		statsCache:   statsCache,
	}
}

func (s *CategoryService) GetAllCategories(ctx context.Context) ([]domain.Category, error) {
	categories, err := s.categoryRepo.FindAll(ctx)
	if err != nil {
		logger.Error("Failed to find all categories", err)
		return nil, err
	}

	return categories, nil
}

// CreateCategory rejects names that already exist, compared
// case-insensitively.
func (s *CategoryService) CreateCategory(ctx context.Context, name string) (domain.Category, error) {
	if name == "" {
		return domain.Category{}, apperror.Validation("category name is required")
	}

	_, err := s.categoryRepo.FindByName(ctx, name)
	if err == nil {
		return domain.Category{}, apperror.Validation("category already exists")
	}
	if !apperror.IsKind(err, apperror.KindNotFound) {
		logger.Error("Failed to check for existing category", err)
		return domain.Category{}, err
	}

	cat := domain.Category{Name: name}
	if err := s.categoryRepo.Create(ctx, &cat); err != nil {
		logger.Error("Failed to create category", err)
		return domain.Category{}, err
	}

	logger.Info("Category created", "category_id", cat.ID, "name", cat.Name)

	if s.statsCache != nil {
		s.statsCache.Invalidate(ctx)
	}

	return cat, nil
}

func (s *CategoryService) DeleteCategory(ctx context.Context, id uint) error {
	if err := s.categoryRepo.Delete(ctx, id); err != nil {
		logger.Error("Failed to delete category", err)
		return err
	}

	if s.statsCache != nil {
		s.statsCache.Invalidate(ctx)
	}

	return nil
}
