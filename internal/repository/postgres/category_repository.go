package postgres

import (
	"context"
	"errors"
	"fmt"

	"shopsphere/domain"
	"shopsphere/pkg/apperror"

	"gorm.io/gorm"
)

type CategoryRepository struct {
	DB *gorm.DB
}

func NewCategoryRepository(db *gorm.DB) *CategoryRepository {
	return &CategoryRepository{
		DB: db,
	}
}

func (r *CategoryRepository) Create(ctx context.Context, category *domain.Category) error {
	if err := r.DB.WithContext(ctx).Create(category).Error; err != nil {
		return fmt.Errorf("failed to create category: %w", err)
	}

	return nil
}

func (r *CategoryRepository) FindByID(ctx context.Context, id uint) (domain.Category, error) {
	var category domain.Category
	err := r.DB.WithContext(ctx).Where("id = ?", id).First(&category).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.Category{}, apperror.NotFound("category not found")
		}
		return domain.Category{}, fmt.Errorf("failed to find category: %w", err)
	}

	return category, nil
}

// FindByName matches case-insensitively so "electronics" and
// "Electronics" cannot coexist.
func (r *CategoryRepository) FindByName(ctx context.Context, name string) (domain.Category, error) {
	var category domain.Category
	err := r.DB.WithContext(ctx).Where("LOWER(name) = LOWER(?)", name).First(&category).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.Category{}, apperror.NotFound("category not found")
		}
		return domain.Category{}, fmt.Errorf("failed to find category: %w", err)
	}

	return category, nil
}

func (r *CategoryRepository) FindAll(ctx context.Context) ([]domain.Category, error) {
	var categories []domain.Category
	err := r.DB.WithContext(ctx).Order("name").Find(&categories).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find categories: %w", err)
	}

	return categories, nil
}

func (r *CategoryRepository) Delete(ctx context.Context, id uint) error {
	result := r.DB.WithContext(ctx).Where("id = ?", id).Delete(&domain.Category{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete category: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperror.NotFound("category not found")
	}

	return nil
}
