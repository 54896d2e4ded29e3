package postgres

import (
	"context"
	"errors"
	"fmt"

	"shopsphere/domain"
	"shopsphere/pkg/apperror"

	"gorm.io/gorm"
)

type OrdersRepository struct {
	DB *gorm.DB
}

func NewOrdersRepository(db *gorm.DB) *OrdersRepository {
	return &OrdersRepository{
		DB: db,
	}
}

// Create persists the order together with its item snapshots.
func (r *OrdersRepository) Create(ctx context.Context, order *domain.Order) error {
	if err := r.DB.WithContext(ctx).Create(order).Error; err != nil {
		return fmt.Errorf("failed to create order: %w", err)
	}

	return nil
}

func (r *OrdersRepository) FindByID(ctx context.Context, id uint) (domain.Order, error) {
	var order domain.Order
	err := r.DB.WithContext(ctx).Preload("Items").Where("id = ?", id).First(&order).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.Order{}, apperror.NotFound("order not found")
		}
		return domain.Order{}, fmt.Errorf("failed to find order: %w", err)
	}

	return order, nil
}

func (r *OrdersRepository) FindByUser(ctx context.Context, userID uint) ([]domain.Order, error) {
	var orders []domain.Order
	err := r.DB.WithContext(ctx).Preload("Items").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&orders).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find orders: %w", err)
	}

	return orders, nil
}

// Save writes the whole record back. Last writer wins on concurrent
// field-level updates to the same order.
func (r *OrdersRepository) Save(ctx context.Context, order *domain.Order) error {
	if err := r.DB.WithContext(ctx).Omit("Items").Save(order).Error; err != nil {
		return fmt.Errorf("failed to save order: %w", err)
	}

	return nil
}
