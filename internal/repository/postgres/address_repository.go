package postgres

import (
	"context"
	"errors"
	"fmt"

	"shopsphere/business/address"
	"shopsphere/domain"
	"shopsphere/pkg/apperror"

	"gorm.io/gorm"
)

type AddressRepository struct {
	DB *gorm.DB
}

func NewAddressRepository(db *gorm.DB) *AddressRepository {
	return &AddressRepository{
		DB: db,
	}
}

// WithTx runs fn against a repository bound to a single transaction.
// The default-flag invariant needs the clear-and-set sequence to commit
// atomically, so the service wraps every mutation in this.
func (r *AddressRepository) WithTx(ctx context.Context, fn func(address.AddressRepository) error) error {
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&AddressRepository{DB: tx})
	})
}

func (r *AddressRepository) FindByUser(ctx context.Context, userID uint) ([]domain.Address, error) {
	var addresses []domain.Address
	err := r.DB.WithContext(ctx).Where("user_id = ?", userID).Order("id").Find(&addresses).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find addresses: %w", err)
	}

	return addresses, nil
}

// FindOwned scopes the lookup by owner: an address id belonging to a
// different user reads as not found, never as a permission error.
func (r *AddressRepository) FindOwned(ctx context.Context, id, userID uint) (domain.Address, error) {
	var addr domain.Address
	err := r.DB.WithContext(ctx).Where("id = ? AND user_id = ?", id, userID).First(&addr).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.Address{}, apperror.NotFound("address not found")
		}
		return domain.Address{}, fmt.Errorf("failed to find address: %w", err)
	}

	return addr, nil
}

func (r *AddressRepository) CountByUser(ctx context.Context, userID uint) (int64, error) {
	var count int64
	err := r.DB.WithContext(ctx).Model(&domain.Address{}).Where("user_id = ?", userID).Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count addresses: %w", err)
	}

	return count, nil
}

func (r *AddressRepository) ClearDefaults(ctx context.Context, userID uint) error {
	err := r.DB.WithContext(ctx).Model(&domain.Address{}).
		Where("user_id = ?", userID).
		Update("is_default", false).Error
	if err != nil {
		return fmt.Errorf("failed to clear default addresses: %w", err)
	}

	return nil
}

func (r *AddressRepository) Insert(ctx context.Context, addr *domain.Address) error {
	if err := r.DB.WithContext(ctx).Create(addr).Error; err != nil {
		return fmt.Errorf("failed to create address: %w", err)
	}

	return nil
}

func (r *AddressRepository) Save(ctx context.Context, addr *domain.Address) error {
	if err := r.DB.WithContext(ctx).Save(addr).Error; err != nil {
		return fmt.Errorf("failed to save address: %w", err)
	}

	return nil
}

func (r *AddressRepository) Delete(ctx context.Context, addr *domain.Address) error {
	result := r.DB.WithContext(ctx).Where("id = ? AND user_id = ?", addr.ID, addr.UserID).Delete(&domain.Address{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete address: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperror.NotFound("address not found")
	}

	return nil
}

// FirstByUser returns an arbitrary remaining address for default
// promotion after a delete. Ordering is by id, no defined tie-break.
func (r *AddressRepository) FirstByUser(ctx context.Context, userID uint) (domain.Address, error) {
	var addr domain.Address
	err := r.DB.WithContext(ctx).Where("user_id = ?", userID).Order("id").First(&addr).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.Address{}, apperror.NotFound("address not found")
		}
		return domain.Address{}, fmt.Errorf("failed to find address: %w", err)
	}

	return addr, nil
}
