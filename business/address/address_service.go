package address

import (
	"context"

	"shopsphere/domain"
	"shopsphere/pkg/logger"
)

// AddressRepository contract interface. WithTx hands back a repository
// bound to one transaction so the clear-and-set sequence around the
// default flag commits atomically.
type AddressRepository interface {
	WithTx(ctx context.Context, fn func(AddressRepository) error) error
	FindByUser(ctx context.Context, userID uint) ([]domain.Address, error)
	FindOwned(ctx context.Context, id, userID uint) (domain.Address, error)
	CountByUser(ctx context.Context, userID uint) (int64, error)
	ClearDefaults(ctx context.Context, userID uint) error
	Insert(ctx context.Context, addr *domain.Address) error
	Save(ctx context.Context, addr *domain.Address) error
	Delete(ctx context.Context, addr *domain.Address) error
	FirstByUser(ctx context.Context, userID uint) (domain.Address, error)
}

// AddressService maintains the single-default-address invariant: per
// user at most one default, and exactly one whenever the user owns at
// least one address.
type AddressService struct {
	addressRepo AddressRepository
}

func NewAddressService(addressRepo AddressRepository) *AddressService {
	return &AddressService{
		addressRepo: addressRepo,
	}
}

func (s *AddressService) ListAddresses(ctx context.Context, userID uint) ([]domain.Address, error) {
	return s.addressRepo.FindByUser(ctx, userID)
}

// CreateAddress inserts a new address for the user. The address becomes
// default when the caller asks for it or when it is the user's first
// address; in the former case every existing default is cleared first.
func (s *AddressService) CreateAddress(ctx context.Context, addr *domain.Address) (domain.Address, error) {
	err := s.addressRepo.WithTx(ctx, func(tx AddressRepository) error {
		count, err := tx.CountByUser(ctx, addr.UserID)
		if err != nil {
			return err
		}

		if addr.IsDefault {
			if err := tx.ClearDefaults(ctx, addr.UserID); err != nil {
				return err
			}
		}

		if count == 0 {
			addr.IsDefault = true
		}

		return tx.Insert(ctx, addr)
	})
	if err != nil {
		logger.Error("Failed to create address", err)
		return domain.Address{}, err
	}

	return *addr, nil
}

// UpdateAddress overwrites the address fields. Setting the default flag
// on an address that is not already default clears every other address
// of the user first.
func (s *AddressService) UpdateAddress(ctx context.Context, id, userID uint, update domain.Address) (domain.Address, error) {
	var updated domain.Address

	err := s.addressRepo.WithTx(ctx, func(tx AddressRepository) error {
		addr, err := tx.FindOwned(ctx, id, userID)
		if err != nil {
			return err
		}

		if update.IsDefault && !addr.IsDefault {
			if err := tx.ClearDefaults(ctx, userID); err != nil {
				return err
			}
		}

		addr.FirstName = update.FirstName
		addr.LastName = update.LastName
		addr.AddressLine = update.AddressLine
		addr.City = update.City
		addr.State = update.State
		addr.ZipCode = update.ZipCode
		addr.Country = update.Country
		addr.Phone = update.Phone
		addr.IsDefault = update.IsDefault

		if err := tx.Save(ctx, &addr); err != nil {
			return err
		}

		updated = addr
		return nil
	})
	if err != nil {
		logger.Error("Failed to update address", err)
		return domain.Address{}, err
	}

	return updated, nil
}

// DeleteAddress removes the address. When the deleted address was the
// default and the user still owns others, an arbitrary remaining
// address is promoted so the invariant holds.
func (s *AddressService) DeleteAddress(ctx context.Context, id, userID uint) error {
	err := s.addressRepo.WithTx(ctx, func(tx AddressRepository) error {
		addr, err := tx.FindOwned(ctx, id, userID)
		if err != nil {
			return err
		}

		if err := tx.Delete(ctx, &addr); err != nil {
			return err
		}

		if !addr.IsDefault {
			return nil
		}

		remaining, err := tx.CountByUser(ctx, userID)
		if err != nil {
			return err
		}
		if remaining == 0 {
			return nil
		}

		next, err := tx.FirstByUser(ctx, userID)
		if err != nil {
			return err
		}

		next.IsDefault = true
		return tx.Save(ctx, &next)
	})
	if err != nil {
		logger.Error("Failed to delete address", err)
		return err
	}

	return nil
}

// GetAddress is an owner-scoped read used when an order references a
// shipping address.
func (s *AddressService) GetAddress(ctx context.Context, id, userID uint) (domain.Address, error) {
	return s.addressRepo.FindOwned(ctx, id, userID)
}
