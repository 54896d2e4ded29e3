package address_test

import (
	"context"
	"fmt"
	"testing"

	"shopsphere/business/address"
	"shopsphere/domain"
	"shopsphere/internal/repository/postgres"
	"shopsphere/pkg/apperror"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newTestService(t *testing.T) *address.AddressService {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&domain.Address{}))

	return address.NewAddressService(postgres.NewAddressRepository(db))
}

func newAddress(userID uint, isDefault bool) *domain.Address {
	return &domain.Address{
		UserID:      userID,
		FirstName:   "Ava",
		LastName:    "Stone",
		AddressLine: "12 Elm Street",
		City:        "Portland",
		State:       "OR",
		ZipCode:     "97201",
		Country:     "United States",
		IsDefault:   isDefault,
	}
}

func defaultCount(t *testing.T, svc *address.AddressService, userID uint) int {
	t.Helper()

	addrs, err := svc.ListAddresses(context.Background(), userID)
	require.NoError(t, err)

	count := 0
	for _, a := range addrs {
		if a.IsDefault {
			count++
		}
	}
	return count
}

func TestCreateFirstAddressBecomesDefault(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	created, err := svc.CreateAddress(ctx, newAddress(1, false))
	require.NoError(t, err)

	assert.True(t, created.IsDefault)
	assert.Equal(t, 1, defaultCount(t, svc, 1))
}

func TestCreateDefaultClearsExisting(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	first, err := svc.CreateAddress(ctx, newAddress(1, false))
	require.NoError(t, err)
	require.True(t, first.IsDefault)

	second, err := svc.CreateAddress(ctx, newAddress(1, true))
	require.NoError(t, err)
	assert.True(t, second.IsDefault)

	addrs, err := svc.ListAddresses(ctx, 1)
	require.NoError(t, err)
	require.Len(t, addrs, 2)
	for _, a := range addrs {
		if a.ID == first.ID {
			assert.False(t, a.IsDefault)
		}
	}
	assert.Equal(t, 1, defaultCount(t, svc, 1))
}

func TestCreateNonDefaultKeepsExistingDefault(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	first, err := svc.CreateAddress(ctx, newAddress(1, false))
	require.NoError(t, err)

	second, err := svc.CreateAddress(ctx, newAddress(1, false))
	require.NoError(t, err)
	assert.False(t, second.IsDefault)

	got, err := svc.GetAddress(ctx, first.ID, 1)
	require.NoError(t, err)
	assert.True(t, got.IsDefault)
}

func TestUpdateSetDefaultClearsOthers(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	first, err := svc.CreateAddress(ctx, newAddress(1, false))
	require.NoError(t, err)
	second, err := svc.CreateAddress(ctx, newAddress(1, false))
	require.NoError(t, err)

	update := *newAddress(1, true)
	updated, err := svc.UpdateAddress(ctx, second.ID, 1, update)
	require.NoError(t, err)
	assert.True(t, updated.IsDefault)

	got, err := svc.GetAddress(ctx, first.ID, 1)
	require.NoError(t, err)
	assert.False(t, got.IsDefault)
	assert.Equal(t, 1, defaultCount(t, svc, 1))
}

func TestDeleteDefaultPromotesRemaining(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	a, err := svc.CreateAddress(ctx, newAddress(1, true))
	require.NoError(t, err)
	b, err := svc.CreateAddress(ctx, newAddress(1, false))
	require.NoError(t, err)
	require.False(t, b.IsDefault)

	require.NoError(t, svc.DeleteAddress(ctx, a.ID, 1))

	got, err := svc.GetAddress(ctx, b.ID, 1)
	require.NoError(t, err)
	assert.True(t, got.IsDefault)
	assert.Equal(t, 1, defaultCount(t, svc, 1))
}

func TestDeleteNonDefaultLeavesDefaultAlone(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	a, err := svc.CreateAddress(ctx, newAddress(1, true))
	require.NoError(t, err)
	b, err := svc.CreateAddress(ctx, newAddress(1, false))
	require.NoError(t, err)

	require.NoError(t, svc.DeleteAddress(ctx, b.ID, 1))

	got, err := svc.GetAddress(ctx, a.ID, 1)
	require.NoError(t, err)
	assert.True(t, got.IsDefault)
}

func TestDeleteLastAddressLeavesNoDefault(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	a, err := svc.CreateAddress(ctx, newAddress(1, true))
	require.NoError(t, err)

	require.NoError(t, svc.DeleteAddress(ctx, a.ID, 1))

	addrs, err := svc.ListAddresses(ctx, 1)
	require.NoError(t, err)
	assert.Empty(t, addrs)
}

func TestForeignAddressReadsAsNotFound(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	a, err := svc.CreateAddress(ctx, newAddress(1, true))
	require.NoError(t, err)

	_, err = svc.GetAddress(ctx, a.ID, 2)
	require.Error(t, err)
	assert.True(t, apperror.IsKind(err, apperror.KindNotFound))

	err = svc.DeleteAddress(ctx, a.ID, 2)
	require.Error(t, err)
	assert.True(t, apperror.IsKind(err, apperror.KindNotFound))

	_, err = svc.UpdateAddress(ctx, a.ID, 2, *newAddress(2, true))
	require.Error(t, err)
	assert.True(t, apperror.IsKind(err, apperror.KindNotFound))
}

// Invariant sweep over a mixed operation sequence: at most one default
// per user, exactly one whenever the user owns any address.
func TestDefaultInvariantAcrossSequence(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	var ids []uint
	for i := 0; i < 4; i++ {
		a, err := svc.CreateAddress(ctx, newAddress(7, i%2 == 0))
		require.NoError(t, err)
		ids = append(ids, a.ID)
		assert.Equal(t, 1, defaultCount(t, svc, 7))
	}

	_, err := svc.UpdateAddress(ctx, ids[1], 7, *newAddress(7, true))
	require.NoError(t, err)
	assert.Equal(t, 1, defaultCount(t, svc, 7))

	require.NoError(t, svc.DeleteAddress(ctx, ids[1], 7))
	assert.Equal(t, 1, defaultCount(t, svc, 7))

	require.NoError(t, svc.DeleteAddress(ctx, ids[0], 7))
	require.NoError(t, svc.DeleteAddress(ctx, ids[2], 7))
	assert.Equal(t, 1, defaultCount(t, svc, 7))
}
