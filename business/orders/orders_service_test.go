package orders_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"shopsphere/business/orders"
	"shopsphere/domain"
	"shopsphere/internal/repository/postgres"
	"shopsphere/pkg/apperror"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

type fixture struct {
	svc       *orders.OrdersService
	db        *gorm.DB
	addressID uint
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&domain.Address{}, &domain.Order{}, &domain.OrderItem{}))

	addr := domain.Address{
		UserID:      1,
		FirstName:   "Ava",
		LastName:    "Stone",
		AddressLine: "12 Elm Street",
		City:        "Portland",
		State:       "OR",
		ZipCode:     "97201",
		Country:     "United States",
		IsDefault:   true,
	}
	require.NoError(t, db.Create(&addr).Error)

	svc := orders.NewOrdersService(
		postgres.NewOrdersRepository(db),
		postgres.NewAddressRepository(db),
		nil,
		nil,
	)

	return &fixture{svc: svc, db: db, addressID: addr.ID}
}

func (f *fixture) upiInput(total, tax float64) orders.CreateOrderInput {
	return orders.CreateOrderInput{
		Items: []domain.OrderItem{
			{ProductID: 10, Name: "Headphones", Price: 50.00, Quantity: 2, Image: "headphones.jpg"},
		},
		ShippingAddressID: f.addressID,
		TotalAmount:       total,
		Tax:               tax,
		PaymentMethod:     domain.PaymentMethod{Type: domain.PaymentTypeUPI, UpiID: "ava@upi"},
	}
}

func (f *fixture) orderCount(t *testing.T) int64 {
	t.Helper()
	var count int64
	require.NoError(t, f.db.Model(&domain.Order{}).Count(&count).Error)
	return count
}

func TestCreateOrderStartsPending(t *testing.T) {
	f := newFixture(t)

	order, err := f.svc.CreateOrder(context.Background(), 1, f.upiInput(108.00, 8.00))
	require.NoError(t, err)

	assert.Equal(t, domain.OrderStatusPending, order.Status)
	assert.Equal(t, domain.PaymentStatusPending, order.PaymentStatus)
	assert.False(t, order.IsPaid)
	assert.Equal(t, 108.00, order.TotalAmount)
	assert.Equal(t, 8.00, order.Tax)
	require.Len(t, order.Items, 1)
	assert.Equal(t, "Headphones", order.Items[0].Name)
}

func TestCreateOrderInvalidCardPersistsNothing(t *testing.T) {
	f := newFixture(t)

	in := f.upiInput(100.00, 0)
	in.PaymentMethod = domain.PaymentMethod{Type: domain.PaymentTypeCard, CardLast4: "4242"}

	_, err := f.svc.CreateOrder(context.Background(), 1, in)
	require.Error(t, err)
	assert.True(t, apperror.IsKind(err, apperror.KindValidation))
	assert.Equal(t, int64(0), f.orderCount(t))
}

func TestCreateOrderUnsupportedTag(t *testing.T) {
	f := newFixture(t)

	in := f.upiInput(100.00, 0)
	in.PaymentMethod = domain.PaymentMethod{Type: "CRYPTO"}

	_, err := f.svc.CreateOrder(context.Background(), 1, in)
	require.Error(t, err)
	assert.EqualError(t, err, "unsupported payment method type")
}

func TestCreateOrderForeignShippingAddress(t *testing.T) {
	f := newFixture(t)

	_, err := f.svc.CreateOrder(context.Background(), 2, f.upiInput(100.00, 0))
	require.Error(t, err)
	assert.True(t, apperror.IsKind(err, apperror.KindNotFound))
	assert.Equal(t, int64(0), f.orderCount(t))
}

func TestMarkPaidMissingOrder(t *testing.T) {
	f := newFixture(t)

	_, err := f.svc.MarkPaid(context.Background(), 999, domain.PaymentResult{Status: "COMPLETED"})
	require.Error(t, err)
	assert.True(t, apperror.IsKind(err, apperror.KindNotFound))
}

func TestMarkPaidValidatesAgainstStoredTag(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	order, err := f.svc.CreateOrder(ctx, 1, f.upiInput(108.00, 8.00))
	require.NoError(t, err)

	// UPI order, result lacking the UPI transaction id
	_, err = f.svc.MarkPaid(ctx, order.ID, domain.PaymentResult{Status: "COMPLETED"})
	require.Error(t, err)
	assert.True(t, apperror.IsKind(err, apperror.KindValidation))

	got, err := f.svc.GetOrder(ctx, order.ID, 1)
	require.NoError(t, err)
	assert.False(t, got.IsPaid)
	assert.Equal(t, domain.OrderStatusPending, got.Status)

	paid, err := f.svc.MarkPaid(ctx, order.ID, domain.PaymentResult{
		Status:           "COMPLETED",
		UpiTransactionID: "upi_txn_1",
	})
	require.NoError(t, err)
	assert.True(t, paid.IsPaid)
	assert.NotNil(t, paid.PaidAt)
	assert.Equal(t, domain.PaymentStatusPaid, paid.PaymentStatus)
	assert.Equal(t, domain.OrderStatusProcessing, paid.Status)
	assert.Equal(t, "upi_txn_1", paid.PaymentResult.Data().UpiTransactionID)
}

// MarkPaid is not idempotent on PaidAt: the second call rewrites the
// timestamp. Status lands on processing both times.
func TestMarkPaidTwiceRewritesPaidAt(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	order, err := f.svc.CreateOrder(ctx, 1, f.upiInput(60.00, 0))
	require.NoError(t, err)

	result := domain.PaymentResult{Status: "COMPLETED", UpiTransactionID: "upi_txn_1"}

	first, err := f.svc.MarkPaid(ctx, order.ID, result)
	require.NoError(t, err)
	require.NotNil(t, first.PaidAt)

	time.Sleep(10 * time.Millisecond)

	second, err := f.svc.MarkPaid(ctx, order.ID, result)
	require.NoError(t, err)
	require.NotNil(t, second.PaidAt)

	assert.True(t, second.PaidAt.After(*first.PaidAt))
	assert.Equal(t, domain.OrderStatusProcessing, first.Status)
	assert.Equal(t, domain.OrderStatusProcessing, second.Status)
}

func TestMarkDeliveredRequiresPayment(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	order, err := f.svc.CreateOrder(ctx, 1, f.upiInput(60.00, 0))
	require.NoError(t, err)

	_, err = f.svc.MarkDelivered(ctx, order.ID)
	require.Error(t, err)
	assert.EqualError(t, err, "order must be paid before delivery")
	assert.True(t, apperror.IsKind(err, apperror.KindState))

	// The check keys on the paid flag, not on the status value.
	_, err = f.svc.SetStatus(ctx, order.ID, domain.OrderStatusShipped)
	require.NoError(t, err)

	_, err = f.svc.MarkDelivered(ctx, order.ID)
	require.Error(t, err)
	assert.True(t, apperror.IsKind(err, apperror.KindState))
}

func TestMarkDeliveredAfterPayment(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	order, err := f.svc.CreateOrder(ctx, 1, f.upiInput(60.00, 0))
	require.NoError(t, err)

	_, err = f.svc.MarkPaid(ctx, order.ID, domain.PaymentResult{Status: "COMPLETED", UpiTransactionID: "upi_txn_1"})
	require.NoError(t, err)

	delivered, err := f.svc.MarkDelivered(ctx, order.ID)
	require.NoError(t, err)
	assert.True(t, delivered.IsDelivered)
	assert.NotNil(t, delivered.DeliveredAt)
	assert.Equal(t, domain.OrderStatusDelivered, delivered.Status)
}

func TestSetStatusOverride(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	order, err := f.svc.CreateOrder(ctx, 1, f.upiInput(60.00, 0))
	require.NoError(t, err)

	cancelled, err := f.svc.SetStatus(ctx, order.ID, domain.OrderStatusCancelled)
	require.NoError(t, err)
	assert.Equal(t, domain.OrderStatusCancelled, cancelled.Status)

	// Override may move the status backwards.
	back, err := f.svc.SetStatus(ctx, order.ID, domain.OrderStatusPending)
	require.NoError(t, err)
	assert.Equal(t, domain.OrderStatusPending, back.Status)
}

func TestSetStatusDeliveredSideEffect(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	order, err := f.svc.CreateOrder(ctx, 1, f.upiInput(60.00, 0))
	require.NoError(t, err)

	delivered, err := f.svc.SetStatus(ctx, order.ID, domain.OrderStatusDelivered)
	require.NoError(t, err)
	assert.True(t, delivered.IsDelivered)
	assert.NotNil(t, delivered.DeliveredAt)
}

func TestSetStatusRejectsUnknownLiteral(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	order, err := f.svc.CreateOrder(ctx, 1, f.upiInput(60.00, 0))
	require.NoError(t, err)

	// Case-sensitive: the capitalized literal is not part of the enum.
	_, err = f.svc.SetStatus(ctx, order.ID, "Delivered")
	require.Error(t, err)
	assert.True(t, apperror.IsKind(err, apperror.KindValidation))

	got, err := f.svc.GetOrder(ctx, order.ID, 1)
	require.NoError(t, err)
	assert.False(t, got.IsDelivered)
	assert.Equal(t, domain.OrderStatusPending, got.Status)
}

func TestGetOrderOwnership(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	order, err := f.svc.CreateOrder(ctx, 1, f.upiInput(60.00, 0))
	require.NoError(t, err)

	_, err = f.svc.GetOrder(ctx, order.ID, 2)
	require.Error(t, err)
	assert.True(t, apperror.IsKind(err, apperror.KindAuthorization))

	_, err = f.svc.GetOrder(ctx, 999, 1)
	require.Error(t, err)
	assert.True(t, apperror.IsKind(err, apperror.KindNotFound))
}

func TestListOrdersForUser(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.svc.CreateOrder(ctx, 1, f.upiInput(10.00, 0))
	require.NoError(t, err)
	_, err = f.svc.CreateOrder(ctx, 1, f.upiInput(20.00, 0))
	require.NoError(t, err)

	list, err := f.svc.ListOrdersForUser(ctx, 1)
	require.NoError(t, err)
	assert.Len(t, list, 2)

	empty, err := f.svc.ListOrdersForUser(ctx, 2)
	require.NoError(t, err)
	assert.Empty(t, empty)
}
