package orders

import (
	"context"
	"fmt"
	"time"

	"shopsphere/business/payment"
	"shopsphere/domain"
	"shopsphere/pkg/apperror"
	"shopsphere/pkg/logger"
	"shopsphere/pkg/metrics"

	"gorm.io/datatypes"
)

type OrdersRepository interface {
	Create(ctx context.Context, order *domain.Order) error
	FindByID(ctx context.Context, id uint) (domain.Order, error)
	FindByUser(ctx context.Context, userID uint) ([]domain.Order, error)
	Save(ctx context.Context, order *domain.Order) error
}

// AddressReader is the read-only slice of the address store the order
// lifecycle needs: orders reference a shipping address, never mutate it.
type AddressReader interface {
	FindOwned(ctx context.Context, id, userID uint) (domain.Address, error)
}

type UserReader interface {
	FindByID(ctx context.Context, id uint) (domain.User, error)
}

type ReceiptMailer interface {
	SendEmail(toName, toEmail, subject, message string) error
}

type OrdersService struct {
	orderRepo   OrdersRepository
	addressRepo AddressReader
	userRepo    UserReader
	mailer      ReceiptMailer
}

// NewOrdersService wires the lifecycle manager. userRepo and mailer may
// be nil; payment receipts are best effort.
func NewOrdersService(orderRepo OrdersRepository, addressRepo AddressReader, userRepo UserReader, mailer ReceiptMailer) *OrdersService {
	return &OrdersService{
		orderRepo:   orderRepo,
		addressRepo: addressRepo,
		userRepo:    userRepo,
		mailer:      mailer,
	}
}

type CreateOrderInput struct {
	Items             []domain.OrderItem
	ShippingAddressID uint
	TotalAmount       float64
	Tax               float64
	PaymentMethod     domain.PaymentMethod
}

// CreateOrder validates the payment method and persists a new order in
// pending/pending. The caller-supplied total is trusted as-is; it is
// never recomputed against catalog prices.
func (s *OrdersService) CreateOrder(ctx context.Context, userID uint, in CreateOrderInput) (domain.Order, error) {
	if len(in.Items) == 0 {
		return domain.Order{}, apperror.Validation("order items are required")
	}

	if err := payment.ValidateMethod(in.PaymentMethod); err != nil {
		metrics.PaymentValidationFailures.WithLabelValues(string(in.PaymentMethod.Type)).Inc()
		return domain.Order{}, err
	}

	if _, err := s.addressRepo.FindOwned(ctx, in.ShippingAddressID, userID); err != nil {
		logger.Error("Shipping address lookup failed", err)
		return domain.Order{}, err
	}

	order := domain.Order{
		UserID:            userID,
		Items:             in.Items,
		ShippingAddressID: in.ShippingAddressID,
		PaymentMethod:     datatypes.NewJSONType(in.PaymentMethod),
		Status:            domain.OrderStatusPending,
		PaymentStatus:     domain.PaymentStatusPending,
		TotalAmount:       in.TotalAmount,
		Tax:               in.Tax,
		CreatedAt:         time.Now(),
	}

	if err := s.orderRepo.Create(ctx, &order); err != nil {
		logger.Error("Failed to create order", err)
		return domain.Order{}, err
	}

	metrics.OrdersCreatedTotal.Inc()
	logger.Info("Order created", "order_id", order.ID, "user_id", userID)

	return order, nil
}

// MarkPaid records an already-verified payment confirmation. The result
// is validated against the payment method tag stored on the order. On
// success the status advances to processing unconditionally, even when
// the order is already past it; PaidAt is rewritten on every call.
func (s *OrdersService) MarkPaid(ctx context.Context, orderID uint, result domain.PaymentResult) (domain.Order, error) {
	order, err := s.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		return domain.Order{}, err
	}

	methodType := order.PaymentMethod.Data().Type
	if err := payment.ValidateResult(methodType, result); err != nil {
		metrics.PaymentValidationFailures.WithLabelValues(string(methodType)).Inc()
		return domain.Order{}, err
	}

	now := time.Now()
	order.IsPaid = true
	order.PaidAt = &now
	order.PaymentResult = datatypes.NewJSONType(result)
	order.PaymentStatus = domain.PaymentStatusPaid
	order.Status = domain.OrderStatusProcessing

	if err := s.orderRepo.Save(ctx, &order); err != nil {
		logger.Error("Failed to save paid order", err)
		return domain.Order{}, err
	}

	metrics.OrdersPaidTotal.Inc()
	s.sendPaymentReceipt(ctx, order)

	return order, nil
}

// MarkDelivered completes the lifecycle. Delivering an unpaid order is
// an illegal transition regardless of its current status.
func (s *OrdersService) MarkDelivered(ctx context.Context, orderID uint) (domain.Order, error) {
	order, err := s.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		return domain.Order{}, err
	}

	if !order.IsPaid {
		return domain.Order{}, apperror.State("order must be paid before delivery")
	}

	now := time.Now()
	order.IsDelivered = true
	order.DeliveredAt = &now
	order.Status = domain.OrderStatusDelivered

	if err := s.orderRepo.Save(ctx, &order); err != nil {
		logger.Error("Failed to save delivered order", err)
		return domain.Order{}, err
	}

	metrics.OrdersDeliveredTotal.Inc()

	return order, nil
}

// SetStatus is the administrative override: it may move the status
// backwards or skip steps. The delivered side effect fires on the
// canonical lowercase literal; unknown literals are rejected instead of
// being written through.
func (s *OrdersService) SetStatus(ctx context.Context, orderID uint, status domain.OrderStatus) (domain.Order, error) {
	if !domain.ValidOrderStatus(status) {
		return domain.Order{}, apperror.Validation(fmt.Sprintf("invalid order status %q", status))
	}

	order, err := s.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		return domain.Order{}, err
	}

	order.Status = status
	if status == domain.OrderStatusDelivered {
		now := time.Now()
		order.IsDelivered = true
		order.DeliveredAt = &now
	}

	if err := s.orderRepo.Save(ctx, &order); err != nil {
		logger.Error("Failed to override order status", err)
		return domain.Order{}, err
	}

	logger.Info("Order status overridden", "order_id", order.ID, "status", status)

	return order, nil
}

func (s *OrdersService) ListOrdersForUser(ctx context.Context, userID uint) ([]domain.Order, error) {
	return s.orderRepo.FindByUser(ctx, userID)
}

// GetOrder loads a single order and enforces ownership: an existing
// order owned by someone else fails with an authorization error, not
// not-found.
func (s *OrdersService) GetOrder(ctx context.Context, orderID, requestingUserID uint) (domain.Order, error) {
	order, err := s.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		return domain.Order{}, err
	}

	if order.UserID != requestingUserID {
		return domain.Order{}, apperror.Authorization("not authorized")
	}

	return order, nil
}

func (s *OrdersService) sendPaymentReceipt(ctx context.Context, order domain.Order) {
	if s.mailer == nil || s.userRepo == nil {
		return
	}

	user, err := s.userRepo.FindByID(ctx, order.UserID)
	if err != nil {
		logger.Warn("Failed to load user for payment receipt", err)
		return
	}

	subject := fmt.Sprintf("Payment received for order #%d", order.ID)
	message := fmt.Sprintf(
		"Hi %s, we received your payment of %.2f (tax %.2f) for order #%d. Your order is now being processed.",
		user.FullName, order.TotalAmount, order.Tax, order.ID,
	)

	if err := s.mailer.SendEmail(user.FullName, user.Email, subject, message); err != nil {
		logger.Warn("Failed to send payment receipt", err)
	}
}
