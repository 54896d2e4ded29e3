package domain

import (
	"time"

	"gorm.io/datatypes"
)

type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "pending"
	OrderStatusProcessing OrderStatus = "processing"
	OrderStatusShipped    OrderStatus = "shipped"
	OrderStatusDelivered  OrderStatus = "delivered"
	OrderStatusCancelled  OrderStatus = "cancelled"
)

// ValidOrderStatus reports whether s is one of the canonical lowercase
// status literals.
func ValidOrderStatus(s OrderStatus) bool {
	switch s {
	case OrderStatusPending, OrderStatusProcessing, OrderStatusShipped,
		OrderStatusDelivered, OrderStatusCancelled:
		return true
	}

	return false
}

type PaymentStatus string

const (
	PaymentStatusPending PaymentStatus = "pending"
	PaymentStatusPaid    PaymentStatus = "paid"
	PaymentStatusFailed  PaymentStatus = "failed"
)

// CREATE TABLE public.orders (
//     id                  BIGINT GENERATED ALWAYS AS IDENTITY PRIMARY KEY,
//     user_id             BIGINT NOT NULL,
//     shipping_address_id BIGINT NOT NULL,
//     payment_method      JSONB NOT NULL,
//     status              VARCHAR(20) NOT NULL DEFAULT 'pending',
//     payment_status      VARCHAR(20) NOT NULL DEFAULT 'pending',
//     total_amount        NUMERIC NOT NULL,
//     tax                 NUMERIC NOT NULL,
//     is_paid             BOOLEAN NOT NULL DEFAULT FALSE,
//     paid_at             TIMESTAMPTZ,
//     is_delivered        BOOLEAN NOT NULL DEFAULT FALSE,
//     delivered_at        TIMESTAMPTZ,
//     payment_result      JSONB,
//     created_at          TIMESTAMPTZ DEFAULT NOW()
// );

type Order struct {
	ID                uint                             `gorm:"primaryKey" json:"id"`
	UserID            uint                             `gorm:"column:user_id;not null;index" json:"user_id"`
	Items             []OrderItem                      `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"items"`
	ShippingAddressID uint                             `gorm:"column:shipping_address_id;not null" json:"shipping_address_id"`
	PaymentMethod     datatypes.JSONType[PaymentMethod] `gorm:"column:payment_method" json:"payment_method"`
	Status            OrderStatus                      `gorm:"column:status;type:varchar(20);default:pending" json:"status"`
	PaymentStatus     PaymentStatus                    `gorm:"column:payment_status;type:varchar(20);default:pending" json:"payment_status"`
	TotalAmount       float64                          `gorm:"column:total_amount;type:numeric;not null" json:"total_amount"`
	Tax               float64                          `gorm:"column:tax;type:numeric;not null" json:"tax"`
	IsPaid            bool                             `gorm:"column:is_paid;default:false" json:"is_paid"`
	PaidAt            *time.Time                       `gorm:"column:paid_at" json:"paid_at,omitempty"`
	IsDelivered       bool                             `gorm:"column:is_delivered;default:false" json:"is_delivered"`
	DeliveredAt       *time.Time                       `gorm:"column:delivered_at" json:"delivered_at,omitempty"`
	PaymentResult     datatypes.JSONType[PaymentResult] `gorm:"column:payment_result" json:"payment_result"`
	CreatedAt         time.Time                        `gorm:"column:created_at" json:"created_at"`
}

func (Order) TableName() string {
	return "orders"
}

// OrderItem is a snapshot of the product at purchase time, not a live
// join. Name, price and image are copied so later catalog edits do not
// rewrite order history.
type OrderItem struct {
	ID        uint    `gorm:"primaryKey" json:"id"`
	OrderID   uint    `gorm:"column:order_id;index" json:"order_id"`
	ProductID uint    `gorm:"column:product_id;not null" json:"product_id"`
	Name      string  `gorm:"column:name;type:text;not null" json:"name"`
	Price     float64 `gorm:"column:price;type:numeric;not null" json:"price"`
	Quantity  int     `gorm:"column:quantity;not null" json:"quantity"`
	Image     string  `gorm:"column:image;type:text" json:"image"`
}

func (OrderItem) TableName() string {
	return "order_items"
}
