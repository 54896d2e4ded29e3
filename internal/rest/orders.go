package rest

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"shopsphere/business/orders"
	"shopsphere/domain"
	"shopsphere/pkg/logger"

	"github.com/AMFarhan21/fres"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type (
	OrdersHandler struct {
		validate      *validator.Validate
		ordersService OrdersService
		timeout       time.Duration
	}

	OrdersService interface {
		CreateOrder(ctx context.Context, userID uint, in orders.CreateOrderInput) (domain.Order, error)
		MarkPaid(ctx context.Context, orderID uint, result domain.PaymentResult) (domain.Order, error)
		MarkDelivered(ctx context.Context, orderID uint) (domain.Order, error)
		SetStatus(ctx context.Context, orderID uint, status domain.OrderStatus) (domain.Order, error)
		ListOrdersForUser(ctx context.Context, userID uint) ([]domain.Order, error)
		GetOrder(ctx context.Context, orderID, requestingUserID uint) (domain.Order, error)
	}

	OrderItemInput struct {
		ProductID uint    `json:"product_id" validate:"required"`
		Name      string  `json:"name" validate:"required"`
		Price     float64 `json:"price" validate:"required"`
		Quantity  int     `json:"quantity" validate:"required,min=1"`
		Image     string  `json:"image"`
	}

	CreateOrderRequest struct {
		Items             []OrderItemInput     `json:"items" validate:"required,min=1,dive"`
		ShippingAddressID uint                 `json:"shipping_address_id" validate:"required"`
		TotalAmount       float64              `json:"total_amount" validate:"required"`
		Tax               float64              `json:"tax" validate:"gte=0"`
		PaymentMethod     domain.PaymentMethod `json:"payment_method"`
	}

	PayOrderRequest struct {
		PaymentResult domain.PaymentResult `json:"payment_result"`
	}

	UpdateStatusRequest struct {
		Status string `json:"status" validate:"required"`
	}
)

func NewOrdersHandler(ordersService OrdersService) *OrdersHandler {
	return &OrdersHandler{
		validate:      validator.New(),
		ordersService: ordersService,
		timeout:       10 * time.Second,
	}
}

func (h *OrdersHandler) CreateOrder(c echo.Context) error {
	userID := c.Get("user_id").(uint)

	var request CreateOrderRequest
	if err := c.Bind(&request); err != nil {
		logger.Error("Invalid request body", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	if err := h.validate.Struct(&request); err != nil {
		logger.Error("Failed to validate create order request", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	items := make([]domain.OrderItem, 0, len(request.Items))
	for _, item := range request.Items {
		items = append(items, domain.OrderItem{
			ProductID: item.ProductID,
			Name:      item.Name,
			Price:     item.Price,
			Quantity:  item.Quantity,
			Image:     item.Image,
		})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	order, err := h.ordersService.CreateOrder(ctx, userID, orders.CreateOrderInput{
		Items:             items,
		ShippingAddressID: request.ShippingAddressID,
		TotalAmount:       request.TotalAmount,
		Tax:               request.Tax,
		PaymentMethod:     request.PaymentMethod,
	})
	if err != nil {
		logger.Error("Failed to create order", err)
		return respondError(c, err)
	}

	return c.JSON(http.StatusCreated, fres.Response.StatusCreated(order))
}

func (h *OrdersHandler) GetAllOrders(c echo.Context) error {
	userID := c.Get("user_id").(uint)

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	list, err := h.ordersService.ListOrdersForUser(ctx, userID)
	if err != nil {
		logger.Error("Failed to list orders", err)
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(list))
}

func (h *OrdersHandler) GetOrderByID(c echo.Context) error {
	orderID, err := parseID(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: "invalid order id"})
	}

	userID := c.Get("user_id").(uint)

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	order, err := h.ordersService.GetOrder(ctx, orderID, userID)
	if err != nil {
		logger.Error("Failed to get order by id", err)
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(order))
}

func (h *OrdersHandler) PayOrder(c echo.Context) error {
	orderID, err := parseID(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: "invalid order id"})
	}

	var request PayOrderRequest
	if err := c.Bind(&request); err != nil {
		logger.Error("Invalid request body", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	order, err := h.ordersService.MarkPaid(ctx, orderID, request.PaymentResult)
	if err != nil {
		logger.Error("Failed to mark order paid", err)
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(order))
}

func (h *OrdersHandler) DeliverOrder(c echo.Context) error {
	orderID, err := parseID(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: "invalid order id"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	order, err := h.ordersService.MarkDelivered(ctx, orderID)
	if err != nil {
		logger.Error("Failed to mark order delivered", err)
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(order))
}

// UpdateStatus is the admin override route; the AdminOnly middleware
// gates it before the handler runs.
func (h *OrdersHandler) UpdateStatus(c echo.Context) error {
	orderID, err := parseID(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: "invalid order id"})
	}

	var request UpdateStatusRequest
	if err := c.Bind(&request); err != nil {
		logger.Error("Invalid request body", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	if err := h.validate.Struct(&request); err != nil {
		logger.Error("Failed to validate status request", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	order, err := h.ordersService.SetStatus(ctx, orderID, domain.OrderStatus(request.Status))
	if err != nil {
		logger.Error("Failed to override order status", err)
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(order))
}

func parseID(raw string) (uint, error) {
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return 0, err
	}

	return uint(id), nil
}
