package rest

import (
	"context"
	"net/http"
	"time"

	"shopsphere/domain"
	"shopsphere/pkg/logger"

	"github.com/AMFarhan21/fres"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type (
	AddressHandler struct {
		validate       *validator.Validate
		addressService AddressService
		timeout        time.Duration
	}

	AddressService interface {
		ListAddresses(ctx context.Context, userID uint) ([]domain.Address, error)
		CreateAddress(ctx context.Context, addr *domain.Address) (domain.Address, error)
		UpdateAddress(ctx context.Context, id, userID uint, update domain.Address) (domain.Address, error)
		DeleteAddress(ctx context.Context, id, userID uint) error
	}

	AddressRequest struct {
		FirstName   string `json:"first_name" validate:"required"`
		LastName    string `json:"last_name" validate:"required"`
		AddressLine string `json:"address_line" validate:"required"`
		City        string `json:"city" validate:"required"`
		State       string `json:"state" validate:"required"`
		ZipCode     string `json:"zip_code" validate:"required"`
		Country     string `json:"country"`
		Phone       string `json:"phone"`
		IsDefault   bool   `json:"is_default"`
	}
)

func NewAddressHandler(addressService AddressService) *AddressHandler {
	return &AddressHandler{
		validate:       validator.New(),
		addressService: addressService,
		timeout:        10 * time.Second,
	}
}

func (r AddressRequest) toDomain(userID uint) domain.Address {
	country := r.Country
	if country == "" {
		country = "United States"
	}

	return domain.Address{
		UserID:      userID,
		FirstName:   r.FirstName,
		LastName:    r.LastName,
		AddressLine: r.AddressLine,
		City:        r.City,
		State:       r.State,
		ZipCode:     r.ZipCode,
		Country:     country,
		Phone:       r.Phone,
		IsDefault:   r.IsDefault,
	}
}

func (h *AddressHandler) GetAllAddresses(c echo.Context) error {
	userID := c.Get("user_id").(uint)

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	addresses, err := h.addressService.ListAddresses(ctx, userID)
	if err != nil {
		logger.Error("Failed to list addresses", err)
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(addresses))
}

func (h *AddressHandler) CreateAddress(c echo.Context) error {
	userID := c.Get("user_id").(uint)

	var request AddressRequest
	if err := c.Bind(&request); err != nil {
		logger.Error("Invalid request body", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	if err := h.validate.Struct(&request); err != nil {
		logger.Error("Failed to validate address request", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	addr := request.toDomain(userID)
	created, err := h.addressService.CreateAddress(ctx, &addr)
	if err != nil {
		logger.Error("Failed to create address", err)
		return respondError(c, err)
	}

	return c.JSON(http.StatusCreated, fres.Response.StatusCreated(created))
}

func (h *AddressHandler) UpdateAddress(c echo.Context) error {
	addressID, err := parseID(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: "invalid address id"})
	}

	userID := c.Get("user_id").(uint)

	var request AddressRequest
	if err := c.Bind(&request); err != nil {
		logger.Error("Invalid request body", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	if err := h.validate.Struct(&request); err != nil {
		logger.Error("Failed to validate address request", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	updated, err := h.addressService.UpdateAddress(ctx, addressID, userID, request.toDomain(userID))
	if err != nil {
		logger.Error("Failed to update address", err)
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(updated))
}

func (h *AddressHandler) DeleteAddress(c echo.Context) error {
	addressID, err := parseID(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: "invalid address id"})
	}

	userID := c.Get("user_id").(uint)

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	if err := h.addressService.DeleteAddress(ctx, addressID, userID); err != nil {
		logger.Error("Failed to delete address", err)
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK("Address removed"))
}
