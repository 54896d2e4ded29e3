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
	ProductHandler struct {
		validate       *validator.Validate
		productService ProductService
		timeout        time.Duration
	}

	ProductService interface {
		GetAllProducts(ctx context.Context) ([]domain.Product, error)
		GetProductByID(ctx context.Context, id uint) (domain.Product, error)
		CreateProduct(ctx context.Context, product *domain.Product) (domain.Product, error)
		DeleteProduct(ctx context.Context, id uint) error
	}

	CreateProductRequest struct {
		ProductName   string  `json:"product_name" validate:"required"`
		Description   string  `json:"description"`
		CategoryID    uint    `json:"category_id" validate:"required"`
		Price         float64 `json:"price" validate:"required,gt=0"`
		OriginalPrice float64 `json:"original_price" validate:"gte=0"`
		Image         string  `json:"image"`
		InStock       *bool   `json:"in_stock"`
		Featured      bool    `json:"featured"`
	}
)

func NewProductHandler(productService ProductService) *ProductHandler {
	return &ProductHandler{
		validate:       validator.New(),
		productService: productService,
		timeout:        10 * time.Second,
	}
}

func (h *ProductHandler) GetAllProducts(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	products, err := h.productService.GetAllProducts(ctx)
	if err != nil {
		logger.Error("Failed to list products", err)
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(products))
}

func (h *ProductHandler) GetProductByID(c echo.Context) error {
	productID, err := parseID(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: "invalid product id"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	product, err := h.productService.GetProductByID(ctx, productID)
	if err != nil {
		logger.Error("Failed to get product by id", err)
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(product))
}

func (h *ProductHandler) CreateProduct(c echo.Context) error {
	var request CreateProductRequest
	if err := c.Bind(&request); err != nil {
		logger.Error("Invalid request body", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	if err := h.validate.Struct(&request); err != nil {
		logger.Error("Failed to validate product request", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	inStock := true
	if request.InStock != nil {
		inStock = *request.InStock
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	product := domain.Product{
		ProductName:   request.ProductName,
		Description:   request.Description,
		CategoryID:    request.CategoryID,
		Price:         request.Price,
		OriginalPrice: request.OriginalPrice,
		Image:         request.Image,
		InStock:       inStock,
		Featured:      request.Featured,
	}

	created, err := h.productService.CreateProduct(ctx, &product)
	if err != nil {
		logger.Error("Failed to create product", err)
		return respondError(c, err)
	}

	return c.JSON(http.StatusCreated, fres.Response.StatusCreated(created))
}

func (h *ProductHandler) DeleteProduct(c echo.Context) error {
	productID, err := parseID(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: "invalid product id"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	if err := h.productService.DeleteProduct(ctx, productID); err != nil {
		logger.Error("Failed to delete product", err)
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK("Product deleted successfully"))
}
