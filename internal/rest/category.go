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
	CategoryHandler struct {
		validate        *validator.Validate
		categoryService CategoryService
		timeout         time.Duration
	}

	CategoryService interface {
		GetAllCategories(ctx context.Context) ([]domain.Category, error)
		CreateCategory(ctx context.Context, name string) (domain.Category, error)
		DeleteCategory(ctx context.Context, id uint) error
	}

	CreateCategoryRequest struct {
		Name string `json:"name" validate:"required"`
	}
)

func NewCategoryHandler(categoryService CategoryService) *CategoryHandler {
	return &CategoryHandler{
		validate:        validator.New(),
		categoryService: categoryService,
		timeout:         10 * time.Second,
	}
}

func (h *CategoryHandler) GetAllCategories(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	categories, err := h.categoryService.GetAllCategories(ctx)
	if err != nil {
		logger.Error("Failed to list categories", err)
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(categories))
}

func (h *CategoryHandler) CreateCategory(c echo.Context) error {
	var request CreateCategoryRequest
	if err := c.Bind(&request); err != nil {
		logger.Error("Invalid request body", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	if err := h.validate.Struct(&request); err != nil {
		logger.Error("Failed to validate category request", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	created, err := h.categoryService.CreateCategory(ctx, request.Name)
	if err != nil {
		logger.Error("Failed to create category", err)
		return respondError(c, err)
	}

	return c.JSON(http.StatusCreated, fres.Response.StatusCreated(created))
}

func (h *CategoryHandler) DeleteCategory(c echo.Context) error {
	categoryID, err := parseID(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: "invalid category id"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	if err := h.categoryService.DeleteCategory(ctx, categoryID); err != nil {
		logger.Error("Failed to delete category", err)
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK("Category deleted successfully"))
}
