package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"shopsphere/internal/middleware"
	"shopsphere/pkg/utils"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	utils.InitJWT("test-secret")
}

func okHandler(c echo.Context) error {
	return c.String(http.StatusOK, "ok")
}

func TestAuthMiddlewareMissingHeader(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := middleware.AuthMiddleware()(okHandler)
	require.NoError(t, handler(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthMiddlewareMalformedHeader(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Token abcdef")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := middleware.AuthMiddleware()(okHandler)
	require.NoError(t, handler(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthMiddlewareInvalidToken(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer not-a-jwt")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := middleware.AuthMiddleware()(okHandler)
	require.NoError(t, handler(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthMiddlewareSetsIdentity(t *testing.T) {
	token, err := utils.GenerateJWT("42", "customer")
	require.NoError(t, err)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := middleware.AuthMiddleware()(func(c echo.Context) error {
		assert.Equal(t, uint(42), c.Get("user_id"))
		assert.Equal(t, "customer", c.Get("role"))
		return c.String(http.StatusOK, "ok")
	})
	require.NoError(t, handler(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAdminOnlyRejectsCustomer(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("role", "customer")

	handler := middleware.AdminOnly()(okHandler)
	require.NoError(t, handler(c))
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestAdminOnlyAllowsAdmin(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("role", "admin")

	handler := middleware.AdminOnly()(okHandler)
	require.NoError(t, handler(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}
