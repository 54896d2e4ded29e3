package router

import (
	"shopsphere/internal/middleware"
	"shopsphere/internal/rest"

	"github.com/labstack/echo/v4"
)

func SetAddressRoutes(api *echo.Group, handler *rest.AddressHandler) {
	addresses := api.Group("/addresses", middleware.AuthMiddleware())

	addresses.GET("", handler.GetAllAddresses)
	addresses.POST("", handler.CreateAddress)
	addresses.PUT("/:id", handler.UpdateAddress)
	addresses.DELETE("/:id", handler.DeleteAddress)
}

func SetOrdersRoutes(api *echo.Group, handler *rest.OrdersHandler) {
	orders := api.Group("/orders", middleware.AuthMiddleware())

	orders.POST("", handler.CreateOrder)
	orders.GET("", handler.GetAllOrders)
	orders.GET("/:id", handler.GetOrderByID)
	orders.PUT("/:id/pay", handler.PayOrder)
	orders.PUT("/:id/deliver", handler.DeliverOrder)
	orders.PUT("/:id/status", handler.UpdateStatus, middleware.AdminOnly())
}

func SetCategoryRoutes(api *echo.Group, handler *rest.CategoryHandler) {
	admin := api.Group("/admin/categories", middleware.AuthMiddleware(), middleware.AdminOnly())

	admin.GET("", handler.GetAllCategories)
	admin.POST("", handler.CreateCategory)
	admin.DELETE("/:id", handler.DeleteCategory)
}

func SetProductRoutes(api *echo.Group, handler *rest.ProductHandler) {
	admin := api.Group("/admin/products", middleware.AuthMiddleware(), middleware.AdminOnly())

	admin.GET("", handler.GetAllProducts)
	admin.GET("/:id", handler.GetProductByID)
	admin.POST("", handler.CreateProduct)
	admin.DELETE("/:id", handler.DeleteProduct)
}

func SetAdminStatsRoutes(api *echo.Group, handler *rest.AdminStatsHandler) {
	admin := api.Group("/admin", middleware.AuthMiddleware(), middleware.AdminOnly())

	admin.GET("/stats", handler.GetStats)
}
