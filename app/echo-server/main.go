package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"shopsphere/app/echo-server/router"
	"shopsphere/business/address"
	"shopsphere/business/category"
	"shopsphere/business/orders"
	"shopsphere/business/product"
	"shopsphere/business/reporting"
	"shopsphere/internal/middleware"
	"shopsphere/internal/repository/notification"
	psqlRepo "shopsphere/internal/repository/postgres"
	redisRepo "shopsphere/internal/repository/redis"
	"shopsphere/internal/rest"
	"shopsphere/pkg/config"
	"shopsphere/pkg/database"
	redisdb "shopsphere/pkg/database/redis"
	"shopsphere/pkg/logger"
	"shopsphere/pkg/metrics"
	"shopsphere/pkg/utils"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger.Init(cfg.App.Environment)
	logger.Info("Starting ShopSphere", "version", cfg.App.Version)

	utils.InitJWT(cfg.JWT.SecretKey)
	metrics.Init()

	db, err := database.InitPostgres(cfg)
	if err != nil {
		logger.Fatal("Failed to connect to database", "error", err)
	}

	logger.Info("Database connected successfully")

	// Redis is optional; the dashboard just recomputes on every request
	// when the cache is absent.
	var (
		statsCache    reporting.StatsCache
		categoryInval category.StatsInvalidator
		productInval  product.StatsInvalidator
	)
	rdb, err := redisdb.NewRedisClient(cfg)
	if err != nil {
		logger.Warn("Redis unavailable, stats caching disabled", "error", err)
	} else {
		cache := redisRepo.NewStatsCache(rdb, time.Duration(cfg.Redis.StatsCacheTTL)*time.Second)
		statsCache, categoryInval, productInval = cache, cache, cache
	}

	// Init notification from mailjet
	mailjetEmail := notification.NewMailjetRepository(
		notification.MailjetConfig{
			MailjetBaseURL:           cfg.Mailjet.MailjetBaseUrl,
			MailjetBasicAuthUsername: cfg.Mailjet.MailjetBasicAuthUsername,
			MailjetBasicAuthPassword: cfg.Mailjet.MailjetBasicAuthPassword,
			MailjetSenderEmail:       cfg.Mailjet.MailjetSenderEmail,
			MailjetSenderName:        cfg.Mailjet.MailjetSenderName,
		},
	)

	// Init repo
	userRepo := psqlRepo.NewUserRepository(db)
	ordersRepo := psqlRepo.NewOrdersRepository(db)
	addressRepo := psqlRepo.NewAddressRepository(db)
	productRepo := psqlRepo.NewProductRepository(db)
	categoryRepo := psqlRepo.NewCategoryRepository(db)
	statsRepo := psqlRepo.NewStatsRepository(db)

	// Init service
	ordersService := orders.NewOrdersService(ordersRepo, addressRepo, userRepo, mailjetEmail)
	addressService := address.NewAddressService(addressRepo)
	categoryService := category.NewCategoryService(categoryRepo, categoryInval)
	productService := product.NewProductService(productRepo, categoryRepo, productInval)
	reportingService := reporting.NewReportingService(statsRepo, statsCache)

	// Init handler
	ordersHandler := rest.NewOrdersHandler(ordersService)
	addressHandler := rest.NewAddressHandler(addressService)
	categoryHandler := rest.NewCategoryHandler(categoryService)
	productHandler := rest.NewProductHandler(productService)
	adminStatsHandler := rest.NewAdminStatsHandler(reportingService)

	// Init echo
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	// HTTP error handler
	e.HTTPErrorHandler = middleware.ErrorHandler

	// Global middleware
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins: []string{"http://localhost:3000", "http://localhost:8080"},
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodPatch},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization},
	}))

	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	// Setup routes
	api := e.Group("/api/v1")
	router.SetAddressRoutes(api, addressHandler)
	router.SetOrdersRoutes(api, ordersHandler)
	router.SetCategoryRoutes(api, categoryHandler)
	router.SetProductRoutes(api, productHandler)
	router.SetAdminStatsRoutes(api, adminStatsHandler)

	// Goroutine server
	go func() {
		addr := fmt.Sprintf(":%s", cfg.Server.Port)
		logger.Info("Server starting", "address", addr)
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Failed to start server", "error", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		logger.Error("Server shutdown error", "error", err)
	}

	if rdb != nil {
		if err := redisdb.CloseRedisClient(rdb); err != nil {
			logger.Error("Redis close error", "error", err)
		}
	}

	if err := database.ClosePostgres(db); err != nil {
		logger.Error("Database close error", "error", err)
	}

	logger.Info("Server stopped")
}
