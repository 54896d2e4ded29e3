package rest

import (
	"context"
	"net/http"
	"time"

	"shopsphere/business/reporting"
	"shopsphere/pkg/logger"

	"github.com/labstack/echo/v4"
)

type (
	AdminStatsHandler struct {
		reportingService ReportingService
		timeout          time.Duration
	}

	ReportingService interface {
		GetDashboardStats(ctx context.Context) (*reporting.DashboardStats, error)
	}
)

func NewAdminStatsHandler(reportingService ReportingService) *AdminStatsHandler {
	return &AdminStatsHandler{
		reportingService: reportingService,
		// Aggregation fans out over the whole order history; give it
		// more room than the CRUD handlers.
		timeout: 30 * time.Second,
	}
}

func (h *AdminStatsHandler) GetStats(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	stats, err := h.reportingService.GetDashboardStats(ctx)
	if err != nil {
		logger.Error("Failed to compute admin stats", err)
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, stats)
}
