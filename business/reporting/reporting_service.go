package reporting

import (
	"context"
	"sort"
	"time"

	"shopsphere/domain"
	"shopsphere/pkg/logger"
	"shopsphere/pkg/metrics"

	"golang.org/x/sync/errgroup"
)

// StatsRepository contract interface. Every method is a read.
type StatsRepository interface {
	CountProducts(ctx context.Context) (int64, error)
	CountOrders(ctx context.Context) (int64, error)
	CountCategories(ctx context.Context) (int64, error)
	SumRevenue(ctx context.Context) (float64, error)
	RevenueRowsSince(ctx context.Context, cutoff time.Time) ([]RevenueRow, error)
	CategoryLineCounts(ctx context.Context) ([]CategoryCount, error)
	StatusCounts(ctx context.Context) ([]StatusCount, error)
	RecentOrders(ctx context.Context, limit int) ([]domain.Order, error)
}

// StatsCache is an optional read-through cache for the whole dashboard
// payload. A cache miss or error just means recompute.
type StatsCache interface {
	Get(ctx context.Context) (*DashboardStats, bool)
	Set(ctx context.Context, stats *DashboardStats)
}

type RevenueRow struct {
	CreatedAt   time.Time
	TotalAmount float64
}

type RevenuePoint struct {
	Date    string  `json:"date"`
	Revenue float64 `json:"revenue"`
}

type CategoryCount struct {
	Name   string `json:"name"`
	Orders int64  `json:"orders"`
}

type StatusCount struct {
	Status string `json:"status"`
	Count  int64  `json:"count"`
}

type DashboardStats struct {
	TotalProducts   int64           `json:"totalProducts"`
	TotalOrders     int64           `json:"totalOrders"`
	Revenue         float64         `json:"revenue"`
	TotalCategories int64           `json:"totalCategories"`
	RecentOrders    []domain.Order  `json:"recentOrders"`
	RevenueData     []RevenuePoint  `json:"revenueData"`
	CategoryData    []CategoryCount `json:"categoryData"`
	OrderStatusData []StatusCount   `json:"orderStatusData"`
}

const recentOrderLimit = 5

var monthLabels = []string{"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"}

// ReportingService computes the admin dashboard in one logical call.
// It holds no state and never mutates the stores it reads; orders
// created mid-computation may or may not be visible (no isolation
// guarantee across the stages).
type ReportingService struct {
	statsRepo StatsRepository
	cache     StatsCache
	now       func() time.Time
}

// NewReportingService wires the aggregator. cache may be nil.
func NewReportingService(statsRepo StatsRepository, cache StatsCache) *ReportingService {
	return &ReportingService{
		statsRepo: statsRepo,
		cache:     cache,
		now:       time.Now,
	}
}

// GetDashboardStats runs the independent aggregation stages
// concurrently and assembles the dashboard payload.
func (s *ReportingService) GetDashboardStats(ctx context.Context) (*DashboardStats, error) {
	if s.cache != nil {
		if cached, ok := s.cache.Get(ctx); ok {
			metrics.AdminStatsCacheHits.Inc()
			return cached, nil
		}
	}

	started := s.now()
	stats := &DashboardStats{}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		count, err := s.statsRepo.CountProducts(gctx)
		if err != nil {
			return err
		}
		stats.TotalProducts = count
		return nil
	})

	g.Go(func() error {
		count, err := s.statsRepo.CountOrders(gctx)
		if err != nil {
			return err
		}
		stats.TotalOrders = count

		revenue, err := s.statsRepo.SumRevenue(gctx)
		if err != nil {
			return err
		}
		stats.Revenue = revenue
		return nil
	})

	g.Go(func() error {
		count, err := s.statsRepo.CountCategories(gctx)
		if err != nil {
			return err
		}
		stats.TotalCategories = count
		return nil
	})

	g.Go(func() error {
		series, err := s.revenueSeries(gctx)
		if err != nil {
			return err
		}
		stats.RevenueData = series
		return nil
	})

	g.Go(func() error {
		rows, err := s.statsRepo.CategoryLineCounts(gctx)
		if err != nil {
			return err
		}
		stats.CategoryData = rows
		return nil
	})

	g.Go(func() error {
		rows, err := s.statsRepo.StatusCounts(gctx)
		if err != nil {
			return err
		}
		stats.OrderStatusData = rows
		return nil
	})

	g.Go(func() error {
		recent, err := s.statsRepo.RecentOrders(gctx, recentOrderLimit)
		if err != nil {
			return err
		}
		stats.RecentOrders = recent
		return nil
	})

	if err := g.Wait(); err != nil {
		logger.Error("Failed to compute dashboard stats", err)
		return nil, err
	}

	metrics.AdminStatsDuration.Observe(time.Since(started).Seconds())

	if s.cache != nil {
		s.cache.Set(ctx, stats)
	}

	return stats, nil
}

// revenueSeries buckets the trailing six months of orders by
// (year, month) of creation, sums per bucket, sorts ascending and maps
// each month number to its 3-letter label.
func (s *ReportingService) revenueSeries(ctx context.Context) ([]RevenuePoint, error) {
	cutoff := s.now().AddDate(0, -6, 0)

	rows, err := s.statsRepo.RevenueRowsSince(ctx, cutoff)
	if err != nil {
		return nil, err
	}

	type bucket struct {
		year  int
		month time.Month
	}

	sums := make(map[bucket]float64)
	for _, row := range rows {
		b := bucket{year: row.CreatedAt.Year(), month: row.CreatedAt.Month()}
		sums[b] += row.TotalAmount
	}

	buckets := make([]bucket, 0, len(sums))
	for b := range sums {
		buckets = append(buckets, b)
	}
	sort.Slice(buckets, func(i, j int) bool {
		if buckets[i].year != buckets[j].year {
			return buckets[i].year < buckets[j].year
		}
		return buckets[i].month < buckets[j].month
	})

	series := make([]RevenuePoint, 0, len(buckets))
	for _, b := range buckets {
		series = append(series, RevenuePoint{
			Date:    monthLabels[b.month-1],
			Revenue: sums[b],
		})
	}

	return series, nil
}
