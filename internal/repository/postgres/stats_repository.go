package postgres

import (
	"context"
	"fmt"
	"time"

	"shopsphere/business/reporting"
	"shopsphere/domain"

	"gorm.io/gorm"
)

// StatsRepository serves the read-only aggregation queries behind the
// admin dashboard. It never writes.
type StatsRepository struct {
	DB *gorm.DB
}

func NewStatsRepository(db *gorm.DB) *StatsRepository {
	return &StatsRepository{
		DB: db,
	}
}

func (r *StatsRepository) CountProducts(ctx context.Context) (int64, error) {
	var count int64
	err := r.DB.WithContext(ctx).Model(&domain.Product{}).Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count products: %w", err)
	}

	return count, nil
}

func (r *StatsRepository) CountOrders(ctx context.Context) (int64, error) {
	var count int64
	err := r.DB.WithContext(ctx).Model(&domain.Order{}).Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count orders: %w", err)
	}

	return count, nil
}

func (r *StatsRepository) CountCategories(ctx context.Context) (int64, error) {
	var count int64
	err := r.DB.WithContext(ctx).Model(&domain.Category{}).Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count categories: %w", err)
	}

	return count, nil
}

// SumRevenue totals every order regardless of payment status.
func (r *StatsRepository) SumRevenue(ctx context.Context) (float64, error) {
	var revenue float64
	err := r.DB.WithContext(ctx).Model(&domain.Order{}).
		Select("COALESCE(SUM(total_amount), 0)").
		Scan(&revenue).Error
	if err != nil {
		return 0, fmt.Errorf("failed to sum revenue: %w", err)
	}

	return revenue, nil
}

// RevenueRowsSince returns the raw (created_at, total_amount) pairs for
// orders created at or after cutoff. Month bucketing happens in the
// service so the query stays portable across dialects.
func (r *StatsRepository) RevenueRowsSince(ctx context.Context, cutoff time.Time) ([]reporting.RevenueRow, error) {
	var rows []reporting.RevenueRow
	err := r.DB.WithContext(ctx).Model(&domain.Order{}).
		Select("created_at, total_amount").
		Where("created_at >= ?", cutoff).
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to load revenue rows: %w", err)
	}

	return rows, nil
}

// CategoryLineCounts unwinds order items, joins each to its product and
// the product's category, and counts per category name. An order with N
// items in one category contributes N.
func (r *StatsRepository) CategoryLineCounts(ctx context.Context) ([]reporting.CategoryCount, error) {
	var rows []reporting.CategoryCount
	err := r.DB.WithContext(ctx).Table("order_items").
		Select("categories.name AS name, COUNT(*) AS orders").
		Joins("JOIN products ON products.id = order_items.product_id").
		Joins("JOIN categories ON categories.id = products.category_id").
		Group("categories.name").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to count orders by category: %w", err)
	}

	return rows, nil
}

func (r *StatsRepository) StatusCounts(ctx context.Context) ([]reporting.StatusCount, error) {
	var rows []reporting.StatusCount
	err := r.DB.WithContext(ctx).Model(&domain.Order{}).
		Select("status, COUNT(*) AS count").
		Group("status").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to count orders by status: %w", err)
	}

	return rows, nil
}

func (r *StatsRepository) RecentOrders(ctx context.Context, limit int) ([]domain.Order, error) {
	var orders []domain.Order
	err := r.DB.WithContext(ctx).Preload("Items").
		Order("created_at DESC").
		Limit(limit).
		Find(&orders).Error
	if err != nil {
		return nil, fmt.Errorf("failed to load recent orders: %w", err)
	}

	return orders, nil
}
