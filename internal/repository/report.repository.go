package repository

import (
	"context"

	"github.com/nimasrn/retail-normalizer/internal/model"
	"github.com/nimasrn/retail-normalizer/pkg/database"
)

const defaultTopCustomers = 10

// ReportRepository runs read-only aggregates over the normalized table.
type ReportRepository struct {
	*database.DB
}

func NewReportRepository(db *database.DB) *ReportRepository {
	return &ReportRepository{
		db,
	}
}

func (r *ReportRepository) SalesByRegion(ctx context.Context) ([]model.RegionSales, error) {
	var rows []model.RegionSales
	err := r.Read(ctx).Model(&TransactionEntity{}).
		Select("region, SUM(sales) AS total_sales, SUM(profit) AS total_profit, COUNT(*) AS line_count").
		Group("region").
		Order("total_sales DESC").
		Scan(&rows).Error
	return rows, err
}

func (r *ReportRepository) SalesByCategory(ctx context.Context) ([]model.CategorySales, error) {
	var rows []model.CategorySales
	err := r.Read(ctx).Model(&TransactionEntity{}).
		Select("category, sub_category, SUM(sales) AS total_sales, SUM(profit) AS total_profit, COUNT(*) AS line_count").
		Group("category, sub_category").
		Order("category ASC, total_sales DESC").
		Scan(&rows).Error
	return rows, err
}

// SalesByTier only counts enriched lines.
func (r *ReportRepository) SalesByTier(ctx context.Context) ([]model.TierSales, error) {
	var rows []model.TierSales
	err := r.Read(ctx).Model(&TransactionEntity{}).
		Select("customer_tier, COUNT(*) AS line_count, SUM(sales) AS total_sales").
		Where("customer_tier IS NOT NULL").
		Group("customer_tier").
		Order("total_sales DESC").
		Scan(&rows).Error
	return rows, err
}

func (r *ReportRepository) ShippingByMode(ctx context.Context) ([]model.ShipModeDuration, error) {
	var rows []model.ShipModeDuration
	err := r.Read(ctx).Model(&TransactionEntity{}).
		Select("ship_mode, AVG(shipping_duration_days) AS avg_duration_days, COUNT(*) AS line_count").
		Where("shipping_duration_days IS NOT NULL").
		Group("ship_mode").
		Order("avg_duration_days ASC").
		Scan(&rows).Error
	return rows, err
}

func (r *ReportRepository) TopCustomers(ctx context.Context, limit int) ([]model.CustomerSales, error) {
	if limit <= 0 {
		limit = defaultTopCustomers
	}
	var rows []model.CustomerSales
	err := r.Read(ctx).Model(&TransactionEntity{}).
		Select("customer_id, customer_name, SUM(sales) AS total_sales, COUNT(DISTINCT order_id) AS order_count").
		Group("customer_id, customer_name").
		Order("total_sales DESC").
		Limit(limit).
		Scan(&rows).Error
	return rows, err
}
