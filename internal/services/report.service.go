package services

import (
	"context"
	"fmt"

	"github.com/nimasrn/retail-normalizer/internal/model"
)

type ReportRepository interface {
	SalesByRegion(ctx context.Context) ([]model.RegionSales, error)
	SalesByCategory(ctx context.Context) ([]model.CategorySales, error)
	SalesByTier(ctx context.Context) ([]model.TierSales, error)
	ShippingByMode(ctx context.Context) ([]model.ShipModeDuration, error)
	TopCustomers(ctx context.Context, limit int) ([]model.CustomerSales, error)
}

type ReportService struct {
	repo ReportRepository
}

func NewReportService(repo ReportRepository) *ReportService {
	return &ReportService{repo: repo}
}

// Build runs every aggregate over the normalized table.
func (s *ReportService) Build(ctx context.Context, topCustomers int) (*model.Report, error) {
	var (
		r   model.Report
		err error
	)
	if r.ByRegion, err = s.repo.SalesByRegion(ctx); err != nil {
		return nil, fmt.Errorf("sales by region: %w", err)
	}
	if r.ByCategory, err = s.repo.SalesByCategory(ctx); err != nil {
		return nil, fmt.Errorf("sales by category: %w", err)
	}
	if r.ByTier, err = s.repo.SalesByTier(ctx); err != nil {
		return nil, fmt.Errorf("sales by tier: %w", err)
	}
	if r.ByShipMode, err = s.repo.ShippingByMode(ctx); err != nil {
		return nil, fmt.Errorf("shipping by mode: %w", err)
	}
	if r.TopCustomers, err = s.repo.TopCustomers(ctx, topCustomers); err != nil {
		return nil, fmt.Errorf("top customers: %w", err)
	}
	return &r, nil
}
