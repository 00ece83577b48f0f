package model

import "github.com/shopspring/decimal"

type RegionSales struct {
	Region      string          `json:"region"`
	TotalSales  decimal.Decimal `json:"total_sales"`
	TotalProfit decimal.Decimal `json:"total_profit"`
	LineCount   int64           `json:"line_count"`
}

type CategorySales struct {
	Category    string          `json:"category"`
	SubCategory string          `json:"sub_category"`
	TotalSales  decimal.Decimal `json:"total_sales"`
	TotalProfit decimal.Decimal `json:"total_profit"`
	LineCount   int64           `json:"line_count"`
}

type TierSales struct {
	CustomerTier CustomerTier    `json:"customer_tier"`
	LineCount    int64           `json:"line_count"`
	TotalSales   decimal.Decimal `json:"total_sales"`
}

type ShipModeDuration struct {
	ShipMode        ShipMode `json:"ship_mode"`
	AvgDurationDays float64  `json:"avg_duration_days"`
	LineCount       int64    `json:"line_count"`
}

type CustomerSales struct {
	CustomerID   string          `json:"customer_id"`
	CustomerName string          `json:"customer_name"`
	TotalSales   decimal.Decimal `json:"total_sales"`
	OrderCount   int64           `json:"order_count"`
}

// Report bundles the read-only aggregates run over the normalized table.
type Report struct {
	ByRegion     []RegionSales      `json:"by_region"`
	ByCategory   []CategorySales    `json:"by_category"`
	ByTier       []TierSales        `json:"by_tier"`
	ByShipMode   []ShipModeDuration `json:"by_ship_mode"`
	TopCustomers []CustomerSales    `json:"top_customers"`
}
