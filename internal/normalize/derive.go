package normalize

import (
	"time"

	"github.com/nimasrn/retail-normalizer/internal/model"
	"github.com/shopspring/decimal"
)

// Tier thresholds in currency units. A sale of exactly HighValueThreshold is
// HighValue; a sale of exactly MidValueThreshold is still LowValue.
const (
	HighValueThreshold = 500
	MidValueThreshold  = 100
)

var (
	highValueFloor = decimal.NewFromInt(HighValueThreshold)
	midValueFloor  = decimal.NewFromInt(MidValueThreshold)
)

// DeriveFeatures returns a copy of t with the shipping duration and customer
// tier filled from its dates and sales amount. The input is not modified.
func DeriveFeatures(t model.Transaction) model.Transaction {
	days := ShippingDurationDays(t.OrderDate, t.ShipDate)
	tier := Tier(t.Sales)
	t.ShippingDurationDays = &days
	t.CustomerTier = &tier
	return t
}

// Tier classifies a sales amount.
func Tier(sales decimal.Decimal) model.CustomerTier {
	switch {
	case sales.GreaterThanOrEqual(highValueFloor):
		return model.CustomerTierHighValue
	case sales.GreaterThan(midValueFloor):
		return model.CustomerTierMidValue
	default:
		return model.CustomerTierLowValue
	}
}

// ShippingDurationDays counts whole calendar days from orderDate to shipDate.
// The result is negative when the ship date precedes the order date.
func ShippingDurationDays(orderDate, shipDate time.Time) int {
	const secondsPerDay = 24 * 60 * 60
	from := calendarDay(orderDate).Unix()
	to := calendarDay(shipDate).Unix()
	return int((to - from) / secondsPerDay)
}

func calendarDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
