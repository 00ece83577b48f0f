package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// ShipMode is the delivery class of a transaction line.
type ShipMode string

const (
	ShipModeSameDay       ShipMode = "Same Day"
	ShipModeFirstClass    ShipMode = "First Class"
	ShipModeSecondClass   ShipMode = "Second Class"
	ShipModeStandardClass ShipMode = "Standard Class"
)

var ShipModes = []ShipMode{ShipModeSameDay, ShipModeFirstClass, ShipModeSecondClass, ShipModeStandardClass}

// CustomerTier classifies a transaction line by its sales value.
type CustomerTier string

const (
	CustomerTierHighValue CustomerTier = "HighValue"
	CustomerTierMidValue  CustomerTier = "MidValue"
	CustomerTierLowValue  CustomerTier = "LowValue"
)

var CustomerTiers = []CustomerTier{CustomerTierHighValue, CustomerTierMidValue, CustomerTierLowValue}

// Transaction is one product within one order.
// ShippingDurationDays and CustomerTier stay nil until the record is enriched.
type Transaction struct {
	ID           int64           `json:"id"            db:"id"`
	OrderID      string          `json:"order_id"      db:"order_id"`
	OrderDate    time.Time       `json:"order_date"    db:"order_date"`
	ShipDate     time.Time       `json:"ship_date"     db:"ship_date"`
	ShipMode     ShipMode        `json:"ship_mode"     db:"ship_mode"`
	CustomerID   string          `json:"customer_id"   db:"customer_id"`
	CustomerName string          `json:"customer_name" db:"customer_name"`
	Segment      string          `json:"segment"       db:"segment"`
	Country      string          `json:"country"       db:"country"`
	City         string          `json:"city"          db:"city"`
	State        string          `json:"state"         db:"state"`
	PostalCode   string          `json:"postal_code"   db:"postal_code"`
	Region       string          `json:"region"        db:"region"`
	ProductID    string          `json:"product_id"    db:"product_id"`
	Category     string          `json:"category"      db:"category"`
	SubCategory  string          `json:"sub_category"  db:"sub_category"`
	ProductName  string          `json:"product_name"  db:"product_name"`
	Sales        decimal.Decimal `json:"sales"         db:"sales"`
	Quantity     int             `json:"quantity"      db:"quantity"`
	Discount     decimal.Decimal `json:"discount"      db:"discount"`
	Profit       decimal.Decimal `json:"profit"        db:"profit"`

	ShippingDurationDays *int          `json:"shipping_duration_days,omitempty" db:"shipping_duration_days"`
	CustomerTier         *CustomerTier `json:"customer_tier,omitempty"          db:"customer_tier"`
}

// LineKey identifies a logical transaction line.
type LineKey struct {
	OrderID   string
	ProductID string
}

func (t *Transaction) Key() LineKey {
	return LineKey{OrderID: t.OrderID, ProductID: t.ProductID}
}

func (t *Transaction) Enriched() bool {
	return t.ShippingDurationDays != nil && t.CustomerTier != nil
}
