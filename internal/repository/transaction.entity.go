package repository

import (
	"time"

	"github.com/nimasrn/retail-normalizer/internal/model"
	"github.com/shopspring/decimal"
)

type TransactionEntity struct {
	ID           int64           `db:"id"            gorm:"primaryKey;autoIncrement;column:id"`
	OrderID      string          `db:"order_id"      gorm:"column:order_id;type:varchar(32);not null;index:idx_transactions_order_product,priority:1"`
	OrderDate    time.Time       `db:"order_date"    gorm:"column:order_date;type:date;not null"`
	ShipDate     time.Time       `db:"ship_date"     gorm:"column:ship_date;type:date;not null"`
	ShipMode     string          `db:"ship_mode"     gorm:"column:ship_mode;type:varchar(32);not null"`
	CustomerID   string          `db:"customer_id"   gorm:"column:customer_id;type:varchar(32);not null"`
	CustomerName string          `db:"customer_name" gorm:"column:customer_name;type:varchar(255);not null;default:''"`
	Segment      string          `db:"segment"       gorm:"column:segment;type:varchar(64);not null;default:''"`
	Country      string          `db:"country"       gorm:"column:country;type:varchar(64);not null;default:''"`
	City         string          `db:"city"          gorm:"column:city;type:varchar(128);not null;default:''"`
	State        string          `db:"state"         gorm:"column:state;type:varchar(128);not null;default:''"`
	PostalCode   string          `db:"postal_code"   gorm:"column:postal_code;type:varchar(16);not null;default:''"`
	Region       string          `db:"region"        gorm:"column:region;type:varchar(64);not null;default:''"`
	ProductID    string          `db:"product_id"    gorm:"column:product_id;type:varchar(32);not null;index:idx_transactions_order_product,priority:2"`
	Category     string          `db:"category"      gorm:"column:category;type:varchar(64);not null;default:''"`
	SubCategory  string          `db:"sub_category"  gorm:"column:sub_category;type:varchar(64);not null;default:''"`
	ProductName  string          `db:"product_name"  gorm:"column:product_name;type:text;not null;default:''"`
	Sales        decimal.Decimal `db:"sales"         gorm:"column:sales;type:decimal(12,4);not null"`
	Quantity     int             `db:"quantity"      gorm:"column:quantity;not null"`
	Discount     decimal.Decimal `db:"discount"      gorm:"column:discount;type:decimal(6,4);not null;default:0"`
	Profit       decimal.Decimal `db:"profit"        gorm:"column:profit;type:decimal(12,4);not null;default:0"`

	ShippingDurationDays *int    `db:"shipping_duration_days" gorm:"column:shipping_duration_days"`
	CustomerTier         *string `db:"customer_tier"          gorm:"column:customer_tier;type:varchar(16)"`
}

func (TransactionEntity) TableName() string {
	return "transactions"
}

func toTransactionEntity(m *model.Transaction) *TransactionEntity {
	if m == nil {
		return nil
	}
	e := &TransactionEntity{
		ID:                   m.ID,
		OrderID:              m.OrderID,
		OrderDate:            m.OrderDate,
		ShipDate:             m.ShipDate,
		ShipMode:             string(m.ShipMode),
		CustomerID:           m.CustomerID,
		CustomerName:         m.CustomerName,
		Segment:              m.Segment,
		Country:              m.Country,
		City:                 m.City,
		State:                m.State,
		PostalCode:           m.PostalCode,
		Region:               m.Region,
		ProductID:            m.ProductID,
		Category:             m.Category,
		SubCategory:          m.SubCategory,
		ProductName:          m.ProductName,
		Sales:                m.Sales,
		Quantity:             m.Quantity,
		Discount:             m.Discount,
		Profit:               m.Profit,
		ShippingDurationDays: m.ShippingDurationDays,
	}
	if m.CustomerTier != nil {
		tier := string(*m.CustomerTier)
		e.CustomerTier = &tier
	}
	return e
}

func toTransactionModel(e *TransactionEntity) *model.Transaction {
	if e == nil {
		return nil
	}
	m := &model.Transaction{
		ID:                   e.ID,
		OrderID:              e.OrderID,
		OrderDate:            e.OrderDate.UTC(),
		ShipDate:             e.ShipDate.UTC(),
		ShipMode:             model.ShipMode(e.ShipMode),
		CustomerID:           e.CustomerID,
		CustomerName:         e.CustomerName,
		Segment:              e.Segment,
		Country:              e.Country,
		City:                 e.City,
		State:                e.State,
		PostalCode:           e.PostalCode,
		Region:               e.Region,
		ProductID:            e.ProductID,
		Category:             e.Category,
		SubCategory:          e.SubCategory,
		ProductName:          e.ProductName,
		Sales:                e.Sales,
		Quantity:             e.Quantity,
		Discount:             e.Discount,
		Profit:               e.Profit,
		ShippingDurationDays: e.ShippingDurationDays,
	}
	if e.CustomerTier != nil {
		tier := model.CustomerTier(*e.CustomerTier)
		m.CustomerTier = &tier
	}
	return m
}

func toTransactionEntities(models []*model.Transaction) []*TransactionEntity {
	entities := make([]*TransactionEntity, len(models))
	for i, m := range models {
		entities[i] = toTransactionEntity(m)
	}
	return entities
}

func toTransactionModels(entities []*TransactionEntity) []*model.Transaction {
	if entities == nil {
		return nil
	}
	models := make([]*model.Transaction, len(entities))
	for i, e := range entities {
		models[i] = toTransactionModel(e)
	}
	return models
}
