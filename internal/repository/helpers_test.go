package repository

import (
	"context"
	"testing"
	"time"

	"github.com/nimasrn/retail-normalizer/internal/model"
	"github.com/shopspring/decimal"

	"github.com/nimasrn/retail-normalizer/pkg/database"
	"github.com/nimasrn/retail-normalizer/pkg/logger"
	"github.com/stretchr/testify/require"
)

func setupTestDB(t *testing.T) *database.DB {
	logger.NewNop()

	db, err := database.CreateSQLite(":memory:", false)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	err = db.Write(context.Background()).AutoMigrate(&TransactionEntity{}, &RunEntity{})
	require.NoError(t, err)

	return db
}

func newTxn(orderID, productID, sales string) *model.Transaction {
	return &model.Transaction{
		OrderID:      orderID,
		OrderDate:    time.Date(2017, 1, 1, 0, 0, 0, 0, time.UTC),
		ShipDate:     time.Date(2017, 1, 4, 0, 0, 0, 0, time.UTC),
		ShipMode:     model.ShipModeStandardClass,
		CustomerID:   "CG-12520",
		CustomerName: "Claire Gute",
		Segment:      "Consumer",
		Country:      "United States",
		City:         "Henderson",
		State:        "Kentucky",
		PostalCode:   "42420",
		Region:       "South",
		ProductID:    productID,
		Category:     "Furniture",
		SubCategory:  "Bookcases",
		ProductName:  "Bookcase",
		Sales:        decimal.RequireFromString(sales),
		Quantity:     1,
		Discount:     decimal.Zero,
		Profit:       decimal.RequireFromString("10"),
	}
}
