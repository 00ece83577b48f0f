package normalize

import (
	"testing"
	"time"

	"github.com/nimasrn/retail-normalizer/internal/model"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func TestTier(t *testing.T) {
	cases := []struct {
		sales string
		want  model.CustomerTier
	}{
		{"0", model.CustomerTierLowValue},
		{"99.99", model.CustomerTierLowValue},
		{"100.00", model.CustomerTierLowValue},
		{"100.01", model.CustomerTierMidValue},
		{"499.99", model.CustomerTierMidValue},
		{"500.00", model.CustomerTierHighValue},
		{"500.01", model.CustomerTierHighValue},
		{"22638.48", model.CustomerTierHighValue},
	}

	for _, tc := range cases {
		t.Run(tc.sales, func(t *testing.T) {
			assert.Equal(t, tc.want, Tier(decimal.RequireFromString(tc.sales)))
		})
	}
}

func TestShippingDurationDays(t *testing.T) {
	assert.Equal(t, 3, ShippingDurationDays(date("2017-01-01"), date("2017-01-04")))
	assert.Equal(t, 0, ShippingDurationDays(date("2017-01-01"), date("2017-01-01")))
	assert.Equal(t, 2, ShippingDurationDays(date("2016-02-28"), date("2016-03-01")))
	assert.Equal(t, 1, ShippingDurationDays(date("2016-12-31"), date("2017-01-01")))

	t.Run("ship date before order date is negative", func(t *testing.T) {
		assert.Equal(t, -2, ShippingDurationDays(date("2017-01-04"), date("2017-01-02")))
	})

	t.Run("dates centuries apart", func(t *testing.T) {
		assert.Equal(t, 657437, ShippingDurationDays(date("0217-01-01"), date("2017-01-01")))
		assert.Equal(t, -657437, ShippingDurationDays(date("2017-01-01"), date("0217-01-01")))
		assert.Equal(t, 2921940, ShippingDurationDays(date("0001-01-01"), date("8001-01-01")))
	})

	t.Run("time of day is ignored", func(t *testing.T) {
		order := time.Date(2017, 1, 1, 23, 59, 0, 0, time.UTC)
		ship := time.Date(2017, 1, 2, 0, 1, 0, 0, time.UTC)
		assert.Equal(t, 1, ShippingDurationDays(order, ship))
	})
}

func TestDeriveFeatures(t *testing.T) {
	in := model.Transaction{
		ID:        1,
		OrderID:   "CA-2017-152156",
		ProductID: "FUR-BO-10001798",
		OrderDate: date("2017-01-01"),
		ShipDate:  date("2017-01-04"),
		Sales:     decimal.RequireFromString("261.96"),
	}

	out := DeriveFeatures(in)
	require.True(t, out.Enriched())
	assert.Equal(t, 3, *out.ShippingDurationDays)
	assert.Equal(t, model.CustomerTierMidValue, *out.CustomerTier)
	assert.False(t, in.Enriched(), "input must not be modified")

	t.Run("idempotent", func(t *testing.T) {
		again := DeriveFeatures(out)
		assert.Equal(t, *out.ShippingDurationDays, *again.ShippingDurationDays)
		assert.Equal(t, *out.CustomerTier, *again.CustomerTier)
		assert.Equal(t, out.Sales, again.Sales)
	})
}
