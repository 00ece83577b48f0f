package ingest

import (
	"strings"
	"unicode"
)

// Canonical column names.
const (
	ColOrderID      = "Order ID"
	ColOrderDate    = "Order Date"
	ColShipDate     = "Ship Date"
	ColShipMode     = "Ship Mode"
	ColCustomerID   = "Customer ID"
	ColCustomerName = "Customer Name"
	ColSegment      = "Segment"
	ColCountry      = "Country"
	ColCity         = "City"
	ColState        = "State"
	ColPostalCode   = "Postal Code"
	ColRegion       = "Region"
	ColProductID    = "Product ID"
	ColCategory     = "Category"
	ColSubCategory  = "Sub-Category"
	ColProductName  = "Product Name"
	ColSales        = "Sales"
	ColQuantity     = "Quantity"
	ColDiscount     = "Discount"
	ColProfit       = "Profit"
)

// Columns lists every column a source file has to provide.
var Columns = []string{
	ColOrderID, ColOrderDate, ColShipDate, ColShipMode,
	ColCustomerID, ColCustomerName, ColSegment,
	ColCountry, ColCity, ColState, ColPostalCode, ColRegion,
	ColProductID, ColCategory, ColSubCategory, ColProductName,
	ColSales, ColQuantity, ColDiscount, ColProfit,
}

// requiredValues may not be blank.
var requiredValues = map[string]bool{
	ColOrderID:    true,
	ColOrderDate:  true,
	ColShipDate:   true,
	ColShipMode:   true,
	ColCustomerID: true,
	ColProductID:  true,
	ColSales:      true,
	ColQuantity:   true,
	ColDiscount:   true,
	ColProfit:     true,
}

// maxLengths mirrors the column widths of the transactions table, in characters.
var maxLengths = map[string]int{
	ColOrderID:      32,
	ColShipMode:     32,
	ColCustomerID:   32,
	ColCustomerName: 255,
	ColSegment:      64,
	ColCountry:      64,
	ColCity:         128,
	ColState:        128,
	ColPostalCode:   16,
	ColRegion:       64,
	ColProductID:    32,
	ColCategory:     64,
	ColSubCategory:  64,
}

// foldName reduces a header to lower-case letters and digits so that
// "Sub-Category", "sub_category" and "SubCategory" all match.
func foldName(s string) string {
	var b strings.Builder
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(unicode.ToLower(r))
		}
	}
	return b.String()
}
