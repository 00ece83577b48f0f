package fixtures

import (
	"strings"

	"github.com/nimasrn/retail-normalizer/internal/ingest"
)

// Line is one CSV row of a Superstore style export. Unset fields get a
// plausible default when rendered.
type Line struct {
	OrderID   string
	OrderDate string
	ShipDate  string
	ShipMode  string
	Customer  string
	Region    string
	ProductID string
	Category  string
	Sales     string
	Quantity  string
}

func NewLine(orderID, productID, sales string) Line {
	return Line{OrderID: orderID, ProductID: productID, Sales: sales}
}

func (l Line) fields() map[string]string {
	withDefault := func(v, def string) string {
		if v == "" {
			return def
		}
		return v
	}
	return map[string]string{
		ingest.ColOrderID:      l.OrderID,
		ingest.ColOrderDate:    withDefault(l.OrderDate, "2017-01-01"),
		ingest.ColShipDate:     withDefault(l.ShipDate, "2017-01-04"),
		ingest.ColShipMode:     withDefault(l.ShipMode, "Standard Class"),
		ingest.ColCustomerID:   withDefault(l.Customer, "CG-12520"),
		ingest.ColCustomerName: "Claire Gute",
		ingest.ColSegment:      "Consumer",
		ingest.ColCountry:      "United States",
		ingest.ColCity:         "Henderson",
		ingest.ColState:        "Kentucky",
		ingest.ColPostalCode:   "42420",
		ingest.ColRegion:       withDefault(l.Region, "South"),
		ingest.ColProductID:    l.ProductID,
		ingest.ColCategory:     withDefault(l.Category, "Furniture"),
		ingest.ColSubCategory:  "Bookcases",
		ingest.ColProductName:  "Bush Somerset Collection Bookcase",
		ingest.ColSales:        l.Sales,
		ingest.ColQuantity:     withDefault(l.Quantity, "1"),
		ingest.ColDiscount:     "0",
		ingest.ColProfit:       "0",
	}
}

// CSV renders lines in the column order the reader expects.
func CSV(lines ...Line) string {
	var b strings.Builder
	b.WriteString(strings.Join(ingest.Columns, ","))
	b.WriteByte('\n')
	for _, l := range lines {
		f := l.fields()
		row := make([]string, len(ingest.Columns))
		for i, col := range ingest.Columns {
			row[i] = f[col]
		}
		b.WriteString(strings.Join(row, ","))
		b.WriteByte('\n')
	}
	return b.String()
}

var (
	// DuplicatePair is the canonical CA-1/P1 scenario: the second line is a
	// reload of the first.
	DuplicatePair = []Line{
		NewLine("CA-1", "P1", "120.00"),
		NewLine("CA-1", "P1", "120.00"),
	}

	TierBoundaries = []Line{
		NewLine("CA-10", "P1", "500.00"),
		NewLine("CA-11", "P1", "500.01"),
		NewLine("CA-12", "P1", "100.00"),
		NewLine("CA-13", "P1", "100.01"),
	}
)
