package ingest

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/nimasrn/retail-normalizer/internal/model"
	"github.com/shopspring/decimal"
)

var dateLayouts = []string{
	"2006-01-02",
	"1/2/2006",
	"2006/01/02",
}

// ReadFile loads every transaction line of a CSV file.
func ReadFile(path string) ([]*model.Transaction, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open input: %w", err)
	}
	defer f.Close()

	return Read(f)
}

// Read parses a CSV stream with a header row. The first malformed row aborts
// the whole read with a *RecordError. Records come back in file order with a
// zero ID; the store assigns ids on insert.
func Read(r io.Reader) ([]*model.Transaction, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true
	cr.ReuseRecord = true

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, &RecordError{Line: 1, Err: errors.New("missing header row")}
	}
	if err != nil {
		return nil, &RecordError{Line: 1, Err: err}
	}
	index, err := mapHeader(header)
	if err != nil {
		return nil, err
	}

	var out []*model.Transaction
	for line := 2; ; line++ {
		row, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, &RecordError{Line: line, Err: err}
		}
		if blankRow(row) {
			continue
		}
		txn, err := parseRow(line, index, row)
		if err != nil {
			return nil, err
		}
		out = append(out, txn)
	}
	return out, nil
}

func mapHeader(header []string) (map[string]int, error) {
	byFolded := make(map[string]int, len(header))
	for i, h := range header {
		byFolded[foldName(strings.TrimPrefix(h, "\ufeff"))] = i
	}

	index := make(map[string]int, len(Columns))
	var missing []string
	for _, col := range Columns {
		i, ok := byFolded[foldName(col)]
		if !ok {
			missing = append(missing, col)
			continue
		}
		index[col] = i
	}
	if len(missing) > 0 {
		return nil, &RecordError{Line: 1, Err: fmt.Errorf("missing columns: %s", strings.Join(missing, ", "))}
	}
	return index, nil
}

func blankRow(row []string) bool {
	for _, v := range row {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}

type rowParser struct {
	line  int
	index map[string]int
	row   []string
	err   error
}

func (p *rowParser) str(col string) string {
	i := p.index[col]
	if i >= len(p.row) {
		return ""
	}
	v := strings.TrimSpace(p.row[i])
	if v == "" && requiredValues[col] && p.err == nil {
		p.err = &RecordError{Line: p.line, Field: col, Value: v, Err: errors.New("value is required")}
	}
	if n, ok := maxLengths[col]; ok && utf8.RuneCountInString(v) > n {
		p.fail(col, v, fmt.Errorf("value longer than %d characters", n))
	}
	return v
}

func (p *rowParser) fail(col, value string, err error) {
	if p.err == nil {
		p.err = &RecordError{Line: p.line, Field: col, Value: value, Err: err}
	}
}

func (p *rowParser) date(col string) time.Time {
	v := p.str(col)
	if v == "" {
		return time.Time{}
	}
	for _, layout := range dateLayouts {
		if t, err := time.ParseInLocation(layout, v, time.UTC); err == nil {
			return t
		}
	}
	p.fail(col, v, errors.New("unrecognized date"))
	return time.Time{}
}

func (p *rowParser) decimal(col string) decimal.Decimal {
	v := p.str(col)
	if v == "" {
		return decimal.Zero
	}
	d, err := decimal.NewFromString(v)
	if err != nil {
		p.fail(col, v, err)
		return decimal.Zero
	}
	return d
}

func (p *rowParser) integer(col string) int {
	v := p.str(col)
	if v == "" {
		return 0
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		p.fail(col, v, err)
		return 0
	}
	return n
}

func (p *rowParser) shipMode(col string) model.ShipMode {
	v := p.str(col)
	if v == "" {
		return ""
	}
	folded := foldName(v)
	for _, m := range model.ShipModes {
		if foldName(string(m)) == folded {
			return m
		}
	}
	p.fail(col, v, errors.New("unknown ship mode"))
	return ""
}

func parseRow(line int, index map[string]int, row []string) (*model.Transaction, error) {
	p := &rowParser{line: line, index: index, row: row}

	txn := &model.Transaction{
		OrderID:      p.str(ColOrderID),
		OrderDate:    p.date(ColOrderDate),
		ShipDate:     p.date(ColShipDate),
		ShipMode:     p.shipMode(ColShipMode),
		CustomerID:   p.str(ColCustomerID),
		CustomerName: p.str(ColCustomerName),
		Segment:      p.str(ColSegment),
		Country:      p.str(ColCountry),
		City:         p.str(ColCity),
		State:        p.str(ColState),
		PostalCode:   p.str(ColPostalCode),
		Region:       p.str(ColRegion),
		ProductID:    p.str(ColProductID),
		Category:     p.str(ColCategory),
		SubCategory:  p.str(ColSubCategory),
		ProductName:  p.str(ColProductName),
		Sales:        p.decimal(ColSales),
		Quantity:     p.integer(ColQuantity),
		Discount:     p.decimal(ColDiscount),
		Profit:       p.decimal(ColProfit),
	}
	if p.err == nil && txn.Sales.IsNegative() {
		p.fail(ColSales, txn.Sales.String(), errors.New("sales amount is negative"))
	}
	if p.err != nil {
		return nil, p.err
	}
	return txn, nil
}
