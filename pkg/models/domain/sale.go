package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// SaleRecord is one validated sales line. SaleDate is nil when the source
// CSV has no date column or the row left the date cell empty.
type SaleRecord struct {
	Product   string
	Quantity  int64
	UnitPrice decimal.Decimal
	SaleDate  *time.Time
}

// Revenue returns Quantity × UnitPrice with exact decimal arithmetic.
// Rounding happens at render time only.
func (r SaleRecord) Revenue() decimal.Decimal {
	return decimal.NewFromInt(r.Quantity).Mul(r.UnitPrice)
}

// DateRange is an inclusive [Start, End] filter window.
type DateRange struct {
	Start time.Time
	End   time.Time
}

// Contains reports whether t falls inside the range, both ends inclusive.
func (dr DateRange) Contains(t time.Time) bool {
	return !t.Before(dr.Start) && !t.After(dr.End)
}
