package domain

import "github.com/shopspring/decimal"

// ProductTotal accumulates one product's figures across all its records.
type ProductTotal struct {
	Product string
	Revenue decimal.Decimal
	Units   int64
}

// TopProduct is the best-seller by accumulated units, not revenue.
type TopProduct struct {
	Name  string
	Units int64
}

// SalesSummary represents a complete aggregation result. Products keeps
// first-seen order; TopSeller is nil when the input had no records.
type SalesSummary struct {
	Products  []ProductTotal
	Total     decimal.Decimal
	TopSeller *TopProduct
}
