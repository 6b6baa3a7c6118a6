package sales

import (
	"github.com/de-tools/sales-atlas/pkg/models/domain"
)

// Aggregate folds the records into per-product totals. Products keep
// first-seen order, the grand total is the running sum of revenues, and
// the best-seller is the product with the most accumulated units (ties go
// to the earlier first-seen product). Empty input gives an empty summary
// with a nil TopSeller.
func Aggregate(records []domain.SaleRecord) domain.SalesSummary {
	summary := domain.SalesSummary{}
	index := make(map[string]int)

	for _, record := range records {
		i, seen := index[record.Product]
		if !seen {
			i = len(summary.Products)
			index[record.Product] = i
			summary.Products = append(summary.Products, domain.ProductTotal{Product: record.Product})
		}

		revenue := record.Revenue()
		summary.Products[i].Revenue = summary.Products[i].Revenue.Add(revenue)
		summary.Products[i].Units += record.Quantity
		summary.Total = summary.Total.Add(revenue)
	}

	for _, product := range summary.Products {
		if summary.TopSeller == nil || product.Units > summary.TopSeller.Units {
			summary.TopSeller = &domain.TopProduct{Name: product.Product, Units: product.Units}
		}
	}

	return summary
}
