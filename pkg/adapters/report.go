package adapters

import (
	"github.com/de-tools/sales-atlas/pkg/models/api"
	"github.com/de-tools/sales-atlas/pkg/models/domain"
)

// MapSalesSummaryDomainToApi projects a summary onto the JSON report
// shape. An absent best-seller becomes the empty TopProduct, and an empty
// summary keeps an empty (never null) product map.
func MapSalesSummaryDomainToApi(summary domain.SalesSummary) api.SalesReport {
	report := api.SalesReport{
		SalesByProduct: make(map[string]api.Amount, len(summary.Products)),
		TotalSales:     api.Amount(summary.Total),
	}

	for _, product := range summary.Products {
		report.SalesByProduct[product.Product] = api.Amount(product.Revenue)
	}

	if summary.TopSeller != nil {
		report.TopProduct = api.TopProduct{
			Name:  summary.TopSeller.Name,
			Units: summary.TopSeller.Units,
		}
	}

	return report
}
