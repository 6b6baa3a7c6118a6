package api

import "github.com/shopspring/decimal"

// Amount renders a monetary value as a JSON number with exactly two
// decimal digits.
type Amount decimal.Decimal

func (a Amount) MarshalJSON() ([]byte, error) {
	return []byte(decimal.Decimal(a).StringFixed(2)), nil
}

type TopProduct struct {
	Name  string `json:"nome"`
	Units int64  `json:"quantidade"`
}

// SalesReport is the JSON projection of a sales summary. An absent
// best-seller serializes as {"nome": "", "quantidade": 0}.
type SalesReport struct {
	SalesByProduct map[string]Amount `json:"vendas_por_produto"`
	TotalSales     Amount            `json:"total_vendas"`
	TopProduct     TopProduct        `json:"produto_mais_vendido"`
}
