package export

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/de-tools/sales-atlas/pkg/adapters"
	"github.com/de-tools/sales-atlas/pkg/models/domain"
)

// JSONReporter renders the summary as an indented JSON document with the
// vendas_por_produto / total_vendas / produto_mais_vendido schema.
type JSONReporter struct {
	writer io.Writer
}

func NewJSONReporter(writer io.Writer) *JSONReporter {
	if writer == nil {
		writer = os.Stdout
	}
	return &JSONReporter{writer: writer}
}

func (r *JSONReporter) Handle(summary *domain.SalesSummary) error {
	encoder := json.NewEncoder(r.writer)
	encoder.SetIndent("", "  ")
	encoder.SetEscapeHTML(false)

	if err := encoder.Encode(adapters.MapSalesSummaryDomainToApi(*summary)); err != nil {
		return fmt.Errorf("failed to encode report: %w", err)
	}
	return nil
}
