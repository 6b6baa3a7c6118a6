package export

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"text/template"
	"unicode/utf8"

	"github.com/de-tools/sales-atlas/pkg/models/domain"

	"github.com/shopspring/decimal"
)

const emptyReportMessage = "Nenhum dado de vendas disponível para exibição."

type TableConfig struct {
	ProductWidth int
	AmountWidth  int
}

func DefaultTableConfig() TableConfig {
	return TableConfig{
		ProductWidth: 12,
		AmountWidth:  12,
	}
}

// TextReporter renders a fixed-width table of products sorted by
// descending revenue, followed by the grand total and best-seller lines.
type TextReporter struct {
	writer io.Writer
	config TableConfig
}

func NewTextReporter(writer io.Writer) *TextReporter {
	if writer == nil {
		writer = os.Stdout
	}
	return &TextReporter{
		writer: writer,
		config: DefaultTableConfig(),
	}
}

func (r *TextReporter) Handle(summary *domain.SalesSummary) error {
	if len(summary.Products) == 0 {
		_, err := fmt.Fprintln(r.writer, emptyReportMessage)
		return err
	}

	config := r.fit(summary)

	funcMap := template.FuncMap{
		"formatRow": func(product string, revenue decimal.Decimal) string {
			return fmt.Sprintf("| %s | %*s |",
				padRight(product, config.ProductWidth),
				config.AmountWidth, revenue.StringFixed(2))
		},
		"header": func() string {
			return fmt.Sprintf("| %s | %*s |",
				padRight("Produto", config.ProductWidth),
				config.AmountWidth, "Total (R$)")
		},
		"separator": func() string {
			return fmt.Sprintf("+%s+%s+",
				strings.Repeat("-", config.ProductWidth+2),
				strings.Repeat("-", config.AmountWidth+2))
		},
		"money": func(d decimal.Decimal) string {
			return d.StringFixed(2)
		},
	}

	tmpl := `Total de vendas por produto:

{{separator}}
{{header}}
{{separator}}
{{range .Products}}{{formatRow .Product .Revenue}}
{{end}}{{separator}}

Valor total de todas as vendas: R$ {{money .Total}}
{{with .TopSeller}}Produto mais vendido: {{.Name}} ({{.Units}} unidades)
{{end}}`

	t, err := template.New("report").Funcs(funcMap).Parse(tmpl)
	if err != nil {
		return fmt.Errorf("failed to parse template: %w", err)
	}

	return t.Execute(r.writer, byRevenue(summary))
}

// fit widens the default columns to the longest product name and amount.
func (r *TextReporter) fit(summary *domain.SalesSummary) TableConfig {
	config := r.config
	for _, product := range summary.Products {
		if n := utf8.RuneCountInString(product.Product); n > config.ProductWidth {
			config.ProductWidth = n
		}
		if n := len(product.Revenue.StringFixed(2)); n > config.AmountWidth {
			config.AmountWidth = n
		}
	}
	return config
}

// byRevenue copies the summary with products in descending revenue order,
// keeping first-seen order between equal revenues.
func byRevenue(summary *domain.SalesSummary) *domain.SalesSummary {
	sorted := *summary
	sorted.Products = append([]domain.ProductTotal(nil), summary.Products...)
	sort.SliceStable(sorted.Products, func(i, j int) bool {
		return sorted.Products[i].Revenue.GreaterThan(sorted.Products[j].Revenue)
	})
	return &sorted
}

// padRight pads by rune count, not bytes; product names carry accents.
func padRight(s string, width int) string {
	if n := width - utf8.RuneCountInString(s); n > 0 {
		return s + strings.Repeat(" ", n)
	}
	return s
}
