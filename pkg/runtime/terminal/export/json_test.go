package export

import (
	"bytes"
	"testing"

	"github.com/de-tools/sales-atlas/pkg/models/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJSONReporter_Handle(t *testing.T) {
	var buf bytes.Buffer
	reporter := NewJSONReporter(&buf)

	require.NoError(t, reporter.Handle(sampleSummary()))

	expected := `{
  "vendas_por_produto": {
    "Calça": 199.80,
    "Camiseta": 149.70,
    "Tênis": 199.90
  },
  "total_vendas": 549.40,
  "produto_mais_vendido": {
    "nome": "Camiseta",
    "quantidade": 3
  }
}
`
	assert.Equal(t, expected, buf.String())
}

func TestJSONReporter_TwoDecimalAmounts(t *testing.T) {
	var buf bytes.Buffer
	reporter := NewJSONReporter(&buf)
	summary := sampleSummary()

	require.NoError(t, reporter.Handle(summary))

	// rounding happens at render time only
	assert.Contains(t, buf.String(), "549.40")
	assert.NotContains(t, buf.String(), "549.4,")
}

func TestJSONReporter_EmptySummary(t *testing.T) {
	var buf bytes.Buffer
	reporter := NewJSONReporter(&buf)

	require.NoError(t, reporter.Handle(&domain.SalesSummary{}))

	assert.JSONEq(t, `{
		"vendas_por_produto": {},
		"total_vendas": 0.00,
		"produto_mais_vendido": {"nome": "", "quantidade": 0}
	}`, buf.String())
}
