// Package sales implements the record pipeline: validation, date
// filtering, and per-product aggregation.
package sales

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/de-tools/sales-atlas/pkg/models/domain"
	"github.com/de-tools/sales-atlas/pkg/models/store"

	"github.com/shopspring/decimal"
)

const dateLayout = "2006-01-02"

// Validate checks every raw record against the field constraints and
// returns the valid records plus one error per rejected row (first failing
// reason wins). Every input row lands in exactly one of the two outputs.
func Validate(records []store.RawRecord, schema store.Schema) ([]domain.SaleRecord, []domain.RowError) {
	return run(records, schema, true)
}

// Convert is the --skip-validation path: constraint checks are skipped,
// but quantity and price must still parse numerically so the aggregator
// never sees an unusable row. A malformed date yields a dateless record
// instead of an error.
func Convert(records []store.RawRecord, schema store.Schema) ([]domain.SaleRecord, []domain.RowError) {
	return run(records, schema, false)
}

func run(records []store.RawRecord, schema store.Schema, strict bool) ([]domain.SaleRecord, []domain.RowError) {
	var valid []domain.SaleRecord
	var errs []domain.RowError

	for _, raw := range records {
		record, reason := buildRecord(raw, schema, strict)
		if reason != "" {
			errs = append(errs, domain.RowError{Line: raw.Line, Reason: reason})
			continue
		}
		valid = append(valid, record)
	}

	return valid, errs
}

func buildRecord(raw store.RawRecord, schema store.Schema, strict bool) (domain.SaleRecord, string) {
	if strict {
		for _, col := range store.RequiredColumns {
			if strings.TrimSpace(raw.Fields[col]) == "" {
				return domain.SaleRecord{}, fmt.Sprintf("Coluna %q está faltando ou vazia", col)
			}
		}
	}

	quantity, err := strconv.ParseInt(strings.TrimSpace(raw.Fields[store.ColumnQuantity]), 10, 64)
	if err != nil {
		return domain.SaleRecord{}, "Quantidade deve ser um número inteiro"
	}
	if strict && quantity <= 0 {
		return domain.SaleRecord{}, "Quantidade deve ser maior que zero"
	}

	price, err := parsePrice(raw.Fields[store.ColumnUnitPrice])
	if err != nil {
		return domain.SaleRecord{}, "Preço deve ser um número válido"
	}
	if strict && price.Sign() <= 0 {
		return domain.SaleRecord{}, "Preço deve ser maior que zero"
	}

	record := domain.SaleRecord{
		Product:   strings.TrimSpace(raw.Fields[store.ColumnProduct]),
		Quantity:  quantity,
		UnitPrice: price,
	}

	if schema.HasDateColumn() {
		value := strings.TrimSpace(raw.Fields[schema.DateColumn])
		if value != "" {
			date, err := time.Parse(dateLayout, value)
			if err != nil {
				if strict {
					return domain.SaleRecord{}, fmt.Sprintf("Data %q em formato inválido. Esperado YYYY-MM-DD", value)
				}
			} else {
				record.SaleDate = &date
			}
		}
	}

	return record, ""
}

// parsePrice accepts both "." and "," as the decimal separator. When both
// appear the comma must be the thousands separator ("1,234.56"); a comma
// after the dot is rejected.
func parsePrice(value string) (decimal.Decimal, error) {
	value = strings.TrimSpace(value)

	hasDot := strings.Contains(value, ".")
	hasComma := strings.Contains(value, ",")
	switch {
	case hasDot && hasComma:
		if strings.LastIndex(value, ",") > strings.LastIndex(value, ".") {
			return decimal.Decimal{}, fmt.Errorf("ambiguous decimal separator in %q", value)
		}
		value = strings.ReplaceAll(value, ",", "")
	case hasComma:
		value = strings.Replace(value, ",", ".", 1)
	}

	return decimal.NewFromString(value)
}
