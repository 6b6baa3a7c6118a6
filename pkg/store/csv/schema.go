package csv

import (
	"strings"

	"github.com/de-tools/sales-atlas/pkg/models/store"
)

// dateColumnCandidates are checked in preference order before falling back
// to a substring match on "data"/"date".
var dateColumnCandidates = []string{
	"data_venda",
	"data",
	"date",
	"data_pedido",
	"data_compra",
	"timestamp",
	"created_at",
}

func detectSchema(header []string) (store.Schema, error) {
	present := make(map[string]bool, len(header))
	for _, col := range header {
		present[col] = true
	}

	var missing []string
	for _, col := range store.RequiredColumns {
		if !present[col] {
			missing = append(missing, col)
		}
	}
	if len(missing) > 0 {
		return store.Schema{}, &MissingColumnsError{Columns: missing}
	}

	return store.Schema{
		Columns:    header,
		DateColumn: detectDateColumn(header, present),
	}, nil
}

func detectDateColumn(header []string, present map[string]bool) string {
	for _, candidate := range dateColumnCandidates {
		if present[candidate] {
			return candidate
		}
	}
	for _, col := range header {
		lower := strings.ToLower(col)
		if strings.Contains(lower, "data") || strings.Contains(lower, "date") {
			return col
		}
	}
	return ""
}
