package store

// Column names every sales file must declare in its header.
const (
	ColumnProduct   = "produto"
	ColumnQuantity  = "quantidade"
	ColumnUnitPrice = "preco_unitario"
)

// RequiredColumns lists the mandatory header columns in validation order.
var RequiredColumns = []string{ColumnProduct, ColumnQuantity, ColumnUnitPrice}

// RawRecord is one data row of a sales file before validation, keyed by
// header column name. Line is 1-based within the data section: the first
// row after the header is line 1.
type RawRecord struct {
	Line   int
	Fields map[string]string
}

// Schema describes the header of a sales file.
type Schema struct {
	Columns    []string // header order, extra columns included
	DateColumn string   // empty when no date column was detected
}

func (s Schema) HasDateColumn() bool {
	return s.DateColumn != ""
}
