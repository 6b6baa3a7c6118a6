package domain

import "fmt"

// RowError records why one data row was rejected during validation.
// Line is 1-based within the data section, matching RawRecord numbering.
// Reasons are user-facing and quote the file's Portuguese column names.
type RowError struct {
	Line   int
	Reason string
}

func (e RowError) Error() string {
	return fmt.Sprintf("Linha %d: %s", e.Line, e.Reason)
}
