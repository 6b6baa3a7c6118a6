package sales

import (
	"fmt"

	"github.com/de-tools/sales-atlas/pkg/models/domain"
)

// InvalidRangeError means the filter bounds are inverted.
type InvalidRangeError struct {
	Range domain.DateRange
}

func (e *InvalidRangeError) Error() string {
	return fmt.Sprintf("invalid date range: start %s is after end %s",
		e.Range.Start.Format(dateLayout), e.Range.End.Format(dateLayout))
}

// FilterByDate keeps the records whose SaleDate falls inside the inclusive
// range. Dateless records are excluded: a date filter over a dateless file
// yields an empty result by contract, not an error.
func FilterByDate(records []domain.SaleRecord, dr domain.DateRange) ([]domain.SaleRecord, error) {
	if dr.Start.After(dr.End) {
		return nil, &InvalidRangeError{Range: dr}
	}

	var filtered []domain.SaleRecord
	for _, record := range records {
		if record.SaleDate == nil {
			continue
		}
		if dr.Contains(*record.SaleDate) {
			filtered = append(filtered, record)
		}
	}
	return filtered, nil
}
