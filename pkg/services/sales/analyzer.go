package sales

import (
	"context"
	"fmt"

	"github.com/de-tools/sales-atlas/pkg/models/domain"
	csvstore "github.com/de-tools/sales-atlas/pkg/store/csv"

	"github.com/rs/zerolog"
)

// Params configure one analysis run.
type Params struct {
	Path           string
	Range          *domain.DateRange // nil = no date filter
	SkipValidation bool
}

// Analyze runs the whole pipeline over the file at params.Path: read,
// validate, optionally filter by date, aggregate. Per-row validation
// failures are logged at warn level and never abort the run; everything
// else is fatal.
func Analyze(ctx context.Context, params Params) (*domain.SalesSummary, error) {
	logger := zerolog.Ctx(ctx)

	records, schema, err := csvstore.Read(ctx, params.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to load %s: %w", params.Path, err)
	}
	logger.Info().
		Int("rows", len(records)).
		Str("date_column", schema.DateColumn).
		Msg("sales file read")

	var valid []domain.SaleRecord
	var rowErrs []domain.RowError
	if params.SkipValidation {
		valid, rowErrs = Convert(records, schema)
	} else {
		valid, rowErrs = Validate(records, schema)
	}
	for _, rowErr := range rowErrs {
		logger.Warn().Int("line", rowErr.Line).Msg(rowErr.Reason)
	}
	if len(valid) == 0 && len(records) > 0 {
		logger.Error().Int("rejected", len(rowErrs)).Msg("no valid records after validation")
	}

	if params.Range != nil {
		filtered, err := FilterByDate(valid, *params.Range)
		if err != nil {
			return nil, err
		}
		if len(filtered) == 0 && len(valid) > 0 {
			logger.Info().Msg("no records left after date filter")
		}
		valid = filtered
	}

	summary := Aggregate(valid)
	logger.Info().
		Int("products", len(summary.Products)).
		Str("total", summary.Total.StringFixed(2)).
		Msg("aggregation complete")

	return &summary, nil
}
