package commands

import (
	"fmt"
	"time"

	"github.com/de-tools/sales-atlas/pkg/models/domain"

	validatorv10 "github.com/go-playground/validator/v10"
)

const dateLayout = "2006-01-02"

// analyzeOptions are the analyze flags after cobra parsing, checked as a
// whole before the pipeline runs.
type analyzeOptions struct {
	File           string `validate:"required"`
	Format         string `validate:"omitempty,oneof=text json"`
	StartDate      string `validate:"omitempty,datetime=2006-01-02"`
	EndDate        string `validate:"omitempty,datetime=2006-01-02"`
	SkipValidation bool
}

// newOptionsValidator returns a validator with the date-range rules
// registered at struct level: both bounds or neither, start not after end.
func newOptionsValidator() *validatorv10.Validate {
	v := validatorv10.New()
	v.RegisterStructValidation(analyzeStructValidation, analyzeOptions{})
	return v
}

func analyzeStructValidation(sl validatorv10.StructLevel) {
	opts := sl.Current().Interface().(analyzeOptions)

	if (opts.StartDate == "") != (opts.EndDate == "") {
		sl.ReportError(opts.StartDate, "start-date", "StartDate", "required_together", "")
		return
	}
	if opts.StartDate == "" {
		return
	}

	start, errStart := time.Parse(dateLayout, opts.StartDate)
	end, errEnd := time.Parse(dateLayout, opts.EndDate)
	if errStart != nil || errEnd != nil {
		// format errors already reported by the datetime tag
		return
	}
	if start.After(end) {
		sl.ReportError(opts.StartDate, "start-date", "StartDate", "before_end", "")
	}
}

// dateRange converts the validated string bounds into a filter range;
// nil when no range was requested.
func (opts analyzeOptions) dateRange() (*domain.DateRange, error) {
	if opts.StartDate == "" {
		return nil, nil
	}

	start, err := time.Parse(dateLayout, opts.StartDate)
	if err != nil {
		return nil, fmt.Errorf("invalid start date %q: %w", opts.StartDate, err)
	}
	end, err := time.Parse(dateLayout, opts.EndDate)
	if err != nil {
		return nil, fmt.Errorf("invalid end date %q: %w", opts.EndDate, err)
	}
	return &domain.DateRange{Start: start, End: end}, nil
}
