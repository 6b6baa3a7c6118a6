package commands

import (
	"fmt"
	"io"

	"github.com/de-tools/sales-atlas/pkg/runtime/terminal/export"
	"github.com/de-tools/sales-atlas/pkg/services/config"
	"github.com/de-tools/sales-atlas/pkg/services/sales"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

type AnalyzeCmd struct {
	configPath     string
	format         string
	startDate      string
	endDate        string
	skipValidation bool
	registry       export.Registry
}

func NewAnalyzeCmd(registry export.Registry) *cobra.Command {
	ac := &AnalyzeCmd{registry: registry}
	cmd := &cobra.Command{
		Use:   "analyze <file.csv>",
		Short: "Aggregate a sales CSV into a per-product report",
		Args:  cobra.ExactArgs(1),
		RunE:  ac.run,
	}

	// Define flags
	cmd.Flags().StringVar(&ac.format, "format", "", "Output format (text or json)")
	cmd.Flags().StringVar(&ac.startDate, "start-date", "", "Inclusive range start (YYYY-MM-DD), requires --end-date")
	cmd.Flags().StringVar(&ac.endDate, "end-date", "", "Inclusive range end (YYYY-MM-DD), requires --start-date")
	cmd.Flags().BoolVar(&ac.skipValidation, "skip-validation", false, "Skip field constraint checks")
	cmd.Flags().StringVar(&ac.configPath, "config", "", "Path to a YAML config file")

	return cmd
}

func (ac *AnalyzeCmd) run(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(ac.configPath)
	if err != nil {
		return err
	}

	opts := analyzeOptions{
		File:           args[0],
		Format:         ac.format,
		StartDate:      ac.startDate,
		EndDate:        ac.endDate,
		SkipValidation: ac.skipValidation,
	}
	if err := newOptionsValidator().Struct(opts); err != nil {
		return fmt.Errorf("invalid options: %w", err)
	}
	dr, err := opts.dateRange()
	if err != nil {
		return err
	}

	logger, err := newLogger(cfg.Log, cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	ctx := logger.WithContext(cmd.Context())

	summary, err := sales.Analyze(ctx, sales.Params{
		Path:           opts.File,
		Range:          dr,
		SkipValidation: opts.SkipValidation,
	})
	if err != nil {
		return err
	}

	format := opts.Format
	if format == "" {
		format = cfg.Report.Format
	}
	reporter, err := ac.registry.Create(format, cmd.OutOrStdout())
	if err != nil {
		return err
	}

	return reporter.Handle(summary)
}

func newLogger(cfg config.LogConfig, errOut io.Writer) (zerolog.Logger, error) {
	level, err := zerolog.ParseLevel(cfg.Level)
	if err != nil {
		return zerolog.Logger{}, fmt.Errorf("invalid log level %q: %w", cfg.Level, err)
	}

	out := errOut
	if cfg.Format == "console" {
		out = zerolog.ConsoleWriter{Out: errOut}
	}
	return zerolog.New(out).Level(level).With().Timestamp().Logger(), nil
}
