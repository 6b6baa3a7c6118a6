package commands

import (
	"fmt"
	"strings"

	"github.com/de-tools/sales-atlas/pkg/models/store"
	csvstore "github.com/de-tools/sales-atlas/pkg/store/csv"

	"github.com/spf13/cobra"
)

type ColumnsCmd struct{}

func NewColumnsCmd() *cobra.Command {
	cc := &ColumnsCmd{}
	cmd := &cobra.Command{
		Use:   "columns <file.csv>",
		Short: "List the detected header columns of a sales CSV",
		Args:  cobra.ExactArgs(1),
		RunE:  cc.run,
	}

	return cmd
}

func (cc *ColumnsCmd) run(cmd *cobra.Command, args []string) error {
	_, schema, err := csvstore.Read(cmd.Context(), args[0])
	if err != nil {
		return fmt.Errorf("failed to inspect %s: %w", args[0], err)
	}

	required := make(map[string]bool, len(store.RequiredColumns))
	for _, col := range store.RequiredColumns {
		required[col] = true
	}

	lines := make([]string, 0, len(schema.Columns))
	for _, col := range schema.Columns {
		var tags []string
		if required[col] {
			tags = append(tags, "required")
		}
		if col == schema.DateColumn {
			tags = append(tags, "date")
		}
		if len(tags) > 0 {
			col = fmt.Sprintf("%s (%s)", col, strings.Join(tags, ", "))
		}
		lines = append(lines, col)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Columns in %s:\n%s\n", args[0], strings.Join(lines, "\n"))
	return nil
}
