package terminal

import (
	"io"
	"os"

	"github.com/de-tools/sales-atlas/pkg/runtime/terminal/commands"
	"github.com/de-tools/sales-atlas/pkg/runtime/terminal/export"

	"github.com/spf13/cobra"
)

// CLI represents the command-line interface
type CLI struct {
	registry export.Registry
	rootCmd  *cobra.Command
}

// Options contain configuration for the CLI
type Options struct {
	Registry  export.Registry
	Output    io.Writer // report destination, defaults to stdout
	ErrOutput io.Writer // log destination, defaults to stderr
}

// NewCLI creates a new CLI instance
func NewCLI(opts Options) *CLI {
	if opts.Registry == nil {
		opts.Registry = export.NewDefaultRegistry()
	}
	if opts.Output == nil {
		opts.Output = os.Stdout
	}
	if opts.ErrOutput == nil {
		opts.ErrOutput = os.Stderr
	}

	cli := &CLI{registry: opts.Registry}
	cli.rootCmd = cli.newRootCmd(opts)
	return cli
}

func (cli *CLI) Execute() error {
	return cli.rootCmd.Execute()
}

func (cli *CLI) newRootCmd(opts Options) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "sales-atlas",
		Short:         "Sales report tool",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.SetOut(opts.Output)
	cmd.SetErr(opts.ErrOutput)

	cmd.AddCommand(commands.NewAnalyzeCmd(cli.registry))
	cmd.AddCommand(commands.NewColumnsCmd())

	return cmd
}
