package terminal

import (
	"context"
	"io"
	"os"
	"os/user"
	"time"

	"github.com/de-tools/alert-atlas/pkg/runtime/terminal/commands"
	"github.com/de-tools/alert-atlas/pkg/runtime/terminal/export"
	"github.com/de-tools/alert-atlas/pkg/runtime/terminal/output"
	"github.com/de-tools/alert-atlas/pkg/services/notify"
	"github.com/spf13/cobra"
)

// CLI represents the command-line interface
type CLI struct {
	deps    commands.Dependencies
	rootCmd *cobra.Command
}

// Options contain configuration for the CLI
type Options struct {
	Input       io.Reader
	Output      io.Writer
	ErrOutput   io.Writer
	Colors      bool
	Now         func() time.Time
	CurrentUser func() (*user.User, error)
	Transports  notify.Registry
}

// NewCLI creates a new CLI instance
func NewCLI(opts Options) *CLI {
	if opts.Input == nil {
		opts.Input = os.Stdin
	}
	if opts.Output == nil {
		opts.Output = os.Stdout
	}
	if opts.ErrOutput == nil {
		opts.ErrOutput = os.Stderr
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.CurrentUser == nil {
		opts.CurrentUser = user.Current
	}
	if opts.Transports == nil {
		opts.Transports = notify.DefaultRegistry()
	}

	cli := &CLI{
		deps: commands.Dependencies{
			Input:       opts.Input,
			Printer:     output.NewPrinter(opts.Output, opts.ErrOutput, opts.Colors),
			Reporter:    export.NewReporter(opts.Output),
			Now:         opts.Now,
			CurrentUser: opts.CurrentUser,
			Transports:  opts.Transports,
		},
	}

	cli.rootCmd = cli.newRootCmd()
	cli.rootCmd.SetOut(opts.Output)
	cli.rootCmd.SetErr(opts.ErrOutput)
	cli.rootCmd.SetIn(opts.Input)
	return cli
}

func (cli *CLI) Execute() error {
	return cli.rootCmd.Execute()
}

func (cli *CLI) ExecuteContext(ctx context.Context) error {
	return cli.rootCmd.ExecuteContext(ctx)
}

// SetArgs overrides os.Args, used by tests
func (cli *CLI) SetArgs(args []string) {
	cli.rootCmd.SetArgs(args)
}

func (cli *CLI) newRootCmd() *cobra.Command {
	report := commands.NewReportRunner(cli.deps)

	cmd := &cobra.Command{
		Use:           "alert-atlas",
		Short:         "Alert report URL generator",
		Long:          "Builds alert reporter URLs for every category over a rolling window of days and offers to mail them.",
		RunE:          report.Run,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	report.BindFlags(cmd)

	cmd.PersistentFlags().StringP("config", "c", "", "Path to a config file (yaml, toml or json)")

	cmd.AddCommand(commands.NewReportCmd(cli.deps))
	cmd.AddCommand(commands.NewCategoriesCmd())

	return cmd
}
