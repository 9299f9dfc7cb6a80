package commands

import (
	"fmt"

	"github.com/de-tools/alert-atlas/pkg/services/notify"
	"github.com/de-tools/alert-atlas/pkg/services/report"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

type ReportCmd struct {
	days   int
	dryRun bool
	deps   Dependencies
}

func NewReportRunner(deps Dependencies) *ReportCmd {
	return &ReportCmd{deps: deps}
}

func NewReportCmd(deps Dependencies) *cobra.Command {
	rc := NewReportRunner(deps)
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Print alert report URLs and optionally mail them",
		RunE:  rc.Run,
	}
	rc.BindFlags(cmd)
	return cmd
}

// BindFlags registers the report flags, so the root command can run a report as well
func (rc *ReportCmd) BindFlags(cmd *cobra.Command) {
	cmd.Flags().IntVar(&rc.days, "days", 0, "Number of days to report, most recent first (default from config)")
	cmd.Flags().BoolVar(&rc.dryRun, "dry-run", false, "Print the mail instead of handing it to sendmail")
}

func (rc *ReportCmd) Run(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	logger := zerolog.Ctx(ctx)

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("days") {
		if rc.days < 0 {
			return fmt.Errorf("--days must not be negative, got %d", rc.days)
		}
		cfg.Days = rc.days
	}

	generated, err := report.NewGenerator(cfg.Template(), cfg.Categories).Generate(ctx, rc.deps.Now(), cfg.Days)
	if err != nil {
		return fmt.Errorf("failed to generate report: %w", err)
	}

	text, err := rc.deps.Reporter.Render(generated)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), text)

	sender, err := cfg.Mail.ResolveSender(rc.deps.CurrentUser)
	if err != nil {
		return err
	}
	logger.Debug().Str("sender", sender).Strs("recipients", cfg.Mail.Recipients).Msg("mail settings resolved")

	transportName := cfg.Mail.Transport
	if rc.dryRun {
		transportName = notify.TransportDryRun
	}
	transport, err := rc.deps.Transports.Create(transportName, notify.TransportSettings{
		SendmailPath: cfg.Mail.SendmailPath,
		Output:       cmd.OutOrStdout(),
	})
	if err != nil {
		return err
	}

	notifier := notify.NewNotifier(notify.Options{
		Settings: notify.Settings{
			Recipients:    cfg.Mail.Recipients,
			Sender:        sender,
			SubjectPrefix: cfg.Mail.SubjectPrefix,
		},
		Confirmer: notify.NewPrompt(rc.deps.Input, cmd.OutOrStdout()),
		Transport: transport,
		Console:   rc.deps.Printer,
		Now:       rc.deps.Now,
	})
	notifier.Deliver(ctx, text)

	return nil
}
