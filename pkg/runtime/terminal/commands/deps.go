package commands

import (
	"fmt"
	"io"
	"os/user"
	"time"

	"github.com/de-tools/alert-atlas/pkg/runtime/terminal/export"
	"github.com/de-tools/alert-atlas/pkg/runtime/terminal/output"
	"github.com/de-tools/alert-atlas/pkg/services/config"
	"github.com/de-tools/alert-atlas/pkg/services/notify"
	"github.com/spf13/cobra"
)

// Dependencies are shared by all commands
type Dependencies struct {
	Input       io.Reader
	Printer     *output.Printer
	Reporter    *export.Reporter
	Now         func() time.Time
	CurrentUser func() (*user.User, error)
	Transports  notify.Registry
}

func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	path, err := cmd.Flags().GetString("config")
	if err != nil {
		return nil, err
	}

	cfg, err := config.LoadConfig(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return cfg, nil
}
