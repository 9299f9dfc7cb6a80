package main

import (
	"context"
	"fmt"
	"os"

	"github.com/de-tools/alert-atlas/pkg/runtime/terminal"
	"github.com/de-tools/alert-atlas/pkg/runtime/terminal/output"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
)

func main() {
	logger := zerolog.New(os.Stderr).With().Timestamp().Logger().Level(zerolog.InfoLevel)
	if os.Getenv("ALERT_ATLAS_DEBUG") != "" {
		logger = logger.Level(zerolog.DebugLevel)
	}

	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		logger.Warn().Err(err).Msg("failed to load .env file")
	}

	ctx := logger.WithContext(context.Background())

	cli := terminal.NewCLI(terminal.Options{
		Output: os.Stdout,
		Colors: output.ResolveColors(true),
	})

	if err := cli.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
