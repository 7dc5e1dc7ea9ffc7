package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"backend-doctor/core/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var configPath string

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "backend-doctor",
	Short: "Diagnostics for a Medusa commerce backend",
	Long: `backend-doctor checks a Medusa backend before and after it is deployed.
It probes a running server, inspects the admin setup in the database and validates
that a deployment has everything the admin panel needs.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := RootCmd.ExecuteContext(ctx)
	stop()

	if err != nil {
		// Console format with ISO8601 timestamps, this is read by a human at a terminal
		cfg := &logger.Config{
			Level:  "debug",
			Format: "console",
		}

		l, logErr := logger.New(cfg)
		if logErr == nil {
			l.Error("command failed", zap.Error(err))
			_ = l.Sync()
		} else {
			fmt.Println(err)
		}
		os.Exit(1)
	}
}

func init() {
	RootCmd.PersistentFlags().StringVar(&configPath, "config", ".", "directory holding the .env file")
}
