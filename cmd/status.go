package cmd

import (
	"backend-doctor/feature/status"

	"github.com/spf13/cobra"
)

// statusCmd represents the status command
var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Check that the backend server is up",
	Long: `Requests /health and then /app on the local backend (PORT, 9000 when unset).
Exits non-zero when the server cannot be reached or does not answer in time.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, logg, err := setup()
		if err != nil {
			return err
		}
		defer logg.Sync()

		checker := status.NewChecker(status.BaseURL(cfg.Status.Host, cfg.Medusa.ServerPort()), cfg.Status.Timeout(), logg)
		_, err = checker.Run(cmd.Context())
		return err
	},
}

func init() {
	RootCmd.AddCommand(statusCmd)
}
