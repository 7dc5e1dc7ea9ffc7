package cmd

import (
	"backend-doctor/core/database"
	"backend-doctor/feature/admin"

	"github.com/spf13/cobra"
)

// diagnoseCmd represents the diagnose command
var diagnoseCmd = &cobra.Command{
	Use:   "diagnose",
	Short: "Report on the admin panel setup",
	Long: `Logs the admin related environment, the users and their roles, and the store.
Problems are reported, the command only fails when it cannot start.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, logg, err := setup()
		if err != nil {
			return err
		}
		defer logg.Sync()

		db, services := backendServices(cfg, logg)
		defer database.Close(db)

		files, err := fileStorage(cfg.Storage)
		if err != nil {
			return err
		}

		admin.NewService(cfg.Medusa, services, files, logg).Run(cmd.Context())
		return nil
	},
}

func init() {
	RootCmd.AddCommand(diagnoseCmd)
}
