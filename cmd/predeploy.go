package cmd

import (
	"backend-doctor/core/database"
	"backend-doctor/feature/predeploy"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

var predeployDir string

// predeployCmd represents the predeploy command
var predeployCmd = &cobra.Command{
	Use:   "predeploy",
	Short: "Validate the backend before it is deployed",
	Long: `Checks that the admin panel is enabled, that an admin user exists (creating one
when MEDUSA_CREATE_ADMIN_USER=true and there are no users), that the store exists
and that the admin build outputs are present.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, logg, err := setup()
		if err != nil {
			return err
		}
		defer logg.Sync()

		dir, err := workDir(predeployDir)
		if err != nil {
			return err
		}

		db, services := backendServices(cfg, logg)
		defer database.Close(db)

		files, err := fileStorage(cfg.Storage)
		if err != nil {
			return err
		}

		svc := predeploy.NewService(cfg.Medusa, services, afero.NewOsFs(), dir, files, logg)
		_, err = svc.Run(cmd.Context())
		return err
	},
}

func init() {
	predeployCmd.Flags().StringVar(&predeployDir, "dir", "", "backend directory holding the build outputs (default: current directory)")
	RootCmd.AddCommand(predeployCmd)
}
