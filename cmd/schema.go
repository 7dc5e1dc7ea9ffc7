package cmd

import (
	"encoding/json"
	"fmt"
	"strings"

	"backend-doctor/core/database"
	"backend-doctor/feature/schema"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// schemaCmd represents the schema command
var schemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Compare the user and store tables with the expected columns",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		jsonOutput, _ := cmd.Flags().GetBool("json")

		cfg, logg, err := setup()
		if err != nil {
			return err
		}
		defer logg.Sync()

		db, _, err := connect(cfg, logg)
		if err != nil {
			return err
		}
		defer database.Close(db)

		report, err := schema.NewService(db, logg).Check(cmd.Context())
		if err != nil {
			return fmt.Errorf("schema check failed: %w", err)
		}

		if jsonOutput {
			data, err := json.MarshalIndent(report, "", "  ")
			if err != nil {
				return fmt.Errorf("failed to marshal JSON: %w", err)
			}
			fmt.Println(string(data))
		}

		logg.Info("Schema check completed",
			zap.Bool("matched", report.Matched),
			zap.Int("tables", len(report.Tables)),
		)

		if len(report.Errors) > 0 {
			return fmt.Errorf("schema could not be inspected: %s", strings.Join(report.Errors, "; "))
		}
		return nil
	},
}

func init() {
	schemaCmd.Flags().Bool("json", false, "print the report as JSON")
	RootCmd.AddCommand(schemaCmd)
}
