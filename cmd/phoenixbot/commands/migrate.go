package commands

import (
	"github.com/rookgm/phoenixbot/cmd/phoenixbot/output"
	"github.com/spf13/cobra"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply pending database migrations",
	RunE: func(cmd *cobra.Command, args []string) error {
		db, err := openDB(cmd.Context())
		if err != nil {
			output.Error("Migration failed: %v", err)
			return err
		}
		defer db.Close()

		output.Success("Database schema is up to date")
		return nil
	},
}
