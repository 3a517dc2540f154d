package commands

import (
	"github.com/rookgm/phoenixbot/cmd/phoenixbot/output"
	"github.com/rookgm/phoenixbot/internal/repository"
	"github.com/rookgm/phoenixbot/internal/service"
	"github.com/rookgm/phoenixbot/internal/settings"
	"github.com/spf13/cobra"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Create the settings file and fill an empty catalog with sample offerings",
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := settings.Load(cfg.SettingsFile)
		if err != nil {
			output.Warning("Settings file %s is unusable: %v", cfg.SettingsFile, err)
		} else {
			output.Success("Settings file %s is ready", store.Path())
		}

		db, err := openDB(cmd.Context())
		if err != nil {
			output.Error("Database is unavailable: %v", err)
			return err
		}
		defer db.Close()

		catalog := service.NewCatalogService(repository.NewOfferingRepository(db))
		n, err := catalog.SeedCatalog(cmd.Context())
		if err != nil {
			output.Error("Seeding stopped after %d offerings: %v", n, err)
			return err
		}

		if n == 0 {
			output.Info("Catalog already has offerings, nothing to seed")
			return nil
		}
		output.Success("Added %d sample offerings", n)
		return nil
	},
}
