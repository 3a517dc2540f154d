package commands

import (
	"errors"
	"os"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/rookgm/phoenixbot/cmd/phoenixbot/output"
	"github.com/rookgm/phoenixbot/internal/repository/postgres"
	"github.com/rookgm/phoenixbot/internal/settings"
	"github.com/spf13/cobra"
)

var errCheckFailed = errors.New("readiness check failed")

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Check that the bot is ready to run",
	RunE: func(cmd *cobra.Command, args []string) error {
		output.Section("Phoenix bot readiness check")

		ok := true

		output.Section("Configuration")
		if cfg.BotToken == "" {
			output.Error("Bot token is not set")
			ok = false
		} else if api, err := tgbotapi.NewBotAPI(cfg.BotToken); err != nil {
			output.Error("Bot token is rejected: %v", err)
			ok = false
		} else {
			output.Success("Bot token authorized as @%s", api.Self.UserName)
		}
		if cfg.AdminID == 0 {
			output.Warning("Operator id is not set, admin features will be unavailable")
		} else {
			output.Success("Operator id %d", cfg.AdminID)
		}

		output.Section("Database")
		if cfg.DatabaseURI == "" {
			output.Error("Database URI is not set")
			ok = false
		} else if db, err := postgres.New(cmd.Context(), cfg.DatabaseURI); err != nil {
			output.Error("Database is unreachable: %v", err)
			ok = false
		} else {
			output.Success("Database is reachable")
			db.Close()
		}

		output.Section("Settings")
		if _, err := os.Stat(cfg.SettingsFile); errors.Is(err, os.ErrNotExist) {
			output.Warning("Settings file %s does not exist, run seed to create it", cfg.SettingsFile)
		} else if store, err := settings.Load(cfg.SettingsFile); err != nil {
			output.Error("Settings file is unusable: %v", err)
			ok = false
		} else {
			v := store.Values()
			output.Success("Settings file %s", store.Path())
			if v.ChannelID == "" {
				output.Warning("Order channel is not configured")
			} else {
				output.Info("Order channel %s, manager @%s", v.ChannelID, v.ManagerUsername)
			}
		}

		if !ok {
			return errCheckFailed
		}
		output.Success("Ready to run")
		return nil
	},
}
