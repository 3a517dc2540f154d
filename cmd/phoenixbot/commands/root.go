package commands

import (
	"fmt"
	"os"

	"github.com/rookgm/phoenixbot/config"
	"github.com/rookgm/phoenixbot/internal/logger"
	"github.com/spf13/cobra"
)

var cfg = config.New()

var rootCmd = &cobra.Command{
	Use:   "phoenixbot",
	Short: "Telegram storefront bot for PC services",
	Long: `phoenixbot serves a catalog of PC services over Telegram,
forwards orders to a channel and lets the operator manage the catalog.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := cfg.LoadEnv(); err != nil {
			return err
		}
		return logger.Initialize(cfg.LogLevel)
	},
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	cfg.BindFlags(rootCmd.PersistentFlags())

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(migrateCmd)
	rootCmd.AddCommand(seedCmd)
	rootCmd.AddCommand(checkCmd)
}
