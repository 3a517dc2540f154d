package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
)

const (
	defaultRunAddress   = ":8080"
	defaultDatabaseURI  = ""
	defaultSettingsFile = "settings.json"
	defaultLogLevel     = "info"
	defaultWorkers      = 4
	defaultEnvFile      = ".env"
)

type Config struct {
	BotToken     string
	AdminID      int64
	DatabaseURI  string
	SettingsFile string
	RunAddress   string
	LogLevel     string
	Workers      int
	EnvFile      string
}

// New returns Config filled with defaults
func New() *Config {
	return &Config{
		DatabaseURI:  defaultDatabaseURI,
		SettingsFile: defaultSettingsFile,
		RunAddress:   defaultRunAddress,
		LogLevel:     defaultLogLevel,
		Workers:      defaultWorkers,
		EnvFile:      defaultEnvFile,
	}
}

// BindFlags registers command line flags backed by cfg
func (cfg *Config) BindFlags(fs *pflag.FlagSet) {
	fs.StringVarP(&cfg.BotToken, "token", "t", cfg.BotToken, "telegram bot token")
	fs.Int64VarP(&cfg.AdminID, "admin", "u", cfg.AdminID, "operator telegram user id, 0 disables admin features")
	fs.StringVarP(&cfg.DatabaseURI, "database", "d", cfg.DatabaseURI, "postgres database URI")
	fs.StringVarP(&cfg.SettingsFile, "settings", "s", cfg.SettingsFile, "settings file path")
	fs.StringVarP(&cfg.RunAddress, "address", "a", cfg.RunAddress, "ops http server address")
	fs.StringVarP(&cfg.LogLevel, "log-level", "l", cfg.LogLevel, "log level")
	fs.IntVarP(&cfg.Workers, "workers", "w", cfg.Workers, "number of update workers")
	fs.StringVar(&cfg.EnvFile, "env-file", cfg.EnvFile, "dotenv file loaded before reading the environment")
}

// LoadEnv loads the dotenv file if present, then lets environment variables
// override flag values
func (cfg *Config) LoadEnv() error {
	if cfg.EnvFile != "" {
		if err := godotenv.Load(cfg.EnvFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("load %s: %w", cfg.EnvFile, err)
		}
	}

	// if environment variable is set, then using it
	if botTokenEnv := os.Getenv("BOT_TOKEN"); botTokenEnv != "" {
		cfg.BotToken = botTokenEnv
	}
	if adminIDEnv := os.Getenv("ADMIN_ID"); adminIDEnv != "" {
		id, err := strconv.ParseInt(adminIDEnv, 10, 64)
		if err != nil {
			return fmt.Errorf("parse ADMIN_ID: %w", err)
		}
		cfg.AdminID = id
	}
	if dataBaseURIEnv := os.Getenv("DATABASE_URI"); dataBaseURIEnv != "" {
		cfg.DatabaseURI = dataBaseURIEnv
	}
	if settingsFileEnv := os.Getenv("SETTINGS_FILE"); settingsFileEnv != "" {
		cfg.SettingsFile = settingsFileEnv
	}
	if runAddrEnv := os.Getenv("RUN_ADDRESS"); runAddrEnv != "" {
		cfg.RunAddress = runAddrEnv
	}
	if logLevelEnv := os.Getenv("LOG_LEVEL"); logLevelEnv != "" {
		cfg.LogLevel = logLevelEnv
	}
	if workersEnv := os.Getenv("WORKERS"); workersEnv != "" {
		n, err := strconv.Atoi(workersEnv)
		if err != nil {
			return fmt.Errorf("parse WORKERS: %w", err)
		}
		cfg.Workers = n
	}

	return nil
}
