package commands

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/rookgm/phoenixbot/internal/bot"
	handler "github.com/rookgm/phoenixbot/internal/handler/http"
	"github.com/rookgm/phoenixbot/internal/intake"
	"github.com/rookgm/phoenixbot/internal/logger"
	"github.com/rookgm/phoenixbot/internal/repository"
	"github.com/rookgm/phoenixbot/internal/repository/postgres"
	"github.com/rookgm/phoenixbot/internal/service"
	"github.com/rookgm/phoenixbot/internal/settings"
	"github.com/rookgm/phoenixbot/internal/worker"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const (
	pollTimeout     = 60
	shutdownTimeout = 10 * time.Second
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Start the bot and the ops HTTP server",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runBot(cmd.Context())
	},
}

func runBot(parent context.Context) error {
	if cfg.BotToken == "" {
		return errors.New("bot token is not set, use --token or BOT_TOKEN")
	}
	if cfg.AdminID == 0 {
		logger.Log.Warn("operator id is not set, admin features are disabled")
	}

	ctx, stop := signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := openDB(ctx)
	if err != nil {
		return err
	}
	defer db.Close()

	store, err := settings.Load(cfg.SettingsFile)
	if err != nil {
		logger.Log.Warn("settings file is unusable, running with defaults",
			zap.String("path", cfg.SettingsFile), zap.Error(err))
	}

	api, err := tgbotapi.NewBotAPI(cfg.BotToken)
	if err != nil {
		return err
	}
	logger.Log.Info("authorized", zap.String("bot", api.Self.UserName))

	offeringRepo := repository.NewOfferingRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	actionRepo := repository.NewActionRepository(db)

	notifier := bot.NewNotifier(api, cfg.AdminID, api.Self.UserName)
	catalog := service.NewCatalogService(offeringRepo)
	orders := service.NewOrderService(offeringRepo, orderRepo, notifier, store)
	stats := service.NewStatsService(offeringRepo, orderRepo)
	machine := intake.NewMachine(cfg.AdminID, intake.NewSessions(), catalog, store, notifier)

	router := bot.NewRouter(api, bot.Dependencies{
		Catalog:   catalog,
		Orders:    orders,
		Audit:     service.NewActionService(actionRepo),
		Stats:     stats,
		Settings:  store,
		Intake:    machine,
		Publisher: notifier,
	})

	srv := &http.Server{
		Addr:              cfg.RunAddress,
		Handler:           handler.NewRouter(handler.NewCatalogHandler(catalog), handler.NewStatsHandler(stats)),
		ReadHeaderTimeout: 5 * time.Second,
	}
	go func() {
		logger.Log.Info("ops server started", zap.String("address", cfg.RunAddress))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Log.Error("ops server failed", zap.Error(err))
			stop()
		}
	}()

	u := tgbotapi.NewUpdate(0)
	u.Timeout = pollTimeout
	updates := api.GetUpdatesChan(u)

	// in-flight updates finish even after a shutdown signal,
	// the dispatcher stops when the updates channel is closed
	done := make(chan struct{})
	go func() {
		worker.NewDispatcher(router, cfg.Workers).Run(context.WithoutCancel(ctx), updates)
		close(done)
	}()

	<-ctx.Done()
	logger.Log.Info("shutting down")

	api.StopReceivingUpdates()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Error("ops server shutdown", zap.Error(err))
	}

	select {
	case <-done:
	case <-shutdownCtx.Done():
		logger.Log.Warn("update workers did not stop in time")
	}

	return nil
}

// openDB connects to the database and applies migrations
func openDB(ctx context.Context) (*postgres.DB, error) {
	if cfg.DatabaseURI == "" {
		return nil, errors.New("database URI is not set, use --database or DATABASE_URI")
	}

	db, err := postgres.New(ctx, cfg.DatabaseURI)
	if err != nil {
		return nil, err
	}

	if err := db.Migrate(); err != nil {
		db.Close()
		return nil, err
	}

	return db, nil
}
