package worker

import (
	"context"
	"sync"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/google/uuid"
	"github.com/rookgm/phoenixbot/internal/logger"
	"go.uber.org/zap"
)

// UpdateHandler processes a single chat update
type UpdateHandler interface {
	HandleUpdate(ctx context.Context, update tgbotapi.Update)
}

// Dispatcher is worker pool feeding chat updates to a handler
type Dispatcher struct {
	handler UpdateHandler
	workers int
}

// NewDispatcher create new update dispatcher
func NewDispatcher(handler UpdateHandler, workers int) *Dispatcher {
	if workers < 1 {
		workers = 1
	}
	return &Dispatcher{handler: handler, workers: workers}
}

// Run dispatches updates until ctx is done or updates is closed
func (d *Dispatcher) Run(ctx context.Context, updates <-chan tgbotapi.Update) {
	var wg sync.WaitGroup
	for i := 0; i < d.workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			d.loop(ctx, updates)
		}()
	}
	wg.Wait()

	logger.Log.Debug("update dispatcher is done")
}

func (d *Dispatcher) loop(ctx context.Context, updates <-chan tgbotapi.Update) {
	for {
		select {
		case <-ctx.Done():
			return
		case update, ok := <-updates:
			if !ok {
				return
			}
			d.handle(ctx, update)
		}
	}
}

func (d *Dispatcher) handle(ctx context.Context, update tgbotapi.Update) {
	log := logger.Log.With(zap.String("trace_id", uuid.NewString()), zap.Int("update_id", update.UpdateID))
	start := time.Now()

	defer func() {
		if p := recover(); p != nil {
			log.Error("update handler panicked", zap.Any("panic", p))
		}
	}()

	log.Debug("update received")
	d.handler.HandleUpdate(ctx, update)
	log.Debug("update handled", zap.Duration("duration", time.Since(start)))
}
