package worker

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/stretchr/testify/assert"
)

type countingHandler struct {
	mu   sync.Mutex
	seen map[int]int
}

func (h *countingHandler) HandleUpdate(_ context.Context, u tgbotapi.Update) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.seen[u.UpdateID]++
}

type panickingHandler struct {
	calls atomic.Int32
}

func (h *panickingHandler) HandleUpdate(_ context.Context, _ tgbotapi.Update) {
	h.calls.Add(1)
	panic("boom")
}

func TestDispatcher_HandlesEveryUpdateOnce(t *testing.T) {
	h := &countingHandler{seen: make(map[int]int)}
	updates := make(chan tgbotapi.Update)

	done := make(chan struct{})
	go func() {
		NewDispatcher(h, 4).Run(context.Background(), updates)
		close(done)
	}()

	for i := 1; i <= 20; i++ {
		updates <- tgbotapi.Update{UpdateID: i}
	}
	close(updates)

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("dispatcher did not stop after updates channel was closed")
	}

	assert.Len(t, h.seen, 20)
	for id, n := range h.seen {
		assert.Equal(t, 1, n, "update %d", id)
	}
}

func TestDispatcher_StopsOnContextCancel(t *testing.T) {
	h := &countingHandler{seen: make(map[int]int)}
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan struct{})
	go func() {
		NewDispatcher(h, 2).Run(ctx, make(chan tgbotapi.Update))
		close(done)
	}()
	cancel()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("dispatcher did not stop after cancel")
	}
}

func TestDispatcher_SurvivesPanic(t *testing.T) {
	h := &panickingHandler{}
	updates := make(chan tgbotapi.Update, 3)
	for i := 0; i < 3; i++ {
		updates <- tgbotapi.Update{UpdateID: i}
	}
	close(updates)

	NewDispatcher(h, 0).Run(context.Background(), updates)
	assert.Equal(t, int32(3), h.calls.Load())
}
