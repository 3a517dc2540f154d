package bot

import (
	"context"
	"errors"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"testing"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/rookgm/phoenixbot/internal/intake"
	"github.com/rookgm/phoenixbot/internal/models"
	"github.com/rookgm/phoenixbot/internal/service"
	"github.com/rookgm/phoenixbot/internal/settings"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	operatorID int64 = 1001
	customerID int64 = 2002
)

const optimizationLabel = "📦 PC optimization and overclocking"

type memOfferings struct {
	mu   sync.Mutex
	next int64
	rows map[int64]models.Offering
}

func (m *memOfferings) CreateOffering(_ context.Context, o *models.Offering) (*models.Offering, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.next++
	o.ID = m.next
	o.CreatedAt = time.Now()
	m.rows[o.ID] = *o
	return o, nil
}

func (m *memOfferings) GetOffering(_ context.Context, id int64) (*models.Offering, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	o, ok := m.rows[id]
	if !ok {
		return nil, nil
	}
	return &o, nil
}

func (m *memOfferings) ListOfferingsByCategory(ctx context.Context, category string) ([]models.Offering, error) {
	all, _ := m.ListOfferings(ctx)
	var out []models.Offering
	for _, o := range all {
		if o.Category == category {
			out = append(out, o)
		}
	}
	return out, nil
}

func (m *memOfferings) ListOfferings(_ context.Context) ([]models.Offering, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []models.Offering
	for _, o := range m.rows {
		out = append(out, o)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Category != out[j].Category {
			return out[i].Category < out[j].Category
		}
		return out[i].Name < out[j].Name
	})
	return out, nil
}

func (m *memOfferings) DeleteOffering(_ context.Context, id int64) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.rows[id]
	delete(m.rows, id)
	return ok, nil
}

type memOrders struct {
	mu     sync.Mutex
	orders []models.Order
}

func (m *memOrders) CreateOrder(_ context.Context, o *models.Order) (*models.Order, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	o.ID = int64(len(m.orders) + 1)
	o.OrderTime = time.Now()
	m.orders = append(m.orders, *o)
	return o, nil
}

func (m *memOrders) ListOrders(_ context.Context) ([]models.Order, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]models.Order(nil), m.orders...), nil
}

func (m *memOrders) CountOrders(ctx context.Context) (int, error) {
	orders, _ := m.ListOrders(ctx)
	return len(orders), nil
}

type memActions struct {
	mu      sync.Mutex
	actions []models.UserAction
}

func (m *memActions) AppendUserAction(_ context.Context, a models.UserAction) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.actions = append(m.actions, a)
	return nil
}

func (m *memActions) tags() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []string
	for _, a := range m.actions {
		out = append(out, a.Action)
	}
	return out
}

type fakeSender struct {
	mu          sync.Mutex
	sent        []tgbotapi.Chattable
	requests    []tgbotapi.Chattable
	failChannel bool
	failEdit    bool
}

func (f *fakeSender) Send(c tgbotapi.Chattable) (tgbotapi.Message, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sent = append(f.sent, c)

	switch m := c.(type) {
	case tgbotapi.MessageConfig:
		if f.failChannel && m.ChannelUsername != "" {
			return tgbotapi.Message{}, errors.New("Bad Request: chat not found")
		}
	case tgbotapi.EditMessageTextConfig:
		if f.failEdit {
			return tgbotapi.Message{}, errors.New("Bad Request: message can't be edited")
		}
	}
	return tgbotapi.Message{MessageID: len(f.sent)}, nil
}

func (f *fakeSender) Request(c tgbotapi.Chattable) (*tgbotapi.APIResponse, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.requests = append(f.requests, c)
	return &tgbotapi.APIResponse{Ok: true}, nil
}

// messages returns texts of new messages sent to chat
func (f *fakeSender) messages(chatID int64) []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []string
	for _, c := range f.sent {
		if m, ok := c.(tgbotapi.MessageConfig); ok && m.ChatID == chatID {
			out = append(out, m.Text)
		}
	}
	return out
}

func (f *fakeSender) channelMessages(channel string) []tgbotapi.MessageConfig {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []tgbotapi.MessageConfig
	for _, c := range f.sent {
		if m, ok := c.(tgbotapi.MessageConfig); ok && m.ChannelUsername == channel {
			out = append(out, m)
		}
	}
	return out
}

func (f *fakeSender) edits() []tgbotapi.EditMessageTextConfig {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []tgbotapi.EditMessageTextConfig
	for _, c := range f.sent {
		if m, ok := c.(tgbotapi.EditMessageTextConfig); ok {
			out = append(out, m)
		}
	}
	return out
}

func (f *fakeSender) lastAnswer() tgbotapi.CallbackConfig {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := len(f.requests) - 1; i >= 0; i-- {
		if cb, ok := f.requests[i].(tgbotapi.CallbackConfig); ok {
			return cb
		}
	}
	return tgbotapi.CallbackConfig{}
}

type testBot struct {
	router    *Router
	sender    *fakeSender
	offerings *memOfferings
	orders    *memOrders
	actions   *memActions
	settings  *settings.Store
	catalog   *service.CatalogService
}

func newTestBot(t *testing.T) *testBot {
	t.Helper()

	store, err := settings.Load(filepath.Join(t.TempDir(), "settings.json"))
	require.NoError(t, err)
	require.NoError(t, store.SetChannel("@orders"))

	tb := &testBot{
		sender:    &fakeSender{},
		offerings: &memOfferings{rows: make(map[int64]models.Offering)},
		orders:    &memOrders{},
		actions:   &memActions{},
		settings:  store,
	}
	tb.catalog = service.NewCatalogService(tb.offerings)
	notifier := NewNotifier(tb.sender, operatorID, "phoenix_bot")

	tb.router = NewRouter(tb.sender, Dependencies{
		Catalog:   tb.catalog,
		Orders:    service.NewOrderService(tb.offerings, tb.orders, notifier, store),
		Audit:     service.NewActionService(tb.actions),
		Stats:     service.NewStatsService(tb.offerings, tb.orders),
		Settings:  store,
		Intake:    intake.NewMachine(operatorID, intake.NewSessions(), tb.catalog, store, notifier),
		Publisher: notifier,
	})
	return tb
}

func (tb *testBot) addOffering(t *testing.T, name string) int64 {
	t.Helper()
	o, err := tb.catalog.CreateOffering(context.Background(), models.Offering{
		Name: name, Description: "Clean install", Price: "500", Category: optimizationLabel,
	})
	require.NoError(t, err)
	return o.ID
}

func user(id int64, username string) *tgbotapi.User {
	return &tgbotapi.User{ID: id, UserName: username}
}

func messageUpdate(from *tgbotapi.User, text string) tgbotapi.Update {
	msg := &tgbotapi.Message{
		MessageID: 1,
		From:      from,
		Chat:      &tgbotapi.Chat{ID: from.ID},
		Text:      text,
	}
	if strings.HasPrefix(text, "/") {
		length := strings.IndexByte(text, ' ')
		if length < 0 {
			length = len(text)
		}
		msg.Entities = []tgbotapi.MessageEntity{{Type: "bot_command", Offset: 0, Length: length}}
	}
	return tgbotapi.Update{Message: msg}
}

func callbackUpdate(from *tgbotapi.User, data string) tgbotapi.Update {
	return tgbotapi.Update{CallbackQuery: &tgbotapi.CallbackQuery{
		ID:   "cb-" + data,
		From: from,
		Data: data,
		Message: &tgbotapi.Message{
			MessageID: 77,
			Chat:      &tgbotapi.Chat{ID: from.ID},
		},
	}}
}

func TestRouter_Start(t *testing.T) {
	tb := newTestBot(t)
	tb.router.HandleUpdate(context.Background(), messageUpdate(user(customerID, "alice"), "/start"))

	msgs := tb.sender.messages(customerID)
	require.Len(t, msgs, 1)
	assert.Equal(t, textWelcome, msgs[0])
	assert.Equal(t, []string{models.ActionStart}, tb.actions.tags())
}

func TestRouter_CategoryPages(t *testing.T) {
	tests := []struct {
		name     string
		key      string
		seed     bool
		wantText string
	}{
		{name: "catalog_with_offerings", key: models.CategoryOptimization, seed: true, wantText: categoryText(optimizationLabel)},
		{name: "empty_catalog", key: models.CategoryDevices, wantText: emptyCategoryText("🖱 Devices")},
		{name: "about_page", key: models.CategoryAbout, wantText: textAbout},
		{name: "giveaway_page", key: models.CategoryGiveaway, wantText: settings.DefaultGiveaway},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tb := newTestBot(t)
			if tt.seed {
				tb.addOffering(t, "Tune-up")
			}

			tb.router.HandleUpdate(context.Background(), callbackUpdate(user(customerID, "alice"), cbCategory+tt.key))

			edits := tb.sender.edits()
			require.Len(t, edits, 1)
			assert.Equal(t, tt.wantText, edits[0].Text)
			assert.Equal(t, 77, edits[0].MessageID)
			assert.Equal(t, []string{models.ActionCategoryViewed}, tb.actions.tags())
			assert.Equal(t, "cb-"+cbCategory+tt.key, tb.sender.lastAnswer().CallbackQueryID)
		})
	}
}

func TestRouter_UnknownCategoryIsQuiet(t *testing.T) {
	tb := newTestBot(t)
	tb.router.HandleUpdate(context.Background(), callbackUpdate(user(customerID, "alice"), cbCategory+"school"))

	assert.Empty(t, tb.sender.edits())
	assert.Empty(t, tb.actions.tags())
}

func TestRouter_OfferingAndDetails(t *testing.T) {
	tb := newTestBot(t)
	id := tb.addOffering(t, "Tune-up")
	alice := user(customerID, "alice")

	tb.router.HandleUpdate(context.Background(), callbackUpdate(alice, "service_1"))
	tb.router.HandleUpdate(context.Background(), callbackUpdate(alice, "details_1"))

	edits := tb.sender.edits()
	require.Len(t, edits, 2)
	o, _ := tb.offerings.GetOffering(context.Background(), id)
	assert.Equal(t, offeringText(o), edits[0].Text)
	assert.Equal(t, detailsText(o), edits[1].Text)
	assert.Equal(t, []string{models.ActionServiceViewed, models.ActionDetailsViewed}, tb.actions.tags())
}

func TestRouter_PlaceOrder(t *testing.T) {
	t.Run("forwarded", func(t *testing.T) {
		tb := newTestBot(t)
		tb.addOffering(t, "Tune-up")

		tb.router.HandleUpdate(context.Background(), callbackUpdate(user(customerID, "alice"), "order_1"))

		require.Len(t, tb.orders.orders, 1)
		assert.Equal(t, "Tune-up", tb.orders.orders[0].OfferingName)

		posted := tb.sender.channelMessages("@orders")
		require.Len(t, posted, 1)
		assert.Contains(t, posted[0].Text, "Tune-up")
		assert.Contains(t, posted[0].Text, "@alice")

		edits := tb.sender.edits()
		require.Len(t, edits, 1)
		assert.Equal(t, orderSuccessText("Tune-up"), edits[0].Text)
		assert.Contains(t, tb.actions.tags(), models.ActionOrderCreated)
		assert.Empty(t, tb.sender.messages(operatorID))
	})

	t.Run("channel_failure_keeps_order", func(t *testing.T) {
		tb := newTestBot(t)
		tb.sender.failChannel = true
		tb.addOffering(t, "Tune-up")

		tb.router.HandleUpdate(context.Background(), callbackUpdate(user(customerID, "alice"), "order_1"))

		require.Len(t, tb.orders.orders, 1)
		warnings := tb.sender.messages(operatorID)
		require.Len(t, warnings, 1)
		assert.Contains(t, warnings[0], "@alice")
		assert.Equal(t, orderSuccessText("Tune-up"), tb.sender.edits()[0].Text)
	})

	t.Run("absent_offering", func(t *testing.T) {
		tb := newTestBot(t)

		tb.router.HandleUpdate(context.Background(), callbackUpdate(user(customerID, "alice"), "order_9"))

		assert.Empty(t, tb.orders.orders)
		assert.Empty(t, tb.sender.edits())
		assert.Equal(t, textOfferingGone, tb.sender.lastAnswer().Text)
	})
}

func TestRouter_EditFailureSendsNewMessage(t *testing.T) {
	tb := newTestBot(t)
	tb.sender.failEdit = true

	tb.router.HandleUpdate(context.Background(), callbackUpdate(user(customerID, "alice"), cbMainMenu))

	require.Len(t, tb.sender.edits(), 1)
	assert.Equal(t, []string{textWelcome}, tb.sender.messages(customerID))
}

func TestRouter_AddOfferingDialog(t *testing.T) {
	tb := newTestBot(t)
	ctx := context.Background()
	op := user(operatorID, "boss")

	tb.router.HandleUpdate(ctx, callbackUpdate(op, cbAdminAddService))
	tb.router.HandleUpdate(ctx, callbackUpdate(op, cbAddCategory+models.CategoryOptimization))
	tb.router.HandleUpdate(ctx, messageUpdate(op, "Test"))
	tb.router.HandleUpdate(ctx, messageUpdate(op, ""))
	tb.router.HandleUpdate(ctx, messageUpdate(op, "Desc"))
	tb.router.HandleUpdate(ctx, messageUpdate(op, "100"))

	all, err := tb.offerings.ListOfferings(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, "Test", all[0].Name)
	assert.Equal(t, "Desc", all[0].Description)
	assert.Equal(t, "100", all[0].Price)
	assert.Equal(t, optimizationLabel, all[0].Category)

	msgs := tb.sender.messages(operatorID)
	require.NotEmpty(t, msgs)
	assert.Contains(t, msgs[len(msgs)-1], "ID: 1")
	assert.True(t, strings.HasPrefix(msgs[2], "❌ Please send a text message."))

	// the dialog is over, further text goes nowhere
	tb.router.HandleUpdate(ctx, messageUpdate(op, "stray"))
	assert.Len(t, tb.sender.messages(operatorID), len(msgs))
}

func TestRouter_NonOperatorAdminSurfaceIsSilent(t *testing.T) {
	tb := newTestBot(t)
	ctx := context.Background()
	stranger := user(customerID, "mallory")

	for _, data := range []string{cbAdminMenu, cbAdminAddService, cbAddCategory + "optimization", "confirm_del_1", cbAdminStats} {
		tb.router.HandleUpdate(ctx, callbackUpdate(stranger, data))
	}
	for _, text := range []string{"/admin", "/add_service 📦 PC optimization and overclocking|a|b|c", "/delete_service 1", "/post hi", "hello"} {
		tb.router.HandleUpdate(ctx, messageUpdate(stranger, text))
	}

	assert.Empty(t, tb.sender.messages(customerID))
	assert.Empty(t, tb.sender.edits())
	all, _ := tb.offerings.ListOfferings(ctx)
	assert.Empty(t, all)
}

func TestRouter_OneShotCommands(t *testing.T) {
	tb := newTestBot(t)
	ctx := context.Background()
	op := user(operatorID, "boss")

	tb.router.HandleUpdate(ctx, messageUpdate(op, "/add_service "+optimizationLabel+"|Tune-up|Clean install|500"))
	tb.router.HandleUpdate(ctx, messageUpdate(op, "/add_service About|x|y|z"))
	tb.router.HandleUpdate(ctx, messageUpdate(op, "/delete_service 1"))
	tb.router.HandleUpdate(ctx, messageUpdate(op, "/delete_service 1"))
	tb.router.HandleUpdate(ctx, messageUpdate(op, "/set_manager @helper"))
	tb.router.HandleUpdate(ctx, messageUpdate(op, "/set_channel nope"))
	tb.router.HandleUpdate(ctx, messageUpdate(op, "/post Big sale"))

	msgs := tb.sender.messages(operatorID)
	require.Len(t, msgs, 7)
	assert.Equal(t, "✅ Service added! ID: 1", msgs[0])
	assert.True(t, strings.HasPrefix(msgs[1], "❌ Format:"))
	assert.Equal(t, "✅ Service 1 deleted!", msgs[2])
	assert.Equal(t, textNotFound, msgs[3])
	assert.Equal(t, "✅ Manager set: @helper", msgs[4])
	assert.Equal(t, "@orders", tb.settings.ChannelID())

	assert.Equal(t, "helper", tb.settings.ManagerUsername())

	posted := tb.sender.channelMessages("@orders")
	require.Len(t, posted, 1)
	assert.Equal(t, "Big sale", posted[0].Text)
	assert.Equal(t, tgbotapi.ModeMarkdown, posted[0].ParseMode)
	assert.NotNil(t, posted[0].ReplyMarkup)
}

func TestRouter_CancelClearsDialog(t *testing.T) {
	tb := newTestBot(t)
	ctx := context.Background()
	op := user(operatorID, "boss")

	tb.router.HandleUpdate(ctx, callbackUpdate(op, cbAdminSetChannel))
	tb.router.HandleUpdate(ctx, messageUpdate(op, "/cancel"))
	tb.router.HandleUpdate(ctx, messageUpdate(op, "@other_channel"))

	assert.Equal(t, "@orders", tb.settings.ChannelID())
	msgs := tb.sender.messages(operatorID)
	require.Len(t, msgs, 2)
	assert.Equal(t, "✅ Cancelled.", msgs[1])
}

func TestRouter_SetChannelDialog(t *testing.T) {
	tb := newTestBot(t)
	ctx := context.Background()
	op := user(operatorID, "boss")

	tb.router.HandleUpdate(ctx, callbackUpdate(op, cbAdminSetChannel))
	tb.router.HandleUpdate(ctx, messageUpdate(op, "not a channel"))
	tb.router.HandleUpdate(ctx, messageUpdate(op, "-1001234567890"))

	assert.Equal(t, "-1001234567890", tb.settings.ChannelID())
	msgs := tb.sender.messages(operatorID)
	require.Len(t, msgs, 3)
	assert.True(t, strings.HasPrefix(msgs[1], "❌ This is not a channel id."))
	assert.Equal(t, "✅ Order channel set: -1001234567890", msgs[2])
}

func TestRouter_AdminDelete(t *testing.T) {
	tb := newTestBot(t)
	ctx := context.Background()
	op := user(operatorID, "boss")
	tb.addOffering(t, "Tune-up")

	tb.router.HandleUpdate(ctx, callbackUpdate(op, cbAdminDeleteService))
	tb.router.HandleUpdate(ctx, callbackUpdate(op, "del_service_1"))
	tb.router.HandleUpdate(ctx, callbackUpdate(op, "confirm_del_1"))

	edits := tb.sender.edits()
	require.Len(t, edits, 2)
	assert.Equal(t, deleteListText(1), edits[0].Text)
	assert.Contains(t, edits[1].Text, "Tune-up")

	assert.Equal(t, []string{"✅ Service 'Tune-up' deleted!"}, tb.sender.messages(operatorID))
	all, _ := tb.offerings.ListOfferings(ctx)
	assert.Empty(t, all)
}

func TestRouter_AdminStats(t *testing.T) {
	tb := newTestBot(t)
	tb.addOffering(t, "Tune-up")

	tb.router.HandleUpdate(context.Background(), callbackUpdate(user(operatorID, "boss"), cbAdminStats))

	edits := tb.sender.edits()
	require.Len(t, edits, 1)
	assert.Contains(t, edits[0].Text, "📦 Services: 1")
	assert.Contains(t, edits[0].Text, optimizationLabel+": 1 services")
}

func TestRouter_AdminClose(t *testing.T) {
	tb := newTestBot(t)
	tb.router.HandleUpdate(context.Background(), callbackUpdate(user(operatorID, "boss"), cbAdminClose))

	var deleted bool
	for _, c := range tb.sender.requests {
		if d, ok := c.(tgbotapi.DeleteMessageConfig); ok {
			deleted = d.MessageID == 77 && d.ChatID == operatorID
		}
	}
	assert.True(t, deleted)
}
