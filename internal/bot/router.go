// Package bot renders the storefront and the operator panel over the Telegram Bot API.
package bot

import (
	"context"
	"strconv"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/rookgm/phoenixbot/internal/intake"
	"github.com/rookgm/phoenixbot/internal/logger"
	"github.com/rookgm/phoenixbot/internal/models"
	"github.com/rookgm/phoenixbot/internal/service"
	"github.com/rookgm/phoenixbot/internal/settings"
	"go.uber.org/zap"
)

// callback data
const (
	cbMainMenu    = "main_menu"
	cbCategory    = "category_"
	cbService     = "service_"
	cbDetails     = "details_"
	cbOrder       = "order_"
	cbAddCategory = "add_cat_"

	cbAdminMenu          = "admin_menu"
	cbAdminServices      = "admin_services"
	cbAdminList          = "admin_list"
	cbAdminAddService    = "admin_add_service"
	cbAdminDeleteService = "admin_delete_service"
	cbDeleteService      = "del_service_"
	cbConfirmDelete      = "confirm_del_"
	cbAdminStats         = "admin_stats"
	cbAdminPost          = "admin_post"
	cbAdminSettings      = "admin_settings"
	cbAdminSetChannel    = "admin_set_channel"
	cbAdminSetManager    = "admin_set_manager"
	cbAdminSetGiveaway   = "admin_set_giveaway"
	cbAdminClose         = "admin_close"
)

// Catalog is the catalog surface used by the bot
type Catalog interface {
	Categories() []models.Category
	CatalogCategories() []models.Category
	CategoryByKey(key string) (models.Category, error)
	CategoryByLabel(label string) (models.Category, error)
	CreateOffering(ctx context.Context, offering models.Offering) (*models.Offering, error)
	GetOffering(ctx context.Context, id int64) (*models.Offering, error)
	ListOfferingsByCategory(ctx context.Context, label string) ([]models.Offering, error)
	ListOfferings(ctx context.Context) ([]models.Offering, error)
	DeleteOffering(ctx context.Context, id int64) (bool, error)
}

// Orders places orders
type Orders interface {
	PlaceOrder(ctx context.Context, requester models.Requester, offeringID int64) (*service.Placement, error)
}

// Auditor appends user actions
type Auditor interface {
	Record(ctx context.Context, requester models.Requester, action, details string)
}

// StatsProvider aggregates counts for the operator
type StatsProvider interface {
	Stats(ctx context.Context) (*service.Stats, error)
}

// Settings is the operator-managed configuration
type Settings interface {
	Values() settings.Values
	ChannelID() string
	SetChannel(id string) error
	SetManager(handle string) error
}

// Intake drives operator dialogs
type Intake interface {
	IsOperator(id int64) bool
	Begin(caller int64, kind intake.Kind) intake.Outcome
	ChooseCategory(caller int64, key string) intake.Outcome
	Submit(ctx context.Context, caller int64, text string) intake.Outcome
	Clear(caller int64) bool
}

// Publisher posts announcements
type Publisher interface {
	Publish(ctx context.Context, channelID, text string) error
}

// Dependencies groups collaborators of Router
type Dependencies struct {
	Catalog   Catalog
	Orders    Orders
	Audit     Auditor
	Stats     StatsProvider
	Settings  Settings
	Intake    Intake
	Publisher Publisher
}

// Router dispatches Telegram updates to user and operator handlers
type Router struct {
	sender Sender
	Dependencies
}

// NewRouter creates new Router
func NewRouter(sender Sender, deps Dependencies) *Router {
	return &Router{sender: sender, Dependencies: deps}
}

// HandleUpdate processes one update. Failures are logged and reported to the chat.
func (r *Router) HandleUpdate(ctx context.Context, update tgbotapi.Update) {
	switch {
	case update.CallbackQuery != nil:
		r.handleCallback(ctx, update.CallbackQuery)
	case update.Message != nil:
		r.handleMessage(ctx, update.Message)
	}
}

func requesterOf(u *tgbotapi.User) models.Requester {
	return models.Requester{ID: u.ID, Username: u.UserName}
}

// view is where a callback renders: the message holding the button, or a new one
type view struct {
	chatID    int64
	messageID int
}

func callbackView(cq *tgbotapi.CallbackQuery) view {
	if cq.Message != nil && cq.Message.Chat != nil {
		return view{chatID: cq.Message.Chat.ID, messageID: cq.Message.MessageID}
	}
	return view{chatID: cq.From.ID}
}

func (r *Router) handleCallback(ctx context.Context, cq *tgbotapi.CallbackQuery) {
	if cq.From == nil {
		return
	}

	notice := r.dispatchCallback(ctx, cq)

	if _, err := r.sender.Request(tgbotapi.NewCallback(cq.ID, notice)); err != nil {
		logger.Log.Debug("answer callback", zap.String("callback_id", cq.ID), zap.Error(err))
	}
}

// dispatchCallback returns optional notice shown to the user
func (r *Router) dispatchCallback(ctx context.Context, cq *tgbotapi.CallbackQuery) string {
	data := cq.Data
	v := callbackView(cq)
	who := requesterOf(cq.From)

	if strings.HasPrefix(data, "admin_") || strings.HasPrefix(data, cbAddCategory) ||
		strings.HasPrefix(data, cbDeleteService) || strings.HasPrefix(data, cbConfirmDelete) {
		if !r.Intake.IsOperator(who.ID) {
			return ""
		}
		r.dispatchAdminCallback(ctx, v, who, data)
		return ""
	}

	switch {
	case data == cbMainMenu:
		r.showMainMenu(ctx, v, who)
	case strings.HasPrefix(data, cbCategory):
		r.showCategory(ctx, v, who, strings.TrimPrefix(data, cbCategory))
	case strings.HasPrefix(data, cbService):
		if id, ok := parseID(data, cbService); ok {
			r.showOffering(ctx, v, who, id)
		}
	case strings.HasPrefix(data, cbDetails):
		if id, ok := parseID(data, cbDetails); ok {
			r.showDetails(ctx, v, who, id)
		}
	case strings.HasPrefix(data, cbOrder):
		if id, ok := parseID(data, cbOrder); ok {
			return r.placeOrder(ctx, v, who, id)
		}
	default:
		logger.Log.Debug("unknown callback", zap.String("data", data))
	}
	return ""
}

func (r *Router) handleMessage(ctx context.Context, msg *tgbotapi.Message) {
	if msg.From == nil || msg.Chat == nil {
		return
	}
	who := requesterOf(msg.From)
	chatID := msg.Chat.ID

	if !msg.IsCommand() {
		if r.Intake.IsOperator(who.ID) {
			r.submitIntake(ctx, chatID, who, msg.Text)
		}
		return
	}

	command := msg.Command()
	if command == "start" {
		r.start(ctx, chatID, who)
		return
	}

	if !r.Intake.IsOperator(who.ID) {
		return
	}

	args := strings.TrimSpace(msg.CommandArguments())
	switch command {
	case "admin":
		r.reply(chatID, adminPanelText(r.Settings.ChannelID()), adminMenuKeyboard())
	case "add_service":
		r.cmdAddService(ctx, chatID, args)
	case "delete_service":
		r.cmdDeleteService(ctx, chatID, args)
	case "list_services":
		r.cmdListServices(ctx, chatID)
	case "set_manager":
		r.cmdSetManager(chatID, args)
	case "set_channel":
		r.cmdSetChannel(chatID, args)
	case "post":
		r.cmdPost(ctx, chatID, args)
	case "cancel":
		if r.Intake.Clear(who.ID) {
			r.reply(chatID, "✅ Cancelled.", adminMenuKeyboard())
		} else {
			r.reply(chatID, "Nothing to cancel.", nil)
		}
	case "admin_help":
		r.reply(chatID, adminHelpText(r.Settings.Values()), nil)
	}
}

func parseID(data, prefix string) (int64, bool) {
	id, err := strconv.ParseInt(strings.TrimPrefix(data, prefix), 10, 64)
	if err != nil {
		logger.Log.Debug("bad callback id", zap.String("data", data))
		return 0, false
	}
	return id, true
}

// reply sends a new message, markup is one of nil or tgbotapi.InlineKeyboardMarkup
func (r *Router) reply(chatID int64, text string, markup interface{}) {
	msg := tgbotapi.NewMessage(chatID, text)
	if markup != nil {
		msg.ReplyMarkup = markup
	}
	if _, err := r.sender.Send(msg); err != nil {
		logger.Log.Error("send message", zap.Int64("chat_id", chatID), zap.Error(err))
	}
}

// edit rewrites the view in place, sending a new message when editing fails
func (r *Router) edit(v view, text string, markup tgbotapi.InlineKeyboardMarkup) {
	if v.messageID != 0 {
		_, err := r.sender.Send(tgbotapi.NewEditMessageTextAndMarkup(v.chatID, v.messageID, text, markup))
		if err == nil {
			return
		}
		logger.Log.Debug("edit message, sending new one", zap.Int64("chat_id", v.chatID), zap.Error(err))
	}
	r.reply(v.chatID, text, markup)
}
