package bot

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/rookgm/phoenixbot/internal/intake"
	"github.com/rookgm/phoenixbot/internal/logger"
	"github.com/rookgm/phoenixbot/internal/models"
	"go.uber.org/zap"
)

// dispatchAdminCallback handles operator buttons, caller is already checked
func (r *Router) dispatchAdminCallback(ctx context.Context, v view, who models.Requester, data string) {
	switch {
	case data == cbAdminMenu:
		r.edit(v, adminPanelText(r.Settings.ChannelID()), adminMenuKeyboard())
	case data == cbAdminServices:
		offerings, err := r.Catalog.ListOfferings(ctx)
		if err != nil {
			r.storageFailure(v, err)
			return
		}
		r.edit(v, adminServicesText(len(offerings)), adminServicesKeyboard())
	case data == cbAdminList:
		offerings, err := r.Catalog.ListOfferings(ctx)
		if err != nil {
			r.storageFailure(v, err)
			return
		}
		r.edit(v, offeringListText(offerings), backKeyboard(cbAdminServices))
	case data == cbAdminAddService:
		out := r.Intake.Begin(who.ID, intake.KindAddOffering)
		r.edit(v, promptText(out.State, ""), addCategoryKeyboard(r.Catalog.CatalogCategories()))
	case strings.HasPrefix(data, cbAddCategory):
		r.renderOutcome(v.chatID, r.Intake.ChooseCategory(who.ID, strings.TrimPrefix(data, cbAddCategory)))
	case data == cbAdminDeleteService:
		r.showDeleteList(ctx, v)
	case strings.HasPrefix(data, cbDeleteService):
		if id, ok := parseID(data, cbDeleteService); ok {
			r.confirmDelete(ctx, v, id)
		}
	case strings.HasPrefix(data, cbConfirmDelete):
		if id, ok := parseID(data, cbConfirmDelete); ok {
			r.deleteConfirmed(ctx, v, id)
		}
	case data == cbAdminStats:
		stats, err := r.Stats.Stats(ctx)
		if err != nil {
			r.storageFailure(v, err)
			return
		}
		r.edit(v, statsText(stats), backKeyboard(cbAdminMenu))
	case data == cbAdminPost:
		r.renderOutcome(v.chatID, r.Intake.Begin(who.ID, intake.KindPost))
	case data == cbAdminSettings:
		r.edit(v, settingsText(r.Settings.Values()), settingsKeyboard())
	case data == cbAdminSetChannel:
		r.renderOutcome(v.chatID, r.Intake.Begin(who.ID, intake.KindSetChannel))
	case data == cbAdminSetManager:
		r.renderOutcome(v.chatID, r.Intake.Begin(who.ID, intake.KindSetManager))
	case data == cbAdminSetGiveaway:
		r.renderOutcome(v.chatID, r.Intake.Begin(who.ID, intake.KindSetGiveaway))
	case data == cbAdminClose:
		if v.messageID == 0 {
			return
		}
		if _, err := r.sender.Request(tgbotapi.NewDeleteMessage(v.chatID, v.messageID)); err != nil {
			logger.Log.Debug("delete admin panel", zap.Error(err))
		}
	default:
		logger.Log.Debug("unknown admin callback", zap.String("data", data))
	}
}

func (r *Router) storageFailure(v view, err error) {
	logger.Log.Error("storage failure", zap.Error(err))
	r.edit(v, textTryAgain, backKeyboard(cbAdminMenu))
}

func (r *Router) showDeleteList(ctx context.Context, v view) {
	offerings, err := r.Catalog.ListOfferings(ctx)
	if err != nil {
		r.storageFailure(v, err)
		return
	}
	if len(offerings) == 0 {
		r.reply(v.chatID, textNothingToDrop, nil)
		return
	}
	r.edit(v, deleteListText(len(offerings)), deleteListKeyboard(offerings))
}

func (r *Router) confirmDelete(ctx context.Context, v view, id int64) {
	offering, err := r.Catalog.GetOffering(ctx, id)
	if err != nil {
		r.storageFailure(v, err)
		return
	}
	if offering == nil {
		r.reply(v.chatID, textNotFound, nil)
		return
	}
	r.edit(v, confirmDeleteText(offering), confirmDeleteKeyboard(id))
}

func (r *Router) deleteConfirmed(ctx context.Context, v view, id int64) {
	offering, err := r.Catalog.GetOffering(ctx, id)
	if err != nil {
		r.storageFailure(v, err)
		return
	}
	if offering == nil {
		r.reply(v.chatID, textNotFound, nil)
		return
	}

	removed, err := r.Catalog.DeleteOffering(ctx, id)
	if err != nil {
		r.storageFailure(v, err)
		return
	}
	if !removed {
		r.reply(v.chatID, textNotFound, nil)
		return
	}

	logger.Log.Info("offering deleted", zap.Int64("offering_id", id))
	r.reply(v.chatID, fmt.Sprintf("✅ Service '%s' deleted!", offering.Name), backKeyboard(cbAdminServices))
}

// submitIntake feeds operator text to the pending dialog
func (r *Router) submitIntake(ctx context.Context, chatID int64, who models.Requester, text string) {
	r.renderOutcome(chatID, r.Intake.Submit(ctx, who.ID, text))
}

// renderOutcome tells the operator what an intake step did
func (r *Router) renderOutcome(chatID int64, out intake.Outcome) {
	channel := r.Settings.ChannelID()

	switch out.Status {
	case intake.StatusIgnored:
		return
	case intake.StatusPending:
		switch {
		case errors.Is(out.Err, models.ErrInvalidChannel):
			r.reply(chatID, "❌ This is not a channel id.\n\n"+promptText(out.State, channel), nil)
		case out.Reprompt:
			if _, ok := out.State.(intake.AwaitingCategory); ok {
				r.reply(chatID, repromptText(out.State, channel), addCategoryKeyboard(r.Catalog.CatalogCategories()))
				return
			}
			r.reply(chatID, repromptText(out.State, channel), nil)
		default:
			r.reply(chatID, promptText(out.State, channel), nil)
		}
	case intake.StatusCompleted:
		r.renderResult(chatID, out.Result)
	case intake.StatusAborted:
		switch {
		case errors.Is(out.Err, models.ErrMalformedState):
			r.reply(chatID, textStartOver, adminMenuKeyboard())
		case errors.Is(out.Err, models.ErrChannelNotConfigured):
			r.reply(chatID, textNoChannel, nil)
		default:
			r.reply(chatID, "❌ Error: "+out.Err.Error(), backKeyboard(cbAdminMenu))
		}
	}
}

func (r *Router) renderResult(chatID int64, res intake.Result) {
	switch res.Kind {
	case intake.KindAddOffering:
		r.reply(chatID, offeringAddedText(res.Offering), addedKeyboard())
	case intake.KindSetChannel:
		r.reply(chatID, "✅ Order channel set: "+res.Value, backKeyboard(cbAdminSettings))
	case intake.KindSetManager:
		r.reply(chatID, "✅ Manager set: @"+res.Value, backKeyboard(cbAdminSettings))
	case intake.KindSetGiveaway:
		r.reply(chatID, "✅ Giveaway description updated.", backKeyboard(cbAdminSettings))
	case intake.KindPost:
		r.reply(chatID, fmt.Sprintf("✅ Post published to channel %s!", res.Channel), backKeyboard(cbAdminMenu))
	}
}

func (r *Router) cmdAddService(ctx context.Context, chatID int64, args string) {
	parts := strings.Split(args, "|")
	if len(parts) != 4 {
		r.reply(chatID, addServiceUsage(r.Catalog.CatalogCategories()), nil)
		return
	}
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}

	offering, err := r.Catalog.CreateOffering(ctx, models.Offering{
		Category:    parts[0],
		Name:        parts[1],
		Description: parts[2],
		Price:       parts[3],
	})
	switch {
	case errors.Is(err, models.ErrUnknownCategory), errors.Is(err, models.ErrInvalidOffering):
		r.reply(chatID, addServiceUsage(r.Catalog.CatalogCategories()), nil)
	case err != nil:
		logger.Log.Error("create offering", zap.Error(err))
		r.reply(chatID, "❌ Error: "+err.Error(), nil)
	default:
		logger.Log.Info("offering created", zap.Int64("offering_id", offering.ID))
		r.reply(chatID, fmt.Sprintf("✅ Service added! ID: %d", offering.ID), nil)
	}
}

func (r *Router) cmdDeleteService(ctx context.Context, chatID int64, args string) {
	id, err := strconv.ParseInt(args, 10, 64)
	if err != nil {
		r.reply(chatID, "❌ Give the service ID: /delete_service 1", nil)
		return
	}

	removed, err := r.Catalog.DeleteOffering(ctx, id)
	switch {
	case err != nil:
		logger.Log.Error("delete offering", zap.Int64("offering_id", id), zap.Error(err))
		r.reply(chatID, "❌ Error: "+err.Error(), nil)
	case removed:
		r.reply(chatID, fmt.Sprintf("✅ Service %d deleted!", id), nil)
	default:
		r.reply(chatID, textNotFound, nil)
	}
}

func (r *Router) cmdListServices(ctx context.Context, chatID int64) {
	offerings, err := r.Catalog.ListOfferings(ctx)
	if err != nil {
		logger.Log.Error("list offerings", zap.Error(err))
		r.reply(chatID, textTryAgain, nil)
		return
	}
	if len(offerings) == 0 {
		r.reply(chatID, textEmptyCatalog, nil)
		return
	}
	r.reply(chatID, offeringListText(offerings), nil)
}

func (r *Router) cmdSetManager(chatID int64, args string) {
	handle := strings.TrimPrefix(args, "@")
	if handle == "" {
		r.reply(chatID, "❌ Give the username: /set_manager phoen1xPC", nil)
		return
	}
	if err := r.Settings.SetManager(handle); err != nil {
		logger.Log.Error("set manager", zap.Error(err))
		r.reply(chatID, "❌ Error: "+err.Error(), nil)
		return
	}
	r.reply(chatID, "✅ Manager set: @"+handle, nil)
}

func (r *Router) cmdSetChannel(chatID int64, args string) {
	if args == "" {
		r.reply(chatID, "❌ Give the channel: /set_channel @helprepairpc", nil)
		return
	}
	err := r.Settings.SetChannel(args)
	switch {
	case errors.Is(err, models.ErrInvalidChannel):
		r.reply(chatID, "❌ Give the channel: /set_channel @helprepairpc", nil)
	case err != nil:
		logger.Log.Error("set channel", zap.Error(err))
		r.reply(chatID, "❌ Error: "+err.Error(), nil)
	default:
		r.reply(chatID, "✅ Channel set: "+args, nil)
	}
}

func (r *Router) cmdPost(ctx context.Context, chatID int64, args string) {
	channel := r.Settings.ChannelID()
	if channel == "" {
		r.reply(chatID, textNoChannel, nil)
		return
	}
	if args == "" {
		r.reply(chatID, "❌ Give the text: /post Your text", nil)
		return
	}

	if err := r.Publisher.Publish(ctx, channel, args); err != nil {
		logger.Log.Error("publish post", zap.String("channel", channel), zap.Error(err))
		r.reply(chatID, "❌ Error: "+err.Error(), nil)
		return
	}
	r.reply(chatID, fmt.Sprintf("✅ Post published to %s!", channel), nil)
}
