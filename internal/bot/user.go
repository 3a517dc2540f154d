package bot

import (
	"context"
	"errors"
	"fmt"

	"github.com/rookgm/phoenixbot/internal/logger"
	"github.com/rookgm/phoenixbot/internal/models"
	"go.uber.org/zap"
)

func (r *Router) start(ctx context.Context, chatID int64, who models.Requester) {
	r.Audit.Record(ctx, who, models.ActionStart, "")
	r.reply(chatID, textWelcome, mainMenuKeyboard(r.Catalog.Categories()))
}

func (r *Router) showMainMenu(ctx context.Context, v view, who models.Requester) {
	r.Audit.Record(ctx, who, models.ActionMainMenu, "")
	r.edit(v, textWelcome, mainMenuKeyboard(r.Catalog.Categories()))
}

func (r *Router) showCategory(ctx context.Context, v view, who models.Requester, key string) {
	category, err := r.Catalog.CategoryByKey(key)
	if err != nil {
		logger.Log.Debug("unknown category requested", zap.String("key", key))
		return
	}

	r.Audit.Record(ctx, who, models.ActionCategoryViewed, category.Label)

	switch category.Key {
	case models.CategoryAbout:
		r.edit(v, textAbout, backToMainKeyboard())
		return
	case models.CategoryContacts:
		values := r.Settings.Values()
		r.edit(v, contactsText(values), contactKeyboard(values.ManagerUsername, values.ChannelID))
		return
	case models.CategoryGiveaway:
		r.edit(v, r.Settings.Values().GiveawayDescription, backToMainKeyboard())
		return
	}

	offerings, err := r.Catalog.ListOfferingsByCategory(ctx, category.Label)
	if err != nil {
		logger.Log.Error("list offerings", zap.String("category", category.Label), zap.Error(err))
		r.edit(v, textTryAgain, backToMainKeyboard())
		return
	}

	if len(offerings) == 0 {
		r.edit(v, emptyCategoryText(category.Label), backToMainKeyboard())
		return
	}
	r.edit(v, categoryText(category.Label), categoryKeyboard(offerings))
}

// lookup returns offering or nil, rendering the storage failure itself
func (r *Router) lookup(ctx context.Context, v view, id int64) *models.Offering {
	offering, err := r.Catalog.GetOffering(ctx, id)
	if err != nil {
		logger.Log.Error("get offering", zap.Int64("offering_id", id), zap.Error(err))
		r.edit(v, textTryAgain, backToMainKeyboard())
		return nil
	}
	return offering
}

func (r *Router) showOffering(ctx context.Context, v view, who models.Requester, id int64) {
	offering := r.lookup(ctx, v, id)
	if offering == nil {
		return
	}

	r.Audit.Record(ctx, who, models.ActionServiceViewed, offering.Name)

	key := ""
	if category, err := r.Catalog.CategoryByLabel(offering.Category); err == nil {
		key = category.Key
	}
	r.edit(v, offeringText(offering), offeringKeyboard(offering.ID, key))
}

func (r *Router) showDetails(ctx context.Context, v view, who models.Requester, id int64) {
	offering := r.lookup(ctx, v, id)
	if offering == nil {
		return
	}

	r.Audit.Record(ctx, who, models.ActionDetailsViewed, offering.Name)
	r.edit(v, detailsText(offering), detailsKeyboard(offering.ID))
}

func (r *Router) placeOrder(ctx context.Context, v view, who models.Requester, id int64) string {
	placement, err := r.Orders.PlaceOrder(ctx, who, id)
	if errors.Is(err, models.ErrOfferingNotFound) {
		return textOfferingGone
	}
	if err != nil {
		logger.Log.Error("place order", zap.Int64("user_id", who.ID), zap.Int64("offering_id", id), zap.Error(err))
		r.edit(v, textOrderFailed, backToMainKeyboard())
		return ""
	}

	r.Audit.Record(ctx, who, models.ActionOrderCreated,
		fmt.Sprintf("Service: %s, Price: %s", placement.Offering.Name, placement.Offering.Price))
	r.edit(v, orderSuccessText(placement.Offering.Name), backToMainKeyboard())
	return ""
}
