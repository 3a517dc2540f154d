package service

import (
	"context"
	"fmt"

	"github.com/rookgm/phoenixbot/internal/logger"
	"github.com/rookgm/phoenixbot/internal/models"
	"go.uber.org/zap"
)

const orderTimeLayout = "02.01.2006 15:04"

// OrderRepository is interface for interacting with order-related data
type OrderRepository interface {
	// CreateOrder inserts new order to database
	CreateOrder(ctx context.Context, order *models.Order) (*models.Order, error)
	// ListOrders returns all orders
	ListOrders(ctx context.Context) ([]models.Order, error)
	// CountOrders returns number of orders
	CountOrders(ctx context.Context) (int, error)
}

// OfferingGetter looks up offering by id
type OfferingGetter interface {
	GetOffering(ctx context.Context, id int64) (*models.Offering, error)
}

// Notifier delivers messages to the forwarding channel and to the operator
type Notifier interface {
	// NotifyChannel sends plain text to channel
	NotifyChannel(ctx context.Context, channelID, text string) error
	// NotifyOperator sends plain text to the operator, no-op if no operator is configured
	NotifyOperator(ctx context.Context, text string) error
}

// ChannelSource returns currently configured forwarding channel
type ChannelSource interface {
	ChannelID() string
}

// Placement is the outcome of a recorded order
type Placement struct {
	Order     *models.Order
	Offering  *models.Offering
	Forwarded bool
}

// OrderService implements order intake
type OrderService struct {
	offerings OfferingGetter
	repo      OrderRepository
	notifier  Notifier
	channel   ChannelSource
}

// NewOrderService creates new OrderService instance
func NewOrderService(offerings OfferingGetter, repo OrderRepository, notifier Notifier, channel ChannelSource) *OrderService {
	return &OrderService{
		offerings: offerings,
		repo:      repo,
		notifier:  notifier,
		channel:   channel,
	}
}

// PlaceOrder records order for existing offering and forwards a summary to channel.
// Forwarding is best effort: its failure never removes the recorded order.
func (os *OrderService) PlaceOrder(ctx context.Context, requester models.Requester, offeringID int64) (*Placement, error) {
	offering, err := os.offerings.GetOffering(ctx, offeringID)
	if err != nil {
		return nil, fmt.Errorf("get offering: %w", err)
	}
	if offering == nil {
		return nil, models.ErrOfferingNotFound
	}

	order, err := os.repo.CreateOrder(ctx, &models.Order{
		UserID:       requester.ID,
		Username:     requester.Username,
		OfferingID:   offering.ID,
		OfferingName: offering.Name,
	})
	if err != nil {
		return nil, fmt.Errorf("create order: %w", err)
	}

	placement := &Placement{Order: order, Offering: offering}

	channelID := os.channel.ChannelID()
	if channelID == "" {
		logger.Log.Warn("order is not forwarded, channel is not configured",
			zap.Int64("order_id", order.ID), zap.Int64("user_id", requester.ID))
		os.warnOperator(ctx, fmt.Sprintf("⚠️ Order channel is not configured! Order from %s was not published.",
			FormatUsername(requester.Username)))
		return placement, nil
	}

	if err := os.notifier.NotifyChannel(ctx, channelID, FormatOrderSummary(order, offering)); err != nil {
		logger.Log.Error("forward order to channel",
			zap.Int64("order_id", order.ID), zap.String("channel", channelID), zap.Error(err))
		os.warnOperator(ctx, fmt.Sprintf("⚠️ Could not publish order from %s to channel %s. Check the channel settings.",
			FormatUsername(requester.Username), channelID))
		return placement, nil
	}

	logger.Log.Info("order forwarded", zap.Int64("order_id", order.ID), zap.String("channel", channelID))
	placement.Forwarded = true
	return placement, nil
}

// ListOrders returns all orders
func (os *OrderService) ListOrders(ctx context.Context) ([]models.Order, error) {
	return os.repo.ListOrders(ctx)
}

// CountOrders returns number of recorded orders
func (os *OrderService) CountOrders(ctx context.Context) (int, error) {
	return os.repo.CountOrders(ctx)
}

func (os *OrderService) warnOperator(ctx context.Context, text string) {
	if err := os.notifier.NotifyOperator(ctx, text); err != nil {
		logger.Log.Error("notify operator", zap.Error(err))
	}
}

// FormatUsername renders chat handle for display
func FormatUsername(username string) string {
	switch {
	case username == "":
		return "not specified"
	case username[0] == '@':
		return username
	default:
		return "@" + username
	}
}

// FormatOrderSummary renders the message forwarded to the order channel
func FormatOrderSummary(order *models.Order, offering *models.Offering) string {
	profile := ""
	if order.Username != "" {
		profile = "\n🔗 Profile: t.me/" + order.Username
	}

	return fmt.Sprintf("🔔 New order!\n\n📋 Service: %s\n👤 Client: %s%s\n🕐 Time: %s\n\n💰 Price: %s\n\n📝 Description:\n%s",
		offering.Name,
		FormatUsername(order.Username),
		profile,
		order.OrderTime.Format(orderTimeLayout),
		offering.Price,
		offering.Description,
	)
}
