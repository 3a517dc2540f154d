package service

import (
	"context"
	"time"

	"github.com/rookgm/phoenixbot/internal/models"
)

// OfferingLister lists all offerings
type OfferingLister interface {
	ListOfferings(ctx context.Context) ([]models.Offering, error)
}

// OrderCounter counts orders
type OrderCounter interface {
	CountOrders(ctx context.Context) (int, error)
}

// CategoryCount is number of offerings in a category
type CategoryCount struct {
	Category models.Category
	Count    int
}

// Stats is an aggregate view for the operator
type Stats struct {
	Offerings   int
	Orders      int
	ByCategory  []CategoryCount
	GeneratedAt time.Time
}

// StatsService aggregates catalog and order counts
type StatsService struct {
	offerings OfferingLister
	orders    OrderCounter
	nowFunc   func() time.Time
}

// NewStatsService creates new StatsService instance
func NewStatsService(offerings OfferingLister, orders OrderCounter) *StatsService {
	return &StatsService{
		offerings: offerings,
		orders:    orders,
		nowFunc:   time.Now,
	}
}

// Stats returns offering and order counts, per catalog category as well
func (ss *StatsService) Stats(ctx context.Context) (*Stats, error) {
	offerings, err := ss.offerings.ListOfferings(ctx)
	if err != nil {
		return nil, err
	}

	orders, err := ss.orders.CountOrders(ctx)
	if err != nil {
		return nil, err
	}

	perLabel := make(map[string]int)
	for _, o := range offerings {
		perLabel[o.Category]++
	}

	stats := &Stats{
		Offerings:   len(offerings),
		Orders:      orders,
		GeneratedAt: ss.nowFunc(),
	}
	for _, c := range models.Categories() {
		if c.Kind != models.CategoryCatalog {
			continue
		}
		stats.ByCategory = append(stats.ByCategory, CategoryCount{Category: c, Count: perLabel[c.Label]})
	}

	return stats, nil
}
