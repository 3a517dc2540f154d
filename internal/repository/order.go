package repository

import (
	"context"

	"github.com/rookgm/phoenixbot/internal/models"
	"github.com/rookgm/phoenixbot/internal/repository/postgres"
)

const (
	insertOrderQuery = `
						INSERT INTO orders (user_id, username, offering_id, offering_name)
						VALUES ($1, NULLIF($2, ''), $3, $4)
						RETURNING id, order_time
`
	selectOrdersQuery = `
						SELECT id, user_id, COALESCE(username, ''), offering_id, offering_name, order_time FROM orders
						ORDER BY order_time, id
`
	countOrdersQuery = `
						SELECT count(*) FROM orders
`
)

// OrderRepository implements OrderRepository interface
type OrderRepository struct {
	db *postgres.DB
}

// NewOrderRepository creates new OrderRepository instance
func NewOrderRepository(db *postgres.DB) *OrderRepository {
	return &OrderRepository{db: db}
}

// CreateOrder inserts new order to database
func (or *OrderRepository) CreateOrder(ctx context.Context, order *models.Order) (*models.Order, error) {
	err := or.db.QueryRow(ctx, insertOrderQuery, order.UserID, order.Username, order.OfferingID, order.OfferingName).
		Scan(&order.ID, &order.OrderTime)
	if err != nil {
		return nil, err
	}

	return order, nil
}

// ListOrders returns all orders
func (or *OrderRepository) ListOrders(ctx context.Context) ([]models.Order, error) {
	rows, err := or.db.Query(ctx, selectOrdersQuery)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := []models.Order{}

	for rows.Next() {
		order := models.Order{}
		err = rows.Scan(&order.ID, &order.UserID, &order.Username, &order.OfferingID, &order.OfferingName, &order.OrderTime)
		if err != nil {
			return nil, err
		}
		orders = append(orders, order)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}

// CountOrders returns number of orders
func (or *OrderRepository) CountOrders(ctx context.Context) (int, error) {
	var n int
	if err := or.db.QueryRow(ctx, countOrdersQuery).Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}
