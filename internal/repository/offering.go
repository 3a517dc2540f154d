package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/rookgm/phoenixbot/internal/models"
	"github.com/rookgm/phoenixbot/internal/repository/postgres"
)

const (
	insertOfferingQuery = `
						INSERT INTO offerings (name, description, price, category)
						VALUES ($1, $2, $3, $4)
						RETURNING id, created_at
`
	selectOfferingByIDQuery = `
						SELECT id, name, description, price, category, created_at FROM offerings
						WHERE id = $1
`
	selectOfferingsByCategoryQuery = `
						SELECT id, name, description, price, category, created_at FROM offerings
						WHERE category = $1
						ORDER BY name, id
`
	selectOfferingsQuery = `
						SELECT id, name, description, price, category, created_at FROM offerings
						ORDER BY category, name, id
`
	deleteOfferingQuery = `
						DELETE FROM offerings
						WHERE id = $1
`
)

// OfferingRepository implements OfferingRepository interface
type OfferingRepository struct {
	db *postgres.DB
}

// NewOfferingRepository creates new OfferingRepository instance
func NewOfferingRepository(db *postgres.DB) *OfferingRepository {
	return &OfferingRepository{db: db}
}

// CreateOffering inserts new offering and fills its id and creation time
func (r *OfferingRepository) CreateOffering(ctx context.Context, offering *models.Offering) (*models.Offering, error) {
	err := r.db.QueryRow(ctx, insertOfferingQuery, offering.Name, offering.Description, offering.Price, offering.Category).
		Scan(&offering.ID, &offering.CreatedAt)
	if err != nil {
		return nil, err
	}

	return offering, nil
}

// GetOffering returns offering by id. Returns (nil, nil) if not found.
func (r *OfferingRepository) GetOffering(ctx context.Context, id int64) (*models.Offering, error) {
	offering := models.Offering{}
	err := r.db.QueryRow(ctx, selectOfferingByIDQuery, id).
		Scan(&offering.ID, &offering.Name, &offering.Description, &offering.Price, &offering.Category, &offering.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return &offering, nil
}

// ListOfferingsByCategory returns offerings of category ordered by name
func (r *OfferingRepository) ListOfferingsByCategory(ctx context.Context, category string) ([]models.Offering, error) {
	return r.list(ctx, selectOfferingsByCategoryQuery, category)
}

// ListOfferings returns all offerings ordered by category and name
func (r *OfferingRepository) ListOfferings(ctx context.Context) ([]models.Offering, error) {
	return r.list(ctx, selectOfferingsQuery)
}

// DeleteOffering removes offering, reports whether a row was removed
func (r *OfferingRepository) DeleteOffering(ctx context.Context, id int64) (bool, error) {
	cmd, err := r.db.Exec(ctx, deleteOfferingQuery, id)
	if err != nil {
		return false, err
	}

	return cmd.RowsAffected() > 0, nil
}

func (r *OfferingRepository) list(ctx context.Context, query string, args ...any) ([]models.Offering, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	offerings := []models.Offering{}

	for rows.Next() {
		offering := models.Offering{}
		err = rows.Scan(&offering.ID, &offering.Name, &offering.Description, &offering.Price, &offering.Category, &offering.CreatedAt)
		if err != nil {
			return nil, err
		}
		offerings = append(offerings, offering)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return offerings, nil
}
