package service

import (
	"context"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/rookgm/phoenixbot/internal/models"
)

// OfferingRepository is interface for interacting with offering-related data
type OfferingRepository interface {
	// CreateOffering inserts new offering
	CreateOffering(ctx context.Context, offering *models.Offering) (*models.Offering, error)
	// GetOffering returns offering by id, (nil, nil) if absent
	GetOffering(ctx context.Context, id int64) (*models.Offering, error)
	// ListOfferingsByCategory returns offerings of category ordered by name
	ListOfferingsByCategory(ctx context.Context, category string) ([]models.Offering, error)
	// ListOfferings returns all offerings ordered by category and name
	ListOfferings(ctx context.Context) ([]models.Offering, error)
	// DeleteOffering removes offering, reports whether it existed
	DeleteOffering(ctx context.Context, id int64) (bool, error)
}

// CatalogService implements catalog operations over offerings
type CatalogService struct {
	repo       OfferingRepository
	validate   *validator.Validate
	categories []models.Category
}

// NewCatalogService creates new CatalogService instance
func NewCatalogService(repo OfferingRepository) *CatalogService {
	return &CatalogService{
		repo:       repo,
		validate:   validator.New(),
		categories: models.Categories(),
	}
}

// Categories returns all enumerated categories in menu order
func (cs *CatalogService) Categories() []models.Category {
	out := make([]models.Category, len(cs.categories))
	copy(out, cs.categories)
	return out
}

// CatalogCategories returns categories that can hold offerings
func (cs *CatalogService) CatalogCategories() []models.Category {
	var out []models.Category
	for _, c := range cs.categories {
		if c.Kind == models.CategoryCatalog {
			out = append(out, c)
		}
	}
	return out
}

// CategoryByKey maps category key to category
func (cs *CatalogService) CategoryByKey(key string) (models.Category, error) {
	for _, c := range cs.categories {
		if c.Key == key {
			return c, nil
		}
	}
	return models.Category{}, fmt.Errorf("%w: key %q", models.ErrUnknownCategory, key)
}

// CategoryByLabel maps display label to category. Labels must match exactly.
func (cs *CatalogService) CategoryByLabel(label string) (models.Category, error) {
	for _, c := range cs.categories {
		if c.Label == label {
			return c, nil
		}
	}
	return models.Category{}, fmt.Errorf("%w: %q", models.ErrUnknownCategory, label)
}

// CreateOffering validates and stores new offering.
// Category must be the label of a catalog category.
func (cs *CatalogService) CreateOffering(ctx context.Context, offering models.Offering) (*models.Offering, error) {
	if err := cs.validate.Struct(offering); err != nil {
		return nil, fmt.Errorf("%w: %v", models.ErrInvalidOffering, err)
	}

	category, err := cs.CategoryByLabel(offering.Category)
	if err != nil {
		return nil, err
	}
	if category.Kind != models.CategoryCatalog {
		return nil, fmt.Errorf("%w: %q holds no offerings", models.ErrUnknownCategory, offering.Category)
	}

	return cs.repo.CreateOffering(ctx, &offering)
}

// GetOffering returns offering by id. Absent offering is (nil, nil).
func (cs *CatalogService) GetOffering(ctx context.Context, id int64) (*models.Offering, error) {
	return cs.repo.GetOffering(ctx, id)
}

// ListOfferingsByCategory returns offerings whose category equals label
func (cs *CatalogService) ListOfferingsByCategory(ctx context.Context, label string) ([]models.Offering, error) {
	return cs.repo.ListOfferingsByCategory(ctx, label)
}

// ListOfferings returns all offerings
func (cs *CatalogService) ListOfferings(ctx context.Context) ([]models.Offering, error) {
	return cs.repo.ListOfferings(ctx)
}

// DeleteOffering removes offering. false means it did not exist.
func (cs *CatalogService) DeleteOffering(ctx context.Context, id int64) (bool, error) {
	return cs.repo.DeleteOffering(ctx, id)
}
