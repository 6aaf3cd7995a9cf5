package catalogRepo

import (
	"context"

	"coachly/models"
)

// CatalogRepository defines access to job offers and products, both
// scoped by counselor id.
type CatalogRepository interface {
	JobOffersByCounselor(ctx context.Context, counselorID string) ([]models.JobOffer, error)
	ProductsByCounselor(ctx context.Context, counselorID string) ([]models.Product, error)
	CreateJobOffer(ctx context.Context, offer *models.JobOffer) error
	CreateProduct(ctx context.Context, product *models.Product) error
	DeleteJobOffer(ctx context.Context, id string) error
	DeleteProduct(ctx context.Context, id string) error
}
