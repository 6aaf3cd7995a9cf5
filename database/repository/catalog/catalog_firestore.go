package catalogRepo

import (
	"context"
	"fmt"
	"time"

	"coachly/database"
	"coachly/models"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
)

const (
	jobOfferCollection = "jobOffers"
	productCollection  = "products"
)

// FirestoreCatalogRepo is the Firestore-backed implementation.
type FirestoreCatalogRepo struct {
	offers   *firestore.CollectionRef
	products *firestore.CollectionRef
}

// NewFirestoreCatalogRepo builds the repository over the shared client.
func NewFirestoreCatalogRepo() *FirestoreCatalogRepo {
	client := database.GetClient()
	return &FirestoreCatalogRepo{
		offers:   client.Collection(jobOfferCollection),
		products: client.Collection(productCollection),
	}
}

// JobOffersByCounselor returns the active job offers of one counselor.
func (r *FirestoreCatalogRepo) JobOffersByCounselor(ctx context.Context, counselorID string) ([]models.JobOffer, error) {
	iter := r.offers.
		Where("counselorId", "==", counselorID).
		Where("active", "==", true).
		Documents(ctx)
	defer iter.Stop()

	var out []models.JobOffer
	for {
		snap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to list job offers for counselor %s: %w", counselorID, err)
		}
		var offer models.JobOffer
		if err := snap.DataTo(&offer); err != nil {
			return nil, fmt.Errorf("failed to decode job offer: %w", err)
		}
		out = append(out, offer)
	}
	return out, nil
}

// ProductsByCounselor returns the available products of one counselor.
func (r *FirestoreCatalogRepo) ProductsByCounselor(ctx context.Context, counselorID string) ([]models.Product, error) {
	iter := r.products.
		Where("counselorId", "==", counselorID).
		Where("available", "==", true).
		Documents(ctx)
	defer iter.Stop()

	var out []models.Product
	for {
		snap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to list products for counselor %s: %w", counselorID, err)
		}
		var product models.Product
		if err := snap.DataTo(&product); err != nil {
			return nil, fmt.Errorf("failed to decode product: %w", err)
		}
		out = append(out, product)
	}
	return out, nil
}

// CreateJobOffer inserts a job offer document.
func (r *FirestoreCatalogRepo) CreateJobOffer(ctx context.Context, offer *models.JobOffer) error {
	offer.PostedAt = time.Now().UTC()
	if _, err := r.offers.Doc(offer.ID).Create(ctx, offer); err != nil {
		return fmt.Errorf("failed to create job offer: %w", err)
	}
	return nil
}

// CreateProduct inserts a product document.
func (r *FirestoreCatalogRepo) CreateProduct(ctx context.Context, product *models.Product) error {
	product.CreatedAt = time.Now().UTC()
	if _, err := r.products.Doc(product.ID).Create(ctx, product); err != nil {
		return fmt.Errorf("failed to create product: %w", err)
	}
	return nil
}

// DeleteJobOffer removes a job offer by id.
func (r *FirestoreCatalogRepo) DeleteJobOffer(ctx context.Context, id string) error {
	if _, err := r.offers.Doc(id).Delete(ctx); err != nil {
		return fmt.Errorf("failed to delete job offer %s: %w", id, err)
	}
	return nil
}

// DeleteProduct removes a product by id.
func (r *FirestoreCatalogRepo) DeleteProduct(ctx context.Context, id string) error {
	if _, err := r.products.Doc(id).Delete(ctx); err != nil {
		return fmt.Errorf("failed to delete product %s: %w", id, err)
	}
	return nil
}
