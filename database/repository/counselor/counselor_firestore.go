package counselorRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"coachly/database"
	"coachly/models"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
)

const counselorCollection = "counselors"

// ErrNotFound is returned when no counselor matches the lookup key.
var ErrNotFound = errors.New("counselor not found")

// FirestoreCounselorRepo is the Firestore-backed implementation.
type FirestoreCounselorRepo struct {
	coll *firestore.CollectionRef
}

// NewFirestoreCounselorRepo builds the repository over the shared client.
func NewFirestoreCounselorRepo() *FirestoreCounselorRepo {
	return &FirestoreCounselorRepo{
		coll: database.GetClient().Collection(counselorCollection),
	}
}

// GetByID retrieves a counselor document by its ID.
func (r *FirestoreCounselorRepo) GetByID(ctx context.Context, id string) (*models.Counselor, error) {
	snap, err := r.coll.Doc(id).Get(ctx)
	if err != nil {
		if snap != nil && !snap.Exists() {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get counselor %s: %w", id, err)
	}
	var c models.Counselor
	if err := snap.DataTo(&c); err != nil {
		return nil, fmt.Errorf("failed to decode counselor %s: %w", id, err)
	}
	return &c, nil
}

// GetByPublicProfileName queries on the mini-site routing key, capped
// at one result.
func (r *FirestoreCounselorRepo) GetByPublicProfileName(ctx context.Context, name string) (*models.Counselor, error) {
	iter := r.coll.Where("miniSite.publicProfileName", "==", name).Limit(1).Documents(ctx)
	defer iter.Stop()

	snap, err := iter.Next()
	if err == iterator.Done {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query counselor by profile name %q: %w", name, err)
	}
	var c models.Counselor
	if err := snap.DataTo(&c); err != nil {
		return nil, fmt.Errorf("failed to decode counselor for profile %q: %w", name, err)
	}
	return &c, nil
}

// GetAll retrieves every counselor document.
func (r *FirestoreCounselorRepo) GetAll(ctx context.Context) ([]models.Counselor, error) {
	iter := r.coll.Documents(ctx)
	defer iter.Stop()

	var out []models.Counselor
	for {
		snap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to list counselors: %w", err)
		}
		var c models.Counselor
		if err := snap.DataTo(&c); err != nil {
			return nil, fmt.Errorf("failed to decode counselor: %w", err)
		}
		out = append(out, c)
	}
	return out, nil
}

// Create inserts a new counselor document keyed by its ID.
func (r *FirestoreCounselorRepo) Create(ctx context.Context, counselor *models.Counselor) error {
	counselor.CreatedAt = time.Now().UTC()
	counselor.UpdatedAt = counselor.CreatedAt
	if _, err := r.coll.Doc(counselor.ID).Create(ctx, counselor); err != nil {
		return fmt.Errorf("failed to create counselor: %w", err)
	}
	return nil
}

// Update overwrites an existing counselor document.
func (r *FirestoreCounselorRepo) Update(ctx context.Context, counselor *models.Counselor) error {
	counselor.UpdatedAt = time.Now().UTC()
	if _, err := r.coll.Doc(counselor.ID).Set(ctx, counselor); err != nil {
		return fmt.Errorf("failed to update counselor with id %s: %w", counselor.ID, err)
	}
	return nil
}

// Delete removes a counselor document by its ID.
func (r *FirestoreCounselorRepo) Delete(ctx context.Context, id string) error {
	if _, err := r.coll.Doc(id).Delete(ctx); err != nil {
		return fmt.Errorf("failed to delete counselor with id %s: %w", id, err)
	}
	return nil
}
