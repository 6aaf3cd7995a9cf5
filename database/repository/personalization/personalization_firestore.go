package personalizationRepo

import (
	"context"
	"fmt"

	"coachly/database"
	"coachly/models"

	"cloud.google.com/go/firestore"
)

const (
	agencyCollection = "agency"
	settingsDocument = "settings"
)

// FirestoreRepo is the Firestore-backed agency configuration repository.
type FirestoreRepo struct {
	doc *firestore.DocumentRef
}

// NewFirestoreRepo builds the repository over the shared Firestore client.
func NewFirestoreRepo() *FirestoreRepo {
	return &FirestoreRepo{
		doc: database.GetClient().Collection(agencyCollection).Doc(settingsDocument),
	}
}

// Get reads the configuration document once. A missing document is not
// an error: it returns (nil, nil) and the caller applies defaults.
func (r *FirestoreRepo) Get(ctx context.Context) (*models.AgencyConfigPatch, error) {
	snap, err := r.doc.Get(ctx)
	if err != nil {
		if snap != nil && !snap.Exists() {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read agency settings: %w", err)
	}
	if !snap.Exists() {
		return nil, nil
	}
	var patch models.AgencyConfigPatch
	if err := snap.DataTo(&patch); err != nil {
		return nil, fmt.Errorf("failed to decode agency settings: %w", err)
	}
	return &patch, nil
}

// Set overwrites the configuration document with the given patch.
func (r *FirestoreRepo) Set(ctx context.Context, patch *models.AgencyConfigPatch) error {
	if _, err := r.doc.Set(ctx, patch); err != nil {
		return fmt.Errorf("failed to write agency settings: %w", err)
	}
	return nil
}

// Subscribe opens a snapshot listener on the configuration document.
func (r *FirestoreRepo) Subscribe(ctx context.Context, onChange func(*models.AgencyConfigPatch), onError func(error)) func() {
	ctx, cancel := context.WithCancel(ctx)
	iter := r.doc.Snapshots(ctx)

	go func() {
		defer iter.Stop()
		for {
			snap, err := iter.Next()
			if err != nil {
				if ctx.Err() != nil {
					// Ordinary teardown, not a failure.
					return
				}
				onError(fmt.Errorf("agency settings listener failed: %w", err))
				return
			}
			if !snap.Exists() {
				onChange(nil)
				continue
			}
			var patch models.AgencyConfigPatch
			if err := snap.DataTo(&patch); err != nil {
				onError(fmt.Errorf("failed to decode agency settings snapshot: %w", err))
				return
			}
			onChange(&patch)
		}
	}()

	return cancel
}
