package counselorRepo

import (
	"context"

	"coachly/models"
)

// CounselorRepository defines methods for counselor data access.
type CounselorRepository interface {
	// GetByID retrieves a counselor by its unique ID.
	GetByID(ctx context.Context, id string) (*models.Counselor, error)
	// GetByPublicProfileName retrieves the counselor owning the given
	// public mini-site profile name. At most one match is returned; if
	// the store holds several, the first wins.
	GetByPublicProfileName(ctx context.Context, name string) (*models.Counselor, error)
	// GetAll retrieves all counselors.
	GetAll(ctx context.Context) ([]models.Counselor, error)
	// Create inserts a new counselor record.
	Create(ctx context.Context, counselor *models.Counselor) error
	// Update overwrites an existing counselor record.
	Update(ctx context.Context, counselor *models.Counselor) error
	// Delete removes a counselor record by its ID.
	Delete(ctx context.Context, id string) error
}
