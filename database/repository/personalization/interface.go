package personalizationRepo

import (
	"context"

	"coachly/models"
)

// Repository defines access to the agency configuration document.
//
// Subscribe registers a live listener: onChange fires with the current
// document state and on every subsequent change, with nil when no
// document exists (defaults apply). onError fires at most once, after
// which the subscription is dead. The returned function cancels the
// subscription; it is safe to call more than once.
type Repository interface {
	Get(ctx context.Context) (*models.AgencyConfigPatch, error)
	Set(ctx context.Context, patch *models.AgencyConfigPatch) error
	Subscribe(ctx context.Context, onChange func(*models.AgencyConfigPatch), onError func(error)) func()
}
