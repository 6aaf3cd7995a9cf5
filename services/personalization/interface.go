package personalization

import (
	"context"

	"coachly/models"
)

// RemoteSource is the observer registration surface of the remote
// configuration store. Subscribe fires onChange with the current
// document and on every subsequent change (nil when no document
// exists), fires onError at most once when the stream dies, and
// returns a cancel function that tears the subscription down.
//
// Callbacks run on the subscription's own goroutine; implementations
// must not invoke them synchronously from inside Subscribe.
//
// The Firestore repository satisfies this; the service itself never
// touches a concrete store client.
type RemoteSource interface {
	Subscribe(ctx context.Context, onChange func(*models.AgencyConfigPatch), onError func(error)) func()
}
